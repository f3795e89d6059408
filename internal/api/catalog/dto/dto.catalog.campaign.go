package catalogdto

import (
	catalogmodels "retail_insights/internal/api/catalog/models"
)

// CampaignTargetSegmentInput target segment của campaign.
// Enum validate theo đúng từ vựng segment engine sinh ra.
type CampaignTargetSegmentInput struct {
	Churn       string `json:"churn,omitempty" validate:"omitempty,churn_segment"`
	Value       string `json:"value,omitempty" validate:"omitempty,value_segment"`
	Affinity    string `json:"affinity,omitempty" validate:"omitempty,no_xss"`
	AgeSegment  string `json:"ageSegment,omitempty" validate:"omitempty,age_segment"`
	ClimateType string `json:"climateType,omitempty" validate:"omitempty,no_xss"`
}

// CampaignCreateInput dữ liệu đầu vào khi tạo campaign.
type CampaignCreateInput struct {
	CampaignID    string                           `json:"campaignId" validate:"required,no_xss"`
	CustomerID    string                           `json:"customerId,omitempty" validate:"omitempty,no_xss"`
	City          string                           `json:"city" validate:"required,no_xss"`
	Region        string                           `json:"region,omitempty" validate:"omitempty,no_xss"`
	Objective     string                           `json:"objective" validate:"required,oneof=IncreaseRevenue ClearOverstock CustomerRetention"`
	Event         string                           `json:"event,omitempty" validate:"omitempty,no_xss"`
	TargetSegment CampaignTargetSegmentInput       `json:"targetSegment"`
	Strategy      catalogmodels.CampaignStrategy   `json:"strategy"`
	Products      []catalogmodels.CampaignProductRef `json:"products,omitempty"`
	Status        string                           `json:"status,omitempty" validate:"omitempty,oneof=draft active finished"`
	StartDate     int64                            `json:"startDate,omitempty"`
	EndDate       int64                            `json:"endDate,omitempty"`
}

// CampaignUpdateInput dữ liệu đầu vào khi cập nhật campaign.
type CampaignUpdateInput struct {
	Event         string                           `json:"event,omitempty" validate:"omitempty,no_xss"`
	TargetSegment CampaignTargetSegmentInput       `json:"targetSegment,omitempty"`
	Strategy      catalogmodels.CampaignStrategy   `json:"strategy,omitempty"`
	Products      []catalogmodels.CampaignProductRef `json:"products,omitempty"`
	Status        string                           `json:"status,omitempty" validate:"omitempty,oneof=draft active finished"`
	StartDate     int64                            `json:"startDate,omitempty"`
	EndDate       int64                            `json:"endDate,omitempty"`
}
