package catalogmodels

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// CampaignTargetSegment mô tả nhóm khách mục tiêu của campaign.
// Dùng chung bộ từ vựng segment với engine (wire contract).
type CampaignTargetSegment struct {
	Churn       string `json:"churn,omitempty" bson:"churn,omitempty"`             // Active | Warm | AtRisk
	Value       string `json:"value,omitempty" bson:"value,omitempty"`             // HighValue | Standard
	Affinity    string `json:"affinity,omitempty" bson:"affinity,omitempty"`       // Category ưa thích
	AgeSegment  string `json:"ageSegment,omitempty" bson:"ageSegment,omitempty"`   // GenZ | YoungAdult | Adult | Mature
	ClimateType string `json:"climateType,omitempty" bson:"climateType,omitempty"` // Từ Region của city mục tiêu
}

// CampaignStrategy mô tả chiến lược giảm giá/thông điệp của campaign.
type CampaignStrategy struct {
	Type            string  `json:"type" bson:"type"`
	Description     string  `json:"description,omitempty" bson:"description,omitempty"`
	DiscountPercent float64 `json:"discountPercent,omitempty" bson:"discountPercent,omitempty"`
	RegionNote      string  `json:"regionNote,omitempty" bson:"regionNote,omitempty"`
}

// CampaignProductRef tham chiếu sản phẩm trong campaign kèm vai trò.
type CampaignProductRef struct {
	ProductID       string  `json:"productId" bson:"productId"`
	Role            string  `json:"role,omitempty" bson:"role,omitempty"` // hero | clearance
	DiscountPercent float64 `json:"discountPercent,omitempty" bson:"discountPercent,omitempty"`
}

// Campaign là bản ghi output của quy trình gợi ý campaign (campaigns).
// Engine phân khúc không đọc/ghi collection này — chỉ CRUD surface,
// nhưng targetSegment phải dùng đúng từ vựng segment engine sinh ra.
type Campaign struct {
	ID            primitive.ObjectID    `json:"id,omitempty" bson:"_id,omitempty"`
	TenantID      primitive.ObjectID    `json:"tenantId" bson:"tenantId" index:"single:1,compound:campaign_tenant_cid_unique"`
	CampaignID    string                `json:"campaignId" bson:"campaignId" index:"compound:campaign_tenant_cid_unique"`
	CustomerID    string                `json:"customerId,omitempty" bson:"customerId,omitempty" index:"single:1"`
	City          string                `json:"city" bson:"city" index:"single:1"`
	Region        string                `json:"region,omitempty" bson:"region,omitempty"`
	Objective     string                `json:"objective" bson:"objective" index:"single:1"` // IncreaseRevenue | ClearOverstock | CustomerRetention
	Event         string                `json:"event,omitempty" bson:"event,omitempty"`
	TargetSegment CampaignTargetSegment `json:"targetSegment" bson:"targetSegment"`
	Strategy      CampaignStrategy      `json:"strategy" bson:"strategy"`
	Products      []CampaignProductRef  `json:"products,omitempty" bson:"products,omitempty"`
	Status        string                `json:"status" bson:"status" index:"single:1"` // draft | active | finished
	StartDate     int64                 `json:"startDate,omitempty" bson:"startDate,omitempty"`
	EndDate       int64                 `json:"endDate,omitempty" bson:"endDate,omitempty"`
	CreatedAt     int64                 `json:"createdAt" bson:"createdAt"`
	UpdatedAt     int64                 `json:"updatedAt" bson:"updatedAt"`
}
