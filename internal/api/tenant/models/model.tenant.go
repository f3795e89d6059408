// Package tenantmodels - Model tenant (tenants).
// Mỗi tenant là một nhà bán lẻ độc lập; mọi dữ liệu products/customers/campaigns
// đều gắn tenantId và được filter tự động ở tầng handler.
package tenantmodels

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// TenantSettings chứa các override chính sách phân khúc theo tenant.
// Trường nil = dùng giá trị mặc định từ cấu hình server.
type TenantSettings struct {
	Currency           *string  `json:"currency,omitempty" bson:"currency,omitempty"`                     // Mã tiền tệ hiển thị (VND, USD...)
	MaxRecommendations *int     `json:"maxRecommendations,omitempty" bson:"maxRecommendations,omitempty"` // Số gợi ý tối đa cho hệ thống campaign
	MarginFloorPercent *float64 `json:"marginFloorPercent,omitempty" bson:"marginFloorPercent,omitempty"` // Sàn biên lợi nhuận (điểm %)
	BudgetUpliftFactor *float64 `json:"budgetUpliftFactor,omitempty" bson:"budgetUpliftFactor,omitempty"` // Hệ số ước tính ngân sách từ avgBasket
	StockDaysThreshold *int     `json:"stockDaysThreshold,omitempty" bson:"stockDaysThreshold,omitempty"` // Ngưỡng stockDays cho SlowMover
	HeroStockDaysMax   *int     `json:"heroStockDaysMax,omitempty" bson:"heroStockDaysMax,omitempty"`     // Ngưỡng stockDays tối đa cho Hero
	ChurnActiveDays    *int     `json:"churnActiveDays,omitempty" bson:"churnActiveDays,omitempty"`       // Dưới ngưỡng này là Active
	ChurnWarmDays      *int     `json:"churnWarmDays,omitempty" bson:"churnWarmDays,omitempty"`           // Đến ngưỡng này là Warm, trên là AtRisk
}

// Tenant đại diện cho một nhà bán lẻ trong hệ thống.
type Tenant struct {
	ID        primitive.ObjectID `json:"id,omitempty" bson:"_id,omitempty"`
	Name      string             `json:"name" bson:"name" index:"single:1"`
	Slug      string             `json:"slug" bson:"slug" index:"unique"`
	Status    string             `json:"status" bson:"status" index:"single:1"` // active | suspended
	Settings  *TenantSettings    `json:"settings,omitempty" bson:"settings,omitempty"`
	CreatedAt int64              `json:"createdAt" bson:"createdAt"`
	UpdatedAt int64              `json:"updatedAt" bson:"updatedAt"`
}
