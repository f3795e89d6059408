// Package crmmodels - Model khách hàng (customers).
// Mỗi customer embed toàn bộ lịch sử mua theo sản phẩm (productHistory)
// và một khối derived do engine phân khúc tính và ghi.
package crmmodels

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// ProductHistoryEntry là lịch sử mua lũy kế của khách với một sản phẩm.
// Mỗi productId xuất hiện tối đa một lần trong productHistory của một khách.
type ProductHistoryEntry struct {
	ProductID      string  `json:"productId" bson:"productId"`
	Category       string  `json:"category" bson:"category"`
	TotalQuantity  int64   `json:"totalQuantity" bson:"totalQuantity"`
	TotalSpent     float64 `json:"totalSpent" bson:"totalSpent"`
	OrderCount     int64   `json:"orderCount" bson:"orderCount"`
	FirstPurchase  int64   `json:"firstPurchase,omitempty" bson:"firstPurchase,omitempty"`
	LastPurchase   int64   `json:"lastPurchase,omitempty" bson:"lastPurchase,omitempty"`
	AvgDaysBetween *int64  `json:"avgDaysBetween,omitempty" bson:"avgDaysBetween,omitempty"` // nil khi mới mua một lần
}

// TopProduct là một dòng trong top sản phẩm theo chi tiêu của khách.
type TopProduct struct {
	ProductID  string  `json:"productId" bson:"productId"`
	Category   string  `json:"category" bson:"category"`
	TotalSpent float64 `json:"totalSpent" bson:"totalSpent"`
	OrderCount int64   `json:"orderCount" bson:"orderCount"`
}

// CustomerDerived là khối metrics do engine tính và ghi (cache).
// Luôn tính lại được toàn bộ từ productHistory + registeredAt + Region.
type CustomerDerived struct {
	TotalOrders         int64        `json:"totalOrders" bson:"totalOrders"`
	TotalSpent          float64      `json:"totalSpent" bson:"totalSpent"`
	AvgBasket           float64      `json:"avgBasket" bson:"avgBasket"`
	UniqueProducts      int64        `json:"uniqueProducts" bson:"uniqueProducts"`
	LastPurchaseDaysAgo int64        `json:"lastPurchaseDaysAgo" bson:"lastPurchaseDaysAgo"`
	MembershipDays      int64        `json:"membershipDays" bson:"membershipDays"`
	MembershipMonths    int64        `json:"membershipMonths" bson:"membershipMonths"`
	OrderFrequency      float64      `json:"orderFrequency" bson:"orderFrequency"`       // Đơn / tháng
	AvgMonthlySpend     float64      `json:"avgMonthlySpend" bson:"avgMonthlySpend"`
	ChurnSegment        string       `json:"churnSegment" bson:"churnSegment"`           // Active | Warm | AtRisk
	ValueSegment        string       `json:"valueSegment" bson:"valueSegment"`           // HighValue | Standard
	AgeSegment          string       `json:"ageSegment" bson:"ageSegment"`               // GenZ | YoungAdult | Adult | Mature
	LoyaltyTier         string       `json:"loyaltyTier" bson:"loyaltyTier"`             // Bronze | Silver | Gold | Platinum
	EstimatedBudget     float64      `json:"estimatedBudget" bson:"estimatedBudget"`
	AffinityCategory    string       `json:"affinityCategory" bson:"affinityCategory"`
	AffinityType        string       `json:"affinityType" bson:"affinityType"`           // Focused | Explorer
	DiversityProfile    string       `json:"diversityProfile" bson:"diversityProfile"`   // Diverse | Balanced | Specialist
	RegionName          string       `json:"regionName" bson:"regionName"`               // Region resolve từ city lúc refresh
	MissingRegulars     []string     `json:"missingRegulars,omitempty" bson:"missingRegulars,omitempty"`
	TopProducts         []TopProduct `json:"topProducts,omitempty" bson:"topProducts,omitempty"`
	UpdatedAt           int64        `json:"updatedAt" bson:"updatedAt"`
}

// Customer là hồ sơ khách hàng của một tenant (customers).
type Customer struct {
	ID             primitive.ObjectID    `json:"id,omitempty" bson:"_id,omitempty"`
	TenantID       primitive.ObjectID    `json:"tenantId" bson:"tenantId" index:"single:1,compound:customer_tenant_cid_unique"`
	CustomerID     string                `json:"customerId" bson:"customerId" index:"compound:customer_tenant_cid_unique"`
	Name           string                `json:"name,omitempty" bson:"name,omitempty"`
	City           string                `json:"city" bson:"city" index:"single:1"`
	Age            int                   `json:"age,omitempty" bson:"age,omitempty"`
	Gender         string                `json:"gender,omitempty" bson:"gender,omitempty"` // F | M | U
	RegisteredAt   int64                 `json:"registeredAt" bson:"registeredAt"`
	ProductHistory []ProductHistoryEntry `json:"productHistory,omitempty" bson:"productHistory,omitempty"`
	Derived        *CustomerDerived      `json:"derived,omitempty" bson:"derived,omitempty"`
	CreatedAt      int64                 `json:"createdAt" bson:"createdAt"`
	UpdatedAt      int64                 `json:"updatedAt" bson:"updatedAt"`
}
