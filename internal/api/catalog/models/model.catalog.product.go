package catalogmodels

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// ProductDerived là khối metrics do engine tính và ghi (cache).
// Luôn tính lại được toàn bộ từ trường gốc, không bao giờ sửa tay.
type ProductDerived struct {
	DailySales         float64 `json:"dailySales" bson:"dailySales"`
	StockDays          *int64  `json:"stockDays,omitempty" bson:"stockDays,omitempty"` // nil = không xác định (velocity bằng 0)
	InventoryPressure  bool    `json:"inventoryPressure" bson:"inventoryPressure"`
	GrossMarginPercent float64 `json:"grossMarginPercent" bson:"grossMarginPercent"`
	MaxDiscountPercent float64 `json:"maxDiscountPercent" bson:"maxDiscountPercent"`
	StockSegment       string  `json:"stockSegment" bson:"stockSegment"` // Hero | Normal | SlowMover | DeadStock
	UpdatedAt          int64   `json:"updatedAt" bson:"updatedAt"`
}

// Product là sản phẩm trong catalog của một tenant (products).
type Product struct {
	ID              primitive.ObjectID `json:"id,omitempty" bson:"_id,omitempty"`
	TenantID        primitive.ObjectID `json:"tenantId" bson:"tenantId" index:"single:1,compound:product_tenant_pid_unique"`
	ProductID       string             `json:"productId" bson:"productId" index:"compound:product_tenant_pid_unique"`
	Name            string             `json:"name" bson:"name"`
	Category        string             `json:"category" bson:"category" index:"single:1"`
	Subcategory     string             `json:"subcategory,omitempty" bson:"subcategory,omitempty"`
	Tags            []string           `json:"tags,omitempty" bson:"tags,omitempty"`
	Season          string             `json:"season,omitempty" bson:"season,omitempty"` // all | winter | summer | spring | autumn
	CurrentStock    int64              `json:"currentStock" bson:"currentStock"`
	Last30DaysSales int64              `json:"last30DaysSales" bson:"last30DaysSales"`
	UnitCost        float64            `json:"unitCost" bson:"unitCost"`
	UnitPrice       float64            `json:"unitPrice" bson:"unitPrice"`
	SourceURL       string             `json:"sourceUrl,omitempty" bson:"sourceUrl,omitempty"`
	Derived         *ProductDerived    `json:"derived,omitempty" bson:"derived,omitempty"`
	CreatedAt       int64              `json:"createdAt" bson:"createdAt"`
	UpdatedAt       int64              `json:"updatedAt" bson:"updatedAt"`
}
