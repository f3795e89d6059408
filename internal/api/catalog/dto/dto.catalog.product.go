// Package catalogdto - DTO cho domain catalog.
// TenantId không nhận từ body — luôn stamp từ context (header X-Tenant-Id).
package catalogdto

// ProductCreateInput dữ liệu đầu vào khi tạo sản phẩm.
type ProductCreateInput struct {
	ProductID       string   `json:"productId" validate:"required,no_xss"`
	Name            string   `json:"name" validate:"required,no_xss"`
	Category        string   `json:"category" validate:"required,no_xss"`
	Subcategory     string   `json:"subcategory,omitempty" validate:"omitempty,no_xss"`
	Tags            []string `json:"tags,omitempty" validate:"omitempty,dive,no_xss"`
	Season          string   `json:"season,omitempty" validate:"omitempty,oneof=all winter summer spring autumn"`
	CurrentStock    int64    `json:"currentStock" validate:"min=0"`
	Last30DaysSales int64    `json:"last30DaysSales" validate:"min=0"`
	UnitCost        float64  `json:"unitCost" validate:"min=0"`
	UnitPrice       float64  `json:"unitPrice" validate:"min=0"`
	SourceURL       string   `json:"sourceUrl,omitempty" validate:"omitempty,url"`
}

// ProductUpdateInput dữ liệu đầu vào khi cập nhật sản phẩm.
// Không cho sửa productId; khối derived chỉ engine được ghi.
type ProductUpdateInput struct {
	Name            string   `json:"name,omitempty" validate:"omitempty,no_xss"`
	Category        string   `json:"category,omitempty" validate:"omitempty,no_xss"`
	Subcategory     string   `json:"subcategory,omitempty" validate:"omitempty,no_xss"`
	Tags            []string `json:"tags,omitempty" validate:"omitempty,dive,no_xss"`
	Season          string   `json:"season,omitempty" validate:"omitempty,oneof=all winter summer spring autumn"`
	CurrentStock    int64    `json:"currentStock,omitempty" validate:"omitempty,min=0"`
	Last30DaysSales int64    `json:"last30DaysSales,omitempty" validate:"omitempty,min=0"`
	UnitCost        float64  `json:"unitCost,omitempty" validate:"omitempty,min=0"`
	UnitPrice       float64  `json:"unitPrice,omitempty" validate:"omitempty,min=0"`
	SourceURL       string   `json:"sourceUrl,omitempty" validate:"omitempty,url"`
}
