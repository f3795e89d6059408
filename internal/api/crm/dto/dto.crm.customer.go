// Package crmdto - DTO cho domain khách hàng.
// TenantId không nhận từ body — luôn stamp từ context (header X-Tenant-Id).
package crmdto

import (
	catalogmodels "retail_insights/internal/api/catalog/models"
	crmmodels "retail_insights/internal/api/crm/models"
)

// CustomerCreateInput dữ liệu đầu vào khi tạo khách hàng.
type CustomerCreateInput struct {
	CustomerID     string                          `json:"customerId" validate:"required,no_xss"`
	Name           string                          `json:"name,omitempty" validate:"omitempty,no_xss"`
	City           string                          `json:"city" validate:"required,no_xss"`
	Age            int                             `json:"age,omitempty" validate:"omitempty,min=0,max=120"`
	Gender         string                          `json:"gender,omitempty" validate:"omitempty,oneof=F M U"`
	RegisteredAt   int64                           `json:"registeredAt" validate:"required,min=1"`
	ProductHistory []crmmodels.ProductHistoryEntry `json:"productHistory,omitempty"`
}

// CustomerUpdateInput dữ liệu đầu vào khi cập nhật khách hàng.
// Không cho sửa customerId; khối derived chỉ engine được ghi.
type CustomerUpdateInput struct {
	Name           string                          `json:"name,omitempty" validate:"omitempty,no_xss"`
	City           string                          `json:"city,omitempty" validate:"omitempty,no_xss"`
	Age            int                             `json:"age,omitempty" validate:"omitempty,min=0,max=120"`
	Gender         string                          `json:"gender,omitempty" validate:"omitempty,oneof=F M U"`
	ProductHistory []crmmodels.ProductHistoryEntry `json:"productHistory,omitempty"`
}

// CustomerProfileResponse là profile đầy đủ trả về cho client:
// trường gốc + derived + region của city.
type CustomerProfileResponse struct {
	Customer crmmodels.Customer    `json:"customer"`
	Region   *catalogmodels.Region `json:"region,omitempty"`
}
