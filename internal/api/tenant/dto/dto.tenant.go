// Package tenantdto - DTO cho domain tenant.
package tenantdto

import (
	tenantmodels "retail_insights/internal/api/tenant/models"
)

// TenantCreateInput dữ liệu đầu vào khi tạo tenant mới.
type TenantCreateInput struct {
	Name     string                       `json:"name" validate:"required,no_xss"`
	Slug     string                       `json:"slug" validate:"required,lowercase"`
	Status   string                       `json:"status" validate:"omitempty,oneof=active suspended"`
	Settings *tenantmodels.TenantSettings `json:"settings,omitempty" validate:"omitempty"`
}

// TenantUpdateInput dữ liệu đầu vào khi cập nhật tenant.
// Slug không cho đổi sau khi tạo.
type TenantUpdateInput struct {
	Name     string                       `json:"name" validate:"omitempty,no_xss"`
	Status   string                       `json:"status" validate:"omitempty,oneof=active suspended"`
	Settings *tenantmodels.TenantSettings `json:"settings,omitempty" validate:"omitempty"`
}
