// Package tenanthdl - Handler quản trị tenant.
package tenanthdl

import (
	"fmt"

	basehdl "retail_insights/internal/api/base/handler"
	tenantdto "retail_insights/internal/api/tenant/dto"
	tenantmodels "retail_insights/internal/api/tenant/models"
	tenantsvc "retail_insights/internal/api/tenant/service"

	"github.com/gofiber/fiber/v3"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// TenantHandler xử lý API quản trị tenant.
// Tenant là tài nguyên cấp hệ thống: các route của nó KHÔNG đi qua
// TenantContextMiddleware (client chưa có tenant để gửi header).
type TenantHandler struct {
	*basehdl.BaseHandler[tenantmodels.Tenant, tenantdto.TenantCreateInput, tenantdto.TenantUpdateInput]
	TenantService *tenantsvc.TenantService
}

// NewTenantHandler tạo TenantHandler mới.
func NewTenantHandler() (*TenantHandler, error) {
	svc, err := tenantsvc.NewTenantService()
	if err != nil {
		return nil, fmt.Errorf("tạo TenantService: %w", err)
	}
	return &TenantHandler{
		BaseHandler:   basehdl.NewBaseHandler[tenantmodels.Tenant, tenantdto.TenantCreateInput, tenantdto.TenantUpdateInput](svc),
		TenantService: svc,
	}, nil
}

// HandleGetSettings xử lý GET /tenants/:id/settings — trả về chính sách phân khúc
// đã hợp nhất (defaults + override) của tenant.
func (h *TenantHandler) HandleGetSettings(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		tenantID, err := primitive.ObjectIDFromHex(c.Params("id"))
		if err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}
		tenant, err := h.TenantService.FindOneById(c.Context(), tenantID)
		if err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}
		policy := tenantsvc.ResolveSettings(&tenant)
		h.HandleResponse(c, fiber.Map{
			"tenantId":           tenant.ID,
			"marginFloorPercent": policy.MarginFloorPercent,
			"budgetUpliftFactor": policy.BudgetUpliftFactor,
			"stockDaysThreshold": policy.StockDaysThreshold,
			"heroStockDaysMax":   policy.HeroStockDaysMax,
			"churnActiveDays":    policy.ChurnActiveDays,
			"churnWarmDays":      policy.ChurnWarmDays,
		}, nil)
		return nil
	})
}
