// Package crmhdl - Handler API khách hàng.
package crmhdl

import (
	"fmt"
	"strconv"

	basehdl "retail_insights/internal/api/base/handler"
	crmdto "retail_insights/internal/api/crm/dto"
	crmmodels "retail_insights/internal/api/crm/models"
	crmvc "retail_insights/internal/api/crm/service"
	"retail_insights/internal/common"
	"retail_insights/internal/global"

	"github.com/gofiber/fiber/v3"
)

// CustomerHandler xử lý API khách hàng: CRUD + profile + refresh phân khúc.
type CustomerHandler struct {
	*basehdl.BaseHandler[crmmodels.Customer, crmdto.CustomerCreateInput, crmdto.CustomerUpdateInput]
	CustomerService *crmvc.CustomerService
}

// NewCustomerHandler tạo CustomerHandler mới.
func NewCustomerHandler() (*CustomerHandler, error) {
	svc, err := crmvc.NewCustomerService()
	if err != nil {
		return nil, fmt.Errorf("tạo CustomerService: %w", err)
	}
	return &CustomerHandler{
		BaseHandler:     basehdl.NewBaseHandler[crmmodels.Customer, crmdto.CustomerCreateInput, crmdto.CustomerUpdateInput](svc),
		CustomerService: svc,
	}, nil
}

// HandleGetProfile xử lý GET /customers/:customerId/profile.
func (h *CustomerHandler) HandleGetProfile(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		tenantID := h.GetTenantID(c)
		customerID := c.Params("customerId")
		if customerID == "" {
			h.HandleResponse(c, nil, common.NewError(
				common.ErrCodeValidationInput,
				"Thiếu customerId",
				common.StatusBadRequest,
				nil,
			))
			return nil
		}
		profile, err := h.CustomerService.GetProfile(c.Context(), tenantID, customerID)
		h.HandleResponse(c, profile, err)
		return nil
	})
}

// HandleRefreshCustomer xử lý POST /customers/:customerId/refresh — tính lại
// khối derived cho một khách. Khách chưa có lịch sử mua → skipped, không lỗi.
// City không thuộc region nào → 422, derived hiện tại giữ nguyên.
func (h *CustomerHandler) HandleRefreshCustomer(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		tenantID := h.GetTenantID(c)
		customerID := c.Params("customerId")
		if customerID == "" {
			h.HandleResponse(c, nil, common.NewError(
				common.ErrCodeValidationInput,
				"Thiếu customerId",
				common.StatusBadRequest,
				nil,
			))
			return nil
		}
		customer, skipped, err := h.CustomerService.RefreshCustomer(c.Context(), tenantID, customerID)
		if err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}
		h.HandleResponse(c, fiber.Map{"customer": customer, "skipped": skipped}, nil)
		return nil
	})
}

// HandleRefreshAllCustomers xử lý POST /customers/refresh-all.
// Query: mode=full|smart (mặc định theo cấu hình server), limit (0 = không giới hạn).
func (h *CustomerHandler) HandleRefreshAllCustomers(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		tenantID := h.GetTenantID(c)
		mode := c.Query("mode")
		if mode == "" {
			mode = global.MongoDB_ServerConfig.SegmentRefreshMode
		}
		limit, _ := strconv.Atoi(c.Query("limit", "0"))

		summary, err := h.CustomerService.RefreshAllCustomers(c.Context(), tenantID, mode, limit)
		h.HandleResponse(c, summary, err)
		return nil
	})
}
