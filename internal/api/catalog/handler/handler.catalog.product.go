// Package cataloghdl - Handler domain catalog.
package cataloghdl

import (
	"fmt"
	"strconv"

	basehdl "retail_insights/internal/api/base/handler"
	catalogdto "retail_insights/internal/api/catalog/dto"
	catalogmodels "retail_insights/internal/api/catalog/models"
	catalogsvc "retail_insights/internal/api/catalog/service"
	"retail_insights/internal/common"
	"retail_insights/internal/global"

	"github.com/gofiber/fiber/v3"
)

// ProductHandler xử lý API sản phẩm: CRUD + refresh khối derived.
type ProductHandler struct {
	*basehdl.BaseHandler[catalogmodels.Product, catalogdto.ProductCreateInput, catalogdto.ProductUpdateInput]
	ProductService *catalogsvc.ProductService
}

// NewProductHandler tạo ProductHandler mới.
func NewProductHandler() (*ProductHandler, error) {
	svc, err := catalogsvc.NewProductService()
	if err != nil {
		return nil, fmt.Errorf("tạo ProductService: %w", err)
	}
	return &ProductHandler{
		BaseHandler:    basehdl.NewBaseHandler[catalogmodels.Product, catalogdto.ProductCreateInput, catalogdto.ProductUpdateInput](svc),
		ProductService: svc,
	}, nil
}

// HandleRefreshProduct xử lý POST /products/:productId/refresh — tính lại
// khối derived cho một sản phẩm. Lỗi calculator (vd đơn giá 0) trả về 422,
// khối derived hiện tại giữ nguyên.
func (h *ProductHandler) HandleRefreshProduct(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		tenantID := h.GetTenantID(c)
		productID := c.Params("productId")
		if productID == "" {
			h.HandleResponse(c, nil, common.NewError(
				common.ErrCodeValidationInput,
				"Thiếu productId",
				common.StatusBadRequest,
				nil,
			))
			return nil
		}
		product, err := h.ProductService.RefreshProduct(c.Context(), tenantID, productID)
		h.HandleResponse(c, product, err)
		return nil
	})
}

// HandleRefreshAllProducts xử lý POST /products/refresh-all.
// Query: mode=full|smart (mặc định theo cấu hình server), limit (0 = không giới hạn).
func (h *ProductHandler) HandleRefreshAllProducts(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		tenantID := h.GetTenantID(c)
		mode := c.Query("mode")
		if mode == "" {
			mode = global.MongoDB_ServerConfig.SegmentRefreshMode
		}
		limit, _ := strconv.Atoi(c.Query("limit", "0"))

		summary, err := h.ProductService.RefreshAllProducts(c.Context(), tenantID, mode, limit)
		h.HandleResponse(c, summary, err)
		return nil
	})
}
