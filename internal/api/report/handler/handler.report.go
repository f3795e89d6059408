// Package reporthdl - Handler API báo cáo tổng hợp.
package reporthdl

import (
	"fmt"

	basehdl "retail_insights/internal/api/base/handler"
	reportsvc "retail_insights/internal/api/report/service"

	"github.com/gofiber/fiber/v3"
)

// ReportHandler xử lý API báo cáo. Chỉ đọc dữ liệu derived đã persist.
type ReportHandler struct {
	*basehdl.BaseHandler[interface{}, interface{}, interface{}]
	ReportService *reportsvc.ReportService
}

// NewReportHandler tạo ReportHandler mới.
func NewReportHandler() (*ReportHandler, error) {
	svc, err := reportsvc.NewReportService()
	if err != nil {
		return nil, fmt.Errorf("tạo ReportService: %w", err)
	}
	return &ReportHandler{
		BaseHandler:   &basehdl.BaseHandler[interface{}, interface{}, interface{}]{},
		ReportService: svc,
	}, nil
}

// HandleSegments xử lý GET /reports/segments — phân bố (churn, value) của khách.
func (h *ReportHandler) HandleSegments(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		rows, err := h.ReportService.GetSegmentDistribution(c.Context(), h.GetTenantID(c))
		h.HandleResponse(c, rows, err)
		return nil
	})
}

// HandleStock xử lý GET /reports/stock — phân bố tồn kho theo stockSegment.
func (h *ReportHandler) HandleStock(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		rows, err := h.ReportService.GetStockDistribution(c.Context(), h.GetTenantID(c))
		h.HandleResponse(c, rows, err)
		return nil
	})
}

// HandleCategories xử lý GET /reports/categories — doanh thu theo category.
func (h *ReportHandler) HandleCategories(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		rows, err := h.ReportService.GetCategoryRevenue(c.Context(), h.GetTenantID(c))
		h.HandleResponse(c, rows, err)
		return nil
	})
}

// HandleRegions xử lý GET /reports/regions — hiệu suất theo region.
func (h *ReportHandler) HandleRegions(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		rows, err := h.ReportService.GetRegionPerformance(c.Context(), h.GetTenantID(c))
		h.HandleResponse(c, rows, err)
		return nil
	})
}

// HandleDashboard xử lý GET /reports/dashboard — gộp cả bốn báo cáo.
func (h *ReportHandler) HandleDashboard(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		result, err := h.ReportService.GetDashboard(c.Context(), h.GetTenantID(c))
		h.HandleResponse(c, result, err)
		return nil
	})
}
