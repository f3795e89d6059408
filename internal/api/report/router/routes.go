// Package router đăng ký các route thuộc domain báo cáo.
package router

import (
	"fmt"

	"github.com/gofiber/fiber/v3"

	"retail_insights/internal/api/middleware"
	reporthdl "retail_insights/internal/api/report/handler"
	apirouter "retail_insights/internal/api/router"
)

// Register đăng ký tất cả route báo cáo lên v1.
func Register(v1 fiber.Router, r *apirouter.Router) error {
	reportHandler, err := reporthdl.NewReportHandler()
	if err != nil {
		return fmt.Errorf("tạo ReportHandler: %w", err)
	}

	tenantMiddleware := []fiber.Handler{middleware.TenantContextMiddleware()}

	apirouter.RegisterRouteWithMiddleware(v1, "/reports", "GET", "/segments", tenantMiddleware, reportHandler.HandleSegments)
	apirouter.RegisterRouteWithMiddleware(v1, "/reports", "GET", "/stock", tenantMiddleware, reportHandler.HandleStock)
	apirouter.RegisterRouteWithMiddleware(v1, "/reports", "GET", "/categories", tenantMiddleware, reportHandler.HandleCategories)
	apirouter.RegisterRouteWithMiddleware(v1, "/reports", "GET", "/regions", tenantMiddleware, reportHandler.HandleRegions)
	apirouter.RegisterRouteWithMiddleware(v1, "/reports", "GET", "/dashboard", tenantMiddleware, reportHandler.HandleDashboard)

	return nil
}
