// Package router đăng ký các route thuộc domain tenant.
package router

import (
	"fmt"

	"github.com/gofiber/fiber/v3"

	apirouter "retail_insights/internal/api/router"
	tenanthdl "retail_insights/internal/api/tenant/handler"
)

// Register đăng ký tất cả route tenant lên v1.
// Các route tenant KHÔNG đi qua TenantContextMiddleware — đây là tài nguyên
// cấp hệ thống, client quản trị gọi trước khi có tenant nào tồn tại.
func Register(v1 fiber.Router, r *apirouter.Router) error {
	tenantHandler, err := tenanthdl.NewTenantHandler()
	if err != nil {
		return fmt.Errorf("tạo TenantHandler: %w", err)
	}

	var noMiddleware []fiber.Handler

	apirouter.RegisterRouteWithMiddleware(v1, "/tenants", "POST", "/insert-one", noMiddleware, tenantHandler.InsertOne)
	apirouter.RegisterRouteWithMiddleware(v1, "/tenants", "GET", "/find", noMiddleware, tenantHandler.Find)
	apirouter.RegisterRouteWithMiddleware(v1, "/tenants", "GET", "/find-by-id/:id", noMiddleware, tenantHandler.FindOneById)
	apirouter.RegisterRouteWithMiddleware(v1, "/tenants", "GET", "/find-with-pagination", noMiddleware, tenantHandler.FindWithPagination)
	apirouter.RegisterRouteWithMiddleware(v1, "/tenants", "PUT", "/update-by-id/:id", noMiddleware, tenantHandler.UpdateById)
	apirouter.RegisterRouteWithMiddleware(v1, "/tenants", "DELETE", "/delete-by-id/:id", noMiddleware, tenantHandler.DeleteById)

	// GET /tenants/:id/settings — chính sách phân khúc đã hợp nhất
	apirouter.RegisterRouteWithMiddleware(v1, "/tenants", "GET", "/:id/settings", noMiddleware, tenantHandler.HandleGetSettings)

	return nil
}
