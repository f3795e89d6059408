// Package router đăng ký các route thuộc domain khách hàng.
package router

import (
	"fmt"

	"github.com/gofiber/fiber/v3"

	crmhdl "retail_insights/internal/api/crm/handler"
	"retail_insights/internal/api/middleware"
	apirouter "retail_insights/internal/api/router"
)

// Register đăng ký tất cả route khách hàng lên v1.
func Register(v1 fiber.Router, r *apirouter.Router) error {
	customerHandler, err := crmhdl.NewCustomerHandler()
	if err != nil {
		return fmt.Errorf("tạo CustomerHandler: %w", err)
	}

	r.RegisterCRUDRoutes(v1, "/customers", customerHandler, apirouter.ReadWriteConfig)

	tenantMiddleware := []fiber.Handler{middleware.TenantContextMiddleware()}

	// POST /customers/refresh-all — refresh hàng loạt. Query: mode=full|smart, limit
	apirouter.RegisterRouteWithMiddleware(v1, "/customers", "POST", "/refresh-all", tenantMiddleware, customerHandler.HandleRefreshAllCustomers)

	// POST /customers/:customerId/refresh — refresh một khách
	apirouter.RegisterRouteWithMiddleware(v1, "/customers", "POST", "/:customerId/refresh", tenantMiddleware, customerHandler.HandleRefreshCustomer)

	// GET /customers/:customerId/profile — trường gốc + derived + region
	apirouter.RegisterRouteWithMiddleware(v1, "/customers", "GET", "/:customerId/profile", tenantMiddleware, customerHandler.HandleGetProfile)

	return nil
}
