// Package router đăng ký các route thuộc domain catalog: products, regions,
// campaigns, catalog-sources, import-history.
package router

import (
	"fmt"

	"github.com/gofiber/fiber/v3"

	cataloghdl "retail_insights/internal/api/catalog/handler"
	"retail_insights/internal/api/middleware"
	apirouter "retail_insights/internal/api/router"
)

// Register đăng ký tất cả route catalog lên v1.
func Register(v1 fiber.Router, r *apirouter.Router) error {
	productHandler, err := cataloghdl.NewProductHandler()
	if err != nil {
		return fmt.Errorf("tạo ProductHandler: %w", err)
	}
	regionHandler, err := cataloghdl.NewRegionHandler()
	if err != nil {
		return fmt.Errorf("tạo RegionHandler: %w", err)
	}
	campaignHandler, err := cataloghdl.NewCampaignHandler()
	if err != nil {
		return fmt.Errorf("tạo CampaignHandler: %w", err)
	}
	sourceHandler, err := cataloghdl.NewCatalogSourceHandler()
	if err != nil {
		return fmt.Errorf("tạo CatalogSourceHandler: %w", err)
	}
	importHandler, err := cataloghdl.NewImportHistoryHandler()
	if err != nil {
		return fmt.Errorf("tạo ImportHistoryHandler: %w", err)
	}

	r.RegisterCRUDRoutes(v1, "/products", productHandler, apirouter.ReadWriteConfig)
	r.RegisterCRUDRoutes(v1, "/regions", regionHandler, apirouter.ReadOnlyConfig)
	r.RegisterCRUDRoutes(v1, "/campaigns", campaignHandler, apirouter.ReadWriteConfig)
	r.RegisterCRUDRoutes(v1, "/catalog-sources", sourceHandler, apirouter.ReadWriteConfig)
	r.RegisterCRUDRoutes(v1, "/import-history", importHandler, apirouter.ReadOnlyConfig)

	tenantMiddleware := []fiber.Handler{middleware.TenantContextMiddleware()}

	// POST /products/refresh-all — refresh hàng loạt. Query: mode=full|smart, limit
	apirouter.RegisterRouteWithMiddleware(v1, "/products", "POST", "/refresh-all", tenantMiddleware, productHandler.HandleRefreshAllProducts)

	// POST /products/:productId/refresh — refresh một sản phẩm
	apirouter.RegisterRouteWithMiddleware(v1, "/products", "POST", "/:productId/refresh", tenantMiddleware, productHandler.HandleRefreshProduct)

	return nil
}
