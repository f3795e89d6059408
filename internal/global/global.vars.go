package global

import (
	"github.com/go-playground/validator/v10"
	"go.mongodb.org/mongo-driver/mongo"

	"retail_insights/config"
	"retail_insights/internal/registry"
)

// CollectionName chứa tên các collection trong MongoDB
type CollectionName struct {
	Tenants        string // Tên collection cho tenant (khách hàng của platform)
	Regions        string // Tên collection cho region tham chiếu (shared, seeded)
	Products       string // Tên collection cho sản phẩm tồn kho
	Customers      string // Tên collection cho shopper profile + productHistory
	Campaigns      string // Tên collection cho campaign (đầu ra của hệ thống gợi ý)
	CatalogSources string // Tên collection cho nguồn import catalog
	ImportHistory  string // Tên collection cho lịch sử import
}

// Các biến toàn cục
var Validate *validator.Validate                // Biến để xác thực dữ liệu
var MongoDB_Session *mongo.Client               // Phiên kết nối tới MongoDB
var MongoDB_ServerConfig *config.Configuration  // Cấu hình của server
var MongoDB_ColNames = *new(CollectionName)     // Tên các collection

// Các Registry
var RegistryCollections = registry.NewRegistry[*mongo.Collection]() // Registry chứa các collections
var RegistryDatabase = registry.NewRegistry[*mongo.Database]()      // Registry chứa các databases
