package main

import (
	"context"

	"github.com/sirupsen/logrus"

	"retail_insights/config"
	catalogmodels "retail_insights/internal/api/catalog/models"
	crmmodels "retail_insights/internal/api/crm/models"
	tenantmodels "retail_insights/internal/api/tenant/models"
	"retail_insights/internal/database"
	"retail_insights/internal/global"
)

// Hàm khởi tạo các biến toàn cục
func InitGlobal() {
	initColNames()         // Khởi tạo tên các collection trong database
	initValidator()        // Khởi tạo validator
	initConfig()           // Khởi tạo cấu hình server
	initDatabase_MongoDB() // Khởi tạo kết nối database
}

// Hàm khởi tạo tên các collection trong database
func initColNames() {
	global.MongoDB_ColNames.Tenants = "tenants"
	global.MongoDB_ColNames.Regions = "regions"
	global.MongoDB_ColNames.Products = "products"
	global.MongoDB_ColNames.Customers = "customers"
	global.MongoDB_ColNames.Campaigns = "campaigns"
	global.MongoDB_ColNames.CatalogSources = "catalog_sources"
	global.MongoDB_ColNames.ImportHistory = "import_history"

	logrus.Info("Initialized collection names") // Ghi log thông báo đã khởi tạo tên các collection
}

// Hàm khởi tạo validator (dùng global.InitValidator để đăng ký custom validators: no_xss, object_id, các segment validator, ...)
func initValidator() {
	global.InitValidator()
	logrus.Info("Initialized validator") // Ghi log thông báo đã khởi tạo validator
}

// Hàm khởi tạo cấu hình server
func initConfig() {
	global.MongoDB_ServerConfig = config.NewConfig()
	if global.MongoDB_ServerConfig == nil {
		logrus.Fatalf("Failed to initialize config: config is nil") // Ghi log lỗi nếu khởi tạo cấu hình thất bại
	}
	logrus.Info("Initialized server config") // Ghi log thông báo đã khởi tạo cấu hình server
}

// Hàm khởi tạo kết nối database
func initDatabase_MongoDB() {
	var err error
	global.MongoDB_Session, err = database.GetInstance(global.MongoDB_ServerConfig)
	if err != nil {
		logrus.Fatalf("Failed to get database instance: %v", err) // Ghi log lỗi nếu kết nối database thất bại
	}
	logrus.Info("Connected to MongoDB") // Ghi log thông báo đã kết nối database thành công

	// Khởi tạo các db và collections nếu chưa có
	database.EnsureDatabaseAndCollections(global.MongoDB_Session)
	logrus.Info("Ensured database and collections") // Ghi log thông báo đã đảm bảo database và các collection

	// Khởi tạo các index cho các collection theo tag `index:` trên model
	dbName := global.MongoDB_ServerConfig.MongoDB_DBName
	db := global.MongoDB_Session.Database(dbName)
	database.CreateIndexes(context.TODO(), db.Collection(global.MongoDB_ColNames.Tenants), tenantmodels.Tenant{})
	database.CreateIndexes(context.TODO(), db.Collection(global.MongoDB_ColNames.Regions), catalogmodels.Region{})
	database.CreateIndexes(context.TODO(), db.Collection(global.MongoDB_ColNames.Products), catalogmodels.Product{})
	database.CreateIndexes(context.TODO(), db.Collection(global.MongoDB_ColNames.Customers), crmmodels.Customer{})
	database.CreateIndexes(context.TODO(), db.Collection(global.MongoDB_ColNames.Campaigns), catalogmodels.Campaign{})
	database.CreateIndexes(context.TODO(), db.Collection(global.MongoDB_ColNames.CatalogSources), catalogmodels.CatalogSource{})
	database.CreateIndexes(context.TODO(), db.Collection(global.MongoDB_ColNames.ImportHistory), catalogmodels.ImportHistory{})

	// Index bổ sung trên các field derived (tag `index:` chỉ áp dụng cho field cấp 1)
	if err := database.CreateSegmentAdditionalIndexes(context.TODO(), db); err != nil {
		logrus.Warnf("Failed to create segment indexes: %v", err)
	}
}
