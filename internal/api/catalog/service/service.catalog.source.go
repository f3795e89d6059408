package catalogsvc

import (
	"fmt"

	basesvc "retail_insights/internal/api/base/service"
	catalogmodels "retail_insights/internal/api/catalog/models"
	"retail_insights/internal/common"
	"retail_insights/internal/global"
)

// CatalogSourceService xử lý CRUD nguồn import catalog.
type CatalogSourceService struct {
	*basesvc.BaseServiceMongoImpl[catalogmodels.CatalogSource]
}

// NewCatalogSourceService tạo CatalogSourceService mới.
func NewCatalogSourceService() (*CatalogSourceService, error) {
	coll, exist := global.RegistryCollections.Get(global.MongoDB_ColNames.CatalogSources)
	if !exist {
		return nil, fmt.Errorf("không tìm thấy collection %s: %w", global.MongoDB_ColNames.CatalogSources, common.ErrNotFound)
	}
	return &CatalogSourceService{
		BaseServiceMongoImpl: basesvc.NewBaseServiceMongo[catalogmodels.CatalogSource](coll),
	}, nil
}

// ImportHistoryService xử lý lịch sử import (hệ thống ghi, API chỉ đọc).
type ImportHistoryService struct {
	*basesvc.BaseServiceMongoImpl[catalogmodels.ImportHistory]
}

// NewImportHistoryService tạo ImportHistoryService mới.
func NewImportHistoryService() (*ImportHistoryService, error) {
	coll, exist := global.RegistryCollections.Get(global.MongoDB_ColNames.ImportHistory)
	if !exist {
		return nil, fmt.Errorf("không tìm thấy collection %s: %w", global.MongoDB_ColNames.ImportHistory, common.ErrNotFound)
	}
	return &ImportHistoryService{
		BaseServiceMongoImpl: basesvc.NewBaseServiceMongo[catalogmodels.ImportHistory](coll),
	}, nil
}
