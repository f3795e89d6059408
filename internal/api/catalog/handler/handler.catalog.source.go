package cataloghdl

import (
	"fmt"

	basehdl "retail_insights/internal/api/base/handler"
	catalogdto "retail_insights/internal/api/catalog/dto"
	catalogmodels "retail_insights/internal/api/catalog/models"
	catalogsvc "retail_insights/internal/api/catalog/service"
)

// CatalogSourceHandler xử lý API nguồn import catalog.
type CatalogSourceHandler struct {
	*basehdl.BaseHandler[catalogmodels.CatalogSource, catalogdto.CatalogSourceCreateInput, catalogdto.CatalogSourceUpdateInput]
	SourceService *catalogsvc.CatalogSourceService
}

// NewCatalogSourceHandler tạo CatalogSourceHandler mới.
func NewCatalogSourceHandler() (*CatalogSourceHandler, error) {
	svc, err := catalogsvc.NewCatalogSourceService()
	if err != nil {
		return nil, fmt.Errorf("tạo CatalogSourceService: %w", err)
	}
	return &CatalogSourceHandler{
		BaseHandler:   basehdl.NewBaseHandler[catalogmodels.CatalogSource, catalogdto.CatalogSourceCreateInput, catalogdto.CatalogSourceUpdateInput](svc),
		SourceService: svc,
	}, nil
}

// ImportHistoryHandler xử lý API lịch sử import — chỉ đọc, pipeline import ghi.
type ImportHistoryHandler struct {
	*basehdl.BaseHandler[catalogmodels.ImportHistory, catalogmodels.ImportHistory, catalogmodels.ImportHistory]
	ImportService *catalogsvc.ImportHistoryService
}

// NewImportHistoryHandler tạo ImportHistoryHandler mới.
func NewImportHistoryHandler() (*ImportHistoryHandler, error) {
	svc, err := catalogsvc.NewImportHistoryService()
	if err != nil {
		return nil, fmt.Errorf("tạo ImportHistoryService: %w", err)
	}
	return &ImportHistoryHandler{
		BaseHandler:   basehdl.NewBaseHandler[catalogmodels.ImportHistory, catalogmodels.ImportHistory, catalogmodels.ImportHistory](svc),
		ImportService: svc,
	}, nil
}
