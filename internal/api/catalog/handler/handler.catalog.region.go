package cataloghdl

import (
	"fmt"

	basehdl "retail_insights/internal/api/base/handler"
	catalogmodels "retail_insights/internal/api/catalog/models"
	catalogsvc "retail_insights/internal/api/catalog/service"
)

// RegionHandler xử lý API region — chỉ đọc, dữ liệu được seed lúc khởi động.
type RegionHandler struct {
	*basehdl.BaseHandler[catalogmodels.Region, catalogmodels.Region, catalogmodels.Region]
	RegionService *catalogsvc.RegionService
}

// NewRegionHandler tạo RegionHandler mới.
func NewRegionHandler() (*RegionHandler, error) {
	svc, err := catalogsvc.NewRegionService()
	if err != nil {
		return nil, fmt.Errorf("tạo RegionService: %w", err)
	}
	return &RegionHandler{
		BaseHandler:   basehdl.NewBaseHandler[catalogmodels.Region, catalogmodels.Region, catalogmodels.Region](svc),
		RegionService: svc,
	}, nil
}
