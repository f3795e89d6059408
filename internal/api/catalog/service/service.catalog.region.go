package catalogsvc

import (
	"context"
	"errors"
	"fmt"

	basesvc "retail_insights/internal/api/base/service"
	catalogmodels "retail_insights/internal/api/catalog/models"
	"retail_insights/internal/common"
	"retail_insights/internal/global"

	"go.mongodb.org/mongo-driver/bson"
)

// RegionService xử lý dữ liệu tham chiếu region (dùng chung, không theo tenant).
type RegionService struct {
	*basesvc.BaseServiceMongoImpl[catalogmodels.Region]
}

// NewRegionService tạo RegionService mới.
func NewRegionService() (*RegionService, error) {
	coll, exist := global.RegistryCollections.Get(global.MongoDB_ColNames.Regions)
	if !exist {
		return nil, fmt.Errorf("không tìm thấy collection %s: %w", global.MongoDB_ColNames.Regions, common.ErrNotFound)
	}
	return &RegionService{
		BaseServiceMongoImpl: basesvc.NewBaseServiceMongo[catalogmodels.Region](coll),
	}, nil
}

// ResolveRegionByCity tìm region chứa city (mỗi city thuộc đúng một region).
// City không thuộc region nào → ErrUnresolvedRegion.
func (s *RegionService) ResolveRegionByCity(ctx context.Context, city string) (*catalogmodels.Region, error) {
	region, err := s.FindOne(ctx, bson.M{"cities": city}, nil)
	if err != nil {
		if errors.Is(err, common.ErrNotFound) {
			return nil, common.ErrUnresolvedRegion
		}
		return nil, err
	}
	return &region, nil
}
