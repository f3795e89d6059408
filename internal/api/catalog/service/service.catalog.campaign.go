package catalogsvc

import (
	"fmt"

	basesvc "retail_insights/internal/api/base/service"
	catalogmodels "retail_insights/internal/api/catalog/models"
	"retail_insights/internal/common"
	"retail_insights/internal/global"
)

// CampaignService xử lý CRUD campaign. Engine phân khúc không đọc/ghi campaign.
type CampaignService struct {
	*basesvc.BaseServiceMongoImpl[catalogmodels.Campaign]
}

// NewCampaignService tạo CampaignService mới.
func NewCampaignService() (*CampaignService, error) {
	coll, exist := global.RegistryCollections.Get(global.MongoDB_ColNames.Campaigns)
	if !exist {
		return nil, fmt.Errorf("không tìm thấy collection %s: %w", global.MongoDB_ColNames.Campaigns, common.ErrNotFound)
	}
	return &CampaignService{
		BaseServiceMongoImpl: basesvc.NewBaseServiceMongo[catalogmodels.Campaign](coll),
	}, nil
}
