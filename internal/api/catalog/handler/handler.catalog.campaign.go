package cataloghdl

import (
	"fmt"

	basehdl "retail_insights/internal/api/base/handler"
	catalogdto "retail_insights/internal/api/catalog/dto"
	catalogmodels "retail_insights/internal/api/catalog/models"
	catalogsvc "retail_insights/internal/api/catalog/service"
)

// CampaignHandler xử lý API campaign.
type CampaignHandler struct {
	*basehdl.BaseHandler[catalogmodels.Campaign, catalogdto.CampaignCreateInput, catalogdto.CampaignUpdateInput]
	CampaignService *catalogsvc.CampaignService
}

// NewCampaignHandler tạo CampaignHandler mới.
func NewCampaignHandler() (*CampaignHandler, error) {
	svc, err := catalogsvc.NewCampaignService()
	if err != nil {
		return nil, fmt.Errorf("tạo CampaignService: %w", err)
	}
	return &CampaignHandler{
		BaseHandler:     basehdl.NewBaseHandler[catalogmodels.Campaign, catalogdto.CampaignCreateInput, catalogdto.CampaignUpdateInput](svc),
		CampaignService: svc,
	}, nil
}
