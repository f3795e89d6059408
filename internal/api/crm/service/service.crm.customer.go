package crmvc

import (
	"context"
	"fmt"

	basesvc "retail_insights/internal/api/base/service"
	catalogsvc "retail_insights/internal/api/catalog/service"
	crmdto "retail_insights/internal/api/crm/dto"
	crmmodels "retail_insights/internal/api/crm/models"
	tenantsvc "retail_insights/internal/api/tenant/service"
	"retail_insights/internal/common"
	"retail_insights/internal/global"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// CustomerService xử lý logic khách hàng: CRUD, profile, refresh phân khúc.
type CustomerService struct {
	*basesvc.BaseServiceMongoImpl[crmmodels.Customer]
	tenantService *tenantsvc.TenantService
	regionService *catalogsvc.RegionService
}

// NewCustomerService tạo CustomerService mới.
func NewCustomerService() (*CustomerService, error) {
	coll, exist := global.RegistryCollections.Get(global.MongoDB_ColNames.Customers)
	if !exist {
		return nil, fmt.Errorf("không tìm thấy collection %s: %w", global.MongoDB_ColNames.Customers, common.ErrNotFound)
	}
	tenantService, err := tenantsvc.NewTenantService()
	if err != nil {
		return nil, err
	}
	regionService, err := catalogsvc.NewRegionService()
	if err != nil {
		return nil, err
	}
	return &CustomerService{
		BaseServiceMongoImpl: basesvc.NewBaseServiceMongo[crmmodels.Customer](coll),
		tenantService:        tenantService,
		regionService:        regionService,
	}, nil
}

// GetProfile trả về profile đầy đủ của khách: trường gốc + derived + region.
func (s *CustomerService) GetProfile(ctx context.Context, tenantID primitive.ObjectID, customerID string) (*crmdto.CustomerProfileResponse, error) {
	customer, err := s.FindOne(ctx, bson.M{"tenantId": tenantID, "customerId": customerID}, nil)
	if err != nil {
		return nil, err
	}

	profile := &crmdto.CustomerProfileResponse{Customer: customer}
	if region, err := s.regionService.ResolveRegionByCity(ctx, customer.City); err == nil {
		profile.Region = region
	}
	return profile, nil
}
