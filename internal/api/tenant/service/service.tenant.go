// Package tenantsvc - Service quản lý tenant (tenants).
// Chịu trách nhiệm CRUD tenant và hợp nhất chính sách phân khúc
// (server defaults + tenant settings override).
package tenantsvc

import (
	"context"
	"fmt"

	basesvc "retail_insights/internal/api/base/service"
	tenantmodels "retail_insights/internal/api/tenant/models"
	"retail_insights/internal/common"
	"retail_insights/internal/global"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// SegmentPolicy là bộ ngưỡng phân khúc đã hợp nhất cho một tenant.
// Đây là đầu vào của các hàm Compute* bên catalog và crm.
type SegmentPolicy struct {
	MarginFloorPercent float64 // Sàn biên lợi nhuận (điểm %)
	BudgetUpliftFactor float64 // Hệ số ước tính ngân sách từ avgBasket
	StockDaysThreshold int     // Trên ngưỡng này là SlowMover / inventoryPressure
	HeroStockDaysMax   int     // Đến ngưỡng này (kèm điều kiện velocity) là Hero
	ChurnActiveDays    int     // Dưới ngưỡng này là Active
	ChurnWarmDays      int     // Đến ngưỡng này là Warm, trên là AtRisk
}

// DefaultPolicy trả về chính sách mặc định từ cấu hình server.
func DefaultPolicy() SegmentPolicy {
	cfg := global.MongoDB_ServerConfig
	return SegmentPolicy{
		MarginFloorPercent: cfg.MarginFloorPercent,
		BudgetUpliftFactor: cfg.BudgetUpliftFactor,
		StockDaysThreshold: cfg.StockDaysThreshold,
		HeroStockDaysMax:   cfg.HeroStockDaysMax,
		ChurnActiveDays:    cfg.ChurnActiveDays,
		ChurnWarmDays:      cfg.ChurnWarmDays,
	}
}

// TenantService xử lý logic tenant.
type TenantService struct {
	*basesvc.BaseServiceMongoImpl[tenantmodels.Tenant]
}

// NewTenantService tạo TenantService mới.
func NewTenantService() (*TenantService, error) {
	coll, exist := global.RegistryCollections.Get(global.MongoDB_ColNames.Tenants)
	if !exist {
		return nil, fmt.Errorf("không tìm thấy collection %s: %w", global.MongoDB_ColNames.Tenants, common.ErrNotFound)
	}
	return &TenantService{
		BaseServiceMongoImpl: basesvc.NewBaseServiceMongo[tenantmodels.Tenant](coll),
	}, nil
}

// ResolveSettings hợp nhất settings của tenant với chính sách mặc định.
// Trường nil trong settings giữ nguyên giá trị mặc định.
func ResolveSettings(tenant *tenantmodels.Tenant) SegmentPolicy {
	policy := DefaultPolicy()
	if tenant == nil || tenant.Settings == nil {
		return policy
	}
	s := tenant.Settings
	if s.MarginFloorPercent != nil {
		policy.MarginFloorPercent = *s.MarginFloorPercent
	}
	if s.BudgetUpliftFactor != nil {
		policy.BudgetUpliftFactor = *s.BudgetUpliftFactor
	}
	if s.StockDaysThreshold != nil {
		policy.StockDaysThreshold = *s.StockDaysThreshold
	}
	if s.HeroStockDaysMax != nil {
		policy.HeroStockDaysMax = *s.HeroStockDaysMax
	}
	if s.ChurnActiveDays != nil {
		policy.ChurnActiveDays = *s.ChurnActiveDays
	}
	if s.ChurnWarmDays != nil {
		policy.ChurnWarmDays = *s.ChurnWarmDays
	}
	return policy
}

// ResolvePolicyForTenant load tenant theo id rồi hợp nhất chính sách.
// Tenant không tồn tại → trả về chính sách mặc định (không phải lỗi:
// worker chạy nền vẫn phải refresh được dữ liệu mồ côi).
func (s *TenantService) ResolvePolicyForTenant(ctx context.Context, tenantID primitive.ObjectID) SegmentPolicy {
	tenant, err := s.FindOneById(ctx, tenantID)
	if err != nil {
		return DefaultPolicy()
	}
	return ResolveSettings(&tenant)
}

// ListActiveTenantIds trả về id của các tenant đang active (phục vụ worker refresh).
func (s *TenantService) ListActiveTenantIds(ctx context.Context) ([]primitive.ObjectID, error) {
	tenants, err := s.Find(ctx, bson.M{"status": "active"}, nil)
	if err != nil {
		return nil, err
	}
	ids := make([]primitive.ObjectID, 0, len(tenants))
	for _, t := range tenants {
		ids = append(ids, t.ID)
	}
	return ids, nil
}
