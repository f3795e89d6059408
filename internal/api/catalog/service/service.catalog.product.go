package catalogsvc

import (
	"context"
	"fmt"

	basesvc "retail_insights/internal/api/base/service"
	catalogmodels "retail_insights/internal/api/catalog/models"
	tenantsvc "retail_insights/internal/api/tenant/service"
	"retail_insights/internal/common"
	"retail_insights/internal/global"
	"retail_insights/internal/logger"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// RefreshSummary tổng hợp kết quả một lượt refresh hàng loạt.
// Lỗi của từng bản ghi được gom lại, không làm dừng cả batch.
type RefreshSummary struct {
	Processed int      `json:"processed"`
	Succeeded int      `json:"succeeded"`
	Skipped   int      `json:"skipped"`
	Failed    int      `json:"failed"`
	Errors    []string `json:"errors,omitempty"`
}

// ProductService xử lý logic sản phẩm: CRUD + refresh khối derived.
type ProductService struct {
	*basesvc.BaseServiceMongoImpl[catalogmodels.Product]
	tenantService *tenantsvc.TenantService
}

// NewProductService tạo ProductService mới.
func NewProductService() (*ProductService, error) {
	coll, exist := global.RegistryCollections.Get(global.MongoDB_ColNames.Products)
	if !exist {
		return nil, fmt.Errorf("không tìm thấy collection %s: %w", global.MongoDB_ColNames.Products, common.ErrNotFound)
	}
	tenantService, err := tenantsvc.NewTenantService()
	if err != nil {
		return nil, err
	}
	return &ProductService{
		BaseServiceMongoImpl: basesvc.NewBaseServiceMongo[catalogmodels.Product](coll),
		tenantService:        tenantService,
	}, nil
}

// RefreshProduct tính lại khối derived cho một sản phẩm theo productId.
// Chỉ $set derived — trường gốc không bao giờ bị chạm tới.
// Calculator lỗi (vd unitPrice = 0) → derived giữ nguyên, lỗi trả về caller.
func (s *ProductService) RefreshProduct(ctx context.Context, tenantID primitive.ObjectID, productID string) (*catalogmodels.Product, error) {
	filter := bson.M{"tenantId": tenantID, "productId": productID}
	product, err := s.FindOne(ctx, filter, nil)
	if err != nil {
		return nil, err
	}

	policy := s.tenantService.ResolvePolicyForTenant(ctx, tenantID)
	derived, err := ComputeProductDerived(&product, policy)
	if err != nil {
		return nil, err
	}

	// Ghi updatedAt gốc cùng mốc với derived.updatedAt để bản ghi vừa
	// refresh không còn thỏa điều kiện stale (updatedAt > derived.updatedAt)
	updated, err := s.UpdateOne(ctx, filter, &basesvc.UpdateData{
		Set: bson.M{"derived": derived, "updatedAt": derived.UpdatedAt},
	}, nil)
	if err != nil {
		return nil, err
	}
	return &updated, nil
}

// ProductNeedsRefresh báo bản ghi có cần tính lại derived không: chưa có
// derived hoặc trường gốc đã đổi sau lần tính gần nhất. Cùng điều kiện với
// smart mode của ListProductIdsForRefresh — refresh hook dùng hàm này để
// không tự kích hoạt lại trên event do chính lượt refresh phát ra.
func ProductNeedsRefresh(p *catalogmodels.Product) bool {
	return p.Derived == nil || p.UpdatedAt > p.Derived.UpdatedAt
}

// ListProductIdsForRefresh trả về productId cần refresh của tenant.
// mode "full": tất cả. mode "smart": chỉ bản ghi chưa có derived
// hoặc trường gốc đã đổi sau lần tính gần nhất (updatedAt > derived.updatedAt).
func (s *ProductService) ListProductIdsForRefresh(ctx context.Context, tenantID primitive.ObjectID, mode string) ([]string, error) {
	filter := bson.M{"tenantId": tenantID}
	if mode == "smart" {
		filter["$or"] = []bson.M{
			{"derived": bson.M{"$exists": false}},
			{"$expr": bson.M{"$gt": []string{"$updatedAt", "$derived.updatedAt"}}},
		}
	}
	products, err := s.Find(ctx, filter, nil)
	if err != nil {
		return nil, err
	}
	ids := make([]string, 0, len(products))
	for _, p := range products {
		ids = append(ids, p.ProductID)
	}
	return ids, nil
}

// RefreshAllProducts refresh toàn bộ sản phẩm của tenant.
// limit > 0 giới hạn số bản ghi mỗi lượt (batch của worker).
// Một sản phẩm lỗi không làm dừng các sản phẩm còn lại.
func (s *ProductService) RefreshAllProducts(ctx context.Context, tenantID primitive.ObjectID, mode string, limit int) (*RefreshSummary, error) {
	ids, err := s.ListProductIdsForRefresh(ctx, tenantID, mode)
	if err != nil {
		return nil, err
	}
	if limit > 0 && len(ids) > limit {
		ids = ids[:limit]
	}

	summary := &RefreshSummary{}
	for _, productID := range ids {
		summary.Processed++
		if _, err := s.RefreshProduct(ctx, tenantID, productID); err != nil {
			summary.Failed++
			summary.Errors = append(summary.Errors, fmt.Sprintf("%s: %v", productID, err))
			logger.GetAppLogger().Warnf("Refresh sản phẩm %s thất bại: %v", productID, err)
			continue
		}
		summary.Succeeded++
	}
	return summary, nil
}
