package crmvc

import (
	"context"
	"fmt"

	basesvc "retail_insights/internal/api/base/service"
	crmmodels "retail_insights/internal/api/crm/models"
	"retail_insights/internal/logger"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// RefreshSummary tổng hợp kết quả một lượt refresh khách hàng hàng loạt.
type RefreshSummary struct {
	Processed int      `json:"processed"`
	Succeeded int      `json:"succeeded"`
	Skipped   int      `json:"skipped"`
	Failed    int      `json:"failed"`
	Errors    []string `json:"errors,omitempty"`
}

// RefreshCustomer tính lại khối derived cho một khách theo customerId.
// Chỉ $set derived — trường gốc không bao giờ bị chạm tới.
// productHistory rỗng → skipped=true, không ghi gì (khách chưa mua không có metrics).
// City không resolve được region → ErrUnresolvedRegion, derived giữ nguyên.
func (s *CustomerService) RefreshCustomer(ctx context.Context, tenantID primitive.ObjectID, customerID string) (*crmmodels.Customer, bool, error) {
	filter := bson.M{"tenantId": tenantID, "customerId": customerID}
	customer, err := s.FindOne(ctx, filter, nil)
	if err != nil {
		return nil, false, err
	}

	if len(customer.ProductHistory) == 0 {
		return &customer, true, nil
	}

	region, err := s.regionService.ResolveRegionByCity(ctx, customer.City)
	if err != nil {
		return nil, false, err
	}

	policy := s.tenantService.ResolvePolicyForTenant(ctx, tenantID)
	derived := ComputeCustomerDerived(&customer, region, policy, 0)

	// Ghi updatedAt gốc cùng mốc với derived.updatedAt để bản ghi vừa
	// refresh không còn thỏa điều kiện stale (updatedAt > derived.updatedAt)
	updated, err := s.UpdateOne(ctx, filter, &basesvc.UpdateData{
		Set: bson.M{"derived": derived, "updatedAt": derived.UpdatedAt},
	}, nil)
	if err != nil {
		return nil, false, err
	}
	return &updated, false, nil
}

// CustomerNeedsRefresh báo bản ghi có cần tính lại derived không: chưa có
// derived hoặc trường gốc đã đổi sau lần tính gần nhất. Cùng điều kiện với
// smart mode của ListCustomerIdsForRefresh — refresh hook dùng hàm này để
// không tự kích hoạt lại trên event do chính lượt refresh phát ra.
func CustomerNeedsRefresh(c *crmmodels.Customer) bool {
	return c.Derived == nil || c.UpdatedAt > c.Derived.UpdatedAt
}

// ListCustomerIdsForRefresh trả về customerId cần refresh của tenant.
// mode "full": tất cả. mode "smart": chỉ bản ghi chưa có derived
// hoặc trường gốc đã đổi sau lần tính gần nhất (updatedAt > derived.updatedAt).
func (s *CustomerService) ListCustomerIdsForRefresh(ctx context.Context, tenantID primitive.ObjectID, mode string) ([]string, error) {
	filter := bson.M{"tenantId": tenantID}
	if mode == "smart" {
		filter["$or"] = []bson.M{
			{"derived": bson.M{"$exists": false}},
			{"$expr": bson.M{"$gt": []string{"$updatedAt", "$derived.updatedAt"}}},
		}
	}
	customers, err := s.Find(ctx, filter, nil)
	if err != nil {
		return nil, err
	}
	ids := make([]string, 0, len(customers))
	for _, c := range customers {
		ids = append(ids, c.CustomerID)
	}
	return ids, nil
}

// RefreshAllCustomers refresh toàn bộ khách của tenant.
// limit > 0 giới hạn số bản ghi mỗi lượt (batch của worker).
// Một khách lỗi không làm dừng các khách còn lại.
func (s *CustomerService) RefreshAllCustomers(ctx context.Context, tenantID primitive.ObjectID, mode string, limit int) (*RefreshSummary, error) {
	ids, err := s.ListCustomerIdsForRefresh(ctx, tenantID, mode)
	if err != nil {
		return nil, err
	}
	if limit > 0 && len(ids) > limit {
		ids = ids[:limit]
	}

	summary := &RefreshSummary{}
	for _, customerID := range ids {
		summary.Processed++
		_, skipped, err := s.RefreshCustomer(ctx, tenantID, customerID)
		if err != nil {
			summary.Failed++
			summary.Errors = append(summary.Errors, fmt.Sprintf("%s: %v", customerID, err))
			logger.GetAppLogger().Warnf("Refresh khách hàng %s thất bại: %v", customerID, err)
			continue
		}
		if skipped {
			summary.Skipped++
			continue
		}
		summary.Succeeded++
	}
	return summary, nil
}
