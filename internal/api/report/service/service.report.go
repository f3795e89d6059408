// Package reportsvc - Báo cáo tổng hợp trên dữ liệu derived đã persist.
// Chỉ đọc: không pipeline nào được kích hoạt tính lại derived — dữ liệu cũ
// là trách nhiệm của caller (gọi refresh trước khi xem báo cáo nếu cần).
package reportsvc

import (
	"context"
	"fmt"

	reportdto "retail_insights/internal/api/report/dto"
	"retail_insights/internal/common"
	"retail_insights/internal/global"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

// ReportService chạy các pipeline aggregate trên customers và products.
type ReportService struct {
	customerColl *mongo.Collection
	productColl  *mongo.Collection
}

// NewReportService tạo ReportService mới.
func NewReportService() (*ReportService, error) {
	customerColl, ok := global.RegistryCollections.Get(global.MongoDB_ColNames.Customers)
	if !ok {
		return nil, fmt.Errorf("không tìm thấy collection %s: %w", global.MongoDB_ColNames.Customers, common.ErrNotFound)
	}
	productColl, ok := global.RegistryCollections.Get(global.MongoDB_ColNames.Products)
	if !ok {
		return nil, fmt.Errorf("không tìm thấy collection %s: %w", global.MongoDB_ColNames.Products, common.ErrNotFound)
	}
	return &ReportService{
		customerColl: customerColl,
		productColl:  productColl,
	}, nil
}

// aggregateInto chạy pipeline và decode toàn bộ kết quả vào rows.
func aggregateInto[Row any](ctx context.Context, coll *mongo.Collection, pipeline []bson.M) ([]Row, error) {
	cursor, err := coll.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, common.ConvertMongoError(err)
	}
	defer cursor.Close(ctx)

	rows := []Row{}
	if err := cursor.All(ctx, &rows); err != nil {
		return nil, common.ConvertMongoError(err)
	}
	return rows, nil
}

// GetSegmentDistribution phân bố khách theo (churnSegment, valueSegment):
// số lượng, chi tiêu trung bình, giỏ hàng trung bình. Sắp xếp theo count giảm dần.
func (s *ReportService) GetSegmentDistribution(ctx context.Context, tenantID primitive.ObjectID) ([]reportdto.SegmentDistributionRow, error) {
	pipeline := []bson.M{
		{"$match": bson.M{"tenantId": tenantID, "derived": bson.M{"$exists": true}}},
		{"$group": bson.M{
			"_id": bson.M{
				"churn": "$derived.churnSegment",
				"value": "$derived.valueSegment",
			},
			"count":     bson.M{"$sum": 1},
			"avgSpent":  bson.M{"$avg": "$derived.totalSpent"},
			"avgBasket": bson.M{"$avg": "$derived.avgBasket"},
		}},
		{"$sort": bson.M{"count": -1}},
	}
	return aggregateInto[reportdto.SegmentDistributionRow](ctx, s.customerColl, pipeline)
}

// GetStockDistribution phân bố sản phẩm theo stockSegment:
// số lượng, tổng tồn kho, stockDays trung bình.
func (s *ReportService) GetStockDistribution(ctx context.Context, tenantID primitive.ObjectID) ([]reportdto.StockDistributionRow, error) {
	pipeline := []bson.M{
		{"$match": bson.M{"tenantId": tenantID, "derived": bson.M{"$exists": true}}},
		{"$group": bson.M{
			"_id":          "$derived.stockSegment",
			"count":        bson.M{"$sum": 1},
			"totalStock":   bson.M{"$sum": "$currentStock"},
			"avgStockDays": bson.M{"$avg": "$derived.stockDays"},
		}},
		{"$sort": bson.M{"_id": 1}},
	}
	return aggregateInto[reportdto.StockDistributionRow](ctx, s.productColl, pipeline)
}

// GetCategoryRevenue doanh thu theo category, flatten từ productHistory.
// Mỗi khách được đếm tối đa một lần trong customerCount của mỗi category,
// bất kể đã đặt bao nhiêu đơn trong category đó.
func (s *ReportService) GetCategoryRevenue(ctx context.Context, tenantID primitive.ObjectID) ([]reportdto.CategoryRevenueRow, error) {
	pipeline := []bson.M{
		{"$match": bson.M{"tenantId": tenantID}},
		{"$unwind": "$productHistory"},
		{"$group": bson.M{
			"_id":             "$productHistory.category",
			"totalRevenue":    bson.M{"$sum": "$productHistory.totalSpent"},
			"totalQuantity":   bson.M{"$sum": "$productHistory.totalQuantity"},
			"totalOrders":     bson.M{"$sum": "$productHistory.orderCount"},
			"uniqueCustomers": bson.M{"$addToSet": "$customerId"},
		}},
		{"$project": bson.M{
			"totalRevenue":  1,
			"totalQuantity": 1,
			"totalOrders":   1,
			"customerCount": bson.M{"$size": "$uniqueCustomers"},
		}},
		{"$sort": bson.M{"totalRevenue": -1}},
	}
	return aggregateInto[reportdto.CategoryRevenueRow](ctx, s.customerColl, pipeline)
}

// GetRegionPerformance hiệu suất theo region (đã resolve từ city lúc refresh):
// số khách, tổng doanh thu, giỏ hàng trung bình, số khách HighValue.
func (s *ReportService) GetRegionPerformance(ctx context.Context, tenantID primitive.ObjectID) ([]reportdto.RegionPerformanceRow, error) {
	pipeline := []bson.M{
		{"$match": bson.M{"tenantId": tenantID, "derived": bson.M{"$exists": true}}},
		{"$group": bson.M{
			"_id":           "$derived.regionName",
			"customerCount": bson.M{"$sum": 1},
			"totalRevenue":  bson.M{"$sum": "$derived.totalSpent"},
			"avgBasket":     bson.M{"$avg": "$derived.avgBasket"},
			"highValueCount": bson.M{"$sum": bson.M{
				"$cond": bson.A{bson.M{"$eq": bson.A{"$derived.valueSegment", "HighValue"}}, 1, 0},
			}},
		}},
		{"$sort": bson.M{"totalRevenue": -1}},
	}
	return aggregateInto[reportdto.RegionPerformanceRow](ctx, s.customerColl, pipeline)
}

// GetDashboard gộp cả bốn báo cáo cho màn hình tổng quan.
func (s *ReportService) GetDashboard(ctx context.Context, tenantID primitive.ObjectID) (*reportdto.DashboardResult, error) {
	segments, err := s.GetSegmentDistribution(ctx, tenantID)
	if err != nil {
		return nil, err
	}
	stock, err := s.GetStockDistribution(ctx, tenantID)
	if err != nil {
		return nil, err
	}
	categories, err := s.GetCategoryRevenue(ctx, tenantID)
	if err != nil {
		return nil, err
	}
	regions, err := s.GetRegionPerformance(ctx, tenantID)
	if err != nil {
		return nil, err
	}
	return &reportdto.DashboardResult{
		Segments:   segments,
		Stock:      stock,
		Categories: categories,
		Regions:    regions,
	}, nil
}
