// Package reportdto - Kết quả các báo cáo tổng hợp trên dữ liệu derived.
package reportdto

// SegmentKey là khóa nhóm (churn, value) của phân bố segment khách hàng.
type SegmentKey struct {
	Churn string `json:"churn" bson:"churn"`
	Value string `json:"value" bson:"value"`
}

// SegmentDistributionRow là một dòng phân bố segment khách hàng.
type SegmentDistributionRow struct {
	Segment   SegmentKey `json:"segment" bson:"_id"`
	Count     int64      `json:"count" bson:"count"`
	AvgSpent  float64    `json:"avgSpent" bson:"avgSpent"`
	AvgBasket float64    `json:"avgBasket" bson:"avgBasket"`
}

// StockDistributionRow là một dòng phân bố tồn kho theo stockSegment.
// AvgStockDays là con trỏ: nhóm toàn sản phẩm không có stockDays (DeadStock) cho null.
type StockDistributionRow struct {
	StockSegment string   `json:"stockSegment" bson:"_id"`
	Count        int64    `json:"count" bson:"count"`
	TotalStock   int64    `json:"totalStock" bson:"totalStock"`
	AvgStockDays *float64 `json:"avgStockDays" bson:"avgStockDays"`
}

// CategoryRevenueRow là một dòng doanh thu theo category, flatten từ productHistory.
// CustomerCount đếm mỗi khách tối đa một lần cho mỗi category.
type CategoryRevenueRow struct {
	Category      string  `json:"category" bson:"_id"`
	TotalRevenue  float64 `json:"totalRevenue" bson:"totalRevenue"`
	TotalQuantity int64   `json:"totalQuantity" bson:"totalQuantity"`
	TotalOrders   int64   `json:"totalOrders" bson:"totalOrders"`
	CustomerCount int64   `json:"customerCount" bson:"customerCount"`
}

// RegionPerformanceRow là một dòng hiệu suất theo region (resolve lúc refresh).
type RegionPerformanceRow struct {
	Region         string  `json:"region" bson:"_id"`
	CustomerCount  int64   `json:"customerCount" bson:"customerCount"`
	TotalRevenue   float64 `json:"totalRevenue" bson:"totalRevenue"`
	AvgBasket      float64 `json:"avgBasket" bson:"avgBasket"`
	HighValueCount int64   `json:"highValueCount" bson:"highValueCount"`
}

// DashboardResult gộp cả bốn báo cáo cho màn hình tổng quan.
type DashboardResult struct {
	Segments   []SegmentDistributionRow `json:"segments"`
	Stock      []StockDistributionRow   `json:"stock"`
	Categories []CategoryRevenueRow     `json:"categories"`
	Regions    []RegionPerformanceRow   `json:"regions"`
}
