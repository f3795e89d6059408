// Package catalogsvc - Service domain catalog.
// Metrics sản phẩm, refresh phân khúc tồn kho, region lookup, CRUD campaign/nguồn import.
package catalogsvc

import (
	"math"
	"time"

	catalogmodels "retail_insights/internal/api/catalog/models"
	tenantsvc "retail_insights/internal/api/tenant/service"
	"retail_insights/internal/common"
)

// Các segment tồn kho. Chuỗi phải khớp chính xác — hệ thống campaign
// dùng chung bộ từ vựng này trong targetSegment.
const (
	StockSegmentHero      = "Hero"
	StockSegmentNormal    = "Normal"
	StockSegmentSlowMover = "SlowMover"
	StockSegmentDeadStock = "DeadStock"
)

// Cửa sổ tính velocity bán hàng (ngày).
const salesWindowDays = 30

// ComputeDailySales tính velocity bán trung bình mỗi ngày từ sales 30 ngày gần nhất.
func ComputeDailySales(last30DaysSales int64) float64 {
	return float64(last30DaysSales) / salesWindowDays
}

// ComputeStockDays tính số ngày tồn kho còn lại theo velocity hiện tại.
// Trả về nil khi velocity bằng 0: không có runway có nghĩa, không được coi là 0.
func ComputeStockDays(currentStock int64, dailySales float64) *int64 {
	if dailySales <= 0 {
		return nil
	}
	days := int64(math.Floor(float64(currentStock) / dailySales))
	return &days
}

// ComputeGrossMarginPercent tính biên lợi nhuận gộp (%).
// unitPrice bằng 0 là lỗi dữ liệu — trả ErrZeroUnitPrice, không bao giờ mặc định về 0.
func ComputeGrossMarginPercent(unitCost float64, unitPrice float64) (float64, error) {
	if unitPrice == 0 {
		return 0, common.ErrZeroUnitPrice
	}
	return (unitPrice - unitCost) / unitPrice * 100, nil
}

// ComputeStockSegment phân loại tồn kho: DeadStock | SlowMover | Hero | Normal.
// Đánh giá theo thứ tự ưu tiên, match đầu tiên thắng — các bucket loại trừ lẫn nhau.
// Hết sạch hàng và không có sales rơi xuống Normal (sản phẩm đã bán hết không phải hàng chết).
func ComputeStockSegment(currentStock int64, dailySales float64, stockDays *int64, policy tenantsvc.SegmentPolicy) string {
	if dailySales == 0 && currentStock > 0 {
		return StockSegmentDeadStock
	}
	if stockDays != nil && *stockDays > int64(policy.StockDaysThreshold) {
		return StockSegmentSlowMover
	}
	if stockDays != nil && *stockDays <= int64(policy.HeroStockDaysMax) {
		return StockSegmentHero
	}
	return StockSegmentNormal
}

// ComputeProductDerived tính toàn bộ khối derived từ trường gốc của sản phẩm.
// Pure function: cùng input luôn cho cùng output (trừ updatedAt), không side effect.
func ComputeProductDerived(product *catalogmodels.Product, policy tenantsvc.SegmentPolicy) (*catalogmodels.ProductDerived, error) {
	dailySales := ComputeDailySales(product.Last30DaysSales)
	stockDays := ComputeStockDays(product.CurrentStock, dailySales)

	grossMargin, err := ComputeGrossMarginPercent(product.UnitCost, product.UnitPrice)
	if err != nil {
		return nil, err
	}

	return &catalogmodels.ProductDerived{
		DailySales:         dailySales,
		StockDays:          stockDays,
		InventoryPressure:  stockDays != nil && *stockDays > int64(policy.StockDaysThreshold),
		GrossMarginPercent: grossMargin,
		MaxDiscountPercent: grossMargin - policy.MarginFloorPercent,
		StockSegment:       ComputeStockSegment(product.CurrentStock, dailySales, stockDays, policy),
		UpdatedAt:          time.Now().UnixMilli(),
	}, nil
}
