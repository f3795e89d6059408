// Package catalogsvc - Test các hàm tính metrics và phân khúc tồn kho.
package catalogsvc

import (
	"errors"
	"math"
	"testing"

	catalogmodels "retail_insights/internal/api/catalog/models"
	tenantsvc "retail_insights/internal/api/tenant/service"
	"retail_insights/internal/common"
)

func testPolicy() tenantsvc.SegmentPolicy {
	return tenantsvc.SegmentPolicy{
		MarginFloorPercent: 25,
		BudgetUpliftFactor: 1.2,
		StockDaysThreshold: 60,
		HeroStockDaysMax:   20,
		ChurnActiveDays:    30,
		ChurnWarmDays:      60,
	}
}

func int64Ptr(v int64) *int64 {
	return &v
}

func TestComputeStockDays_ZeroVelocityReturnsNil(t *testing.T) {
	if days := ComputeStockDays(500, 0); days != nil {
		t.Errorf("velocity 0 phải trả về nil, nhận được %d", *days)
	}
	days := ComputeStockDays(900, 2.5)
	if days == nil {
		t.Fatal("velocity dương không được trả về nil")
	}
	if *days != 360 {
		t.Errorf("stockDays = %d, mong đợi 360", *days)
	}
}

func TestComputeStockDays_FloorsResult(t *testing.T) {
	// 100 / 3.333... = 30.0003 -> floor 30
	days := ComputeStockDays(100, float64(100)/30)
	if days == nil {
		t.Fatal("stockDays không được nil")
	}
	if *days != 30 {
		t.Errorf("stockDays = %d, mong đợi 30 (floor)", *days)
	}
}

func TestComputeStockSegment_Boundaries(t *testing.T) {
	policy := testPolicy()
	tests := []struct {
		name       string
		stock      int64
		dailySales float64
		stockDays  *int64
		want       string
	}{
		{"stockDays 20 là Hero", 50, 2.5, int64Ptr(20), StockSegmentHero},
		{"stockDays 21 là Normal", 52, 2.5, int64Ptr(21), StockSegmentNormal},
		{"stockDays 60 là Normal", 150, 2.5, int64Ptr(60), StockSegmentNormal},
		{"stockDays 61 là SlowMover", 152, 2.5, int64Ptr(61), StockSegmentSlowMover},
		{"velocity 0 và còn tồn là DeadStock", 100, 0, nil, StockSegmentDeadStock},
		{"hết hàng và không sales là Normal", 0, 0, nil, StockSegmentNormal},
	}

	for _, tt := range tests {
		got := ComputeStockSegment(tt.stock, tt.dailySales, tt.stockDays, policy)
		if got != tt.want {
			t.Errorf("%s: ComputeStockSegment = %s, mong đợi %s", tt.name, got, tt.want)
		}
	}
}

func TestComputeStockSegment_DeadStockWinsOverOthers(t *testing.T) {
	// DeadStock xét trước mọi bucket khác dù stockDays không tồn tại
	got := ComputeStockSegment(1, 0, nil, testPolicy())
	if got != StockSegmentDeadStock {
		t.Errorf("tồn 1 sản phẩm velocity 0 phải là DeadStock, nhận %s", got)
	}
}

func TestComputeStockSegment_TenantOverrideMovesBoundaries(t *testing.T) {
	// Tenant nới HeroStockDaysMax lên 30: stockDays 25 đổi từ Normal sang Hero
	policy := testPolicy()
	if got := ComputeStockSegment(62, 2.5, int64Ptr(25), policy); got != StockSegmentNormal {
		t.Errorf("với ngưỡng mặc định, stockDays 25 phải là Normal, nhận %s", got)
	}
	policy.HeroStockDaysMax = 30
	if got := ComputeStockSegment(62, 2.5, int64Ptr(25), policy); got != StockSegmentHero {
		t.Errorf("với HeroStockDaysMax 30, stockDays 25 phải là Hero, nhận %s", got)
	}

	// Tenant hạ StockDaysThreshold xuống 45: stockDays 50 đổi từ Normal sang SlowMover
	policy = testPolicy()
	policy.StockDaysThreshold = 45
	if got := ComputeStockSegment(125, 2.5, int64Ptr(50), policy); got != StockSegmentSlowMover {
		t.Errorf("với StockDaysThreshold 45, stockDays 50 phải là SlowMover, nhận %s", got)
	}
}

func TestProductNeedsRefresh(t *testing.T) {
	now := int64(1_700_000_000_000)

	// Chưa có derived: luôn cần refresh
	if !ProductNeedsRefresh(&catalogmodels.Product{UpdatedAt: now}) {
		t.Error("sản phẩm chưa có derived phải cần refresh")
	}
	// Trường gốc đổi sau lần tính cuối
	stale := &catalogmodels.Product{UpdatedAt: now, Derived: &catalogmodels.ProductDerived{UpdatedAt: now - 1}}
	if !ProductNeedsRefresh(stale) {
		t.Error("updatedAt mới hơn derived.updatedAt phải cần refresh")
	}
	// Vừa refresh xong: hai mốc bằng nhau, event của chính lượt refresh
	// không được kích hoạt refresh lần nữa
	fresh := &catalogmodels.Product{UpdatedAt: now, Derived: &catalogmodels.ProductDerived{UpdatedAt: now}}
	if ProductNeedsRefresh(fresh) {
		t.Error("updatedAt bằng derived.updatedAt không được refresh lại")
	}
}

func TestComputeGrossMarginPercent_ZeroUnitPrice(t *testing.T) {
	_, err := ComputeGrossMarginPercent(20, 0)
	if err == nil {
		t.Fatal("unitPrice 0 phải trả về lỗi")
	}
	if !errors.Is(err, common.ErrZeroUnitPrice) {
		t.Errorf("lỗi phải là ErrZeroUnitPrice, nhận %v", err)
	}
}

func TestComputeGrossMarginPercent_NegativeMarginAllowed(t *testing.T) {
	// Bán dưới giá vốn: margin âm là dữ liệu hợp lệ, không phải lỗi
	margin, err := ComputeGrossMarginPercent(100, 50)
	if err != nil {
		t.Fatalf("không mong đợi lỗi: %v", err)
	}
	if margin != -100 {
		t.Errorf("margin = %.2f, mong đợi -100", margin)
	}
}

func TestComputeProductDerived_FullScenario(t *testing.T) {
	product := &catalogmodels.Product{
		ProductID:       "P-2001",
		CurrentStock:    900,
		Last30DaysSales: 75,
		UnitCost:        20,
		UnitPrice:       59.90,
	}

	derived, err := ComputeProductDerived(product, testPolicy())
	if err != nil {
		t.Fatalf("ComputeProductDerived trả về lỗi: %v", err)
	}

	if derived.DailySales != 2.5 {
		t.Errorf("dailySales = %.4f, mong đợi 2.5", derived.DailySales)
	}
	if derived.StockDays == nil || *derived.StockDays != 360 {
		t.Errorf("stockDays = %v, mong đợi 360", derived.StockDays)
	}
	if !derived.InventoryPressure {
		t.Error("stockDays 360 > 60 phải có inventoryPressure")
	}
	if math.Abs(derived.GrossMarginPercent-66.61) > 0.01 {
		t.Errorf("grossMarginPercent = %.4f, mong đợi ~66.61", derived.GrossMarginPercent)
	}
	if math.Abs(derived.MaxDiscountPercent-41.61) > 0.01 {
		t.Errorf("maxDiscountPercent = %.4f, mong đợi ~41.61", derived.MaxDiscountPercent)
	}
	if derived.StockSegment != StockSegmentSlowMover {
		t.Errorf("stockSegment = %s, mong đợi SlowMover", derived.StockSegment)
	}
}

func TestComputeProductDerived_ZeroUnitPriceFailsWholeComputation(t *testing.T) {
	product := &catalogmodels.Product{
		ProductID:       "P-BAD",
		CurrentStock:    10,
		Last30DaysSales: 5,
		UnitCost:        10,
		UnitPrice:       0,
	}
	derived, err := ComputeProductDerived(product, testPolicy())
	if err == nil {
		t.Fatal("unitPrice 0 phải làm cả phép tính derived thất bại")
	}
	if derived != nil {
		t.Error("khi lỗi, derived phải là nil (không ghi một phần)")
	}
}

func TestComputeProductDerived_HeroNeedsVelocity(t *testing.T) {
	// Tồn thấp nhưng có velocity: stockDays = floor(10/2.5) = 4 -> Hero
	product := &catalogmodels.Product{
		ProductID:       "P-HERO",
		CurrentStock:    10,
		Last30DaysSales: 75,
		UnitCost:        20,
		UnitPrice:       50,
	}
	derived, err := ComputeProductDerived(product, testPolicy())
	if err != nil {
		t.Fatalf("không mong đợi lỗi: %v", err)
	}
	if derived.StockSegment != StockSegmentHero {
		t.Errorf("stockSegment = %s, mong đợi Hero", derived.StockSegment)
	}
	if derived.InventoryPressure {
		t.Error("stockDays 4 không được có inventoryPressure")
	}
}
