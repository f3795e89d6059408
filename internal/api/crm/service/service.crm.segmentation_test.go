// Package crmvc - Test các hàm phân khúc khách hàng.
package crmvc

import (
	"math"
	"reflect"
	"testing"

	catalogmodels "retail_insights/internal/api/catalog/models"
	crmmodels "retail_insights/internal/api/crm/models"
	tenantsvc "retail_insights/internal/api/tenant/service"
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

func TestComputeChurnSegment_Boundaries(t *testing.T) {
	policy := testPolicy()
	tests := []struct {
		daysAgo int64
		want    string
	}{
		{0, ChurnSegmentActive},
		{29, ChurnSegmentActive},
		{30, ChurnSegmentWarm}, // Đúng ngưỡng Active là Warm
		{45, ChurnSegmentWarm},
		{60, ChurnSegmentWarm}, // Đúng ngưỡng Warm vẫn là Warm
		{61, ChurnSegmentAtRisk},
	}
	for _, tt := range tests {
		got := ComputeChurnSegment(tt.daysAgo, policy)
		if got != tt.want {
			t.Errorf("ComputeChurnSegment(%d) = %s, mong đợi %s", tt.daysAgo, got, tt.want)
		}
	}
}

func TestComputeValueSegment_StrictComparison(t *testing.T) {
	// 933.50 / 13 đơn = 71.81 < median 75 -> Standard
	if got := ComputeValueSegment(933.50/13, 75.0); got != ValueSegmentStandard {
		t.Errorf("avgBasket dưới median phải là Standard, nhận %s", got)
	}
	// Bằng đúng median vẫn là Standard (so sánh nghiêm ngặt)
	if got := ComputeValueSegment(75.0, 75.0); got != ValueSegmentStandard {
		t.Errorf("avgBasket bằng median phải là Standard, nhận %s", got)
	}
	if got := ComputeValueSegment(75.01, 75.0); got != ValueSegmentHigh {
		t.Errorf("avgBasket trên median phải là HighValue, nhận %s", got)
	}
}

func TestComputeAgeSegment_Brackets(t *testing.T) {
	tests := []struct {
		age  int
		want string
	}{
		{18, AgeSegmentGenZ},
		{25, AgeSegmentGenZ},
		{26, AgeSegmentYoungAdult},
		{35, AgeSegmentYoungAdult},
		{36, AgeSegmentAdult},
		{50, AgeSegmentAdult},
		{51, AgeSegmentMature},
		{70, AgeSegmentMature},
	}
	for _, tt := range tests {
		if got := ComputeAgeSegment(tt.age); got != tt.want {
			t.Errorf("ComputeAgeSegment(%d) = %s, mong đợi %s", tt.age, got, tt.want)
		}
	}
}

func TestComputeLoyaltyTier_Ladder(t *testing.T) {
	tests := []struct {
		name        string
		months      int64
		frequency   float64
		totalOrders int64
		want        string
	}{
		{"đủ thâm niên và tần suất là Platinum", 12, 2.0, 24, LoyaltyTierPlatinum},
		{"thâm niên cao nhưng tần suất thấp là Gold", 13, 1.5, 20, LoyaltyTierGold},
		{"6 tháng tần suất 1 là Gold", 6, 1.0, 6, LoyaltyTierGold},
		{"6 tháng tần suất dưới 1 nhưng đủ 3 đơn là Silver", 6, 0.5, 3, LoyaltyTierSilver},
		{"dưới 3 đơn là Bronze dù thâm niên cao", 10, 0.2, 2, LoyaltyTierBronze},
		{"khách mới không đơn là Bronze", 0, 0, 0, LoyaltyTierBronze},
	}
	for _, tt := range tests {
		if got := ComputeLoyaltyTier(tt.months, tt.frequency, tt.totalOrders); got != tt.want {
			t.Errorf("%s: ComputeLoyaltyTier(%d, %.1f, %d) = %s, mong đợi %s", tt.name, tt.months, tt.frequency, tt.totalOrders, got, tt.want)
		}
	}
}

func TestComputeLoyaltyTier_SilverIgnoresMembershipAge(t *testing.T) {
	// Khách một tháng tuổi với 5 đơn: chưa đủ thâm niên Gold/Platinum
	// nhưng tổng đơn >= 3 đưa thẳng lên Silver, không rơi về Bronze
	if got := ComputeLoyaltyTier(1, 5.0, 5); got != LoyaltyTierSilver {
		t.Errorf("khách mới 5 đơn phải là Silver, nhận %s", got)
	}
}

func TestComputeAffinity_FocusedShare(t *testing.T) {
	// SKINCARE chiếm 70/100 = 0.7 > 0.6 -> Focused
	history := []crmmodels.ProductHistoryEntry{
		{ProductID: "P-1", Category: "SKINCARE", TotalSpent: 70},
		{ProductID: "P-2", Category: "MAKEUP", TotalSpent: 30},
	}
	category, affinityType := ComputeAffinity(history)
	if category != "SKINCARE" {
		t.Errorf("dominant category = %s, mong đợi SKINCARE", category)
	}
	if affinityType != AffinityTypeFocused {
		t.Errorf("affinityType = %s, mong đợi Focused", affinityType)
	}
}

func TestComputeAffinity_ShareAtThresholdIsExplorer(t *testing.T) {
	// Đúng 0.6 không vượt ngưỡng -> Explorer
	history := []crmmodels.ProductHistoryEntry{
		{ProductID: "P-1", Category: "SKINCARE", TotalSpent: 60},
		{ProductID: "P-2", Category: "MAKEUP", TotalSpent: 40},
	}
	_, affinityType := ComputeAffinity(history)
	if affinityType != AffinityTypeExplorer {
		t.Errorf("share 0.6 phải là Explorer, nhận %s", affinityType)
	}
}

func TestComputeAffinity_TieBreaksDeterministically(t *testing.T) {
	// Hai category bằng chi tiêu: chọn theo thứ tự chữ cái để kết quả ổn định
	history := []crmmodels.ProductHistoryEntry{
		{ProductID: "P-1", Category: "MAKEUP", TotalSpent: 50},
		{ProductID: "P-2", Category: "FRAGRANCE", TotalSpent: 50},
	}
	for i := 0; i < 10; i++ {
		category, _ := ComputeAffinity(history)
		if category != "FRAGRANCE" {
			t.Fatalf("tie-break phải chọn FRAGRANCE (thứ tự chữ cái), nhận %s", category)
		}
	}
}

func TestComputeDiversityProfile_Thresholds(t *testing.T) {
	tests := []struct {
		unique int64
		orders int64
		want   string
	}{
		{8, 10, DiversityProfileDiverse},    // 0.8 > 0.7
		{7, 10, DiversityProfileBalanced},   // đúng 0.7 không vượt ngưỡng
		{5, 10, DiversityProfileBalanced},   // 0.5
		{4, 10, DiversityProfileSpecialist}, // đúng 0.4 không vượt ngưỡng
		{1, 10, DiversityProfileSpecialist},
		{0, 0, DiversityProfileSpecialist}, // không đơn nào
	}
	for _, tt := range tests {
		if got := ComputeDiversityProfile(tt.unique, tt.orders); got != tt.want {
			t.Errorf("ComputeDiversityProfile(%d, %d) = %s, mong đợi %s", tt.unique, tt.orders, got, tt.want)
		}
	}
}

func TestComputeMissingRegulars(t *testing.T) {
	nowMs := int64(1_700_000_000_000)
	history := []crmmodels.ProductHistoryEntry{
		// Quá chu kỳ: 31 ngày > 25 * 1.2 = 30
		{ProductID: "P-DUE", OrderCount: 5, AvgDaysBetween: int64Ptr(25), LastPurchase: nowMs - 31*msPerDay},
		// Chưa quá chu kỳ: 29 ngày
		{ProductID: "P-OK", OrderCount: 5, AvgDaysBetween: int64Ptr(25), LastPurchase: nowMs - 29*msPerDay},
		// Ít đơn nhưng đã có chu kỳ: vẫn xét như thường
		{ProductID: "P-FEW", OrderCount: 2, AvgDaysBetween: int64Ptr(10), LastPurchase: nowMs - 100*msPerDay},
		// Không có avgDaysBetween
		{ProductID: "P-NIL", OrderCount: 10, AvgDaysBetween: nil, LastPurchase: nowMs - 100*msPerDay},
	}

	missing := ComputeMissingRegulars(history, nowMs)
	if !reflect.DeepEqual(missing, []string{"P-DUE", "P-FEW"}) {
		t.Errorf("missingRegulars = %v, mong đợi [P-DUE P-FEW]", missing)
	}
}

func TestComputeMissingRegulars_LongCycleNotRegular(t *testing.T) {
	// Chu kỳ 90 ngày vượt trần 60: mua thưa, không nhắc mua lại
	// dù đã quá hạn rất lâu
	nowMs := int64(1_700_000_000_000)
	history := []crmmodels.ProductHistoryEntry{
		{ProductID: "P-SLOW", OrderCount: 4, AvgDaysBetween: int64Ptr(90), LastPurchase: nowMs - 200*msPerDay},
		// Đúng trần 60 ngày vẫn tính là đều đặn: 80 > 60 * 1.2 = 72
		{ProductID: "P-EDGE", OrderCount: 4, AvgDaysBetween: int64Ptr(60), LastPurchase: nowMs - 80*msPerDay},
		// Chu kỳ 0 là dữ liệu rác, bỏ qua
		{ProductID: "P-ZERO", OrderCount: 4, AvgDaysBetween: int64Ptr(0), LastPurchase: nowMs - 50*msPerDay},
	}

	missing := ComputeMissingRegulars(history, nowMs)
	if !reflect.DeepEqual(missing, []string{"P-EDGE"}) {
		t.Errorf("missingRegulars = %v, mong đợi [P-EDGE]", missing)
	}
}

func TestComputeTopProducts_SortedAndCapped(t *testing.T) {
	history := []crmmodels.ProductHistoryEntry{
		{ProductID: "P-1", Category: "A", TotalSpent: 10, OrderCount: 1},
		{ProductID: "P-2", Category: "B", TotalSpent: 60, OrderCount: 2},
		{ProductID: "P-3", Category: "C", TotalSpent: 30, OrderCount: 3},
		{ProductID: "P-4", Category: "D", TotalSpent: 50, OrderCount: 4},
		{ProductID: "P-5", Category: "E", TotalSpent: 20, OrderCount: 5},
		{ProductID: "P-6", Category: "F", TotalSpent: 40, OrderCount: 6},
	}

	top := ComputeTopProducts(history)
	if len(top) != 5 {
		t.Fatalf("topProducts phải giới hạn 5, nhận %d", len(top))
	}
	wantOrder := []string{"P-2", "P-4", "P-6", "P-3", "P-5"}
	for i, want := range wantOrder {
		if top[i].ProductID != want {
			t.Errorf("topProducts[%d] = %s, mong đợi %s", i, top[i].ProductID, want)
		}
	}
}

func TestCustomerNeedsRefresh(t *testing.T) {
	now := int64(1_700_000_000_000)

	if !CustomerNeedsRefresh(&crmmodels.Customer{UpdatedAt: now}) {
		t.Error("khách chưa có derived phải cần refresh")
	}
	stale := &crmmodels.Customer{UpdatedAt: now, Derived: &crmmodels.CustomerDerived{UpdatedAt: now - 1}}
	if !CustomerNeedsRefresh(stale) {
		t.Error("updatedAt mới hơn derived.updatedAt phải cần refresh")
	}
	// Vừa refresh xong: hai mốc bằng nhau, event của chính lượt refresh
	// không được kích hoạt refresh lần nữa
	fresh := &crmmodels.Customer{UpdatedAt: now, Derived: &crmmodels.CustomerDerived{UpdatedAt: now}}
	if CustomerNeedsRefresh(fresh) {
		t.Error("updatedAt bằng derived.updatedAt không được refresh lại")
	}
}

func TestComputeCustomerDerived_EmptyHistoryReturnsNil(t *testing.T) {
	customer := &crmmodels.Customer{CustomerID: "C-NEW", Age: 22}
	region := &catalogmodels.Region{Name: "Marmara", MedianBasket: 75.0}
	if derived := ComputeCustomerDerived(customer, region, testPolicy(), 0); derived != nil {
		t.Error("productHistory rỗng phải trả về nil (skip, không lỗi)")
	}
}

func TestComputeCustomerDerived_FullScenario(t *testing.T) {
	nowMs := int64(1_700_000_000_000)
	customer := &crmmodels.Customer{
		CustomerID:   "C-TEST-001",
		City:         "Istanbul",
		Age:          32,
		RegisteredAt: nowMs - 400*msPerDay,
		ProductHistory: []crmmodels.ProductHistoryEntry{
			{
				ProductID:      "P-2001",
				Category:       "SKINCARE",
				TotalQuantity:  15,
				TotalSpent:     899.25,
				OrderCount:     15,
				LastPurchase:   nowMs - 10*msPerDay,
				AvgDaysBetween: int64Ptr(25),
			},
		},
	}
	region := &catalogmodels.Region{Name: "Marmara", MedianBasket: 75.0}

	derived := ComputeCustomerDerived(customer, region, testPolicy(), nowMs)
	if derived == nil {
		t.Fatal("ComputeCustomerDerived trả về nil")
	}

	if derived.TotalOrders != 15 {
		t.Errorf("totalOrders = %d, mong đợi 15", derived.TotalOrders)
	}
	if math.Abs(derived.AvgBasket-59.95) > 0.001 {
		t.Errorf("avgBasket = %.4f, mong đợi 59.95", derived.AvgBasket)
	}
	if derived.LastPurchaseDaysAgo != 10 {
		t.Errorf("lastPurchaseDaysAgo = %d, mong đợi 10", derived.LastPurchaseDaysAgo)
	}
	if derived.ChurnSegment != ChurnSegmentActive {
		t.Errorf("churnSegment = %s, mong đợi Active", derived.ChurnSegment)
	}
	if derived.ValueSegment != ValueSegmentStandard {
		t.Errorf("valueSegment = %s, mong đợi Standard (59.95 < median 75)", derived.ValueSegment)
	}
	if derived.AgeSegment != AgeSegmentYoungAdult {
		t.Errorf("ageSegment = %s, mong đợi YoungAdult", derived.AgeSegment)
	}
	if derived.MembershipDays != 400 {
		t.Errorf("membershipDays = %d, mong đợi 400", derived.MembershipDays)
	}
	if derived.MembershipMonths != 13 {
		t.Errorf("membershipMonths = %d, mong đợi 13", derived.MembershipMonths)
	}
	// 15 đơn / 13 tháng = 1.15: đủ Gold, chưa đủ Platinum
	if derived.LoyaltyTier != LoyaltyTierGold {
		t.Errorf("loyaltyTier = %s, mong đợi Gold", derived.LoyaltyTier)
	}
	if math.Abs(derived.EstimatedBudget-59.95*1.2) > 0.001 {
		t.Errorf("estimatedBudget = %.4f, mong đợi avgBasket x 1.2 = %.4f", derived.EstimatedBudget, 59.95*1.2)
	}
	if derived.AffinityCategory != "SKINCARE" || derived.AffinityType != AffinityTypeFocused {
		t.Errorf("affinity = (%s, %s), mong đợi (SKINCARE, Focused)", derived.AffinityCategory, derived.AffinityType)
	}
	// 1 sản phẩm / 15 đơn = 0.066 -> Specialist
	if derived.DiversityProfile != DiversityProfileSpecialist {
		t.Errorf("diversityProfile = %s, mong đợi Specialist", derived.DiversityProfile)
	}
	if derived.RegionName != "Marmara" {
		t.Errorf("regionName = %s, mong đợi Marmara", derived.RegionName)
	}
	if len(derived.TopProducts) != 1 || derived.TopProducts[0].ProductID != "P-2001" {
		t.Errorf("topProducts = %v, mong đợi [P-2001]", derived.TopProducts)
	}
}

func TestComputeCustomerDerived_Idempotent(t *testing.T) {
	nowMs := int64(1_700_000_000_000)
	customer := &crmmodels.Customer{
		CustomerID:   "C-TEST-005",
		Age:          24,
		RegisteredAt: nowMs - 200*msPerDay,
		ProductHistory: []crmmodels.ProductHistoryEntry{
			{ProductID: "P-1001", Category: "MAKEUP", TotalQuantity: 1, TotalSpent: 89.90, OrderCount: 1, LastPurchase: nowMs - 40*msPerDay},
			{ProductID: "P-2004", Category: "SKINCARE", TotalQuantity: 1, TotalSpent: 64.90, OrderCount: 1, LastPurchase: nowMs - 45*msPerDay},
		},
	}
	region := &catalogmodels.Region{Name: "Marmara", MedianBasket: 75.0}
	policy := testPolicy()

	first := ComputeCustomerDerived(customer, region, policy, nowMs)
	second := ComputeCustomerDerived(customer, region, policy, nowMs)
	if !reflect.DeepEqual(first, second) {
		t.Errorf("cùng input và nowMs phải cho cùng output:\nlần 1: %+v\nlần 2: %+v", first, second)
	}
}

func TestComputeCustomerDerived_NewCustomerDividesByOneMonth(t *testing.T) {
	// Khách đăng ký 10 ngày trước: membershipMonths 0 nhưng các chỉ số
	// theo tháng chia cho 1, không chia 0
	nowMs := int64(1_700_000_000_000)
	customer := &crmmodels.Customer{
		CustomerID:   "C-FRESH",
		Age:          22,
		RegisteredAt: nowMs - 10*msPerDay,
		ProductHistory: []crmmodels.ProductHistoryEntry{
			{ProductID: "P-1", Category: "MAKEUP", TotalSpent: 100, OrderCount: 2, LastPurchase: nowMs - 1*msPerDay},
		},
	}
	region := &catalogmodels.Region{Name: "Ege", MedianBasket: 80.0}

	derived := ComputeCustomerDerived(customer, region, testPolicy(), nowMs)
	if derived == nil {
		t.Fatal("ComputeCustomerDerived trả về nil")
	}
	if derived.MembershipMonths != 0 {
		t.Errorf("membershipMonths = %d, mong đợi 0", derived.MembershipMonths)
	}
	if derived.OrderFrequency != 2 {
		t.Errorf("orderFrequency = %.2f, mong đợi 2 (chia cho tối thiểu 1 tháng)", derived.OrderFrequency)
	}
	if derived.AvgMonthlySpend != 100 {
		t.Errorf("avgMonthlySpend = %.2f, mong đợi 100", derived.AvgMonthlySpend)
	}
}
