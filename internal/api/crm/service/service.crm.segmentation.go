// Package crmvc - Service khách hàng: phân khúc, refresh derived, profile.
package crmvc

import (
	"sort"
	"time"

	catalogmodels "retail_insights/internal/api/catalog/models"
	crmmodels "retail_insights/internal/api/crm/models"
	tenantsvc "retail_insights/internal/api/tenant/service"
)

// Các segment khách hàng. Chuỗi phải khớp chính xác — hệ thống campaign
// dùng chung bộ từ vựng này trong targetSegment.
const (
	ChurnSegmentActive = "Active"
	ChurnSegmentWarm   = "Warm"
	ChurnSegmentAtRisk = "AtRisk"

	ValueSegmentHigh     = "HighValue"
	ValueSegmentStandard = "Standard"

	AgeSegmentGenZ       = "GenZ"
	AgeSegmentYoungAdult = "YoungAdult"
	AgeSegmentAdult      = "Adult"
	AgeSegmentMature     = "Mature"

	LoyaltyTierBronze   = "Bronze"
	LoyaltyTierSilver   = "Silver"
	LoyaltyTierGold     = "Gold"
	LoyaltyTierPlatinum = "Platinum"

	AffinityTypeFocused  = "Focused"
	AffinityTypeExplorer = "Explorer"

	DiversityProfileDiverse    = "Diverse"
	DiversityProfileBalanced   = "Balanced"
	DiversityProfileSpecialist = "Specialist"
)

const msPerDay = 24 * 60 * 60 * 1000

// Ngưỡng hành vi không theo tenant.
const (
	daysPerMonth           = 30  // Quy đổi membershipDays -> membershipMonths
	affinityFocusedShare   = 0.6 // Share chi tiêu của category dominant để coi là Focused
	diversityDiverseRatio  = 0.7 // uniqueProducts/totalOrders trên ngưỡng này là Diverse
	diversityBalancedRatio = 0.4 // Trên ngưỡng này là Balanced, còn lại Specialist
	missingRegularFactor   = 1.2 // Quá avgDaysBetween x hệ số này là "đến hạn mua lại"
	missingRegularMaxCycle = 60  // Chu kỳ mua dài hơn 60 ngày không coi là mua đều đặn
	topProductsLimit       = 5
)

// Ngưỡng loyalty tier: thâm niên (tháng), tần suất đặt hàng (đơn/tháng)
// và tổng số đơn. Silver chỉ xét tổng đơn — khách mới mua nhiều vẫn lên Silver.
const (
	loyaltyPlatinumMonths    = 12
	loyaltyPlatinumFrequency = 2.0
	loyaltyGoldMonths        = 6
	loyaltyGoldFrequency     = 1.0
	loyaltySilverOrders      = 3
)

// ComputeChurnSegment phân loại nguy cơ rời bỏ theo số ngày từ lần mua cuối.
// Active | Warm | AtRisk. Đúng 30 ngày là Warm, đúng 60 ngày vẫn là Warm.
func ComputeChurnSegment(lastPurchaseDaysAgo int64, policy tenantsvc.SegmentPolicy) string {
	if lastPurchaseDaysAgo > int64(policy.ChurnWarmDays) {
		return ChurnSegmentAtRisk
	}
	if lastPurchaseDaysAgo >= int64(policy.ChurnActiveDays) {
		return ChurnSegmentWarm
	}
	return ChurnSegmentActive
}

// ComputeValueSegment so giỏ hàng trung bình với median của region.
// So sánh nghiêm ngặt: bằng median vẫn là Standard.
func ComputeValueSegment(avgBasket float64, regionMedianBasket float64) string {
	if avgBasket > regionMedianBasket {
		return ValueSegmentHigh
	}
	return ValueSegmentStandard
}

// ComputeAgeSegment phân loại theo tuổi: GenZ (<=25), YoungAdult (26-35),
// Adult (36-50), Mature (51+). Cận trên của mỗi bracket là inclusive.
func ComputeAgeSegment(age int) string {
	switch {
	case age <= 25:
		return AgeSegmentGenZ
	case age <= 35:
		return AgeSegmentYoungAdult
	case age <= 50:
		return AgeSegmentAdult
	default:
		return AgeSegmentMature
	}
}

// ComputeLoyaltyTier xếp hạng trung thành theo thâm niên, tần suất đặt hàng
// và tổng số đơn. Platinum/Gold đòi cả thâm niên lẫn tần suất; Silver chỉ
// cần từ 3 đơn trở lên, không phân biệt khách mới hay lâu năm.
func ComputeLoyaltyTier(membershipMonths int64, orderFrequency float64, totalOrders int64) string {
	switch {
	case membershipMonths >= loyaltyPlatinumMonths && orderFrequency >= loyaltyPlatinumFrequency:
		return LoyaltyTierPlatinum
	case membershipMonths >= loyaltyGoldMonths && orderFrequency >= loyaltyGoldFrequency:
		return LoyaltyTierGold
	case totalOrders >= loyaltySilverOrders:
		return LoyaltyTierSilver
	default:
		return LoyaltyTierBronze
	}
}

// ComputeAffinity tìm category chiếm chi tiêu lớn nhất và kiểu affinity.
// Share của category dominant > 0.6 là Focused, còn lại Explorer.
func ComputeAffinity(history []crmmodels.ProductHistoryEntry) (string, string) {
	spendByCategory := map[string]float64{}
	var totalSpent float64
	for _, entry := range history {
		spendByCategory[entry.Category] += entry.TotalSpent
		totalSpent += entry.TotalSpent
	}

	var dominantCategory string
	var dominantSpend float64
	for category, spend := range spendByCategory {
		if spend > dominantSpend || (spend == dominantSpend && category < dominantCategory) {
			dominantCategory = category
			dominantSpend = spend
		}
	}

	affinityType := AffinityTypeExplorer
	if totalSpent > 0 && dominantSpend/totalSpent > affinityFocusedShare {
		affinityType = AffinityTypeFocused
	}
	return dominantCategory, affinityType
}

// ComputeDiversityProfile phân loại độ đa dạng giỏ hàng theo tỷ lệ
// sản phẩm khác nhau trên tổng số đơn.
func ComputeDiversityProfile(uniqueProducts int64, totalOrders int64) string {
	if totalOrders == 0 {
		return DiversityProfileSpecialist
	}
	ratio := float64(uniqueProducts) / float64(totalOrders)
	switch {
	case ratio > diversityDiverseRatio:
		return DiversityProfileDiverse
	case ratio > diversityBalancedRatio:
		return DiversityProfileBalanced
	default:
		return DiversityProfileSpecialist
	}
}

// ComputeMissingRegulars tìm các sản phẩm khách mua đều đặn (có
// avgDaysBetween và chu kỳ <= 60 ngày) nhưng đã quá chu kỳ mua lại 20%.
// Chu kỳ dài hơn 60 ngày là mua thưa, nhắc mua lại không có ý nghĩa.
func ComputeMissingRegulars(history []crmmodels.ProductHistoryEntry, nowMs int64) []string {
	var missing []string
	for _, entry := range history {
		if entry.AvgDaysBetween == nil || *entry.AvgDaysBetween <= 0 || *entry.AvgDaysBetween > missingRegularMaxCycle || entry.LastPurchase == 0 {
			continue
		}
		daysSince := float64(nowMs-entry.LastPurchase) / float64(msPerDay)
		if daysSince > float64(*entry.AvgDaysBetween)*missingRegularFactor {
			missing = append(missing, entry.ProductID)
		}
	}
	return missing
}

// ComputeTopProducts trả về tối đa 5 sản phẩm chi tiêu cao nhất, giảm dần.
func ComputeTopProducts(history []crmmodels.ProductHistoryEntry) []crmmodels.TopProduct {
	sorted := make([]crmmodels.ProductHistoryEntry, len(history))
	copy(sorted, history)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].TotalSpent > sorted[j].TotalSpent
	})
	if len(sorted) > topProductsLimit {
		sorted = sorted[:topProductsLimit]
	}

	top := make([]crmmodels.TopProduct, 0, len(sorted))
	for _, entry := range sorted {
		top = append(top, crmmodels.TopProduct{
			ProductID:  entry.ProductID,
			Category:   entry.Category,
			TotalSpent: entry.TotalSpent,
			OrderCount: entry.OrderCount,
		})
	}
	return top
}

// ComputeCustomerDerived tính toàn bộ khối derived từ trường gốc của khách
// và Region đã resolve. Pure function: region được truyền vào, không fetch.
// productHistory rỗng trả về nil — caller coi là skip, không phải lỗi.
// nowMs truyền vào để kết quả deterministic; 0 = lấy thời điểm hiện tại.
func ComputeCustomerDerived(customer *crmmodels.Customer, region *catalogmodels.Region, policy tenantsvc.SegmentPolicy, nowMs int64) *crmmodels.CustomerDerived {
	if len(customer.ProductHistory) == 0 {
		return nil
	}
	if nowMs == 0 {
		nowMs = time.Now().UnixMilli()
	}

	var totalOrders int64
	var totalSpent float64
	var lastPurchase int64
	for _, entry := range customer.ProductHistory {
		totalOrders += entry.OrderCount
		totalSpent += entry.TotalSpent
		if entry.LastPurchase > lastPurchase {
			lastPurchase = entry.LastPurchase
		}
	}

	avgBasket := totalSpent / float64(totalOrders)
	uniqueProducts := int64(len(customer.ProductHistory))
	lastPurchaseDaysAgo := (nowMs - lastPurchase) / msPerDay
	membershipDays := (nowMs - customer.RegisteredAt) / msPerDay
	membershipMonths := membershipDays / daysPerMonth

	// Các chỉ số theo tháng chia cho ít nhất 1 tháng để khách mới không chia 0
	effectiveMonths := membershipMonths
	if effectiveMonths < 1 {
		effectiveMonths = 1
	}
	orderFrequency := float64(totalOrders) / float64(effectiveMonths)
	avgMonthlySpend := totalSpent / float64(effectiveMonths)

	affinityCategory, affinityType := ComputeAffinity(customer.ProductHistory)

	return &crmmodels.CustomerDerived{
		TotalOrders:         totalOrders,
		TotalSpent:          totalSpent,
		AvgBasket:           avgBasket,
		UniqueProducts:      uniqueProducts,
		LastPurchaseDaysAgo: lastPurchaseDaysAgo,
		MembershipDays:      membershipDays,
		MembershipMonths:    membershipMonths,
		OrderFrequency:      orderFrequency,
		AvgMonthlySpend:     avgMonthlySpend,
		ChurnSegment:        ComputeChurnSegment(lastPurchaseDaysAgo, policy),
		ValueSegment:        ComputeValueSegment(avgBasket, region.MedianBasket),
		AgeSegment:          ComputeAgeSegment(customer.Age),
		LoyaltyTier:         ComputeLoyaltyTier(membershipMonths, orderFrequency, totalOrders),
		EstimatedBudget:     avgBasket * policy.BudgetUpliftFactor,
		AffinityCategory:    affinityCategory,
		AffinityType:        affinityType,
		DiversityProfile:    ComputeDiversityProfile(uniqueProducts, totalOrders),
		RegionName:          region.Name,
		MissingRegulars:     ComputeMissingRegulars(customer.ProductHistory, nowMs),
		TopProducts:         ComputeTopProducts(customer.ProductHistory),
		UpdatedAt:           nowMs,
	}
}
