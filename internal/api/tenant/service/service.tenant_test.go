// Package tenantsvc - Test hợp nhất chính sách phân khúc (defaults + tenant settings).
package tenantsvc

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"retail_insights/config"
	tenantmodels "retail_insights/internal/api/tenant/models"
	"retail_insights/internal/global"
)

func setTestConfig() {
	global.MongoDB_ServerConfig = &config.Configuration{
		MarginFloorPercent: 25,
		BudgetUpliftFactor: 1.2,
		StockDaysThreshold: 60,
		HeroStockDaysMax:   20,
		ChurnActiveDays:    30,
		ChurnWarmDays:      60,
	}
}

func float64Ptr(v float64) *float64 { return &v }
func intPtr(v int) *int             { return &v }

func TestResolveSettings_NilTenantUsesDefaults(t *testing.T) {
	setTestConfig()

	policy := ResolveSettings(nil)
	assert.Equal(t, 25.0, policy.MarginFloorPercent, "Tenant nil phải dùng MarginFloorPercent mặc định")
	assert.Equal(t, 1.2, policy.BudgetUpliftFactor, "Tenant nil phải dùng BudgetUpliftFactor mặc định")
	assert.Equal(t, 60, policy.StockDaysThreshold, "Tenant nil phải dùng StockDaysThreshold mặc định")
	assert.Equal(t, 20, policy.HeroStockDaysMax, "Tenant nil phải dùng HeroStockDaysMax mặc định")
	assert.Equal(t, 30, policy.ChurnActiveDays, "Tenant nil phải dùng ChurnActiveDays mặc định")
	assert.Equal(t, 60, policy.ChurnWarmDays, "Tenant nil phải dùng ChurnWarmDays mặc định")
}

func TestResolveSettings_NilSettingsUsesDefaults(t *testing.T) {
	setTestConfig()

	tenant := &tenantmodels.Tenant{Name: "No Overrides", Slug: "no-overrides", Status: "active"}
	policy := ResolveSettings(tenant)
	assert.Equal(t, DefaultPolicy(), policy, "Tenant không có settings phải dùng toàn bộ defaults")
}

func TestResolveSettings_PartialOverride(t *testing.T) {
	setTestConfig()

	tenant := &tenantmodels.Tenant{
		Name:   "Premium Cosmetics",
		Slug:   "premium-cosmetics",
		Status: "active",
		Settings: &tenantmodels.TenantSettings{
			MarginFloorPercent: float64Ptr(30),
			ChurnActiveDays:    intPtr(20),
		},
	}

	policy := ResolveSettings(tenant)
	assert.Equal(t, 30.0, policy.MarginFloorPercent, "MarginFloorPercent phải lấy giá trị override")
	assert.Equal(t, 20, policy.ChurnActiveDays, "ChurnActiveDays phải lấy giá trị override")

	// Các field không override giữ nguyên defaults
	assert.Equal(t, 1.2, policy.BudgetUpliftFactor)
	assert.Equal(t, 60, policy.StockDaysThreshold)
	assert.Equal(t, 20, policy.HeroStockDaysMax)
	assert.Equal(t, 60, policy.ChurnWarmDays)
}

func TestResolveSettings_ZeroValueOverrideIsRespected(t *testing.T) {
	setTestConfig()

	// Con trỏ về 0 là override có chủ ý, khác với nil (không override)
	tenant := &tenantmodels.Tenant{
		Name:   "Zero Floor",
		Slug:   "zero-floor",
		Status: "active",
		Settings: &tenantmodels.TenantSettings{
			MarginFloorPercent: float64Ptr(0),
		},
	}

	policy := ResolveSettings(tenant)
	assert.Equal(t, 0.0, policy.MarginFloorPercent, "Override bằng 0 phải được tôn trọng, không rơi về default")
}
