package main

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"

	catalogmodels "retail_insights/internal/api/catalog/models"
	catalogsvc "retail_insights/internal/api/catalog/service"
	tenantmodels "retail_insights/internal/api/tenant/models"
	tenantsvc "retail_insights/internal/api/tenant/service"
	"retail_insights/internal/logger"
)

// seedRegions là dữ liệu tham chiếu region (shared, không thuộc tenant nào).
// Khách hàng được gán region qua city lúc refresh phân khúc.
var seedRegions = []catalogmodels.Region{
	{
		Name:         "Marmara",
		ClimateType:  "Temperate",
		Trend:        "SKINCARE",
		MedianBasket: 75.0,
		Cities:       []string{"Istanbul", "Bursa", "Kocaeli"},
		SeasonalNeeds: map[string][]string{
			"winter": {"nemlendirici", "dudak-bakım", "el-kremi"},
			"summer": {"SPF", "hafif-nemlendirici", "mat-makyaj"},
			"spring": {"anti-aging", "serum", "temizleyici"},
			"autumn": {"onarıcı", "besleyici-krem", "maske"},
		},
	},
	{
		Name:         "Ege",
		ClimateType:  "Mediterranean",
		Trend:        "FRAGRANCE",
		MedianBasket: 80.0,
		Cities:       []string{"Izmir", "Aydin", "Mugla"},
		SeasonalNeeds: map[string][]string{
			"winter": {"nemlendirici", "besleyici-krem"},
			"summer": {"SPF", "güneş-sonrası", "hafif-parfüm"},
			"spring": {"serum", "temizleyici"},
			"autumn": {"onarıcı", "maske"},
		},
	},
	{
		Name:         "Akdeniz",
		ClimateType:  "Mediterranean",
		Trend:        "SKINCARE",
		MedianBasket: 85.0,
		Cities:       []string{"Antalya", "Mersin", "Adana"},
		SeasonalNeeds: map[string][]string{
			"winter": {"nemlendirici", "el-kremi"},
			"summer": {"SPF", "güneş-sonrası", "mat-makyaj"},
			"spring": {"serum", "temizleyici"},
			"autumn": {"onarıcı", "besleyici-krem"},
		},
	},
	{
		Name:         "İç Anadolu",
		ClimateType:  "Continental",
		Trend:        "MAKEUP",
		MedianBasket: 70.0,
		Cities:       []string{"Ankara", "Konya", "Kayseri"},
		SeasonalNeeds: map[string][]string{
			"winter": {"yoğun-nemlendirici", "dudak-bakım", "el-kremi"},
			"summer": {"SPF", "hafif-nemlendirici"},
			"spring": {"serum", "temizleyici"},
			"autumn": {"onarıcı", "maske"},
		},
	},
	{
		Name:         "Karadeniz",
		ClimateType:  "Oceanic",
		Trend:        "WELLNESS",
		MedianBasket: 65.0,
		Cities:       []string{"Trabzon", "Samsun", "Rize"},
		SeasonalNeeds: map[string][]string{
			"winter": {"nemlendirici", "besleyici-krem"},
			"summer": {"hafif-nemlendirici", "SPF"},
			"spring": {"temizleyici", "serum"},
			"autumn": {"onarıcı", "maske"},
		},
	},
	{
		Name:         "Güneydoğu Anadolu",
		ClimateType:  "Continental",
		Trend:        "PERSONALCARE",
		MedianBasket: 60.0,
		Cities:       []string{"Gaziantep", "Diyarbakir", "Sanliurfa"},
		SeasonalNeeds: map[string][]string{
			"winter": {"yoğun-nemlendirici", "el-kremi"},
			"summer": {"SPF", "mat-makyaj"},
			"spring": {"temizleyici", "serum"},
			"autumn": {"onarıcı", "besleyici-krem"},
		},
	},
}

func InitDefaultData() {
	log := logger.GetAppLogger()
	log.Info("🔄 [INIT] Starting InitDefaultData...")

	ctx := context.Background()

	// 1. Seed dữ liệu tham chiếu regions (upsert theo name, chạy lại an toàn)
	log.Info("🔄 [INIT] Step 1: Seeding reference regions...")
	regionService, err := catalogsvc.NewRegionService()
	if err != nil {
		log.Fatalf("Failed to initialize region service: %v", err)
	}
	for _, region := range seedRegions {
		if _, err := regionService.Upsert(ctx, bson.M{"name": region.Name}, region); err != nil {
			log.WithError(err).Errorf("❌ [INIT] Step 1: Failed to seed region %s", region.Name)
		}
	}
	log.Infof("✅ [INIT] Step 1: Seeded %d reference regions", len(seedRegions))

	// 2. Khởi tạo tenant mặc định (nếu chưa có)
	// Tenant mặc định không override settings nào: dùng toàn bộ policy defaults từ config.
	log.Info("🔄 [INIT] Step 2: Initializing default tenant...")
	tenantService, err := tenantsvc.NewTenantService()
	if err != nil {
		log.Fatalf("Failed to initialize tenant service: %v", err)
	}
	defaultTenant := tenantmodels.Tenant{
		Name:   "Default Tenant",
		Slug:   "default",
		Status: "active",
	}
	tenant, err := tenantService.Upsert(ctx, bson.M{"slug": defaultTenant.Slug}, defaultTenant)
	if err != nil {
		log.WithError(err).Error("❌ [INIT] Step 2: Failed to initialize default tenant")
		log.Warnf("Failed to initialize default tenant: %v", err)
	} else {
		log.Infof("✅ [INIT] Step 2: Default tenant ready (ID: %s)", tenant.ID.Hex())
	}

	log.Info("✅ [INIT] InitDefaultData completed successfully")
}
