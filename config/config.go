package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/caarlos0/env"
	"github.com/joho/godotenv"
)

// Configuration chứa thông tin tĩnh cần thiết để chạy ứng dụng.
// Bao gồm thông tin cơ sở dữ liệu, HTTP server và các hằng số chính sách
// mặc định của engine phân khúc (tenant có thể override qua tenants.settings).
type Configuration struct {
	InitMode              bool   `env:"INITMODE" envDefault:"false"`               // Chế độ khởi tạo
	Address               string `env:"ADDRESS" envDefault:"8080"`                 // Cổng server
	MongoDB_ConnectionURI string `env:"MONGODB_CONNECTION_URI,required"`           // URL kết nối cơ sở dữ liệu
	MongoDB_DBName        string `env:"MONGODB_DBNAME,required"`                   // Tên cơ sở dữ liệu
	CORS_Origins          string `env:"CORS_ORIGINS" envDefault:"*"`               // Các origins được phép (phân cách bởi dấu phẩy, * = tất cả)
	CORS_AllowCredentials bool   `env:"CORS_ALLOW_CREDENTIALS" envDefault:"false"` // Cho phép gửi credentials
	RateLimit_Max         int    `env:"RATE_LIMIT_MAX" envDefault:"100"`           // Số request tối đa trong window (0 = disable rate limit)
	RateLimit_Window      int    `env:"RATE_LIMIT_WINDOW" envDefault:"60"`         // Thời gian window (giây)
	RateLimit_Enabled     bool   `env:"RATE_LIMIT_ENABLED" envDefault:"true"`      // Bật/tắt rate limiting

	// TLS/HTTPS Configuration
	EnableTLS   bool   `env:"ENABLE_TLS" envDefault:"false"` // Bật HTTPS
	TLSCertFile string `env:"TLS_CERT_FILE"`                 // Đường dẫn đến file certificate (.crt hoặc .pem)
	TLSKeyFile  string `env:"TLS_KEY_FILE"`                  // Đường dẫn đến file private key (.key)

	// Segment Refresh Worker Configuration
	SegmentRefreshEnabled   bool   `env:"SEGMENT_REFRESH_ENABLED" envDefault:"true"`   // Bật/tắt worker refresh định kỳ
	SegmentRefreshInterval  int    `env:"SEGMENT_REFRESH_INTERVAL" envDefault:"24"`    // Khoảng cách giữa các lần chạy (giờ)
	SegmentRefreshBatchSize int    `env:"SEGMENT_REFRESH_BATCH_SIZE" envDefault:"200"` // Số bản ghi tối đa mỗi batch
	SegmentRefreshMode      string `env:"SEGMENT_REFRESH_MODE" envDefault:"smart"`     // full | smart

	// Segmentation Policy Defaults — giá trị mặc định khi tenant không override.
	// Xem tenantmodels.TenantSettings cho override per-tenant.
	MarginFloorPercent float64 `env:"MARGIN_FLOOR_PERCENT" envDefault:"25"`  // Sàn biên lợi nhuận (điểm %)
	BudgetUpliftFactor float64 `env:"BUDGET_UPLIFT_FACTOR" envDefault:"1.2"` // Hệ số ước tính ngân sách từ avgBasket
	StockDaysThreshold int     `env:"STOCK_DAYS_THRESHOLD" envDefault:"60"`  // Ngưỡng stockDays cho SlowMover / inventoryPressure
	HeroStockDaysMax   int     `env:"HERO_STOCK_DAYS_MAX" envDefault:"20"`   // Ngưỡng stockDays tối đa cho Hero
	ChurnActiveDays    int     `env:"CHURN_ACTIVE_DAYS" envDefault:"30"`     // Dưới ngưỡng này là Active
	ChurnWarmDays      int     `env:"CHURN_WARM_DAYS" envDefault:"60"`       // Từ ChurnActiveDays đến ngưỡng này là Warm, trên là AtRisk
}

// getEnvPath trả về đường dẫn đến file env dựa trên môi trường
func getEnvPath() string {
	// Mặc định sử dụng môi trường development
	env := os.Getenv("GO_ENV")
	if env == "" {
		env = "development"
	}

	// Tìm thư mục config
	currentDir, err := os.Getwd()
	if err != nil {
		// Sử dụng fmt.Printf vì logger có thể chưa được init ở đây
		fmt.Printf("Không thể lấy được thư mục hiện tại: %v\n", err)
		return ""
	}

	// Tìm thư mục config/env
	for {
		envDir := filepath.Join(currentDir, "config", "env")
		if _, err := os.Stat(envDir); err == nil {
			// Tìm thấy thư mục config/env
			envPath := filepath.Join(envDir, fmt.Sprintf("%s.env", env))
			return envPath
		}

		// Đi lên thư mục cha
		parentDir := filepath.Dir(currentDir)
		if parentDir == currentDir {
			return ""
		}
		currentDir = parentDir
	}
}

// NewConfig sẽ đọc dữ liệu cấu hình từ file env được cung cấp
func NewConfig(files ...string) *Configuration {
	envPath := getEnvPath()
	if envPath == "" {
		// Sử dụng fmt.Printf vì logger có thể chưa được init ở đây
		fmt.Printf("Không tìm thấy thư mục config/env\n")
		return nil
	}

	err := godotenv.Load(envPath)
	if err != nil {
		// Sử dụng fmt.Printf vì logger có thể chưa được init ở đây
		fmt.Printf("Không thể load file env tại %s: %v\n", envPath, err)
		return nil
	}

	cfg := Configuration{}
	err = env.Parse(&cfg)
	if err != nil {
		fmt.Printf("Lỗi khi parse config: %+v\n", err)
		return nil
	}

	return &cfg
}
