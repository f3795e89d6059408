package logger

import "os"

// LogConfig cấu hình hệ thống logging.
// Đọc từ environment variables qua DefaultConfig, không qua config package
// vì logger phải init được trước khi config init.
type LogConfig struct {
	Level  string // debug | info | warn | error
	Format string // json | text
	Output string // file | stdout | both

	LogPath string // Thư mục chứa file log (tương đối so với root project)

	// Tên file log theo từng logger. Server API ghi vào AppFile,
	// refresh worker và refresh hook ghi vào WorkerFile.
	AppFile    string
	WorkerFile string

	// Rotation (lumberjack)
	MaxSize    int  // MB mỗi file
	MaxBackups int  // Số file cũ giữ lại
	MaxAge     int  // Số ngày giữ file cũ
	Compress   bool // Nén file cũ

	// MinLevel cho FilterHook — entry dưới level này bị đánh dấu bỏ qua
	FilterLevel string
}

// DefaultConfig trả về cấu hình mặc định, cho phép override qua env.
func DefaultConfig() *LogConfig {
	cfg := &LogConfig{
		Level:       envOr("LOG_LEVEL", "info"),
		Format:      envOr("LOG_FORMAT", "text"),
		Output:      envOr("LOG_OUTPUT", "both"),
		LogPath:     envOr("LOG_PATH", "logs"),
		AppFile:     "app.log",
		WorkerFile:  "worker.log",
		MaxSize:     100,
		MaxBackups:  5,
		MaxAge:      30,
		Compress:    true,
		FilterLevel: envOr("LOG_FILTER_LEVEL", ""),
	}
	return cfg
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
