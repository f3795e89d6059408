// Package logger quản lý các logrus logger theo tên, ghi file có rotation
// (lumberjack) và/hoặc stdout. Ghi log chạy qua AsyncHook nên đường xử lý
// request không bao giờ chờ file I/O.
package logger

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"sync"

	"github.com/sirupsen/logrus"
	"gopkg.in/natefinch/lumberjack.v2"
)

var (
	loggers   = make(map[string]*logrus.Logger)
	loggersMu sync.Mutex

	config *LogConfig

	// logRoot là thư mục gốc project, dùng để resolve LogPath tương đối
	logRoot string
)

// Init khởi tạo hệ thống logging. cfg nil dùng DefaultConfig.
func Init(cfg *LogConfig) error {
	if cfg == nil {
		cfg = DefaultConfig()
	}
	config = cfg

	root, err := resolveLogRoot()
	if err != nil {
		return fmt.Errorf("không xác định được thư mục gốc cho logs: %w", err)
	}
	logRoot = root

	if err := os.MkdirAll(logDir(), 0755); err != nil {
		return fmt.Errorf("không tạo được thư mục logs: %w", err)
	}
	return nil
}

// resolveLogRoot tìm thư mục gốc project: LOG_ROOT_DIR nếu được set,
// nếu không đi lên từ working directory tới khi gặp thư mục config hoặc logs.
// Cùng quy ước với cách server resolve đường dẫn TLS cert.
func resolveLogRoot() (string, error) {
	if envRoot := os.Getenv("LOG_ROOT_DIR"); envRoot != "" {
		// Resolve symlink khi chạy qua systemd
		if resolved, err := filepath.EvalSymlinks(envRoot); err == nil {
			return resolved, nil
		}
		return envRoot, nil
	}

	wd, err := os.Getwd()
	if err != nil {
		return "", err
	}

	dir := wd
	for i := 0; i < 5; i++ {
		if _, err := os.Stat(filepath.Join(dir, "config")); err == nil {
			return dir, nil
		}
		if _, err := os.Stat(filepath.Join(dir, "logs")); err == nil {
			return dir, nil
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			break
		}
		dir = parent
	}
	return wd, nil
}

// logDir trả về đường dẫn thư mục chứa file log.
func logDir() string {
	if filepath.IsAbs(config.LogPath) {
		return config.LogPath
	}
	return filepath.Join(logRoot, config.LogPath)
}

// logFile trả về đường dẫn file log của logger name.
func logFile(name string) string {
	var filename string
	switch name {
	case "app":
		filename = config.AppFile
	case "worker":
		filename = config.WorkerFile
	default:
		filename = name + ".log"
	}
	return filepath.Join(logDir(), filename)
}

// GetLogger trả về logger theo tên, tạo mới nếu chưa có.
// Gọi trước Init sẽ tự init với config mặc định.
func GetLogger(name string) *logrus.Logger {
	loggersMu.Lock()
	defer loggersMu.Unlock()

	if config == nil {
		if err := Init(nil); err != nil {
			panic(fmt.Sprintf("Failed to initialize logger: %v", err))
		}
	}

	if log, ok := loggers[name]; ok {
		return log
	}
	log := newLogger(name)
	loggers[name] = log
	return log
}

// GetAppLogger trả về logger chính của server API.
func GetAppLogger() *logrus.Logger {
	return GetLogger("app")
}

// GetWorkerLogger trả về logger của refresh worker và refresh hook.
// Tách file riêng để lần chạy batch hàng ngày không trộn vào log request.
func GetWorkerLogger() *logrus.Logger {
	return GetLogger("worker")
}

func newLogger(name string) *logrus.Logger {
	log := logrus.New()

	level, err := logrus.ParseLevel(config.Level)
	if err != nil {
		level = logrus.InfoLevel
	}
	log.SetLevel(level)
	log.SetFormatter(newFormatter())
	log.SetReportCaller(true)

	// FilterHook phải đứng trước AsyncHook: entry bị loại được đánh dấu
	// trước khi vào queue, không chiếm chỗ buffer
	log.AddHook(NewFilterHook(config))

	if writers := buildWriters(name); len(writers) > 0 {
		log.AddHook(NewAsyncHook(writers, 1000))
		// Mọi ghi thật đi qua AsyncHook; output trực tiếp phải discard
		// để không ghi trùng mỗi entry hai lần
		log.SetOutput(io.Discard)
	}

	log.WithFields(logrus.Fields{
		"log_file": logFile(name),
		"level":    log.GetLevel().String(),
		"format":   config.Format,
		"output":   config.Output,
	}).Info("Logger initialized successfully")

	return log
}

func newFormatter() logrus.Formatter {
	if config.Format == "json" {
		return &logrus.JSONFormatter{
			TimestampFormat: "2006-01-02 15:04:05.000",
			FieldMap: logrus.FieldMap{
				logrus.FieldKeyTime:  "timestamp",
				logrus.FieldKeyLevel: "level",
				logrus.FieldKeyMsg:   "message",
				logrus.FieldKeyFunc:  "function",
				logrus.FieldKeyFile:  "file",
			},
		}
	}
	return &logrus.TextFormatter{
		FullTimestamp:   true,
		TimestampFormat: "2006-01-02 15:04:05.000",
		CallerPrettyfier: func(f *runtime.Frame) (string, string) {
			parts := strings.Split(f.Function, ".")
			return parts[len(parts)-1], fmt.Sprintf("%s:%d", filepath.Base(f.File), f.Line)
		},
	}
}

// buildWriters dựng danh sách writer theo config.Output.
// File writer có rotation qua lumberjack.
func buildWriters(name string) []io.Writer {
	var writers []io.Writer
	if config.Output == "file" || config.Output == "both" {
		writers = append(writers, &lumberjack.Logger{
			Filename:   logFile(name),
			MaxSize:    config.MaxSize,
			MaxBackups: config.MaxBackups,
			MaxAge:     config.MaxAge,
			Compress:   config.Compress,
		})
	}
	if config.Output == "stdout" || config.Output == "both" {
		writers = append(writers, os.Stdout)
	}
	return writers
}
