package logger

import (
	"github.com/sirupsen/logrus"
)

// FilterHook đánh dấu các entry dưới FilterLevel bằng field "_filtered".
// AsyncHook đọc field này và bỏ qua entry khi ghi — filter xảy ra trước khi
// entry vào async queue nên không tốn buffer cho log bị loại.
type FilterHook struct {
	minLevel logrus.Level
	enabled  bool
}

// NewFilterHook tạo FilterHook từ LogConfig. FilterLevel rỗng = không filter.
func NewFilterHook(cfg *LogConfig) *FilterHook {
	if cfg == nil || cfg.FilterLevel == "" {
		return &FilterHook{enabled: false}
	}
	level, err := logrus.ParseLevel(cfg.FilterLevel)
	if err != nil {
		return &FilterHook{enabled: false}
	}
	return &FilterHook{minLevel: level, enabled: true}
}

// Levels trả về các log levels mà hook này xử lý
func (h *FilterHook) Levels() []logrus.Level {
	return logrus.AllLevels
}

// Fire đánh dấu entry bị filter. Không trả lỗi để không chặn các hook khác.
func (h *FilterHook) Fire(entry *logrus.Entry) error {
	if !h.enabled {
		return nil
	}
	// logrus level càng lớn càng ít nghiêm trọng (Debug=5 > Info=4 > ... )
	if entry.Level > h.minLevel {
		entry.Data["_filtered"] = true
	}
	return nil
}
