package logger

import (
	"fmt"
	"io"
	"os"
	"runtime/debug"
	"sync"

	"github.com/sirupsen/logrus"
)

// AsyncHook ghi log entry vào các writer trong một goroutine riêng.
// Fire không block: entry vào channel có buffer, channel đầy thì entry
// bị bỏ — request handling không bao giờ chờ file I/O.
type AsyncHook struct {
	writers []io.Writer
	entries chan *logrus.Entry
	wg      sync.WaitGroup
	mu      sync.Mutex
	closed  bool
}

// NewAsyncHook tạo hook với danh sách writer (file, stdout, ...).
// bufferSize <= 0 dùng 1000.
func NewAsyncHook(writers []io.Writer, bufferSize int) *AsyncHook {
	if bufferSize <= 0 {
		bufferSize = 1000
	}
	hook := &AsyncHook{
		writers: writers,
		entries: make(chan *logrus.Entry, bufferSize),
	}
	hook.wg.Add(1)
	go hook.run()
	return hook
}

// Levels trả về các log levels mà hook này xử lý
func (h *AsyncHook) Levels() []logrus.Level {
	return logrus.AllLevels
}

// Fire đưa entry vào queue. Hook đã đóng thì ghi đồng bộ để không mất
// log lúc shutdown.
func (h *AsyncHook) Fire(entry *logrus.Entry) error {
	h.mu.Lock()
	closed := h.closed
	h.mu.Unlock()

	if closed {
		data, err := formatEntry(entry)
		if err != nil {
			return err
		}
		for _, w := range h.writers {
			_, _ = w.Write(data)
		}
		return nil
	}

	select {
	case h.entries <- entry:
	default:
		// Channel đầy: bỏ entry. Không log được ở đây — sẽ tạo vòng lặp
	}
	return nil
}

// run tiêu thụ queue cho tới khi Close. Panic khi ghi được recover để
// goroutine logger không kéo sập server.
func (h *AsyncHook) run() {
	defer h.wg.Done()
	for entry := range h.entries {
		h.writeEntry(entry)
	}
}

func (h *AsyncHook) writeEntry(entry *logrus.Entry) {
	defer func() {
		if r := recover(); r != nil {
			// stderr trực tiếp — dùng logger ở đây sẽ tạo vòng lặp
			fmt.Fprintf(os.Stderr, "[LOGGER PANIC] recovered: %v\n", r)
			debug.PrintStack()
		}
	}()

	// FilterHook đánh dấu entry bị loại bằng field "_filtered"
	if filtered, ok := entry.Data["_filtered"].(bool); ok && filtered {
		return
	}
	if _, ok := entry.Data["_filtered"]; ok {
		entry = entry.Dup()
		delete(entry.Data, "_filtered")
	}

	data, err := formatEntry(entry)
	if err != nil {
		return
	}
	for _, w := range h.writers {
		// Một writer lỗi không chặn các writer còn lại
		_, _ = w.Write(data)
	}
}

// formatEntry format entry bằng formatter của logger gốc,
// fallback về entry.String khi logger không có formatter.
func formatEntry(entry *logrus.Entry) ([]byte, error) {
	if entry.Logger != nil && entry.Logger.Formatter != nil {
		return entry.Logger.Formatter.Format(entry)
	}
	line, err := entry.String()
	if err != nil {
		return nil, err
	}
	return []byte(line), nil
}

// Close đóng queue và đợi các entry còn lại được ghi xong.
func (h *AsyncHook) Close() error {
	h.mu.Lock()
	if h.closed {
		h.mu.Unlock()
		return nil
	}
	h.closed = true
	h.mu.Unlock()

	close(h.entries)
	h.wg.Wait()
	return nil
}
