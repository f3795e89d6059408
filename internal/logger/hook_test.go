// Package logger - Test async hook và filter hook.
package logger

import (
	"bytes"
	"io"
	"strings"
	"testing"

	"github.com/sirupsen/logrus"
)

func newTestEntry(msg string, level logrus.Level) *logrus.Entry {
	log := logrus.New()
	log.SetFormatter(&logrus.TextFormatter{DisableTimestamp: true})
	entry := logrus.NewEntry(log)
	entry.Message = msg
	entry.Level = level
	return entry
}

func TestAsyncHook_WritesEntryAfterClose(t *testing.T) {
	var buf bytes.Buffer
	hook := NewAsyncHook([]io.Writer{&buf}, 10)

	if err := hook.Fire(newTestEntry("refresh hoàn tất", logrus.InfoLevel)); err != nil {
		t.Fatalf("Fire trả về lỗi: %v", err)
	}
	// Close đợi queue được ghi hết nên sau Close buffer phải có entry
	if err := hook.Close(); err != nil {
		t.Fatalf("Close trả về lỗi: %v", err)
	}

	if !strings.Contains(buf.String(), "refresh hoàn tất") {
		t.Errorf("writer phải chứa message, nhận: %q", buf.String())
	}
}

func TestAsyncHook_SkipsFilteredEntry(t *testing.T) {
	var buf bytes.Buffer
	hook := NewAsyncHook([]io.Writer{&buf}, 10)

	entry := newTestEntry("bị loại", logrus.DebugLevel)
	entry.Data["_filtered"] = true
	_ = hook.Fire(entry)
	_ = hook.Close()

	if buf.Len() != 0 {
		t.Errorf("entry bị filter không được ghi, nhận: %q", buf.String())
	}
}

func TestAsyncHook_FireAfterCloseWritesSynchronously(t *testing.T) {
	var buf bytes.Buffer
	hook := NewAsyncHook([]io.Writer{&buf}, 10)
	_ = hook.Close()

	if err := hook.Fire(newTestEntry("sau shutdown", logrus.WarnLevel)); err != nil {
		t.Fatalf("Fire sau Close trả về lỗi: %v", err)
	}
	if !strings.Contains(buf.String(), "sau shutdown") {
		t.Errorf("Fire sau Close phải ghi đồng bộ, nhận: %q", buf.String())
	}
}

func TestFilterHook_MarksEntriesBelowLevel(t *testing.T) {
	hook := NewFilterHook(&LogConfig{FilterLevel: "warn"})

	info := newTestEntry("info", logrus.InfoLevel)
	if err := hook.Fire(info); err != nil {
		t.Fatalf("Fire trả về lỗi: %v", err)
	}
	if filtered, _ := info.Data["_filtered"].(bool); !filtered {
		t.Error("entry info dưới ngưỡng warn phải bị đánh dấu _filtered")
	}

	warn := newTestEntry("warn", logrus.WarnLevel)
	_ = hook.Fire(warn)
	if _, ok := warn.Data["_filtered"]; ok {
		t.Error("entry đúng ngưỡng warn không được đánh dấu _filtered")
	}
}

func TestFilterHook_DisabledWhenLevelEmpty(t *testing.T) {
	hook := NewFilterHook(&LogConfig{})
	entry := newTestEntry("debug", logrus.DebugLevel)
	_ = hook.Fire(entry)
	if _, ok := entry.Data["_filtered"]; ok {
		t.Error("FilterLevel rỗng không được filter entry nào")
	}
}
