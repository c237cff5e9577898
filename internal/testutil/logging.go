package testutil

import (
	"context"
	"log/slog"
	"strings"
	"sync"
)

// LogRecorder is a slog.Handler that keeps every record for assertions.
type LogRecorder struct {
	mu      sync.Mutex
	records []LogRecord
}

type LogRecord struct {
	Level   slog.Level
	Message string
	Attrs   map[string]any
}

func NewLogRecorder() *LogRecorder {
	return &LogRecorder{
		records: make([]LogRecord, 0),
	}
}

// Logger returns a slog.Logger writing into the recorder.
func (h *LogRecorder) Logger() *slog.Logger {
	return slog.New(h)
}

func (h *LogRecorder) Enabled(_ context.Context, _ slog.Level) bool {
	return true
}

func (h *LogRecorder) Handle(_ context.Context, record slog.Record) error {
	h.mu.Lock()
	defer h.mu.Unlock()

	attrs := make(map[string]any)
	record.Attrs(func(attr slog.Attr) bool {
		attrs[attr.Key] = attr.Value.Any()
		return true
	})
	h.records = append(h.records, LogRecord{
		Level:   record.Level,
		Message: record.Message,
		Attrs:   attrs,
	})

	return nil
}

func (h *LogRecorder) WithAttrs(_ []slog.Attr) slog.Handler {
	return h
}

func (h *LogRecorder) WithGroup(_ string) slog.Handler {
	return h
}

func (h *LogRecorder) Records() []LogRecord {
	h.mu.Lock()
	defer h.mu.Unlock()
	return append([]LogRecord(nil), h.records...)
}

// ContainsMessage reports whether any record at the level carries the message.
func (h *LogRecorder) ContainsMessage(level slog.Level, message string) bool {
	for _, record := range h.Records() {
		if record.Level == level && record.Message == message {
			return true
		}
	}
	return false
}

// ContainsSubstring reports whether any record at the level contains the fragment.
func (h *LogRecorder) ContainsSubstring(level slog.Level, fragment string) bool {
	for _, record := range h.Records() {
		if record.Level == level && strings.Contains(record.Message, fragment) {
			return true
		}
	}
	return false
}

func (h *LogRecorder) CountByLevel(level slog.Level) int {
	count := 0
	for _, record := range h.Records() {
		if record.Level == level {
			count++
		}
	}
	return count
}

func (h *LogRecorder) Reset() {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.records = h.records[:0]
}
