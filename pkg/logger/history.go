package logger

import (
	"sync"
	"time"

	"go.uber.org/zap/zapcore"
)

// DefaultHistorySize bounds how many log entries are retained for the
// monitoring surface.
const DefaultHistorySize = 512

// Entry is a retained structured log record.
type Entry struct {
	Time    time.Time
	Level   zapcore.Level
	Message string
	Fields  map[string]any
}

// History is a bounded ring buffer of log entries. It is written through a
// zapcore.Core so callers never replace or intercept the process logger.
type History struct {
	mu      sync.Mutex
	entries []Entry
	next    int
	full    bool
}

// NewHistory creates a History retaining at most size entries.
func NewHistory(size int) *History {
	if size <= 0 {
		size = DefaultHistorySize
	}
	return &History{entries: make([]Entry, size)}
}

func (h *History) add(e Entry) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.entries[h.next] = e
	h.next = (h.next + 1) % len(h.entries)
	if h.next == 0 {
		h.full = true
	}
}

// Entries returns retained entries, oldest first.
func (h *History) Entries() []Entry {
	h.mu.Lock()
	defer h.mu.Unlock()

	if !h.full {
		out := make([]Entry, h.next)
		copy(out, h.entries[:h.next])
		return out
	}

	out := make([]Entry, 0, len(h.entries))
	out = append(out, h.entries[h.next:]...)
	out = append(out, h.entries[:h.next]...)
	return out
}

// Core returns a zapcore.Core that records entries into the history.
func (h *History) Core(enab zapcore.LevelEnabler) zapcore.Core {
	return &historyCore{history: h, enab: enab}
}

type historyCore struct {
	history *History
	enab    zapcore.LevelEnabler
	fields  []zapcore.Field
}

func (c *historyCore) Enabled(l zapcore.Level) bool {
	return c.enab.Enabled(l)
}

func (c *historyCore) With(fields []zapcore.Field) zapcore.Core {
	clone := &historyCore{history: c.history, enab: c.enab}
	clone.fields = append(clone.fields, c.fields...)
	clone.fields = append(clone.fields, fields...)
	return clone
}

func (c *historyCore) Check(ent zapcore.Entry, ce *zapcore.CheckedEntry) *zapcore.CheckedEntry {
	if c.Enabled(ent.Level) {
		return ce.AddCore(ent, c)
	}
	return ce
}

func (c *historyCore) Write(ent zapcore.Entry, fields []zapcore.Field) error {
	enc := zapcore.NewMapObjectEncoder()
	for _, f := range c.fields {
		f.AddTo(enc)
	}
	for _, f := range fields {
		f.AddTo(enc)
	}

	c.history.add(Entry{
		Time:    ent.Time,
		Level:   ent.Level,
		Message: ent.Message,
		Fields:  enc.Fields,
	})
	return nil
}

func (c *historyCore) Sync() error { return nil }
