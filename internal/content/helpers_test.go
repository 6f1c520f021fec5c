package content

import (
	"context"
	"sync"

	"github.com/nuwa-protocol/nuwa-web/pkg/interfaces"
)

type testItem struct {
	Entity
}

func item(dir, title, key string, hint *float64) testItem {
	return testItem{Entity: Entity{Dir: dir, Title: title, IdentityKey: key, OrderHint: hint}}
}

func hint(v float64) *float64 {
	return &v
}

func dirs[T Item](items []T) []string {
	out := make([]string, len(items))
	for i, it := range items {
		out[i] = it.Meta().Dir
	}
	return out
}

type logEntry struct {
	level  string
	msg    string
	fields map[string]any
}

type captureLogger struct {
	mu      *sync.Mutex
	entries *[]logEntry
	fields  map[string]any
}

func newCaptureLogger() *captureLogger {
	return &captureLogger{mu: &sync.Mutex{}, entries: &[]logEntry{}}
}

func (c *captureLogger) record(level, msg string, args []any) {
	fields := map[string]any{}
	for k, v := range c.fields {
		fields[k] = v
	}
	for i := 0; i+1 < len(args); i += 2 {
		if key, ok := args[i].(string); ok {
			fields[key] = args[i+1]
		}
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	*c.entries = append(*c.entries, logEntry{level: level, msg: msg, fields: fields})
}

func (c *captureLogger) Trace(msg string, args ...any) { c.record("trace", msg, args) }
func (c *captureLogger) Debug(msg string, args ...any) { c.record("debug", msg, args) }
func (c *captureLogger) Info(msg string, args ...any)  { c.record("info", msg, args) }
func (c *captureLogger) Warn(msg string, args ...any)  { c.record("warn", msg, args) }
func (c *captureLogger) Error(msg string, args ...any) { c.record("error", msg, args) }
func (c *captureLogger) Fatal(msg string, args ...any) { c.record("fatal", msg, args) }

func (c *captureLogger) WithFields(fields map[string]any) interfaces.Logger {
	merged := map[string]any{}
	for k, v := range c.fields {
		merged[k] = v
	}
	for k, v := range fields {
		merged[k] = v
	}
	return &captureLogger{mu: c.mu, entries: c.entries, fields: merged}
}

func (c *captureLogger) WithContext(context.Context) interfaces.Logger { return c }

func (c *captureLogger) warnings() []logEntry {
	c.mu.Lock()
	defer c.mu.Unlock()
	var out []logEntry
	for _, entry := range *c.entries {
		if entry.level == "warn" {
			out = append(out, entry)
		}
	}
	return out
}
