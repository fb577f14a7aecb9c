package logging

import "context"

// Record is a single captured log entry.
type Record struct {
	Level string
	Msg   string
	Args  []any
}

// CaptureLogger records every entry instead of writing it anywhere.
// Tests use it to assert on emitted warnings.
type CaptureLogger struct {
	Records []Record
	fields  []any
}

func NewCaptureLogger() *CaptureLogger {
	return &CaptureLogger{}
}

func (c *CaptureLogger) log(level, msg string, args ...any) {
	all := append(append([]any{}, c.fields...), args...)
	c.Records = append(c.Records, Record{Level: level, Msg: msg, Args: all})
}

func (c *CaptureLogger) Info(ctx context.Context, msg string, args ...any) {
	c.log("INFO", msg, args...)
}

func (c *CaptureLogger) Warn(ctx context.Context, msg string, args ...any) {
	c.log("WARN", msg, args...)
}

func (c *CaptureLogger) Error(ctx context.Context, msg string, args ...any) {
	c.log("ERROR", msg, args...)
}

// With returns the same logger with extra fields attached; captured records
// stay in one place so tests can inspect them.
func (c *CaptureLogger) With(args ...any) Logger {
	c.fields = append(c.fields, args...)
	return c
}

// ByLevel returns the captured records with the given level.
func (c *CaptureLogger) ByLevel(level string) []Record {
	var out []Record
	for _, r := range c.Records {
		if r.Level == level {
			out = append(out, r)
		}
	}
	return out
}
