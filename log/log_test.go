package log

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"strings"
	"sync"
	"testing"
)

func TestLogger_Make_DefaultConfiguration(t *testing.T) {
	var buf bytes.Buffer

	logger := Make(&buf)

	if logger.Level() != LevelInfo {
		t.Errorf("expected default level info, got %v", logger.Level())
	}

	if logger.Format() != FormatJSON {
		t.Errorf("expected default format json, got %v", logger.Format())
	}

	if logger.cfg.caller {
		t.Error("expected caller disabled by default")
	}

	if !logger.cfg.pretty {
		t.Error("expected pretty enabled by default")
	}
}

func TestLogger_ZeroValue_Discards(t *testing.T) {
	var logger Logger

	logger.Error("dropped")

	if logger.Enabled(context.Background(), LevelError) {
		t.Error("zero value logger reports enabled")
	}

	if logger.Level() != DefaultLevel {
		t.Errorf("expected %v, got %v", DefaultLevel, logger.Level())
	}
}

func TestLogger_WithLevel_FiltersMessages(t *testing.T) {
	var buf bytes.Buffer

	logger := Make(&buf, WithLevel(LevelError), WithPretty(false))

	logger.Info("info message")

	if buf.Len() > 0 {
		t.Errorf("info message logged at error level: %s", buf.String())
	}

	logger.Error("error message")

	if !strings.Contains(buf.String(), "error message") {
		t.Error("error message not logged at error level")
	}
}

func TestLogger_Trace_LevelName(t *testing.T) {
	var buf bytes.Buffer

	logger := Make(&buf, WithLevel(LevelTrace), WithPretty(false))
	logger.Trace("fine grained")

	var rec map[string]any
	if err := json.Unmarshal(buf.Bytes(), &rec); err != nil {
		t.Fatalf("invalid JSON output %q: %v", buf.String(), err)
	}

	if rec[slog.LevelKey] != "TRACE" {
		t.Errorf("expected level TRACE, got %v", rec[slog.LevelKey])
	}
}

func TestLogger_WithCaller_IncludesSource(t *testing.T) {
	var buf bytes.Buffer

	logger := Make(&buf, WithCaller(true), WithPretty(false))
	logger.Info("where am i")

	if !strings.Contains(buf.String(), "log_test.go") {
		t.Errorf("expected caller file in output, got: %s", buf.String())
	}
}

func TestLogger_Wrap_OverridesConfiguration(t *testing.T) {
	var buf bytes.Buffer

	base := Make(&buf, WithPretty(false))
	wrapped := base.Wrap(WithFormat(FormatText), WithLevel(LevelDebug))

	if base.Format() != FormatJSON || base.Level() != LevelInfo {
		t.Error("Wrap modified the receiver")
	}

	wrapped.Debug("text message")

	if !strings.Contains(buf.String(), "msg=\"text message\"") {
		t.Errorf("expected text output, got: %s", buf.String())
	}
}

func TestLogger_With_AddsAttributes(t *testing.T) {
	tests := []struct {
		name   string
		pretty bool
	}{
		{"plain", false},
		{"pretty", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer

			logger := Make(&buf,
				WithFormat(FormatText),
				WithPretty(tt.pretty),
			).With(slog.String("run", "abc123"))

			logger.Info("with attrs", slog.Int("rows", 3))

			out := buf.String()
			for _, want := range []string{"run", "abc123", "rows", "3"} {
				if !strings.Contains(out, want) {
					t.Errorf("expected %q in output, got: %s", want, out)
				}
			}
		})
	}
}

func TestLogger_Pretty_JSONLayout(t *testing.T) {
	var buf bytes.Buffer

	logger := Make(&buf, WithTimeLayout(""))
	logger.Warn("careful", slog.Bool("ok", false))

	out := buf.String()

	if !strings.HasPrefix(out, "{\n") || !strings.HasSuffix(out, "\n}\n") {
		t.Errorf("expected multiline object, got: %q", out)
	}

	if strings.Contains(out, slog.TimeKey) {
		t.Errorf("expected timestamp to be omitted, got: %q", out)
	}

	for _, want := range []string{"WARN", "careful", "false"} {
		if !strings.Contains(out, want) {
			t.Errorf("expected %q in output, got: %q", want, out)
		}
	}
}

func TestLogger_ConcurrentUse(t *testing.T) {
	var (
		buf bytes.Buffer
		mu  sync.Mutex
		wg  sync.WaitGroup
	)

	logger := Make(writerFunc(func(p []byte) (int, error) {
		mu.Lock()
		defer mu.Unlock()

		return buf.Write(p)
	}), WithPretty(false))

	for i := range 16 {
		wg.Add(1)

		go func() {
			defer wg.Done()

			logger.With(slog.Int("worker", i)).Info("tick")
		}()
	}

	wg.Wait()

	if got := strings.Count(buf.String(), "tick"); got != 16 {
		t.Errorf("expected 16 records, got %d", got)
	}
}

type writerFunc func([]byte) (int, error)

func (f writerFunc) Write(p []byte) (int, error) { return f(p) }

func TestParseLevel(t *testing.T) {
	tests := []struct {
		in   string
		want Level
	}{
		{"trace", LevelTrace},
		{"TRACE", LevelTrace},
		{"debug", LevelDebug},
		{"info", LevelInfo},
		{"WARN", LevelWarn},
		{"error", LevelError},
		{"bogus", DefaultLevel},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			if got := ParseLevel(tt.in); got != tt.want {
				t.Errorf("ParseLevel(%q) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}

func TestParseFormat(t *testing.T) {
	if got := ParseFormat(" Text "); got != FormatText {
		t.Errorf("expected text, got %v", got)
	}

	if got := ParseFormat("xml"); got != DefaultFormat {
		t.Errorf("expected default format, got %v", got)
	}

	var names []string
	for name := range Formats() {
		names = append(names, name)
	}

	if strings.Join(names, ",") != "json,text" {
		t.Errorf("unexpected formats %v", names)
	}
}
