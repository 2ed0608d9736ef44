package log

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"log/slog"
	"strconv"
	"strings"
	"sync"
)

// ANSI color codes for pretty printing.
const (
	colorReset   = "\033[0m"
	colorGray    = "\033[90m"
	colorRed     = "\033[31m"
	colorGreen   = "\033[32m"
	colorYellow  = "\033[33m"
	colorBlue    = "\033[34m"
	colorMagenta = "\033[35m"
	colorCyan    = "\033[36m"
)

// layout selects how a pretty record is arranged.
type layout int

const (
	// layoutText writes key=value pairs on a single line.
	layoutText layout = iota
	// layoutJSON writes an unquoted, indented object spanning several lines.
	layoutJSON
)

// prettyHandler is a colorized slog.Handler shared by both output formats.
type prettyHandler struct {
	opts   slog.HandlerOptions
	layout layout
	mu     *sync.Mutex
	w      io.Writer
	attrs  []slog.Attr // pre-resolved attributes from WithAttrs
	group  string      // dotted key prefix from WithGroup
}

func newPrettyHandler(
	w io.Writer,
	opts *slog.HandlerOptions,
	l layout,
) *prettyHandler {
	return &prettyHandler{
		opts:   *opts,
		layout: l,
		mu:     &sync.Mutex{},
		w:      w,
	}
}

func (h *prettyHandler) Enabled(_ context.Context, level slog.Level) bool {
	threshold := slog.LevelInfo
	if h.opts.Level != nil {
		threshold = h.opts.Level.Level()
	}

	return level >= threshold
}

func (h *prettyHandler) Handle(_ context.Context, r slog.Record) error {
	var rec record

	if !r.Time.IsZero() {
		rec.add(h.replace(slog.Time(slog.TimeKey, r.Time)))
	}

	rec.add(h.replace(slog.Any(slog.LevelKey, r.Level)))

	if h.opts.AddSource {
		if src := r.Source(); src != nil {
			rec.add(slog.String(
				slog.SourceKey,
				src.File+":"+strconv.Itoa(src.Line),
			))
		}
	}

	rec.add(slog.String(slog.MessageKey, r.Message))
	rec.add(h.attrs...)

	r.Attrs(func(a slog.Attr) bool {
		rec.add(h.qualify(a))

		return true
	})

	buf := h.render(rec)

	h.mu.Lock()
	defer h.mu.Unlock()

	_, err := h.w.Write(buf)

	return err
}

func (h *prettyHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	c := *h
	c.attrs = make([]slog.Attr, 0, len(h.attrs)+len(attrs))
	c.attrs = append(c.attrs, h.attrs...)

	for _, a := range attrs {
		c.attrs = append(c.attrs, h.qualify(a))
	}

	return &c
}

func (h *prettyHandler) WithGroup(name string) slog.Handler {
	if name == "" {
		return h
	}

	c := *h
	c.group = h.group + name + "."

	return &c
}

// qualify prefixes the attribute key with the current group path.
func (h *prettyHandler) qualify(a slog.Attr) slog.Attr {
	if h.group != "" {
		a.Key = h.group + a.Key
	}

	return a
}

// replace applies the configured ReplaceAttr function to a built-in
// attribute. The level attribute keeps its slog.Level value so that it can
// be colored by severity.
func (h *prettyHandler) replace(a slog.Attr) slog.Attr {
	if h.opts.ReplaceAttr == nil {
		return a
	}

	if level, ok := a.Value.Any().(slog.Level); ok && a.Key == slog.LevelKey {
		return slog.Any(a.Key, level)
	}

	return h.opts.ReplaceAttr(nil, a)
}

// record accumulates the attributes of one log line, dropping empty ones.
type record []slog.Attr

func (r *record) add(attrs ...slog.Attr) {
	for _, a := range attrs {
		if a.Equal(slog.Attr{}) {
			continue
		}

		*r = append(*r, a)
	}
}

func (h *prettyHandler) render(rec record) []byte {
	var buf bytes.Buffer

	if h.layout == layoutJSON {
		buf.WriteString("{\n")

		for i, a := range rec {
			if i > 0 {
				buf.WriteString(",\n")
			}

			buf.WriteString("  ")
			writeKey(&buf, a.Key, ": ")
			writeValue(&buf, a.Value)
		}

		buf.WriteString("\n}\n")

		return buf.Bytes()
	}

	for i, a := range rec {
		if i > 0 {
			buf.WriteByte(' ')
		}

		writeKey(&buf, a.Key, "=")
		writeValue(&buf, a.Value)
	}

	buf.WriteByte('\n')

	return buf.Bytes()
}

func writeKey(buf *bytes.Buffer, key, sep string) {
	buf.WriteString(colorGray)
	buf.WriteString(key)
	buf.WriteString(colorReset)
	buf.WriteString(sep)
}

func writeColored(buf *bytes.Buffer, color, s string) {
	buf.WriteString(color)
	buf.WriteString(s)
	buf.WriteString(colorReset)
}

func writeValue(buf *bytes.Buffer, v slog.Value) {
	v = v.Resolve()

	switch v.Kind() {
	case slog.KindString:
		writeColored(buf, colorCyan, v.String())

	case slog.KindInt64:
		writeColored(buf, colorYellow, strconv.FormatInt(v.Int64(), 10))

	case slog.KindUint64:
		writeColored(buf, colorYellow, strconv.FormatUint(v.Uint64(), 10))

	case slog.KindFloat64:
		writeColored(buf, colorYellow,
			strconv.FormatFloat(v.Float64(), 'g', -1, 64))

	case slog.KindBool:
		if v.Bool() {
			writeColored(buf, colorGreen, "true")
		} else {
			writeColored(buf, colorRed, "false")
		}

	case slog.KindDuration:
		writeColored(buf, colorMagenta, v.Duration().String())

	case slog.KindTime:
		writeColored(buf, colorBlue, v.Time().String())

	case slog.KindGroup:
		parts := make([]string, 0, len(v.Group()))

		for _, a := range v.Group() {
			var inner bytes.Buffer

			writeKey(&inner, a.Key, "=")
			writeValue(&inner, a.Value)
			parts = append(parts, inner.String())
		}

		buf.WriteString("{" + strings.Join(parts, " ") + "}")

	case slog.KindAny:
		level, ok := v.Any().(slog.Level)
		if !ok {
			writeColored(buf, colorCyan, fmt.Sprint(v.Any()))

			return
		}

		color := colorBlue

		switch {
		case level >= slog.LevelError:
			color = colorRed
		case level >= slog.LevelWarn:
			color = colorYellow
		case level >= slog.LevelInfo:
			color = colorGreen
		}

		writeColored(buf, color, strings.ToUpper(Level(level).String()))

	default:
		writeColored(buf, colorCyan, v.String())
	}
}
