package cli

import (
	"errors"
	"log/slog"
)

// ErrorAttr returns err as a log attribute keyed "error". Kong joins the error
// returned by a command with its own, so the first error in the tree that
// provides a structured log value is used when there is one.
func ErrorAttr(err error) slog.Attr {
	var lv slog.LogValuer
	if errors.As(err, &lv) {
		return slog.Any("error", lv)
	}

	return slog.Any("error", err)
}
