package cmd

import (
	"context"
	"log/slog"

	"github.com/ardnew/seedmap/almanac"
	"github.com/ardnew/seedmap/cli/cmd/repl"
	"github.com/ardnew/seedmap/log"
)

// Repl starts an interactive session over a parsed almanac.
type Repl struct {
	Source string `arg:"" help:"Almanac file or '-' for stdin." name:"source"`
}

// Run executes the repl command.
func (r *Repl) Run(ctx context.Context) (err error) {
	ctx, cancel := context.WithCancelCause(ctx)

	defer func(err *error) { cancel(*err) }(&err)

	a, err := loadAlmanac(ctx, r.Source)
	if err != nil {
		return err
	}

	// stdin is consumed by the first read
	var reload repl.Loader
	if r.Source != stdinSource {
		reload = func(ctx context.Context) (*almanac.Almanac, error) {
			return loadAlmanac(ctx, r.Source)
		}
	}

	cacheDir := ""
	if ktx := kongContextFrom(ctx); ktx != nil {
		cacheDir = ktx.Model.Vars()[CacheIdentifier]
	}

	log.DebugContext(ctx, "repl",
		slog.String("source", r.Source),
		slog.String("cache", cacheDir),
	)

	return repl.Run(ctx, a, reload, cacheDir, log.Default())
}
