package cmd

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/ardnew/seedmap/almanac"
	"github.com/ardnew/seedmap/log"
)

// Solve prints the lowest location reachable from any seed.
type Solve struct {
	Trace bool `help:"Log every seed's path through the maps at debug level" short:"t"`

	Source string `arg:"" default:"-" help:"Almanac file or '-' for stdin." name:"source" optional:""`
}

// Run executes the solve command.
func (s *Solve) Run(ctx context.Context) (err error) {
	ctx, cancel := context.WithCancelCause(ctx)

	defer func(err *error) {
		cancel(*err)
	}(&err)

	a, err := loadAlmanac(ctx, s.Source)
	if err != nil {
		return err
	}

	if s.Trace {
		for _, seed := range a.Seeds() {
			for _, step := range a.Head().Trace(seed) {
				log.DebugContext(ctx, "stage",
					slog.Uint64("seed", seed),
					slog.Any("step", step),
				)
			}
		}
	}

	lowest, err := a.Lowest()
	if err != nil {
		return almanac.WrapError(err).With(slog.String("command", "solve"))
	}

	log.DebugContext(ctx, "solved",
		slog.String("source", s.Source),
		slog.Uint64("lowest", lowest),
	)

	_, err = fmt.Fprintln(outputFrom(ctx), lowest)

	return err
}
