package cmd

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"strconv"
	"strings"

	"github.com/ardnew/seedmap/almanac"
)

// Trace prints the path of each seed through the chain of maps.
type Trace struct {
	Seed   []uint64 `help:"Seed to trace (repeatable). Defaults to every seed in the almanac." short:"s"`
	Format string   `default:"text" enum:"text,json,yaml" help:"Output format (${enum})."     short:"F"`
	Indent int      `default:"2"                          help:"Indent width for JSON and YAML output" short:"i"`

	Source string `arg:"" default:"-" help:"Almanac file or '-' for stdin." name:"source" optional:""`
}

// SeedPath is the path of one seed through every map of an almanac.
type SeedPath struct {
	Seed     uint64         `json:"seed"     yaml:"seed"`
	Location uint64         `json:"location" yaml:"location"`
	Steps    []almanac.Step `json:"steps"    yaml:"steps"`
}

// TracePaths returns the path of each seed through a. If seeds is empty,
// every seed of a is traced.
func TracePaths(a *almanac.Almanac, seeds ...uint64) []SeedPath {
	if len(seeds) == 0 {
		seeds = a.Seeds()
	}

	paths := make([]SeedPath, 0, len(seeds))

	for _, seed := range seeds {
		steps := a.Head().Trace(seed)
		paths = append(paths, SeedPath{
			Seed:     seed,
			Location: steps[len(steps)-1].Out,
			Steps:    steps,
		})
	}

	return paths
}

// String renders p on one line, e.g. "seed 79 -> soil 81 -> location 82".
func (p SeedPath) String() string {
	var sb strings.Builder

	for i, step := range p.Steps {
		if i == 0 {
			sb.WriteString(category(step.Source, step.Table))
			sb.WriteByte(' ')
			sb.WriteString(strconv.FormatUint(step.In, 10))
		}

		sb.WriteString(" -> ")
		sb.WriteString(category(step.Destination, step.Table))
		sb.WriteByte(' ')
		sb.WriteString(strconv.FormatUint(step.Out, 10))
	}

	return sb.String()
}

func category(name, fallback string) string {
	if name == "" {
		return fallback
	}

	return name
}

// Run executes the trace command.
func (t *Trace) Run(ctx context.Context) (err error) {
	ctx, cancel := context.WithCancelCause(ctx)

	defer func(err *error) {
		cancel(*err)
	}(&err)

	a, err := loadAlmanac(ctx, t.Source)
	if err != nil {
		return err
	}

	paths := TracePaths(a, t.Seed...)
	if len(paths) == 0 {
		return almanac.ErrNoSeeds.With(slog.String("command", "trace"))
	}

	out := outputFrom(ctx)

	switch t.Format {
	case "json":
		return writeJSON(out, paths, t.Indent)

	case "yaml":
		return writeYAML(ctx, out, paths, t.Indent)

	default:
		return writeText(out, paths)
	}
}

func writeText(w io.Writer, paths []SeedPath) error {
	for _, p := range paths {
		if _, err := fmt.Fprintln(w, p.String()); err != nil {
			return err
		}
	}

	return nil
}
