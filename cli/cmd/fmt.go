package cmd

import (
	"context"
	"log/slog"

	"github.com/davecgh/go-spew/spew"
)

// Fmt parses an almanac and re-renders it in the chosen format.
type Fmt struct {
	Native Native `cmd:"" default:"withargs" help:"Format as native almanac text (default)."`
	JSON   JSON   `cmd:""                    help:"Format as JSON."`
	YAML   YAML   `cmd:""                    help:"Format as YAML."`
	Dump   Dump   `cmd:""                    help:"Dump the parsed map chain."`
}

// Native formats input as native almanac text.
type Native struct {
	Source string `arg:"" default:"-" help:"Almanac file or '-' for stdin." name:"source" optional:""`
}

// Run executes the native command.
func (f *Native) Run(ctx context.Context) (err error) {
	ctx, cancel := context.WithCancelCause(ctx)

	defer func(err *error) {
		cancel(*err)
	}(&err)

	a, err := loadAlmanac(ctx, f.Source)
	if err != nil {
		return err
	}

	return a.Format(outputFrom(ctx))
}

// JSON parses input and outputs it as JSON.
type JSON struct {
	Indent int `default:"2" help:"Indent width for JSON output" short:"i"`

	Source string `arg:"" default:"-" help:"Almanac file or '-' for stdin." name:"source" optional:""`
}

// Run executes the json command.
func (j *JSON) Run(ctx context.Context) (err error) {
	ctx, cancel := context.WithCancelCause(ctx)

	defer func(err *error) {
		cancel(*err)
	}(&err)

	a, err := loadAlmanac(ctx, j.Source)
	if err != nil {
		return err
	}

	err = writeJSON(outputFrom(ctx), a.Document(), j.Indent)
	if err != nil {
		return WrapError(err).With(slog.String("format", "json"))
	}

	return nil
}

// YAML parses input and outputs it as YAML.
type YAML struct {
	Indent int `default:"2" help:"Indent width for YAML output" short:"i"`

	Source string `arg:"" default:"-" help:"Almanac file or '-' for stdin." name:"source" optional:""`
}

// Run executes the yaml command.
func (y *YAML) Run(ctx context.Context) (err error) {
	ctx, cancel := context.WithCancelCause(ctx)

	defer func(err *error) {
		cancel(*err)
	}(&err)

	a, err := loadAlmanac(ctx, y.Source)
	if err != nil {
		return err
	}

	err = writeYAML(ctx, outputFrom(ctx), a.Document(), y.Indent)
	if err != nil {
		return WrapError(err).With(slog.String("format", "yaml"))
	}

	return nil
}

// Dump writes a structural dump of the parsed seeds and map chain.
type Dump struct {
	Source string `arg:"" default:"-" help:"Almanac file or '-' for stdin." name:"source" optional:""`
}

// dumpConfig omits pointer addresses and capacities so dumps are stable.
var dumpConfig = spew.ConfigState{
	Indent:                  "  ",
	DisablePointerAddresses: true,
	DisableCapacities:       true,
	SortKeys:                true,
}

// Run executes the dump command.
func (d *Dump) Run(ctx context.Context) (err error) {
	ctx, cancel := context.WithCancelCause(ctx)

	defer func(err *error) {
		cancel(*err)
	}(&err)

	a, err := loadAlmanac(ctx, d.Source)
	if err != nil {
		return err
	}

	dumpConfig.Fdump(outputFrom(ctx), a.Seeds(), a.Head())

	return nil
}
