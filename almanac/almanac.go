package almanac

import (
	"context"
	"iter"
	"log/slog"
	"slices"
	"strings"

	"github.com/ardnew/seedmap/log"
	"github.com/ardnew/seedmap/token"
)

// seedsKey is the literal prefix of the first almanac line.
const seedsKey = "seeds:"

// Almanac is a parsed seed list together with its chain of tables.
// It is immutable and safe for concurrent use.
type Almanac struct {
	seeds  []uint64
	head   *Table
	logger log.Logger
}

// Option configures parsing.
type Option func(*Almanac)

// WithLogger sets the structured logger for trace-level debugging.
// If not provided, the logger is zero-valued and all logging is a no-op.
func WithLogger(logger log.Logger) Option {
	return func(a *Almanac) {
		a.logger = logger
	}
}

func applyOptions(a *Almanac, opts ...Option) {
	for _, opt := range opts {
		if opt != nil {
			opt(a)
		}
	}
}

// Parse builds an almanac from its lines. The first line must begin with
// "seeds:"; the remaining lines hold the table blocks.
func Parse(ctx context.Context, lines []string, opts ...Option) (*Almanac, error) {
	a := &Almanac{}

	applyOptions(a, opts...)

	if len(lines) == 0 {
		return nil, ErrEmptyInput
	}

	seeds, err := parseSeeds(lines[0])
	if err != nil {
		return nil, err
	}

	a.logger.TraceContext(ctx, "parsed seeds", slog.Int("count", len(seeds)))

	head, err := BuildChain(token.Chunks(lines[1:]))
	if err != nil {
		return nil, err
	}

	a.seeds = seeds
	a.head = head

	var prev *Table

	for t := range a.Tables() {
		a.logger.TraceContext(ctx, "built table", slog.Any("table", t))

		if prev != nil && prev.Destination() != t.Source() {
			a.logger.WarnContext(ctx, "table category mismatch",
				slog.String("previous", prev.Name()),
				slog.String("table", t.Name()),
			)
		}

		prev = t
	}

	a.logger.DebugContext(ctx, "parsed almanac", slog.Any("almanac", a))

	return a, nil
}

func parseSeeds(line string) ([]uint64, error) {
	rest, ok := strings.CutPrefix(strings.TrimSpace(line), seedsKey)
	if !ok {
		return nil, ErrMalformedSeeds.With(
			slog.Int("line", 1),
			slog.String("text", line),
		)
	}

	seeds, err := token.Uints(rest)
	if err != nil {
		return nil, ErrMalformedSeeds.Wrap(err).With(slog.Int("line", 1))
	}

	return seeds, nil
}

// Seeds returns a copy of the seed list in input order.
func (a *Almanac) Seeds() []uint64 { return slices.Clone(a.seeds) }

// Head returns the first table of the chain.
func (a *Almanac) Head() *Table { return a.head }

// Tables returns an iterator over the tables in declaration order.
func (a *Almanac) Tables() iter.Seq[*Table] {
	return func(yield func(*Table) bool) {
		for t := a.head; t != nil; t = t.next {
			if !yield(t) {
				return
			}
		}
	}
}

// Table returns the table with the given name.
func (a *Almanac) Table(name string) (*Table, bool) {
	for t := range a.Tables() {
		if t.name == name {
			return t, true
		}
	}

	return nil, false
}

// Location resolves value through the whole chain.
func (a *Almanac) Location(value uint64) uint64 { return a.head.Resolve(value) }

// Lowest returns the minimum location over all seeds.
func (a *Almanac) Lowest() (uint64, error) {
	if len(a.seeds) == 0 {
		return 0, ErrNoSeeds
	}

	lowest := a.head.Resolve(a.seeds[0])

	for _, seed := range a.seeds[1:] {
		lowest = min(lowest, a.head.Resolve(seed))
	}

	return lowest, nil
}

// LogValue implements slog.LogValuer.
func (a *Almanac) LogValue() slog.Value {
	names := make([]string, 0)
	for t := range a.Tables() {
		names = append(names, t.name)
	}

	return slog.GroupValue(
		slog.Int("seeds", len(a.seeds)),
		slog.Int("tables", len(names)),
		slog.String("chain", strings.Join(names, " -> ")),
	)
}

// Solve reads the almanac at path and returns its lowest location.
func Solve(ctx context.Context, path string, opts ...Option) (uint64, error) {
	lines, err := token.ReadLines(path)
	if err != nil {
		return 0, ErrReadInput.Wrap(err).With(slog.String("path", path))
	}

	a, err := Parse(ctx, lines, opts...)
	if err != nil {
		return 0, err
	}

	return a.Lowest()
}
