package almanac

import (
	"iter"
	"log/slog"
	"math"
	"slices"
	"strconv"
	"strings"

	"github.com/ardnew/seedmap/token"
)

// categorySep separates the source and destination categories of a table
// name, as in "seed-to-soil".
const categorySep = "-to-"

// Range maps the source interval [Source, Source+Length) onto
// [Destination, Destination+Length).
type Range struct {
	Destination uint64 `json:"destination" yaml:"destination"`
	Source      uint64 `json:"source"      yaml:"source"`
	Length      uint64 `json:"length"      yaml:"length"`
}

// Contains reports whether key lies in the source interval of r.
func (r Range) Contains(key uint64) bool {
	return key >= r.Source && key-r.Source < r.Length
}

// String returns r in almanac row form.
func (r Range) String() string {
	return strconv.FormatUint(r.Destination, 10) + " " +
		strconv.FormatUint(r.Source, 10) + " " +
		strconv.FormatUint(r.Length, 10)
}

// Table is one named range-remapping table in a chain.
//
// A Table is immutable once built. Its successor is owned exclusively by it,
// so a chain is a singly linked list with no sharing.
type Table struct {
	name   string
	ranges []Range // declaration order
	index  []Range // sorted by Source, zero-length rows removed
	next   *Table
}

// BuildTable constructs a table from its rows. Each row must hold exactly
// three whitespace-separated non-negative integers: destination start,
// source start and length. No table is returned if any row is malformed.
func BuildTable(name string, rows []string, next *Table) (*Table, error) {
	t := &Table{
		name:   name,
		ranges: make([]Range, 0, len(rows)),
		next:   next,
	}

	for i, row := range rows {
		r, err := parseRow(row)
		if err != nil {
			return nil, ErrMalformedRow.Wrap(err).With(
				slog.String("table", name),
				slog.Int("row", i+1),
				slog.String("text", row),
			)
		}

		t.ranges = append(t.ranges, r)

		if r.Length > 0 {
			t.index = append(t.index, r)
		}
	}

	slices.SortStableFunc(t.index, func(a, b Range) int {
		switch {
		case a.Source < b.Source:
			return -1
		case a.Source > b.Source:
			return 1
		default:
			return 0
		}
	})

	return t, nil
}

func parseRow(row string) (Range, error) {
	n, err := token.Uints(row)
	if err != nil {
		return Range{}, err
	}

	if len(n) != 3 {
		return Range{}, NewError("want 3 fields, have " + strconv.Itoa(len(n)))
	}

	r := Range{Destination: n[0], Source: n[1], Length: n[2]}

	if r.Length > 0 {
		span := r.Length - 1
		if r.Source > math.MaxUint64-span || r.Destination > math.MaxUint64-span {
			return Range{}, NewError("range exceeds uint64")
		}
	}

	return r, nil
}

// Name returns the table heading label, e.g. "seed-to-soil".
func (t *Table) Name() string { return t.name }

// Source returns the category preceding "-to-" in the table name, or the
// whole name if it has no such separator.
func (t *Table) Source() string {
	src, _, _ := strings.Cut(t.name, categorySep)

	return src
}

// Destination returns the category following "-to-" in the table name, or
// the empty string if it has no such separator.
func (t *Table) Destination() string {
	_, dst, _ := strings.Cut(t.name, categorySep)

	return dst
}

// Next returns the successor table, or nil if t is the last in its chain.
func (t *Table) Next() *Table { return t.next }

// Ranges returns a copy of the declared rows in declaration order.
func (t *Table) Ranges() []Range { return slices.Clone(t.ranges) }

// Len returns the number of point associations in the table, i.e. the sum
// of all row lengths. Overlapping rows are counted once per row. The sum
// saturates at [math.MaxUint64].
func (t *Table) Len() uint64 {
	var n uint64
	for _, r := range t.ranges {
		if r.Length > math.MaxUint64-n {
			return math.MaxUint64
		}

		n += r.Length
	}

	return n
}

// Entries returns an iterator over the explicit point mapping of the table:
// each row expanded into its source and destination pairs, in declaration
// order.
func (t *Table) Entries() iter.Seq2[uint64, uint64] {
	return func(yield func(uint64, uint64) bool) {
		for _, r := range t.ranges {
			for i := range r.Length {
				if !yield(r.Source+i, r.Destination+i) {
					return
				}
			}
		}
	}
}

// Lookup returns the destination mapped to key, or key itself if no row
// covers it.
func (t *Table) Lookup(key uint64) uint64 {
	// Last range starting at or before key.
	i, found := slices.BinarySearchFunc(t.index, key, func(r Range, k uint64) int {
		switch {
		case r.Source < k:
			return -1
		case r.Source > k:
			return 1
		default:
			return 0
		}
	})
	if found {
		for i+1 < len(t.index) && t.index[i+1].Source == key {
			i++
		}
	} else {
		i--
	}

	if i >= 0 && t.index[i].Contains(key) {
		r := t.index[i]

		return r.Destination + (key - r.Source)
	}

	return key
}

// Resolve passes value through t and then through each successor in turn,
// returning the value produced by the last table.
func (t *Table) Resolve(value uint64) uint64 {
	value = t.Lookup(value)
	if t.next == nil {
		return value
	}

	return t.next.Resolve(value)
}

// Step records the effect of a single table on a value.
type Step struct {
	Table       string `json:"table"       yaml:"table"`
	Source      string `json:"source"      yaml:"source"`
	Destination string `json:"destination" yaml:"destination"`
	In          uint64 `json:"in"          yaml:"in"`
	Out         uint64 `json:"out"         yaml:"out"`
}

// LogValue implements slog.LogValuer.
func (s Step) LogValue() slog.Value {
	return slog.GroupValue(
		slog.String("table", s.Table),
		slog.Uint64("in", s.In),
		slog.Uint64("out", s.Out),
	)
}

// Trace resolves value like [Table.Resolve] and returns one [Step] per
// table visited. The Out of the last step equals Resolve(value).
func (t *Table) Trace(value uint64) []Step {
	var steps []Step

	for s := t; s != nil; s = s.next {
		out := s.Lookup(value)
		steps = append(steps, Step{
			Table:       s.name,
			Source:      s.Source(),
			Destination: s.Destination(),
			In:          value,
			Out:         out,
		})
		value = out
	}

	return steps
}

// LogValue implements slog.LogValuer.
func (t *Table) LogValue() slog.Value {
	return slog.GroupValue(
		slog.String("name", t.name),
		slog.Int("ranges", len(t.ranges)),
		slog.Uint64("entries", t.Len()),
	)
}
