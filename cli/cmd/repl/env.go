package repl

import (
	"errors"
	"fmt"
	"math"
	"slices"
	"strconv"
	"strings"

	"github.com/expr-lang/expr"

	"github.com/ardnew/seedmap/almanac"
)

// ErrNegative is returned by environment functions given a negative value.
var ErrNegative = errors.New("value must be non-negative")

// ErrOverflow is returned for a seed or mapped value that does not fit in an
// expression integer.
var ErrOverflow = errors.New("value exceeds expression integer range")

// envBuiltins describes the names the environment exposes to expressions.
var envBuiltins = map[string]struct {
	params []string
	isFunc bool
}{
	"seeds":    {nil, false},
	"tables":   {nil, false},
	"location": {[]string{"seed"}, true},
	"lookup":   {[]string{"table", "value"}, true},
	"lowest":   {nil, true},
	"path":     {[]string{"seed"}, true},
}

// EnvNames returns the sorted names defined by the expression environment.
func EnvNames() []string {
	names := make([]string, 0, len(envBuiltins))
	for name := range envBuiltins {
		names = append(names, name)
	}

	slices.Sort(names)

	return names
}

// newEnv returns the expression environment for an almanac. Values are
// exposed as int, the integer type of expression literals, so a seed above
// math.MaxInt is rejected with ErrOverflow.
func newEnv(a *almanac.Almanac) (map[string]any, error) {
	seeds := make([]int, 0, len(a.Seeds()))
	for _, seed := range a.Seeds() {
		v, err := signed(seed)
		if err != nil {
			return nil, err
		}

		seeds = append(seeds, v)
	}

	var tables []string
	for t := range a.Tables() {
		tables = append(tables, t.Name())
	}

	return map[string]any{
		"seeds":  seeds,
		"tables": tables,
		"location": func(seed int) (int, error) {
			v, err := unsigned(seed)
			if err != nil {
				return 0, err
			}

			return signed(a.Location(v))
		},
		"lookup": func(name string, value int) (int, error) {
			t, ok := a.Table(name)
			if !ok {
				return 0, fmt.Errorf("no such table: %q", name)
			}

			v, err := unsigned(value)
			if err != nil {
				return 0, err
			}

			return signed(t.Lookup(v))
		},
		"lowest": func() (int, error) {
			v, err := a.Lowest()
			if err != nil {
				return 0, err
			}

			return signed(v)
		},
		"path": func(seed int) ([]string, error) {
			v, err := unsigned(seed)
			if err != nil {
				return nil, err
			}

			steps := a.Head().Trace(v)
			path := make([]string, 0, len(steps)+1)
			path = append(path, stage(steps[0].Source, steps[0].Table, v))

			for _, s := range steps {
				path = append(path, stage(s.Destination, s.Table, s.Out))
			}

			return path, nil
		},
	}, nil
}

func unsigned(v int) (uint64, error) {
	if v < 0 {
		return 0, fmt.Errorf("%w: %d", ErrNegative, v)
	}

	return uint64(v), nil
}

func signed(v uint64) (int, error) {
	if v > math.MaxInt {
		return 0, fmt.Errorf("%w: %d", ErrOverflow, v)
	}

	return int(v), nil
}

func stage(category, table string, v uint64) string {
	if category == "" {
		category = table
	}

	return category + " " + strconv.FormatUint(v, 10)
}

// evaluate compiles and runs input against env.
func evaluate(env map[string]any, input string) (any, error) {
	program, err := expr.Compile(input, expr.Env(env))
	if err != nil {
		return nil, err
	}

	return expr.Run(program, env)
}

// formatResult renders an evaluation result for display.
func formatResult(v any) string {
	switch v := v.(type) {
	case nil:
		return "nil"

	case string:
		return strconv.Quote(v)

	case []string:
		return strings.Join(v, " -> ")

	case []any:
		parts := make([]string, len(v))
		for i, item := range v {
			parts[i] = formatResult(item)
		}

		return "[" + strings.Join(parts, ", ") + "]"

	default:
		return fmt.Sprint(v)
	}
}
