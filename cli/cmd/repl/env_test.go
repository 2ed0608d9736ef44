package repl

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/ardnew/seedmap/almanac"
)

const exampleAlmanac = `seeds: 79 14 55 13

seed-to-soil map:
50 98 2
52 50 48

soil-to-fertilizer map:
0 15 37
37 52 2
39 0 15

fertilizer-to-water map:
49 53 8
0 11 42
42 0 7
57 7 4

water-to-light map:
88 18 7
18 25 70

light-to-temperature map:
45 77 23
81 45 19
68 64 13

temperature-to-humidity map:
0 69 1
1 0 69

humidity-to-location map:
60 56 37
56 93 4
`

func testAlmanac(t *testing.T) *almanac.Almanac {
	t.Helper()

	a, err := almanac.Parse(
		context.Background(),
		strings.Split(strings.TrimSuffix(exampleAlmanac, "\n"), "\n"),
	)
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}

	return a
}

func testEnv(t *testing.T, a *almanac.Almanac) map[string]any {
	t.Helper()

	env, err := newEnv(a)
	if err != nil {
		t.Fatalf("newEnv() error = %v", err)
	}

	return env
}

func TestEvaluate(t *testing.T) {
	env := testEnv(t, testAlmanac(t))

	tests := []struct {
		input string
		want  string
	}{
		{"location(79)", "82"},
		{"location(14)", "43"},
		{`lookup("seed-to-soil", 79)`, "81"},
		{`lookup("seed-to-soil", 10)`, "10"},
		{"lowest()", "35"},
		{"min(map(seeds, location(#)))", "35"},
		{"len(tables)", "7"},
		{"seeds[0]", "79"},
		{
			"path(79)",
			"seed 79 -> soil 81 -> fertilizer 81 -> water 81 -> light 74" +
				" -> temperature 78 -> humidity 78 -> location 82",
		},
		{"tables[0]", `"seed-to-soil"`},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := evaluate(env, tt.input)
			if err != nil {
				t.Fatalf("evaluate(%q) error = %v", tt.input, err)
			}

			if s := formatResult(got); s != tt.want {
				t.Errorf("evaluate(%q) = %s, want %s", tt.input, s, tt.want)
			}
		})
	}
}

func TestEvaluate_Errors(t *testing.T) {
	env := testEnv(t, testAlmanac(t))

	for _, input := range []string{
		"location(-1)",
		`lookup("no-such-table", 1)`,
		"undefined + 1",
		"location(",
	} {
		t.Run(input, func(t *testing.T) {
			if _, err := evaluate(env, input); err == nil {
				t.Errorf("evaluate(%q) error = nil, want error", input)
			}
		})
	}
}

func TestUnsigned(t *testing.T) {
	if v, err := unsigned(42); err != nil || v != 42 {
		t.Errorf("unsigned(42) = %d, %v", v, err)
	}

	if _, err := unsigned(-3); !errors.Is(err, ErrNegative) {
		t.Errorf("unsigned(-3) error = %v, want %v", err, ErrNegative)
	}
}

func TestFormatResult(t *testing.T) {
	tests := []struct {
		name  string
		value any
		want  string
	}{
		{"nil", nil, "nil"},
		{"int", 35, "35"},
		{"string", "seed", `"seed"`},
		{"path", []string{"seed 1", "soil 2"}, "seed 1 -> soil 2"},
		{"list", []any{1, "a", nil}, `[1, "a", nil]`},
		{"bool", true, "true"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := formatResult(tt.value); got != tt.want {
				t.Errorf("formatResult() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestEnvNames(t *testing.T) {
	want := []string{"location", "lookup", "lowest", "path", "seeds", "tables"}

	got := EnvNames()
	if strings.Join(got, ",") != strings.Join(want, ",") {
		t.Errorf("EnvNames() = %v, want %v", got, want)
	}
}

func TestNewEnv_SeedOverflow(t *testing.T) {
	a, err := almanac.Parse(context.Background(), []string{
		"seeds: 1 18446744073709551615",
		"",
		"a-to-b map:",
		"0 0 1",
	})
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}

	if _, err := newEnv(a); !errors.Is(err, ErrOverflow) {
		t.Errorf("newEnv() error = %v, want %v", err, ErrOverflow)
	}
}

func TestEvaluate_ResultOverflow(t *testing.T) {
	a, err := almanac.Parse(context.Background(), []string{
		"seeds: 1",
		"",
		"a-to-b map:",
		"18446744073709551000 1 1",
	})
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}

	env := testEnv(t, a)

	for _, input := range []string{"location(1)", `lookup("a-to-b", 1)`, "lowest()"} {
		_, err := evaluate(env, input)
		if err == nil || !strings.Contains(err.Error(), ErrOverflow.Error()) {
			t.Errorf("evaluate(%q) error = %v, want %v", input, err, ErrOverflow)
		}
	}

	if got, err := evaluate(env, "location(2)"); err != nil || got != 2 {
		t.Errorf("evaluate(location(2)) = %v, %v; want 2", got, err)
	}
}
