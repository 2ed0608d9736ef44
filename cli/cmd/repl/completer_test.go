package repl

import (
	"slices"
	"strings"
	"testing"

	"github.com/sahilm/fuzzy"
)

func TestWordBounds_ExprOperators(t *testing.T) {
	tests := []struct {
		name      string
		input     string
		cursor    int
		wantWord  string
		wantStart int
		wantEnd   int
	}{
		{"simple", "loc", 3, "loc", 0, 3},
		{"dot_separated", "a.len", 5, "len", 2, 5},
		{"after_plus", "a + lo", 6, "lo", 4, 6},
		{"after_paren", "location(se", 11, "se", 9, 11},
		{"after_comma", "lookup(t, va", 12, "va", 10, 12},
		{"in_ternary", "x ? lo", 6, "lo", 4, 6},
		{"after_comparison", "a > lo", 6, "lo", 4, 6},
		{"empty_at_boundary", "a + ", 4, "", 4, 4},
		{"mid_word", "location", 3, "location", 0, 8},
		{"at_start", "seeds", 0, "seeds", 0, 5},
		{"between_operators", "a+b", 2, "b", 2, 3},
		// Quoted table names complete as a single word.
		{"quoted_table", `lookup("seed-to`, 15, `"seed-to`, 7, 15},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			word, start, end := wordBounds(tt.input, tt.cursor)
			if word != tt.wantWord || start != tt.wantStart || end != tt.wantEnd {
				t.Errorf("wordBounds(%q, %d) = (%q, %d, %d), want (%q, %d, %d)",
					tt.input, tt.cursor, word, start, end,
					tt.wantWord, tt.wantStart, tt.wantEnd)
			}
		})
	}
}

func TestCandidateNames(t *testing.T) {
	names := candidateNames(testEnv(t, testAlmanac(t)))

	for _, want := range []string{
		"seeds", "tables", "location", "lookup", "lowest", "path",
		`"seed-to-soil"`, `"humidity-to-location"`,
		"len", "filter",
	} {
		if !slices.Contains(names, want) {
			t.Errorf("candidateNames() missing %q", want)
		}
	}
}

func TestIsFunction(t *testing.T) {
	tests := map[string]bool{
		"location": true,
		"lowest":   true,
		"len":      true,
		"seeds":    false,
		"tables":   false,
		"nope":     false,
	}

	for name, want := range tests {
		if got := isFunction(name); got != want {
			t.Errorf("isFunction(%q) = %v, want %v", name, got, want)
		}
	}
}

func TestRenderCandidateBar(t *testing.T) {
	matches := fuzzy.Find("lo", []string{"location", "lookup", "lowest"})
	if len(matches) != 3 {
		t.Fatalf("fuzzy.Find() = %d matches, want 3", len(matches))
	}

	wide := renderCandidateBar(matches, 1, true, 200)
	for _, m := range matches {
		if !strings.Contains(wide, m.Str) {
			t.Errorf("renderCandidateBar() = %q, missing %q", wide, m.Str)
		}
	}

	narrow := renderCandidateBar(matches, 0, false, 14)
	if !strings.Contains(narrow, "...") {
		t.Errorf("renderCandidateBar(width 14) = %q, want ellipsis", narrow)
	}

	if n := strings.Count(narrow, "()"); n != 1 {
		t.Errorf("renderCandidateBar(width 14) shows %d candidates, want 1", n)
	}

	if got := renderCandidateBar(nil, 0, false, 80); got != "" {
		t.Errorf("renderCandidateBar(nil) = %q, want empty", got)
	}
}
