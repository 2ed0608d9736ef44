package repl

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/expr-lang/expr/builtin"
	"github.com/sahilm/fuzzy"

	"github.com/ardnew/seedmap/almanac"
)

// ctrlCommands are the available control-mode commands.
var ctrlCommands = []string{
	"help", "list", "seeds", "reload", "edit", "clear", "quit",
}

// isWordBoundary reports whether r delimits a completion word: whitespace,
// the member-access dot and expr-lang punctuation. Hyphens are not boundaries
// so a quoted table name such as "seed-to-soil" is one word. Every boundary
// is a single byte.
func isWordBoundary(r rune) bool {
	return strings.ContainsRune(" \t.()[]+*/%<>=!&|,?:;", r)
}

// wordBounds returns the word around cursor and its byte offsets in input.
// The word is empty when cursor sits between two boundaries.
func wordBounds(input string, cursor int) (word string, start, end int) {
	cursor = min(cursor, len(input))

	start = strings.LastIndexFunc(input[:cursor], isWordBoundary) + 1

	end = len(input)
	if i := strings.IndexFunc(input[cursor:], isWordBoundary); i >= 0 {
		end = cursor + i
	}

	return input[start:end], start, end
}

// candidateNames returns every top-level completion candidate in eval mode:
// the environment names, the quoted table names and the expr-lang builtins.
func candidateNames(env map[string]any) []string {
	names := EnvNames()

	if tables, ok := env["tables"].([]string); ok {
		for _, t := range tables {
			names = append(names, strconv.Quote(t))
		}
	}

	return append(names, ExprLangBuiltinNames()...)
}

// computeMatches calculates the fuzzy match results, ranked best-first, for
// the word at the cursor and returns them with the word boundaries. An empty
// word yields no matches so the hint line stays visible.
func (m model) computeMatches() (matches fuzzy.Matches, wordStart, wordEnd int) {
	word, wordStart, wordEnd := wordBounds(m.input.Value(), m.input.Position())
	if word == "" {
		return nil, wordStart, wordEnd
	}

	candidates := ctrlCommands
	if m.mode == modeEval {
		candidates = candidateNames(m.env)
	}

	return fuzzy.Find(word, candidates), wordStart, wordEnd
}

var (
	matchStyle         = suggestionStyle.Bold(true)
	selectedMatchStyle = selectedStyle.Bold(true)
)

// renderCandidateBar joins the rendered matches into one line, cut short
// with an ellipsis where the next candidate would not fit in width. The
// candidate at index is selected while cycling.
func renderCandidateBar(
	matches fuzzy.Matches,
	index int,
	cycling bool,
	width int,
) string {
	if len(matches) == 0 || width <= 0 {
		return ""
	}

	const sep = "  "

	ellipsis := hintStyle.Render("...")
	parts := make([]string, 0, len(matches))
	used := 0

	for i, match := range matches {
		rendered := renderCandidate(match, cycling && i == index)

		w := lipgloss.Width(rendered)
		if i > 0 {
			w += len(sep)
		}

		if i > 0 && used+w+lipgloss.Width(ellipsis) > width {
			parts = append(parts, ellipsis)

			break
		}

		parts = append(parts, rendered)
		used += w
	}

	return strings.Join(parts, sep)
}

// renderCandidate renders a candidate with its matched characters
// highlighted and a "()" suffix on functions.
func renderCandidate(match fuzzy.Match, selected bool) string {
	base, hit := suggestionStyle, matchStyle
	if selected {
		base, hit = selectedStyle, selectedMatchStyle
	}

	s := lipgloss.StyleRunes(match.Str, match.MatchedIndexes, hit, base)
	if isFunction(match.Str) {
		s += base.Render("()")
	}

	return s
}

// tablePreview summarizes a table for the list command.
func tablePreview(t *almanac.Table) string {
	return fmt.Sprintf("%d ranges, %d entries", len(t.Ranges()), t.Len())
}

// isFunction reports whether a candidate names a callable, which is displayed
// with a "()" suffix.
func isFunction(name string) bool {
	if _, ok := builtin.Index[name]; ok {
		return true
	}

	b, ok := envBuiltins[name]

	return ok && b.isFunc
}
