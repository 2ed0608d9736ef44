package repl

import (
	"maps"
	"slices"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// exprLangBuiltins holds the parameter names of the expr-lang builtins that
// apply to seeds, tables and locations.
var exprLangBuiltins = map[string][]string{
	"len":    {"v"},
	"abs":    {"v"},
	"all":    {"array", "predicate"},
	"any":    {"array", "predicate"},
	"none":   {"array", "predicate"},
	"count":  {"array", "predicate"},
	"filter": {"array", "predicate"},
	"find":   {"array", "predicate"},
	"map":    {"array", "mapper"},
	"sortBy": {"array", "mapper"},
	"reduce": {"array", "reducer"},
	"first":  {"array"},
	"last":   {"array"},
	"sum":    {"array"},
	"min":    {"array"},
	"max":    {"array"},
}

// ExprLangBuiltinNames returns the sorted names of the expr-lang builtins
// offered for completion.
func ExprLangBuiltinNames() []string {
	return slices.Sorted(maps.Keys(exprLangBuiltins))
}

var (
	signatureStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
	signatureNameStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("6")).Bold(true)
	currentParamStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("11")).Bold(true)
)

// functionCall is the innermost unclosed call enclosing the cursor.
type functionCall struct {
	name     string
	argIndex int
	inCall   bool
}

func isIdentByte(c byte) bool {
	return c == '_' || c == '.' ||
		('a' <= c && c <= 'z') || ('A' <= c && c <= 'Z') || ('0' <= c && c <= '9')
}

// detectFunctionCall scans input backward from cursor for the innermost
// unclosed parenthesis preceded by an identifier. Commas at the same depth
// give the argument index.
func detectFunctionCall(input string, cursor int) functionCall {
	cursor = min(cursor, len(input))

	depth, arg := 0, 0

	for i := cursor - 1; i >= 0; i-- {
		switch input[i] {
		case ')':
			depth++
		case ',':
			if depth == 0 {
				arg++
			}
		case '(':
			if depth > 0 {
				depth--

				continue
			}

			start := i
			for start > 0 && isIdentByte(input[start-1]) {
				start--
			}

			if start == i {
				return functionCall{}
			}

			return functionCall{name: input[start:i], argIndex: arg, inCall: true}
		}
	}

	return functionCall{}
}

// getSignature returns the rendered signature and parameter names of the
// function name, from the almanac environment or the expr-lang builtins.
// The signature is empty if name is not a known function.
func getSignature(name string) (signature string, params []string) {
	if b, ok := envBuiltins[name]; ok && b.isFunc {
		params = b.params
	} else if params, ok = exprLangBuiltins[name]; !ok {
		return "", nil
	}

	return name + "(" + strings.Join(params, ", ") + ")", params
}

// renderSignatureHint renders signature with the parameter at arg
// highlighted, or nothing if signature is not a call. A variadic parameter stays highlighted for every later
// argument.
func renderSignatureHint(signature string, params []string, arg int) string {
	name, _, ok := strings.Cut(signature, "(")
	if !ok {
		return ""
	}

	var b strings.Builder

	b.WriteString(signatureNameStyle.Render(name))
	b.WriteString(signatureStyle.Render("("))

	for i, param := range params {
		if i > 0 {
			b.WriteString(signatureStyle.Render(", "))
		}

		if i == arg || (strings.HasPrefix(param, "...") && arg > i) {
			b.WriteString(currentParamStyle.Render(param))
		} else {
			b.WriteString(signatureStyle.Render(param))
		}
	}

	b.WriteString(signatureStyle.Render(")"))

	return b.String()
}
