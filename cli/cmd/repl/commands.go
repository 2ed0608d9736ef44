package repl

import (
	"errors"
	"fmt"
	"log/slog"
	"strconv"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/ardnew/seedmap/almanac"
)

// executeInput submits the current line: a control command or an
// expression, depending on the mode.
func (m model) executeInput() (model, tea.Cmd) {
	input := strings.TrimSpace(m.input.Value())
	if input == "" {
		return m, nil
	}

	m.drafts = [2]draft{}
	m.input.SetValue("")

	_, _ = m.history.WriteWithMode(input, m.mode)
	m.historyIdx = m.history.Len()

	if m.mode == modeCtrl {
		return m.executeCommand(input)
	}

	result, err := evaluate(m.env, input)

	m.logger.TraceContext(m.ctxFunc(), "repl eval",
		slog.String("input", input),
		slog.String("result_type", fmt.Sprintf("%T", result)),
		slog.Any("error", err),
	)

	out := resultStyle.Render(formatResult(result))
	if err != nil {
		out = errorStyle.Render("error: " + err.Error())
	}

	return m, tea.Sequence(tea.Println(echo(modeEval, input)), tea.Println(out))
}

func (m model) executeCommand(input string) (model, tea.Cmd) {
	parts := strings.Fields(input)
	if len(parts) == 0 {
		return m, nil
	}

	m.logger.TraceContext(m.ctxFunc(), "repl command",
		slog.String("command", parts[0]),
		slog.Any("args", parts[1:]),
	)

	echoCmd := tea.Println(echo(modeCtrl, input))

	switch parts[0] {
	case "q", "quit", "exit":
		m.quitting = true

		return m, tea.Sequence(echoCmd, tea.Quit)

	case "h", "help":
		return m, tea.Sequence(echoCmd, tea.Println(helpText))

	case "l", "list":
		return m, tea.Sequence(echoCmd, tea.Println(m.listTables()))

	case "s", "seeds":
		return m, tea.Sequence(echoCmd, tea.Println(m.listSeeds()))

	case "r", "reload":
		return m, tea.Sequence(echoCmd, m.handleReload())

	case "c", "clear":
		return m, tea.ClearScreen

	case "e", "edit":
		return m, tea.Sequence(echoCmd, m.handleEdit())

	default:
		return m, tea.Println(
			errorStyle.Render("Unknown command: " + parts[0] + " (try 'help')"),
		)
	}
}

// handleEdit returns a command that suspends the program and runs the
// editor over the almanac.
func (m model) handleEdit() tea.Cmd {
	cmd := &editCommand{
		almanac: m.almanac,
		ctxFunc: m.ctxFunc,
		logger:  m.logger,
	}

	return tea.Exec(cmd, func(err error) tea.Msg {
		switch {
		case errors.Is(err, ErrEditDeclined):
			return editDeclinedMsg{}
		case err != nil:
			return editErrorMsg{err: err}
		case cmd.newAlmanac == nil:
			return editCancelledMsg{}
		default:
			return editDoneMsg{almanac: cmd.newAlmanac}
		}
	})
}

// handleReload returns a command that reads the almanac source again.
func (m model) handleReload() tea.Cmd {
	reload, ctxFunc := m.reload, m.ctxFunc

	return func() tea.Msg {
		if reload == nil {
			return reloadMsg{err: ErrNoReload}
		}

		almanac.ClearCache()

		a, err := reload(ctxFunc())

		return reloadMsg{almanac: a, err: err}
	}
}

// withAlmanac replaces the session almanac and its expression environment.
func (m model) withAlmanac(a *almanac.Almanac) (model, error) {
	env, err := newEnv(a)
	if err != nil {
		return m, err
	}

	m.almanac = a
	m.env = env
	m.refreshMatches(false)

	return m, nil
}

func (m model) listTables() string {
	var b strings.Builder

	for t := range m.almanac.Tables() {
		fmt.Fprintf(&b, "  %s %s\n", t.Name(), hintStyle.Render(tablePreview(t)))
	}

	return b.String()
}

func (m model) listSeeds() string {
	var b strings.Builder

	for _, seed := range m.almanac.Seeds() {
		fmt.Fprintf(&b, "  %d %s\n", seed,
			hintStyle.Render("-> "+strconv.FormatUint(m.almanac.Location(seed), 10)))
	}

	if lowest, err := m.almanac.Lowest(); err == nil {
		fmt.Fprintf(&b, "  %s %d\n", hintStyle.Render("lowest"), lowest)
	}

	return b.String()
}
