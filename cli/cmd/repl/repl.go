package repl

import (
	"context"
	"fmt"
	"log/slog"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/lipgloss"
	"github.com/sahilm/fuzzy"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/ardnew/seedmap/almanac"
	"github.com/ardnew/seedmap/log"
)

// editDoneMsg is sent when editing the almanac completes successfully.
type editDoneMsg struct{ almanac *almanac.Almanac }

// reloadMsg is sent when the almanac source has been read again.
type reloadMsg struct {
	almanac *almanac.Almanac
	err     error
}

// editCancelledMsg is sent when the user cleared the editor content.
type editCancelledMsg struct{}

// editDeclinedMsg is sent when the user declined to re-edit after a parse
// error.
type editDeclinedMsg struct{}

// editErrorMsg is sent when the edit process encounters a non-parse error.
type editErrorMsg struct{ err error }

const (
	evalPrompt = "➜ "
	ctrlPrompt = " :"
)

const helpText = `
: Commands (press Esc to toggle mode):

  help     Print this help
  list     List the maps in chain order
  seeds    Print every seed with its location
  reload   Read the almanac source again
  edit     Edit the almanac in external $EDITOR
  clear    Clear screen
  quit     Exit REPL

Expressions:
  seeds                  Seed list
  tables                 Map names in chain order
  location(seed)         Location reached by seed
  lookup(table, value)   Value mapped by a single table
  lowest()               Lowest location over all seeds
  path(seed)             Every category visited by seed

Keys:
  Tab / Shift-Tab        Cycle completion candidates
  Space                  Accept the current candidate
  Up / Down              History (switches mode to match the entry)
  Shift-Up / Shift-Down  History of the current mode only
  Ctrl-C on empty line or Ctrl-D to exit
`

// inputMode represents the current input mode.
type inputMode int

const (
	modeEval inputMode = iota
	modeCtrl
)

// Styles.
var (
	promptStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("6")).
			Bold(true)
	ctrlPromptStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("5")).
			Bold(true)
	inputStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("15"))
	resultStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("2"))
	errorStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("1"))
	hintStyle       = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
	suggestionStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("4"))
	selectedStyle   = lipgloss.NewStyle().
			Foreground(lipgloss.Color("0")).
			Background(lipgloss.Color("4"))
)

// echo renders a submitted line behind the prompt of its mode.
func echo(mode inputMode, input string) string {
	if mode == modeCtrl {
		return ctrlPromptStyle.Render(ctrlPrompt) + inputStyle.Render(input)
	}

	return promptStyle.Render(evalPrompt) + inputStyle.Render(input)
}

// draft is the unsubmitted input of one mode.
type draft struct {
	text   string
	cursor int
}

// completion is the fuzzy completion state of the word at the cursor.
type completion struct {
	matches   fuzzy.Matches
	wordStart int // byte offset of current word start
	wordEnd   int // byte offset of current word end
	index     int // selected candidate, -1 when not cycling
	cycling   bool
	before    draft // input before cycling began
}

// model is the Bubble Tea model for the REPL.
type model struct {
	ctxFunc    func() context.Context
	input      textinput.Model
	almanac    *almanac.Almanac
	env        map[string]any
	reload     Loader
	logger     log.Logger
	history    *History
	historyIdx int
	comp       completion
	drafts     [2]draft // indexed by inputMode
	width      int      // terminal width for ellipsization
	quitting   bool
	mode       inputMode
}

// Loader reads the almanac source again. It is nil when the source cannot
// be re-read, such as stdin.
type Loader func(ctx context.Context) (*almanac.Almanac, error)

// Run starts the REPL over a parsed almanac.
func Run(
	ctx context.Context,
	a *almanac.Almanac,
	reload Loader,
	cacheDir string,
	logger log.Logger,
) (err error) {
	ctx, cancel := context.WithCancelCause(ctx)

	defer func(err *error) { cancel(*err) }(&err)

	if a == nil {
		return ErrNoAlmanac
	}

	history := NewHistory(filepath.Join(cacheDir, baseHistory))
	if err := history.Load(); err != nil {
		logger.WarnContext(ctx, "could not load history",
			slog.String("path", history.path),
			slog.String("error", err.Error()),
		)
	}

	m, err := newModel(ctx, a, reload, history, logger)
	if err != nil {
		return err
	}

	logger.TraceContext(ctx, "repl start",
		slog.String("cache_dir", cacheDir),
		slog.Bool("reloadable", reload != nil),
		slog.Int("history", history.Len()),
		slog.Any("almanac", a),
	)

	_, err = tea.NewProgram(m, tea.WithContext(ctx)).Run()

	return err
}

const defaultWidth = 80

func newModel(
	ctx context.Context,
	a *almanac.Almanac,
	reload Loader,
	history *History,
	logger log.Logger,
) (model, error) {
	env, err := newEnv(a)
	if err != nil {
		return model{}, err
	}

	ti := textinput.New()
	ti.Prompt = promptStyle.Render(evalPrompt)
	ti.Focus()
	ti.CharLimit = 1024
	ti.Width = defaultWidth

	return model{
		ctxFunc:    func() context.Context { return ctx },
		input:      ti,
		almanac:    a,
		env:        env,
		reload:     reload,
		logger:     logger,
		history:    history,
		historyIdx: history.Len(),
		comp:       completion{index: -1},
		width:      defaultWidth,
		mode:       modeEval,
	}, nil
}

func (m model) Init() tea.Cmd {
	return textinput.Blink
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.input.Width = msg.Width - len(evalPrompt) - 2

		return m, nil

	case editDoneMsg:
		return m.replaceAlmanac(msg.almanac, "✔ almanac updated")

	case reloadMsg:
		if msg.err != nil {
			return m, printError("reload", msg.err)
		}

		return m.replaceAlmanac(msg.almanac, "✔ almanac reloaded")

	case editCancelledMsg:
		return m, tea.Println(hintStyle.Render("🗴 edit cancelled"))

	case editDeclinedMsg:
		m.quitting = true

		return m, tea.Quit

	case editErrorMsg:
		return m, printError("error", msg.err)
	}

	var cmd tea.Cmd

	m.input, cmd = m.input.Update(msg)

	return m, cmd
}

func printError(prefix string, err error) tea.Cmd {
	return tea.Println(errorStyle.Render("🗴 " + prefix + ": " + err.Error()))
}

// replaceAlmanac swaps in a, keeping the current session if its environment
// cannot be built.
func (m model) replaceAlmanac(a *almanac.Almanac, done string) (model, tea.Cmd) {
	next, err := m.withAlmanac(a)
	if err != nil {
		return m, printError("rejected", err)
	}

	next.logger.TraceContext(next.ctxFunc(), "repl almanac replaced",
		slog.Any("almanac", a),
	)

	return next, tea.Println(resultStyle.Render(done))
}

func (m model) View() string {
	if m.quitting {
		return ""
	}

	return m.input.View() + "\n" + m.hintLine() + "\n"
}

// hintLine renders the line below the input: the history position, a usage
// hint, the signature of the enclosing call, or the completion candidates.
func (m model) hintLine() string {
	input := m.input.Value()

	if m.historyIdx < m.history.Len() {
		pos := lipgloss.NewStyle().Bold(true).Render(strconv.Itoa(m.historyIdx + 1))

		return hintStyle.Render(fmt.Sprintf("%s/%d", pos, m.history.Len()))
	}

	if strings.TrimSpace(input) == "" {
		if m.mode == modeEval {
			return hintStyle.Render("Type an expression or press Esc for commands")
		}

		return hintStyle.Render("Type: " + strings.Join(ctrlCommands, ", ") +
			" (press Esc to return)")
	}

	if m.mode == modeEval {
		call := detectFunctionCall(input, m.input.Position())
		if call.inCall {
			if sig, params := getSignature(call.name); sig != "" {
				return renderSignatureHint(sig, params, call.argIndex)
			}
		}
	}

	return renderCandidateBar(
		m.comp.matches, m.comp.index, m.comp.cycling, m.width,
	)
}
