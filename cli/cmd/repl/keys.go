package repl

import (
	"log/slog"

	tea "github.com/charmbracelet/bubbletea"
)

func (m model) handleKey(msg tea.KeyMsg) (model, tea.Cmd) {
	m.logger.TraceContext(m.ctxFunc(), "repl keypress",
		slog.String("key", msg.String()),
	)

	switch msg.Type {
	case tea.KeyCtrlC, tea.KeyCtrlD:
		if m.input.Value() == "" {
			m.quitting = true

			return m, tea.Quit
		}

		if msg.Type == tea.KeyCtrlC {
			m.input.SetValue("")
			m.comp.cycling = false
			m.historyIdx = m.history.Len()
			m.refreshMatches(false)
		}

		return m, nil

	case tea.KeyEnter:
		if m.comp.cycling && len(m.comp.matches) > 0 {
			// Lock in the current candidate without executing.
			m.comp.cycling = false
			m.refreshMatches(true)

			return m, nil
		}

		return m.executeInput()

	case tea.KeyTab:
		return m.cycle(1), nil

	case tea.KeyShiftTab:
		return m.cycle(-1), nil

	case tea.KeyUp:
		return m.recall(-1, false), nil

	case tea.KeyDown:
		return m.recall(1, false), nil

	case tea.KeyShiftUp:
		return m.recall(-1, true), nil

	case tea.KeyShiftDown:
		return m.recall(1, true), nil

	case tea.KeyEsc:
		if m.comp.cycling {
			m.comp.cycling = false
			m.input.SetValue(m.comp.before.text)
			m.input.SetCursor(m.comp.before.cursor)
			m.refreshMatches(false)

			return m, nil
		}

		return m.switchToMode(1 - m.mode), nil

	case tea.KeyRunes:
		// Space breaks out of cycling and keeps the candidate.
		if m.comp.cycling && msg.String() == " " {
			m.comp.cycling = false
		}

		var cmd tea.Cmd

		m.historyIdx = m.history.Len()
		m.input, cmd = m.input.Update(msg)
		m.refreshMatches(true)

		return m, cmd
	}

	// Any other key (backspace, delete, arrows) edits without completing.
	var cmd tea.Cmd

	m.comp.cycling = false
	m.historyIdx = m.history.Len()
	m.input, cmd = m.input.Update(msg)
	m.refreshMatches(false)

	return m, cmd
}

// cycle moves the selected completion candidate by step, wrapping around.
// A sole candidate is completed at once.
func (m model) cycle(step int) model {
	n := len(m.comp.matches)
	if n == 0 {
		return m
	}

	if n == 1 {
		m.replaceWord(m.comp.matches[0].Str)
		m.comp = completion{index: -1}

		return m
	}

	switch {
	case m.comp.cycling:
		m.comp.index = (m.comp.index + step + n) % n
	case step < 0:
		m.comp.index = n - 1
	default:
		m.comp.index = 0
	}

	if !m.comp.cycling {
		m.comp.cycling = true
		m.comp.before = draft{m.input.Value(), m.input.Position()}
	}

	m.replaceWord(m.comp.matches[m.comp.index].Str)

	return m
}

// replaceWord replaces the current word in the input with s and moves the
// cursor behind it.
func (m *model) replaceWord(s string) {
	input := m.input.Value()
	cursor := m.comp.wordStart + len(s)

	m.input.SetValue(input[:m.comp.wordStart] + s + input[m.comp.wordEnd:])
	m.input.SetCursor(cursor)
	m.comp.wordEnd = cursor
}

// refreshMatches recomputes the completion candidates for the word at the
// cursor. With autoConfirm, a typed word equal to its sole candidate is
// accepted; deletions and cursor movement pass false so editing never
// completes unexpectedly.
func (m *model) refreshMatches(autoConfirm bool) {
	m.comp.matches, m.comp.wordStart, m.comp.wordEnd = m.computeMatches()

	if !m.comp.cycling {
		m.comp.index = -1
	}

	if !autoConfirm || len(m.comp.matches) != 1 {
		return
	}

	if s := m.comp.matches[0].Str; m.input.Value()[m.comp.wordStart:m.comp.wordEnd] == s {
		m.replaceWord(s)
		m.comp = completion{index: -1}
	}
}
