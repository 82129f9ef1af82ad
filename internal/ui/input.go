package ui

import (
	"unicode"

	"github.com/atomicstack/sluice/internal/logging/events"
	tea "github.com/charmbracelet/bubbletea"
)

func (m *Model) updateFilterCursorModel(msg tea.Msg) tea.Cmd {
	var cmd tea.Cmd
	m.filterCursor, cmd = m.filterCursor.Update(msg)
	return cmd
}

// handleKeyMsg edits the filter text. Only printable characters and
// backspace reach the filter; every other key is discarded, with ctrl+c as
// the interrupt path.
func (m *Model) handleKeyMsg(msg tea.Msg) tea.Cmd {
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		return nil
	}
	switch key.Type {
	case tea.KeyCtrlC:
		events.UI.Interrupt()
		return tea.Quit
	case tea.KeyBackspace, tea.KeyCtrlH:
		return m.removeFilterRune()
	case tea.KeySpace:
		return m.appendToFilter(" ")
	case tea.KeyRunes:
		if key.Alt {
			return nil
		}
		if len(key.Runes) == 0 {
			return nil
		}
		for _, r := range key.Runes {
			if unicode.IsControl(r) {
				return nil
			}
		}
		return m.appendToFilter(string(key.Runes))
	}
	return nil
}

func (m *Model) appendToFilter(text string) tea.Cmd {
	if text == "" {
		return nil
	}
	m.filter += text
	events.Filter.Append(m.filter)
	return m.checkQuitCommand()
}

func (m *Model) removeFilterRune() tea.Cmd {
	runes := []rune(m.filter)
	if len(runes) == 0 {
		return nil
	}
	m.filter = string(runes[:len(runes)-1])
	events.Filter.Backspace(m.filter)
	return m.checkQuitCommand()
}

// checkQuitCommand terminates the program when an edit leaves the filter
// reading exactly the quit chord.
func (m *Model) checkQuitCommand() tea.Cmd {
	if m.filter != quitCommand {
		return nil
	}
	events.Filter.Quit()
	return tea.Quit
}
