package ui

import (
	"github.com/atomicstack/sluice/internal/stream"
	tea "github.com/charmbracelet/bubbletea"
)

// waitForStreamEvent blocks on the reader's channel and surfaces the next
// line event as a message. The handler re-arms it, so exactly one command is
// outstanding per reader and the per-producer publish order is preserved.
func waitForStreamEvent(r *stream.Reader) tea.Cmd {
	return func() tea.Msg {
		evt, ok := <-r.Events()
		if !ok {
			return streamDoneMsg{}
		}
		return streamEventMsg{event: evt}
	}
}

type streamEventMsg struct {
	event stream.Event
}

type streamDoneMsg struct{}

func (m *Model) handleStreamEventMsg(msg tea.Msg) tea.Cmd {
	eventMsg, ok := msg.(streamEventMsg)
	if !ok {
		return nil
	}
	m.applyStreamEvent(eventMsg.event)
	if m.reader != nil {
		return waitForStreamEvent(m.reader)
	}
	return nil
}

func (m *Model) handleStreamDoneMsg(tea.Msg) tea.Cmd {
	m.reader = nil
	return nil
}

func (m *Model) applyStreamEvent(evt stream.Event) {
	if evt.End {
		m.lines.Close()
		return
	}
	m.lines.Append(evt.Text)
}
