package ui

import (
	"reflect"

	"github.com/atomicstack/sluice/internal/buffer"
	"github.com/atomicstack/sluice/internal/logging/events"
	"github.com/atomicstack/sluice/internal/stream"
	"github.com/atomicstack/sluice/internal/theme"
	"github.com/charmbracelet/bubbles/cursor"
	tea "github.com/charmbracelet/bubbletea"
)

// quitCommand is the filter text that exits the pager. It is a modal quit
// chord rather than a search term: the moment the filter reads exactly "jj"
// the program terminates, so "jj" can never be used as a filter.
const quitCommand = "jj"

const (
	defaultWidth  = 80
	defaultHeight = 24
)

var styles = theme.Default()

type msgHandler func(tea.Msg) tea.Cmd

// Model implements the Bubble Tea model for the pager: the single consumer
// owning the line buffer, filter text, and viewport dimensions.
type Model struct {
	lines  *buffer.Buffer
	filter string

	width       int
	height      int
	fixedWidth  bool
	fixedHeight bool

	reader       *stream.Reader
	filterCursor cursor.Model

	handlers map[reflect.Type]msgHandler
}

// NewModel initialises the UI state. Width and height above zero pin the
// viewport instead of tracking the terminal.
func NewModel(width, height int, reader *stream.Reader) *Model {
	m := &Model{
		lines:  buffer.New(),
		reader: reader,
	}
	if width > 0 {
		m.width = width
		m.fixedWidth = true
	}
	if height > 0 {
		m.height = height
		m.fixedHeight = true
	}
	c := cursor.New()
	if styles.Cursor != nil {
		c.Style = styles.Cursor.Copy()
	}
	if styles.Filter != nil {
		c.TextStyle = styles.Filter.Copy()
	}
	c.SetChar(" ")
	m.filterCursor = c
	m.registerHandlers()
	return m
}

// Init is part of the tea.Model interface.
func (m *Model) Init() tea.Cmd {
	cmds := []tea.Cmd{}
	if m.reader != nil {
		cmds = append(cmds, waitForStreamEvent(m.reader))
	}
	if cmd := m.filterCursor.Focus(); cmd != nil {
		cmds = append(cmds, cmd)
	}
	if len(cmds) == 0 {
		return nil
	}
	return tea.Batch(cmds...)
}

// Update responds to Bubble Tea messages.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	cmds := make([]tea.Cmd, 0, 2)
	if cmd := m.updateFilterCursorModel(msg); cmd != nil {
		cmds = append(cmds, cmd)
	}
	if handler := m.handlerFor(msg); handler != nil {
		if cmd := handler(msg); cmd != nil {
			cmds = append(cmds, cmd)
		}
	}
	return m, m.finishUpdate(cmds)
}

func (m *Model) finishUpdate(cmds []tea.Cmd) tea.Cmd {
	switch len(cmds) {
	case 0:
		return nil
	case 1:
		return cmds[0]
	default:
		return tea.Batch(cmds...)
	}
}

func (m *Model) registerHandlers() {
	m.handlers = map[reflect.Type]msgHandler{
		reflect.TypeOf(tea.KeyMsg{}):        m.handleKeyMsg,
		reflect.TypeOf(tea.WindowSizeMsg{}): m.handleWindowSizeMsg,
		reflect.TypeOf(streamEventMsg{}):    m.handleStreamEventMsg,
		reflect.TypeOf(streamDoneMsg{}):     m.handleStreamDoneMsg,
	}
}

func (m *Model) handlerFor(msg tea.Msg) msgHandler {
	if msg == nil || m.handlers == nil {
		return nil
	}
	t := reflect.TypeOf(msg)
	if handler, ok := m.handlers[t]; ok {
		return handler
	}
	if t.Kind() == reflect.Ptr {
		if handler, ok := m.handlers[t.Elem()]; ok {
			return handler
		}
	}
	return nil
}

func (m *Model) handleWindowSizeMsg(msg tea.Msg) tea.Cmd {
	size, ok := msg.(tea.WindowSizeMsg)
	if !ok {
		return nil
	}
	if !m.fixedWidth {
		m.width = size.Width
	}
	if !m.fixedHeight {
		m.height = size.Height
	}
	events.UI.Resize(m.width, m.height)
	return nil
}

// Filter returns the current filter text.
func (m *Model) Filter() string {
	return m.filter
}

// Buffer exposes the line buffer for inspection.
func (m *Model) Buffer() *buffer.Buffer {
	return m.lines
}
