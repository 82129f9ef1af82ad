package ui

import (
	"fmt"
	"strings"

	"github.com/atomicstack/sluice/internal/buffer"
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/reflow/truncate"
)

const filterPromptLabel = "filter> "

// View implements tea.Model. Every message repaints the full frame: the tail
// of the filtered view padded to height-2 rows, a separator row, and the
// filter prompt on the last row.
func (m *Model) View() string {
	width := m.width
	if width <= 0 {
		width = defaultWidth
	}
	height := m.height
	if height <= 0 {
		height = defaultHeight
	}

	contentRows := height - 2
	if contentRows < 0 {
		contentRows = 0
	}

	entries := buffer.Filter(m.lines.Entries(), m.filter)
	if len(entries) > contentRows {
		entries = entries[len(entries)-contentRows:]
	}

	labelWidth := m.lines.LabelWidth()
	rows := make([]string, 0, height)
	for _, entry := range entries {
		rows = append(rows, buildEntryRow(entry, labelWidth, width))
	}
	for len(rows) < contentRows {
		rows = append(rows, "")
	}
	rows = append(rows, buildSeparatorRow(width))
	rows = append(rows, m.buildPromptRow(width))
	return strings.Join(rows, "\n")
}

// buildEntryRow renders one line of the filtered view: a zero-padded index
// label sized to the whole buffer's digit width, then the line text.
func buildEntryRow(entry buffer.Entry, labelWidth, width int) string {
	label := fmt.Sprintf("%0*d", labelWidth, entry.Index)
	if styles.Index != nil {
		label = styles.Index.Render(label)
	}
	text := entry.Text
	textStyle := styles.Line
	if entry.End {
		textStyle = styles.EndMarker
	}
	if textStyle != nil {
		text = textStyle.Render(text)
	}
	row := label + " " + text
	if lipgloss.Width(row) > width {
		row = truncate.StringWithTail(row, uint(width), "…")
	}
	return row
}

func buildSeparatorRow(width int) string {
	if width < 1 {
		return ""
	}
	row := strings.Repeat("─", width)
	if styles.Separator != nil {
		row = styles.Separator.Render(row)
	}
	return row
}

// buildPromptRow renders the last row: the prompt label, the filter text,
// and the cursor marker, truncated with an ellipsis when wider than the
// terminal and right-padded to the full width otherwise.
func (m *Model) buildPromptRow(width int) string {
	prompt := filterPromptLabel
	if styles.FilterPrompt != nil {
		prompt = styles.FilterPrompt.Render(prompt)
	}
	text := m.filter
	if styles.Filter != nil && text != "" {
		text = styles.Filter.Render(text)
	}
	row := prompt + text + m.renderFilterCursor()
	w := lipgloss.Width(row)
	if w > width {
		return truncate.StringWithTail(row, uint(width), "…")
	}
	if w < width {
		row += strings.Repeat(" ", width-w)
	}
	return row
}

func (m *Model) renderFilterCursor() string {
	m.filterCursor.SetChar(" ")
	return m.filterCursor.View()
}
