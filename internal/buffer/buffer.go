// Package buffer holds the append-only line store the pager renders from.
// The buffer is owned by the UI model; producer goroutines never touch it.
package buffer

import "strings"

// EndMarkerText is the text of the entry appended when the input stream ends.
const EndMarkerText = "(END)"

// Entry is one ingested line, or the end-of-stream marker.
type Entry struct {
	Index int
	Text  string
	End   bool
}

// Buffer is an append-only sequence of lines with 1-based, gap-free indices.
// Not safe for concurrent use.
type Buffer struct {
	entries []Entry
	closed  bool
}

// New returns an empty buffer.
func New() *Buffer {
	return &Buffer{}
}

// Append adds one line to the buffer. Appends after Close are dropped.
func (b *Buffer) Append(text string) {
	if b.closed {
		return
	}
	b.entries = append(b.entries, Entry{Index: len(b.entries) + 1, Text: text})
}

// Close appends the end-of-stream marker. Only the first call has effect.
func (b *Buffer) Close() {
	if b.closed {
		return
	}
	b.closed = true
	b.entries = append(b.entries, Entry{Index: len(b.entries) + 1, Text: EndMarkerText, End: true})
}

// Closed reports whether the end-of-stream marker has been appended.
func (b *Buffer) Closed() bool {
	return b.closed
}

// Len returns the number of entries, counting the end marker once present.
func (b *Buffer) Len() int {
	return len(b.entries)
}

// Entries exposes the underlying entries. Callers must not mutate them.
func (b *Buffer) Entries() []Entry {
	return b.entries
}

// LabelWidth returns the digit width needed to print every entry index,
// so index labels can be zero-padded to a uniform column.
func (b *Buffer) LabelWidth() int {
	width := 1
	for n := len(b.entries); n >= 10; n /= 10 {
		width++
	}
	return width
}

// Filter returns the subsequence of entries whose text contains query as a
// substring. An empty query returns the entries unchanged. The end marker is
// matched like any other entry.
func Filter(entries []Entry, query string) []Entry {
	if query == "" {
		return entries
	}
	matched := make([]Entry, 0, len(entries))
	for _, entry := range entries {
		if strings.Contains(entry.Text, query) {
			matched = append(matched, entry)
		}
	}
	return matched
}
