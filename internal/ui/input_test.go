package ui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
)

func typeKeys(h *Harness, text string) {
	for _, r := range text {
		if h.Quit() {
			return
		}
		h.Send(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}})
	}
}

func TestPrintableKeysAppendToFilter(t *testing.T) {
	h := NewHarness(NewModel(80, 24, nil))
	typeKeys(h, "alpha")
	if got := h.Model().Filter(); got != "alpha" {
		t.Fatalf("expected filter alpha, got %q", got)
	}
	h.Send(tea.KeyMsg{Type: tea.KeySpace})
	typeKeys(h, "x")
	if got := h.Model().Filter(); got != "alpha x" {
		t.Fatalf("expected filter with space, got %q", got)
	}
}

func TestBackspaceRemovesLastRune(t *testing.T) {
	h := NewHarness(NewModel(80, 24, nil))
	typeKeys(h, "ab")
	h.Send(tea.KeyMsg{Type: tea.KeyBackspace})
	if got := h.Model().Filter(); got != "a" {
		t.Fatalf("expected filter a, got %q", got)
	}
}

func TestBackspaceOnEmptyFilterIsNoOp(t *testing.T) {
	h := NewHarness(NewModel(80, 24, nil))
	h.Send(tea.KeyMsg{Type: tea.KeyBackspace})
	if got := h.Model().Filter(); got != "" {
		t.Fatalf("expected empty filter, got %q", got)
	}
	if h.Quit() {
		t.Fatal("backspace on empty filter must not quit")
	}
}

func TestNavigationKeysAreDiscarded(t *testing.T) {
	h := NewHarness(NewModel(80, 24, nil))
	for _, key := range []tea.KeyMsg{
		{Type: tea.KeyUp},
		{Type: tea.KeyDown},
		{Type: tea.KeyEnter},
		{Type: tea.KeyEsc},
		{Type: tea.KeyTab},
		{Type: tea.KeyRunes, Runes: []rune{'x'}, Alt: true},
	} {
		h.Send(key)
	}
	if got := h.Model().Filter(); got != "" {
		t.Fatalf("expected filter untouched, got %q", got)
	}
	if h.Quit() {
		t.Fatal("navigation keys must not quit")
	}
}

func TestQuitCommandTerminates(t *testing.T) {
	h := NewHarness(NewModel(80, 24, nil))
	typeKeys(h, "j")
	if h.Quit() {
		t.Fatal("single j must not quit")
	}
	typeKeys(h, "j")
	if !h.Quit() {
		t.Fatal("expected jj to quit")
	}
}

func TestQuitCommandRequiresExactFilter(t *testing.T) {
	h := NewHarness(NewModel(80, 24, nil))
	typeKeys(h, "jxj")
	if h.Quit() {
		t.Fatal("jxj must not quit")
	}
	if got := h.Model().Filter(); got != "jxj" {
		t.Fatalf("expected filter jxj, got %q", got)
	}
}

func TestQuitCommandIgnoresLongerFilters(t *testing.T) {
	h := NewHarness(NewModel(80, 24, nil))
	typeKeys(h, "ajj")
	if h.Quit() {
		t.Fatal("ajj must not quit")
	}
}

func TestCtrlCQuits(t *testing.T) {
	h := NewHarness(NewModel(80, 24, nil))
	h.Send(tea.KeyMsg{Type: tea.KeyCtrlC})
	if !h.Quit() {
		t.Fatal("expected ctrl+c to quit")
	}
}
