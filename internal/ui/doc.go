// Package ui contains the Bubble Tea program that powers the pager. The
// Model type focuses on message orchestration, while dedicated helpers own
// input editing, rendering, and the stream bridge.
//
// Message flow:
//   - Bubble Tea invokes Model.Update with incoming messages and routes each
//     one through a typed handler registry, so key presses, window resizes,
//     and stream events are each handled by a focused function.
//   - A stream.Reader goroutine publishes line events on its channel;
//     waitForStreamEvent (internal/ui/stream.go) blocks on that channel and
//     re-arms itself after every delivery, which keeps exactly one command
//     outstanding per reader and preserves the reader's publish order inside
//     the program's message queue.
//   - Keystrokes append to or backspace the filter text
//     (internal/ui/input.go); an edit that leaves the filter reading exactly
//     "jj" quits the program instead of filtering.
//
// State ownership:
//   - The line buffer (internal/buffer) and filter text are owned solely by
//     the model. Producers communicate only through messages, so no
//     application state needs locking.
//   - Rendering (internal/ui/view.go) recomputes the filtered view from
//     scratch on every message and repaints the whole frame: the tail of the
//     matching lines, a separator, and the filter prompt.
package ui
