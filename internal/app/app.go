package app

import (
	"errors"
	"fmt"
	"os"

	"github.com/atomicstack/sluice/internal/stream"
	"github.com/atomicstack/sluice/internal/ui"
	tea "github.com/charmbracelet/bubbletea"
)

// Config describes user-provided application options.
type Config struct {
	Width  int
	Height int
}

// Run bootstraps and executes the Bubble Tea program. Stdin carries the
// piped line stream, so the keyboard is re-sourced from the controlling
// terminal. The stream reader is stopped and joined before Run returns on
// every path, including interrupts and program kills, which is what keeps
// shutdown clean: the runtime restores the terminal, then the producer is
// drained.
func Run(cfg Config) error {
	tty, err := os.Open("/dev/tty")
	if err != nil {
		return fmt.Errorf("open controlling terminal: %w", err)
	}
	defer tty.Close()

	reader := stream.NewReader(os.Stdin)
	defer func() {
		reader.Stop()
		reader.Wait()
	}()

	model := ui.NewModel(cfg.Width, cfg.Height, reader)
	program := tea.NewProgram(model, tea.WithAltScreen(), tea.WithInput(tty))
	_, err = program.Run()
	if errors.Is(err, tea.ErrProgramKilled) {
		return nil
	}
	return err
}
