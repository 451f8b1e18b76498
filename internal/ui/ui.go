// Package ui implements an interactive watch view using [tea]. It re-probes
// a single path on a fixed interval and renders the current normalized
// metadata record.
package ui

import (
	"context"
	"fmt"
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// Handler is the principal implementation of a user interface [Handler].
type Handler struct {
	program *tea.Program
}

// NewHandler returns a pointer to a new user interface [Handler] watching the
// given path.
func NewHandler(ctx context.Context, path string, interval time.Duration, probeHandler probeProvider) *Handler {
	model := NewTeaModel(path, interval, probeHandler)

	return &Handler{
		program: tea.NewProgram(model, tea.WithAltScreen(), tea.WithContext(ctx)),
	}
}

// Launch starts the watch view (the [tea.Program]) and blocks until it exits.
func (uiHandler *Handler) Launch() error {
	if _, err := uiHandler.program.Run(); err != nil {
		return fmt.Errorf("(ui) %w", err)
	}

	return nil
}
