// Package tui renders the gardening assistant as a full-screen
// terminal application built on Bubble Tea.
package tui

import (
	"context"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"

	"github.com/bnema/rooftop/internal/application"
	"github.com/bnema/rooftop/internal/domain"
	"github.com/bnema/rooftop/internal/prefs"
)

// Options carries everything the TUI needs; wiring happens in cmd.
type Options struct {
	Context   context.Context
	Session   *domain.Session
	Auth      *application.AuthService
	Forum     *application.ForumService
	Reminders *application.ReminderService
	Chat      *application.ChatService
	// ChatInitErr records why the completion gateway could not be
	// built; the chatbot page explains it instead of failing at start.
	ChatInitErr error

	Logger    *zap.Logger
	Prefs     prefs.Prefs
	PrefsPath string
}

// Run blocks until the user quits.
func Run(opts Options) error {
	p := tea.NewProgram(newModel(opts), tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("run ui: %w", err)
	}
	return nil
}
