package tui

import (
	"context"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textarea"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"go.uber.org/zap"

	"github.com/bnema/rooftop/internal/application"
)

type chatState struct {
	input   textarea.Model
	spin    spinner.Model
	waiting bool
	answer  string
	errText string
}

// completionMsg carries the gateway round-trip result back into the
// event loop.
type completionMsg struct {
	answer string
	err    error
}

func newChatState() chatState {
	input := textarea.New()
	input.Placeholder = "Type your question here..."
	input.SetHeight(4)
	input.CharLimit = 2000

	spin := spinner.New(
		spinner.WithSpinner(spinner.Dot),
		spinner.WithStyle(lipgloss.NewStyle().Foreground(lipgloss.Color("114"))),
	)

	return chatState{
		input: input,
		spin:  spin,
	}
}

func (m Model) updateChat(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Escape):
		m.focus = focusNav
		m.chatUI.input.Blur()
		return m, nil

	case key.Matches(msg, m.keys.Send):
		if m.chatUI.waiting {
			return m, nil
		}
		prompt := m.chatUI.input.Value()
		m.chatUI.waiting = true
		m.chatUI.answer = ""
		m.chatUI.errText = ""
		return m, tea.Batch(m.chatUI.spin.Tick, askCmd(m.ctx, m.chat, prompt))
	}

	var cmd tea.Cmd
	m.chatUI.input, cmd = m.chatUI.input.Update(msg)
	return m, cmd
}

// askCmd runs the blocking gateway call off the event loop. There is no
// timeout; a hung backend holds the question open until the program
// exits.
func askCmd(ctx context.Context, chat *application.ChatService, prompt string) tea.Cmd {
	return func() tea.Msg {
		answer, err := chat.Ask(ctx, prompt)
		return completionMsg{answer: answer, err: err}
	}
}

func (m Model) handleCompletion(msg completionMsg) Model {
	m.chatUI.waiting = false
	if msg.err != nil {
		m.chatUI.errText = msg.err.Error()
		m.logger.Warn("completion failed", zap.Error(msg.err))
		return m
	}
	m.chatUI.answer = msg.answer
	m.chatUI.input.Reset()
	return m
}

func (m Model) renderChatPage() string {
	lines := []string{
		m.styles.title.Render("🤖 Gardening Assistant Chatbot"),
	}

	if m.chat == nil {
		reason := "chatbot unavailable"
		if m.chatInitErr != nil {
			reason = m.chatInitErr.Error()
		}
		lines = append(lines, m.styles.formError.Render("⚠ Error initializing the chatbot: "+reason))
		lines = append(lines, m.styles.empty.Render("Set a Gemini API key with `rooftop key set` and restart."))
		return lipgloss.JoinVertical(lipgloss.Left, lines...)
	}

	lines = append(lines,
		m.styles.formLabel.Render("Ask anything about rooftop gardening:"),
		m.chatUI.input.View(),
	)

	switch {
	case m.chatUI.waiting:
		lines = append(lines, m.chatUI.spin.View()+m.styles.spinnerLabel.Render(" Thinking..."))
	case m.chatUI.errText != "":
		lines = append(lines, m.styles.formError.Render("⚠ "+m.chatUI.errText))
	case m.chatUI.answer != "":
		lines = append(lines,
			m.styles.formOK.Render("AI Response:"),
			renderMarkdown(m.chatUI.answer, m.width-2),
		)
	}

	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}
