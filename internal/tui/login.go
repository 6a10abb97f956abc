package tui

import (
	"errors"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"go.uber.org/zap"

	"github.com/bnema/rooftop/internal/domain"
)

type loginState struct {
	username textinput.Model
	password textinput.Model
	focusIdx int
	errText  string
}

func newLoginState() loginState {
	username := textinput.New()
	username.Placeholder = "Enter your username"
	username.CharLimit = 64

	password := textinput.New()
	password.Placeholder = "Enter your password"
	password.EchoMode = textinput.EchoPassword
	password.CharLimit = 64

	return loginState{
		username: username,
		password: password,
	}
}

func (m Model) updateLogin(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Escape):
		m.focus = focusNav
		m.login = newLoginState()
		return m, nil

	case key.Matches(msg, m.keys.Next):
		m.login.focusIdx = (m.login.focusIdx + 1) % 2
		if m.login.focusIdx == 0 {
			m.login.password.Blur()
			return m, m.login.username.Focus()
		}
		m.login.username.Blur()
		return m, m.login.password.Focus()

	case key.Matches(msg, m.keys.Submit):
		return m.submitLogin()
	}

	var cmd tea.Cmd
	if m.login.focusIdx == 0 {
		m.login.username, cmd = m.login.username.Update(msg)
	} else {
		m.login.password, cmd = m.login.password.Update(msg)
	}
	return m, cmd
}

func (m Model) submitLogin() (tea.Model, tea.Cmd) {
	username := m.login.username.Value()
	password := m.login.password.Value()

	if err := m.auth.Login(m.session, username, password); err != nil {
		if errors.Is(err, domain.ErrInvalidCredentials) {
			m.login.errText = "Login unsuccessful. Please check your credentials."
		} else {
			m.login.errText = err.Error()
		}
		m.logger.Info("login rejected", zap.String("username", username))
		return m, nil
	}

	m.logger.Info("login accepted", zap.String("username", username))
	m.focus = focusNav
	m.login = newLoginState()
	return m, nil
}

func (m Model) renderLoginForm() string {
	lines := []string{
		m.styles.title.Render("🔑 Login"),
		m.styles.formLabel.Render("Username"),
		m.login.username.View(),
		m.styles.formLabel.Render("Password"),
		m.login.password.View(),
	}
	if m.login.errText != "" {
		lines = append(lines, m.styles.formError.Render(m.login.errText))
	}
	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}
