package tui

import (
	"context"
	"time"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"go.uber.org/zap"

	"github.com/bnema/rooftop/internal/application"
	"github.com/bnema/rooftop/internal/domain"
	"github.com/bnema/rooftop/internal/prefs"
	"github.com/bnema/rooftop/internal/tui/content"
)

// Page is the navigation selector. Anything outside the four known
// pages renders only the reminder header.
type Page int

const (
	PageHome Page = iota
	PageChatbot
	PagePrompts
	PageForum
)

var pageTitles = [...]string{"Home", "Chatbot", "Prompts", "Forum"}

func (p Page) Title() string {
	if p < PageHome || p > PageForum {
		return ""
	}
	return pageTitles[p]
}

func pageFromName(name string) Page {
	for i, title := range pageTitles {
		if title == name {
			return Page(i)
		}
	}
	return PageHome
}

// focusArea determines which component consumes key events.
type focusArea int

const (
	focusNav focusArea = iota
	focusLogin
	focusChat
	focusPostForm
	focusReplyForm
)

type tickMsg time.Time

// Model is the root application state for Bubble Tea. Each interaction
// applies exactly one state transition through a service and re-renders;
// the reminder header recomputes on a one-second tick.
type Model struct {
	ctx       context.Context
	session   *domain.Session
	auth      *application.AuthService
	forum     *application.ForumService
	reminders *application.ReminderService
	chat      *application.ChatService
	// chatInitErr is a gateway construction failure (e.g. no API key);
	// the chatbot page shows it instead of the prompt form.
	chatInitErr error

	logger    *zap.Logger
	prefsPath string
	userPrefs prefs.Prefs

	keys   keyMap
	styles styles
	page   Page
	focus  focusArea
	width  int
	height int
	ready  bool

	login   loginState
	chatUI  chatState
	forumUI forumState

	homeView    viewport.Model
	promptsView viewport.Model
}

func newModel(opts Options) Model {
	m := Model{
		ctx:         opts.Context,
		session:     opts.Session,
		auth:        opts.Auth,
		forum:       opts.Forum,
		reminders:   opts.Reminders,
		chat:        opts.Chat,
		chatInitErr: opts.ChatInitErr,
		logger:      opts.Logger,
		prefsPath:   opts.PrefsPath,
		userPrefs:   opts.Prefs,
		keys:        defaultKeyMap(),
		styles:      newStyles(),
		page:        pageFromName(opts.Prefs.LastPage),
		login:       newLoginState(),
		chatUI:      newChatState(),
		forumUI:     newForumState(),
	}
	if m.ctx == nil {
		m.ctx = context.Background()
	}
	if m.logger == nil {
		m.logger = zap.NewNop()
	}
	return m
}

func (m Model) Init() tea.Cmd {
	return tea.Batch(tick(), m.chatUI.spin.Tick)
}

func tick() tea.Cmd {
	return tea.Tick(time.Second, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		return m.resize(msg), nil

	case tickMsg:
		// The header is recomputed in View; the tick only forces a
		// re-render.
		return m, tick()

	case spinner.TickMsg:
		if !m.chatUI.waiting {
			return m, nil
		}
		var cmd tea.Cmd
		m.chatUI.spin, cmd = m.chatUI.spin.Update(msg)
		return m, cmd

	case completionMsg:
		return m.handleCompletion(msg), nil

	case tea.KeyMsg:
		return m.handleKey(msg)
	}

	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	// ctrl+c quits regardless of focus.
	if msg.String() == "ctrl+c" {
		return m.quit()
	}

	switch m.focus {
	case focusLogin:
		return m.updateLogin(msg)
	case focusChat:
		return m.updateChat(msg)
	case focusPostForm, focusReplyForm:
		return m.updateForumForm(msg)
	}

	switch {
	case key.Matches(msg, m.keys.Quit):
		return m.quit()
	case key.Matches(msg, m.keys.PageHome):
		return m.switchPage(PageHome)
	case key.Matches(msg, m.keys.PageChatbot):
		return m.switchPage(PageChatbot)
	case key.Matches(msg, m.keys.PagePrompts):
		return m.switchPage(PagePrompts)
	case key.Matches(msg, m.keys.PageForum):
		return m.switchPage(PageForum)
	case key.Matches(msg, m.keys.NextPage):
		return m.switchPage((m.page + 1) % Page(len(pageTitles)))
	case key.Matches(msg, m.keys.Login):
		if !m.session.LoggedIn {
			m.focus = focusLogin
			m.login = newLoginState()
			return m, m.login.username.Focus()
		}
		return m, nil
	}

	switch m.page {
	case PageHome:
		var cmd tea.Cmd
		m.homeView, cmd = m.homeView.Update(msg)
		return m, cmd
	case PagePrompts:
		var cmd tea.Cmd
		m.promptsView, cmd = m.promptsView.Update(msg)
		return m, cmd
	case PageChatbot:
		if key.Matches(msg, m.keys.Submit) && m.chat != nil {
			m.focus = focusChat
			return m, m.chatUI.input.Focus()
		}
	case PageForum:
		return m.updateForumNav(msg)
	}

	return m, nil
}

func (m Model) switchPage(page Page) (tea.Model, tea.Cmd) {
	m.page = page
	if page == PageForum {
		m = m.refreshForum()
	}
	return m, nil
}

func (m Model) quit() (tea.Model, tea.Cmd) {
	m.userPrefs.LastPage = m.page.Title()
	if m.prefsPath != "" {
		if err := prefs.Save(m.prefsPath, m.userPrefs); err != nil {
			m.logger.Warn("save preferences", zap.Error(err))
		}
	}
	return m, tea.Quit
}

func (m Model) resize(msg tea.WindowSizeMsg) Model {
	m.width = msg.Width
	m.height = msg.Height

	bodyHeight := msg.Height - headerHeight(m) - 3
	if bodyHeight < 3 {
		bodyHeight = 3
	}

	if !m.ready {
		m.homeView = viewport.New(msg.Width, bodyHeight)
		m.promptsView = viewport.New(msg.Width, bodyHeight)
		m.ready = true
	} else {
		m.homeView.Width = msg.Width
		m.homeView.Height = bodyHeight
		m.promptsView.Width = msg.Width
		m.promptsView.Height = bodyHeight
	}

	contentWidth := msg.Width - 2
	m.homeView.SetContent(renderMarkdown(content.Home, contentWidth))
	m.promptsView.SetContent(renderMarkdown(content.Prompts, contentWidth))

	m.chatUI.input.SetWidth(msg.Width - 4)
	return m
}

func (m Model) View() string {
	if !m.ready {
		return "loading..."
	}

	sections := []string{
		m.renderHeader(),
		m.renderNav(),
	}

	if m.focus == focusLogin {
		sections = append(sections, m.renderLoginForm(), m.renderHelp())
		return lipgloss.JoinVertical(lipgloss.Left, sections...)
	}

	switch m.page {
	case PageHome:
		sections = append(sections, m.homeView.View())
	case PageChatbot:
		sections = append(sections, m.renderChatPage())
	case PagePrompts:
		sections = append(sections, m.promptsView.View())
	case PageForum:
		sections = append(sections, m.renderForumPage())
	}

	sections = append(sections, m.renderHelp())

	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

func (m Model) renderNav() string {
	items := make([]string, 0, len(pageTitles))
	for i, title := range pageTitles {
		style := m.styles.navInactive
		if Page(i) == m.page {
			style = m.styles.navActive
		}
		items = append(items, style.Render(title))
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, items...)
}

func (m Model) renderHelp() string {
	switch m.focus {
	case focusLogin:
		return m.styles.help.Render("tab: next field • enter: login • esc: cancel")
	case focusChat:
		return m.styles.help.Render("ctrl+s: send • esc: back")
	case focusPostForm, focusReplyForm:
		return m.styles.help.Render("tab: next field • enter: submit • esc: cancel")
	}

	base := "1-4: pages • tab: next page • q: quit"
	if !m.session.LoggedIn {
		base = "l: login • " + base
	}
	if m.page == PageForum {
		base = "n: new post • r: reply • ↑/↓: select • " + base
	}
	if m.page == PageChatbot {
		base = "enter: ask • " + base
	}
	return m.styles.help.Render(base)
}
