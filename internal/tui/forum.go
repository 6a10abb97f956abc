package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"go.uber.org/zap"

	"github.com/bnema/rooftop/internal/domain"
)

const postTimeFormat = "2006-01-02 15:04:05"

type forumState struct {
	posts    []domain.Post
	selected int
	status   string
	isError  bool

	author   textinput.Model
	content  textinput.Model
	focusIdx int
}

func newForumState() forumState {
	author := textinput.New()
	author.Placeholder = "Your name"
	author.CharLimit = 64

	content := textinput.New()
	content.Placeholder = "Share your thoughts or ask a question..."
	content.CharLimit = 500

	return forumState{
		author:  author,
		content: content,
	}
}

// refreshForum reloads the shared post list into the view cache.
func (m Model) refreshForum() Model {
	posts, err := m.forum.ListPosts(m.ctx)
	if err != nil {
		m.forumUI.status = err.Error()
		m.forumUI.isError = true
		return m
	}

	m.forumUI.posts = posts
	if m.forumUI.selected >= len(posts) {
		m.forumUI.selected = len(posts) - 1
	}
	if m.forumUI.selected < 0 {
		m.forumUI.selected = 0
	}
	return m
}

func (m Model) updateForumNav(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Up):
		if m.forumUI.selected > 0 {
			m.forumUI.selected--
		}
		return m, nil

	case key.Matches(msg, m.keys.Down):
		if m.forumUI.selected < len(m.forumUI.posts)-1 {
			m.forumUI.selected++
		}
		return m, nil

	case key.Matches(msg, m.keys.NewPost):
		m.focus = focusPostForm
		m.forumUI.status = ""
		m.forumUI.author.Reset()
		m.forumUI.content.Reset()
		m.forumUI.focusIdx = 0
		m.forumUI.content.Blur()
		return m, m.forumUI.author.Focus()

	case key.Matches(msg, m.keys.Reply):
		if len(m.forumUI.posts) == 0 {
			return m, nil
		}
		if err := m.forum.ToggleReplyPanel(m.ctx, m.session, m.forumUI.selected); err != nil {
			m.forumUI.status = err.Error()
			m.forumUI.isError = true
			return m, nil
		}
		if m.session.ReplyPanelOpen[m.forumUI.selected] {
			m.focus = focusReplyForm
			m.forumUI.status = ""
			m.forumUI.author.Reset()
			m.forumUI.content.Reset()
			m.forumUI.content.Placeholder = "Your reply..."
			m.forumUI.focusIdx = 0
			m.forumUI.content.Blur()
			return m, m.forumUI.author.Focus()
		}
		return m, nil
	}

	return m, nil
}

func (m Model) updateForumForm(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Escape):
		return m.closeForumForm(), nil

	case key.Matches(msg, m.keys.Next):
		m.forumUI.focusIdx = (m.forumUI.focusIdx + 1) % 2
		if m.forumUI.focusIdx == 0 {
			m.forumUI.content.Blur()
			return m, m.forumUI.author.Focus()
		}
		m.forumUI.author.Blur()
		return m, m.forumUI.content.Focus()

	case key.Matches(msg, m.keys.Submit):
		return m.submitForumForm()
	}

	var cmd tea.Cmd
	if m.forumUI.focusIdx == 0 {
		m.forumUI.author, cmd = m.forumUI.author.Update(msg)
	} else {
		m.forumUI.content, cmd = m.forumUI.content.Update(msg)
	}
	return m, cmd
}

func (m Model) submitForumForm() (tea.Model, tea.Cmd) {
	author := m.forumUI.author.Value()
	body := m.forumUI.content.Value()

	var err error
	if m.focus == focusReplyForm {
		err = m.forum.AddReply(m.ctx, m.session, m.forumUI.selected, author, body)
	} else {
		err = m.forum.AddPost(m.ctx, author, body)
	}

	if err != nil {
		m.forumUI.status = err.Error()
		m.forumUI.isError = true
		return m, nil
	}

	if m.focus == focusReplyForm {
		m.logger.Info("reply added",
			zap.Int("post", m.forumUI.selected),
			zap.String("author", strings.TrimSpace(author)))
		m.forumUI.status = "✅ Your reply has been added!"
	} else {
		m.logger.Info("post added", zap.String("author", strings.TrimSpace(author)))
		m.forumUI.status = "✅ Your post has been added!"
	}
	m.forumUI.isError = false

	m = m.closeForumFormKeepStatus()
	m = m.refreshForum()
	return m, nil
}

func (m Model) closeForumForm() Model {
	m = m.closeForumFormKeepStatus()
	m.forumUI.status = ""
	return m
}

func (m Model) closeForumFormKeepStatus() Model {
	if m.focus == focusReplyForm {
		// The service already closed the panel on success; make sure a
		// cancelled form does not leave it open either.
		m.session.ReplyPanelOpen[m.forumUI.selected] = false
	}
	m.focus = focusNav
	m.forumUI.author.Blur()
	m.forumUI.content.Blur()
	m.forumUI.content.Placeholder = "Share your thoughts or ask a question..."
	return m
}

func (m Model) renderForumPage() string {
	lines := []string{
		m.styles.title.Render("💬 Community Forum"),
	}

	if m.focus == focusPostForm || m.focus == focusReplyForm {
		heading := "New post"
		if m.focus == focusReplyForm {
			heading = fmt.Sprintf("Reply to post #%d", m.forumUI.selected+1)
		}
		lines = append(lines,
			m.styles.formLabel.Render(heading),
			m.forumUI.author.View(),
			m.forumUI.content.View(),
		)
	}

	if m.forumUI.status != "" {
		style := m.styles.formOK
		if m.forumUI.isError {
			style = m.styles.formError
		}
		lines = append(lines, style.Render(m.forumUI.status))
	}

	if len(m.forumUI.posts) == 0 {
		lines = append(lines, m.styles.empty.Render("No discussions yet. Press n to start one."))
		return lipgloss.JoinVertical(lipgloss.Left, lines...)
	}

	for i, post := range m.forumUI.posts {
		lines = append(lines, m.renderPost(i, post))
	}

	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}

func (m Model) renderPost(index int, post domain.Post) string {
	marker := "  "
	authorStyle := m.styles.postAuthor
	if index == m.forumUI.selected {
		marker = m.styles.postSelected.Render("> ")
		authorStyle = m.styles.postSelected
	}

	lines := []string{
		marker + authorStyle.Render(fmt.Sprintf("📝 %s says:", post.Author)),
		m.styles.postBody.Render("  " + post.Content),
		m.styles.postMeta.Render("  Posted on: " + post.CreatedAt.Format(postTimeFormat)),
	}

	for _, reply := range post.Replies {
		replyBlock := lipgloss.JoinVertical(
			lipgloss.Left,
			m.styles.replyAuthor.Render(fmt.Sprintf("🗨 %s replied:", reply.Author)),
			m.styles.postBody.Render(reply.Content),
			m.styles.postMeta.Render("Replied on: "+reply.CreatedAt.Format(postTimeFormat)),
		)
		lines = append(lines, m.styles.replyIndent.Render(replyBlock))
	}

	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}
