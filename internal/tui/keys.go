package tui

import "github.com/charmbracelet/bubbles/key"

// keyMap defines the keyboard bindings for the application.
type keyMap struct {
	// Global
	Quit   key.Binding
	Escape key.Binding

	// Page switching
	PageHome    key.Binding
	PageChatbot key.Binding
	PagePrompts key.Binding
	PageForum   key.Binding
	NextPage    key.Binding

	// Actions
	Login   key.Binding
	NewPost key.Binding
	Reply   key.Binding
	Submit  key.Binding
	Send    key.Binding

	// Navigation
	Up   key.Binding
	Down key.Binding
	Next key.Binding
}

func defaultKeyMap() keyMap {
	return keyMap{
		Quit: key.NewBinding(
			key.WithKeys("ctrl+c", "q"),
			key.WithHelp("q", "quit"),
		),
		Escape: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "cancel"),
		),
		PageHome: key.NewBinding(
			key.WithKeys("1"),
			key.WithHelp("1", "home"),
		),
		PageChatbot: key.NewBinding(
			key.WithKeys("2"),
			key.WithHelp("2", "chatbot"),
		),
		PagePrompts: key.NewBinding(
			key.WithKeys("3"),
			key.WithHelp("3", "prompts"),
		),
		PageForum: key.NewBinding(
			key.WithKeys("4"),
			key.WithHelp("4", "forum"),
		),
		NextPage: key.NewBinding(
			key.WithKeys("tab"),
			key.WithHelp("tab", "next page"),
		),
		Login: key.NewBinding(
			key.WithKeys("l"),
			key.WithHelp("l", "login"),
		),
		NewPost: key.NewBinding(
			key.WithKeys("n"),
			key.WithHelp("n", "new post"),
		),
		Reply: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "reply"),
		),
		Submit: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "submit"),
		),
		Send: key.NewBinding(
			key.WithKeys("ctrl+s"),
			key.WithHelp("ctrl+s", "send"),
		),
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("↑/k", "up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("↓/j", "down"),
		),
		Next: key.NewBinding(
			key.WithKeys("tab"),
			key.WithHelp("tab", "next field"),
		),
	}
}
