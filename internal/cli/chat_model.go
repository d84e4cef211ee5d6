package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/aldenmarsh/fitcoach/internal/domain"
)

// answerMsg carries the coach's reply back into the update loop.
type answerMsg struct {
	question string
	answer   string
	err      error
}

// switchedMsg reports the outcome of a /switch command.
type switchedMsg struct {
	profile *domain.Profile
	err     error
}

// notedMsg reports the outcome of a /note command.
type notedMsg struct {
	err error
}

// chatModel is the bubbletea model for the chat REPL. Conversation history
// lives only in memory and is dropped on exit or profile switch.
type chatModel struct {
	app     *App
	profile *domain.Profile

	viewport viewport.Model
	input    textarea.Model

	history    []domain.Turn
	transcript []string
	waiting    bool
	ready      bool
	quitting   bool
}

func newChatModel(app *App, p *domain.Profile) chatModel {
	ta := textarea.New()
	ta.Placeholder = "Ask your coach..."
	ta.Focus()
	ta.CharLimit = 2000
	ta.SetHeight(2)
	ta.ShowLineNumbers = false

	m := chatModel{
		app:     app,
		profile: p,
		input:   ta,
	}
	m.transcript = append(m.transcript, m.welcomeLine())
	return m
}

func (m chatModel) welcomeLine() string {
	return styleDim.Render(fmt.Sprintf(
		"Chatting as %s. Enter sends, /switch <name> changes profile, /note <text> records a note, /quit exits.",
		m.profile.DisplayName(),
	))
}

func (m chatModel) Init() tea.Cmd {
	return textarea.Blink
}

func (m chatModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		inputHeight := m.input.Height() + 1
		if !m.ready {
			m.viewport = viewport.New(msg.Width, msg.Height-inputHeight)
			m.ready = true
		} else {
			m.viewport.Width = msg.Width
			m.viewport.Height = msg.Height - inputHeight
		}
		m.input.SetWidth(msg.Width)
		m.refreshViewport()
		return m, nil

	case tea.KeyMsg:
		switch msg.Type {
		case tea.KeyCtrlC, tea.KeyEsc:
			m.quitting = true
			return m, tea.Quit
		case tea.KeyEnter:
			if m.waiting {
				return m, nil
			}
			text := strings.TrimSpace(m.input.Value())
			m.input.Reset()
			if text == "" {
				return m, nil
			}
			return m.handleInput(text)
		}

	case answerMsg:
		m.waiting = false
		if msg.err != nil {
			m.transcript = append(m.transcript,
				styleDim.Render("coach: ")+lipgloss.NewStyle().Foreground(lipgloss.Color("#fb4934")).Render(msg.err.Error()))
		} else {
			m.history = append(m.history,
				domain.Turn{Role: domain.RoleHuman, Text: msg.question},
				domain.Turn{Role: domain.RoleAssistant, Text: msg.answer},
			)
			m.transcript = append(m.transcript, styleGreen.Render("coach: ")+msg.answer)
		}
		m.refreshViewport()
		return m, nil

	case notedMsg:
		if msg.err != nil {
			m.transcript = append(m.transcript, styleDim.Render(msg.err.Error()))
		} else {
			m.transcript = append(m.transcript, styleDim.Render("Noted."))
		}
		m.refreshViewport()
		return m, nil

	case switchedMsg:
		if msg.err != nil {
			m.transcript = append(m.transcript, styleDim.Render(msg.err.Error()))
		} else {
			m.profile = msg.profile
			m.history = nil
			m.transcript = []string{m.welcomeLine()}
		}
		m.refreshViewport()
		return m, nil
	}

	var inputCmd, vpCmd tea.Cmd
	m.input, inputCmd = m.input.Update(msg)
	m.viewport, vpCmd = m.viewport.Update(msg)
	return m, tea.Batch(inputCmd, vpCmd)
}

func (m chatModel) handleInput(text string) (tea.Model, tea.Cmd) {
	switch {
	case text == "/quit" || text == "/exit" || text == "/q":
		m.quitting = true
		return m, tea.Quit

	case strings.HasPrefix(text, "/switch"):
		name := strings.TrimSpace(strings.TrimPrefix(text, "/switch"))
		if name == "" {
			m.transcript = append(m.transcript, styleDim.Render("Usage: /switch <name>"))
			m.refreshViewport()
			return m, nil
		}
		app := m.app
		return m, func() tea.Msg {
			p, err := app.Profiles.GetOrCreateByName(context.Background(), name)
			return switchedMsg{profile: p, err: err}
		}

	case strings.HasPrefix(text, "/note"):
		body := strings.TrimSpace(strings.TrimPrefix(text, "/note"))
		app, userID := m.app, m.profile.ID
		return m, func() tea.Msg {
			_, err := app.Notes.Add(context.Background(), userID, body)
			return notedMsg{err: err}
		}
	}

	m.transcript = append(m.transcript, styleAccent.Render("you: ")+text)
	m.waiting = true
	m.refreshViewport()

	app, profile := m.app, m.profile
	historyCopy := append([]domain.Turn(nil), m.history...)
	return m, func() tea.Msg {
		answer, err := app.Coach.Ask(context.Background(), text, profile, historyCopy)
		return answerMsg{question: text, answer: answer, err: err}
	}
}

func (m *chatModel) refreshViewport() {
	if !m.ready {
		return
	}
	lines := strings.Join(m.transcript, "\n\n")
	if m.waiting {
		lines += "\n\n" + styleDim.Render("thinking...")
	}
	m.viewport.SetContent(lipgloss.NewStyle().Width(m.viewport.Width).Render(lines))
	m.viewport.GotoBottom()
}

func (m chatModel) View() string {
	if m.quitting {
		return ""
	}
	if !m.ready {
		return "loading..."
	}
	return m.viewport.View() + "\n" + m.input.View()
}
