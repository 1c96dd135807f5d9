package tui

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/andy/clienthub/internal/app"
	"github.com/andy/clienthub/internal/command"
	"github.com/andy/clienthub/internal/domain"
)

// Model is the root Bubble Tea model: a command box above the client list.
// Every interaction is a typed command; the list always reflects the view.
type Model struct {
	app    *app.App
	input  textinput.Model
	width  int
	height int

	feedback    string
	errText     string
	saveWarning string

	// Detail/help panels, opened by expand and help, closed by esc
	expanded *domain.Client
	showHelp bool

	// Command history, newest last
	history []string
	histPos int
}

// New creates the root model
func New(a *app.App) Model {
	input := textinput.New()
	input.Placeholder = "Enter command (help for a list)"
	input.CharLimit = 500
	input.Width = 60
	input.Focus()

	m := Model{
		app:   a,
		input: input,
	}
	if a.LoadWarning != "" {
		m.saveWarning = a.LoadWarning
	}
	return m
}

// Init implements tea.Model
func (m Model) Init() tea.Cmd {
	return textinput.Blink
}

// Update implements tea.Model
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, DefaultKeyMap.Quit):
			return m, m.saveAndQuit()

		case key.Matches(msg, DefaultKeyMap.Back):
			m.expanded = nil
			m.showHelp = false
			return m, nil

		case key.Matches(msg, DefaultKeyMap.Up):
			if len(m.history) > 0 && m.histPos > 0 {
				m.histPos--
				m.input.SetValue(m.history[m.histPos])
				m.input.CursorEnd()
			}
			return m, nil

		case key.Matches(msg, DefaultKeyMap.Down):
			if m.histPos < len(m.history) {
				m.histPos++
				if m.histPos == len(m.history) {
					m.input.SetValue("")
				} else {
					m.input.SetValue(m.history[m.histPos])
					m.input.CursorEnd()
				}
			}
			return m, nil

		case msg.Type == tea.KeyEnter:
			return m.submit()
		}

	case savedMsg:
		if msg.err != nil {
			m.saveWarning = fmt.Sprintf("Warning: could not save data: %v", msg.err)
		} else {
			m.saveWarning = ""
		}
		return m, nil

	case quitMsg:
		return m, tea.Quit
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

// submit parses and executes the typed command line
func (m Model) submit() (tea.Model, tea.Cmd) {
	raw := strings.TrimSpace(m.input.Value())
	if raw == "" {
		return m, nil
	}

	m.history = append(m.history, raw)
	m.histPos = len(m.history)
	m.input.SetValue("")
	m.feedback = ""
	m.errText = ""
	m.expanded = nil
	m.showHelp = false

	cmd, err := command.Parse(raw)
	if err != nil {
		m.errText = err.Error()
		return m, nil
	}

	result, err := command.Execute(cmd, m.app.Registry, m.app.View)
	if err != nil {
		m.errText = err.Error()
		return m, nil
	}

	m.feedback = result.Feedback
	m.expanded = result.Expanded
	m.showHelp = result.ShowHelp

	if result.Exit {
		return m, m.saveAndQuit()
	}

	// Persist after every successful command. A failed save only warns;
	// the in-memory registry stays authoritative.
	return m, m.save()
}

// save snapshots the registry synchronously on the update loop; the returned
// command only performs the write, so the store never reads live registry
// state from a background goroutine.
func (m Model) save() tea.Cmd {
	clients := m.app.Registry.Clients()
	return func() tea.Msg {
		return savedMsg{err: m.app.Store.Save(context.Background(), clients)}
	}
}

func (m Model) saveAndQuit() tea.Cmd {
	clients := m.app.Registry.Clients()
	return func() tea.Msg {
		// Best effort: quit even if the final save fails
		_ = m.app.Store.Save(context.Background(), clients)
		return quitMsg{}
	}
}

// View implements tea.Model
func (m Model) View() string {
	if m.width == 0 {
		return "Loading..."
	}

	header := headerStyle.Render("ClientHub")

	var content string
	switch {
	case m.showHelp:
		content = helpView()
	case m.expanded != nil:
		content = renderClientDetail(*m.expanded)
	default:
		content = m.renderClientList()
	}

	var status string
	if m.errText != "" {
		status = errorStyle.Render(m.errText)
	} else if m.feedback != "" {
		status = feedbackStyle.Render(m.feedback)
	}
	if m.saveWarning != "" {
		if status != "" {
			status += "\n"
		}
		status += warningStyle.Render(m.saveWarning)
	}
	if status != "" {
		status = "\n" + status
	}

	footer := footerStyle.Render("enter: run  ↑/↓: history  esc: back  ctrl+c: quit")

	body := fmt.Sprintf("%s\n\n%s\n\n%s%s\n\n%s",
		header, m.input.View(), content, status, footer)

	innerWidth := m.width - 6 // account for border (2) + padding (4)
	if innerWidth < 20 {
		innerWidth = 20
	}
	frame := appBorderStyle.
		Width(innerWidth).
		Height(m.height - 4)
	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, frame.Render(body))
}

// renderClientList shows the view's clients with their 1-based indices. The
// indices shown here are exactly what edit/delete/desc/expand accept.
func (m Model) renderClientList() string {
	clients := m.app.View.Clients()
	if len(clients) == 0 {
		return subtitleStyle.Render("No clients to show. Try 'add' or 'list'.")
	}

	var b strings.Builder
	for i, c := range clients {
		b.WriteString(renderClientLine(i+1, c))
		b.WriteString("\n")
	}
	fmt.Fprintf(&b, "\n%s", subtitleStyle.Render(fmt.Sprintf("%d client(s) shown", len(clients))))
	return b.String()
}

// Run starts the TUI
func Run(a *app.App) error {
	p := tea.NewProgram(New(a), tea.WithAltScreen())
	_, err := p.Run()
	return err
}
