// Package app implements the chat UI: a transcript and input box on the
// left, the live todo projection on the right. It drives the same store
// and parsing adapter as the CLI commands.
package app

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"tableflip.dev/agenda/pkg/event"
	"tableflip.dev/agenda/pkg/parse"
	"tableflip.dev/agenda/pkg/store"
	"tableflip.dev/agenda/pkg/todo"
)

type mode int

const (
	// modeInput accepts free text.
	modeInput mode = iota
	// modeWaiting suspends input while the adapter call is in flight.
	modeWaiting
	// modeConfirm waits for y/n on a pending draft or a clear.
	modeConfirm
)

type action int

const (
	actionNone action = iota
	actionCreate
	actionClear
)

type line struct {
	fromUser bool
	text     string
}

// parsedMsg delivers the adapter's answer back into the update loop.
type parsedMsg struct {
	result *parse.Result
	err    error
}

var (
	titleStyle     = lipgloss.NewStyle().Bold(true).Underline(true)
	userStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("252"))
	assistantStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("14"))
	pendingStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
	doneStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("8")).Strikethrough(true)
	highStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("9")).Bold(true)
	paneStyle      = lipgloss.NewStyle().PaddingRight(2)
)

// Model is the Bubble Tea model for the chat UI.
type Model struct {
	store  *store.Store
	client *parse.Client

	input      textinput.Model
	transcript []line
	projection todo.Projection

	mode   mode
	action action
	draft  *event.Draft

	width  int
	height int
}

// NewModel builds the UI bound to the given store and parsing client.
func NewModel(s *store.Store, c *parse.Client) Model {
	input := textinput.New()
	input.Placeholder = "Describe an event, or say help…"
	input.Prompt = "> "
	input.Focus()

	m := Model{
		store:  s,
		client: c,
		input:  input,
	}
	m.projection = todo.Project(s.List())
	m.say("Hi! Tell me about an event and I'll put it on the calendar.")
	return m
}

// Run starts the UI and blocks until the user quits.
func Run(s *store.Store, c *parse.Client) error {
	_, err := tea.NewProgram(NewModel(s, c), tea.WithAltScreen()).Run()
	return err
}

func (m Model) Init() tea.Cmd {
	return textinput.Blink
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.input.Width = m.chatWidth() - 4
		return m, nil

	case parsedMsg:
		result := msg.result
		if msg.err != nil {
			result = parse.Recover(msg.err)
		}
		m.mode = modeInput
		if result.NeedsClarification {
			m.say(result.Message)
			return m, nil
		}
		d := event.Draft{
			Title:    result.Title,
			Date:     result.Date,
			Time:     result.Time,
			Location: result.Location,
			Priority: event.PriorityMedium,
		}
		m.draft = &d
		m.action = actionCreate
		m.mode = modeConfirm
		m.say(fmt.Sprintf("Draft: %s. Add it? (y/n)", d))
		return m, nil

	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			return m, tea.Quit
		}
		switch m.mode {
		case modeWaiting:
			// Resubmission stays disabled until the adapter resolves.
			return m, nil
		case modeConfirm:
			return m.confirmKey(msg), nil
		}
		switch msg.String() {
		case "esc":
			return m, tea.Quit
		case "enter":
			return m.submit()
		}
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m Model) confirmKey(msg tea.KeyMsg) Model {
	switch strings.ToLower(msg.String()) {
	case "y":
		switch m.action {
		case actionCreate:
			m.applyDraft()
		case actionClear:
			m.applyClear()
		}
	case "n", "esc":
		m.say("Okay, cancelled.")
	default:
		return m
	}
	m.mode = modeInput
	m.action = actionNone
	m.draft = nil
	return m
}

func (m Model) submit() (Model, tea.Cmd) {
	text := strings.TrimSpace(m.input.Value())
	if text == "" {
		return m, nil
	}
	m.input.SetValue("")
	m.transcript = append(m.transcript, line{fromUser: true, text: text})

	if handled, next := m.command(text); handled {
		return next, nil
	}

	m.mode = modeWaiting
	client := m.client
	return m, func() tea.Msg {
		result, err := client.Parse(context.Background(), text)
		return parsedMsg{result: result, err: err}
	}
}

// command handles the chat special commands that make sense inside the UI.
func (m Model) command(text string) (bool, Model) {
	switch strings.ToLower(text) {
	case "help", "commands":
		m.say("Describe an event in plain language and confirm the draft. You can also say: status, clear. Export and import live on the CLI: agenda export / agenda import.")
		return true, m
	case "status", "storage":
		p := todo.Project(m.store.List())
		m.say(fmt.Sprintf("%d events (%d done), snapshot is %d bytes on disk.",
			m.store.Len(), p.CompletedCount, m.store.SnapshotSize()))
		return true, m
	case "clear":
		m.action = actionClear
		m.mode = modeConfirm
		m.say(fmt.Sprintf("Delete all %d events? This cannot be undone. (y/n)", m.store.Len()))
		return true, m
	}
	return false, m
}

func (m *Model) applyDraft() {
	e, err := m.store.Create(*m.draft)
	if err != nil {
		m.say(saveMessage(err))
		return
	}
	m.say(fmt.Sprintf("Scheduled %q with %s priority.", e.Title, e.Priority))
	m.projection = todo.Project(m.store.List())
}

func (m *Model) applyClear() {
	if err := m.store.Clear(); err != nil {
		m.say(saveMessage(err))
		return
	}
	m.say("All events cleared.")
	m.projection = todo.Project(m.store.List())
}

// saveMessage rewrites store faults for the transcript. Persistence
// failures get the "may not be saved" wording; raw I/O detail stays out
// of the chat.
func saveMessage(err error) string {
	var pe *store.PersistenceError
	if errors.As(err, &pe) {
		return fmt.Sprintf("Your local data may not be saved (%s failed). Try again.", pe.Op)
	}
	return fmt.Sprintf("That didn't save: %v", err)
}

func (m *Model) say(text string) {
	m.transcript = append(m.transcript, line{text: text})
}

func (m Model) chatWidth() int {
	if m.width == 0 {
		return 60
	}
	return m.width * 2 / 3
}

func (m Model) View() string {
	chat := m.viewChat()
	todos := m.viewTodos()
	return lipgloss.JoinHorizontal(lipgloss.Top,
		paneStyle.Width(m.chatWidth()).Render(chat),
		todos,
	)
}

func (m Model) viewChat() string {
	var b strings.Builder
	b.WriteString(titleStyle.Render("Chat"))
	b.WriteString("\n\n")

	visible := m.transcript
	if max := m.height - 6; max > 0 && len(visible) > max {
		visible = visible[len(visible)-max:]
	}
	for _, l := range visible {
		if l.fromUser {
			b.WriteString(userStyle.Render("you: " + l.text))
		} else {
			b.WriteString(assistantStyle.Render("» " + l.text))
		}
		b.WriteString("\n")
	}
	if m.mode == modeWaiting {
		b.WriteString(pendingStyle.Render("● ● ●"))
		b.WriteString("\n")
	}
	b.WriteString("\n")
	b.WriteString(m.input.View())
	return b.String()
}

func (m Model) viewTodos() string {
	var b strings.Builder
	b.WriteString(titleStyle.Render(fmt.Sprintf("Todo %d/%d", m.projection.CompletedCount, m.projection.TotalCount)))
	b.WriteString("\n\n")
	if len(m.projection.Items) == 0 {
		b.WriteString(pendingStyle.Render("none"))
		return b.String()
	}
	for _, e := range m.projection.Items {
		text := fmt.Sprintf("○ %s  %s", e.Title, e.Start.Local().Format("Jan 2 15:04"))
		switch {
		case e.Completed:
			text = doneStyle.Render("✔ " + e.Title)
		case e.Priority == event.PriorityHigh:
			text = highStyle.Render(text)
		}
		b.WriteString(text)
		b.WriteString("\n")
	}
	return b.String()
}
