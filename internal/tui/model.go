// Package tui runs a hot-seat game in the terminal with Bubble Tea: the
// multiverse scrolls in a viewport above a command prompt.
package tui

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/lox/pokerverse/internal/command"
	"github.com/lox/pokerverse/internal/display"
	"github.com/lox/pokerverse/internal/session"
)

// promptHeight is the rows below the viewport: the input and the key hints.
const promptHeight = 2

// maxMessages bounds the feedback log shown under the boards.
const maxMessages = 50

var (
	promptStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#04B575")).Bold(true)
	textStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#FAFAFA"))
	hintStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#626262"))
	okStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("#96CEB4"))
	passStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#FFEAA7")).Bold(true)
)

// Model is the Bubble Tea model for a hot-seat session.
type Model struct {
	ctx      context.Context
	sess     *session.Session
	renderer *display.Renderer
	logger   *log.Logger

	board viewport.Model
	input textinput.Model

	messages []string
	width    int
	height   int
	quitting bool
}

// New creates a model that sends commands to sess. ctx bounds every action.
func New(ctx context.Context, sess *session.Session, logger *log.Logger) *Model {
	vp := viewport.New(80, 20)

	ti := textinput.New()
	ti.Placeholder = "bet 0 2, move 1:0:p0:0 0:0:c 1, help"
	ti.Focus()
	ti.CharLimit = 100
	ti.Width = 80
	ti.PromptStyle = promptStyle
	ti.TextStyle = textStyle

	m := &Model{
		ctx:      ctx,
		sess:     sess,
		renderer: display.NewRenderer(nil),
		logger:   logger.WithPrefix("tui"),
		board:    vp,
		input:    ti,
	}
	m.refresh()
	return m
}

// Init starts the cursor blinking.
func (m *Model) Init() tea.Cmd {
	return textinput.Blink
}

// Update handles terminal events and submitted commands.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.board.Width = max(msg.Width, 1)
		m.board.Height = max(msg.Height-promptHeight, 1)
		m.input.Width = max(msg.Width-lipgloss.Width(m.input.Prompt)-1, 1)
		m.refresh()
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "esc":
			m.quitting = true
			return m, tea.Quit
		case "pgup":
			m.board.HalfPageUp()
			return m, nil
		case "pgdown":
			m.board.HalfPageDown()
			return m, nil
		case "enter":
			line := strings.TrimSpace(m.input.Value())
			m.input.SetValue("")
			return m, m.submit(line)
		}
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

// View draws the boards above the prompt.
func (m *Model) View() string {
	if m.quitting {
		return ""
	}
	if m.width == 0 || m.height == 0 {
		return "Loading..."
	}
	hint := hintStyle.Render("Enter to submit • PgUp/PgDn scroll • help for commands • Ctrl+C to quit")
	return lipgloss.JoinVertical(lipgloss.Left, m.board.View(), m.input.View(), hint)
}

// Quitting reports whether the player left the game.
func (m *Model) Quitting() bool {
	return m.quitting
}

func (m *Model) submit(line string) tea.Cmd {
	switch strings.ToLower(line) {
	case "":
		return nil
	case "quit", "q", "exit":
		m.quitting = true
		return tea.Quit
	case "help", "?":
		m.say(helpLines()...)
	case "show", "board":
	default:
		m.apply(line)
		if m.quitting {
			return tea.Quit
		}
	}
	m.refresh()
	return nil
}

func (m *Model) apply(line string) {
	action, err := command.Parse(line)
	if err != nil {
		m.say(m.renderer.Error(err))
		return
	}
	if err := m.sess.Do(m.ctx, action); err != nil {
		if errors.Is(err, context.Canceled) {
			m.quitting = true
			return
		}
		m.logger.Debug("Command rejected", "line", line, "error", err)
		m.say(m.renderer.Error(err))
		return
	}
	m.say(okStyle.Render("✓ " + fmt.Sprint(action)))
}

func (m *Model) say(lines ...string) {
	m.messages = append(m.messages, lines...)
	if over := len(m.messages) - maxMessages; over > 0 {
		m.messages = m.messages[over:]
	}
}

// refresh redraws the viewport from a fresh snapshot. Opponents' cards stay
// hidden while the table is being handed over.
func (m *Model) refresh() {
	snap := m.sess.Snapshot()
	name := snap.Players[snap.ActivePlayer()].Name
	m.input.Prompt = name + "> "

	var sb strings.Builder
	sb.WriteString(m.renderer.Render(snap, display.Viewer(snap)))
	if snap.TurnPending() {
		sb.WriteString("\n")
		sb.WriteString(passStyle.Render(fmt.Sprintf("Pass to %s and type 'begin'.", name)))
		sb.WriteString("\n")
	}
	if len(m.messages) > 0 {
		sb.WriteString("\n")
		sb.WriteString(strings.Join(m.messages, "\n"))
	}
	m.board.SetContent(sb.String())
	m.board.GotoBottom()
}

func helpLines() []string {
	lines := []string{"Commands:"}
	for _, cmd := range command.Commands() {
		lines = append(lines, fmt.Sprintf("  %-52s %s", cmd.Usage, cmd.Description))
	}
	return append(lines,
		fmt.Sprintf("  %-52s %s", "show", "Redraw the multiverse"),
		fmt.Sprintf("  %-52s %s", "quit", "Leave the game"),
	)
}
