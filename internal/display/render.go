// Package display renders a Multiverse as styled text for a terminal.
package display

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/lox/pokerverse/internal/game"
	"github.com/lox/pokerverse/poker"
)

// Styles holds the lipgloss styles used by the renderer.
type Styles struct {
	Header    lipgloss.Style
	Timeline  lipgloss.Style
	Board     lipgloss.Style
	Current   lipgloss.Style
	RedCard   lipgloss.Style
	BlackCard lipgloss.Style
	Hidden    lipgloss.Style
	Active    lipgloss.Style
	Folded    lipgloss.Style
	Winner    lipgloss.Style
	Info      lipgloss.Style
	Error     lipgloss.Style
}

// DefaultStyles returns the standard palette.
func DefaultStyles() *Styles {
	return &Styles{
		Header: lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FAFAFA")).
			Background(lipgloss.Color("#7D56F4")).
			Padding(0, 1).
			Bold(true),
		Timeline: lipgloss.NewStyle().
			Foreground(lipgloss.Color("#96CEB4")).
			Bold(true),
		Board: lipgloss.NewStyle().
			Border(lipgloss.NormalBorder()).
			BorderForeground(lipgloss.Color("#626262")).
			Padding(0, 1),
		Current: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("#04B575")).
			Padding(0, 1),
		RedCard: lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FF6B6B")).
			Bold(true),
		BlackCard: lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FAFAFA")).
			Bold(true),
		Hidden: lipgloss.NewStyle().
			Foreground(lipgloss.Color("#626262")),
		Active: lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FFD700")).
			Bold(true),
		Folded: lipgloss.NewStyle().
			Foreground(lipgloss.Color("#626262")).
			Strikethrough(true),
		Winner: lipgloss.NewStyle().
			Foreground(lipgloss.Color("#96CEB4")).
			Bold(true),
		Info: lipgloss.NewStyle().
			Foreground(lipgloss.Color("#626262")),
		Error: lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FF6B6B")).
			Bold(true),
	}
}

// Renderer draws a Multiverse from one player's seat.
type Renderer struct {
	styles *Styles
}

// NewRenderer creates a renderer. A nil styles uses DefaultStyles.
func NewRenderer(styles *Styles) *Renderer {
	if styles == nil {
		styles = DefaultStyles()
	}
	return &Renderer{styles: styles}
}

// Render draws every timeline as seen by viewer. The viewer's own hole cards
// are shown; opponents' cards stay hidden until showdown. Each board shows its
// latest state unless its ShowPresent flag pins it to the global turn.
func (r *Renderer) Render(m *game.Multiverse, viewer int) string {
	var sb strings.Builder
	g := m.GlobalTurn()
	active := m.ActivePlayer()

	sb.WriteString(r.styles.Header.Render(fmt.Sprintf(" Turn %d · %s to act ", g, m.Players[active].Name)))
	sb.WriteString("\n")
	sb.WriteString(r.Standings(m))
	sb.WriteString("\n\n")

	for t, tl := range m.Timelines {
		sb.WriteString(r.styles.Timeline.Render(timelineTitle(t, tl)))
		sb.WriteString("\n")

		boards := make([]string, len(tl.Boards))
		for b, board := range tl.Boards {
			boards[b] = r.board(m, tl, b, board, viewer, g)
		}
		sb.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, boards...))
		sb.WriteString("\n")
	}

	if awaiting := m.Awaiting(); len(awaiting) > 0 {
		refs := make([]string, len(awaiting))
		for i, ref := range awaiting {
			refs[i] = fmt.Sprintf("%d/%d", ref.Timeline, ref.Board)
		}
		sb.WriteString(r.styles.Info.Render("Awaiting: " + strings.Join(refs, " ")))
		sb.WriteString("\n")
	}
	return sb.String()
}

// Standings lists every player's chip ledger.
func (r *Renderer) Standings(m *game.Multiverse) string {
	active := m.ActivePlayer()
	parts := make([]string, len(m.Players))
	for i, p := range m.Players {
		entry := fmt.Sprintf("%s %d", p.Name, p.Chips)
		if i == active {
			entry = r.styles.Active.Render(entry)
		}
		parts[i] = entry
	}
	return strings.Join(parts, " | ")
}

// Error styles an error message.
func (r *Renderer) Error(err error) string {
	return r.styles.Error.Render("Error: " + err.Error())
}

func timelineTitle(t int, tl *game.Timeline) string {
	if t >= game.GenesisTimelines {
		return fmt.Sprintf("Timeline %d (from %d at %d)", t, tl.Parent, tl.StartingTime)
	}
	return fmt.Sprintf("Timeline %d", t)
}

func (r *Renderer) board(m *game.Multiverse, tl *game.Timeline, b int, board *game.Board, viewer, g int) string {
	turn := board.Latest()
	view := "latest"
	if board.ShowPresent {
		turn = board.At(g)
		view = "present"
	}

	var lines []string
	lines = append(lines, fmt.Sprintf("Board %d · %s · %s", b, turn.CompletedStage, view))
	lines = append(lines, fmt.Sprintf("Pot %d  Bet %d", turn.Pot(), turn.BetAmount))
	lines = append(lines, "Board: "+r.cards(turn.OpenCards))

	winners := map[int]bool{}
	if turn.Result != nil {
		for _, w := range turn.Result.Winners {
			winners[w] = true
		}
	}
	for i, p := range turn.Players {
		hand := r.hidden(len(p.Hand))
		if i == viewer || (turn.IsOver() && !p.Folded) {
			hand = r.cards(p.Hand)
		}
		line := fmt.Sprintf("%-12s %s  in %d", m.Players[i].Name, hand, p.Commitment())
		switch {
		case p.Folded:
			line = r.styles.Folded.Render(line)
		case winners[i]:
			line = r.styles.Winner.Render(line + " ★")
		}
		lines = append(lines, line)
	}
	if ht, ok := turn.WinningHandType(); ok {
		lines = append(lines, r.styles.Winner.Render("Won with "+ht.String()))
	}

	style := r.styles.Board
	if tl.IsCurrent(b) {
		style = r.styles.Current
	}
	return style.Render(strings.Join(lines, "\n"))
}

func (r *Renderer) cards(cards []poker.Card) string {
	if len(cards) == 0 {
		return r.styles.Hidden.Render("-")
	}
	parts := make([]string, len(cards))
	for i, c := range cards {
		if c.Suit.IsRed() {
			parts[i] = r.styles.RedCard.Render(c.Pretty())
		} else {
			parts[i] = r.styles.BlackCard.Render(c.Pretty())
		}
	}
	return strings.Join(parts, " ")
}

func (r *Renderer) hidden(n int) string {
	return r.styles.Hidden.Render(strings.TrimSpace(strings.Repeat("?? ", n)))
}

// Viewer returns whose cards may be shown: the active player's, or nobody's
// while the table is being handed to the next player.
func Viewer(m *game.Multiverse) int {
	if m.TurnPending() {
		return -1
	}
	return m.ActivePlayer()
}
