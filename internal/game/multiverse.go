package game

import (
	"strings"

	"github.com/lox/pokerverse/poker"
)

// Roster limits.
const (
	MinPlayers = 2
	MaxPlayers = 6
)

// GenesisTimelines is the number of parallel lines of play a game starts with.
const GenesisTimelines = 2

// DefaultNames fills in blank seats, in seat order.
var DefaultNames = [MaxPlayers]string{
	"Xx_slayer_xX",
	"PokerKing",
	"LordOfTime",
	"ChipHoarder",
	"Player5",
	"Dealer",
}

// Player is a seat at the table. Chips is a signed ledger of net winnings and
// may go negative.
type Player struct {
	Name  string
	Chips int
}

// Multiverse is the root aggregate: the roster and every timeline.
type Multiverse struct {
	Players   []Player
	Timelines []*Timeline

	// activePlayer caches the player who last took over the table; see
	// BeginTurn.
	activePlayer int
	cfg          settings
}

// New starts a game for the given roster with two genesis timelines, each
// dealt from its own shuffled deck.
func New(names []string, opts ...Option) (*Multiverse, error) {
	if len(names) < MinPlayers || len(names) > MaxPlayers {
		return nil, ErrPlayerCount
	}

	cfg := defaultSettings()
	for _, opt := range opts {
		opt(&cfg)
	}
	cfg.finish()

	players := make([]Player, len(names))
	for i, name := range names {
		name = strings.TrimSpace(name)
		if name == "" {
			name = DefaultNames[i]
		}
		players[i] = Player{Name: name, Chips: cfg.startingChips}
	}

	m := &Multiverse{
		Players:      players,
		activePlayer: -1,
		cfg:          cfg,
	}
	for range GenesisTimelines {
		m.Timelines = append(m.Timelines, &Timeline{
			Boards: []*Board{NewBoard(poker.NewDeck(cfg.rng), len(players), cfg.ante, 1)},
		})
	}

	m.cfg.logger.Debug("Created multiverse", "players", len(players), "timelines", len(m.Timelines))
	return m, nil
}

// Ante returns the per-hand ante.
func (m *Multiverse) Ante() int {
	return m.cfg.ante
}

// CommunityPenalty returns the burn surcharge for moves into a community slot.
func (m *Multiverse) CommunityPenalty() int {
	return m.cfg.communityPenalty
}

// GlobalTurn returns the shared present: the shallowest depth reached by any
// board of any timeline.
func (m *Multiverse) GlobalTurn() int {
	turn := -1
	for _, tl := range m.Timelines {
		for _, b := range tl.Boards {
			if d := b.Len() - 1; turn < 0 || d < turn {
				turn = d
			}
		}
	}
	return turn
}

// ActivePlayer returns the index of the player whose turn it is.
func (m *Multiverse) ActivePlayer() int {
	return m.GlobalTurn() % len(m.Players)
}

// BeginTurn records that the active player has taken over the table.
func (m *Multiverse) BeginTurn() {
	m.activePlayer = m.ActivePlayer()
}

// TurnPending reports whether the turn has passed to a player who has not yet
// taken over the table with BeginTurn.
func (m *Multiverse) TurnPending() bool {
	return m.activePlayer != m.ActivePlayer()
}

// Timeline returns timeline i.
func (m *Multiverse) Timeline(i int) (*Timeline, error) {
	if err := checkIndex("timeline", i, len(m.Timelines)); err != nil {
		return nil, err
	}
	return m.Timelines[i], nil
}

// Board returns board b of timeline tl.
func (m *Multiverse) Board(tl, b int) (*Board, error) {
	timeline, err := m.Timeline(tl)
	if err != nil {
		return nil, err
	}
	if err := checkIndex("board", b, len(timeline.Boards)); err != nil {
		return nil, err
	}
	return timeline.Boards[b], nil
}

// CurrentTurn returns the state of the hand in play on timeline tl at the
// global turn.
func (m *Multiverse) CurrentTurn(tl int) (*Turn, error) {
	timeline, err := m.Timeline(tl)
	if err != nil {
		return nil, err
	}
	return timeline.Current().At(m.GlobalTurn()), nil
}

// ToggleView flips a board's ShowPresent preference.
func (m *Multiverse) ToggleView(tl, b int) error {
	board, err := m.Board(tl, b)
	if err != nil {
		return err
	}
	board.ShowPresent = !board.ShowPresent
	return nil
}

// SpawnTimeline forks a new timeline from the board of parent at absolute
// board position startingTime, truncated at the global turn. It returns the
// new timeline's index and startingTime.
func (m *Multiverse) SpawnTimeline(parent, startingTime int) (int, int, error) {
	return m.spawn(parent, startingTime, m.GlobalTurn())
}

func (m *Multiverse) spawn(parent, startingTime, turn int) (int, int, error) {
	tl, err := m.Timeline(parent)
	if err != nil {
		return 0, 0, err
	}
	offset := startingTime - tl.StartingTime
	if err := checkIndex("board", offset, len(tl.Boards)); err != nil {
		return 0, 0, err
	}

	m.Timelines = append(m.Timelines, &Timeline{
		Parent:       parent,
		StartingTime: startingTime,
		Boards:       []*Board{Intersect(tl.Boards[offset], turn)},
	})
	idx := len(m.Timelines) - 1

	m.cfg.logger.Debug("Spawned timeline", "timeline", idx, "parent", parent, "startingTime", startingTime, "turn", turn)
	return idx, startingTime, nil
}

// Clone returns an independent copy of the aggregate. Turns are immutable and
// shared between the copies. The clone shuffles from its own copy of the
// random source, so both copies deal the same next hand.
func (m *Multiverse) Clone() *Multiverse {
	c := &Multiverse{
		Players:      append([]Player(nil), m.Players...),
		Timelines:    make([]*Timeline, len(m.Timelines)),
		activePlayer: m.activePlayer,
		cfg:          m.cfg.clone(),
	}
	for i, tl := range m.Timelines {
		c.Timelines[i] = tl.clone()
	}
	return c
}
