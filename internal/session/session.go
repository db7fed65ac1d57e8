// Package session runs a game for a front end: it serializes actions, keeps a
// timestamped journal of everything attempted and can audit the game after
// each committed action.
package session

import (
	"context"
	"fmt"
	"io"
	"sync"
	"time"

	"github.com/charmbracelet/log"
	"github.com/coder/quartz"

	"github.com/lox/pokerverse/internal/audit"
	"github.com/lox/pokerverse/internal/game"
	"github.com/lox/pokerverse/internal/gameid"
)

// Entry records one attempted action.
type Entry struct {
	Seq        int
	At         time.Time
	Action     string
	Player     int
	GlobalTurn int
	Err        error
}

// Session owns a Multiverse. It is safe for concurrent use.
type Session struct {
	id     string
	clock  quartz.Clock
	logger *log.Logger
	audit  bool
	check  func(context.Context, *game.Multiverse) error

	mu      sync.Mutex
	game    *game.Multiverse
	journal []Entry
	applied []game.Action
}

// Option configures a Session.
type Option func(*Session)

// WithClock sets the clock used for IDs and journal timestamps.
func WithClock(clock quartz.Clock) Option {
	return func(s *Session) {
		s.clock = clock
	}
}

// WithLogger sets the session logger.
func WithLogger(logger *log.Logger) Option {
	return func(s *Session) {
		s.logger = logger
	}
}

// WithAudit runs the invariant audit after every committed action.
func WithAudit(enabled bool) Option {
	return func(s *Session) {
		s.audit = enabled
	}
}

// New starts a session around m.
func New(m *game.Multiverse, opts ...Option) *Session {
	s := &Session{
		clock:  quartz.NewReal(),
		logger: log.New(io.Discard),
		check:  audit.Check,
		game:   m,
	}
	for _, opt := range opts {
		opt(s)
	}
	s.id = gameid.NewGenerator(s.clock, nil).Generate()
	s.logger = s.logger.With("session", s.id)
	s.logger.Info("Session started", "players", len(m.Players), "timelines", len(m.Timelines))
	return s
}

// ID returns the session identifier.
func (s *Session) ID() string {
	return s.id
}

// Do applies a and journals the attempt. Rejected actions are journaled too
// and leave the game unchanged, including actions the audit rejects.
func (s *Session) Do(ctx context.Context, a game.Action) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	entry := Entry{
		Seq:        len(s.journal) + 1,
		At:         s.clock.Now(),
		Action:     fmt.Sprint(a),
		Player:     s.game.ActivePlayer(),
		GlobalTurn: s.game.GlobalTurn(),
	}

	next := s.game
	if s.audit {
		next = s.game.Clone()
	}
	err := next.Apply(a)
	if err == nil && s.audit {
		if auditErr := s.check(ctx, next); auditErr != nil {
			s.logger.Error("Audit failed", "action", entry.Action, "error", auditErr)
			err = fmt.Errorf("audit after %s: %w", entry.Action, auditErr)
		}
	}
	if err == nil {
		s.game = next
	}
	entry.Err = err
	s.journal = append(s.journal, entry)

	if err != nil {
		s.logger.Warn("Action rejected", "seq", entry.Seq, "action", entry.Action, "player", entry.Player, "error", err)
		return err
	}
	s.applied = append(s.applied, a)
	s.logger.Debug("Action applied", "seq", entry.Seq, "action", entry.Action, "player", entry.Player, "turn", entry.GlobalTurn)
	return nil
}

// Snapshot returns an independent copy of the game.
func (s *Session) Snapshot() *game.Multiverse {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.game.Clone()
}

// Journal returns every attempted action in order.
func (s *Session) Journal() []Entry {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]Entry(nil), s.journal...)
}

// Applied returns the committed actions in order. Replaying them against a
// game dealt from the same seed reproduces the current state.
func (s *Session) Applied() []game.Action {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]game.Action(nil), s.applied...)
}

// Replay applies actions in order and stops at the first rejection, returning
// how many were applied.
func (s *Session) Replay(ctx context.Context, actions []game.Action) (int, error) {
	for i, a := range actions {
		if err := s.Do(ctx, a); err != nil {
			return i, fmt.Errorf("action %d (%s): %w", i, a, err)
		}
	}
	return len(actions), nil
}
