package game

import (
	"io"
	"math/rand/v2"

	"github.com/charmbracelet/log"

	"github.com/lox/pokerverse/internal/randutil"
)

// Defaults used when no option overrides them.
const (
	DefaultAnte             = 1
	DefaultStartingChips    = 100
	DefaultCommunityPenalty = 4
)

// Option configures a Multiverse during creation.
type Option func(*settings)

type settings struct {
	src              *rand.PCG
	rng              *rand.Rand
	logger           *log.Logger
	ante             int
	startingChips    int
	communityPenalty int
}

func defaultSettings() settings {
	return settings{
		ante:             DefaultAnte,
		startingChips:    DefaultStartingChips,
		communityPenalty: DefaultCommunityPenalty,
	}
}

// WithSource sets the random source used for every shuffle and takes
// ownership of it. Without it the game is seeded with 1, which keeps tests and
// replays deterministic.
func WithSource(src *rand.PCG) Option {
	return func(s *settings) {
		s.src = src
	}
}

// WithLogger sets the logger committed actions are reported to.
func WithLogger(logger *log.Logger) Option {
	return func(s *settings) {
		s.logger = logger
	}
}

// WithAnte sets the fixed amount every player commits to each hand.
func WithAnte(ante int) Option {
	return func(s *settings) {
		s.ante = ante
	}
}

// WithStartingChips sets every player's opening chip count.
func WithStartingChips(chips int) Option {
	return func(s *settings) {
		s.startingChips = chips
	}
}

// WithCommunityPenalty sets the extra burn charged for moving a card into a
// community slot.
func WithCommunityPenalty(penalty int) Option {
	return func(s *settings) {
		s.communityPenalty = penalty
	}
}

func (s *settings) finish() {
	if s.src == nil {
		s.src = randutil.NewSource(1)
	}
	s.rng = rand.New(s.src)
	if s.logger == nil {
		s.logger = log.New(io.Discard)
	}
}

// clone copies the settings with a private source positioned where s's source
// is, so both copies deal the same cards without sharing state.
func (s settings) clone() settings {
	src := *s.src
	s.src = &src
	s.rng = rand.New(s.src)
	return s
}
