package poker

import (
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCardString(t *testing.T) {
	t.Parallel()
	assert.Equal(t, "As", NewCard(Ace, Spades).String())
	assert.Equal(t, "Td", NewCard(Ten, Diamonds).String())
	assert.Equal(t, "2c", NewCard(Two, Clubs).String())
	assert.Equal(t, "K♥", NewCard(King, Hearts).Pretty())
	assert.True(t, NewCard(Queen, Hearts).Suit.IsRed())
}

func TestParseCards(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name     string
		input    string
		expected []Card
		wantErr  bool
	}{
		{
			name:     "ace is rank one",
			input:    "As",
			expected: []Card{{Suit: Spades, Rank: 1}},
		},
		{
			name:  "mixed suits",
			input: "AhKdQcJs9s",
			expected: []Card{
				{Suit: Hearts, Rank: Ace},
				{Suit: Diamonds, Rank: King},
				{Suit: Clubs, Rank: Queen},
				{Suit: Spades, Rank: Jack},
				{Suit: Spades, Rank: Nine},
			},
		},
		{
			name:  "case insensitive with spaces",
			input: "as Kh tD",
			expected: []Card{
				{Suit: Spades, Rank: Ace},
				{Suit: Hearts, Rank: King},
				{Suit: Diamonds, Rank: Ten},
			},
		},
		{name: "invalid rank", input: "XsKs", wantErr: true},
		{name: "invalid suit", input: "AsKx", wantErr: true},
		{name: "odd length", input: "AsK", wantErr: true},
		{name: "empty string", input: "", expected: []Card{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got, err := ParseCards(tt.input)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.expected, got)
		})
	}
}

func TestMustParseCardsPanics(t *testing.T) {
	t.Parallel()
	assert.Panics(t, func() { MustParseCards("invalid") })
}

func TestFreshDeck(t *testing.T) {
	t.Parallel()
	deck := FreshDeck()
	require.Len(t, deck, 52)

	seen := make(map[Card]bool)
	for _, c := range deck {
		require.True(t, c.Rank.Valid(), "rank %d", c.Rank)
		require.False(t, seen[c], "duplicate %s", c)
		seen[c] = true
	}
}

func TestNewDeckIsDeterministic(t *testing.T) {
	t.Parallel()
	a := NewDeck(rand.New(rand.NewPCG(1, 2)))
	b := NewDeck(rand.New(rand.NewPCG(1, 2)))
	assert.Equal(t, a, b)
	assert.ElementsMatch(t, FreshDeck(), a)
}

func TestDraw(t *testing.T) {
	t.Parallel()
	stack := MustParseCards("2c3c4c")

	drawn, rest := Draw(stack, 2)
	assert.Equal(t, MustParseCards("4c3c"), drawn)
	assert.Equal(t, MustParseCards("2c"), rest)

	drawn, rest = Draw(rest, 5)
	assert.Equal(t, MustParseCards("2c"), drawn)
	assert.Empty(t, rest)
}
