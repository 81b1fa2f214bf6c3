package poker

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseCard(t *testing.T) {
	t.Parallel()

	tests := []struct {
		in    string
		rank  Rank
		suit  Suit
		valid bool
	}{
		{"Ah", Ace, Hearts, true},
		{"2c", Two, Clubs, true},
		{"Td", Ten, Diamonds, true},
		{"Ks", King, Spades, true},
		{"ah", 0, 0, false},
		{"AH", 0, 0, false},
		{"10h", 0, 0, false},
		{"1c", 0, 0, false},
		{"A", 0, 0, false},
		{"", 0, 0, false},
		{"Ahh", 0, 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			c, err := ParseCard(tt.in)
			if !tt.valid {
				require.ErrorIs(t, err, ErrInvalidCard)
				assert.Equal(t, NoCard, c)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.rank, c.Rank())
			assert.Equal(t, tt.suit, c.Suit())
			assert.Equal(t, tt.in, c.String())
		})
	}
}

func TestAllCardsRoundTrip(t *testing.T) {
	t.Parallel()

	seen := map[string]bool{}
	for suit := Clubs; suit <= Spades; suit++ {
		for rank := Two; rank <= Ace; rank++ {
			c := NewCard(rank, suit)
			require.True(t, c.Valid())
			parsed, err := ParseCard(c.String())
			require.NoError(t, err)
			assert.Equal(t, c, parsed)
			seen[c.String()] = true
		}
	}
	assert.Len(t, seen, 52)
}

func TestParseCards(t *testing.T) {
	t.Parallel()

	cards, err := ParseCards("Ah Kd  Qs")
	require.NoError(t, err)
	assert.Equal(t, "Ah Kd Qs", FormatCards(cards))

	cards, err = ParseCards("AhKd")
	require.NoError(t, err)
	assert.Len(t, cards, 2)

	_, err = ParseCards("AhK")
	assert.ErrorIs(t, err, ErrInvalidCard)

	_, err = ParseCards("Ah Xx")
	assert.ErrorIs(t, err, ErrInvalidCard)
}

func TestCardText(t *testing.T) {
	t.Parallel()

	var c Card
	require.NoError(t, c.UnmarshalText([]byte("9s")))
	assert.Equal(t, MustParseCard("9s"), c)

	text, err := c.MarshalText()
	require.NoError(t, err)
	assert.Equal(t, "9s", string(text))

	assert.Error(t, c.UnmarshalText([]byte("9x")))

	_, err = NoCard.MarshalText()
	assert.ErrorIs(t, err, ErrInvalidCard)
	assert.Equal(t, "??", NoCard.String())
}

func TestParseCardLenient(t *testing.T) {
	t.Parallel()

	assert.Equal(t, MustParseCard("Qc"), ParseCardLenient("Qc"))
	assert.Equal(t, NoCard, ParseCardLenient("Q♣"))
	assert.Equal(t, NoCard, NewCard(Rank(13), Clubs))
}
