package poker

import (
	"errors"
	"fmt"
	"strings"
)

// ErrInvalidCard is returned when a card literal is not a rank followed by a suit.
var ErrInvalidCard = errors.New("invalid card")

// Rank is a card rank from Two (0) to Ace (12).
type Rank uint8

const (
	Two Rank = iota
	Three
	Four
	Five
	Six
	Seven
	Eight
	Nine
	Ten
	Jack
	Queen
	King
	Ace
)

const rankChars = "23456789TJQKA"

func (r Rank) String() string {
	if r > Ace {
		return "?"
	}
	return rankChars[r : r+1]
}

// Suit is one of the four suits.
type Suit uint8

const (
	Clubs Suit = iota
	Diamonds
	Hearts
	Spades
)

const suitChars = "cdhs"

func (s Suit) String() string {
	if s > Spades {
		return "?"
	}
	return suitChars[s : s+1]
}

// Card is a single playing card. The zero value is NoCard, which is never
// a valid card and evaluates as the worst possible hand.
type Card uint8

// NoCard is the invalid card.
const NoCard Card = 0

// NewCard builds a card from rank and suit, returning NoCard when either is out of range.
func NewCard(rank Rank, suit Suit) Card {
	if rank > Ace || suit > Spades {
		return NoCard
	}
	return Card(1 + uint8(rank)*4 + uint8(suit))
}

// Valid reports whether c is one of the 52 real cards.
func (c Card) Valid() bool {
	return c >= 1 && c <= 52
}

// Rank returns the rank of a valid card.
func (c Card) Rank() Rank {
	return Rank((c - 1) / 4)
}

// Suit returns the suit of a valid card.
func (c Card) Suit() Suit {
	return Suit((c - 1) % 4)
}

// String returns the two character form, e.g. "Ah". Invalid cards render as "??".
func (c Card) String() string {
	if !c.Valid() {
		return "??"
	}
	return c.Rank().String() + c.Suit().String()
}

// MarshalText implements encoding.TextMarshaler.
func (c Card) MarshalText() ([]byte, error) {
	if !c.Valid() {
		return nil, fmt.Errorf("%w: %d", ErrInvalidCard, uint8(c))
	}
	return []byte(c.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler. Parsing is strict.
func (c *Card) UnmarshalText(text []byte) error {
	parsed, err := ParseCard(string(text))
	if err != nil {
		return err
	}
	*c = parsed
	return nil
}

// ParseCard parses exactly two characters matching ^[2-9TJQKA][cdhs]$.
func ParseCard(s string) (Card, error) {
	if len(s) != 2 {
		return NoCard, fmt.Errorf("%w: %q", ErrInvalidCard, s)
	}
	rank := strings.IndexByte(rankChars, s[0])
	suit := strings.IndexByte(suitChars, s[1])
	if rank < 0 || suit < 0 {
		return NoCard, fmt.Errorf("%w: %q", ErrInvalidCard, s)
	}
	return NewCard(Rank(rank), Suit(suit)), nil
}

// MustParseCard is ParseCard for literals known to be valid. It panics otherwise.
func MustParseCard(s string) Card {
	c, err := ParseCard(s)
	if err != nil {
		panic(err)
	}
	return c
}

// ParseCardLenient maps malformed literals to NoCard instead of failing.
// Used where externally stored cards must be evaluated without aborting.
func ParseCardLenient(s string) Card {
	c, err := ParseCard(s)
	if err != nil {
		return NoCard
	}
	return c
}

// ParseCards parses a whitespace separated or concatenated list such as
// "Ah Kd" or "AhKd".
func ParseCards(s string) ([]Card, error) {
	joined := strings.Join(strings.Fields(s), "")
	if len(joined)%2 != 0 {
		return nil, fmt.Errorf("%w: odd length card list %q", ErrInvalidCard, s)
	}
	cards := make([]Card, 0, len(joined)/2)
	for i := 0; i < len(joined); i += 2 {
		c, err := ParseCard(joined[i : i+2])
		if err != nil {
			return nil, err
		}
		cards = append(cards, c)
	}
	return cards, nil
}

// MustParseCards is ParseCards for test fixtures and constants.
func MustParseCards(s string) []Card {
	cards, err := ParseCards(s)
	if err != nil {
		panic(err)
	}
	return cards
}

// FormatCards renders cards separated by spaces.
func FormatCards(cards []Card) string {
	parts := make([]string, len(cards))
	for i, c := range cards {
		parts[i] = c.String()
	}
	return strings.Join(parts, " ")
}
