package poker

import "github.com/lox/multipoker/internal/randutil"

// DeckSize is the number of cards in one standard deck.
const DeckSize = 52

// DecksFor returns how many decks a deal needs: two when the hole cards and
// boards together would exhaust a single deck.
func DecksFor(players, holeCards, boardCards int) int {
	if players*holeCards+boardCards > DeckSize {
		return 2
	}
	return 1
}

// Shoe is a shuffled sequence of one or two decks. A double shoe holds at most
// two copies of any card.
type Shoe struct {
	cards []Card
	next  int
}

// NewShoe builds and shuffles a shoe deterministically from seed.
func NewShoe(seed int64, decks int) *Shoe {
	if decks < 1 {
		decks = 1
	}
	if decks > 2 {
		decks = 2
	}

	cards := make([]Card, 0, DeckSize*decks)
	for range decks {
		for suit := Clubs; suit <= Spades; suit++ {
			for rank := Two; rank <= Ace; rank++ {
				cards = append(cards, NewCard(rank, suit))
			}
		}
	}
	randutil.Shuffle(seed, cards)

	return &Shoe{cards: cards}
}

// Deal returns the next n cards, or nil when fewer than n remain.
func (s *Shoe) Deal(n int) []Card {
	if n < 0 || s.next+n > len(s.cards) {
		return nil
	}
	out := make([]Card, n)
	copy(out, s.cards[s.next:s.next+n])
	s.next += n
	return out
}

// Remaining returns the number of undealt cards.
func (s *Shoe) Remaining() int {
	return len(s.cards) - s.next
}

// Cards returns a copy of the full shuffled order.
func (s *Shoe) Cards() []Card {
	out := make([]Card, len(s.cards))
	copy(out, s.cards)
	return out
}

// SeededSource supplies shuffled shoes for a fixed seed. The seed must stay
// with the engine and trusted storage; it is never shown to players.
type SeededSource struct {
	Seed int64
}

// Shuffled returns the shuffled order of a shoe with the given number of decks.
func (s SeededSource) Shuffled(decks int) []Card {
	return NewShoe(s.Seed, decks).Cards()
}
