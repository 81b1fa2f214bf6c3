package poker

import (
	"fmt"

	ph "github.com/paulhankin/poker"
)

// Describe returns a human readable name for a five-card hand, e.g.
// "full house, kings full of twos". Hands the library cannot represent, such
// as double-deck hands holding the same card twice, fall back to the category
// name with its leading rank.
func Describe(cards [5]Card) string {
	rank, ok := Evaluate5(cards)
	if !ok {
		return rank.String()
	}
	if hasDuplicate(cards[:]) {
		return fallbackDescription(rank)
	}

	converted := make([]ph.Card, 0, len(cards))
	for _, c := range cards {
		pc, err := ph.MakeCard(toLibrarySuit(c.Suit()), toLibraryRank(c.Rank()))
		if err != nil {
			return fallbackDescription(rank)
		}
		converted = append(converted, pc)
	}

	desc, err := ph.Describe(converted)
	if err != nil || desc == "" {
		return fallbackDescription(rank)
	}
	return desc
}

func fallbackDescription(rank HandRank) string {
	return fmt.Sprintf("%s, %s high", rank.Type(), rank.Kickers()[0])
}

func hasDuplicate(cards []Card) bool {
	seen := make(map[Card]bool, len(cards))
	for _, c := range cards {
		if seen[c] {
			return true
		}
		seen[c] = true
	}
	return false
}

func toLibrarySuit(s Suit) ph.Suit {
	switch s {
	case Clubs:
		return ph.Club
	case Diamonds:
		return ph.Diamond
	case Hearts:
		return ph.Heart
	default:
		return ph.Spade
	}
}

// The library numbers ranks 1..13 with the ace as 1.
func toLibraryRank(r Rank) ph.Rank {
	if r == Ace {
		return ph.Rank(1)
	}
	return ph.Rank(r + 2)
}
