package poker

import "sort"

// HandType enumerates the categories of poker hands ordered from weakest to strongest.
type HandType uint8

const (
	HighCard HandType = iota
	Pair
	TwoPair
	ThreeOfAKind
	Straight
	Flush
	FullHouse
	FourOfAKind
	StraightFlush
)

func (t HandType) String() string {
	switch t {
	case HighCard:
		return "High Card"
	case Pair:
		return "Pair"
	case TwoPair:
		return "Two Pair"
	case ThreeOfAKind:
		return "Three of a Kind"
	case Straight:
		return "Straight"
	case Flush:
		return "Flush"
	case FullHouse:
		return "Full House"
	case FourOfAKind:
		return "Four of a Kind"
	case StraightFlush:
		return "Straight Flush"
	default:
		return "Unknown"
	}
}

// HandRank is a total order over five-card hands: the category in the top
// bits followed by five descending tie-break ranks, four bits each. Larger
// values are stronger and equal values are exact ties. The zero value ranks
// below every real hand.
type HandRank uint32

const categoryShift = 20

// Valid reports whether hr came from a real hand.
func (hr HandRank) Valid() bool {
	return hr != 0
}

// Type returns the hand category. Invalid ranks report HighCard.
func (hr HandRank) Type() HandType {
	if hr == 0 {
		return HighCard
	}
	return HandType(hr>>categoryShift) - 1
}

// Kickers returns the five tie-break ranks in the order they are compared.
func (hr HandRank) Kickers() [5]Rank {
	var out [5]Rank
	for i := range out {
		out[i] = Rank((hr >> (16 - 4*i)) & 0xF)
	}
	return out
}

func (hr HandRank) String() string {
	if hr == 0 {
		return "No Hand"
	}
	return hr.Type().String()
}

// Compare returns 1 if a beats b, -1 if b beats a and 0 for a tie.
func Compare(a, b HandRank) int {
	switch {
	case a > b:
		return 1
	case a < b:
		return -1
	default:
		return 0
	}
}

func packRank(t HandType, kickers []Rank) HandRank {
	hr := HandRank(t+1) << categoryShift
	for i := 0; i < 5 && i < len(kickers); i++ {
		hr |= HandRank(kickers[i]) << (16 - 4*i)
	}
	return hr
}

// SingleCardRank ranks a lone card as a high-card hand so single card games
// share the same comparison as five-card games. Suits never break ties.
func SingleCardRank(c Card) HandRank {
	if !c.Valid() {
		return 0
	}
	return packRank(HighCard, []Rank{c.Rank()})
}

// Evaluate5 ranks exactly five cards. It reports false, with a zero rank, when
// any card is invalid or a rank appears more than four times, which only a
// double deck can produce.
func Evaluate5(cards [5]Card) (HandRank, bool) {
	var counts [13]int
	flush := true
	for i, c := range cards {
		if !c.Valid() {
			return 0, false
		}
		counts[c.Rank()]++
		if counts[c.Rank()] > 4 {
			return 0, false
		}
		if i > 0 && c.Suit() != cards[0].Suit() {
			flush = false
		}
	}

	// Group ranks by multiplicity, larger groups first, then higher ranks.
	type group struct {
		rank  Rank
		count int
	}
	groups := make([]group, 0, 5)
	for r := Ace; ; r-- {
		if counts[r] > 0 {
			groups = append(groups, group{rank: r, count: counts[r]})
		}
		if r == Two {
			break
		}
	}
	sort.SliceStable(groups, func(i, j int) bool {
		return groups[i].count > groups[j].count
	})

	ordered := make([]Rank, 0, 5)
	for _, g := range groups {
		for range g.count {
			ordered = append(ordered, g.rank)
		}
	}

	high, straight := straightHigh(counts, len(groups))

	switch {
	case straight && flush:
		return packRank(StraightFlush, []Rank{high}), true
	case groups[0].count == 4:
		return packRank(FourOfAKind, []Rank{groups[0].rank, groups[1].rank}), true
	case groups[0].count == 3 && groups[1].count == 2:
		return packRank(FullHouse, []Rank{groups[0].rank, groups[1].rank}), true
	case flush:
		return packRank(Flush, descending(cards)), true
	case straight:
		return packRank(Straight, []Rank{high}), true
	case groups[0].count == 3:
		return packRank(ThreeOfAKind, []Rank{groups[0].rank, groups[1].rank, groups[2].rank}), true
	case groups[0].count == 2 && groups[1].count == 2:
		return packRank(TwoPair, []Rank{groups[0].rank, groups[1].rank, groups[2].rank}), true
	case groups[0].count == 2:
		return packRank(Pair, []Rank{groups[0].rank, groups[1].rank, groups[2].rank, groups[3].rank}), true
	default:
		return packRank(HighCard, ordered), true
	}
}

// straightHigh returns the top rank of a straight made by five distinct ranks.
// The wheel (A-2-3-4-5) is a five-high straight.
func straightHigh(counts [13]int, distinct int) (Rank, bool) {
	if distinct != 5 {
		return 0, false
	}
	var mask uint16
	for r, n := range counts {
		if n > 0 {
			mask |= 1 << r
		}
	}
	const wheel = 1<<Ace | 1<<Two | 1<<Three | 1<<Four | 1<<Five
	if mask == wheel {
		return Five, true
	}
	for high := Six; high <= Ace; high++ {
		run := uint16(0x1F) << (high - 4)
		if mask == run {
			return high, true
		}
	}
	return 0, false
}

func descending(cards [5]Card) []Rank {
	ranks := make([]Rank, 5)
	for i, c := range cards {
		ranks[i] = c.Rank()
	}
	sort.Slice(ranks, func(i, j int) bool { return ranks[i] > ranks[j] })
	return ranks
}
