package poker

// HoleRule bounds how many hole cards a five-card hand may use; the rest come
// from the board.
type HoleRule struct {
	MinHole int
	MaxHole int
}

var (
	// HoldemRule allows any mix, including playing the board.
	HoldemRule = HoleRule{MinHole: 0, MaxHole: 2}
	// OmahaRule requires exactly two hole cards and three board cards.
	OmahaRule = HoleRule{MinHole: 2, MaxHole: 2}
	// ThreeCardRule is used on the 3-2-1 board that receives three hole cards.
	ThreeCardRule = HoleRule{MinHole: 0, MaxHole: 3}
	// SingleCardRule requires the one hole card plus four board cards.
	SingleCardRule = HoleRule{MinHole: 1, MaxHole: 1}
)

// BestHand is the strongest five-card hand found under a HoleRule.
type BestHand struct {
	Rank     HandRank
	Cards    [5]Card
	HoleUsed int
}

// Valid reports whether any legal five-card hand was found.
func (b BestHand) Valid() bool {
	return b.Rank.Valid()
}

// Best enumerates every choice of k hole cards and 5-k board cards with k in
// the rule's range and keeps the highest rank. Hands containing more than four
// cards of one rank are skipped. Any invalid card in the input makes the
// result the worst possible hand.
func Best(hole, board []Card, rule HoleRule) BestHand {
	for _, c := range hole {
		if !c.Valid() {
			return BestHand{}
		}
	}
	for _, c := range board {
		if !c.Valid() {
			return BestHand{}
		}
	}

	var best BestHand
	var five [5]Card
	for k := max(rule.MinHole, 0); k <= rule.MaxHole && k <= 5; k++ {
		if k > len(hole) || 5-k > len(board) {
			continue
		}
		combinations(len(hole), k, func(hi []int) {
			for i, idx := range hi {
				five[i] = hole[idx]
			}
			combinations(len(board), 5-k, func(bi []int) {
				for i, idx := range bi {
					five[k+i] = board[idx]
				}
				rank, ok := Evaluate5(five)
				if ok && rank > best.Rank {
					best = BestHand{Rank: rank, Cards: five, HoleUsed: k}
				}
			})
		})
	}
	return best
}

// combinations calls fn with every ascending k-subset of [0, n). The slice is
// reused between calls.
func combinations(n, k int, fn func([]int)) {
	if k < 0 || k > n {
		return
	}
	idx := make([]int, k)
	for i := range idx {
		idx[i] = i
	}
	for {
		fn(idx)
		i := k - 1
		for i >= 0 && idx[i] == n-k+i {
			i--
		}
		if i < 0 {
			return
		}
		idx[i]++
		for j := i + 1; j < k; j++ {
			idx[j] = idx[j-1] + 1
		}
	}
}
