package game

import (
	"slices"

	"github.com/lox/multipoker/poker"
)

// resolveShowdown evaluates every board, pays each pot tier and completes
// the hand. Bets are already folded into TotalInvested, so the side pots
// computed here are final.
func (h *hand) resolveShowdown() {
	h.state.Phase = Showdown
	h.refreshSidePots()

	contenders := h.contestingSeats()
	result := &ShowdownResult{
		Hands:   make(map[int][]SeatHand, len(contenders)),
		Payouts: make(map[int]int),
	}

	for b := range h.rules.PayoutBoards() {
		ranks := make(map[int]poker.HandRank, len(contenders))
		for _, seat := range contenders {
			sh := h.evaluateSeat(seat, b)
			ranks[seat] = sh.Rank
			result.Hands[seat] = append(result.Hands[seat], sh)
		}
		result.BoardWinners = append(result.BoardWinners, bestSeats(contenders, ranks))
	}

	result.Payouts = Distribute(h.state.SidePots, result.BoardWinners, h.rules.RemainderBoard)
	for _, seat := range contenders {
		if won := result.Payouts[seat]; won > 0 {
			p := h.players[seat]
			p.Chips += won
			h.touch(p)
			h.autoWinners = append(h.autoWinners, seat)
		}
	}
	h.potAwarded = h.state.Pot
	h.showdown = result
	h.finish()

	h.logger.Debug("Showdown",
		"variant", h.rules.Variant,
		"boardWinners", result.BoardWinners,
		"payouts", result.Payouts)
}

// evaluateSeat ranks one seat's hand on board b under the variant's rule.
func (h *hand) evaluateSeat(seat, b int) SeatHand {
	hole := h.hole[seat]

	if h.rules.Boards == 0 {
		sh := SeatHand{Board: b}
		if len(hole) > 0 {
			sh.Rank = poker.SingleCardRank(hole[0])
			sh.Cards = []poker.Card{hole[0]}
			sh.Description = sh.Rank.Kickers()[0].String() + " high"
		}
		if !sh.Rank.Valid() {
			sh.Description = sh.Rank.String()
		}
		return sh
	}

	if h.rules.HasPhase(Partition) {
		pc, ok := h.state.Partitions[seat]
		if !ok {
			return SeatHand{Board: b, Description: poker.HandRank(0).String()}
		}
		hole = pc.Group(b)
	}

	var board []poker.Card
	if b < len(h.state.Boards) {
		board = h.state.Boards[b]
	}
	best := poker.Best(hole, board, h.rules.HoleRules[b])
	sh := SeatHand{Board: b, Rank: best.Rank, Description: best.Rank.String()}
	if best.Valid() {
		sh.Cards = slices.Clone(best.Cards[:])
		sh.Description = poker.Describe(best.Cards)
	}
	return sh
}

// bestSeats returns every seat tied for the highest rank, ascending.
func bestSeats(seats []int, ranks map[int]poker.HandRank) []int {
	var best poker.HandRank
	var winners []int
	for _, seat := range seats {
		switch poker.Compare(ranks[seat], best) {
		case 1:
			best = ranks[seat]
			winners = []int{seat}
		case 0:
			winners = append(winners, seat)
		}
	}
	slices.Sort(winners)
	return winners
}
