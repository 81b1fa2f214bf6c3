package game

import "slices"

// Distribute pays every pot tier to the winners of each board. A tier is
// split evenly across boards with the odd chips going to remainderBoard; a
// board's share is split evenly across its winners that are eligible for the
// tier, falling back to every eligible seat when none of them are, with odd
// chips going one each to the lowest seats. The returned map always sums to
// the total of the tiers that have at least one eligible seat.
func Distribute(pots []SidePot, boardWinners [][]int, remainderBoard int) map[int]int {
	payouts := make(map[int]int)
	boards := len(boardWinners)

	for _, pot := range pots {
		if pot.Amount <= 0 || len(pot.EligibleSeats) == 0 {
			continue
		}
		if boards == 0 {
			splitAmong(payouts, pot.Amount, pot.EligibleSeats)
			continue
		}

		base := pot.Amount / boards
		odd := pot.Amount % boards
		for b, winners := range boardWinners {
			share := base
			if b == remainderBoard {
				share += odd
			}
			splitAmong(payouts, share, eligibleWinners(winners, pot.EligibleSeats))
		}
	}
	return payouts
}

func eligibleWinners(winners, eligible []int) []int {
	var out []int
	for _, seat := range winners {
		if slices.Contains(eligible, seat) {
			out = append(out, seat)
		}
	}
	if len(out) == 0 {
		out = slices.Clone(eligible)
	}
	slices.Sort(out)
	return out
}

func splitAmong(payouts map[int]int, amount int, seats []int) {
	if amount <= 0 || len(seats) == 0 {
		return
	}
	seats = slices.Sorted(slices.Values(seats))
	each := amount / len(seats)
	odd := amount % len(seats)
	for i, seat := range seats {
		payouts[seat] += each
		if i < odd {
			payouts[seat]++
		}
	}
}
