package game

import "slices"

// CalculateSidePots derives pot tiers from each player's total investment.
// Levels come from contesting players: one tier per distinct investment level,
// smallest first, eligible to every contesting seat invested at least that
// much. Chips from folded or inactive players are counted into the tiers they
// reached but never make those players eligible. The tier amounts always sum
// to the chips invested.
func CalculateSidePots(players []PlayerSnapshot) []SidePot {
	var levels []int
	for i := range players {
		p := &players[i]
		if p.contesting() && p.TotalInvested > 0 {
			levels = append(levels, p.TotalInvested)
		}
	}
	if len(levels) == 0 {
		return nil
	}
	slices.Sort(levels)
	levels = slices.Compact(levels)

	pots := make([]SidePot, 0, len(levels))
	prev := 0
	for i, level := range levels {
		pot := SidePot{}
		for j := range players {
			p := &players[j]
			invested := p.TotalInvested
			if invested <= prev {
				continue
			}
			if i == len(levels)-1 {
				// Dead money above the top level belongs to the last tier.
				pot.Amount += invested - prev
			} else {
				pot.Amount += min(invested, level) - prev
			}
			if p.contesting() && invested >= level {
				pot.EligibleSeats = append(pot.EligibleSeats, p.Seat)
			}
		}
		slices.Sort(pot.EligibleSeats)
		pots = append(pots, pot)
		prev = level
	}
	return pots
}
