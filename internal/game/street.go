package game

import "slices"

// settle runs after every accepted action: it ends the hand when one player
// is left, closes the street when nobody is left to act, or hands the turn to
// the next seat.
func (h *hand) settle() {
	contesting := h.contestingSeats()
	if len(contesting) == 1 {
		h.awardUncontested(contesting[0])
		return
	}

	// Anyone still short of the bet must act before the street can close.
	for _, seat := range h.actingSeats() {
		if h.players[seat].Bet < h.state.CurrentBet && !slices.Contains(h.state.SeatsToAct, seat) {
			h.state.SeatsToAct = append(h.state.SeatsToAct, seat)
		}
	}
	h.state.SeatsToAct = slices.DeleteFunc(h.state.SeatsToAct, func(s int) bool {
		return !h.players[s].canAct()
	})

	if len(h.state.SeatsToAct) > 0 {
		h.setActor()
		h.refreshSidePots()
		return
	}
	h.closeStreet()
}

// closeStreet resets street bets and moves to the next phase. When at most
// one seat could still bet, the remaining cards are revealed at once.
func (h *hand) closeStreet() {
	for _, seat := range h.seats {
		p := h.players[seat]
		if p.Bet != 0 {
			p.Bet = 0
			h.touch(p)
		}
	}
	h.state.CurrentBet = 0
	h.state.MinRaise = h.room.BigBlind
	h.state.LastAggressor = 0
	h.state.LastRaise = 0
	h.state.SeatsToAct = nil
	h.state.SeatsActed = []int{}
	h.state.CallOnlySeats = nil

	if len(h.actingSeats()) <= 1 {
		h.runOut()
		return
	}

	next := h.rules.Next(h.state.Phase)
	switch next {
	case Partition:
		h.enterPartition()
	case Showdown, Complete:
		h.state.Revealed = h.rules.revealFor(Showdown)
		h.resolveShowdown()
	default:
		h.state.Phase = next
		h.state.Revealed = h.rules.revealFor(next)
		h.state.SeatsToAct = h.orderAfter(h.state.ButtonSeat, (*PlayerSnapshot).canAct)
		h.setActor()
		h.refreshSidePots()
		h.logger.Debug("Street advanced", "phase", next, "board", h.state.RevealedBoards())
	}
}

// runOut deals every remaining board card and skips the betting rounds.
func (h *hand) runOut() {
	h.state.Revealed = h.rules.revealFor(Showdown)
	h.logger.Debug("Running out board", "from", h.state.Phase, "board", h.state.RevealedBoards())
	if h.rules.HasPhase(Partition) {
		h.enterPartition()
		return
	}
	h.resolveShowdown()
}

// enterPartition waits for every contesting seat to split its cards.
func (h *hand) enterPartition() {
	h.state.Phase = Partition
	h.state.Revealed = h.rules.revealFor(Partition)
	h.state.SeatsToAct = nil
	for _, seat := range h.contestingSeats() {
		if _, done := h.state.Partitions[seat]; !done {
			h.state.SeatsToAct = append(h.state.SeatsToAct, seat)
		}
	}
	h.state.SeatsActed = []int{}
	h.setActor()
	h.refreshSidePots()
}

// awardUncontested gives the whole pot to the last player standing.
func (h *hand) awardUncontested(seat int) {
	h.refreshSidePots()
	p := h.players[seat]
	p.Chips += h.state.Pot
	h.touch(p)

	h.autoWinners = []int{seat}
	h.potAwarded = h.state.Pot
	h.finish()
}

func (h *hand) finish() {
	h.state.Phase = Complete
	h.state.Completed = true
	h.state.CurrentActor = 0
	h.state.SeatsToAct = nil
}
