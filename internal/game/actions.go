package game

import (
	"fmt"
	"slices"
)

// Apply validates and applies one betting action for seat. On error the
// returned outcome is nil and nothing in ctx has been touched. amount is the
// bet size for Bet and the street total to raise to for Raise; other actions
// ignore it.
func (e *Engine) Apply(ctx HandContext, seat int, action ActionType, amount int) (*Outcome, error) {
	if ctx.State.Completed || ctx.State.Phase == Complete {
		return nil, ErrHandAlreadyCompleted
	}
	if ctx.State.Phase != Showdown && seat != ctx.State.CurrentActor {
		return nil, fmt.Errorf("%w: seat %d acted, seat %d is to act", ErrNotYourTurn, seat, ctx.State.CurrentActor)
	}

	h, err := newHand(ctx, e.clock.Now(), e.logger)
	if err != nil {
		return nil, err
	}
	p, ok := h.players[seat]
	if !ok {
		return nil, fmt.Errorf("%w: %d", ErrSeatNotFound, seat)
	}
	if !p.canAct() {
		return nil, fmt.Errorf("%w: seat %d", ErrPlayerCannotAct, seat)
	}
	if h.state.Phase == Showdown || h.state.Phase == Partition {
		return nil, fmt.Errorf("%w: no betting during %s", ErrPlayerCannotAct, h.state.Phase)
	}

	switch action {
	case Fold:
		err = h.fold(p)
	case Check:
		err = h.check(p)
	case Call:
		err = h.call(p)
	case Bet:
		err = h.bet(p, amount)
	case Raise:
		err = h.raise(p, amount)
	case AllIn:
		if h.callOnly(p.Seat) && p.Chips > h.state.CurrentBet-p.Bet {
			err = h.call(p)
		} else {
			h.allIn(p)
		}
	default:
		err = fmt.Errorf("%w: %s", ErrUnknownAction, action)
	}
	if err != nil {
		return nil, err
	}

	e.logger.Debug("Player action",
		"seat", seat,
		"action", action,
		"amount", amount,
		"phase", h.state.Phase,
		"pot", h.state.Pot)

	h.settle()
	if h.state.Completed {
		e.logger.Debug("Hand complete",
			"winners", h.autoWinners,
			"pot", h.potAwarded)
	}
	return h.outcome(), nil
}

// ValidActions lists the actions seat could legally take right now.
func ValidActions(ctx HandContext, seat int) []ActionType {
	s := ctx.State
	if s.Completed || s.CurrentActor != seat || s.Phase == Partition || s.Phase >= Showdown {
		return nil
	}
	var p *PlayerSnapshot
	for i := range ctx.Players {
		if ctx.Players[i].Seat == seat {
			p = &ctx.Players[i]
		}
	}
	if p == nil || !p.canAct() {
		return nil
	}

	actions := []ActionType{Fold}
	toCall := s.CurrentBet - p.Bet
	if toCall <= 0 {
		actions = append(actions, Check)
	} else if p.Chips > toCall {
		actions = append(actions, Call)
	}
	if slices.Contains(s.CallOnlySeats, seat) {
		if p.Chips <= toCall {
			actions = append(actions, AllIn)
		}
		return actions
	}
	if s.CurrentBet == 0 && p.Chips > 0 {
		actions = append(actions, Bet)
	} else if p.Chips > toCall+s.MinRaise {
		actions = append(actions, Raise)
	}
	return append(actions, AllIn)
}

func (h *hand) fold(p *PlayerSnapshot) error {
	p.Folded = true
	h.touch(p)
	h.record(p.Seat, Fold, 0)
	h.markActed(p.Seat)
	if h.state.LastAggressor == p.Seat {
		h.state.LastAggressor = 0
	}
	return nil
}

func (h *hand) check(p *PlayerSnapshot) error {
	if p.Bet != h.state.CurrentBet {
		return fmt.Errorf("%w: %d to call", ErrCannotCheckFacingBet, h.state.CurrentBet-p.Bet)
	}
	h.record(p.Seat, Check, 0)
	h.markActed(p.Seat)
	return nil
}

func (h *hand) call(p *PlayerSnapshot) error {
	toCall := h.state.CurrentBet - p.Bet
	if toCall <= 0 {
		return ErrNothingToCall
	}
	h.record(p.Seat, Call, h.invest(p, toCall))
	h.markActed(p.Seat)
	return nil
}

func (h *hand) bet(p *PlayerSnapshot, amount int) error {
	if h.state.CurrentBet > 0 {
		return fmt.Errorf("%w: current bet is %d", ErrBetNotAllowedAfterBet, h.state.CurrentBet)
	}
	if amount <= 0 {
		return ErrBetAmountRequired
	}
	if amount >= p.Bet+p.Chips {
		h.allIn(p)
		return nil
	}

	committed := h.invest(p, amount-p.Bet)
	h.state.CurrentBet = p.Bet
	h.state.MinRaise = amount
	h.state.LastAggressor = p.Seat
	h.state.LastRaise = amount
	h.record(p.Seat, Bet, committed)
	h.reopen(p.Seat)
	return nil
}

func (h *hand) raise(p *PlayerSnapshot, target int) error {
	if h.state.CurrentBet == 0 {
		return ErrNoBetToRaise
	}
	if target <= h.state.CurrentBet {
		return fmt.Errorf("%w: raise to %d, current bet %d", ErrRaiseMustExceedCurrentBet, target, h.state.CurrentBet)
	}
	if h.callOnly(p.Seat) {
		return fmt.Errorf("%w: seat %d was not reopened by a short all-in", ErrRaiseBelowMinimum, p.Seat)
	}
	if target >= p.Bet+p.Chips {
		h.allIn(p)
		return nil
	}
	raiseBy := target - h.state.CurrentBet
	if raiseBy < h.state.MinRaise {
		return fmt.Errorf("%w: minimum raise is to %d", ErrRaiseBelowMinimum, h.state.CurrentBet+h.state.MinRaise)
	}

	committed := h.invest(p, target-p.Bet)
	h.state.CurrentBet = target
	h.state.MinRaise = raiseBy
	h.state.LastAggressor = p.Seat
	h.state.LastRaise = raiseBy
	h.record(p.Seat, Raise, committed)
	h.reopen(p.Seat)
	return nil
}

// allIn commits the whole stack. Only a raise of at least the minimum reopens
// the betting. A smaller all-in over the current bet re-queues the seats that
// now owe chips, and those that had already acted may only call or fold. An
// all-in at or below the current bet is a call.
func (h *hand) allIn(p *PlayerSnapshot) {
	committed := h.invest(p, p.Chips)
	h.record(p.Seat, AllIn, committed)
	h.markActed(p.Seat)

	if p.Bet <= h.state.CurrentBet {
		return
	}
	raiseBy := p.Bet - h.state.CurrentBet
	h.state.CurrentBet = p.Bet
	if raiseBy >= h.state.MinRaise {
		h.state.MinRaise = raiseBy
		h.state.LastAggressor = p.Seat
		h.state.LastRaise = raiseBy
		h.reopen(p.Seat)
		return
	}

	queued := slices.Clone(h.state.SeatsToAct)
	h.state.SeatsToAct = h.orderAfter(p.Seat, func(o *PlayerSnapshot) bool {
		return o.canAct() && (slices.Contains(queued, o.Seat) || o.Bet < h.state.CurrentBet)
	})
	for _, seat := range h.state.SeatsToAct {
		if !slices.Contains(queued, seat) && !h.callOnly(seat) {
			h.state.CallOnlySeats = append(h.state.CallOnlySeats, seat)
		}
	}
	slices.Sort(h.state.CallOnlySeats)
	h.state.SeatsActed = slices.DeleteFunc(h.state.SeatsActed, func(s int) bool {
		return slices.Contains(h.state.SeatsToAct, s)
	})
}

func (h *hand) callOnly(seat int) bool {
	return slices.Contains(h.state.CallOnlySeats, seat)
}

// reopen gives every other seat that can still act another turn, in
// clockwise order after the aggressor.
func (h *hand) reopen(aggressor int) {
	h.state.SeatsToAct = h.orderAfter(aggressor, func(o *PlayerSnapshot) bool {
		return o.Seat != aggressor && o.canAct()
	})
	h.state.SeatsActed = []int{}
	h.state.CallOnlySeats = nil
}
