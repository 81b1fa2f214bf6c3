package game

import (
	"fmt"
	"slices"

	"github.com/lox/multipoker/poker"
)

// DeckSource supplies a shuffled card sequence holding the requested number
// of 52-card decks.
type DeckSource interface {
	Shuffled(decks int) []poker.Card
}

// DealRequest is everything the dealer needs to start a hand.
type DealRequest struct {
	Room    RoomConfig
	Players []PlayerSnapshot
	// PreviousButton is last hand's button seat, or 0 for the first hand.
	PreviousButton int
	Deck           DeckSource
}

// DealResult is the new hand. HoleCards and State.Boards are private to the
// engine and trusted storage.
type DealResult struct {
	State          GameState
	HoleCards      map[int][]poker.Card
	UpdatedPlayers []PlayerSnapshot
	RevealedBoards [][]poker.Card
	UsesTwoDecks   bool
	// HandCompleted is set when forced bets left nobody able to bet and the
	// hand ran straight to showdown.
	HandCompleted bool
	Showdown      *ShowdownResult
}

func eligibleForCards(p *PlayerSnapshot) bool {
	return !p.Spectating && !p.SittingOut && !p.Waiting && p.Chips > 0
}

// Deal seats a new hand: it reactivates waiting players, moves the button,
// deals hole cards and boards, posts blinds or antes and computes who acts
// first.
func (e *Engine) Deal(req DealRequest) (*DealResult, error) {
	rules := req.Room.Variant.Rules()
	h, err := newHand(HandContext{
		Room:    req.Room,
		State:   GameState{Variant: req.Room.Variant},
		Players: req.Players,
	}, e.clock.Now(), e.logger)
	if err != nil {
		return nil, err
	}

	for _, seat := range h.seats {
		p := h.players[seat]
		if p.Waiting && !p.Spectating && !p.SittingOut && p.Chips > 0 {
			p.Waiting = false
		}
		p.Bet, p.TotalInvested = 0, 0
		p.Folded, p.AllIn = false, false
		p.InHand = eligibleForCards(p)
		h.touch(p)
	}

	dealt := h.orderAfter(0, func(p *PlayerSnapshot) bool { return p.InHand })
	if len(dealt) < 2 {
		return nil, fmt.Errorf("%w: %d of %d", ErrNotEnoughPlayers, len(dealt), len(h.seats))
	}

	decks := poker.DecksFor(len(dealt), rules.HoleCards, rules.BoardCards())
	cards := req.Deck.Shuffled(decks)
	need := len(dealt)*rules.HoleCards + rules.BoardCards()
	if len(cards) < need {
		return nil, fmt.Errorf("%w: need %d cards, have %d", ErrDeckExhausted, need, len(cards))
	}

	inHand := func(p *PlayerSnapshot) bool { return p.InHand }
	button := h.nextSeat(req.PreviousButton, inHand)

	// One card at a time, starting left of the button.
	next := 0
	order := h.orderAfter(button, inHand)
	for range rules.HoleCards {
		for _, seat := range order {
			h.hole[seat] = append(h.hole[seat], cards[next])
			next++
		}
	}
	boards := make([][]poker.Card, rules.Boards)
	for b := range boards {
		boards[b] = slices.Clone(cards[next : next+rules.BoardSize])
		next += rules.BoardSize
	}

	h.state = GameState{
		Variant:      req.Room.Variant,
		Phase:        rules.StartPhase,
		ButtonSeat:   button,
		MinRaise:     req.Room.BigBlind,
		Boards:       boards,
		Revealed:     rules.InitialReveal,
		UsesTwoDecks: decks == 2,
	}

	switch rules.ForcedBet {
	case Blinds:
		sb, bb := h.blindSeats(button, order)
		h.record(sb, PostSmallBlind, h.invest(h.players[sb], req.Room.SmallBlind))
		h.record(bb, PostBigBlind, h.invest(h.players[bb], req.Room.BigBlind))
		// A short big blind can leave the small blind as the largest bet.
		h.state.CurrentBet = max(h.players[sb].Bet, h.players[bb].Bet)
	case Antes:
		for _, seat := range order {
			p := h.players[seat]
			h.record(seat, PostAnte, h.invest(p, req.Room.Ante()))
			p.Bet = 0
			h.touch(p)
		}
	}
	h.state.SeatsToAct = h.orderAfter(button, (*PlayerSnapshot).canAct)
	h.state.SeatsActed = []int{}

	e.logger.Debug("Dealt hand",
		"variant", rules.Variant,
		"button", button,
		"players", len(dealt),
		"decks", decks,
		"pot", h.state.Pot)

	if h.noContest() {
		h.state.SeatsToAct = nil
		h.closeStreet()
	} else {
		h.setActor()
		h.refreshSidePots()
	}

	return &DealResult{
		State:          h.state,
		HoleCards:      h.hole,
		UpdatedPlayers: h.deltas.list(),
		RevealedBoards: h.state.RevealedBoards(),
		UsesTwoDecks:   h.state.UsesTwoDecks,
		HandCompleted:  h.state.Completed,
		Showdown:       h.showdown,
	}, nil
}

// blindSeats returns the small and big blind. Heads-up the button posts the
// small blind.
func (h *hand) blindSeats(button int, order []int) (sb, bb int) {
	if len(order) == 2 {
		return button, order[0]
	}
	return order[0], order[1]
}

// noContest reports whether betting is already impossible after forced bets:
// nobody can act, or the only seat that can act owes nothing.
func (h *hand) noContest() bool {
	acting := h.actingSeats()
	switch len(acting) {
	case 0:
		return true
	case 1:
		return h.players[acting[0]].Bet >= h.state.CurrentBet
	default:
		return false
	}
}
