package game

import (
	"fmt"
	"slices"
	"time"

	"github.com/charmbracelet/log"
	"github.com/lox/multipoker/poker"
)

// hand is the private working copy for a single engine call. Nothing in it
// aliases the caller's snapshot.
type hand struct {
	room    RoomConfig
	rules   Rules
	state   GameState
	players map[int]*PlayerSnapshot
	seats   []int
	hole    map[int][]poker.Card
	deltas  *deltaSet
	now     time.Time
	logger  *log.Logger

	// Set when the call finishes the hand.
	autoWinners []int
	potAwarded  int
	showdown    *ShowdownResult
}

func newHand(ctx HandContext, now time.Time, logger *log.Logger) (*hand, error) {
	h := &hand{
		room:    ctx.Room,
		rules:   ctx.State.Variant.Rules(),
		state:   ctx.State.clone(),
		players: make(map[int]*PlayerSnapshot, len(ctx.Players)),
		hole:    make(map[int][]poker.Card, len(ctx.HoleCards)),
		deltas:  newDeltaSet(),
		now:     now,
		logger:  logger,
	}
	for _, p := range ctx.Players {
		if p.Seat < 1 {
			return nil, fmt.Errorf("%w: seat %d", ErrInvalidSeating, p.Seat)
		}
		if _, dup := h.players[p.Seat]; dup {
			return nil, fmt.Errorf("%w: duplicate seat %d", ErrInvalidSeating, p.Seat)
		}
		cp := p
		h.players[p.Seat] = &cp
		h.seats = append(h.seats, p.Seat)
	}
	slices.Sort(h.seats)
	for seat, cards := range ctx.HoleCards {
		h.hole[seat] = slices.Clone(cards)
	}
	return h, nil
}

// touch records the seat's current values as its latest delta.
func (h *hand) touch(p *PlayerSnapshot) {
	h.deltas.put(*p)
}

// invest moves up to amount chips from the stack into the pot as a street bet.
func (h *hand) invest(p *PlayerSnapshot, amount int) int {
	amount = min(max(amount, 0), p.Chips)
	p.Chips -= amount
	p.Bet += amount
	p.TotalInvested += amount
	h.state.Pot += amount
	if p.Chips == 0 && p.InHand {
		p.AllIn = true
	}
	h.touch(p)
	return amount
}

func (h *hand) record(seat int, action ActionType, amount int) {
	total := 0
	if p, ok := h.players[seat]; ok {
		total = p.Bet
	}
	h.state.History = append(h.state.History, ActionRecord{
		Seat:        seat,
		Action:      action,
		Amount:      amount,
		StreetTotal: total,
		Phase:       h.state.Phase,
		Timestamp:   h.now,
	})
}

// orderAfter returns seats clockwise starting after seat, wrapping so seats
// at or before it come last, keeping only those matching keep.
func (h *hand) orderAfter(seat int, keep func(*PlayerSnapshot) bool) []int {
	var after, before []int
	for _, s := range h.seats {
		if !keep(h.players[s]) {
			continue
		}
		if s > seat {
			after = append(after, s)
		} else {
			before = append(before, s)
		}
	}
	return append(after, before...)
}

// nextSeat returns the first seat clockwise after seat that matches keep.
func (h *hand) nextSeat(seat int, keep func(*PlayerSnapshot) bool) int {
	order := h.orderAfter(seat, keep)
	if len(order) == 0 {
		return 0
	}
	return order[0]
}

func (h *hand) contestingSeats() []int {
	var out []int
	for _, s := range h.seats {
		if h.players[s].contesting() {
			out = append(out, s)
		}
	}
	return out
}

func (h *hand) actingSeats() []int {
	var out []int
	for _, s := range h.seats {
		if h.players[s].canAct() {
			out = append(out, s)
		}
	}
	return out
}

func (h *hand) playerList() []PlayerSnapshot {
	out := make([]PlayerSnapshot, 0, len(h.seats))
	for _, s := range h.seats {
		out = append(out, *h.players[s])
	}
	return out
}

func (h *hand) setActor() {
	if len(h.state.SeatsToAct) == 0 || h.state.Phase == Partition {
		h.state.CurrentActor = 0
		return
	}
	h.state.CurrentActor = h.state.SeatsToAct[0]
}

func (h *hand) markActed(seat int) {
	h.state.SeatsToAct = slices.DeleteFunc(h.state.SeatsToAct, func(s int) bool { return s == seat })
	if !slices.Contains(h.state.SeatsActed, seat) {
		h.state.SeatsActed = append(h.state.SeatsActed, seat)
	}
}

func (h *hand) refreshSidePots() {
	h.state.SidePots = CalculateSidePots(h.playerList())
}

func (h *hand) outcome() *Outcome {
	return &Outcome{
		State:          h.state,
		UpdatedPlayers: h.deltas.list(),
		HandCompleted:  h.state.Completed,
		AutoWinners:    h.autoWinners,
		PotAwarded:     h.potAwarded,
		Showdown:       h.showdown,
	}
}
