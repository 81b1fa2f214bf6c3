package game

import (
	"fmt"
	"slices"

	"github.com/lox/multipoker/poker"
)

// PartitionOutcome is the result of an accepted partition. Completed is false
// while other seats still owe a partition.
type PartitionOutcome struct {
	Completed      bool
	State          GameState
	UpdatedPlayers []PlayerSnapshot
	Showdown       *ShowdownResult
}

// SubmitPartition records seat's 3-2-1 split. The last required submission
// evaluates the three boards and pays the hand out in the same call. A hand
// that is already complete is rejected, so a repeated finalization never pays
// twice.
func (e *Engine) SubmitPartition(ctx HandContext, seat int, split PartitionCards) (*PartitionOutcome, error) {
	if ctx.State.Completed || ctx.State.Phase == Complete {
		return nil, ErrHandAlreadyCompleted
	}
	if ctx.State.Phase != Partition {
		return nil, fmt.Errorf("%w: hand is in %s", ErrPartitionWrongPhase, ctx.State.Phase)
	}

	h, err := newHand(ctx, e.clock.Now(), e.logger)
	if err != nil {
		return nil, err
	}
	p, ok := h.players[seat]
	if !ok {
		return nil, fmt.Errorf("%w: %d", ErrSeatNotFound, seat)
	}
	if !p.contesting() {
		return nil, fmt.Errorf("%w: seat %d", ErrPlayerCannotAct, seat)
	}
	if _, done := h.state.Partitions[seat]; done {
		return nil, fmt.Errorf("%w: seat %d", ErrPartitionAlreadySubmitted, seat)
	}
	if !sameCards(split.all(), h.hole[seat]) {
		return nil, fmt.Errorf("%w: seat %d", ErrPartitionCardMismatch, seat)
	}

	if h.state.Partitions == nil {
		h.state.Partitions = make(map[int]PartitionCards)
	}
	h.state.Partitions[seat] = split
	h.markActed(seat)

	e.logger.Debug("Partition submitted", "seat", seat, "pending", h.state.SeatsToAct)

	pending := slices.ContainsFunc(h.contestingSeats(), func(s int) bool {
		_, done := h.state.Partitions[s]
		return !done
	})
	if !pending {
		h.resolveShowdown()
	}

	return &PartitionOutcome{
		Completed:      h.state.Completed,
		State:          h.state,
		UpdatedPlayers: h.deltas.list(),
		Showdown:       h.showdown,
	}, nil
}

// sameCards reports whether a and b hold the same multiset of valid cards.
func sameCards(a, b []poker.Card) bool {
	if len(a) != len(b) {
		return false
	}
	counts := make(map[poker.Card]int, len(a))
	for _, c := range a {
		if !c.Valid() {
			return false
		}
		counts[c]++
	}
	for _, c := range b {
		counts[c]--
		if counts[c] < 0 {
			return false
		}
	}
	return true
}

// NewPartition builds a split from three card groups, checking their sizes.
func NewPartition(three, two, one []poker.Card) (PartitionCards, error) {
	var pc PartitionCards
	if len(three) != 3 || len(two) != 2 || len(one) != 1 {
		return pc, fmt.Errorf("%w: groups must hold 3, 2 and 1 cards, got %d, %d and %d",
			ErrPartitionCardMismatch, len(three), len(two), len(one))
	}
	copy(pc.Three[:], three)
	copy(pc.Two[:], two)
	copy(pc.One[:], one)
	return pc, nil
}
