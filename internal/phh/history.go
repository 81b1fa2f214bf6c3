package phh

import (
	"fmt"
	"maps"
	"slices"
	"time"

	"github.com/lox/multipoker/internal/game"
	"github.com/lox/multipoker/internal/replay"
	"github.com/lox/multipoker/poker"
)

// Variant codes. Indian poker and 3-2-1 have no PHH equivalent and use
// extension codes.
var variantCodes = map[game.Variant]string{
	game.HoldEm:      "NT",
	game.PLOBombPot:  "PO",
	game.IndianPoker: "X-INDIAN",
	game.ThreeTwoOne: "X-321",
}

// FromResult builds a hand history for a replayed hand. The deck seed is
// never written.
func FromResult(res *replay.Result, handID string, at time.Time) *HandHistory {
	seats := slices.Sorted(maps.Keys(res.HoleCards))
	index := make(map[int]int, len(seats))
	for i, seat := range seats {
		index[seat] = i + 1
	}
	players := make(map[int]game.PlayerSnapshot, len(res.Players))
	for _, p := range res.Players {
		players[p.Seat] = p
	}

	at = at.UTC()
	h := &HandHistory{
		Variant:           variantCodes[res.Room.Variant],
		Table:             res.Room.Name,
		SeatCount:         res.Room.MaxSeats,
		Seats:             seats,
		Antes:             make([]int, len(seats)),
		BlindsOrStraddles: make([]int, len(seats)),
		MinBet:            res.Room.BigBlind,
		StartingStacks:    make([]int, len(seats)),
		FinishingStacks:   make([]int, len(seats)),
		Winnings:          make([]int, len(seats)),
		HandID:            handID,
		Time:              at.Format("15:04:05"),
		TimeZone:          "UTC",
		Day:               at.Day(),
		Month:             int(at.Month()),
		Year:              at.Year(),
		Timestamp:         at,
		Metadata: map[string]any{
			"engine_variant": res.Room.Variant.String(),
			"boards":         len(res.State.Boards),
			"two_decks":      res.State.UsesTwoDecks,
			"pot":            res.State.Pot,
		},
	}
	for i, seat := range seats {
		h.Players = append(h.Players, players[seat].PlayerID)
		h.StartingStacks[i] = res.StartingChips[seat]
		h.FinishingStacks[i] = players[seat].Chips
	}

	switch {
	case res.Showdown != nil:
		for seat, won := range res.Showdown.Payouts {
			if i, ok := index[seat]; ok {
				h.Winnings[i-1] = won
			}
		}
	case len(res.AutoWinners) == 1:
		h.Winnings[index[res.AutoWinners[0]]-1] = res.PotAwarded
	}

	for _, seat := range seats {
		h.Actions = append(h.Actions, fmt.Sprintf("d dh p%d %s", index[seat], FormatCards(res.HoleCards[seat])))
	}

	b := &boardDealer{boards: res.State.Boards}
	h.Actions = b.dealTo(h.Actions, res.Room.Variant.Rules().InitialReveal)

	phase := game.Phase(-1)
	streetBet := 0
	for _, rec := range res.State.History {
		if rec.Phase != phase {
			phase = rec.Phase
			streetBet = 0
			h.Actions = b.dealTo(h.Actions, boardCardsFor(phase))
		}
		switch rec.Action {
		case game.PostAnte:
			h.Antes[index[rec.Seat]-1] = rec.Amount
		case game.PostSmallBlind, game.PostBigBlind:
			h.BlindsOrStraddles[index[rec.Seat]-1] = rec.Amount
		}
		if action, ok := FormatAction(index[rec.Seat], rec.Action, rec.StreetTotal, streetBet); ok {
			h.Actions = append(h.Actions, action)
		}
		streetBet = max(streetBet, rec.StreetTotal)
	}
	h.Actions = b.dealTo(h.Actions, res.State.Revealed)

	if len(res.State.Partitions) > 0 {
		h.Partitions = make(map[string]string, len(res.State.Partitions))
		for seat, pc := range res.State.Partitions {
			h.Partitions[fmt.Sprintf("p%d", index[seat])] = FormatCards(pc.Group(0)) + "/" + FormatCards(pc.Group(1)) + "/" + FormatCards(pc.Group(2))
		}
	}
	if res.Showdown != nil {
		for _, seat := range slices.Sorted(maps.Keys(res.Showdown.Hands)) {
			h.Actions = append(h.Actions, fmt.Sprintf("p%d sm %s", index[seat], FormatCards(res.HoleCards[seat])))
		}
	}
	return h
}

// boardDealer emits "d db" actions as board cards are turned over.
type boardDealer struct {
	boards   [][]poker.Card
	revealed int
}

func (b *boardDealer) dealTo(actions []string, upTo int) []string {
	if upTo <= b.revealed {
		return actions
	}
	for _, board := range b.boards {
		end := min(upTo, len(board))
		if end > b.revealed {
			actions = append(actions, "d db "+FormatCards(board[b.revealed:end]))
		}
	}
	b.revealed = upTo
	return actions
}

// boardCardsFor is how many cards of each board are face up while phase is
// being bet.
func boardCardsFor(phase game.Phase) int {
	switch phase {
	case game.Preflop:
		return 0
	case game.Flop:
		return 3
	case game.Turn:
		return 4
	default:
		return 5
	}
}
