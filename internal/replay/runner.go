package replay

import (
	"context"
	"fmt"
	"io"
	"slices"

	"github.com/charmbracelet/log"

	"github.com/lox/multipoker/internal/game"
	"github.com/lox/multipoker/poker"
)

// Result is the final snapshot of a replayed hand.
type Result struct {
	Room           game.RoomConfig
	Seed           int64
	State          game.GameState
	Players        []game.PlayerSnapshot
	HoleCards      map[int][]poker.Card
	StartingChips  map[int]int
	Showdown       *game.ShowdownResult
	AutoWinners    []int
	PotAwarded     int
	ActionsApplied int
}

// Completed reports whether the script played the hand to the end.
func (r *Result) Completed() bool {
	return r.State.Completed
}

// Net returns each seat's chip change over the hand.
func (r *Result) Net() map[int]int {
	net := make(map[int]int, len(r.Players))
	for _, p := range r.Players {
		net[p.Seat] = p.Chips - r.StartingChips[p.Seat]
	}
	return net
}

// Runner replays scripts through one engine.
type Runner struct {
	engine *game.Engine
	logger *log.Logger
}

// NewRunner creates a runner. A nil logger discards output.
func NewRunner(engine *game.Engine, logger *log.Logger) *Runner {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return &Runner{engine: engine, logger: logger}
}

// Run deals the scripted hand and applies every action and partition in
// order. It stops at the first rejected step and reports which one failed.
func (r *Runner) Run(ctx context.Context, s *Script) (*Result, error) {
	room, err := s.Room.Room()
	if err != nil {
		return nil, err
	}
	players := s.Snapshots()

	deal, err := r.engine.Deal(game.DealRequest{
		Room:           room,
		Players:        players,
		PreviousButton: s.PreviousButton,
		Deck:           poker.SeededSource{Seed: s.Seed},
	})
	if err != nil {
		return nil, fmt.Errorf("deal: %w", err)
	}

	res := &Result{
		Room:          room,
		Seed:          s.Seed,
		State:         deal.State,
		Players:       game.MergePlayers(players, deal.UpdatedPlayers),
		HoleCards:     deal.HoleCards,
		StartingChips: make(map[int]int, len(players)),
		Showdown:      deal.Showdown,
	}
	for _, p := range players {
		res.StartingChips[p.Seat] = p.Chips
	}

	r.logger.Debug("Replaying hand",
		"room", room.Name,
		"variant", room.Variant,
		"button", deal.State.ButtonSeat,
		"actions", len(s.Actions),
		"partitions", len(s.Partitions))

	for i, a := range s.Actions {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		action, err := game.ParseAction(a.Type)
		if err != nil {
			return nil, fmt.Errorf("action %d: %w", i+1, err)
		}
		out, err := r.engine.Apply(r.context(res), a.Seat, action, a.Amount)
		if err != nil {
			return nil, fmt.Errorf("action %d (seat %d %s): %w", i+1, a.Seat, action, err)
		}
		res.State = out.State
		res.Players = game.MergePlayers(res.Players, out.UpdatedPlayers)
		res.ActionsApplied++
		if out.HandCompleted {
			res.AutoWinners = out.AutoWinners
			res.PotAwarded = out.PotAwarded
			res.Showdown = out.Showdown
		}
	}

	for i, p := range s.Partitions {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		split, err := p.Cards()
		if err != nil {
			return nil, fmt.Errorf("partition %d: %w", i+1, err)
		}
		out, err := r.engine.SubmitPartition(r.context(res), p.Seat, split)
		if err != nil {
			return nil, fmt.Errorf("partition %d (seat %d): %w", i+1, p.Seat, err)
		}
		res.State = out.State
		res.Players = game.MergePlayers(res.Players, out.UpdatedPlayers)
		if out.Completed {
			res.Showdown = out.Showdown
			res.PotAwarded = out.State.Pot
			res.AutoWinners = winners(out.Showdown)
		}
	}

	if deal.HandCompleted {
		res.PotAwarded = deal.State.Pot
		res.AutoWinners = winners(deal.Showdown)
	}
	return res, nil
}

func (r *Runner) context(res *Result) game.HandContext {
	return game.HandContext{
		Room:      res.Room,
		State:     res.State,
		Players:   res.Players,
		HoleCards: res.HoleCards,
	}
}

// winners lists seats paid at showdown in seat order.
func winners(sd *game.ShowdownResult) []int {
	if sd == nil {
		return nil
	}
	var out []int
	for seat := range sd.Hands {
		if sd.Payouts[seat] > 0 {
			out = append(out, seat)
		}
	}
	slices.Sort(out)
	return out
}
