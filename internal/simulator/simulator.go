// Package simulator plays seeded sessions of automated hands through the
// engine and audits chip bookkeeping after every hand.
package simulator

import (
	"context"
	"errors"
	"fmt"
	"io"
	"slices"
	"time"

	"github.com/charmbracelet/log"

	"github.com/lox/multipoker/internal/game"
	"github.com/lox/multipoker/internal/randutil"
	"github.com/lox/multipoker/internal/statistics"
	"github.com/lox/multipoker/poker"
)

// maxSteps bounds the engine calls in one hand.
const maxSteps = 1000

// ErrChipsNotConserved is returned when a hand creates or destroys chips.
var ErrChipsNotConserved = errors.New("chips not conserved")

// Config holds the settings for one session.
type Config struct {
	Room    game.RoomConfig
	Players int
	Stack   int
	Hands   int
	Seed    int64
	Policy  string
	Timeout time.Duration // per hand; zero means no limit
	Logger  *log.Logger
}

// Report summarises a finished session.
type Report struct {
	Hands     int
	Showdowns int
	RunOuts   int // hands decided by forced bets alone
	Rebuys    int
	Seats     map[int]*statistics.Statistics
	Final     []game.PlayerSnapshot
}

// Simulator runs poker sessions.
type Simulator struct {
	config   Config
	engine   *game.Engine
	policies []Policy
}

// New creates a simulator. It fails on an unknown policy or a table that
// cannot seat the requested players.
func New(config Config, engine *game.Engine) (*Simulator, error) {
	if config.Logger == nil {
		config.Logger = log.New(io.Discard)
	}
	if config.Players < 2 || config.Players > config.Room.MaxSeats {
		return nil, fmt.Errorf("players must be between 2 and %d", config.Room.MaxSeats)
	}
	if config.Stack <= 0 {
		return nil, fmt.Errorf("stack must be positive")
	}
	policies, err := policiesFor(config.Policy, config.Players)
	if err != nil {
		return nil, err
	}
	return &Simulator{config: config, engine: engine, policies: policies}, nil
}

type handResult struct {
	state    game.GameState
	players  []game.PlayerSnapshot
	showdown bool
	runOut   bool
}

// Run plays the session. Busted players rebuy for the starting stack before
// the next hand, so every seat plays every hand.
func (s *Simulator) Run(ctx context.Context) (*Report, error) {
	players := make([]game.PlayerSnapshot, s.config.Players)
	for i := range players {
		players[i] = game.PlayerSnapshot{
			Seat:     i + 1,
			PlayerID: fmt.Sprintf("bot-%d", i+1),
			Chips:    s.config.Stack,
		}
	}

	report := &Report{Seats: make(map[int]*statistics.Statistics, len(players))}
	for _, p := range players {
		report.Seats[p.Seat] = &statistics.Statistics{}
	}

	button := 0
	for hand := range s.config.Hands {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		for i := range players {
			if players[i].Chips == 0 {
				players[i].Chips = s.config.Stack
				report.Rebuys++
			}
		}

		seed := randutil.Derive(s.config.Seed, uint64(hand))
		res, err := s.playHandWithTimeout(ctx, players, button, seed)
		if err != nil {
			return nil, fmt.Errorf("hand %d (seed %d): %w", hand+1, seed, err)
		}
		if before, after := total(players), total(res.players); before != after {
			return nil, fmt.Errorf("%w: hand %d (seed %d) started with %d chips and ended with %d",
				ErrChipsNotConserved, hand+1, seed, before, after)
		}

		s.record(report, seed, players, res)
		players = res.players
		button = res.state.ButtonSeat
	}

	for seat, stats := range report.Seats {
		if err := stats.Validate(); err != nil {
			return nil, fmt.Errorf("seat %d statistics: %w", seat, err)
		}
	}
	report.Final = players
	return report, nil
}

func (s *Simulator) record(report *Report, seed int64, before []game.PlayerSnapshot, res *handResult) {
	report.Hands++
	if res.showdown {
		report.Showdowns++
	}
	if res.runOut {
		report.RunOuts++
	}

	start := make(map[int]int, len(before))
	for _, p := range before {
		start[p.Seat] = p.Chips
	}
	pos := positions(res.players, res.state.ButtonSeat)
	bb := s.config.Room.BigBlind
	for _, p := range res.players {
		if !p.InHand {
			continue
		}
		report.Seats[p.Seat].Add(statistics.HandResult{
			NetBB:          float64(p.Chips-start[p.Seat]) / float64(bb),
			Seed:           seed,
			Position:       pos[p.Seat],
			WentToShowdown: res.showdown && !p.Folded,
			FinalPotSize:   res.state.Pot,
			BigBlind:       bb,
			PhaseReached:   res.state.Phase.String(),
		})
	}
}

func (s *Simulator) playHandWithTimeout(ctx context.Context, players []game.PlayerSnapshot, button int, seed int64) (*handResult, error) {
	if s.config.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, s.config.Timeout)
		defer cancel()
	}
	return s.playHand(ctx, players, button, seed)
}

// playHand deals one hand and drives it to completion with the seat
// policies. Each hand draws decisions from its own stream so a seed replays
// the same hand.
func (s *Simulator) playHand(ctx context.Context, players []game.PlayerSnapshot, button int, seed int64) (*handResult, error) {
	rng := randutil.New(seed)

	deal, err := s.engine.Deal(game.DealRequest{
		Room:           s.config.Room,
		Players:        players,
		PreviousButton: button,
		Deck:           poker.SeededSource{Seed: seed},
	})
	if err != nil {
		return nil, fmt.Errorf("deal: %w", err)
	}

	hc := game.HandContext{
		Room:      s.config.Room,
		State:     deal.State,
		Players:   game.MergePlayers(players, deal.UpdatedPlayers),
		HoleCards: deal.HoleCards,
	}
	res := &handResult{showdown: deal.Showdown != nil, runOut: deal.HandCompleted}

	for step := 0; !hc.State.Completed; step++ {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		if step >= maxSteps {
			return nil, fmt.Errorf("hand did not finish after %d steps", maxSteps)
		}

		if hc.State.Phase == game.Partition {
			seat := hc.State.SeatsToAct[0]
			out, err := s.engine.SubmitPartition(hc, seat, randomPartition(rng, hc.HoleCards[seat]))
			if err != nil {
				return nil, fmt.Errorf("partition seat %d: %w", seat, err)
			}
			hc.State = out.State
			hc.Players = game.MergePlayers(hc.Players, out.UpdatedPlayers)
			res.showdown = res.showdown || out.Showdown != nil
			continue
		}

		seat := hc.State.CurrentActor
		action, amount := s.policies[seat-1].Decide(rng, hc, seat)
		out, err := s.engine.Apply(hc, seat, action, amount)
		if err != nil {
			return nil, fmt.Errorf("seat %d %s %d: %w", seat, action, amount, err)
		}
		s.config.Logger.Debug("Simulated action", "seat", seat, "action", action, "amount", amount, "phase", out.State.Phase)
		hc.State = out.State
		hc.Players = game.MergePlayers(hc.Players, out.UpdatedPlayers)
		res.showdown = res.showdown || out.Showdown != nil
	}

	res.state = hc.State
	res.players = hc.Players
	return res, nil
}

func total(players []game.PlayerSnapshot) int {
	sum := 0
	for _, p := range players {
		sum += p.Chips
	}
	return sum
}

// positions maps each dealt-in seat to its distance clockwise from the button.
func positions(players []game.PlayerSnapshot, button int) map[int]int {
	var seats []int
	for _, p := range players {
		if p.InHand {
			seats = append(seats, p.Seat)
		}
	}
	slices.Sort(seats)
	start := max(slices.Index(seats, button), 0)

	pos := make(map[int]int, len(seats))
	for i := range seats {
		pos[seats[(start+i)%len(seats)]] = i
	}
	return pos
}
