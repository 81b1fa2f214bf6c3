package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/log"

	"github.com/lox/multipoker/internal/config"
	"github.com/lox/multipoker/internal/game"
	"github.com/lox/multipoker/internal/randutil"
	"github.com/lox/multipoker/poker"
)

type DealCmd struct {
	Config  string `short:"c" default:"multipoker.hcl" help:"Room config file (HCL)" type:"path"`
	Table   string `short:"t" default:"main" help:"Table to deal at"`
	Seed    int64  `short:"s" help:"Session seed"`
	Hand    uint64 `default:"1" help:"Hand number within the session; each hand shuffles from its own derived seed"`
	Players int    `short:"p" default:"6" help:"Number of seated players"`
	Stack   int    `help:"Starting stack for every player (defaults to the table's maximum buy-in)"`
}

func (c *DealCmd) Run(logger *log.Logger, out io.Writer) error {
	cfg, err := config.Load(c.Config)
	if err != nil {
		return err
	}
	if err := cfg.Validate(); err != nil {
		return err
	}
	table := cfg.Table(c.Table)
	if table == nil {
		return fmt.Errorf("no table named %q in %s", c.Table, c.Config)
	}
	room, err := table.Room()
	if err != nil {
		return err
	}
	if c.Players < 2 || c.Players > room.MaxSeats {
		return fmt.Errorf("players must be between 2 and %d", room.MaxSeats)
	}

	stack := c.Stack
	if stack == 0 {
		stack = room.BuyInMax
	}
	players := make([]game.PlayerSnapshot, c.Players)
	for i := range players {
		players[i] = game.PlayerSnapshot{
			Seat:     i + 1,
			PlayerID: fmt.Sprintf("player-%d", i+1),
			Chips:    stack,
		}
	}

	seed := randutil.Derive(c.Seed, c.Hand)
	engine := game.NewEngine(game.WithLogger(logger))
	deal, err := engine.Deal(game.DealRequest{
		Room:    room,
		Players: players,
		Deck:    poker.SeededSource{Seed: seed},
	})
	if err != nil {
		return err
	}
	logger.Debug("Dealt hand", "table", room.Name, "variant", room.Variant, "seed", seed, "two_decks", deal.UsesTwoDecks)

	printDeal(out, room, game.MergePlayers(players, deal.UpdatedPlayers), deal)
	return nil
}

func printDeal(out io.Writer, room game.RoomConfig, players []game.PlayerSnapshot, deal *game.DealResult) {
	st := deal.State
	fmt.Fprintf(out, "%s %s %d/%d\n", headerStyle.Render(room.Name), room.Variant, room.SmallBlind, room.BigBlind)
	fmt.Fprintf(out, "%s %d  %s %d  %s %s\n",
		labelStyle.Render("button"), st.ButtonSeat,
		labelStyle.Render("pot"), st.Pot,
		labelStyle.Render("phase"), st.Phase)
	for i, board := range deal.RevealedBoards {
		fmt.Fprintf(out, "%s %s\n", labelStyle.Render(fmt.Sprintf("board %d", i+1)), renderCards(board))
	}
	for _, p := range players {
		if !p.InHand {
			continue
		}
		marker := " "
		if p.Seat == st.CurrentActor {
			marker = ">"
		}
		status := ""
		if p.AllIn {
			status = " all-in"
		}
		fmt.Fprintf(out, "%s seat %d %-10s %5d chips  bet %-4d %s%s\n",
			marker, p.Seat, p.PlayerID, p.Chips, p.Bet, renderCards(deal.HoleCards[p.Seat]), status)
	}
	if deal.HandCompleted {
		printShowdown(out, deal.Showdown)
		return
	}
	acts := game.ValidActions(game.HandContext{
		Room:      room,
		State:     st,
		Players:   players,
		HoleCards: deal.HoleCards,
	}, st.CurrentActor)
	names := make([]string, len(acts))
	for i, a := range acts {
		names[i] = a.String()
	}
	fmt.Fprintf(out, "%s seat %d: %s\n", labelStyle.Render("to act"), st.CurrentActor, strings.Join(names, ", "))
}

func printShowdown(out io.Writer, sd *game.ShowdownResult) {
	if sd == nil {
		return
	}
	for board, seats := range sd.BoardWinners {
		var hands []string
		for _, seat := range seats {
			for _, h := range sd.Hands[seat] {
				if h.Board == board {
					hands = append(hands, fmt.Sprintf("seat %d %s (%s)", seat, renderCards(h.Cards), h.Description))
				}
			}
		}
		fmt.Fprintf(out, "%s %s\n", winStyle.Render(fmt.Sprintf("board %d winner", board+1)), strings.Join(hands, "; "))
	}
}
