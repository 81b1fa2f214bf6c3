package main

import (
	"context"
	"fmt"
	"io"
	"slices"
	"strings"
	"time"

	"github.com/charmbracelet/log"

	"github.com/lox/multipoker/internal/config"
	"github.com/lox/multipoker/internal/game"
	"github.com/lox/multipoker/internal/simulator"
)

type SimulateCmd struct {
	Config  string        `short:"c" default:"multipoker.hcl" help:"Room config file (HCL)" type:"path"`
	Table   string        `short:"t" default:"main" help:"Table to simulate"`
	Seed    int64         `short:"s" help:"Session seed"`
	Hands   int           `short:"n" default:"1000" help:"Number of hands"`
	Players int           `short:"p" default:"6" help:"Number of seated bots"`
	Stack   int           `help:"Starting stack and rebuy amount (defaults to the table's maximum buy-in)"`
	Policy  string        `default:"mixed" help:"Bot policy: ${policies}"`
	Timeout time.Duration `default:"5s" help:"Per-hand timeout"`
}

func (c *SimulateCmd) Run(logger *log.Logger, out io.Writer) error {
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
	stack := c.Stack
	if stack == 0 {
		stack = room.BuyInMax
	}

	sim, err := simulator.New(simulator.Config{
		Room:    room,
		Players: c.Players,
		Stack:   stack,
		Hands:   c.Hands,
		Seed:    c.Seed,
		Policy:  c.Policy,
		Timeout: c.Timeout,
		Logger:  logger,
	}, game.NewEngine(game.WithLogger(logger)))
	if err != nil {
		return err
	}

	logger.Info("Starting simulation", "table", room.Name, "variant", room.Variant, "hands", c.Hands, "seed", c.Seed)
	start := time.Now()
	report, err := sim.Run(context.Background())
	if err != nil {
		return err
	}
	elapsed := time.Since(start)

	printReport(out, room, report, elapsed)
	return nil
}

func printReport(out io.Writer, room game.RoomConfig, report *simulator.Report, elapsed time.Duration) {
	fmt.Fprintf(out, "%s %s %d/%d\n", headerStyle.Render(room.Name), room.Variant, room.SmallBlind, room.BigBlind)
	fmt.Fprintf(out, "%s %d  %s %d  %s %d  %s %d\n",
		labelStyle.Render("hands"), report.Hands,
		labelStyle.Render("showdowns"), report.Showdowns,
		labelStyle.Render("run-outs"), report.RunOuts,
		labelStyle.Render("rebuys"), report.Rebuys)
	if elapsed > 0 && report.Hands > 0 {
		fmt.Fprintf(out, "%s %.1f hands/sec\n", labelStyle.Render("speed"), float64(report.Hands)/elapsed.Seconds())
	}

	fmt.Fprintln(out, headerStyle.Render(fmt.Sprintf("%-5s %10s %21s %8s %8s %9s", "SEAT", "BB/HAND", "95% CI", "SD WON", "NSD WON", "MAX POT")))
	seats := make([]int, 0, len(report.Seats))
	for seat := range report.Seats {
		seats = append(seats, seat)
	}
	slices.Sort(seats)
	for _, seat := range seats {
		stats := report.Seats[seat]
		lo, hi := stats.ConfidenceInterval95()
		mean := fmt.Sprintf("%+10.3f", stats.Mean())
		switch {
		case lo > 0:
			mean = winStyle.Render(mean)
		case hi < 0:
			mean = lossStyle.Render(mean)
		}
		fmt.Fprintf(out, "%-5d %s %21s %8d %8d %8.1fbb\n",
			seat, mean, fmt.Sprintf("[%.3f, %.3f]", lo, hi),
			stats.Showdown.Won, stats.NoShowdown.Won, stats.Pots.LargestBB)
	}
}

func policyHelp() string {
	return strings.Join(simulator.PolicyNames(), ", ")
}
