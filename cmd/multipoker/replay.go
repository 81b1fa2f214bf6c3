package main

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/charmbracelet/log"

	"github.com/lox/multipoker/internal/fileutil"
	"github.com/lox/multipoker/internal/game"
	"github.com/lox/multipoker/internal/gameid"
	"github.com/lox/multipoker/internal/phh"
	"github.com/lox/multipoker/internal/replay"
)

type ReplayCmd struct {
	Script  string `arg:"" help:"Hand script (HCL)" type:"existingfile"`
	History string `help:"Write the hand history to this PHH file" type:"path"`
}

func (c *ReplayCmd) Run(logger *log.Logger, out io.Writer) error {
	script, err := replay.Load(c.Script)
	if err != nil {
		return err
	}

	runner := replay.NewRunner(game.NewEngine(game.WithLogger(logger)), logger)
	res, err := runner.Run(context.Background(), script)
	if err != nil {
		return err
	}
	printResult(out, res)

	if c.History == "" {
		return nil
	}
	return writeHistory(c.History, res, logger)
}

func writeHistory(path string, res *replay.Result, logger *log.Logger) error {
	id, err := gameid.Generate()
	if err != nil {
		return err
	}
	h := phh.FromResult(res, id, time.Now())
	if err := fileutil.WriteAtomic(path, 0o644, func(w io.Writer) error {
		return phh.Encode(w, h)
	}); err != nil {
		return fmt.Errorf("write hand history: %w", err)
	}
	logger.Info("Wrote hand history", "file", path, "hand_id", id)
	return nil
}

func printResult(out io.Writer, res *replay.Result) {
	st := res.State
	fmt.Fprintf(out, "%s %s seed %d\n", headerStyle.Render(res.Room.Name), res.Room.Variant, res.Seed)
	fmt.Fprintf(out, "%s %s  %s %d  %s %d\n",
		labelStyle.Render("phase"), st.Phase,
		labelStyle.Render("actions"), res.ActionsApplied,
		labelStyle.Render("pot"), st.Pot)
	for i, board := range st.RevealedBoards() {
		fmt.Fprintf(out, "%s %s\n", labelStyle.Render(fmt.Sprintf("board %d", i+1)), renderCards(board))
	}
	if !res.Completed() {
		fmt.Fprintf(out, "%s seat %d\n", labelStyle.Render("to act"), st.CurrentActor)
		return
	}
	if len(res.AutoWinners) > 0 {
		fmt.Fprintf(out, "%s seat %v takes %d uncontested\n", winStyle.Render("winner"), res.AutoWinners, res.PotAwarded)
	}
	printShowdown(out, res.Showdown)

	net := res.Net()
	for _, p := range res.Players {
		if !p.InHand {
			continue
		}
		fmt.Fprintf(out, "seat %d %-10s %5d chips  %s\n", p.Seat, p.PlayerID, p.Chips, renderChips(net[p.Seat]))
	}
}
