package main

import (
	"context"
	"fmt"
	"io"

	"github.com/charmbracelet/log"
	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"golang.org/x/sync/errgroup"

	"github.com/lox/multipoker/internal/game"
	"github.com/lox/multipoker/internal/replay"
)

type VerifyCmd struct {
	Script   string `arg:"" help:"Hand script (HCL)" type:"existingfile"`
	Runs     int    `short:"n" default:"8" help:"Number of replays"`
	Parallel int    `default:"4" help:"Maximum concurrent replays"`
}

func (c *VerifyCmd) Run(logger *log.Logger, out io.Writer) error {
	script, err := replay.Load(c.Script)
	if err != nil {
		return err
	}
	if c.Runs < 2 {
		return fmt.Errorf("runs must be at least 2")
	}
	if err := verify(context.Background(), script, c.Runs, c.Parallel, logger); err != nil {
		return err
	}
	fmt.Fprintf(out, "%s %d replays of %s matched\n", winStyle.Render("ok"), c.Runs, c.Script)
	return nil
}

// verify replays the script concurrently, each run on its own engine, and
// fails if any result differs from the first.
func verify(ctx context.Context, script *replay.Script, runs, parallel int, logger *log.Logger) error {
	results := make([]*replay.Result, runs)

	g, ctx := errgroup.WithContext(ctx)
	if parallel > 0 {
		g.SetLimit(parallel)
	}
	for i := range runs {
		g.Go(func() error {
			runner := replay.NewRunner(game.NewEngine(), nil)
			res, err := runner.Run(ctx, script)
			if err != nil {
				return fmt.Errorf("run %d: %w", i, err)
			}
			results[i] = res
			logger.Debug("Replay finished", "run", i, "phase", res.State.Phase, "pot", res.State.Pot)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}

	ignoreTime := cmpopts.IgnoreFields(game.ActionRecord{}, "Timestamp")
	for i := 1; i < runs; i++ {
		if diff := cmp.Diff(results[0], results[i], ignoreTime, cmpopts.EquateEmpty()); diff != "" {
			return fmt.Errorf("run %d diverged from run 0 (-want +got):\n%s", i, diff)
		}
	}
	return nil
}
