package main

import (
	"fmt"
	"io"

	"github.com/charmbracelet/log"

	"github.com/lox/multipoker/internal/config"
)

type TablesCmd struct {
	Config string `short:"c" default:"multipoker.hcl" help:"Room config file (HCL)" type:"path"`
}

func (c *TablesCmd) Run(logger *log.Logger, out io.Writer) error {
	cfg, err := config.Load(c.Config)
	if err != nil {
		return err
	}
	if err := cfg.Validate(); err != nil {
		return err
	}
	logger.Debug("Loaded config", "file", c.Config, "tables", len(cfg.Tables))

	fmt.Fprintln(out, headerStyle.Render(fmt.Sprintf("%-12s %-10s %9s %6s %13s", "TABLE", "VARIANT", "BLINDS", "SEATS", "BUY-IN")))
	for _, t := range cfg.Tables {
		fmt.Fprintf(out, "%-12s %-10s %9s %6d %13s\n",
			t.Name,
			t.Variant,
			fmt.Sprintf("%d/%d", t.SmallBlind, t.BigBlind),
			t.MaxSeats,
			fmt.Sprintf("%d-%d", t.BuyInMin, t.BuyInMax),
		)
	}
	return nil
}
