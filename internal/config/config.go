// Package config loads room definitions from HCL.
package config

import (
	"errors"
	"fmt"
	"os"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"

	"github.com/lox/multipoker/internal/game"
)

const (
	DefaultMaxSeats = 9
	// Buy-in defaults are in big blinds.
	DefaultBuyInMinBB = 50
	DefaultBuyInMaxBB = 500
	MaxSeatsLimit     = 10
)

// Config is the complete room configuration file.
type Config struct {
	Tables []TableConfig `hcl:"table,block"`
}

// TableConfig defines one room.
type TableConfig struct {
	Name       string `hcl:"name,label"`
	Variant    string `hcl:"variant,optional"`
	SmallBlind int    `hcl:"small_blind"`
	BigBlind   int    `hcl:"big_blind"`
	MaxSeats   int    `hcl:"max_seats,optional"`
	BuyInMin   int    `hcl:"buy_in_min,optional"`
	BuyInMax   int    `hcl:"buy_in_max,optional"`
}

// Default returns a single hold'em table used when no file exists.
func Default() *Config {
	cfg := &Config{Tables: []TableConfig{{Name: "main", SmallBlind: 5, BigBlind: 10}}}
	cfg.applyDefaults()
	return cfg
}

// Load reads and decodes an HCL file, applying defaults. A missing file
// yields Default.
func Load(filename string) (*Config, error) {
	if _, err := os.Stat(filename); errors.Is(err, os.ErrNotExist) {
		return Default(), nil
	}

	parser := hclparse.NewParser()
	file, diags := parser.ParseHCLFile(filename)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to parse HCL file: %s", diags.Error())
	}
	return decode(file.Body)
}

// Parse decodes configuration from source bytes; filename is used in
// diagnostics only.
func Parse(src []byte, filename string) (*Config, error) {
	parser := hclparse.NewParser()
	file, diags := parser.ParseHCL(src, filename)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to parse HCL: %s", diags.Error())
	}
	return decode(file.Body)
}

func decode(body hcl.Body) (*Config, error) {
	var cfg Config
	if diags := gohcl.DecodeBody(body, nil, &cfg); diags.HasErrors() {
		return nil, fmt.Errorf("failed to decode HCL: %s", diags.Error())
	}
	cfg.applyDefaults()
	return &cfg, nil
}

func (c *Config) applyDefaults() {
	for i := range c.Tables {
		c.Tables[i].ApplyDefaults()
	}
}

// ApplyDefaults fills in the variant, seat count and buy-in range when unset.
func (t *TableConfig) ApplyDefaults() {
	if t.Variant == "" {
		t.Variant = game.HoldEm.String()
	}
	if t.MaxSeats == 0 {
		t.MaxSeats = DefaultMaxSeats
	}
	if t.BuyInMin == 0 {
		t.BuyInMin = t.BigBlind * DefaultBuyInMinBB
	}
	if t.BuyInMax == 0 {
		t.BuyInMax = t.BigBlind * DefaultBuyInMaxBB
	}
}

// Validate checks every table and rejects duplicate names.
func (c *Config) Validate() error {
	if len(c.Tables) == 0 {
		return errors.New("at least one table must be configured")
	}

	seen := make(map[string]bool, len(c.Tables))
	for _, t := range c.Tables {
		if seen[t.Name] {
			return fmt.Errorf("table %s: defined more than once", t.Name)
		}
		seen[t.Name] = true

		if err := t.Validate(); err != nil {
			return err
		}
	}
	return nil
}

// Validate checks a single table.
func (t TableConfig) Validate() error {
	if _, err := game.ParseVariant(t.Variant); err != nil {
		return fmt.Errorf("table %s: %w", t.Name, err)
	}
	if t.SmallBlind <= 0 {
		return fmt.Errorf("table %s: small blind must be positive", t.Name)
	}
	if t.BigBlind <= t.SmallBlind {
		return fmt.Errorf("table %s: big blind must be greater than small blind", t.Name)
	}
	if t.MaxSeats < 2 || t.MaxSeats > MaxSeatsLimit {
		return fmt.Errorf("table %s: max seats must be between 2 and %d", t.Name, MaxSeatsLimit)
	}
	if t.BuyInMin >= t.BuyInMax {
		return fmt.Errorf("table %s: buy-in minimum must be less than maximum", t.Name)
	}
	return nil
}

// Table returns the named table, or nil.
func (c *Config) Table(name string) *TableConfig {
	for i := range c.Tables {
		if c.Tables[i].Name == name {
			return &c.Tables[i]
		}
	}
	return nil
}

// Room converts the table into the engine's room configuration.
func (t TableConfig) Room() (game.RoomConfig, error) {
	v, err := game.ParseVariant(t.Variant)
	if err != nil {
		return game.RoomConfig{}, fmt.Errorf("table %s: %w", t.Name, err)
	}
	return game.RoomConfig{
		Name:       t.Name,
		Variant:    v,
		SmallBlind: t.SmallBlind,
		BigBlind:   t.BigBlind,
		MaxSeats:   t.MaxSeats,
		BuyInMin:   t.BuyInMin,
		BuyInMax:   t.BuyInMax,
	}, nil
}
