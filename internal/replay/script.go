// Package replay runs scripted hands through the engine. A script pins the
// deck seed, the room, the seated players and every action, so running it
// twice must produce the same hand.
package replay

import (
	"errors"
	"fmt"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"

	"github.com/lox/multipoker/internal/config"
	"github.com/lox/multipoker/internal/game"
	"github.com/lox/multipoker/poker"
)

// Script is a replayable hand. Partitions are submitted after every action
// has been applied, since the partition phase ends a 321 hand.
type Script struct {
	Seed           int64              `hcl:"seed"`
	PreviousButton int                `hcl:"previous_button,optional"`
	Room           config.TableConfig `hcl:"room,block"`
	Players        []PlayerSpec       `hcl:"player,block"`
	Actions        []ActionSpec       `hcl:"action,block"`
	Partitions     []PartitionSpec    `hcl:"partition,block"`
}

// PlayerSpec seats one player before the deal.
type PlayerSpec struct {
	ID         string `hcl:"id,label"`
	Seat       int    `hcl:"seat"`
	Chips      int    `hcl:"chips"`
	SittingOut bool   `hcl:"sitting_out,optional"`
	Waiting    bool   `hcl:"waiting,optional"`
}

// ActionSpec is one betting action. Amount is the bet size or raise target.
type ActionSpec struct {
	Seat   int    `hcl:"seat"`
	Type   string `hcl:"type"`
	Amount int    `hcl:"amount,optional"`
}

// PartitionSpec is one 321 split, with cards written as in "As Kd 7c".
type PartitionSpec struct {
	Seat  int    `hcl:"seat"`
	Three string `hcl:"three"`
	Two   string `hcl:"two"`
	One   string `hcl:"one"`
}

// Load parses a script file.
func Load(filename string) (*Script, error) {
	parser := hclparse.NewParser()
	file, diags := parser.ParseHCLFile(filename)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to parse script: %s", diags.Error())
	}
	return decode(file.Body)
}

// Parse decodes a script from source bytes.
func Parse(src []byte, filename string) (*Script, error) {
	parser := hclparse.NewParser()
	file, diags := parser.ParseHCL(src, filename)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to parse script: %s", diags.Error())
	}
	return decode(file.Body)
}

func decode(body hcl.Body) (*Script, error) {
	var s Script
	if diags := gohcl.DecodeBody(body, nil, &s); diags.HasErrors() {
		return nil, fmt.Errorf("failed to decode script: %s", diags.Error())
	}
	s.Room.ApplyDefaults()
	if err := s.Validate(); err != nil {
		return nil, err
	}
	return &s, nil
}

// Validate checks the room and seating and that every action and partition
// is well formed. Whether they are legal is up to the engine.
func (s *Script) Validate() error {
	if err := s.Room.Validate(); err != nil {
		return err
	}
	if len(s.Players) < 2 {
		return errors.New("script needs at least two players")
	}
	if len(s.Players) > s.Room.MaxSeats {
		return fmt.Errorf("%d players exceed %d seats", len(s.Players), s.Room.MaxSeats)
	}
	seats := make(map[int]string, len(s.Players))
	for _, p := range s.Players {
		if p.Seat < 1 || p.Seat > s.Room.MaxSeats {
			return fmt.Errorf("player %s: seat %d outside 1..%d", p.ID, p.Seat, s.Room.MaxSeats)
		}
		if other, taken := seats[p.Seat]; taken {
			return fmt.Errorf("player %s: seat %d already taken by %s", p.ID, p.Seat, other)
		}
		seats[p.Seat] = p.ID
		if p.Chips < 0 {
			return fmt.Errorf("player %s: negative chips", p.ID)
		}
	}
	for i, a := range s.Actions {
		if _, err := game.ParseAction(a.Type); err != nil {
			return fmt.Errorf("action %d: %w", i+1, err)
		}
	}
	for i, p := range s.Partitions {
		if _, err := p.Cards(); err != nil {
			return fmt.Errorf("partition %d: %w", i+1, err)
		}
	}
	return nil
}

// Snapshots returns the seated players the script deals to.
func (s *Script) Snapshots() []game.PlayerSnapshot {
	out := make([]game.PlayerSnapshot, 0, len(s.Players))
	for _, p := range s.Players {
		out = append(out, game.PlayerSnapshot{
			Seat:       p.Seat,
			PlayerID:   p.ID,
			Chips:      p.Chips,
			SittingOut: p.SittingOut,
			Waiting:    p.Waiting,
		})
	}
	return out
}

// Cards parses the split into engine form.
func (p PartitionSpec) Cards() (game.PartitionCards, error) {
	var groups [3][]poker.Card
	for i, text := range []string{p.Three, p.Two, p.One} {
		cards, err := poker.ParseCards(text)
		if err != nil {
			return game.PartitionCards{}, err
		}
		groups[i] = cards
	}
	return game.NewPartition(groups[0], groups[1], groups[2])
}
