package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lox/multipoker/internal/game"
)

const rooms = `
table "main" {
  small_blind = 5
  big_blind   = 10
}

table "bombs" {
  variant     = "plo_bomb"
  small_blind = 25
  big_blind   = 50
  max_seats   = 6
  buy_in_min  = 1000
  buy_in_max  = 10000
}

table "threes" {
  variant     = "321"
  small_blind = 1
  big_blind   = 2
}
`

func TestLoadAppliesDefaults(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "rooms.hcl")
	require.NoError(t, os.WriteFile(path, []byte(rooms), 0o600))

	cfg, err := Load(path)
	require.NoError(t, err)
	require.NoError(t, cfg.Validate())
	require.Len(t, cfg.Tables, 3)

	main := cfg.Table("main")
	require.NotNil(t, main)
	assert.Equal(t, "holdem", main.Variant)
	assert.Equal(t, DefaultMaxSeats, main.MaxSeats)
	assert.Equal(t, 500, main.BuyInMin)
	assert.Equal(t, 5000, main.BuyInMax)

	bombs := cfg.Table("bombs")
	require.NotNil(t, bombs)
	assert.Equal(t, 6, bombs.MaxSeats)
	assert.Equal(t, 1000, bombs.BuyInMin)

	room, err := bombs.Room()
	require.NoError(t, err)
	assert.Equal(t, game.RoomConfig{
		Name:       "bombs",
		Variant:    game.PLOBombPot,
		SmallBlind: 25,
		BigBlind:   50,
		MaxSeats:   6,
		BuyInMin:   1000,
		BuyInMax:   10000,
	}, room)
	assert.Equal(t, 50, room.Ante())

	assert.Nil(t, cfg.Table("missing"))
}

func TestLoadMissingFileUsesDefault(t *testing.T) {
	t.Parallel()

	cfg, err := Load(filepath.Join(t.TempDir(), "nope.hcl"))
	require.NoError(t, err)
	require.NoError(t, cfg.Validate())
	assert.Equal(t, Default(), cfg)
	assert.Equal(t, "main", cfg.Tables[0].Name)
}

func TestParseErrors(t *testing.T) {
	t.Parallel()

	_, err := Parse([]byte(`table "x" {`), "broken.hcl")
	assert.ErrorContains(t, err, "failed to parse HCL")

	_, err = Parse([]byte(`table "x" { small_blind = 1 }`), "missing.hcl")
	assert.ErrorContains(t, err, "failed to decode HCL")
}

func TestValidate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		src  string
		want string
	}{
		{name: "no tables", src: ``, want: "at least one table"},
		{name: "unknown variant", src: `table "a" {
  variant = "stud"
  small_blind = 1
  big_blind = 2
}`, want: "unknown variant"},
		{name: "small blind", src: `table "a" {
  small_blind = 0
  big_blind = 2
}`, want: "small blind must be positive"},
		{name: "big blind", src: `table "a" {
  small_blind = 5
  big_blind = 5
}`, want: "big blind must be greater"},
		{name: "seats", src: `table "a" {
  small_blind = 1
  big_blind = 2
  max_seats = 11
}`, want: "max seats must be between"},
		{name: "buy-in", src: `table "a" {
  small_blind = 1
  big_blind = 2
  buy_in_min = 400
  buy_in_max = 400
}`, want: "buy-in minimum"},
		{name: "duplicate", src: `table "a" {
  small_blind = 1
  big_blind = 2
}
table "a" {
  small_blind = 1
  big_blind = 2
}`, want: "defined more than once"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			cfg, err := Parse([]byte(tt.src), tt.name+".hcl")
			require.NoError(t, err)
			assert.ErrorContains(t, cfg.Validate(), tt.want)
		})
	}
}
