package replay

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/coder/quartz"
	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lox/multipoker/internal/game"
	"github.com/lox/multipoker/poker"
)

const foldScript = `
seed            = 7
previous_button = 1

room "main" {
  small_blind = 5
  big_blind   = 10
}

player "alice" {
  seat  = 1
  chips = 1000
}

player "bob" {
  seat  = 2
  chips = 1000
}

action {
  seat = 1
  type = "fold"
}
`

const sidePotScript = `
seed            = 11
previous_button = 2

room "main" {
  small_blind = 5
  big_blind   = 10
}

player "alice" {
  seat  = 1
  chips = 100
}

player "bob" {
  seat  = 2
  chips = 50
}

player "carol" {
  seat  = 3
  chips = 200
}

action {
  seat = 1
  type = "all_in"
}

action {
  seat = 2
  type = "all_in"
}

action {
  seat = 3
  type = "call"
}
`

const threeTwoOneScript = `
seed = 321

room "threes" {
  variant     = "321"
  small_blind = 5
  big_blind   = 10
}

player "alice" {
  seat  = 1
  chips = 500
}

player "bob" {
  seat  = 2
  chips = 500
}

action {
  seat = 2
  type = "bet"
  amount = 20
}

action {
  seat = 1
  type = "call"
}

action {
  seat = 2
  type = "check"
}

action {
  seat = 1
  type = "check"
}

action {
  seat = 2
  type = "check"
}

action {
  seat = 1
  type = "check"
}
`

func newRunner(t *testing.T) *Runner {
	t.Helper()
	return NewRunner(game.NewEngine(game.WithClock(quartz.NewMock(t))), nil)
}

func run(t *testing.T, src string) *Result {
	t.Helper()
	script, err := Parse([]byte(src), "test.hcl")
	require.NoError(t, err)
	res, err := newRunner(t).Run(context.Background(), script)
	require.NoError(t, err)
	return res
}

func TestRunFold(t *testing.T) {
	t.Parallel()
	res := run(t, foldScript)

	assert.True(t, res.Completed())
	assert.Equal(t, 2, res.State.ButtonSeat)
	assert.Equal(t, []int{2}, res.AutoWinners)
	assert.Equal(t, 15, res.PotAwarded)
	assert.Equal(t, map[int]int{1: -10, 2: 10}, res.Net())
	assert.Equal(t, 1, res.ActionsApplied)
}

func TestRunSidePots(t *testing.T) {
	t.Parallel()
	res := run(t, sidePotScript)

	require.True(t, res.Completed())
	assert.Equal(t, 250, res.State.Pot)
	assert.Equal(t, []game.SidePot{
		{Amount: 150, EligibleSeats: []int{1, 2, 3}},
		{Amount: 100, EligibleSeats: []int{1, 3}},
	}, res.State.SidePots)
	require.NotNil(t, res.Showdown)

	total := 0
	for _, v := range res.Net() {
		total += v
	}
	assert.Zero(t, total)
	assert.NotEmpty(t, res.AutoWinners)
}

func TestRunThreeTwoOnePartitions(t *testing.T) {
	t.Parallel()

	// Without partitions the hand waits in the partition phase.
	res := run(t, threeTwoOneScript)
	require.Equal(t, game.Partition, res.State.Phase)
	assert.False(t, res.Completed())
	assert.Equal(t, 60, res.State.Pot)

	var b strings.Builder
	b.WriteString(threeTwoOneScript)
	for _, seat := range []int{1, 2} {
		hole := res.HoleCards[seat]
		fmt.Fprintf(&b, "\npartition {\n  seat = %d\n  three = %q\n  two = %q\n  one = %q\n}\n",
			seat, poker.FormatCards(hole[:3]), poker.FormatCards(hole[3:5]), poker.FormatCards(hole[5:]))
	}

	res = run(t, b.String())
	require.True(t, res.Completed())
	require.NotNil(t, res.Showdown)
	assert.Len(t, res.Showdown.BoardWinners, 3)
	assert.Equal(t, 60, res.PotAwarded)
	assert.NotEmpty(t, res.AutoWinners)

	paid := 0
	for _, v := range res.Showdown.Payouts {
		paid += v
	}
	assert.Equal(t, 60, paid)
}

func TestRunIsDeterministic(t *testing.T) {
	t.Parallel()

	ignoreTime := cmpopts.IgnoreFields(game.ActionRecord{}, "Timestamp")
	for _, src := range []string{foldScript, sidePotScript, threeTwoOneScript} {
		assert.Empty(t, cmp.Diff(run(t, src), run(t, src), ignoreTime))
	}
}

func TestRunRejectedAction(t *testing.T) {
	t.Parallel()

	src := strings.Replace(foldScript, "seat = 1\n  type = \"fold\"", "seat = 2\n  type = \"check\"", 1)
	script, err := Parse([]byte(src), "bad.hcl")
	require.NoError(t, err)

	_, err = newRunner(t).Run(context.Background(), script)
	require.ErrorIs(t, err, game.ErrNotYourTurn)
	assert.ErrorContains(t, err, "action 1 (seat 2 check)")
}

func TestRunCancelled(t *testing.T) {
	t.Parallel()

	script, err := Parse([]byte(foldScript), "fold.hcl")
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err = newRunner(t).Run(ctx, script)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestLoad(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "hand.hcl")
	require.NoError(t, os.WriteFile(path, []byte(foldScript), 0o600))

	script, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, int64(7), script.Seed)
	assert.Equal(t, "holdem", script.Room.Variant)
	assert.Equal(t, 9, script.Room.MaxSeats)
	assert.Equal(t, []PlayerSpec{{ID: "alice", Seat: 1, Chips: 1000}, {ID: "bob", Seat: 2, Chips: 1000}}, script.Players)

	_, err = Load(filepath.Join(t.TempDir(), "missing.hcl"))
	assert.Error(t, err)
}

func TestScriptValidation(t *testing.T) {
	t.Parallel()

	room := `
seed = 1
room "main" {
  small_blind = 5
  big_blind   = 10
  max_seats   = 4
}
`
	alice := "player \"alice\" {\n  seat = 1\n  chips = 100\n}\n"
	bob := "player \"bob\" {\n  seat = 2\n  chips = 100\n}\n"

	tests := []struct {
		name string
		src  string
		want string
	}{
		{name: "one player", src: room + alice, want: "at least two players"},
		{name: "shared seat", src: room + alice + strings.Replace(bob, "seat = 2", "seat = 1", 1), want: "already taken"},
		{name: "seat out of range", src: room + alice + strings.Replace(bob, "seat = 2", "seat = 5", 1), want: "outside 1..4"},
		{name: "unknown action", src: room + alice + bob + "action {\n  seat = 1\n  type = \"shove\"\n}\n", want: "action 1"},
		{name: "bad partition", src: room + alice + bob + "partition {\n  seat = 1\n  three = \"As Kd\"\n  two = \"Qc Jc\"\n  one = \"2h\"\n}\n", want: "partition 1"},
		{name: "bad card text", src: room + alice + bob + "partition {\n  seat = 1\n  three = \"As Kd 1x\"\n  two = \"Qc Jc\"\n  one = \"2h\"\n}\n", want: "partition 1"},
		{name: "bad room", src: strings.Replace(room, "big_blind   = 10", "big_blind   = 1", 1) + alice + bob, want: "big blind"},
		{name: "missing seed", src: strings.Replace(room, "seed = 1", "", 1) + alice + bob, want: "failed to decode script"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			_, err := Parse([]byte(tt.src), tt.name+".hcl")
			assert.ErrorContains(t, err, tt.want)
		})
	}
}
