package game

import (
	"io"
	"slices"
	"testing"

	"github.com/charmbracelet/log"
	"github.com/coder/quartz"
	"github.com/stretchr/testify/require"

	"github.com/lox/multipoker/poker"
)

// stackedDeck deals cards in exactly the given order.
type stackedDeck []poker.Card

func (d stackedDeck) Shuffled(int) []poker.Card {
	return slices.Clone(d)
}

func cards(s string) []poker.Card {
	return poker.MustParseCards(s)
}

func newTestEngine(t *testing.T) (*Engine, *quartz.Mock) {
	t.Helper()
	clock := quartz.NewMock(t)
	logger := log.NewWithOptions(io.Discard, log.Options{Level: log.DebugLevel})
	return NewEngine(WithClock(clock), WithLogger(logger)), clock
}

// seated returns players in seats 1..n with the given stacks.
func seated(stacks ...int) []PlayerSnapshot {
	players := make([]PlayerSnapshot, len(stacks))
	for i, chips := range stacks {
		players[i] = PlayerSnapshot{Seat: i + 1, PlayerID: string(rune('a' + i)), Chips: chips}
	}
	return players
}

func room(v Variant) RoomConfig {
	return RoomConfig{Name: "test", Variant: v, SmallBlind: 5, BigBlind: 10, MaxSeats: 9, BuyInMin: 500, BuyInMax: 5000}
}

// table drives one hand through the engine, merging every outcome back into
// a full snapshot the way a caller would.
type table struct {
	t      *testing.T
	engine *Engine
	ctx    HandContext
	start  int
	last   *Outcome
}

func dealTable(t *testing.T, r RoomConfig, players []PlayerSnapshot, prevButton int, deck DeckSource) *table {
	t.Helper()
	engine, _ := newTestEngine(t)
	deal, err := engine.Deal(DealRequest{Room: r, Players: players, PreviousButton: prevButton, Deck: deck})
	require.NoError(t, err)

	start := 0
	for _, p := range players {
		start += p.Chips
	}
	return &table{
		t:      t,
		engine: engine,
		start:  start,
		ctx: HandContext{
			Room:      r,
			State:     deal.State,
			Players:   MergePlayers(players, deal.UpdatedPlayers),
			HoleCards: deal.HoleCards,
		},
	}
}

// contextTable wraps a hand built by hand rather than dealt.
func contextTable(t *testing.T, ctx HandContext) *table {
	t.Helper()
	engine, _ := newTestEngine(t)
	start := 0
	for _, p := range ctx.Players {
		start += p.Chips + p.TotalInvested
	}
	return &table{t: t, engine: engine, ctx: ctx, start: start}
}

func (tb *table) act(seat int, action ActionType, amount int) *Outcome {
	tb.t.Helper()
	out, err := tb.engine.Apply(tb.ctx, seat, action, amount)
	require.NoError(tb.t, err, "seat %d %s %d", seat, action, amount)
	tb.ctx.State = out.State
	tb.ctx.Players = MergePlayers(tb.ctx.Players, out.UpdatedPlayers)
	tb.last = out
	return out
}

func (tb *table) tryAct(seat int, action ActionType, amount int) error {
	tb.t.Helper()
	out, err := tb.engine.Apply(tb.ctx, seat, action, amount)
	if err == nil {
		tb.t.Fatalf("expected error for seat %d %s %d, got outcome in phase %s", seat, action, amount, out.State.Phase)
	}
	return err
}

func (tb *table) submit(seat int, pc PartitionCards) *PartitionOutcome {
	tb.t.Helper()
	out, err := tb.engine.SubmitPartition(tb.ctx, seat, pc)
	require.NoError(tb.t, err, "seat %d partition", seat)
	tb.ctx.State = out.State
	tb.ctx.Players = MergePlayers(tb.ctx.Players, out.UpdatedPlayers)
	return out
}

func (tb *table) player(seat int) PlayerSnapshot {
	tb.t.Helper()
	for _, p := range tb.ctx.Players {
		if p.Seat == seat {
			return p
		}
	}
	tb.t.Fatalf("seat %d not found", seat)
	return PlayerSnapshot{}
}

// checkDown checks every remaining street until the hand leaves betting.
func (tb *table) checkDown() {
	tb.t.Helper()
	for tb.ctx.State.CurrentActor != 0 {
		tb.act(tb.ctx.State.CurrentActor, Check, 0)
	}
}

// chips returns the sum of stacks plus chips committed this hand.
func (tb *table) chips() int {
	total := 0
	for _, p := range tb.ctx.Players {
		total += p.Chips + p.TotalInvested
	}
	return total
}

func (tb *table) stacks() int {
	total := 0
	for _, p := range tb.ctx.Players {
		total += p.Chips
	}
	return total
}

func (tb *table) invested() int {
	total := 0
	for _, p := range tb.ctx.Players {
		total += p.TotalInvested
	}
	return total
}

// cloneContext deep-copies a context so tests can prove calls left it alone.
func cloneContext(ctx HandContext) HandContext {
	c := ctx
	c.State = ctx.State.clone()
	c.Players = slices.Clone(ctx.Players)
	c.HoleCards = make(map[int][]poker.Card, len(ctx.HoleCards))
	for seat, hole := range ctx.HoleCards {
		c.HoleCards[seat] = slices.Clone(hole)
	}
	return c
}

// flopContext is a three-handed hold'em hand on a fresh flop with nothing in
// the pot and the button on seat 3.
func flopContext(stacks ...int) HandContext {
	players := seated(stacks...)
	for i := range players {
		players[i].InHand = true
	}
	hole := map[int][]poker.Card{
		1: cards("Ah Ad"),
		2: cards("Kh Kd"),
		3: cards("Qh Qd"),
	}
	return HandContext{
		Room: room(HoldEm),
		State: GameState{
			Variant:      HoldEm,
			Phase:        Flop,
			ButtonSeat:   3,
			MinRaise:     10,
			CurrentActor: 1,
			SeatsToAct:   []int{1, 2, 3},
			SeatsActed:   []int{},
			Boards:       [][]poker.Card{cards("2c 7d 9s Jc 4h")},
			Revealed:     3,
		},
		Players:   players,
		HoleCards: hole,
	}
}
