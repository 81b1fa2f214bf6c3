package game

import (
	"fmt"
	"slices"
	"time"

	"github.com/lox/multipoker/poker"
)

// Phase is the stage of a hand.
type Phase int

const (
	Preflop Phase = iota
	Flop
	Turn
	River
	Partition
	Showdown
	Complete
)

var phaseNames = [...]string{"preflop", "flop", "turn", "river", "partition", "showdown", "complete"}

func (p Phase) String() string {
	if p < 0 || int(p) >= len(phaseNames) {
		return fmt.Sprintf("phase(%d)", int(p))
	}
	return phaseNames[p]
}

func (p Phase) MarshalText() ([]byte, error) {
	return []byte(p.String()), nil
}

func (p *Phase) UnmarshalText(text []byte) error {
	for i, name := range phaseNames {
		if name == string(text) {
			*p = Phase(i)
			return nil
		}
	}
	return fmt.Errorf("unknown phase %q", text)
}

// ActionType is a player action or a forced bet recorded in the history.
type ActionType int

const (
	Fold ActionType = iota
	Check
	Call
	Bet
	Raise
	AllIn
	PostSmallBlind
	PostBigBlind
	PostAnte
)

var actionNames = [...]string{"fold", "check", "call", "bet", "raise", "all_in", "post_small_blind", "post_big_blind", "post_ante"}

func (a ActionType) String() string {
	if a < 0 || int(a) >= len(actionNames) {
		return fmt.Sprintf("action(%d)", int(a))
	}
	return actionNames[a]
}

// ParseAction maps a wire name to an ActionType. Forced bets are not player
// actions and are rejected.
func ParseAction(s string) (ActionType, error) {
	for i, name := range actionNames[:AllIn+1] {
		if name == s {
			return ActionType(i), nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownAction, s)
}

func (a ActionType) MarshalText() ([]byte, error) {
	return []byte(a.String()), nil
}

func (a *ActionType) UnmarshalText(text []byte) error {
	for i, name := range actionNames {
		if name == string(text) {
			*a = ActionType(i)
			return nil
		}
	}
	return fmt.Errorf("%w: %q", ErrUnknownAction, text)
}

// RoomConfig is the read-only table configuration for a hand.
type RoomConfig struct {
	Name       string
	Variant    Variant
	SmallBlind int
	BigBlind   int
	MaxSeats   int
	BuyInMin   int
	BuyInMax   int
}

// Ante is the forced contribution in ante variants; it equals the big blind.
func (rc RoomConfig) Ante() int {
	return rc.BigBlind
}

// PlayerSnapshot is one seat's state. Seats are numbered from 1; seat 0 means
// nobody.
type PlayerSnapshot struct {
	Seat          int
	PlayerID      string
	Chips         int
	Bet           int // chips committed on the current street
	TotalInvested int // chips committed this hand, forced bets included
	InHand        bool
	Folded        bool
	AllIn         bool
	SittingOut    bool
	Spectating    bool
	Waiting       bool
}

func (p *PlayerSnapshot) inactive() bool {
	return p.Spectating || p.SittingOut || p.Waiting
}

// contesting reports whether the seat can still win chips this hand.
func (p *PlayerSnapshot) contesting() bool {
	return p.InHand && !p.Folded && !p.inactive()
}

func (p *PlayerSnapshot) canAct() bool {
	return p.contesting() && !p.AllIn
}

// SidePot is one tier of the pot and the seats that can win it.
type SidePot struct {
	Amount        int
	EligibleSeats []int
}

// ActionRecord is one entry in a hand's append-only history.
type ActionRecord struct {
	Seat   int
	Action ActionType
	// Amount is the number of chips the action moved into the pot.
	Amount int
	// StreetTotal is the seat's street bet after the action.
	StreetTotal int
	Phase       Phase
	Timestamp   time.Time
}

// PartitionCards is a 3-2-1 split of a player's six cards. Group Three plays
// on board 1, Two on board 2 and One on board 3.
type PartitionCards struct {
	Three [3]poker.Card
	Two   [2]poker.Card
	One   [1]poker.Card
}

// Group returns the hole cards assigned to the given board index.
func (pc PartitionCards) Group(board int) []poker.Card {
	switch board {
	case 0:
		return pc.Three[:]
	case 1:
		return pc.Two[:]
	case 2:
		return pc.One[:]
	default:
		return nil
	}
}

func (pc PartitionCards) all() []poker.Card {
	out := make([]poker.Card, 0, 6)
	out = append(out, pc.Three[:]...)
	out = append(out, pc.Two[:]...)
	return append(out, pc.One[:]...)
}

// GameState is the betting and board state of one live hand.
type GameState struct {
	Variant       Variant
	Phase         Phase
	ButtonSeat    int
	Pot           int
	CurrentBet    int
	MinRaise      int
	CurrentActor  int
	LastAggressor int
	LastRaise     int
	SeatsToAct    []int
	SeatsActed    []int
	// CallOnlySeats already acted this street and were not reopened by an
	// all-in short of a full raise; they may only call or fold.
	CallOnlySeats []int
	// Boards holds every dealt community card; Revealed says how many of each
	// board are face up.
	Boards       [][]poker.Card
	Revealed     int
	SidePots     []SidePot
	History      []ActionRecord
	Partitions   map[int]PartitionCards
	UsesTwoDecks bool
	// Completed guards against paying out a hand twice.
	Completed bool
}

// RevealedBoards returns the face-up prefix of every board.
func (s GameState) RevealedBoards() [][]poker.Card {
	out := make([][]poker.Card, len(s.Boards))
	for i, board := range s.Boards {
		n := min(s.Revealed, len(board))
		out[i] = slices.Clone(board[:n])
	}
	return out
}

func (s GameState) clone() GameState {
	c := s
	c.SeatsToAct = slices.Clone(s.SeatsToAct)
	c.SeatsActed = slices.Clone(s.SeatsActed)
	c.CallOnlySeats = slices.Clone(s.CallOnlySeats)
	c.Boards = make([][]poker.Card, len(s.Boards))
	for i, b := range s.Boards {
		c.Boards[i] = slices.Clone(b)
	}
	c.SidePots = make([]SidePot, len(s.SidePots))
	for i, sp := range s.SidePots {
		c.SidePots[i] = SidePot{Amount: sp.Amount, EligibleSeats: slices.Clone(sp.EligibleSeats)}
	}
	c.History = slices.Clone(s.History)
	if s.Partitions != nil {
		c.Partitions = make(map[int]PartitionCards, len(s.Partitions))
		for seat, pc := range s.Partitions {
			c.Partitions[seat] = pc
		}
	}
	return c
}

// HandContext is the complete snapshot an engine call works from.
type HandContext struct {
	Room      RoomConfig
	State     GameState
	Players   []PlayerSnapshot
	HoleCards map[int][]poker.Card
}

// SeatHand is a seat's best hand on one board at showdown.
type SeatHand struct {
	Board       int
	Rank        poker.HandRank
	Cards       []poker.Card
	Description string
}

// ShowdownResult reports how a hand was decided at showdown.
type ShowdownResult struct {
	// BoardWinners lists the tied-best seats on each board, ascending.
	BoardWinners [][]int
	Hands        map[int][]SeatHand
	Payouts      map[int]int
}

// Outcome is the result of an accepted action.
type Outcome struct {
	State          GameState
	UpdatedPlayers []PlayerSnapshot
	HandCompleted  bool
	AutoWinners    []int
	PotAwarded     int
	Showdown       *ShowdownResult
}
