package game

import (
	"fmt"

	"github.com/lox/multipoker/poker"
)

// Variant selects the game played at a room.
type Variant int

const (
	HoldEm Variant = iota
	PLOBombPot
	IndianPoker
	ThreeTwoOne
)

var variantNames = [...]string{"holdem", "plo_bomb", "indian", "321"}

func (v Variant) String() string {
	if v < 0 || int(v) >= len(variantNames) {
		return fmt.Sprintf("variant(%d)", int(v))
	}
	return variantNames[v]
}

// ParseVariant accepts the names produced by Variant.String.
func ParseVariant(s string) (Variant, error) {
	for i, name := range variantNames {
		if name == s {
			return Variant(i), nil
		}
	}
	return 0, fmt.Errorf("unknown variant %q", s)
}

func (v Variant) MarshalText() ([]byte, error) {
	return []byte(v.String()), nil
}

func (v *Variant) UnmarshalText(text []byte) error {
	parsed, err := ParseVariant(string(text))
	if err != nil {
		return err
	}
	*v = parsed
	return nil
}

// ForcedBet is how money enters the pot before any voluntary action.
type ForcedBet int

const (
	Blinds ForcedBet = iota
	Antes
)

// Rules is the per-variant configuration resolved once and threaded through
// dealing, betting and showdown.
type Rules struct {
	Variant       Variant
	HoleCards     int
	Boards        int
	BoardSize     int
	ForcedBet     ForcedBet
	StartPhase    Phase
	InitialReveal int
	Phases        []Phase
	// HoleRules holds one evaluation constraint per board.
	HoleRules []poker.HoleRule
	// RemainderBoard receives the odd chips when a pot splits across boards.
	RemainderBoard int
}

var variantRules = map[Variant]Rules{
	HoldEm: {
		Variant:    HoldEm,
		HoleCards:  2,
		Boards:     1,
		BoardSize:  5,
		ForcedBet:  Blinds,
		StartPhase: Preflop,
		Phases:     []Phase{Preflop, Flop, Turn, River, Showdown, Complete},
		HoleRules:  []poker.HoleRule{poker.HoldemRule},
	},
	PLOBombPot: {
		Variant:       PLOBombPot,
		HoleCards:     4,
		Boards:        2,
		BoardSize:     5,
		ForcedBet:     Antes,
		StartPhase:    Flop,
		InitialReveal: 3,
		Phases:        []Phase{Preflop, Flop, Turn, River, Showdown, Complete},
		HoleRules:     []poker.HoleRule{poker.OmahaRule, poker.OmahaRule},
	},
	IndianPoker: {
		Variant:    IndianPoker,
		HoleCards:  1,
		ForcedBet:  Antes,
		StartPhase: Preflop,
		Phases:     []Phase{Preflop, Showdown, Complete},
	},
	ThreeTwoOne: {
		Variant:        ThreeTwoOne,
		HoleCards:      6,
		Boards:         3,
		BoardSize:      5,
		ForcedBet:      Antes,
		StartPhase:     Flop,
		InitialReveal:  3,
		Phases:         []Phase{Flop, Turn, River, Partition, Showdown, Complete},
		HoleRules:      []poker.HoleRule{poker.ThreeCardRule, poker.HoldemRule, poker.SingleCardRule},
		RemainderBoard: 2,
	},
}

// Rules returns the configuration for v. Unknown variants fall back to hold'em.
func (v Variant) Rules() Rules {
	r, ok := variantRules[v]
	if !ok {
		return variantRules[HoldEm]
	}
	return r
}

// BoardCards is the total number of community cards dealt.
func (r Rules) BoardCards() int {
	return r.Boards * r.BoardSize
}

// PayoutBoards is how many ways each pot is split. Indian poker has no board
// but still pays a single showdown.
func (r Rules) PayoutBoards() int {
	return max(r.Boards, 1)
}

// Next returns the phase after p, or Complete when p is last.
func (r Rules) Next(p Phase) Phase {
	for i, phase := range r.Phases {
		if phase == p && i+1 < len(r.Phases) {
			return r.Phases[i+1]
		}
	}
	return Complete
}

// HasPhase reports whether the variant passes through p.
func (r Rules) HasPhase(p Phase) bool {
	for _, phase := range r.Phases {
		if phase == p {
			return true
		}
	}
	return false
}

// revealFor returns how many cards of each board are face up during p.
func (r Rules) revealFor(p Phase) int {
	if r.Boards == 0 {
		return 0
	}
	switch p {
	case Preflop:
		return 0
	case Flop:
		return 3
	case Turn:
		return 4
	default:
		return r.BoardSize
	}
}
