package simulator

import (
	"fmt"
	rand "math/rand/v2"
	"slices"

	"github.com/lox/multipoker/internal/game"
	"github.com/lox/multipoker/poker"
)

// Policy picks an action for the seat to act. It sees the full hand context,
// so policies must only read the acting seat's own hole cards.
type Policy interface {
	Decide(rng *rand.Rand, ctx game.HandContext, seat int) (game.ActionType, int)
}

// PolicyFunc adapts a function to Policy.
type PolicyFunc func(rng *rand.Rand, ctx game.HandContext, seat int) (game.ActionType, int)

func (f PolicyFunc) Decide(rng *rand.Rand, ctx game.HandContext, seat int) (game.ActionType, int) {
	return f(rng, ctx, seat)
}

var policies = map[string]Policy{
	"random": PolicyFunc(randomPolicy),
	"call":   PolicyFunc(callPolicy),
	"fold":   PolicyFunc(foldPolicy),
	"maniac": PolicyFunc(maniacPolicy),
}

// mixedPolicies is the fixed rotation used for "mixed" tables.
var mixedPolicies = []string{"random", "call", "maniac", "random", "fold"}

// PolicyNames lists the accepted policy names.
func PolicyNames() []string {
	names := []string{"mixed"}
	for name := range policies {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}

// policiesFor assigns a policy to each of n seats.
func policiesFor(name string, n int) ([]Policy, error) {
	out := make([]Policy, n)
	for i := range out {
		pick := name
		if name == "mixed" {
			pick = mixedPolicies[i%len(mixedPolicies)]
		}
		p, ok := policies[pick]
		if !ok {
			return nil, fmt.Errorf("unknown policy %q", name)
		}
		out[i] = p
	}
	return out, nil
}

// randomPolicy picks uniformly among the legal actions, but never folds when
// it could check and only shoves one time in eight.
func randomPolicy(rng *rand.Rand, ctx game.HandContext, seat int) (game.ActionType, int) {
	actions := game.ValidActions(ctx, seat)
	if slices.Contains(actions, game.Check) {
		actions = slices.DeleteFunc(actions, func(a game.ActionType) bool { return a == game.Fold })
	}
	if len(actions) > 1 && rng.IntN(8) != 0 {
		actions = slices.DeleteFunc(actions, func(a game.ActionType) bool { return a == game.AllIn })
	}
	action := actions[rng.IntN(len(actions))]
	return action, sizeFor(rng, ctx.State, action)
}

func callPolicy(_ *rand.Rand, ctx game.HandContext, seat int) (game.ActionType, int) {
	return prefer(game.ValidActions(ctx, seat), game.Check, game.Call, game.AllIn), 0
}

func foldPolicy(_ *rand.Rand, ctx game.HandContext, seat int) (game.ActionType, int) {
	return prefer(game.ValidActions(ctx, seat), game.Check, game.Fold), 0
}

func maniacPolicy(rng *rand.Rand, ctx game.HandContext, seat int) (game.ActionType, int) {
	action := prefer(game.ValidActions(ctx, seat), game.Raise, game.Bet, game.AllIn)
	return action, sizeFor(rng, ctx.State, action)
}

// prefer returns the first wanted action that is legal, falling back to the
// first legal action.
func prefer(actions []game.ActionType, wanted ...game.ActionType) game.ActionType {
	for _, w := range wanted {
		if slices.Contains(actions, w) {
			return w
		}
	}
	return actions[0]
}

// sizeFor returns a bet or raise target between one and three minimum raises.
func sizeFor(rng *rand.Rand, s game.GameState, action game.ActionType) int {
	switch action {
	case game.Bet:
		return s.MinRaise * (1 + rng.IntN(3))
	case game.Raise:
		return s.CurrentBet + s.MinRaise*(1+rng.IntN(2))
	default:
		return 0
	}
}

// randomPartition splits a 3-2-1 hand with a random permutation.
func randomPartition(rng *rand.Rand, hole []poker.Card) game.PartitionCards {
	perm := rng.Perm(len(hole))
	return game.PartitionCards{
		Three: [3]poker.Card{hole[perm[0]], hole[perm[1]], hole[perm[2]]},
		Two:   [2]poker.Card{hole[perm[3]], hole[perm[4]]},
		One:   [1]poker.Card{hole[perm[5]]},
	}
}
