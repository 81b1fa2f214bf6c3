// Package game implements the rules engine for a multi-variant poker table:
// single-board hold'em, double-board PLO bomb pots, single-card Indian poker
// and the three-board 3-2-1 game.
//
// The engine is a set of pure functions over snapshots. A call receives the
// room configuration, every player's state and the hand's GameState, and
// returns a new GameState plus the changed players. Nothing passed in is
// modified and nothing is remembered between calls, so the caller must
// serialize calls per hand and persist each outcome before the next call.
//
// # Basic Usage
//
//	engine := game.NewEngine(game.WithLogger(logger))
//	deal, err := engine.Deal(game.DealRequest{
//	    Room:    room,
//	    Players: players,
//	    Deck:    poker.SeededSource{Seed: seed},
//	})
//	players = game.MergePlayers(players, deal.UpdatedPlayers)
//	ctx := game.HandContext{Room: room, State: deal.State, Players: players, HoleCards: deal.HoleCards}
//	out, err := engine.Apply(ctx, ctx.State.CurrentActor, game.Call, 0)
//
// # Components
//
//   - Dealer (Engine.Deal): button, hole cards, boards, blinds or antes.
//   - Action state machine (Engine.Apply): validation, bookkeeping, street
//     completion and run-outs.
//   - Partition phase (Engine.SubmitPartition): 3-2-1 card splits.
//   - CalculateSidePots and Distribute: pot tiers and per-board payouts.
//
// Variant differences live in Rules, looked up once from the Variant.
package game
