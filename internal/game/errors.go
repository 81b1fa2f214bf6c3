package game

import "errors"

// Rule violations. Each leaves the hand exactly as it was; callers report
// them to the acting client.
var (
	ErrNotYourTurn               = errors.New("not your turn")
	ErrSeatNotFound              = errors.New("seat not found")
	ErrPlayerCannotAct           = errors.New("player cannot act")
	ErrCannotCheckFacingBet      = errors.New("cannot check facing a bet")
	ErrNothingToCall             = errors.New("nothing to call")
	ErrBetNotAllowedAfterBet     = errors.New("cannot bet after a bet, raise instead")
	ErrBetAmountRequired         = errors.New("bet amount required")
	ErrNoBetToRaise              = errors.New("no bet to raise")
	ErrRaiseMustExceedCurrentBet = errors.New("raise must exceed current bet")
	ErrRaiseBelowMinimum         = errors.New("raise below minimum")
	ErrUnknownAction             = errors.New("unknown action")
	ErrPartitionCardMismatch     = errors.New("partition does not match dealt cards")
	ErrPartitionWrongPhase       = errors.New("partition not accepted in this phase")
	ErrPartitionAlreadySubmitted = errors.New("partition already submitted")
	ErrHandAlreadyCompleted      = errors.New("hand already completed")
)

// Deal failures.
var (
	ErrNotEnoughPlayers = errors.New("not enough eligible players")
	ErrInvalidSeating   = errors.New("invalid seating")
	ErrDeckExhausted    = errors.New("deck exhausted")
)
