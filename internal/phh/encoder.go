package phh

import (
	"bytes"
	"fmt"
	"io"

	"github.com/BurntSushi/toml"

	"github.com/lox/multipoker/internal/game"
)

// Encode writes the hand history to the provided writer in PHH TOML format.
func Encode(w io.Writer, hand *HandHistory) error {
	if hand == nil {
		return fmt.Errorf("phh: hand history is nil")
	}

	enc := toml.NewEncoder(w)
	// Use tabs for arrays to match human expectations
	enc.Indent = "\t"
	return enc.Encode(hand)
}

// EncodeToBytes encodes and returns the result as bytes.
func EncodeToBytes(hand *HandHistory) ([]byte, error) {
	var buf bytes.Buffer
	if err := Encode(&buf, hand); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// Decode reads a hand history back, mainly for round-trip checks.
func Decode(r io.Reader) (*HandHistory, error) {
	var hand HandHistory
	if _, err := toml.NewDecoder(r).Decode(&hand); err != nil {
		return nil, fmt.Errorf("phh: %w", err)
	}
	return &hand, nil
}

// FormatAction converts an engine action to a PHH action string for the
// 1-based player index. streetTotal is the player's street bet after the
// action and currentBet the table bet before it. Forced bets return false
// because they are captured in the antes and blinds arrays.
func FormatAction(player int, action game.ActionType, streetTotal, currentBet int) (string, bool) {
	p := fmt.Sprintf("p%d", player)
	switch action {
	case game.Fold:
		return p + " f", true
	case game.Check, game.Call:
		return p + " cc", true
	case game.Bet, game.Raise:
		if streetTotal <= 0 {
			return "", false
		}
		return fmt.Sprintf("%s cbr %d", p, streetTotal), true
	case game.AllIn:
		if streetTotal <= currentBet {
			return p + " cc", true
		}
		return fmt.Sprintf("%s cbr %d", p, streetTotal), true
	case game.PostSmallBlind, game.PostBigBlind, game.PostAnte:
		return "", false
	default:
		return fmt.Sprintf("# %s %s %d", p, action, streetTotal), true
	}
}
