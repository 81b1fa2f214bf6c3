package phh

import (
	"strings"

	"github.com/lox/multipoker/poker"
)

// FormatCards renders cards run together as PHH expects, e.g. "AhKd".
// Invalid cards are written as "??".
func FormatCards(cards []poker.Card) string {
	var b strings.Builder
	for _, c := range cards {
		b.WriteString(c.String())
	}
	return b.String()
}
