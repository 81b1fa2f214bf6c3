package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/lox/multipoker/poker"
)

var (
	headerStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("15"))

	labelStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("12"))

	winStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("10"))

	lossStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("9"))

	redSuit = lipgloss.NewStyle().
		Foreground(lipgloss.Color("9"))

	blackSuit = lipgloss.NewStyle().
			Foreground(lipgloss.Color("15"))
)

// renderCards colours hearts and diamonds red.
func renderCards(cards []poker.Card) string {
	if len(cards) == 0 {
		return "-"
	}
	parts := make([]string, len(cards))
	for i, c := range cards {
		style := blackSuit
		if c.Valid() && (c.Suit() == poker.Hearts || c.Suit() == poker.Diamonds) {
			style = redSuit
		}
		parts[i] = style.Render(c.String())
	}
	return strings.Join(parts, " ")
}

func renderChips(delta int) string {
	switch {
	case delta > 0:
		return winStyle.Render(fmt.Sprintf("%+d", delta))
	case delta < 0:
		return lossStyle.Render(strconv.Itoa(delta))
	default:
		return "0"
	}
}
