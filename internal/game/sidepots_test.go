package game

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCalculateSidePots(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		players []PlayerSnapshot
		want    []SidePot
	}{
		{
			name:    "nothing invested",
			players: seated(100, 100),
			want:    nil,
		},
		{
			name: "single level",
			players: []PlayerSnapshot{
				{Seat: 1, TotalInvested: 20, InHand: true},
				{Seat: 2, TotalInvested: 20, InHand: true},
				{Seat: 3, TotalInvested: 20, InHand: true},
			},
			want: []SidePot{{Amount: 60, EligibleSeats: []int{1, 2, 3}}},
		},
		{
			name: "all-in tiers",
			players: []PlayerSnapshot{
				{Seat: 3, TotalInvested: 100, InHand: true},
				{Seat: 1, TotalInvested: 100, InHand: true, AllIn: true},
				{Seat: 2, TotalInvested: 50, InHand: true, AllIn: true},
			},
			want: []SidePot{
				{Amount: 150, EligibleSeats: []int{1, 2, 3}},
				{Amount: 100, EligibleSeats: []int{1, 3}},
			},
		},
		{
			name: "folded chips stay in the pot",
			players: []PlayerSnapshot{
				{Seat: 1, TotalInvested: 50, InHand: true, Folded: true},
				{Seat: 2, TotalInvested: 100, InHand: true},
				{Seat: 3, TotalInvested: 100, InHand: true},
			},
			want: []SidePot{{Amount: 250, EligibleSeats: []int{2, 3}}},
		},
		{
			name: "folded between levels",
			players: []PlayerSnapshot{
				{Seat: 1, TotalInvested: 60, InHand: true, Folded: true},
				{Seat: 2, TotalInvested: 40, InHand: true, AllIn: true},
				{Seat: 3, TotalInvested: 100, InHand: true},
				{Seat: 4, TotalInvested: 100, InHand: true},
			},
			want: []SidePot{
				{Amount: 160, EligibleSeats: []int{2, 3, 4}},
				{Amount: 140, EligibleSeats: []int{3, 4}},
			},
		},
		{
			name: "dead money above the top level",
			players: []PlayerSnapshot{
				{Seat: 1, TotalInvested: 200, InHand: true, Folded: true},
				{Seat: 2, TotalInvested: 50, InHand: true, AllIn: true},
				{Seat: 3, TotalInvested: 50, InHand: true},
			},
			want: []SidePot{{Amount: 300, EligibleSeats: []int{2, 3}}},
		},
		{
			name: "inactive players are never eligible",
			players: []PlayerSnapshot{
				{Seat: 1, TotalInvested: 10, InHand: true, SittingOut: true},
				{Seat: 2, TotalInvested: 10, InHand: true},
				{Seat: 3, TotalInvested: 10, InHand: true},
				{Seat: 4, Spectating: true},
			},
			want: []SidePot{{Amount: 30, EligibleSeats: []int{2, 3}}},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got := CalculateSidePots(tt.players)
			assert.Equal(t, tt.want, got)

			invested, total := 0, 0
			for _, p := range tt.players {
				invested += p.TotalInvested
			}
			for i, pot := range got {
				total += pot.Amount
				if i > 0 {
					assert.LessOrEqual(t, len(pot.EligibleSeats), len(got[i-1].EligibleSeats))
				}
			}
			if got != nil {
				assert.Equal(t, invested, total)
			}
		})
	}
}
