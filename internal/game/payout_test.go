package game

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDistribute(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		pots      []SidePot
		winners   [][]int
		remainder int
		want      map[int]int
	}{
		{
			name:    "single board",
			pots:    []SidePot{{Amount: 40, EligibleSeats: []int{1, 2}}},
			winners: [][]int{{2}},
			want:    map[int]int{2: 40},
		},
		{
			name:    "split with odd chip to lowest seat",
			pots:    []SidePot{{Amount: 25, EligibleSeats: []int{1, 3}}},
			winners: [][]int{{3, 1}},
			want:    map[int]int{1: 13, 3: 12},
		},
		{
			name:    "two boards different winners",
			pots:    []SidePot{{Amount: 100, EligibleSeats: []int{1, 2}}},
			winners: [][]int{{1}, {2}},
			want:    map[int]int{1: 50, 2: 50},
		},
		{
			name:    "two boards odd chip to board one",
			pots:    []SidePot{{Amount: 101, EligibleSeats: []int{1, 2}}},
			winners: [][]int{{1}, {2}},
			want:    map[int]int{1: 51, 2: 50},
		},
		{
			name:      "three boards remainder to board three",
			pots:      []SidePot{{Amount: 100, EligibleSeats: []int{1, 2, 3}}},
			winners:   [][]int{{1}, {2}, {3}},
			remainder: 2,
			want:      map[int]int{1: 33, 2: 33, 3: 34},
		},
		{
			name:      "three boards two odd chips",
			pots:      []SidePot{{Amount: 101, EligibleSeats: []int{1, 2, 3}}},
			winners:   [][]int{{1}, {2}, {3}},
			remainder: 2,
			want:      map[int]int{1: 33, 2: 33, 3: 35},
		},
		{
			name:      "three boards shared winners",
			pots:      []SidePot{{Amount: 90, EligibleSeats: []int{1, 2, 3}}},
			winners:   [][]int{{1, 2}, {3}, {1}},
			remainder: 2,
			want:      map[int]int{1: 45, 2: 15, 3: 30},
		},
		{
			name: "ineligible winner falls back to eligible seats",
			pots: []SidePot{
				{Amount: 150, EligibleSeats: []int{1, 2, 3}},
				{Amount: 100, EligibleSeats: []int{1, 3}},
			},
			winners: [][]int{{2}},
			want:    map[int]int{1: 50, 2: 150, 3: 50},
		},
		{
			name:    "uncalled top tier returns to its only seat",
			pots:    []SidePot{{Amount: 40, EligibleSeats: []int{1, 2}}, {Amount: 60, EligibleSeats: []int{2}}},
			winners: [][]int{{1}},
			want:    map[int]int{1: 40, 2: 60},
		},
		{
			name:    "no board winners pays eligible seats",
			pots:    []SidePot{{Amount: 30, EligibleSeats: []int{2, 5}}},
			winners: nil,
			want:    map[int]int{2: 15, 5: 15},
		},
		{
			name:    "tier without eligible seats is skipped",
			pots:    []SidePot{{Amount: 10}},
			winners: [][]int{{1}},
			want:    map[int]int{},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got := Distribute(tt.pots, tt.winners, tt.remainder)
			assert.Equal(t, tt.want, got)

			paid, total := 0, 0
			for _, v := range got {
				paid += v
			}
			for _, pot := range tt.pots {
				if len(pot.EligibleSeats) > 0 {
					total += pot.Amount
				}
			}
			assert.Equal(t, total, paid)
		})
	}
}
