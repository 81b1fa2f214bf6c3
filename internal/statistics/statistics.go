// Package statistics summarises per-seat results over a simulated session.
package statistics

import (
	"fmt"
	"math"
	"slices"
)

// MaxPositions bounds the positions tracked, one per seat a room can hold.
const MaxPositions = 10

// BigPotBB is the pot size, in big blinds, counted as a big pot.
const BigPotBB = 50

// HandResult is one seat's outcome in a single hand.
type HandResult struct {
	NetBB          float64 // chips won or lost, in big blinds
	Seed           int64   // deck seed, for replaying the hand
	Position       int     // seats clockwise from the button; 0 is the button
	WentToShowdown bool
	FinalPotSize   int // chips
	BigBlind       int
	PhaseReached   string
}

// Sample holds the running moments of a series of results in big blinds.
type Sample struct {
	Hands int
	Sum   float64
	SumSq float64
}

func (m *Sample) observe(v float64) {
	m.Hands++
	m.Sum += v
	m.SumSq += v * v
}

// Mean is the average result per hand.
func (m Sample) Mean() float64 {
	if m.Hands == 0 {
		return 0
	}
	return m.Sum / float64(m.Hands)
}

// Variance is the unbiased sample variance.
func (m Sample) Variance() float64 {
	if m.Hands < 2 {
		return 0
	}
	n := float64(m.Hands)
	return (m.SumSq - m.Sum*m.Sum/n) / (n - 1)
}

func (m Sample) StdDev() float64 { return math.Sqrt(m.Variance()) }

func (m Sample) StdError() float64 {
	if m.Hands == 0 {
		return 0
	}
	return m.StdDev() / math.Sqrt(float64(m.Hands))
}

// ConfidenceInterval95 brackets the mean with a normal approximation.
func (m Sample) ConfidenceInterval95() (lo, hi float64) {
	half := 1.96 * m.StdError()
	return m.Mean() - half, m.Mean() + half
}

// Bucket splits results by how the hand ended. NetBB counts losses too.
type Bucket struct {
	Hands int
	Won   int
	NetBB float64
}

func (b *Bucket) observe(v float64) {
	b.Hands++
	b.NetBB += v
	if v > 0 {
		b.Won++
	}
}

// Pots records the largest pot seen and how the seat fared in big ones.
type Pots struct {
	LargestChips int
	LargestBB    float64
	Big          int
	BigNetBB     float64
}

// Statistics is one seat's session summary.
type Statistics struct {
	Sample

	Results    []float64
	Showdown   Bucket
	NoShowdown Bucket
	ByPosition [MaxPositions]Sample
	ByPhase    map[string]int
	Pots       Pots
}

// Add folds one hand into the summary.
func (s *Statistics) Add(r HandResult) {
	s.observe(r.NetBB)
	s.Results = append(s.Results, r.NetBB)

	if r.WentToShowdown {
		s.Showdown.observe(r.NetBB)
	} else {
		s.NoShowdown.observe(r.NetBB)
	}
	if r.Position >= 0 && r.Position < MaxPositions {
		s.ByPosition[r.Position].observe(r.NetBB)
	}
	if r.PhaseReached != "" {
		if s.ByPhase == nil {
			s.ByPhase = make(map[string]int)
		}
		s.ByPhase[r.PhaseReached]++
	}

	var potBB float64
	if r.BigBlind > 0 {
		potBB = float64(r.FinalPotSize) / float64(r.BigBlind)
	}
	if r.FinalPotSize > s.Pots.LargestChips {
		s.Pots.LargestChips, s.Pots.LargestBB = r.FinalPotSize, potBB
	}
	if potBB >= BigPotBB {
		s.Pots.Big++
		s.Pots.BigNetBB += r.NetBB
	}
}

func (s *Statistics) Median() float64 { return s.Percentile(0.5) }

// Percentile interpolates between the two results nearest rank p, 0 ≤ p ≤ 1.
func (s *Statistics) Percentile(p float64) float64 {
	n := len(s.Results)
	if n == 0 {
		return 0
	}
	sorted := slices.Sorted(slices.Values(s.Results))
	rank := p * float64(n-1)
	i := int(rank)
	if i >= n-1 {
		return sorted[n-1]
	}
	frac := rank - float64(i)
	return sorted[i] + frac*(sorted[i+1]-sorted[i])
}

// Validate cross-checks the counters against each other.
func (s *Statistics) Validate() error {
	switch {
	case s.Hands == 0:
		return fmt.Errorf("no hands recorded")
	case len(s.Results) != s.Hands:
		return fmt.Errorf("%d results recorded for %d hands", len(s.Results), s.Hands)
	case s.Showdown.Hands+s.NoShowdown.Hands != s.Hands:
		return fmt.Errorf("showdown split covers %d of %d hands", s.Showdown.Hands+s.NoShowdown.Hands, s.Hands)
	case math.Abs(s.Sum-s.Showdown.NetBB-s.NoShowdown.NetBB) > 1e-6:
		return fmt.Errorf("net %.6fbb does not equal showdown %.6fbb plus non-showdown %.6fbb",
			s.Sum, s.Showdown.NetBB, s.NoShowdown.NetBB)
	}

	positioned := 0
	for _, m := range s.ByPosition {
		positioned += m.Hands
	}
	if positioned != s.Hands {
		return fmt.Errorf("positions cover %d of %d hands", positioned, s.Hands)
	}
	return nil
}
