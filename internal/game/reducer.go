package game

import "slices"

// deltaSet folds every change made to a seat during one call into a single
// final record. Later puts for the same seat replace earlier ones.
type deltaSet struct {
	bySeat map[int]PlayerSnapshot
}

func newDeltaSet() *deltaSet {
	return &deltaSet{bySeat: make(map[int]PlayerSnapshot)}
}

func (d *deltaSet) put(p PlayerSnapshot) {
	d.bySeat[p.Seat] = p
}

// list returns the folded records ordered by seat.
func (d *deltaSet) list() []PlayerSnapshot {
	out := make([]PlayerSnapshot, 0, len(d.bySeat))
	for _, p := range d.bySeat {
		out = append(out, p)
	}
	slices.SortFunc(out, func(a, b PlayerSnapshot) int { return a.Seat - b.Seat })
	return out
}

// MergePlayers overlays updated records onto a full player list by seat and
// returns a new slice; neither input is modified. Updates for unknown seats
// are appended.
func MergePlayers(players, updates []PlayerSnapshot) []PlayerSnapshot {
	d := newDeltaSet()
	for _, p := range players {
		d.put(p)
	}
	for _, p := range updates {
		d.put(p)
	}
	return d.list()
}
