package life

import "torus-life/internal/core"

// HistoryDepth is the number of past generations kept for cycle detection.
const HistoryDepth = 5

// History is a bounded FIFO of grid snapshots. Snapshots are private copies.
type History struct {
	depth int
	snaps []*core.Grid
}

// NewHistory returns an empty history holding at most depth snapshots.
func NewHistory(depth int) *History {
	if depth <= 0 {
		depth = HistoryDepth
	}
	return &History{depth: depth, snaps: make([]*core.Grid, 0, depth+1)}
}

// Push stores a copy of g, evicting the oldest snapshot beyond the depth.
func (h *History) Push(g *core.Grid) {
	h.snaps = append(h.snaps, g.Clone())
	if len(h.snaps) > h.depth {
		h.snaps[0] = nil
		h.snaps = h.snaps[1:]
	}
}

// Contains reports whether any snapshot equals g.
func (h *History) Contains(g *core.Grid) (bool, error) {
	for _, snap := range h.snaps {
		eq, err := snap.Equal(g)
		if err != nil {
			return false, err
		}
		if eq {
			return true, nil
		}
	}
	return false, nil
}

// Len returns the number of stored snapshots.
func (h *History) Len() int { return len(h.snaps) }

// Depth returns the capacity of the history.
func (h *History) Depth() int { return h.depth }

// Reset drops every snapshot.
func (h *History) Reset() {
	for i := range h.snaps {
		h.snaps[i] = nil
	}
	h.snaps = h.snaps[:0]
}
