package solver

import (
	"time"

	"github.com/jask/sudotui/internal/grid"
)

// Outcome is the terminal result of a solve run.
type Outcome int

const (
	Solved Outcome = iota
	Unsolvable
	TimedOut
)

func (o Outcome) String() string {
	switch o {
	case Solved:
		return "solved"
	case Unsolvable:
		return "unsolvable"
	case TimedOut:
		return "timed out"
	default:
		return "unknown"
	}
}

// Stats captures the cost of a solve run.
type Stats struct {
	Nodes    int
	Duration time.Duration
}

// run holds state scoped to a single Solve call, so overlapping calls
// never share a deadline or a timeout flag.
type run struct {
	g        *grid.Grid
	deadline time.Time
	timedOut bool
	nodes    int
}

// Solve fills g in place by depth-first backtracking: first empty cell
// in row-major order, digits tried ascending 1-9. The deadline is
// checked once per recursive entry.
//
// On Solved, g is a complete valid solution. On Unsolvable, g is
// restored to its input state, every trial placement having been
// undone. On TimedOut, g keeps whatever partial placements were live
// when the deadline fired: the frame that detects the deadline and
// every frame above it return without undoing.
func Solve(g *grid.Grid, limit time.Duration) (Outcome, Stats) {
	start := time.Now()
	r := &run{g: g, deadline: start.Add(limit)}
	ok := r.backtrack()
	st := Stats{Nodes: r.nodes, Duration: time.Since(start)}
	switch {
	case ok:
		return Solved, st
	case r.timedOut:
		return TimedOut, st
	default:
		return Unsolvable, st
	}
}

func (r *run) backtrack() bool {
	if time.Now().After(r.deadline) {
		r.timedOut = true
		return false
	}
	row, col, ok := r.g.FirstEmpty()
	if !ok {
		return true
	}
	r.nodes++
	for digit := 1; digit <= 9; digit++ {
		if !r.g.SafePlacement(row, col, digit) {
			continue
		}
		r.g[row][col] = digit
		if r.backtrack() {
			return true
		}
		if r.timedOut {
			return false // leave the in-flight placement
		}
		r.g[row][col] = 0
	}
	return false
}
