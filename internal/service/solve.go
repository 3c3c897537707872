package service

import (
	"time"

	"github.com/jask/sudotui/internal/grid"
	"github.com/jask/sudotui/internal/solver"
	"github.com/jask/sudotui/internal/store"
)

// SolveService loads puzzle files and runs the timed search over them.
type SolveService struct {
	Store     *store.Store
	TimeLimit time.Duration
}

// SolveResult is what the TUI needs to present a solve run.
type SolveResult struct {
	Outcome solver.Outcome
	Stats   solver.Stats
	Grid    grid.Grid
}

// SolveFile loads the named puzzle and solves it under the configured
// time limit. The returned grid reflects the engine's residual state
// for every outcome: complete on Solved, the input on Unsolvable,
// partial on TimedOut.
func (s *SolveService) SolveFile(name string) (SolveResult, error) {
	g, err := s.Store.Load(name)
	if err != nil {
		return SolveResult{}, err
	}
	outcome, stats := solver.Solve(&g, s.TimeLimit)
	return SolveResult{Outcome: outcome, Stats: stats, Grid: g}, nil
}

// Export writes the grid to the named file and returns the path.
func (s *SolveService) Export(name string, g grid.Grid) (string, error) {
	return s.Store.Save(name, g)
}
