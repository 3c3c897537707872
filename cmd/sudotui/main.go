package main

import (
	"fmt"
	"log"
	"os"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/jask/sudotui/internal/config"
	"github.com/jask/sudotui/internal/service"
	"github.com/jask/sudotui/internal/store"
	"github.com/jask/sudotui/internal/tui"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	if err := os.MkdirAll(cfg.Puzzles.Dir, 0o755); err != nil {
		log.Fatalf("mkdir puzzles dir: %v", err)
	}

	st := store.New(cfg.Puzzles.Dir)
	solveSvc := &service.SolveService{Store: st, TimeLimit: cfg.Solver.TimeLimit}

	p := tea.NewProgram(tui.New(cfg, st, tui.Services{Solve: solveSvc}), tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		fmt.Printf("error: %v\n", err)
	}
}
