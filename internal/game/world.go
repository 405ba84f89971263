// Package game implements the crossing game: a pure reducer folding clock
// ticks and player commands into successive immutable world snapshots.
// It contains no I/O and no external dependencies beyond geometry, which
// keeps every rule unit-testable and every run deterministic.
package game

import (
	"github.com/mkorolev/riverhop/internal/config"
	"github.com/mkorolev/riverhop/internal/core"
)

// Car is a road hazard: a rectangle with a fixed horizontal speed.
// Contact ends the game.
type Car struct {
	Rect  core.Rect
	Speed int
}

// Log is a floating river platform: a rectangle with a fixed horizontal
// speed. The frog must ride one to cross the water.
type Log struct {
	Rect  core.Rect
	Speed int
}

// World is one immutable snapshot of the game. Every event produces a brand
// new snapshot; a World is never mutated in place, so observers always see a
// complete, consistent state.
type World struct {
	Score    int
	Over     bool
	JustOver bool // true exactly on the tick Over flips from false to true
	OnGoal   bool // frog overlapped the goal at the end of the last update
	Frog     core.Rect
	Cars     []Car
	Logs     []Log
	Tick     uint64 // clock ticks processed this run
}

// NewWorld builds the initial world from configuration: score zero, frog at
// its start coordinates, cars and logs at their lane origins.
func NewWorld(cfg *config.Config) World {
	cars := make([]Car, len(cfg.Cars))
	for i, l := range cfg.Cars {
		cars[i] = Car{Rect: core.NewRect(l.X, l.Y, l.Width, l.Height), Speed: l.Speed}
	}
	logs := make([]Log, len(cfg.Logs))
	for i, l := range cfg.Logs {
		logs[i] = Log{Rect: core.NewRect(l.X, l.Y, l.Width, l.Height), Speed: l.Speed}
	}
	return World{
		Frog: startRect(cfg),
		Cars: cars,
		Logs: logs,
	}
}

// startRect returns the frog's configured start rectangle.
func startRect(cfg *config.Config) core.Rect {
	return core.NewRect(cfg.Frog.StartX, cfg.Frog.StartY, cfg.Frog.Width, cfg.Frog.Height)
}

// goalRect returns the static goal zone rectangle.
func goalRect(cfg *config.Config) core.Rect {
	return core.NewRect(cfg.Goal.X, cfg.Goal.Y, cfg.Goal.Width, cfg.Goal.Height)
}
