// Package config provides YAML-based configuration loading for the crossing
// game. The two observed field variants (classic and compact) differ in
// canvas size and behavioral policies; both are expressed as configuration
// rather than hardcoded behavior.
package config

import (
	"fmt"
	"time"
)

// Config contains the full game configuration: canvas geometry, entity
// layout, lane speeds, and the behavioral policy set.
type Config struct {
	Canvas   Canvas   `yaml:"canvas"`
	Tick     Tick     `yaml:"tick"`
	Frog     Frog     `yaml:"frog"`
	Goal     Zone     `yaml:"goal"`
	Water    Band     `yaml:"water"`
	Cars     []Lane   `yaml:"cars"`
	Logs     []Lane   `yaml:"logs"`
	Policies Policies `yaml:"policies"`
}

// Canvas defines the virtual pixel canvas the game logic runs on.
// The presentation layer scales it to the terminal.
type Canvas struct {
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
}

// Tick defines the simulation clock.
type Tick struct {
	IntervalMS int `yaml:"interval_ms"`
}

// Interval returns the tick period as a duration.
func (t Tick) Interval() time.Duration {
	return time.Duration(t.IntervalMS) * time.Millisecond
}

// Frog defines the player token's start position, hitbox, and move step.
type Frog struct {
	StartX int `yaml:"start_x"`
	StartY int `yaml:"start_y"`
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
	Step   int `yaml:"step"`
}

// Zone is a static rectangle, used for the goal area.
type Zone struct {
	X      int `yaml:"x"`
	Y      int `yaml:"y"`
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
}

// Band is a vertical range [Top, Bottom) of the canvas.
type Band struct {
	Top    int `yaml:"top"`
	Bottom int `yaml:"bottom"`
}

// Contains reports whether the vertical span [y, y+h) lies at least partly
// inside the band.
func (b Band) Contains(y, h int) bool {
	return y+h > b.Top && y < b.Bottom
}

// Lane defines one moving entity: its initial rectangle and its fixed
// per-run horizontal speed (sign = direction). Only X changes during play.
type Lane struct {
	X      int `yaml:"x"`
	Y      int `yaml:"y"`
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
	Speed  int `yaml:"speed"`
}

// Wrap policies for entities leaving the canvas.
const (
	WrapGradual = "gradual" // re-enter fully off-screen, slide in
	WrapSnap    = "snap"    // left edge snaps to the opposite boundary
)

// Collision timing policies: which car positions the hit test uses.
const (
	CollidePostAdvance = "post" // positions after this tick's advance
	CollidePreAdvance  = "pre"  // positions before this tick's advance
)

// Policies captures the behavioral divergences between the observed game
// variants. Each run uses exactly one consistent policy set.
type Policies struct {
	// InclusiveOverlap makes edge-touching rectangles count as overlapping.
	// The default (false) is strict overlap.
	InclusiveOverlap bool `yaml:"inclusive_overlap"`

	// Wrap selects how entities re-enter the canvas: "gradual" or "snap".
	Wrap string `yaml:"wrap"`

	// Collision selects whether the hit test runs against "pre" or "post"
	// advance car positions.
	Collision string `yaml:"collision"`

	// Restart enables the restart command after game over.
	Restart bool `yaml:"restart"`
}

// Validate checks the configuration for geometry that would make the game
// unplayable or the reducer's invariants unsatisfiable.
func (c *Config) Validate() error {
	if c.Canvas.Width <= 0 || c.Canvas.Height <= 0 {
		return fmt.Errorf("config: canvas must be positive, got %dx%d", c.Canvas.Width, c.Canvas.Height)
	}
	if c.Tick.IntervalMS <= 0 {
		return fmt.Errorf("config: tick interval must be positive, got %dms", c.Tick.IntervalMS)
	}
	if c.Frog.Width <= 0 || c.Frog.Height <= 0 {
		return fmt.Errorf("config: frog hitbox must be positive, got %dx%d", c.Frog.Width, c.Frog.Height)
	}
	if c.Frog.Step <= 0 {
		return fmt.Errorf("config: frog step must be positive, got %d", c.Frog.Step)
	}
	if c.Frog.StartX < 0 || c.Frog.StartX+c.Frog.Width > c.Canvas.Width ||
		c.Frog.StartY < 0 || c.Frog.StartY+c.Frog.Height > c.Canvas.Height {
		return fmt.Errorf("config: frog start (%d, %d) outside canvas", c.Frog.StartX, c.Frog.StartY)
	}
	if c.Water.Top >= c.Water.Bottom {
		return fmt.Errorf("config: water band inverted: top %d >= bottom %d", c.Water.Top, c.Water.Bottom)
	}
	if c.Water.Top < 0 || c.Water.Bottom > c.Canvas.Height {
		return fmt.Errorf("config: water band [%d, %d) outside canvas", c.Water.Top, c.Water.Bottom)
	}
	if c.Goal.Width <= 0 || c.Goal.Height <= 0 {
		return fmt.Errorf("config: goal zone must be positive, got %dx%d", c.Goal.Width, c.Goal.Height)
	}
	for i, l := range c.Cars {
		if l.Width <= 0 || l.Height <= 0 {
			return fmt.Errorf("config: car %d has empty rectangle", i)
		}
	}
	for i, l := range c.Logs {
		if l.Width <= 0 || l.Height <= 0 {
			return fmt.Errorf("config: log %d has empty rectangle", i)
		}
	}
	switch c.Policies.Wrap {
	case WrapGradual, WrapSnap:
	default:
		return fmt.Errorf("config: unknown wrap policy %q", c.Policies.Wrap)
	}
	switch c.Policies.Collision {
	case CollidePreAdvance, CollidePostAdvance:
	default:
		return fmt.Errorf("config: unknown collision policy %q", c.Policies.Collision)
	}
	return nil
}
