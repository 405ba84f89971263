package game

import (
	"github.com/mkorolev/riverhop/internal/config"
	"github.com/mkorolev/riverhop/internal/core"
)

// Step is the game's transition function: given the current world and one
// event, it returns the next world. It is pure — the result depends only on
// its arguments, never on wall-clock time or external state — and it never
// fails: unrecognized events leave the world unchanged.
func Step(w World, ev Event, cfg *config.Config) World {
	if _, ok := ev.(RestartEvent); ok {
		if cfg.Policies.Restart {
			return NewWorld(cfg)
		}
		// Variant without a restart affordance: treated as unrecognized input.
		ev = nil
	}

	if w.Over {
		// Frozen until restart. The transition flag clears so the terminal
		// message is shown exactly once, not re-shown every tick.
		w.JustOver = false
		return w
	}

	frog := w.Frog
	tick := w.Tick

	switch e := ev.(type) {
	case MoveEvent:
		delta := e.Delta
		// Forward/backward hops are assisted while standing on a log.
		if e.Axis == AxisY && overlapsAnyLog(frog, w.Logs, cfg) {
			delta *= 2
		}
		if e.Axis == AxisX {
			frog = frog.Translate(delta, 0)
		} else {
			frog = frog.Translate(0, delta)
		}
	case TickEvent:
		tick++
	default:
		return w
	}

	// The log the frog stands on drags it sideways. The carry must use the
	// pre-advance log positions so the frog rides the position the logs held
	// when it landed on them.
	frog = frog.Translate(carrySpeed(frog, w.Logs, cfg), 0)

	cars := advanceCars(w.Cars, cfg)
	logs := advanceLogs(w.Logs, cfg)

	frog = core.ClampRectX(frog, cfg.Canvas.Width)
	frog = core.ClampRectY(frog, cfg.Canvas.Height)

	// Safe: fully outside the water band, or riding some log (post-advance).
	safe := !cfg.Water.Contains(frog.Y, frog.H) || overlapsAnyLog(frog, logs, cfg)

	hitCars := cars
	if cfg.Policies.Collision == config.CollidePreAdvance {
		hitCars = w.Cars
	}
	hit := overlapsAnyCar(frog, hitCars, cfg)

	over := hit || !safe

	score := w.Score
	onGoal := overlaps(frog, goalRect(cfg), cfg)
	if onGoal && !w.OnGoal {
		score++
	}
	if onGoal {
		// The frog does not linger at the goal: it returns to the start
		// immediately after scoring.
		frog = startRect(cfg)
	}

	return World{
		Score:    score,
		Over:     over,
		JustOver: over,
		OnGoal:   onGoal,
		Frog:     frog,
		Cars:     cars,
		Logs:     logs,
		Tick:     tick,
	}
}

// overlaps applies the configured overlap policy to two rectangles.
func overlaps(a, b core.Rect, cfg *config.Config) bool {
	if cfg.Policies.InclusiveOverlap {
		return a.IntersectsInclusive(b)
	}
	return a.Intersects(b)
}

// overlapsAnyLog reports whether the frog overlaps some log.
func overlapsAnyLog(frog core.Rect, logs []Log, cfg *config.Config) bool {
	for _, l := range logs {
		if overlaps(frog, l.Rect, cfg) {
			return true
		}
	}
	return false
}

// overlapsAnyCar reports whether the frog overlaps some car.
func overlapsAnyCar(frog core.Rect, cars []Car, cfg *config.Config) bool {
	for _, c := range cars {
		if overlaps(frog, c.Rect, cfg) {
			return true
		}
	}
	return false
}

// carrySpeed returns the speed of the log the frog stands on, or 0 if the
// frog is not on any log. Each log carries its own speed, so the lookup
// cannot miss; an empty result is a plain "not riding", not a defect.
func carrySpeed(frog core.Rect, logs []Log, cfg *config.Config) int {
	for _, l := range logs {
		if overlaps(frog, l.Rect, cfg) {
			return l.Speed
		}
	}
	return 0
}
