package game

import (
	"github.com/mkorolev/riverhop/internal/config"
	"github.com/mkorolev/riverhop/internal/core"
)

// wrapX applies the configured wrap policy to a moving rectangle's left edge.
func wrapX(x, speed, w int, cfg *config.Config) int {
	if cfg.Policies.Wrap == config.WrapSnap {
		return core.WrapXSnap(x, speed, w, cfg.Canvas.Width)
	}
	return core.WrapX(x, speed, w, cfg.Canvas.Width)
}

// advanceCars moves every car one tick by its fixed speed, wrapping at the
// canvas edges. Order, size, vertical position, and dimensions are preserved.
// Returns a fresh slice; the input is not modified.
func advanceCars(cars []Car, cfg *config.Config) []Car {
	out := make([]Car, len(cars))
	for i, c := range cars {
		c.Rect.X = wrapX(c.Rect.X, c.Speed, c.Rect.W, cfg)
		out[i] = c
	}
	return out
}

// advanceLogs moves every log one tick by its fixed speed, wrapping at the
// canvas edges. Order, size, vertical position, and dimensions are preserved.
// Returns a fresh slice; the input is not modified.
func advanceLogs(logs []Log, cfg *config.Config) []Log {
	out := make([]Log, len(logs))
	for i, l := range logs {
		l.Rect.X = wrapX(l.Rect.X, l.Speed, l.Rect.W, cfg)
		out[i] = l
	}
	return out
}
