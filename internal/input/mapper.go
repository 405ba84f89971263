// Package input translates raw terminal key presses into game events and
// filters the key auto-repeat noise a held key produces.
package input

import (
	"time"

	"github.com/mkorolev/riverhop/internal/config"
	"github.com/mkorolev/riverhop/internal/game"
)

// DefaultRepeatWindow is how soon a repeat of the same key is treated as
// terminal auto-repeat rather than a deliberate second press.
const DefaultRepeatWindow = 150 * time.Millisecond

// Mapper converts key names (as reported by the terminal layer) into game
// events. A Mapper is not safe for concurrent use; each session owns one.
type Mapper struct {
	step    int
	restart bool
	window  time.Duration
	now     func() time.Time

	lastKey string
	lastAt  time.Time
}

// NewMapper creates a mapper using the variant's hop step and restart policy.
func NewMapper(cfg *config.Config) *Mapper {
	return &Mapper{
		step:    cfg.Frog.Step,
		restart: cfg.Policies.Restart,
		window:  DefaultRepeatWindow,
		now:     time.Now,
	}
}

// SetRepeatWindow overrides the auto-repeat suppression window.
// A zero window disables suppression entirely.
func (m *Mapper) SetRepeatWindow(d time.Duration) {
	m.window = d
}

// SetClock overrides the time source. Tests use this to make repeat
// suppression deterministic.
func (m *Mapper) SetClock(now func() time.Time) {
	m.now = now
}

// Map translates one key press into a game event. The second return value is
// false when the key is unbound, or when it is a same-key repeat inside the
// suppression window. Suppressed repeats still refresh the window, so a held
// key stays suppressed for as long as the terminal keeps repeating it.
func (m *Mapper) Map(key string) (game.Event, bool) {
	ev, ok := m.event(key)
	if !ok {
		return nil, false
	}

	now := m.now()
	if m.window > 0 && key == m.lastKey && now.Sub(m.lastAt) < m.window {
		m.lastAt = now
		return nil, false
	}
	m.lastKey = key
	m.lastAt = now
	return ev, true
}

func (m *Mapper) event(key string) (game.Event, bool) {
	switch key {
	case "up", "w":
		return game.MoveEvent{Axis: game.AxisY, Delta: -m.step}, true
	case "down", "s":
		return game.MoveEvent{Axis: game.AxisY, Delta: m.step}, true
	case "left", "a":
		return game.MoveEvent{Axis: game.AxisX, Delta: -m.step}, true
	case "right", "d":
		return game.MoveEvent{Axis: game.AxisX, Delta: m.step}, true
	case "r":
		if !m.restart {
			return nil, false
		}
		return game.RestartEvent{}, true
	}
	return nil, false
}
