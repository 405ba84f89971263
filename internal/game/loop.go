package game

import (
	"context"
	"time"

	"github.com/mkorolev/riverhop/internal/config"
)

// Loop is the single-consumer event loop driving a live game. A fixed-period
// ticker and submitted commands feed one channel; one goroutine folds the
// reducer over arrivals strictly in order and publishes every snapshot.
// No locking is needed around the world: there is exactly one consumer by
// construction, and each snapshot replaces the previous one wholesale.
type Loop struct {
	cfg        *config.Config
	events     chan Event
	onSnapshot func(World)
	onGameOver func(Recording, World)
	rec        *Recorder
}

// NewLoop creates a loop for the given configuration. onSnapshot receives
// every world snapshot, in order, from the loop goroutine.
func NewLoop(cfg *config.Config, onSnapshot func(World)) *Loop {
	return &Loop{
		cfg:        cfg,
		events:     make(chan Event, 64),
		onSnapshot: onSnapshot,
		rec:        NewRecorder(),
	}
}

// OnGameOver registers a callback invoked exactly once per run, on the tick
// the game ends, with the recorded event journal for that run.
func (l *Loop) OnGameOver(fn func(Recording, World)) {
	l.onGameOver = fn
}

// Submit queues a command. Commands are folded in submission order,
// interleaved with clock ticks in arrival order.
func (l *Loop) Submit(ev Event) {
	l.events <- ev
}

// Run starts the clock and folds events until ctx is done.
// Each event is processed to completion before the next is accepted.
func (l *Loop) Run(ctx context.Context) error {
	ticker := time.NewTicker(l.cfg.Tick.Interval())
	defer ticker.Stop()

	w := NewWorld(l.cfg)
	l.publish(w)

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
			w = l.apply(w, TickEvent{})
		case ev := <-l.events:
			w = l.apply(w, ev)
		}
	}
}

// apply folds one event, maintaining the journal and firing callbacks.
func (l *Loop) apply(w World, ev Event) World {
	if _, ok := ev.(RestartEvent); ok && l.cfg.Policies.Restart {
		// A restart begins a new run; the journal starts over with it.
		l.rec.Reset()
	} else {
		l.rec.Observe(ev)
	}

	next := Step(w, ev, l.cfg)
	if next.JustOver && l.onGameOver != nil {
		l.onGameOver(l.rec.Recording(), next)
	}
	l.publish(next)
	return next
}

func (l *Loop) publish(w World) {
	if l.onSnapshot != nil {
		l.onSnapshot(w)
	}
}

// Fold runs the reducer over a finite event sequence starting from the
// initial world. Because Step is pure, folding the same sequence always
// yields the same final world; replay verification relies on this.
func Fold(cfg *config.Config, events []Event) World {
	w := NewWorld(cfg)
	for _, ev := range events {
		w = Step(w, ev, cfg)
	}
	return w
}
