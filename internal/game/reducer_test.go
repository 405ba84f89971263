package game

import (
	"reflect"
	"testing"

	"github.com/mkorolev/riverhop/internal/config"
	"github.com/mkorolev/riverhop/internal/core"
)

func classicConfig() *config.Config {
	cfg := config.Default()
	return &cfg
}

// badEvent is an event type the reducer does not recognize.
type badEvent struct{}

func (badEvent) isEvent() {}

func TestTickOnDryLandLeavesFrogStill(t *testing.T) {
	cfg := classicConfig()
	w := NewWorld(cfg)

	next := Step(w, TickEvent{}, cfg)

	if next.Frog != w.Frog {
		t.Errorf("frog moved on dry land: %+v -> %+v", w.Frog, next.Frog)
	}
	if next.Over {
		t.Error("game ended with no hazards at the start position")
	}
	if next.Score != 0 {
		t.Errorf("score changed on plain tick: %d", next.Score)
	}
	if next.Tick != 1 {
		t.Errorf("tick count = %d, expected 1", next.Tick)
	}
}

func TestCarCollisionEndsGame(t *testing.T) {
	cfg := classicConfig()
	w := NewWorld(cfg)
	w.Frog = core.NewRect(400, 570, 40, 40)
	w.Cars = []Car{{Rect: core.NewRect(400, 570, 130, 50), Speed: 3}}

	next := Step(w, TickEvent{}, cfg)

	if !next.Over {
		t.Error("frog overlapping a car should end the game")
	}
	if !next.JustOver {
		t.Error("JustOver should be set on the transition tick")
	}
}

func TestWaterWithoutLogEndsGame(t *testing.T) {
	cfg := classicConfig()
	w := NewWorld(cfg)
	w.Frog = core.NewRect(280, 220, 40, 40) // water band, away from every log
	w.Logs = []Log{{Rect: core.NewRect(0, 100, 50, 40), Speed: 2}}

	next := Step(w, TickEvent{}, cfg)

	if !next.Over {
		t.Error("frog in water without a log should end the game")
	}
}

func TestLogRideIsSafe(t *testing.T) {
	cfg := classicConfig()
	w := NewWorld(cfg)
	w.Frog = core.NewRect(150, 220, 40, 40)
	w.Logs = []Log{{Rect: core.NewRect(100, 220, 200, 40), Speed: 2}}

	next := Step(w, TickEvent{}, cfg)

	if next.Over {
		t.Error("frog riding a log should be safe")
	}
	// Dragged by the log's speed.
	if next.Frog.X != 152 {
		t.Errorf("frog X = %d, expected 152 (carried by log)", next.Frog.X)
	}
	if next.Frog.Y != 220 {
		t.Errorf("frog Y = %d, expected 220", next.Frog.Y)
	}
}

func TestCarryUsesPreAdvanceLogPositions(t *testing.T) {
	cfg := classicConfig()
	w := NewWorld(cfg)
	// The frog overlaps the log's pre-advance position only: after the log
	// advances by its speed it no longer overlaps the frog's old cell, but
	// the carry (and the safety check on the carried frog) keep the ride.
	w.Frog = core.NewRect(160, 220, 40, 40)
	w.Logs = []Log{{Rect: core.NewRect(100, 220, 100, 40), Speed: 5}}

	next := Step(w, TickEvent{}, cfg)

	if next.Frog.X != 165 {
		t.Errorf("frog X = %d, expected 165", next.Frog.X)
	}
	if next.Over {
		t.Error("carried frog should remain on the advanced log")
	}
}

func TestForwardHopDoubledOnLog(t *testing.T) {
	cfg := classicConfig()
	w := NewWorld(cfg)
	w.Frog = core.NewRect(150, 220, 40, 40)
	w.Logs = []Log{
		{Rect: core.NewRect(0, 100, 180, 40), Speed: 2},
		{Rect: core.NewRect(100, 220, 200, 40), Speed: 2},
	}

	next := Step(w, MoveEvent{Axis: AxisY, Delta: -60}, cfg)

	// -60 doubled to -120 puts the frog on the upper log row; the upper
	// log's pre-advance position then carries it by +2.
	if next.Frog.Y != 100 {
		t.Errorf("frog Y = %d, expected 100 (doubled hop)", next.Frog.Y)
	}
	if next.Frog.X != 152 {
		t.Errorf("frog X = %d, expected 152 (carried by upper log)", next.Frog.X)
	}
	if next.Over {
		t.Error("frog landed on a log and should be safe")
	}
}

func TestHopNotDoubledOffLog(t *testing.T) {
	cfg := classicConfig()
	w := NewWorld(cfg)

	next := Step(w, MoveEvent{Axis: AxisY, Delta: -60}, cfg)

	if next.Frog.Y != w.Frog.Y-60 {
		t.Errorf("frog Y = %d, expected %d (unassisted hop)", next.Frog.Y, w.Frog.Y-60)
	}
}

func TestSidewaysMoveNeverDoubled(t *testing.T) {
	cfg := classicConfig()
	w := NewWorld(cfg)
	w.Frog = core.NewRect(150, 220, 40, 40)
	w.Logs = []Log{{Rect: core.NewRect(100, 220, 200, 40), Speed: 2}}

	next := Step(w, MoveEvent{Axis: AxisX, Delta: 60}, cfg)

	// 60 sideways plus the log's carry of 2; no doubling on the x axis.
	if next.Frog.X != 212 {
		t.Errorf("frog X = %d, expected 212", next.Frog.X)
	}
}

func TestGoalScoresOnceAndResetsFrog(t *testing.T) {
	cfg := classicConfig()
	w := NewWorld(cfg)
	w.Frog = core.NewRect(280, 50, 40, 40) // inside the goal zone

	next := Step(w, TickEvent{}, cfg)

	if next.Score != 1 {
		t.Errorf("score = %d, expected 1 after reaching the goal", next.Score)
	}
	if !next.OnGoal {
		t.Error("OnGoal should be set while the goal is overlapped")
	}
	if next.Frog != startRect(cfg) {
		t.Errorf("frog should reset to start after scoring, got %+v", next.Frog)
	}

	// The frog is back at the start, so the following tick must not score.
	after := Step(next, TickEvent{}, cfg)
	if after.Score != 1 {
		t.Errorf("score = %d, expected 1 on the tick after scoring", after.Score)
	}
	if after.OnGoal {
		t.Error("OnGoal should clear once the goal is no longer overlapped")
	}
}

func TestGoalDoesNotRescoreWhileFlagged(t *testing.T) {
	cfg := classicConfig()
	w := NewWorld(cfg)
	w.Frog = core.NewRect(280, 50, 40, 40)
	w.OnGoal = true // already counted on a previous update

	next := Step(w, TickEvent{}, cfg)

	if next.Score != 0 {
		t.Errorf("score = %d, expected 0: consecutive goal overlap must not rescore", next.Score)
	}
	if !next.OnGoal {
		t.Error("OnGoal should stay set while the overlap persists")
	}
}

func TestRestartYieldsInitialWorld(t *testing.T) {
	cfg := classicConfig()
	w := NewWorld(cfg)

	// Reach an arbitrary state, then restart.
	events := []Event{
		MoveEvent{Axis: AxisY, Delta: -60},
		TickEvent{}, TickEvent{},
		MoveEvent{Axis: AxisX, Delta: 60},
		TickEvent{},
	}
	for _, ev := range events {
		w = Step(w, ev, cfg)
	}

	restarted := Step(w, RestartEvent{}, cfg)
	if !reflect.DeepEqual(restarted, NewWorld(cfg)) {
		t.Errorf("restart did not restore the initial world: %+v", restarted)
	}

	// Restart applies from a game-over state too.
	w.Over = true
	restarted = Step(w, RestartEvent{}, cfg)
	if !reflect.DeepEqual(restarted, NewWorld(cfg)) {
		t.Errorf("restart from game over did not restore the initial world: %+v", restarted)
	}
}

func TestRestartDisabledByPolicy(t *testing.T) {
	cfg, err := config.Load(config.VariantCompact, "")
	if err != nil {
		t.Fatalf("load compact config: %v", err)
	}
	w := NewWorld(&cfg)
	w.Over = true

	next := Step(w, RestartEvent{}, &cfg)
	if !next.Over {
		t.Error("restart should be inert when the variant has no restart affordance")
	}
}

func TestFreezeOnOver(t *testing.T) {
	cfg := classicConfig()
	w := NewWorld(cfg)
	w.Over = true
	w.Score = 3

	events := []Event{
		TickEvent{},
		MoveEvent{Axis: AxisY, Delta: -60},
		MoveEvent{Axis: AxisX, Delta: 60},
		badEvent{},
	}
	for _, ev := range events {
		next := Step(w, ev, cfg)
		if next.Score != w.Score || next.Frog != w.Frog || next.Tick != w.Tick {
			t.Fatalf("frozen world mutated by %T: %+v", ev, next)
		}
		if !reflect.DeepEqual(next.Cars, w.Cars) || !reflect.DeepEqual(next.Logs, w.Logs) {
			t.Fatalf("frozen obstacles mutated by %T", ev)
		}
		w = next
	}
}

func TestTerminalMessageShownExactlyOnce(t *testing.T) {
	cfg := classicConfig()
	w := NewWorld(cfg)
	w.Frog = core.NewRect(400, 570, 40, 40)
	w.Cars = []Car{{Rect: core.NewRect(400, 570, 130, 50), Speed: 3}}

	first := Step(w, TickEvent{}, cfg)
	if !first.JustOver {
		t.Fatal("JustOver should be set on the transition tick")
	}

	second := Step(first, TickEvent{}, cfg)
	if second.JustOver {
		t.Error("JustOver should clear after the transition tick")
	}
	if !second.Over {
		t.Error("Over must remain sticky")
	}
}

func TestUnknownEventIgnored(t *testing.T) {
	cfg := classicConfig()
	w := NewWorld(cfg)

	next := Step(w, badEvent{}, cfg)
	if !reflect.DeepEqual(next, w) {
		t.Errorf("unrecognized event changed the world: %+v", next)
	}
}

func TestBoundaryContainment(t *testing.T) {
	cfg := classicConfig()
	w := NewWorld(cfg)
	// No hazards: this test only exercises clamping.
	w.Cars = nil
	w.Logs = nil
	w.Frog = core.NewRect(280, 500, 40, 40) // dry strip not required; water empty of logs would end it
	cfg2 := *cfg
	cfg2.Water = config.Band{Top: 0, Bottom: 0} // no water band at all
	cfgp := &cfg2

	moves := []Event{
		MoveEvent{Axis: AxisX, Delta: -1000},
		MoveEvent{Axis: AxisX, Delta: 1000},
		MoveEvent{Axis: AxisY, Delta: -1000},
		MoveEvent{Axis: AxisY, Delta: 1000},
	}
	for i := 0; i < 40; i++ {
		w = Step(w, moves[i%len(moves)], cfgp)
		f := w.Frog
		if f.X < 0 || f.Right() > cfgp.Canvas.Width || f.Y < 0 || f.Bottom() > cfgp.Canvas.Height {
			t.Fatalf("frog escaped the canvas: %+v", f)
		}
	}
}

func TestDeterminism(t *testing.T) {
	cfg := classicConfig()
	events := make([]Event, 0, 600)
	for i := 0; i < 200; i++ {
		events = append(events, TickEvent{})
		if i%7 == 0 {
			events = append(events, MoveEvent{Axis: AxisY, Delta: -60})
		}
		if i%13 == 0 {
			events = append(events, MoveEvent{Axis: AxisX, Delta: 60})
		}
		if i%41 == 0 {
			events = append(events, RestartEvent{})
		}
	}

	first := Fold(cfg, events)
	second := Fold(cfg, events)

	if !reflect.DeepEqual(first, second) {
		t.Errorf("identical event sequences produced different worlds:\n%+v\n%+v", first, second)
	}
}

func TestScoreMonotonic(t *testing.T) {
	cfg := classicConfig()
	w := NewWorld(cfg)
	w.Cars = nil // keep the run alive
	prev := 0

	events := []Event{
		MoveEvent{Axis: AxisY, Delta: -60},
		TickEvent{},
		TickEvent{},
	}
	for i := 0; i < 300 && !w.Over; i++ {
		w = Step(w, events[i%len(events)], cfg)
		if w.Score < prev {
			t.Fatalf("score decreased: %d -> %d", prev, w.Score)
		}
		if w.Score > prev+1 {
			t.Fatalf("score jumped by more than one: %d -> %d", prev, w.Score)
		}
		prev = w.Score
	}
}

func TestCollisionPolicyPreVsPost(t *testing.T) {
	// With pre-advance collision and inclusive overlap the car's right edge
	// touching the frog counts as a hit; after the car advances away under
	// the post-advance policy there is no contact.
	frog := core.NewRect(400, 570, 40, 40)
	car := Car{Rect: core.NewRect(270, 570, 130, 50), Speed: -4}

	pre := config.Default()
	pre.Policies.Collision = config.CollidePreAdvance
	pre.Policies.InclusiveOverlap = true

	w := NewWorld(&pre)
	w.Frog = frog
	w.Cars = []Car{car}
	if next := Step(w, TickEvent{}, &pre); !next.Over {
		t.Error("pre-advance inclusive policy should register the touch")
	}

	post := config.Default()
	post.Policies.Collision = config.CollidePostAdvance
	post.Policies.InclusiveOverlap = true

	w = NewWorld(&post)
	w.Frog = frog
	w.Cars = []Car{car}
	if next := Step(w, TickEvent{}, &post); next.Over {
		t.Error("post-advance policy should miss the receding car")
	}
}

func TestStepDoesNotMutateInput(t *testing.T) {
	cfg := classicConfig()
	w := NewWorld(cfg)
	carsBefore := make([]Car, len(w.Cars))
	copy(carsBefore, w.Cars)
	logsBefore := make([]Log, len(w.Logs))
	copy(logsBefore, w.Logs)

	Step(w, TickEvent{}, cfg)

	if !reflect.DeepEqual(w.Cars, carsBefore) || !reflect.DeepEqual(w.Logs, logsBefore) {
		t.Error("Step mutated the previous snapshot's slices")
	}
}
