package game

// RecordedCommand is one player command positioned within a run's tick
// stream: AtTick is the number of clock ticks folded before the command.
type RecordedCommand struct {
	Seq    int
	AtTick uint64
	Axis   Axis
	Delta  int
}

// Recording is the complete journal of one run: the total tick count plus
// every command at its tick position. Together with the configuration it
// deterministically reproduces the run.
type Recording struct {
	Ticks    uint64
	Commands []RecordedCommand
}

// Events expands the journal back into the full ordered event stream:
// commands are re-emitted at their recorded tick positions, each tick
// following the commands that preceded it.
func (r Recording) Events() []Event {
	events := make([]Event, 0, int(r.Ticks)+len(r.Commands))
	ci := 0
	for t := uint64(0); t < r.Ticks; t++ {
		for ci < len(r.Commands) && r.Commands[ci].AtTick == t {
			c := r.Commands[ci]
			events = append(events, MoveEvent{Axis: c.Axis, Delta: c.Delta})
			ci++
		}
		events = append(events, TickEvent{})
	}
	// Commands observed after the final tick.
	for ; ci < len(r.Commands); ci++ {
		c := r.Commands[ci]
		events = append(events, MoveEvent{Axis: c.Axis, Delta: c.Delta})
	}
	return events
}

// Recorder journals the event stream of the current run.
type Recorder struct {
	ticks    uint64
	commands []RecordedCommand
}

// NewRecorder creates an empty recorder.
func NewRecorder() *Recorder {
	return &Recorder{}
}

// Observe journals one event. Restart events are not journaled; the caller
// resets the recorder instead, since a replay covers a single run.
func (r *Recorder) Observe(ev Event) {
	switch e := ev.(type) {
	case TickEvent:
		r.ticks++
	case MoveEvent:
		r.commands = append(r.commands, RecordedCommand{
			Seq:    len(r.commands) + 1,
			AtTick: r.ticks,
			Axis:   e.Axis,
			Delta:  e.Delta,
		})
	}
}

// Reset discards the journal for a new run.
func (r *Recorder) Reset() {
	r.ticks = 0
	r.commands = nil
}

// Recording returns a copy of the journal so far. The copy is detached:
// further observations do not modify it.
func (r *Recorder) Recording() Recording {
	commands := make([]RecordedCommand, len(r.commands))
	copy(commands, r.commands)
	return Recording{Ticks: r.ticks, Commands: commands}
}
