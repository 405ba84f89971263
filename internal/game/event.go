package game

// Axis names a movement axis on the canvas.
type Axis int

const (
	AxisX Axis = iota // left/right
	AxisY             // forward/backward
)

// String returns the axis name used in storage and logs.
func (a Axis) String() string {
	if a == AxisX {
		return "x"
	}
	return "y"
}

// ParseAxis converts a stored axis name back to an Axis.
// Unknown names default to AxisX.
func ParseAxis(s string) Axis {
	if s == "y" {
		return AxisY
	}
	return AxisX
}

// Event is one element of the merged input stream consumed by the reducer:
// a periodic clock tick or a discrete player command.
type Event interface {
	isEvent()
}

// TickEvent is the periodic clock pulse driving continuous motion.
// It carries no payload beyond its occurrence.
type TickEvent struct{}

// MoveEvent moves the frog by Delta along one axis.
type MoveEvent struct {
	Axis  Axis
	Delta int
}

// RestartEvent discards the current world and substitutes the initial one.
type RestartEvent struct{}

func (TickEvent) isEvent()    {}
func (MoveEvent) isEvent()    {}
func (RestartEvent) isEvent() {}
