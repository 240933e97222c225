package input

// State is the phase of a Latch.
type State int

const (
	Idle State = iota
	Pressed
	Held
)

func (s State) String() string {
	switch s {
	case Idle:
		return "idle"
	case Pressed:
		return "pressed"
	case Held:
		return "held"
	}
	return "unknown"
}

// Latch turns raw down/up samples into a single press event.
type Latch struct {
	state State
}

// Update advances the latch with the latest sample and returns the new state.
func (l *Latch) Update(down bool) State {
	switch {
	case !down:
		l.state = Idle
	case l.state == Idle:
		l.state = Pressed
	default:
		l.state = Held
	}
	return l.state
}

// JustPressed is true only for the sample on which the key went down.
func (l *Latch) JustPressed() bool {
	return l.state == Pressed
}

// State returns the current phase.
func (l *Latch) State() State {
	return l.state
}
