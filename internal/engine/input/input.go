// Package input maps raw key samples onto logical actions.
package input

import "fmt"

// Action is a logical input the application reacts to.
type Action int

const (
	MoveForward Action = iota
	MoveBackward
	MoveLeft
	MoveRight
	MoveUp
	MoveDown
	UsePerspective
	UseOrthographic
	ResetView
	Screenshot
	Quit

	actionCount
)

// Actions lists every action.
func Actions() []Action {
	out := make([]Action, actionCount)
	for i := range out {
		out[i] = Action(i)
	}
	return out
}

var actionNames = [actionCount]string{
	MoveForward:     "move-forward",
	MoveBackward:    "move-backward",
	MoveLeft:        "move-left",
	MoveRight:       "move-right",
	MoveUp:          "move-up",
	MoveDown:        "move-down",
	UsePerspective:  "use-perspective",
	UseOrthographic: "use-orthographic",
	ResetView:       "reset-view",
	Screenshot:      "screenshot",
	Quit:            "quit",
}

func (a Action) String() string {
	if a < 0 || a >= actionCount {
		return fmt.Sprintf("action(%d)", int(a))
	}
	return actionNames[a]
}

// Keys reports whether the key bound to an action is currently held.
type Keys interface {
	Down(a Action) bool
}

// Edges samples Keys once per frame and tracks a Latch per action.
type Edges struct {
	keys    Keys
	latches [actionCount]Latch
}

// NewEdges creates edge tracking over keys.
func NewEdges(keys Keys) *Edges {
	return &Edges{keys: keys}
}

// Update samples every action. Call it once per frame.
func (e *Edges) Update() {
	if e.keys == nil {
		return
	}
	for i := range e.latches {
		e.latches[i].Update(e.keys.Down(Action(i)))
	}
}

// JustPressed reports whether a went down on the latest Update.
func (e *Edges) JustPressed(a Action) bool {
	if a < 0 || a >= actionCount {
		return false
	}
	return e.latches[a].JustPressed()
}

// Held reports whether a is down, whether or not it was just pressed.
func (e *Edges) Held(a Action) bool {
	if a < 0 || a >= actionCount {
		return false
	}
	return e.latches[a].State() != Idle
}
