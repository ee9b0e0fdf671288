// Package controller holds the per-frame target state of a virtual GameCube
// controller.
//
// A Virtual controller is written to during a frame (Press, Release,
// TiltAnalog) and committed with Flush, at which point the written state
// becomes the previous-frame state returned by Prev. Turning the committed
// state into pipe or USB bytes is left to whatever consumes Flush's result.
package controller

import "fmt"

// Button is a digital button on the controller.
type Button int

const (
	ButtonA Button = iota
	ButtonB
	ButtonX
	ButtonY
	ButtonZ
	ButtonL
	ButtonR
	ButtonStart
	ButtonDUp
	ButtonDDown
	ButtonDLeft
	ButtonDRight

	buttonCount
)

var buttonNames = [buttonCount]string{
	"A", "B", "X", "Y", "Z", "L", "R", "START", "D_UP", "D_DOWN", "D_LEFT", "D_RIGHT",
}

func (b Button) String() string {
	if b < 0 || b >= buttonCount {
		return fmt.Sprintf("BUTTON(%d)", int(b))
	}
	return buttonNames[b]
}

// Buttons returns every digital button in declaration order.
func Buttons() []Button {
	out := make([]Button, 0, buttonCount)
	for b := ButtonA; b < buttonCount; b++ {
		out = append(out, b)
	}
	return out
}

// Stick selects one of the two analog sticks.
type Stick int

const (
	StickMain Stick = iota
	StickC
)

func (s Stick) String() string {
	if s == StickC {
		return "C"
	}
	return "MAIN"
}

// Neutral is the centered stick coordinate on both axes.
const Neutral = 0.5

// Point is an analog stick position. Each axis is in [0, 1] and 0.5 is
// centered; Y grows upward.
type Point struct {
	X, Y float64
}

// Centered is the resting stick position.
var Centered = Point{X: Neutral, Y: Neutral}

// State is the complete desired controller state for one frame.
type State struct {
	Button    [buttonCount]bool
	MainStick Point
	CStick    Point
}

// NeutralState returns a state with nothing pressed and both sticks centered.
func NeutralState() State {
	return State{MainStick: Centered, CStick: Centered}
}

// Pressed reports whether b is held in this state.
func (s State) Pressed(b Button) bool {
	if b < 0 || b >= buttonCount {
		return false
	}
	return s.Button[b]
}

// Neutral reports whether nothing is pressed and both sticks are centered.
func (s State) Neutral() bool {
	for _, held := range s.Button {
		if held {
			return false
		}
	}
	return s.MainStick == Centered && s.CStick == Centered
}

// Stick returns the position of the given stick.
func (s State) Stick(stick Stick) Point {
	if stick == StickC {
		return s.CStick
	}
	return s.MainStick
}
