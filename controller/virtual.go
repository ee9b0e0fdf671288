package controller

import "math"

// Virtual is an in-memory controller bound to one port.
//
// It is not safe for concurrent use; a frame loop owns it.
type Virtual struct {
	port    int
	current State
	prev    State
}

// NewVirtual creates a controller for port with neutral current and
// previous state.
func NewVirtual(port int) *Virtual {
	return &Virtual{
		port:    port,
		current: NeutralState(),
		prev:    NeutralState(),
	}
}

// Port is the controller port (1-4) this controller is plugged into.
func (v *Virtual) Port() int {
	return v.port
}

// Press holds b down for the current frame.
func (v *Virtual) Press(b Button) {
	if b < 0 || b >= buttonCount {
		return
	}
	v.current.Button[b] = true
}

// Release lets go of b for the current frame.
func (v *Virtual) Release(b Button) {
	if b < 0 || b >= buttonCount {
		return
	}
	v.current.Button[b] = false
}

// ReleaseAll releases every button and centers both sticks.
func (v *Virtual) ReleaseAll() {
	v.current = NeutralState()
}

// TiltAnalog moves a stick. Coordinates are clamped into [0, 1].
func (v *Virtual) TiltAnalog(stick Stick, x, y float64) {
	p := Point{X: clamp01(x), Y: clamp01(y)}
	if stick == StickC {
		v.current.CStick = p
		return
	}
	v.current.MainStick = p
}

// Prev returns the state committed by the last Flush.
func (v *Virtual) Prev() State {
	return v.prev
}

// Current returns the state written so far this frame.
func (v *Virtual) Current() State {
	return v.current
}

// Flush commits the current state as this frame's input and returns it. The
// current state is carried over into the next frame unchanged, matching a
// physical controller whose buttons stay down until released.
func (v *Virtual) Flush() State {
	v.prev = v.current
	return v.current
}

func clamp01(f float64) float64 {
	if math.IsNaN(f) {
		return Neutral
	}
	return math.Max(0, math.Min(1, f))
}
