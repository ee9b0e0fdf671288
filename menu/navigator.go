// Package menu drives a virtual controller through the game's menus and
// into a match.
//
// A Navigator is stepped once per frame with the decoded snapshot and the
// controller it owns. It never assumes how many frames a screen takes: every
// decision is made from the snapshot and from the controller's previous-frame
// state, so it can be stepped from any screen and re-entered at will.
//
// The menus only register a button when it is pressed and released on
// different frames. Handlers therefore alternate an input frame with a
// release frame, and never press B on two consecutive frames (holding B
// backs out of the menus entirely).
//
// Each controller port needs its own Navigator.
package menu

import (
	"log/slog"

	"github.com/vladfi1/libmelee/controller"
	"github.com/vladfi1/libmelee/melee"
)

// Controller is the virtual controller the navigator writes to.
// *controller.Virtual implements it.
type Controller interface {
	Port() int
	Press(b controller.Button)
	Release(b controller.Button)
	ReleaseAll()
	TiltAnalog(stick controller.Stick, x, y float64)
	// Prev is the state that was sent on the previous frame.
	Prev() controller.State
}

// CPUPhase tracks the CPU assignment sub-sequence on character select.
type CPUPhase int

const (
	CPUInactive CPUPhase = iota
	// CPUToggle moves to the port's HMN/CPU toggle and flips it.
	CPUToggle
	// CPUGrabSlider moves to the level slider and picks it up.
	CPUGrabSlider
	// CPUSetLevel nudges the held slider until the level matches.
	CPUSetLevel
	// CPUDone means the snapshot shows the requested CPU level.
	CPUDone
)

func (p CPUPhase) String() string {
	switch p {
	case CPUToggle:
		return "toggle"
	case CPUGrabSlider:
		return "grab_slider"
	case CPUSetLevel:
		return "set_level"
	case CPUDone:
		return "done"
	default:
		return "inactive"
	}
}

// Progress is a read-only view of the navigator's internal markers.
type Progress struct {
	Screen         Screen
	NameTagIndex   int
	InputsLive     bool
	StageCommitted bool
	CPUPhase       CPUPhase
}

// Navigator is the menu automaton for one controller port.
//
// It is not safe for concurrent use.
type Navigator struct {
	target Target
	logger *slog.Logger

	screen  Screen
	stepped bool

	// name entry
	nameTagIndex int
	inputsLive   bool

	// stage select
	stageCommitted bool

	// character select
	cpuPhase CPUPhase
}

// Option configures a Navigator.
type Option func(*Navigator)

// WithLogger sets the logger used for screen transitions.
func WithLogger(logger *slog.Logger) Option {
	return func(n *Navigator) {
		n.logger = logger
	}
}

// NewNavigator validates target and returns a navigator for it.
func NewNavigator(target Target, opts ...Option) (*Navigator, error) {
	if err := target.Validate(); err != nil {
		return nil, err
	}
	n := &Navigator{
		target: target,
		logger: slog.Default().With("component", "menu"),
	}
	for _, opt := range opts {
		opt(n)
	}
	return n, nil
}

// Target returns the configuration the navigator was built with.
func (n *Navigator) Target() Target {
	return n.target
}

// Progress returns the automaton's current markers.
func (n *Navigator) Progress() Progress {
	return Progress{
		Screen:         n.screen,
		NameTagIndex:   n.nameTagIndex,
		InputsLive:     n.inputsLive,
		StageCommitted: n.stageCommitted,
		CPUPhase:       n.cpuPhase,
	}
}

// Step writes this frame's inputs for snapshot s to c. Stepping while the
// match is running does nothing.
func (n *Navigator) Step(s *melee.Snapshot, c Controller) {
	screen := ScreenOf(s)
	if !n.stepped || screen != n.screen {
		n.enter(screen, s)
	}

	switch screen {
	case ScreenNameEntry:
		n.enterDirectCode(s, c)
	case ScreenCharacterSelect:
		n.chooseCharacter(s, c)
	case ScreenStageSelect:
		n.chooseStage(s, c)
	case ScreenPostgame:
		skipPostgame(c)
	case ScreenMainMenu:
		if n.target.Online() {
			chooseDirectOnline(s, c)
		} else {
			chooseVersusMode(s, c)
		}
	case ScreenPressStart:
		pressStart(s, c)
	case ScreenInGame, ScreenIdle:
	}
}

// enter resets the markers that belong to a single visit of screen.
func (n *Navigator) enter(screen Screen, s *melee.Snapshot) {
	n.logger.Debug("menu screen changed",
		"character", n.target.Character.String(),
		"from", n.screen.String(),
		"to", screen.String(),
		"frame", s.Frame)

	n.screen = screen
	n.stepped = true
	switch screen {
	case ScreenNameEntry:
		n.nameTagIndex = 0
		n.inputsLive = false
	case ScreenStageSelect:
		n.stageCommitted = false
	case ScreenCharacterSelect:
		n.cpuPhase = CPUInactive
	}
}

// pressBack presses B unless it was held last frame, in which case it is
// released instead.
func pressBack(c Controller) {
	if c.Prev().Pressed(controller.ButtonB) {
		c.Release(controller.ButtonB)
		return
	}
	c.Press(controller.ButtonB)
}

// toggle presses b if it was up last frame and releases it otherwise.
func toggle(c Controller, b controller.Button) {
	if c.Prev().Pressed(b) {
		c.Release(b)
		return
	}
	c.Press(b)
}

// releaseFrame reports whether this frame is a release frame in the
// press/release alternation.
func releaseFrame(s *melee.Snapshot) bool {
	return s.Frame%2 == 0
}

// moveToward tilts the main stick toward target, one axis at a time, when
// the cursor is outside the tolerance window. Vertical error is corrected
// first. It reports whether a move was issued.
func moveToward(c Controller, cursor, target melee.Cursor, tolerance, magnitude float64) bool {
	lo := controller.Neutral - magnitude
	hi := controller.Neutral + magnitude
	switch {
	case cursor.Y < target.Y-tolerance:
		c.TiltAnalog(controller.StickMain, controller.Neutral, hi)
	case cursor.Y > target.Y+tolerance:
		c.TiltAnalog(controller.StickMain, controller.Neutral, lo)
	case cursor.X < target.X-tolerance:
		c.TiltAnalog(controller.StickMain, hi, controller.Neutral)
	case cursor.X > target.X+tolerance:
		c.TiltAnalog(controller.StickMain, lo, controller.Neutral)
	default:
		return false
	}
	return true
}
