package menu

import (
	"math"

	"github.com/vladfi1/libmelee/controller"
	"github.com/vladfi1/libmelee/melee"
)

// CPU toggle and slider hot zones, per port. Measured against the character
// select screen and reproduced as is.
const (
	cpuToggleY        = -2.2
	cpuToggleX        = -32.2
	cpuToggleStride   = 15.82
	cpuSliderY        = -15.12
	cpuSliderX        = -30.9
	cpuSliderStride   = 15.4
	cpuWiggleRoom     = 1.0
	cpuSliderNudge    = 0.15
	cpuSliderApproach = 0.3

	swagRadius = 3.0
	swagPeriod = 1.5

	// The online character select has no coin, so a wrong pick is
	// backed out of every few frames instead.
	onlineBackInterval = 5
)

// chooseCharacter picks the target character on the character select
// screen, applies the CPU level if one was requested, and leaves the cursor
// off the portraits once the coin is down.
func (n *Navigator) chooseCharacter(s *melee.Snapshot, c Controller) {
	t := n.target
	port := c.Port()
	if _, ok := s.Player(port); !ok {
		c.ReleaseAll()
		return
	}

	online := s.Menu == melee.SlippiOnlineCSS
	swag := t.Swag
	me := s.Players[port]
	if online {
		// The online screen always reports the local cursor on port 1.
		local, ok := s.Player(1)
		if !ok {
			c.ReleaseAll()
			return
		}
		me = local
		swag = true
	}

	useCPU := t.CPULevel > 0
	targetCharacter := t.Character
	if targetCharacter == melee.Sheik {
		targetCharacter = melee.Zelda
	}
	correct := me.CharacterSelected == targetCharacter

	row, column := CharacterCell(targetCharacter)
	if swag {
		// the random slot
		row, column = 0, 0
	}
	target := CellPosition(row, column)

	if (useCPU && correct && (me.CoinDown || me.Cursor.Y < 0) && t.CPULevel != me.CPULevel) ||
		me.IsHoldingCPUSlider {
		n.assignCPU(s, c, me)
		return
	}
	if useCPU && correct && me.CPULevel == t.CPULevel {
		n.cpuPhase = CPUDone
	}

	// The online screen shows no other cursor to circle.
	if correct && swag && !online && !t.Autostart {
		if opponent, ok := opponentOf(s, port); ok {
			orbit(s, c, me.Cursor, opponent.Cursor)
			return
		}
	}

	if correct && swag && online {
		if releaseFrame(s) {
			c.ReleaseAll()
			return
		}
		switch {
		case me.Costume != t.Costume:
			c.Press(controller.ButtonY)
		case t.Autostart:
			c.Press(controller.ButtonStart)
		default:
			c.ReleaseAll()
		}
		return
	}

	if c.Prev().Pressed(controller.ButtonB) {
		c.Release(controller.ButtonB)
		return
	}

	if correct && me.CoinDown {
		if releaseFrame(s) {
			c.ReleaseAll()
			return
		}
		if t.Autostart && s.ReadyToStart {
			c.Press(controller.ButtonStart)
			return
		}
		c.ReleaseAll()
		return
	}

	c.Release(controller.ButtonStart)

	overCharacter := math.Abs(me.Cursor.X-target.X) < wiggleRoom &&
		math.Abs(me.Cursor.Y-target.Y) < wiggleRoom
	if !overCharacter {
		c.Release(controller.ButtonA)
		if !moveToward(c, me.Cursor, target, wiggleRoom, 0.5) {
			c.ReleaseAll()
		}
		return
	}

	c.TiltAnalog(controller.StickMain, controller.Neutral, controller.Neutral)
	switch {
	case online && !correct:
		if s.Frame%onlineBackInterval == 0 {
			pressBack(c)
			c.Release(controller.ButtonA)
			return
		}
		c.Press(controller.ButtonA)
		c.Release(controller.ButtonB)
	case !correct && me.CoinDown:
		// Over the right portrait but the coin is elsewhere: take it back.
		pressBack(c)
		c.Release(controller.ButtonA)
	default:
		toggle(c, controller.ButtonA)
	}
}

// assignCPU walks the CPU sub-sequence: flip the port to CPU, pick up the
// level slider, slide it to the requested level and drop it. Each phase is
// chosen from what the snapshot reports, so a phase only ends once the
// screen confirms it.
func (n *Navigator) assignCPU(s *melee.Snapshot, c Controller, me melee.PlayerState) {
	t := n.target
	port := c.Port()
	useCPU := t.CPULevel > 0
	cpuSelected := me.ControllerStatus == melee.ControllerCPU

	switch {
	case cpuSelected != useCPU:
		n.cpuPhase = CPUToggle
		target := melee.Cursor{
			X: cpuToggleX + cpuToggleStride*float64(port-1),
			Y: cpuToggleY,
		}
		c.Release(controller.ButtonA)
		if moveToward(c, me.Cursor, target, cpuWiggleRoom, 0.5) {
			return
		}
		pressOnAlternateFrames(s, c, controller.ButtonA)

	case me.IsHoldingCPUSlider:
		n.cpuPhase = CPUSetLevel
		switch {
		case me.CPULevel > t.CPULevel:
			c.Release(controller.ButtonA)
			c.TiltAnalog(controller.StickMain, controller.Neutral-cpuSliderNudge, controller.Neutral)
		case me.CPULevel < t.CPULevel:
			c.Release(controller.ButtonA)
			c.TiltAnalog(controller.StickMain, controller.Neutral+cpuSliderNudge, controller.Neutral)
		default:
			pressOnAlternateFrames(s, c, controller.ButtonA)
		}

	case me.CPULevel != t.CPULevel:
		n.cpuPhase = CPUGrabSlider
		target := melee.Cursor{
			X: cpuSliderX + cpuSliderStride*float64(port-1),
			Y: cpuSliderY,
		}
		c.Release(controller.ButtonA)
		if moveToward(c, me.Cursor, target, cpuWiggleRoom, cpuSliderApproach) {
			return
		}
		pressOnAlternateFrames(s, c, controller.ButtonA)
	}
}

// pressOnAlternateFrames presses b on act frames and releases everything
// on release frames.
func pressOnAlternateFrames(s *melee.Snapshot, c Controller, b controller.Button) {
	if releaseFrame(s) {
		c.ReleaseAll()
		return
	}
	c.Press(b)
}

// opponentOf returns the lowest-numbered port other than ours.
func opponentOf(s *melee.Snapshot, port int) (melee.PlayerState, bool) {
	for p := 1; p <= 4; p++ {
		if p == port {
			continue
		}
		if opponent, ok := s.Players[p]; ok {
			return opponent, true
		}
	}
	return melee.PlayerState{}, false
}

// orbit circles the cursor around the opponent's cursor. The stick is
// scaled so the larger axis error gets a full tilt.
func orbit(s *melee.Snapshot, c Controller, cursor, around melee.Cursor) {
	phase := float64(s.Frame) / swagPeriod
	target := melee.Cursor{
		X: around.X + swagRadius*math.Cos(phase),
		Y: around.Y + swagRadius*math.Sin(phase),
	}

	dx := math.Abs(target.X - cursor.X)
	dy := math.Abs(target.Y - cursor.Y)
	larger := math.Max(dx, dy)
	if larger == 0 {
		c.TiltAnalog(controller.StickMain, controller.Neutral, controller.Neutral)
		return
	}
	x, y := dx/larger/2, dy/larger/2
	if cursor.X < target.X {
		x = controller.Neutral + x
	} else {
		x = controller.Neutral - x
	}
	if cursor.Y < target.Y {
		y = controller.Neutral + y
	} else {
		y = controller.Neutral - y
	}
	c.TiltAnalog(controller.StickMain, x, y)
}
