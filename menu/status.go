package menu

import (
	"github.com/vladfi1/libmelee/controller"
	"github.com/vladfi1/libmelee/melee"
)

// HMN/CPU/N/A toggle positions on the character select screen.
const statusToggleY = -2.2

var statusToggleX = [...]float64{1: -31.5, 2: -16.5, 3: -1, 4: 14}

// ChangeControllerStatus moves c's cursor to the controller type toggle of
// targetPort and presses it until the port reports status. When character is
// non-nil the port must also show that character before it counts as done.
// It reports whether targetPort is already in the requested state.
//
// A plugged-in controller can only be switched to unplugged by its own
// cursor, so clearing a human port has to be done from that port.
func ChangeControllerStatus(s *melee.Snapshot, c Controller, targetPort int, status melee.ControllerStatus, character *melee.Character) bool {
	me, ok := s.Player(c.Port())
	if !ok {
		c.ReleaseAll()
		return false
	}
	other, ok := s.Player(targetPort)
	if !ok {
		c.ReleaseAll()
		return false
	}

	correctCharacter := character == nil || *character == other.CharacterSelected
	if other.ControllerStatus == status && correctCharacter {
		c.ReleaseAll()
		return true
	}

	target := melee.Cursor{Y: statusToggleY}
	if targetPort >= 1 && targetPort < len(statusToggleX) {
		target.X = statusToggleX[targetPort]
	}
	if moveToward(c, me.Cursor, target, wiggleRoom, 0.5) {
		return false
	}

	c.TiltAnalog(controller.StickMain, controller.Neutral, controller.Neutral)
	toggle(c, controller.ButtonA)
	return false
}
