package menu

import (
	"github.com/vladfi1/libmelee/controller"
	"github.com/vladfi1/libmelee/melee"
)

// enterDirectCode types the connect code on the name entry screen, one
// character per input frame, then presses START to confirm.
func (n *Navigator) enterDirectCode(s *melee.Snapshot, c Controller) {
	// The screen swallows input for its first frames, so a code starting
	// with A (the cell the cursor starts on) could lose its first press.
	// Wait until a nudge actually moves the cursor.
	if s.MenuSelection != nameEntryDeadCell {
		n.inputsLive = true
	}
	if !n.inputsLive {
		c.TiltAnalog(controller.StickMain, 1, controller.Neutral)
		return
	}

	if releaseFrame(s) {
		c.ReleaseAll()
		return
	}

	code := []rune(n.target.ConnectCode)
	if n.nameTagIndex >= len(code) {
		c.Press(controller.ButtonStart)
		return
	}

	target, _ := NameEntryCell(code[n.nameTagIndex])
	if s.MenuSelection == target {
		c.Press(controller.ButtonA)
		n.nameTagIndex++
		return
	}

	p := NameEntryDirection(s.MenuSelection, target)
	c.TiltAnalog(controller.StickMain, p.X, p.Y)
}
