package menu

import (
	"github.com/vladfi1/libmelee/controller"
	"github.com/vladfi1/libmelee/melee"
)

// stageSelectDeadFrames is how long the stage select screen ignores input
// after it appears.
const stageSelectDeadFrames = 20

// chooseStage moves the cursor onto the target stage and confirms it once.
// After that it only releases inputs, or holds A when the target is Sheik:
// holding A while the match loads turns the Zelda pick into Sheik.
func (n *Navigator) chooseStage(s *melee.Snapshot, c Controller) {
	if s.Frame == 0 {
		n.stageCommitted = false
	}

	if n.stageCommitted {
		if n.target.Character == melee.Sheik {
			c.Press(controller.ButtonA)
		} else {
			c.ReleaseAll()
		}
		return
	}

	if s.Frame < stageSelectDeadFrames {
		c.ReleaseAll()
		return
	}

	me, ok := s.Player(c.Port())
	if !ok {
		c.ReleaseAll()
		return
	}
	// Validated at construction.
	target, _ := StagePosition(n.target.Stage)

	if moveToward(c, me.Cursor, target, wiggleRoom, 0.5) {
		c.Release(controller.ButtonA)
		return
	}

	c.TiltAnalog(controller.StickMain, controller.Neutral, controller.Neutral)
	c.Press(controller.ButtonA)
	n.stageCommitted = true
	n.logger.Debug("stage committed",
		"stage", n.target.Stage.String(),
		"frame", s.Frame)
}
