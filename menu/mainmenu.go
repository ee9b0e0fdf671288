package menu

import (
	"github.com/vladfi1/libmelee/controller"
	"github.com/vladfi1/libmelee/melee"
)

// Menu selection indices on the main menu panels.
const (
	mainMenuVersusItem  = 1
	versusMenuMeleeItem = 0
	onePlayerOnlineItem = 2
	onlineDirectItem    = 2
	onlineDirectAltItem = 3
)

// chooseVersusMode walks the main menu into local versus mode.
func chooseVersusMode(s *melee.Snapshot, c Controller) {
	if releaseFrame(s) {
		c.ReleaseAll()
		return
	}

	switch s.SubMenu {
	case melee.MainMenuSubMenu:
		confirmOrMoveDown(s, c, mainMenuVersusItem)
	case melee.VersusSubMenu:
		confirmOrMoveDown(s, c, versusMenuMeleeItem)
	default:
		pressBack(c)
	}
}

// chooseDirectOnline walks the main menu into Slippi direct connect.
func chooseDirectOnline(s *melee.Snapshot, c Controller) {
	if releaseFrame(s) {
		c.ReleaseAll()
		return
	}

	switch s.SubMenu {
	case melee.OnlinePlaySubMenu:
		if s.MenuSelection == onlineDirectItem || s.MenuSelection == onlineDirectAltItem {
			c.Press(controller.ButtonA)
			return
		}
		c.TiltAnalog(controller.StickMain, controller.Neutral, 0)
	case melee.MainMenuSubMenu:
		c.Press(controller.ButtonA)
	case melee.OnePlayerSubMenu:
		confirmOrMoveDown(s, c, onePlayerOnlineItem)
	case melee.NameEntrySubMenu:
	default:
		pressBack(c)
	}
}

func confirmOrMoveDown(s *melee.Snapshot, c Controller, item int) {
	if s.MenuSelection == item {
		c.Press(controller.ButtonA)
		return
	}
	c.TiltAnalog(controller.StickMain, controller.Neutral, 0)
}

// pressStart gets past the title screen.
func pressStart(s *melee.Snapshot, c Controller) {
	if releaseFrame(s) {
		c.ReleaseAll()
		return
	}
	c.Press(controller.ButtonStart)
}

// skipPostgame alternates START presses until the scores screen closes.
func skipPostgame(c Controller) {
	toggle(c, controller.ButtonStart)
}
