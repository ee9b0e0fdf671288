package menu

import "github.com/vladfi1/libmelee/melee"

// Screen is the automaton state a snapshot puts the navigator in. Every menu
// scene maps onto exactly one Screen, and Navigator.Step has one handler per
// Screen.
type Screen int

const (
	// ScreenIdle covers scenes the navigator has no business in.
	ScreenIdle Screen = iota
	ScreenPressStart
	ScreenMainMenu
	ScreenNameEntry
	ScreenCharacterSelect
	ScreenStageSelect
	ScreenPostgame
	// ScreenInGame is terminal: the match is running.
	ScreenInGame
)

func (s Screen) String() string {
	switch s {
	case ScreenPressStart:
		return "press_start"
	case ScreenMainMenu:
		return "main_menu"
	case ScreenNameEntry:
		return "name_entry"
	case ScreenCharacterSelect:
		return "character_select"
	case ScreenStageSelect:
		return "stage_select"
	case ScreenPostgame:
		return "postgame"
	case ScreenInGame:
		return "in_game"
	default:
		return "idle"
	}
}

// ScreenOf classifies a snapshot.
func ScreenOf(s *melee.Snapshot) Screen {
	switch s.Menu {
	case melee.CharacterSelect, melee.SlippiOnlineCSS:
		if s.SubMenu == melee.NameEntrySubMenu {
			return ScreenNameEntry
		}
		return ScreenCharacterSelect
	case melee.StageSelect:
		return ScreenStageSelect
	case melee.PostgameScores:
		return ScreenPostgame
	case melee.MainMenu:
		return ScreenMainMenu
	case melee.PressStart:
		return ScreenPressStart
	case melee.InGame, melee.SuddenDeath:
		return ScreenInGame
	default:
		return ScreenIdle
	}
}
