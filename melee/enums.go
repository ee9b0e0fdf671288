package melee

import "fmt"

// Character is the in-game (internal) character identifier.
type Character uint8

const (
	Mario         Character = 0x00
	Fox           Character = 0x01
	CaptainFalcon Character = 0x02
	DonkeyKong    Character = 0x03
	Kirby         Character = 0x04
	Bowser        Character = 0x05
	Link          Character = 0x06
	Sheik         Character = 0x07
	Ness          Character = 0x08
	Peach         Character = 0x09
	Popo          Character = 0x0a
	Nana          Character = 0x0b
	Pikachu       Character = 0x0c
	Samus         Character = 0x0d
	Yoshi         Character = 0x0e
	Jigglypuff    Character = 0x0f
	Mewtwo        Character = 0x10
	Luigi         Character = 0x11
	Marth         Character = 0x12
	Zelda         Character = 0x13
	YoungLink     Character = 0x14
	DrMario       Character = 0x15
	Falco         Character = 0x16
	Pichu         Character = 0x17
	GameAndWatch  Character = 0x18
	Ganondorf     Character = 0x19
	Roy           Character = 0x1a

	UnknownCharacter Character = 0xff
)

var characterNames = map[Character]string{
	Mario:         "MARIO",
	Fox:           "FOX",
	CaptainFalcon: "CPTFALCON",
	DonkeyKong:    "DK",
	Kirby:         "KIRBY",
	Bowser:        "BOWSER",
	Link:          "LINK",
	Sheik:         "SHEIK",
	Ness:          "NESS",
	Peach:         "PEACH",
	Popo:          "POPO",
	Nana:          "NANA",
	Pikachu:       "PIKACHU",
	Samus:         "SAMUS",
	Yoshi:         "YOSHI",
	Jigglypuff:    "JIGGLYPUFF",
	Mewtwo:        "MEWTWO",
	Luigi:         "LUIGI",
	Marth:         "MARTH",
	Zelda:         "ZELDA",
	YoungLink:     "YLINK",
	DrMario:       "DOC",
	Falco:         "FALCO",
	Pichu:         "PICHU",
	GameAndWatch:  "GAMEANDWATCH",
	Ganondorf:     "GANONDORF",
	Roy:           "ROY",
}

// String returns the upper-case name used in profiles and logs.
func (c Character) String() string {
	if name, ok := characterNames[c]; ok {
		return name
	}
	return fmt.Sprintf("UNKNOWN_CHARACTER(%d)", uint8(c))
}

// ParseCharacter looks up a character by the name String returns.
func ParseCharacter(name string) (Character, bool) {
	for c, n := range characterNames {
		if n == name {
			return c, true
		}
	}
	return UnknownCharacter, false
}

// cssOrder lists characters in the order their portraits appear on the
// character select screen, left to right, top row first.
var cssOrder = []Character{
	DrMario, Mario, Luigi, Bowser, Peach, Yoshi, DonkeyKong, CaptainFalcon, Ganondorf,
	Falco, Fox, Ness, Popo, Kirby, Samus, Zelda, Link, YoungLink,
	Pichu, Pikachu, Jigglypuff, Mewtwo, GameAndWatch, Marth, Roy,
}

// CSSIndex converts an internal character ID into its position on the
// character select screen. Characters without a portrait map to 0.
func CSSIndex(c Character) int {
	for i, o := range cssOrder {
		if o == c {
			return i
		}
	}
	return 0
}

// Stage is the in-game stage identifier.
type Stage uint8

const (
	NoStage          Stage = 0x00
	YoshisStory      Stage = 0x06
	FountainOfDreams Stage = 0x08
	PokemonStadium   Stage = 0x12
	Battlefield      Stage = 0x18
	FinalDestination Stage = 0x19
	Dreamland        Stage = 0x1a
	RandomStage      Stage = 0x1d
)

var stageNames = map[Stage]string{
	NoStage:          "NO_STAGE",
	YoshisStory:      "YOSHIS_STORY",
	FountainOfDreams: "FOUNTAIN_OF_DREAMS",
	PokemonStadium:   "POKEMON_STADIUM",
	Battlefield:      "BATTLEFIELD",
	FinalDestination: "FINAL_DESTINATION",
	Dreamland:        "DREAMLAND",
	RandomStage:      "RANDOM_STAGE",
}

func (s Stage) String() string {
	if name, ok := stageNames[s]; ok {
		return name
	}
	return fmt.Sprintf("UNKNOWN_STAGE(%d)", uint8(s))
}

// ParseStage looks up a stage by the name String returns.
func ParseStage(name string) (Stage, bool) {
	for s, n := range stageNames {
		if n == name {
			return s, true
		}
	}
	return NoStage, false
}

// Menu identifies the scene the game is currently showing.
type Menu uint8

const (
	CharacterSelect Menu = iota
	StageSelect
	InGame
	SuddenDeath
	PostgameScores
	MainMenu
	PressStart
	SlippiOnlineCSS
	UnknownMenu Menu = 0xff
)

func (m Menu) String() string {
	switch m {
	case CharacterSelect:
		return "CHARACTER_SELECT"
	case StageSelect:
		return "STAGE_SELECT"
	case InGame:
		return "IN_GAME"
	case SuddenDeath:
		return "SUDDEN_DEATH"
	case PostgameScores:
		return "POSTGAME_SCORES"
	case MainMenu:
		return "MAIN_MENU"
	case PressStart:
		return "PRESS_START"
	case SlippiOnlineCSS:
		return "SLIPPI_ONLINE_CSS"
	default:
		return "UNKNOWN_MENU"
	}
}

// SubMenu identifies the panel inside the main menu scene.
type SubMenu uint8

const (
	UnknownSubMenu SubMenu = iota
	MainMenuSubMenu
	OnePlayerSubMenu
	VersusSubMenu
	OnlinePlaySubMenu
	NameEntrySubMenu
)

func (s SubMenu) String() string {
	switch s {
	case MainMenuSubMenu:
		return "MAIN_MENU_SUBMENU"
	case OnePlayerSubMenu:
		return "ONEP_MODE_SUBMENU"
	case VersusSubMenu:
		return "VS_MODE_SUBMENU"
	case OnlinePlaySubMenu:
		return "ONLINE_PLAY_SUBMENU"
	case NameEntrySubMenu:
		return "NAME_ENTRY_SUBMENU"
	default:
		return "UNKNOWN_SUBMENU"
	}
}

// ControllerStatus is the HMN/CPU/NONE toggle shown above each port.
type ControllerStatus uint8

const (
	ControllerHuman     ControllerStatus = 0
	ControllerCPU       ControllerStatus = 1
	ControllerUnplugged ControllerStatus = 3
)

func (s ControllerStatus) String() string {
	switch s {
	case ControllerHuman:
		return "CONTROLLER_HUMAN"
	case ControllerCPU:
		return "CONTROLLER_CPU"
	case ControllerUnplugged:
		return "CONTROLLER_UNPLUGGED"
	default:
		return fmt.Sprintf("CONTROLLER_STATUS(%d)", uint8(s))
	}
}
