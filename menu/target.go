package menu

import (
	"strconv"

	"github.com/vladfi1/libmelee/melee"
)

// CPU levels accepted by the character select slider. Level 0 leaves the
// port human controlled (driven by the bot).
const (
	MinCPULevel = 0
	MaxCPULevel = 9
)

// Target is what the navigator should end up with once the match starts.
// It is fixed for the lifetime of a Navigator.
type Target struct {
	Character melee.Character
	Stage     melee.Stage
	// ConnectCode selects direct online play. Empty means local versus.
	ConnectCode string
	CPULevel    int
	Costume     int
	// Autostart presses START once the ready-to-start banner shows. On the
	// online screen it presses START as soon as the costume matches.
	Autostart bool
	// Swag orbits the opponent's cursor once our character is locked in.
	Swag bool
}

// Online reports whether the target is a direct-connect netplay match.
func (t Target) Online() bool {
	return t.ConnectCode != ""
}

// Validate reports configuration errors. Nothing is clamped or defaulted:
// a Target that fails validation must not be used.
func (t Target) Validate() error {
	if t.CPULevel < MinCPULevel || t.CPULevel > MaxCPULevel {
		return newConfigError("cpu_level", strconv.Itoa(t.CPULevel), ErrInvalidCPULevel)
	}
	if t.Character == melee.Sheik && t.CPULevel > 0 {
		return newConfigError("character", t.Character.String(), ErrSheikCPU)
	}
	if t.Character != melee.Sheik && t.Character != melee.DrMario && melee.CSSIndex(t.Character) == 0 {
		return newConfigError("character", t.Character.String(), ErrUnsupportedCharacter)
	}
	if _, ok := StagePosition(t.Stage); !ok {
		return newConfigError("stage", t.Stage.String(), ErrUnsupportedStage)
	}
	if !t.Online() {
		return nil
	}
	if t.CPULevel > 0 {
		return newConfigError("cpu_level", strconv.Itoa(t.CPULevel), ErrNetplayCPU)
	}
	if t.Character == melee.Zelda {
		return newConfigError("character", t.Character.String(), ErrNetplayZelda)
	}
	for _, r := range t.ConnectCode {
		if _, ok := NameEntryCell(r); !ok {
			return newConfigError("connect_code", t.ConnectCode, ErrInvalidConnectCode)
		}
	}
	return nil
}
