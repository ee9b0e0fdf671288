package melee

// Cursor is a menu cursor position in screen units.
type Cursor struct {
	X, Y float64
}

// PlayerState is one port's slice of a decoded frame.
type PlayerState struct {
	// Character is the in-game character. It has no meaning in menus.
	Character Character
	// CharacterSelected is the portrait the coin sits on at character select.
	CharacterSelected Character
	Costume           int
	Cursor            Cursor
	// CoinDown reports whether the selection coin is placed. It is never set
	// on the Slippi online character select screen.
	CoinDown           bool
	ControllerStatus   ControllerStatus
	CPULevel           int
	IsHoldingCPUSlider bool
	Action             int
}

// Snapshot is one frame of decoded game and menu state. Frame decoding lives
// outside this module; producers fill a Snapshot per frame and hand it to the
// menu automaton and the port detector.
type Snapshot struct {
	// Frame increases monotonically and is negative during match setup.
	Frame         int
	Menu          Menu
	SubMenu       SubMenu
	MenuSelection int
	ReadyToStart  bool
	Stage         Stage
	// Players is keyed by controller port (1-4).
	Players map[int]PlayerState
}

// Player returns the state for port, if present.
func (s *Snapshot) Player(port int) (PlayerState, bool) {
	p, ok := s.Players[port]
	return p, ok
}

// DetectPort finds which port is playing the given character and costume.
// Slippi online assigns ports at random, so a bot recovers its own port this
// way once the match has started. It returns (0, false) both when nobody
// matches and when more than one player matches.
func DetectPort(s *Snapshot, character Character, costume int) (int, bool) {
	detected, found := 0, false
	for port, p := range s.Players {
		if p.Character != character || p.Costume != costume {
			continue
		}
		if found {
			return 0, false
		}
		detected, found = port, true
	}
	return detected, found
}
