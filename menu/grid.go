package menu

import (
	"strings"

	"github.com/vladfi1/libmelee/controller"
	"github.com/vladfi1/libmelee/melee"
)

// Character select screen geometry, in cursor units.
const (
	portraitsPerRow = 9
	portraitSize    = 7.0
	portraitOriginX = -32.5
	portraitOriginY = 1.0

	// wiggleRoom is how close the cursor must be to a target position.
	wiggleRoom = 1.5
)

// CharacterCell returns the portrait cell for c. Rows are counted from the
// bottom (the cursor Y axis grows upward), so row 2 is the top row of the
// screen. The bottom row starts one cell to the right because of the random
// slot. Sheik has no portrait of her own and is reached through Zelda.
func CharacterCell(c melee.Character) (row, column int) {
	if c == melee.Sheik {
		c = melee.Zelda
	}
	idx := melee.CSSIndex(c)
	row = idx / portraitsPerRow
	column = idx % portraitsPerRow
	if row == 2 {
		column++
	}
	return 2 - row, column
}

// CellPosition returns the cursor position of the center of a portrait cell.
func CellPosition(row, column int) melee.Cursor {
	return melee.Cursor{
		X: portraitOriginX + portraitSize/2 + float64(column)*portraitSize,
		Y: portraitOriginY + portraitSize/2 + float64(row)*portraitSize,
	}
}

// Stage select cursor targets. The values were measured against the stage
// select screen and are reproduced as is.
var stagePositions = map[melee.Stage]melee.Cursor{
	melee.Battlefield:      {X: 1, Y: -9},
	melee.FinalDestination: {X: 6.7, Y: -9},
	melee.Dreamland:        {X: 12.5, Y: -9},
	melee.PokemonStadium:   {X: 15, Y: 3.5},
	melee.YoshisStory:      {X: 3.5, Y: 15.5},
	melee.FountainOfDreams: {X: 10, Y: 15.5},
	melee.RandomStage:      {X: -13.5, Y: 3.5},
}

// StagePosition returns where the stage select cursor must sit to pick stage.
func StagePosition(stage melee.Stage) (melee.Cursor, bool) {
	p, ok := stagePositions[stage]
	return p, ok
}

// Name entry grid. Each row group occupies one cell of every five; moving one
// column to the right lowers the cell index by five.
var nameEntryRows = [...]struct {
	chars string
	base  int
}{
	{"ABCDEFGHIJ", 45},
	{"KLMNOPQRST", 46},
	{"UVWXYZ   #", 47},
	{"0123456789", 48},
}

const (
	// nameEntryDeadCell is where the name entry cursor starts. Until the
	// reported selection leaves it, the screen is still ignoring input.
	nameEntryDeadCell = 45

	// nameEntryWrapCell sits off the letter grid and needs a vertical nudge
	// to get back onto it.
	nameEntryWrapCell = 57
)

// NameEntryCell returns the grid cell index for r.
func NameEntryCell(r rune) (int, bool) {
	for _, row := range nameEntryRows {
		if col := strings.IndexRune(row.chars, r); col != -1 {
			return row.base - col*5, true
		}
	}
	return 0, false
}

// NameEntryDirection returns the stick position that moves the name entry
// cursor from selection toward target. Targets five or more cells away are
// in another column and need a horizontal move; nearer targets share the
// column and are reached by moving up, which wraps within the column.
func NameEntryDirection(selection, target int) controller.Point {
	if selection == nameEntryWrapCell {
		return controller.Point{X: controller.Neutral, Y: 1}
	}
	diff := target - selection
	if diff < 0 {
		diff = -diff
	}
	if selection <= target-5 {
		return controller.Point{X: 0, Y: controller.Neutral}
	}
	if diff < 5 {
		return controller.Point{X: controller.Neutral, Y: 1}
	}
	return controller.Point{X: 1, Y: controller.Neutral}
}
