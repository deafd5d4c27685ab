package entity

import (
	"math/rand"
)

const (
	BoardSize = 9
	rowLen    = 3
)

// Mark - content of a single cell, and the player who owns it.
type Mark uint8

const (
	MarkNone Mark = iota
	MarkX
	MarkO
)

func (that Mark) String() string {
	switch that {
	case MarkX:
		return "X"
	case MarkO:
		return "O"
	default:
		return "-"
	}
}

// Opponent - returns the other player's mark, MarkNone stays MarkNone.
func (that Mark) Opponent() Mark {
	switch that {
	case MarkX:
		return MarkO
	case MarkO:
		return MarkX
	default:
		return MarkNone
	}
}

// ParseMark - converts "X"/"O" (any case) to a mark, anything else is MarkNone.
func ParseMark(s string) Mark {
	switch s {
	case "X", "x":
		return MarkX
	case "O", "o":
		return MarkO
	default:
		return MarkNone
	}
}

// Line - identifies one of the eight three-in-a-row patterns.
type Line uint8

const (
	LineRow0 Line = iota
	LineRow1
	LineRow2
	LineCol0
	LineCol1
	LineCol2
	LineMainDiagonal
	LineAntiDiagonal

	lineCount
)

var lineCells = [lineCount][3]int{
	{0, 1, 2},
	{3, 4, 5},
	{6, 7, 8},
	{0, 3, 6},
	{1, 4, 7},
	{2, 5, 8},
	{0, 4, 8},
	{2, 4, 6},
}

func (that Line) Valid() bool {
	return that < lineCount
}

// Cells - board indices covered by the line. Panics on an invalid line.
func (that Line) Cells() [3]int {
	return lineCells[that]
}

// Outcome - the winner and the line that decided the game.
type Outcome struct {
	Winner Mark
	Line   Line
}

// Game - board, player to move and the final outcome once decided.
// Game is a comparable value: copying it snapshots the whole state.
type Game struct {
	cells   [BoardSize]Mark
	actor   Mark
	outcome Outcome
	decided bool
}

// NewGame - returns an empty board with the given player to move first.
// Anything but X or O picks the first player at random.
func NewGame(first Mark) Game {
	if first != MarkX && first != MarkO {
		first = MarkO
		if rand.Intn(2) == 0 { //nolint: gosec // it's ok
			first = MarkX
		}
	}

	return Game{actor: first}
}

// Actor - the player to move. Frozen once the game is decided.
func (that *Game) Actor() Mark {
	return that.actor
}

func (that *Game) Outcome() (Outcome, bool) {
	return that.outcome, that.decided
}

func (that *Game) Done() bool {
	return that.decided
}

func (that *Game) Cells() [BoardSize]Mark {
	return that.cells
}

// Get - mark at index, MarkNone for indices outside the board.
func (that *Game) Get(index int) Mark {
	if index < 0 || index >= BoardSize {
		return MarkNone
	}

	return that.cells[index]
}

// Draw - the board is full and nobody won.
func (that *Game) Draw() bool {
	if that.decided {
		return false
	}

	for _, cell := range that.cells {
		if cell == MarkNone {
			return false
		}
	}

	return true
}

// Set - places the current player's mark at index. Returns false and leaves the
// game untouched when the game is decided, the index is off the board or the
// cell is taken.
func (that *Game) Set(index int) bool {
	if that.decided || index < 0 || index >= BoardSize || that.cells[index] != MarkNone {
		return false
	}

	that.cells[index] = that.actor

	if outcome, ok := that.winFrom(index); ok {
		that.outcome = outcome
		that.decided = true
	} else {
		that.actor = that.actor.Opponent()
	}

	return true
}

// winFrom - checks only the lines passing through index, a new win cannot
// appear anywhere else.
func (that *Game) winFrom(index int) (Outcome, bool) {
	if outcome, ok := that.check(LineRow0 + Line(index/rowLen)); ok {
		return outcome, true
	}

	if outcome, ok := that.check(LineCol0 + Line(index%rowLen)); ok {
		return outcome, true
	}

	switch {
	case index == 4:
		if outcome, ok := that.check(LineAntiDiagonal); ok {
			return outcome, true
		}
		return that.check(LineMainDiagonal)
	case index%4 == 0:
		return that.check(LineMainDiagonal)
	case index == 2 || index == 6:
		return that.check(LineAntiDiagonal)
	}

	return Outcome{}, false
}

func (that *Game) check(line Line) (Outcome, bool) {
	cells := line.Cells()
	a, b, c := that.cells[cells[0]], that.cells[cells[1]], that.cells[cells[2]]
	if a != MarkNone && a == b && b == c {
		return Outcome{Winner: a, Line: line}, true
	}

	return Outcome{}, false
}
