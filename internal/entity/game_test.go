package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func play(t *testing.T, game *Game, cells ...int) {
	t.Helper()

	for _, cell := range cells {
		require.True(t, game.Set(cell), "move %d rejected", cell)
	}
}

func TestNewGame(t *testing.T) {
	t.Run("Uses the requested first player", func(t *testing.T) {
		// When: a game is created with X to move
		game := NewGame(MarkX)

		// Then: the board is empty, X moves and nothing is decided
		assert.Equal(t, MarkX, game.Actor())
		assert.Equal(t, [BoardSize]Mark{}, game.Cells())
		_, decided := game.Outcome()
		assert.False(t, decided)
		assert.False(t, game.Draw())
	})

	t.Run("Picks both players when unspecified", func(t *testing.T) {
		// Given: many games with no preferred first player
		seen := map[Mark]bool{}

		// When: creating them
		for range 200 {
			game := NewGame(MarkNone)
			seen[game.Actor()] = true
		}

		// Then: both players were chosen and nothing else
		assert.Equal(t, map[Mark]bool{MarkX: true, MarkO: true}, seen)
	})

	t.Run("Treats an unknown mark as unspecified", func(t *testing.T) {
		// Given: a first player that is neither X nor O
		for range 50 {
			// When: a game is created with it and a move is played
			game := NewGame(Mark(3))
			first := game.Actor()
			require.True(t, game.Set(0))

			// Then: a real player moved and the turn passed to the other one
			assert.Contains(t, []Mark{MarkX, MarkO}, first)
			assert.Equal(t, first, game.Get(0))
			assert.Equal(t, first.Opponent(), game.Actor())
		}
	})
}

func TestGame_Set(t *testing.T) {
	t.Run("Successful move flips the actor", func(t *testing.T) {
		// Given: a new game with X to move
		game := NewGame(MarkX)

		// When: X plays the center
		ok := game.Set(4)

		// Then: the mark is placed and O is to move
		require.True(t, ok)
		assert.Equal(t, MarkX, game.Get(4))
		assert.Equal(t, MarkO, game.Actor())
	})

	t.Run("Rejects an occupied cell", func(t *testing.T) {
		// Given: a game where cell 0 is taken by X
		game := NewGame(MarkX)
		play(t, &game, 0)
		before := game

		// When: O tries the same cell
		ok := game.Set(0)

		// Then: the move is rejected and the game is unchanged
		assert.False(t, ok)
		assert.Equal(t, before, game)
	})

	t.Run("Rejects cells off the board", func(t *testing.T) {
		// Given: a new game
		game := NewGame(MarkO)
		before := game

		// When: moves outside the board are attempted
		// Then: they are rejected without mutation
		for _, cell := range []int{-1, 9, 20} {
			assert.False(t, game.Set(cell))
		}
		assert.Equal(t, before, game)
	})

	t.Run("Rejects every move after the game is decided", func(t *testing.T) {
		// Given: X has won along the top row
		game := NewGame(MarkX)
		play(t, &game, 0, 3, 1, 4, 2)
		before := game

		// When: any further move is attempted
		// Then: all are rejected and the board never changes
		for cell := range BoardSize {
			assert.False(t, game.Set(cell))
		}
		assert.Equal(t, before, game)
		assert.Equal(t, MarkX, game.Actor())
	})
}

func TestGame_Get(t *testing.T) {
	game := NewGame(MarkX)
	play(t, &game, 8)

	assert.Equal(t, MarkX, game.Get(8))
	assert.Equal(t, MarkNone, game.Get(0))
	assert.Equal(t, MarkNone, game.Get(-1))
	assert.Equal(t, MarkNone, game.Get(9))
}

func TestGame_Scenarios(t *testing.T) {
	t.Run("Column win", func(t *testing.T) {
		// Given: X to move
		game := NewGame(MarkX)

		// When: X fills the left column
		play(t, &game, 0, 1, 3, 4, 6)

		// Then: X wins on line 3
		outcome, decided := game.Outcome()
		require.True(t, decided)
		assert.Equal(t, Outcome{Winner: MarkX, Line: LineCol0}, outcome)
	})

	t.Run("Main diagonal win", func(t *testing.T) {
		// Given: X to move
		game := NewGame(MarkX)

		// When: X fills 0, 4, 8
		play(t, &game, 0, 1, 4, 2, 8)

		// Then: X wins on line 6
		outcome, decided := game.Outcome()
		require.True(t, decided)
		assert.Equal(t, Outcome{Winner: MarkX, Line: LineMainDiagonal}, outcome)
		assert.False(t, game.Draw())
	})

	t.Run("Draw", func(t *testing.T) {
		// Given: X to move
		game := NewGame(MarkX)

		// When: the board is filled as X O X / X O O / O X X
		play(t, &game, 0, 1, 2, 4, 3, 5, 7, 6, 8)

		// Then: it is a draw with no outcome
		_, decided := game.Outcome()
		assert.False(t, decided)
		assert.True(t, game.Draw())
		assert.Equal(t, [BoardSize]Mark{
			MarkX, MarkO, MarkX,
			MarkX, MarkO, MarkO,
			MarkO, MarkX, MarkX,
		}, game.Cells())
	})

	t.Run("Center completing both diagonals reports the anti-diagonal", func(t *testing.T) {
		// Given: X holds all four corners
		game := NewGame(MarkX)
		play(t, &game, 0, 1, 8, 3, 2, 5, 6)
		require.False(t, game.Done(), "corners alone must not win")

		// When: O passes on 7 and X takes the center
		play(t, &game, 7, 4)

		// Then: the anti-diagonal is checked first
		outcome, decided := game.Outcome()
		require.True(t, decided)
		assert.Equal(t, LineAntiDiagonal, outcome.Line)
	})
}

func TestGame_EveryLineFromEveryCell(t *testing.T) {
	for line := LineRow0; line < lineCount; line++ {
		cells := line.Cells()

		for last := range cells {
			// Given: the two other cells of the line held by X, O elsewhere
			others := make([]int, 0, 2)
			for i, cell := range cells {
				if i != last {
					others = append(others, cell)
				}
			}

			filler := make([]int, 0, 2)
			for cell := range BoardSize {
				if cell != cells[0] && cell != cells[1] && cell != cells[2] && len(filler) < 2 {
					filler = append(filler, cell)
				}
			}

			game := NewGame(MarkX)
			play(t, &game, others[0], filler[0], others[1], filler[1])
			require.False(t, game.Done())

			// When: X completes the line
			play(t, &game, cells[last])

			// Then: the outcome names that line
			outcome, decided := game.Outcome()
			require.True(t, decided, "line %d last %d", line, cells[last])
			assert.Equal(t, Outcome{Winner: MarkX, Line: line}, outcome, "last cell %d", cells[last])
		}
	}
}

// completeLine - scans every line of the board.
func completeLine(cells [BoardSize]Mark) (Outcome, bool) {
	for line := LineRow0; line < lineCount; line++ {
		c := line.Cells()
		if cells[c[0]] != MarkNone && cells[c[0]] == cells[c[1]] && cells[c[1]] == cells[c[2]] {
			return Outcome{Winner: cells[c[0]], Line: line}, true
		}
	}

	return Outcome{}, false
}

func TestGame_AllReachablePositions(t *testing.T) {
	var games int

	var walk func(game Game)
	walk = func(game Game) {
		cells := game.Cells()
		outcome, decided := game.Outcome()
		_, complete := completeLine(cells)

		// no false positives or misses
		require.Equal(t, complete, decided)
		if decided {
			c := outcome.Line.Cells()
			for _, cell := range c {
				require.Equal(t, outcome.Winner, cells[cell])
			}
		}

		full := true
		for _, cell := range cells {
			if cell == MarkNone {
				full = false
			}
		}
		require.Equal(t, full && !decided, game.Draw())

		if decided || full {
			games++
			return
		}

		for index := range BoardSize {
			next := game
			if cells[index] != MarkNone {
				require.False(t, next.Set(index))
				require.Equal(t, game, next)
				continue
			}

			require.True(t, next.Set(index))
			walk(next)
		}
	}

	walk(NewGame(MarkX))

	assert.Equal(t, 255168, games)
}

func TestMark(t *testing.T) {
	assert.Equal(t, MarkO, MarkX.Opponent())
	assert.Equal(t, MarkX, MarkO.Opponent())
	assert.Equal(t, MarkNone, MarkNone.Opponent())
	assert.Equal(t, "X", MarkX.String())
	assert.Equal(t, MarkO, ParseMark("o"))
	assert.Equal(t, MarkNone, ParseMark(""))
}

func TestLine(t *testing.T) {
	assert.True(t, LineAntiDiagonal.Valid())
	assert.False(t, Line(8).Valid())
	assert.Equal(t, [3]int{2, 4, 6}, LineAntiDiagonal.Cells())
	assert.Equal(t, [3]int{1, 4, 7}, LineCol1.Cells())
}
