package tictactoe_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rocketscienceinc/tictactoe-desktop/internal/entity"
	"github.com/rocketscienceinc/tictactoe-desktop/internal/tictactoe"
	"github.com/rocketscienceinc/tictactoe-desktop/internal/widget"
	"github.com/rocketscienceinc/tictactoe-desktop/testing/suite"
)

func TestNewGameController(t *testing.T) {
	// Given: a controller over a grid with O to move
	_, s := suite.New(t)
	controller := tictactoe.NewGameController(s.Logger, widget.NewGrid(), entity.NewGame(entity.MarkO))

	// When: it is laid out in a tall area and started
	size := controller.Resize(120, 200)
	controller.Start()

	// Then: the board is square, O moves first and frames are requested
	assert.Equal(t, widget.Size{Width: 120, Height: 120}, size)
	assert.Equal(t, size, controller.Size())
	game := controller.Game()
	assert.Equal(t, entity.MarkO, game.Actor())
	assert.True(t, controller.TakeRequests().AnimFrame)
}

func TestGameController_Dispatch(t *testing.T) {
	t.Run("Click applies the move for the player to move", func(t *testing.T) {
		// Given: a started controller with X to move
		_, s := suite.New(t)
		controller, _ := s.Controller(entity.MarkX)

		// When: the center is clicked
		suite.Click(controller, 4)

		// Then: X holds the center and O moves next
		game := controller.Game()
		assert.Equal(t, entity.MarkX, game.Get(4))
		assert.Equal(t, entity.MarkO, game.Actor())

		// And: the host is asked for frames and a repaint
		requests := controller.TakeRequests()
		assert.True(t, requests.AnimFrame)
		assert.True(t, requests.Paint)
	})

	t.Run("Right click does nothing", func(t *testing.T) {
		// Given: a started controller
		_, s := suite.New(t)
		controller, _ := s.Controller(entity.MarkX)

		// When: the center is right-clicked
		controller.Dispatch(widget.MouseDown{Button: widget.ButtonRight, Pos: suite.CellCenter(4)})

		// Then: the board stays empty
		game := controller.Game()
		assert.Equal(t, entity.MarkNone, game.Get(4))
	})

	t.Run("Click outside the board does nothing", func(t *testing.T) {
		// Given: a started controller
		_, s := suite.New(t)
		controller, _ := s.Controller(entity.MarkX)

		// When: a point beyond the board is clicked
		controller.Dispatch(widget.MouseDown{Button: widget.ButtonLeft, Pos: widget.Point{X: suite.BoardSide + 5, Y: 10}})

		// Then: no cell is taken
		game := controller.Game()
		assert.Equal(t, [entity.BoardSize]entity.Mark{}, game.Cells())
	})

	t.Run("Returned game is a copy", func(t *testing.T) {
		// Given: a started controller
		_, s := suite.New(t)
		controller, _ := s.Controller(entity.MarkX)

		// When: the returned game is mutated
		game := controller.Game()
		require.True(t, game.Set(0))

		// Then: the controller state is untouched
		current := controller.Game()
		assert.Equal(t, entity.MarkNone, current.Get(0))
	})
}

func TestGameController_TakeRequests(t *testing.T) {
	// Given: a started controller with pending requests
	_, s := suite.New(t)
	controller, _ := s.Controller(entity.MarkX)
	require.True(t, controller.TakeRequests().AnimFrame)

	// When: requests are taken again without a dispatch
	requests := controller.TakeRequests()

	// Then: nothing is pending
	assert.Equal(t, widget.Requests{}, requests)
}
