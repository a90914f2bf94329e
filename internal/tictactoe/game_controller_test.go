package tictactoe

import (
	"testing"

	"github.com/rocketscienceinc/tictactoe-engine/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-engine/internal/entity"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	x = entity.PlayerX
	o = entity.PlayerO
	e = entity.EmptyCell
)

func initialGame() entity.Game {
	return entity.Game{
		Board:        entity.Board{},
		Turn:         entity.PlayerX,
		Status:       entity.StatusOngoing,
		FocusedIndex: 0,
	}
}

func TestNewGameController(t *testing.T) {
	// Given: a new controller
	controller := NewGameController()

	// Then: the snapshot should be the initial state
	require.Equal(t, initialGame(), controller.Snapshot())
}

func TestGameController_Move(t *testing.T) {
	t.Run("Accepted move places the mark and switches the turn", func(t *testing.T) {
		// Given: a new game
		controller := NewGameController()

		// When: X plays the center
		game, err := controller.Move(4)
		require.NoError(t, err)

		// Then: only cell 4 changed and it is O's turn
		expected := initialGame()
		expected.Board[4] = x
		expected.Turn = o

		require.Equal(t, expected, game)
		require.Equal(t, expected, controller.Snapshot())
	})

	t.Run("Error on cell already occupied", func(t *testing.T) {
		// Given: X already owns cell 0
		controller := NewGameController()
		_, err := controller.Move(0)
		require.NoError(t, err)
		before := controller.Snapshot()

		// When: O tries the same cell
		game, err := controller.Move(0)

		// Then: the move is rejected and nothing changed
		require.ErrorIs(t, err, apperror.ErrInvalidMove)
		require.ErrorIs(t, err, apperror.ErrCellOccupied)
		assert.Equal(t, before, game)
		assert.Equal(t, before, controller.Snapshot())
	})

	t.Run("Error on invalid cell index", func(t *testing.T) {
		for _, cell := range []int{-1, 9, 20} {
			// Given: a new game
			controller := NewGameController()

			// When: a cell outside the board is played
			game, err := controller.Move(cell)

			// Then: the move is rejected and the game is untouched
			require.ErrorIs(t, err, apperror.ErrInvalidMove)
			require.ErrorIs(t, err, apperror.ErrInvalidCell)
			assert.Equal(t, initialGame(), game)
		}
	})

	t.Run("Moves after a win are rejected", func(t *testing.T) {
		// Given: X has won
		controller := NewGameController()
		play(t, controller, 0, 3, 1, 4, 2)
		before := controller.Snapshot()
		require.Equal(t, entity.StatusWon, before.Status)

		// When: another empty cell is played
		game, err := controller.Move(8)

		// Then: the move is rejected and the board is unchanged
		require.ErrorIs(t, err, apperror.ErrInvalidMove)
		require.ErrorIs(t, err, apperror.ErrGameFinished)
		assert.Equal(t, before, game)
		assert.Equal(t, e, controller.Snapshot().Board[8])
	})

	t.Run("Diagonal win for X", func(t *testing.T) {
		// Given: a new game
		controller := NewGameController()

		// When: X→0, O→1, X→4, O→2, X→8
		play(t, controller, 0, 1, 4, 2, 8)

		// Then: X wins via the main diagonal and the turn stays with X
		game := controller.Snapshot()
		assert.Equal(t, entity.StatusWon, game.Status)
		assert.Equal(t, x, game.Winner)
		assert.Equal(t, x, game.Turn)
		assert.Equal(t, [3]int{0, 4, 8}, Evaluate(game.Board).Line)
	})

	t.Run("Filling the board without a line is a draw", func(t *testing.T) {
		// Given: a new game
		controller := NewGameController()

		// When: the board is filled to X O X / X O O / O X X
		play(t, controller, 0, 1, 2, 4, 3, 5, 7, 6, 8)

		// Then: the game is a draw with no winner
		game := controller.Snapshot()
		assert.Equal(t, entity.StatusDraw, game.Status)
		assert.Equal(t, e, game.Winner)
		assert.Equal(t, entity.Board{x, o, x, x, o, o, o, x, x}, game.Board)

		_, err := controller.Move(0)
		require.ErrorIs(t, err, apperror.ErrGameFinished)
	})

	t.Run("Turn parity follows accepted moves only", func(t *testing.T) {
		// Given: a new game
		controller := NewGameController()

		cells := []int{4, 0, 8, 2, 1}
		for k, cell := range cells {
			// When: a rejected move is attempted before each accepted one
			_, err := controller.Move(-1)
			require.Error(t, err)

			_, err = controller.Move(cell)
			require.NoError(t, err)

			// Then: X moves after an even number of accepted moves, O after an odd number
			expected := o
			if (k+1)%2 == 0 {
				expected = x
			}
			assert.Equal(t, expected, controller.Snapshot().Turn)
		}
	})

	t.Run("Each accepted move changes exactly one cell", func(t *testing.T) {
		// Given: a new game
		controller := NewGameController()

		for _, cell := range []int{0, 1, 4, 2, 8} {
			before := controller.Snapshot().Board

			// When: a move is accepted
			game, err := controller.Move(cell)
			require.NoError(t, err)

			// Then: only the target cell differs
			changed := 0
			for i := range game.Board {
				if game.Board[i] != before[i] {
					changed++
					assert.Equal(t, cell, i)
				}
			}
			assert.Equal(t, 1, changed)
		}
	})
}

func TestGameController_Reset(t *testing.T) {
	t.Run("Reset after a finished game", func(t *testing.T) {
		// Given: a won game with focus moved away
		controller := FromSnapshot(entity.Game{ID: "123"})
		controller.Reset()
		play(t, controller, 0, 1, 4, 2, 8)
		_, err := controller.Navigate(entity.DirectionDown)
		require.NoError(t, err)

		// When: the game is reset
		game := controller.Reset()

		// Then: the initial state comes back and the ID is kept
		expected := initialGame()
		expected.ID = "123"
		require.Equal(t, expected, game)
		require.Equal(t, expected, controller.Snapshot())
	})

	t.Run("Reset on a new game is a no-op", func(t *testing.T) {
		controller := NewGameController()

		require.Equal(t, initialGame(), controller.Reset())
	})
}

func TestGameController_Navigate(t *testing.T) {
	t.Run("Moves the focus", func(t *testing.T) {
		// Given: focus on cell 0
		controller := NewGameController()

		// When: navigating left then down
		game, err := controller.Navigate(entity.DirectionLeft)
		require.NoError(t, err)
		assert.Equal(t, 8, game.FocusedIndex)

		game, err = controller.Navigate(entity.DirectionDown)
		require.NoError(t, err)

		// Then: the focus wraps around the flat ring
		assert.Equal(t, 2, game.FocusedIndex)
	})

	t.Run("Invalid direction keeps the focus", func(t *testing.T) {
		// Given: focus on cell 0
		controller := NewGameController()

		// When: an unknown direction is used
		game, err := controller.Navigate("diagonal")

		// Then: the snapshot is unchanged
		require.ErrorIs(t, err, apperror.ErrInvalidDirection)
		assert.Equal(t, initialGame(), game)
	})

	t.Run("Navigation works on a finished game", func(t *testing.T) {
		// Given: X has won
		controller := NewGameController()
		play(t, controller, 0, 1, 4, 2, 8)

		// When: navigating right
		game, err := controller.Navigate(entity.DirectionRight)

		// Then: focus moves while the outcome stays
		require.NoError(t, err)
		assert.Equal(t, 1, game.FocusedIndex)
		assert.Equal(t, entity.StatusWon, game.Status)
	})
}

func TestGameController_Focus(t *testing.T) {
	controller := NewGameController()

	game, err := controller.Focus(7)
	require.NoError(t, err)
	assert.Equal(t, 7, game.FocusedIndex)

	game, err = controller.Focus(9)
	require.ErrorIs(t, err, apperror.ErrInvalidCell)
	assert.Equal(t, 7, game.FocusedIndex)
}

func TestFromSnapshot(t *testing.T) {
	// Given: a stored game with an out of range focus
	stored := entity.Game{
		ID:           "abc",
		Board:        entity.Board{x, e, e, e, o, e, e, e, e},
		Turn:         x,
		Status:       entity.StatusOngoing,
		FocusedIndex: 11,
	}

	// When: a controller is rebuilt from it
	controller := FromSnapshot(stored)

	// Then: the focus is brought back into the board and play continues
	assert.Equal(t, 2, controller.Snapshot().FocusedIndex)

	game, err := controller.Move(8)
	require.NoError(t, err)
	assert.Equal(t, o, game.Turn)
}

func play(t *testing.T, controller *GameController, cells ...int) {
	t.Helper()

	for _, cell := range cells {
		_, err := controller.Move(cell)
		require.NoError(t, err, "move to cell %d", cell)
	}
}
