package tictactoe

import (
	"fmt"

	"github.com/rocketscienceinc/tictactoe-engine/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-engine/internal/entity"
)

// GameController owns one game and applies commands to it in call order.
// It is not safe for concurrent use.
type GameController struct {
	game entity.Game
}

func NewGameController() *GameController {
	return &GameController{game: *entity.NewGame("")}
}

// FromSnapshot rebuilds a controller around a stored game.
func FromSnapshot(game entity.Game) *GameController {
	game.FocusedIndex = normalizeIndex(game.FocusedIndex)

	return &GameController{game: game}
}

// Snapshot returns a copy of the current state.
func (that *GameController) Snapshot() entity.Game {
	return that.game
}

// Move places the current player's mark on the cell. A rejected move wraps
// apperror.ErrInvalidMove and leaves the game untouched.
func (that *GameController) Move(cell int) (entity.Game, error) {
	if err := that.validateMove(cell); err != nil {
		return that.game, fmt.Errorf("%w: %w", apperror.ErrInvalidMove, err)
	}

	player := that.game.Turn
	that.game.Board[cell] = player
	that.updateGameStatus(player)

	return that.game, nil
}

// Navigate moves the focused cell and returns the updated snapshot.
func (that *GameController) Navigate(direction entity.Direction) (entity.Game, error) {
	index, err := Navigate(that.game.FocusedIndex, direction)
	if err != nil {
		return that.game, err
	}

	that.game.FocusedIndex = index

	return that.game, nil
}

// Focus puts the focus on a cell directly, e.g. after a pointer click.
func (that *GameController) Focus(cell int) (entity.Game, error) {
	if !entity.IsValidCell(cell) {
		return that.game, fmt.Errorf("%w: cell %d", apperror.ErrInvalidCell, cell)
	}

	that.game.FocusedIndex = cell

	return that.game, nil
}

// Reset brings the game back to its initial state. The game ID is kept.
func (that *GameController) Reset() entity.Game {
	that.game = *entity.NewGame(that.game.ID)

	return that.game
}

// validateMove - checks if the move is valid.
func (that *GameController) validateMove(cell int) error {
	if that.game.IsFinished() {
		return apperror.ErrGameFinished
	}

	if !entity.IsValidCell(cell) {
		return fmt.Errorf("%w: cell %d", apperror.ErrInvalidCell, cell)
	}

	if that.game.Board[cell] != entity.EmptyCell {
		return apperror.ErrCellOccupied
	}

	return nil
}

// updateGameStatus - derives the status after a mark was placed.
func (that *GameController) updateGameStatus(player entity.Cell) {
	switch result := Evaluate(that.game.Board); result.Outcome {
	case OutcomeWon:
		that.game.Status = entity.StatusWon
		that.game.Winner = result.Winner
	case OutcomeDraw:
		that.game.Status = entity.StatusDraw
	default:
		that.game.Status = entity.StatusOngoing
		that.game.Turn = player.Opponent()
	}
}
