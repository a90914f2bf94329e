package usecase

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"

	"github.com/rocketscienceinc/tictactoe-engine/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-engine/internal/entity"
	"github.com/rocketscienceinc/tictactoe-engine/internal/pkg"
	"github.com/rocketscienceinc/tictactoe-engine/internal/tictactoe"
)

type gameRepo interface {
	CreateOrUpdate(ctx context.Context, game *entity.Game) error
	GetByID(ctx context.Context, id string) (*entity.Game, error)
	DeleteByID(ctx context.Context, id string) error
}

// GameManager runs game sessions for remote clients. Commands for the same
// game are applied one at a time.
type GameManager struct {
	logger   *slog.Logger
	gameRepo gameRepo
	newID    func() string

	mu    sync.Mutex
	locks map[string]*gameLock
}

type gameLock struct {
	sync.Mutex
	refs int
}

func NewGameManager(logger *slog.Logger, gameRepo gameRepo) *GameManager {
	return &GameManager{
		logger:   logger.With("component", "game_manager"),
		gameRepo: gameRepo,
		newID:    pkg.GenerateGameID,
		locks:    make(map[string]*gameLock),
	}
}

func (that *GameManager) NewGame(ctx context.Context) (*entity.Game, error) {
	game := entity.NewGame(that.newID())

	if err := that.gameRepo.CreateOrUpdate(ctx, game); err != nil {
		return nil, fmt.Errorf("failed to create game: %w", err)
	}

	that.logger.Debug("game created", "game_id", game.ID)

	return game, nil
}

func (that *GameManager) GetGame(ctx context.Context, id string) (*entity.Game, error) {
	game, err := that.gameRepo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get game: %w", err)
	}

	return game, nil
}

// MakeMove plays the current player's mark on the cell. A rejected move
// returns the unchanged game together with an apperror.ErrInvalidMove chain.
func (that *GameManager) MakeMove(ctx context.Context, id string, cell int) (*entity.Game, error) {
	log := that.logger.With("method", "MakeMove", "game_id", id)

	var moveErr error

	game, err := that.apply(ctx, id, func(controller *tictactoe.GameController) bool {
		_, moveErr = controller.Move(cell)
		return moveErr == nil
	})
	if err != nil {
		return nil, err
	}

	if moveErr != nil {
		log.Debug("move rejected", "cell", cell, "error", moveErr)
		return game, moveErr
	}

	if game.IsFinished() {
		log.Info("game finished", "status", game.Status, "winner", game.Winner)
	}

	return game, nil
}

// Navigate moves the focused cell. An unknown direction is ignored and the
// game comes back unchanged.
func (that *GameManager) Navigate(ctx context.Context, id string, direction entity.Direction) (*entity.Game, error) {
	return that.apply(ctx, id, func(controller *tictactoe.GameController) bool {
		_, err := controller.Navigate(direction)
		if errors.Is(err, apperror.ErrInvalidDirection) {
			that.logger.Debug("direction ignored", "game_id", id, "direction", direction)
		}

		return err == nil
	})
}

// Focus moves the focus straight to a cell.
func (that *GameManager) Focus(ctx context.Context, id string, cell int) (*entity.Game, error) {
	var focusErr error

	game, err := that.apply(ctx, id, func(controller *tictactoe.GameController) bool {
		_, focusErr = controller.Focus(cell)
		return focusErr == nil
	})
	if err != nil {
		return nil, err
	}

	return game, focusErr
}

// Reset puts an existing game back to its initial state.
func (that *GameManager) Reset(ctx context.Context, id string) (*entity.Game, error) {
	return that.apply(ctx, id, func(controller *tictactoe.GameController) bool {
		controller.Reset()
		return true
	})
}

func (that *GameManager) DeleteGame(ctx context.Context, id string) error {
	unlock := that.lock(id)
	defer unlock()

	if err := that.gameRepo.DeleteByID(ctx, id); err != nil {
		return fmt.Errorf("failed to delete game: %w", err)
	}

	that.logger.Debug("game deleted", "game_id", id)

	return nil
}

// apply loads the game, runs cmd on it and stores the result when cmd reports a change.
func (that *GameManager) apply(
	ctx context.Context, id string, cmd func(controller *tictactoe.GameController) bool,
) (*entity.Game, error) {
	unlock := that.lock(id)
	defer unlock()

	stored, err := that.gameRepo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get game: %w", err)
	}

	controller := tictactoe.FromSnapshot(*stored)
	changed := cmd(controller)

	game := controller.Snapshot()
	if !changed {
		return &game, nil
	}

	if err = that.gameRepo.CreateOrUpdate(ctx, &game); err != nil {
		return nil, fmt.Errorf("failed to update game: %w", err)
	}

	return &game, nil
}

// lock serialises commands per game id. The returned func releases the lock.
func (that *GameManager) lock(id string) func() {
	that.mu.Lock()
	l, ok := that.locks[id]
	if !ok {
		l = &gameLock{}
		that.locks[id] = l
	}
	l.refs++
	that.mu.Unlock()

	l.Lock()

	return func() {
		l.Unlock()

		that.mu.Lock()
		l.refs--
		if l.refs == 0 {
			delete(that.locks, id)
		}
		that.mu.Unlock()
	}
}
