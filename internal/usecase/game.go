package usecase

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/google/uuid"
	"github.com/rocketscienceinc/tictactoe-cli/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-cli/internal/entity"
)

type GameUseCase interface {
	StartGame(ctx context.Context, firstPlayerName, secondPlayerName string) (*entity.Game, error)
	ResumeGame(ctx context.Context, gameID string) (*entity.Game, error)

	MakeTurn(ctx context.Context, game *entity.Game, row, col int) (entity.Outcome, error)
}

type gameRepoDep interface {
	CreateOrUpdate(ctx context.Context, game *entity.Game) error
	GetByID(ctx context.Context, id string) (*entity.Game, error)
	DeleteByID(ctx context.Context, id string) error
}

type gameUseCase struct {
	logger   *slog.Logger
	gameRepo gameRepoDep
}

func NewGameUseCase(logger *slog.Logger, gameRepo gameRepoDep) GameUseCase {
	return &gameUseCase{
		logger:   logger.With("component", "usecase"),
		gameRepo: gameRepo,
	}
}

func (that *gameUseCase) StartGame(ctx context.Context, firstPlayerName, secondPlayerName string) (*entity.Game, error) {
	game := entity.NewGame(uuid.NewString(), firstPlayerName, secondPlayerName)

	if err := that.gameRepo.CreateOrUpdate(ctx, game); err != nil {
		return nil, fmt.Errorf("failed to save new game: %w", err)
	}

	that.logger.Info("game started", "gameID", game.ID)

	return game, nil
}

func (that *gameUseCase) ResumeGame(ctx context.Context, gameID string) (*entity.Game, error) {
	game, err := that.gameRepo.GetByID(ctx, gameID)
	if err != nil {
		return nil, fmt.Errorf("failed to get game by id: %w", err)
	}

	if err = game.Validate(); err != nil {
		return nil, fmt.Errorf("stored game %s: %w", gameID, err)
	}

	that.logger.Info("game resumed", "gameID", game.ID, "turn", game.Turn)

	return game, nil
}

// MakeTurn - plays the current player's move on game and keeps the stored snapshot in sync.
// Rejected moves are returned as errors and leave both the game and the snapshot untouched.
// Snapshot failures are only logged: the move has already been played.
func (that *gameUseCase) MakeTurn(ctx context.Context, game *entity.Game, row, col int) (entity.Outcome, error) {
	log := that.logger.With("gameID", game.ID)

	player := game.CurrentPlayer()

	outcome, err := game.MakeTurn(row, col)
	if err != nil {
		log.Debug("move rejected", "player", player.Name, "row", row, "col", col, "error", err)
		return outcome, fmt.Errorf("failed to make turn: %w", err)
	}

	log.Debug("move placed", "player", player.Name, "mark", player.Mark, "row", row, "col", col)

	if !game.IsFinished() {
		if err = that.gameRepo.CreateOrUpdate(ctx, game); err != nil {
			log.Warn("failed to update game snapshot", "error", err)
		}

		return outcome, nil
	}

	log.Info("game finished", "winner", game.Winner.String(), "draw", outcome.IsDraw())

	err = that.gameRepo.DeleteByID(ctx, game.ID)
	switch {
	case errors.Is(err, apperror.ErrGameNotFound):
		log.Debug("finished game had no snapshot")
	case err != nil:
		log.Warn("failed to delete finished game snapshot", "error", err)
	}

	return outcome, nil
}

// IsRejectedMove - reports whether err came from an illegal move rather than from storage.
func IsRejectedMove(err error) bool {
	return errors.Is(err, apperror.ErrInvalidCell) ||
		errors.Is(err, apperror.ErrCellOccupied) ||
		errors.Is(err, apperror.ErrGameFinished)
}
