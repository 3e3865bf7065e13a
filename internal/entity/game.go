package entity

import (
	"fmt"

	"github.com/rocketscienceinc/tictactoe-cli/internal/apperror"
)

const (
	StatusFinished = "finished"
	StatusOngoing  = "ongoing"
)

// Game is the state of one session: the board, both players and whose turn it is.
type Game struct {
	ID      string    `json:"id"`
	Board   Board     `json:"board"`
	Players [2]Player `json:"players"`
	Turn    int       `json:"turn"`
	Status  string    `json:"status"`
	Winner  Mark      `json:"winner,omitempty"`
}

// NewGame - creates a game with an empty board. The first player plays X and moves first.
func NewGame(id, firstPlayerName, secondPlayerName string) *Game {
	return &Game{
		ID: id,
		Players: [2]Player{
			{Name: firstPlayerName, Mark: MarkX},
			{Name: secondPlayerName, Mark: MarkO},
		},
		Turn:   0,
		Status: StatusOngoing,
	}
}

// Validate - checks a game that was not built by NewGame, e.g. one read back from storage.
func (that *Game) Validate() error {
	if that.Turn < 0 || that.Turn >= len(that.Players) {
		return fmt.Errorf("%w: turn %d", apperror.ErrInvalidGameState, that.Turn)
	}

	if that.Players[0].Mark != MarkX || that.Players[1].Mark != MarkO {
		return fmt.Errorf("%w: player marks %q and %q", apperror.ErrInvalidGameState, that.Players[0].Mark, that.Players[1].Mark)
	}

	for i, cell := range that.Board {
		if cell != EmptyCell && cell != MarkX && cell != MarkO {
			return fmt.Errorf("%w: cell %d holds %q", apperror.ErrInvalidGameState, i, cell)
		}
	}

	if that.Status != StatusOngoing && that.Status != StatusFinished {
		return fmt.Errorf("%w: status %q", apperror.ErrInvalidGameState, that.Status)
	}

	return nil
}

func (that *Game) CurrentPlayer() Player {
	return that.Players[that.Turn]
}

func (that *Game) IsFinished() bool {
	return that.Status == StatusFinished
}

func (that *Game) Outcome() Outcome {
	return that.Board.CheckGameOver()
}

// MakeTurn - places the current player's mark at row, col. A failed move changes nothing,
// including the turn. The turn only passes to the other player while the game goes on.
func (that *Game) MakeTurn(row, col int) (Outcome, error) {
	if that.IsFinished() {
		return that.Outcome(), apperror.ErrGameFinished
	}

	if !InBounds(row, col) {
		return notOver(), fmt.Errorf("%w: row %d, col %d", apperror.ErrInvalidCell, row, col)
	}

	if !that.Board.PlaceMove(row, col, that.CurrentPlayer().Mark) {
		return notOver(), fmt.Errorf("%w: row %d, col %d", apperror.ErrCellOccupied, row, col)
	}

	outcome := that.Board.CheckGameOver()
	that.updateGameState(outcome)

	return outcome, nil
}

func (that *Game) updateGameState(outcome Outcome) {
	switch outcome.Status {
	case OutcomeWin:
		that.Winner = outcome.Winner
		that.Status = StatusFinished
	case OutcomeDraw:
		that.Status = StatusFinished
	case OutcomeNotOver:
		that.Turn = (that.Turn + 1) % len(that.Players)
	}
}
