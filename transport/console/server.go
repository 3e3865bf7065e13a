package console

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strconv"
	"strings"

	"github.com/rocketscienceinc/tictactoe-cli/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-cli/internal/entity"
	"github.com/rocketscienceinc/tictactoe-cli/internal/usecase"
)

type uGame interface {
	StartGame(ctx context.Context, firstPlayerName, secondPlayerName string) (*entity.Game, error)
	ResumeGame(ctx context.Context, gameID string) (*entity.Game, error)

	MakeTurn(ctx context.Context, game *entity.Game, row, col int) (entity.Outcome, error)
}

// Server drives one game over a line based text stream.
type Server struct {
	logger *slog.Logger
	uGame  uGame

	reader *bufio.Reader
	writer io.Writer
}

func New(logger *slog.Logger, uGame uGame, in io.Reader, out io.Writer) *Server {
	return &Server{
		logger: logger.With("component", "console"),
		uGame:  uGame,
		reader: bufio.NewReader(in),
		writer: out,
	}
}

// Start - plays a game to the end. A non-empty resumeID continues a saved game when it exists.
// It returns nil once a win or a draw has been announced.
func (that *Server) Start(ctx context.Context, resumeID string) error {
	game, err := that.openGame(ctx, resumeID)
	if err != nil {
		return err
	}

	fmt.Fprint(that.writer, msgTitle)

	for {
		if err = ctx.Err(); err != nil {
			return fmt.Errorf("game interrupted: %w", err)
		}

		fmt.Fprint(that.writer, game.Board.Render())

		player := game.CurrentPlayer()
		fmt.Fprintf(that.writer, msgTurnFormat, player.Name, player.Mark)

		row, err := that.readCoordinate(msgEnterRow, msgInvalidRow)
		if err != nil {
			return err
		}

		col, err := that.readCoordinate(msgEnterColumn, msgInvalidColumn)
		if err != nil {
			return err
		}

		outcome, err := that.uGame.MakeTurn(ctx, game, row, col)
		if err != nil {
			if usecase.IsRejectedMove(err) {
				fmt.Fprintln(that.writer, msgInvalidMove)
				continue
			}

			return fmt.Errorf("failed to make turn: %w", err)
		}

		if outcome.IsOver() {
			that.announce(game, outcome)
			return nil
		}
	}
}

func (that *Server) openGame(ctx context.Context, resumeID string) (*entity.Game, error) {
	if resumeID != "" {
		game, err := that.uGame.ResumeGame(ctx, resumeID)
		switch {
		case err == nil && !game.IsFinished():
			fmt.Fprintf(that.writer, msgResumedGameFormat, game.ID)
			return game, nil
		case err == nil:
			that.logger.Warn("saved game is already finished, starting a new one", "gameID", resumeID)
		case errors.Is(err, apperror.ErrGameNotFound):
			that.logger.Warn("saved game not found, starting a new one", "gameID", resumeID)
		case errors.Is(err, apperror.ErrInvalidGameState):
			that.logger.Warn("saved game is corrupted, starting a new one", "gameID", resumeID, "error", err)
		default:
			return nil, fmt.Errorf("failed to resume game: %w", err)
		}
	}

	firstName, err := that.readName(msgFirstPlayerName)
	if err != nil {
		return nil, err
	}

	secondName, err := that.readName(msgSecondPlayerName)
	if err != nil {
		return nil, err
	}

	game, err := that.uGame.StartGame(ctx, firstName, secondName)
	if err != nil {
		return nil, fmt.Errorf("failed to start game: %w", err)
	}

	return game, nil
}

func (that *Server) announce(game *entity.Game, outcome entity.Outcome) {
	fmt.Fprint(that.writer, game.Board.Render())

	if winner, ok := outcome.WinnerMark(); ok {
		fmt.Fprintf(that.writer, msgWinFormat, winner)
		return
	}

	fmt.Fprintln(that.writer, msgDraw)
}

func (that *Server) readName(prompt string) (string, error) {
	fmt.Fprintln(that.writer, prompt)

	return that.readLine()
}

// readCoordinate - asks until the answer is an integer in the board range.
func (that *Server) readCoordinate(prompt, invalid string) (int, error) {
	for {
		fmt.Fprint(that.writer, prompt)

		line, err := that.readLine()
		if err != nil {
			return 0, err
		}

		value, err := strconv.Atoi(strings.TrimSpace(line))
		if err != nil || value < 0 || value >= entity.BoardSize {
			fmt.Fprintln(that.writer, invalid)
			continue
		}

		return value, nil
	}
}

// readLine - returns the next line without its line ending, whatever its length.
// A last line without a trailing newline is still returned.
func (that *Server) readLine() (string, error) {
	line, err := that.reader.ReadString('\n')
	if err != nil && !errors.Is(err, io.EOF) {
		return "", fmt.Errorf("failed to read input: %w", err)
	}

	if err != nil && line == "" {
		return "", apperror.ErrInputClosed
	}

	return strings.TrimRight(line, "\r\n"), nil
}
