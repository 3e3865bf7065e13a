package entity

import (
	"testing"

	"github.com/rocketscienceinc/tictactoe-cli/internal/apperror"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewGame(t *testing.T) {
	// When: create a new game instance
	game := NewGame("123", "Alice", "Bob")

	// Then: the game should have the expected initial state
	expectedGame := &Game{
		ID:    "123",
		Board: Board{},
		Players: [2]Player{
			{Name: "Alice", Mark: MarkX},
			{Name: "Bob", Mark: MarkO},
		},
		Turn:   0,
		Status: StatusOngoing,
	}

	require.Equal(t, expectedGame, game)
	assert.Equal(t, Player{Name: "Alice", Mark: MarkX}, game.CurrentPlayer())
}

func TestGame_MakeTurn(t *testing.T) {
	t.Run("Successful Turn", func(t *testing.T) {
		// Given: A new game
		game := NewGame("123", "Alice", "Bob")

		// When: the first player makes a valid turn
		outcome, err := game.MakeTurn(0, 0)
		require.NoError(t, err)

		// Then: the mark is placed and the turn passes to the second player
		assert.False(t, outcome.IsOver())
		assert.Equal(t, NoLine, outcome.Line)
		assert.Equal(t, MarkX, game.Board.Cell(0, 0))
		assert.Equal(t, 1, game.Turn)
		assert.Equal(t, StatusOngoing, game.Status)
	})

	t.Run("Turn alternates and ignores failed moves", func(t *testing.T) {
		// Given: A new game
		game := NewGame("123", "Alice", "Bob")
		moves := [][2]int{{0, 0}, {1, 1}, {0, 1}, {2, 2}}
		turns := make([]int, 0, len(moves))

		for _, m := range moves {
			// When: a failed move is attempted before every valid one
			_, err := game.MakeTurn(m[0], 7)
			require.ErrorIs(t, err, apperror.ErrInvalidCell)

			turns = append(turns, game.Turn)
			_, err = game.MakeTurn(m[0], m[1])
			require.NoError(t, err)
		}

		// Then: the turn index strictly alternates
		assert.Equal(t, []int{0, 1, 0, 1}, turns)
		assert.Equal(t, 0, game.Turn)
	})

	t.Run("Error on Cell Already Occupied", func(t *testing.T) {
		// Given: A game where cell 0,0 is taken by X
		game := NewGame("123", "Alice", "Bob")
		_, err := game.MakeTurn(0, 0)
		require.NoError(t, err)
		before := *game

		// When: O tries to move to the same cell
		_, err = game.MakeTurn(0, 0)

		// Then: An ErrCellOccupied error should be returned
		require.ErrorIs(t, err, apperror.ErrCellOccupied)

		// And: The game state should remain unchanged
		require.Equal(t, before, *game)
	})

	t.Run("Error on Invalid Cell", func(t *testing.T) {
		// Given: A new game
		game := NewGame("123", "Alice", "Bob")

		// When: coordinates outside the grid are passed
		outcome, err := game.MakeTurn(3, -1)

		// Then: An ErrInvalidCell error should be returned and nothing changes
		require.ErrorIs(t, err, apperror.ErrInvalidCell)
		assert.Equal(t, NewGame("123", "Alice", "Bob"), game)

		// And: the outcome does not point at the row 0 line
		assert.Equal(t, Outcome{Status: OutcomeNotOver, Line: NoLine}, outcome)
	})

	t.Run("Winning move finishes the game", func(t *testing.T) {
		// Given: X is one move away from completing row 0
		game := NewGame("123", "Alice", "Bob")
		for _, m := range [][2]int{{0, 0}, {1, 0}, {0, 1}, {1, 1}} {
			_, err := game.MakeTurn(m[0], m[1])
			require.NoError(t, err)
		}

		// When: X completes the row
		outcome, err := game.MakeTurn(0, 2)
		require.NoError(t, err)

		// Then: X wins and the turn stays with the winner
		assert.Equal(t, Outcome{Status: OutcomeWin, Winner: MarkX, Line: 0}, outcome)
		assert.True(t, game.IsFinished())
		assert.Equal(t, MarkX, game.Winner)
		assert.Equal(t, 0, game.Turn)
	})

	t.Run("Last move without a line is a draw", func(t *testing.T) {
		// Given: a game with one cell left and no line possible
		game := NewGame("123", "Alice", "Bob")
		moves := [][2]int{{0, 0}, {0, 1}, {0, 2}, {1, 1}, {1, 0}, {1, 2}, {2, 1}, {2, 0}}
		for _, m := range moves {
			_, err := game.MakeTurn(m[0], m[1])
			require.NoError(t, err)
		}

		// When: X fills the last cell
		outcome, err := game.MakeTurn(2, 2)
		require.NoError(t, err)

		// Then: the game ends in a draw
		assert.True(t, outcome.IsDraw())
		assert.True(t, game.IsFinished())
		assert.Equal(t, EmptyCell, game.Winner)
	})

	t.Run("Move After Game Finished", func(t *testing.T) {
		// Given: A game where X has already won
		game := NewGame("123", "Alice", "Bob")
		game.Board = Board{MarkX, MarkX, MarkX, EmptyCell, MarkO, EmptyCell, EmptyCell, MarkO, EmptyCell}
		game.Status = StatusFinished
		game.Winner = MarkX
		before := *game

		// When: O tries to make a move after the game has finished
		outcome, err := game.MakeTurn(1, 0)

		// Then: ErrGameFinished is returned with the final outcome and the board is untouched
		require.ErrorIs(t, err, apperror.ErrGameFinished)
		assert.Equal(t, MarkX, outcome.Winner)
		assert.Equal(t, before, *game)
	})
}

func TestGame_Validate(t *testing.T) {
	t.Run("New game is valid", func(t *testing.T) {
		// Given: a game built by NewGame with a move on it
		game := NewGame("123", "Alice", "Bob")
		_, err := game.MakeTurn(1, 1)
		require.NoError(t, err)

		// When: validating it
		err = game.Validate()

		// Then: no error is returned
		require.NoError(t, err)
	})

	t.Run("Broken games are rejected", func(t *testing.T) {
		cases := map[string]func(game *Game){
			"turn too large": func(game *Game) { game.Turn = 2 },
			"negative turn":  func(game *Game) { game.Turn = -1 },
			"unknown mark":   func(game *Game) { game.Board[3] = "Z" },
			"swapped marks":  func(game *Game) { game.Players[0].Mark, game.Players[1].Mark = MarkO, MarkX },
			"missing marks":  func(game *Game) { game.Players = [2]Player{} },
			"unknown status": func(game *Game) { game.Status = "waiting" },
		}

		for name, breakGame := range cases {
			t.Run(name, func(t *testing.T) {
				// Given: a game with a corrupted field
				game := NewGame("123", "Alice", "Bob")
				breakGame(game)

				// When: validating it
				err := game.Validate()

				// Then: ErrInvalidGameState is returned
				require.ErrorIs(t, err, apperror.ErrInvalidGameState)
			})
		}
	})
}
