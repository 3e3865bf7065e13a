package console

const (
	msgTitle             = "Tic-Tac-Toe Game\n\n"
	msgFirstPlayerName   = "Enter player 1 name: "
	msgSecondPlayerName  = "Enter player 2 name: "
	msgTurnFormat        = "%s's turn (%s)\n"
	msgEnterRow          = "Enter row (0-2): "
	msgEnterColumn       = "Enter column (0-2): "
	msgInvalidRow        = "Invalid row input. Please enter a number between 0 and 2."
	msgInvalidColumn     = "Invalid column input. Please enter a number between 0 and 2."
	msgInvalidMove       = "Invalid move. Try again."
	msgWinFormat         = "%s wins!\n"
	msgDraw              = "It's a draw!"
	msgResumedGameFormat = "Resuming game %s\n"
)
