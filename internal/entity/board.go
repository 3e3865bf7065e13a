package entity

import (
	"fmt"
	"strings"
)

const (
	BoardSize = 3

	MarkX     Mark = "X"
	MarkO     Mark = "O"
	EmptyCell Mark = ""

	emptyCellSymbol = "-"
)

// WinLines lists every line of the board as row-major cell indexes, in scan order:
// row 0, column 0, row 1, column 1, row 2, column 2, main diagonal, anti-diagonal.
var WinLines = [8][3]int{
	{0, 1, 2},
	{0, 3, 6},
	{3, 4, 5},
	{1, 4, 7},
	{6, 7, 8},
	{2, 5, 8},
	{0, 4, 8},
	{2, 4, 6},
}

// Mark is the symbol a player puts into a cell.
type Mark string

func (that Mark) String() string {
	if that == EmptyCell {
		return emptyCellSymbol
	}
	return string(that)
}

// Board is the 3x3 grid stored row-major. The zero value is an empty board.
type Board [BoardSize * BoardSize]Mark

// InBounds - reports whether row and col address a cell of the board.
func InBounds(row, col int) bool {
	return row >= 0 && row < BoardSize && col >= 0 && col < BoardSize
}

func (that *Board) Cell(row, col int) Mark {
	if !InBounds(row, col) {
		return EmptyCell
	}
	return that[row*BoardSize+col]
}

// PlaceMove - puts mark into the cell at row, col. It returns false and leaves the board
// untouched when the coordinates are out of range or the cell is already taken.
func (that *Board) PlaceMove(row, col int, mark Mark) bool {
	if !InBounds(row, col) {
		return false
	}

	cell := row*BoardSize + col
	if that[cell] != EmptyCell {
		return false
	}

	that[cell] = mark

	return true
}

// CheckGameOver - evaluates the board without modifying it.
func (that *Board) CheckGameOver() Outcome {
	for i, line := range WinLines {
		a, b, c := that[line[0]], that[line[1]], that[line[2]]
		if a != EmptyCell && a == b && b == c {
			return Outcome{Status: OutcomeWin, Winner: a, Line: i}
		}
	}

	// the game will continue until all the cells are filled
	for _, cell := range that {
		if cell == EmptyCell {
			return notOver()
		}
	}

	return Outcome{Status: OutcomeDraw, Line: NoLine}
}

// Render - draws the board with row and column headers.
func (that *Board) Render() string {
	var sb strings.Builder

	sb.WriteString("   0  1  2\n")
	for row := 0; row < BoardSize; row++ {
		fmt.Fprintf(&sb, "%d ", row)
		for col := 0; col < BoardSize; col++ {
			fmt.Fprintf(&sb, " %s ", that.Cell(row, col))
			if col < BoardSize-1 {
				sb.WriteString("|")
			}
		}
		sb.WriteString("\n")
		if row < BoardSize-1 {
			sb.WriteString("  -----------\n")
		}
	}

	return sb.String()
}
