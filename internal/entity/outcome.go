package entity

type OutcomeStatus int

const (
	OutcomeNotOver OutcomeStatus = iota
	OutcomeDraw
	OutcomeWin
)

// NoLine is the Line of every outcome that is not a win.
const NoLine = -1

// Outcome is the result of evaluating a board. Winner is only set for OutcomeWin and
// Line is an index into WinLines for OutcomeWin, NoLine otherwise.
type Outcome struct {
	Status OutcomeStatus
	Winner Mark
	Line   int
}

func notOver() Outcome {
	return Outcome{Status: OutcomeNotOver, Line: NoLine}
}

func (that Outcome) IsOver() bool {
	return that.Status != OutcomeNotOver
}

func (that Outcome) IsDraw() bool {
	return that.Status == OutcomeDraw
}

// WinnerMark - returns the winning mark and true, or false when nobody has won.
func (that Outcome) WinnerMark() (Mark, bool) {
	if that.Status != OutcomeWin {
		return EmptyCell, false
	}
	return that.Winner, true
}
