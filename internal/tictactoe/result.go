package tictactoe

import "github.com/rocketscienceinc/tictactoe-engine/internal/entity"

// Outcome is what Evaluate found on a board.
type Outcome int

const (
	OutcomeNone Outcome = iota
	OutcomeWon
	OutcomeDraw
)

func (that Outcome) String() string {
	switch that {
	case OutcomeWon:
		return "won"
	case OutcomeDraw:
		return "draw"
	default:
		return "none"
	}
}

// WinCombos are checked in this order; the first complete line decides the winner.
var WinCombos = [8][3]int{
	{0, 1, 2},
	{3, 4, 5},
	{6, 7, 8},
	{0, 3, 6},
	{1, 4, 7},
	{2, 5, 8},
	{0, 4, 8},
	{2, 4, 6},
}

// Result of evaluating a board. Winner and Line are set only for OutcomeWon.
type Result struct {
	Outcome Outcome
	Winner  entity.Cell
	Line    [3]int
}

// Evaluate checks a board snapshot for a winner or a draw. It has no side effects.
func Evaluate(board entity.Board) Result {
	for _, combo := range WinCombos {
		a, b, c := board[combo[0]], board[combo[1]], board[combo[2]]
		if a != entity.EmptyCell && a == b && b == c {
			return Result{Outcome: OutcomeWon, Winner: a, Line: combo}
		}
	}

	if board.IsFull() {
		return Result{Outcome: OutcomeDraw}
	}

	return Result{Outcome: OutcomeNone}
}
