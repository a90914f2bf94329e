package entity

// Cell is the content of one board position.
type Cell string

const (
	EmptyCell Cell = ""
	PlayerX   Cell = "X"
	PlayerO   Cell = "O"
)

const (
	StatusOngoing = "ongoing"
	StatusWon     = "won"
	StatusDraw    = "draw"
)

const (
	BoardSize = 9
	RowSize   = 3
)

// Board is the 3x3 grid stored row by row: row = index/3, column = index%3.
type Board [BoardSize]Cell

// Direction is a keyboard navigation direction.
type Direction string

const (
	DirectionLeft  Direction = "left"
	DirectionRight Direction = "right"
	DirectionUp    Direction = "up"
	DirectionDown  Direction = "down"
)

// Game is a snapshot of one game: board, player to move, outcome and focused cell.
type Game struct {
	ID           string `json:"id,omitempty"`
	Board        Board  `json:"board"`
	Turn         Cell   `json:"player_turn"`
	Status       string `json:"status"`
	Winner       Cell   `json:"winner,omitempty"`
	FocusedIndex int    `json:"focused_index"`
}

func NewGame(id string) *Game {
	return &Game{
		ID:           id,
		Board:        Board{},
		Turn:         PlayerX,
		Status:       StatusOngoing,
		FocusedIndex: 0,
	}
}

func (that Cell) IsMark() bool {
	return that == PlayerX || that == PlayerO
}

// Opponent returns the other mark. Non-mark cells return EmptyCell.
func (that Cell) Opponent() Cell {
	switch that {
	case PlayerX:
		return PlayerO
	case PlayerO:
		return PlayerX
	default:
		return EmptyCell
	}
}

func (that Board) IsFull() bool {
	for _, cell := range that {
		if cell == EmptyCell {
			return false
		}
	}

	return true
}

func (that *Game) IsOngoing() bool {
	return that.Status == StatusOngoing
}

func (that *Game) IsWon() bool {
	return that.Status == StatusWon
}

func (that *Game) IsDraw() bool {
	return that.Status == StatusDraw
}

// IsFinished reports whether the game reached a terminal status.
func (that *Game) IsFinished() bool {
	return that.IsWon() || that.IsDraw()
}

func IsValidCell(index int) bool {
	return index >= 0 && index < BoardSize
}

func (that Direction) IsValid() bool {
	switch that {
	case DirectionLeft, DirectionRight, DirectionUp, DirectionDown:
		return true
	default:
		return false
	}
}
