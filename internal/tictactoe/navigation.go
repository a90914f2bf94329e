package tictactoe

import (
	"fmt"

	"github.com/rocketscienceinc/tictactoe-engine/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-engine/internal/entity"
)

// offsets walk the board as a flat ring of nine cells, so Left from 0 lands on 8.
// TODO: confirm with product whether arrows should clamp to rows and columns instead.
var offsets = map[entity.Direction]int{
	entity.DirectionRight: 1,
	entity.DirectionLeft:  8,
	entity.DirectionUp:    6,
	entity.DirectionDown:  3,
}

// Navigate returns the cell focused after moving from index in the given direction.
// An unknown direction leaves the index unchanged and reports ErrInvalidDirection.
func Navigate(index int, direction entity.Direction) (int, error) {
	index = normalizeIndex(index)

	offset, ok := offsets[direction]
	if !ok {
		return index, fmt.Errorf("%w: %q", apperror.ErrInvalidDirection, direction)
	}

	return (index + offset) % entity.BoardSize, nil
}

func normalizeIndex(index int) int {
	index %= entity.BoardSize
	if index < 0 {
		index += entity.BoardSize
	}

	return index
}
