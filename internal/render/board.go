package render

import (
	"strings"

	"github.com/rocketscienceinc/playground/internal/entity"
	"github.com/rocketscienceinc/playground/internal/playground"
)

const emptyCell = " "

type boardView interface {
	Moves() []entity.Move
	Bounds() (*playground.BoundingRange, *playground.BoundingRange, bool)
}

// Board - draws the occupied rectangle row by row, one character per column.
// Rows without any move are printed as a bare newline; the last move on a cell wins.
func Board(board boardView) string {
	width, height, ok := board.Bounds()
	if !ok {
		return ""
	}

	rows := make(map[int]map[int]entity.Player)
	for _, move := range board.Moves() {
		if _, found := rows[move.Y]; !found {
			rows[move.Y] = make(map[int]entity.Player)
		}
		rows[move.Y][move.X] = move.Player
	}

	var field strings.Builder
	for y := range height.All() {
		if row, found := rows[y]; found {
			for x := range width.All() {
				if player, taken := row[x]; taken {
					field.WriteString(player.Mark())
				} else {
					field.WriteString(emptyCell)
				}
			}
		}
		field.WriteString("\n")
	}

	return field.String()
}
