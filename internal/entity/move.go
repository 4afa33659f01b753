package entity

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/rocketscienceinc/playground/internal/apperror"
)

// Move is a single placement. Rows grow downward: "/" steps (+1,-1) and "\" steps (+1,+1).
type Move struct {
	Player Player
	X      int
	Y      int
}

func NewMove(player Player, x, y int) Move {
	return Move{Player: player, X: x, Y: y}
}

// Project returns the coordinate that changes by exactly one between neighbours of a run on axis.
func (that Move) Project(axis Axis) int {
	if axis == AxisVertical {
		return that.Y
	}
	return that.X
}

// Line returns the value shared by every cell of the line through the move on axis.
func (that Move) Line(axis Axis) int {
	switch axis {
	case AxisHorizontal:
		return that.Y
	case AxisVertical:
		return that.X
	case AxisDiagonalUp:
		return that.X + that.Y
	default:
		return that.Y - that.X
	}
}

// SameCell reports whether both moves sit on the same coordinates, regardless of player.
func (that Move) SameCell(other Move) bool {
	return that.X == other.X && that.Y == other.Y
}

func (that Move) String() string {
	return fmt.Sprintf("[%3d,%3d]:%s", that.X, that.Y, that.Player.Mark())
}

// Notation renders the move in the form accepted by ParseMove.
func (that Move) Notation() string {
	return fmt.Sprintf("%s:%d,%d", that.Player.Mark(), that.X, that.Y)
}

// ParseMove reads "<mark>:<x>,<y>", e.g. "X:3,-4".
func ParseMove(token string) (Move, error) {
	mark, coords, found := strings.Cut(strings.TrimSpace(token), ":")
	if !found {
		return Move{}, fmt.Errorf("%w: %q", apperror.ErrInvalidMove, token)
	}

	player, err := ParsePlayer(mark)
	if err != nil {
		return Move{}, err
	}

	rawX, rawY, found := strings.Cut(coords, ",")
	if !found {
		return Move{}, fmt.Errorf("%w: %q", apperror.ErrInvalidMove, token)
	}

	x, err := strconv.Atoi(strings.TrimSpace(rawX))
	if err != nil {
		return Move{}, fmt.Errorf("%w: %q: %w", apperror.ErrInvalidMove, token, err)
	}

	y, err := strconv.Atoi(strings.TrimSpace(rawY))
	if err != nil {
		return Move{}, fmt.Errorf("%w: %q: %w", apperror.ErrInvalidMove, token, err)
	}

	return NewMove(player, x, y), nil
}
