package entity

import (
	"fmt"
	"strings"

	"github.com/rocketscienceinc/playground/internal/apperror"
)

// Player is one of the two sides. PlayerMe owns the opportunities, PlayerOpponent the threats.
type Player bool

const (
	PlayerMe       Player = false
	PlayerOpponent Player = true

	MarkMe       = "X"
	MarkOpponent = "O"
)

// Mark returns the single-character symbol of the player.
func (that Player) Mark() string {
	if that == PlayerOpponent {
		return MarkOpponent
	}
	return MarkMe
}

// Other returns the opposite side.
func (that Player) Other() Player {
	return !that
}

func (that Player) String() string {
	if that == PlayerOpponent {
		return "opponent"
	}
	return "me"
}

// ParsePlayer maps a mark (case-insensitive) back to its player.
func ParsePlayer(mark string) (Player, error) {
	switch strings.ToUpper(strings.TrimSpace(mark)) {
	case MarkMe:
		return PlayerMe, nil
	case MarkOpponent:
		return PlayerOpponent, nil
	default:
		return PlayerMe, fmt.Errorf("%w: %q", apperror.ErrUnknownPlayer, mark)
	}
}
