package usecase

import (
	"fmt"

	"golang.org/x/exp/rand"

	"github.com/rocketscienceinc/playground/internal/apperror"
	"github.com/rocketscienceinc/playground/internal/entity"
)

// Generator produces random games on a span x span square, alternating players and starting with PlayerMe.
type Generator struct {
	rnd *rand.Rand
}

func NewGenerator(seed uint64) *Generator {
	return &Generator{
		rnd: rand.New(rand.NewSource(seed)),
	}
}

// Generate - returns up to count moves on distinct cells. The square is centred on the origin.
func (that *Generator) Generate(count, span int) ([]entity.Move, error) {
	if span <= 0 {
		return nil, fmt.Errorf("%w: %d", apperror.ErrInvalidSpan, span)
	}

	offset := span / 2

	cells := make([]cell, 0, span*span)
	for y := range span {
		for x := range span {
			cells = append(cells, cell{x - offset, y - offset})
		}
	}

	that.rnd.Shuffle(len(cells), func(i, j int) {
		cells[i], cells[j] = cells[j], cells[i]
	})

	count = max(0, min(count, len(cells)))

	moves := make([]entity.Move, count)
	player := entity.PlayerMe
	for i := range moves {
		moves[i] = entity.NewMove(player, cells[i].x, cells[i].y)
		player = player.Other()
	}

	return moves, nil
}
