package usecase

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/rocketscienceinc/playground/internal/apperror"
	"github.com/rocketscienceinc/playground/internal/entity"
)

type ReplayUseCase interface {
	Play(ctx context.Context, move entity.Move) error
	PlayAll(ctx context.Context, moves []entity.Move) (int, error)
	PlayNotation(ctx context.Context, tokens []string) (int, error)
}

type board interface {
	Play(move entity.Move)
	Moves() []entity.Move
}

type cell struct {
	x, y int
}

// replay is the caller side of the board contract: it keeps one move per cell.
type replay struct {
	logger *slog.Logger
	board  board

	occupied map[cell]entity.Player
}

func NewReplay(logger *slog.Logger, board board) ReplayUseCase {
	occupied := make(map[cell]entity.Player)
	for _, move := range board.Moves() {
		occupied[cell{move.X, move.Y}] = move.Player
	}

	return &replay{
		logger:   logger.With("component", "replay"),
		board:    board,
		occupied: occupied,
	}
}

// Play - screens the move and hands it to the board.
func (that *replay) Play(ctx context.Context, move entity.Move) error {
	log := that.logger.With("method", "Play", "move", move.Notation())

	if err := ctx.Err(); err != nil {
		return fmt.Errorf("replay interrupted: %w", err)
	}

	key := cell{move.X, move.Y}
	if owner, taken := that.occupied[key]; taken {
		log.Warn("move rejected", "owner", owner.Mark())

		return fmt.Errorf("%w: %s held by %s", apperror.ErrCellOccupied, move.Notation(), owner.Mark())
	}

	that.board.Play(move)
	that.occupied[key] = move.Player

	log.Debug("move played")

	return nil
}

// PlayAll - plays moves in order and stops at the first rejected one.
// It returns how many moves were played.
func (that *replay) PlayAll(ctx context.Context, moves []entity.Move) (int, error) {
	if len(moves) == 0 {
		return 0, apperror.ErrNoMoves
	}

	for i, move := range moves {
		if err := that.Play(ctx, move); err != nil {
			return i, fmt.Errorf("failed to play move %d: %w", i+1, err)
		}
	}

	return len(moves), nil
}

// PlayNotation - parses every token first, then plays them.
func (that *replay) PlayNotation(ctx context.Context, tokens []string) (int, error) {
	moves := make([]entity.Move, 0, len(tokens))

	var errs []error
	for _, token := range tokens {
		move, err := entity.ParseMove(token)
		if err != nil {
			errs = append(errs, err)
			continue
		}
		moves = append(moves, move)
	}

	if len(errs) > 0 {
		return 0, fmt.Errorf("failed to parse moves: %w", errors.Join(errs...))
	}

	return that.PlayAll(ctx, moves)
}
