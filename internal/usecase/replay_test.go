package usecase

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/rocketscienceinc/playground/internal/apperror"
	"github.com/rocketscienceinc/playground/internal/entity"
	"github.com/rocketscienceinc/playground/testing/suite"
)

type mockBoard struct {
	mock.Mock
}

func (that *mockBoard) Play(move entity.Move) {
	that.Called(move)
}

func (that *mockBoard) Moves() []entity.Move {
	args := that.Called()
	return args.Get(0).([]entity.Move)
}

func TestReplay_Play(t *testing.T) {
	t.Run("Hands a free cell to the board", func(t *testing.T) {
		// Given: an empty board
		ctx, st := suite.New(t)
		board := &mockBoard{}
		board.On("Moves").Return([]entity.Move{}).Once()
		move := entity.NewMove(entity.PlayerMe, 1, 2)
		board.On("Play", move).Return().Once()

		replay := NewReplay(st.Logger, board)

		// When: a move is played
		err := replay.Play(ctx, move)

		// Then: the board receives it
		require.NoError(t, err)
		board.AssertExpectations(t)
	})

	t.Run("Rejects a cell already held on the board", func(t *testing.T) {
		// Given: a board that already holds (1,2)
		ctx, st := suite.New(t)
		board := &mockBoard{}
		board.On("Moves").Return([]entity.Move{entity.NewMove(entity.PlayerMe, 1, 2)}).Once()

		replay := NewReplay(st.Logger, board)

		// When: the opponent plays on the same cell
		err := replay.Play(ctx, entity.NewMove(entity.PlayerOpponent, 1, 2))

		// Then: ErrCellOccupied is returned and the board is untouched
		require.ErrorIs(t, err, apperror.ErrCellOccupied)
		board.AssertNotCalled(t, "Play", mock.Anything)
	})

	t.Run("Stops once the context is cancelled", func(t *testing.T) {
		// Given: a cancelled context
		_, st := suite.New(t)
		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		board := &mockBoard{}
		board.On("Moves").Return([]entity.Move{}).Once()
		replay := NewReplay(st.Logger, board)

		// When: a move is played
		err := replay.Play(ctx, entity.NewMove(entity.PlayerMe, 0, 0))

		// Then: the cancellation is reported
		require.ErrorIs(t, err, context.Canceled)
		board.AssertNotCalled(t, "Play", mock.Anything)
	})
}

func TestReplay_PlayAll(t *testing.T) {
	t.Run("Plays every move into a real board", func(t *testing.T) {
		// Given: a fresh board
		ctx, st := suite.New(t)
		replay := NewReplay(st.Logger, st.Board)

		// When: a three-long row is replayed
		played, err := replay.PlayAll(ctx, []entity.Move{
			entity.NewMove(entity.PlayerMe, 0, 0),
			entity.NewMove(entity.PlayerMe, 1, 0),
			entity.NewMove(entity.PlayerMe, 2, 0),
		})

		// Then: the board tracks the run
		require.NoError(t, err)
		assert.Equal(t, 3, played)

		longest, ok := st.Board.Longest(entity.PlayerMe, entity.AxisHorizontal)
		require.True(t, ok)
		assert.Equal(t, 3, longest.Len())
	})

	t.Run("Stops at a duplicate and reports its position", func(t *testing.T) {
		// Given: a fresh board
		ctx, st := suite.New(t)
		replay := NewReplay(st.Logger, st.Board)

		// When: the second move repeats the first cell
		played, err := replay.PlayAll(ctx, []entity.Move{
			entity.NewMove(entity.PlayerMe, 0, 0),
			entity.NewMove(entity.PlayerOpponent, 0, 0),
			entity.NewMove(entity.PlayerMe, 1, 0),
		})

		// Then: only the first move made it to the board
		require.ErrorIs(t, err, apperror.ErrCellOccupied)
		assert.Contains(t, err.Error(), "move 2")
		assert.Equal(t, 1, played)
		assert.Equal(t, 1, st.Board.MoveCount())
	})

	t.Run("Empty input is an error", func(t *testing.T) {
		ctx, st := suite.New(t)
		replay := NewReplay(st.Logger, st.Board)

		_, err := replay.PlayAll(ctx, nil)

		require.ErrorIs(t, err, apperror.ErrNoMoves)
	})
}

func TestReplay_PlayNotation(t *testing.T) {
	t.Run("Parses and plays tokens", func(t *testing.T) {
		// Given: a fresh board
		ctx, st := suite.New(t)
		replay := NewReplay(st.Logger, st.Board)

		// When: notation for both players is replayed
		played, err := replay.PlayNotation(ctx, []string{"X:0,0", "O:5,5", "x:0,1"})

		// Then: every move is on the board
		require.NoError(t, err)
		assert.Equal(t, 3, played)
		assert.Len(t, st.Board.Threats(), 4)

		vertical, ok := st.Board.Longest(entity.PlayerMe, entity.AxisVertical)
		require.True(t, ok)
		assert.Equal(t, 2, vertical.Len())
	})

	t.Run("Reports every bad token and plays nothing", func(t *testing.T) {
		// Given: a fresh board
		ctx, st := suite.New(t)
		replay := NewReplay(st.Logger, st.Board)

		// When: two of three tokens are malformed
		_, err := replay.PlayNotation(ctx, []string{"X:0,0", "Q:1,1", "O:1"})

		// Then: both problems are reported and the board stays empty
		require.ErrorIs(t, err, apperror.ErrUnknownPlayer)
		require.ErrorIs(t, err, apperror.ErrInvalidMove)
		assert.True(t, st.Board.IsEmpty())
	})
}
