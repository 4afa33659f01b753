package playground

import (
	"github.com/gammazero/deque"
	"github.com/rocketscienceinc/playground/internal/entity"
)

// CandidateID addresses a candidate inside one player's collection.
type CandidateID int

// Candidate is a run of one player's moves that are consecutive along a single axis.
//
// low and high are the projections of the first and last move, and the run has no gaps,
// so high-low+1 always equals the number of moves.
type Candidate struct {
	id    CandidateID
	axis  entity.Axis
	line  int
	low   int
	high  int
	moves deque.Deque[entity.Move]
}

func newCandidate(id CandidateID, move entity.Move, axis entity.Axis) *Candidate {
	coord := move.Project(axis)

	candidate := &Candidate{
		id:   id,
		axis: axis,
		line: move.Line(axis),
		low:  coord,
		high: coord,
	}
	candidate.moves.PushBack(move)

	return candidate
}

// tryExtend - grows the run by move if it touches either end on the same line.
// The low end is tried first.
func (that *Candidate) tryExtend(move entity.Move) bool {
	if move.Line(that.axis) != that.line {
		return false
	}

	coord := move.Project(that.axis)

	switch {
	case coord+1 == that.low:
		that.moves.PushFront(move)
		that.low = coord
		return true
	case coord-1 == that.high:
		that.moves.PushBack(move)
		that.high = coord
		return true
	default:
		return false
	}
}

func (that *Candidate) ID() CandidateID {
	return that.id
}

func (that *Candidate) Axis() entity.Axis {
	return that.axis
}

func (that *Candidate) Low() int {
	return that.low
}

func (that *Candidate) High() int {
	return that.high
}

func (that *Candidate) Len() int {
	return that.moves.Len()
}

// Moves returns a copy of the run ordered from low to high.
func (that *Candidate) Moves() []entity.Move {
	moves := make([]entity.Move, that.moves.Len())
	for i := range moves {
		moves[i] = that.moves.At(i)
	}

	return moves
}

// Contains reports whether the run covers the cell (x, y).
func (that *Candidate) Contains(x, y int) bool {
	for i := range that.moves.Len() {
		if move := that.moves.At(i); move.X == x && move.Y == y {
			return true
		}
	}

	return false
}
