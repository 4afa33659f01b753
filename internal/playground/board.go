package playground

import (
	"github.com/rocketscienceinc/playground/internal/entity"
)

// Board keeps every move played so far and, per player, the runs they form.
//
// Board is not safe for concurrent use: Play must be called serially and the read
// methods only between calls to Play.
type Board struct {
	moves []entity.Move

	opportunities []*Candidate
	threats       []*Candidate

	width  *BoundingRange
	height *BoundingRange
}

func NewBoard() *Board {
	return &Board{
		moves:         make([]entity.Move, 0),
		opportunities: make([]*Candidate, 0),
		threats:       make([]*Candidate, 0),
	}
}

// Play - records the move and merges it into its player's candidates.
// The caller guarantees the cell is free; duplicates are stored as separate moves.
func (that *Board) Play(move entity.Move) {
	if that.width == nil {
		that.width = newBoundingRange(move.X)
		that.height = newBoundingRange(move.Y)
	} else {
		that.width.extend(move.X)
		that.height.extend(move.Y)
	}

	that.moves = append(that.moves, move)

	if move.Player == entity.PlayerMe {
		that.opportunities = updateCandidates(that.opportunities, move)
	} else {
		that.threats = updateCandidates(that.threats, move)
	}
}

// updateCandidates offers the move to every candidate and starts one run per axis
// when none of them took it.
func updateCandidates(candidates []*Candidate, move entity.Move) []*Candidate {
	added := false
	for _, candidate := range candidates {
		added = candidate.tryExtend(move) || added
	}

	if added {
		return candidates
	}

	for _, axis := range entity.Axes() {
		candidates = append(candidates, newCandidate(CandidateID(len(candidates)), move, axis))
	}

	return candidates
}

// Moves returns every move in play order.
func (that *Board) Moves() []entity.Move {
	moves := make([]entity.Move, len(that.moves))
	copy(moves, that.moves)

	return moves
}

func (that *Board) MoveCount() int {
	return len(that.moves)
}

func (that *Board) IsEmpty() bool {
	return len(that.moves) == 0
}

// Opportunities returns the candidates of PlayerMe in creation order.
func (that *Board) Opportunities() []*Candidate {
	return that.Candidates(entity.PlayerMe)
}

// Threats returns the candidates of PlayerOpponent in creation order.
func (that *Board) Threats() []*Candidate {
	return that.Candidates(entity.PlayerOpponent)
}

func (that *Board) Candidates(player entity.Player) []*Candidate {
	source := that.collection(player)

	candidates := make([]*Candidate, len(source))
	copy(candidates, source)

	return candidates
}

// Candidate looks up a candidate by its id within the player's collection.
func (that *Board) Candidate(player entity.Player, id CandidateID) (*Candidate, bool) {
	source := that.collection(player)
	if id < 0 || int(id) >= len(source) {
		return nil, false
	}

	return source[id], true
}

// Longest returns the player's longest run on axis; ties go to the older candidate.
func (that *Board) Longest(player entity.Player, axis entity.Axis) (*Candidate, bool) {
	var longest *Candidate
	for _, candidate := range that.collection(player) {
		if candidate.axis != axis {
			continue
		}

		if longest == nil || candidate.Len() > longest.Len() {
			longest = candidate
		}
	}

	return longest, longest != nil
}

// Runs returns the player's candidates holding at least minLen moves.
func (that *Board) Runs(player entity.Player, minLen int) []*Candidate {
	runs := make([]*Candidate, 0)
	for _, candidate := range that.collection(player) {
		if candidate.Len() >= minLen {
			runs = append(runs, candidate)
		}
	}

	return runs
}

// Width returns the board's live x range; ok is false until the first move.
// The range keeps widening as moves are played, so iterators taken from it stay current.
func (that *Board) Width() (*BoundingRange, bool) {
	return that.width, that.width != nil
}

// Height returns the board's live y range; ok is false until the first move.
func (that *Board) Height() (*BoundingRange, bool) {
	return that.height, that.height != nil
}

// Bounds returns both ranges at once.
func (that *Board) Bounds() (*BoundingRange, *BoundingRange, bool) {
	return that.width, that.height, that.width != nil
}

func (that *Board) collection(player entity.Player) []*Candidate {
	if player == entity.PlayerMe {
		return that.opportunities
	}

	return that.threats
}
