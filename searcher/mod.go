package searcher

import (
	"errors"

	"teeko/game"
)

// Terminal scores from the searching side's perspective
const WIN = 1.0
const LOSS = -WIN

var ErrNoMove = errors.New("no move available")

// Result is the outcome of searching a node: the score backed up to it, the
// successor board that achieves the score and the move producing that board.
// Leaves return their own board with HasMove false.
type Result struct {
	Score   float64
	Board   game.Board
	Move    game.Move
	HasMove bool
	Depth   int // Remaining depth where the score was set: a leaf, or a node with no successors
}
