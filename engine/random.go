package engine

import (
	"teeko/game"
	"teeko/searcher"

	"golang.org/x/exp/rand"
)

// RandomAgent plays a uniformly random legal move
type RandomAgent struct {
	piece game.Cell
	rng   *rand.Rand
}

func NewRandomAgent(piece game.Cell, seed uint64) *RandomAgent {
	return &RandomAgent{
		piece: piece,
		rng:   rand.New(rand.NewSource(seed)),
	}
}

func (a *RandomAgent) Piece() game.Cell {
	return a.piece
}

func (a *RandomAgent) FindMove(b game.Board, _ []Update) (game.Move, searcher.SearchMetrics, error) {
	successors := game.Successors(b, a.piece)
	if len(successors) == 0 {
		return game.Move{}, searcher.SearchMetrics{}, searcher.ErrNoMove
	}
	return successors[a.rng.Intn(len(successors))].Move, searcher.SearchMetrics{}, nil
}
