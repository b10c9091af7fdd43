package engine

import (
	"teeko/game"
	"teeko/searcher"
)

// Update is a move played by one side, with the board it produced
type Update struct {
	Move  game.Move
	Piece game.Cell
	Board game.Board
}

type Agent interface {
	// Piece is the color the agent plays
	Piece() game.Cell
	// FindMove returns the agent's move on b given the moves played since its
	// last turn, with search metrics if the agent collects them
	FindMove(b game.Board, updates []Update) (game.Move, searcher.SearchMetrics, error)
}
