package searcher

import (
	"sync"

	"teeko/game"
	"teeko/meta"

	"github.com/rs/zerolog/log"
)

type Option func(m *Minimax)

// Minimax is a fixed-depth minimax searcher playing one piece color
type Minimax struct {
	self       game.Cell
	opp        game.Cell
	depth      int
	goroutines int
	evaluate   game.Evaluate
	metrics    Collector
}

func WithDepth(depth int) Option {
	return func(m *Minimax) {
		if depth > 0 {
			m.depth = depth
		}
	}
}

// WithGoroutines scores the root successors on n goroutines. The chosen move
// is the same as with a sequential search.
func WithGoroutines(n int) Option {
	return func(m *Minimax) {
		if n > 0 {
			m.goroutines = n
		}
	}
}

func WithEvaluationFn(evaluate game.Evaluate) Option {
	return func(m *Minimax) {
		if evaluate != nil {
			m.evaluate = evaluate
		}
	}
}

func WithMetrics() Option {
	return func(m *Minimax) {
		m.metrics = NewCollector()
	}
}

func NewMinimax(self game.Cell, options ...Option) *Minimax {
	if self != game.Black && self != game.Red {
		panic("searcher must play black or red")
	}
	m := &Minimax{ // Default values
		self:       self,
		opp:        self.Opponent(),
		depth:      meta.DEFAULT_DEPTH,
		goroutines: 1,
		evaluate:   game.EvaluateHeuristic,
		metrics:    NewDummyCollector(),
	}
	for _, option := range options {
		option(m)
	}
	return m
}

func (m *Minimax) Piece() game.Cell {
	return m.self
}

func (m *Minimax) Depth() int {
	return m.depth
}

// FindMove searches b to the configured depth with self to move and returns
// the move leading to the best scored successor
func (m *Minimax) FindMove(b game.Board) (game.Move, SearchMetrics, error) {
	m.metrics.Start(m.depth, m.goroutines)
	result := m.Search(b, m.depth, true)
	metrics := m.metrics.Complete()

	if !result.HasMove {
		return game.Move{}, metrics, ErrNoMove
	}

	log.Debug().
		Str("piece", m.self.String()).
		Str("move", result.Move.String()).
		Float64("score", result.Score).
		Int64("nodes", metrics.Nodes).
		Dur("duration", metrics.Duration).
		Msg("found move")
	return result.Move, metrics, nil
}

// Search scores b by minimax to the given depth. A won or lost board is
// scored as terminal before the depth cutoff applies. Ties go to the last
// equally scored successor.
func (m *Minimax) Search(b game.Board, depth int, maximizing bool) Result {
	return m.search(b, depth, maximizing, m.goroutines)
}

func (m *Minimax) search(b game.Board, depth int, maximizing bool, goroutines int) Result {
	m.metrics.AddNode()

	if value := game.EvaluateTerminal(b, m.self); value != 0 {
		m.metrics.AddLeaf(true)
		return Result{Score: float64(value), Board: b, Depth: depth}
	}
	if depth <= 0 {
		m.metrics.AddLeaf(false)
		return Result{Score: m.evaluate(b, m.self, m.opp), Board: b, Depth: depth}
	}

	piece := m.opp
	if maximizing {
		piece = m.self
	}
	successors := game.Successors(b, piece)

	var children []Result
	if goroutines > 1 {
		children = m.fanOut(successors, depth-1, !maximizing, goroutines)
	} else {
		children = make([]Result, len(successors))
		for i, s := range successors {
			children[i] = m.search(s.Board, depth-1, !maximizing, 1)
		}
	}

	return choose(b, depth, successors, children, maximizing)
}

func (m *Minimax) fanOut(successors []game.Successor, depth int, maximizing bool, goroutines int) []Result {
	children := make([]Result, len(successors))
	task := make(chan int, len(successors))
	for i := range successors {
		task <- i
	}
	close(task)

	var wg sync.WaitGroup
	for i := 0; i < min(goroutines, len(successors)); i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()

			for i := range task {
				children[i] = m.search(successors[i].Board, depth, maximizing, 1)
			}
		}()
	}

	wg.Wait()
	return children
}

// choose picks the successor with the best child score, starting from the
// bound a side with no moves is left with
func choose(b game.Board, depth int, successors []game.Successor, children []Result, maximizing bool) Result {
	best := Result{Score: LOSS, Board: b, Depth: depth}
	if !maximizing {
		best.Score = WIN
	}

	for i, s := range successors {
		score := children[i].Score
		if (maximizing && score >= best.Score) || (!maximizing && score <= best.Score) {
			best = Result{
				Score:   score,
				Board:   s.Board,
				Move:    s.Move,
				HasMove: true,
				Depth:   children[i].Depth,
			}
		}
	}
	return best
}
