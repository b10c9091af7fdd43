package engine

import (
	"fmt"
	"time"

	"teeko/experiments/metrics"
	"teeko/game"
	"teeko/meta"

	"github.com/rs/zerolog/log"
)

type Engine struct {
	Board    game.Board
	Agents   [2]Agent // Indexed by turn order: black first
	MaxTurns int
}

// LocalEngine creates an engine for a game between one black and one red agent
// on an empty board
func LocalEngine(agents ...Agent) *Engine {
	if len(agents) != 2 {
		panic("need exactly two agents")
	}
	e := &Engine{
		Board:    game.NewBoard(),
		MaxTurns: meta.MAX_TURNS,
	}
	for _, agent := range agents {
		switch agent.Piece() {
		case game.Pieces[0]:
			e.Agents[0] = agent
		case game.Pieces[1]:
			e.Agents[1] = agent
		}
	}
	if e.Agents[0] == nil || e.Agents[1] == nil {
		panic("agents must play opposite colors")
	}
	return e
}

// Run plays the game until a side wins or MaxTurns is reached. The game metric
// has an empty winner for a game stopped by the turn limit.
func (e *Engine) Run() (metrics.GameMetric, []metrics.MoveMetric, error) {
	updates := make([][]Update, len(e.Agents))
	gameMetric := metrics.GameMetric{
		StartingPlayer: e.Agents[0].Piece(),
		StartTime:      time.Now(),
	}
	var moveMetrics []metrics.MoveMetric

	log.Info().Msgf("player %s is starting", e.Agents[0].Piece())

	turn := 1
	for game.Winner(e.Board) == game.Empty && turn <= e.MaxTurns {
		current := (turn - 1) % len(e.Agents)
		agent := e.Agents[current]

		move, searchMetrics, err := agent.FindMove(e.Board, updates[current])
		if err != nil {
			return gameMetric, moveMetrics, fmt.Errorf("turn %d: player %s failed to move: %w", turn, agent.Piece(), err)
		}
		if err := game.Validate(e.Board, move, agent.Piece()); err != nil {
			return gameMetric, moveMetrics, fmt.Errorf("turn %d: player %s: %w", turn, agent.Piece(), err)
		}

		e.Board = game.Apply(e.Board, move, agent.Piece())
		moveMetrics = append(moveMetrics, metrics.MoveMetric{
			Step:          turn,
			Player:        agent.Piece(),
			Move:          move.String(),
			SearchMetrics: searchMetrics,
		})

		u := Update{Move: move, Piece: agent.Piece(), Board: e.Board}
		updates[current] = nil
		for i := range updates {
			if i != current {
				updates[i] = append(updates[i], u)
			}
		}

		log.Debug().Msgf("turn %d: %s played %s", turn, agent.Piece(), move)
		turn++
	}

	gameMetric.Winner = game.Winner(e.Board)
	gameMetric.EndTime = time.Now()
	gameMetric.Duration = gameMetric.EndTime.Sub(gameMetric.StartTime)
	gameMetric.TotalMoves = len(moveMetrics)

	if gameMetric.Winner != game.Empty {
		log.Info().Msgf("player %s won after %d moves", gameMetric.Winner, gameMetric.TotalMoves)
	} else {
		log.Info().Msgf("stopped after %d turns without a winner", e.MaxTurns)
	}
	return gameMetric, moveMetrics, nil
}
