package metrics

import (
	"time"

	"teeko/game"
	"teeko/searcher"
)

type AgentConfig struct {
	ID         int    `yaml:"id"`
	Kind       string `yaml:"kind"` // "minimax" or "random"
	Depth      int    `yaml:"depth"`
	Goroutines int    `yaml:"goroutines"`
	Seed       uint64 `yaml:"seed"`
}

type MoveMetric struct {
	Step   int
	Player game.Cell
	Move   string
	searcher.SearchMetrics
}

type GameMetric struct {
	StartingPlayer game.Cell
	Winner         game.Cell // Empty if the turn limit was reached
	StartTime      time.Time
	EndTime        time.Time
	Duration       time.Duration
	TotalMoves     int
}

type GameRecord struct {
	ID    int
	Black int // AgentConfig.ID
	Red   int // AgentConfig.ID
	GameMetric
}

type MoveRecord struct {
	Game int // GameRecord.ID
	MoveMetric
}
