package experiments

import (
	"errors"
	"fmt"
	"os"

	"teeko/engine"
	"teeko/experiments/metrics"
	"teeko/game"
	"teeko/meta"
	"teeko/player"
	"teeko/searcher"
	"teeko/utils"

	"github.com/rs/zerolog/log"
	"gopkg.in/yaml.v3"
)

const (
	MinimaxAgent = "minimax"
	RandomAgent  = "random"
)

var ErrInvalidPlan = errors.New("invalid experiment plan")

// Plan describes the agents of an experiment and the matchups between them.
// Each matchup lists two agent IDs; the agents swap colors every game.
type Plan struct {
	Name     string                `yaml:"name"`
	NumGames int                   `yaml:"games"` // Per matchup
	Agents   []metrics.AgentConfig `yaml:"agents"`
	Matchups [][2]int              `yaml:"matchups"`
}

// DepthPlan pits minimax agents of increasing depth against a random player
func DepthPlan() Plan {
	baseline := metrics.AgentConfig{ID: 0, Kind: RandomAgent, Seed: 1}
	plan := Plan{
		Name:     "depth",
		NumGames: meta.NUM_GAMES,
		Agents:   []metrics.AgentConfig{baseline},
	}
	for depth := 1; depth <= meta.DEFAULT_DEPTH; depth++ {
		plan.Agents = append(plan.Agents, metrics.AgentConfig{ID: depth, Kind: MinimaxAgent, Depth: depth, Goroutines: meta.GO_ROUTINES})
		plan.Matchups = append(plan.Matchups, [2]int{baseline.ID, depth})
	}
	return plan
}

func LoadPlan(path string) (Plan, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Plan{}, fmt.Errorf("failed to read plan: %w", err)
	}
	return ParsePlan(data)
}

func ParsePlan(data []byte) (Plan, error) {
	var plan Plan
	if err := yaml.Unmarshal(data, &plan); err != nil {
		return Plan{}, fmt.Errorf("failed to parse plan: %w", err)
	}
	if plan.NumGames <= 0 {
		plan.NumGames = meta.NUM_GAMES
	}
	if err := plan.validate(); err != nil {
		return Plan{}, err
	}
	return plan, nil
}

func (p Plan) validate() error {
	if p.Name == "" {
		return fmt.Errorf("%w: missing name", ErrInvalidPlan)
	}
	for _, config := range p.Agents {
		if config.Kind != MinimaxAgent && config.Kind != RandomAgent {
			return fmt.Errorf("%w: agent %d has unknown kind %q", ErrInvalidPlan, config.ID, config.Kind)
		}
	}
	for _, matchup := range p.Matchups {
		for _, id := range matchup {
			if p.agentIndex(id) < 0 {
				return fmt.Errorf("%w: matchup references unknown agent %d", ErrInvalidPlan, id)
			}
		}
	}
	return nil
}

func (p Plan) agentIndex(id int) int {
	ids := make([]int, len(p.Agents))
	for i, config := range p.Agents {
		ids[i] = config.ID
	}
	return utils.FindIndex(ids, id)
}

// Run plays every matchup of the plan and stores the agent configs, game
// records and move records under outDir
func Run(plan Plan, outDir string) ([]metrics.GameRecord, error) {
	if err := plan.validate(); err != nil {
		return nil, err
	}

	count := 0
	gameRecords := []metrics.GameRecord{}
	moveRecords := []metrics.MoveRecord{}

	log.Info().Msgf("starting %s experiment...", plan.Name)

	for mi, matchup := range plan.Matchups {
		config1 := plan.Agents[plan.agentIndex(matchup[0])]
		config2 := plan.Agents[plan.agentIndex(matchup[1])]

		log.Info().Msgf("starting matchup %d of %d between agent1=%+v and agent2=%+v...", mi+1, len(plan.Matchups), config1, config2)

		for i := 0; i < plan.NumGames; i++ {
			black, red := config1, config2
			if i%2 == 1 {
				black, red = red, black
			}
			count++

			gameMetric, moveMetrics, err := runGame(black, red, count)
			if err != nil {
				return gameRecords, fmt.Errorf("matchup %d game %d: %w", mi+1, i+1, err)
			}
			gameRecords = append(gameRecords, metrics.GameRecord{
				ID:         count,
				Black:      black.ID,
				Red:        red.ID,
				GameMetric: gameMetric,
			})
			for _, mm := range moveMetrics {
				moveRecords = append(moveRecords, metrics.MoveRecord{
					Game:       count,
					MoveMetric: mm,
				})
			}

			log.Info().Msgf("completed matchup %d of %d game %d with winner: %q", mi+1, len(plan.Matchups), i+1, gameMetric.Winner)
		}
		log.Info().Msgf("completed matchup %d of %d", mi+1, len(plan.Matchups))
	}

	log.Info().Msgf("completed %s experiment", plan.Name)

	writer, err := metrics.NewWriter(outDir, plan.Name)
	if err != nil {
		return gameRecords, fmt.Errorf("failed to create experiment writer: %w", err)
	}
	if err := writer.WriteAgentConfigs(plan.Agents); err != nil {
		return gameRecords, err
	}
	if err := writer.WriteGameRecords(gameRecords); err != nil {
		return gameRecords, err
	}
	if err := writer.WriteMoveRecords(moveRecords); err != nil {
		return gameRecords, err
	}
	log.Info().Msgf("stored records in %s", writer.Dir())

	return gameRecords, nil
}

// runGame plays a single game between two agents
func runGame(black, red metrics.AgentConfig, gameID int) (metrics.GameMetric, []metrics.MoveMetric, error) {
	e := engine.LocalEngine(newAgent(black, game.Black, gameID), newAgent(red, game.Red, gameID))
	return e.Run()
}

func newAgent(config metrics.AgentConfig, piece game.Cell, gameID int) engine.Agent {
	if config.Kind == RandomAgent {
		return engine.NewRandomAgent(piece, config.Seed+uint64(gameID))
	}

	options := []searcher.Option{searcher.WithMetrics()}
	if config.Depth > 0 {
		options = append(options, searcher.WithDepth(config.Depth))
	}
	if config.Goroutines > 0 {
		options = append(options, searcher.WithGoroutines(config.Goroutines))
	}
	return player.NewPlayerWithPiece(piece, options...)
}
