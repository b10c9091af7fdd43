package metrics

import (
	"encoding/csv"
	"os"
	"path/filepath"
	"testing"
	"time"

	"teeko/game"
	"teeko/searcher"

	"github.com/stretchr/testify/require"
)

func readCSV(t *testing.T, path string) [][]string {
	t.Helper()
	f, err := os.Open(path)
	require.NoError(t, err)
	defer f.Close()
	rows, err := csv.NewReader(f).ReadAll()
	require.NoError(t, err)
	return rows
}

func TestWriter(t *testing.T) {
	root := t.TempDir()
	w, err := NewWriter(root, "depth")
	require.NoError(t, err)

	t.Run("game records", func(t *testing.T) {
		start := time.Date(2024, 1, 2, 3, 4, 5, 0, time.UTC)
		records := []GameRecord{
			{ID: 1, Black: 0, Red: 1, GameMetric: GameMetric{StartingPlayer: game.Black, Winner: game.Red, StartTime: start, EndTime: start.Add(time.Second), Duration: time.Second, TotalMoves: 12}},
			{ID: 2, Black: 1, Red: 0, GameMetric: GameMetric{StartingPlayer: game.Black, Winner: game.Empty, TotalMoves: 300}},
		}
		require.NoError(t, w.WriteGameRecords(records))

		rows := readCSV(t, filepath.Join(w.Dir(), "game_records.csv"))
		require.Len(t, rows, 3)
		require.Equal(t, "id", rows[0][0])
		require.Equal(t, []string{"1", "0", "1", "b", "r", "2024-01-02T03:04:05Z", "2024-01-02T03:04:06Z", "1s", "12"}, rows[1])
		require.Equal(t, "draw", rows[2][4])
	})

	t.Run("move records", func(t *testing.T) {
		records := []MoveRecord{
			{Game: 1, MoveMetric: MoveMetric{Step: 1, Player: game.Black, Move: "C2", SearchMetrics: searcher.SearchMetrics{Depth: 3, Goroutines: 1, Nodes: 100, Leaves: 90, TerminalLeaves: 2}}},
		}
		require.NoError(t, w.WriteMoveRecords(records))

		rows := readCSV(t, filepath.Join(w.Dir(), "move_records.csv"))
		require.Len(t, rows, 2)
		require.Equal(t, []string{"1", "1", "b", "C2", "3", "1", "0s", "100", "90", "2"}, rows[1])
	})

	t.Run("agent configs", func(t *testing.T) {
		require.NoError(t, w.WriteAgentConfigs([]AgentConfig{{ID: 4, Kind: "minimax", Depth: 2, Goroutines: 8}}))

		rows := readCSV(t, filepath.Join(w.Dir(), "agent_configs.csv"))
		require.Equal(t, []string{"4", "minimax", "2", "8", "0"}, rows[1])
	})
}
