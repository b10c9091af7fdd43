package searcher

import (
	"testing"

	"teeko/game"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"
)

func mustParse(t *testing.T, rows ...string) game.Board {
	t.Helper()
	b, err := game.ParseBoard(rows...)
	require.NoError(t, err)
	return b
}

// cellsChanged counts the cells that differ between two boards
func cellsChanged(a, b game.Board) int {
	changed := 0
	for r := range a {
		for c := range a[r] {
			if a[r][c] != b[r][c] {
				changed++
			}
		}
	}
	return changed
}

// movePhase is a non-terminal board with all eight pieces down
func movePhase(t *testing.T) game.Board {
	t.Helper()
	b := mustParse(t, "b.r..", ".b.r.", "..b..", "r...b", "....r")
	require.Equal(t, 0, game.EvaluateTerminal(b, game.Black), "Move phase board should not be won")
	return b
}

// Black completes the top row by stepping from E1 to D0
func winInOne(t *testing.T) game.Board {
	return mustParse(t,
		"bbb..",
		"....b",
		".....",
		"r.r..",
		".r..r",
	)
}

func TestSearchLeaves(t *testing.T) {
	t.Run("depth zero returns the heuristic and the same board", func(t *testing.T) {
		boards := []game.Board{
			game.NewBoard(),
			mustParse(t, "b.r..", ".b.r.", "..b..", "r....", "....."),
			movePhase(t),
		}
		for _, b := range boards {
			require.Equal(t, 0, game.EvaluateTerminal(b, game.Black), "Leaf boards should not be won")
			for _, maximizing := range []bool{true, false} {
				got := NewMinimax(game.Black).Search(b, 0, maximizing)

				require.Equal(t, game.EvaluateHeuristic(b, game.Black, game.Red), got.Score)
				require.Equal(t, b, got.Board, "Leaf should return its own board")
				require.False(t, got.HasMove, "Leaf should not carry a move")
			}
		}
	})

	t.Run("terminal boards are scored before the depth cutoff", func(t *testing.T) {
		b := mustParse(t,
			"bbbb.",
			".....",
			".....",
			"r.r..",
			".r..r",
		)

		for _, depth := range []int{0, 1, 3} {
			got := NewMinimax(game.Black).Search(b, depth, true)
			require.Equal(t, WIN, got.Score)
			require.Equal(t, b, got.Board)
			require.Equal(t, depth, got.Depth)

			got = NewMinimax(game.Red).Search(b, depth, true)
			require.Equal(t, LOSS, got.Score)
		}
	})
}

func TestSearchDropPhase(t *testing.T) {
	t.Run("one ply on the empty board", func(t *testing.T) {
		b := game.NewBoard()
		got := NewMinimax(game.Black).Search(b, 1, true)

		require.True(t, got.HasMove)
		require.Equal(t, 1, cellsChanged(b, got.Board), "Result should differ by exactly one cell")
		require.Equal(t, game.EvaluateHeuristic(got.Board, game.Black, game.Red), got.Score)
		require.Equal(t, game.Drop(game.Position{Row: 2, Col: 2}), got.Move, "Center takes part in the most windows")
		require.Equal(t, game.Apply(b, got.Move, game.Black), got.Board, "Move should produce the chosen board")
	})

	t.Run("ties go to the last successor", func(t *testing.T) {
		flat := func(game.Board, game.Cell, game.Cell) float64 { return 0 }
		m := NewMinimax(game.Black, WithEvaluationFn(flat))

		got := m.Search(game.NewBoard(), 1, true)
		require.Equal(t, game.Drop(game.Position{Row: 4, Col: 4}), got.Move)

		got = m.Search(game.NewBoard().With(game.Position{Row: 0, Col: 0}, game.Black), 1, false)
		require.Equal(t, game.Drop(game.Position{Row: 4, Col: 4}), got.Move)
	})
}

func TestSearchMovePhase(t *testing.T) {
	t.Run("takes an immediate win", func(t *testing.T) {
		b := winInOne(t)
		got := NewMinimax(game.Black).Search(b, 1, true)

		require.Equal(t, WIN, got.Score)
		require.Equal(t, game.Relocation(game.Position{Row: 1, Col: 4}, game.Position{Row: 0, Col: 3}), got.Move)
		require.Equal(t, 1, game.EvaluateTerminal(got.Board, game.Black))
	})

	t.Run("sees the win at greater depth", func(t *testing.T) {
		got := NewMinimax(game.Black).Search(winInOne(t), 3, true)
		require.Equal(t, WIN, got.Score)
		require.True(t, got.HasMove)
	})

	t.Run("minimizing side plays the opponent's win", func(t *testing.T) {
		got := NewMinimax(game.Red).Search(winInOne(t), 1, false)

		require.Equal(t, LOSS, got.Score)
		require.Equal(t, game.Relocation(game.Position{Row: 1, Col: 4}, game.Position{Row: 0, Col: 3}), got.Move)
	})
}

func TestChooseWithoutSuccessors(t *testing.T) {
	b := winInOne(t)

	got := choose(b, 2, nil, nil, true)
	require.Equal(t, Result{Score: LOSS, Board: b, Depth: 2}, got)

	got = choose(b, 2, nil, nil, false)
	require.Equal(t, Result{Score: WIN, Board: b, Depth: 2}, got)
}

func TestFindMove(t *testing.T) {
	t.Run("returns the searched move", func(t *testing.T) {
		m := NewMinimax(game.Black, WithDepth(1))
		move, _, err := m.FindMove(winInOne(t))

		require.NoError(t, err)
		require.Equal(t, game.Relocation(game.Position{Row: 1, Col: 4}, game.Position{Row: 0, Col: 3}), move)
	})

	t.Run("is idempotent", func(t *testing.T) {
		b := mustParse(t, "b.r..", ".b.r.", "..b..", "r....", ".....")
		m := NewMinimax(game.Red, WithDepth(2))

		first, _, err := m.FindMove(b)
		require.NoError(t, err)
		second, _, err := m.FindMove(b)
		require.NoError(t, err)
		require.Equal(t, first, second)
	})

	t.Run("fails on a finished game", func(t *testing.T) {
		b := mustParse(t, "bbbb.", ".....", ".....", "r.r..", ".r..r")
		_, _, err := NewMinimax(game.Red).FindMove(b)
		require.ErrorIs(t, err, ErrNoMove)
	})

	t.Run("parallel search agrees with sequential search", func(t *testing.T) {
		boards := []game.Board{
			game.NewBoard(),
			mustParse(t, "b.r..", ".b.r.", "..b..", "r....", "....."),
			movePhase(t),
			winInOne(t),
		}
		for _, b := range boards {
			sequential := NewMinimax(game.Red, WithDepth(2)).Search(b, 2, true)
			parallel := NewMinimax(game.Red, WithDepth(2), WithGoroutines(4)).Search(b, 2, true)
			require.Equal(t, sequential, parallel)
			require.True(t, sequential.HasMove, "Search should not stop at the root")
		}
	})

	t.Run("collects metrics", func(t *testing.T) {
		m := NewMinimax(game.Black, WithDepth(1), WithMetrics(), WithGoroutines(3))
		_, metrics, err := m.FindMove(game.NewBoard())

		require.NoError(t, err)
		require.Equal(t, 1, metrics.Depth)
		require.Equal(t, 3, metrics.Goroutines)
		require.Equal(t, int64(26), metrics.Nodes, "Root plus one node per empty cell")
		require.Equal(t, int64(25), metrics.Leaves)
		require.Equal(t, int64(0), metrics.TerminalLeaves)
	})
}

func TestNewMinimax(t *testing.T) {
	require.Panics(t, func() {
		NewMinimax(game.Empty)
	}, "Should panic without a piece color")

	m := NewMinimax(game.Red, WithDepth(0), WithGoroutines(-1))
	require.Equal(t, 3, m.Depth(), "Non-positive options should keep the defaults")
	require.Equal(t, game.Red, m.Piece())
}

func TestFindMoveLogsNothingWhenDisabled(t *testing.T) {
	require.Equal(t, zerolog.Disabled, zerolog.GlobalLevel())
	_, _, err := NewMinimax(game.Black, WithDepth(1)).FindMove(game.NewBoard())
	require.NoError(t, err)
}
