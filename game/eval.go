package game

// HeuristicScale keeps heuristic scores well inside the terminal range [-1, 1]
const HeuristicScale = 100.0

// Winner returns the piece holding the first winning configuration found, in
// family order, or Empty when there is none.
func Winner(b Board) Cell {
	winner, _ := findWin(b)
	return winner
}

// WinningWindow returns the first winning configuration found, if any
func WinningWindow(b Board) (Window, bool) {
	winner, w := findWin(b)
	return w, winner != Empty
}

func findWin(b Board) (Cell, Window) {
	for _, family := range windows {
		for _, w := range family {
			if w.HasCenter() && b.At(w.Center) != Empty {
				continue
			}
			first := b.At(w.Cells[0])
			if first == Empty {
				continue
			}
			if b.At(w.Cells[1]) == first && b.At(w.Cells[2]) == first && b.At(w.Cells[3]) == first {
				return first, w
			}
		}
	}
	return Empty, Window{}
}

// EvaluateTerminal returns 1 if self holds a winning configuration, -1 if the
// other side does, and 0 otherwise
func EvaluateTerminal(b Board, self Cell) int {
	switch Winner(b) {
	case Empty:
		return 0
	case self:
		return 1
	default:
		return -1
	}
}

// EvaluateHeuristic scores a non-terminal board from self's perspective. Each
// cell counts once per window it belongs to, +1 for self and -1 for opp, over
// every line window and every square whose center is empty. The total is
// divided by HeuristicScale.
func EvaluateHeuristic(b Board, self, opp Cell) float64 {
	total := 0
	for _, family := range windows {
		for _, w := range family {
			if w.HasCenter() && b.At(w.Center) != Empty {
				continue
			}
			for _, p := range w.Cells {
				switch b.At(p) {
				case self:
					total++
				case opp:
					total--
				}
			}
		}
	}
	return float64(total) / HeuristicScale
}
