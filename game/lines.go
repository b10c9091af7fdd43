package game

import "slices"

// Family is one of the five kinds of winning configuration
type Family int

const (
	Horizontal   Family = iota
	Vertical            // columns
	Diagonal            // "\" top-left to bottom-right
	AntiDiagonal        // "/" top-right to bottom-left
	Square              // corners of a 3x3 sub-square around an empty center
)

// Families in the order winning configurations are checked
var Families = []Family{Horizontal, Vertical, Diagonal, AntiDiagonal, Square}

func (f Family) String() string {
	switch f {
	case Horizontal:
		return "horizontal"
	case Vertical:
		return "vertical"
	case Diagonal:
		return "diagonal"
	case AntiDiagonal:
		return "anti-diagonal"
	case Square:
		return "square"
	default:
		return "unknown"
	}
}

// Window is a group of four cells that wins when held by one piece color.
// Square windows additionally require their Center to be empty.
type Window struct {
	Family Family
	Cells  [4]Position
	Center Position
}

func (w Window) HasCenter() bool {
	return w.Family == Square
}

// windows is built once and never mutated; indexed by Family
var windows = buildWindows()

// Windows returns a copy of the precomputed windows of family f, in scan order
func Windows(f Family) []Window {
	return slices.Clone(windows[f])
}

func buildWindows() [][]Window {
	const span = Size - 3 // window start offsets along a line of length Size
	all := make([][]Window, len(Families))

	for r := 0; r < Size; r++ {
		for i := 0; i < span; i++ {
			all[Horizontal] = append(all[Horizontal], line(Horizontal, r, i, 0, 1))
		}
	}
	for c := 0; c < Size; c++ {
		for i := 0; i < span; i++ {
			all[Vertical] = append(all[Vertical], line(Vertical, i, c, 1, 0))
		}
	}
	for r := 0; r < span; r++ {
		for c := 0; c < span; c++ {
			all[Diagonal] = append(all[Diagonal], line(Diagonal, r, c, 1, 1))
		}
	}
	for r := 0; r < span; r++ {
		for c := Size - span; c < Size; c++ {
			all[AntiDiagonal] = append(all[AntiDiagonal], line(AntiDiagonal, r, c, 1, -1))
		}
	}
	for r := 1; r < Size-1; r++ {
		for c := 1; c < Size-1; c++ {
			all[Square] = append(all[Square], Window{
				Family: Square,
				Cells: [4]Position{
					{Row: r + 1, Col: c + 1},
					{Row: r + 1, Col: c - 1},
					{Row: r - 1, Col: c + 1},
					{Row: r - 1, Col: c - 1},
				},
				Center: Position{Row: r, Col: c},
			})
		}
	}
	return all
}

func line(f Family, row, col, dRow, dCol int) Window {
	w := Window{Family: f}
	for n := range w.Cells {
		w.Cells[n] = Position{Row: row + n*dRow, Col: col + n*dCol}
	}
	return w
}
