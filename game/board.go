package game

// Position addresses a cell by row and column, both in [0, Size)
type Position struct {
	Row int
	Col int
}

func (p Position) InBounds() bool {
	return p.Row >= 0 && p.Row < Size && p.Col >= 0 && p.Col < Size
}

// Board is a 5x5 grid of cells. It is a value type: assignment copies it, so
// successors never share storage with their parent.
type Board [Size][Size]Cell

// NewBoard returns an empty board
func NewBoard() Board {
	return Board{}
}

func (b Board) At(p Position) Cell {
	return b[p.Row][p.Col]
}

// With returns a copy of the board with the cell at p set to cell
func (b Board) With(p Position, cell Cell) Board {
	b[p.Row][p.Col] = cell
	return b
}

// CountPieces counts the non-empty cells
func CountPieces(b Board) int {
	count := 0
	for r := range b {
		for c := range b[r] {
			if b[r][c] != Empty {
				count++
			}
		}
	}
	return count
}

// IsDropPhase reports whether fewer than all eight pieces have been placed.
// The piece count is the only phase signal.
func IsDropPhase(b Board) bool {
	return CountPieces(b) < 2*PiecesPerSide
}

// Positions returns the cells holding piece in row-major order
func (b Board) Positions(piece Cell) []Position {
	positions := make([]Position, 0, PiecesPerSide)
	for r := range b {
		for c := range b[r] {
			if b[r][c] == piece {
				positions = append(positions, Position{Row: r, Col: c})
			}
		}
	}
	return positions
}
