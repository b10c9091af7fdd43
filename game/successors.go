package game

// Successor pairs a legal move with the board it produces
type Successor struct {
	Move  Move
	Board Board
}

// Successors enumerates every board reachable by piece in one move, in
// row-major order of the moved piece and then of its destination. During the
// drop phase every empty cell is a destination; afterwards each piece may step
// to any empty cell among its eight neighbours.
func Successors(b Board, piece Cell) []Successor {
	if IsDropPhase(b) {
		return dropSuccessors(b, piece)
	}
	return moveSuccessors(b, piece)
}

func dropSuccessors(b Board, piece Cell) []Successor {
	successors := make([]Successor, 0, Size*Size-CountPieces(b))
	for r := range b {
		for c := range b[r] {
			if b[r][c] != Empty {
				continue
			}
			m := Drop(Position{Row: r, Col: c})
			successors = append(successors, Successor{Move: m, Board: Apply(b, m, piece)})
		}
	}
	return successors
}

func moveSuccessors(b Board, piece Cell) []Successor {
	var successors []Successor
	for _, from := range b.Positions(piece) {
		for _, to := range Neighbours(from) {
			if b.At(to) != Empty {
				continue
			}
			m := Relocation(from, to)
			successors = append(successors, Successor{Move: m, Board: Apply(b, m, piece)})
		}
	}
	return successors
}

// Neighbours returns the in-bounds cells at Chebyshev distance 1 from p, in
// row-major order
func Neighbours(p Position) []Position {
	neighbours := make([]Position, 0, 8)
	for r := p.Row - 1; r <= p.Row+1; r++ {
		for c := p.Col - 1; c <= p.Col+1; c++ {
			n := Position{Row: r, Col: c}
			if n != p && n.InBounds() {
				neighbours = append(neighbours, n)
			}
		}
	}
	return neighbours
}
