package game

// Size is the side length of the board
const Size = 5

// PiecesPerSide is the number of pieces each side drops before the move phase
const PiecesPerSide = 4

// Cell is the occupancy of a single board cell. The zero value is Empty, so a
// zero Board is an empty board. Pieces use the symbols they are rendered with.
type Cell byte

const (
	Empty Cell = 0
	Black Cell = 'b'
	Red   Cell = 'r'
)

// Pieces lists the two piece colors in turn order: Black moves first.
var Pieces = [2]Cell{Black, Red}

func (c Cell) String() string {
	if c == Empty {
		return " "
	}
	return string(rune(c))
}

// Opponent returns the complementary piece color. Empty has no opponent.
func (c Cell) Opponent() Cell {
	switch c {
	case Black:
		return Red
	case Red:
		return Black
	default:
		return Empty
	}
}

// Evaluates a non-terminal board to a score from self's perspective.
type Evaluate func(b Board, self, opp Cell) float64
