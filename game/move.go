package game

import "fmt"

// Move is either a drop onto To, or a relocation of the piece at From to To.
type Move struct {
	To       Position
	From     Position
	Relocate bool
}

func Drop(to Position) Move {
	return Move{To: to}
}

func Relocation(from, to Position) Move {
	return Move{To: to, From: from, Relocate: true}
}

func (m Move) IsDrop() bool {
	return !m.Relocate
}

func (m Move) String() string {
	if m.IsDrop() {
		return m.To.String()
	}
	return fmt.Sprintf("%s->%s", m.From, m.To)
}

// Apply returns a copy of b with m played by piece. The move is assumed to
// have been validated.
func Apply(b Board, m Move, piece Cell) Board {
	if m.Relocate {
		b[m.From.Row][m.From.Col] = Empty
	}
	b[m.To.Row][m.To.Col] = piece
	return b
}
