package game

import (
	"errors"
	"fmt"
	"strings"
)

var ErrBadNotation = errors.New("bad cell notation")

// String renders the position as column letter then row digit, e.g. "B3"
func (p Position) String() string {
	return fmt.Sprintf("%c%d", 'A'+p.Col, p.Row)
}

// ParsePosition parses a cell written as column letter A-E then row digit 0-4
func ParsePosition(s string) (Position, error) {
	s = strings.ToUpper(strings.TrimSpace(s))
	if len(s) != 2 || s[0] < 'A' || s[0] >= 'A'+Size || s[1] < '0' || s[1] >= '0'+Size {
		return Position{}, fmt.Errorf("%w: %q (e.g. B3)", ErrBadNotation, s)
	}
	return Position{Row: int(s[1] - '0'), Col: int(s[0] - 'A')}, nil
}

// String renders the board with row indices down the side and column letters
// underneath
func (b Board) String() string {
	var sb strings.Builder
	for r := range b {
		fmt.Fprintf(&sb, "%d: ", r)
		for _, cell := range b[r] {
			sb.WriteString(cell.String())
			sb.WriteByte(' ')
		}
		sb.WriteByte('\n')
	}
	sb.WriteString("   A B C D E\n")
	return sb.String()
}

// ParseBoard reads a board from Size rows of Size characters each, using 'b'
// and 'r' for pieces and '.' or ' ' for empty cells
func ParseBoard(rows ...string) (Board, error) {
	var b Board
	if len(rows) != Size {
		return b, fmt.Errorf("%w: expected %d rows, got %d", ErrBadNotation, Size, len(rows))
	}
	for r, row := range rows {
		if len(row) != Size {
			return b, fmt.Errorf("%w: row %d has %d cells", ErrBadNotation, r, len(row))
		}
		for c := 0; c < Size; c++ {
			switch Cell(row[c]) {
			case Black, Red:
				b[r][c] = Cell(row[c])
			case '.', ' ':
				b[r][c] = Empty
			default:
				return b, fmt.Errorf("%w: unexpected %q at row %d", ErrBadNotation, row[c], r)
			}
		}
	}
	return b, nil
}
