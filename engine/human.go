package engine

import (
	"bufio"
	"fmt"
	"io"

	"teeko/game"
	"teeko/searcher"
)

// HumanAgent prompts for moves on a text console. Invalid input and illegal
// moves are reported and prompted for again.
type HumanAgent struct {
	piece game.Cell
	in    *bufio.Scanner
	out   io.Writer
}

func NewHumanAgent(piece game.Cell, in io.Reader, out io.Writer) *HumanAgent {
	return &HumanAgent{
		piece: piece,
		in:    bufio.NewScanner(in),
		out:   out,
	}
}

func (a *HumanAgent) Piece() game.Cell {
	return a.piece
}

func (a *HumanAgent) FindMove(b game.Board, updates []Update) (game.Move, searcher.SearchMetrics, error) {
	for _, u := range updates {
		if u.Move.IsDrop() {
			fmt.Fprintf(a.out, "%s moved at %s\n", u.Piece, u.Move.To)
		} else {
			fmt.Fprintf(a.out, "%s moved from %s\n  to %s\n", u.Piece, u.Move.From, u.Move.To)
		}
	}
	fmt.Fprint(a.out, b.String())
	fmt.Fprintf(a.out, "%s's turn\n", a.piece)

	for {
		move, err := a.readMove(game.IsDropPhase(b))
		if err != nil {
			return game.Move{}, searcher.SearchMetrics{}, err
		}
		if err := game.Validate(b, move, a.piece); err != nil {
			fmt.Fprintln(a.out, err)
			continue
		}
		return move, searcher.SearchMetrics{}, nil
	}
}

func (a *HumanAgent) readMove(drop bool) (game.Move, error) {
	if drop {
		to, err := a.readPosition("Move (e.g. B3): ")
		return game.Drop(to), err
	}
	from, err := a.readPosition("Move from (e.g. B3): ")
	if err != nil {
		return game.Move{}, err
	}
	to, err := a.readPosition("Move to (e.g. B3): ")
	return game.Relocation(from, to), err
}

// readPosition prompts until a well formed cell is entered
func (a *HumanAgent) readPosition(prompt string) (game.Position, error) {
	for {
		fmt.Fprint(a.out, prompt)
		if !a.in.Scan() {
			if err := a.in.Err(); err != nil {
				return game.Position{}, fmt.Errorf("reading move: %w", err)
			}
			return game.Position{}, io.ErrUnexpectedEOF
		}
		p, err := game.ParsePosition(a.in.Text())
		if err == nil {
			return p, nil
		}
	}
}
