package game

import (
	"errors"
	"fmt"

	"teeko/utils"
)

var (
	ErrIllegalMove     = errors.New("illegal move")
	ErrNoPieceAtSource = errors.New("no piece at source")
	ErrIllegalDistance = errors.New("illegal move distance")
)

// IllegalMoveError reports a destination that cannot be played, or a move
// whose kind does not match the current phase
type IllegalMoveError struct {
	Move   Move
	Reason string
}

func (e *IllegalMoveError) Error() string {
	return fmt.Sprintf("illegal move %s: %s", e.Move, e.Reason)
}

func (e *IllegalMoveError) Unwrap() error {
	return ErrIllegalMove
}

// NoPieceAtSourceError reports a relocation from a cell the mover does not hold
type NoPieceAtSourceError struct {
	Source Position
	Piece  Cell
}

func (e *NoPieceAtSourceError) Error() string {
	return fmt.Sprintf("no %s piece at %s", e.Piece, e.Source)
}

func (e *NoPieceAtSourceError) Unwrap() error {
	return ErrNoPieceAtSource
}

// IllegalDistanceError reports a relocation to a non-adjacent cell
type IllegalDistanceError struct {
	From Position
	To   Position
}

func (e *IllegalDistanceError) Error() string {
	return fmt.Sprintf("cannot move from %s to %s: can only move to an adjacent space", e.From, e.To)
}

func (e *IllegalDistanceError) Unwrap() error {
	return ErrIllegalDistance
}

// Validate checks that piece may play m on b
func Validate(b Board, m Move, piece Cell) error {
	if !m.To.InBounds() {
		return &IllegalMoveError{Move: m, Reason: "destination is off the board"}
	}
	drop := IsDropPhase(b)
	if drop && m.Relocate {
		return &IllegalMoveError{Move: m, Reason: "pieces cannot be moved during the drop phase"}
	}
	if !drop && !m.Relocate {
		return &IllegalMoveError{Move: m, Reason: "all pieces are placed, a piece must be moved"}
	}
	if m.Relocate {
		if !m.From.InBounds() || b.At(m.From) != piece {
			return &NoPieceAtSourceError{Source: m.From, Piece: piece}
		}
		if !IsAdjacent(m.From, m.To) {
			return &IllegalDistanceError{From: m.From, To: m.To}
		}
	}
	if b.At(m.To) != Empty {
		return &IllegalMoveError{Move: m, Reason: "destination is occupied"}
	}
	return nil
}

// IsAdjacent reports whether a and b are distinct cells at Chebyshev distance 1
func IsAdjacent(a, b Position) bool {
	return utils.Chebyshev(a.Row, a.Col, b.Row, b.Col) == 1
}
