package player

import (
	"fmt"

	"teeko/engine"
	"teeko/game"
	"teeko/searcher"

	"github.com/rs/zerolog/log"
	"golang.org/x/exp/rand"
)

// Player is a minimax agent holding its own copy of the game board. The board
// only changes through validated opponent moves and the player's own moves.
type Player struct {
	piece    game.Cell
	opp      game.Cell
	board    game.Board
	searcher *searcher.Minimax
}

// NewPlayer creates a player with a randomly chosen piece color and an empty
// board
func NewPlayer(options ...searcher.Option) *Player {
	return NewPlayerWithPiece(game.Pieces[rand.Intn(len(game.Pieces))], options...)
}

func NewPlayerWithPiece(piece game.Cell, options ...searcher.Option) *Player {
	return &Player{
		piece:    piece,
		opp:      piece.Opponent(),
		board:    game.NewBoard(),
		searcher: searcher.NewMinimax(piece, options...),
	}
}

func (p *Player) Piece() game.Cell {
	return p.piece
}

func (p *Player) Opponent() game.Cell {
	return p.opp
}

// Board returns a copy of the player's board
func (p *Player) Board() game.Board {
	return p.board
}

// MakeMove selects the next move on the player's board without playing it
func (p *Player) MakeMove() (game.Move, searcher.SearchMetrics, error) {
	return p.searcher.FindMove(p.board)
}

// OpponentMove validates the opponent's move against the player's board and
// plays it
func (p *Player) OpponentMove(m game.Move) error {
	if err := game.Validate(p.board, m, p.opp); err != nil {
		return err
	}
	p.PlacePiece(m, p.opp)
	return nil
}

// PlacePiece plays an already validated move for piece
func (p *Player) PlacePiece(m game.Move, piece game.Cell) {
	p.board = game.Apply(p.board, m, piece)
}

// GameValue is 1 if the player has won, -1 if the opponent has and 0 otherwise
func (p *Player) GameValue() int {
	return game.EvaluateTerminal(p.board, p.piece)
}

// FindMove replays the opponent moves made since the player's last turn, then
// picks and plays its own move
func (p *Player) FindMove(b game.Board, updates []engine.Update) (game.Move, searcher.SearchMetrics, error) {
	for _, u := range updates {
		if u.Piece != p.opp {
			continue
		}
		if err := p.OpponentMove(u.Move); err != nil {
			return game.Move{}, searcher.SearchMetrics{}, fmt.Errorf("replaying opponent move %s: %w", u.Move, err)
		}
	}
	if p.board != b {
		log.Warn().Msgf("player %s board does not match the game board, resynchronizing", p.piece)
		p.board = b
	}

	move, metrics, err := p.MakeMove()
	if err != nil {
		return game.Move{}, metrics, err
	}
	p.PlacePiece(move, p.piece)
	return move, metrics, nil
}
