package engine

import (
	"github.com/lgbarn/chesscore-go/internal/chess"
	"github.com/lgbarn/chesscore-go/internal/errors"
)

// Apply commits m to the game. It is the only code that updates castling
// rights, the en passant target, the clocks and the turn. Apply trusts that
// m has been validated; it only refuses moves it cannot execute at all.
// The new position is built on a copy, so on error the state is untouched.
func Apply(state *GameState, m chess.Move) error {
	next, err := applyToPosition(state.Position, m)
	if err != nil {
		return &errors.MoveError{Err: err, Ply: len(state.History) + 1, MoveText: m.String()}
	}
	state.Position = next
	state.History = append(state.History, m)
	return nil
}

// applyToPosition returns the position after m.
func applyToPosition(pos Position, m chess.Move) (Position, error) {
	board := &pos.Board
	piece, ok := board.PieceAt(m.From)
	if !ok {
		return pos, errors.Wrapf(errors.ErrIllegalMove, "no piece on %s", m.From)
	}
	colour := piece.Colour
	if colour != pos.ToMove {
		return pos, errors.Wrapf(errors.ErrIllegalMove, "%s is not to move", colour)
	}
	captured, destOccupied := board.PieceAt(m.To)
	if destOccupied && captured.Kind == chess.King {
		return pos, errors.Wrap(errors.ErrIllegalMove, "a king cannot be captured")
	}
	if m.Promotion != chess.NoKind && piece.Kind != chess.Pawn {
		return pos, errors.Wrapf(errors.ErrIllegalMove, "%s cannot promote", piece.Kind)
	}
	enPassant := piece.Kind == chess.Pawn && m.From.File != m.To.File && isEnPassantTarget(&pos, m.To)

	// Half-move clock
	if piece.Kind == chess.Pawn || destOccupied || isEnPassantTarget(&pos, m.To) {
		pos.HalfmoveClock = 0
	} else {
		pos.HalfmoveClock++
	}

	// Castling rights lost by the mover
	switch piece.Kind {
	case chess.King:
		if c, ok := castlingPattern(m); ok && c.colour == colour {
			if rook, ok := board.PieceAt(c.rookFrom); ok {
				board.Clear(c.rookFrom)
				board.Place(rook, c.rookTo)
			}
		}
		pos.Castling.Clear(chess.BothRights(colour))
	case chess.Rook:
		if right := chess.RookCornerRight(m.From); right&chess.BothRights(colour) != 0 {
			pos.Castling.Clear(right)
		}
	}

	// Castling right lost by capture on an opposing rook's corner
	if destOccupied {
		if right := chess.RookCornerRight(m.To); right&chess.BothRights(colour.Opposite()) != 0 {
			pos.Castling.Clear(right)
		}
	}

	// Remove the captured piece
	board.Clear(m.From)
	if enPassant {
		board.Clear(chess.Square{File: m.To.File, Rank: m.To.Rank - chess.ColourOffset(colour)})
	} else {
		board.Clear(m.To)
	}

	// Place the moved piece
	if m.Promotion != chess.NoKind {
		board.Place(chess.Piece{Kind: m.Promotion, Colour: colour}, m.To)
	} else {
		board.Place(piece, m.To)
	}

	// En passant target after a double step
	pos.EnPassant = false
	pos.EPSquare = chess.Square{}
	if piece.Kind == chess.Pawn && abs(m.To.Rank-m.From.Rank) == 2 {
		pos.EnPassant = true
		pos.EPSquare = chess.Square{File: m.From.File, Rank: m.From.Rank + chess.ColourOffset(colour)}
	}

	if colour == chess.Black {
		pos.MoveNumber++
	}
	pos.ToMove = colour.Opposite()

	if err := recomputeChecks(&pos); err != nil {
		return pos, err
	}
	return pos, nil
}
