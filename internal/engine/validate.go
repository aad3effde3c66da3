package engine

import (
	"fmt"

	"github.com/lgbarn/chesscore-go/internal/chess"
	"github.com/lgbarn/chesscore-go/internal/errors"
)

// Validate checks move text against the current position without
// enumerating every legal move. Checks run in order and stop at the first
// failure:
//
//  1. text shape and promotion pairing (errors.ErrMalformedInput)
//  2. both squares on the board (errors.ErrMalformedInput)
//  3. a piece of the side to move on the origin
//  4. destination not occupied by the mover's own piece
//  5. movement geometry of the piece kind, including castling
//
// Failures in 3 to 5 wrap errors.ErrIllegalMove. When Rules.VerifySelfCheck
// is set a move that leaves the mover's king attacked is rejected as well.
// Validate never changes the state.
func Validate(state *GameState, text string) (chess.Move, error) {
	ply := len(state.History) + 1
	reject := func(err error, reason string) (chess.Move, error) {
		return chess.Move{}, &errors.MoveError{Err: err, Ply: ply, MoveText: text, Reason: reason}
	}

	m, err := chess.ParseMove(text)
	if err != nil {
		return chess.Move{}, err
	}

	piece, ok := state.Board.PieceAt(m.From)
	if reason := promotionMismatch(piece, ok, m); reason != "" {
		return reject(errors.ErrMalformedInput, reason)
	}

	if !ok {
		return reject(errors.ErrIllegalMove, fmt.Sprintf("no piece on %s", m.From))
	}
	if piece.Colour != state.ToMove {
		return reject(errors.ErrIllegalMove, fmt.Sprintf("%s is not to move", piece.Colour))
	}

	if target, ok := state.Board.PieceAt(m.To); ok {
		if target.Colour == piece.Colour {
			return reject(errors.ErrIllegalMove, fmt.Sprintf("%s is occupied by own piece", m.To))
		}
		if target.Kind == chess.King {
			return reject(errors.ErrIllegalMove, "a king cannot be captured")
		}
	}

	if !moveGeometryOK(state, piece, m) {
		return reject(errors.ErrIllegalMove, fmt.Sprintf("%s cannot move %s to %s", piece.Kind, m.From, m.To))
	}

	if state.Rules.VerifySelfCheck {
		ok, err := tryMove(state, m)
		if err != nil {
			return chess.Move{}, err
		}
		if !ok {
			return reject(errors.ErrIllegalMove, "leaves own king in check")
		}
	}

	return m, nil
}

// IsValid reports whether Validate accepts the move text.
func IsValid(state *GameState, text string) bool {
	_, err := Validate(state, text)
	return err == nil
}

// promotionMismatch returns a reason when the promotion letter does not
// pair with the move: a pawn reaching the last rank needs one, nothing
// else may carry one.
func promotionMismatch(piece chess.Piece, occupied bool, m chess.Move) string {
	reachesLastRank := occupied && piece.Kind == chess.Pawn && m.To.Rank == chess.PromotionRank(piece.Colour)
	switch {
	case reachesLastRank && !m.IsPromotion():
		return "promotion piece required"
	case !reachesLastRank && m.IsPromotion():
		return "promotion piece not allowed"
	}
	return ""
}

// moveGeometryOK checks the kind-specific movement rule for piece on m.From.
func moveGeometryOK(state *GameState, piece chess.Piece, m chess.Move) bool {
	switch piece.Kind {
	case chess.Pawn:
		return canPawnMove(state, m.From, m.To, piece.Colour)
	case chess.King:
		if c, ok := castlingPattern(m); ok && c.colour == piece.Colour {
			return canCastle(state, c)
		}
		return canPieceMove(&state.Board, chess.King, m.From, m.To)
	default:
		return canPieceMove(&state.Board, piece.Kind, m.From, m.To)
	}
}
