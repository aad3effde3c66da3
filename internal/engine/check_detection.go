package engine

import (
	"fmt"

	"github.com/lgbarn/chesscore-go/internal/chess"
	"github.com/lgbarn/chesscore-go/internal/errors"
)

var (
	knightOffsets  = [][2]int{{-2, -1}, {-2, 1}, {-1, -2}, {-1, 2}, {1, -2}, {1, 2}, {2, -1}, {2, 1}}
	kingOffsets    = [][2]int{{-1, -1}, {-1, 0}, {-1, 1}, {0, -1}, {0, 1}, {1, -1}, {1, 0}, {1, 1}}
	diagonalDirs   = [][2]int{{-1, -1}, {-1, 1}, {1, -1}, {1, 1}}
	straightDirs   = [][2]int{{-1, 0}, {1, 0}, {0, -1}, {0, 1}}
	allSlidingDirs = append(append([][2]int{}, straightDirs...), diagonalDirs...)
)

// IsInCheck returns true if the given colour's king is attacked.
// A board with no king of that colour is corrupt and yields
// errors.ErrInternalInconsistency.
func IsInCheck(pos *Position, colour chess.Colour) (bool, error) {
	return isKingAttacked(&pos.Board, colour)
}

func isKingAttacked(board *chess.Board, colour chess.Colour) (bool, error) {
	king, ok := board.FindKing(colour)
	if !ok {
		return false, fmt.Errorf("no %s king on the board: %w", colour, errors.ErrInternalInconsistency)
	}
	return IsSquareAttacked(board, king, colour.Opposite()), nil
}

// IsSquareAttacked returns true if the square is attacked by the given colour.
func IsSquareAttacked(board *chess.Board, sq chess.Square, byColour chess.Colour) bool {
	// Check knight attacks
	knight := chess.Piece{Kind: chess.Knight, Colour: byColour}
	for _, off := range knightOffsets {
		if attackerAt(board, sq, off, knight) {
			return true
		}
	}

	// Check sliding pieces along straight lines
	rook := chess.Piece{Kind: chess.Rook, Colour: byColour}
	queen := chess.Piece{Kind: chess.Queen, Colour: byColour}
	for _, dir := range straightDirs {
		if p, ok := firstPieceOnRay(board, sq, dir); ok && (p == rook || p == queen) {
			return true
		}
	}

	// Check sliding pieces along diagonals
	bishop := chess.Piece{Kind: chess.Bishop, Colour: byColour}
	for _, dir := range diagonalDirs {
		if p, ok := firstPieceOnRay(board, sq, dir); ok && (p == bishop || p == queen) {
			return true
		}
	}

	// Check pawn attacks. White pawns attack from below, black from above.
	pawn := chess.Piece{Kind: chess.Pawn, Colour: byColour}
	pawnDir := -chess.ColourOffset(byColour)
	if attackerAt(board, sq, [2]int{-1, pawnDir}, pawn) || attackerAt(board, sq, [2]int{1, pawnDir}, pawn) {
		return true
	}

	// Check king attacks
	king := chess.Piece{Kind: chess.King, Colour: byColour}
	for _, off := range kingOffsets {
		if attackerAt(board, sq, off, king) {
			return true
		}
	}

	return false
}

// attackerAt reports whether want stands at sq shifted by off.
func attackerAt(board *chess.Board, sq chess.Square, off [2]int, want chess.Piece) bool {
	target, ok := sq.Offset(off[0], off[1])
	if !ok {
		return false
	}
	p, ok := board.PieceAt(target)
	return ok && p == want
}

// firstPieceOnRay returns the first piece met walking from sq in direction dir.
func firstPieceOnRay(board *chess.Board, sq chess.Square, dir [2]int) (chess.Piece, bool) {
	cur, ok := sq.Offset(dir[0], dir[1])
	for ok {
		if p, occupied := board.PieceAt(cur); occupied {
			return p, true
		}
		cur, ok = cur.Offset(dir[0], dir[1])
	}
	return chess.Piece{}, false
}

// recomputeChecks refreshes the per-colour check flags of a position.
func recomputeChecks(pos *Position) error {
	for _, colour := range []chess.Colour{chess.White, chess.Black} {
		inCheck, err := IsInCheck(pos, colour)
		if err != nil {
			return err
		}
		pos.InCheck[colour] = inCheck
	}
	return nil
}
