package engine

import "github.com/lgbarn/chesscore-go/internal/chess"

// pawnMoves appends the pseudo-legal moves of the pawn on from.
func pawnMoves(state *GameState, from chess.Square, colour chess.Colour, moves []chess.Move) []chess.Move {
	board := &state.Board
	dir := chess.ColourOffset(colour)

	// Forward moves onto empty squares only
	if to, ok := from.Offset(0, dir); ok && !board.Occupied(to) {
		moves = appendPawnMove(moves, from, to, colour)
		if from.Rank == chess.PawnStartRank(colour) {
			if to2, ok := from.Offset(0, 2*dir); ok && !board.Occupied(to2) {
				moves = append(moves, chess.Move{From: from, To: to2})
			}
		}
	}

	// Captures, including en passant
	for _, df := range []int{-1, 1} {
		to, ok := from.Offset(df, dir)
		if !ok {
			continue
		}
		if pawnCaptureTarget(state, to, colour) {
			moves = appendPawnMove(moves, from, to, colour)
		}
	}

	return moves
}

// appendPawnMove appends a pawn move, expanding it into the four
// promotions when it reaches the last rank.
func appendPawnMove(moves []chess.Move, from, to chess.Square, colour chess.Colour) []chess.Move {
	if to.Rank != chess.PromotionRank(colour) {
		return append(moves, chess.Move{From: from, To: to})
	}
	for _, kind := range chess.PromotionKinds {
		moves = append(moves, chess.Move{From: from, To: to, Promotion: kind})
	}
	return moves
}

// pawnCaptureTarget reports whether a pawn of colour may capture onto to:
// an opposing piece other than the king, or the en passant target.
func pawnCaptureTarget(state *GameState, to chess.Square, colour chess.Colour) bool {
	if p, ok := state.Board.PieceAt(to); ok {
		return p.Colour != colour && p.Kind != chess.King
	}
	return isEnPassantTarget(&state.Position, to)
}

// isEnPassantTarget reports whether sq is the current en passant target.
func isEnPassantTarget(pos *Position, sq chess.Square) bool {
	return pos.EnPassant && pos.EPSquare == sq
}

// canPawnMove checks pawn geometry for the validator: single push, double
// push from the start rank, diagonal capture or en passant capture.
func canPawnMove(state *GameState, from, to chess.Square, colour chess.Colour) bool {
	board := &state.Board
	dir := chess.ColourOffset(colour)
	fileDiff := to.File - from.File
	rankDiff := to.Rank - from.Rank

	switch {
	case fileDiff == 0 && rankDiff == dir:
		return !board.Occupied(to)
	case fileDiff == 0 && rankDiff == 2*dir:
		if from.Rank != chess.PawnStartRank(colour) {
			return false
		}
		mid := chess.Square{File: from.File, Rank: from.Rank + dir}
		return !board.Occupied(mid) && !board.Occupied(to)
	case abs(fileDiff) == 1 && rankDiff == dir:
		return pawnCaptureTarget(state, to, colour)
	}
	return false
}
