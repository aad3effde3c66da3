package engine

import "github.com/lgbarn/chesscore-go/internal/chess"

// LegalMoves returns every legal move for the side to move, in board order
// from a1 to h8. Each pseudo-legal candidate is applied to the state, the
// mover's king is tested for check, and the state is restored.
func LegalMoves(state *GameState) ([]chess.Move, error) {
	candidates := PseudoLegalMoves(state)
	legal := make([]chess.Move, 0, len(candidates))
	for _, m := range candidates {
		ok, err := tryMove(state, m)
		if err != nil {
			return nil, err
		}
		if ok {
			legal = append(legal, m)
		}
	}
	return legal, nil
}

// HasLegalMoves returns true if the side to move has at least one legal move.
func HasLegalMoves(state *GameState) (bool, error) {
	for _, m := range PseudoLegalMoves(state) {
		ok, err := tryMove(state, m)
		if err != nil {
			return false, err
		}
		if ok {
			return true, nil
		}
	}
	return false, nil
}

// LegalMovesFrom returns the legal moves of the piece on from.
func LegalMovesFrom(state *GameState, from chess.Square) ([]chess.Move, error) {
	moves, err := LegalMoves(state)
	if err != nil {
		return nil, err
	}
	var out []chess.Move
	for _, m := range moves {
		if m.From == from {
			out = append(out, m)
		}
	}
	return out, nil
}

// PseudoLegalMoves returns the moves that obey piece geometry and
// occupancy for the side to move, without the self-check filter.
func PseudoLegalMoves(state *GameState) []chess.Move {
	colour := state.ToMove
	var moves []chess.Move
	for i := 0; i < chess.NumSquares; i++ {
		from := chess.SquareAt(i)
		piece, ok := state.Board.PieceAt(from)
		if !ok || piece.Colour != colour {
			continue
		}

		switch piece.Kind {
		case chess.Pawn:
			moves = pawnMoves(state, from, colour, moves)
		case chess.Knight:
			moves = offsetMoves(&state.Board, from, colour, knightOffsets, moves)
		case chess.Bishop:
			moves = slidingMoves(&state.Board, from, colour, diagonalDirs, moves)
		case chess.Rook:
			moves = slidingMoves(&state.Board, from, colour, straightDirs, moves)
		case chess.Queen:
			moves = slidingMoves(&state.Board, from, colour, allSlidingDirs, moves)
		case chess.King:
			moves = offsetMoves(&state.Board, from, colour, kingOffsets, moves)
			moves = castlingMoves(state, moves)
		}
	}
	return moves
}

// offsetMoves appends knight or king steps onto empty or opposing squares.
func offsetMoves(board *chess.Board, from chess.Square, colour chess.Colour, offsets [][2]int, moves []chess.Move) []chess.Move {
	for _, off := range offsets {
		to, ok := from.Offset(off[0], off[1])
		if !ok {
			continue
		}
		if canLandOn(board, to, colour) {
			moves = append(moves, chess.Move{From: from, To: to})
		}
	}
	return moves
}

// slidingMoves ray-casts in each direction until blocked, including the
// blocking square when it holds an opposing piece.
func slidingMoves(board *chess.Board, from chess.Square, colour chess.Colour, dirs [][2]int, moves []chess.Move) []chess.Move {
	for _, dir := range dirs {
		to, ok := from.Offset(dir[0], dir[1])
		for ok {
			if board.Occupied(to) {
				if canLandOn(board, to, colour) {
					moves = append(moves, chess.Move{From: from, To: to})
				}
				break // Blocked
			}
			moves = append(moves, chess.Move{From: from, To: to})
			to, ok = to.Offset(dir[0], dir[1])
		}
	}
	return moves
}

// canLandOn reports whether a piece of colour may finish on sq: the square
// is empty or holds an opposing piece other than the king.
func canLandOn(board *chess.Board, sq chess.Square, colour chess.Colour) bool {
	p, ok := board.PieceAt(sq)
	if !ok {
		return true
	}
	return p.Colour != colour && p.Kind != chess.King
}

// tryMove applies m to the state, tests whether the mover's king is left
// in check and restores the state.
func tryMove(state *GameState, m chess.Move) (bool, error) {
	mover := state.ToMove
	saved := state.SaveState()
	defer state.RestoreState(saved)

	if err := Apply(state, m); err != nil {
		return false, err
	}
	return !state.InCheck[mover], nil
}
