package engine

import "github.com/lgbarn/chesscore-go/internal/chess"

// castle describes one of the four canonical castling moves.
type castle struct {
	colour   chess.Colour
	right    chess.CastlingRights
	kingFrom chess.Square
	kingTo   chess.Square
	rookFrom chess.Square
	rookTo   chess.Square
	// between lists the squares that must be empty.
	between []chess.Square
	// transit is the square the king crosses.
	transit chess.Square
}

var castles = []castle{
	{
		colour: chess.White, right: chess.WhiteKingside,
		kingFrom: sq("e1"), kingTo: sq("g1"), rookFrom: sq("h1"), rookTo: sq("f1"),
		between: []chess.Square{sq("f1"), sq("g1")}, transit: sq("f1"),
	},
	{
		colour: chess.White, right: chess.WhiteQueenside,
		kingFrom: sq("e1"), kingTo: sq("c1"), rookFrom: sq("a1"), rookTo: sq("d1"),
		between: []chess.Square{sq("d1"), sq("c1"), sq("b1")}, transit: sq("d1"),
	},
	{
		colour: chess.Black, right: chess.BlackKingside,
		kingFrom: sq("e8"), kingTo: sq("g8"), rookFrom: sq("h8"), rookTo: sq("f8"),
		between: []chess.Square{sq("f8"), sq("g8")}, transit: sq("f8"),
	},
	{
		colour: chess.Black, right: chess.BlackQueenside,
		kingFrom: sq("e8"), kingTo: sq("c8"), rookFrom: sq("a8"), rookTo: sq("d8"),
		between: []chess.Square{sq("d8"), sq("c8"), sq("b8")}, transit: sq("d8"),
	},
}

func sq(text string) chess.Square {
	return chess.MustSquare(text)
}

// castlingPattern returns the castling move whose king squares match m.
// It does not look at the board.
func castlingPattern(m chess.Move) (castle, bool) {
	for _, c := range castles {
		if m.From == c.kingFrom && m.To == c.kingTo {
			return c, true
		}
	}
	return castle{}, false
}

// canCastle checks the castling conditions for the side described by c:
// king and rook on their original squares, the right still held, the
// squares between them empty and the king not in check. Under strict
// rules the square the king crosses must not be attacked either.
func canCastle(state *GameState, c castle) bool {
	board := &state.Board
	if king, ok := board.PieceAt(c.kingFrom); !ok || king != (chess.Piece{Kind: chess.King, Colour: c.colour}) {
		return false
	}
	if rook, ok := board.PieceAt(c.rookFrom); !ok || rook != (chess.Piece{Kind: chess.Rook, Colour: c.colour}) {
		return false
	}
	if !state.Castling.Has(c.right) {
		return false
	}
	for _, s := range c.between {
		if board.Occupied(s) {
			return false
		}
	}
	if state.InCheck[c.colour] {
		return false
	}
	if state.Rules.StrictCastling && IsSquareAttacked(board, c.transit, c.colour.Opposite()) {
		return false
	}
	return true
}

// castlingMoves returns the castling moves available to the side to move.
func castlingMoves(state *GameState, moves []chess.Move) []chess.Move {
	for _, c := range castles {
		if c.colour == state.ToMove && canCastle(state, c) {
			moves = append(moves, chess.Move{From: c.kingFrom, To: c.kingTo})
		}
	}
	return moves
}
