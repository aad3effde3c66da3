// Package hashing provides Zobrist position hashing and a bounded,
// concurrency-safe table of perft node counts keyed by position.
package hashing

import (
	"math/rand"

	"github.com/lgbarn/chesscore-go/internal/chess"
	"github.com/lgbarn/chesscore-go/internal/engine"
)

// Key tables. A fixed seed keeps hashes stable across runs.
var (
	pieceKeys    [chess.NumColours][chess.King + 1][chess.NumSquares]uint64
	castlingKeys [chess.AllCastling + 1]uint64
	epFileKeys   [chess.BoardSize]uint64
	blackToMove  uint64
)

func init() {
	r := rand.New(rand.NewSource(0x5eed_c0de))
	for c := range pieceKeys {
		for k := chess.Pawn; k <= chess.King; k++ {
			for sq := range pieceKeys[c][k] {
				pieceKeys[c][k][sq] = r.Uint64()
			}
		}
	}
	for i := range castlingKeys {
		castlingKeys[i] = r.Uint64()
	}
	for i := range epFileKeys {
		epFileKeys[i] = r.Uint64()
	}
	blackToMove = r.Uint64()
}

// Zobrist returns the hash of everything that decides a position's legal
// move tree: placement, side to move, castling rights and the en passant
// file. The clocks are not included.
func Zobrist(pos *engine.Position) uint64 {
	var h uint64
	for i := 0; i < chess.NumSquares; i++ {
		if p, ok := pos.Board.PieceAt(chess.SquareAt(i)); ok {
			h ^= pieceKeys[p.Colour][p.Kind][i]
		}
	}
	if pos.ToMove == chess.Black {
		h ^= blackToMove
	}
	h ^= castlingKeys[pos.Castling&chess.AllCastling]
	if pos.EnPassant {
		h ^= epFileKeys[pos.EPSquare.File]
	}
	return h
}
