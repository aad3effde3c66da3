package chess

// CastlingRights is the set of castling permissions still held by each side.
type CastlingRights uint8

const (
	WhiteKingside CastlingRights = 1 << iota
	WhiteQueenside
	BlackKingside
	BlackQueenside

	NoCastling  CastlingRights = 0
	AllCastling                = WhiteKingside | WhiteQueenside | BlackKingside | BlackQueenside
)

// Has reports whether every right in r is held.
func (c CastlingRights) Has(r CastlingRights) bool {
	return r != 0 && c&r == r
}

// Set adds r.
func (c *CastlingRights) Set(r CastlingRights) {
	*c |= r
}

// Clear removes r.
func (c *CastlingRights) Clear(r CastlingRights) {
	*c &^= r
}

// String returns the FEN castling field, e.g. "KQkq" or "-".
func (c CastlingRights) String() string {
	var out []byte
	for _, r := range []struct {
		right  CastlingRights
		letter byte
	}{
		{WhiteKingside, 'K'},
		{WhiteQueenside, 'Q'},
		{BlackKingside, 'k'},
		{BlackQueenside, 'q'},
	} {
		if c.Has(r.right) {
			out = append(out, r.letter)
		}
	}
	if len(out) == 0 {
		return "-"
	}
	return string(out)
}

// KingsideRight returns the kingside right of the colour.
func KingsideRight(colour Colour) CastlingRights {
	if colour == White {
		return WhiteKingside
	}
	return BlackKingside
}

// QueensideRight returns the queenside right of the colour.
func QueensideRight(colour Colour) CastlingRights {
	if colour == White {
		return WhiteQueenside
	}
	return BlackQueenside
}

// BothRights returns both rights of the colour.
func BothRights(colour Colour) CastlingRights {
	return KingsideRight(colour) | QueensideRight(colour)
}

// RookCornerRight returns the right tied to a rook's original corner square,
// or NoCastling when sq is not one of a1, h1, a8, h8.
func RookCornerRight(sq Square) CastlingRights {
	switch sq {
	case Square{File: 0, Rank: 0}:
		return WhiteQueenside
	case Square{File: 7, Rank: 0}:
		return WhiteKingside
	case Square{File: 0, Rank: 7}:
		return BlackQueenside
	case Square{File: 7, Rank: 7}:
		return BlackKingside
	}
	return NoCastling
}
