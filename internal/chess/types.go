// Package chess provides core chess types: colours, pieces, squares, the board,
// castling rights and moves. It holds no rules knowledge.
package chess

// Colour represents the colour of a piece or player.
type Colour uint8

const (
	Black Colour = iota
	White
)

// NumColours is the number of colours, used to size per-colour arrays.
const NumColours = 2

// String returns the string representation of a colour.
func (c Colour) String() string {
	if c == White {
		return "White"
	}
	return "Black"
}

// Opposite returns the opposite colour.
func (c Colour) Opposite() Colour {
	if c == White {
		return Black
	}
	return White
}

// Letter returns the FEN side-to-move letter, 'w' or 'b'.
func (c Colour) Letter() byte {
	if c == White {
		return 'w'
	}
	return 'b'
}

// Kind represents a chess piece type. The zero value is not a piece.
type Kind uint8

const (
	NoKind Kind = iota
	Pawn
	Knight
	Bishop
	Rook
	Queen
	King
)

// String returns the string representation of a piece kind.
func (k Kind) String() string {
	names := []string{"None", "Pawn", "Knight", "Bishop", "Rook", "Queen", "King"}
	if int(k) < len(names) {
		return names[k]
	}
	return "Unknown"
}

// Letter returns the single letter representation of a kind (uppercase).
func (k Kind) Letter() byte {
	letters := []byte{' ', 'P', 'N', 'B', 'R', 'Q', 'K'}
	if int(k) < len(letters) {
		return letters[k]
	}
	return '?'
}

// PromotionKinds lists the kinds a pawn may promote to, in generation order.
var PromotionKinds = []Kind{Queen, Rook, Bishop, Knight}

// PromotionKind converts a lowercase promotion letter (n, b, r, q) to a kind.
func PromotionKind(c byte) (Kind, bool) {
	switch c {
	case 'q':
		return Queen, true
	case 'r':
		return Rook, true
	case 'b':
		return Bishop, true
	case 'n':
		return Knight, true
	default:
		return NoKind, false
	}
}

// Piece is a coloured chess piece.
type Piece struct {
	Kind   Kind
	Colour Colour
}

// W creates a white piece.
func W(kind Kind) Piece {
	return Piece{Kind: kind, Colour: White}
}

// B creates a black piece.
func B(kind Kind) Piece {
	return Piece{Kind: kind, Colour: Black}
}

// Letter returns the FEN letter for the piece: uppercase for white, lowercase for black.
func (p Piece) Letter() byte {
	letter := p.Kind.Letter()
	if p.Colour == Black && letter >= 'A' && letter <= 'Z' {
		letter += 'a' - 'A'
	}
	return letter
}

// String returns e.g. "White Knight".
func (p Piece) String() string {
	return p.Colour.String() + " " + p.Kind.String()
}

// PieceFromLetter converts a FEN piece letter to a piece.
func PieceFromLetter(c byte) (Piece, bool) {
	colour := White
	if c >= 'a' && c <= 'z' {
		colour = Black
		c -= 'a' - 'A'
	}
	var kind Kind
	switch c {
	case 'K':
		kind = King
	case 'Q':
		kind = Queen
	case 'R':
		kind = Rook
	case 'B':
		kind = Bishop
	case 'N':
		kind = Knight
	case 'P':
		kind = Pawn
	default:
		return Piece{}, false
	}
	return Piece{Kind: kind, Colour: colour}, true
}

// ColourOffset returns +1 for White, -1 for Black (for pawn direction).
func ColourOffset(colour Colour) int {
	if colour == White {
		return 1
	}
	return -1
}

// HomeRank returns the back rank index of the colour (0 for White, 7 for Black).
func HomeRank(colour Colour) int {
	if colour == White {
		return 0
	}
	return BoardSize - 1
}

// PromotionRank returns the rank index on which the colour's pawns promote.
func PromotionRank(colour Colour) int {
	return HomeRank(colour.Opposite())
}

// PawnStartRank returns the rank index the colour's pawns start on.
func PawnStartRank(colour Colour) int {
	return HomeRank(colour) + ColourOffset(colour)
}
