package chess

// Constants for board dimensions and coordinates.
const (
	BoardSize  = 8
	NumSquares = BoardSize * BoardSize

	ColBase  = 'a'
	RankBase = '1'
)

// Square is a (file, rank) pair, each in [0, BoardSize).
// File 0 is the a-file and rank 0 is the first rank.
type Square struct {
	File int
	Rank int
}

// ToSquare builds a square from 0-based file and rank indices.
func ToSquare(file, rank int) Square {
	return Square{File: file, Rank: rank}
}

// ParseSquare converts algebraic text such as "e4" to a square.
// It reports false for anything that is not exactly a file letter a-h
// followed by a rank digit 1-8.
func ParseSquare(text string) (Square, bool) {
	if len(text) != 2 {
		return Square{}, false
	}
	sq := Square{File: int(text[0]) - ColBase, Rank: int(text[1]) - RankBase}
	if !sq.Valid() {
		return Square{}, false
	}
	return sq, true
}

// MustSquare is ParseSquare for constant input; it panics on malformed text.
func MustSquare(text string) Square {
	sq, ok := ParseSquare(text)
	if !ok {
		panic("chess: malformed square " + text)
	}
	return sq
}

// Valid reports whether the square lies on the board.
func (s Square) Valid() bool {
	return s.File >= 0 && s.File < BoardSize && s.Rank >= 0 && s.Rank < BoardSize
}

// Offset returns the square shifted by the given file and rank deltas
// and whether it is still on the board.
func (s Square) Offset(df, dr int) (Square, bool) {
	n := Square{File: s.File + df, Rank: s.Rank + dr}
	return n, n.Valid()
}

// Index returns the 0..63 index with a1 = 0 and h8 = 63.
func (s Square) Index() int {
	return s.Rank*BoardSize + s.File
}

// SquareAt is the inverse of Index.
func SquareAt(index int) Square {
	return Square{File: index % BoardSize, Rank: index / BoardSize}
}

// String returns the algebraic label, or "-" for an off-board square.
func (s Square) String() string {
	if !s.Valid() {
		return "-"
	}
	return string([]byte{byte(ColBase + s.File), byte(RankBase + s.Rank)})
}

// IsLight returns true if the square is a light square.
func (s Square) IsLight() bool {
	return (s.File+s.Rank)%2 == 1
}
