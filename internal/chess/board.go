package chess

// Board holds the pieces of a position. It is a plain array value, so
// assigning a Board takes a full snapshot.
type Board struct {
	squares [NumSquares]Piece
	present [NumSquares]bool
}

// NewBoard creates a new empty board.
func NewBoard() Board {
	return Board{}
}

// InitialBoard returns a board set up in the standard starting position.
func InitialBoard() Board {
	var b Board
	b.SetupInitialPosition()
	return b
}

// SetupInitialPosition sets up the standard chess starting position.
func (b *Board) SetupInitialPosition() {
	*b = Board{}
	backRank := []Kind{Rook, Knight, Bishop, Queen, King, Bishop, Knight, Rook}
	for file := 0; file < BoardSize; file++ {
		b.Place(W(backRank[file]), ToSquare(file, 0))
		b.Place(W(Pawn), ToSquare(file, 1))
		b.Place(B(Pawn), ToSquare(file, 6))
		b.Place(B(backRank[file]), ToSquare(file, 7))
	}
}

// PieceAt returns the piece on sq and whether the square is occupied.
// Off-board squares are reported as empty.
func (b *Board) PieceAt(sq Square) (Piece, bool) {
	if !sq.Valid() {
		return Piece{}, false
	}
	i := sq.Index()
	return b.squares[i], b.present[i]
}

// Occupied reports whether sq holds a piece.
func (b *Board) Occupied(sq Square) bool {
	_, ok := b.PieceAt(sq)
	return ok
}

// Place puts piece on sq, replacing any occupant.
func (b *Board) Place(piece Piece, sq Square) {
	if !sq.Valid() {
		return
	}
	i := sq.Index()
	b.squares[i] = piece
	b.present[i] = true
}

// Clear empties sq.
func (b *Board) Clear(sq Square) {
	if !sq.Valid() {
		return
	}
	i := sq.Index()
	b.squares[i] = Piece{}
	b.present[i] = false
}

// ColourAt returns the colour of the piece on sq, if any.
func (b *Board) ColourAt(sq Square) (Colour, bool) {
	p, ok := b.PieceAt(sq)
	return p.Colour, ok
}

// FindKing returns the square of the colour's king, scanning a1 to h8.
func (b *Board) FindKing(colour Colour) (Square, bool) {
	want := Piece{Kind: King, Colour: colour}
	for i := 0; i < NumSquares; i++ {
		if b.present[i] && b.squares[i] == want {
			return SquareAt(i), true
		}
	}
	return Square{}, false
}

// Count returns the number of pieces on the board.
func (b *Board) Count() int {
	n := 0
	for _, ok := range b.present {
		if ok {
			n++
		}
	}
	return n
}
