package chess

import (
	"fmt"

	chesserrors "github.com/lgbarn/chesscore-go/internal/errors"
)

// Move is a move in coordinate form: origin, destination and an optional
// promotion kind (NoKind when absent).
type Move struct {
	From      Square
	To        Square
	Promotion Kind
}

// String returns the 4 or 5 character text form, e.g. "e2e4" or "a7a8q".
func (m Move) String() string {
	s := m.From.String() + m.To.String()
	if m.Promotion != NoKind {
		s += string(m.Promotion.Letter() + ('a' - 'A'))
	}
	return s
}

// IsPromotion returns true if the move carries a promotion kind.
func (m Move) IsPromotion() bool {
	return m.Promotion != NoKind
}

// ParseMove parses move text. The text must be two squares optionally
// followed by a lowercase promotion letter (n, b, r, q). Whether a
// promotion letter is required depends on the position and is not
// checked here.
func ParseMove(text string) (Move, error) {
	if len(text) != 4 && len(text) != 5 {
		return Move{}, &chesserrors.MoveError{
			Err:      chesserrors.ErrMalformedInput,
			MoveText: text,
			Reason:   fmt.Sprintf("length %d, want 4 or 5", len(text)),
		}
	}
	from, ok := ParseSquare(text[0:2])
	if !ok {
		return Move{}, &chesserrors.MoveError{
			Err:      chesserrors.ErrMalformedInput,
			MoveText: text,
			Reason:   "bad origin square",
		}
	}
	to, ok := ParseSquare(text[2:4])
	if !ok {
		return Move{}, &chesserrors.MoveError{
			Err:      chesserrors.ErrMalformedInput,
			MoveText: text,
			Reason:   "bad destination square",
		}
	}
	m := Move{From: from, To: to}
	if len(text) == 5 {
		kind, ok := PromotionKind(text[4])
		if !ok {
			return Move{}, &chesserrors.MoveError{
				Err:      chesserrors.ErrMalformedInput,
				MoveText: text,
				Reason:   fmt.Sprintf("bad promotion letter %q", text[4]),
			}
		}
		m.Promotion = kind
	}
	return m, nil
}

// MustParseMove is ParseMove for constant input; it panics on malformed text.
func MustParseMove(text string) Move {
	m, err := ParseMove(text)
	if err != nil {
		panic(err)
	}
	return m
}
