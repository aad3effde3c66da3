package output

import (
	"encoding/json"
	"io"
	"strings"

	"github.com/lgbarn/chesscore-go/internal/chess"
	"github.com/lgbarn/chesscore-go/internal/game"
)

// PositionView is the JSON projection of a session handed to rendering
// clients.
type PositionView struct {
	FEN     string `json:"fen"`
	Turn    string `json:"turn"` // "white" or "black"
	Status  string `json:"status"`
	InCheck bool   `json:"inCheck"`

	// Squares lists all 64 squares from a8 to h1, rank by rank.
	Squares []SquareView `json:"squares"`

	History    []string `json:"history"`
	MoveLog    string   `json:"moveLog"`
	LastMove   string   `json:"lastMove,omitempty"`
	LegalMoves []string `json:"legalMoves"`
}

// SquareView is one square of a PositionView.
type SquareView struct {
	Square string `json:"square"`
	Piece  string `json:"piece"` // FEN letter, empty when vacant
}

// TargetView is one legal destination from a square.
type TargetView struct {
	Square    string `json:"square"`
	Capture   bool   `json:"capture"`
	Promotion bool   `json:"promotion,omitempty"`
}

// NewPositionView builds the view of the session's current position.
func NewPositionView(s *game.Session) (*PositionView, error) {
	status, err := s.StatusText()
	if err != nil {
		return nil, err
	}
	legal, err := s.LegalMoves()
	if err != nil {
		return nil, err
	}

	toMove := s.ToMove()
	v := &PositionView{
		FEN:        s.FEN(),
		Turn:       strings.ToLower(toMove.String()),
		Status:     status,
		InCheck:    s.InCheck(toMove),
		Squares:    make([]SquareView, 0, chess.NumSquares),
		History:    MoveTexts(s.MoveHistory()),
		MoveLog:    s.MoveLog(),
		LegalMoves: MoveTexts(legal),
	}
	if m, ok := s.LastMove(); ok {
		v.LastMove = m.String()
	}

	for rank := chess.BoardSize - 1; rank >= 0; rank-- {
		for file := 0; file < chess.BoardSize; file++ {
			v.Squares = append(v.Squares, NewSquareView(s, chess.ToSquare(file, rank)))
		}
	}
	return v, nil
}

// NewSquareView describes one square of the session's board.
func NewSquareView(s *game.Session, sq chess.Square) SquareView {
	view := SquareView{Square: sq.String()}
	if p, ok := s.PieceAt(sq); ok {
		view.Piece = string(p.Letter())
	}
	return view
}

// NewTargetViews converts destination hints to their JSON form.
func NewTargetViews(targets []game.Target) []TargetView {
	views := make([]TargetView, 0, len(targets))
	for _, t := range targets {
		views = append(views, TargetView{
			Square:    t.Square.String(),
			Capture:   t.Capture,
			Promotion: t.Promotion,
		})
	}
	return views
}

// MoveTexts returns the text form of each move. The result is never nil.
func MoveTexts(moves []chess.Move) []string {
	texts := make([]string, 0, len(moves))
	for _, m := range moves {
		texts = append(texts, m.String())
	}
	return texts
}

// WriteJSON writes v as indented JSON.
func WriteJSON(w io.Writer, v interface{}) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
