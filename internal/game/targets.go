package game

import (
	"github.com/lgbarn/chesscore-go/internal/chess"
	"github.com/lgbarn/chesscore-go/internal/engine"
)

// Target is a legal destination from one square.
type Target struct {
	Square chess.Square
	// Capture is set when the destination holds an opposing piece or is
	// the en passant target.
	Capture bool
	// Promotion is set when reaching the square promotes a pawn.
	Promotion bool
}

// Targets returns the distinct legal destinations of the piece on from.
// Promotion moves to one square are folded into a single target.
func (s *Session) Targets(from chess.Square) ([]Target, error) {
	moves, err := engine.LegalMovesFrom(s.state, from)
	if err != nil {
		return nil, err
	}

	var targets []Target
	seen := make(map[chess.Square]bool, len(moves))
	for _, m := range moves {
		if seen[m.To] {
			continue
		}
		seen[m.To] = true
		_, occupied := s.state.Board.PieceAt(m.To)
		ep := s.state.EnPassant && m.To == s.state.EPSquare
		targets = append(targets, Target{
			Square:    m.To,
			Capture:   occupied || ep,
			Promotion: m.IsPromotion(),
		})
	}
	return targets, nil
}
