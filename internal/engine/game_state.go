// Package engine implements the chess rules: check detection, legal move
// generation, move validation, move application, FEN loading and undo.
//
// The engine is single-threaded and keeps no global state. Callers own a
// GameState and must serialize access to it.
package engine

import (
	"github.com/lgbarn/chesscore-go/internal/chess"
)

// Position is everything about a game that a move can change, apart from
// the history. It is a plain value, so assignment takes a snapshot.
type Position struct {
	Board chess.Board

	// Castling rights still held by each side.
	Castling chess.CastlingRights

	// Is an en passant capture possible? If so then EPSquare holds the
	// square passed over by the pawn that just made a double step.
	EnPassant bool
	EPSquare  chess.Square

	// The half-move clock since the last pawn move or capture.
	HalfmoveClock uint

	// The current full-move number.
	MoveNumber uint

	// Who has the next move.
	ToMove chess.Colour

	// Check flags per colour, recomputed after every commit and load.
	InCheck [chess.NumColours]bool
}

// GameState is the authoritative state of one game: the current position,
// the position it started from, and the moves committed since.
type GameState struct {
	Position

	// StartFEN is the position the history is replayed from.
	StartFEN string

	// History holds the committed moves in order.
	History []chess.Move

	// Rules selects the optional rule strictness.
	Rules Rules
}

// Option configures a GameState created by Load.
type Option func(*GameState)

// WithRules sets the rule strictness of a new game.
func WithRules(r Rules) Option {
	return func(s *GameState) {
		s.Rules = r
	}
}

// Snapshot captures the mutable state of a game for later restoration.
type Snapshot struct {
	position   Position
	historyLen int
}

// SaveState captures the current position and history length.
func (s *GameState) SaveState() Snapshot {
	return Snapshot{position: s.Position, historyLen: len(s.History)}
}

// RestoreState restores a state previously captured by SaveState.
// Moves committed after the snapshot are dropped from the history.
func (s *GameState) RestoreState(snap Snapshot) {
	s.Position = snap.position
	if snap.historyLen <= len(s.History) {
		s.History = s.History[:snap.historyLen]
	}
}

// Clone returns an independent copy of the game.
func (s *GameState) Clone() *GameState {
	c := *s
	c.History = append([]chess.Move(nil), s.History...)
	return &c
}

// Ply returns the number of committed moves.
func (s *GameState) Ply() int {
	return len(s.History)
}

// Status is the derived outcome of the side to move's situation.
type Status int

const (
	StatusOngoing Status = iota
	StatusCheckmateWhite
	StatusCheckmateBlack
	StatusStalemate
)

// Checkmate returns the status for the given colour being checkmated.
func Checkmate(colour chess.Colour) Status {
	if colour == chess.White {
		return StatusCheckmateWhite
	}
	return StatusCheckmateBlack
}

// String returns the status text shown to players.
func (st Status) String() string {
	switch st {
	case StatusCheckmateWhite, StatusCheckmateBlack:
		return "Checkmate"
	case StatusStalemate:
		return "Stalemate"
	default:
		return "Ongoing"
	}
}

// IsTerminal returns true when the game has ended.
func (st Status) IsTerminal() bool {
	return st != StatusOngoing
}

// Loser returns the checkmated colour, if any.
func (st Status) Loser() (chess.Colour, bool) {
	switch st {
	case StatusCheckmateWhite:
		return chess.White, true
	case StatusCheckmateBlack:
		return chess.Black, true
	}
	return chess.White, false
}

// StatusText returns "White's turn" or "Black's turn" while the game is
// ongoing, otherwise the terminal status text.
func StatusText(st Status, toMove chess.Colour) string {
	if st == StatusOngoing {
		return toMove.String() + "'s turn"
	}
	return st.String()
}

// GetStatus derives the game status from the legal-move set of the side
// to move. It is recomputed on every call.
func GetStatus(state *GameState) (Status, error) {
	has, err := HasLegalMoves(state)
	if err != nil {
		return StatusOngoing, err
	}
	if has {
		return StatusOngoing, nil
	}
	if state.InCheck[state.ToMove] {
		return Checkmate(state.ToMove), nil
	}
	return StatusStalemate, nil
}

// IsCheckmate returns true if the position is checkmate for the side to move.
func IsCheckmate(state *GameState) bool {
	st, err := GetStatus(state)
	return err == nil && st == Checkmate(state.ToMove)
}

// IsStalemate returns true if the position is stalemate for the side to move.
func IsStalemate(state *GameState) bool {
	st, err := GetStatus(state)
	return err == nil && st == StatusStalemate
}
