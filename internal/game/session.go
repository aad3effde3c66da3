// Package game provides Session, the query and command surface that
// front ends (the terminal client and the HTTP server) use to play a game.
//
// A Session is not safe for concurrent use; callers serialize access.
package game

import (
	"fmt"
	"strings"

	"github.com/rs/zerolog"

	"github.com/lgbarn/chesscore-go/internal/chess"
	"github.com/lgbarn/chesscore-go/internal/engine"
)

// Session wraps one engine.GameState.
type Session struct {
	state  *engine.GameState
	logger zerolog.Logger

	// Where the history starts, for move numbering.
	startNumber uint
	startColour chess.Colour
}

// Option configures a Session.
type Option func(*sessionOptions)

type sessionOptions struct {
	fen    string
	rules  engine.Rules
	logger zerolog.Logger
}

// WithStartFEN starts the session from fen instead of the initial position.
func WithStartFEN(fen string) Option {
	return func(o *sessionOptions) {
		o.fen = fen
	}
}

// WithRules sets the rule strictness.
func WithRules(r engine.Rules) Option {
	return func(o *sessionOptions) {
		o.rules = r
	}
}

// WithLogger sets the logger. The default discards everything.
func WithLogger(logger zerolog.Logger) Option {
	return func(o *sessionOptions) {
		o.logger = logger
	}
}

// New creates a session. It fails only when the start FEN is malformed.
func New(opts ...Option) (*Session, error) {
	o := sessionOptions{
		fen:    engine.InitialFEN,
		rules:  engine.DefaultRules(),
		logger: zerolog.Nop(),
	}
	for _, opt := range opts {
		opt(&o)
	}

	state, err := engine.Load(o.fen, engine.WithRules(o.rules))
	if err != nil {
		return nil, err
	}
	s := &Session{
		state:  state,
		logger: o.logger.With().Str("component", "session").Logger(),
	}
	s.markStart()
	s.logger.Debug().Str("fen", state.StartFEN).Bool("legacy_rules", o.rules.IsLegacy()).Msg("session created")
	return s, nil
}

func (s *Session) markStart() {
	s.startNumber = s.state.MoveNumber
	s.startColour = s.state.ToMove
}

// LegalMoves returns every legal move for the side to move.
func (s *Session) LegalMoves() ([]chess.Move, error) {
	return engine.LegalMoves(s.state)
}

// Submit validates move text and commits it. A rejected move leaves the
// game unchanged and the error wraps errors.ErrMalformedInput or
// errors.ErrIllegalMove.
func (s *Session) Submit(text string) (chess.Move, error) {
	m, err := engine.Validate(s.state, text)
	if err != nil {
		s.logger.Debug().Err(err).Str("move", text).Msg("move rejected")
		return chess.Move{}, err
	}
	if err := engine.Apply(s.state, m); err != nil {
		s.logger.Error().Err(err).Str("move", text).Msg("validated move failed to apply")
		return chess.Move{}, err
	}

	s.logger.Debug().Str("move", m.String()).Int("ply", s.state.Ply()).Msg("move accepted")
	if st, err := s.Status(); err == nil && st.IsTerminal() {
		s.logger.Info().Str("move", m.String()).Str("status", st.String()).Msg("game over")
	}
	return m, nil
}

// Status returns the derived game status.
func (s *Session) Status() (engine.Status, error) {
	return engine.GetStatus(s.state)
}

// StatusText returns "White's turn", "Black's turn", "Checkmate" or
// "Stalemate".
func (s *Session) StatusText() (string, error) {
	st, err := s.Status()
	if err != nil {
		return "", err
	}
	return engine.StatusText(st, s.state.ToMove), nil
}

// PieceAt returns the piece on sq, if any.
func (s *Session) PieceAt(sq chess.Square) (chess.Piece, bool) {
	return s.state.Board.PieceAt(sq)
}

// MoveHistory returns a copy of the committed moves.
func (s *Session) MoveHistory() []chess.Move {
	return engine.MoveHistory(s.state)
}

// LastMove returns the most recent move, if any.
func (s *Session) LastMove() (chess.Move, bool) {
	if len(s.state.History) == 0 {
		return chess.Move{}, false
	}
	return s.state.History[len(s.state.History)-1], true
}

// Load replaces the game with the position in fen and clears the history.
// On error the game is unchanged.
func (s *Session) Load(fen string) error {
	if err := s.state.Load(fen); err != nil {
		s.logger.Debug().Err(err).Str("fen", fen).Msg("load rejected")
		return err
	}
	s.markStart()
	s.logger.Info().Str("fen", s.state.StartFEN).Msg("position loaded")
	return nil
}

// Undo takes back the last move. It does nothing when there is no history.
func (s *Session) Undo() error {
	m, ok := s.LastMove()
	if !ok {
		return nil
	}
	if err := engine.UndoLast(s.state); err != nil {
		s.logger.Error().Err(err).Msg("undo failed")
		return err
	}
	s.logger.Debug().Str("move", m.String()).Int("ply", s.state.Ply()).Msg("move undone")
	return nil
}

// MoveLog renders the history as numbered move text, e.g.
// "1. e2e4 e7e5 2. g1f3 ". A history that starts with black opens with
// "1... ".
func (s *Session) MoveLog() string {
	var sb strings.Builder
	number := s.startNumber
	colour := s.startColour
	for i, m := range s.state.History {
		switch {
		case colour == chess.White:
			fmt.Fprintf(&sb, "%d. ", number)
		case i == 0:
			fmt.Fprintf(&sb, "%d... ", number)
		}
		sb.WriteString(m.String())
		sb.WriteByte(' ')
		if colour == chess.Black {
			number++
		}
		colour = colour.Opposite()
	}
	return sb.String()
}

// FEN returns the current position as a FEN string.
func (s *Session) FEN() string {
	return engine.FEN(s.state)
}

// ToMove returns the side to move.
func (s *Session) ToMove() chess.Colour {
	return s.state.ToMove
}

// InCheck reports whether colour's king is attacked.
func (s *Session) InCheck(colour chess.Colour) bool {
	return s.state.InCheck[colour]
}

// Position returns a copy of the current position.
func (s *Session) Position() engine.Position {
	return s.state.Position
}

// Rules returns the rule strictness in force.
func (s *Session) Rules() engine.Rules {
	return s.state.Rules
}

// State returns a clone of the underlying game state.
func (s *Session) State() *engine.GameState {
	return s.state.Clone()
}
