package engine

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/lgbarn/chesscore-go/internal/chess"
	"github.com/lgbarn/chesscore-go/internal/errors"
)

// InitialFEN is the FEN string for the standard starting position.
const InitialFEN = "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1"

// Load creates a game from a FEN string with an empty history.
// Options are applied after the default rules are set.
func Load(fen string, opts ...Option) (*GameState, error) {
	state := &GameState{Rules: DefaultRules()}
	for _, opt := range opts {
		opt(state)
	}
	if err := state.Load(fen); err != nil {
		return nil, err
	}
	return state, nil
}

// NewGame creates a game in the standard starting position.
func NewGame(opts ...Option) *GameState {
	state, err := Load(InitialFEN, opts...)
	if err != nil {
		panic(err)
	}
	return state
}

// Load replaces the whole position from a FEN string and clears the
// history. The rules are kept. On error the state is unchanged.
func (s *GameState) Load(fen string) error {
	pos, normalized, err := ParseFEN(fen)
	if err != nil {
		return err
	}
	s.Position = pos
	s.StartFEN = normalized
	s.History = nil
	return nil
}

// ParseFEN parses the six FEN fields into a position. It also returns the
// FEN with its fields separated by single spaces.
func ParseFEN(fen string) (Position, string, error) {
	parts := strings.Fields(fen)
	if len(parts) != 6 {
		return Position{}, "", &errors.FENError{
			Field: "fields",
			Value: fen,
			Err:   fmt.Errorf("%d fields, want 6: %w", len(parts), errors.ErrMalformedFEN),
		}
	}

	var pos Position
	steps := []func(*Position, string) error{
		parsePiecePositions,
		parseSideToMove,
		parseCastlingRights,
		parseEnPassant,
		parseHalfmoveClock,
		parseMoveNumber,
	}
	for i, step := range steps {
		if err := step(&pos, parts[i]); err != nil {
			return Position{}, "", err
		}
	}

	for _, colour := range []chess.Colour{chess.White, chess.Black} {
		if n := countKings(&pos.Board, colour); n != 1 {
			return Position{}, "", &errors.FENError{
				Field: "placement",
				Value: parts[0],
				Err:   fmt.Errorf("%d %s kings: %w", n, colour, errors.ErrMalformedFEN),
			}
		}
	}
	if err := recomputeChecks(&pos); err != nil {
		return Position{}, "", err
	}

	return pos, strings.Join(parts, " "), nil
}

// parsePiecePositions parses the piece placement field of a FEN string.
func parsePiecePositions(pos *Position, field string) error {
	fail := func(format string, args ...interface{}) error {
		return &errors.FENError{
			Field: "placement",
			Value: field,
			Err:   fmt.Errorf(format+": %w", append(args, errors.ErrMalformedFEN)...),
		}
	}

	ranks := strings.Split(field, "/")
	if len(ranks) != chess.BoardSize {
		return fail("%d ranks, want 8", len(ranks))
	}

	pos.Board = chess.NewBoard()
	for i, row := range ranks {
		rank := chess.BoardSize - 1 - i
		file := 0
		for j := 0; j < len(row); j++ {
			c := row[j]
			switch {
			case c >= '1' && c <= '8':
				file += int(c - '0')
			default:
				piece, ok := chess.PieceFromLetter(c)
				if !ok {
					return fail("invalid piece character %q", c)
				}
				if file >= chess.BoardSize {
					return fail("rank %d overflows", rank+1)
				}
				pos.Board.Place(piece, chess.ToSquare(file, rank))
				file++
			}
			if file > chess.BoardSize {
				return fail("rank %d overflows", rank+1)
			}
		}
		if file != chess.BoardSize {
			return fail("rank %d has %d files", rank+1, file)
		}
	}
	return nil
}

// parseSideToMove parses the side to move field.
func parseSideToMove(pos *Position, field string) error {
	switch field {
	case "w":
		pos.ToMove = chess.White
	case "b":
		pos.ToMove = chess.Black
	default:
		return &errors.FENError{Field: "turn", Value: field, Err: errors.ErrMalformedFEN}
	}
	return nil
}

// parseCastlingRights parses the castling availability field.
func parseCastlingRights(pos *Position, field string) error {
	pos.Castling = chess.NoCastling
	if field == "-" {
		return nil
	}
	if field == "" {
		return &errors.FENError{Field: "castling", Value: field, Err: errors.ErrMalformedFEN}
	}
	for _, c := range field {
		var right chess.CastlingRights
		switch c {
		case 'K':
			right = chess.WhiteKingside
		case 'Q':
			right = chess.WhiteQueenside
		case 'k':
			right = chess.BlackKingside
		case 'q':
			right = chess.BlackQueenside
		default:
			return &errors.FENError{Field: "castling", Value: field, Err: errors.ErrMalformedFEN}
		}
		if pos.Castling.Has(right) {
			return &errors.FENError{Field: "castling", Value: field, Err: errors.ErrMalformedFEN}
		}
		pos.Castling.Set(right)
	}
	return nil
}

// parseEnPassant parses the en passant target square field. The target
// must sit behind a pawn of the side that just moved.
func parseEnPassant(pos *Position, field string) error {
	pos.EnPassant = false
	if field == "-" {
		return nil
	}
	sq, ok := chess.ParseSquare(field)
	if !ok {
		return &errors.FENError{Field: "en passant", Value: field, Err: errors.ErrMalformedFEN}
	}
	mover := pos.ToMove.Opposite()
	if sq.Rank != chess.PawnStartRank(mover)+chess.ColourOffset(mover) {
		return &errors.FENError{
			Field: "en passant",
			Value: field,
			Err:   fmt.Errorf("square not on rank %d: %w", chess.PawnStartRank(mover)+chess.ColourOffset(mover)+1, errors.ErrMalformedFEN),
		}
	}
	pos.EnPassant = true
	pos.EPSquare = sq
	return nil
}

// parseHalfmoveClock parses the half-move clock field.
func parseHalfmoveClock(pos *Position, field string) error {
	n, err := strconv.ParseUint(field, 10, 32)
	if err != nil {
		return &errors.FENError{Field: "halfmove clock", Value: field, Err: errors.ErrMalformedFEN}
	}
	pos.HalfmoveClock = uint(n)
	return nil
}

// parseMoveNumber parses the full-move number field.
func parseMoveNumber(pos *Position, field string) error {
	n, err := strconv.ParseUint(field, 10, 32)
	if err != nil || n == 0 {
		return &errors.FENError{Field: "fullmove number", Value: field, Err: errors.ErrMalformedFEN}
	}
	pos.MoveNumber = uint(n)
	return nil
}

func countKings(board *chess.Board, colour chess.Colour) int {
	king := chess.Piece{Kind: chess.King, Colour: colour}
	n := 0
	for i := 0; i < chess.NumSquares; i++ {
		if p, ok := board.PieceAt(chess.SquareAt(i)); ok && p == king {
			n++
		}
	}
	return n
}

// FEN returns the FEN string of the current position.
func FEN(state *GameState) string {
	return PositionFEN(&state.Position)
}

// PositionFEN converts a position to a FEN string.
func PositionFEN(pos *Position) string {
	var sb strings.Builder

	writePiecePositions(&sb, &pos.Board)
	sb.WriteByte(' ')
	sb.WriteByte(pos.ToMove.Letter())
	sb.WriteByte(' ')
	sb.WriteString(pos.Castling.String())
	sb.WriteByte(' ')
	if pos.EnPassant {
		sb.WriteString(pos.EPSquare.String())
	} else {
		sb.WriteByte('-')
	}
	sb.WriteByte(' ')
	fmt.Fprintf(&sb, "%d %d", pos.HalfmoveClock, pos.MoveNumber)

	return sb.String()
}

// writePiecePositions writes the piece placement to the builder.
func writePiecePositions(sb *strings.Builder, board *chess.Board) {
	for rank := chess.BoardSize - 1; rank >= 0; rank-- {
		emptyCount := 0
		for file := 0; file < chess.BoardSize; file++ {
			piece, ok := board.PieceAt(chess.ToSquare(file, rank))
			if !ok {
				emptyCount++
				continue
			}
			if emptyCount > 0 {
				sb.WriteByte(byte('0' + emptyCount))
				emptyCount = 0
			}
			sb.WriteByte(piece.Letter())
		}
		if emptyCount > 0 {
			sb.WriteByte(byte('0' + emptyCount))
		}
		if rank > 0 {
			sb.WriteByte('/')
		}
	}
}
