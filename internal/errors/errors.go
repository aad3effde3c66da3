// Package errors provides sentinel errors and error types for the chess rules engine.
// It defines the failure taxonomy shared by every layer and structured error types
// that preserve context while allowing inspection with errors.Is() and errors.As().
package errors

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors for the engine's failure classes.
// Use these with errors.Is() to check for specific error types.
var (
	// ErrMalformedInput indicates square or move text with the wrong shape.
	ErrMalformedInput = errors.New("malformed input")

	// ErrMalformedFEN indicates a position string that cannot be parsed.
	ErrMalformedFEN = errors.New("malformed FEN")

	// ErrIllegalMove indicates a move that violates chess rules.
	ErrIllegalMove = errors.New("illegal move")

	// ErrInternalInconsistency indicates a corrupted state, such as a side with no king.
	// It is a programming error, never a user error.
	ErrInternalInconsistency = errors.New("internal inconsistency")

	// ErrInvalidConfig indicates invalid configuration values.
	ErrInvalidConfig = errors.New("invalid configuration")
)

// MoveError wraps errors with move context: the ply at which the move was
// attempted and the move text. It supports unwrapping via errors.Is() and errors.As().
type MoveError struct {
	Err      error  // The underlying error
	Ply      int    // 1-based ply the move would have occupied (0 if unknown)
	MoveText string // The move text that caused the error (if applicable)
	Reason   string // Short human readable reason (optional)
}

// Error returns a formatted error message including all available context.
func (e *MoveError) Error() string {
	var parts []string

	if e.Ply > 0 {
		parts = append(parts, fmt.Sprintf("ply %d", e.Ply))
	}
	if e.MoveText != "" {
		parts = append(parts, fmt.Sprintf("move %q", e.MoveText))
	}
	if e.Reason != "" {
		parts = append(parts, e.Reason)
	}

	context := strings.Join(parts, ", ")
	switch {
	case e.Err != nil && context != "":
		return fmt.Sprintf("%s: %v", context, e.Err)
	case e.Err != nil:
		return e.Err.Error()
	case context != "":
		return context
	}
	return "move error"
}

// Unwrap returns the underlying error, enabling errors.Is() and errors.As()
// to work through the MoveError wrapper.
func (e *MoveError) Unwrap() error {
	return e.Err
}

// FENError reports which FEN field failed to parse.
type FENError struct {
	Field string // e.g. "placement", "turn", "castling"
	Value string // Offending text
	Err   error  // Usually ErrMalformedFEN
}

// Error returns the field, the offending value and the underlying error.
func (e *FENError) Error() string {
	var b strings.Builder
	if e.Field != "" {
		b.WriteString(e.Field)
	}
	if e.Value != "" {
		if b.Len() > 0 {
			b.WriteByte(' ')
		}
		fmt.Fprintf(&b, "%q", e.Value)
	}
	if e.Err == nil {
		if b.Len() == 0 {
			return "FEN error"
		}
		return b.String()
	}
	if b.Len() == 0 {
		return e.Err.Error()
	}
	return fmt.Sprintf("%s: %v", b.String(), e.Err)
}

// Unwrap returns the underlying error.
func (e *FENError) Unwrap() error {
	return e.Err
}

// Wrap adds context to an error while preserving the underlying error
// for inspection with errors.Is() and errors.As().
func Wrap(err error, context string) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s: %w", context, err)
}

// Wrapf adds formatted context to an error while preserving the underlying
// error for inspection with errors.Is() and errors.As().
func Wrapf(err error, format string, args ...interface{}) error {
	if err == nil {
		return nil
	}
	return Wrap(err, fmt.Sprintf(format, args...))
}

// IsRejection reports whether err is an expected, recoverable rejection of
// caller input (malformed text, malformed FEN or an illegal move).
func IsRejection(err error) bool {
	return errors.Is(err, ErrMalformedInput) ||
		errors.Is(err, ErrMalformedFEN) ||
		errors.Is(err, ErrIllegalMove)
}
