package engine

import (
	"github.com/lgbarn/chesscore-go/internal/chess"
	"github.com/lgbarn/chesscore-go/internal/errors"
)

// UndoLast removes the most recent move. The position is rebuilt by
// reloading StartFEN and replaying the remaining history through Apply,
// so undo can never disagree with forward application. Undo with an
// empty history does nothing.
func UndoLast(state *GameState) error {
	if len(state.History) == 0 {
		return nil
	}
	return Replay(state, state.History[:len(state.History)-1])
}

// Replay rebuilds the game from StartFEN followed by moves. The moves are
// trusted to have been legal when first committed. On error the state is
// unchanged.
func Replay(state *GameState, moves []chess.Move) error {
	pos, _, err := ParseFEN(state.StartFEN)
	if err != nil {
		return errors.Wrap(err, "reloading start position")
	}

	rebuilt := &GameState{
		Position: pos,
		StartFEN: state.StartFEN,
		History:  make([]chess.Move, 0, len(moves)),
		Rules:    state.Rules,
	}
	for _, m := range moves {
		if err := Apply(rebuilt, m); err != nil {
			return errors.Wrap(err, "replaying history")
		}
	}

	*state = *rebuilt
	return nil
}

// MoveHistory returns a copy of the committed moves.
func MoveHistory(state *GameState) []chess.Move {
	return append([]chess.Move(nil), state.History...)
}
