package engine

import "github.com/lgbarn/chesscore-go/internal/chess"

// Perft counts the leaf nodes of the legal move tree to the given depth.
// The state is restored before returning.
func Perft(state *GameState, depth int) (uint64, error) {
	if depth <= 0 {
		return 1, nil
	}
	moves, err := LegalMoves(state)
	if err != nil {
		return 0, err
	}
	if depth == 1 {
		return uint64(len(moves)), nil
	}

	var nodes uint64
	for _, m := range moves {
		n, err := perftChild(state, m, depth-1)
		if err != nil {
			return 0, err
		}
		nodes += n
	}
	return nodes, nil
}

// Divide returns the perft count below each legal root move, keyed by
// move text.
func Divide(state *GameState, depth int) (map[string]uint64, error) {
	moves, err := LegalMoves(state)
	if err != nil {
		return nil, err
	}
	out := make(map[string]uint64, len(moves))
	if depth <= 0 {
		return out, nil
	}
	for _, m := range moves {
		n, err := perftChild(state, m, depth-1)
		if err != nil {
			return nil, err
		}
		out[m.String()] = n
	}
	return out, nil
}

// perftChild applies m, counts the subtree and restores the state.
func perftChild(state *GameState, m chess.Move, depth int) (uint64, error) {
	saved := state.SaveState()
	defer state.RestoreState(saved)
	if err := Apply(state, m); err != nil {
		return 0, err
	}
	return Perft(state, depth)
}
