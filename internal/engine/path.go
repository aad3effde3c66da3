package engine

import "github.com/lgbarn/chesscore-go/internal/chess"

// canPieceMove checks the movement geometry of a knight, bishop, rook,
// queen or plain king step. Pawns and castling are handled separately.
func canPieceMove(board *chess.Board, kind chess.Kind, from, to chess.Square) bool {
	fileDiff := abs(to.File - from.File)
	rankDiff := abs(to.Rank - from.Rank)
	if fileDiff == 0 && rankDiff == 0 {
		return false
	}

	switch kind {
	case chess.Knight:
		return (fileDiff == 1 && rankDiff == 2) || (fileDiff == 2 && rankDiff == 1)

	case chess.Bishop:
		if fileDiff != rankDiff {
			return false
		}
		return isPathClear(board, from, to)

	case chess.Rook:
		if fileDiff != 0 && rankDiff != 0 {
			return false
		}
		return isPathClear(board, from, to)

	case chess.Queen:
		if fileDiff == rankDiff || fileDiff == 0 || rankDiff == 0 {
			return isPathClear(board, from, to)
		}
		return false

	case chess.King:
		return fileDiff <= 1 && rankDiff <= 1
	}

	return false
}

// isPathClear checks that every square strictly between from and to is
// empty. The squares must share a rank, file or diagonal.
func isPathClear(board *chess.Board, from, to chess.Square) bool {
	fileDir := sign(to.File - from.File)
	rankDir := sign(to.Rank - from.Rank)

	cur := chess.Square{File: from.File + fileDir, Rank: from.Rank + rankDir}
	for cur != to {
		if !cur.Valid() {
			return false
		}
		if board.Occupied(cur) {
			return false
		}
		cur = chess.Square{File: cur.File + fileDir, Rank: cur.Rank + rankDir}
	}

	return true
}

// abs returns the absolute value of x.
func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}

// sign returns the sign of x: -1, 0, or 1.
func sign(x int) int {
	if x > 0 {
		return 1
	}
	if x < 0 {
		return -1
	}
	return 0
}
