package engine

// direction is a (file, rank) step on the board grid.
type direction struct {
	df, dr int
}

var (
	rookDirs    = []direction{{1, 0}, {-1, 0}, {0, 1}, {0, -1}}
	bishopDirs  = []direction{{1, 1}, {1, -1}, {-1, 1}, {-1, -1}}
	queenDirs   = []direction{{1, 0}, {-1, 0}, {0, 1}, {0, -1}, {1, 1}, {1, -1}, {-1, 1}, {-1, -1}}
	kingSteps   = []direction{{1, 0}, {-1, 0}, {0, 1}, {0, -1}, {1, 1}, {1, -1}, {-1, 1}, {-1, -1}}
	knightJumps = []direction{{2, 1}, {2, -1}, {-2, 1}, {-2, -1}, {1, 2}, {1, -2}, {-1, 2}, {-1, -2}}
)

// pawnStartRank is the zero-based rank a pawn of the given color starts on.
func pawnStartRank(c Color) int {
	if c == White {
		return 1
	}
	return 6
}

// pawnForward is the rank step a pawn of the given color advances by.
func pawnForward(c Color) int {
	if c == White {
		return 1
	}
	return -1
}

// candidateSquares returns the squares reachable by the piece's geometric
// pattern alone, ignoring board contents. Sliding rays run to the board edge;
// truncation at the first occupied square is the validator's job. Pawn
// diagonals are capture-only candidates, and the double step is a candidate
// only from the color's starting rank.
func candidateSquares(piece Piece, from Square) []Square {
	switch piece.Kind {
	case Pawn:
		return pawnCandidates(piece.Color, from)
	case Knight:
		return offsetSquares(from, knightJumps)
	case Bishop:
		return raySquares(from, bishopDirs)
	case Rook:
		return raySquares(from, rookDirs)
	case Queen:
		return raySquares(from, queenDirs)
	case King:
		return offsetSquares(from, kingSteps)
	}
	return nil
}

// offsetSquares applies a fixed offset set, keeping only on-board squares.
func offsetSquares(from Square, steps []direction) []Square {
	out := make([]Square, 0, len(steps))
	for _, d := range steps {
		file := from.File() + d.df
		rank := from.Rank() + d.dr
		if file >= 0 && file < 8 && rank >= 0 && rank < 8 {
			out = append(out, NewSquare(file, rank))
		}
	}
	return out
}

// raySquares extends outward along each direction until the board edge.
func raySquares(from Square, dirs []direction) []Square {
	var out []Square
	for _, d := range dirs {
		file := from.File() + d.df
		rank := from.Rank() + d.dr
		for file >= 0 && file < 8 && rank >= 0 && rank < 8 {
			out = append(out, NewSquare(file, rank))
			file += d.df
			rank += d.dr
		}
	}
	return out
}

func pawnCandidates(c Color, from Square) []Square {
	var out []Square
	dir := pawnForward(c)
	file, rank := from.File(), from.Rank()

	fwd := rank + dir
	if fwd >= 0 && fwd < 8 {
		out = append(out, NewSquare(file, fwd))
		if rank == pawnStartRank(c) {
			out = append(out, NewSquare(file, rank+2*dir))
		}
		// Capture-only diagonal candidates.
		if file > 0 {
			out = append(out, NewSquare(file-1, fwd))
		}
		if file < 7 {
			out = append(out, NewSquare(file+1, fwd))
		}
	}
	return out
}

// isSliding reports whether the kind moves along rays that can be obstructed.
func isSliding(k PieceKind) bool {
	return k == Bishop || k == Rook || k == Queen
}
