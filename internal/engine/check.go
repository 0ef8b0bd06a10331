package engine

// InCheck reports whether c's king is attacked in pos. It is not part of the
// Validate pipeline; callers that want king-safety compose it on top of the
// core checks. A position with no king of the given color is simply not in
// check.
func InCheck(pos Position, c Color) bool {
	for sq := Square(0); sq < 64; sq++ {
		if pos.board[sq] == (Piece{Color: c, Kind: King}) {
			return squareAttacked(pos, c.Other(), sq)
		}
	}
	return false
}

// squareAttacked reports whether any piece of the attacking color attacks sq.
func squareAttacked(pos Position, by Color, sq Square) bool {
	for _, d := range rookDirs {
		if p, ok := firstAlongRay(pos, sq, d); ok && p.Color == by && (p.Kind == Rook || p.Kind == Queen) {
			return true
		}
	}
	for _, d := range bishopDirs {
		if p, ok := firstAlongRay(pos, sq, d); ok && p.Color == by && (p.Kind == Bishop || p.Kind == Queen) {
			return true
		}
	}
	for _, to := range offsetSquares(sq, knightJumps) {
		if pos.board[to] == (Piece{Color: by, Kind: Knight}) {
			return true
		}
	}
	for _, to := range offsetSquares(sq, kingSteps) {
		if pos.board[to] == (Piece{Color: by, Kind: King}) {
			return true
		}
	}
	// A pawn of the attacking color attacks sq from one rank behind its own
	// direction of travel.
	behind := -pawnForward(by)
	for _, df := range []int{-1, 1} {
		file := sq.File() + df
		rank := sq.Rank() + behind
		if file >= 0 && file < 8 && rank >= 0 && rank < 8 {
			if pos.board[NewSquare(file, rank)] == (Piece{Color: by, Kind: Pawn}) {
				return true
			}
		}
	}
	return false
}

// firstAlongRay returns the first piece encountered scanning outward from sq.
func firstAlongRay(pos Position, sq Square, d direction) (Piece, bool) {
	file := sq.File() + d.df
	rank := sq.Rank() + d.dr
	for file >= 0 && file < 8 && rank >= 0 && rank < 8 {
		if p, ok := pos.At(NewSquare(file, rank)); ok {
			return p, true
		}
		file += d.df
		rank += d.dr
	}
	return Piece{}, false
}
