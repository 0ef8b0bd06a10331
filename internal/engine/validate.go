package engine

// Validate judges a single proposed move against a position. Checks run in a
// fixed order and the first failure determines the reported reason:
//
//  1. source square occupied
//  2. occupant belongs to the side to move
//  3. destination not occupied by a friendly piece
//  4. destination among the piece's candidate squares
//  5. for sliding pieces, no piece strictly between source and destination
//  6. pawn push/capture asymmetry
//
// Validate is deterministic and has no side effects.
func Validate(pos Position, mv Move) MoveOutcome {
	piece, ok := pos.At(mv.From)
	if !ok {
		return rejected(RejectEmptySquare)
	}
	if piece.Color != pos.active {
		return rejected(RejectWrongTurn)
	}
	if target, ok := pos.At(mv.To); ok && target.Color == piece.Color {
		return rejected(RejectOwnPiece)
	}
	if !containsSquare(candidateSquares(piece, mv.From), mv.To) {
		return rejected(RejectBadPattern)
	}
	if isSliding(piece.Kind) && !pathClear(pos, mv.From, mv.To) {
		return rejected(RejectBlocked)
	}
	if piece.Kind == Pawn {
		if reason, bad := pawnViolation(pos, piece.Color, mv); bad {
			return rejected(reason)
		}
	}
	return valid()
}

// pawnViolation applies the occupancy rules the pawn pattern alone cannot
// express: diagonals must capture an opposing piece, pushes must land on an
// empty square, and the double push also needs an empty intervening square.
func pawnViolation(pos Position, c Color, mv Move) (RejectReason, bool) {
	if mv.From.File() != mv.To.File() {
		// Diagonal candidate. A friendly occupant was already rejected by the
		// self-capture check, so only the empty destination remains.
		if !pos.occupied(mv.To) {
			return RejectPawnCapture, true
		}
		return "", false
	}
	if pos.occupied(mv.To) {
		return RejectBlocked, true
	}
	if mv.To.Rank()-mv.From.Rank() == 2*pawnForward(c) {
		mid := NewSquare(mv.From.File(), mv.From.Rank()+pawnForward(c))
		if pos.occupied(mid) {
			return RejectBlocked, true
		}
	}
	return "", false
}

// pathClear reports whether every square strictly between from and to along
// the line of travel is empty. Callers guarantee the two squares share a rank,
// file, or diagonal.
func pathClear(pos Position, from, to Square) bool {
	df := sign(to.File() - from.File())
	dr := sign(to.Rank() - from.Rank())

	file := from.File() + df
	rank := from.Rank() + dr
	for file != to.File() || rank != to.Rank() {
		if pos.occupied(NewSquare(file, rank)) {
			return false
		}
		file += df
		rank += dr
	}
	return true
}

func containsSquare(squares []Square, sq Square) bool {
	for _, s := range squares {
		if s == sq {
			return true
		}
	}
	return false
}

func sign(x int) int {
	switch {
	case x > 0:
		return 1
	case x < 0:
		return -1
	}
	return 0
}
