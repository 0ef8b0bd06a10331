package engine

// Apply produces the successor position for an already-validated move: any
// piece on the destination is removed, the source piece relocates, the source
// square is cleared, and the active color flips. The input position is left
// untouched, so callers may retain prior positions for history navigation.
//
// Apply does not re-validate. Calling it with a move that did not pass
// Validate for this exact position is a programming error; an off-board
// square panics rather than yielding a corrupt position.
func Apply(pos Position, mv Move) Position {
	next := pos
	next.board[mv.To] = next.board[mv.From]
	next.board[mv.From] = Piece{}
	next.active = pos.active.Other()
	return next
}
