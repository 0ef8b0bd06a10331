package engine

// LegalMoves enumerates every legal destination for the piece on sq. The
// result is empty when sq is unoccupied or holds a piece of the side not to
// move. Each candidate square passes through the same checks Validate uses,
// so every returned destination validates as a legal move and every other
// destination does not. Output order follows candidate generation order and
// is stable for identical inputs.
func LegalMoves(pos Position, sq Square) []Square {
	piece, ok := pos.At(sq)
	if !ok || piece.Color != pos.active {
		return nil
	}
	var out []Square
	for _, to := range candidateSquares(piece, sq) {
		if Validate(pos, Move{From: sq, To: to}).Valid {
			out = append(out, to)
		}
	}
	return out
}
