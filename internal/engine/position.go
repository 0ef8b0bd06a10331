package engine

// Position is an immutable snapshot of piece placement plus the side to move.
// Positions are plain values: every transition produces a new Position and no
// Position is ever mutated after construction, so values may be retained,
// compared with ==, and shared across goroutines freely.
type Position struct {
	board  [64]Piece
	active Color
}

// NewPosition builds a position from an explicit placement and side to move.
// Placement entries off the board are ignored. Well-formedness (one king per
// side, at most one piece per square) is the caller's concern; the engine
// tolerates malformed positions without crashing.
func NewPosition(placement map[Square]Piece, active Color) Position {
	var pos Position
	pos.active = active
	for sq, piece := range placement {
		if sq.Valid() && !piece.IsZero() {
			pos.board[sq] = piece
		}
	}
	return pos
}

// ActiveColor returns the side whose move is currently legal.
func (p Position) ActiveColor() Color { return p.active }

// At returns the piece on sq. The second result is false for an empty square.
func (p Position) At(sq Square) (Piece, bool) {
	piece := p.board[sq]
	return piece, !piece.IsZero()
}

// occupied reports whether sq holds any piece.
func (p Position) occupied(sq Square) bool {
	return !p.board[sq].IsZero()
}

// backRank is the standard piece order on ranks 1 and 8, a-file first.
var backRank = [8]PieceKind{Rook, Knight, Bishop, Queen, King, Bishop, Knight, Rook}

// Initial returns the standard starting position: white pieces on ranks 1-2,
// black on ranks 7-8, White to move. Every call yields an equal Position.
func Initial() Position {
	var pos Position
	pos.active = White
	for file := 0; file < 8; file++ {
		pos.board[NewSquare(file, 0)] = Piece{Color: White, Kind: backRank[file]}
		pos.board[NewSquare(file, 1)] = Piece{Color: White, Kind: Pawn}
		pos.board[NewSquare(file, 6)] = Piece{Color: Black, Kind: Pawn}
		pos.board[NewSquare(file, 7)] = Piece{Color: Black, Kind: backRank[file]}
	}
	return pos
}
