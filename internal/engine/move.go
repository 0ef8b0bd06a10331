package engine

// Move is a requested relocation from one square to another. It is a plain
// value, not validated on construction; validity is a judgment computed
// against a Position by Validate, never an intrinsic property of the Move.
type Move struct {
	From Square `json:"from"`
	To   Square `json:"to"`
}

func (m Move) String() string {
	return m.From.String() + m.To.String()
}

// RejectReason classifies why Validate refused a move. The set is closed;
// callers may switch on it or show it to a player verbatim.
type RejectReason string

const (
	RejectEmptySquare RejectReason = "no piece on source square"
	RejectWrongTurn   RejectReason = "not this piece's turn"
	RejectOwnPiece    RejectReason = "destination occupied by own piece"
	RejectBadPattern  RejectReason = "movement pattern not permitted for this piece"
	RejectBlocked     RejectReason = "path is blocked"
	RejectPawnCapture RejectReason = "pawn may only move diagonally when capturing"
)

// MoveOutcome is the result of validating a move: either valid, or rejected
// with a reason. Rejections are ordinary outcomes, not errors; the caller
// simply keeps the prior Position.
type MoveOutcome struct {
	Valid  bool         `json:"valid"`
	Reason RejectReason `json:"reason,omitempty"`
}

func valid() MoveOutcome {
	return MoveOutcome{Valid: true}
}

func rejected(reason RejectReason) MoveOutcome {
	return MoveOutcome{Reason: reason}
}
