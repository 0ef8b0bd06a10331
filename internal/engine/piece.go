package engine

import "fmt"

// Color is the side a piece belongs to. Exactly two values exist and the turn
// alternates strictly between them.
type Color uint8

const (
	White Color = iota
	Black
)

// Other returns the opposing color.
func (c Color) Other() Color {
	if c == White {
		return Black
	}
	return White
}

func (c Color) String() string {
	if c == White {
		return "white"
	}
	return "black"
}

// MarshalText encodes the color as "white" or "black".
func (c Color) MarshalText() ([]byte, error) {
	return []byte(c.String()), nil
}

// UnmarshalText decodes "white" or "black".
func (c *Color) UnmarshalText(text []byte) error {
	switch string(text) {
	case "white":
		*c = White
	case "black":
		*c = Black
	default:
		return fmt.Errorf("invalid color %q", text)
	}
	return nil
}

// PieceKind enumerates the six piece types. The zero value is reserved so
// that the zero Piece means an empty square.
type PieceKind uint8

const (
	Pawn PieceKind = iota + 1
	Knight
	Bishop
	Rook
	Queen
	King
)

func (k PieceKind) String() string {
	switch k {
	case Pawn:
		return "pawn"
	case Knight:
		return "knight"
	case Bishop:
		return "bishop"
	case Rook:
		return "rook"
	case Queen:
		return "queen"
	case King:
		return "king"
	}
	return "none"
}

// Notation returns the piece letter used in move notation. Pawns have none.
func (k PieceKind) Notation() string {
	switch k {
	case Knight:
		return "N"
	case Bishop:
		return "B"
	case Rook:
		return "R"
	case Queen:
		return "Q"
	case King:
		return "K"
	}
	return ""
}

// Piece is a (color, kind) pair. The zero Piece is no piece at all.
type Piece struct {
	Color Color
	Kind  PieceKind
}

// IsZero reports whether p represents an empty square.
func (p Piece) IsZero() bool { return p.Kind == 0 }

func (p Piece) String() string {
	if p.IsZero() {
		return "empty"
	}
	return p.Color.String() + " " + p.Kind.String()
}
