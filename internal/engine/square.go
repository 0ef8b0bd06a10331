// Package engine implements the chess rules core: board positions, per-piece
// movement patterns, move validation, legal-move enumeration, and position
// transitions. Every operation is a pure function over immutable values; the
// package holds no state and is safe for concurrent use.
package engine

import (
	"errors"
	"fmt"
)

// ErrBadSquare indicates a square string that is not valid algebraic notation.
var ErrBadSquare = errors.New("invalid square")

// Square identifies one of the 64 board squares by index,
// a1 = 0, b1 = 1, ..., h8 = 63.
type Square int

// NewSquare builds a Square from zero-based file (0 = a) and rank (0 = 1).
func NewSquare(file, rank int) Square {
	return Square(rank*8 + file)
}

// File returns the zero-based file, 0 for the a-file.
func (s Square) File() int { return int(s) % 8 }

// Rank returns the zero-based rank, 0 for rank 1.
func (s Square) Rank() int { return int(s) / 8 }

// Valid reports whether s lies on the board.
func (s Square) Valid() bool { return s >= 0 && s < 64 }

// ParseSquare converts algebraic notation such as "e4" to a Square.
func ParseSquare(str string) (Square, error) {
	if len(str) != 2 {
		return 0, fmt.Errorf("%w: %q", ErrBadSquare, str)
	}
	file := int(str[0] - 'a')
	rank := int(str[1] - '1')
	if file < 0 || file > 7 || rank < 0 || rank > 7 {
		return 0, fmt.Errorf("%w: %q", ErrBadSquare, str)
	}
	return NewSquare(file, rank), nil
}

// MustSquare is ParseSquare for literals known to be well formed.
// It panics on malformed input.
func MustSquare(str string) Square {
	sq, err := ParseSquare(str)
	if err != nil {
		panic(err)
	}
	return sq
}

// String returns the algebraic notation for the square, e.g. "e4".
func (s Square) String() string {
	return fmt.Sprintf("%c%d", 'a'+s.File(), s.Rank()+1)
}

// MarshalText encodes the square in algebraic notation. Algebraic strings are
// the only square representation that crosses the package boundary.
func (s Square) MarshalText() ([]byte, error) {
	if !s.Valid() {
		return nil, fmt.Errorf("%w: index %d", ErrBadSquare, int(s))
	}
	return []byte(s.String()), nil
}

// UnmarshalText decodes a square from algebraic notation.
func (s *Square) UnmarshalText(text []byte) error {
	sq, err := ParseSquare(string(text))
	if err != nil {
		return err
	}
	*s = sq
	return nil
}
