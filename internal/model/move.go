package model

import (
	"fmt"

	"github.com/rpalumbo/chesskit-backend/internal/engine"
)

// MoveRequest is a client's proposed move in algebraic square notation.
type MoveRequest struct {
	From string `json:"from"`
	To   string `json:"to"`
}

// Parse converts the request to an engine move, rejecting malformed squares.
func (r MoveRequest) Parse() (engine.Move, error) {
	from, err := engine.ParseSquare(r.From)
	if err != nil {
		return engine.Move{}, fmt.Errorf("from: %w", err)
	}
	to, err := engine.ParseSquare(r.To)
	if err != nil {
		return engine.Move{}, fmt.Errorf("to: %w", err)
	}
	return engine.Move{From: from, To: to}, nil
}

// JumpRequest asks to move the history cursor to a given ply count.
type JumpRequest struct {
	Cursor int `json:"cursor"`
}

// MoveView is one log entry as shown to clients.
type MoveView struct {
	From     string `json:"from"`
	To       string `json:"to"`
	Notation string `json:"notation"`
}

// moveNotation builds the short display notation for a move about to be
// played on pos: piece letter, capture marker, destination square, with the
// source file prefixed for pawn captures.
func moveNotation(pos engine.Position, mv engine.Move) string {
	piece, ok := pos.At(mv.From)
	if !ok {
		return mv.String()
	}
	capture := ""
	if _, occupied := pos.At(mv.To); occupied {
		capture = "x"
	}
	pawnFile := ""
	if piece.Kind == engine.Pawn && capture != "" {
		pawnFile = string(byte('a' + mv.From.File()))
	}
	return piece.Kind.Notation() + pawnFile + capture + mv.To.String()
}
