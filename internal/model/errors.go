package model

import (
	"errors"
	"fmt"

	"github.com/rpalumbo/chesskit-backend/internal/engine"
)

// Sentinel errors for session-level failures. Use errors.Is to test for them.
var (
	ErrGameFull    = errors.New("game is full")
	ErrNotAPlayer  = errors.New("player not in game")
	ErrNotYourTurn = errors.New("not your turn")
	ErrGameOver    = errors.New("game already resolved")
	ErrBadCursor   = errors.New("history cursor out of range")
)

// IllegalMoveError carries the engine's rejection reason for a move attempt.
// It is an expected outcome, not a fault: the session keeps its position and
// the client is told why the move was refused.
type IllegalMoveError struct {
	Move   engine.Move
	Reason engine.RejectReason
}

func (e *IllegalMoveError) Error() string {
	return fmt.Sprintf("illegal move %s: %s", e.Move, e.Reason)
}
