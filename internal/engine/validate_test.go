package engine

import "testing"

func mv(from, to string) Move {
	return Move{From: MustSquare(from), To: MustSquare(to)}
}

func TestValidate_FromInitialPosition(t *testing.T) {
	pos := Initial()

	tests := []struct {
		name   string
		move   Move
		reason RejectReason // empty means the move is legal
	}{
		{"single pawn push", mv("e2", "e3"), ""},
		{"double pawn push", mv("e2", "e4"), ""},
		{"knight development", mv("g1", "f3"), ""},
		{"triple pawn push", mv("e2", "e5"), RejectBadPattern},
		{"opponent piece while white to move", mv("e7", "e5"), RejectWrongTurn},
		{"empty source square", mv("e4", "e5"), RejectEmptySquare},
		{"rook blocked by own pawn", mv("a1", "a4"), RejectBlocked},
		{"bishop blocked by own pawn", mv("c1", "g5"), RejectBlocked},
		{"queen blocked diagonally", mv("d1", "h5"), RejectBlocked},
		{"knight onto own pawn", mv("g1", "e2"), RejectOwnPiece},
		{"king two squares", mv("e1", "e3"), RejectBadPattern},
		{"rook moving diagonally", mv("a1", "b2"), RejectOwnPiece},
		{"pawn diagonal without capture", mv("e2", "f3"), RejectPawnCapture},
		{"pawn backward", mv("e2", "e1"), RejectOwnPiece},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Validate(pos, tt.move)
			if tt.reason == "" {
				if !got.Valid {
					t.Errorf("Validate(%v) rejected with %q, want valid", tt.move, got.Reason)
				}
				return
			}
			if got.Valid {
				t.Errorf("Validate(%v) valid, want rejected with %q", tt.move, tt.reason)
			} else if got.Reason != tt.reason {
				t.Errorf("Validate(%v) reason = %q, want %q", tt.move, got.Reason, tt.reason)
			}
		})
	}
}

func TestValidate_PawnRules(t *testing.T) {
	// White pawn on e2, black pieces placed to probe push and capture rules.
	pos := NewPosition(map[Square]Piece{
		MustSquare("e2"): {White, Pawn},
		MustSquare("a2"): {White, Pawn},
		MustSquare("a3"): {Black, Rook},
		MustSquare("d3"): {Black, Knight},
		MustSquare("e4"): {Black, Bishop},
	}, White)

	tests := []struct {
		name   string
		move   Move
		reason RejectReason
	}{
		{"push to empty square", mv("e2", "e3"), ""},
		{"double push blocked at target", mv("e2", "e4"), RejectBlocked},
		{"capture diagonal enemy", mv("e2", "d3"), ""},
		{"diagonal to empty square", mv("e2", "f3"), RejectPawnCapture},
		{"push onto enemy piece", mv("a2", "a3"), RejectBlocked},
		{"double push over enemy piece", mv("a2", "a4"), RejectBlocked},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Validate(pos, tt.move)
			if tt.reason == "" && !got.Valid {
				t.Errorf("Validate(%v) rejected with %q, want valid", tt.move, got.Reason)
			}
			if tt.reason != "" && got.Reason != tt.reason {
				t.Errorf("Validate(%v) reason = %q, want %q", tt.move, got.Reason, tt.reason)
			}
		})
	}
}

func TestValidate_DoublePushOffStartingRank(t *testing.T) {
	pos := NewPosition(map[Square]Piece{
		MustSquare("e3"): {White, Pawn},
	}, White)

	got := Validate(pos, mv("e3", "e5"))
	if got.Valid || got.Reason != RejectBadPattern {
		t.Errorf("Validate(e3e5) = %+v, want rejected with %q", got, RejectBadPattern)
	}
}

func TestValidate_SlidingCapture(t *testing.T) {
	pos := NewPosition(map[Square]Piece{
		MustSquare("a1"): {White, Rook},
		MustSquare("a5"): {Black, Pawn},
	}, White)

	if got := Validate(pos, mv("a1", "a5")); !got.Valid {
		t.Errorf("capture of first piece on ray rejected with %q", got.Reason)
	}
	if got := Validate(pos, mv("a1", "a7")); got.Valid || got.Reason != RejectBlocked {
		t.Errorf("move past first piece on ray = %+v, want rejected with %q", got, RejectBlocked)
	}
}

func TestValidate_Deterministic(t *testing.T) {
	pos := Initial()
	move := mv("b1", "c3")
	first := Validate(pos, move)
	for i := 0; i < 3; i++ {
		if Validate(pos, move) != first {
			t.Fatal("Validate is not deterministic for a fixed (position, move) pair")
		}
	}
}

func TestApply_E2E4(t *testing.T) {
	pos := Initial()
	move := mv("e2", "e4")
	if got := Validate(pos, move); !got.Valid {
		t.Fatalf("Validate(e2e4) rejected with %q", got.Reason)
	}

	next := Apply(pos, move)

	if p, ok := next.At(MustSquare("e4")); !ok || p != (Piece{White, Pawn}) {
		t.Errorf("At(e4) = %v (%v), want white pawn", p, ok)
	}
	if _, ok := next.At(MustSquare("e2")); ok {
		t.Error("At(e2) occupied after the move, want empty")
	}
	if next.ActiveColor() != Black {
		t.Errorf("ActiveColor() = %v, want black", next.ActiveColor())
	}

	// The prior position is untouched.
	if pos != Initial() {
		t.Error("Apply mutated its input position")
	}
}

func TestApply_CaptureRemovesPiece(t *testing.T) {
	pos := NewPosition(map[Square]Piece{
		MustSquare("d4"): {White, Queen},
		MustSquare("d7"): {Black, Rook},
	}, White)

	next := Apply(pos, mv("d4", "d7"))

	if p, ok := next.At(MustSquare("d7")); !ok || p != (Piece{White, Queen}) {
		t.Errorf("At(d7) = %v (%v), want white queen", p, ok)
	}
	count := 0
	for sq := Square(0); sq < 64; sq++ {
		if _, ok := next.At(sq); ok {
			count++
		}
	}
	if count != 1 {
		t.Errorf("piece count after capture = %d, want 1", count)
	}
}
