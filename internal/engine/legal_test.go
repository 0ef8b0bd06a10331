package engine

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestLegalMoves_EmptyAndOpponentSquares(t *testing.T) {
	pos := Initial()

	if got := LegalMoves(pos, MustSquare("e4")); len(got) != 0 {
		t.Errorf("LegalMoves(empty square) = %v, want empty", got)
	}
	// Black piece while white to move.
	if got := LegalMoves(pos, MustSquare("e7")); len(got) != 0 {
		t.Errorf("LegalMoves(opponent piece) = %v, want empty", got)
	}
}

func TestLegalMoves_PawnFromStartingRank(t *testing.T) {
	pos := Initial()

	got := sorted(LegalMoves(pos, MustSquare("e2")))
	if diff := cmp.Diff(squares("e3", "e4"), got); diff != "" {
		t.Errorf("LegalMoves(e2) mismatch (-want +got):\n%s", diff)
	}

	// Blocking the two-square target leaves only the single push.
	blocked := NewPosition(map[Square]Piece{
		MustSquare("e2"): {White, Pawn},
		MustSquare("e4"): {Black, Knight},
	}, White)
	got = sorted(LegalMoves(blocked, MustSquare("e2")))
	if diff := cmp.Diff(squares("e3"), got); diff != "" {
		t.Errorf("LegalMoves(e2, e4 blocked) mismatch (-want +got):\n%s", diff)
	}
}

func TestLegalMoves_RayTruncation(t *testing.T) {
	// Rook on d4, own pawn on d6, enemy knight on f4.
	pos := NewPosition(map[Square]Piece{
		MustSquare("d4"): {White, Rook},
		MustSquare("d6"): {White, Pawn},
		MustSquare("f4"): {Black, Knight},
	}, White)

	got := sorted(LegalMoves(pos, MustSquare("d4")))
	want := squares(
		"a4", "b4", "c4", // left to the edge
		"e4", "f4", // right, capture included
		"d5", // up, stops short of own pawn
		"d1", "d2", "d3", // down to the edge
	)
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("LegalMoves(d4) mismatch (-want +got):\n%s", diff)
	}
}

func TestLegalMoves_BishopNeverPassesFirstPiece(t *testing.T) {
	pos := NewPosition(map[Square]Piece{
		MustSquare("c1"): {White, Bishop},
		MustSquare("e3"): {Black, Rook},
	}, White)

	got := LegalMoves(pos, MustSquare("c1"))
	for _, sq := range got {
		if sq == MustSquare("f4") || sq == MustSquare("g5") || sq == MustSquare("h6") {
			t.Errorf("LegalMoves(c1) includes %v beyond the first piece on the ray", sq)
		}
	}
	if !containsSquare(got, MustSquare("e3")) {
		t.Error("LegalMoves(c1) excludes the capturable first piece on the ray")
	}
}

func TestLegalMoves_KnightAfterOpening(t *testing.T) {
	// 1. e4 e5: the g1 knight may jump to f3, h3, and e2.
	pos := Apply(Apply(Initial(), mv("e2", "e4")), mv("e7", "e5"))

	got := sorted(LegalMoves(pos, MustSquare("g1")))
	if diff := cmp.Diff(squares("e2", "f3", "h3"), got); diff != "" {
		t.Errorf("LegalMoves(g1) mismatch (-want +got):\n%s", diff)
	}
}

// Every move LegalMoves returns must validate, and every destination it
// omits must be rejected.
func TestLegalMoves_AgreesWithValidate(t *testing.T) {
	positions := map[string]Position{
		"initial": Initial(),
		"after 1. e4 e5": Apply(Apply(Initial(), mv("e2", "e4")), mv("e7", "e5")),
		"sparse middlegame": NewPosition(map[Square]Piece{
			MustSquare("e1"): {White, King},
			MustSquare("d4"): {White, Queen},
			MustSquare("g1"): {White, Knight},
			MustSquare("a2"): {White, Pawn},
			MustSquare("e8"): {Black, King},
			MustSquare("d7"): {Black, Rook},
			MustSquare("f6"): {Black, Pawn},
		}, White),
	}

	for name, pos := range positions {
		t.Run(name, func(t *testing.T) {
			for from := Square(0); from < 64; from++ {
				legal := LegalMoves(pos, from)
				set := make(map[Square]bool, len(legal))
				for _, to := range legal {
					set[to] = true
				}
				for to := Square(0); to < 64; to++ {
					outcome := Validate(pos, Move{From: from, To: to})
					if set[to] && !outcome.Valid {
						t.Errorf("%v-%v in LegalMoves but rejected: %q", from, to, outcome.Reason)
					}
					if !set[to] && outcome.Valid {
						t.Errorf("%v-%v validates but missing from LegalMoves", from, to)
					}
				}
			}
		})
	}
}

func TestLegalMoves_Stable(t *testing.T) {
	pos := Initial()
	first := LegalMoves(pos, MustSquare("b1"))
	for i := 0; i < 5; i++ {
		if diff := cmp.Diff(first, LegalMoves(pos, MustSquare("b1"))); diff != "" {
			t.Fatalf("LegalMoves order changed between calls:\n%s", diff)
		}
	}
}
