package engine

import (
	"encoding/json"
	"errors"
	"testing"
)

func TestParseSquare(t *testing.T) {
	tests := []struct {
		in   string
		want Square
	}{
		{"a1", 0},
		{"b1", 1},
		{"h1", 7},
		{"a2", 8},
		{"e4", 28},
		{"h8", 63},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseSquare(tt.in)
			if err != nil {
				t.Fatalf("ParseSquare(%q) error: %v", tt.in, err)
			}
			if got != tt.want {
				t.Errorf("ParseSquare(%q) = %d, want %d", tt.in, got, tt.want)
			}
			if got.String() != tt.in {
				t.Errorf("Square(%d).String() = %q, want %q", got, got.String(), tt.in)
			}
		})
	}
}

func TestParseSquare_Invalid(t *testing.T) {
	for _, in := range []string{"", "e", "e44", "i4", "e9", "a0", "4e", "  "} {
		t.Run(in, func(t *testing.T) {
			if _, err := ParseSquare(in); !errors.Is(err, ErrBadSquare) {
				t.Errorf("ParseSquare(%q) error = %v, want ErrBadSquare", in, err)
			}
		})
	}
}

func TestSquareFileRank(t *testing.T) {
	sq := MustSquare("c6")
	if sq.File() != 2 {
		t.Errorf("c6.File() = %d, want 2", sq.File())
	}
	if sq.Rank() != 5 {
		t.Errorf("c6.Rank() = %d, want 5", sq.Rank())
	}
	if NewSquare(2, 5) != sq {
		t.Errorf("NewSquare(2, 5) = %v, want c6", NewSquare(2, 5))
	}
}

func TestSquareJSON(t *testing.T) {
	mv := Move{From: MustSquare("e2"), To: MustSquare("e4")}
	data, err := json.Marshal(mv)
	if err != nil {
		t.Fatalf("Marshal(%v) error: %v", mv, err)
	}
	want := `{"from":"e2","to":"e4"}`
	if string(data) != want {
		t.Errorf("Marshal(%v) = %s, want %s", mv, data, want)
	}

	var back Move
	if err := json.Unmarshal(data, &back); err != nil {
		t.Fatalf("Unmarshal(%s) error: %v", data, err)
	}
	if back != mv {
		t.Errorf("round trip = %v, want %v", back, mv)
	}
}

func TestMustSquare_Panics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("MustSquare(\"z9\") did not panic")
		}
	}()
	MustSquare("z9")
}
