package model

import (
	"errors"
	"testing"

	"github.com/rpalumbo/chesskit-backend/internal/engine"
)

func mv(from, to string) engine.Move {
	return engine.Move{From: engine.MustSquare(from), To: engine.MustSquare(to)}
}

func TestHistory_StartsAtInitialPosition(t *testing.T) {
	h := NewHistory()

	if h.Current() != engine.Initial() {
		t.Error("new history does not start at the initial position")
	}
	if h.Cursor() != 0 || h.Len() != 0 {
		t.Errorf("cursor = %d, len = %d, want 0, 0", h.Cursor(), h.Len())
	}
}

func TestHistory_PushAdvances(t *testing.T) {
	h := NewHistory()
	h.Push(mv("e2", "e4"), "e4")
	h.Push(mv("e7", "e5"), "e5")

	if h.Cursor() != 2 || h.Len() != 2 {
		t.Errorf("cursor = %d, len = %d, want 2, 2", h.Cursor(), h.Len())
	}

	want := engine.Apply(engine.Apply(engine.Initial(), mv("e2", "e4")), mv("e7", "e5"))
	if h.Current() != want {
		t.Error("Current() does not equal replay of the pushed moves")
	}

	last, ok := h.Last()
	if !ok || last.Notation != "e5" {
		t.Errorf("Last() = %+v (%v), want e7e5 entry", last, ok)
	}
}

func TestHistory_UndoRedo(t *testing.T) {
	h := NewHistory()
	h.Push(mv("e2", "e4"), "e4")
	h.Push(mv("e7", "e5"), "e5")

	if !h.Undo() {
		t.Fatal("Undo() = false with two moves on the log")
	}
	if h.Cursor() != 1 {
		t.Errorf("cursor after undo = %d, want 1", h.Cursor())
	}
	if h.Current() != engine.Apply(engine.Initial(), mv("e2", "e4")) {
		t.Error("position after undo is not the replay of the first move")
	}
	if h.Len() != 2 {
		t.Errorf("undo shrank the log: len = %d, want 2", h.Len())
	}

	if !h.Redo() {
		t.Fatal("Redo() = false with a rewound tail")
	}
	if h.Cursor() != 2 {
		t.Errorf("cursor after redo = %d, want 2", h.Cursor())
	}

	if h.Redo() {
		t.Error("Redo() = true at the log head")
	}
}

func TestHistory_UndoAtStart(t *testing.T) {
	h := NewHistory()
	if h.Undo() {
		t.Error("Undo() = true on an empty history")
	}
}

func TestHistory_PushTruncatesRedoTail(t *testing.T) {
	h := NewHistory()
	h.Push(mv("e2", "e4"), "e4")
	h.Push(mv("e7", "e5"), "e5")
	h.Push(mv("g1", "f3"), "Nf3")

	if err := h.Seek(1); err != nil {
		t.Fatalf("Seek(1) error: %v", err)
	}
	h.Push(mv("d7", "d5"), "d5")

	if h.Len() != 2 || h.Cursor() != 2 {
		t.Errorf("len = %d, cursor = %d after push while rewound, want 2, 2", h.Len(), h.Cursor())
	}
	entries := h.Entries()
	if entries[1].Move != mv("d7", "d5") {
		t.Errorf("entries[1].Move = %v, want d7d5", entries[1].Move)
	}
}

func TestHistory_SeekBounds(t *testing.T) {
	h := NewHistory()
	h.Push(mv("e2", "e4"), "e4")

	if err := h.Seek(0); err != nil {
		t.Errorf("Seek(0) error: %v", err)
	}
	if h.Current() != engine.Initial() {
		t.Error("Seek(0) does not reach the initial position")
	}

	for _, n := range []int{-1, 2, 100} {
		if err := h.Seek(n); !errors.Is(err, ErrBadCursor) {
			t.Errorf("Seek(%d) error = %v, want ErrBadCursor", n, err)
		}
	}
}
