package model

import "github.com/rpalumbo/chesskit-backend/internal/engine"

// HistoryEntry is one accepted move plus its display notation.
type HistoryEntry struct {
	Move     engine.Move
	Notation string
}

// History is an ordered log of accepted moves plus a cursor. The engine owns
// no history: any position, current or past, is reconstructed by replaying a
// log prefix from the initial position through engine.Apply. The cursor marks
// how many moves of the log are applied; undo, redo, and jump only move the
// cursor, and a new move truncates the redo tail.
//
// History is not safe for concurrent use; Game serializes access to it.
type History struct {
	entries []HistoryEntry
	cursor  int
	current engine.Position // cached replay of entries[:cursor]
}

func NewHistory() *History {
	return &History{current: engine.Initial()}
}

// Current returns the position at the cursor.
func (h *History) Current() engine.Position { return h.current }

// Cursor returns how many moves are applied to reach Current.
func (h *History) Cursor() int { return h.cursor }

// Len returns the full log length, including any rewound tail.
func (h *History) Len() int { return len(h.entries) }

// Entries returns a copy of the full log.
func (h *History) Entries() []HistoryEntry {
	return append([]HistoryEntry(nil), h.entries...)
}

// Last returns the entry just before the cursor, if any.
func (h *History) Last() (HistoryEntry, bool) {
	if h.cursor == 0 {
		return HistoryEntry{}, false
	}
	return h.entries[h.cursor-1], true
}

// Push records a move already accepted by the validator for Current. Pushing
// while rewound discards the tail beyond the cursor.
func (h *History) Push(mv engine.Move, notation string) {
	h.entries = append(h.entries[:h.cursor], HistoryEntry{Move: mv, Notation: notation})
	h.cursor = len(h.entries)
	h.current = engine.Apply(h.current, mv)
}

// Seek jumps to the position after the first n moves of the log.
func (h *History) Seek(n int) error {
	if n < 0 || n > len(h.entries) {
		return ErrBadCursor
	}
	pos := engine.Initial()
	for _, e := range h.entries[:n] {
		pos = engine.Apply(pos, e.Move)
	}
	h.cursor = n
	h.current = pos
	return nil
}

// Undo rewinds one move. It reports whether there was a move to rewind.
func (h *History) Undo() bool {
	if h.cursor == 0 {
		return false
	}
	return h.Seek(h.cursor-1) == nil
}

// Redo re-applies the next rewound move, if any.
func (h *History) Redo() bool {
	if h.cursor == len(h.entries) {
		return false
	}
	return h.Seek(h.cursor+1) == nil
}
