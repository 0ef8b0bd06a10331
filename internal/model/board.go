package model

import "github.com/rpalumbo/chesskit-backend/internal/engine"

// PieceView is the client-facing shape of one piece.
type PieceView struct {
	Type  string `json:"type"`
	Color string `json:"color"`
}

// boardGrid renders a position as the 8x8 grid the client draws: row 0 is
// rank 8 (black's back rank at the top), nil entries are empty squares.
func boardGrid(pos engine.Position) [][]*PieceView {
	grid := make([][]*PieceView, 8)
	for row := 0; row < 8; row++ {
		grid[row] = make([]*PieceView, 8)
		for file := 0; file < 8; file++ {
			sq := engine.NewSquare(file, 7-row)
			if piece, ok := pos.At(sq); ok {
				grid[row][file] = &PieceView{
					Type:  piece.Kind.String(),
					Color: piece.Color.String(),
				}
			}
		}
	}
	return grid
}
