package model

// Player identifies a connected participant.
type Player struct {
	ID string
}

// ClientPlayer is the seat information sent to clients. TimeLeft is in
// tenths of a second.
type ClientPlayer struct {
	ID       string `json:"name"`
	Color    string `json:"color"`
	TimeLeft int    `json:"timeLeft"`
}

type PlayerColor string

const (
	PlayerColorWhite PlayerColor = "white"
	PlayerColorBlack PlayerColor = "black"
)
