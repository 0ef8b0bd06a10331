package model

import (
	"encoding/json"
	"log"
	"sync"
	"time"

	"github.com/gofiber/websocket/v2"
	"github.com/rpalumbo/chesskit-backend/internal/engine"
	"github.com/rpalumbo/chesskit-backend/internal/ws"
)

const initialClockTime = 600 * time.Second

// GameConnections holds the websocket connections observing one game.
type GameConnections struct {
	connections map[string]*websocket.Conn // playerID -> connection
	mu          sync.RWMutex
}

func NewGameConnections() *GameConnections {
	return &GameConnections{connections: make(map[string]*websocket.Conn)}
}

// Game is a single live session: the accepted-move log and the position it
// reaches, the two seats, clocks, and websocket observers. All chess
// judgments are delegated to the engine; Game only owns the sequencing
// around it, so a rejected move never changes any state.
type Game struct {
	ID          string
	mu          sync.Mutex
	history     *History
	connections *GameConnections
	whiteClock  *Clock
	blackClock  *Clock
	white       ClientPlayer
	black       ClientPlayer
	result      *string
	check       bool
}

// GamePlayers is the two seats as sent to clients.
type GamePlayers struct {
	White ClientPlayer `json:"white"`
	Black ClientPlayer `json:"black"`
}

// GameState is the full client-facing snapshot of a session.
type GameState struct {
	Board       [][]*PieceView `json:"board"`
	ToMove      string         `json:"toMove"`
	MoveHistory []MoveView     `json:"moveHistory"`
	Cursor      int            `json:"cursor"`
	IsCheck     bool           `json:"isCheck"`
	LastMove    *MoveView      `json:"lastMove"`
	Result      *string        `json:"result"`
	Players     GamePlayers    `json:"players"`
}

func NewGame(id string) *Game {
	return &Game{
		ID:          id,
		history:     NewHistory(),
		connections: NewGameConnections(),
		whiteClock:  NewClock(initialClockTime),
		blackClock:  NewClock(initialClockTime),
	}
}

// AddPlayer seats a player, white first, and returns the assigned color.
func (g *Game) AddPlayer(playerID string) (PlayerColor, error) {
	g.mu.Lock()
	defer g.mu.Unlock()

	if g.white.ID == "" {
		g.white = ClientPlayer{ID: playerID, Color: "white", TimeLeft: tenths(initialClockTime)}
		return PlayerColorWhite, nil
	}
	if g.black.ID == "" {
		g.black = ClientPlayer{ID: playerID, Color: "black", TimeLeft: tenths(initialClockTime)}
		return PlayerColorBlack, nil
	}
	return "", ErrGameFull
}

func (g *Game) GetState() GameState {
	g.mu.Lock()
	defer g.mu.Unlock()

	return g.snapshotLocked()
}

func (g *Game) IsPlayerInGame(playerID string) bool {
	g.mu.Lock()
	defer g.mu.Unlock()

	return g.isPlayerInGame(playerID)
}

func (g *Game) isPlayerInGame(playerID string) bool {
	return (g.white.ID != "" && g.white.ID == playerID) ||
		(g.black.ID != "" && g.black.ID == playerID)
}

func (g *Game) CanSpectate() bool {
	g.mu.Lock()
	defer g.mu.Unlock()

	return g.canSpectate()
}

func (g *Game) canSpectate() bool {
	return g.white.ID == "" || g.black.ID == ""
}

// MakeMove validates and plays one move for the given player. Rejections
// surface as errors (IllegalMoveError for engine rejections) and leave the
// session untouched.
func (g *Game) MakeMove(playerID string, req MoveRequest) error {
	mv, err := req.Parse()
	if err != nil {
		return err
	}

	g.mu.Lock()
	defer g.mu.Unlock()

	if g.result != nil {
		return ErrGameOver
	}
	color, ok := g.playerColorLocked(playerID)
	if !ok {
		return ErrNotAPlayer
	}

	pos := g.history.Current()
	if color != pos.ActiveColor() {
		return ErrNotYourTurn
	}

	if outcome := engine.Validate(pos, mv); !outcome.Valid {
		return &IllegalMoveError{Move: mv, Reason: outcome.Reason}
	}

	notation := moveNotation(pos, mv)
	g.clockFor(pos.ActiveColor()).Stop()
	g.history.Push(mv, notation)
	next := g.history.Current()
	g.clockFor(next.ActiveColor()).Start()
	g.check = engine.InCheck(next, next.ActiveColor())
	g.syncClocksLocked()

	go g.broadcastState()
	return nil
}

// LegalMoves returns the legal destinations for the piece on the given
// square of the current position, for client-side highlighting.
func (g *Game) LegalMoves(from string) ([]string, error) {
	sq, err := engine.ParseSquare(from)
	if err != nil {
		return nil, err
	}

	g.mu.Lock()
	defer g.mu.Unlock()

	targets := engine.LegalMoves(g.history.Current(), sq)
	out := make([]string, 0, len(targets))
	for _, t := range targets {
		out = append(out, t.String())
	}
	return out, nil
}

// Undo rewinds the history cursor by one move.
func (g *Game) Undo(playerID string) error {
	g.mu.Lock()
	defer g.mu.Unlock()

	if !g.isPlayerInGame(playerID) {
		return ErrNotAPlayer
	}
	if !g.history.Undo() {
		return ErrBadCursor
	}
	g.refreshLocked()

	go g.broadcastState()
	return nil
}

// Redo re-applies the next rewound move.
func (g *Game) Redo(playerID string) error {
	g.mu.Lock()
	defer g.mu.Unlock()

	if !g.isPlayerInGame(playerID) {
		return ErrNotAPlayer
	}
	if !g.history.Redo() {
		return ErrBadCursor
	}
	g.refreshLocked()

	go g.broadcastState()
	return nil
}

// Jump moves the history cursor to the position after n moves.
func (g *Game) Jump(playerID string, n int) error {
	g.mu.Lock()
	defer g.mu.Unlock()

	if !g.isPlayerInGame(playerID) {
		return ErrNotAPlayer
	}
	if err := g.history.Seek(n); err != nil {
		return err
	}
	g.refreshLocked()

	go g.broadcastState()
	return nil
}

// Resign ends the game in favor of the opponent.
func (g *Game) Resign(playerID string) error {
	g.mu.Lock()
	defer g.mu.Unlock()

	if g.result != nil {
		return ErrGameOver
	}
	color, ok := g.playerColorLocked(playerID)
	if !ok {
		return ErrNotAPlayer
	}

	result := color.String() + " resigned"
	g.result = &result
	g.whiteClock.Stop()
	g.blackClock.Stop()

	go g.broadcastState()
	return nil
}

// Result returns the game result, if the game has resolved.
func (g *Game) Result() (string, bool) {
	g.mu.Lock()
	defer g.mu.Unlock()

	if g.result == nil {
		return "", false
	}
	return *g.result, true
}

func (g *Game) playerColorLocked(playerID string) (engine.Color, bool) {
	switch {
	case g.white.ID != "" && g.white.ID == playerID:
		return engine.White, true
	case g.black.ID != "" && g.black.ID == playerID:
		return engine.Black, true
	}
	return engine.White, false
}

func (g *Game) clockFor(c engine.Color) *Clock {
	if c == engine.White {
		return g.whiteClock
	}
	return g.blackClock
}

// refreshLocked recomputes position-derived state after cursor movement.
func (g *Game) refreshLocked() {
	pos := g.history.Current()
	g.check = engine.InCheck(pos, pos.ActiveColor())
}

func (g *Game) syncClocksLocked() {
	g.white.TimeLeft = tenths(g.whiteClock.TimeLeft())
	g.black.TimeLeft = tenths(g.blackClock.TimeLeft())
}

func tenths(d time.Duration) int {
	return int(d.Milliseconds() / 100)
}

func (g *Game) snapshotLocked() GameState {
	pos := g.history.Current()

	entries := g.history.Entries()
	moves := make([]MoveView, 0, len(entries))
	for _, e := range entries {
		moves = append(moves, MoveView{
			From:     e.Move.From.String(),
			To:       e.Move.To.String(),
			Notation: e.Notation,
		})
	}

	var last *MoveView
	if e, ok := g.history.Last(); ok {
		last = &MoveView{From: e.Move.From.String(), To: e.Move.To.String(), Notation: e.Notation}
	}

	return GameState{
		Board:       boardGrid(pos),
		ToMove:      pos.ActiveColor().String(),
		MoveHistory: moves,
		Cursor:      g.history.Cursor(),
		IsCheck:     g.check,
		LastMove:    last,
		Result:      g.result,
		Players:     GamePlayers{White: g.white, Black: g.black},
	}
}

// RegisterConnection attaches a websocket to this game. Players and, while a
// seat is open, spectators are allowed; a duplicate connection for the same
// player is closed and the existing one kept.
func (g *Game) RegisterConnection(playerID string, conn *websocket.Conn) error {
	g.mu.Lock()
	authorized := g.isPlayerInGame(playerID) || g.canSpectate()
	g.mu.Unlock()

	if !authorized {
		return ErrNotAPlayer
	}

	g.connections.mu.Lock()
	if _, exists := g.connections.connections[playerID]; exists {
		g.connections.mu.Unlock()
		conn.WriteMessage(
			websocket.CloseMessage,
			websocket.FormatCloseMessage(websocket.CloseNormalClosure, "connection already exists"),
		)
		conn.Close()
		return nil
	}
	g.connections.connections[playerID] = conn
	g.connections.mu.Unlock()

	go g.broadcastState()
	return nil
}

func (g *Game) UnregisterConnection(playerID string) {
	g.connections.mu.Lock()
	defer g.connections.mu.Unlock()

	delete(g.connections.connections, playerID)
}

// broadcastState pushes the current snapshot to every observer. Connections
// that fail to write are dropped.
func (g *Game) broadcastState() {
	g.mu.Lock()
	state := g.snapshotLocked()
	g.mu.Unlock()

	payload, err := json.Marshal(state)
	if err != nil {
		log.Printf("game %s: marshal state: %v", g.ID, err)
		return
	}

	g.connections.mu.RLock()
	active := make(map[string]*websocket.Conn, len(g.connections.connections))
	for playerID, conn := range g.connections.connections {
		active[playerID] = conn
	}
	g.connections.mu.RUnlock()

	for playerID, conn := range active {
		msg := ws.Message{Type: ws.MessageTypeGameState, Payload: json.RawMessage(payload)}
		if err := conn.WriteJSON(msg); err != nil {
			log.Printf("game %s: drop connection for %s: %v", g.ID, playerID, err)
			g.connections.mu.Lock()
			delete(g.connections.connections, playerID)
			g.connections.mu.Unlock()
		}
	}
}
