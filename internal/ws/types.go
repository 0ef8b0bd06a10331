// Package ws defines the websocket message envelope shared by the server
// and its clients.
package ws

import "encoding/json"

// MessageType discriminates the messages flowing over a game connection.
type MessageType string

const (
	MessageTypeMove      MessageType = "move"
	MessageTypeUndo      MessageType = "undo"
	MessageTypeRedo      MessageType = "redo"
	MessageTypeJump      MessageType = "jump"
	MessageTypeResign    MessageType = "resign"
	MessageTypeGameState MessageType = "gameState"
	MessageTypeError     MessageType = "error"
)

// Message is the wire envelope: a type tag plus a raw payload decoded by the
// handler for that type.
type Message struct {
	Type    MessageType     `json:"type"`
	Payload json.RawMessage `json:"payload"`
}
