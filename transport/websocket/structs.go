package websocket

import (
	"encoding/json"

	"github.com/rocketscienceinc/mastermind-backend/internal/entity"
)

// frame represents a WebSocket frame and its metadata.
type frame struct {
	isFin   bool   // whether this frame is the last one of the message
	opCode  byte   // operation code describing the payload type
	length  uint64 // payload length in bytes
	payload []byte // data carried by the frame
}

// Message represents a WebSocket message with an action type and a payload.
type Message struct {
	Action  string          `json:"action"`
	Payload json.RawMessage `json:"payload,omitempty"`
}

type Payload struct {
	Player *entity.Player `json:"player,omitempty"`
	Game   *entity.Game   `json:"game,omitempty"`
	Guess  []entity.Color `json:"guess,omitempty"`
	Score  *entity.Score  `json:"score,omitempty"`
	Error  string         `json:"error,omitempty"`
}
