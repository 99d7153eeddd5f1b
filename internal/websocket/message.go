package websocket

import (
	"encoding/json"
	"time"

	"github.com/dheerajjx/portfolio/internal/domain"
)

const MessageTypeHello domain.EventType = "HELLO"

// Message is the envelope pushed to subscribers.
type Message struct {
	Type      domain.EventType `json:"type"`
	Payload   json.RawMessage  `json:"payload"`
	Timestamp int64            `json:"timestamp"`
}

func NewMessage(msgType domain.EventType, payload interface{}) (*Message, error) {
	payloadBytes, err := json.Marshal(payload)
	if err != nil {
		return nil, err
	}
	return &Message{
		Type:      msgType,
		Payload:   payloadBytes,
		Timestamp: time.Now().UnixMilli(),
	}, nil
}

type HelloPayload struct {
	Clients int `json:"clients"`
}
