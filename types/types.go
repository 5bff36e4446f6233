package types

import "encoding/json"

const (
	TypeWebsocketPing   = "ping"
	TypeWebsocketPong   = "pong"
	TypeWebsocketAsk    = "ask"
	TypeWebsocketAnswer = "answer"
	TypeWebsocketError  = "error"
)

type WebsocketRequest struct {
	Type    string          `json:"type"`
	Payload json.RawMessage `json:"payload"`
}

type WebsocketResponse struct {
	Type    string      `json:"type"`
	Payload interface{} `json:"payload"`
}

type WebsocketAskPayload struct {
	Question string `json:"question"`
}

type WebsocketAnswerPayload struct {
	Answer string `json:"answer"`
}

type WebsocketErrorPayload struct {
	Message string `json:"message"`
}
