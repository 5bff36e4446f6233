package service

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/gorilla/websocket"
	"go.uber.org/zap"

	"github.com/lehoangvu/docchat-be/types"
)

type WebSocketService struct {
	session  *SessionService
	upgrader websocket.Upgrader
	logger   *zap.Logger
}

func NewWebSocketService(session *SessionService, logger *zap.Logger) *WebSocketService {
	return &WebSocketService{
		session: session,
		logger:  logger,
		upgrader: websocket.Upgrader{
			CheckOrigin: func(r *http.Request) bool {
				return true // Allow all origins (adjust for production)
			},
		},
	}
}

func (s *WebSocketService) HandleChat(w http.ResponseWriter, r *http.Request) {
	conn, err := s.upgrader.Upgrade(w, r, nil)
	if err != nil {
		s.logger.Error("websocket upgrade failed", zap.Error(err))
		return
	}
	defer conn.Close()

	conn.SetReadLimit(512 * 1024) // 512KB max message size
	conn.SetReadDeadline(time.Now().Add(60 * time.Second))
	conn.SetPongHandler(func(string) error {
		conn.SetReadDeadline(time.Now().Add(60 * time.Second))
		return nil
	})

	for {
		_, p, err := conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				s.logger.Warn("websocket read error", zap.Error(err))
			}
			return
		}
		conn.SetReadDeadline(time.Now().Add(60 * time.Second))

		var req types.WebsocketRequest
		if err := json.Unmarshal(p, &req); err != nil {
			s.writeError(conn, "invalid message")
			continue
		}

		switch req.Type {
		case types.TypeWebsocketPing:
			s.write(conn, types.WebsocketResponse{Type: types.TypeWebsocketPong})
		case types.TypeWebsocketAsk:
			var payload types.WebsocketAskPayload
			if err := json.Unmarshal(req.Payload, &payload); err != nil {
				s.writeError(conn, "invalid message")
				continue
			}
			answer, err := s.session.Ask(r.Context(), payload.Question)
			if err != nil {
				s.writeError(conn, err.Error())
				continue
			}
			s.write(conn, types.WebsocketResponse{
				Type:    types.TypeWebsocketAnswer,
				Payload: types.WebsocketAnswerPayload{Answer: answer},
			})
		default:
			s.writeError(conn, "unknown message type")
		}
	}
}

func (s *WebSocketService) write(conn *websocket.Conn, res types.WebsocketResponse) {
	if err := conn.WriteJSON(res); err != nil {
		s.logger.Warn("websocket write error", zap.Error(err))
	}
}

func (s *WebSocketService) writeError(conn *websocket.Conn, message string) {
	s.write(conn, types.WebsocketResponse{
		Type:    types.TypeWebsocketError,
		Payload: types.WebsocketErrorPayload{Message: message},
	})
}
