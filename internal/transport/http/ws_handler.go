package http

import (
	"context"
	"encoding/json"
	"net/http"

	"justice-play/internal/app"
	"justice-play/internal/domain"

	"github.com/gorilla/websocket"
	"go.uber.org/zap"
)

// WSHandler streams profile events to a signed-in user and accepts quiz commands.
type WSHandler struct {
	accounts *app.AccountService
	profiles *app.ProfileStore
	quiz     *app.QuizService
	bus      *app.Bus
	logger   *zap.Logger
	upgrader websocket.Upgrader
}

func NewWSHandler(accounts *app.AccountService, profiles *app.ProfileStore, quiz *app.QuizService, bus *app.Bus, logger *zap.Logger) *WSHandler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &WSHandler{
		accounts: accounts,
		profiles: profiles,
		quiz:     quiz,
		bus:      bus,
		logger:   logger,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			CheckOrigin:     func(r *http.Request) bool { return true },
		},
	}
}

type inboundMessage struct {
	Type    string          `json:"type"`
	Payload json.RawMessage `json:"payload"`
}

type answerPayload struct {
	SessionID string `json:"sessionId"`
	Option    int    `json:"option"`
}

type nextPayload struct {
	SessionID string `json:"sessionId"`
}

type outboundMessage[T any] struct {
	Type    string `json:"type"`
	Payload T      `json:"payload"`
}

type errorPayload struct {
	Message string `json:"message"`
}

// ServeWS upgrades HTTP requests to websockets. The token query parameter must belong to a
// user with an open session.
func (h *WSHandler) ServeWS(w http.ResponseWriter, r *http.Request) {
	userID, err := h.accounts.Authenticate(r.URL.Query().Get("token"))
	if err != nil {
		http.Error(w, "not authenticated", http.StatusUnauthorized)
		return
	}

	conn, err := h.upgrader.Upgrade(w, r, nil)
	if err != nil {
		h.logger.Warn("ws upgrade failed", zap.Error(err))
		return
	}
	defer conn.Close()

	// Subscribe before the snapshot so no event between the two is lost.
	updates, cancel := h.bus.Subscribe(userID)
	defer cancel()

	profile, err := h.profiles.Profile(userID)
	if err != nil {
		_ = conn.WriteJSON(outboundMessage[errorPayload]{Type: "error", Payload: errorPayload{Message: err.Error()}})
		return
	}

	h.serve(r.Context(), conn, userID, profile, updates)
}

// wsConn is the part of *websocket.Conn the message pump uses.
type wsConn interface {
	ReadJSON(v any) error
	WriteJSON(v any) error
	Close() error
}

// serve pumps events and command replies to conn until the peer goes away or a write fails.
func (h *WSHandler) serve(ctx context.Context, conn wsConn, userID string, profile domain.UserProfile, updates <-chan domain.ProfileEvent) {
	send := make(chan outboundMessage[any], 16)
	closeSignals := make(chan struct{})
	writerDone := make(chan struct{})
	updatesDone := make(chan struct{})

	go func() {
		defer close(writerDone)
		for msg := range send {
			if err := conn.WriteJSON(msg); err != nil {
				h.logger.Debug("ws write error", zap.String("user_id", userID), zap.Error(err))
				// unblocks the read loop
				_ = conn.Close()
				return
			}
		}
	}()

	// deliver reports false once the writer is gone.
	deliver := func(msg outboundMessage[any]) bool {
		select {
		case send <- msg:
			return true
		case <-writerDone:
			return false
		}
	}

	go func() {
		defer close(updatesDone)
		for {
			select {
			case event, ok := <-updates:
				if !ok {
					return
				}
				select {
				case send <- outboundMessage[any]{Type: string(event.Kind), Payload: event}:
				case <-writerDone:
					return
				case <-closeSignals:
					return
				}
			case <-closeSignals:
				return
			}
		}
	}()

	if deliver(outboundMessage[any]{Type: "profile", Payload: profile}) {
		for {
			var inbound inboundMessage
			if err := conn.ReadJSON(&inbound); err != nil {
				break
			}
			if !deliver(h.handle(ctx, userID, inbound)) {
				break
			}
		}
	}

	close(closeSignals)
	<-updatesDone
	close(send)
	<-writerDone
}

func (h *WSHandler) handle(ctx context.Context, userID string, inbound inboundMessage) outboundMessage[any] {
	var (
		view domain.QuizSessionView
		err  error
	)
	switch inbound.Type {
	case "answer":
		var payload answerPayload
		if err := json.Unmarshal(inbound.Payload, &payload); err != nil {
			return wsError("invalid answer payload")
		}
		view, err = h.quiz.Answer(ctx, userID, payload.SessionID, payload.Option)
	case "next":
		var payload nextPayload
		if err := json.Unmarshal(inbound.Payload, &payload); err != nil {
			return wsError("invalid next payload")
		}
		view, err = h.quiz.Next(ctx, userID, payload.SessionID)
	default:
		return wsError("unsupported message type")
	}
	if err != nil {
		return wsError(errorBody(err).Error)
	}
	return outboundMessage[any]{Type: "quiz", Payload: view}
}

func wsError(message string) outboundMessage[any] {
	return outboundMessage[any]{Type: "error", Payload: errorPayload{Message: message}}
}
