package http

import (
	"context"
	"errors"
	"net/http"
	"strings"
	"sync"
	"testing"
	"time"

	"justice-play/internal/domain"

	"github.com/gorilla/websocket"
	"go.uber.org/zap/zaptest"
)

func TestWebSocketRejectsUnknownToken(t *testing.T) {
	f := newFixture(t)

	_, resp, err := websocket.DefaultDialer.Dial(wsURL(f, "bogus"), nil)
	if err == nil {
		t.Fatalf("expected dial to fail")
	}
	if resp == nil || resp.StatusCode != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %+v", resp)
	}
}

func TestWebSocketAnswerFlow(t *testing.T) {
	f := newFixture(t)
	session := f.signUp("Alice")

	var view domain.QuizSessionView
	if status := f.do(http.MethodPost, "/api/quiz/sessions", session.Token, map[string]int{"levelId": 1}, &view); status != http.StatusCreated {
		t.Fatalf("start quiz: status %d", status)
	}
	if status := f.do(http.MethodPost, "/api/quiz/sessions/"+view.SessionID+"/begin", session.Token, nil, &view); status != http.StatusOK {
		t.Fatalf("begin quiz: status %d", status)
	}

	conn, _, err := websocket.DefaultDialer.Dial(wsURL(f, session.Token), nil)
	if err != nil {
		t.Fatalf("dial: %v", err)
	}
	defer conn.Close()

	// Expect the profile snapshot first.
	if typ, payload := readNext(conn, t, "profile"); payload["id"] != session.Profile.ID {
		t.Fatalf("expected own profile in %s, got %v", typ, payload)
	}

	answer := map[string]any{
		"type": "answer",
		"payload": map[string]any{
			"sessionId": view.SessionID,
			"option":    f.correctOption(domain.AgeTierSenior, 1, 0),
		},
	}
	if err := conn.WriteJSON(answer); err != nil {
		t.Fatalf("write answer: %v", err)
	}

	// Expect the quiz view plus points and stats events, in any order.
	seen := map[string]map[string]any{}
	for i := 0; i < 3; i++ {
		typ, payload := readNext(conn, t, "")
		seen[typ] = payload
	}
	quiz, ok := seen["quiz"]
	if !ok {
		t.Fatalf("expected quiz message, got %v", seen)
	}
	if quiz["phase"] != string(domain.QuizPhaseReviewing) {
		t.Fatalf("expected reviewing phase, got %v", quiz["phase"])
	}
	points, ok := seen[string(domain.EventPointsChanged)]
	if !ok {
		t.Fatalf("expected points event, got %v", seen)
	}
	if points["totalPoints"] != float64(10) {
		t.Fatalf("expected 10 points, got %v", points["totalPoints"])
	}
	if _, ok := seen[string(domain.EventStatsChanged)]; !ok {
		t.Fatalf("expected stats event, got %v", seen)
	}

	// A second answer to the same question is rejected.
	if err := conn.WriteJSON(answer); err != nil {
		t.Fatalf("write answer: %v", err)
	}
	readNext(conn, t, "error")

	if err := conn.WriteJSON(map[string]any{"type": "dance"}); err != nil {
		t.Fatalf("write: %v", err)
	}
	readNext(conn, t, "error")
}

func TestWebSocketStreamsRESTChanges(t *testing.T) {
	f := newFixture(t)
	session := f.signUp("Alice")

	conn, _, err := websocket.DefaultDialer.Dial(wsURL(f, session.Token), nil)
	if err != nil {
		t.Fatalf("dial: %v", err)
	}
	defer conn.Close()
	readNext(conn, t, "profile")

	if status := f.do(http.MethodPut, "/api/profile/age-tier", session.Token, map[string]string{"ageTier": "9-12"}, nil); status != http.StatusOK {
		t.Fatalf("select tier: status %d", status)
	}
	_, payload := readNext(conn, t, string(domain.EventAgeTierChanged))
	if payload["tier"] != string(domain.AgeTierJunior) {
		t.Fatalf("expected junior tier, got %v", payload["tier"])
	}

	if status := f.do(http.MethodPost, "/api/auth/signout", session.Token, nil, nil); status != http.StatusNoContent {
		t.Fatalf("sign out: status %d", status)
	}
	readNext(conn, t, string(domain.EventLoggedOut))
}

func wsURL(f *fixture, token string) string {
	return "ws" + strings.TrimPrefix(f.server.URL, "http") + "/ws?token=" + token
}

func readNext(conn *websocket.Conn, t *testing.T, expect string) (string, map[string]any) {
	t.Helper()
	var msg struct {
		Type    string         `json:"type"`
		Payload map[string]any `json:"payload"`
	}
	_ = conn.SetReadDeadline(time.Now().Add(5 * time.Second))
	if err := conn.ReadJSON(&msg); err != nil {
		t.Fatalf("read json: %v", err)
	}
	if expect != "" && msg.Type != expect {
		t.Fatalf("expected type %s, got %s", expect, msg.Type)
	}
	return msg.Type, msg.Payload
}

// brokenConn fails every write and replays an inbound command until it is closed.
type brokenConn struct {
	mu     sync.Mutex
	closed bool
}

func (c *brokenConn) ReadJSON(v any) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.closed {
		return errors.New("use of closed connection")
	}
	*(v.(*inboundMessage)) = inboundMessage{Type: "ping"}
	return nil
}

func (c *brokenConn) WriteJSON(any) error {
	return errors.New("broken pipe")
}

func (c *brokenConn) Close() error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.closed = true
	return nil
}

func TestWebSocketServeReturnsWhenWritesFail(t *testing.T) {
	h := NewWSHandler(nil, nil, nil, nil, zaptest.NewLogger(t))
	updates := make(chan domain.ProfileEvent)

	done := make(chan struct{})
	go func() {
		defer close(done)
		h.serve(context.Background(), &brokenConn{}, "u1", domain.NewUserProfile("u1", "Alice"), updates)
	}()

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatalf("serve did not return after the writer failed")
	}
}
