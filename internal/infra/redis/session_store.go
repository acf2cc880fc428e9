package redis

import (
	"context"
	"math/rand"
	"sync"
	"time"

	"justice-play/internal/app"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

// SessionStore is a Redis-aware implementation of app.SessionRepository.
// Sessions live in a local map; Redis holds a liveness key per session with an idle TTL.
// A session whose key has expired is dropped on the next lookup.
type SessionStore struct {
	client *redis.Client
	ttl    time.Duration
	logger *zap.Logger

	mu       sync.RWMutex
	sessions map[string]*app.QuizSession
	rnd      *rand.Rand
}

func NewSessionStore(client *redis.Client, ttl time.Duration, logger *zap.Logger) *SessionStore {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &SessionStore{
		client:   client,
		ttl:      ttl,
		logger:   logger,
		sessions: make(map[string]*app.QuizSession),
		rnd:      rand.New(rand.NewSource(time.Now().UnixNano())),
	}
}

func (s *SessionStore) Save(session *app.QuizSession) {
	s.mu.Lock()
	s.sessions[session.ID()] = session
	ttl := s.ttlWithJitter()
	s.mu.Unlock()

	// best-effort liveness marker
	if err := s.client.Set(context.Background(), s.key(session.ID()), session.UserID(), ttl).Err(); err != nil {
		s.logger.Warn("set session liveness failed", zap.String("session_id", session.ID()), zap.Error(err))
	}
}

func (s *SessionStore) Get(sessionID string) (*app.QuizSession, bool) {
	s.mu.RLock()
	session, ok := s.sessions[sessionID]
	s.mu.RUnlock()
	if !ok {
		return nil, false
	}

	ctx := context.Background()
	if s.ttl <= 0 {
		return session, true
	}
	alive, err := s.client.Expire(ctx, s.key(sessionID), s.ttl).Result()
	if err != nil {
		// Redis unavailable: keep serving the local copy.
		s.logger.Warn("refresh session liveness failed", zap.String("session_id", sessionID), zap.Error(err))
		return session, true
	}
	if !alive {
		s.mu.Lock()
		delete(s.sessions, sessionID)
		s.mu.Unlock()
		return nil, false
	}
	return session, true
}

func (s *SessionStore) Delete(sessionID string) {
	s.mu.Lock()
	delete(s.sessions, sessionID)
	s.mu.Unlock()
	_ = s.client.Del(context.Background(), s.key(sessionID)).Err()
}

func (s *SessionStore) key(sessionID string) string {
	return "quiz:session:" + sessionID
}

// ttlWithJitter spreads expiry of sessions created together. Callers hold s.mu.
func (s *SessionStore) ttlWithJitter() time.Duration {
	if s.ttl <= 0 {
		return 0
	}
	jitterMax := int64(s.ttl) / 10
	return s.ttl + time.Duration(s.rnd.Int63n(jitterMax+1))
}
