package app

import (
	"context"
	"time"

	"justice-play/internal/domain"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// SessionRepository abstracts how live quiz sessions are stored (in-memory, Redis, etc).
type SessionRepository interface {
	Save(session *QuizSession)
	Get(sessionID string) (*QuizSession, bool)
	Delete(sessionID string)
}

// QuizService runs quiz attempts and reports their outcome to the profile store.
type QuizService struct {
	sessions SessionRepository
	profiles *ProfileStore
	resolver *Resolver
	logger   *zap.Logger
	now      func() time.Time
	newID    func() string
}

func NewQuizService(sessions SessionRepository, profiles *ProfileStore, resolver *Resolver, logger *zap.Logger) *QuizService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &QuizService{
		sessions: sessions,
		profiles: profiles,
		resolver: resolver,
		logger:   logger,
		now:      time.Now,
		newID:    uuid.NewString,
	}
}

// Start opens a new session on an unlocked level of the user's effective tier.
func (s *QuizService) Start(_ context.Context, userID string, levelID int) (domain.QuizSessionView, error) {
	profile, err := s.profiles.Profile(userID)
	if err != nil {
		return domain.QuizSessionView{}, err
	}
	level, err := s.resolver.Level(levelID, profile)
	if err != nil {
		return domain.QuizSessionView{}, err
	}
	locked, err := s.resolver.IsLocked(levelID, profile)
	if err != nil {
		return domain.QuizSessionView{}, err
	}
	if locked {
		return domain.QuizSessionView{}, domain.ErrLevelLocked
	}

	session := newQuizSession(s.newID(), userID, s.resolver.EffectiveTier(profile), level, s.now())
	s.sessions.Save(session)
	s.logger.Info("quiz started",
		zap.String("user_id", userID),
		zap.String("session_id", session.id),
		zap.Int("level_id", levelID),
		zap.String("tier", string(session.tier)),
	)
	return session.View(), nil
}

// Get returns the current state of a session.
func (s *QuizService) Get(_ context.Context, userID, sessionID string) (domain.QuizSessionView, error) {
	session, err := s.session(userID, sessionID)
	if err != nil {
		return domain.QuizSessionView{}, err
	}
	return session.View(), nil
}

// Begin leaves the intro screen.
func (s *QuizService) Begin(_ context.Context, userID, sessionID string) (domain.QuizSessionView, error) {
	session, err := s.session(userID, sessionID)
	if err != nil {
		return domain.QuizSessionView{}, err
	}
	session.mu.Lock()
	defer session.mu.Unlock()
	if err := session.beginLocked(); err != nil {
		return session.viewLocked(), err
	}
	return session.viewLocked(), nil
}

// Answer grades the first answer to the current question.
//
// The award and the answer statistics are saved together before the session moves on. If that
// write fails the session stays on the question, so the user can answer again.
func (s *QuizService) Answer(ctx context.Context, userID, sessionID string, option int) (domain.QuizSessionView, error) {
	session, err := s.session(userID, sessionID)
	if err != nil {
		return domain.QuizSessionView{}, err
	}
	session.mu.Lock()
	defer session.mu.Unlock()

	result, err := session.gradeLocked(option)
	if err != nil {
		return session.viewLocked(), err
	}
	if _, err := s.profiles.RecordAnswer(ctx, userID, result.Correct, result.Awarded); err != nil {
		return session.viewLocked(), err
	}
	session.applyAnswerLocked(result)
	return session.viewLocked(), nil
}

// Next moves to the next question, or to the summary after the last review. Reaching a passing
// summary completes the level once; calling Next again on such a summary retries a completion
// whose write failed.
func (s *QuizService) Next(ctx context.Context, userID, sessionID string) (domain.QuizSessionView, error) {
	session, err := s.session(userID, sessionID)
	if err != nil {
		return domain.QuizSessionView{}, err
	}
	session.mu.Lock()
	defer session.mu.Unlock()

	if session.phase == domain.QuizPhaseSummary {
		if !session.passed || session.levelCompleted {
			return session.viewLocked(), domain.ErrInvalidPhase
		}
		return s.completeLocked(ctx, session)
	}

	finished, err := session.advanceLocked()
	if err != nil {
		return session.viewLocked(), err
	}
	if !finished {
		return session.viewLocked(), nil
	}
	s.logger.Info("quiz finished",
		zap.String("user_id", userID),
		zap.String("session_id", session.id),
		zap.Int("correct", session.correct),
		zap.Int("questions", session.questionCount()),
		zap.Bool("passed", session.passed),
	)
	if !session.passed {
		return session.viewLocked(), nil
	}
	return s.completeLocked(ctx, session)
}

// Restart resets the session to the intro of a fresh attempt.
func (s *QuizService) Restart(_ context.Context, userID, sessionID string) (domain.QuizSessionView, error) {
	session, err := s.session(userID, sessionID)
	if err != nil {
		return domain.QuizSessionView{}, err
	}
	session.mu.Lock()
	defer session.mu.Unlock()
	session.restartLocked()
	return session.viewLocked(), nil
}

// Abandon drops a session.
func (s *QuizService) Abandon(_ context.Context, userID, sessionID string) error {
	if _, err := s.session(userID, sessionID); err != nil {
		return err
	}
	s.sessions.Delete(sessionID)
	return nil
}

func (s *QuizService) completeLocked(ctx context.Context, session *QuizSession) (domain.QuizSessionView, error) {
	if _, _, err := s.profiles.CompleteLevel(ctx, session.userID, session.level.ID, session.tier); err != nil {
		return session.viewLocked(), err
	}
	session.levelCompleted = true
	return session.viewLocked(), nil
}

// session returns a session owned by userID. Sessions of other users look absent.
func (s *QuizService) session(userID, sessionID string) (*QuizSession, error) {
	session, ok := s.sessions.Get(sessionID)
	if !ok || session.userID != userID {
		return nil, domain.ErrSessionNotFound
	}
	return session, nil
}
