package app_test

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"justice-play/internal/app"
	"justice-play/internal/catalog"
	"justice-play/internal/domain"
	"justice-play/internal/infra/memory"

	"go.uber.org/zap/zaptest"
)

var errBoom = errors.New("disk on fire")

// flakyRepository wraps the in-memory repository and fails writes while failing is set.
type flakyRepository struct {
	*memory.ProfileRepository
	mu      sync.Mutex
	failing bool
	puts    int
}

func newFlakyRepository() *flakyRepository {
	return &flakyRepository{ProfileRepository: memory.NewProfileRepository()}
}

func (r *flakyRepository) setFailing(v bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.failing = v
}

func (r *flakyRepository) Put(ctx context.Context, profile domain.UserProfile) error {
	r.mu.Lock()
	failing := r.failing
	r.puts++
	r.mu.Unlock()
	if failing {
		return errBoom
	}
	return r.ProfileRepository.Put(ctx, profile)
}

func (r *flakyRepository) putCount() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.puts
}

type env struct {
	repo     *flakyRepository
	bus      *app.Bus
	catalog  *catalog.Catalog
	profiles *app.ProfileStore
	resolver *app.Resolver
	quiz     *app.QuizService
	events   *eventLog
}

// eventLog records every published event.
type eventLog struct {
	mu     sync.Mutex
	events []domain.ProfileEvent
}

func (l *eventLog) record(e domain.ProfileEvent) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.events = append(l.events, e)
}

func (l *eventLog) kinds() []domain.EventKind {
	l.mu.Lock()
	defer l.mu.Unlock()
	out := make([]domain.EventKind, 0, len(l.events))
	for _, e := range l.events {
		out = append(out, e.Kind)
	}
	return out
}

func (l *eventLog) count(kind domain.EventKind) int {
	n := 0
	for _, k := range l.kinds() {
		if k == kind {
			n++
		}
	}
	return n
}

func newEnv(t *testing.T) *env {
	t.Helper()
	logger := zaptest.NewLogger(t)
	cat := catalog.Default()
	bus := app.NewBus()
	repo := newFlakyRepository()
	fixed := time.Date(2024, 11, 22, 9, 0, 0, 0, time.UTC)
	profiles := app.NewProfileStoreWithClock(repo, cat, bus, logger, time.Second, func() time.Time { return fixed })
	resolver := app.NewResolver(cat, app.DefaultTier)
	events := &eventLog{}
	cancel := bus.Observe(events.record)
	t.Cleanup(cancel)
	return &env{
		repo:     repo,
		bus:      bus,
		catalog:  cat,
		profiles: profiles,
		resolver: resolver,
		quiz:     app.NewQuizService(memory.NewSessionStore(), profiles, resolver, logger),
		events:   events,
	}
}

func (e *env) signIn(t *testing.T, userID string) domain.UserProfile {
	t.Helper()
	profile, err := e.profiles.Create(context.Background(), userID, "Player "+userID)
	if err != nil {
		t.Fatalf("create profile: %v", err)
	}
	return profile
}

// play runs a full attempt answering the first `correct` questions right.
func (e *env) play(t *testing.T, userID, sessionID string, tier domain.AgeTier, levelID, correct int) domain.QuizSessionView {
	t.Helper()
	ctx := context.Background()
	level, err := e.catalog.Level(tier, levelID)
	if err != nil {
		t.Fatalf("level: %v", err)
	}
	view, err := e.quiz.Begin(ctx, userID, sessionID)
	if err != nil {
		t.Fatalf("begin: %v", err)
	}
	for i, q := range level.Questions {
		option := q.CorrectOptionIndex
		if i >= correct {
			option = (option + 1) % len(q.Options)
		}
		if view, err = e.quiz.Answer(ctx, userID, sessionID, option); err != nil {
			t.Fatalf("answer %d: %v", i, err)
		}
		if view, err = e.quiz.Next(ctx, userID, sessionID); err != nil {
			t.Fatalf("next %d: %v", i, err)
		}
	}
	return view
}
