package app_test

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"justice-play/internal/app"
	"justice-play/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"
)

func TestCommandsRequireOpenSession(t *testing.T) {
	e := newEnv(t)
	ctx := context.Background()

	_, err := e.profiles.AwardPoints(ctx, "ghost", 10)
	assert.ErrorIs(t, err, domain.ErrNotAuthenticated)
	_, err = e.profiles.RecordQuestionOutcome(ctx, "ghost", true)
	assert.ErrorIs(t, err, domain.ErrNotAuthenticated)
	_, _, err = e.profiles.CompleteLevel(ctx, "ghost", 1, domain.AgeTierSenior)
	assert.ErrorIs(t, err, domain.ErrNotAuthenticated)
	_, err = e.profiles.SelectAgeTier(ctx, "ghost", domain.AgeTierJunior)
	assert.ErrorIs(t, err, domain.ErrNotAuthenticated)
	assert.ErrorIs(t, e.profiles.Logout(ctx, "ghost"), domain.ErrNotAuthenticated)

	assert.Zero(t, e.repo.putCount())
	assert.Empty(t, e.events.kinds())
}

func TestAwardPoints(t *testing.T) {
	e := newEnv(t)
	ctx := context.Background()
	e.signIn(t, "u1")

	_, err := e.profiles.AwardPoints(ctx, "u1", -5)
	assert.ErrorIs(t, err, domain.ErrInvalidAmount)

	profile, err := e.profiles.AwardPoints(ctx, "u1", 0)
	require.NoError(t, err)
	assert.Zero(t, profile.TotalPoints)
	assert.Zero(t, e.events.count(domain.EventPointsChanged))

	profile, err = e.profiles.AwardPoints(ctx, "u1", 15)
	require.NoError(t, err)
	assert.Equal(t, 15, profile.TotalPoints)

	stored, err := e.repo.Get(ctx, "u1")
	require.NoError(t, err)
	assert.Equal(t, 15, stored.TotalPoints)
	assert.Equal(t, 1, e.events.count(domain.EventPointsChanged))
}

func TestRecordQuestionOutcomeKeepsCorrectBelowAnswered(t *testing.T) {
	e := newEnv(t)
	ctx := context.Background()
	e.signIn(t, "u1")

	for _, correct := range []bool{true, false, true} {
		_, err := e.profiles.RecordQuestionOutcome(ctx, "u1", correct)
		require.NoError(t, err)
	}
	profile, err := e.profiles.Profile("u1")
	require.NoError(t, err)
	assert.Equal(t, 3, profile.QuestionsAnswered)
	assert.Equal(t, 2, profile.CorrectAnswers)
	assert.Zero(t, profile.TotalPoints)
}

func TestCompleteLevelIsIdempotentAndPaysNothing(t *testing.T) {
	e := newEnv(t)
	ctx := context.Background()
	e.signIn(t, "u1")

	profile, newly, err := e.profiles.CompleteLevel(ctx, "u1", 1, domain.AgeTierSenior)
	require.NoError(t, err)
	assert.True(t, newly)
	assert.Equal(t, []int{1}, profile.CompletedIn(domain.AgeTierSenior))
	assert.Equal(t, []int{1}, profile.CompletedLevelIDs)

	profile, newly, err = e.profiles.CompleteLevel(ctx, "u1", 1, domain.AgeTierSenior)
	require.NoError(t, err)
	assert.False(t, newly)
	assert.Equal(t, []int{1}, profile.CompletedIn(domain.AgeTierSenior))
	assert.Zero(t, profile.TotalPoints)
	assert.Equal(t, 1, e.events.count(domain.EventLevelCompleted))

	_, _, err = e.profiles.CompleteLevel(ctx, "u1", 42, domain.AgeTierSenior)
	assert.ErrorIs(t, err, domain.ErrUnknownLevel)
	_, _, err = e.profiles.CompleteLevel(ctx, "u1", 1, domain.AgeTier("adult"))
	assert.ErrorIs(t, err, domain.ErrInvalidTier)
}

func TestSelectAgeTierPreservesLedgers(t *testing.T) {
	e := newEnv(t)
	ctx := context.Background()
	e.signIn(t, "u1")

	_, err := e.profiles.SelectAgeTier(ctx, "u1", domain.AgeTierJunior)
	require.NoError(t, err)
	_, _, err = e.profiles.CompleteLevel(ctx, "u1", 1, domain.AgeTierJunior)
	require.NoError(t, err)

	profile, err := e.profiles.SelectAgeTier(ctx, "u1", domain.AgeTierSenior)
	require.NoError(t, err)
	assert.Equal(t, domain.AgeTierSenior, profile.AgeTier)
	assert.True(t, profile.HasCompleted(domain.AgeTierJunior, 1))
	assert.False(t, profile.HasCompleted(domain.AgeTierSenior, 1))

	// selecting the current tier is a no-op
	_, err = e.profiles.SelectAgeTier(ctx, "u1", domain.AgeTierSenior)
	require.NoError(t, err)
	assert.Equal(t, 2, e.events.count(domain.EventAgeTierChanged))

	_, err = e.profiles.SelectAgeTier(ctx, "u1", domain.AgeTier("7-9"))
	assert.ErrorIs(t, err, domain.ErrInvalidTier)
}

func TestPersistenceFailureRollsBack(t *testing.T) {
	e := newEnv(t)
	ctx := context.Background()
	e.signIn(t, "u1")
	_, err := e.profiles.AwardPoints(ctx, "u1", 10)
	require.NoError(t, err)
	before := len(e.events.kinds())

	e.repo.setFailing(true)
	_, err = e.profiles.AwardPoints(ctx, "u1", 25)
	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrPersistenceFailure))
	assert.True(t, errors.Is(err, errBoom))
	_, _, err = e.profiles.CompleteLevel(ctx, "u1", 1, domain.AgeTierSenior)
	assert.ErrorIs(t, err, domain.ErrPersistenceFailure)

	profile, err := e.profiles.Profile("u1")
	require.NoError(t, err)
	assert.Equal(t, 10, profile.TotalPoints)
	assert.False(t, profile.HasCompleted(domain.AgeTierSenior, 1))
	assert.Len(t, e.events.kinds(), before, "failed writes must not publish")

	e.repo.setFailing(false)
	profile, err = e.profiles.AwardPoints(ctx, "u1", 25)
	require.NoError(t, err)
	assert.Equal(t, 35, profile.TotalPoints)
}

func TestLogoutKeepsRecordAndClearsMarker(t *testing.T) {
	e := newEnv(t)
	ctx := context.Background()
	e.signIn(t, "u1")
	assert.True(t, e.repo.SessionActive("u1"))
	_, err := e.profiles.AwardPoints(ctx, "u1", 40)
	require.NoError(t, err)

	require.NoError(t, e.profiles.Logout(ctx, "u1"))
	assert.False(t, e.profiles.Active("u1"))
	assert.False(t, e.repo.SessionActive("u1"))
	assert.Equal(t, 1, e.events.count(domain.EventLoggedOut))

	_, err = e.profiles.Profile("u1")
	assert.ErrorIs(t, err, domain.ErrNotAuthenticated)

	profile, err := e.profiles.Open(ctx, "u1", "ignored")
	require.NoError(t, err)
	assert.Equal(t, 40, profile.TotalPoints)
	assert.Equal(t, "Player u1", profile.DisplayName)
	assert.True(t, e.repo.SessionActive("u1"))
}

func TestOpenCreatesMissingRecord(t *testing.T) {
	e := newEnv(t)
	ctx := context.Background()

	profile, err := e.profiles.Open(ctx, "u9", "Nia")
	require.NoError(t, err)
	assert.Equal(t, "Nia", profile.DisplayName)
	assert.Zero(t, profile.TotalPoints)
	assert.Empty(t, profile.CompletedLevelIDs)

	_, err = e.repo.Get(ctx, "u9")
	assert.NoError(t, err)
}

func TestOpenReportsLoadFailure(t *testing.T) {
	e := newEnv(t)
	e.repo.setFailing(true)
	_, err := e.profiles.Open(context.Background(), "u9", "Nia")
	assert.ErrorIs(t, err, domain.ErrPersistenceFailure)
	assert.False(t, e.profiles.Active("u9"))
}

func TestConcurrentCommandsSerialize(t *testing.T) {
	e := newEnv(t)
	ctx := context.Background()
	e.signIn(t, "u1")

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			if i%2 == 0 {
				_, _ = e.profiles.AwardPoints(ctx, "u1", 2)
			} else {
				_, _ = e.profiles.RecordQuestionOutcome(ctx, "u1", true)
			}
		}(i)
	}
	wg.Wait()

	profile, err := e.profiles.Profile("u1")
	require.NoError(t, err)
	assert.Equal(t, 50, profile.TotalPoints)
	assert.Equal(t, 25, profile.QuestionsAnswered)

	stored, err := e.repo.Get(ctx, "u1")
	require.NoError(t, err)
	assert.Equal(t, profile.TotalPoints, stored.TotalPoints)
	assert.Equal(t, profile.QuestionsAnswered, stored.QuestionsAnswered)
}

func TestProfileReturnsCopies(t *testing.T) {
	e := newEnv(t)
	ctx := context.Background()
	e.signIn(t, "u1")
	_, _, err := e.profiles.CompleteLevel(ctx, "u1", 1, domain.AgeTierSenior)
	require.NoError(t, err)

	profile, err := e.profiles.Profile("u1")
	require.NoError(t, err)
	profile.CompletedByTier[domain.AgeTierSenior][0] = 3
	profile.TotalPoints = 1000

	again, err := e.profiles.Profile("u1")
	require.NoError(t, err)
	assert.Equal(t, []int{1}, again.CompletedIn(domain.AgeTierSenior))
	assert.Zero(t, again.TotalPoints)
}

func TestRecordAnswerSavesPointsAndStatsTogether(t *testing.T) {
	e := newEnv(t)
	ctx := context.Background()
	e.signIn(t, "u1")

	_, err := e.profiles.RecordAnswer(ctx, "u1", true, -1)
	assert.ErrorIs(t, err, domain.ErrInvalidAmount)

	e.repo.setFailing(true)
	_, err = e.profiles.RecordAnswer(ctx, "u1", true, 10)
	assert.ErrorIs(t, err, domain.ErrPersistenceFailure)
	profile, err := e.profiles.Profile("u1")
	require.NoError(t, err)
	assert.Zero(t, profile.TotalPoints)
	assert.Zero(t, profile.QuestionsAnswered)
	assert.Zero(t, profile.CorrectAnswers)

	e.repo.setFailing(false)
	profile, err = e.profiles.RecordAnswer(ctx, "u1", true, 10)
	require.NoError(t, err)
	assert.Equal(t, 10, profile.TotalPoints)
	assert.Equal(t, 1, profile.QuestionsAnswered)
	assert.Equal(t, 1, profile.CorrectAnswers)

	profile, err = e.profiles.RecordAnswer(ctx, "u1", false, 0)
	require.NoError(t, err)
	assert.Equal(t, 10, profile.TotalPoints)
	assert.Equal(t, 2, profile.QuestionsAnswered)
	assert.Equal(t, 1, profile.CorrectAnswers)

	assert.Equal(t, []domain.EventKind{
		domain.EventPointsChanged, domain.EventStatsChanged, domain.EventStatsChanged,
	}, e.events.kinds())
}

// gatedRepository holds Get until release is closed, honouring the caller's context.
type gatedRepository struct {
	*flakyRepository
	started chan struct{}
	release chan struct{}
	once    sync.Once
}

func (r *gatedRepository) Get(ctx context.Context, userID string) (domain.UserProfile, error) {
	r.once.Do(func() { close(r.started) })
	select {
	case <-r.release:
	case <-ctx.Done():
		return domain.UserProfile{}, ctx.Err()
	}
	return r.flakyRepository.Get(ctx, userID)
}

func TestOpenSurvivesFirstCallerCancelling(t *testing.T) {
	e := newEnv(t)
	repo := &gatedRepository{flakyRepository: e.repo, started: make(chan struct{}), release: make(chan struct{})}
	profiles := app.NewProfileStore(repo, e.catalog, e.bus, zaptest.NewLogger(t), time.Second)

	first, cancel := context.WithCancel(context.Background())
	firstErr := make(chan error, 1)
	go func() {
		_, err := profiles.Open(first, "u1", "Alice")
		firstErr <- err
	}()
	<-repo.started

	secondErr := make(chan error, 1)
	go func() {
		_, err := profiles.Open(context.Background(), "u1", "Alice")
		secondErr <- err
	}()
	time.Sleep(20 * time.Millisecond)

	cancel()
	assert.ErrorIs(t, <-firstErr, context.Canceled)

	close(repo.release)
	require.NoError(t, <-secondErr)
	assert.True(t, profiles.Active("u1"))
}
