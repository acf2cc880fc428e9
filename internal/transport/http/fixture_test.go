package http

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"justice-play/internal/app"
	"justice-play/internal/catalog"
	"justice-play/internal/domain"
	"justice-play/internal/infra/auth"
	"justice-play/internal/infra/memory"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"
)

type fixture struct {
	t       *testing.T
	server  *httptest.Server
	catalog *catalog.Catalog
	repo    *memory.ProfileRepository
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	logger := zaptest.NewLogger(t)
	cat := catalog.Default()
	bus := app.NewBus()
	repo := memory.NewProfileRepository()
	profiles := app.NewProfileStore(repo, cat, bus, logger, time.Second)
	resolver := app.NewResolver(cat, app.DefaultTier)
	tokens, err := auth.NewJWTService("test-secret", time.Hour)
	require.NoError(t, err)

	svc := Services{
		Accounts:    app.NewAccountService(memory.NewAccountRepository(), auth.NewBcryptHasherWithCost(4), tokens, profiles, logger),
		Profiles:    profiles,
		Resolver:    resolver,
		Quiz:        app.NewQuizService(memory.NewSessionStore(), profiles, resolver, logger),
		Videos:      app.NewVideoService(cat, profiles, resolver),
		Chatbot:     app.NewDefaultChatbot(),
		Community:   app.NewCommunityFeed(memory.NewPostRepository(app.SamplePosts(time.Now())), profiles),
		Leaderboard: app.NewLeaderboardService(app.SampleLeaderboard()),
		Bus:         bus,
	}
	server := httptest.NewServer(NewServer(svc, logger).Handler())
	t.Cleanup(server.Close)
	return &fixture{t: t, server: server, catalog: cat, repo: repo}
}

// do sends a JSON request and decodes the JSON response into out when out is non-nil.
func (f *fixture) do(method, path, token string, body any, out any) int {
	f.t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(f.t, json.NewEncoder(&buf).Encode(body))
	}
	req, err := http.NewRequest(method, f.server.URL+path, &buf)
	require.NoError(f.t, err)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	resp, err := http.DefaultClient.Do(req)
	require.NoError(f.t, err)
	defer resp.Body.Close()
	if out != nil {
		require.NoError(f.t, json.NewDecoder(resp.Body).Decode(out))
	}
	return resp.StatusCode
}

func (f *fixture) signUp(name string) domain.AuthSession {
	f.t.Helper()
	var session domain.AuthSession
	status := f.do(http.MethodPost, "/api/auth/signup", "", map[string]string{"name": name, "password": "secret123"}, &session)
	require.Equal(f.t, http.StatusCreated, status)
	require.NotEmpty(f.t, session.Token)
	return session
}

func (f *fixture) correctOption(tier domain.AgeTier, levelID, index int) int {
	f.t.Helper()
	level, err := f.catalog.Level(tier, levelID)
	require.NoError(f.t, err)
	return level.Questions[index].CorrectOptionIndex
}
