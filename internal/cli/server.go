package cli

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"justice-play/internal/app"
	"justice-play/internal/catalog"
	"justice-play/internal/config"
	"justice-play/internal/domain"
	"justice-play/internal/infra/auth"
	"justice-play/internal/infra/hybrid"
	"justice-play/internal/infra/logger"
	"justice-play/internal/infra/memory"
	"justice-play/internal/infra/postgres"
	redisstore "justice-play/internal/infra/redis"
	"justice-play/internal/infra/sqlite"
	transport "justice-play/internal/transport/http"

	"github.com/jackc/pgx/v4/pgxpool"
	"github.com/redis/go-redis/v9"
	"github.com/spf13/cobra"
	"github.com/uptrace/bun"
	"go.uber.org/zap"
)

// NewStartCmd builds the CLI subcommand to start the server.
func NewStartCmd(configPath, port *string) *cobra.Command {
	return &cobra.Command{
		Use:   "start",
		Short: "Start the game server",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServer(cmd.Context(), *configPath, *port)
		},
	}
}

// stores are the repositories selected by the configured backend.
type stores struct {
	profiles app.ProfileRepository
	accounts app.AccountRepository
	posts    app.PostRepository
	sessions app.SessionRepository
	closers  []func()
}

func (s *stores) close() {
	for i := len(s.closers) - 1; i >= 0; i-- {
		s.closers[i]()
	}
}

func runServer(ctx context.Context, configPath, portFlag string) error {
	cfg, err := config.Load(configPath)
	if err != nil {
		return err
	}
	log, err := logger.New(cfg.Log.Mode, cfg.Log.Level)
	if err != nil {
		return err
	}
	defer func() { _ = log.Sync() }()

	finalPort := portFlag
	if finalPort == "" {
		finalPort = cfg.Server.Port
	}
	if finalPort == "" {
		finalPort = "8080"
	}

	defaultTier := app.DefaultTier
	if cfg.Profile.DefaultTier != "" {
		if defaultTier, err = domain.ParseAgeTier(cfg.Profile.DefaultTier); err != nil {
			return fmt.Errorf("profile.defaultTier: %w", err)
		}
	}

	cat := catalog.Default()
	if err := cat.Validate(); err != nil {
		return err
	}

	st, err := openStores(ctx, cfg, log)
	if err != nil {
		return err
	}
	defer st.close()

	secret := cfg.Auth.Secret
	if secret == "" {
		log.Warn("auth.secret not configured, using an insecure development secret")
		secret = "justice-play-dev-secret"
	}
	tokens, err := auth.NewJWTService(secret, config.TTLDuration(cfg.Auth.TokenTTL, 24*time.Hour))
	if err != nil {
		return err
	}

	bus := app.NewBus()
	persistTimeout := config.TTLDuration(cfg.Profile.PersistTimeout, 5*time.Second)
	profiles := app.NewProfileStore(st.profiles, cat, bus, log.Named("profiles"), persistTimeout)
	resolver := app.NewResolver(cat, defaultTier)

	server := transport.NewServer(transport.Services{
		Accounts:    app.NewAccountService(st.accounts, auth.NewBcryptHasher(), tokens, profiles, log.Named("accounts")),
		Profiles:    profiles,
		Resolver:    resolver,
		Quiz:        app.NewQuizService(st.sessions, profiles, resolver, log.Named("quiz")),
		Videos:      app.NewVideoService(cat, profiles, resolver),
		Chatbot:     app.NewDefaultChatbot(),
		Community:   app.NewCommunityFeed(st.posts, profiles),
		Leaderboard: app.NewLeaderboardService(app.SampleLeaderboard()),
		Bus:         bus,
	}, log.Named("http"))

	errCh := make(chan error, 1)
	go func() {
		if err := server.Start(":" + finalPort); err != nil && err != http.ErrServerClosed {
			errCh <- err
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)

	select {
	case <-stop:
		log.Info("shutting down server")
	case <-ctx.Done():
		log.Info("context canceled, shutting down server")
	case err := <-errCh:
		return err
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	return server.Shutdown(shutdownCtx)
}

func openStores(ctx context.Context, cfg config.Config, log *zap.Logger) (*stores, error) {
	st := &stores{
		profiles: memory.NewProfileRepository(),
		accounts: memory.NewAccountRepository(),
		posts:    memory.NewPostRepository(app.SamplePosts(time.Now())),
		sessions: memory.NewSessionStore(),
	}

	if cfg.Redis.Addr != "" {
		client := redis.NewClient(&redis.Options{
			Addr:     cfg.Redis.Addr,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
		st.closers = append(st.closers, func() { _ = client.Close() })
		quizTTL := config.TTLDuration(cfg.Quiz.TTL, config.TTLDuration(cfg.Redis.TTL, 30*time.Minute))
		st.sessions = redisstore.NewSessionStore(client, quizTTL, log.Named("sessions"))
		if cfg.Store.Backend == config.BackendRedis {
			st.profiles = redisstore.NewProfileRepository(client)
			st.accounts = redisstore.NewAccountRepository(client)
		}
	} else if cfg.Store.Backend == config.BackendRedis {
		st.close()
		return nil, fmt.Errorf("store backend redis requires redis.addr")
	}

	switch cfg.Store.Backend {
	case "", config.BackendMemory, config.BackendRedis:
		return st, nil
	case config.BackendSQLite:
		local, err := sqlite.Open(cfg.SQLite.Path)
		if err != nil {
			st.close()
			return nil, err
		}
		st.closers = append(st.closers, func() { _ = local.Close() })
		st.profiles = local
		st.accounts = sqlite.NewAccountRepository(local)
		return st, nil
	case config.BackendPostgres, config.BackendHybrid:
		remote, db, err := openPostgres(ctx, cfg, log, st)
		if err != nil {
			st.close()
			return nil, err
		}
		st.accounts = postgres.NewAccountRepository(db)
		posts := postgres.NewPostRepository(db)
		if err := posts.Seed(ctx, app.SamplePosts(time.Now())); err != nil {
			st.close()
			return nil, err
		}
		st.posts = posts
		st.profiles = remote
		if cfg.Store.Backend == config.BackendHybrid {
			local, err := sqlite.Open(cfg.SQLite.Path)
			if err != nil {
				st.close()
				return nil, err
			}
			st.closers = append(st.closers, func() { _ = local.Close() })
			st.profiles = hybrid.NewProfileRepository(local, remote, log.Named("hybrid"))
		}
		return st, nil
	}
	st.close()
	return nil, fmt.Errorf("unknown store backend %q", cfg.Store.Backend)
}

func openPostgres(ctx context.Context, cfg config.Config, log *zap.Logger, st *stores) (*postgres.ProfileRepository, *bun.DB, error) {
	if cfg.Postgres.URL == "" {
		return nil, nil, fmt.Errorf("store backend %s requires postgres.url", cfg.Store.Backend)
	}
	if err := runMigrationsWithConfig(ctx, cfg, log); err != nil {
		return nil, nil, err
	}
	pool, err := pgxpool.Connect(ctx, cfg.Postgres.URL)
	if err != nil {
		return nil, nil, err
	}
	st.closers = append(st.closers, pool.Close)
	db := postgres.OpenBun(cfg.Postgres.URL)
	st.closers = append(st.closers, func() { _ = db.Close() })
	return postgres.NewProfileRepository(pool), db, nil
}
