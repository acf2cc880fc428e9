package http

import (
	"context"
	"net/http"

	"justice-play/internal/app"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"go.uber.org/zap"
)

// Services are the use cases exposed over HTTP.
type Services struct {
	Accounts    *app.AccountService
	Profiles    *app.ProfileStore
	Resolver    *app.Resolver
	Quiz        *app.QuizService
	Videos      *app.VideoService
	Chatbot     *app.Chatbot
	Community   *app.CommunityFeed
	Leaderboard *app.LeaderboardService
	Bus         *app.Bus
}

// Server is the REST + websocket front of the game.
type Server struct {
	echo   *echo.Echo
	logger *zap.Logger
}

func NewServer(svc Services, logger *zap.Logger) *Server {
	if logger == nil {
		logger = zap.NewNop()
	}
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.Validator = NewValidator()
	e.HTTPErrorHandler = newErrorHandler(logger)
	e.Use(middleware.Recover())
	e.Use(requestLogger(logger))

	h := &handlers{svc: svc}
	auth := newAuthMiddleware(svc.Accounts)
	ws := NewWSHandler(svc.Accounts, svc.Profiles, svc.Quiz, svc.Bus, logger)

	e.GET("/healthz", func(c echo.Context) error {
		return c.String(http.StatusOK, "ok")
	})
	e.GET("/ws", echo.WrapHandler(http.HandlerFunc(ws.ServeWS)))

	api := e.Group("/api")
	api.POST("/auth/signup", h.signUp)
	api.POST("/auth/signin", h.signIn)

	secured := api.Group("", auth.Authenticate)
	secured.POST("/auth/signout", h.signOut)
	secured.GET("/profile", h.profile)
	secured.PUT("/profile/age-tier", h.selectAgeTier)
	secured.GET("/levels", h.levels)
	secured.GET("/levels/:id/questions", h.questions)
	secured.POST("/quiz/sessions", h.startQuiz)
	secured.GET("/quiz/sessions/:id", h.getQuiz)
	secured.POST("/quiz/sessions/:id/begin", h.beginQuiz)
	secured.POST("/quiz/sessions/:id/answer", h.answerQuiz)
	secured.POST("/quiz/sessions/:id/next", h.nextQuiz)
	secured.POST("/quiz/sessions/:id/restart", h.restartQuiz)
	secured.DELETE("/quiz/sessions/:id", h.abandonQuiz)
	secured.GET("/videos", h.videos)
	secured.POST("/videos/:id/watched", h.videoWatched)
	secured.POST("/chatbot", h.chat)
	secured.GET("/community/posts", h.posts)
	secured.POST("/community/posts", h.createPost)
	secured.POST("/community/posts/:id/like", h.likePost)
	secured.GET("/leaderboard", h.leaderboard)

	return &Server{echo: e, logger: logger}
}

// Handler exposes the router for http.Server and tests.
func (s *Server) Handler() http.Handler {
	return s.echo
}

func (s *Server) Start(addr string) error {
	s.logger.Info("starting justice play service", zap.String("addr", addr))
	return s.echo.Start(addr)
}

func (s *Server) Shutdown(ctx context.Context) error {
	return s.echo.Shutdown(ctx)
}

func requestLogger(logger *zap.Logger) echo.MiddlewareFunc {
	return middleware.RequestLoggerWithConfig(middleware.RequestLoggerConfig{
		LogMethod:   true,
		LogURI:      true,
		LogStatus:   true,
		LogLatency:  true,
		LogRemoteIP: true,
		LogError:    true,
		HandleError: true,
		LogValuesFunc: func(c echo.Context, v middleware.RequestLoggerValues) error {
			fields := []zap.Field{
				zap.String("method", v.Method),
				zap.String("uri", v.URI),
				zap.Int("status", v.Status),
				zap.Duration("latency", v.Latency),
				zap.String("remote_ip", v.RemoteIP),
			}
			if v.Error != nil {
				logger.Info("request failed", append(fields, zap.Error(v.Error))...)
				return nil
			}
			logger.Debug("request", fields...)
			return nil
		},
	})
}
