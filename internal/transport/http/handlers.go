package http

import (
	"net/http"
	"strconv"

	"justice-play/internal/domain"

	"github.com/labstack/echo/v4"
)

type handlers struct {
	svc Services
}

type credentialsRequest struct {
	Name     string `json:"name" validate:"required,notblank,max=64"`
	Password string `json:"password" validate:"required,min=6,max=72"`
}

type ageTierRequest struct {
	AgeTier string `json:"ageTier" validate:"required,oneof=9-12 12-16"`
}

type startQuizRequest struct {
	LevelID int `json:"levelId" validate:"required,min=1"`
}

type answerRequest struct {
	Option *int `json:"option" validate:"required,min=0"`
}

type chatRequest struct {
	Message string `json:"message" validate:"required,max=500"`
}

type postRequest struct {
	Message string `json:"message" validate:"required,max=1000"`
}

type profileResponse struct {
	Profile              domain.UserProfile `json:"profile"`
	EffectiveTier        domain.AgeTier     `json:"effectiveTier"`
	UnlockedLevels       int                `json:"unlockedLevels"`
	TotalPointsAvailable int                `json:"totalPointsAvailable"`
}

type chatResponse struct {
	Reply string `json:"reply"`
}

// quizErrorResponse carries the session state next to the error so clients can resync.
type quizErrorResponse struct {
	errorResponse
	Session *domain.QuizSessionView `json:"session,omitempty"`
}

func bindAndValidate(c echo.Context, req any) error {
	if err := c.Bind(req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "malformed request body")
	}
	return c.Validate(req)
}

func intParam(c echo.Context, name string) (int, error) {
	v, err := strconv.Atoi(c.Param(name))
	if err != nil {
		return 0, echo.NewHTTPError(http.StatusBadRequest, "invalid "+name)
	}
	return v, nil
}

func (h *handlers) signUp(c echo.Context) error {
	var req credentialsRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}
	session, err := h.svc.Accounts.SignUp(c.Request().Context(), req.Name, req.Password)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, session)
}

func (h *handlers) signIn(c echo.Context) error {
	var req credentialsRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}
	session, err := h.svc.Accounts.SignIn(c.Request().Context(), req.Name, req.Password)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, session)
}

func (h *handlers) signOut(c echo.Context) error {
	if err := h.svc.Accounts.SignOut(c.Request().Context(), userIDFrom(c)); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}

func (h *handlers) profile(c echo.Context) error {
	profile, err := h.svc.Profiles.Profile(userIDFrom(c))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, h.profileView(profile))
}

func (h *handlers) selectAgeTier(c echo.Context) error {
	var req ageTierRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}
	tier, err := domain.ParseAgeTier(req.AgeTier)
	if err != nil {
		return err
	}
	profile, err := h.svc.Profiles.SelectAgeTier(c.Request().Context(), userIDFrom(c), tier)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, h.profileView(profile))
}

func (h *handlers) profileView(profile domain.UserProfile) profileResponse {
	return profileResponse{
		Profile:              profile,
		EffectiveTier:        h.svc.Resolver.EffectiveTier(profile),
		UnlockedLevels:       h.svc.Resolver.UnlockedLevelCount(profile),
		TotalPointsAvailable: h.svc.Resolver.TotalPointsAvailable(profile),
	}
}

func (h *handlers) levels(c echo.Context) error {
	profile, err := h.svc.Profiles.Profile(userIDFrom(c))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, h.svc.Resolver.ResolveLevels(profile))
}

// questions lists the prompts of a level. Answers are only revealed through a quiz session.
func (h *handlers) questions(c echo.Context) error {
	levelID, err := intParam(c, "id")
	if err != nil {
		return err
	}
	profile, err := h.svc.Profiles.Profile(userIDFrom(c))
	if err != nil {
		return err
	}
	questions, err := h.svc.Resolver.ResolveQuestions(levelID, profile)
	if err != nil {
		return err
	}
	views := make([]domain.QuestionView, 0, len(questions))
	for _, q := range questions {
		views = append(views, domain.QuestionView{ID: q.ID, Prompt: q.Prompt, Options: q.Options})
	}
	return c.JSON(http.StatusOK, views)
}

func (h *handlers) startQuiz(c echo.Context) error {
	var req startQuizRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}
	view, err := h.svc.Quiz.Start(c.Request().Context(), userIDFrom(c), req.LevelID)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, view)
}

func (h *handlers) getQuiz(c echo.Context) error {
	view, err := h.svc.Quiz.Get(c.Request().Context(), userIDFrom(c), c.Param("id"))
	return quizResult(c, view, err)
}

func (h *handlers) beginQuiz(c echo.Context) error {
	view, err := h.svc.Quiz.Begin(c.Request().Context(), userIDFrom(c), c.Param("id"))
	return quizResult(c, view, err)
}

func (h *handlers) answerQuiz(c echo.Context) error {
	var req answerRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}
	view, err := h.svc.Quiz.Answer(c.Request().Context(), userIDFrom(c), c.Param("id"), *req.Option)
	return quizResult(c, view, err)
}

func (h *handlers) nextQuiz(c echo.Context) error {
	view, err := h.svc.Quiz.Next(c.Request().Context(), userIDFrom(c), c.Param("id"))
	return quizResult(c, view, err)
}

func (h *handlers) restartQuiz(c echo.Context) error {
	view, err := h.svc.Quiz.Restart(c.Request().Context(), userIDFrom(c), c.Param("id"))
	return quizResult(c, view, err)
}

func (h *handlers) abandonQuiz(c echo.Context) error {
	if err := h.svc.Quiz.Abandon(c.Request().Context(), userIDFrom(c), c.Param("id")); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}

func quizResult(c echo.Context, view domain.QuizSessionView, err error) error {
	if err == nil {
		return c.JSON(http.StatusOK, view)
	}
	if view.SessionID == "" {
		return err
	}
	body := quizErrorResponse{errorResponse: errorBody(err), Session: &view}
	return c.JSON(statusFor(err), body)
}

func (h *handlers) videos(c echo.Context) error {
	videos, err := h.svc.Videos.List(userIDFrom(c))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, videos)
}

func (h *handlers) videoWatched(c echo.Context) error {
	videoID, err := intParam(c, "id")
	if err != nil {
		return err
	}
	profile, err := h.svc.Videos.Watched(c.Request().Context(), userIDFrom(c), videoID)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, h.profileView(profile))
}

func (h *handlers) chat(c echo.Context) error {
	var req chatRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}
	reply, err := h.svc.Chatbot.Reply(req.Message)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, chatResponse{Reply: reply})
}

func (h *handlers) posts(c echo.Context) error {
	limit := 0
	if raw := c.QueryParam("limit"); raw != "" {
		v, err := strconv.Atoi(raw)
		if err != nil || v < 0 {
			return echo.NewHTTPError(http.StatusBadRequest, "invalid limit")
		}
		limit = v
	}
	posts, err := h.svc.Community.List(c.Request().Context(), limit)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, h.postViews(posts, userIDFrom(c)))
}

func (h *handlers) createPost(c echo.Context) error {
	var req postRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}
	post, err := h.svc.Community.Create(c.Request().Context(), userIDFrom(c), req.Message)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, newPostView(post, userIDFrom(c)))
}

func (h *handlers) likePost(c echo.Context) error {
	post, err := h.svc.Community.ToggleLike(c.Request().Context(), userIDFrom(c), c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, newPostView(post, userIDFrom(c)))
}

type postView struct {
	domain.Post
	LikedByMe bool `json:"likedByMe"`
}

func newPostView(post domain.Post, userID string) postView {
	return postView{Post: post, LikedByMe: post.LikedByUser(userID)}
}

func (h *handlers) postViews(posts []domain.Post, userID string) []postView {
	out := make([]postView, 0, len(posts))
	for _, p := range posts {
		out = append(out, newPostView(p, userID))
	}
	return out
}

func (h *handlers) leaderboard(c echo.Context) error {
	profile, err := h.svc.Profiles.Profile(userIDFrom(c))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, h.svc.Leaderboard.For(profile))
}
