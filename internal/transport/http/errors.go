package http

import (
	"errors"
	"fmt"
	"net/http"
	"strings"

	"justice-play/internal/domain"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
)

type errorResponse struct {
	Error   string `json:"error"`
	Details string `json:"details,omitempty"`
}

// statusFor maps domain errors to HTTP statuses. The persistence check comes first because a
// persistence failure wraps its cause.
func statusFor(err error) int {
	switch {
	case errors.Is(err, domain.ErrPersistenceFailure):
		return http.StatusServiceUnavailable
	case errors.Is(err, domain.ErrInvalidAmount),
		errors.Is(err, domain.ErrInvalidTier),
		errors.Is(err, domain.ErrEmptyMessage),
		errors.Is(err, domain.ErrOptionNotFound):
		return http.StatusBadRequest
	case errors.Is(err, domain.ErrNotAuthenticated),
		errors.Is(err, domain.ErrInvalidCredentials):
		return http.StatusUnauthorized
	case errors.Is(err, domain.ErrLevelLocked):
		return http.StatusForbidden
	case errors.Is(err, domain.ErrUnknownLevel),
		errors.Is(err, domain.ErrSessionNotFound),
		errors.Is(err, domain.ErrUnknownVideo),
		errors.Is(err, domain.ErrPostNotFound),
		errors.Is(err, domain.ErrProfileNotFound):
		return http.StatusNotFound
	case errors.Is(err, domain.ErrAccountExists),
		errors.Is(err, domain.ErrInvalidPhase):
		return http.StatusConflict
	}
	return http.StatusInternalServerError
}

// errorBody renders err for clients. Persistence failures only carry the user-facing notice.
func errorBody(err error) errorResponse {
	if errors.Is(err, domain.ErrPersistenceFailure) {
		return errorResponse{Error: domain.ErrPersistenceFailure.Error()}
	}
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) {
		fields := make([]string, 0, len(verrs))
		for _, fe := range verrs {
			fields = append(fields, fmt.Sprintf("%s failed %s", fe.Field(), fe.Tag()))
		}
		return errorResponse{Error: "invalid request", Details: strings.Join(fields, "; ")}
	}
	return errorResponse{Error: err.Error()}
}

func newErrorHandler(logger *zap.Logger) echo.HTTPErrorHandler {
	return func(err error, c echo.Context) {
		if c.Response().Committed {
			return
		}

		var httpErr *echo.HTTPError
		if errors.As(err, &httpErr) {
			_ = c.JSON(httpErr.Code, errorResponse{Error: fmt.Sprint(httpErr.Message)})
			return
		}
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) {
			_ = c.JSON(http.StatusBadRequest, errorBody(err))
			return
		}

		status := statusFor(err)
		if status == http.StatusInternalServerError {
			logger.Error("unhandled error",
				zap.String("method", c.Request().Method),
				zap.String("path", c.Request().URL.Path),
				zap.Error(err),
			)
			_ = c.JSON(status, errorResponse{Error: http.StatusText(status)})
			return
		}
		_ = c.JSON(status, errorBody(err))
	}
}
