package http

import (
	"strings"

	"justice-play/internal/app"
	"justice-play/internal/domain"

	"github.com/labstack/echo/v4"
)

const contextUserID = "userID"

type authMiddleware struct {
	accounts *app.AccountService
}

func newAuthMiddleware(accounts *app.AccountService) *authMiddleware {
	return &authMiddleware{accounts: accounts}
}

// Authenticate requires a Bearer token of a user with an open session.
func (m *authMiddleware) Authenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		header := c.Request().Header.Get(echo.HeaderAuthorization)
		token := strings.TrimPrefix(header, "Bearer ")
		if header == "" || token == header {
			return domain.ErrNotAuthenticated
		}
		userID, err := m.accounts.Authenticate(token)
		if err != nil {
			return err
		}
		c.Set(contextUserID, userID)
		return next(c)
	}
}

func userIDFrom(c echo.Context) string {
	id, _ := c.Get(contextUserID).(string)
	return id
}
