package middleware

import (
	"github.com/labstack/echo/v4"

	"github.com/buy01/storefront-gateway/internal/core/authctx"
	"github.com/buy01/storefront-gateway/internal/core/domain"
	"github.com/buy01/storefront-gateway/internal/core/session"
)

// Context keys used by the session middleware and read by the guard and
// handlers.
const (
	CtxSession = "session"
	CtxSID     = "sid"
)

// LoadSession resolves the browser's session cookie against the store and
// injects the result into the echo context. Authenticated sessions also put
// their token on the request context so upstream calls attach it.
//
// Anonymous requests pass through untouched; admission is the guard's job.
func LoadSession(store *session.Store, cookieName string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			sess := domain.Session{}
			sid := ""

			if cookie, err := c.Cookie(cookieName); err == nil && cookie.Value != "" {
				sid = cookie.Value
				sess = store.Restore(c.Request().Context(), sid)
			}

			c.Set(CtxSID, sid)
			c.Set(CtxSession, sess)

			if sess.Authenticated() {
				req := c.Request()
				c.SetRequest(req.WithContext(authctx.WithToken(req.Context(), sess.Token)))
			}
			return next(c)
		}
	}
}

// SessionFromContext returns the session injected by LoadSession, or the
// anonymous session when the middleware did not run.
func SessionFromContext(c echo.Context) domain.Session {
	sess, _ := c.Get(CtxSession).(domain.Session)
	return sess
}

// SIDFromContext returns the browser session ID, or "" when none exists yet.
func SIDFromContext(c echo.Context) string {
	sid, _ := c.Get(CtxSID).(string)
	return sid
}
