package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/buy01/storefront-gateway/internal/core/authctx"
	"github.com/buy01/storefront-gateway/internal/core/domain"
	"github.com/buy01/storefront-gateway/internal/core/session"
)

const testCookie = "buy01_sid"

func TestLoadSession_NoCookieIsAnonymous(t *testing.T) {
	store := session.NewStore(nil, zerolog.Nop())
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	handler := LoadSession(store, testCookie)(func(c echo.Context) error {
		if SessionFromContext(c).Authenticated() {
			t.Fatalf("expected anonymous session")
		}
		if SIDFromContext(c) != "" {
			t.Fatalf("expected empty sid")
		}
		if authctx.Token(c.Request().Context()) != "" {
			t.Fatalf("anonymous request must not carry a token")
		}
		return nil
	})
	if err := handler(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
}

func TestLoadSession_KnownCookieInjectsSessionAndToken(t *testing.T) {
	store := session.NewStore(nil, zerolog.Nop())
	_, err := store.Set(context.Background(), "sid1", &domain.Identity{ID: "u1", Role: domain.RoleClient}, "tok1")
	if err != nil {
		t.Fatalf("seed session: %v", err)
	}

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.AddCookie(&http.Cookie{Name: testCookie, Value: "sid1"})
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	handler := LoadSession(store, testCookie)(func(c echo.Context) error {
		sess := SessionFromContext(c)
		if !sess.Authenticated() || sess.Identity.ID != "u1" {
			t.Fatalf("unexpected session: %+v", sess)
		}
		if SIDFromContext(c) != "sid1" {
			t.Fatalf("unexpected sid: %s", SIDFromContext(c))
		}
		if authctx.Token(c.Request().Context()) != "tok1" {
			t.Fatalf("token not propagated to request context")
		}
		return nil
	})
	if err := handler(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
}

func TestLoadSession_UnknownCookieStaysAnonymous(t *testing.T) {
	store := session.NewStore(nil, zerolog.Nop())
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.AddCookie(&http.Cookie{Name: testCookie, Value: "ghost"})
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	handler := LoadSession(store, testCookie)(func(c echo.Context) error {
		if SessionFromContext(c).Authenticated() {
			t.Fatalf("unknown sid must stay anonymous")
		}
		return nil
	})
	if err := handler(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
}
