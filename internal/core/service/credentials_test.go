package service

import (
	"context"
	"errors"
	"testing"

	"github.com/rs/zerolog"

	"github.com/buy01/storefront-gateway/internal/core/domain"
	"github.com/buy01/storefront-gateway/internal/core/session"
)

type stubAuthAPI struct {
	loginFn  func(ctx context.Context, email, password string) (*domain.Identity, string, error)
	signupFn func(ctx context.Context, req domain.SignupRequest) (string, error)

	loginCalls  int
	signupCalls int
}

func (s *stubAuthAPI) Login(ctx context.Context, email, password string) (*domain.Identity, string, error) {
	s.loginCalls++
	return s.loginFn(ctx, email, password)
}

func (s *stubAuthAPI) Signup(ctx context.Context, req domain.SignupRequest) (string, error) {
	s.signupCalls++
	return s.signupFn(ctx, req)
}

func clientIdentity(id string) *domain.Identity {
	return &domain.Identity{ID: id, Email: id + "@example.com", Role: domain.RoleClient}
}

func TestCredentialExchange_Login_Success(t *testing.T) {
	api := &stubAuthAPI{
		loginFn: func(_ context.Context, email, password string) (*domain.Identity, string, error) {
			if email != "u1@example.com" || password != "secret" {
				t.Fatalf("unexpected credentials: %s %s", email, password)
			}
			return clientIdentity("u1"), "tok1", nil
		},
	}
	store := session.NewStore(nil, zerolog.Nop())
	creds := NewCredentialExchange(api, store, zerolog.Nop())

	sess, err := creds.Login(context.Background(), "sid1", "u1@example.com", "secret")
	if err != nil {
		t.Fatalf("Login returned error: %v", err)
	}
	if !sess.Authenticated() || sess.Identity.ID != "u1" || sess.Token != "tok1" {
		t.Fatalf("unexpected session: %+v", sess)
	}

	// Anonymous -> authenticated in one step, visible through the store.
	if got := store.Get("sid1"); !got.Authenticated() || got.Identity.ID != "u1" {
		t.Fatalf("store not updated: %+v", got)
	}
}

func TestCredentialExchange_Login_FailureLeavesStoreUntouched(t *testing.T) {
	api := &stubAuthAPI{
		loginFn: func(context.Context, string, string) (*domain.Identity, string, error) {
			return nil, "", domain.ErrInvalidCredentials
		},
	}
	store := session.NewStore(nil, zerolog.Nop())
	creds := NewCredentialExchange(api, store, zerolog.Nop())

	_, err := creds.Login(context.Background(), "sid1", "u1@example.com", "bad")
	if !errors.Is(err, domain.ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials, got %v", err)
	}
	if store.Get("sid1").Authenticated() {
		t.Fatalf("store must stay anonymous after failed login")
	}
}

func TestCredentialExchange_Login_IncompletePayloadIsServerError(t *testing.T) {
	api := &stubAuthAPI{
		loginFn: func(context.Context, string, string) (*domain.Identity, string, error) {
			return clientIdentity("u1"), "", nil // identity without token
		},
	}
	store := session.NewStore(nil, zerolog.Nop())
	creds := NewCredentialExchange(api, store, zerolog.Nop())

	_, err := creds.Login(context.Background(), "sid1", "u1@example.com", "secret")
	if !errors.Is(err, domain.ErrServer) {
		t.Fatalf("expected ErrServer, got %v", err)
	}
	if store.Get("sid1").Authenticated() {
		t.Fatalf("store must never hold a partial session")
	}
}

func TestCredentialExchange_Signup_DoesNotTouchStore(t *testing.T) {
	api := &stubAuthAPI{
		signupFn: func(_ context.Context, req domain.SignupRequest) (string, error) {
			if req.Email != "new@example.com" {
				t.Fatalf("unexpected email: %s", req.Email)
			}
			return "u9", nil
		},
	}
	store := session.NewStore(nil, zerolog.Nop())
	creds := NewCredentialExchange(api, store, zerolog.Nop())

	userID, err := creds.Signup(context.Background(), domain.SignupRequest{Email: "new@example.com"})
	if err != nil {
		t.Fatalf("Signup returned error: %v", err)
	}
	if userID != "u9" {
		t.Fatalf("expected user id u9, got %s", userID)
	}
	if store.Get("sid1").Authenticated() {
		t.Fatalf("signup must not establish a session")
	}
}

func TestCredentialExchange_Signup_Conflict(t *testing.T) {
	api := &stubAuthAPI{
		signupFn: func(context.Context, domain.SignupRequest) (string, error) {
			return "", domain.ErrConflict
		},
	}
	creds := NewCredentialExchange(api, session.NewStore(nil, zerolog.Nop()), zerolog.Nop())

	if _, err := creds.Signup(context.Background(), domain.SignupRequest{}); !errors.Is(err, domain.ErrConflict) {
		t.Fatalf("expected ErrConflict, got %v", err)
	}
}

func TestCredentialExchange_Logout(t *testing.T) {
	api := &stubAuthAPI{
		loginFn: func(context.Context, string, string) (*domain.Identity, string, error) {
			return clientIdentity("u1"), "tok1", nil
		},
	}
	store := session.NewStore(nil, zerolog.Nop())
	creds := NewCredentialExchange(api, store, zerolog.Nop())

	_, _ = creds.Login(context.Background(), "sid1", "u1@example.com", "secret")
	creds.Logout(context.Background(), "sid1")

	if store.Get("sid1").Authenticated() {
		t.Fatalf("expected anonymous session after logout")
	}
}
