package ports

import (
	"context"

	"github.com/buy01/storefront-gateway/internal/core/domain"
)

// CredentialExchange performs login and signup against the remote API and
// owns all session store mutations.
type CredentialExchange interface {
	// Login authenticates and, on success only, replaces the session for sid.
	Login(ctx context.Context, sid, email, password string) (domain.Session, error)
	// Signup registers an account without touching the session store.
	Signup(ctx context.Context, req domain.SignupRequest) (string, error)
	// Logout resets the session for sid to anonymous.
	Logout(ctx context.Context, sid string)
}

// SignupFlow runs the signup -> login -> avatar orchestration to one of its
// terminal stages.
type SignupFlow interface {
	Run(ctx context.Context, sid string, req domain.SignupRequest) domain.SignupOutcome
}
