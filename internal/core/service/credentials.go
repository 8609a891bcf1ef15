package service

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/buy01/storefront-gateway/internal/core/domain"
	"github.com/buy01/storefront-gateway/internal/core/ports"
	"github.com/buy01/storefront-gateway/internal/core/session"
)

// CredentialExchange implements login and signup against the remote auth
// endpoint. It is the only writer of the session store: a failed call leaves
// the store exactly as it was.
type CredentialExchange struct {
	api   ports.AuthAPI
	store *session.Store
	log   zerolog.Logger
}

func NewCredentialExchange(api ports.AuthAPI, store *session.Store, log zerolog.Logger) *CredentialExchange {
	return &CredentialExchange{api: api, store: store, log: log}
}

// Login exchanges credentials for a session. On success the session for sid
// moves from anonymous to authenticated in one step; on any failure the store
// is untouched and the classified error is returned.
func (c *CredentialExchange) Login(ctx context.Context, sid, email, password string) (domain.Session, error) {
	identity, token, err := c.api.Login(ctx, email, password)
	if err != nil {
		return domain.Session{}, err
	}

	sess, err := c.store.Set(ctx, sid, identity, token)
	if err != nil {
		// The remote endpoint answered with an incomplete payload; treat it
		// as a server fault rather than admit a half-populated session.
		c.log.Error().Err(err).Str("email", email).Msg("login returned incomplete session")
		return domain.Session{}, domain.ErrServer
	}

	c.log.Info().Str("user_id", identity.ID).Str("role", string(identity.Role)).Msg("login succeeded")
	return sess, nil
}

// Signup registers a new account and returns its user ID. The session store
// is never touched here; establishing a session is a separate login call.
func (c *CredentialExchange) Signup(ctx context.Context, req domain.SignupRequest) (string, error) {
	userID, err := c.api.Signup(ctx, req)
	if err != nil {
		return "", err
	}

	c.log.Info().Str("user_id", userID).Msg("account registered")
	return userID, nil
}

// Logout resets the session for sid to anonymous. Because outgoing upstream
// calls read the token from the request context, clearing the store also
// stops the transport from attaching it.
func (c *CredentialExchange) Logout(ctx context.Context, sid string) {
	c.store.Clear(ctx, sid)
	c.log.Info().Str("sid", sid).Msg("session cleared")
}
