package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/redis/go-redis/v9"

	"github.com/buy01/storefront-gateway/internal/core/domain"
)

const defaultSessionTTL = 24 * time.Hour

// SessionMirror persists authenticated sessions in Redis so a gateway restart
// does not de-authenticate browsers. Key format: session:<sid>
//
// Record lifetime follows the access token: the exp claim is read without
// verifying the signature (the signing secret lives in the remote auth
// service; the gateway only needs the expiry).
type SessionMirror struct {
	client *redis.Client
}

// NewSessionMirror creates a SessionMirror wrapping the given Redis client.
func NewSessionMirror(client *redis.Client) *SessionMirror {
	return &SessionMirror{client: client}
}

func (m *SessionMirror) Save(ctx context.Context, sid string, sess domain.Session) error {
	if !sess.Authenticated() {
		return domain.ErrPartialSession
	}

	data, err := json.Marshal(sess)
	if err != nil {
		return fmt.Errorf("marshal session: %w", err)
	}
	return m.client.Set(ctx, m.key(sid), data, tokenTTL(sess.Token)).Err()
}

func (m *SessionMirror) Load(ctx context.Context, sid string) (domain.Session, error) {
	data, err := m.client.Get(ctx, m.key(sid)).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return domain.Session{}, domain.ErrNoSession
		}
		return domain.Session{}, fmt.Errorf("session load: %w", err)
	}

	var sess domain.Session
	if err := json.Unmarshal([]byte(data), &sess); err != nil {
		return domain.Session{}, fmt.Errorf("unmarshal session: %w", err)
	}
	return sess, nil
}

func (m *SessionMirror) Delete(ctx context.Context, sid string) error {
	return m.client.Del(ctx, m.key(sid)).Err()
}

func (m *SessionMirror) key(sid string) string {
	return "session:" + sid
}

// tokenTTL derives the mirror record lifetime from the token's exp claim,
// falling back to defaultSessionTTL for tokens without one.
func tokenTTL(token string) time.Duration {
	claims := jwt.MapClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(token, claims); err != nil {
		return defaultSessionTTL
	}
	exp, err := claims.GetExpirationTime()
	if err != nil || exp == nil {
		return defaultSessionTTL
	}
	ttl := time.Until(exp.Time)
	if ttl <= 0 {
		return time.Minute
	}
	return ttl
}
