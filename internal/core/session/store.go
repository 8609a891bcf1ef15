// Package session owns the gateway's session state. One Store is constructed
// at process start and injected everywhere; nothing else holds session state.
package session

import (
	"context"
	"errors"
	"sync"

	"github.com/rs/zerolog"

	"github.com/buy01/storefront-gateway/internal/core/domain"
	"github.com/buy01/storefront-gateway/internal/core/ports"
)

// Store keeps the authenticated session per browser session ID. Reads are
// in-memory only; authenticated sessions are additionally mirrored so a
// restart does not log every browser out. Mirror writes are best-effort and
// never fail the caller.
type Store struct {
	mu       sync.RWMutex
	sessions map[string]domain.Session
	mirror   ports.SessionMirror
	log      zerolog.Logger
}

// NewStore creates an empty Store. mirror may be nil, in which case sessions
// live only as long as the process.
func NewStore(mirror ports.SessionMirror, log zerolog.Logger) *Store {
	return &Store{
		sessions: make(map[string]domain.Session),
		mirror:   mirror,
		log:      log,
	}
}

// Get returns the session for sid, or the anonymous session when none exists.
// It is synchronous and side-effect-free.
func (s *Store) Get(sid string) domain.Session {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.sessions[sid]
}

// Set fully replaces the session for sid. Both identity and token are
// required; a partial session is rejected before any state changes.
func (s *Store) Set(ctx context.Context, sid string, identity *domain.Identity, token string) (domain.Session, error) {
	if identity == nil || identity.ID == "" || token == "" {
		return domain.Session{}, domain.ErrPartialSession
	}

	sess := domain.Session{Identity: identity, Token: token}

	s.mu.Lock()
	s.sessions[sid] = sess
	s.mu.Unlock()

	if s.mirror != nil {
		if err := s.mirror.Save(ctx, sid, sess); err != nil {
			s.log.Warn().Err(err).Str("sid", sid).Msg("session mirror save failed")
		}
	}
	return sess, nil
}

// Clear resets the session for sid to anonymous and drops the mirrored copy.
func (s *Store) Clear(ctx context.Context, sid string) {
	s.mu.Lock()
	delete(s.sessions, sid)
	s.mu.Unlock()

	if s.mirror != nil {
		if err := s.mirror.Delete(ctx, sid); err != nil {
			s.log.Warn().Err(err).Str("sid", sid).Msg("session mirror delete failed")
		}
	}
}

// Restore returns the in-memory session for sid, falling back to the mirror
// after a process restart. A mirror hit is cached in memory.
func (s *Store) Restore(ctx context.Context, sid string) domain.Session {
	if sess := s.Get(sid); sess.Authenticated() {
		return sess
	}
	if s.mirror == nil || sid == "" {
		return domain.Session{}
	}

	sess, err := s.mirror.Load(ctx, sid)
	if err != nil {
		if !errors.Is(err, domain.ErrNoSession) {
			s.log.Warn().Err(err).Str("sid", sid).Msg("session mirror load failed")
		}
		return domain.Session{}
	}
	if !sess.Authenticated() {
		return domain.Session{}
	}

	s.mu.Lock()
	s.sessions[sid] = sess
	s.mu.Unlock()
	return sess
}
