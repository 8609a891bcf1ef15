package session

import (
	"context"
	"testing"

	"github.com/rs/zerolog"

	"github.com/buy01/storefront-gateway/internal/core/domain"
)

type stubMirror struct {
	saved   map[string]domain.Session
	deleted []string
	loadErr error
}

func newStubMirror() *stubMirror {
	return &stubMirror{saved: make(map[string]domain.Session)}
}

func (m *stubMirror) Save(_ context.Context, sid string, sess domain.Session) error {
	m.saved[sid] = sess
	return nil
}

func (m *stubMirror) Load(_ context.Context, sid string) (domain.Session, error) {
	if m.loadErr != nil {
		return domain.Session{}, m.loadErr
	}
	sess, ok := m.saved[sid]
	if !ok {
		return domain.Session{}, domain.ErrNoSession
	}
	return sess, nil
}

func (m *stubMirror) Delete(_ context.Context, sid string) error {
	delete(m.saved, sid)
	m.deleted = append(m.deleted, sid)
	return nil
}

func identity(id string, role domain.Role) *domain.Identity {
	return &domain.Identity{ID: id, Email: id + "@example.com", Role: role}
}

func TestStore_GetUnknownIsAnonymous(t *testing.T) {
	store := NewStore(nil, zerolog.Nop())

	sess := store.Get("missing")
	if sess.Authenticated() {
		t.Fatalf("expected anonymous session, got %+v", sess)
	}
	if sess.Identity != nil || sess.Token != "" {
		t.Fatalf("anonymous session partially populated: %+v", sess)
	}
}

func TestStore_SetThenGet(t *testing.T) {
	mirror := newStubMirror()
	store := NewStore(mirror, zerolog.Nop())

	sess, err := store.Set(context.Background(), "sid1", identity("u1", domain.RoleClient), "tok1")
	if err != nil {
		t.Fatalf("Set returned error: %v", err)
	}
	if !sess.Authenticated() {
		t.Fatalf("expected authenticated session")
	}

	got := store.Get("sid1")
	if got.Identity == nil || got.Identity.ID != "u1" || got.Token != "tok1" {
		t.Fatalf("unexpected session: %+v", got)
	}
	if _, ok := mirror.saved["sid1"]; !ok {
		t.Fatalf("expected session mirrored")
	}
}

func TestStore_SetRejectsPartialSession(t *testing.T) {
	store := NewStore(nil, zerolog.Nop())

	if _, err := store.Set(context.Background(), "sid1", identity("u1", domain.RoleClient), ""); err != domain.ErrPartialSession {
		t.Fatalf("expected ErrPartialSession for missing token, got %v", err)
	}
	if _, err := store.Set(context.Background(), "sid1", nil, "tok"); err != domain.ErrPartialSession {
		t.Fatalf("expected ErrPartialSession for missing identity, got %v", err)
	}
	if store.Get("sid1").Authenticated() {
		t.Fatalf("rejected Set must not mutate the store")
	}
}

func TestStore_SetReplacesWholeSession(t *testing.T) {
	store := NewStore(nil, zerolog.Nop())

	_, _ = store.Set(context.Background(), "sid1", identity("u1", domain.RoleClient), "tok1")
	_, _ = store.Set(context.Background(), "sid1", identity("u2", domain.RoleSeller), "tok2")

	got := store.Get("sid1")
	if got.Identity.ID != "u2" || got.Identity.Role != domain.RoleSeller || got.Token != "tok2" {
		t.Fatalf("expected full replacement, got %+v", got)
	}
}

func TestStore_Clear(t *testing.T) {
	mirror := newStubMirror()
	store := NewStore(mirror, zerolog.Nop())

	_, _ = store.Set(context.Background(), "sid1", identity("u1", domain.RoleClient), "tok1")
	store.Clear(context.Background(), "sid1")

	if store.Get("sid1").Authenticated() {
		t.Fatalf("expected anonymous session after Clear")
	}
	if len(mirror.deleted) != 1 || mirror.deleted[0] != "sid1" {
		t.Fatalf("expected mirror delete for sid1, got %v", mirror.deleted)
	}
}

func TestStore_RestoreFromMirror(t *testing.T) {
	mirror := newStubMirror()
	mirror.saved["sid1"] = domain.Session{Identity: identity("u1", domain.RoleSeller), Token: "tok1"}

	store := NewStore(mirror, zerolog.Nop())

	sess := store.Restore(context.Background(), "sid1")
	if !sess.Authenticated() || sess.Identity.ID != "u1" {
		t.Fatalf("expected restored session, got %+v", sess)
	}

	// Restored session is now served from memory.
	if got := store.Get("sid1"); !got.Authenticated() {
		t.Fatalf("expected restored session cached in memory")
	}
}

func TestStore_RestoreMissOrErrorStaysAnonymous(t *testing.T) {
	mirror := newStubMirror()
	store := NewStore(mirror, zerolog.Nop())

	if sess := store.Restore(context.Background(), "unknown"); sess.Authenticated() {
		t.Fatalf("expected anonymous on mirror miss")
	}

	mirror.loadErr = domain.ErrNetwork
	if sess := store.Restore(context.Background(), "unknown"); sess.Authenticated() {
		t.Fatalf("expected anonymous on mirror failure")
	}
}
