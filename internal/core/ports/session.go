package ports

import (
	"context"

	"github.com/buy01/storefront-gateway/internal/core/domain"
)

// SessionMirror durably mirrors authenticated sessions so a gateway restart
// does not silently de-authenticate browsers. Record lifetime is derived from
// the mirrored token by the implementation. Load returns domain.ErrNoSession
// when no record exists.
type SessionMirror interface {
	Save(ctx context.Context, sid string, sess domain.Session) error
	Load(ctx context.Context, sid string) (domain.Session, error)
	Delete(ctx context.Context, sid string) error
}
