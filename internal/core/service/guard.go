package service

import "github.com/buy01/storefront-gateway/internal/core/domain"

// LoginPath is the entry point denied navigations are redirected to. Wrong
// role and no session deliberately share it; there is no separate forbidden
// destination.
const LoginPath = "/login"

// Decision is the result of an access evaluation. Exactly one of Admit or
// RedirectTo is meaningful.
type Decision struct {
	Admit      bool
	RedirectTo string
}

// EvaluateAccess decides whether a session may enter a destination requiring
// the given role. It is pure, with no I/O and no side effects; the redirect
// itself is performed by the navigation adapter.
func EvaluateAccess(sess domain.Session, required domain.Role) Decision {
	if !sess.Authenticated() {
		return Decision{RedirectTo: LoginPath}
	}
	if sess.Identity.Role != required {
		return Decision{RedirectTo: LoginPath}
	}
	return Decision{Admit: true}
}
