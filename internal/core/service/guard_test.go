package service

import (
	"testing"

	"github.com/buy01/storefront-gateway/internal/core/domain"
)

func sessionWithRole(role domain.Role) domain.Session {
	return domain.Session{
		Identity: &domain.Identity{ID: "u1", Email: "u1@example.com", Role: role},
		Token:    "tok",
	}
}

func TestEvaluateAccess_AnonymousDeniedForEveryRole(t *testing.T) {
	for _, required := range []domain.Role{domain.RoleClient, domain.RoleSeller} {
		d := EvaluateAccess(domain.Session{}, required)
		if d.Admit {
			t.Fatalf("anonymous session admitted for %s", required)
		}
		if d.RedirectTo != LoginPath {
			t.Fatalf("expected redirect to %s, got %s", LoginPath, d.RedirectTo)
		}
	}
}

func TestEvaluateAccess_WrongRoleDenied(t *testing.T) {
	cases := []struct {
		have, want domain.Role
	}{
		{domain.RoleClient, domain.RoleSeller},
		{domain.RoleSeller, domain.RoleClient},
	}
	for _, tc := range cases {
		d := EvaluateAccess(sessionWithRole(tc.have), tc.want)
		if d.Admit {
			t.Fatalf("role %s admitted where %s is required", tc.have, tc.want)
		}
		// Wrong role redirects to login, same as no session.
		if d.RedirectTo != LoginPath {
			t.Fatalf("expected redirect to %s, got %s", LoginPath, d.RedirectTo)
		}
	}
}

func TestEvaluateAccess_ExactRoleAdmitted(t *testing.T) {
	for _, role := range []domain.Role{domain.RoleClient, domain.RoleSeller} {
		d := EvaluateAccess(sessionWithRole(role), role)
		if !d.Admit {
			t.Fatalf("role %s not admitted for itself", role)
		}
		if d.RedirectTo != "" {
			t.Fatalf("admit decision must not carry a redirect, got %s", d.RedirectTo)
		}
	}
}

func TestEvaluateAccess_PartialSessionDenied(t *testing.T) {
	// A session with a token but no identity (or vice versa) must behave as
	// anonymous even though the store should never produce one.
	tokenOnly := domain.Session{Token: "tok"}
	identityOnly := domain.Session{Identity: &domain.Identity{ID: "u1", Role: domain.RoleClient}}

	if EvaluateAccess(tokenOnly, domain.RoleClient).Admit {
		t.Fatalf("token-only session admitted")
	}
	if EvaluateAccess(identityOnly, domain.RoleClient).Admit {
		t.Fatalf("identity-only session admitted")
	}
}
