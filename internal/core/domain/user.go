package domain

// Role is the display role of an authenticated principal. The set is closed
// and there is no hierarchy: a role requirement is satisfied only by an
// exact match.
type Role string

const (
	RoleClient Role = "CLIENT"
	RoleSeller Role = "SELLER"
)

// Valid reports whether r is one of the known roles.
func (r Role) Valid() bool {
	return r == RoleClient || r == RoleSeller
}

// Identity is the authenticated principal as returned by the remote user
// service. It is held in memory for the lifetime of the session and destroyed
// on logout.
type Identity struct {
	ID        string `json:"id"`
	Firstname string `json:"firstname,omitempty"`
	Lastname  string `json:"lastname,omitempty"`
	Email     string `json:"email"`
	Role      Role   `json:"role"`
	AvatarID  string `json:"avatar_id,omitempty"`
}

// Session pairs an optional Identity with the opaque access token issued by
// the remote auth endpoint. Invariant: both fields are set (authenticated) or
// neither is (anonymous), never one without the other.
type Session struct {
	Identity *Identity `json:"identity,omitempty"`
	Token    string    `json:"token,omitempty"`
}

// Authenticated reports whether the session carries both identity and token.
func (s Session) Authenticated() bool {
	return s.Identity != nil && s.Token != ""
}
