package domain

// Role is the closed set of authenticated actor roles. Anonymous is the
// absence of a Session, never a role value.
type Role string

const (
	RoleCustomer Role = "customer"
	RoleAdmin    Role = "admin"

	// RoleAnonymous is a presentation value only: it is what CurrentRole
	// reports when no Session exists, never a value held by a Session.
	RoleAnonymous Role = "anonymous"
)

// Valid reports whether r is one of the known roles.
func (r Role) Valid() bool {
	return r == RoleCustomer || r == RoleAdmin
}

// Session is the client's current belief about who is logged in. At most one
// exists per process; it is derived entirely from the held credential.
type Session struct {
	Credential string `json:"-"`
	Identity   string `json:"identity"`
	Role       Role   `json:"role"`
}
