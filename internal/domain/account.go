package domain

// Role is the closed set of account roles. Authorization decisions compare
// roles, never raw strings from the outside.
type Role string

const (
	RoleAdmin  Role = "admin"
	RoleArtist Role = "artist"
	RoleBuyer  Role = "buyer"
)

// Valid reports whether the role is one of the known values.
func (r Role) Valid() bool {
	switch r {
	case RoleAdmin, RoleArtist, RoleBuyer:
		return true
	}
	return false
}

// Account is a registered user from the bundled fixture. Accounts are never
// created, mutated or deleted at runtime; the fixture is the whole universe.
type Account struct {
	ID       int64  `json:"id"`
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"` // fixture plaintext, compared as-is
	Role     Role   `json:"role"`
	Avatar   string `json:"avatar"`
	Bio      string `json:"bio,omitempty"`
}
