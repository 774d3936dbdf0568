package authorization

import "strings"

// UserRole is the casbin subject a user's requests are checked as.
type UserRole string

const (
	RoleCustomer UserRole = "customer"
	RoleAdmin    UserRole = "admin"
)

// AnyMethod matches every verb the router registers.
const AnyMethod = "(GET)|(POST)|(PUT)|(PATCH)|(DELETE)"

// Grant is one casbin policy row.
type Grant struct {
	Role     UserRole
	Resource string
	Methods  string
}

// defaultGrants only covers routes behind the authorize middleware.
// Customer routes are gated by authentication alone.
var defaultGrants = []Grant{
	{Role: RoleAdmin, Resource: "/api/admin/*", Methods: AnyMethod},
}

// DefaultGrants returns a copy of the policies seeded on startup.
func DefaultGrants() []Grant {
	out := make([]Grant, len(defaultGrants))
	copy(out, defaultGrants)
	return out
}

// ParseUserRole is case-insensitive and treats anything it does not know as
// a customer, so a bad row never escalates privileges.
func ParseUserRole(s string) UserRole {
	if UserRole(strings.ToLower(strings.TrimSpace(s))) == RoleAdmin {
		return RoleAdmin
	}
	return RoleCustomer
}

func (r UserRole) String() string {
	return string(r)
}

func (r UserRole) IsAdmin() bool {
	return r == RoleAdmin
}
