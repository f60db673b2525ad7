package users

import "strings"

// Role is a bitmask of independently grantable capabilities. A principal
// may hold any combination of bits; no bit implies another. The raw integer
// form only appears at the API boundary.
type Role int

const (
	RoleUser      Role = 1 << iota // regular shopper
	RoleAdmin                      // user, catalogue and homepage management
	RoleTechnical                  // design review and pricing
	RoleSupport                    // support ticket handling
)

// RoleNone is the sentinel for an unauthenticated principal.
const RoleNone Role = 0

// Has reports whether the mask contains the given capability bit.
func (r Role) Has(bit Role) bool {
	return r&bit != 0
}

// String returns the space-separated names of the set bits, for logging.
func (r Role) String() string {
	names := []struct {
		bit  Role
		name string
	}{
		{RoleUser, "USER"},
		{RoleAdmin, "ADMIN"},
		{RoleTechnical, "TECHNICAL"},
		{RoleSupport, "SUPPORT"},
	}

	var sb strings.Builder
	for _, n := range names {
		if r.Has(n.bit) {
			if sb.Len() > 0 {
				sb.WriteByte(' ')
			}
			sb.WriteString(n.name)
		}
	}
	return sb.String()
}
