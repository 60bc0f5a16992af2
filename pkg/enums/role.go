package enums

// Role is the actor role carried in the session token's "rol" claim.
type Role string

const (
	RoleCliente    Role = "cliente"
	RoleAdmin      Role = "admin"
	RoleSuperAdmin Role = "superadmin"
)

var validRoles = []Role{
	RoleCliente,
	RoleAdmin,
	RoleSuperAdmin,
}

// String implements fmt.Stringer.
func (r Role) String() string {
	return string(r)
}

// IsValid reports whether the value is a known Role.
func (r Role) IsValid() bool {
	for _, candidate := range validRoles {
		if candidate == r {
			return true
		}
	}
	return false
}

// Home returns the landing path for the role, used when a guard bounces
// an authenticated actor off a view belonging to another role.
func (r Role) Home() string {
	switch r {
	case RoleAdmin:
		return "/admin"
	case RoleSuperAdmin:
		return "/superadmin"
	default:
		return "/"
	}
}
