package authorization

// UserRole is one of the three privilege tiers. Roles form a strict total
// order: viewer < technician < admin.
type UserRole string

const (
	RoleViewer     UserRole = "viewer"
	RoleTechnician UserRole = "technician"
	RoleAdmin      UserRole = "admin"
)

var roleRanks = map[UserRole]int{
	RoleViewer:     1,
	RoleTechnician: 2,
	RoleAdmin:      3,
}

func (r UserRole) String() string {
	return string(r)
}

func (r UserRole) IsValid() bool {
	_, ok := roleRanks[r]
	return ok
}

func (r UserRole) IsAdmin() bool {
	return r == RoleAdmin
}

func (r UserRole) IsTechnician() bool {
	return r == RoleTechnician
}

func (r UserRole) IsViewer() bool {
	return r == RoleViewer
}

// Rank returns the privilege rank of the role. Unknown roles rank 0,
// below every valid role.
func (r UserRole) Rank() int {
	return roleRanks[r]
}

// HasMinimumRole reports whether actual carries at least the privilege
// of required.
func HasMinimumRole(actual, required UserRole) bool {
	return actual.Rank() >= required.Rank()
}

func ParseUserRole(s string) (UserRole, bool) {
	role := UserRole(s)
	return role, role.IsValid()
}
