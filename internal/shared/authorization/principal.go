package authorization

// Principal is the authenticated actor for one request: role plus
// organizational assignment. Immutable for the duration of the request.
type Principal struct {
	UserID   uint
	Username string
	Role     UserRole
	Command  string
	Unit     string
}

func (p Principal) IsAdmin() bool {
	return p.Role.IsAdmin()
}
