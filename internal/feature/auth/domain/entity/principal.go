package entity

// Principal is the identity attached to a request after session
// resolution: either an authenticated user or the anonymous zero value.
type Principal struct {
	UserID        uint
	Name          string
	Role          Role
	Authenticated bool
}

// Anonymous returns the principal for an unauthenticated request.
func Anonymous() Principal {
	return Principal{}
}

// PrincipalFor builds the principal for an authenticated user.
func PrincipalFor(u *User) Principal {
	return Principal{
		UserID:        u.ID,
		Name:          u.Name,
		Role:          u.Role,
		Authenticated: true,
	}
}
