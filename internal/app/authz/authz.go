// Package authz decides whether a principal may perform privileged
// actions and carries the structured denial shown on the 403 page.
package authz

import "cafe_backend/internal/feature/auth/domain/entity"

// Forbidden is a structured denial. The error page renders Title and
// Description directly; nothing is derived by slicing an error string.
type Forbidden struct {
	Title       string
	Description string
}

// Error implements the error interface.
func (f *Forbidden) Error() string {
	return f.Title + ": " + f.Description
}

// CanDelete reports whether the principal may delete a café. It returns
// nil when allowed, otherwise a Forbidden describing why not.
// Deletion is reserved for the admin role.
func CanDelete(p entity.Principal) *Forbidden {
	if !p.Authenticated {
		return &Forbidden{
			Title:       "Forbidden",
			Description: "You need to sign in as the site administrator to delete a café.",
		}
	}
	if p.Role != entity.RoleAdmin {
		return &Forbidden{
			Title:       "Forbidden",
			Description: "Only the site administrator can delete a café.",
		}
	}
	return nil
}
