package user

import "fmt"

// Role distinguishes athletes from the business-side accounts that scout
// them. The set is closed.
type Role string

const (
	RoleAthlete     Role = "atleta"
	RoleBusinessman Role = "empresario"
)

// ParseRole rejects anything outside the closed role set.
func ParseRole(s string) (Role, error) {
	switch Role(s) {
	case RoleAthlete, RoleBusinessman:
		return Role(s), nil
	}
	return "", fmt.Errorf("invalid user role: %s", s)
}

// Principal is the authenticated caller resolved from an access token.
type Principal struct {
	ID       string
	Email    string
	Name     string
	Role     Role
	PhotoURL string
	Position string
}

func (p Principal) Validate() error {
	if p.ID == "" {
		return fmt.Errorf("principal id is required")
	}
	if p.Email == "" {
		return fmt.Errorf("principal email is required")
	}
	return nil
}
