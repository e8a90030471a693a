package domain

import (
	"errors"
	"fmt"
	"strings"
)

// Operator is a person using the dashboard or CLI. Sync triggers and
// webhooks are authenticated by shared secrets and never carry one.
type Operator struct {
	ID    string
	Email string
	Role  Role
}

// Role is an operator's access level. Each role includes the ones below it.
type Role string

const (
	RoleViewer   Role = "viewer"   // read accounts, events, diagnostics
	RoleOperator Role = "operator" // trigger syncs
	RoleAdmin    Role = "admin"    // repair and reactivate accounts
)

var roleRank = map[Role]int{
	RoleViewer:   1,
	RoleOperator: 2,
	RoleAdmin:    3,
}

// ParseRole accepts a role name in any case.
func ParseRole(s string) (Role, error) {
	r := Role(strings.ToLower(strings.TrimSpace(s)))
	if !r.IsValid() {
		return "", fmt.Errorf("unknown role %q: want viewer, operator or admin", s)
	}
	return r, nil
}

func (r Role) IsValid() bool {
	return roleRank[r] > 0
}

// Allows reports whether r ranks at least as high as min.
func (r Role) Allows(min Role) bool {
	return r.IsValid() && min.IsValid() && roleRank[r] >= roleRank[min]
}

// Authentication errors
var (
	ErrUnauthorized     = errors.New("unauthorized")
	ErrInvalidToken     = errors.New("invalid token")
	ErrExpiredToken     = errors.New("token has expired")
	ErrInsufficientRole = errors.New("insufficient role for this operation")
)
