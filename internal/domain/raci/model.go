// Package raci holds the responsibility matrix reference data: who is
// responsible, accountable, consulted and informed per task category.
package raci

import "time"

// Role is one of the four RACI assignments.
type Role string

const (
	RoleResponsible Role = "responsible"
	RoleAccountable Role = "accountable"
	RoleConsulted   Role = "consulted"
	RoleInformed    Role = "informed"
)

// Valid reports whether the role is a known RACI assignment.
func (r Role) Valid() bool {
	return r == RoleResponsible || r == RoleAccountable || r == RoleConsulted || r == RoleInformed
}

// Entry maps one task category to one party with one role. The matrix view
// pivots the flat entry list into its grid.
type Entry struct {
	ID        string    `json:"id"`
	Task      string    `json:"task"`
	Party     string    `json:"party"`
	Role      Role      `json:"role"`
	Notes     *string   `json:"notes,omitempty"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
