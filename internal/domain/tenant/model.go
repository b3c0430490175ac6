// Package tenant holds the tenant reference records shown in the dashboard
// and linked from tickets and conversations.
package tenant

import "time"

// Tenant is a renter of one of the managed units.
type Tenant struct {
	ID              string    `json:"id"`
	Name            string    `json:"name"`
	Email           *string   `json:"email,omitempty"`
	Phone           *string   `json:"phone,omitempty"`
	PropertyAddress *string   `json:"property_address,omitempty"`
	Unit            *string   `json:"unit,omitempty"`
	MoveInDate      *time.Time `json:"move_in_date,omitempty"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
}
