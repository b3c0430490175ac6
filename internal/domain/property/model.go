// Package property holds the managed property reference records.
package property

import "time"

// Property is one managed building or unit.
type Property struct {
	ID        string    `json:"id"`
	Address   string    `json:"address"`
	City      *string   `json:"city,omitempty"`
	Units     int       `json:"units"`
	Notes     *string   `json:"notes,omitempty"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
