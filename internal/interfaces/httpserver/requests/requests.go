// Package requests holds the JSON request bodies accepted by the HTTP API.
package requests

import "time"

// IngestMessageRequest is the body accepted by the channel webhook endpoints.
// The channel itself comes from the route; direction defaults to inbound.
type IngestMessageRequest struct {
	ID        string    `json:"id"`
	Direction string    `json:"direction"`
	From      string    `json:"from" binding:"required"`
	To        string    `json:"to" binding:"required"`
	Subject   *string   `json:"subject"`
	Body      *string   `json:"body"`
	Media     []string  `json:"media"`
	Timestamp time.Time `json:"timestamp"`
}

// CreateTicketRequest creates a maintenance ticket.
type CreateTicketRequest struct {
	TenantID        string  `json:"tenant_id" binding:"required"`
	Title           string  `json:"title" binding:"required"`
	Description     *string `json:"description"`
	Category        string  `json:"category"`
	Priority        string  `json:"priority"`
	PropertyAddress *string `json:"property_address"`
}

// UpdateTicketStatusRequest moves a ticket to a new status.
type UpdateTicketStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

// CreateTenantRequest creates a tenant record.
type CreateTenantRequest struct {
	Name            string     `json:"name" binding:"required"`
	Email           *string    `json:"email"`
	Phone           *string    `json:"phone"`
	PropertyAddress *string    `json:"property_address"`
	Unit            *string    `json:"unit"`
	MoveInDate      *time.Time `json:"move_in_date"`
}

// CreatePropertyRequest creates a property record.
type CreatePropertyRequest struct {
	Address string  `json:"address" binding:"required"`
	City    *string `json:"city"`
	Units   int     `json:"units"`
	Notes   *string `json:"notes"`
}

// CreateTemplateRequest creates a reply template.
type CreateTemplateRequest struct {
	Name    string  `json:"name" binding:"required"`
	Channel string  `json:"channel" binding:"required"`
	Subject *string `json:"subject"`
	Body    string  `json:"body" binding:"required"`
}

// RenderTemplateRequest substitutes placeholder values into a template body.
type RenderTemplateRequest struct {
	Values map[string]string `json:"values"`
}

// UpsertRaciEntryRequest creates or updates one matrix cell.
type UpsertRaciEntryRequest struct {
	Task  string  `json:"task" binding:"required"`
	Party string  `json:"party" binding:"required"`
	Role  string  `json:"role" binding:"required"`
	Notes *string `json:"notes"`
}
