package ticket

import "time"

// Priority is the enumerated ticket priority.
type Priority string

const (
	PriorityLow    Priority = "low"
	PriorityMedium Priority = "medium"
	PriorityHigh   Priority = "high"
)

// Valid reports whether the priority is a known value.
func (p Priority) Valid() bool {
	return p == PriorityLow || p == PriorityMedium || p == PriorityHigh
}

// String returns the string representation of the priority.
func (p Priority) String() string {
	return string(p)
}

// Ticket is a maintenance request raised by or on behalf of a tenant.
// Tickets are created by the tenant-facing flow or integrations; the inbox
// mutates them only through status updates.
type Ticket struct {
	ID              string    `json:"id"`
	TenantID        string    `json:"tenant_id"`
	Title           string    `json:"title"`
	Description     *string   `json:"description,omitempty"`
	Category        string    `json:"category"`
	Priority        Priority  `json:"priority"`
	Status          Status    `json:"status"`
	PropertyAddress *string   `json:"property_address,omitempty"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
}

// NewTicket creates an open ticket with the given parameters.
func NewTicket(publicID, tenantID, title, category string, priority Priority, description, propertyAddress *string) *Ticket {
	now := time.Now()
	if priority == "" {
		priority = PriorityMedium
	}
	return &Ticket{
		ID:              publicID,
		TenantID:        tenantID,
		Title:           title,
		Description:     description,
		Category:        category,
		Priority:        priority,
		Status:          StatusOpen,
		PropertyAddress: propertyAddress,
		CreatedAt:       now,
		UpdatedAt:       now,
	}
}

// BoardColumn is one kanban column: a status bucket with its tickets and the
// quick actions offered for cards in it.
type BoardColumn struct {
	Status       Status        `json:"status"`
	QuickActions []QuickAction `json:"quick_actions"`
	Tickets      []Ticket      `json:"tickets"`
}
