package ticket

// Filter contains criteria for filtering tickets.
type Filter struct {
	Status   *Status
	Priority *Priority
	TenantID *string

	// Pagination
	Limit  int
	Offset int
}

// NewFilter creates a new filter with default pagination.
func NewFilter() *Filter {
	return &Filter{
		Limit:  100,
		Offset: 0,
	}
}

// WithStatus sets the status filter.
func (f *Filter) WithStatus(s Status) *Filter {
	f.Status = &s
	return f
}

// WithPriority sets the priority filter.
func (f *Filter) WithPriority(p Priority) *Filter {
	f.Priority = &p
	return f
}

// WithTenantID sets the tenant filter.
func (f *Filter) WithTenantID(tenantID string) *Filter {
	f.TenantID = &tenantID
	return f
}

// WithPagination sets the pagination parameters.
func (f *Filter) WithPagination(limit, offset int) *Filter {
	f.Limit = limit
	f.Offset = offset
	return f
}
