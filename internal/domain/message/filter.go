package message

// Filter contains criteria for filtering messages.
type Filter struct {
	Channel      *Channel
	Counterparty *string
	Unseen       *bool

	// Pagination. Limit bounds the aggregation window; callers that feed the
	// conversation aggregator pass the configured window size here.
	Limit  int
	Offset int
}

// NewFilter creates a new filter with default pagination.
func NewFilter() *Filter {
	return &Filter{
		Limit:  50,
		Offset: 0,
	}
}

// WithChannel sets the channel filter.
func (f *Filter) WithChannel(c Channel) *Filter {
	f.Channel = &c
	return f
}

// WithCounterparty sets the counterparty filter.
func (f *Filter) WithCounterparty(addr string) *Filter {
	f.Counterparty = &addr
	return f
}

// WithUnseen restricts the result to unseen messages.
func (f *Filter) WithUnseen() *Filter {
	unseen := true
	f.Unseen = &unseen
	return f
}

// WithPagination sets the pagination parameters.
func (f *Filter) WithPagination(limit, offset int) *Filter {
	f.Limit = limit
	f.Offset = offset
	return f
}
