package ticket_test

import (
	"context"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"propdesk/inbox-api/internal/domain/ticket"
	"propdesk/inbox-api/internal/utils/platformerrors"
)

// MockRepository is a func-backed ticket.Repository for service tests.
type MockRepository struct {
	CreateFunc       func(ctx context.Context, t *ticket.Ticket) error
	FindByIDFunc     func(ctx context.Context, id string) (*ticket.Ticket, error)
	ListFunc         func(ctx context.Context, filter *ticket.Filter) ([]ticket.Ticket, error)
	UpdateStatusFunc func(ctx context.Context, id string, newStatus ticket.Status) (*ticket.Ticket, error)
	DeleteFunc       func(ctx context.Context, id string) error
}

func (m *MockRepository) Create(ctx context.Context, t *ticket.Ticket) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, t)
	}
	return nil
}

func (m *MockRepository) FindByID(ctx context.Context, id string) (*ticket.Ticket, error) {
	if m.FindByIDFunc != nil {
		return m.FindByIDFunc(ctx, id)
	}
	return nil, nil
}

func (m *MockRepository) List(ctx context.Context, filter *ticket.Filter) ([]ticket.Ticket, error) {
	if m.ListFunc != nil {
		return m.ListFunc(ctx, filter)
	}
	return nil, nil
}

func (m *MockRepository) UpdateStatus(ctx context.Context, id string, newStatus ticket.Status) (*ticket.Ticket, error) {
	if m.UpdateStatusFunc != nil {
		return m.UpdateStatusFunc(ctx, id, newStatus)
	}
	return nil, nil
}

func (m *MockRepository) Delete(ctx context.Context, id string) error {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, id)
	}
	return nil
}

// MockPublisher records published status-changed events.
type MockPublisher struct {
	published []ticket.Status
}

func (m *MockPublisher) PublishStatusChanged(ctx context.Context, t *ticket.Ticket, from ticket.Status) error {
	m.published = append(m.published, from)
	return nil
}

func openTicket(id string) *ticket.Ticket {
	now := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)
	return &ticket.Ticket{
		ID:        id,
		TenantID:  "ten_1",
		Title:     "Leaking faucet",
		Category:  "plumbing",
		Priority:  ticket.PriorityMedium,
		Status:    ticket.StatusOpen,
		CreatedAt: now,
		UpdatedAt: now,
	}
}

func TestUpdateStatus_DirectSetBypassesQuickActions(t *testing.T) {
	existing := openTicket("tck_1")
	var updateCalls int

	repo := &MockRepository{
		FindByIDFunc: func(ctx context.Context, id string) (*ticket.Ticket, error) {
			return existing, nil
		},
		UpdateStatusFunc: func(ctx context.Context, id string, newStatus ticket.Status) (*ticket.Ticket, error) {
			updateCalls++
			updated := *existing
			updated.Status = newStatus
			updated.UpdatedAt = time.Now()
			return &updated, nil
		},
	}
	events := &MockPublisher{}
	svc := ticket.NewService(repo, events, zerolog.Nop())

	// open -> resolved is not a quick action, but direct sets always succeed.
	updated, changed, err := svc.UpdateStatus(context.Background(), "tck_1", ticket.StatusResolved)
	require.NoError(t, err)
	assert.True(t, changed)
	assert.Equal(t, 1, updateCalls)
	assert.Equal(t, ticket.StatusResolved, updated.Status)
	assert.True(t, updated.UpdatedAt.After(existing.UpdatedAt), "updated_at must be refreshed")
	assert.Len(t, events.published, 1)
	assert.Equal(t, ticket.StatusOpen, events.published[0])
}

func TestUpdateStatus_SameColumnDropIsNoop(t *testing.T) {
	existing := openTicket("tck_1")
	repo := &MockRepository{
		FindByIDFunc: func(ctx context.Context, id string) (*ticket.Ticket, error) {
			return existing, nil
		},
		UpdateStatusFunc: func(ctx context.Context, id string, newStatus ticket.Status) (*ticket.Ticket, error) {
			t.Fatal("UpdateStatus must not be called for a same-status set")
			return nil, nil
		},
	}
	events := &MockPublisher{}
	svc := ticket.NewService(repo, events, zerolog.Nop())

	got, changed, err := svc.UpdateStatus(context.Background(), "tck_1", ticket.StatusOpen)
	require.NoError(t, err)
	assert.False(t, changed)
	assert.Equal(t, existing, got)
	assert.Empty(t, events.published, "no event for a no-op drop")
}

func TestUpdateStatus_UnknownStatusRejected(t *testing.T) {
	svc := ticket.NewService(&MockRepository{}, nil, zerolog.Nop())

	_, _, err := svc.UpdateStatus(context.Background(), "tck_1", ticket.Status("scheduling"))
	require.Error(t, err)
	assert.True(t, platformerrors.IsErrorType(err, platformerrors.ErrorTypeValidation))
}

func TestUpdateStatus_AllPairsAccepted(t *testing.T) {
	for _, from := range ticket.Statuses {
		for _, to := range ticket.Statuses {
			if from == to {
				continue
			}
			existing := openTicket("tck_1")
			existing.Status = from
			repo := &MockRepository{
				FindByIDFunc: func(ctx context.Context, id string) (*ticket.Ticket, error) {
					return existing, nil
				},
				UpdateStatusFunc: func(ctx context.Context, id string, newStatus ticket.Status) (*ticket.Ticket, error) {
					updated := *existing
					updated.Status = newStatus
					return &updated, nil
				},
			}
			svc := ticket.NewService(repo, nil, zerolog.Nop())

			_, changed, err := svc.UpdateStatus(context.Background(), "tck_1", to)
			require.NoErrorf(t, err, "%s -> %s must be accepted", from, to)
			assert.True(t, changed)
		}
	}
}

func TestCreate_Validation(t *testing.T) {
	svc := ticket.NewService(&MockRepository{}, nil, zerolog.Nop())

	_, err := svc.Create(context.Background(), ticket.CreateParams{TenantID: "ten_1"})
	require.Error(t, err, "missing title")

	_, err = svc.Create(context.Background(), ticket.CreateParams{Title: "Broken heater"})
	require.Error(t, err, "missing tenant")

	_, err = svc.Create(context.Background(), ticket.CreateParams{
		TenantID: "ten_1",
		Title:    "Broken heater",
		Priority: ticket.Priority("urgent"),
	})
	require.Error(t, err, "unknown priority")
}

func TestCreate_DefaultsToOpenMedium(t *testing.T) {
	var created *ticket.Ticket
	repo := &MockRepository{
		CreateFunc: func(ctx context.Context, t *ticket.Ticket) error {
			created = t
			return nil
		},
	}
	svc := ticket.NewService(repo, nil, zerolog.Nop())

	got, err := svc.Create(context.Background(), ticket.CreateParams{
		TenantID: "ten_1",
		Title:    "Broken heater",
		Category: "heating",
	})
	require.NoError(t, err)
	require.NotNil(t, created)
	assert.Equal(t, ticket.StatusOpen, got.Status)
	assert.Equal(t, ticket.PriorityMedium, got.Priority)
}

func TestBoard_ColumnsInCanonicalOrder(t *testing.T) {
	repo := &MockRepository{
		ListFunc: func(ctx context.Context, filter *ticket.Filter) ([]ticket.Ticket, error) {
			return []ticket.Ticket{
				{ID: "tck_1", Status: ticket.StatusResolved},
				{ID: "tck_2", Status: ticket.StatusOpen},
				{ID: "tck_3", Status: ticket.StatusOpen},
			}, nil
		},
	}
	svc := ticket.NewService(repo, nil, zerolog.Nop())

	columns, err := svc.Board(context.Background())
	require.NoError(t, err)
	require.Len(t, columns, len(ticket.Statuses))

	for i, st := range ticket.Statuses {
		assert.Equal(t, st, columns[i].Status)
		assert.NotNil(t, columns[i].Tickets, "empty columns carry an empty slice, not nil")
	}
	assert.Len(t, columns[0].Tickets, 2)  // open
	assert.Len(t, columns[3].Tickets, 1)  // resolved
	assert.Empty(t, columns[4].Tickets)   // closed
	assert.Empty(t, columns[4].QuickActions)
}
