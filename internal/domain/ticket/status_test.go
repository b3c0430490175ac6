package ticket_test

import (
	"testing"

	"propdesk/inbox-api/internal/domain/ticket"
)

func TestStatus_Valid(t *testing.T) {
	tests := []struct {
		name     string
		status   ticket.Status
		expected bool
	}{
		{"open is valid", ticket.StatusOpen, true},
		{"in_progress is valid", ticket.StatusInProgress, true},
		{"pending is valid", ticket.StatusPending, true},
		{"resolved is valid", ticket.StatusResolved, true},
		{"closed is valid", ticket.StatusClosed, true},
		{"empty is invalid", ticket.Status(""), false},
		{"legacy step is not a canonical status", ticket.Status("work_date_scheduled"), false},
		{"arbitrary string is invalid", ticket.Status("done"), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.status.Valid(); got != tt.expected {
				t.Errorf("Status.Valid() = %v, want %v", got, tt.expected)
			}
		})
	}
}

func TestStatus_IsTerminal(t *testing.T) {
	tests := []struct {
		name     string
		status   ticket.Status
		expected bool
	}{
		{"open is not terminal", ticket.StatusOpen, false},
		{"in_progress is not terminal", ticket.StatusInProgress, false},
		{"pending is not terminal", ticket.StatusPending, false},
		{"resolved is not terminal", ticket.StatusResolved, false},
		{"closed is terminal", ticket.StatusClosed, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.status.IsTerminal(); got != tt.expected {
				t.Errorf("Status.IsTerminal() = %v, want %v", got, tt.expected)
			}
		})
	}
}

func TestStatus_IsRecommended(t *testing.T) {
	tests := []struct {
		name        string
		from        ticket.Status
		to          ticket.Status
		recommended bool
	}{
		{"open to in_progress (start work)", ticket.StatusOpen, ticket.StatusInProgress, true},
		{"open to pending (set pending)", ticket.StatusOpen, ticket.StatusPending, true},
		{"open to resolved - direct only", ticket.StatusOpen, ticket.StatusResolved, false},
		{"open to closed - direct only", ticket.StatusOpen, ticket.StatusClosed, false},

		{"in_progress to resolved (mark complete)", ticket.StatusInProgress, ticket.StatusResolved, true},
		{"in_progress to pending (set pending)", ticket.StatusInProgress, ticket.StatusPending, true},
		{"in_progress to closed - direct only", ticket.StatusInProgress, ticket.StatusClosed, false},

		{"pending to in_progress (resume work)", ticket.StatusPending, ticket.StatusInProgress, true},
		{"pending to resolved (mark complete)", ticket.StatusPending, ticket.StatusResolved, true},
		{"pending to open - direct only", ticket.StatusPending, ticket.StatusOpen, false},

		{"resolved to closed (close ticket)", ticket.StatusResolved, ticket.StatusClosed, true},
		{"resolved to open (reopen)", ticket.StatusResolved, ticket.StatusOpen, true},
		{"resolved to in_progress - direct only", ticket.StatusResolved, ticket.StatusInProgress, false},

		{"closed has no quick actions", ticket.StatusClosed, ticket.StatusOpen, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.from.IsRecommended(tt.to); got != tt.recommended {
				t.Errorf("Status.IsRecommended() = %v, want %v", got, tt.recommended)
			}
		})
	}
}

func TestQuickActionsFor(t *testing.T) {
	if actions := ticket.QuickActionsFor(ticket.StatusClosed); len(actions) != 0 {
		t.Errorf("closed offers %d quick actions, want 0", len(actions))
	}

	actions := ticket.QuickActionsFor(ticket.StatusOpen)
	if len(actions) != 2 {
		t.Fatalf("open offers %d quick actions, want 2", len(actions))
	}
	if actions[0].Label != "Start Work" || actions[0].To != ticket.StatusInProgress {
		t.Errorf("first open action = %+v, want Start Work -> in_progress", actions[0])
	}
}

func TestStatus_DisplayStep(t *testing.T) {
	tests := []struct {
		name     string
		status   ticket.Status
		expected ticket.ProgressStep
	}{
		{"open maps to pending", ticket.StatusOpen, ticket.StepPending},
		{"pending maps to scheduling", ticket.StatusPending, ticket.StepScheduling},
		{"in_progress maps to work_date_scheduled", ticket.StatusInProgress, ticket.StepWorkDateScheduled},
		{"resolved maps to confirming_completion", ticket.StatusResolved, ticket.StepConfirmingCompletion},
		{"closed maps to completed", ticket.StatusClosed, ticket.StepCompleted},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.status.DisplayStep(); got != tt.expected {
				t.Errorf("Status.DisplayStep() = %v, want %v", got, tt.expected)
			}
		})
	}
}
