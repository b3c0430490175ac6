package worker

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"propdesk/inbox-api/internal/infrastructure/queue"
	"propdesk/inbox-api/internal/webhook"
)

// MockTaskQueue is a func-backed queue.TaskQueue for worker tests.
type MockTaskQueue struct {
	EnqueueFunc       func(ctx context.Context, task *queue.Task) error
	DequeueFunc       func(ctx context.Context) (*queue.Task, error)
	MarkCompletedFunc func(ctx context.Context, eventID string) error
	MarkFailedFunc    func(ctx context.Context, eventID string, err error) error
	GetQueueDepthFunc func(ctx context.Context) (int64, error)
}

func (m *MockTaskQueue) Enqueue(ctx context.Context, task *queue.Task) error {
	if m.EnqueueFunc != nil {
		return m.EnqueueFunc(ctx, task)
	}
	return nil
}

func (m *MockTaskQueue) Dequeue(ctx context.Context) (*queue.Task, error) {
	if m.DequeueFunc != nil {
		return m.DequeueFunc(ctx)
	}
	return nil, nil
}

func (m *MockTaskQueue) MarkCompleted(ctx context.Context, eventID string) error {
	if m.MarkCompletedFunc != nil {
		return m.MarkCompletedFunc(ctx, eventID)
	}
	return nil
}

func (m *MockTaskQueue) MarkFailed(ctx context.Context, eventID string, err error) error {
	if m.MarkFailedFunc != nil {
		return m.MarkFailedFunc(ctx, eventID, err)
	}
	return nil
}

func (m *MockTaskQueue) GetQueueDepth(ctx context.Context) (int64, error) {
	if m.GetQueueDepthFunc != nil {
		return m.GetQueueDepthFunc(ctx)
	}
	return 0, nil
}

// MockWebhookService records delivered payloads.
type MockWebhookService struct {
	NotifyStatusChangedFunc func(ctx context.Context, payload *webhook.StatusChangedPayload) error
}

func (m *MockWebhookService) NotifyStatusChanged(ctx context.Context, payload *webhook.StatusChangedPayload) error {
	if m.NotifyStatusChangedFunc != nil {
		return m.NotifyStatusChangedFunc(ctx, payload)
	}
	return nil
}

func statusChangedTask(t *testing.T, eventID string) *queue.Task {
	t.Helper()
	payload, err := json.Marshal(webhook.StatusChangedPayload{
		EventID:  eventID,
		Event:    webhook.EventStatusChanged,
		TicketID: "tck_1",
		From:     "open",
		To:       "in_progress",
	})
	if err != nil {
		t.Fatalf("marshal payload: %v", err)
	}
	return &queue.Task{
		EventID:   eventID,
		TicketID:  "tck_1",
		EventType: webhook.EventStatusChanged,
		Payload:   payload,
		Attempts:  1,
		QueuedAt:  time.Now(),
	}
}

func TestWorker_DeliversClaimedEvent(t *testing.T) {
	var delivered *webhook.StatusChangedPayload
	var completed, failed string

	q := &MockTaskQueue{
		DequeueFunc: func(ctx context.Context) (*queue.Task, error) {
			return statusChangedTask(t, "evt_1"), nil
		},
		MarkCompletedFunc: func(ctx context.Context, eventID string) error {
			completed = eventID
			return nil
		},
		MarkFailedFunc: func(ctx context.Context, eventID string, err error) error {
			failed = eventID
			return nil
		},
	}
	webhooks := &MockWebhookService{
		NotifyStatusChangedFunc: func(ctx context.Context, payload *webhook.StatusChangedPayload) error {
			delivered = payload
			return nil
		},
	}

	w := NewWorker(1, q, webhooks, 5*time.Second, zerolog.Nop())
	w.processNextEvent(context.Background())

	if delivered == nil {
		t.Fatal("Expected the payload to be delivered")
	}
	if delivered.TicketID != "tck_1" || delivered.To != "in_progress" {
		t.Errorf("Unexpected payload delivered: %+v", delivered)
	}
	if completed != "evt_1" {
		t.Errorf("Expected event 'evt_1' marked completed, got %q", completed)
	}
	if failed != "" {
		t.Errorf("Expected no failure mark, got %q", failed)
	}
}

func TestWorker_MarksFailedOnDeliveryError(t *testing.T) {
	var completed, failed string
	var failErr error

	q := &MockTaskQueue{
		DequeueFunc: func(ctx context.Context) (*queue.Task, error) {
			return statusChangedTask(t, "evt_1"), nil
		},
		MarkCompletedFunc: func(ctx context.Context, eventID string) error {
			completed = eventID
			return nil
		},
		MarkFailedFunc: func(ctx context.Context, eventID string, err error) error {
			failed = eventID
			failErr = err
			return nil
		},
	}
	webhooks := &MockWebhookService{
		NotifyStatusChangedFunc: func(ctx context.Context, payload *webhook.StatusChangedPayload) error {
			return errors.New("endpoint unreachable")
		},
	}

	w := NewWorker(1, q, webhooks, 5*time.Second, zerolog.Nop())
	w.processNextEvent(context.Background())

	if failed != "evt_1" {
		t.Errorf("Expected event 'evt_1' marked failed, got %q", failed)
	}
	if failErr == nil {
		t.Error("Expected the delivery error to be recorded")
	}
	if completed != "" {
		t.Errorf("Expected no completion mark, got %q", completed)
	}
}

func TestWorker_EmptyQueueDoesNothing(t *testing.T) {
	notified := false
	q := &MockTaskQueue{
		DequeueFunc: func(ctx context.Context) (*queue.Task, error) {
			return nil, nil
		},
		MarkCompletedFunc: func(ctx context.Context, eventID string) error {
			t.Fatal("MarkCompleted must not be called for an empty queue")
			return nil
		},
	}
	webhooks := &MockWebhookService{
		NotifyStatusChangedFunc: func(ctx context.Context, payload *webhook.StatusChangedPayload) error {
			notified = true
			return nil
		},
	}

	w := NewWorker(1, q, webhooks, 5*time.Second, zerolog.Nop())
	w.processNextEvent(context.Background())

	if notified {
		t.Error("Expected no delivery for an empty queue")
	}
}

func TestWorker_UnknownEventTypeMarksFailed(t *testing.T) {
	var failed string
	q := &MockTaskQueue{
		DequeueFunc: func(ctx context.Context) (*queue.Task, error) {
			task := statusChangedTask(t, "evt_1")
			task.EventType = "ticket.deleted"
			return task, nil
		},
		MarkFailedFunc: func(ctx context.Context, eventID string, err error) error {
			failed = eventID
			return nil
		},
	}

	w := NewWorker(1, q, &MockWebhookService{}, 5*time.Second, zerolog.Nop())
	w.processNextEvent(context.Background())

	if failed != "evt_1" {
		t.Errorf("Expected unknown event type marked failed, got %q", failed)
	}
}
