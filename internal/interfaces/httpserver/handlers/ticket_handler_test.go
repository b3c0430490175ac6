package handlers_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"propdesk/inbox-api/internal/domain/ticket"
	"propdesk/inbox-api/internal/interfaces/httpserver/handlers"
	"propdesk/inbox-api/internal/utils/platformerrors"
)

// MockTicketService implements ticket.Service for testing
type MockTicketService struct {
	CreateFunc       func(ctx context.Context, params ticket.CreateParams) (*ticket.Ticket, error)
	GetByIDFunc      func(ctx context.Context, id string) (*ticket.Ticket, error)
	ListFunc         func(ctx context.Context, filter *ticket.Filter) ([]ticket.Ticket, error)
	UpdateStatusFunc func(ctx context.Context, id string, newStatus ticket.Status) (*ticket.Ticket, bool, error)
	BoardFunc        func(ctx context.Context) ([]ticket.BoardColumn, error)
	DeleteFunc       func(ctx context.Context, id string) error
}

func (m *MockTicketService) Create(ctx context.Context, params ticket.CreateParams) (*ticket.Ticket, error) {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, params)
	}
	return nil, nil
}

func (m *MockTicketService) GetByID(ctx context.Context, id string) (*ticket.Ticket, error) {
	if m.GetByIDFunc != nil {
		return m.GetByIDFunc(ctx, id)
	}
	return nil, nil
}

func (m *MockTicketService) List(ctx context.Context, filter *ticket.Filter) ([]ticket.Ticket, error) {
	if m.ListFunc != nil {
		return m.ListFunc(ctx, filter)
	}
	return nil, nil
}

func (m *MockTicketService) UpdateStatus(ctx context.Context, id string, newStatus ticket.Status) (*ticket.Ticket, bool, error) {
	if m.UpdateStatusFunc != nil {
		return m.UpdateStatusFunc(ctx, id, newStatus)
	}
	return nil, false, nil
}

func (m *MockTicketService) Board(ctx context.Context) ([]ticket.BoardColumn, error) {
	if m.BoardFunc != nil {
		return m.BoardFunc(ctx)
	}
	return nil, nil
}

func (m *MockTicketService) Delete(ctx context.Context, id string) error {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, id)
	}
	return nil
}

func setupTicketTestRouter(handler *handlers.TicketHandler) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	v1 := r.Group("/v1/tickets")
	{
		v1.POST("", handler.Create)
		v1.GET("", handler.List)
		v1.GET("/board", handler.Board)
		v1.GET("/:ticket_id", handler.Get)
		v1.PATCH("/:ticket_id/status", handler.UpdateStatus)
		v1.DELETE("/:ticket_id", handler.Delete)
	}
	return r
}

func testTicket(id string, status ticket.Status) *ticket.Ticket {
	return &ticket.Ticket{
		ID:        id,
		TenantID:  "tenant-1",
		Title:     "Leaking kitchen tap",
		Category:  "plumbing",
		Priority:  ticket.PriorityMedium,
		Status:    status,
		CreatedAt: time.Now(),
		UpdatedAt: time.Now(),
	}
}

func TestTicketHandler_Create(t *testing.T) {
	mockService := &MockTicketService{
		CreateFunc: func(ctx context.Context, params ticket.CreateParams) (*ticket.Ticket, error) {
			created := testTicket("ticket-123", ticket.StatusOpen)
			created.Title = params.Title
			created.TenantID = params.TenantID
			return created, nil
		},
	}

	handler := handlers.NewTicketHandler(mockService, zerolog.Nop())
	router := setupTicketTestRouter(handler)

	body, _ := json.Marshal(map[string]interface{}{
		"tenant_id": "tenant-1",
		"title":     "Leaking kitchen tap",
		"category":  "plumbing",
	})
	req, _ := http.NewRequest("POST", "/v1/tickets", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if w.Code != http.StatusCreated {
		t.Errorf("Expected status 201, got %d", w.Code)
	}

	var response map[string]interface{}
	if err := json.Unmarshal(w.Body.Bytes(), &response); err != nil {
		t.Fatalf("Failed to parse response: %v", err)
	}

	if response["status"] != "open" {
		t.Errorf("Expected status 'open', got %v", response["status"])
	}
	if response["display_step"] != "pending" {
		t.Errorf("Expected display_step 'pending', got %v", response["display_step"])
	}
}

func TestTicketHandler_Create_MissingTitle(t *testing.T) {
	mockService := &MockTicketService{
		CreateFunc: func(ctx context.Context, params ticket.CreateParams) (*ticket.Ticket, error) {
			return nil, platformerrors.NewError(ctx, platformerrors.LayerDomain, platformerrors.ErrorTypeValidation, "ticket title is required", nil, "ticket-create-title-001")
		},
	}

	handler := handlers.NewTicketHandler(mockService, zerolog.Nop())
	router := setupTicketTestRouter(handler)

	body, _ := json.Marshal(map[string]interface{}{"tenant_id": "tenant-1"})
	req, _ := http.NewRequest("POST", "/v1/tickets", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if w.Code != http.StatusBadRequest {
		t.Errorf("Expected status 400, got %d", w.Code)
	}
}

func TestTicketHandler_UpdateStatus(t *testing.T) {
	var gotStatus ticket.Status
	mockService := &MockTicketService{
		UpdateStatusFunc: func(ctx context.Context, id string, newStatus ticket.Status) (*ticket.Ticket, bool, error) {
			gotStatus = newStatus
			return testTicket(id, newStatus), true, nil
		},
	}

	handler := handlers.NewTicketHandler(mockService, zerolog.Nop())
	router := setupTicketTestRouter(handler)

	// A direct set skipping the quick actions is always allowed.
	body, _ := json.Marshal(map[string]string{"status": "closed"})
	req, _ := http.NewRequest("PATCH", "/v1/tickets/ticket-123/status", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Errorf("Expected status 200, got %d", w.Code)
	}
	if gotStatus != ticket.StatusClosed {
		t.Errorf("Expected service to receive status 'closed', got %q", gotStatus)
	}

	var response struct {
		Ticket  map[string]interface{} `json:"ticket"`
		Changed bool                   `json:"changed"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &response); err != nil {
		t.Fatalf("Failed to parse response: %v", err)
	}
	if !response.Changed {
		t.Error("Expected changed=true")
	}
	if response.Ticket["status"] != "closed" {
		t.Errorf("Expected ticket status 'closed', got %v", response.Ticket["status"])
	}
}

func TestTicketHandler_UpdateStatus_SameStatusNoOp(t *testing.T) {
	mockService := &MockTicketService{
		UpdateStatusFunc: func(ctx context.Context, id string, newStatus ticket.Status) (*ticket.Ticket, bool, error) {
			return testTicket(id, newStatus), false, nil
		},
	}

	handler := handlers.NewTicketHandler(mockService, zerolog.Nop())
	router := setupTicketTestRouter(handler)

	body, _ := json.Marshal(map[string]string{"status": "open"})
	req, _ := http.NewRequest("PATCH", "/v1/tickets/ticket-123/status", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Errorf("Expected status 200, got %d", w.Code)
	}

	var response struct {
		Changed bool `json:"changed"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &response); err != nil {
		t.Fatalf("Failed to parse response: %v", err)
	}
	if response.Changed {
		t.Error("Expected changed=false for a same-status set")
	}
}

func TestTicketHandler_UpdateStatus_UnknownStatus(t *testing.T) {
	mockService := &MockTicketService{
		UpdateStatusFunc: func(ctx context.Context, id string, newStatus ticket.Status) (*ticket.Ticket, bool, error) {
			return nil, false, platformerrors.NewError(ctx, platformerrors.LayerDomain, platformerrors.ErrorTypeValidation, "unknown status", nil, "ticket-status-unknown-001")
		},
	}

	handler := handlers.NewTicketHandler(mockService, zerolog.Nop())
	router := setupTicketTestRouter(handler)

	body, _ := json.Marshal(map[string]string{"status": "done"})
	req, _ := http.NewRequest("PATCH", "/v1/tickets/ticket-123/status", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if w.Code != http.StatusBadRequest {
		t.Errorf("Expected status 400, got %d", w.Code)
	}
}

func TestTicketHandler_UpdateStatus_MissingBody(t *testing.T) {
	handler := handlers.NewTicketHandler(&MockTicketService{}, zerolog.Nop())
	router := setupTicketTestRouter(handler)

	req, _ := http.NewRequest("PATCH", "/v1/tickets/ticket-123/status", bytes.NewReader([]byte(`{}`)))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if w.Code != http.StatusBadRequest {
		t.Errorf("Expected status 400, got %d", w.Code)
	}
}

func TestTicketHandler_Board(t *testing.T) {
	mockService := &MockTicketService{
		BoardFunc: func(ctx context.Context) ([]ticket.BoardColumn, error) {
			columns := make([]ticket.BoardColumn, 0, len(ticket.Statuses))
			for _, st := range ticket.Statuses {
				columns = append(columns, ticket.BoardColumn{
					Status:       st,
					QuickActions: ticket.QuickActionsFor(st),
					Tickets:      []ticket.Ticket{},
				})
			}
			return columns, nil
		},
	}

	handler := handlers.NewTicketHandler(mockService, zerolog.Nop())
	router := setupTicketTestRouter(handler)

	req, _ := http.NewRequest("GET", "/v1/tickets/board", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Errorf("Expected status 200, got %d", w.Code)
	}

	var response struct {
		Data []struct {
			Status string `json:"status"`
		} `json:"data"`
		Total int `json:"total"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &response); err != nil {
		t.Fatalf("Failed to parse response: %v", err)
	}

	if response.Total != 5 {
		t.Errorf("Expected 5 columns, got %d", response.Total)
	}
	wantOrder := []string{"open", "in_progress", "pending", "resolved", "closed"}
	for i, col := range response.Data {
		if col.Status != wantOrder[i] {
			t.Errorf("Column %d: expected %q, got %q", i, wantOrder[i], col.Status)
		}
	}
}

func TestTicketHandler_List_UnknownStatusFilter(t *testing.T) {
	handler := handlers.NewTicketHandler(&MockTicketService{}, zerolog.Nop())
	router := setupTicketTestRouter(handler)

	req, _ := http.NewRequest("GET", "/v1/tickets?status=done", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if w.Code != http.StatusBadRequest {
		t.Errorf("Expected status 400, got %d", w.Code)
	}
}

func TestTicketHandler_Get_NotFound(t *testing.T) {
	mockService := &MockTicketService{
		GetByIDFunc: func(ctx context.Context, id string) (*ticket.Ticket, error) {
			return nil, platformerrors.NewError(ctx, platformerrors.LayerRepository, platformerrors.ErrorTypeNotFound, "ticket not found", nil, "ticket-find-001")
		},
	}

	handler := handlers.NewTicketHandler(mockService, zerolog.Nop())
	router := setupTicketTestRouter(handler)

	req, _ := http.NewRequest("GET", "/v1/tickets/missing", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if w.Code != http.StatusNotFound {
		t.Errorf("Expected status 404, got %d", w.Code)
	}
}

func TestTicketHandler_Delete(t *testing.T) {
	deleted := ""
	mockService := &MockTicketService{
		DeleteFunc: func(ctx context.Context, id string) error {
			deleted = id
			return nil
		},
	}

	handler := handlers.NewTicketHandler(mockService, zerolog.Nop())
	router := setupTicketTestRouter(handler)

	req, _ := http.NewRequest("DELETE", "/v1/tickets/ticket-123", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if w.Code != http.StatusNoContent {
		t.Errorf("Expected status 204, got %d", w.Code)
	}
	if deleted != "ticket-123" {
		t.Errorf("Expected delete of 'ticket-123', got %q", deleted)
	}
}
