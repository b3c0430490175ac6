package handlers_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"propdesk/inbox-api/internal/domain/conversation"
	"propdesk/inbox-api/internal/domain/message"
	"propdesk/inbox-api/internal/interfaces/httpserver/handlers"
	"propdesk/inbox-api/internal/utils/platformerrors"
)

// MockConversationService implements conversation.Service for testing
type MockConversationService struct {
	ListFunc     func(ctx context.Context, channel *message.Channel, limit int) ([]conversation.Conversation, error)
	ThreadFunc   func(ctx context.Context, counterparty string) ([]message.Message, error)
	MarkReadFunc func(ctx context.Context, counterparty string) (int, error)
}

func (m *MockConversationService) List(ctx context.Context, channel *message.Channel, limit int) ([]conversation.Conversation, error) {
	if m.ListFunc != nil {
		return m.ListFunc(ctx, channel, limit)
	}
	return nil, nil
}

func (m *MockConversationService) Thread(ctx context.Context, counterparty string) ([]message.Message, error) {
	if m.ThreadFunc != nil {
		return m.ThreadFunc(ctx, counterparty)
	}
	return nil, nil
}

func (m *MockConversationService) MarkRead(ctx context.Context, counterparty string) (int, error) {
	if m.MarkReadFunc != nil {
		return m.MarkReadFunc(ctx, counterparty)
	}
	return 0, nil
}

func setupConversationTestRouter(handler *handlers.ConversationHandler) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	v1 := r.Group("/v1/conversations")
	{
		v1.GET("", handler.List)
		v1.GET("/:counterparty/messages", handler.Thread)
		v1.POST("/:counterparty/read", handler.MarkRead)
	}
	return r
}

func testMessage(id, from string, seen bool) message.Message {
	body := "Hello"
	return message.Message{
		ID:        id,
		Channel:   message.ChannelWhatsApp,
		Direction: message.DirectionInbound,
		From:      from,
		To:        "manager",
		Body:      &body,
		Seen:      seen,
		CreatedAt: time.Now(),
	}
}

func TestConversationHandler_List(t *testing.T) {
	mockService := &MockConversationService{
		ListFunc: func(ctx context.Context, channel *message.Channel, limit int) ([]conversation.Conversation, error) {
			return []conversation.Conversation{
				{
					Counterparty: "+49111",
					DisplayName:  "Anna Schmidt",
					LastMessage:  testMessage("msg-2", "+49111", false),
					MessageCount: 2,
					UnreadCount:  1,
				},
				{
					Counterparty: "+49222",
					LastMessage:  testMessage("msg-1", "+49222", true),
					MessageCount: 1,
				},
			}, nil
		},
	}

	handler := handlers.NewConversationHandler(mockService, zerolog.Nop())
	router := setupConversationTestRouter(handler)

	req, _ := http.NewRequest("GET", "/v1/conversations", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Errorf("Expected status 200, got %d", w.Code)
	}

	var response struct {
		Data []struct {
			Counterparty string `json:"counterparty"`
			UnreadCount  int    `json:"unread_count"`
		} `json:"data"`
		Total int `json:"total"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &response); err != nil {
		t.Fatalf("Failed to parse response: %v", err)
	}

	if response.Total != 2 {
		t.Errorf("Expected 2 conversations, got %d", response.Total)
	}
	if response.Data[0].Counterparty != "+49111" {
		t.Errorf("Expected first conversation '+49111', got %v", response.Data[0].Counterparty)
	}
	if response.Data[0].UnreadCount != 1 {
		t.Errorf("Expected unread_count 1, got %d", response.Data[0].UnreadCount)
	}
}

func TestConversationHandler_List_ChannelFilter(t *testing.T) {
	var gotChannel *message.Channel
	mockService := &MockConversationService{
		ListFunc: func(ctx context.Context, channel *message.Channel, limit int) ([]conversation.Conversation, error) {
			gotChannel = channel
			return nil, nil
		},
	}

	handler := handlers.NewConversationHandler(mockService, zerolog.Nop())
	router := setupConversationTestRouter(handler)

	req, _ := http.NewRequest("GET", "/v1/conversations?channel=email", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Errorf("Expected status 200, got %d", w.Code)
	}
	if gotChannel == nil || *gotChannel != message.ChannelEmail {
		t.Errorf("Expected channel filter 'email', got %v", gotChannel)
	}

	// An empty aggregation still serializes as a list.
	var response struct {
		Data []json.RawMessage `json:"data"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &response); err != nil {
		t.Fatalf("Failed to parse response: %v", err)
	}
	if response.Data == nil {
		t.Error("Expected data to be an empty array, got null")
	}
}

func TestConversationHandler_List_UnknownChannel(t *testing.T) {
	handler := handlers.NewConversationHandler(&MockConversationService{}, zerolog.Nop())
	router := setupConversationTestRouter(handler)

	req, _ := http.NewRequest("GET", "/v1/conversations?channel=sms", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if w.Code != http.StatusBadRequest {
		t.Errorf("Expected status 400, got %d", w.Code)
	}
}

func TestConversationHandler_Thread(t *testing.T) {
	mockService := &MockConversationService{
		ThreadFunc: func(ctx context.Context, counterparty string) ([]message.Message, error) {
			return []message.Message{
				testMessage("msg-1", counterparty, true),
				testMessage("msg-2", counterparty, false),
			}, nil
		},
	}

	handler := handlers.NewConversationHandler(mockService, zerolog.Nop())
	router := setupConversationTestRouter(handler)

	req, _ := http.NewRequest("GET", "/v1/conversations/+49111/messages", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Errorf("Expected status 200, got %d", w.Code)
	}

	var response struct {
		Counterparty string            `json:"counterparty"`
		Messages     []message.Message `json:"messages"`
		Total        int               `json:"total"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &response); err != nil {
		t.Fatalf("Failed to parse response: %v", err)
	}

	if response.Counterparty != "+49111" {
		t.Errorf("Expected counterparty '+49111', got %q", response.Counterparty)
	}
	if response.Total != 2 {
		t.Errorf("Expected 2 messages, got %d", response.Total)
	}
}

func TestConversationHandler_Thread_Empty(t *testing.T) {
	handler := handlers.NewConversationHandler(&MockConversationService{}, zerolog.Nop())
	router := setupConversationTestRouter(handler)

	req, _ := http.NewRequest("GET", "/v1/conversations/unknown/messages", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Errorf("Expected status 200, got %d", w.Code)
	}

	var response struct {
		Messages []json.RawMessage `json:"messages"`
		Total    int               `json:"total"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &response); err != nil {
		t.Fatalf("Failed to parse response: %v", err)
	}
	if response.Messages == nil {
		t.Error("Expected messages to be an empty array, got null")
	}
	if response.Total != 0 {
		t.Errorf("Expected total 0, got %d", response.Total)
	}
}

func TestConversationHandler_MarkRead(t *testing.T) {
	mockService := &MockConversationService{
		MarkReadFunc: func(ctx context.Context, counterparty string) (int, error) {
			return 3, nil
		},
	}

	handler := handlers.NewConversationHandler(mockService, zerolog.Nop())
	router := setupConversationTestRouter(handler)

	req, _ := http.NewRequest("POST", "/v1/conversations/+49111/read", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Errorf("Expected status 200, got %d", w.Code)
	}

	var response struct {
		Counterparty string   `json:"counterparty"`
		Marked       int      `json:"marked"`
		FailedIDs    []string `json:"failed_ids"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &response); err != nil {
		t.Fatalf("Failed to parse response: %v", err)
	}

	if response.Marked != 3 {
		t.Errorf("Expected 3 marked messages, got %d", response.Marked)
	}
	if len(response.FailedIDs) != 0 {
		t.Errorf("Expected no failed ids, got %v", response.FailedIDs)
	}
}

func TestConversationHandler_MarkRead_PartialFailure(t *testing.T) {
	mockService := &MockConversationService{
		MarkReadFunc: func(ctx context.Context, counterparty string) (int, error) {
			return 2, platformerrors.NewErrorWithContext(
				ctx,
				platformerrors.LayerDomain,
				platformerrors.ErrorTypePartialFailure,
				"some messages could not be marked seen",
				nil,
				"message-markallseen-partial-001",
				map[string]any{"failed_ids": []string{"msg-3"}},
			)
		},
	}

	handler := handlers.NewConversationHandler(mockService, zerolog.Nop())
	router := setupConversationTestRouter(handler)

	req, _ := http.NewRequest("POST", "/v1/conversations/+49111/read", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if w.Code != http.StatusMultiStatus {
		t.Errorf("Expected status 207, got %d", w.Code)
	}

	var response struct {
		Marked    int      `json:"marked"`
		FailedIDs []string `json:"failed_ids"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &response); err != nil {
		t.Fatalf("Failed to parse response: %v", err)
	}

	if response.Marked != 2 {
		t.Errorf("Expected 2 marked messages, got %d", response.Marked)
	}
	if len(response.FailedIDs) != 1 || response.FailedIDs[0] != "msg-3" {
		t.Errorf("Expected failed ids [msg-3], got %v", response.FailedIDs)
	}
}

func TestConversationHandler_MarkRead_Error(t *testing.T) {
	mockService := &MockConversationService{
		MarkReadFunc: func(ctx context.Context, counterparty string) (int, error) {
			return 0, platformerrors.NewError(ctx, platformerrors.LayerRepository, platformerrors.ErrorTypeDatabaseError, "query failed", nil, "message-markallseen-001")
		},
	}

	handler := handlers.NewConversationHandler(mockService, zerolog.Nop())
	router := setupConversationTestRouter(handler)

	req, _ := http.NewRequest("POST", "/v1/conversations/+49111/read", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if w.Code != http.StatusInternalServerError {
		t.Errorf("Expected status 500, got %d", w.Code)
	}
}
