package routers

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"phonelink-service/internal/app/config"
	"phonelink-service/internal/app/delivery/http/controllers"
	"phonelink-service/internal/app/delivery/http/middlewares"
	"phonelink-service/internal/app/models"
	"phonelink-service/internal/app/services/shared/ratelimiter"
	"phonelink-service/internal/pkg/constvars"
	"phonelink-service/internal/pkg/dto/requests"
	"phonelink-service/internal/pkg/dto/responses"
	"phonelink-service/internal/pkg/exceptions"
	"phonelink-service/internal/pkg/utils"

	"github.com/go-chi/chi/v5"
	"github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type MockWebhookUsecase struct {
	mock.Mock
}

func (m *MockWebhookUsecase) HandleMessage(ctx context.Context, message *requests.WebhookMessage) (interface{}, error) {
	args := m.Called(ctx, message)
	return args.Get(0), args.Error(1)
}

type MockCleanupUsecase struct {
	mock.Mock
}

func (m *MockCleanupUsecase) CleanupExpiredCodes(ctx context.Context, trigger string) (*responses.CleanupExpiredCodes, error) {
	args := m.Called(ctx, trigger)
	result, _ := args.Get(0).(*responses.CleanupExpiredCodes)
	return result, args.Error(1)
}

type MockPhoneLookupUsecase struct {
	mock.Mock
}

func (m *MockPhoneLookupUsecase) LookupPhone(ctx context.Context, phoneNumber string) (*responses.PhoneLookup, error) {
	args := m.Called(ctx, phoneNumber)
	result, _ := args.Get(0).(*responses.PhoneLookup)
	return result, args.Error(1)
}

func (m *MockPhoneLookupUsecase) GetPhoneStatus(ctx context.Context, phoneNumber string) (*responses.PhoneStatus, error) {
	args := m.Called(ctx, phoneNumber)
	result, _ := args.Get(0).(*responses.PhoneStatus)
	return result, args.Error(1)
}

type MockTodoUsecase struct {
	mock.Mock
}

func (m *MockTodoUsecase) ListTodos(ctx context.Context, principal models.Principal, filter requests.TodoFilter) (*responses.TodoList, error) {
	args := m.Called(ctx, principal, filter)
	result, _ := args.Get(0).(*responses.TodoList)
	return result, args.Error(1)
}

func (m *MockTodoUsecase) CreateTodo(ctx context.Context, principal models.Principal, request *requests.CreateTodo) (*responses.TodoDetail, error) {
	args := m.Called(ctx, principal, request)
	result, _ := args.Get(0).(*responses.TodoDetail)
	return result, args.Error(1)
}

func (m *MockTodoUsecase) GetTodo(ctx context.Context, principal models.Principal, todoID string) (*responses.TodoDetail, error) {
	args := m.Called(ctx, principal, todoID)
	result, _ := args.Get(0).(*responses.TodoDetail)
	return result, args.Error(1)
}

func (m *MockTodoUsecase) UpdateTodo(ctx context.Context, principal models.Principal, todoID string, request *requests.UpdateTodo) (*responses.TodoDetail, error) {
	args := m.Called(ctx, principal, todoID, request)
	result, _ := args.Get(0).(*responses.TodoDetail)
	return result, args.Error(1)
}

func (m *MockTodoUsecase) DeleteTodo(ctx context.Context, principal models.Principal, todoID string) (*responses.TodoDeleted, error) {
	args := m.Called(ctx, principal, todoID)
	result, _ := args.Get(0).(*responses.TodoDeleted)
	return result, args.Error(1)
}

type testServer struct {
	router   *chi.Mux
	webhook  *MockWebhookUsecase
	cleanup  *MockCleanupUsecase
	lookup   *MockPhoneLookupUsecase
	todo     *MockTodoUsecase
	internal *config.InternalConfig
}

const (
	routerAPIKey  = "router-api-key"
	routerSecret  = "router-secret"
	routerCleanup = "router-cleanup"
)

func newTestServer(t *testing.T) *testServer {
	t.Helper()
	log := zap.NewNop()

	cfg := &config.InternalConfig{}
	cfg.App.EndpointPrefix = "api"
	cfg.App.MaxRequests = 1000
	cfg.App.MaxTimeRequestsPerSeconds = 1
	cfg.AccessGuard.WebhookAPIKey = routerAPIKey
	cfg.AccessGuard.WebhookSecret = routerSecret
	cfg.AccessGuard.CleanupToken = routerCleanup
	cfg.RateLimit.WebhookMax = 60
	cfg.RateLimit.WebhookWindowSeconds = 60
	cfg.RateLimit.PhoneStatusMax = 2
	cfg.RateLimit.PhoneStatusWindowSeconds = 60

	s := &testServer{
		router:   chi.NewRouter(),
		webhook:  new(MockWebhookUsecase),
		cleanup:  new(MockCleanupUsecase),
		lookup:   new(MockPhoneLookupUsecase),
		todo:     new(MockTodoUsecase),
		internal: cfg,
	}

	mw := middlewares.NewMiddlewares(log, cfg, ratelimiter.NewMemoryLimiter(), nil)
	SetupRoutes(s.router, cfg, mw, &Controllers{
		AuthCode:  &controllers.AuthCodeController{Log: log},
		PhoneLink: &controllers.PhoneLinkController{Log: log, PhoneLookupUsecase: s.lookup},
		Webhook:   &controllers.WebhookController{Log: log, WebhookUsecase: s.webhook},
		Cleanup:   &controllers.CleanupController{Log: log, CleanupUsecase: s.cleanup},
		Todo:      &controllers.TodoController{Log: log, TodoUsecase: s.todo},
		APIToken:  controllers.NewAPITokenController(log),
	})
	return s
}

func (s *testServer) do(req *http.Request) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	s.router.ServeHTTP(rec, req)
	return rec
}

func decode(t *testing.T, rec *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	return body
}

func signedWebhookRequest(body string) *http.Request {
	req := httptest.NewRequest(http.MethodPost, "/api/webhook/evolution-api-secure", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-Signature-256", "sha256="+utils.ComputeHMACSHA256Hex(routerSecret, []byte(body)))
	return req
}

func TestWebhookRoute(t *testing.T) {
	t.Run("dispatches a signed message", func(t *testing.T) {
		s := newTestServer(t)
		s.webhook.On("HandleMessage", mock.Anything, &requests.WebhookMessage{
			Message:           "hello",
			SenderPhoneNumber: "+15551234567",
		}).Return(&responses.WebhookUnlinked{
			Type: "unlinked", Message: constvars.MessageWebhookPhoneNotLinked, PhoneNumber: "+15551234567",
		}, nil)

		rec := s.do(signedWebhookRequest(`{"message":"hello","senderPhoneNumber":"+15551234567"}`))

		assert.Equal(t, http.StatusOK, rec.Code)
		body := decode(t, rec)
		assert.Equal(t, "unlinked", body["type"])
		assert.Equal(t, false, body["success"])
		s.webhook.AssertExpectations(t)
	})

	t.Run("signed but invalid json", func(t *testing.T) {
		s := newTestServer(t)
		rec := s.do(signedWebhookRequest(`{"message":`))

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, constvars.ErrClientInvalidJSONBody, decode(t, rec)["error"])
		s.webhook.AssertNotCalled(t, "HandleMessage", mock.Anything, mock.Anything)
	})

	t.Run("auth failure answers 200 with the type field", func(t *testing.T) {
		s := newTestServer(t)
		s.webhook.On("HandleMessage", mock.Anything, mock.Anything).Return(&responses.WebhookAuthFailure{
			Type:    "auth",
			Success: false,
			Error:   constvars.ErrClientAuthCodeNotFound,
		}, nil)

		rec := s.do(signedWebhookRequest(`{"message":"#auth 12345678","senderPhoneNumber":"+15551234567"}`))

		assert.Equal(t, http.StatusOK, rec.Code)
		body := decode(t, rec)
		assert.Equal(t, "auth", body["type"])
		assert.Equal(t, false, body["success"])
		assert.Equal(t, constvars.ErrClientAuthCodeNotFound, body["error"])
	})

	t.Run("unsigned request", func(t *testing.T) {
		s := newTestServer(t)
		req := httptest.NewRequest(http.MethodPost, "/api/webhook/evolution-api-secure", strings.NewReader(`{}`))
		rec := s.do(req)
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})
}

func TestPhoneStatusRoute(t *testing.T) {
	s := newTestServer(t)
	userID := "user-1"
	s.lookup.On("GetPhoneStatus", mock.Anything, "+15551234567").Return(&responses.PhoneStatus{
		IsLinked: true, UserID: &userID, PhoneNumber: "+15551234567", Status: "linked",
	}, nil)

	newRequest := func() *http.Request {
		req := httptest.NewRequest(http.MethodPost, "/api/phone-status", strings.NewReader(`{"senderPhoneNumber":"+15551234567"}`))
		req.Header.Set("X-API-Key", routerAPIKey)
		req.Header.Set("X-Forwarded-For", "203.0.113.7")
		return req
	}

	for i := 0; i < 2; i++ {
		rec := s.do(newRequest())
		require.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, true, decode(t, rec)["is_linked"])
	}

	rec := s.do(newRequest())
	assert.Equal(t, http.StatusTooManyRequests, rec.Code)
	assert.NotEmpty(t, rec.Header().Get("Retry-After"))

	t.Run("description is public", func(t *testing.T) {
		rec := s.do(httptest.NewRequest(http.MethodGet, "/api/phone-status", nil))
		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "/api/phone-status", decode(t, rec)["endpoint"])
	})
}

func TestPhoneRoutesRejectBlankFields(t *testing.T) {
	tests := []struct {
		name      string
		path      string
		body      string
		wantError string
	}{
		{name: "lookup with blank phone", path: "/api/phone-lookup", body: `{"phone_number":"   "}`, wantError: constvars.ErrClientPhoneNumberRequired},
		{name: "status without sender", path: "/api/phone-status", body: `{}`, wantError: constvars.ErrClientSenderPhoneRequired},
		{name: "whatsapp auth without date", path: "/api/whatsapp-auth", body: `{"message":"#auth 12345678","senderPhoneNumber":"+15551234567"}`, wantError: constvars.ErrClientMissingRequiredFields},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := newTestServer(t)
			req := httptest.NewRequest(http.MethodPost, tt.path, strings.NewReader(tt.body))
			req.Header.Set("X-API-Key", routerAPIKey)
			req.Header.Set("X-Forwarded-For", "203.0.113.9")

			rec := s.do(req)
			assert.Equal(t, http.StatusBadRequest, rec.Code)
			assert.Equal(t, tt.wantError, decode(t, rec)["error"])
			s.lookup.AssertNotCalled(t, "LookupPhone", mock.Anything, mock.Anything)
			s.lookup.AssertNotCalled(t, "GetPhoneStatus", mock.Anything, mock.Anything)
		})
	}
}

func TestCleanupRoute(t *testing.T) {
	s := newTestServer(t)
	s.cleanup.On("CleanupExpiredCodes", mock.Anything, "http").
		Return(&responses.CleanupExpiredCodes{Message: constvars.MessageNoExpiredCodes}, nil)

	req := httptest.NewRequest(http.MethodPost, "/api/cleanup-expired-codes", nil)
	req.Header.Set("Authorization", "Bearer "+routerCleanup)
	rec := s.do(req)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, float64(0), decode(t, rec)["cleaned_count"])

	req = httptest.NewRequest(http.MethodPost, "/api/cleanup-expired-codes", nil)
	req.Header.Set("Authorization", "Bearer wrong")
	rec = s.do(req)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestSessionRoutesRequireToken(t *testing.T) {
	s := newTestServer(t)

	for _, tc := range []struct{ method, path string }{
		{http.MethodGet, "/api/auth-code"},
		{http.MethodDelete, "/api/auth-code"},
		{http.MethodPost, "/api/phone-unlink"},
	} {
		rec := s.do(httptest.NewRequest(tc.method, tc.path, nil))
		assert.Equal(t, http.StatusUnauthorized, rec.Code, "%s %s", tc.method, tc.path)
	}
}

func TestTodoRoutes(t *testing.T) {
	s := newTestServer(t)
	now := time.Date(2025, 1, 2, 12, 0, 0, 0, time.UTC)
	apiKeyPrincipal := models.Principal{AuthMethod: constvars.AuthMethodAPIKey}

	s.todo.On("CreateTodo", mock.Anything, apiKeyPrincipal, &requests.CreateTodo{Title: "Buy milk"}).
		Return(&responses.TodoDetail{Todo: responses.Todo{ID: "todo-1", Title: "Buy milk", Priority: 1, CreatedAt: now, UpdatedAt: now}}, nil)
	s.todo.On("GetTodo", mock.Anything, apiKeyPrincipal, "missing").
		Return(nil, exceptions.ErrTodoNotFound(nil, "missing"))

	req := httptest.NewRequest(http.MethodPost, "/api/todos/", strings.NewReader(`{"title":"Buy milk"}`))
	req.Header.Set("X-API-Key", routerAPIKey)
	rec := s.do(req)
	assert.Equal(t, http.StatusCreated, rec.Code)
	todo, ok := decode(t, rec)["todo"].(map[string]interface{})
	require.True(t, ok)
	assert.Equal(t, "todo-1", todo["id"])

	req = httptest.NewRequest(http.MethodGet, "/api/todos/missing", nil)
	req.Header.Set("Authorization", "Bearer "+routerAPIKey)
	rec = s.do(req)
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, constvars.ErrClientTodoNotFound, decode(t, rec)["error"])

	rec = s.do(httptest.NewRequest(http.MethodGet, "/api/todos/", nil))
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestAPITokenRoutesAreNotImplemented(t *testing.T) {
	s := newTestServer(t)
	for _, method := range []string{http.MethodGet, http.MethodPut, http.MethodDelete} {
		req := httptest.NewRequest(method, "/api/api-tokens/abc", nil)
		req.Header.Set("X-API-Key", routerAPIKey)
		rec := s.do(req)
		assert.Equal(t, http.StatusNotImplemented, rec.Code, method)
	}
}
