package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/SAP-F-2025/english-school-service/internal/cache"
	"github.com/SAP-F-2025/english-school-service/internal/database/dbtest"
	"github.com/SAP-F-2025/english-school-service/internal/events"
	"github.com/SAP-F-2025/english-school-service/internal/models"
	"github.com/SAP-F-2025/english-school-service/internal/repositories/gormrepo"
	"github.com/SAP-F-2025/english-school-service/internal/services"
	"github.com/SAP-F-2025/english-school-service/internal/utils"
	"github.com/SAP-F-2025/english-school-service/internal/validator"
)

type testServer struct {
	router    *gin.Engine
	publisher *events.MockEventPublisher
}

func newTestServer(t *testing.T) *testServer {
	t.Helper()
	gin.SetMode(gin.TestMode)

	slogger := dbtest.Logger()
	logger := utils.NewSlogLogger(slogger)

	store, err := cache.NewMemoryStore(1024)
	if err != nil {
		t.Fatalf("NewMemoryStore: %v", err)
	}

	publisher := events.NewMockEventPublisher(slogger)
	sm := services.NewServiceManager(services.ServiceManagerConfig{
		Repositories: gormrepo.NewRepositoryManager(dbtest.New(t)),
		Cache:        services.NewListCache(store, cache.PolicyFromDuration(5), false, slogger),
		Validator:    validator.New(),
		Publisher:    publisher,
		Hasher:       services.NewBcryptHasher(bcrypt.MinCost),
		Logger:       slogger,
	})
	if err := sm.Initialize(context.Background()); err != nil {
		t.Fatalf("Initialize: %v", err)
	}

	router := gin.New()
	SetupMiddleware(router, logger)
	NewHandlerManager(sm, logger).SetupRoutes(router)

	return &testServer{router: router, publisher: publisher}
}

func (s *testServer) do(t *testing.T, method, path string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()

	var reader *bytes.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		if err != nil {
			t.Fatalf("marshal: %v", err)
		}
		reader = bytes.NewReader(raw)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	s.router.ServeHTTP(w, req)
	return w
}

func decode[T any](t *testing.T, w *httptest.ResponseRecorder) T {
	t.Helper()
	var out T
	if err := json.Unmarshal(w.Body.Bytes(), &out); err != nil {
		t.Fatalf("decode %q: %v", w.Body.String(), err)
	}
	return out
}

func aliceRequest() map[string]string {
	return map[string]string{
		"username": "alice",
		"password": "Passw0rd!",
		"email":    "a@x.com",
		"fullName": "Alice A",
	}
}

func TestUserLifecycle(t *testing.T) {
	s := newTestServer(t)

	w := s.do(t, http.MethodPost, "/api/user", aliceRequest())
	if w.Code != http.StatusCreated {
		t.Fatalf("POST: expected 201, got %d: %s", w.Code, w.Body)
	}
	user := decode[models.UserDto](t, w)
	if user.ID == 0 || user.Username != "alice" || user.FullName != "Alice A" {
		t.Fatalf("unexpected body %+v", user)
	}
	if loc := w.Header().Get("Location"); loc != fmt.Sprintf("/api/user/%d", user.ID) {
		t.Errorf("unexpected Location %q", loc)
	}
	if strings.Contains(w.Body.String(), "password") {
		t.Errorf("response leaked password: %s", w.Body)
	}

	path := fmt.Sprintf("/api/user/%d", user.ID)
	if w := s.do(t, http.MethodGet, path, nil); w.Code != http.StatusOK {
		t.Fatalf("GET: expected 200, got %d", w.Code)
	}
	if w := s.do(t, http.MethodDelete, path, nil); w.Code != http.StatusNoContent {
		t.Fatalf("DELETE: expected 204, got %d: %s", w.Code, w.Body)
	}
	if w := s.do(t, http.MethodGet, path, nil); w.Code != http.StatusNotFound {
		t.Fatalf("GET after delete: expected 404, got %d", w.Code)
	}

	var types []string
	for _, e := range s.publisher.GetPublishedEvents() {
		types = append(types, e.Type)
	}
	if strings.Join(types, ",") != "user.created,user.deleted" {
		t.Errorf("unexpected events %v", types)
	}
}

func TestCreateValidationFailure(t *testing.T) {
	s := newTestServer(t)

	req := aliceRequest()
	req["email"] = "not-an-email"
	req["password"] = "weak"

	w := s.do(t, http.MethodPost, "/api/user", req)
	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", w.Code)
	}

	resp := decode[ErrorResponse](t, w)
	fields := map[string]string{}
	for _, e := range resp.Errors {
		fields[e.Field] = e.Rule
	}
	if fields["email"] != "email" || fields["password"] != "password_strength" {
		t.Fatalf("unexpected errors %+v", resp.Errors)
	}
}

func TestCreateProfileForMissingUser(t *testing.T) {
	s := newTestServer(t)

	w := s.do(t, http.MethodPost, "/api/admin", map[string]interface{}{"role": "Admin", "userId": 77})
	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d: %s", w.Code, w.Body)
	}
	resp := decode[ErrorResponse](t, w)
	if len(resp.Errors) != 1 || resp.Errors[0].Field != "userId" {
		t.Fatalf("unexpected errors %+v", resp.Errors)
	}
}

func TestUpdateIDMismatch(t *testing.T) {
	s := newTestServer(t)

	user := decode[models.UserDto](t, s.do(t, http.MethodPost, "/api/user", aliceRequest()))
	path := fmt.Sprintf("/api/user/%d", user.ID)

	w := s.do(t, http.MethodPut, path, map[string]interface{}{"id": user.ID + 1, "fullName": "Someone Else"})
	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", w.Code)
	}

	got := decode[models.UserDto](t, s.do(t, http.MethodGet, path, nil))
	if got.FullName != "Alice A" {
		t.Fatalf("mismatched PUT wrote %q", got.FullName)
	}
}

func TestUpdateReturnsNoContent(t *testing.T) {
	s := newTestServer(t)

	user := decode[models.UserDto](t, s.do(t, http.MethodPost, "/api/user", aliceRequest()))
	w := s.do(t, http.MethodPost, "/api/teacher", map[string]interface{}{
		"bio":               "Grammar",
		"qualification":     "CELTA",
		"yearsOfExperience": 3,
		"phone":             "555-123-4567",
		"address":           "1 Main St",
		"userId":            user.ID,
	})
	if w.Code != http.StatusCreated {
		t.Fatalf("POST teacher: expected 201, got %d: %s", w.Code, w.Body)
	}
	teacher := decode[models.TeacherDto](t, w)
	path := fmt.Sprintf("/api/teacher/%d", teacher.ID)

	w = s.do(t, http.MethodPut, path, map[string]interface{}{
		"id":   teacher.ID,
		"bio":  "Phonics",
		"user": map[string]interface{}{"fullName": "Alice Teacher"},
	})
	if w.Code != http.StatusNoContent {
		t.Fatalf("PUT: expected 204, got %d: %s", w.Code, w.Body)
	}

	got := decode[models.TeacherDto](t, s.do(t, http.MethodGet, path, nil))
	if got.Bio != "Phonics" || got.FullName != "Alice Teacher" || got.Phone != "555-123-4567" {
		t.Fatalf("unexpected teacher after update %+v", got)
	}
}

func TestDeleteUserRemovesProfile(t *testing.T) {
	s := newTestServer(t)

	user := decode[models.UserDto](t, s.do(t, http.MethodPost, "/api/user", aliceRequest()))
	w := s.do(t, http.MethodPost, "/api/admin", map[string]interface{}{"role": "Manager", "userId": user.ID})
	if w.Code != http.StatusCreated {
		t.Fatalf("POST admin: expected 201, got %d: %s", w.Code, w.Body)
	}
	admin := decode[models.AdminDto](t, w)

	if admins := decode[[]models.AdminDto](t, s.do(t, http.MethodGet, "/api/admin", nil)); len(admins) != 1 {
		t.Fatalf("expected 1 admin before delete, got %d", len(admins))
	}

	if w := s.do(t, http.MethodDelete, fmt.Sprintf("/api/user/%d", user.ID), nil); w.Code != http.StatusNoContent {
		t.Fatalf("DELETE user: expected 204, got %d: %s", w.Code, w.Body)
	}
	if w := s.do(t, http.MethodGet, fmt.Sprintf("/api/admin/%d", admin.ID), nil); w.Code != http.StatusNotFound {
		t.Fatalf("GET admin after user delete: expected 404, got %d", w.Code)
	}
	if admins := decode[[]models.AdminDto](t, s.do(t, http.MethodGet, "/api/admin", nil)); len(admins) != 0 {
		t.Fatalf("admin list still holds %d entries", len(admins))
	}
}

func TestStudentDateOfBirthRoundTrip(t *testing.T) {
	s := newTestServer(t)
	dob := time.Date(2011, time.May, 4, 0, 0, 0, 0, time.UTC)

	user := decode[models.UserDto](t, s.do(t, http.MethodPost, "/api/user", aliceRequest()))
	w := s.do(t, http.MethodPost, "/api/student", map[string]interface{}{
		"dateOfBirth": dob.Format(time.RFC3339),
		"phone":       "555-123-4567",
		"address":     "2 School Rd",
		"userId":      user.ID,
	})
	if w.Code != http.StatusCreated {
		t.Fatalf("POST student: expected 201, got %d: %s", w.Code, w.Body)
	}
	created := decode[models.StudentDto](t, w)
	if !created.DateOfBirth.Equal(dob) {
		t.Fatalf("create response dateOfBirth = %v, want %v", created.DateOfBirth, dob)
	}

	got := decode[models.StudentDto](t, s.do(t, http.MethodGet, fmt.Sprintf("/api/student/%d", created.ID), nil))
	if !got.DateOfBirth.Equal(dob) {
		t.Fatalf("GET dateOfBirth = %v, want %v", got.DateOfBirth, dob)
	}

	// the second list call is served from the cache
	for i := 0; i < 2; i++ {
		list := decode[[]models.StudentDto](t, s.do(t, http.MethodGet, "/api/student", nil))
		if len(list) != 1 || !list[0].DateOfBirth.Equal(dob) {
			t.Fatalf("list call %d: unexpected students %+v", i, list)
		}
	}
}

func TestNotFoundAndBadIDs(t *testing.T) {
	s := newTestServer(t)

	tests := []struct {
		name   string
		method string
		path   string
		body   interface{}
		want   int
	}{
		{"get missing admin", http.MethodGet, "/api/admin/9", nil, http.StatusNotFound},
		{"delete missing teacher", http.MethodDelete, "/api/teacher/9", nil, http.StatusNotFound},
		{"delete missing student", http.MethodDelete, "/api/student/9", nil, http.StatusNotFound},
		{"update missing user", http.MethodPut, "/api/user/9", map[string]interface{}{"id": 9}, http.StatusNotFound},
		{"non-numeric id", http.MethodGet, "/api/user/abc", nil, http.StatusBadRequest},
		{"zero id", http.MethodDelete, "/api/admin/0", nil, http.StatusBadRequest},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if w := s.do(t, tt.method, tt.path, tt.body); w.Code != tt.want {
				t.Fatalf("expected %d, got %d: %s", tt.want, w.Code, w.Body)
			}
		})
	}
}

func TestMalformedBody(t *testing.T) {
	s := newTestServer(t)

	req := httptest.NewRequest(http.MethodPost, "/api/user", strings.NewReader("{"))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	s.router.ServeHTTP(w, req)

	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", w.Code)
	}
}

func TestListAndExport(t *testing.T) {
	s := newTestServer(t)
	s.do(t, http.MethodPost, "/api/user", aliceRequest())

	w := s.do(t, http.MethodGet, "/api/user", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("list: expected 200, got %d", w.Code)
	}
	if users := decode[[]models.UserDto](t, w); len(users) != 1 {
		t.Fatalf("expected 1 user, got %d", len(users))
	}

	w = s.do(t, http.MethodGet, "/api/user/export", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("export: expected 200, got %d: %s", w.Code, w.Body)
	}
	if ct := w.Header().Get("Content-Type"); ct != xlsxContentType {
		t.Errorf("unexpected content type %q", ct)
	}
	// xlsx files are zip archives
	if !bytes.HasPrefix(w.Body.Bytes(), []byte("PK")) {
		t.Errorf("export body is not a zip archive")
	}
}

func TestHealthAndMetrics(t *testing.T) {
	s := newTestServer(t)

	w := s.do(t, http.MethodGet, "/health", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("health: expected 200, got %d: %s", w.Code, w.Body)
	}
	if body := decode[map[string]string](t, w); body["status"] != "healthy" {
		t.Errorf("unexpected health body %v", body)
	}

	s.do(t, http.MethodPost, "/api/user", aliceRequest())
	w = s.do(t, http.MethodGet, "/metrics", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("metrics: expected 200, got %d", w.Code)
	}
	if !strings.Contains(w.Body.String(), "english_school_entity_writes_total") {
		t.Errorf("entity write counter missing from metrics output")
	}
}

func TestRequestIDEchoed(t *testing.T) {
	s := newTestServer(t)

	req := httptest.NewRequest(http.MethodGet, "/api/user", nil)
	req.Header.Set("X-Request-ID", "req-123")
	w := httptest.NewRecorder()
	s.router.ServeHTTP(w, req)

	if got := w.Header().Get("X-Request-ID"); got != "req-123" {
		t.Fatalf("expected request id echoed, got %q", got)
	}
}

func TestRequestIDReplacedWhenUnusable(t *testing.T) {
	s := newTestServer(t)

	tests := []struct {
		name string
		id   string
	}{
		{"missing", ""},
		{"contains spaces", "req 123"},
		{"control characters", "req\x01123"},
		{"too long", strings.Repeat("a", maxRequestIDLen+1)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/health", nil)
			if tt.id != "" {
				req.Header[requestIDHeader] = []string{tt.id}
			}
			w := httptest.NewRecorder()
			s.router.ServeHTTP(w, req)

			got := w.Header().Get(requestIDHeader)
			if got == tt.id {
				t.Fatalf("unusable request id was echoed back")
			}
			if _, err := uuid.Parse(got); err != nil {
				t.Fatalf("expected a generated uuid, got %q", got)
			}
		})
	}
}

func TestSecurityHeaders(t *testing.T) {
	s := newTestServer(t)
	w := s.do(t, http.MethodGet, "/api/user", nil)

	for _, h := range apiSecurityHeaders {
		if got := w.Header().Get(h[0]); got != h[1] {
			t.Errorf("%s = %q, want %q", h[0], got, h[1])
		}
	}
	if got := w.Header().Get("Content-Security-Policy"); !strings.Contains(got, "frame-ancestors 'none'") {
		t.Errorf("unexpected Content-Security-Policy %q", got)
	}
}
