package routes_test

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/alumlink/alumlink/internal/app/models"
	"github.com/alumlink/alumlink/internal/app/repositories"
	"github.com/alumlink/alumlink/internal/bootstrap"
	"github.com/alumlink/alumlink/internal/config"
	"github.com/alumlink/alumlink/internal/pkg/auth"
)

func newTestRouter(t *testing.T) (*gin.Engine, *repositories.Store) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	cfg := &config.Config{}
	cfg.Server.Mode = "production"
	cfg.Store.Driver = "memory"
	cfg.JWT.Secret = "test-secret"
	cfg.JWT.TokenExpiration = "1h"
	cfg.JWT.Issuer = "test"
	cfg.Logging.Level = "error"

	store, err := bootstrap.SetupStore(cfg, zerolog.Nop())
	if err != nil {
		t.Fatalf("SetupStore failed: %v", err)
	}

	deps, err := bootstrap.BuildDependencies(cfg, store, zerolog.Nop())
	if err != nil {
		t.Fatalf("BuildDependencies failed: %v", err)
	}

	return bootstrap.SetupRouter(cfg, deps, zerolog.Nop()), store
}

func doJSON(t *testing.T, router *gin.Engine, method, path, token string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()

	var reader *bytes.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		if err != nil {
			t.Fatalf("marshal body: %v", err)
		}
		reader = bytes.NewReader(raw)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func decode(t *testing.T, rec *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	var out map[string]interface{}
	if err := json.Unmarshal(rec.Body.Bytes(), &out); err != nil {
		t.Fatalf("decode response %q: %v", rec.Body.String(), err)
	}
	return out
}

func register(t *testing.T, router *gin.Engine, name, email, role string, skills ...string) string {
	t.Helper()
	rec := doJSON(t, router, http.MethodPost, "/api/auth/register", "", map[string]interface{}{
		"name": name, "email": email, "password": "password123",
		"role": role, "skills": skills,
	})
	if rec.Code != http.StatusCreated {
		t.Fatalf("register %s: status %d, body %s", email, rec.Code, rec.Body.String())
	}
	token, _ := decode(t, rec)["token"].(string)
	if token == "" {
		t.Fatalf("register %s returned no token", email)
	}
	return token
}

func TestHealth(t *testing.T) {
	router, _ := newTestRouter(t)

	rec := doJSON(t, router, http.MethodGet, "/api/health", "", nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("health status = %d", rec.Code)
	}
	body := decode(t, rec)
	if body["status"] != "ok" || body["store"] != "memory" {
		t.Errorf("health body = %v", body)
	}
}

func TestRegisterLoginMe(t *testing.T) {
	router, _ := newTestRouter(t)

	token := register(t, router, "Priya", "priya@example.com", "alumni", "Go", "React")

	// Duplicate email answers 400.
	rec := doJSON(t, router, http.MethodPost, "/api/auth/register", "", map[string]interface{}{
		"name": "Other", "email": "PRIYA@example.com", "password": "password123",
	})
	if rec.Code != http.StatusBadRequest {
		t.Errorf("duplicate register status = %d, want 400", rec.Code)
	}
	if decode(t, rec)["error"] != "user already exists" {
		t.Errorf("duplicate register body = %s", rec.Body.String())
	}

	// Wrong password answers 401.
	rec = doJSON(t, router, http.MethodPost, "/api/auth/login", "", map[string]interface{}{
		"email": "priya@example.com", "password": "nope",
	})
	if rec.Code != http.StatusUnauthorized {
		t.Errorf("bad login status = %d, want 401", rec.Code)
	}

	// Correct login returns a usable token.
	rec = doJSON(t, router, http.MethodPost, "/api/auth/login", "", map[string]interface{}{
		"email": "priya@example.com", "password": "password123",
	})
	if rec.Code != http.StatusOK {
		t.Fatalf("login status = %d, body %s", rec.Code, rec.Body.String())
	}

	rec = doJSON(t, router, http.MethodGet, "/api/auth/profile", token, nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("me status = %d", rec.Code)
	}
	user := decode(t, rec)["user"].(map[string]interface{})
	if user["email"] != "priya@example.com" {
		t.Errorf("me email = %v", user["email"])
	}

	// No token answers 401.
	rec = doJSON(t, router, http.MethodGet, "/api/auth/profile", "", nil)
	if rec.Code != http.StatusUnauthorized {
		t.Errorf("me without token status = %d, want 401", rec.Code)
	}
}

func TestQuickMatch_AnonymousAndAuthenticated(t *testing.T) {
	router, _ := newTestRouter(t)

	register(t, router, "Alice", "alice@example.com", "alumni", "Go", "React")
	bobToken := register(t, router, "Bob", "bob@example.com", "student", "Go", "React")

	// Anonymous quick match sees both profiles.
	rec := doJSON(t, router, http.MethodPost, "/api/users/ai-match", "", map[string]interface{}{
		"skills": []string{"Go", "React"},
	})
	if rec.Code != http.StatusOK {
		t.Fatalf("ai-match status = %d", rec.Code)
	}
	matches := decode(t, rec)["matches"].([]interface{})
	if len(matches) != 2 {
		t.Errorf("anonymous matches = %d, want 2", len(matches))
	}
	// Quick match never exposes emails.
	first := matches[0].(map[string]interface{})
	if _, ok := first["email"]; ok {
		t.Errorf("quick match leaked email: %v", first)
	}

	// With a token the caller is excluded.
	rec = doJSON(t, router, http.MethodPost, "/api/users/ai-match", bobToken, map[string]interface{}{
		"skills": []string{"Go", "React"},
	})
	matches = decode(t, rec)["matches"].([]interface{})
	if len(matches) != 1 {
		t.Errorf("authenticated matches = %d, want 1", len(matches))
	}

	// An invalid token is ignored rather than rejected.
	rec = doJSON(t, router, http.MethodPost, "/api/users/ai-match", "garbage", map[string]interface{}{
		"skills": []string{"Go"},
	})
	if rec.Code != http.StatusOK {
		t.Errorf("ai-match with invalid token status = %d, want 200", rec.Code)
	}
}

func TestJobFlow(t *testing.T) {
	router, _ := newTestRouter(t)

	posterToken := register(t, router, "Poster", "poster@example.com", "alumni", "Go")
	applicantToken := register(t, router, "Applicant", "applicant@example.com", "student", "Go")

	// Creation requires a token.
	rec := doJSON(t, router, http.MethodPost, "/api/jobs", "", map[string]interface{}{
		"title": "SDE", "company": "Acme",
	})
	if rec.Code != http.StatusUnauthorized {
		t.Errorf("unauthenticated create status = %d, want 401", rec.Code)
	}

	rec = doJSON(t, router, http.MethodPost, "/api/jobs", posterToken, map[string]interface{}{
		"title": "SDE", "company": "Acme", "location": "Bangalore",
	})
	if rec.Code != http.StatusCreated {
		t.Fatalf("create job status = %d, body %s", rec.Code, rec.Body.String())
	}
	job := decode(t, rec)["job"].(map[string]interface{})
	if job["type"] != "internship" || job["status"] != "open" {
		t.Errorf("job defaults = type %v status %v", job["type"], job["status"])
	}
	jobID := int64(job["id"].(float64))

	// Listing is public and carries the pagination envelope.
	rec = doJSON(t, router, http.MethodGet, "/api/jobs?page=99", "", nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("list jobs status = %d", rec.Code)
	}
	body := decode(t, rec)
	pagination := body["pagination"].(map[string]interface{})
	if pagination["current"].(float64) != 99 {
		t.Errorf("pagination.current = %v, want the requested 99", pagination["current"])
	}
	if len(body["jobs"].([]interface{})) != 0 {
		t.Errorf("page 99 should be empty")
	}

	// Apply works via POST and the GET legacy alias.
	path := fmt.Sprintf("/api/jobs/%d/apply", jobID)
	rec = doJSON(t, router, http.MethodPost, path, applicantToken, nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("apply status = %d, body %s", rec.Code, rec.Body.String())
	}
	rec = doJSON(t, router, http.MethodGet, path, applicantToken, nil)
	if rec.Code != http.StatusOK {
		t.Errorf("GET apply alias status = %d, want 200", rec.Code)
	}

	rec = doJSON(t, router, http.MethodGet, "/api/jobs/my-jobs?type=posted", posterToken, nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("my-jobs status = %d", rec.Code)
	}
	if len(decode(t, rec)["jobs"].([]interface{})) != 1 {
		t.Errorf("poster should see one posted job")
	}

	// Without the type selector the list is empty.
	rec = doJSON(t, router, http.MethodGet, "/api/jobs/my-jobs", posterToken, nil)
	if len(decode(t, rec)["jobs"].([]interface{})) != 0 {
		t.Errorf("my-jobs without type should be empty")
	}
}

func TestJobCreateRequiresAlumni(t *testing.T) {
	router, _ := newTestRouter(t)

	studentToken := register(t, router, "Student", "student@example.com", "student")

	rec := doJSON(t, router, http.MethodPost, "/api/jobs", studentToken, map[string]interface{}{
		"title": "SDE", "company": "Acme",
	})
	if rec.Code != http.StatusForbidden {
		t.Errorf("student job create status = %d, want 403", rec.Code)
	}
}

func TestEventRSVPFull(t *testing.T) {
	router, _ := newTestRouter(t)

	organizerToken := register(t, router, "Org", "org@example.com", "alumni")
	guestToken := register(t, router, "Guest", "guest@example.com", "student")

	rec := doJSON(t, router, http.MethodPost, "/api/events", organizerToken, map[string]interface{}{
		"title": "Meetup", "date": time.Now().Add(24 * time.Hour).Format(time.RFC3339),
		"maxSpots": 1,
	})
	if rec.Code != http.StatusCreated {
		t.Fatalf("create event status = %d, body %s", rec.Code, rec.Body.String())
	}
	event := decode(t, rec)["event"].(map[string]interface{})
	eventID := int64(event["id"].(float64))

	path := fmt.Sprintf("/api/events/%d/rsvp", eventID)

	rec = doJSON(t, router, http.MethodPost, path, organizerToken, nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("first rsvp status = %d, body %s", rec.Code, rec.Body.String())
	}
	if got := decode(t, rec)["spotsLeft"]; got.(float64) != 0 {
		t.Errorf("spotsLeft after filling = %v, want 0", got)
	}

	rec = doJSON(t, router, http.MethodPost, path, guestToken, nil)
	if rec.Code != http.StatusBadRequest {
		t.Errorf("rsvp past capacity status = %d, want 400", rec.Code)
	}
	if decode(t, rec)["error"] != "event is full" {
		t.Errorf("rsvp past capacity body = %s", rec.Body.String())
	}
}

func TestAdminGuard(t *testing.T) {
	router, store := newTestRouter(t)

	studentToken := register(t, router, "Student", "student@example.com", "student")

	rec := doJSON(t, router, http.MethodGet, "/api/admin/stats", studentToken, nil)
	if rec.Code != http.StatusForbidden {
		t.Errorf("student stats status = %d, want 403", rec.Code)
	}

	// Promote one account to admin directly in the store, then log in.
	admin := &models.User{
		Name: "Admin", Email: "admin@example.com", Password: "x",
		Role: models.RoleAdmin, IsActive: true, Joined: time.Now(),
	}
	if err := store.Users.Create(context.Background(), admin); err != nil {
		t.Fatalf("create admin: %v", err)
	}
	adminToken := tokenFor(t, admin.ID)

	rec = doJSON(t, router, http.MethodGet, "/api/admin/stats", adminToken, nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("admin stats status = %d, body %s", rec.Code, rec.Body.String())
	}
	stats := decode(t, rec)
	if stats["users"].(float64) != 2 {
		t.Errorf("stats.users = %v, want 2", stats["users"])
	}

	rec = doJSON(t, router, http.MethodGet, "/api/admin/export", adminToken, nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("export status = %d", rec.Code)
	}
	export := decode(t, rec)
	if export["demoMode"] != true {
		t.Errorf("export.demoMode = %v, want true for memory store", export["demoMode"])
	}
	// Password hashes never serialize.
	users := export["users"].([]interface{})
	for _, u := range users {
		if _, ok := u.(map[string]interface{})["password"]; ok {
			t.Errorf("export leaked a password field")
		}
	}
}

func TestConnectIsDirected(t *testing.T) {
	router, store := newTestRouter(t)

	aToken := register(t, router, "A", "a@example.com", "student")
	register(t, router, "B", "b@example.com", "alumni")

	b, err := store.Users.GetByEmail(context.Background(), "b@example.com")
	if err != nil {
		t.Fatalf("lookup b: %v", err)
	}

	path := fmt.Sprintf("/api/users/connect/%d", b.ID)
	rec := doJSON(t, router, http.MethodPost, path, aToken, nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("connect status = %d, body %s", rec.Code, rec.Body.String())
	}

	a, _ := store.Users.GetByEmail(context.Background(), "a@example.com")
	if len(a.Connections) != 1 || a.Connections[0] != b.ID {
		t.Errorf("a.Connections = %v, want [%d]", a.Connections, b.ID)
	}
	bAfter, _ := store.Users.GetByEmail(context.Background(), "b@example.com")
	if len(bAfter.Connections) != 0 {
		t.Errorf("connect should not create a reciprocal edge, got %v", bAfter.Connections)
	}
}

// tokenFor mints a token for an account created directly in the store,
// using the same JWT settings the test router runs with.
func tokenFor(t *testing.T, userID int64) string {
	t.Helper()
	svc := auth.NewJWTService(auth.JWTConfig{
		SecretKey:   "test-secret",
		TokenExp:    time.Hour,
		TokenIssuer: "test",
	})
	token, _, err := svc.GenerateToken(userID)
	if err != nil {
		t.Fatalf("GenerateToken: %v", err)
	}
	return token
}
