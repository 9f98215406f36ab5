package api_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"
	"time"

	"gym-admin/internal/api"
	"gym-admin/internal/auth"
	"gym-admin/internal/domain"
	"gym-admin/internal/repository/file"
	"gym-admin/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Make sure Gin does not spam the console during the test
func init() {
	gin.SetMode(gin.TestMode)
}

// newTestServer wires the full stack (router, services, repositories) over a
// temp database file — no mocks, the same code path production takes.
func newTestServer(t *testing.T) (*gin.Engine, *auth.Manager) {
	t.Helper()

	store, err := file.Open(filepath.Join(t.TempDir(), "database.json"))
	require.NoError(t, err)

	tokens := auth.NewManager("test-secret", time.Hour)

	userRepo := file.NewUserRepository(store)
	router := gin.New()
	api.SetupRoutes(
		router,
		tokens,
		service.NewAuthService(userRepo, tokens),
		service.NewMemberService(file.NewMemberRepository(store)),
		service.NewClassService(file.NewClassRepository(store)),
		service.NewTrainerService(file.NewTrainerRepository(store)),
		service.NewAnalyticsService(store),
		nil, // backups disabled
	)
	return router, tokens
}

func doJSON(t *testing.T, router *gin.Engine, method, path, token string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func decode(t *testing.T, w *httptest.ResponseRecorder, out any) {
	t.Helper()
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), out))
}

// register + login, returning a usable bearer token.
func loginAs(t *testing.T, router *gin.Engine, email string) string {
	t.Helper()
	w := doJSON(t, router, http.MethodPost, "/api/v1/auth/register", "", gin.H{
		"name": "Alice", "email": email, "password": "pw123",
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	w = doJSON(t, router, http.MethodPost, "/api/v1/auth/login", "", gin.H{
		"email": email, "password": "pw123",
	})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var resp struct {
		Token string `json:"token"`
	}
	decode(t, w, &resp)
	require.NotEmpty(t, resp.Token)
	return resp.Token
}

func TestRegisterLoginMemberLifecycle(t *testing.T) {
	router, _ := newTestServer(t)
	token := loginAs(t, router, "alice@x.com")

	// Create
	w := doJSON(t, router, http.MethodPost, "/api/v1/members", token, gin.H{
		"name": "Bob", "membershipType": "Standard",
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	var member domain.Member
	decode(t, w, &member)
	assert.Equal(t, "M001", member.ID)
	assert.Equal(t, domain.MemberStatusPending, member.Status)
	assert.Equal(t, time.Now().Format(domain.DateLayout), member.JoinDate)

	// Read back
	w = doJSON(t, router, http.MethodGet, "/api/v1/members/M001", token, nil)
	require.Equal(t, http.StatusOK, w.Code)

	// Update: body id is ignored, fields merge shallowly
	w = doJSON(t, router, http.MethodPut, "/api/v1/members/M001", token, gin.H{
		"id": "M999", "status": "active",
	})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	decode(t, w, &member)
	assert.Equal(t, "M001", member.ID)
	assert.Equal(t, domain.MemberStatusActive, member.Status)
	assert.Equal(t, "Bob", member.Name)

	// Delete, then the id is gone
	w = doJSON(t, router, http.MethodDelete, "/api/v1/members/M001", token, nil)
	require.Equal(t, http.StatusOK, w.Code)

	w = doJSON(t, router, http.MethodGet, "/api/v1/members/M001", token, nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestAuthStatusCodes(t *testing.T) {
	router, tokens := newTestServer(t)

	// No token at all -> 401
	w := doJSON(t, router, http.MethodGet, "/api/v1/members", "", nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	// Garbage token -> 403
	w = doJSON(t, router, http.MethodGet, "/api/v1/members", "garbage", nil)
	assert.Equal(t, http.StatusForbidden, w.Code)

	// Expired token -> 403
	expired, err := auth.NewManager("test-secret", -time.Minute).Issue("some-user", domain.RoleAdmin)
	require.NoError(t, err)
	w = doJSON(t, router, http.MethodGet, "/api/v1/members", expired, nil)
	assert.Equal(t, http.StatusForbidden, w.Code)

	// Token signed with a different key -> 403
	foreign, err := auth.NewManager("other-secret", time.Hour).Issue("some-user", domain.RoleAdmin)
	require.NoError(t, err)
	w = doJSON(t, router, http.MethodGet, "/api/v1/members", foreign, nil)
	assert.Equal(t, http.StatusForbidden, w.Code)

	// A valid token for a vanished user: protected routes pass the
	// middleware, but /auth/me reports the missing account.
	ghost, err := tokens.Issue("vanished-user", domain.RoleAdmin)
	require.NoError(t, err)
	w = doJSON(t, router, http.MethodGet, "/api/v1/auth/me", ghost, nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestRegisterValidationAndConflict(t *testing.T) {
	router, _ := newTestServer(t)

	// Missing fields -> 400 from binding
	w := doJSON(t, router, http.MethodPost, "/api/v1/auth/register", "", gin.H{"email": "a@x.com"})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = doJSON(t, router, http.MethodPost, "/api/v1/auth/register", "", gin.H{
		"name": "Alice", "email": "alice@x.com", "password": "pw123",
	})
	require.Equal(t, http.StatusCreated, w.Code)

	// Same email again -> 409
	w = doJSON(t, router, http.MethodPost, "/api/v1/auth/register", "", gin.H{
		"name": "Other", "email": "alice@x.com", "password": "pw456",
	})
	assert.Equal(t, http.StatusConflict, w.Code)
}

func TestLoginFailureIsGeneric(t *testing.T) {
	router, _ := newTestServer(t)
	loginAs(t, router, "alice@x.com")

	unknown := doJSON(t, router, http.MethodPost, "/api/v1/auth/login", "", gin.H{
		"email": "nobody@x.com", "password": "pw123",
	})
	wrongPw := doJSON(t, router, http.MethodPost, "/api/v1/auth/login", "", gin.H{
		"email": "alice@x.com", "password": "wrong",
	})

	assert.Equal(t, http.StatusUnauthorized, unknown.Code)
	assert.Equal(t, http.StatusUnauthorized, wrongPw.Code)
	assert.JSONEq(t, unknown.Body.String(), wrongPw.Body.String(),
		"unknown email and wrong password must be indistinguishable")
}

func TestMeReturnsUserWithoutHash(t *testing.T) {
	router, _ := newTestServer(t)
	token := loginAs(t, router, "alice@x.com")

	w := doJSON(t, router, http.MethodGet, "/api/v1/auth/me", token, nil)
	require.Equal(t, http.StatusOK, w.Code)

	var payload map[string]any
	decode(t, w, &payload)
	assert.Equal(t, "alice@x.com", payload["email"])
	assert.Equal(t, string(domain.RoleAdmin), payload["role"])
	assert.NotContains(t, payload, "passwordHash")
	assert.NotContains(t, payload, "password")
}

func TestClassEnrollmentBoundOverHTTP(t *testing.T) {
	router, _ := newTestServer(t)
	token := loginAs(t, router, "alice@x.com")

	w := doJSON(t, router, http.MethodPost, "/api/v1/classes", token, gin.H{
		"name": "Spin", "capacity": 2, "enrolled": 99,
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	var class domain.Class
	decode(t, w, &class)
	assert.Equal(t, "C001", class.ID)
	assert.Equal(t, 0, class.Enrolled, "enrollment always starts at zero")

	w = doJSON(t, router, http.MethodPut, "/api/v1/classes/C001", token, gin.H{"enrolled": 3})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = doJSON(t, router, http.MethodPut, "/api/v1/classes/C001", token, gin.H{"enrolled": 2})
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestTrainerCRUDAndAnalytics(t *testing.T) {
	router, _ := newTestServer(t)
	token := loginAs(t, router, "alice@x.com")

	w := doJSON(t, router, http.MethodPost, "/api/v1/trainers", token, gin.H{
		"name": "Sam", "specialties": []string{"yoga", "pilates"}, "experience": "5 years",
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	var trainer domain.Trainer
	decode(t, w, &trainer)
	assert.Equal(t, "T001", trainer.ID)
	assert.Equal(t, 5.0, trainer.Rating)

	w = doJSON(t, router, http.MethodPost, "/api/v1/classes", token, gin.H{
		"name": "Morning Yoga", "capacity": 10, "instructorId": "T001",
	})
	require.Equal(t, http.StatusCreated, w.Code)

	w = doJSON(t, router, http.MethodPost, "/api/v1/members", token, gin.H{"name": "Bob"})
	require.Equal(t, http.StatusCreated, w.Code)

	w = doJSON(t, router, http.MethodGet, "/api/v1/analytics", token, nil)
	require.Equal(t, http.StatusOK, w.Code)

	var summary domain.Summary
	decode(t, w, &summary)
	assert.Equal(t, 1, summary.TotalMembers)
	assert.Equal(t, 1, summary.TotalClasses)
	assert.Equal(t, 1, summary.TotalTrainers)
	require.Len(t, summary.TrainerPerformance, 1)
	assert.Equal(t, domain.PerformancePoint{Name: "Sam", ClassCount: 1}, summary.TrainerPerformance[0])
	require.Len(t, summary.MemberGrowth, 1)
	assert.Equal(t, 1, summary.MemberGrowth[0].Count)
}
