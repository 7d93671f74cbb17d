package middleware

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/anchalw11/website/internal/models"
	"github.com/anchalw11/website/internal/repository"
	"github.com/anchalw11/website/internal/service"
	"github.com/gin-gonic/gin"
)

const testSecret = "test-secret-key-at-least-32-chars-long"

// =============================================================================
// Mock UserRepository
// =============================================================================

type mockUserRepository struct {
	findByIDFunc func(ctx context.Context, id int64) (*models.User, error)
}

func (m *mockUserRepository) FindByUsername(ctx context.Context, username string) (*models.User, error) {
	return nil, errors.New("not implemented")
}

func (m *mockUserRepository) FindByEmail(ctx context.Context, email string) (*models.User, error) {
	return nil, errors.New("not implemented")
}

func (m *mockUserRepository) FindByID(ctx context.Context, id int64) (*models.User, error) {
	if m.findByIDFunc != nil {
		return m.findByIDFunc(ctx, id)
	}
	return nil, errors.New("not implemented")
}

func (m *mockUserRepository) Create(ctx context.Context, user *models.User) error {
	return errors.New("not implemented")
}

// =============================================================================
// Test Helpers
// =============================================================================

func setupGatedRouter(t *testing.T, jwtSvc service.JWTService, repo repository.UserRepository) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	router := gin.New()
	router.GET("/gated",
		Authenticate(jwtSvc, repo),
		RequireEnterprise(),
		func(c *gin.Context) {
			user, _ := UserFromContext(c)
			c.JSON(http.StatusOK, gin.H{"user_id": user.ID})
		})
	return router
}

func doGatedRequest(router *gin.Engine, authHeader string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, "/gated", nil)
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func repoWithUser(user *models.User) *mockUserRepository {
	return &mockUserRepository{
		findByIDFunc: func(ctx context.Context, id int64) (*models.User, error) {
			if user != nil && user.ID == id {
				return user, nil
			}
			return nil, repository.ErrNotFound
		},
	}
}

// =============================================================================
// Authenticate Tests
// =============================================================================

func TestAuthenticate_MissingOrMalformedHeader(t *testing.T) {
	jwtSvc := service.NewJWTService(testSecret, 15*time.Minute)
	router := setupGatedRouter(t, jwtSvc, repoWithUser(nil))

	tests := []struct {
		name   string
		header string
	}{
		{
			name:   "missing header",
			header: "",
		},
		{
			name:   "no bearer prefix",
			header: "some-token",
		},
		{
			name:   "wrong scheme",
			header: "Basic dXNlcjpwYXNz",
		},
		{
			name:   "too many parts",
			header: "Bearer one two",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := doGatedRequest(router, tt.header)
			if w.Code != http.StatusUnauthorized {
				t.Errorf("status = %d, want %d", w.Code, http.StatusUnauthorized)
			}
			if !strings.Contains(w.Body.String(), "Missing or invalid token") {
				t.Errorf("body = %s, want token error message", w.Body.String())
			}
		})
	}
}

func TestAuthenticate_InvalidToken(t *testing.T) {
	jwtSvc := service.NewJWTService(testSecret, 15*time.Minute)
	router := setupGatedRouter(t, jwtSvc, repoWithUser(nil))

	w := doGatedRequest(router, "Bearer not-a-real-token")
	if w.Code != http.StatusUnauthorized {
		t.Errorf("status = %d, want %d", w.Code, http.StatusUnauthorized)
	}
}

func TestAuthenticate_ExpiredToken(t *testing.T) {
	// An expired token fails with 401 regardless of the user's plan tier.
	jwtSvc := service.NewJWTService(testSecret, 1*time.Millisecond)
	user := &models.User{ID: 1, PlanType: models.PlanEnterprise}
	router := setupGatedRouter(t, jwtSvc, repoWithUser(user))

	token, err := jwtSvc.GenerateToken(1)
	if err != nil {
		t.Fatalf("GenerateToken() error = %v", err)
	}
	time.Sleep(10 * time.Millisecond)

	w := doGatedRequest(router, "Bearer "+token)
	if w.Code != http.StatusUnauthorized {
		t.Errorf("status = %d, want %d", w.Code, http.StatusUnauthorized)
	}
}

func TestAuthenticate_UserNotFound(t *testing.T) {
	// Structurally valid token whose referent no longer exists: 404,
	// deliberately distinct from the bad-token 401.
	jwtSvc := service.NewJWTService(testSecret, 15*time.Minute)
	router := setupGatedRouter(t, jwtSvc, repoWithUser(nil))

	token, err := jwtSvc.GenerateToken(42)
	if err != nil {
		t.Fatalf("GenerateToken() error = %v", err)
	}

	w := doGatedRequest(router, "Bearer "+token)
	if w.Code != http.StatusNotFound {
		t.Errorf("status = %d, want %d", w.Code, http.StatusNotFound)
	}
	if !strings.Contains(w.Body.String(), "User not found") {
		t.Errorf("body = %s, want user not found message", w.Body.String())
	}
}

func TestAuthenticate_StoreFault(t *testing.T) {
	jwtSvc := service.NewJWTService(testSecret, 15*time.Minute)
	repo := &mockUserRepository{
		findByIDFunc: func(ctx context.Context, id int64) (*models.User, error) {
			return nil, errors.New("connection refused")
		},
	}
	router := setupGatedRouter(t, jwtSvc, repo)

	token, err := jwtSvc.GenerateToken(1)
	if err != nil {
		t.Fatalf("GenerateToken() error = %v", err)
	}

	// Internal faults are not auth failures.
	w := doGatedRequest(router, "Bearer "+token)
	if w.Code != http.StatusInternalServerError {
		t.Errorf("status = %d, want %d", w.Code, http.StatusInternalServerError)
	}
}

// =============================================================================
// Plan Gate Tests
// =============================================================================

func TestRequireEnterprise_InsufficientPlan(t *testing.T) {
	jwtSvc := service.NewJWTService(testSecret, 15*time.Minute)

	tests := []struct {
		name string
		plan models.PlanType
	}{
		{
			name: "free tier",
			plan: models.PlanFree,
		},
		{
			name: "premium tier",
			plan: models.PlanPremium,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			user := &models.User{ID: 1, PlanType: tt.plan}
			router := setupGatedRouter(t, jwtSvc, repoWithUser(user))

			token, err := jwtSvc.GenerateToken(1)
			if err != nil {
				t.Fatalf("GenerateToken() error = %v", err)
			}

			w := doGatedRequest(router, "Bearer "+token)
			if w.Code != http.StatusForbidden {
				t.Errorf("status = %d, want %d", w.Code, http.StatusForbidden)
			}
			if !strings.Contains(w.Body.String(), "Enterprise plan required") {
				t.Errorf("body = %s, want required-tier message", w.Body.String())
			}
		})
	}
}

func TestRequireEnterprise_Authorized(t *testing.T) {
	jwtSvc := service.NewJWTService(testSecret, 15*time.Minute)
	user := &models.User{ID: 8, PlanType: models.PlanEnterprise}
	router := setupGatedRouter(t, jwtSvc, repoWithUser(user))

	token, err := jwtSvc.GenerateToken(8)
	if err != nil {
		t.Fatalf("GenerateToken() error = %v", err)
	}

	w := doGatedRequest(router, "Bearer "+token)
	if w.Code != http.StatusOK {
		t.Errorf("status = %d, want %d (body: %s)", w.Code, http.StatusOK, w.Body.String())
	}
	if !strings.Contains(w.Body.String(), `"user_id":8`) {
		t.Errorf("body = %s, want resolved identity", w.Body.String())
	}
}

func TestRequirePlan_WithoutAuthenticate(t *testing.T) {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.GET("/gated", RequirePlan(models.PlanEnterprise), func(c *gin.Context) {
		c.Status(http.StatusOK)
	})

	req := httptest.NewRequest(http.MethodGet, "/gated", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if w.Code != http.StatusUnauthorized {
		t.Errorf("status = %d, want %d", w.Code, http.StatusUnauthorized)
	}
}
