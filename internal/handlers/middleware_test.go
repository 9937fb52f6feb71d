package handlers

import (
	"context"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/edustack/classroom-service/internal/auth"
	"github.com/edustack/classroom-service/internal/models"
	"github.com/edustack/classroom-service/internal/utils"
)

type fakeRoleRepo struct{}

func (fakeRoleRepo) Get(_ context.Context, name string) (*models.Role, error) {
	for _, role := range models.DefaultRoles() {
		if role.Name == name {
			r := role
			return &r, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (fakeRoleRepo) List(_ context.Context) ([]*models.Role, error) { return nil, nil }

func (fakeRoleRepo) Seed(_ context.Context, _ []models.Role) error { return nil }

func testRouter(t *testing.T) (*gin.Engine, *auth.TokenManager) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	tokens := auth.NewTokenManager("test-secret", time.Hour)
	middleware := NewTokenAuthMiddleware(tokens, fakeRoleRepo{})

	router := gin.New()
	protected := router.Group("/protected")
	protected.Use(middleware.AuthMiddleware())
	protected.GET("/ping", func(c *gin.Context) {
		id, _ := GetAccountIDFromContext(c)
		c.JSON(http.StatusOK, gin.H{"user_id": id})
	})
	protected.GET("/moderate", middleware.RequirePermission(models.PermModerate), func(c *gin.Context) {
		c.Status(http.StatusOK)
	})
	protected.GET("/educators-only", middleware.RequireRole(models.RoleEducator), func(c *gin.Context) {
		c.Status(http.StatusOK)
	})
	return router, tokens
}

func TestAuthMiddleware(t *testing.T) {
	router, tokens := testRouter(t)

	t.Run("missing header is unauthorized", func(t *testing.T) {
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/protected/ping", nil)
		router.ServeHTTP(w, req)

		if w.Code != http.StatusUnauthorized {
			t.Fatalf("status %d, want 401", w.Code)
		}
	})

	t.Run("garbage token is a bad request", func(t *testing.T) {
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/protected/ping", nil)
		req.Header.Set("Authorization", "not-a-token")
		router.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("status %d, want 400", w.Code)
		}
	})

	t.Run("valid token passes", func(t *testing.T) {
		token, err := tokens.Issue(7, models.RoleStudent)
		if err != nil {
			t.Fatalf("Issue failed: %v", err)
		}

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/protected/ping", nil)
		req.Header.Set("Authorization", token)
		router.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("status %d, want 200, body %s", w.Code, w.Body.String())
		}
	})
}

func TestPermissionMiddleware(t *testing.T) {
	router, tokens := testRouter(t)

	issue := func(role string) string {
		token, err := tokens.Issue(1, role)
		if err != nil {
			t.Fatalf("Issue failed: %v", err)
		}
		return token
	}

	t.Run("student lacks moderate", func(t *testing.T) {
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/protected/moderate", nil)
		req.Header.Set("Authorization", issue(models.RoleStudent))
		router.ServeHTTP(w, req)

		if w.Code != http.StatusForbidden {
			t.Fatalf("status %d, want 403", w.Code)
		}
	})

	t.Run("educator may moderate", func(t *testing.T) {
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/protected/moderate", nil)
		req.Header.Set("Authorization", issue(models.RoleEducator))
		router.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("status %d, want 200", w.Code)
		}
	})

	t.Run("role gate", func(t *testing.T) {
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/protected/educators-only", nil)
		req.Header.Set("Authorization", issue(models.RoleStudent))
		router.ServeHTTP(w, req)

		if w.Code != http.StatusForbidden {
			t.Fatalf("status %d, want 403", w.Code)
		}
	})
}

func TestRequestIDMiddleware(t *testing.T) {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	SetupMiddleware(router, utils.NewSlogLogger(slog.New(slog.DiscardHandler)), "http://localhost:3000")
	router.GET("/ping", func(c *gin.Context) { c.Status(http.StatusOK) })

	t.Run("generates id when absent", func(t *testing.T) {
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/ping", nil)
		router.ServeHTTP(w, req)

		if w.Header().Get("X-Request-ID") == "" {
			t.Error("X-Request-ID not set")
		}
	})

	t.Run("keeps caller-provided id", func(t *testing.T) {
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/ping", nil)
		req.Header.Set("X-Request-ID", "abc-123")
		router.ServeHTTP(w, req)

		if got := w.Header().Get("X-Request-ID"); got != "abc-123" {
			t.Errorf("X-Request-ID %q, want abc-123", got)
		}
	})

	t.Run("cors preflight", func(t *testing.T) {
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodOptions, "/ping", nil)
		router.ServeHTTP(w, req)

		if w.Code != http.StatusNoContent {
			t.Fatalf("status %d, want 204", w.Code)
		}
		if got := w.Header().Get("Access-Control-Allow-Origin"); got != "http://localhost:3000" {
			t.Errorf("allow-origin %q", got)
		}
	})
}
