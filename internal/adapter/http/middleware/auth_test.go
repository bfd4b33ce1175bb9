package middleware

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"rentora/internal/infrastructure/auth"

	"github.com/gin-gonic/gin"
)

func newAuthRouter(jwtUtil *auth.JWTUtil) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/protected", Auth(jwtUtil), func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"owner": OwnerID(c)})
	})
	return r
}

func TestAuth(t *testing.T) {
	jwtUtil := auth.NewJWTUtil(&auth.JWTConfig{SigningKey: "test-secret", ExpirationHours: 1})

	t.Run("valid token resolves the owner", func(t *testing.T) {
		token, err := jwtUtil.GenerateToken("landlord@example.com", "owner-1")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		router := newAuthRouter(jwtUtil)
		req := httptest.NewRequest(http.MethodGet, "/protected", nil)
		req.Header.Set("Authorization", "Bearer "+token)
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)

		if rec.Code != http.StatusOK {
			t.Fatalf("expected status 200, got %d", rec.Code)
		}
		var body map[string]any
		if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
			t.Fatalf("unexpected error parsing body: %v", err)
		}
		if body["owner"] != "owner-1" {
			t.Errorf("expected owner owner-1, got %v", body["owner"])
		}
	})

	t.Run("missing header is rejected", func(t *testing.T) {
		router := newAuthRouter(jwtUtil)
		req := httptest.NewRequest(http.MethodGet, "/protected", nil)
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)

		if rec.Code != http.StatusUnauthorized {
			t.Fatalf("expected status 401, got %d", rec.Code)
		}
		var body map[string]any
		if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
			t.Fatalf("unexpected error parsing body: %v", err)
		}
		if body["code"] != "UNAUTHORIZED" {
			t.Errorf("expected code UNAUTHORIZED, got %v", body["code"])
		}
	})

	t.Run("malformed token is rejected", func(t *testing.T) {
		router := newAuthRouter(jwtUtil)
		req := httptest.NewRequest(http.MethodGet, "/protected", nil)
		req.Header.Set("Authorization", "Bearer not-a-token")
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)

		if rec.Code != http.StatusUnauthorized {
			t.Fatalf("expected status 401, got %d", rec.Code)
		}
	})

	t.Run("token signed with another key is rejected", func(t *testing.T) {
		other := auth.NewJWTUtil(&auth.JWTConfig{SigningKey: "other-secret", ExpirationHours: 1})
		token, err := other.GenerateToken("landlord@example.com", "owner-1")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		router := newAuthRouter(jwtUtil)
		req := httptest.NewRequest(http.MethodGet, "/protected", nil)
		req.Header.Set("Authorization", "Bearer "+token)
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)

		if rec.Code != http.StatusUnauthorized {
			t.Fatalf("expected status 401, got %d", rec.Code)
		}
	})
}
