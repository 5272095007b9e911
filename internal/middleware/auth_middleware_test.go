package middleware

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/baris/collegehub/internal/app/models"
	"github.com/baris/collegehub/internal/app/models/dto"
	"github.com/baris/collegehub/internal/pkg/apperrors"
	"github.com/baris/collegehub/internal/pkg/auth"
)

type fakePrincipalLoader struct {
	principal interface{}
	err       error
}

func (f *fakePrincipalLoader) LoadPrincipal(ctx context.Context, userType models.UserType, hexID string) (interface{}, error) {
	return f.principal, f.err
}

func newTestRouter(m *AuthMiddleware) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()

	authenticated := router.Group("", m.Authenticate())
	authenticated.GET("/whoami", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"userType": c.GetString(ContextUserType)})
	})
	authenticated.POST("/restricted", m.RequireRole(models.UserTypeFaculty), func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"ok": true})
	})
	return router
}

func testJWTService() *auth.JWTService {
	return auth.NewJWTService(auth.JWTConfig{
		SecretKey:   "middleware-test-secret",
		TokenExp:    time.Hour,
		TokenIssuer: "test.issuer",
	})
}

func TestAuthenticateRejections(t *testing.T) {
	jwtService := testJWTService()
	m := NewAuthMiddleware(jwtService, &fakePrincipalLoader{principal: &models.Faculty{}})
	router := newTestRouter(m)

	expiredService := auth.NewJWTService(auth.JWTConfig{
		SecretKey:   "middleware-test-secret",
		TokenExp:    -time.Minute,
		TokenIssuer: "test.issuer",
	})
	expired, _ := expiredService.GenerateToken("64a1f2e3d4c5b6a798081920", "faculty")

	tests := []struct {
		name   string
		header string
	}{
		{"missing header", ""},
		{"garbage token", "Bearer not.a.token"},
		{"expired token", "Bearer " + expired},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest("GET", "/whoami", nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}
			rec := httptest.NewRecorder()
			router.ServeHTTP(rec, req)

			if rec.Code != http.StatusUnauthorized {
				t.Fatalf("status = %d, want %d", rec.Code, http.StatusUnauthorized)
			}

			var body dto.APIResponse
			if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
				t.Fatalf("response is not a valid envelope: %v", err)
			}
			if body.Success {
				t.Error("envelope success = true, want false")
			}
			if body.Error == nil {
				t.Error("envelope carries no error detail")
			}
		})
	}
}

func TestAuthenticateRejectsOrphanedToken(t *testing.T) {
	jwtService := testJWTService()
	m := NewAuthMiddleware(jwtService, &fakePrincipalLoader{err: apperrors.ErrFacultyNotFound})
	router := newTestRouter(m)

	token, _ := jwtService.GenerateToken("64a1f2e3d4c5b6a798081920", "faculty")
	req := httptest.NewRequest("GET", "/whoami", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusUnauthorized {
		t.Errorf("status = %d, want %d for deleted principal", rec.Code, http.StatusUnauthorized)
	}
}

func TestAuthenticatePassesValidToken(t *testing.T) {
	jwtService := testJWTService()
	m := NewAuthMiddleware(jwtService, &fakePrincipalLoader{principal: &models.Faculty{}})
	router := newTestRouter(m)

	token, _ := jwtService.GenerateToken("64a1f2e3d4c5b6a798081920", "faculty")
	req := httptest.NewRequest("GET", "/whoami", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d", rec.Code, http.StatusOK)
	}

	var body map[string]string
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("invalid response body: %v", err)
	}
	if body["userType"] != "faculty" {
		t.Errorf("userType = %q, want %q", body["userType"], "faculty")
	}
}

func TestRequireRole(t *testing.T) {
	jwtService := testJWTService()

	tests := []struct {
		name       string
		userType   string
		principal  interface{}
		wantStatus int
	}{
		{"faculty allowed", "faculty", &models.Faculty{}, http.StatusOK},
		{"student forbidden", "student", &models.Student{}, http.StatusForbidden},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := NewAuthMiddleware(jwtService, &fakePrincipalLoader{principal: tt.principal})
			router := newTestRouter(m)

			token, _ := jwtService.GenerateToken("64a1f2e3d4c5b6a798081920", tt.userType)
			req := httptest.NewRequest("POST", "/restricted", nil)
			req.Header.Set("Authorization", "Bearer "+token)
			rec := httptest.NewRecorder()
			router.ServeHTTP(rec, req)

			if rec.Code != tt.wantStatus {
				t.Errorf("status = %d, want %d", rec.Code, tt.wantStatus)
			}
		})
	}
}
