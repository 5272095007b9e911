package middleware

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/baris/collegehub/internal/app/models"
	"github.com/baris/collegehub/internal/app/models/dto"
	"github.com/baris/collegehub/internal/pkg/auth"
)

// Context keys set by Authenticate for downstream handlers
const (
	ContextPrincipal = "principal"
	ContextUserID    = "userID"
	ContextUserType  = "userType"
)

// PrincipalLoader resolves a validated token subject into its backing
// document.
type PrincipalLoader interface {
	LoadPrincipal(ctx context.Context, userType models.UserType, hexID string) (interface{}, error)
}

// AuthMiddleware guards the authenticated route groups
type AuthMiddleware struct {
	jwtService *auth.JWTService
	principals PrincipalLoader
}

// NewAuthMiddleware creates a new AuthMiddleware
func NewAuthMiddleware(jwtService *auth.JWTService, principals PrincipalLoader) *AuthMiddleware {
	return &AuthMiddleware{
		jwtService: jwtService,
		principals: principals,
	}
}

// Authenticate validates the bearer token and loads the principal it names.
// Every failure aborts with the same 401 shape; the response never reveals
// whether the token was missing, expired or orphaned.
func (m *AuthMiddleware) Authenticate() gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			abortUnauthorized(c, "Authentication required")
			return
		}

		tokenString, err := auth.ExtractBearerToken(authHeader)
		if err != nil {
			abortUnauthorized(c, "Authentication required")
			return
		}

		claims, err := m.jwtService.ValidateToken(tokenString)
		if err != nil {
			abortUnauthorized(c, "Invalid or expired token")
			return
		}

		principal, err := m.principals.LoadPrincipal(c.Request.Context(), models.UserType(claims.UserType), claims.SubjectID)
		if err != nil {
			// Token subject no longer exists, e.g. deleted account
			abortUnauthorized(c, "Invalid or expired token")
			return
		}

		c.Set(ContextPrincipal, principal)
		c.Set(ContextUserID, claims.SubjectID)
		c.Set(ContextUserType, claims.UserType)

		c.Next()
	}
}

// RequireRole allows only principals of the given role through. Runs after
// Authenticate and aborts the chain on failure so handlers never execute for
// the wrong role.
func (m *AuthMiddleware) RequireRole(userType models.UserType) gin.HandlerFunc {
	return func(c *gin.Context) {
		current, exists := c.Get(ContextUserType)
		if !exists || current != string(userType) {
			errorDetail := dto.NewErrorDetail(dto.ErrorCodeForbidden, "Access denied. Insufficient permissions.")
			c.AbortWithStatusJSON(http.StatusForbidden,
				dto.NewErrorResponse(errorDetail, "Access denied", http.StatusForbidden))
			return
		}
		c.Next()
	}
}

func abortUnauthorized(c *gin.Context, message string) {
	errorDetail := dto.NewErrorDetail(dto.ErrorCodeUnauthorized, message)
	c.AbortWithStatusJSON(http.StatusUnauthorized,
		dto.NewErrorResponse(errorDetail, message, http.StatusUnauthorized))
}
