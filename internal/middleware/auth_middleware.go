package middleware

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/campusdesk/facultyhub/internal/app/models/dto"
	"github.com/campusdesk/facultyhub/internal/app/repositories"
	"github.com/campusdesk/facultyhub/internal/pkg/auth"
)

// Context keys set by JWTAuth for downstream handlers
const (
	ContextFacultyID = "facultyID"
	ContextEmail     = "email"
	ContextRole      = "role"
)

// TokenCookieName is the HTTP-only cookie carrying the access token for
// browser clients. The Authorization header takes precedence when both are
// present.
const TokenCookieName = "token"

// AuthMiddleware guards routes behind JWT verification
type AuthMiddleware struct {
	jwtService  *auth.JWTService
	facultyRepo *repositories.FacultyRepository
}

// NewAuthMiddleware creates a new AuthMiddleware
func NewAuthMiddleware(jwtService *auth.JWTService, facultyRepo *repositories.FacultyRepository) *AuthMiddleware {
	return &AuthMiddleware{
		jwtService:  jwtService,
		facultyRepo: facultyRepo,
	}
}

// JWTAuth verifies the access token on every request. The token is read from
// the Authorization header or the token cookie; both resolve to the same
// verification path. The subject must still exist in the faculty store.
func (m *AuthMiddleware) JWTAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenString, err := m.resolveToken(c)
		if err != nil {
			abortUnauthorized(c, "Authentication required")
			return
		}

		claims, err := m.jwtService.ValidateToken(tokenString)
		if err != nil {
			if errors.Is(err, auth.ErrExpiredToken) {
				abortUnauthorized(c, "Token expired")
				return
			}
			abortUnauthorized(c, "Invalid token")
			return
		}

		// Tokens for deleted (rejected) accounts must stop working
		if _, err := m.facultyRepo.GetByID(c.Request.Context(), claims.FacultyID); err != nil {
			abortUnauthorized(c, "Invalid token")
			return
		}

		c.Set(ContextFacultyID, claims.FacultyID)
		c.Set(ContextEmail, claims.Email)
		c.Set(ContextRole, claims.Role)
		c.Next()
	}
}

// RoleRequired allows only callers whose token carries the given role. It
// must run after JWTAuth.
func (m *AuthMiddleware) RoleRequired(role string) gin.HandlerFunc {
	return func(c *gin.Context) {
		if c.GetString(ContextRole) != role {
			c.AbortWithStatusJSON(http.StatusForbidden, dto.NewErrorResponse("Permission denied"))
			return
		}
		c.Next()
	}
}

func (m *AuthMiddleware) resolveToken(c *gin.Context) (string, error) {
	if authHeader := c.GetHeader("Authorization"); authHeader != "" {
		return auth.ExtractBearerToken(authHeader)
	}

	if cookie, err := c.Cookie(TokenCookieName); err == nil && cookie != "" {
		return cookie, nil
	}

	return "", auth.ErrInvalidFormat
}

func abortUnauthorized(c *gin.Context, message string) {
	c.AbortWithStatusJSON(http.StatusUnauthorized, dto.NewErrorResponse(message))
}

// FacultyID returns the authenticated caller's faculty ID from the context
func FacultyID(c *gin.Context) int64 {
	return c.GetInt64(ContextFacultyID)
}
