package middleware

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/campusdesk/facultyhub/internal/app/models"
	"github.com/campusdesk/facultyhub/internal/pkg/auth"
)

func newTestJWTService(expiry time.Duration) *auth.JWTService {
	return auth.NewJWTService(auth.JWTConfig{
		SecretKey:      "test-secret",
		AccessTokenExp: expiry,
		TokenIssuer:    "facultyhub-test",
	})
}

func serveJWTAuth(t *testing.T, m *AuthMiddleware, authHeader string) *httptest.ResponseRecorder {
	t.Helper()

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodGet, "/api/publications", nil)
	if authHeader != "" {
		c.Request.Header.Set("Authorization", authHeader)
	}

	m.JWTAuth()(c)
	return w
}

func authMessage(t *testing.T, w *httptest.ResponseRecorder) string {
	t.Helper()
	var body struct {
		Message string `json:"message"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	return body.Message
}

func TestJWTAuthExpiredToken(t *testing.T) {
	jwtService := newTestJWTService(-time.Minute)
	token, _, err := jwtService.GenerateToken(&models.Faculty{
		ID:    1,
		Email: "faculty@example.edu",
		Role:  models.RoleFaculty,
	})
	require.NoError(t, err)

	m := NewAuthMiddleware(jwtService, nil)
	w := serveJWTAuth(t, m, "Bearer "+token)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Equal(t, "Token expired", authMessage(t, w))
}

func TestJWTAuthMalformedToken(t *testing.T) {
	m := NewAuthMiddleware(newTestJWTService(time.Hour), nil)
	w := serveJWTAuth(t, m, "Bearer not.a.token")

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Equal(t, "Invalid token", authMessage(t, w))
}

func TestJWTAuthMissingToken(t *testing.T) {
	m := NewAuthMiddleware(newTestJWTService(time.Hour), nil)
	w := serveJWTAuth(t, m, "")

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Equal(t, "Authentication required", authMessage(t, w))
}
