package middleware

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/campusdesk/facultyhub/internal/pkg/apperrors"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func respondWith(err error) *httptest.ResponseRecorder {
	recorder := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(recorder)
	c.Request = httptest.NewRequest(http.MethodGet, "/test", nil)

	HandleAPIError(c, err)
	return recorder
}

func decodeMessage(t *testing.T, recorder *httptest.ResponseRecorder) string {
	t.Helper()
	var body struct {
		Message string `json:"message"`
	}
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &body))
	return body.Message
}

func TestHandleAPIErrorStatusMapping(t *testing.T) {
	cases := []struct {
		err    error
		status int
	}{
		{apperrors.ErrValidationFailed, http.StatusBadRequest},
		{apperrors.ErrInvalidCredentials, http.StatusBadRequest},
		{apperrors.ErrTokenExpired, http.StatusUnauthorized},
		{apperrors.ErrTokenInvalid, http.StatusUnauthorized},
		{apperrors.ErrNotRecordOwner, http.StatusForbidden},
		{apperrors.ErrPermissionDenied, http.StatusForbidden},
		{apperrors.ErrAccountNotApproved, http.StatusForbidden},
		{apperrors.ErrRecordNotFound, http.StatusNotFound},
		{apperrors.ErrFacultyNotFound, http.StatusNotFound},
		{apperrors.ErrNoExportData, http.StatusNotFound},
		{apperrors.ErrEmailAlreadyExists, http.StatusConflict},
		{errors.New("database on fire"), http.StatusInternalServerError},
	}

	for _, tc := range cases {
		recorder := respondWith(tc.err)
		assert.Equal(t, tc.status, recorder.Code, "error %v", tc.err)
	}
}

func TestHandleAPIErrorMessages(t *testing.T) {
	recorder := respondWith(apperrors.ErrInvalidCredentials)
	assert.Equal(t, "Invalid credentials", decodeMessage(t, recorder))

	recorder = respondWith(apperrors.ErrNoExportData)
	assert.Equal(t, "No data found for the given filters", decodeMessage(t, recorder))

	// Wrapped sentinels still map through errors.Is
	recorder = respondWith(apperrors.NewValidationError("title is required"))
	assert.Equal(t, http.StatusBadRequest, recorder.Code)
	assert.Equal(t, "title is required", decodeMessage(t, recorder))
}

func TestHandleAPIErrorHidesInternalDetails(t *testing.T) {
	recorder := respondWith(errors.New("pq: connection refused at 10.0.0.3"))

	assert.Equal(t, http.StatusInternalServerError, recorder.Code)
	assert.Equal(t, "Internal server error", decodeMessage(t, recorder))
	assert.NotContains(t, recorder.Body.String(), "10.0.0.3")
}
