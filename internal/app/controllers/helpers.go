package controllers

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/campusdesk/facultyhub/internal/pkg/apperrors"
)

// parseIDParam reads a positive integer path parameter
func parseIDParam(c *gin.Context, name string) (int64, error) {
	id, err := strconv.ParseInt(c.Param(name), 10, 64)
	if err != nil || id <= 0 {
		return 0, apperrors.NewValidationError("Invalid " + name + " parameter")
	}
	return id, nil
}
