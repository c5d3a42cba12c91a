package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/campusdesk/facultyhub/internal/app/models/dto"
	"github.com/campusdesk/facultyhub/internal/app/services"
	"github.com/campusdesk/facultyhub/internal/middleware"
)

// AdminController handles the account approval workflow
type AdminController struct {
	adminService *services.AdminService
}

// NewAdminController creates a new AdminController
func NewAdminController(adminService *services.AdminService) *AdminController {
	return &AdminController{adminService: adminService}
}

// ListPending returns all accounts awaiting approval
func (ctrl *AdminController) ListPending(c *gin.Context) {
	pending, err := ctrl.adminService.ListPending(c.Request.Context())
	if err != nil {
		middleware.HandleAPIError(c, err)
		return
	}

	c.JSON(http.StatusOK, pending)
}

// Approve marks a pending account as approved
func (ctrl *AdminController) Approve(c *gin.Context) {
	facultyID, err := parseIDParam(c, "facultyId")
	if err != nil {
		middleware.HandleAPIError(c, err)
		return
	}

	if err := ctrl.adminService.Approve(c.Request.Context(), facultyID); err != nil {
		middleware.HandleAPIError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.MessageResponse{Message: "Faculty approved"})
}

// Reject deletes a pending account
func (ctrl *AdminController) Reject(c *gin.Context) {
	facultyID, err := parseIDParam(c, "facultyId")
	if err != nil {
		middleware.HandleAPIError(c, err)
		return
	}

	if err := ctrl.adminService.Reject(c.Request.Context(), facultyID); err != nil {
		middleware.HandleAPIError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.MessageResponse{Message: "Faculty rejected"})
}
