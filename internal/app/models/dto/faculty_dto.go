package dto

import (
	"time"

	"github.com/campusdesk/facultyhub/internal/app/models"
)

// FacultyResponse is the client-facing view of a faculty account
type FacultyResponse struct {
	ID          int64      `json:"id"`
	FirstName   string     `json:"firstName"`
	LastName    string     `json:"lastName"`
	Email       string     `json:"email"`
	Phone       *string    `json:"phone,omitempty"`
	DateOfBirth *time.Time `json:"dateOfBirth,omitempty"`
	Designation *string    `json:"designation,omitempty"`
	Role        string     `json:"role"`
	IsApproved  bool       `json:"isApproved"`
	Department  string     `json:"department,omitempty"`
}

// NewFacultyResponse maps a faculty model to its response view
func NewFacultyResponse(f *models.Faculty) FacultyResponse {
	resp := FacultyResponse{
		ID:          f.ID,
		FirstName:   f.FirstName,
		LastName:    f.LastName,
		Email:       f.Email,
		Phone:       f.Phone,
		DateOfBirth: f.DateOfBirth,
		Designation: f.Designation,
		Role:        string(f.Role),
		IsApproved:  f.IsApproved,
	}
	if f.Department != nil {
		resp.Department = f.Department.Name
	}
	return resp
}

// UpdateProfileRequest represents profile update data. Email and role are not
// editable through the profile route.
type UpdateProfileRequest struct {
	FirstName   string  `json:"firstName" binding:"required"`
	LastName    string  `json:"lastName" binding:"required"`
	Phone       *string `json:"phone,omitempty"`
	DateOfBirth *Date   `json:"dateOfBirth,omitempty"`
	Designation *string `json:"designation,omitempty"`
}
