package dto

import "github.com/campusdesk/facultyhub/internal/app/models"

// SignupRequest represents a faculty registration request. The department is
// referenced by name and created lazily when it does not exist yet.
type SignupRequest struct {
	FirstName   string      `json:"firstName" binding:"required"`
	LastName    string      `json:"lastName" binding:"required"`
	Email       string      `json:"email" binding:"required,email"`
	Password    string      `json:"password" binding:"required,min=8"`
	Phone       *string     `json:"phone,omitempty"`
	DateOfBirth *Date       `json:"dateOfBirth,omitempty"`
	Designation *string     `json:"designation,omitempty"`
	Role        models.Role `json:"role,omitempty" binding:"omitempty,oneof=Faculty Admin"`
	Department  string      `json:"department" binding:"required"`
}

// LoginRequest represents login credentials
type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// TokenResponse represents JWT token information
type TokenResponse struct {
	AccessToken string `json:"accessToken"`
	TokenType   string `json:"tokenType" example:"Bearer"`
	ExpiresIn   int    `json:"expiresIn"`
}

// AuthResponse represents a successful authentication response
type AuthResponse struct {
	Token   TokenResponse   `json:"token"`
	Faculty FacultyResponse `json:"faculty"`
}
