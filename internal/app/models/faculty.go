package models

import (
	"time"
)

// Role represents a faculty account role
type Role string

const (
	RoleFaculty Role = "Faculty"
	RoleAdmin   Role = "Admin"
)

// Faculty defines an academic staff account based on the 'faculties' table.
// It is the root owner entity for almost all other records.
type Faculty struct {
	ID           int64      `json:"id" db:"id" example:"1"`
	FirstName    string     `json:"firstName" db:"first_name" example:"Asha"`
	LastName     string     `json:"lastName" db:"last_name" example:"Verma"`
	Email        string     `json:"email" db:"email" example:"asha.verma@univ.edu"`
	Password     string     `json:"-" db:"password"` // hashed, excluded from JSON
	Phone        *string    `json:"phone,omitempty" db:"phone"`
	DateOfBirth  *time.Time `json:"dateOfBirth,omitempty" db:"date_of_birth"`
	Designation  *string    `json:"designation,omitempty" db:"designation"`
	Role         Role       `json:"role" db:"role" example:"Faculty"`
	IsApproved   bool       `json:"isApproved" db:"is_approved"`
	DepartmentID int64      `json:"departmentId" db:"department_id"`
	CreatedAt    time.Time  `json:"createdAt" db:"created_at"`

	Department *Department `json:"department,omitempty"` // Relation, no db tag
}

// Department defines the 'departments' table. Departments are created lazily
// at signup when the named department does not exist yet.
type Department struct {
	ID   int64  `json:"id" db:"id"`
	Name string `json:"name" db:"name" example:"Computer Science"`
}
