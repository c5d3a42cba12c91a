package models

// Qualification defines the 'qualifications' table
type Qualification struct {
	ID             int64  `json:"id" db:"id"`
	FacultyID      int64  `json:"facultyId" db:"faculty_id"`
	Degree         string `json:"degree" db:"degree" example:"PhD"`
	Institution    string `json:"institution" db:"institution"`
	Specialization string `json:"specialization,omitempty" db:"specialization"`
	YearOfPassing  int    `json:"yearOfPassing" db:"year_of_passing"`
}
