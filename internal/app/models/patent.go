package models

// Patent defines the 'patents' table
type Patent struct {
	ID           int64  `json:"id" db:"id"`
	FacultyID    int64  `json:"facultyId" db:"faculty_id"`
	Title        string `json:"title" db:"title"`
	PatentNumber string `json:"patentNumber" db:"patent_number"`
	Status       string `json:"status" db:"status" example:"Granted"`
	YearAwarded  int    `json:"yearAwarded" db:"year_awarded"`
}
