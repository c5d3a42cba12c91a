package models

import "time"

// TeachingExperience defines the 'teaching_experiences' table. A nil EndDate
// marks an ongoing engagement.
type TeachingExperience struct {
	ID          int64      `json:"id" db:"id"`
	FacultyID   int64      `json:"facultyId" db:"faculty_id"`
	Institution string     `json:"institution" db:"institution"`
	Designation string     `json:"designation" db:"designation"`
	StartDate   time.Time  `json:"startDate" db:"start_date"`
	EndDate     *time.Time `json:"endDate,omitempty" db:"end_date"`
}

// SubjectTaught defines the 'subjects_taught' table
type SubjectTaught struct {
	ID          int64  `json:"id" db:"id"`
	FacultyID   int64  `json:"facultyId" db:"faculty_id"`
	SubjectName string `json:"subjectName" db:"subject_name"`
	Semester    string `json:"semester,omitempty" db:"semester"`
	Year        int    `json:"year" db:"year"`
}
