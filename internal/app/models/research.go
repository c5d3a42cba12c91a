package models

import "time"

// ResearchProject defines the 'research_projects' table
type ResearchProject struct {
	ID            int64      `json:"id" db:"id"`
	FacultyID     int64      `json:"facultyId" db:"faculty_id"`
	Title         string     `json:"title" db:"title"`
	FundingAgency string     `json:"fundingAgency,omitempty" db:"funding_agency"`
	Amount        float64    `json:"amount" db:"amount"`
	Status        string     `json:"status" db:"status" example:"Ongoing"`
	StartDate     time.Time  `json:"startDate" db:"start_date"`
	EndDate       *time.Time `json:"endDate,omitempty" db:"end_date"`
}
