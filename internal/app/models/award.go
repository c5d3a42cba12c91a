package models

// Award defines the 'awards' table
type Award struct {
	ID           int64  `json:"id" db:"id"`
	FacultyID    int64  `json:"facultyId" db:"faculty_id"`
	AwardName    string `json:"awardName" db:"award_name"`
	AwardingBody string `json:"awardingBody,omitempty" db:"awarding_body"`
	YearRecorded int    `json:"yearRecorded" db:"year_recorded"`
}
