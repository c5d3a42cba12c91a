package models

import "time"

// OutreachActivity defines the 'outreach_activities' table
type OutreachActivity struct {
	ID           int64     `json:"id" db:"id"`
	FacultyID    int64     `json:"facultyId" db:"faculty_id"`
	ActivityName string    `json:"activityName" db:"activity_name"`
	Role         string    `json:"role,omitempty" db:"role"`
	EventDate    time.Time `json:"eventDate" db:"event_date"`
	Venue        string    `json:"venue,omitempty" db:"venue"`
}
