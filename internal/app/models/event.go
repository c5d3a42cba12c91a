package models

import "time"

// EventType defines the 'event_types' table (workshop, conference, FDP, ...)
type EventType struct {
	ID   int64  `json:"id" db:"id"`
	Name string `json:"name" db:"name" example:"Workshop"`
}

// EventOrganised defines the 'events_organised' table
type EventOrganised struct {
	ID          int64      `json:"id" db:"id"`
	FacultyID   int64      `json:"facultyId" db:"faculty_id"`
	EventName   string     `json:"eventName" db:"event_name"`
	EventTypeID int64      `json:"eventTypeId" db:"event_type_id"`
	Role        string     `json:"role,omitempty" db:"role" example:"Convener"`
	StartDate   time.Time  `json:"startDate" db:"start_date"`
	EndDate     *time.Time `json:"endDate,omitempty" db:"end_date"`

	EventType *EventType `json:"eventType,omitempty"` // Relation, no db tag
}
