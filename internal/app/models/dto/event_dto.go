package dto

// EventRequest represents organised-event create/update data
type EventRequest struct {
	EventName   string `json:"eventName" binding:"required"`
	EventTypeID int64  `json:"eventTypeId" binding:"required,min=1"`
	Role        string `json:"role,omitempty" example:"Convener"`
	StartDate   Date   `json:"startDate" binding:"required"`
	EndDate     *Date  `json:"endDate,omitempty"`
}

// EventTypeRequest creates a new event type
type EventTypeRequest struct {
	Name string `json:"name" binding:"required"`
}
