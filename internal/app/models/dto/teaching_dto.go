package dto

// TeachingExperienceRequest represents teaching experience create/update data.
// A missing endDate marks an ongoing engagement.
type TeachingExperienceRequest struct {
	Institution string `json:"institution" binding:"required"`
	Designation string `json:"designation" binding:"required"`
	StartDate   Date   `json:"startDate" binding:"required"`
	EndDate     *Date  `json:"endDate,omitempty"`
}

// SubjectTaughtRequest represents subject taught create/update data
type SubjectTaughtRequest struct {
	SubjectName string `json:"subjectName" binding:"required"`
	Semester    string `json:"semester,omitempty"`
	Year        int    `json:"year" binding:"required,gte=1900,lte=2100"`
}
