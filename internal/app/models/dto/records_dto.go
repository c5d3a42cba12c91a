package dto

// ResearchProjectRequest represents research project create/update data
type ResearchProjectRequest struct {
	Title         string  `json:"title" binding:"required"`
	FundingAgency string  `json:"fundingAgency,omitempty"`
	Amount        float64 `json:"amount" binding:"omitempty,gte=0"`
	Status        string  `json:"status,omitempty" example:"Ongoing"`
	StartDate     Date    `json:"startDate" binding:"required"`
	EndDate       *Date   `json:"endDate,omitempty"`
}

// PatentRequest represents patent create/update data
type PatentRequest struct {
	Title        string `json:"title" binding:"required"`
	PatentNumber string `json:"patentNumber" binding:"required"`
	Status       string `json:"status,omitempty" example:"Granted"`
	YearAwarded  int    `json:"yearAwarded" binding:"required,gte=1900,lte=2100"`
}

// AwardRequest represents award create/update data
type AwardRequest struct {
	AwardName    string `json:"awardName" binding:"required"`
	AwardingBody string `json:"awardingBody,omitempty"`
	YearRecorded int    `json:"yearRecorded" binding:"required,gte=1900,lte=2100"`
}

// QualificationRequest represents qualification create/update data
type QualificationRequest struct {
	Degree         string `json:"degree" binding:"required"`
	Institution    string `json:"institution" binding:"required"`
	Specialization string `json:"specialization,omitempty"`
	YearOfPassing  int    `json:"yearOfPassing" binding:"required,gte=1900,lte=2100"`
}

// OutreachActivityRequest represents outreach activity create/update data
type OutreachActivityRequest struct {
	ActivityName string `json:"activityName" binding:"required"`
	Role         string `json:"role,omitempty"`
	EventDate    Date   `json:"eventDate" binding:"required"`
	Venue        string `json:"venue,omitempty"`
}

// CitationMetricRequest represents citation metric create/update data
type CitationMetricRequest struct {
	HIndex         int `json:"hIndex" binding:"gte=0"`
	I10Index       int `json:"i10Index" binding:"gte=0"`
	TotalCitations int `json:"totalCitations" binding:"gte=0"`
	YearRecorded   int `json:"yearRecorded" binding:"required,gte=1900,lte=2100"`
}
