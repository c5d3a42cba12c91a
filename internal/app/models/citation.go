package models

// CitationMetric defines the 'citation_metrics' table, one snapshot per year
type CitationMetric struct {
	ID             int64 `json:"id" db:"id"`
	FacultyID      int64 `json:"facultyId" db:"faculty_id"`
	HIndex         int   `json:"hIndex" db:"h_index"`
	I10Index       int   `json:"i10Index" db:"i10_index"`
	TotalCitations int   `json:"totalCitations" db:"total_citations"`
	YearRecorded   int   `json:"yearRecorded" db:"year_recorded"`
}
