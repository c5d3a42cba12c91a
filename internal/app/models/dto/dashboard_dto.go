package dto

import (
	"time"

	"github.com/campusdesk/facultyhub/internal/app/models"
)

// DashboardCounts holds per-entity record counts for one faculty
type DashboardCounts struct {
	Publications       int `json:"publications"`
	ResearchProjects   int `json:"researchProjects"`
	Patents            int `json:"patents"`
	Awards             int `json:"awards"`
	Events             int `json:"events"`
	OutreachActivities int `json:"outreachActivities"`
	SubjectsTaught     int `json:"subjectsTaught"`
	Qualifications     int `json:"qualifications"`
}

// CitationSnapshot is the most recent citation metric, zeros when none exists
type CitationSnapshot struct {
	HIndex         int `json:"hIndex"`
	I10Index       int `json:"i10Index"`
	TotalCitations int `json:"totalCitations"`
	YearRecorded   int `json:"yearRecorded"`
}

// ActivityItem is one entry of the merged recent-activity feed
type ActivityItem struct {
	Label string    `json:"label" example:"Publication"`
	Title string    `json:"title"`
	Link  string    `json:"link" example:"/publications/12"`
	Date  time.Time `json:"date"`
}

// DashboardStats is the aggregated dashboard summary for one faculty
type DashboardStats struct {
	Counts         DashboardCounts          `json:"counts"`
	TeachingYears  float64                  `json:"teachingYears"`
	Citations      CitationSnapshot         `json:"citations"`
	CitationTrend  []*models.CitationMetric `json:"citationTrend"`
	RecentActivity []ActivityItem           `json:"recentActivity"`
}
