package services

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/campusdesk/facultyhub/internal/app/models"
)

func date(year int, month time.Month, day int) time.Time {
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}

func datePtr(year int, month time.Month, day int) *time.Time {
	t := date(year, month, day)
	return &t
}

func TestTeachingYears(t *testing.T) {
	now := date(2024, time.June, 1)

	experiences := []*models.TeachingExperience{
		{StartDate: date(2020, time.January, 1), EndDate: datePtr(2022, time.July, 1)},
	}
	assert.InDelta(t, 2.5, teachingYears(experiences, now), 0.001)

	// Open engagement runs until now
	experiences = []*models.TeachingExperience{
		{StartDate: date(2023, time.June, 1)},
	}
	assert.InDelta(t, 1.0, teachingYears(experiences, now), 0.001)

	// Durations accumulate across engagements
	experiences = []*models.TeachingExperience{
		{StartDate: date(2020, time.January, 1), EndDate: datePtr(2022, time.July, 1)},
		{StartDate: date(2023, time.June, 1)},
	}
	assert.InDelta(t, 3.5, teachingYears(experiences, now), 0.001)

	assert.Zero(t, teachingYears(nil, now))
}

func TestCitationSnapshot(t *testing.T) {
	assert.Zero(t, citationSnapshot(nil))

	snap := citationSnapshot(&models.CitationMetric{
		HIndex:         12,
		I10Index:       20,
		TotalCitations: 540,
		YearRecorded:   2024,
	})
	assert.Equal(t, 12, snap.HIndex)
	assert.Equal(t, 540, snap.TotalCitations)
	assert.Equal(t, 2024, snap.YearRecorded)
}

func TestBuildRecentActivityOrdering(t *testing.T) {
	publications := []*models.Publication{
		{ID: 1, Title: "Old paper", PublicationYear: 2018},
		{ID: 2, Title: "New paper", PublicationYear: 2024},
	}
	research := []*models.ResearchProject{
		{ID: 3, Title: "Grant project", StartDate: date(2023, time.March, 15)},
	}
	events := []*models.EventOrganised{
		{ID: 4, EventName: "Faculty workshop", StartDate: date(2024, time.May, 10)},
	}

	items := buildRecentActivity(publications, research, nil, nil, events)

	assert.Len(t, items, 4)
	for i := 1; i < len(items); i++ {
		assert.False(t, items[i-1].Date.Before(items[i].Date), "feed must be newest-first")
	}

	assert.Equal(t, "Event", items[0].Label)
	assert.Equal(t, "/events/4", items[0].Link)
	assert.Equal(t, "New paper", items[1].Title)
	assert.Equal(t, "Old paper", items[3].Title)
}

func TestBuildRecentActivityTruncation(t *testing.T) {
	var publications []*models.Publication
	var awards []*models.Award
	for i := 0; i < 5; i++ {
		publications = append(publications, &models.Publication{
			ID: int64(i), Title: "p", PublicationYear: 2020 + i,
		})
		awards = append(awards, &models.Award{
			ID: int64(10 + i), AwardName: "a", YearRecorded: 2020 + i,
		})
	}
	patents := []*models.Patent{{ID: 20, Title: "pt", YearAwarded: 2019}}

	items := buildRecentActivity(publications, nil, patents, awards, nil)

	assert.Len(t, items, 10)
	// The single oldest entry falls off the end
	for _, item := range items {
		assert.NotEqual(t, "/patents/20", item.Link)
	}
}

func TestBuildRecentActivityStableWithinDate(t *testing.T) {
	publications := []*models.Publication{
		{ID: 1, Title: "first", PublicationYear: 2024},
		{ID: 2, Title: "second", PublicationYear: 2024},
	}

	items := buildRecentActivity(publications, nil, nil, nil, nil)

	assert.Equal(t, "first", items[0].Title)
	assert.Equal(t, "second", items[1].Title)
}
