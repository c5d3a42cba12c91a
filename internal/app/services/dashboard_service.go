package services

import (
	"context"
	"fmt"
	"math"
	"sort"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"

	"github.com/campusdesk/facultyhub/internal/app/models"
	"github.com/campusdesk/facultyhub/internal/app/models/dto"
	"github.com/campusdesk/facultyhub/internal/app/repositories"
)

// recentPerEntity is how many newest records each entity contributes to the
// activity feed before the merged feed is truncated.
const (
	recentPerEntity    = 5
	recentActivitySize = 10
)

// DashboardService aggregates per-faculty statistics across all record types
type DashboardService struct {
	repos  *repositories.Repositories
	logger zerolog.Logger
}

// NewDashboardService creates a new DashboardService
func NewDashboardService(repos *repositories.Repositories, logger zerolog.Logger) *DashboardService {
	return &DashboardService{
		repos:  repos,
		logger: logger,
	}
}

// GetStats collects counts, teaching years, citation metrics and the recent
// activity feed for one faculty. All reads are independent and run
// concurrently; the first failure cancels the rest and fails the call.
func (s *DashboardService) GetStats(ctx context.Context, facultyID int64) (*dto.DashboardStats, error) {
	var (
		counts        dto.DashboardCounts
		experiences   []*models.TeachingExperience
		citationTrend []*models.CitationMetric
		latestMetric  *models.CitationMetric

		recentPublications []*models.Publication
		recentResearch     []*models.ResearchProject
		recentPatents      []*models.Patent
		recentAwards       []*models.Award
		recentEvents       []*models.EventOrganised
	)

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() (err error) {
		counts.Publications, err = s.repos.PublicationRepository.CountByFaculty(gctx, facultyID)
		return err
	})
	g.Go(func() (err error) {
		counts.ResearchProjects, err = s.repos.ResearchRepository.CountByFaculty(gctx, facultyID)
		return err
	})
	g.Go(func() (err error) {
		counts.Patents, err = s.repos.PatentRepository.CountByFaculty(gctx, facultyID)
		return err
	})
	g.Go(func() (err error) {
		counts.Awards, err = s.repos.AwardRepository.CountByFaculty(gctx, facultyID)
		return err
	})
	g.Go(func() (err error) {
		counts.Events, err = s.repos.EventRepository.CountByFaculty(gctx, facultyID)
		return err
	})
	g.Go(func() (err error) {
		counts.OutreachActivities, err = s.repos.OutreachRepository.CountByFaculty(gctx, facultyID)
		return err
	})
	g.Go(func() (err error) {
		counts.SubjectsTaught, err = s.repos.TeachingRepository.CountSubjectsByFaculty(gctx, facultyID)
		return err
	})
	g.Go(func() (err error) {
		counts.Qualifications, err = s.repos.QualificationRepository.CountByFaculty(gctx, facultyID)
		return err
	})

	g.Go(func() (err error) {
		experiences, err = s.repos.TeachingRepository.ListByFaculty(gctx, facultyID)
		return err
	})
	g.Go(func() (err error) {
		citationTrend, err = s.repos.CitationRepository.ListByFaculty(gctx, facultyID)
		return err
	})
	g.Go(func() (err error) {
		latestMetric, err = s.repos.CitationRepository.Latest(gctx, facultyID)
		return err
	})

	g.Go(func() (err error) {
		recentPublications, err = s.repos.PublicationRepository.RecentByFaculty(gctx, facultyID, recentPerEntity)
		return err
	})
	g.Go(func() (err error) {
		recentResearch, err = s.repos.ResearchRepository.RecentByFaculty(gctx, facultyID, recentPerEntity)
		return err
	})
	g.Go(func() (err error) {
		recentPatents, err = s.repos.PatentRepository.RecentByFaculty(gctx, facultyID, recentPerEntity)
		return err
	})
	g.Go(func() (err error) {
		recentAwards, err = s.repos.AwardRepository.RecentByFaculty(gctx, facultyID, recentPerEntity)
		return err
	})
	g.Go(func() (err error) {
		recentEvents, err = s.repos.EventRepository.RecentByFaculty(gctx, facultyID, recentPerEntity)
		return err
	})

	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("error aggregating dashboard stats: %w", err)
	}

	stats := &dto.DashboardStats{
		Counts:        counts,
		TeachingYears: teachingYears(experiences, time.Now()),
		Citations:     citationSnapshot(latestMetric),
		CitationTrend: citationTrend,
		RecentActivity: buildRecentActivity(
			recentPublications, recentResearch, recentPatents, recentAwards, recentEvents,
		),
	}

	return stats, nil
}

// teachingYears sums the year-granular duration of each teaching engagement.
// Open engagements (nil end date) run until now. Months contribute fractional
// years; the total is rounded to one decimal.
func teachingYears(experiences []*models.TeachingExperience, now time.Time) float64 {
	var total float64
	for _, exp := range experiences {
		end := now
		if exp.EndDate != nil {
			end = *exp.EndDate
		}
		start := exp.StartDate

		total += (float64(end.Year()) + float64(end.Month())/12) -
			(float64(start.Year()) + float64(start.Month())/12)
	}

	return math.Round(total*10) / 10
}

// citationSnapshot maps the latest metric to its response view, zeros when
// the faculty has no citation history yet.
func citationSnapshot(metric *models.CitationMetric) dto.CitationSnapshot {
	if metric == nil {
		return dto.CitationSnapshot{}
	}
	return dto.CitationSnapshot{
		HIndex:         metric.HIndex,
		I10Index:       metric.I10Index,
		TotalCitations: metric.TotalCitations,
		YearRecorded:   metric.YearRecorded,
	}
}

// yearDate anchors year-only records at January 1st so they sort alongside
// full dates.
func yearDate(year int) time.Time {
	return time.Date(year, time.January, 1, 0, 0, 0, 0, time.UTC)
}

// buildRecentActivity merges the newest records of every entity into a single
// feed sorted newest-first and truncated to recentActivitySize entries. The
// sort is stable so entries sharing a date keep their per-entity order.
func buildRecentActivity(
	publications []*models.Publication,
	research []*models.ResearchProject,
	patents []*models.Patent,
	awards []*models.Award,
	events []*models.EventOrganised,
) []dto.ActivityItem {
	items := make([]dto.ActivityItem, 0,
		len(publications)+len(research)+len(patents)+len(awards)+len(events))

	for _, p := range publications {
		items = append(items, dto.ActivityItem{
			Label: "Publication",
			Title: p.Title,
			Link:  fmt.Sprintf("/publications/%d", p.ID),
			Date:  yearDate(p.PublicationYear),
		})
	}
	for _, r := range research {
		items = append(items, dto.ActivityItem{
			Label: "Research Project",
			Title: r.Title,
			Link:  fmt.Sprintf("/research/%d", r.ID),
			Date:  r.StartDate,
		})
	}
	for _, p := range patents {
		items = append(items, dto.ActivityItem{
			Label: "Patent",
			Title: p.Title,
			Link:  fmt.Sprintf("/patents/%d", p.ID),
			Date:  yearDate(p.YearAwarded),
		})
	}
	for _, a := range awards {
		items = append(items, dto.ActivityItem{
			Label: "Award",
			Title: a.AwardName,
			Link:  fmt.Sprintf("/awards/%d", a.ID),
			Date:  yearDate(a.YearRecorded),
		})
	}
	for _, e := range events {
		items = append(items, dto.ActivityItem{
			Label: "Event",
			Title: e.EventName,
			Link:  fmt.Sprintf("/events/%d", e.ID),
			Date:  e.StartDate,
		})
	}

	sort.SliceStable(items, func(i, j int) bool {
		return items[i].Date.After(items[j].Date)
	})

	if len(items) > recentActivitySize {
		items = items[:recentActivitySize]
	}
	return items
}
