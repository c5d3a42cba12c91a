package repositories

import (
	"github.com/jackc/pgx/v5/pgxpool"
)

// Repositories holds all the repository instances
type Repositories struct {
	FacultyRepository       *FacultyRepository
	DepartmentRepository    *DepartmentRepository
	PublicationRepository   *PublicationRepository
	ResearchRepository      *ResearchRepository
	PatentRepository        *PatentRepository
	AwardRepository         *AwardRepository
	QualificationRepository *QualificationRepository
	TeachingRepository      *TeachingRepository
	EventRepository         *EventRepository
	OutreachRepository      *OutreachRepository
	CitationRepository      *CitationRepository
	FilterRepository        *FilterRepository
}

// NewRepositories initializes all repositories over one shared pool
func NewRepositories(db *pgxpool.Pool) *Repositories {
	return &Repositories{
		FacultyRepository:       NewFacultyRepository(db),
		DepartmentRepository:    NewDepartmentRepository(db),
		PublicationRepository:   NewPublicationRepository(db),
		ResearchRepository:      NewResearchRepository(db),
		PatentRepository:        NewPatentRepository(db),
		AwardRepository:         NewAwardRepository(db),
		QualificationRepository: NewQualificationRepository(db),
		TeachingRepository:      NewTeachingRepository(db),
		EventRepository:         NewEventRepository(db),
		OutreachRepository:      NewOutreachRepository(db),
		CitationRepository:      NewCitationRepository(db),
		FilterRepository:        NewFilterRepository(db),
	}
}
