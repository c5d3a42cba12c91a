package models

// PublicationType classifies a publication
type PublicationType string

const (
	PublicationJournal    PublicationType = "journal"
	PublicationConference PublicationType = "conference"
	PublicationBook       PublicationType = "book"
)

// Publication defines the 'publications' table
type Publication struct {
	ID              int64           `json:"id" db:"id"`
	FacultyID       int64           `json:"facultyId" db:"faculty_id"`
	Title           string          `json:"title" db:"title"`
	PublicationType PublicationType `json:"publicationType" db:"publication_type"`
	PublicationYear int             `json:"publicationYear" db:"publication_year"`

	Journal    *JournalDetail    `json:"journal,omitempty"`    // Relation, no db tag
	Conference *ConferenceDetail `json:"conference,omitempty"` // Relation, no db tag
	Book       *BookDetail       `json:"book,omitempty"`       // Relation, no db tag
}

// JournalDetail holds journal-specific publication fields
type JournalDetail struct {
	PublicationID int64  `json:"publicationId" db:"publication_id"`
	JournalName   string `json:"journalName" db:"journal_name"`
	Volume        string `json:"volume,omitempty" db:"volume"`
	Issue         string `json:"issue,omitempty" db:"issue"`
	PageNumbers   string `json:"pageNumbers,omitempty" db:"page_numbers"`
}

// ConferenceDetail holds conference-specific publication fields
type ConferenceDetail struct {
	PublicationID  int64  `json:"publicationId" db:"publication_id"`
	ConferenceName string `json:"conferenceName" db:"conference_name"`
	Location       string `json:"location,omitempty" db:"location"`
}

// BookDetail holds book-specific publication fields
type BookDetail struct {
	PublicationID int64  `json:"publicationId" db:"publication_id"`
	Publisher     string `json:"publisher" db:"publisher"`
	ISBN          string `json:"isbn,omitempty" db:"isbn"`
}

// FacultyPublicationLink connects a faculty to a publication with a per-link
// indexing classification (SCI, Scopus, ...)
type FacultyPublicationLink struct {
	ID            int64  `json:"id" db:"id"`
	FacultyID     int64  `json:"facultyId" db:"faculty_id"`
	PublicationID int64  `json:"publicationId" db:"publication_id"`
	Indexing      string `json:"indexing" db:"indexing" example:"Scopus"`
}
