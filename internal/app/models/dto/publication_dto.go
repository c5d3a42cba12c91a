package dto

// JournalDetailRequest carries journal-specific publication fields
type JournalDetailRequest struct {
	JournalName string `json:"journalName" binding:"required"`
	Volume      string `json:"volume,omitempty"`
	Issue       string `json:"issue,omitempty"`
	PageNumbers string `json:"pageNumbers,omitempty"`
}

// ConferenceDetailRequest carries conference-specific publication fields
type ConferenceDetailRequest struct {
	ConferenceName string `json:"conferenceName" binding:"required"`
	Location       string `json:"location,omitempty"`
}

// BookDetailRequest carries book-specific publication fields
type BookDetailRequest struct {
	Publisher string `json:"publisher" binding:"required"`
	ISBN      string `json:"isbn,omitempty"`
}

// PublicationRequest represents publication create/update data. Exactly the
// detail block matching PublicationType is consulted; the others are ignored.
type PublicationRequest struct {
	Title           string                   `json:"title" binding:"required"`
	PublicationType string                   `json:"publicationType" binding:"required,oneof=journal conference book"`
	PublicationYear int                      `json:"publicationYear" binding:"required,gte=1900,lte=2100"`
	Indexing        string                   `json:"indexing,omitempty" example:"Scopus"`
	Journal         *JournalDetailRequest    `json:"journal,omitempty"`
	Conference      *ConferenceDetailRequest `json:"conference,omitempty"`
	Book            *BookDetailRequest       `json:"book,omitempty"`
}

// IndexingLinkRequest adds an indexing classification link to a publication
type IndexingLinkRequest struct {
	Indexing string `json:"indexing" binding:"required"`
}
