package models

import "time"

// Application statuses as reported by the applications service.
const (
	StatusDraft            = "Draft"
	StatusSubmitted        = "Submitted"
	StatusUnderReview      = "Under Review"
	StatusMissingDocuments = "Missing Documents"
	StatusConditionalOffer = "Conditional Offer"
	StatusFinalOffer       = "Final Offer"
	StatusRejected         = "Rejected"
)

// ProgressStageCount is the number of stages on the application progress
// indicator.
const ProgressStageCount = 4

// statusStages maps an application status to its progress stage.
var statusStages = map[string]int{
	StatusDraft:            1,
	StatusSubmitted:        2,
	StatusUnderReview:      3,
	StatusMissingDocuments: 3,
	StatusConditionalOffer: 4,
	StatusFinalOffer:       4,
	StatusRejected:         4,
}

// ProgressStage returns the 1-based progress stage for a status.
// Unknown statuses map to stage 1.
func ProgressStage(status string) int {
	if s, ok := statusStages[status]; ok {
		return s
	}
	return 1
}

// Application is a single university application with its documents.
type Application struct {
	ID              string     `json:"id"`
	UserID          int        `json:"user_id"`
	UniversityID    int        `json:"university_id"`
	MajorID         int        `json:"major_id"`
	UniversityName  string     `json:"university_name"`
	MajorName       string     `json:"major_name"`
	Country         string     `json:"country"`
	City            string     `json:"city"`
	Status          string     `json:"status"`
	Notes           string     `json:"notes"`
	ApplicationDate time.Time  `json:"application_date"`
	LastUpdated     time.Time  `json:"last_updated"`
	Documents       []Document `json:"documents"`
	DocumentCount   int        `json:"document_count"`
}

// Document is an uploaded application document descriptor.
type Document struct {
	ID           string    `json:"id"`
	Filename     string    `json:"filename"`
	DocumentType string    `json:"document_type"`
	FilePath     string    `json:"file_path"`
	IsVerified   bool      `json:"is_verified"`
	UploadedAt   time.Time `json:"uploaded_at"`
}

// Notification is an application-related notice for a user.
type Notification struct {
	ID        string    `json:"id"`
	Title     string    `json:"title"`
	Message   string    `json:"message"`
	IsRead    bool      `json:"is_read"`
	CreatedAt time.Time `json:"created_at"`
}
