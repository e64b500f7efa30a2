package application

import "time"

// SubmitInput is the new-tool application form payload.
type SubmitInput struct {
	Name        string
	SubTitle    string
	Categories  []string
	Origin      string
	URL         string
	Logo        string
	Description string
}

type ApplicantDTO struct {
	ID    uint64 `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

type ApplicationDTO struct {
	ID          uint64 `json:"id"`
	Name        string `json:"name"`
	SubTitle    string `json:"sub_title"`
	Origin      string `json:"origin"`
	URL         string `json:"url"`
	Logo        string `json:"logo"`
	Description string `json:"description"`

	Status       string     `json:"status"`
	AppliedAt    time.Time  `json:"applied_at"`
	ProcessedAt  *time.Time `json:"processed_at"`
	RejectReason *string    `json:"reject_reason"`

	Applicant  ApplicantDTO `json:"applicant"`
	Categories []string     `json:"categories"`
}

type UpdateStatusInput struct {
	ApplicationID uint64
	Status        string
	RejectReason  string
	AdminID       uint64
}
