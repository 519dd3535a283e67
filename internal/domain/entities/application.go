package entities

import (
	"time"

	"github.com/google/uuid"
	"github.com/volatiletech/null/v8"
)

type ApplicationStatus string

const (
	ApplicationStatusPending  ApplicationStatus = "pending"
	ApplicationStatusReviewed ApplicationStatus = "reviewed"
	ApplicationStatusApproved ApplicationStatus = "approved"
	ApplicationStatusRejected ApplicationStatus = "rejected"
)

// ApplicationStatuses lists every accepted status. Any status may follow any other.
var ApplicationStatuses = []ApplicationStatus{
	ApplicationStatusPending,
	ApplicationStatusReviewed,
	ApplicationStatusApproved,
	ApplicationStatusRejected,
}

func (s ApplicationStatus) Valid() bool {
	for _, known := range ApplicationStatuses {
		if s == known {
			return true
		}
	}
	return false
}

// ParseApplicationStatus reports whether raw names one of the known statuses.
func ParseApplicationStatus(raw string) (ApplicationStatus, bool) {
	s := ApplicationStatus(raw)
	return s, s.Valid()
}

type Application struct {
	ID          uuid.UUID         `json:"id"`
	Name        string            `json:"name"`
	Email       string            `json:"email"`
	Phone       string            `json:"phone"`
	Skills      string            `json:"skills"`
	Message     string            `json:"message"`
	Status      ApplicationStatus `json:"status"`
	SubmittedAt time.Time         `json:"submittedAt"`
	ReviewedAt  null.Time         `json:"reviewedAt"`
	ReviewNotes string            `json:"reviewNotes"`
}

type ApplicationFilter struct {
	Status *ApplicationStatus
}

// Matches reports whether app passes the filter.
func (f ApplicationFilter) Matches(app *Application) bool {
	return f.Status == nil || app.Status == *f.Status
}

// ApplicationReview moves an application to a new status. ReviewNotes is only
// written when present.
type ApplicationReview struct {
	Status      ApplicationStatus
	ReviewNotes *string
	ReviewedAt  time.Time
}

func (r ApplicationReview) Fields() map[string]any {
	fields := map[string]any{
		"status":     string(r.Status),
		"reviewedAt": r.ReviewedAt,
	}
	putString(fields, "reviewNotes", r.ReviewNotes)
	return fields
}

func (r ApplicationReview) Apply(app *Application) {
	app.Status = r.Status
	app.ReviewedAt = null.TimeFrom(r.ReviewedAt)
	applyString(&app.ReviewNotes, r.ReviewNotes)
}
