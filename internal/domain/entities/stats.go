package entities

// Stats aggregates the headline counts shown on the public page and admin dashboard.
type Stats struct {
	Members             int64 `json:"members"`
	Achievements        int64 `json:"achievements"`
	Applications        int64 `json:"applications"`
	PendingApplications int64 `json:"pendingApplications"`
}
