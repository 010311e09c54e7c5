package domain

import "time"

const (
	JobStatusOpen   = "open"
	JobStatusClosed = "closed"
)

// JobPosting is one advertised position as the backend reports it.
// IDs are opaque strings; some legacy endpoints emit numbers, the remote
// layer normalizes them before anything here sees one.
type JobPosting struct {
	ID             string          `json:"id"`
	Title          string          `json:"title"`
	Location       string          `json:"location"`
	Salary         string          `json:"salary"` // pre-formatted by the backend
	Description    string          `json:"description"`
	Tenure         string          `json:"tenure"`
	Type           string          `json:"type"`
	Status         string          `json:"status"` // open/closed
	CreatedAt      time.Time       `json:"created_at"`
	Company        Company         `json:"company"`
	Qualifications []Qualification `json:"qualifications"`

	// IsApplied is client-only and not authoritative: seeded from the
	// backend's per-user flag when present, flipped locally after a
	// successful apply. The server wins on the next full load.
	IsApplied bool `json:"is_applied"`
}

func (j JobPosting) Closed() bool { return j.Status == JobStatusClosed }

type Qualification struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}
