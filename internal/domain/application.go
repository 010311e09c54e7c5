package domain

import "time"

const (
	ApplicationPending  = "pending"
	ApplicationAccepted = "accepted"
	ApplicationRejected = "rejected"
)

// Application is one seeker's application to one posting. The backend owns
// its lifecycle; transitions out of pending are one-way from where we sit.
type Application struct {
	ID        string    `json:"id"`
	JobID     string    `json:"job_id"`
	SeekerID  string    `json:"seeker_id"`
	Status    string    `json:"status"`
	AppliedAt time.Time `json:"applied_at"`

	SeekerName  string `json:"seeker_name,omitempty"`
	SeekerEmail string `json:"seeker_email,omitempty"`
}

func (a Application) Pending() bool { return a.Status == ApplicationPending }
