package remote

import (
	"context"
	"net/http"
	"net/url"

	"jobdesk-engine/internal/domain"
)

type PostingDraft struct {
	Title            string   `json:"title"`
	Location         string   `json:"location"`
	Salary           string   `json:"salary"`
	Description      string   `json:"description"`
	Tenure           string   `json:"tenure"`
	Type             string   `json:"type"`
	Status           string   `json:"status"`
	QualificationIDs []string `json:"qualification_ids,omitempty"`
}

func (c *Client) ListMyPostings(ctx context.Context) ([]domain.JobPosting, error) {
	b, err := c.do(ctx, http.MethodGet, "/company/job_postings", nil, true)
	if err != nil {
		return nil, err
	}
	return decodeJobList(b)
}

func (c *Client) CreatePosting(ctx context.Context, draft PostingDraft) (string, error) {
	b, err := c.do(ctx, http.MethodPost, "/company/job_postings", draft, true)
	if err != nil {
		return "", err
	}
	return message(b), nil
}

func (c *Client) UpdatePosting(ctx context.Context, id string, draft PostingDraft) (string, error) {
	b, err := c.do(ctx, http.MethodPut, "/company/job_postings/"+url.PathEscape(id), draft, true)
	if err != nil {
		return "", err
	}
	return message(b), nil
}

func (c *Client) DeletePosting(ctx context.Context, id string) (string, error) {
	b, err := c.do(ctx, http.MethodDelete, "/company/job_postings/"+url.PathEscape(id), nil, true)
	if err != nil {
		return "", err
	}
	return message(b), nil
}

type wireApplication struct {
	ID        flexID `json:"id"`
	JobID     flexID `json:"job_posting_id"`
	SeekerID  flexID `json:"seeker_id"`
	Status    string `json:"status"`
	AppliedAt string `json:"applied_at"`
	Seeker    struct {
		Name  string `json:"name"`
		Email string `json:"email"`
	} `json:"seeker"`
}

// ListApplications returns the applicant list for one of the company's
// own postings.
func (c *Client) ListApplications(ctx context.Context, postingID string) ([]domain.Application, error) {
	var wire []wireApplication
	path := "/company/job_postings/" + url.PathEscape(postingID) + "/applications"
	if err := c.getData(ctx, path, true, &wire); err != nil {
		return nil, err
	}
	out := make([]domain.Application, 0, len(wire))
	for _, w := range wire {
		a := domain.Application{
			ID:          string(w.ID),
			JobID:       string(w.JobID),
			SeekerID:    string(w.SeekerID),
			Status:      w.Status,
			SeekerName:  w.Seeker.Name,
			SeekerEmail: w.Seeker.Email,
		}
		a.AppliedAt, _ = parseTime(w.AppliedAt)
		out = append(out, a)
	}
	return out, nil
}

// DecideApplication moves one application out of pending. status must be
// accepted or rejected; the pending-only guard is enforced by the caller
// before the request is ever issued.
func (c *Client) DecideApplication(ctx context.Context, applicationID, status string) (string, error) {
	b, err := c.do(ctx, http.MethodPatch, "/applications/"+url.PathEscape(applicationID),
		map[string]string{"status": status}, true)
	if err != nil {
		return "", err
	}
	return message(b), nil
}
