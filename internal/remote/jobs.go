package remote

import (
	"context"
	"net/http"
	"net/url"

	"jobdesk-engine/internal/domain"
)

// ListJobs fetches the public listing. Accepts both known response shapes.
func (c *Client) ListJobs(ctx context.Context) ([]domain.JobPosting, error) {
	b, err := c.do(ctx, http.MethodGet, "/job_postings", nil, false)
	if err != nil {
		return nil, err
	}
	return decodeJobList(b)
}

// ListJobsForSeeker fetches the personalized listing, which annotates each
// posting with the caller's applied flag.
func (c *Client) ListJobsForSeeker(ctx context.Context) ([]domain.JobPosting, error) {
	b, err := c.do(ctx, http.MethodGet, "/seeker/job_postings", nil, true)
	if err != nil {
		return nil, err
	}
	return decodeJobList(b)
}

// Apply submits an application: authenticated POST, empty body. The server's
// message comes back verbatim on both success and failure.
func (c *Client) Apply(ctx context.Context, jobID string) (string, error) {
	b, err := c.do(ctx, http.MethodPost, "/job_postings/"+url.PathEscape(jobID)+"/apply", nil, true)
	if err != nil {
		return "", err
	}
	return message(b), nil
}

func (c *Client) ListQualifications(ctx context.Context) ([]domain.Qualification, error) {
	var wire []wireQualification
	if err := c.getData(ctx, "/qualifications", false, &wire); err != nil {
		return nil, err
	}
	out := make([]domain.Qualification, 0, len(wire))
	for _, q := range wire {
		name := q.Name
		if name == "" {
			name = q.Skill
		}
		out = append(out, domain.Qualification{ID: string(q.ID), Name: name})
	}
	return out, nil
}
