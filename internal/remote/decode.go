package remote

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"jobdesk-engine/internal/domain"
)

// flexID tolerates the backend's id-type drift: some endpoints emit numeric
// ids, others strings/UUIDs. Everything past this file is an opaque string.
type flexID string

func (f *flexID) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	if len(b) == 0 || string(b) == "null" {
		*f = ""
		return nil
	}
	if b[0] == '"' {
		var s string
		if err := json.Unmarshal(b, &s); err != nil {
			return err
		}
		*f = flexID(s)
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(b, &n); err != nil {
		return err
	}
	*f = flexID(n.String())
	return nil
}

type wireQualification struct {
	ID    flexID `json:"id"`
	Name  string `json:"name"`
	Skill string `json:"skill"` // older endpoints label the field "skill"
}

type wireCompany struct {
	ID       flexID `json:"id"`
	Name     string `json:"name"`
	City     string `json:"city"`
	Approved bool   `json:"approved"`
	Photo    string `json:"photo"`
}

type wireJob struct {
	ID             flexID              `json:"id"`
	Title          string              `json:"title"`
	Location       string              `json:"location"`
	Salary         string              `json:"salary"`
	Description    string              `json:"description"`
	Tenure         string              `json:"tenure"`
	Type           string              `json:"type"`
	Status         string              `json:"status"`
	CreatedAt      string              `json:"created_at"`
	Company        wireCompany         `json:"company"`
	Qualifications []wireQualification `json:"qualifications"`

	// Applied flag comes under either key depending on the endpoint.
	IsApplied *bool `json:"is_applied"`
	Applied   *bool `json:"applied"`
}

func (w wireJob) toDomain() domain.JobPosting {
	j := domain.JobPosting{
		ID:          string(w.ID),
		Title:       w.Title,
		Location:    w.Location,
		Salary:      w.Salary,
		Description: w.Description,
		Tenure:      w.Tenure,
		Type:        strings.ToLower(w.Type),
		Status:      strings.ToLower(w.Status),
		Company: domain.Company{
			ID:       string(w.Company.ID),
			Name:     w.Company.Name,
			City:     w.Company.City,
			Approved: w.Company.Approved,
			PhotoURL: w.Company.Photo,
		},
	}
	if t, err := time.Parse(time.RFC3339, w.CreatedAt); err == nil {
		j.CreatedAt = t
	}
	for _, q := range w.Qualifications {
		name := q.Name
		if name == "" {
			name = q.Skill
		}
		j.Qualifications = append(j.Qualifications, domain.Qualification{
			ID:   string(q.ID),
			Name: name,
		})
	}
	if w.IsApplied != nil {
		j.IsApplied = *w.IsApplied
	} else if w.Applied != nil {
		j.IsApplied = *w.Applied
	}
	return j
}

// decodeJobList accepts both listing shapes the backend is known to emit:
// a bare array, or an envelope {"data":{"job_postings":[...]}}.
func decodeJobList(body []byte) ([]domain.JobPosting, error) {
	body = bytes.TrimSpace(body)
	if len(body) == 0 {
		return nil, fmt.Errorf("empty job listing response")
	}

	var wire []wireJob
	if body[0] == '[' {
		if err := json.Unmarshal(body, &wire); err != nil {
			return nil, fmt.Errorf("decode job listing array: %w", err)
		}
	} else {
		var env struct {
			Data struct {
				JobPostings []wireJob `json:"job_postings"`
			} `json:"data"`
		}
		if err := json.Unmarshal(body, &env); err != nil {
			return nil, fmt.Errorf("decode job listing envelope: %w", err)
		}
		wire = env.Data.JobPostings
	}

	out := make([]domain.JobPosting, 0, len(wire))
	for _, w := range wire {
		out = append(out, w.toDomain())
	}
	return out, nil
}

func parseTime(s string) (time.Time, error) {
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return t, nil
	}
	return time.Parse("2006-01-02 15:04:05", s)
}

// errorMessage pulls a human-readable message out of an error body.
// Priority: a top-level "message", then the first message of the first
// field of a validation "errors" map. "First field" means document order,
// so this walks tokens instead of decoding into a Go map.
func errorMessage(body []byte) string {
	var env struct {
		Message string          `json:"message"`
		Errors  json.RawMessage `json:"errors"`
	}
	if err := json.Unmarshal(body, &env); err != nil {
		return ""
	}
	if env.Message != "" {
		return env.Message
	}
	if len(env.Errors) == 0 {
		return ""
	}
	return firstValidationMessage(env.Errors)
}

func firstValidationMessage(raw json.RawMessage) string {
	dec := json.NewDecoder(bytes.NewReader(raw))
	t, err := dec.Token()
	if err != nil {
		return ""
	}
	if d, ok := t.(json.Delim); !ok || d != '{' {
		return ""
	}
	// first key
	if _, err := dec.Token(); err != nil {
		return ""
	}
	// first value: either a string or an array of strings
	t, err = dec.Token()
	if err != nil {
		return ""
	}
	switch v := t.(type) {
	case string:
		return v
	case json.Delim:
		if v != '[' {
			return ""
		}
		t, err = dec.Token()
		if err != nil {
			return ""
		}
		if s, ok := t.(string); ok {
			return s
		}
	}
	return ""
}
