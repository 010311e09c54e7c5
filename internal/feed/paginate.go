package feed

import "jobdesk-engine/internal/domain"

// Page is a cumulative "load more" window: page N holds the first
// N*pageSize elements, never a disjoint slice.
type Page struct {
	Jobs     []domain.JobPosting `json:"jobs"`
	Page     int                 `json:"page"`
	PageSize int                 `json:"page_size"`
	Total    int                 `json:"total"`
	HasMore  bool                `json:"has_more"`
}

func Paginate(filtered []domain.JobPosting, page, pageSize int) Page {
	if page < 1 {
		page = 1
	}
	if pageSize <= 0 {
		pageSize = 6
	}

	n := page * pageSize
	if n > len(filtered) {
		n = len(filtered)
	}

	out := make([]domain.JobPosting, n)
	copy(out, filtered[:n])

	return Page{
		Jobs:     out,
		Page:     page,
		PageSize: pageSize,
		Total:    len(filtered),
		HasMore:  n < len(filtered),
	}
}
