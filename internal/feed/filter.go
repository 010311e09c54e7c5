package feed

import (
	"strings"

	"jobdesk-engine/internal/domain"
)

// ApplyFilters returns the subsequence of jobs matching the active filters.
// Pure: the input slice and its elements are never mutated, and identical
// inputs always produce identical output.
//
// The free-text query matches case-insensitively against title, company
// name, company city, qualification labels and the plain-text rendition of
// the description. A job with zero qualifications simply cannot match on
// that field. Type and tenure are exact matches unless "all" (or empty).
func ApplyFilters(jobs []domain.JobPosting, query, typeFilter, tenureFilter string) []domain.JobPosting {
	q := strings.ToLower(strings.TrimSpace(query))
	tf := normalizeFilter(typeFilter)
	tn := normalizeFilter(tenureFilter)

	out := make([]domain.JobPosting, 0, len(jobs))
	for _, j := range jobs {
		if tf != "" && !strings.EqualFold(j.Type, tf) {
			continue
		}
		if tn != "" && !strings.EqualFold(j.Tenure, tn) {
			continue
		}
		if q != "" && !matchesQuery(j, q) {
			continue
		}
		out = append(out, j)
	}
	return out
}

func normalizeFilter(v string) string {
	v = strings.ToLower(strings.TrimSpace(v))
	if v == "all" {
		return ""
	}
	return v
}

func matchesQuery(j domain.JobPosting, q string) bool {
	if strings.Contains(strings.ToLower(j.Title), q) {
		return true
	}
	if strings.Contains(strings.ToLower(j.Company.Name), q) {
		return true
	}
	if strings.Contains(strings.ToLower(j.Company.City), q) {
		return true
	}
	for _, qual := range j.Qualifications {
		if strings.Contains(strings.ToLower(qual.Name), q) {
			return true
		}
	}
	return strings.Contains(strings.ToLower(PlainText(j.Description)), q)
}
