package feed

import (
	"time"

	"jobdesk-engine/internal/domain"
)

// FallbackJobs is the fixed demo dataset shown when the backend is
// unreachable on the public read path. Keeps the UI browsable offline;
// never used for any authenticated or mutating call.
func FallbackJobs() []domain.JobPosting {
	created := time.Date(2025, 11, 3, 9, 0, 0, 0, time.UTC)
	return []domain.JobPosting{
		{
			ID:          "demo-1",
			Title:       "Frontend Engineer",
			Location:    "Jakarta",
			Salary:      "IDR 15.000.000 - 20.000.000",
			Description: "<p>Build and maintain the customer-facing web app.</p>",
			Tenure:      "full-time",
			Type:        "onsite",
			Status:      domain.JobStatusOpen,
			CreatedAt:   created,
			Company:     domain.Company{ID: "demo-co-1", Name: "Nusantara Digital", City: "Jakarta", Approved: true},
			Qualifications: []domain.Qualification{
				{ID: "q-1", Name: "React"},
				{ID: "q-2", Name: "TypeScript"},
			},
		},
		{
			ID:          "demo-2",
			Title:       "Backend Engineer",
			Location:    "Bandung",
			Salary:      "IDR 18.000.000 - 25.000.000",
			Description: "<p>Design and run the posting and application services.</p>",
			Tenure:      "full-time",
			Type:        "remote",
			Status:      domain.JobStatusOpen,
			CreatedAt:   created.Add(24 * time.Hour),
			Company:     domain.Company{ID: "demo-co-2", Name: "Kode Kreatif", City: "Bandung", Approved: true},
			Qualifications: []domain.Qualification{
				{ID: "q-3", Name: "Go"},
				{ID: "q-4", Name: "PostgreSQL"},
			},
		},
		{
			ID:          "demo-3",
			Title:       "UI/UX Designer",
			Location:    "Surabaya",
			Salary:      "IDR 10.000.000 - 14.000.000",
			Description: "<p>Own the design system across seeker and company flows.</p>",
			Tenure:      "contract",
			Type:        "hybrid",
			Status:      domain.JobStatusOpen,
			CreatedAt:   created.Add(48 * time.Hour),
			Company:     domain.Company{ID: "demo-co-3", Name: "Pixel Works", City: "Surabaya", Approved: true},
			Qualifications: []domain.Qualification{
				{ID: "q-5", Name: "Figma"},
			},
		},
		{
			ID:          "demo-4",
			Title:       "Data Analyst",
			Location:    "Yogyakarta",
			Salary:      "IDR 12.000.000 - 16.000.000",
			Description: "<p>Report on posting performance and applicant funnels.</p>",
			Tenure:      "part-time",
			Type:        "remote",
			Status:      domain.JobStatusClosed,
			CreatedAt:   created.Add(72 * time.Hour),
			Company:     domain.Company{ID: "demo-co-4", Name: "Data Pintar", City: "Yogyakarta", Approved: true},
			// intentionally no qualifications: search must treat this as
			// non-matching on that field, not a wildcard or a crash
		},
	}
}
