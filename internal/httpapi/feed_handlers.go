package httpapi

import (
	"net/http"
	"strings"

	"jobdesk-engine/internal/domain"
	"jobdesk-engine/internal/feed"
	"jobdesk-engine/internal/toast"
)

// excerptLen caps the description excerpt on feed cards.
const excerptLen = 160

type FeedHandler struct {
	Feed  *feed.Controller
	Toast *toast.Notifier
}

// jobView is a posting plus the pre-clipped plain-text excerpt the list
// cards render instead of the raw HTML description.
type jobView struct {
	domain.JobPosting
	Excerpt string `json:"excerpt"`
}

type feedResponse struct {
	Jobs     []jobView `json:"jobs"`
	Page     int       `json:"page"`
	PageSize int       `json:"page_size"`
	Total    int       `json:"total"`
	HasMore  bool      `json:"has_more"`
	Degraded bool      `json:"degraded"`
	Query    string    `json:"query,omitempty"`
	Type     string    `json:"type,omitempty"`
	Tenure   string    `json:"tenure,omitempty"`
}

func newFeedResponse(p feed.Page, degraded bool) feedResponse {
	views := make([]jobView, len(p.Jobs))
	for i, j := range p.Jobs {
		views[i] = jobView{JobPosting: j, Excerpt: feed.Excerpt(j.Description, excerptLen)}
	}
	return feedResponse{
		Jobs:     views,
		Page:     p.Page,
		PageSize: p.PageSize,
		Total:    p.Total,
		HasMore:  p.HasMore,
		Degraded: degraded,
	}
}

// Get applies the filters from the query string (any change resets the
// page cursor) and returns the current cumulative window.
func (h FeedHandler) Get(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	query := q.Get("query")
	typ := q.Get("type")
	tenure := q.Get("tenure")

	h.Feed.SetFilters(query, typ, tenure)
	res := newFeedResponse(h.Feed.View(), h.Feed.Degraded())
	res.Query, res.Type, res.Tenure = query, typ, tenure
	writeJSON(w, res)
}

// More extends the window by one page.
func (h FeedHandler) More(w http.ResponseWriter, r *http.Request) {
	h.Feed.LoadMore()
	writeJSON(w, newFeedResponse(h.Feed.View(), h.Feed.Degraded()))
}

// Refresh re-fetches the authoritative list. Degraded fallback is handled
// inside the controller and never reaches this error path.
func (h FeedHandler) Refresh(w http.ResponseWriter, r *http.Request) {
	if err := h.Feed.Load(r.Context()); err != nil {
		fail(w, r, h.Toast, err)
		return
	}
	if h.Feed.Degraded() {
		h.Toast.Warning("Showing sample jobs; the server is unreachable.")
	}
	writeJSON(w, newFeedResponse(h.Feed.View(), h.Feed.Degraded()))
}

// Apply submits an application for /jobs/{id}/apply.
func (h FeedHandler) Apply(w http.ResponseWriter, r *http.Request) {
	id := strings.TrimSuffix(strings.TrimPrefix(r.URL.Path, "/jobs/"), "/apply")
	if id == "" || strings.Contains(id, "/") {
		WriteError(w, r, http.StatusBadRequest, "bad_request", "invalid job id")
		return
	}

	msg, err := h.Feed.Apply(r.Context(), id)
	if err != nil {
		fail(w, r, h.Toast, err)
		return
	}

	h.Toast.Success(msg)
	writeJSON(w, map[string]any{"ok": true, "message": msg})
}

// Qualifications serves the cached catalog for filter dropdowns.
func (h FeedHandler) Qualifications(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, h.Feed.Qualifications())
}
