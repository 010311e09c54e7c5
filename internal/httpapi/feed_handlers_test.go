package httpapi

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"jobdesk-engine/internal/domain"
	"jobdesk-engine/internal/events"
	"jobdesk-engine/internal/feed"
	"jobdesk-engine/internal/toast"
)

type stubAPI struct {
	jobs       []domain.JobPosting
	applyCalls int
}

func (s *stubAPI) ListJobs(ctx context.Context) ([]domain.JobPosting, error) { return s.jobs, nil }
func (s *stubAPI) ListJobsForSeeker(ctx context.Context) ([]domain.JobPosting, error) {
	return s.jobs, nil
}
func (s *stubAPI) Apply(ctx context.Context, jobID string) (string, error) {
	s.applyCalls++
	return "ok", nil
}
func (s *stubAPI) ListQualifications(ctx context.Context) ([]domain.Qualification, error) {
	return nil, nil
}

type stubSession struct{ user *domain.User }

func (s stubSession) User() (domain.User, bool) {
	if s.user == nil {
		return domain.User{}, false
	}
	return *s.user, true
}

func testFeedServer(t *testing.T, api *stubAPI, sess stubSession) (*httptest.Server, *toast.Notifier) {
	t.Helper()

	hub := events.NewHub()
	toasts := toast.NewNotifier(toast.Options{
		Duration: time.Hour, // keep test toasts visible for assertions
		Tick:     time.Minute,
		Hub:      hub,
	})
	ctl := feed.NewController(feed.ControllerOptions{
		API:             api,
		Session:         sess,
		Hub:             hub,
		FallbackEnabled: true,
		PageSize:        2,
	})
	require.NoError(t, ctl.Load(context.Background()))

	mux := NewMux(Deps{Feed: ctl, Toast: toasts, Hub: hub})
	srv := httptest.NewServer(Chain(mux, RequestID, Recover))
	t.Cleanup(srv.Close)
	return srv, toasts
}

func feedJobs() []domain.JobPosting {
	return []domain.JobPosting{
		{ID: "1", Title: "Frontend Engineer", Type: "remote", Status: domain.JobStatusOpen},
		{ID: "2", Title: "Backend Engineer", Type: "onsite", Status: domain.JobStatusOpen},
		{ID: "3", Title: "Designer", Type: "remote", Status: domain.JobStatusOpen},
	}
}

func TestGetFeedFiltersAndPaginates(t *testing.T) {
	srv, _ := testFeedServer(t, &stubAPI{jobs: feedJobs()}, stubSession{})

	res, err := http.Get(srv.URL + "/feed?type=remote")
	require.NoError(t, err)
	defer res.Body.Close()
	require.Equal(t, 200, res.StatusCode)

	var body struct {
		Jobs    []domain.JobPosting `json:"jobs"`
		Total   int                 `json:"total"`
		HasMore bool                `json:"has_more"`
	}
	require.NoError(t, json.NewDecoder(res.Body).Decode(&body))
	assert.Equal(t, 2, body.Total)
	assert.Len(t, body.Jobs, 2)
	assert.False(t, body.HasMore)
}

func TestFeedCardsCarryPlainTextExcerpt(t *testing.T) {
	jobs := []domain.JobPosting{
		{ID: "1", Title: "Frontend Engineer", Status: domain.JobStatusOpen,
			Description: "<p>Build <b>great</b> things.</p>"},
	}
	srv, _ := testFeedServer(t, &stubAPI{jobs: jobs}, stubSession{})

	res, err := http.Get(srv.URL + "/feed")
	require.NoError(t, err)
	defer res.Body.Close()

	var body struct {
		Jobs []struct {
			Description string `json:"description"`
			Excerpt     string `json:"excerpt"`
		} `json:"jobs"`
	}
	require.NoError(t, json.NewDecoder(res.Body).Decode(&body))
	require.Len(t, body.Jobs, 1)
	assert.Equal(t, "Build great things.", body.Jobs[0].Excerpt)
	assert.Contains(t, body.Jobs[0].Description, "<p>", "raw description still travels for the detail view")
}

func TestFilterChangeResetsPagination(t *testing.T) {
	srv, _ := testFeedServer(t, &stubAPI{jobs: feedJobs()}, stubSession{})

	// widen the window, then change the filter: page must reset
	_, err := http.Post(srv.URL+"/feed/more", "application/json", nil)
	require.NoError(t, err)

	res, err := http.Get(srv.URL + "/feed?type=remote")
	require.NoError(t, err)
	defer res.Body.Close()

	var body struct {
		Jobs []domain.JobPosting `json:"jobs"`
	}
	require.NoError(t, json.NewDecoder(res.Body).Decode(&body))
	assert.Len(t, body.Jobs, 2, "filter change returns the first page of the new set")
}

func TestApplyEndpointSuccessShowsToast(t *testing.T) {
	api := &stubAPI{jobs: feedJobs()}
	srv, toasts := testFeedServer(t, api, stubSession{user: &domain.User{ID: "s1", Role: domain.RoleSeeker}})

	res, err := http.Post(srv.URL+"/jobs/3/apply", "application/json", nil)
	require.NoError(t, err)
	defer res.Body.Close()
	require.Equal(t, 200, res.StatusCode)
	assert.Equal(t, 1, api.applyCalls)

	st := toasts.State()
	assert.True(t, st.Visible)
	assert.Equal(t, "Application submitted!", st.Message)
	assert.Equal(t, toast.SeveritySuccess, st.Severity)
}

func TestApplyEndpointWrongRole(t *testing.T) {
	api := &stubAPI{jobs: feedJobs()}
	srv, toasts := testFeedServer(t, api, stubSession{user: &domain.User{ID: "c1", Role: domain.RoleCompany}})

	res, err := http.Post(srv.URL+"/jobs/3/apply", "application/json", nil)
	require.NoError(t, err)
	defer res.Body.Close()

	assert.Equal(t, http.StatusForbidden, res.StatusCode)
	assert.Zero(t, api.applyCalls, "wrong role is blocked before any request")

	var e APIError
	require.NoError(t, json.NewDecoder(res.Body).Decode(&e))
	assert.Equal(t, "please login as a job seeker", e.Error.Message)

	st := toasts.State()
	assert.True(t, st.Visible)
	assert.Equal(t, toast.SeverityError, st.Severity)
}

func TestApplyEndpointAnonymous(t *testing.T) {
	srv, _ := testFeedServer(t, &stubAPI{jobs: feedJobs()}, stubSession{})

	res, err := http.Post(srv.URL+"/jobs/3/apply", "application/json", nil)
	require.NoError(t, err)
	defer res.Body.Close()
	assert.Equal(t, http.StatusUnauthorized, res.StatusCode)
}

func TestToastDismissEndpoint(t *testing.T) {
	srv, toasts := testFeedServer(t, &stubAPI{jobs: feedJobs()}, stubSession{})
	toasts.Warning("heads up")

	res, err := http.Post(srv.URL+"/toast/dismiss", "application/json", nil)
	require.NoError(t, err)
	res.Body.Close()

	assert.False(t, toasts.State().Visible)
}
