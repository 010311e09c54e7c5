package feed

import (
	"context"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"jobdesk-engine/internal/domain"
	"jobdesk-engine/internal/remote"
)

type fakeAPI struct {
	mu         sync.Mutex
	jobs       []domain.JobPosting
	listErr    error
	applyErr   error
	applyCalls int

	// when set, ListJobs blocks until released (for stale-response tests)
	block chan struct{}
}

func (f *fakeAPI) ListJobs(ctx context.Context) ([]domain.JobPosting, error) {
	f.mu.Lock()
	block := f.block
	f.block = nil
	jobs, err := f.jobs, f.listErr
	f.mu.Unlock()
	if block != nil {
		<-block
	}
	return jobs, err
}

func (f *fakeAPI) ListJobsForSeeker(ctx context.Context) ([]domain.JobPosting, error) {
	return f.ListJobs(ctx)
}

func (f *fakeAPI) Apply(ctx context.Context, jobID string) (string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.applyCalls++
	if f.applyErr != nil {
		return "", f.applyErr
	}
	return "ok", nil
}

func (f *fakeAPI) ListQualifications(ctx context.Context) ([]domain.Qualification, error) {
	return nil, nil
}

type fakeSession struct {
	user *domain.User
}

func (s fakeSession) User() (domain.User, bool) {
	if s.user == nil {
		return domain.User{}, false
	}
	return *s.user, true
}

func seekerSession() fakeSession {
	return fakeSession{user: &domain.User{ID: "s1", Role: domain.RoleSeeker}}
}

func newTestController(api API, sess Session) *Controller {
	return NewController(ControllerOptions{
		API:             api,
		Session:         sess,
		FallbackEnabled: true,
		PageSize:        6,
	})
}

func TestLoadFallsBackOnTransportFailure(t *testing.T) {
	api := &fakeAPI{listErr: remote.ErrUnreachable}
	c := newTestController(api, fakeSession{})

	require.NoError(t, c.Load(context.Background()), "public-path transport failure must not surface as an error")
	assert.True(t, c.Degraded())
	assert.Len(t, c.Jobs(), 4, "fallback dataset has exactly 4 sample jobs")
}

func TestLoadSeekerTransportFailureIsAnError(t *testing.T) {
	api := &fakeAPI{listErr: remote.ErrUnreachable}
	c := newTestController(api, seekerSession())

	err := c.Load(context.Background())
	require.Error(t, err, "authenticated reads never silently fall back")
	assert.True(t, remote.Unreachable(err))
	assert.False(t, c.Degraded())
}

func TestLoadServerErrorIsRecoverable(t *testing.T) {
	api := &fakeAPI{listErr: &remote.APIError{Status: 500, Message: "boom"}}
	c := newTestController(api, fakeSession{})

	err := c.Load(context.Background())
	require.Error(t, err, "a reachable error response must surface, not fall back")
	assert.Equal(t, "boom", err.Error())
}

func TestLoadLastRequestWins(t *testing.T) {
	stale := []domain.JobPosting{{ID: "old"}}
	fresh := []domain.JobPosting{{ID: "new"}}

	release := make(chan struct{})
	api := &fakeAPI{jobs: stale, block: release}
	c := newTestController(api, fakeSession{})

	done := make(chan error, 1)
	go func() { done <- c.Load(context.Background()) }()

	// wait until the first request is in flight
	for {
		api.mu.Lock()
		started := api.block == nil
		api.mu.Unlock()
		if started {
			break
		}
	}

	// newer request completes first
	api.mu.Lock()
	api.jobs = fresh
	api.mu.Unlock()
	require.NoError(t, c.Load(context.Background()))

	// now let the stale response land; it must be discarded
	close(release)
	require.NoError(t, <-done)

	jobs := c.Jobs()
	require.Len(t, jobs, 1)
	assert.Equal(t, "new", jobs[0].ID, "a stale response must never overwrite newer data")
}

func TestApplySuccessMarksApplied(t *testing.T) {
	api := &fakeAPI{jobs: []domain.JobPosting{{ID: "3", Status: domain.JobStatusOpen}}}
	c := newTestController(api, seekerSession())
	require.NoError(t, c.Load(context.Background()))

	msg, err := c.Apply(context.Background(), "3")
	require.NoError(t, err)
	assert.Equal(t, "Application submitted!", msg)
	assert.Equal(t, 1, api.applyCalls)

	// applied flag survives filtering and pagination
	c.SetFilters("", "all", "all")
	view := c.View()
	require.Len(t, view.Jobs, 1)
	assert.True(t, view.Jobs[0].IsApplied)
}

func TestApplyTwiceSkipsNetwork(t *testing.T) {
	api := &fakeAPI{jobs: []domain.JobPosting{{ID: "3", Status: domain.JobStatusOpen}}}
	c := newTestController(api, seekerSession())
	require.NoError(t, c.Load(context.Background()))

	_, err := c.Apply(context.Background(), "3")
	require.NoError(t, err)

	_, err = c.Apply(context.Background(), "3")
	assert.ErrorIs(t, err, ErrAlreadyApplied)
	assert.Equal(t, 1, api.applyCalls, "second apply must not issue a request")
}

func TestApplyClosedJobRejectedLocally(t *testing.T) {
	api := &fakeAPI{jobs: []domain.JobPosting{{ID: "9", Status: domain.JobStatusClosed}}}
	c := newTestController(api, seekerSession())
	require.NoError(t, c.Load(context.Background()))

	_, err := c.Apply(context.Background(), "9")
	assert.ErrorIs(t, err, ErrJobClosed)
	assert.Zero(t, api.applyCalls)
}

func TestApplyRoleGuards(t *testing.T) {
	api := &fakeAPI{jobs: []domain.JobPosting{{ID: "3", Status: domain.JobStatusOpen}}}

	anon := newTestController(api, fakeSession{})
	_, err := anon.Apply(context.Background(), "3")
	assert.ErrorIs(t, err, ErrNotAuthenticated)

	company := newTestController(api, fakeSession{user: &domain.User{ID: "c1", Role: domain.RoleCompany}})
	_, err = company.Apply(context.Background(), "3")
	assert.ErrorIs(t, err, ErrWrongRole)

	assert.Zero(t, api.applyCalls, "guard failures must never reach the network")
}

func TestApplyServerMessageVerbatim(t *testing.T) {
	api := &fakeAPI{
		jobs:     []domain.JobPosting{{ID: "3", Status: domain.JobStatusOpen}},
		applyErr: &remote.APIError{Status: 400, Message: "you already applied to this job"},
	}
	c := newTestController(api, seekerSession())
	require.NoError(t, c.Load(context.Background()))

	_, err := c.Apply(context.Background(), "3")
	require.Error(t, err)
	assert.Equal(t, "you already applied to this job", err.Error())
}

func TestSetFiltersResetsPage(t *testing.T) {
	var jobs []domain.JobPosting
	for i := 0; i < 20; i++ {
		jobs = append(jobs, domain.JobPosting{ID: string(rune('a' + i)), Type: "remote"})
	}
	api := &fakeAPI{jobs: jobs}
	c := newTestController(api, fakeSession{})
	require.NoError(t, c.Load(context.Background()))

	c.LoadMore()
	c.LoadMore()
	require.Len(t, c.View().Jobs, 18)

	// any filter change resets the cumulative window to page 1
	c.SetFilters("", "remote", "all")
	assert.Len(t, c.View().Jobs, 6)

	// setting identical filters keeps the cursor
	c.LoadMore()
	c.SetFilters("", "remote", "all")
	assert.Len(t, c.View().Jobs, 12)
}

func TestViewConcurrentWithMarkApplied(t *testing.T) {
	api := &fakeAPI{jobs: []domain.JobPosting{
		{ID: "1", Title: "Frontend Engineer", Type: "remote", Status: domain.JobStatusOpen},
		{ID: "2", Title: "Backend Engineer", Type: "onsite", Status: domain.JobStatusOpen},
	}}
	c := newTestController(api, seekerSession())
	require.NoError(t, c.Load(context.Background()))

	// a GET /feed racing a successful apply: rendering must never read
	// the element MarkApplied is writing (run with -race)
	done := make(chan struct{})
	go func() {
		defer close(done)
		for i := 0; i < 500; i++ {
			c.View()
		}
	}()
	for i := 0; i < 500; i++ {
		c.MarkApplied("2")
	}
	<-done

	view := c.View()
	require.Len(t, view.Jobs, 2)
	assert.True(t, view.Jobs[1].IsApplied)
}

func TestServerWinsOnNextLoad(t *testing.T) {
	api := &fakeAPI{jobs: []domain.JobPosting{{ID: "3", Status: domain.JobStatusOpen}}}
	c := newTestController(api, seekerSession())
	require.NoError(t, c.Load(context.Background()))

	c.MarkApplied("3")
	require.True(t, c.Jobs()[0].IsApplied)

	// next authoritative fetch says not applied: server overwrites local
	api.mu.Lock()
	api.jobs = []domain.JobPosting{{ID: "3", Status: domain.JobStatusOpen, IsApplied: false}}
	api.mu.Unlock()
	require.NoError(t, c.Load(context.Background()))
	assert.False(t, c.Jobs()[0].IsApplied)
}
