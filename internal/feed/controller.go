// Package feed owns the client-side job list: loading it from the backend
// (with a demo-data fallback for the public path), filtering, cumulative
// pagination, and the optimistic applied flag. One controller instance
// backs the whole UI; there is no second, divergent feed implementation.
package feed

import (
	"context"
	"errors"
	"log"
	"sync"

	"golang.org/x/sync/errgroup"

	"jobdesk-engine/internal/domain"
	"jobdesk-engine/internal/events"
	"jobdesk-engine/internal/remote"
)

// Guard errors raised locally, before any request is issued.
var (
	ErrNotAuthenticated = errors.New("please login to apply")
	ErrWrongRole        = errors.New("please login as a job seeker")
	ErrAlreadyApplied   = errors.New("you have already applied to this job")
	ErrJobClosed        = errors.New("this job is no longer accepting applications")
)

// API is the slice of the backend client the controller needs.
type API interface {
	ListJobs(ctx context.Context) ([]domain.JobPosting, error)
	ListJobsForSeeker(ctx context.Context) ([]domain.JobPosting, error)
	Apply(ctx context.Context, jobID string) (string, error)
	ListQualifications(ctx context.Context) ([]domain.Qualification, error)
}

type Session interface {
	User() (domain.User, bool)
}

type Controller struct {
	api      API
	sess     Session
	hub      *events.Hub
	fallback bool
	pageSize int

	mu       sync.Mutex
	jobs     []domain.JobPosting
	quals    []domain.Qualification
	degraded bool
	loadGen  uint64

	// active view: filters plus the cumulative page cursor
	query, typ, tenure string
	page               int
}

type ControllerOptions struct {
	API             API
	Session         Session
	Hub             *events.Hub
	FallbackEnabled bool
	PageSize        int
}

func NewController(opts ControllerOptions) *Controller {
	size := opts.PageSize
	if size <= 0 {
		size = 6
	}
	return &Controller{
		api:      opts.API,
		sess:     opts.Session,
		hub:      opts.Hub,
		fallback: opts.FallbackEnabled,
		pageSize: size,
		page:     1,
	}
}

// Load re-fetches the authoritative list. Logged-in seekers get the
// personalized endpoint so applied flags arrive pre-seeded; everyone else
// gets the public listing. Transport failure on the public path swaps in
// the fixed fallback dataset and reports degraded mode instead of failing;
// any reachable error is returned for the caller to surface.
//
// Rapid concurrent Loads are last-request-wins: a response whose request
// was superseded is discarded so the visible list never regresses.
func (c *Controller) Load(ctx context.Context) error {
	u, loggedIn := c.sess.User()
	seeker := loggedIn && u.Role == domain.RoleSeeker

	c.mu.Lock()
	c.loadGen++
	gen := c.loadGen
	c.mu.Unlock()

	var (
		jobs  []domain.JobPosting
		quals []domain.Qualification
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		if seeker {
			jobs, err = c.api.ListJobsForSeeker(gctx)
		} else {
			jobs, err = c.api.ListJobs(gctx)
		}
		return err
	})
	g.Go(func() error {
		// catalog is nice-to-have; never fail the load over it
		q, err := c.api.ListQualifications(gctx)
		if err != nil {
			log.Printf("level=warn msg=\"qualification catalog unavailable\" err=%v", err)
			return nil
		}
		quals = q
		return nil
	})

	if err := g.Wait(); err != nil {
		if !seeker && c.fallback && remote.Unreachable(err) {
			c.install(gen, FallbackJobs(), quals, true)
			return nil
		}
		return err
	}

	c.install(gen, jobs, quals, false)
	return nil
}

func (c *Controller) install(gen uint64, jobs []domain.JobPosting, quals []domain.Qualification, degraded bool) {
	c.mu.Lock()
	if gen != c.loadGen {
		// a newer Load superseded this response
		c.mu.Unlock()
		return
	}
	c.jobs = jobs
	if quals != nil {
		c.quals = quals
	}
	c.degraded = degraded
	c.mu.Unlock()

	if c.hub != nil {
		if degraded {
			c.hub.Publish(events.Make("", events.TypeFeedDegraded, map[string]any{
				"message": "Showing sample jobs; the server is unreachable.",
			}))
		}
		c.hub.Publish(events.Make("", events.TypeFeedUpdated, map[string]any{
			"total":    len(jobs),
			"degraded": degraded,
		}))
	}
}

// SetFilters replaces the active filters. Any actual change resets the
// cumulative page back to 1 so the new result set starts from the top.
func (c *Controller) SetFilters(query, typ, tenure string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if query == c.query && typ == c.typ && tenure == c.tenure {
		return
	}
	c.query, c.typ, c.tenure = query, typ, tenure
	c.page = 1
}

// LoadMore extends the visible window by one page.
func (c *Controller) LoadMore() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.page++
}

// View computes the current render state: filters applied, then the
// cumulative page window. The elements are copied under the lock because
// MarkApplied mutates them in place; filtering must never read the live
// backing array.
func (c *Controller) View() Page {
	c.mu.Lock()
	jobs := make([]domain.JobPosting, len(c.jobs))
	copy(jobs, c.jobs)
	query, typ, tenure := c.query, c.typ, c.tenure
	page := c.page
	c.mu.Unlock()

	return Paginate(ApplyFilters(jobs, query, typ, tenure), page, c.pageSize)
}

func (c *Controller) Degraded() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.degraded
}

// Jobs returns a copy of the full unfiltered list.
func (c *Controller) Jobs() []domain.JobPosting {
	c.mu.Lock()
	defer c.mu.Unlock()
	out := make([]domain.JobPosting, len(c.jobs))
	copy(out, c.jobs)
	return out
}

// Qualifications returns the cached catalog for filter suggestions.
func (c *Controller) Qualifications() []domain.Qualification {
	c.mu.Lock()
	defer c.mu.Unlock()
	out := make([]domain.Qualification, len(c.quals))
	copy(out, c.quals)
	return out
}

func (c *Controller) job(id string) (domain.JobPosting, bool) {
	for _, j := range c.jobs {
		if j.ID == id {
			return j, true
		}
	}
	return domain.JobPosting{}, false
}

// MarkApplied flips the local applied flag. Optimistic: nothing rolls it
// back except the server's own flag on the next Load.
func (c *Controller) MarkApplied(id string) {
	c.mu.Lock()
	for i := range c.jobs {
		if c.jobs[i].ID == id {
			c.jobs[i].IsApplied = true
			break
		}
	}
	c.mu.Unlock()

	if c.hub != nil {
		c.hub.Publish(events.Make("", events.TypeFeedUpdated, map[string]any{"applied": id}))
	}
}

// Apply submits an application for the logged-in seeker. Role and state
// guards run locally first: no session, wrong role, an already-applied job
// or a closed job never reach the network. Server errors come back with
// the server's message intact.
func (c *Controller) Apply(ctx context.Context, jobID string) (string, error) {
	u, ok := c.sess.User()
	if !ok {
		return "", ErrNotAuthenticated
	}
	if u.Role != domain.RoleSeeker {
		return "", ErrWrongRole
	}

	c.mu.Lock()
	if j, found := c.job(jobID); found {
		if j.IsApplied {
			c.mu.Unlock()
			return "", ErrAlreadyApplied
		}
		if j.Closed() {
			c.mu.Unlock()
			return "", ErrJobClosed
		}
	}
	c.mu.Unlock()

	if _, err := c.api.Apply(ctx, jobID); err != nil {
		return "", err
	}

	c.MarkApplied(jobID)
	// fixed success copy; the server acknowledgment text is not shown
	return "Application submitted!", nil
}
