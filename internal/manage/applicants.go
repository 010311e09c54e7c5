// Package manage holds the company- and admin-side controllers: posting
// CRUD pass-through, applicant decisions with the pending-only guard, and
// company moderation. Role checks run locally against the cached session
// before any request goes out.
package manage

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"jobdesk-engine/internal/domain"
	"jobdesk-engine/internal/events"
	"jobdesk-engine/internal/remote"
)

var (
	ErrCompanyOnly        = errors.New("please login as a company")
	ErrUnknownApplication = errors.New("load the applicant list before deciding")
	ErrAlreadyDecided     = errors.New("this application has already been decided")
)

type CompanyAPI interface {
	ListMyPostings(ctx context.Context) ([]domain.JobPosting, error)
	CreatePosting(ctx context.Context, draft remote.PostingDraft) (string, error)
	UpdatePosting(ctx context.Context, id string, draft remote.PostingDraft) (string, error)
	DeletePosting(ctx context.Context, id string) (string, error)
	ListApplications(ctx context.Context, postingID string) ([]domain.Application, error)
	DecideApplication(ctx context.Context, applicationID, status string) (string, error)
}

type Session interface {
	User() (domain.User, bool)
}

// Applicants is the company-side controller. It caches the last-fetched
// application statuses so a decision on a non-pending application is
// refused locally, without a network call: transitions out of pending are
// one-way and the client never offers an "un-reject".
type Applicants struct {
	api  CompanyAPI
	sess Session
	hub  *events.Hub

	mu   sync.Mutex
	seen map[string]domain.Application // by application id
}

func NewApplicants(api CompanyAPI, sess Session, hub *events.Hub) *Applicants {
	return &Applicants{api: api, sess: sess, hub: hub, seen: make(map[string]domain.Application)}
}

func (a *Applicants) guard() error {
	u, ok := a.sess.User()
	if !ok || u.Role != domain.RoleCompany {
		return ErrCompanyOnly
	}
	return nil
}

func (a *Applicants) Postings(ctx context.Context) ([]domain.JobPosting, error) {
	if err := a.guard(); err != nil {
		return nil, err
	}
	return a.api.ListMyPostings(ctx)
}

func (a *Applicants) Create(ctx context.Context, draft remote.PostingDraft) (string, error) {
	if err := a.guard(); err != nil {
		return "", err
	}
	return a.api.CreatePosting(ctx, draft)
}

func (a *Applicants) Update(ctx context.Context, id string, draft remote.PostingDraft) (string, error) {
	if err := a.guard(); err != nil {
		return "", err
	}
	return a.api.UpdatePosting(ctx, id, draft)
}

func (a *Applicants) Delete(ctx context.Context, id string) (string, error) {
	if err := a.guard(); err != nil {
		return "", err
	}
	return a.api.DeletePosting(ctx, id)
}

// List fetches a posting's applicants and refreshes the local status cache
// the decision guard reads from.
func (a *Applicants) List(ctx context.Context, postingID string) ([]domain.Application, error) {
	if err := a.guard(); err != nil {
		return nil, err
	}
	apps, err := a.api.ListApplications(ctx, postingID)
	if err != nil {
		return nil, err
	}

	a.mu.Lock()
	for _, app := range apps {
		a.seen[app.ID] = app
	}
	a.mu.Unlock()

	return apps, nil
}

// Decide accepts or rejects one application. Refused locally when the
// application was last seen outside pending, or was never listed at all.
func (a *Applicants) Decide(ctx context.Context, applicationID, status string) (string, error) {
	if err := a.guard(); err != nil {
		return "", err
	}
	if status != domain.ApplicationAccepted && status != domain.ApplicationRejected {
		return "", fmt.Errorf("invalid decision %q", status)
	}

	a.mu.Lock()
	app, ok := a.seen[applicationID]
	a.mu.Unlock()
	if !ok {
		return "", ErrUnknownApplication
	}
	if !app.Pending() {
		return "", ErrAlreadyDecided
	}

	msg, err := a.api.DecideApplication(ctx, applicationID, status)
	if err != nil {
		return "", err
	}

	a.mu.Lock()
	app.Status = status
	a.seen[applicationID] = app
	a.mu.Unlock()

	if a.hub != nil {
		a.hub.Publish(events.Make("", events.TypeAppDecided, map[string]string{
			"application_id": applicationID,
			"status":         status,
		}))
	}
	return msg, nil
}
