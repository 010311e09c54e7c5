package manage

import (
	"context"
	"errors"

	"jobdesk-engine/internal/domain"
)

var ErrAdminOnly = errors.New("admin access required")

type AdminAPI interface {
	ListPendingCompanies(ctx context.Context) ([]domain.Company, error)
	ApproveCompany(ctx context.Context, id string) (string, error)
	RejectCompany(ctx context.Context, id string) (string, error)
}

// Moderation is the admin-side controller: list company accounts awaiting
// approval and decide them. The role guard runs before any request; a 401
// or 403 that comes back anyway means the cached session went stale.
type Moderation struct {
	api  AdminAPI
	sess Session
}

func NewModeration(api AdminAPI, sess Session) *Moderation {
	return &Moderation{api: api, sess: sess}
}

func (m *Moderation) guard() error {
	u, ok := m.sess.User()
	if !ok || u.Role != domain.RoleAdmin {
		return ErrAdminOnly
	}
	return nil
}

func (m *Moderation) Pending(ctx context.Context) ([]domain.Company, error) {
	if err := m.guard(); err != nil {
		return nil, err
	}
	return m.api.ListPendingCompanies(ctx)
}

func (m *Moderation) Approve(ctx context.Context, id string) (string, error) {
	if err := m.guard(); err != nil {
		return "", err
	}
	return m.api.ApproveCompany(ctx, id)
}

func (m *Moderation) Reject(ctx context.Context, id string) (string, error) {
	if err := m.guard(); err != nil {
		return "", err
	}
	return m.api.RejectCompany(ctx, id)
}
