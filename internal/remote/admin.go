package remote

import (
	"context"
	"net/http"
	"net/url"

	"jobdesk-engine/internal/domain"
)

// ListPendingCompanies returns company accounts awaiting moderation.
func (c *Client) ListPendingCompanies(ctx context.Context) ([]domain.Company, error) {
	var wire []wireCompany
	if err := c.getData(ctx, "/admin/companies?approved=false", true, &wire); err != nil {
		return nil, err
	}
	out := make([]domain.Company, 0, len(wire))
	for _, w := range wire {
		out = append(out, domain.Company{
			ID:       string(w.ID),
			Name:     w.Name,
			City:     w.City,
			Approved: w.Approved,
			PhotoURL: w.Photo,
		})
	}
	return out, nil
}

func (c *Client) ApproveCompany(ctx context.Context, id string) (string, error) {
	return c.moderateCompany(ctx, id, true)
}

func (c *Client) RejectCompany(ctx context.Context, id string) (string, error) {
	return c.moderateCompany(ctx, id, false)
}

func (c *Client) moderateCompany(ctx context.Context, id string, approved bool) (string, error) {
	b, err := c.do(ctx, http.MethodPatch, "/admin/companies/"+url.PathEscape(id),
		map[string]bool{"approved": approved}, true)
	if err != nil {
		return "", err
	}
	return message(b), nil
}
