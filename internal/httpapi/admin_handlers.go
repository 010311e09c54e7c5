package httpapi

import (
	"net/http"
	"strings"

	"jobdesk-engine/internal/manage"
	"jobdesk-engine/internal/toast"
)

type AdminHandler struct {
	Moderation *manage.Moderation
	Toast      *toast.Notifier
}

func (h AdminHandler) ListPending(w http.ResponseWriter, r *http.Request) {
	companies, err := h.Moderation.Pending(r.Context())
	if err != nil {
		fail(w, r, h.Toast, err)
		return
	}
	writeJSON(w, companies)
}

// CompanyByPath handles POST /admin/companies/{id}/approve and .../reject.
func (h AdminHandler) CompanyByPath(w http.ResponseWriter, r *http.Request) {
	rest := strings.TrimPrefix(r.URL.Path, "/admin/companies/")

	var (
		id     string
		msg    string
		err    error
		action string
	)
	switch {
	case strings.HasSuffix(rest, "/approve"):
		id = strings.TrimSuffix(rest, "/approve")
		action = "approved"
	case strings.HasSuffix(rest, "/reject"):
		id = strings.TrimSuffix(rest, "/reject")
		action = "rejected"
	default:
		WriteError(w, r, http.StatusNotFound, "not_found", "unknown moderation action")
		return
	}
	if id == "" || strings.Contains(id, "/") {
		WriteError(w, r, http.StatusBadRequest, "bad_request", "invalid company id")
		return
	}

	if action == "approved" {
		msg, err = h.Moderation.Approve(r.Context(), id)
	} else {
		msg, err = h.Moderation.Reject(r.Context(), id)
	}
	if err != nil {
		fail(w, r, h.Toast, err)
		return
	}
	if msg == "" {
		msg = "Company " + action + "."
	}
	h.Toast.Success(msg)
	writeJSON(w, map[string]any{"ok": true, "message": msg})
}
