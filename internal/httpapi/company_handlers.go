package httpapi

import (
	"net/http"
	"strings"

	"jobdesk-engine/internal/manage"
	"jobdesk-engine/internal/remote"
	"jobdesk-engine/internal/toast"
)

type CompanyHandler struct {
	Applicants *manage.Applicants
	Toast      *toast.Notifier
}

func (h CompanyHandler) ListPostings(w http.ResponseWriter, r *http.Request) {
	postings, err := h.Applicants.Postings(r.Context())
	if err != nil {
		fail(w, r, h.Toast, err)
		return
	}
	writeJSON(w, postings)
}

func (h CompanyHandler) CreatePosting(w http.ResponseWriter, r *http.Request) {
	var draft remote.PostingDraft
	if err := decodeBody(r, &draft); err != nil {
		WriteError(w, r, http.StatusBadRequest, "bad_request", "invalid posting payload")
		return
	}
	msg, err := h.Applicants.Create(r.Context(), draft)
	if err != nil {
		fail(w, r, h.Toast, err)
		return
	}
	if msg == "" {
		msg = "Job posting created."
	}
	h.Toast.Success(msg)
	writeJSON(w, map[string]any{"ok": true, "message": msg})
}

// PostingByPath handles /company/postings/{id} and
// /company/postings/{id}/applications.
func (h CompanyHandler) PostingByPath(w http.ResponseWriter, r *http.Request) {
	rest := strings.TrimPrefix(r.URL.Path, "/company/postings/")
	if id, ok := strings.CutSuffix(rest, "/applications"); ok {
		if r.Method != http.MethodGet {
			http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
			return
		}
		h.listApplications(w, r, id)
		return
	}

	id := rest
	if id == "" || strings.Contains(id, "/") {
		WriteError(w, r, http.StatusBadRequest, "bad_request", "invalid posting id")
		return
	}

	switch r.Method {
	case http.MethodPut:
		h.updatePosting(w, r, id)
	case http.MethodDelete:
		h.deletePosting(w, r, id)
	default:
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
	}
}

func (h CompanyHandler) updatePosting(w http.ResponseWriter, r *http.Request, id string) {
	var draft remote.PostingDraft
	if err := decodeBody(r, &draft); err != nil {
		WriteError(w, r, http.StatusBadRequest, "bad_request", "invalid posting payload")
		return
	}
	msg, err := h.Applicants.Update(r.Context(), id, draft)
	if err != nil {
		fail(w, r, h.Toast, err)
		return
	}
	if msg == "" {
		msg = "Job posting updated."
	}
	h.Toast.Success(msg)
	writeJSON(w, map[string]any{"ok": true, "message": msg})
}

func (h CompanyHandler) deletePosting(w http.ResponseWriter, r *http.Request, id string) {
	msg, err := h.Applicants.Delete(r.Context(), id)
	if err != nil {
		fail(w, r, h.Toast, err)
		return
	}
	if msg == "" {
		msg = "Job posting deleted."
	}
	h.Toast.Success(msg)
	writeJSON(w, map[string]any{"ok": true, "message": msg})
}

func (h CompanyHandler) listApplications(w http.ResponseWriter, r *http.Request, postingID string) {
	apps, err := h.Applicants.List(r.Context(), postingID)
	if err != nil {
		fail(w, r, h.Toast, err)
		return
	}
	writeJSON(w, apps)
}

// Decide handles POST /applications/{id}/decide with {"status": "..."}.
func (h CompanyHandler) Decide(w http.ResponseWriter, r *http.Request) {
	id := strings.TrimSuffix(strings.TrimPrefix(r.URL.Path, "/applications/"), "/decide")
	if id == "" || strings.Contains(id, "/") {
		WriteError(w, r, http.StatusBadRequest, "bad_request", "invalid application id")
		return
	}

	var body struct {
		Status string `json:"status"`
	}
	if err := decodeBody(r, &body); err != nil {
		WriteError(w, r, http.StatusBadRequest, "bad_request", "invalid decision payload")
		return
	}

	msg, err := h.Applicants.Decide(r.Context(), id, body.Status)
	if err != nil {
		fail(w, r, h.Toast, err)
		return
	}
	if msg == "" {
		msg = "Applicant " + body.Status + "."
	}
	h.Toast.Success(msg)
	writeJSON(w, map[string]any{"ok": true, "message": msg})
}
