package httpapi

import (
	"encoding/json"
	"errors"
	"net/http"

	"jobdesk-engine/internal/feed"
	"jobdesk-engine/internal/manage"
	"jobdesk-engine/internal/remote"
)

type APIError struct {
	Error struct {
		Code      string `json:"code"`
		Message   string `json:"message"`
		RequestID string `json:"request_id,omitempty"`
	} `json:"error"`
}

func WriteJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func WriteError(w http.ResponseWriter, r *http.Request, status int, code, message string) {
	var e APIError
	e.Error.Code = code
	e.Error.Message = message
	e.Error.RequestID = RequestIDFrom(r.Context())
	WriteJSON(w, status, e)
}

// statusFor maps controller errors onto localhost response codes. The
// message shown to the user is always err.Error(): guard errors carry
// user-ready copy and backend errors carry the server's text verbatim.
func statusFor(err error) (status int, code string) {
	switch {
	case errors.Is(err, feed.ErrNotAuthenticated):
		return http.StatusUnauthorized, "not_authenticated"
	case errors.Is(err, feed.ErrWrongRole),
		errors.Is(err, manage.ErrCompanyOnly),
		errors.Is(err, manage.ErrAdminOnly):
		return http.StatusForbidden, "wrong_role"
	case errors.Is(err, feed.ErrAlreadyApplied),
		errors.Is(err, feed.ErrJobClosed),
		errors.Is(err, manage.ErrAlreadyDecided),
		errors.Is(err, manage.ErrUnknownApplication):
		return http.StatusConflict, "invalid_state"
	case remote.Unreachable(err):
		return http.StatusBadGateway, "unreachable"
	}

	var api *remote.APIError
	if errors.As(err, &api) {
		return api.Status, "backend_error"
	}
	return http.StatusInternalServerError, "internal_error"
}
