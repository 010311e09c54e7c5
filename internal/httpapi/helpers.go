package httpapi

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"jobdesk-engine/internal/remote"
	"jobdesk-engine/internal/toast"
)

func writeJSON(w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", "application/json")
	enc := json.NewEncoder(w)
	_ = enc.Encode(v)
}

func methodMux(m map[string]http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if h, ok := m[r.Method]; ok {
			h(w, r)
			return
		}
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
	}
}

func decodeBody(r *http.Request, out any) error {
	b, err := io.ReadAll(io.LimitReader(r.Body, 1<<20))
	if err != nil {
		return err
	}
	if len(b) == 0 {
		return errors.New("empty request body")
	}
	return json.Unmarshal(b, out)
}

// fail surfaces a recoverable error as a user-visible toast plus the
// error response. Transport failures toast a generic "cannot reach
// server"; everything else shows the message as-is.
func fail(w http.ResponseWriter, r *http.Request, toasts *toast.Notifier, err error) {
	status, code := statusFor(err)
	msg := err.Error()
	if remote.Unreachable(err) {
		msg = "cannot reach server"
	}
	if toasts != nil {
		toasts.Error(msg)
	}
	WriteError(w, r, status, code, msg)
}
