package httpapi

import (
	"net/http"

	"jobdesk-engine/internal/toast"
)

type ToastHandler struct {
	Toast *toast.Notifier
}

func (h ToastHandler) Get(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, h.Toast.State())
}

// Dismiss is the close button: hides the toast and cancels its countdown.
func (h ToastHandler) Dismiss(w http.ResponseWriter, r *http.Request) {
	h.Toast.Dismiss()
	writeJSON(w, map[string]any{"ok": true})
}
