package httpapi

import (
	"log"
	"net/http"

	"jobdesk-engine/internal/feed"
	"jobdesk-engine/internal/remote"
	"jobdesk-engine/internal/session"
	"jobdesk-engine/internal/toast"
)

type AuthHandler struct {
	Remote  *remote.Client
	Session *session.Store
	Feed    *feed.Controller
	Toast   *toast.Notifier
}

func (h AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var creds remote.Credentials
	if err := decodeBody(r, &creds); err != nil {
		WriteError(w, r, http.StatusBadRequest, "bad_request", "invalid login payload")
		return
	}

	res, err := h.Remote.Login(r.Context(), creds)
	if err != nil {
		fail(w, r, h.Toast, err)
		return
	}
	if err := h.Session.Login(r.Context(), res.Token, res.User); err != nil {
		fail(w, r, h.Toast, err)
		return
	}

	// reload so a seeker immediately sees their applied flags
	if err := h.Feed.Load(r.Context()); err != nil {
		h.Toast.Warning("Logged in, but the job list could not be refreshed.")
	}

	h.Toast.Success("Welcome back, " + res.User.Name + "!")
	writeJSON(w, map[string]any{"ok": true, "user": res.User})
}

func (h AuthHandler) Logout(w http.ResponseWriter, r *http.Request) {
	h.Session.Logout(r.Context())
	// drop personalized flags from the visible list
	if err := h.Feed.Load(r.Context()); err != nil {
		log.Printf("level=warn msg=\"post-logout reload failed\" err=%v", err)
	}
	writeJSON(w, map[string]any{"ok": true})
}

func (h AuthHandler) Register(w http.ResponseWriter, r *http.Request) {
	var reg remote.Registration
	if err := decodeBody(r, &reg); err != nil {
		WriteError(w, r, http.StatusBadRequest, "bad_request", "invalid registration payload")
		return
	}

	msg, err := h.Remote.Register(r.Context(), reg)
	if err != nil {
		fail(w, r, h.Toast, err)
		return
	}
	if msg == "" {
		msg = "Registration successful, please login."
	}
	h.Toast.Success(msg)
	writeJSON(w, map[string]any{"ok": true, "message": msg})
}

// Current reports the cached session, the UI's source for role gating.
func (h AuthHandler) Current(w http.ResponseWriter, r *http.Request) {
	u, ok := h.Session.User()
	if !ok {
		writeJSON(w, map[string]any{"logged_in": false})
		return
	}
	writeJSON(w, map[string]any{"logged_in": true, "user": u})
}

func (h AuthHandler) Profile(w http.ResponseWriter, r *http.Request) {
	u, err := h.Remote.Profile(r.Context())
	if err != nil {
		fail(w, r, h.Toast, err)
		return
	}
	writeJSON(w, u)
}

func (h AuthHandler) UpdateProfile(w http.ResponseWriter, r *http.Request) {
	var fields map[string]any
	if err := decodeBody(r, &fields); err != nil {
		WriteError(w, r, http.StatusBadRequest, "bad_request", "invalid profile payload")
		return
	}
	msg, err := h.Remote.UpdateProfile(r.Context(), fields)
	if err != nil {
		fail(w, r, h.Toast, err)
		return
	}
	if msg == "" {
		msg = "Profile updated."
	}
	h.Toast.Success(msg)
	writeJSON(w, map[string]any{"ok": true, "message": msg})
}
