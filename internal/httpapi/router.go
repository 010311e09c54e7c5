package httpapi

import "net/http"

// NewMux wires every handler. main() wraps the result in the middleware
// chain and owns the listener.
func NewMux(d Deps) *http.ServeMux {
	mux := http.NewServeMux()

	// Feed
	fh := FeedHandler{Feed: d.Feed, Toast: d.Toast}
	mux.HandleFunc("/feed", methodMux(map[string]http.HandlerFunc{
		http.MethodGet: fh.Get,
	}))
	mux.HandleFunc("/feed/more", methodMux(map[string]http.HandlerFunc{
		http.MethodPost: fh.More,
	}))
	mux.HandleFunc("/feed/refresh", methodMux(map[string]http.HandlerFunc{
		http.MethodPost: fh.Refresh,
	}))
	mux.HandleFunc("/jobs/", methodMux(map[string]http.HandlerFunc{
		http.MethodPost: fh.Apply, // /jobs/{id}/apply
	}))
	mux.HandleFunc("/qualifications", methodMux(map[string]http.HandlerFunc{
		http.MethodGet: fh.Qualifications,
	}))

	// Auth
	ah := AuthHandler{Remote: d.Remote, Session: d.Session, Feed: d.Feed, Toast: d.Toast}
	mux.HandleFunc("/auth/login", methodMux(map[string]http.HandlerFunc{
		http.MethodPost: ah.Login,
	}))
	mux.HandleFunc("/auth/logout", methodMux(map[string]http.HandlerFunc{
		http.MethodPost: ah.Logout,
	}))
	mux.HandleFunc("/auth/register", methodMux(map[string]http.HandlerFunc{
		http.MethodPost: ah.Register,
	}))
	mux.HandleFunc("/auth/session", methodMux(map[string]http.HandlerFunc{
		http.MethodGet: ah.Current,
	}))
	mux.HandleFunc("/profile", methodMux(map[string]http.HandlerFunc{
		http.MethodGet: ah.Profile,
		http.MethodPut: ah.UpdateProfile,
	}))

	// Company
	ch := CompanyHandler{Applicants: d.Applicants, Toast: d.Toast}
	mux.HandleFunc("/company/postings", methodMux(map[string]http.HandlerFunc{
		http.MethodGet:  ch.ListPostings,
		http.MethodPost: ch.CreatePosting,
	}))
	mux.HandleFunc("/company/postings/", ch.PostingByPath)
	mux.HandleFunc("/applications/", methodMux(map[string]http.HandlerFunc{
		http.MethodPost: ch.Decide, // /applications/{id}/decide
	}))

	// Admin
	adh := AdminHandler{Moderation: d.Moderation, Toast: d.Toast}
	mux.HandleFunc("/admin/companies", methodMux(map[string]http.HandlerFunc{
		http.MethodGet: adh.ListPending,
	}))
	mux.HandleFunc("/admin/companies/", methodMux(map[string]http.HandlerFunc{
		http.MethodPost: adh.CompanyByPath,
	}))

	// Toast
	th := ToastHandler{Toast: d.Toast}
	mux.HandleFunc("/toast", methodMux(map[string]http.HandlerFunc{
		http.MethodGet: th.Get,
	}))
	mux.HandleFunc("/toast/dismiss", methodMux(map[string]http.HandlerFunc{
		http.MethodPost: th.Dismiss,
	}))

	// SSE events
	eh := EventsHandler{Hub: d.Hub}
	mux.HandleFunc("/events", methodMux(map[string]http.HandlerFunc{
		http.MethodGet: eh.ServeSSE,
	}))

	// Config
	cfh := ConfigHandler{CfgVal: d.CfgVal, UserCfgPath: d.UserCfgPath, LoadCfg: d.LoadCfg}
	mux.HandleFunc("/config", methodMux(map[string]http.HandlerFunc{
		http.MethodGet: cfh.Get,
		http.MethodPut: cfh.Put,
	}))
	mux.HandleFunc("/config/path", methodMux(map[string]http.HandlerFunc{
		http.MethodGet: cfh.Path,
	}))

	mux.HandleFunc("/health", methodMux(map[string]http.HandlerFunc{
		http.MethodGet: Health,
	}))

	return mux
}
