package httpapi

import (
	"sync/atomic"

	"jobdesk-engine/internal/config"
	"jobdesk-engine/internal/events"
	"jobdesk-engine/internal/feed"
	"jobdesk-engine/internal/manage"
	"jobdesk-engine/internal/remote"
	"jobdesk-engine/internal/session"
	"jobdesk-engine/internal/toast"
)

// Deps is everything the handlers need, injected from main.
type Deps struct {
	Feed       *feed.Controller
	Toast      *toast.Notifier
	Session    *session.Store
	Remote     *remote.Client
	Applicants *manage.Applicants
	Moderation *manage.Moderation
	Hub        *events.Hub

	CfgVal      *atomic.Value // stores config.Config
	UserCfgPath string
	LoadCfg     func() (config.Config, error)
}
