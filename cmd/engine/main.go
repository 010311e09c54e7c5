package main

import (
	"context"
	"fmt"
	"log"
	"net"
	"net/http"
	"os"
	"path/filepath"
	"sync/atomic"
	"time"

	"github.com/gofrs/flock"

	"jobdesk-engine/internal/config"
	"jobdesk-engine/internal/events"
	"jobdesk-engine/internal/feed"
	"jobdesk-engine/internal/httpapi"
	"jobdesk-engine/internal/manage"
	"jobdesk-engine/internal/remote"
	"jobdesk-engine/internal/scheduler"
	"jobdesk-engine/internal/session"
	"jobdesk-engine/internal/store"
	"jobdesk-engine/internal/toast"
)

func main() {
	// Engine data dir: the desktop shell passes one via env, else local.
	dataDir := os.Getenv("JOBDESK_DATA_DIR")
	if dataDir == "" {
		dataDir = "."
	}
	if err := os.MkdirAll(dataDir, 0o755); err != nil {
		log.Fatal(err)
	}

	// One engine per data dir. A second instance would fight over the
	// sqlite file and duplicate every SSE event.
	lock := flock.New(filepath.Join(dataDir, "engine.lock"))
	locked, err := lock.TryLock()
	if err != nil {
		log.Fatalf("instance lock failed: %v", err)
	}
	if !locked {
		log.Fatalf("another engine is already running for %s", dataDir)
	}
	defer func() { _ = lock.Unlock() }()

	defaultCfgPath := filepath.Join("config", "config.yml")
	userCfgPath, err := config.EnsureUserConfig(dataDir, defaultCfgPath)
	if err != nil {
		log.Fatalf("config bootstrap failed: %v", err)
	}

	var cfgVal atomic.Value // stores config.Config
	loadCfg := func() (config.Config, error) {
		c, err := config.Load(userCfgPath)
		if err != nil {
			return c, err
		}
		return c, config.Validate(c)
	}
	cfg, err := loadCfg()
	if err != nil {
		log.Fatalf("config load failed (%s): %v", userCfgPath, err)
	}
	cfgVal.Store(cfg)

	db, err := store.Open(filepath.Join(dataDir, "jobdesk.db"))
	if err != nil {
		log.Fatal(err)
	}
	defer db.Close()

	hub := events.NewHub()

	sess := session.NewStore(db, hub)
	if err := sess.Restore(context.Background()); err != nil {
		log.Fatalf("session restore failed: %v", err)
	}
	if role := sess.Role(); role != "" {
		log.Printf("level=info msg=\"session restored\" role=%s", role)
	}

	api := remote.New(remote.Options{
		BaseURL:    cfg.Backend.BaseURL,
		Timeout:    cfg.BackendTimeout(),
		RatePerSec: cfg.Backend.RatePerSec,
		Burst:      cfg.Backend.Burst,
		Token:      sess.Token,
	})

	toasts := toast.NewNotifier(toast.Options{
		Duration: cfg.ToastDuration(),
		Tick:     cfg.ToastTick(),
		Hub:      hub,
	})

	feedCtl := feed.NewController(feed.ControllerOptions{
		API:             api,
		Session:         sess,
		Hub:             hub,
		FallbackEnabled: cfg.Feed.FallbackEnabled,
		PageSize:        cfg.FeedPageSize(),
	})

	// Initial load; degraded mode keeps the UI usable when offline.
	loadCtx, cancelLoad := context.WithTimeout(context.Background(), 30*time.Second)
	if err := feedCtl.Load(loadCtx); err != nil {
		log.Printf("[feed] initial load: %v", err)
	}
	cancelLoad()

	if secs := cfg.Feed.AutoRefreshSeconds; secs > 0 {
		go scheduler.Every(context.Background(), time.Duration(secs)*time.Second, "feed-refresh", feedCtl.Load)
	}

	deps := httpapi.Deps{
		Feed:        feedCtl,
		Toast:       toasts,
		Session:     sess,
		Remote:      api,
		Applicants:  manage.NewApplicants(api, sess, hub),
		Moderation:  manage.NewModeration(api, sess),
		Hub:         hub,
		CfgVal:      &cfgVal,
		UserCfgPath: userCfgPath,
		LoadCfg:     loadCfg,
	}

	handler := httpapi.Chain(httpapi.NewMux(deps),
		httpapi.RequestID,
		httpapi.AccessLog,
		httpapi.Recover,
		httpapi.Cors,
	)

	addr := fmt.Sprintf("127.0.0.1:%d", cfg.App.Port)
	ln, err := net.Listen("tcp", addr)
	if err != nil {
		log.Fatal(err)
	}
	log.Printf("engine listening on http://%s (data=%s)", addr, dataDir)

	srv := &http.Server{
		Handler:           handler,
		ReadHeaderTimeout: 5 * time.Second,
	}
	log.Fatal(srv.Serve(ln))
}
