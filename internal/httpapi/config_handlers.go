package httpapi

import (
	"net/http"
	"sync/atomic"

	"jobdesk-engine/internal/config"
)

type ConfigHandler struct {
	CfgVal      *atomic.Value // stores config.Config
	UserCfgPath string
	LoadCfg     func() (config.Config, error)
}

func (h ConfigHandler) Get(w http.ResponseWriter, r *http.Request) {
	cfg, _ := h.CfgVal.Load().(config.Config)
	writeJSON(w, cfg)
}

// Put validates, saves atomically, and swaps the live snapshot so the next
// request sees the new settings without a restart.
func (h ConfigHandler) Put(w http.ResponseWriter, r *http.Request) {
	var cfg config.Config
	if err := decodeBody(r, &cfg); err != nil {
		WriteError(w, r, http.StatusBadRequest, "bad_request", "invalid config payload")
		return
	}

	if err := config.SaveAtomic(h.UserCfgPath, cfg); err != nil {
		WriteError(w, r, http.StatusUnprocessableEntity, "invalid_config", err.Error())
		return
	}

	loaded, err := h.LoadCfg()
	if err != nil {
		WriteError(w, r, http.StatusInternalServerError, "internal_error", err.Error())
		return
	}
	h.CfgVal.Store(loaded)
	writeJSON(w, loaded)
}

func (h ConfigHandler) Path(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, map[string]string{"path": h.UserCfgPath})
}
