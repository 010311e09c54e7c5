package events

import (
	"encoding/json"
	"time"
)

// Event types pushed to the UI over SSE.
const (
	TypePing         = "ping"
	TypeToastShown   = "toast_shown"
	TypeToastTick    = "toast_tick"
	TypeToastHidden  = "toast_hidden"
	TypeFeedUpdated  = "feed_updated"
	TypeFeedDegraded = "feed_degraded"
	TypeAuthChanged  = "auth_changed"
	TypeAppDecided   = "application_decided"
)

type Event struct {
	Type      string          `json:"type"`
	Version   int             `json:"v"`
	At        time.Time       `json:"at"`
	RequestID string          `json:"request_id,omitempty"`
	Data      json.RawMessage `json:"data,omitempty"`
}

// Make serializes an event envelope. Marshal failures on Data are swallowed:
// every payload we publish is a plain struct or map and cannot fail.
func Make(reqID, typ string, data any) string {
	var raw json.RawMessage
	if data != nil {
		b, _ := json.Marshal(data)
		raw = b
	}
	e := Event{
		Type:      typ,
		Version:   1,
		At:        time.Now().UTC(),
		RequestID: reqID,
		Data:      raw,
	}
	b, _ := json.Marshal(e)
	return string(b)
}
