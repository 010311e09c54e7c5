// Package toast is the app-wide transient feedback primitive: one toast at
// a time, a linear countdown, and auto-dismiss. Showing a new toast
// replaces the current one outright; there is no queue and no stacking.
// The component does no I/O and cannot fail.
package toast

import (
	"sync"
	"time"

	"jobdesk-engine/internal/events"
)

type Severity string

const (
	SeveritySuccess Severity = "success"
	SeverityError   Severity = "error"
	SeverityWarning Severity = "warning"
)

// State is the UI-facing snapshot. Remaining runs 1.0 → 0.0 while visible;
// hitting 0 hides the toast exactly once.
type State struct {
	Visible   bool     `json:"visible"`
	Message   string   `json:"message"`
	Severity  Severity `json:"severity"`
	Remaining float64  `json:"remaining"`
}

type Notifier struct {
	mu       sync.Mutex
	duration time.Duration
	tick     time.Duration
	hub      *events.Hub

	state State
	gen   uint64 // bumps on every Show/Dismiss; stale tickers see it and stop
}

type Options struct {
	Duration time.Duration // total countdown, default 3s
	Tick     time.Duration // tick interval, default 30ms
	Hub      *events.Hub
}

func NewNotifier(opts Options) *Notifier {
	d := opts.Duration
	if d <= 0 {
		d = 3 * time.Second
	}
	t := opts.Tick
	if t <= 0 {
		t = 30 * time.Millisecond
	}
	if t > d {
		t = d
	}
	return &Notifier{duration: d, tick: t, hub: opts.Hub}
}

func (n *Notifier) Success(msg string) { n.Show(msg, SeveritySuccess) }
func (n *Notifier) Error(msg string)   { n.Show(msg, SeverityError) }
func (n *Notifier) Warning(msg string) { n.Show(msg, SeverityWarning) }

// Show makes the toast visible with a full countdown. Any in-flight
// countdown is cancelled first: last write wins, and the cancelled timer
// can never fire a dismissal for its predecessor.
func (n *Notifier) Show(msg string, sev Severity) {
	n.mu.Lock()
	n.gen++
	gen := n.gen
	n.state = State{Visible: true, Message: msg, Severity: sev, Remaining: 1.0}
	st := n.state
	n.mu.Unlock()

	n.publish(events.TypeToastShown, st)
	go n.countdown(gen)
}

func (n *Notifier) countdown(gen uint64) {
	step := float64(n.tick) / float64(n.duration)
	t := time.NewTicker(n.tick)
	defer t.Stop()

	for range t.C {
		n.mu.Lock()
		if gen != n.gen || !n.state.Visible {
			n.mu.Unlock()
			return
		}
		n.state.Remaining -= step
		if n.state.Remaining <= 0 {
			n.state = State{}
			n.mu.Unlock()
			n.publish(events.TypeToastHidden, State{})
			return
		}
		st := n.state
		n.mu.Unlock()
		n.publish(events.TypeToastTick, st)
	}
}

// Dismiss hides the toast immediately (the close button). A no-op when
// nothing is visible.
func (n *Notifier) Dismiss() {
	n.mu.Lock()
	if !n.state.Visible {
		n.mu.Unlock()
		return
	}
	n.gen++ // cancels the running countdown
	n.state = State{}
	n.mu.Unlock()

	n.publish(events.TypeToastHidden, State{})
}

func (n *Notifier) State() State {
	n.mu.Lock()
	defer n.mu.Unlock()
	return n.state
}

func (n *Notifier) publish(typ string, st State) {
	if n.hub == nil {
		return
	}
	n.hub.Publish(events.Make("", typ, st))
}
