// Package notify implements the single-slot transient status message the
// dashboard surfaces after remote operations: one visible message at a time,
// auto-dismissed after a fixed delay, replaceable at any point.
package notify

import (
	"sync"
	"time"
)

// Kind classifies a notification for presentation.
type Kind string

const (
	KindSuccess Kind = "success"
	KindError   Kind = "error"
	KindInfo    Kind = "info"
)

// DefaultAutoDismiss matches the dashboard's 4 second toast lifetime.
const DefaultAutoDismiss = 4 * time.Second

// Notification is the current reporter state. Visible false means Hidden.
type Notification struct {
	Message string
	Kind    Kind
	Visible bool
}

// Reporter holds at most one visible notification. A second Show replaces the
// message and restarts the auto-dismiss timer; a stale timer from an earlier
// message never hides a newer one.
type Reporter struct {
	mu       sync.Mutex
	current  Notification
	gen      uint64
	timer    *time.Timer
	delay    time.Duration
	onChange func(Notification)
}

// Option configures a Reporter.
type Option func(*Reporter)

// WithAutoDismiss overrides the auto-dismiss delay.
func WithAutoDismiss(d time.Duration) Option {
	return func(r *Reporter) { r.delay = d }
}

// WithChangeListener registers a callback invoked after every state change.
func WithChangeListener(fn func(Notification)) Option {
	return func(r *Reporter) { r.onChange = fn }
}

// New creates a Reporter with the default 4s auto-dismiss delay.
func New(opts ...Option) *Reporter {
	r := &Reporter{delay: DefaultAutoDismiss}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Show displays a message, replacing any visible one and restarting the
// auto-dismiss timer.
func (r *Reporter) Show(message string, kind Kind) {
	r.mu.Lock()
	r.gen++
	gen := r.gen
	r.current = Notification{Message: message, Kind: kind, Visible: true}
	if r.timer != nil {
		r.timer.Stop()
	}
	r.timer = time.AfterFunc(r.delay, func() { r.dismissGen(gen) })
	notification := r.current
	onChange := r.onChange
	r.mu.Unlock()

	if onChange != nil {
		onChange(notification)
	}
}

// Dismiss hides the current notification immediately.
func (r *Reporter) Dismiss() {
	r.mu.Lock()
	r.gen++
	r.hideLocked()
	notification := r.current
	onChange := r.onChange
	r.mu.Unlock()

	if onChange != nil {
		onChange(notification)
	}
}

// Current returns the reporter state.
func (r *Reporter) Current() Notification {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.current
}

// dismissGen hides the notification only if no newer Show has happened since
// the timer that fired was armed.
func (r *Reporter) dismissGen(gen uint64) {
	r.mu.Lock()
	if r.gen != gen {
		r.mu.Unlock()
		return
	}
	r.hideLocked()
	notification := r.current
	onChange := r.onChange
	r.mu.Unlock()

	if onChange != nil {
		onChange(notification)
	}
}

func (r *Reporter) hideLocked() {
	if r.timer != nil {
		r.timer.Stop()
		r.timer = nil
	}
	r.current = Notification{}
}
