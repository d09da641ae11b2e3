package navgate

import (
	"fmt"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/payflow-dev/payflow/internal/routes"
)

// Navigator is the route-change primitive the gate drives. Implementations
// own the actual location; the gate never caches it.
type Navigator interface {
	// CurrentPath returns the present route.
	CurrentPath() string
	// Navigate performs a route change, optionally replacing the current
	// history entry instead of pushing a new one.
	Navigate(path string, replace bool) error
	// Back performs the host's native back navigation. Implementations
	// without one return an error and the gate falls back to a known route.
	Back() error
	// Reload performs a full reload to path. Last-resort recovery when a
	// plain Navigate fails.
	Reload(path string) error
}

// AuthState reports the durable authentication flag used to pick the
// fallback route.
type AuthState interface {
	IsAuthenticated() bool
}

// Options tunes the gate. Zero values fall back to the reference behavior.
type Options struct {
	// TransitionDelay is the mandatory loading phase before a route change.
	TransitionDelay time.Duration
	// ErrorExpiry is how long a transient navigation error stays readable.
	ErrorExpiry time.Duration
	// FallbackDelay is the pause before redirecting after a failed route
	// change.
	FallbackDelay time.Duration
	// MaxHistory bounds the back-navigation stack.
	MaxHistory int
	// OnError is invoked when the underlying route change fails.
	OnError func(error)
}

func (o Options) withDefaults() Options {
	if o.TransitionDelay == 0 {
		o.TransitionDelay = 3 * time.Second
	}
	if o.ErrorExpiry == 0 {
		o.ErrorExpiry = 5 * time.Second
	}
	if o.FallbackDelay == 0 {
		o.FallbackDelay = 1500 * time.Millisecond
	}
	if o.MaxHistory == 0 {
		o.MaxHistory = 50
	}
	return o
}

// Gate guards route transitions behind a fixed-duration loading phase and
// keeps a bounded history stack for back-navigation.
//
// The whole state bundle is guarded by one mutex. At most one transition
// timer is armed at a time; a navigation requested while one is pending is
// rejected, so the first in-flight target always wins. Timer callbacks carry
// a generation number and give up if the gate moved on without them, which
// is what makes Cancel and Close safe against late firings.
type Gate struct {
	nav   Navigator
	auth  AuthState
	table *routes.Table
	opts  Options
	log   *zap.Logger

	mu       sync.Mutex
	gen      uint64
	timer    *time.Timer
	errTimer *time.Timer
	fbTimer  *time.Timer
	loading  bool
	pending  string
	history  []string
	lastErr  string
	closed   bool
}

// New creates a Gate. A nil logger is replaced with a no-op one.
func New(nav Navigator, auth AuthState, table *routes.Table, opts Options, log *zap.Logger) *Gate {
	if log == nil {
		log = zap.NewNop()
	}
	return &Gate{
		nav:   nav,
		auth:  auth,
		table: table,
		opts:  opts.withDefaults(),
		log:   log,
	}
}

// NavigateWithLoading requests a transition to target after the loading
// delay. The request is ignored while another transition is pending. An
// unknown target is silently remapped to the fallback route. The optional
// message is only logged; it is what a hosting UI would show on the loading
// screen.
func (g *Gate) NavigateWithLoading(target, message string) {
	g.mu.Lock()
	defer g.mu.Unlock()

	if g.closed {
		return
	}
	if g.loading {
		g.log.Warn("navigation rejected: transition already pending",
			zap.String("requested", target),
			zap.String("pending", g.pending))
		return
	}

	clean := routes.Normalize(target)
	if !g.table.Contains(clean) {
		fallback := g.table.Fallback(g.auth.IsAuthenticated())
		g.log.Debug("unknown route remapped to fallback",
			zap.String("requested", target),
			zap.String("fallback", fallback))
		clean = fallback
	}

	g.clearErrorLocked()

	current := g.nav.CurrentPath()
	if current != clean {
		g.pushHistoryLocked(current)
	}

	g.loading = true
	g.pending = clean
	g.gen++
	gen := g.gen
	g.timer = time.AfterFunc(g.opts.TransitionDelay, func() { g.complete(gen) })

	g.log.Debug("navigation started",
		zap.String("target", clean),
		zap.String("message", message),
		zap.Duration("delay", g.opts.TransitionDelay))
}

// complete fires on timer expiry and performs the actual route change.
func (g *Gate) complete(gen uint64) {
	g.mu.Lock()
	if g.closed || gen != g.gen || !g.loading {
		g.mu.Unlock()
		return
	}
	target := g.pending
	g.loading = false
	g.pending = ""
	g.timer = nil
	g.mu.Unlock()

	// The route change runs outside the lock; reentrant calls from the
	// navigator must not deadlock.
	if err := g.nav.Navigate(target, false); err != nil {
		g.failNavigation(target, err)
	}
}

// failNavigation records a transient error and schedules a fallback
// redirect. If even the fallback redirect fails, a full reload is the last
// resort.
func (g *Gate) failNavigation(target string, cause error) {
	fallback := g.table.Fallback(g.auth.IsAuthenticated())

	g.mu.Lock()
	if g.closed {
		g.mu.Unlock()
		return
	}
	g.lastErr = fmt.Sprintf("navigation to %s failed", target)
	if g.errTimer != nil {
		g.errTimer.Stop()
	}
	g.errTimer = time.AfterFunc(g.opts.ErrorExpiry, func() {
		g.mu.Lock()
		defer g.mu.Unlock()
		g.clearErrorLocked()
	})
	if g.fbTimer != nil {
		g.fbTimer.Stop()
	}
	g.fbTimer = time.AfterFunc(g.opts.FallbackDelay, func() { g.redirectFallback(fallback) })
	onError := g.opts.OnError
	g.mu.Unlock()

	g.log.Error("route change failed",
		zap.String("target", target),
		zap.String("fallback", fallback),
		zap.Error(cause))

	if onError != nil {
		onError(cause)
	}
}

func (g *Gate) redirectFallback(fallback string) {
	g.mu.Lock()
	if g.closed {
		g.mu.Unlock()
		return
	}
	g.mu.Unlock()

	if err := g.nav.Navigate(fallback, true); err != nil {
		if rerr := g.nav.Reload(fallback); rerr != nil {
			g.log.Error("fallback reload failed",
				zap.String("fallback", fallback),
				zap.Error(rerr))
		}
	}
}

// GoBack pops the most recent history entry and navigates to it. It is a
// no-op while a transition is pending. With no usable history entry it tries
// the navigator's native back, then the fallback route.
func (g *Gate) GoBack() {
	g.mu.Lock()
	if g.closed {
		g.mu.Unlock()
		return
	}
	if g.loading {
		g.log.Warn("go-back rejected: transition already pending",
			zap.String("pending", g.pending))
		g.mu.Unlock()
		return
	}
	var prev string
	if n := len(g.history); n > 0 {
		prev = g.history[n-1]
		g.history = g.history[:n-1]
	}
	g.mu.Unlock()

	if prev != "" && g.table.Contains(prev) {
		g.NavigateWithLoading(prev, "")
		return
	}
	if err := g.nav.Back(); err != nil {
		g.NavigateWithLoading(g.table.Fallback(g.auth.IsAuthenticated()), "")
	}
}

// Cancel aborts any pending transition without changing the route.
func (g *Gate) Cancel() {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.cancelLocked()
}

// Resync handles the underlying location changing outside the gate's
// control (host back/forward). Any pending transition is abandoned; the
// current path is always read live from the navigator, so nothing else
// needs refreshing.
func (g *Gate) Resync() {
	g.mu.Lock()
	defer g.mu.Unlock()
	if g.loading {
		g.log.Debug("pending transition cancelled by external location change",
			zap.String("pending", g.pending),
			zap.String("current", g.nav.CurrentPath()))
	}
	g.cancelLocked()
}

// Close cancels all outstanding timers and marks the gate unusable.
// Idempotent; intended for teardown.
func (g *Gate) Close() {
	g.mu.Lock()
	defer g.mu.Unlock()
	if g.closed {
		return
	}
	g.cancelLocked()
	if g.errTimer != nil {
		g.errTimer.Stop()
		g.errTimer = nil
	}
	if g.fbTimer != nil {
		g.fbTimer.Stop()
		g.fbTimer = nil
	}
	g.closed = true
}

// IsLoading reports whether a transition is pending.
func (g *Gate) IsLoading() bool {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.loading
}

// LastError returns the transient navigation error, if one is set.
func (g *Gate) LastError() (string, bool) {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.lastErr, g.lastErr != ""
}

// History returns the back-navigation stack, oldest first, as a copy.
func (g *Gate) History() []string {
	g.mu.Lock()
	defer g.mu.Unlock()
	out := make([]string, len(g.history))
	copy(out, g.history)
	return out
}

// ClearHistory empties the back-navigation stack.
func (g *Gate) ClearHistory() {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.history = nil
}

func (g *Gate) cancelLocked() {
	g.gen++
	if g.timer != nil {
		g.timer.Stop()
		g.timer = nil
	}
	g.loading = false
	g.pending = ""
}

func (g *Gate) clearErrorLocked() {
	g.lastErr = ""
	if g.errTimer != nil {
		g.errTimer.Stop()
		g.errTimer = nil
	}
}

// pushHistoryLocked appends path, suppressing adjacent duplicates and
// evicting the oldest entries past the bound.
func (g *Gate) pushHistoryLocked(path string) {
	if n := len(g.history); n > 0 && g.history[n-1] == path {
		return
	}
	g.history = append(g.history, path)
	if over := len(g.history) - g.opts.MaxHistory; over > 0 {
		g.history = append([]string(nil), g.history[over:]...)
	}
}
