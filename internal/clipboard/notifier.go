package clipboard

import (
	"context"
	"strings"
	"sync"
	"time"

	"github.com/alexisbeaulieu97/iconshelf/internal/logger"
	apperrors "github.com/alexisbeaulieu97/iconshelf/pkg/errors"
)

// DefaultAckDuration is how long an acknowledgement stays visible.
const DefaultAckDuration = 2000 * time.Millisecond

// Ack is the visible acknowledgement of a successful copy.
type Ack struct {
	URL        string
	Generation uint64
	ShownAt    time.Time
}

// Timer is a scheduled task that can be cancelled.
type Timer interface {
	Stop() bool
}

// Scheduler runs f once after d.
type Scheduler interface {
	AfterFunc(d time.Duration, f func()) Timer
}

type realScheduler struct{}

func (realScheduler) AfterFunc(d time.Duration, f func()) Timer {
	return time.AfterFunc(d, f)
}

// Options configures a Notifier.
type Options struct {
	Origin    string
	Duration  time.Duration
	Writer    Writer
	Scheduler Scheduler
	Logger    *logger.Logger
	Now       func() time.Time
}

// Notifier copies absolute icon URLs and shows one acknowledgement at a time.
// A new acknowledgement cancels the pending dismissal of the previous one.
type Notifier struct {
	origin    string
	duration  time.Duration
	writer    Writer
	scheduler Scheduler
	log       *logger.Logger
	now       func() time.Time

	mu        sync.Mutex
	current   *Ack
	dismissal Timer
	gen       uint64
	listeners []func()
}

// NewNotifier builds a Notifier, filling in defaults for unset options.
func NewNotifier(opts Options) *Notifier {
	n := &Notifier{
		origin:    strings.TrimRight(opts.Origin, "/"),
		duration:  opts.Duration,
		writer:    opts.Writer,
		scheduler: opts.Scheduler,
		log:       opts.Logger,
		now:       opts.Now,
	}
	if n.duration <= 0 {
		n.duration = DefaultAckDuration
	}
	if n.writer == nil {
		n.writer = SystemWriter{}
	}
	if n.scheduler == nil {
		n.scheduler = realScheduler{}
	}
	if n.now == nil {
		n.now = time.Now
	}
	return n
}

// URL joins the page origin and an icon path.
func (n *Notifier) URL(path string) string {
	return n.origin + path
}

// Duration is the acknowledgement lifetime.
func (n *Notifier) Duration() time.Duration {
	return n.duration
}

// OnChange registers fn to run whenever an acknowledgement appears or is
// dismissed. Listeners run outside the notifier's lock.
func (n *Notifier) OnChange(fn func()) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.listeners = append(n.listeners, fn)
}

// Copy writes the absolute URL for path to the clipboard. On success the
// acknowledgement is shown and its dismissal scheduled; on failure nothing is
// shown and a ClipboardError is returned.
func (n *Notifier) Copy(ctx context.Context, path string) (Ack, error) {
	url := n.URL(path)
	if err := n.writer.WriteText(ctx, url); err != nil {
		n.log.With("url", url).Err(err).Warn("clipboard write failed")
		return Ack{}, apperrors.NewClipboardError(url, err)
	}

	ack := n.show(url)
	n.log.With("url", url).Debug("copied icon url")
	return ack, nil
}

// Current returns the visible acknowledgement, if any.
func (n *Notifier) Current() (Ack, bool) {
	n.mu.Lock()
	defer n.mu.Unlock()
	if n.current == nil {
		return Ack{}, false
	}
	return *n.current, true
}

// Dismiss hides the current acknowledgement immediately.
func (n *Notifier) Dismiss() {
	n.mu.Lock()
	if n.current == nil {
		n.mu.Unlock()
		return
	}
	n.cancelDismissalLocked()
	n.current = nil
	listeners := n.snapshotListenersLocked()
	n.mu.Unlock()

	notify(listeners)
}

// Close cancels any pending dismissal without notifying listeners.
func (n *Notifier) Close() {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.cancelDismissalLocked()
}

func (n *Notifier) show(url string) Ack {
	n.mu.Lock()
	n.cancelDismissalLocked()
	n.gen++
	ack := Ack{URL: url, Generation: n.gen, ShownAt: n.now()}
	n.current = &ack
	gen := n.gen
	n.dismissal = n.scheduler.AfterFunc(n.duration, func() { n.expire(gen) })
	listeners := n.snapshotListenersLocked()
	n.mu.Unlock()

	notify(listeners)
	return ack
}

// expire dismisses the acknowledgement of generation gen. A timer belonging
// to an older acknowledgement is a no-op.
func (n *Notifier) expire(gen uint64) {
	n.mu.Lock()
	if n.current == nil || n.current.Generation != gen {
		n.mu.Unlock()
		return
	}
	n.current = nil
	n.dismissal = nil
	listeners := n.snapshotListenersLocked()
	n.mu.Unlock()

	notify(listeners)
}

func (n *Notifier) cancelDismissalLocked() {
	if n.dismissal != nil {
		n.dismissal.Stop()
		n.dismissal = nil
	}
}

func (n *Notifier) snapshotListenersLocked() []func() {
	return append([]func(){}, n.listeners...)
}

func notify(listeners []func()) {
	for _, fn := range listeners {
		fn()
	}
}
