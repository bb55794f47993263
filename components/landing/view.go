// Package landing implements the Sportselling landing page: a hero, a grid of
// marketplace preview cards, and a welcome modal that appears shortly after
// the page mounts.
package landing

import (
	"sync"
	"time"

	"github.com/sportselling/landing/content"
	"github.com/sportselling/landing/runtime"
	"github.com/sportselling/landing/schedule"
	"github.com/sportselling/landing/signals"
	"github.com/sportselling/landing/vdom"
)

// DefaultDelay is how long after mounting the welcome modal appears.
const DefaultDelay = 150 * time.Millisecond

// Option configures a View.
type Option func(*View)

// WithDelay overrides DefaultDelay. Negative values are treated as zero.
func WithDelay(d time.Duration) Option {
	return func(v *View) {
		v.delay = max(d, 0)
	}
}

// WithScheduler replaces the runtime timers used to reveal the modal.
func WithScheduler(s schedule.Scheduler) Option {
	return func(v *View) {
		if s != nil {
			v.scheduler = s
		}
	}
}

// WithCatalog replaces the copy shown on the page.
func WithCatalog(c content.Catalog) Option {
	return func(v *View) {
		v.catalog = c
	}
}

// View is the landing page component.
//
// The welcome modal is Hidden when the view is created. OnInit arms a one-shot
// timer that makes it Visible; Dismiss hides it for good. Nothing but a new
// View shows it again. OnDestroy cancels the timer, and a callback that was
// already running when OnDestroy was called finishes before OnDestroy returns,
// so no visibility change ever lands on a destroyed view.
type View struct {
	runtime.ComponentBase

	catalog   content.Catalog
	delay     time.Duration
	scheduler schedule.Scheduler

	visible *signals.Signal[bool]
	reveal  *latch

	mu          sync.Mutex
	armed       bool
	dismissed   bool
	destroyed   bool
	pending     schedule.Handle
	unsubscribe func()
}

// Compile-time assertions for the lifecycle hooks the renderers look for.
var (
	_ runtime.Component   = (*View)(nil)
	_ runtime.Initializer = (*View)(nil)
	_ runtime.Cleaner     = (*View)(nil)
)

// New creates a landing view with the modal Hidden.
func New(opts ...Option) *View {
	v := &View{
		catalog:   content.Home(),
		delay:     DefaultDelay,
		scheduler: schedule.Real(),
		visible:   signals.NewSignal(false),
		reveal:    &latch{},
	}
	for _, opt := range opts {
		opt(v)
	}
	return v
}

// OnInit subscribes to the visibility flag and arms the reveal timer.
// Only the first call has any effect.
func (v *View) OnInit() {
	v.mu.Lock()
	defer v.mu.Unlock()
	if v.armed || v.destroyed {
		return
	}
	v.armed = true

	v.unsubscribe = v.visible.Subscribe(func(bool) { v.StateHasChanged() })

	// The callback holds the flag and the latch, not the view.
	visible, reveal := v.visible, v.reveal
	v.pending = v.scheduler.AfterFunc(v.delay, func() {
		reveal.do(func() { visible.Set(true) })
	})
}

// Dismiss hides the modal. It is safe to call any number of times; once
// dismissed the modal never comes back for this view. Dismissing before the
// timer fires cancels the reveal.
func (v *View) Dismiss() {
	v.mu.Lock()
	if v.destroyed {
		v.mu.Unlock()
		return
	}
	v.dismissed = true
	pending := v.pending
	v.pending = nil
	v.mu.Unlock()

	if pending != nil {
		pending.Cancel()
	}
	v.reveal.close()
	v.visible.Set(false)
}

// OnDestroy cancels the pending reveal and drops the re-render subscription.
func (v *View) OnDestroy() {
	v.mu.Lock()
	if v.destroyed {
		v.mu.Unlock()
		return
	}
	v.destroyed = true
	pending, unsubscribe := v.pending, v.unsubscribe
	v.pending, v.unsubscribe = nil, nil
	v.mu.Unlock()

	if pending != nil {
		pending.Cancel()
	}
	// Waits out a callback that is mid-flight.
	v.reveal.close()
	if unsubscribe != nil {
		unsubscribe()
	}
}

// ModalVisible reports whether the welcome modal is currently shown.
func (v *View) ModalVisible() bool {
	return v.visible.Get()
}

// Dismissed reports whether the modal was dismissed.
func (v *View) Dismissed() bool {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.dismissed
}

// Render builds the page. The modal subtree is present only while Visible.
func (v *View) Render(r runtime.Renderer) *vdom.VNode {
	c := v.catalog

	var modal *vdom.VNode
	if v.visible.Get() {
		modal = r.RenderChild("welcome-modal", &WelcomeModal{
			Title:       c.Welcome.Title,
			Description: c.Welcome.Description,
			OnClose:     v.Dismiss,
		})
	}

	return vdom.Div(map[string]any{"class": "landing"},
		vdom.Main(nil,
			r.RenderChild("hero", &Hero{
				Headline:    c.Hero.Headline,
				Subheadline: c.Hero.Subheadline,
				CTA:         c.CTA,
			}),
			r.RenderChild("marketplace", &Marketplace{
				Title:    c.Marketplace.Title,
				Subtitle: c.Marketplace.Subtitle,
				Cards:    c.Marketplace.Cards,
			}),
		),
		modal,
	)
}

// latch runs actions until it is closed. close blocks until an action that
// is already running has returned.
type latch struct {
	mu     sync.Mutex
	closed bool
}

func (l *latch) do(fn func()) bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.closed {
		return false
	}
	fn()
	return true
}

func (l *latch) close() {
	l.mu.Lock()
	l.closed = true
	l.mu.Unlock()
}
