package page

import (
	"context"
	"errors"
	"log/slog"
	"net/url"
	"slices"
	"sync"

	"github.com/19990921ck-dev/food/pkg/dom"
)

// Handler reacts to a click on a bound control.
type Handler func(ctx context.Context, p *Page) error

// Notifier delivers a blocking, user-facing message.
type Notifier interface {
	Notify(ctx context.Context, message string)
}

// NotifierFunc adapts a function to Notifier.
type NotifierFunc func(ctx context.Context, message string)

func (f NotifierFunc) Notify(ctx context.Context, message string) { f(ctx, message) }

// Switcher is the optional page-local capability to activate a view without
// reloading. SwitchTo reports whether the view was activated.
type Switcher interface {
	SwitchTo(viewID string) bool
}

// SwitcherFunc adapts a function to Switcher.
type SwitcherFunc func(viewID string) bool

func (f SwitcherFunc) SwitchTo(viewID string) bool { return f(viewID) }

// Page is one rendered document together with the browser-side state the
// header code interacts with: location, click handlers, notifications and
// the optional view switcher.
type Page struct {
	mu            sync.Mutex
	doc           *dom.Document
	location      *url.URL
	navigatedTo   *url.URL
	notifier      Notifier
	switcher      Switcher
	handlers      map[string]Handler
	notifications []string
	logger        *slog.Logger
}

// Option configures a Page.
type Option func(*Page)

// WithNotifier forwards notifications to n in addition to recording them.
func WithNotifier(n Notifier) Option {
	return func(p *Page) {
		if n != nil {
			p.notifier = n
		}
	}
}

// WithSwitcher installs the view-switching capability.
func WithSwitcher(s Switcher) Option {
	return func(p *Page) {
		if s != nil {
			p.switcher = s
		}
	}
}

func WithLogger(l *slog.Logger) Option {
	return func(p *Page) {
		if l != nil {
			p.logger = l
		}
	}
}

// New creates a Page for doc loaded at location.
func New(doc *dom.Document, location string, opts ...Option) (*Page, error) {
	if doc == nil {
		return nil, ErrNilDocument
	}
	u, err := url.Parse(location)
	if err != nil {
		return nil, errors.Join(ErrInvalidLocation, err)
	}
	p := &Page{
		doc:      doc,
		location: u,
		handlers: make(map[string]Handler),
		logger:   slog.Default(),
	}
	for _, opt := range opts {
		opt(p)
	}
	return p, nil
}

func (p *Page) Doc() *dom.Document { return p.doc }

func (p *Page) Logger() *slog.Logger { return p.logger }

// Location returns a copy of the current location.
func (p *Page) Location() *url.URL {
	p.mu.Lock()
	defer p.mu.Unlock()
	u := *p.location
	return &u
}

// Switcher returns the view-switching capability when the host page has one.
func (p *Page) Switcher() (Switcher, bool) {
	return p.switcher, p.switcher != nil
}

// On binds h as the only click handler of the control with the given id.
// Binding to a control missing from the document is skipped and reported
// as false.
func (p *Page) On(id string, h Handler) bool {
	if h == nil || p.doc.ByID(id) == nil {
		return false
	}
	p.mu.Lock()
	p.handlers[id] = h
	p.mu.Unlock()
	return true
}

// Bound reports whether the control has a click handler.
func (p *Page) Bound(id string) bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	_, ok := p.handlers[id]
	return ok
}

// Click dispatches a click to the control's handler. Clicking an unbound
// control does nothing and reports false.
func (p *Page) Click(ctx context.Context, id string) (bool, error) {
	p.mu.Lock()
	h, ok := p.handlers[id]
	p.mu.Unlock()
	if !ok {
		return false, nil
	}
	return true, h(ctx, p)
}

// Navigate moves the page to target, resolved against the current location.
func (p *Page) Navigate(target string) {
	ref, err := url.Parse(target)
	if err != nil {
		p.logger.Warn("navigation target rejected", "target", target, "error", err)
		return
	}
	p.mu.Lock()
	defer p.mu.Unlock()
	next := p.location.ResolveReference(ref)
	p.navigatedTo = next
	p.location = next
}

// Navigation returns the last navigation target, if the page navigated.
func (p *Page) Navigation() (string, bool) {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.navigatedTo == nil {
		return "", false
	}
	return p.navigatedTo.String(), true
}

// Notify records a user-facing message and forwards it to the notifier.
func (p *Page) Notify(ctx context.Context, message string) {
	p.mu.Lock()
	p.notifications = append(p.notifications, message)
	n := p.notifier
	p.mu.Unlock()
	if n != nil {
		n.Notify(ctx, message)
	}
}

// Notifications returns the messages shown so far, oldest first.
func (p *Page) Notifications() []string {
	p.mu.Lock()
	defer p.mu.Unlock()
	return slices.Clone(p.notifications)
}
