// Package interaction binds the header controls of a page to their
// behavior: menu toggle, logout, reset preferences, daily recommendation
// and history.
package interaction

import (
	"context"
	"log/slog"

	"github.com/19990921ck-dev/food/pkg/header"
	"github.com/19990921ck-dev/food/pkg/i18n"
	"github.com/19990921ck-dev/food/pkg/links"
	"github.com/19990921ck-dev/food/pkg/navigation"
	"github.com/19990921ck-dev/food/pkg/page"
	"github.com/19990921ck-dev/food/pkg/session"
)

// Views of the home page reachable from the header.
const (
	PreferencesView = "style-page"
	HistoryView     = "history-page"
)

// Binder installs the header click handlers on a page.
type Binder struct {
	links  links.Resolver
	store  *session.Store
	nav    *navigation.Controller
	tr     *i18n.Translator
	logger *slog.Logger
}

// Option configures a Binder.
type Option func(*Binder)

func WithTranslator(tr *i18n.Translator) Option {
	return func(b *Binder) {
		if tr != nil {
			b.tr = tr
		}
	}
}

func WithLogger(l *slog.Logger) Option {
	return func(b *Binder) {
		if l != nil {
			b.logger = l
		}
	}
}

func NewBinder(resolver links.Resolver, store *session.Store, nav *navigation.Controller, opts ...Option) *Binder {
	b := &Binder{
		links:  resolver,
		store:  store,
		nav:    nav,
		tr:     i18n.Default(),
		logger: slog.Default(),
	}
	for _, opt := range opts {
		opt(b)
	}
	return b
}

// Bind installs one handler per header control present on p and returns
// the ids it bound. Binding again replaces the previous handlers.
func (b *Binder) Bind(p *page.Page) []string {
	handlers := []struct {
		id string
		h  page.Handler
	}{
		{header.MenuToggleID, b.toggleMenu},
		{header.LogoutID, b.logout},
		{header.ResetPreferencesID, b.switchOrNavigate(PreferencesView)},
		{header.DailyID, b.daily},
		{header.HistoryID, b.switchOrNavigate(HistoryView)},
	}

	bound := make([]string, 0, len(handlers))
	for _, c := range handlers {
		if p.On(c.id, c.h) {
			bound = append(bound, c.id)
		}
	}
	p.Logger().Debug("header controls bound", "controls", bound)
	return bound
}

func (b *Binder) toggleMenu(_ context.Context, p *page.Page) error {
	menu := p.Doc().ByID(header.MenuID)
	if menu == nil {
		return nil
	}
	open := menu.ToggleClass(header.OpenClass)
	toggle := p.Doc().ByID(header.MenuToggleID)
	if open {
		toggle.AddClass(header.OpenClass)
	} else {
		toggle.RemoveClass(header.OpenClass)
	}
	return nil
}

func (b *Binder) logout(ctx context.Context, p *page.Page) error {
	// a failed clear is logged by the controller; the user still leaves
	_ = b.nav.Logout(ctx)
	b.nav.Refresh(ctx)
	p.Navigate(b.links.Home())
	return nil
}

func (b *Binder) switchOrNavigate(view string) page.Handler {
	return func(ctx context.Context, p *page.Page) error {
		if s, ok := p.Switcher(); ok && b.links.IsHome(p.Location()) {
			if s.SwitchTo(view) {
				return nil
			}
			b.logger.WarnContext(ctx, "view switch refused, navigating instead", "view", view)
		}
		p.Navigate(b.links.HomeView(view))
		return nil
	}
}

func (b *Binder) daily(ctx context.Context, p *page.Page) error {
	sess, ok := b.store.Lookup(ctx)
	if !ok {
		p.Notify(ctx, b.tr.Tc(ctx, "interaction.unknown_user"))
		return nil
	}
	p.Navigate(b.links.Daily(sess.IDName))
	return nil
}
