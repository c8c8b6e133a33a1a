package navigation

import (
	"context"
	"errors"
	"log/slog"

	"github.com/19990921ck-dev/food/pkg/dom"
	"github.com/19990921ck-dev/food/pkg/header"
	"github.com/19990921ck-dev/food/pkg/i18n"
	"github.com/19990921ck-dev/food/pkg/session"
)

// Controller applies the session state of one page to its header.
type Controller struct {
	doc     *dom.Document
	store   *session.Store
	machine *machine
	entries []header.Entry
	tr      *i18n.Translator
	logger  *slog.Logger

	// set by the transition actions, read by the enter effect
	session session.Session
	corrupt bool

	// a logout holds for the rest of the page, even if the clear failed
	loggedOut bool
}

// Option configures a Controller.
type Option func(*Controller)

// WithVariant limits the managed entries to the ones of v.
func WithVariant(v header.Variant) Option {
	return func(c *Controller) { c.entries = v.Controls() }
}

func WithTranslator(tr *i18n.Translator) Option {
	return func(c *Controller) {
		if tr != nil {
			c.tr = tr
		}
	}
}

func WithLogger(l *slog.Logger) Option {
	return func(c *Controller) {
		if l != nil {
			c.logger = l
		}
	}
}

// NewController creates a Controller in the Anonymous state. Nothing is
// applied to doc until the first Refresh.
func NewController(doc *dom.Document, store *session.Store, opts ...Option) *Controller {
	c := &Controller{
		doc:     doc,
		store:   store,
		machine: newMachine(Anonymous),
		entries: allEntries(),
		tr:      i18n.Default(),
		logger:  slog.Default(),
	}
	for _, opt := range opts {
		opt(c)
	}

	enter := func(ctx context.Context, _, to State, _ Event) error {
		c.apply(ctx, to)
		return nil
	}
	// Every state accepts every event, self transitions included, so a
	// refresh in the current state re-applies the same effect.
	for _, from := range []State{Authenticated, Anonymous} {
		_ = c.machine.add(from, Authenticated, SessionFound, enter)
		_ = c.machine.add(from, Anonymous, SessionAbsent, enter)
		_ = c.machine.add(from, Anonymous, SessionCorrupt, enter)
		_ = c.machine.add(from, Anonymous, LoggedOut, enter)
	}
	return c
}

// State returns the current state.
func (c *Controller) State() State {
	return c.machine.Current()
}

// Refresh re-reads the session and applies the matching state. After
// Logout a record still found in the slot is ignored.
func (c *Controller) Refresh(ctx context.Context) State {
	sess, err := c.store.Load(ctx)
	event := SessionFound
	switch {
	case err == nil && c.loggedOut:
		c.logger.WarnContext(ctx, "session still stored after logout, keeping anonymous")
		sess, event = session.Session{}, LoggedOut
	case err == nil:
	case errors.Is(err, session.ErrCorrupt):
		c.logger.WarnContext(ctx, "stored session is corrupt, treating as absent", "error", err)
		event = SessionCorrupt
	case errors.Is(err, session.ErrNotFound):
		event = SessionAbsent
	default:
		c.logger.ErrorContext(ctx, "session read failed, treating as absent", "error", err)
		event = SessionAbsent
	}
	c.session, c.corrupt = sess, event == SessionCorrupt
	c.fire(ctx, event)
	return c.State()
}

// Logout clears the stored session and moves to Anonymous. The state
// changes even when the slot could not be cleared; the clear error is
// returned and later refreshes stay Anonymous.
func (c *Controller) Logout(ctx context.Context) error {
	err := c.store.Clear(ctx)
	if err != nil {
		c.logger.ErrorContext(ctx, "session clear failed", "error", err)
	}
	c.session, c.corrupt, c.loggedOut = session.Session{}, false, true
	c.fire(ctx, LoggedOut)
	return err
}

func (c *Controller) fire(ctx context.Context, event Event) {
	if err := c.machine.Fire(ctx, event); err != nil {
		c.logger.ErrorContext(ctx, "navigation transition failed", "event", string(event), "error", err)
	}
}

func (c *Controller) apply(ctx context.Context, state State) {
	authenticated := state == Authenticated

	username := c.doc.ByID(header.UsernameID)
	switch {
	case authenticated:
		username.SetText(c.session.DisplayName)
	case c.corrupt:
		username.SetText(c.tr.Tc(ctx, "header.data_error"))
	default:
		username.SetText(c.tr.Tc(ctx, "header.anonymous"))
	}

	for _, e := range c.entries {
		el := c.doc.ByID(e.ID)
		if e.AlwaysVisible || authenticated {
			el.Show()
		} else {
			el.Hide()
		}
	}
}

func allEntries() []header.Entry {
	var out []header.Entry
	seen := make(map[string]bool)
	for _, name := range []string{header.Extended, header.Minimal} {
		v, err := header.Builtin(name)
		if err != nil {
			continue
		}
		for _, e := range v.Controls() {
			if !seen[e.ID] {
				seen[e.ID] = true
				out = append(out, e)
			}
		}
	}
	return out
}
