package interaction_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/19990921ck-dev/food/pkg/dom"
	"github.com/19990921ck-dev/food/pkg/header"
	"github.com/19990921ck-dev/food/pkg/interaction"
	"github.com/19990921ck-dev/food/pkg/links"
	"github.com/19990921ck-dev/food/pkg/navigation"
	"github.com/19990921ck-dev/food/pkg/page"
	"github.com/19990921ck-dev/food/pkg/session"
)

const alice = `{"idName":"u1","displayName":"Alice"}`

type fixture struct {
	page  *page.Page
	store *session.Store
	nav   *navigation.Controller
}

func setup(t *testing.T, variant, location, stored string, opts ...page.Option) fixture {
	t.Helper()
	ctx := context.Background()
	resolver := links.NewResolver("/food/")

	doc, err := dom.ParseString(`<html><body><div id="header-placeholder"></div></body></html>`)
	require.NoError(t, err)
	v, err := header.Builtin(variant)
	require.NoError(t, err)
	require.True(t, header.NewRenderer(resolver).Mount(ctx, doc, header.DefaultMountID, header.Props{Variant: v}))

	store := session.NewStore(session.NewMemorySlot([]byte(stored)...))
	nav := navigation.NewController(doc, store, navigation.WithVariant(v))
	nav.Refresh(ctx)

	p, err := page.New(doc, location, opts...)
	require.NoError(t, err)
	interaction.NewBinder(resolver, store, nav).Bind(p)
	return fixture{page: p, store: store, nav: nav}
}

func click(t *testing.T, p *page.Page, id string) {
	t.Helper()
	handled, err := p.Click(context.Background(), id)
	require.NoError(t, err)
	require.True(t, handled, "control %s not bound", id)
}

func TestBinder_Bind(t *testing.T) {
	t.Run("minimal variant skips absent controls", func(t *testing.T) {
		f := setup(t, header.Minimal, "https://example.com/food/fridge.html", "")

		assert.True(t, f.page.Bound(header.MenuToggleID))
		assert.True(t, f.page.Bound(header.LogoutID))
		assert.True(t, f.page.Bound(header.ResetPreferencesID))
		assert.False(t, f.page.Bound(header.DailyID))
		assert.False(t, f.page.Bound(header.HistoryID))
	})

	t.Run("page without header binds nothing", func(t *testing.T) {
		doc, err := dom.ParseString(`<html><body></body></html>`)
		require.NoError(t, err)
		store := session.NewStore(session.NewMemorySlot())
		p, err := page.New(doc, "/")
		require.NoError(t, err)

		bound := interaction.NewBinder(links.NewResolver(""), store, navigation.NewController(doc, store)).Bind(p)
		assert.Empty(t, bound)
	})
}

func TestBinder_MenuToggle(t *testing.T) {
	f := setup(t, header.Minimal, "https://example.com/food/login.html", "")
	doc := f.page.Doc()

	click(t, f.page, header.MenuToggleID)
	assert.True(t, doc.ByID(header.MenuID).HasClass(header.OpenClass))
	assert.True(t, doc.ByID(header.MenuToggleID).HasClass(header.OpenClass))

	click(t, f.page, header.MenuToggleID)
	assert.False(t, doc.ByID(header.MenuID).HasClass(header.OpenClass))
	assert.False(t, doc.ByID(header.MenuToggleID).HasClass(header.OpenClass))

	_, navigated := f.page.Navigation()
	assert.False(t, navigated)
}

func TestBinder_Logout(t *testing.T) {
	f := setup(t, header.Extended, "https://example.com/food/daily.html?idname=u1", alice)
	require.Equal(t, navigation.Authenticated, f.nav.State())

	click(t, f.page, header.LogoutID)

	_, err := f.store.Load(context.Background())
	assert.ErrorIs(t, err, session.ErrNotFound)
	assert.Equal(t, navigation.Anonymous, f.nav.State())
	assert.Equal(t, "尚未登入", f.page.Doc().ByID(header.UsernameID).Text())

	target, navigated := f.page.Navigation()
	require.True(t, navigated)
	assert.Equal(t, "https://example.com/food/login.html", target)
}

// stuckSlot always returns the record and never deletes it.
type stuckSlot struct{}

func (stuckSlot) Get(context.Context) ([]byte, error) { return []byte(alice), nil }
func (stuckSlot) Set(context.Context, []byte) error   { return nil }
func (stuckSlot) Delete(context.Context) error        { return errors.New("slot unavailable") }

func TestBinder_Logout_ClearFails(t *testing.T) {
	ctx := context.Background()
	resolver := links.NewResolver("/food/")
	doc, err := dom.ParseString(`<html><body><div id="header-placeholder"></div></body></html>`)
	require.NoError(t, err)
	v, err := header.Builtin(header.Extended)
	require.NoError(t, err)
	require.True(t, header.NewRenderer(resolver).Mount(ctx, doc, header.DefaultMountID, header.Props{Variant: v}))

	store := session.NewStore(stuckSlot{})
	nav := navigation.NewController(doc, store, navigation.WithVariant(v))
	require.Equal(t, navigation.Authenticated, nav.Refresh(ctx))

	p, err := page.New(doc, "https://example.com/food/daily.html")
	require.NoError(t, err)
	interaction.NewBinder(resolver, store, nav).Bind(p)

	click(t, p, header.LogoutID)

	assert.Equal(t, navigation.Anonymous, nav.State())
	assert.Equal(t, "尚未登入", doc.ByID(header.UsernameID).Text())
	assert.False(t, doc.ByID(header.DailyID).Visible())
	target, navigated := p.Navigation()
	require.True(t, navigated)
	assert.Equal(t, "https://example.com/food/login.html", target)

	assert.Equal(t, navigation.Anonymous, nav.Refresh(ctx))
}

func TestBinder_ResetPreferences(t *testing.T) {
	t.Run("home page with switcher switches in place", func(t *testing.T) {
		var active string
		switcher := page.SwitcherFunc(func(view string) bool { active = view; return true })
		f := setup(t, header.Minimal, "https://example.com/food/login.html", "", page.WithSwitcher(switcher))

		click(t, f.page, header.ResetPreferencesID)

		assert.Equal(t, interaction.PreferencesView, active)
		_, navigated := f.page.Navigation()
		assert.False(t, navigated)
		assert.Equal(t, "https://example.com/food/login.html", f.page.Location().String())
	})

	t.Run("other page navigates with view marker", func(t *testing.T) {
		f := setup(t, header.Minimal, "https://example.com/food/fridge.html", "")

		click(t, f.page, header.ResetPreferencesID)

		target, navigated := f.page.Navigation()
		require.True(t, navigated)
		assert.Equal(t, "https://example.com/food/login.html#style-page", target)
	})

	t.Run("switcher on another page is not used", func(t *testing.T) {
		called := false
		switcher := page.SwitcherFunc(func(string) bool { called = true; return true })
		f := setup(t, header.Minimal, "https://example.com/food/recipes.html", "", page.WithSwitcher(switcher))

		click(t, f.page, header.ResetPreferencesID)

		assert.False(t, called)
		_, navigated := f.page.Navigation()
		assert.True(t, navigated)
	})

	t.Run("refused switch falls back to navigation", func(t *testing.T) {
		switcher := page.SwitcherFunc(func(string) bool { return false })
		f := setup(t, header.Minimal, "https://example.com/food/", "", page.WithSwitcher(switcher))

		click(t, f.page, header.ResetPreferencesID)

		target, navigated := f.page.Navigation()
		require.True(t, navigated)
		assert.Equal(t, "https://example.com/food/login.html#style-page", target)
	})
}

func TestBinder_History(t *testing.T) {
	var active string
	switcher := page.SwitcherFunc(func(view string) bool { active = view; return true })
	f := setup(t, header.Extended, "https://example.com/food/login.html", alice, page.WithSwitcher(switcher))

	click(t, f.page, header.HistoryID)
	assert.Equal(t, interaction.HistoryView, active)

	f = setup(t, header.Extended, "https://example.com/food/daily.html", alice)
	click(t, f.page, header.HistoryID)
	target, _ := f.page.Navigation()
	assert.Equal(t, "https://example.com/food/login.html#history-page", target)
}

func TestBinder_Daily(t *testing.T) {
	t.Run("with session", func(t *testing.T) {
		f := setup(t, header.Extended, "https://example.com/food/login.html", `{"idName":"chef & co","displayName":"Alice"}`)

		click(t, f.page, header.DailyID)

		target, navigated := f.page.Navigation()
		require.True(t, navigated)
		assert.Equal(t, "https://example.com/food/daily.html?idname=chef+%26+co", target)
		assert.Empty(t, f.page.Notifications())
	})

	t.Run("without session", func(t *testing.T) {
		f := setup(t, header.Extended, "https://example.com/food/login.html", "")

		click(t, f.page, header.DailyID)

		_, navigated := f.page.Navigation()
		assert.False(t, navigated)
		assert.Equal(t, []string{"無法識別使用者，請重新登入"}, f.page.Notifications())
	})

	t.Run("corrupt session", func(t *testing.T) {
		f := setup(t, header.Extended, "https://example.com/food/login.html", `{"idName":`)

		click(t, f.page, header.DailyID)

		_, navigated := f.page.Navigation()
		assert.False(t, navigated)
		assert.Len(t, f.page.Notifications(), 1)
	})
}
