package header_test

import (
	"bytes"
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/19990921ck-dev/food/pkg/dom"
	"github.com/19990921ck-dev/food/pkg/header"
	"github.com/19990921ck-dev/food/pkg/i18n"
	"github.com/19990921ck-dev/food/pkg/links"
)

const shell = `<html><body><div id="header-placeholder">loading header</div><main id="content"></main></body></html>`

func mustVariant(t *testing.T, name string) header.Variant {
	t.Helper()
	v, err := header.Builtin(name)
	require.NoError(t, err)
	return v
}

func TestRenderer_Mount(t *testing.T) {
	ctx := context.Background()

	t.Run("minimal variant", func(t *testing.T) {
		doc, err := dom.ParseString(shell)
		require.NoError(t, err)
		r := header.NewRenderer(links.NewResolver("/food/"))

		mounted := r.Mount(ctx, doc, header.DefaultMountID, header.Props{Variant: mustVariant(t, header.Minimal)})
		require.True(t, mounted)

		for _, id := range []string{header.HeaderID, header.UsernameID, header.MenuToggleID, header.MenuID, header.ResetPreferencesID, header.LogoutID} {
			assert.NotNil(t, doc.ByID(id), "element %s", id)
		}
		assert.Nil(t, doc.ByID(header.DailyID))
		assert.Nil(t, doc.ByID(header.HistoryID))
		assert.Equal(t, "尚未登入", doc.ByID(header.UsernameID).Text())
		assert.Equal(t, "登出", doc.ByID(header.LogoutID).Text())
		assert.True(t, doc.ByID(header.LogoutID).HasClass("text-danger"))

		brand := doc.ByClass("navbar-brand")
		href, _ := brand.Attr("href")
		assert.Equal(t, "/food/login.html", href)
		assert.NotContains(t, doc.String(), "loading header")
	})

	t.Run("extended variant with feature links", func(t *testing.T) {
		doc, err := dom.ParseString(shell)
		require.NoError(t, err)
		r := header.NewRenderer(links.NewResolver(""))

		require.True(t, r.Mount(ctx, doc, header.DefaultMountID, header.Props{
			Variant:     mustVariant(t, header.Extended),
			DisplayName: "Alice",
		}))

		assert.NotNil(t, doc.ByID(header.DailyID))
		assert.NotNil(t, doc.ByID(header.HistoryID))
		assert.Equal(t, "Alice", doc.ByID(header.UsernameID).Text())

		fridge := doc.ByID("common-fridge-link")
		require.NotNil(t, fridge)
		href, _ := fridge.Attr("href")
		assert.Equal(t, "fridge.html", href)
	})

	t.Run("absent mount point is a silent no-op", func(t *testing.T) {
		doc, err := dom.ParseString(`<html><body><p>no header here</p></body></html>`)
		require.NoError(t, err)
		before := doc.String()
		r := header.NewRenderer(links.NewResolver(""))

		var mounted bool
		assert.NotPanics(t, func() {
			mounted = r.Mount(ctx, doc, header.DefaultMountID, header.Props{Variant: mustVariant(t, header.Minimal)})
		})
		assert.False(t, mounted)
		assert.Equal(t, before, doc.String())
		assert.Nil(t, doc.ByID(header.UsernameID))
	})

	t.Run("display name is escaped", func(t *testing.T) {
		doc, err := dom.ParseString(shell)
		require.NoError(t, err)
		r := header.NewRenderer(links.NewResolver(""))

		require.True(t, r.Mount(ctx, doc, header.DefaultMountID, header.Props{
			Variant:     mustVariant(t, header.Minimal),
			DisplayName: `<script>alert(1)</script>`,
		}))
		assert.Equal(t, `<script>alert(1)</script>`, doc.ByID(header.UsernameID).Text())
		assert.Nil(t, doc.ByID(header.UsernameID).FirstByTag("script"))
	})
}

func TestRenderer_Component(t *testing.T) {
	t.Run("localized labels", func(t *testing.T) {
		ctx := i18n.SetLocale(context.Background(), "en")
		r := header.NewRenderer(links.NewResolver(""))

		var buf bytes.Buffer
		require.NoError(t, r.Component(header.Props{Variant: mustVariant(t, header.Minimal)}).Render(ctx, &buf))
		assert.Contains(t, buf.String(), "Not logged in")
		assert.Contains(t, buf.String(), "Log out")
	})

	t.Run("click endpoint attributes", func(t *testing.T) {
		r := header.NewRenderer(links.NewResolver("/food"), header.WithClickEndpoint("/food/ui/click/"))

		var buf bytes.Buffer
		require.NoError(t, r.Component(header.Props{Variant: mustVariant(t, header.Extended), MenuOpen: true}).Render(context.Background(), &buf))

		doc, err := dom.ParseString(buf.String())
		require.NoError(t, err)

		post, _ := doc.ByID(header.LogoutID).Attr("hx-post")
		assert.Equal(t, "/food/ui/click/common-logout-btn", post)

		_, hasPost := doc.ByID("common-fridge-link").Attr("hx-post")
		assert.False(t, hasPost, "feature links are plain links")

		toggle := doc.ByID(header.MenuToggleID)
		vals, _ := toggle.Attr("hx-vals")
		assert.Equal(t, `{"menu_open":"true"}`, vals)
		assert.True(t, toggle.HasClass(header.OpenClass))
		assert.True(t, doc.ByID(header.MenuID).HasClass(header.OpenClass))
	})
}

func TestParseVariants(t *testing.T) {
	t.Run("duplicate ids", func(t *testing.T) {
		_, err := header.ParseVariants([]byte("x:\n  - id: a\n    label: l\n  - id: a\n    label: l\n"))
		assert.ErrorIs(t, err, header.ErrInvalidVariants)
	})

	t.Run("missing label", func(t *testing.T) {
		_, err := header.ParseVariants([]byte("x:\n  - id: a\n"))
		assert.ErrorIs(t, err, header.ErrInvalidVariants)
	})

	t.Run("empty", func(t *testing.T) {
		_, err := header.ParseVariants([]byte(""))
		assert.ErrorIs(t, err, header.ErrInvalidVariants)
	})

	t.Run("unknown builtin", func(t *testing.T) {
		_, err := header.Builtin("huge")
		assert.ErrorIs(t, err, header.ErrUnknownVariant)
	})

	t.Run("controls skip separators", func(t *testing.T) {
		v := mustVariant(t, header.Minimal)
		controls := v.Controls()
		require.Len(t, controls, 2)
		assert.Equal(t, header.ResetPreferencesID, controls[0].ID)
		assert.True(t, controls[1].AlwaysVisible)
		assert.True(t, v.Has(header.LogoutID))
		assert.False(t, v.Has(header.DailyID))
	})
}
