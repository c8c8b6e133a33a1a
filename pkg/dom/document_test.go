package dom_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/19990921ck-dev/food/pkg/dom"
)

const shell = `<!DOCTYPE html>
<html><body>
<div id="header-placeholder"><p>old</p></div>
<div id="loading-overlay" style="display: none; color: red"><p>loading</p></div>
<button class="hamburger-button primary">menu</button>
</body></html>`

func TestDocument_ByID(t *testing.T) {
	doc, err := dom.ParseString(shell)
	require.NoError(t, err)

	t.Run("existing element", func(t *testing.T) {
		el := doc.ByID("header-placeholder")
		require.NotNil(t, el)
		assert.Equal(t, "div", el.Tag())
		assert.Equal(t, "old", el.Text())
	})

	t.Run("missing element is nil and safe", func(t *testing.T) {
		el := doc.ByID("nope")
		assert.Nil(t, el)
		assert.NotPanics(t, func() {
			el.SetText("x")
			el.AddClass("a")
			el.Hide()
			assert.False(t, el.Visible())
			assert.NoError(t, el.SetInnerHTML("<b>x</b>"))
		})
	})

	t.Run("by class", func(t *testing.T) {
		el := doc.ByClass("hamburger-button")
		require.NotNil(t, el)
		assert.Equal(t, "button", el.Tag())
	})
}

func TestElement_SetInnerHTML(t *testing.T) {
	doc, err := dom.ParseString(shell)
	require.NoError(t, err)

	mount := doc.ByID("header-placeholder")
	require.NoError(t, mount.SetInnerHTML(`<header id="app-header"><span id="header-username">guest</span></header>`))

	assert.Equal(t, "guest", doc.ByID("header-username").Text())
	assert.NotContains(t, doc.String(), "old")
}

func TestElement_Classes(t *testing.T) {
	doc, err := dom.ParseString(shell)
	require.NoError(t, err)

	btn := doc.ByClass("hamburger-button")
	assert.True(t, btn.ToggleClass("is-active"))
	assert.True(t, btn.HasClass("is-active"))
	assert.True(t, btn.HasClass("primary"))
	assert.False(t, btn.ToggleClass("is-active"))
	assert.False(t, btn.HasClass("is-active"))

	btn.AddClass("x")
	btn.AddClass("x")
	v, _ := btn.Attr("class")
	assert.Equal(t, "hamburger-button primary x", v)
}

func TestElement_Display(t *testing.T) {
	doc, err := dom.ParseString(shell)
	require.NoError(t, err)

	overlay := doc.ByID("loading-overlay")
	assert.False(t, overlay.Visible())

	overlay.SetDisplay("flex")
	assert.True(t, overlay.Visible())
	assert.Equal(t, "flex", overlay.Display())
	style, _ := overlay.Attr("style")
	assert.Equal(t, "color: red; display: flex", style)

	overlay.Hide()
	assert.False(t, overlay.Visible())

	overlay.Show()
	assert.True(t, overlay.Visible())
	assert.Equal(t, "", overlay.Display())

	overlay.SetAttr("hidden", "")
	assert.False(t, overlay.Visible())
	overlay.Show()
	assert.True(t, overlay.Visible())
}

func TestElement_FirstByTag(t *testing.T) {
	doc, err := dom.ParseString(shell)
	require.NoError(t, err)

	p := doc.ByID("loading-overlay").FirstByTag("p")
	require.NotNil(t, p)
	p.SetText("processing")
	assert.Equal(t, "processing", doc.ByID("loading-overlay").Text())
	assert.Nil(t, doc.ByID("loading-overlay").FirstByTag("table"))
}

func TestDocument_AllByClass(t *testing.T) {
	doc, err := dom.ParseString(`<main><section id="a" class="page-view"></section><div><section id="b" class="x page-view"></section></div></main>`)
	require.NoError(t, err)

	views := doc.AllByClass("page-view")
	require.Len(t, views, 2)
	assert.Equal(t, "a", views[0].ID())
	assert.Equal(t, "b", views[1].ID())
	assert.Empty(t, doc.AllByClass("missing"))
}
