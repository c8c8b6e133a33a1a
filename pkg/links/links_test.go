package links_test

import (
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/19990921ck-dev/food/pkg/links"
)

func TestNormalizeBasePath(t *testing.T) {
	tests := map[string]string{
		"":        "",
		"  ":      "",
		"/":       "/",
		"food":    "/food/",
		"/food":   "/food/",
		"/food/":  "/food/",
		"a/b/":    "/a/b/",
		"//x//":   "/x/",
		" /food ": "/food/",
	}
	for in, want := range tests {
		assert.Equal(t, want, links.NormalizeBasePath(in), "input %q", in)
	}
}

func TestResolver(t *testing.T) {
	t.Run("absolute base", func(t *testing.T) {
		r := links.NewResolver("/food/")
		assert.Equal(t, "/food/login.html", r.Home())
		assert.Equal(t, "/food/login.html#style-page", r.HomeView("style-page"))
		assert.Equal(t, "/food/fridge.html", r.Page("fridge.html"))
		assert.Equal(t, "/food/daily.html?idname=u+1%26x", r.Daily("u 1&x"))
	})

	t.Run("relative when unset", func(t *testing.T) {
		r := links.NewResolver("")
		assert.Equal(t, "login.html", r.Home())
		assert.Equal(t, "daily.html?idname=u1", r.Daily("u1"))
	})
}

func TestResolver_IsHome(t *testing.T) {
	mustParse := func(s string) *url.URL {
		u, err := url.Parse(s)
		if err != nil {
			t.Fatal(err)
		}
		return u
	}

	r := links.NewResolver("/food/")
	assert.True(t, r.IsHome(mustParse("https://x.io/food/login.html")))
	assert.True(t, r.IsHome(mustParse("https://x.io/food/")))
	assert.True(t, r.IsHome(mustParse("https://x.io/food")))
	assert.False(t, r.IsHome(mustParse("https://x.io/food/daily.html")))
	assert.False(t, r.IsHome(mustParse("https://x.io/other/login.html")))
	assert.Equal(t, "daily.html", r.PageName(mustParse("https://x.io/food/daily.html?idname=u1")))
	assert.Equal(t, "login.html", r.PageName(mustParse("https://x.io/food/")))

	rel := links.NewResolver("")
	assert.True(t, rel.IsHome(mustParse("file:///home/me/site/login.html")))
	assert.True(t, rel.IsHome(mustParse("http://localhost:8080/")))
	assert.False(t, rel.IsHome(mustParse("http://localhost:8080/history.html")))
	assert.False(t, rel.IsHome(nil))
}
