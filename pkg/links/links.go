// Package links builds the page URLs of the Smart Kitchen front-end from the
// configured base path.
package links

import (
	"net/url"
	"path"
	"strings"
)

// Page names of the front-end.
const (
	HomePage  = "login.html"
	DailyPage = "daily.html"
)

// NormalizeBasePath turns a configured base path into a link prefix.
// An empty value keeps links relative; anything else becomes an absolute
// path with leading and trailing slashes.
func NormalizeBasePath(value string) string {
	p := strings.TrimSpace(value)
	if p == "" {
		return ""
	}
	p = "/" + strings.Trim(p, "/")
	if p == "/" {
		return p
	}
	return p + "/"
}

// Resolver builds links under one base path.
type Resolver struct {
	base string
}

func NewResolver(basePath string) Resolver {
	return Resolver{base: NormalizeBasePath(basePath)}
}

// Base returns the normalized prefix.
func (r Resolver) Base() string { return r.base }

// Page returns the link to a page file, e.g. "fridge.html".
func (r Resolver) Page(name string) string {
	return r.base + strings.TrimLeft(name, "/")
}

// Home returns the home/login page link.
func (r Resolver) Home() string { return r.Page(HomePage) }

// HomeView returns the home page link with a view marker, e.g.
// "/food/login.html#style-page".
func (r Resolver) HomeView(view string) string {
	return r.Home() + "#" + view
}

// Daily returns the daily recommendation link for a user.
func (r Resolver) Daily(idName string) string {
	return r.Page(DailyPage) + "?idname=" + url.QueryEscape(idName)
}

// IsHome reports whether u points at the home page.
func (r Resolver) IsHome(u *url.URL) bool {
	if u == nil {
		return false
	}
	p := u.Path
	if r.base == "" {
		return path.Base(p) == HomePage || p == "" || strings.HasSuffix(p, "/")
	}
	return p == r.Home() || p == r.base || p == strings.TrimSuffix(r.base, "/")
}

// PageName returns the page file a location points at; directory locations
// map to the home page.
func (r Resolver) PageName(u *url.URL) string {
	if u == nil || r.IsHome(u) {
		return HomePage
	}
	return path.Base(u.Path)
}
