package cookie

import (
	"net/http"
	"time"
)

// Options are the attributes of a written cookie.
type Options struct {
	Path     string
	Domain   string
	MaxAge   time.Duration
	Secure   bool
	SameSite http.SameSite
}

type Option func(*Options)

func WithPath(path string) Option {
	return func(o *Options) {
		if path != "" {
			o.Path = path
		}
	}
}

func WithDomain(domain string) Option {
	return func(o *Options) { o.Domain = domain }
}

// WithMaxAge sets the lifetime. Zero makes a browser-session cookie.
func WithMaxAge(d time.Duration) Option {
	return func(o *Options) { o.MaxAge = d }
}

func WithSecure(secure bool) Option {
	return func(o *Options) { o.Secure = secure }
}

func WithSameSite(s http.SameSite) Option {
	return func(o *Options) {
		if s != 0 {
			o.SameSite = s
		}
	}
}

func applyOptions(base Options, opts []Option) Options {
	for _, opt := range opts {
		opt(&base)
	}
	return base
}
