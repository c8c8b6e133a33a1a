package session

import (
	"context"
	"errors"
	"net/http"
	"slices"

	"github.com/19990921ck-dev/food/pkg/cookie"
)

// DefaultCookieName is the slot name the login flow writes.
const DefaultCookieName = "loggedInUser"

// CookieSlot stores the record in a cookie of the current request, written
// and read through a cookie.Manager. It is bound to one request/response
// pair; changes made through the slot are visible to later reads in the
// same request.
type CookieSlot struct {
	w       http.ResponseWriter
	r       *http.Request
	cookies *cookie.Manager
	name    string
	pending []byte
	touched bool
}

// NewCookieSlot binds a slot to the request. An empty name falls back to
// DefaultCookieName.
func NewCookieSlot(w http.ResponseWriter, r *http.Request, cookies *cookie.Manager, name string) *CookieSlot {
	if name == "" {
		name = DefaultCookieName
	}
	return &CookieSlot{w: w, r: r, cookies: cookies, name: name}
}

// Get returns ErrCorrupt for a cookie the manager did not write, such as a
// value with a forged signature.
func (c *CookieSlot) Get(ctx context.Context) ([]byte, error) {
	if c.touched {
		if c.pending == nil {
			return nil, ErrSlotEmpty
		}
		return slices.Clone(c.pending), nil
	}
	raw, err := c.cookies.Get(c.r, c.name)
	switch {
	case errors.Is(err, cookie.ErrCookieNotFound):
		return nil, ErrSlotEmpty
	case errors.Is(err, cookie.ErrInvalidSignature), errors.Is(err, cookie.ErrInvalidFormat):
		return nil, errors.Join(ErrCorrupt, err)
	case err != nil:
		return nil, err
	}
	return raw, nil
}

func (c *CookieSlot) Set(ctx context.Context, value []byte) error {
	c.cookies.Set(c.w, c.name, value)
	c.pending = slices.Clone(value)
	if c.pending == nil {
		c.pending = []byte{}
	}
	c.touched = true
	return nil
}

func (c *CookieSlot) Delete(ctx context.Context) error {
	c.cookies.Delete(c.w, c.name)
	c.pending = nil
	c.touched = true
	return nil
}

// EncodeCookieValue returns the cookie value CookieSlot writes for raw with
// cookies. Login flows living outside this module use it, or the same
// format, to fill the slot.
func EncodeCookieValue(cookies *cookie.Manager, raw []byte) string {
	return cookies.Encode(raw)
}
