package cookie

import (
	"crypto/hmac"
	"crypto/sha256"
	"crypto/subtle"
	"encoding/base64"
	"errors"
	"fmt"
	"io"
	"net/http"
	"slices"
	"strings"
	"time"

	"golang.org/x/crypto/hkdf"
)

const minSecretLength = 32

// sep splits the encoded value from its signature.
const sep = "."

// keyInfo separates cookie signing keys from other uses of the secrets.
const keyInfo = "food-cookie-signing-v1"

// Manager writes and reads cookie values with shared default attributes.
type Manager struct {
	// signing keys derived from the secrets, in secret order
	keys     [][]byte
	defaults Options
}

// New creates a signing Manager. Every secret must be at least 32 bytes.
func New(secrets []string, opts ...Option) (*Manager, error) {
	secrets = slices.DeleteFunc(slices.Clone(secrets), func(s string) bool { return s == "" })
	if len(secrets) == 0 {
		return nil, ErrNoSecret
	}
	for i, s := range secrets {
		if len(s) < minSecretLength {
			return nil, fmt.Errorf("%w: secret %d has %d chars, need at least %d", ErrSecretTooShort, i, len(s), minSecretLength)
		}
	}
	m := NewUnsigned(opts...)
	for _, s := range secrets {
		key, err := deriveKey(s)
		if err != nil {
			return nil, err
		}
		m.keys = append(m.keys, key)
	}
	return m, nil
}

func deriveKey(secret string) ([]byte, error) {
	key := make([]byte, sha256.Size)
	if _, err := io.ReadFull(hkdf.New(sha256.New, []byte(secret), nil, []byte(keyInfo)), key); err != nil {
		return nil, fmt.Errorf("cookie: derive signing key: %w", err)
	}
	return key, nil
}

// NewUnsigned creates a Manager that only encodes values.
func NewUnsigned(opts ...Option) *Manager {
	return &Manager{
		defaults: applyOptions(Options{
			Path:     "/",
			SameSite: http.SameSiteLaxMode,
		}, opts),
	}
}

// Signed reports whether values carry a signature.
func (m *Manager) Signed() bool { return len(m.keys) > 0 }

// Defaults returns the attributes applied to written cookies.
func (m *Manager) Defaults() Options { return m.defaults }

// Encode returns the cookie value for raw.
func (m *Manager) Encode(raw []byte) string {
	value := base64.RawURLEncoding.EncodeToString(raw)
	if !m.Signed() {
		return value
	}
	return value + sep + signature(m.keys[0], raw)
}

// Decode returns the bytes held by value. A signed Manager accepts a
// signature made with any of its secrets. An unsigned Manager hands back
// values that are not base64url as they are.
func (m *Manager) Decode(value string) ([]byte, error) {
	if !m.Signed() {
		raw, err := base64.RawURLEncoding.DecodeString(value)
		if err != nil {
			return []byte(value), nil
		}
		return raw, nil
	}

	encoded, sig, ok := strings.Cut(value, sep)
	if !ok {
		return nil, ErrInvalidFormat
	}
	raw, err := base64.RawURLEncoding.DecodeString(encoded)
	if err != nil {
		return nil, ErrInvalidFormat
	}
	for _, key := range m.keys {
		if subtle.ConstantTimeCompare([]byte(sig), []byte(signature(key, raw))) == 1 {
			return raw, nil
		}
	}
	return nil, ErrInvalidSignature
}

func signature(key, raw []byte) string {
	mac := hmac.New(sha256.New, key)
	mac.Write(raw)
	return base64.RawURLEncoding.EncodeToString(mac.Sum(nil))
}

// Set writes raw under name.
func (m *Manager) Set(w http.ResponseWriter, name string, raw []byte, opts ...Option) {
	o := applyOptions(m.defaults, opts)
	http.SetCookie(w, &http.Cookie{
		Name:     name,
		Value:    m.Encode(raw),
		Path:     o.Path,
		Domain:   o.Domain,
		MaxAge:   int(o.MaxAge.Seconds()),
		Secure:   o.Secure,
		HttpOnly: true,
		SameSite: o.SameSite,
	})
}

// Get reads and decodes the cookie name of r.
func (m *Manager) Get(r *http.Request, name string) ([]byte, error) {
	c, err := r.Cookie(name)
	if err != nil {
		if errors.Is(err, http.ErrNoCookie) {
			return nil, ErrCookieNotFound
		}
		return nil, err
	}
	if c.Value == "" {
		return nil, ErrCookieNotFound
	}
	return m.Decode(c.Value)
}

// Delete expires the cookie name.
func (m *Manager) Delete(w http.ResponseWriter, name string) {
	http.SetCookie(w, &http.Cookie{
		Name:     name,
		Value:    "",
		Path:     m.defaults.Path,
		Domain:   m.defaults.Domain,
		MaxAge:   -1,
		Expires:  time.Unix(0, 0),
		Secure:   m.defaults.Secure,
		HttpOnly: true,
		SameSite: m.defaults.SameSite,
	})
}
