package cookie

import (
	"crypto/rand"
	"encoding/base64"
	"strings"
	"time"
)

// Config is read from the environment by config.Load.
type Config struct {
	// Secrets is a comma separated list; the first one signs.
	Secrets string `env:"COOKIE_SECRETS"`
	// Unsigned stores plain base64url values for external login flows.
	Unsigned bool          `env:"COOKIE_UNSIGNED" envDefault:"false"`
	Domain   string        `env:"COOKIE_DOMAIN"`
	MaxAge   time.Duration `env:"COOKIE_MAX_AGE" envDefault:"720h"`
}

// SecretList returns the configured secrets without blanks.
func (c Config) SecretList() []string {
	var out []string
	for _, s := range strings.Split(c.Secrets, ",") {
		if s = strings.TrimSpace(s); s != "" {
			out = append(out, s)
		}
	}
	return out
}

// NewFromConfig builds a Manager from cfg. Options given here are applied
// after the configured ones.
func NewFromConfig(cfg Config, opts ...Option) (*Manager, error) {
	all := make([]Option, 0, len(opts)+2)
	all = append(all, WithDomain(cfg.Domain), WithMaxAge(cfg.MaxAge))
	all = append(all, opts...)
	if cfg.Unsigned {
		return NewUnsigned(all...), nil
	}
	return New(cfg.SecretList(), all...)
}

// RandomSecret returns a fresh secret of the minimum length. Values signed
// with it do not survive a restart.
func RandomSecret() (string, error) {
	b := make([]byte, minSecretLength)
	if _, err := rand.Read(b); err != nil {
		return "", err
	}
	return base64.RawURLEncoding.EncodeToString(b), nil
}
