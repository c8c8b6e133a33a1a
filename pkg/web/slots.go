package web

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/redis/go-redis/v9"

	food "github.com/19990921ck-dev/food"
	"github.com/19990921ck-dev/food/pkg/cookie"
	"github.com/19990921ck-dev/food/pkg/session"
)

// SlotFactory returns the session slot for one request.
type SlotFactory func(w http.ResponseWriter, r *http.Request) session.Slot

// CookieSlots keeps the login record in the cookie name of each request.
func CookieSlots(cookies *cookie.Manager, name string) SlotFactory {
	return func(w http.ResponseWriter, r *http.Request) session.Slot {
		return session.NewCookieSlot(w, r, cookies, name)
	}
}

// SharedSlot serves every request from the same slot. Only suited to single
// user deployments such as a kiosk or local development.
func SharedSlot(slot session.Slot) SlotFactory {
	return func(http.ResponseWriter, *http.Request) session.Slot { return slot }
}

// SlotsFor builds the slot factory of the configured session backend. rdb
// is only needed by the redis backend. A signed cookie backend without
// COOKIE_SECRETS signs with a per-process secret.
func SlotsFor(cfg food.Config, rdb redis.Cmdable) (SlotFactory, error) {
	switch cfg.SessionBackend {
	case "", food.BackendCookie:
		cookies, err := cookieManager(cfg)
		if err != nil {
			return nil, err
		}
		return CookieSlots(cookies, cfg.SessionCookie), nil
	case food.BackendFile:
		return SharedSlot(session.NewFileSlot(cfg.SessionFile)), nil
	case food.BackendRedis:
		if rdb == nil {
			return nil, fmt.Errorf("%w: redis backend without a client", ErrUnknownBackend)
		}
		return SharedSlot(session.NewRedisSlot(rdb, cfg.Redis.SessionKey, cfg.Redis.SessionTTL)), nil
	case food.BackendMemory:
		return SharedSlot(session.NewMemorySlot()), nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownBackend, cfg.SessionBackend)
	}
}

// EphemeralCookieSecret reports whether SlotsFor signs cookies with a
// per-process secret, so logins end with the process.
func EphemeralCookieSecret(cfg food.Config) bool {
	return !cfg.Cookie.Unsigned && len(cfg.Cookie.SecretList()) == 0
}

func cookieManager(cfg food.Config) (*cookie.Manager, error) {
	cookiePath := strings.TrimSuffix(strings.TrimSpace(cfg.BasePath), "/")
	if cookiePath == "" {
		cookiePath = "/"
	} else if !strings.HasPrefix(cookiePath, "/") {
		cookiePath = "/" + cookiePath
	}
	opts := []cookie.Option{
		cookie.WithPath(cookiePath),
		cookie.WithSecure(cfg.AppEnv == "production"),
	}

	if EphemeralCookieSecret(cfg) {
		secret, err := cookie.RandomSecret()
		if err != nil {
			return nil, err
		}
		cfg.Cookie.Secrets = secret
	}
	return cookie.NewFromConfig(cfg.Cookie, opts...)
}
