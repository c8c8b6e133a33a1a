package food

import (
	"strings"

	"github.com/19990921ck-dev/food/pkg/cookie"
	"github.com/19990921ck-dev/food/pkg/httpserver"
	"github.com/19990921ck-dev/food/pkg/redis"
)

// Backend names where the login record is kept.
type Backend string

// Session backends.
const (
	BackendCookie Backend = "cookie"
	BackendFile   Backend = "file"
	BackendRedis  Backend = "redis"
	BackendMemory Backend = "memory"
)

// UnmarshalText accepts a backend name in any case, surrounded by blanks.
func (b *Backend) UnmarshalText(text []byte) error {
	*b = Backend(strings.ToLower(strings.TrimSpace(string(text))))
	return nil
}

// Config is the explicit configuration of the module, loaded from the
// environment by config.Load.
type Config struct {
	AppEnv  string `env:"APP_ENV" envDefault:"development"`
	AppName string `env:"APP_NAME" envDefault:"food"`

	// BasePath prefixes every page link. Empty keeps links relative.
	BasePath string `env:"BASE_PATH" envDefault:"/"`
	// APIEndpoint receives the POSTed backend actions.
	APIEndpoint string `env:"API_ENDPOINT,required"`
	// RecipeEndpoint serves the by-identifier recipe lookup; optional.
	RecipeEndpoint string `env:"RECIPE_ENDPOINT"`
	// SuccessMode is "both" or "status", see gateway.Mode.
	SuccessMode string `env:"SUCCESS_MODE" envDefault:"both"`

	SessionBackend Backend `env:"SESSION_BACKEND" envDefault:"cookie"`
	SessionCookie  string  `env:"SESSION_COOKIE" envDefault:"loggedInUser"`
	SessionFile    string  `env:"SESSION_FILE" envDefault:".food/session.json"`

	// CORSOrigins may call the /api routes from other origins.
	CORSOrigins []string `env:"CORS_ORIGINS" envSeparator:","`

	DefaultLanguage string `env:"DEFAULT_LANGUAGE" envDefault:"zh-TW"`
	LogFormat       string `env:"LOG_FORMAT"`

	HTTP   httpserver.Config
	Redis  redis.Config
	Cookie cookie.Config
}
