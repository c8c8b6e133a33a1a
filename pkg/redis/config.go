package redis

import "time"

type Config struct {
	ConnectionURL  string        `env:"REDIS_URL" envDefault:"redis://localhost:6379/0"`
	RetryAttempts  int           `env:"REDIS_RETRY_ATTEMPTS" envDefault:"3"`
	RetryInterval  time.Duration `env:"REDIS_RETRY_INTERVAL" envDefault:"2s"`
	ConnectTimeout time.Duration `env:"REDIS_CONNECT_TIMEOUT" envDefault:"15s"`
	// SessionKey is the key holding the login record.
	SessionKey string        `env:"REDIS_SESSION_KEY" envDefault:"food:loggedInUser"`
	SessionTTL time.Duration `env:"REDIS_SESSION_TTL" envDefault:"0s"`
}
