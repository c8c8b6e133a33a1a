package config

import (
	"errors"
	"fmt"
	"sync"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

var defaultEnvLoaded sync.Once

// Load parses environment variables into v.
//
// Without files, a ".env" in the working directory is applied once per
// process if it exists. Named files must exist.
func Load[T any](v *T, files ...string) error {
	if v == nil {
		return ErrNilPointer
	}
	if len(files) == 0 {
		defaultEnvLoaded.Do(func() {
			// The default .env file is optional.
			_ = godotenv.Load()
		})
	} else if err := godotenv.Load(files...); err != nil {
		return errors.Join(ErrEnvFile, err)
	}

	if err := env.Parse(v); err != nil {
		return errors.Join(ErrParsingConfig, err)
	}
	return nil
}

// MustLoad works like Load but panics on failure.
func MustLoad[T any](v *T, files ...string) {
	if err := Load(v, files...); err != nil {
		panic(fmt.Sprintf("failed to load required configuration: %v", err))
	}
}
