package config

import (
	"errors"
	"fmt"
	"reflect"
	"sync"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// entry holds the outcome of the first parse of one configuration type.
type entry struct {
	once  sync.Once
	value any
	err   error
}

var (
	cacheMu sync.Mutex
	cache   = make(map[reflect.Type]*entry)

	defaultEnvLoaded sync.Once
)

// LoadEnv loads the given .env files into the process environment.
// Variables that are already set are not overridden. With no arguments the
// .env file of the working directory is loaded if it exists.
func LoadEnv(files ...string) error {
	if len(files) == 0 {
		loadDefaultEnv()
		return nil
	}
	if err := godotenv.Load(files...); err != nil {
		return errors.Join(ErrLoadingEnvFile, err)
	}
	return nil
}

func loadDefaultEnv() {
	defaultEnvLoaded.Do(func() {
		// a missing .env file is fine
		_ = godotenv.Load()
	})
}

// Parse fills v from the environment using its env struct tags, without
// caching. Use it when the environment changes at run time, e.g. in tests.
func Parse[T any](v *T) error {
	if v == nil {
		return ErrNilPointer
	}
	loadDefaultEnv()
	if err := env.Parse(v); err != nil {
		return errors.Join(ErrParsingConfig, err)
	}
	return nil
}

// Load fills v from the environment. Each configuration type is parsed once
// per process; later calls for the same type copy the cached value, or
// return the cached error.
//
// Example:
//
//	type Config struct {
//		Locale string `env:"VALIDATOR_LOCALE" envDefault:"en"`
//	}
//
//	var cfg Config
//	if err := config.Load(&cfg); err != nil {
//		return err
//	}
func Load[T any](v *T) error {
	if v == nil {
		return ErrNilPointer
	}

	cacheMu.Lock()
	key := reflect.TypeFor[T]()
	e, ok := cache[key]
	if !ok {
		e = &entry{}
		cache[key] = e
	}
	cacheMu.Unlock()

	e.once.Do(func() {
		var cfg T
		if err := Parse(&cfg); err != nil {
			e.err = err
			return
		}
		e.value = cfg
	})

	if e.err != nil {
		return e.err
	}
	*v = e.value.(T)
	return nil
}

// MustLoad works like Load but panics if configuration loading fails.
func MustLoad[T any](v *T) {
	if err := Load(v); err != nil {
		panic(fmt.Sprintf("failed to load required configuration: %v", err))
	}
}

// ResetCache forgets every cached configuration so the next Load parses the
// environment again.
func ResetCache() {
	cacheMu.Lock()
	defer cacheMu.Unlock()
	clear(cache)
}
