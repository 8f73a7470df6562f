// Package config loads configuration structs from environment variables.
//
// It wraps github.com/joho/godotenv, which reads optional .env files into the
// process environment, and github.com/caarlos0/env/v11, which parses the
// environment into a struct according to its env tags:
//
//	type Config struct {
//		Locale   string `env:"VALIDATOR_LOCALE" envDefault:"en"`
//		LogLevel string `env:"VALIDATOR_LOG_LEVEL" envDefault:"info"`
//	}
//
//	var cfg Config
//	if err := config.Load(&cfg); err != nil {
//		log.Fatal(err)
//	}
//
// Load caches each configuration type after its first parse. Parse skips the
// cache, and ResetCache clears it.
//
// Errors can be compared with errors.Is against ErrParsingConfig,
// ErrLoadingEnvFile and ErrNilPointer.
package config
