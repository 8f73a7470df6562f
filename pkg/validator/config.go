package validator

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/dmitrymomot/fieldcheck/pkg/config"
	"github.com/dmitrymomot/fieldcheck/pkg/i18n"
	"github.com/dmitrymomot/fieldcheck/pkg/logger"
)

// Config is the environment configuration of an Engine.
type Config struct {
	Locale                 string `env:"VALIDATOR_LOCALE" envDefault:"en"`
	DefaultLocale          string `env:"VALIDATOR_DEFAULT_LOCALE" envDefault:"en"`
	TranslationsDir        string `env:"VALIDATOR_TRANSLATIONS_DIR"`
	LogMissingTranslations bool   `env:"VALIDATOR_LOG_MISSING_TRANSLATIONS" envDefault:"false"`
	LogLevel               string `env:"VALIDATOR_LOG_LEVEL" envDefault:"info"`
	LogFormat              string `env:"VALIDATOR_LOG_FORMAT" envDefault:"json"`
}

// LoadConfig reads Config from the environment and an optional .env file.
// The result is cached for the lifetime of the process.
func LoadConfig() (Config, error) {
	var cfg Config
	if err := config.Load(&cfg); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// NewFromConfig builds an Engine from cfg, logging to stderr.
//
// With TranslationsDir set, messages are loaded from the YAML and JSON files
// of that directory instead of the built-in ones.
func NewFromConfig(ctx context.Context, cfg Config) (*Engine, error) {
	return newFromConfig(ctx, cfg, os.Stderr)
}

func newFromConfig(ctx context.Context, cfg Config, out io.Writer) (*Engine, error) {
	level, err := logger.ParseLevel(cfg.LogLevel)
	if err != nil {
		return nil, err
	}
	format, err := logger.ParseFormat(cfg.LogFormat)
	if err != nil {
		return nil, err
	}
	log := logger.New(
		logger.WithLevel(level),
		logger.WithFormat(format),
		logger.WithOutput(out),
		logger.WithAttr(logger.Component("validator")),
	)

	trOpts := []i18n.Option{
		i18n.WithDefaultLanguage(cfg.DefaultLocale),
		i18n.WithMissingTranslationsLogging(cfg.LogMissingTranslations),
		i18n.WithLogger(log),
	}

	var tr *i18n.Translator
	if cfg.TranslationsDir != "" {
		adapter := i18n.NewDirectoryAdapter(nil, cfg.TranslationsDir).WithLogger(log)
		tr, err = i18n.NewTranslator(ctx, adapter, trOpts...)
	} else {
		tr, err = DefaultTranslator(ctx, trOpts...)
	}
	if err != nil {
		return nil, fmt.Errorf("loading translations: %w", err)
	}

	return New(
		WithTranslator(tr),
		WithLocale(cfg.Locale),
		WithLogger(log),
	)
}
