package validator

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/dmitrymomot/fieldcheck/pkg/i18n"
	"github.com/dmitrymomot/fieldcheck/pkg/logger"
)

// Engine evaluates the constraints of a Source and folds the per-field
// results into a boolean, a map, a joined message or a failure.
//
// Every operation evaluates all constraints of every field in scope, in
// declaration order, so messages always describe every violation.
// Configuration, usage and internal errors abort the call without a partial
// result. An Engine is immutable and safe for concurrent use.
type Engine struct {
	registry   *Registry
	translator Translator
	locale     string
	lang       string
	logger     *slog.Logger
}

// New builds an Engine. Without options it uses the default registry, the
// built-in messages and the default language.
func New(opts ...Option) (*Engine, error) {
	e := &Engine{
		registry: DefaultRegistry(),
		locale:   i18n.DefaultLanguage,
		logger:   logger.Discard(),
	}
	for _, opt := range opts {
		opt(e)
	}

	if e.translator == nil {
		tr, err := builtinTranslator()
		if err != nil {
			return nil, fmt.Errorf("loading built-in messages: %w", err)
		}
		e.translator = tr
	}
	e.lang = e.translator.Match(e.locale)

	return e, nil
}

// ForLocale returns a copy of the engine producing messages for locale.
func (e *Engine) ForLocale(locale string) *Engine {
	c := *e
	c.locale = locale
	c.lang = e.translator.Match(locale)
	return &c
}

// ForContext returns a copy of the engine whose logger carries the context
// attributes of ctx and which, if ctx carries a locale set by
// i18n.SetLocale, produces messages for it.
func (e *Engine) ForContext(ctx context.Context) *Engine {
	if ctx == nil {
		return e
	}
	c := *e
	c.logger = logger.Bind(ctx, e.logger)
	if locale, ok := i18n.LocaleFromContext(ctx); ok {
		c.locale = locale
		c.lang = e.translator.Match(locale)
	}
	return &c
}

// Language returns the language messages are produced in.
func (e *Engine) Language() string {
	return e.lang
}

// Check evaluates every field of src and returns the full report.
func (e *Engine) Check(src Source) (*Report, error) {
	fields, err := e.fields(src)
	if err != nil {
		return nil, err
	}

	report := &Report{Results: make([]FieldResult, 0, len(fields))}
	for _, f := range fields {
		res, err := e.evaluate(f)
		if err != nil {
			return nil, err
		}
		report.Results = append(report.Results, res)
	}
	return report, nil
}

// IsValid reports whether every constraint of every field of src holds.
func (e *Engine) IsValid(src Source) (bool, error) {
	report, err := e.Check(src)
	if err != nil {
		return false, err
	}
	return report.Valid(), nil
}

// Validate returns a *ValidationError carrying the joined message of all
// failing fields, or nil if src is valid.
func (e *Engine) Validate(src Source) error {
	return e.ValidateAs(src, NewValidationError)
}

// ValidateAs is like Validate but builds the failure with fail.
func (e *Engine) ValidateAs(src Source, fail FailureFunc) error {
	report, err := e.Check(src)
	if err != nil {
		return err
	}
	if message, failed := report.Message(); failed {
		return raise(fail, message)
	}
	return nil
}

// ValidateField validates only the named field of src.
func (e *Engine) ValidateField(src Source, name string) error {
	return e.ValidateFieldAs(src, name, NewValidationError)
}

// ValidateFieldAs is like ValidateField but builds the failure with fail.
func (e *Engine) ValidateFieldAs(src Source, name string, fail FailureFunc) error {
	res, err := e.checkField(src, name)
	if err != nil {
		return err
	}
	if !res.Valid {
		return raise(fail, res.Message)
	}
	return nil
}

// IsFieldValid reports whether every constraint of the named field holds.
func (e *Engine) IsFieldValid(src Source, name string) (bool, error) {
	res, err := e.checkField(src, name)
	if err != nil {
		return false, err
	}
	return res.Valid, nil
}

// CollectErrors maps each failing field of src to its joined message.
func (e *Engine) CollectErrors(src Source) (map[string]string, error) {
	report, err := e.Check(src)
	if err != nil {
		return nil, err
	}
	return report.Errors(), nil
}

// CollectErrorMessage joins the messages of all failing fields of src.
// failed is false when src is valid.
func (e *Engine) CollectErrorMessage(src Source) (message string, failed bool, err error) {
	report, err := e.Check(src)
	if err != nil {
		return "", false, err
	}
	message, failed = report.Message()
	return message, failed, nil
}

func (e *Engine) fields(src Source) ([]Field, error) {
	if src == nil {
		return nil, e.abort("", errors.Join(ErrInternal, errors.New("nil source")))
	}
	fields, err := src.Fields()
	if err != nil {
		if !errors.Is(err, ErrInternal) {
			err = errors.Join(ErrInternal, err)
		}
		return nil, e.abort("", err)
	}
	return fields, nil
}

func (e *Engine) checkField(src Source, name string) (FieldResult, error) {
	fields, err := e.fields(src)
	if err != nil {
		return FieldResult{}, err
	}
	for _, f := range fields {
		if f.Name == name {
			return e.evaluate(f)
		}
	}
	return FieldResult{}, e.abort(name, fmt.Errorf("%w: %q", ErrUnknownField, name))
}

// evaluate runs the constraints of f in declaration order. Each failing
// constraint with text adds a "Field '<name>' <text>" clause.
func (e *Engine) evaluate(f Field) (FieldResult, error) {
	res := FieldResult{Field: f.Name, Valid: true}
	if len(f.Constraints) == 0 {
		return res, nil
	}

	value, err := f.read()
	if err != nil {
		return res, e.abort(f.Name, err)
	}

	msg := localize(e.translator, e.lang)
	var sb strings.Builder

	for _, c := range f.Constraints {
		if err := c.check(); err != nil {
			return res, e.abort(f.Name, fmt.Errorf("field %q: %w", f.Name, err))
		}
		v, err := e.registry.Resolve(c.Kind)
		if err != nil {
			return res, e.abort(f.Name, fmt.Errorf("field %q: %w", f.Name, err))
		}

		ok, err := v.IsCorrect(value, c)
		if err != nil {
			return res, e.abort(f.Name, fmt.Errorf("field %q: %w", f.Name, err))
		}
		if ok {
			continue
		}
		res.Valid = false

		text, failed, err := v.DescribeError(msg, value, c)
		if err != nil {
			return res, e.abort(f.Name, fmt.Errorf("field %q: %w", f.Name, err))
		}
		e.logger.LogAttrs(context.Background(), slog.LevelDebug, "Constraint failed",
			logger.Field(f.Name),
			logger.Constraint(c),
			slog.Bool("described", failed && text != ""),
		)
		if failed && text != "" {
			appendClause(&sb, fmt.Sprintf("Field '%s' %s", f.Name, text))
		}
	}

	res.Message = sb.String()
	e.logger.LogAttrs(context.Background(), slog.LevelDebug, "Field validated",
		logger.Field(f.Name),
		slog.Bool("valid", res.Valid),
		logger.Locale(e.lang),
	)
	return res, nil
}

func (e *Engine) abort(field string, err error) error {
	attrs := []slog.Attr{logger.Error(err)}
	if field != "" {
		attrs = append(attrs, logger.Field(field))
	}
	e.logger.LogAttrs(context.Background(), slog.LevelWarn, "Validation aborted", attrs...)
	return err
}
