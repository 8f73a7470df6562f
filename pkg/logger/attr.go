package logger

import (
	"fmt"
	"log/slog"
	"strconv"
)

// Group creates a slog group attribute from the provided attributes.
func Group(name string, attrs ...slog.Attr) slog.Attr {
	return slog.Attr{Key: name, Value: slog.GroupValue(attrs...)}
}

// Errors groups the non-nil errors under "errors", or returns an empty Attr.
func Errors(errs ...error) slog.Attr {
	as := make([]slog.Attr, 0, len(errs))
	for i, err := range errs {
		if err != nil {
			as = append(as, slog.Any(strconv.Itoa(i), err))
		}
	}
	if len(as) == 0 {
		return slog.Attr{}
	}
	return slog.Attr{Key: "errors", Value: slog.GroupValue(as...)}
}

// Error records err under "error", or returns an empty Attr for nil.
func Error(err error) slog.Attr {
	if err == nil {
		return slog.Attr{}
	}
	return slog.Any("error", err)
}

// Component records the component name under "component".
func Component(name string) slog.Attr {
	return slog.String("component", name)
}

// Field records a validated field name under "field".
func Field(name string) slog.Attr {
	return slog.String("field", name)
}

// Constraint records a constraint under "constraint".
// Values implementing fmt.Stringer are logged by their String form.
func Constraint(c any) slog.Attr {
	if s, ok := c.(fmt.Stringer); ok {
		return slog.String("constraint", s.String())
	}
	return slog.Any("constraint", c)
}

// Locale records the language used for messages under "locale".
func Locale(lang string) slog.Attr {
	return slog.String("locale", lang)
}
