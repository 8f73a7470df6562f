package logger_test

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/fieldcheck/pkg/logger"
)

func decode(t *testing.T, buf *bytes.Buffer) map[string]any {
	t.Helper()
	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	return entry
}

func TestNew(t *testing.T) {
	t.Run("creates JSON logger", func(t *testing.T) {
		buf := &bytes.Buffer{}
		log := logger.New(logger.WithOutput(buf))
		require.NotNil(t, log)

		log.Info("hello")
		entry := decode(t, buf)
		assert.Equal(t, "INFO", entry["level"])
		assert.Equal(t, "hello", entry["msg"])
	})

	t.Run("text formatter option", func(t *testing.T) {
		buf := &bytes.Buffer{}
		log := logger.New(logger.WithOutput(buf), logger.WithTextFormatter())

		log.Info("hello")
		assert.Contains(t, buf.String(), "level=INFO")
		assert.Contains(t, buf.String(), "msg=hello")
	})

	t.Run("last formatter wins", func(t *testing.T) {
		buf := &bytes.Buffer{}
		log := logger.New(
			logger.WithOutput(buf),
			logger.WithTextFormatter(),
			logger.WithJSONFormatter(),
		)
		log.Info("hello")
		assert.Equal(t, "hello", decode(t, buf)["msg"])
	})

	t.Run("level filters records", func(t *testing.T) {
		buf := &bytes.Buffer{}
		log := logger.New(logger.WithOutput(buf), logger.WithLevel(slog.LevelWarn))

		log.Info("dropped")
		assert.Empty(t, buf.String())

		log.Warn("kept")
		assert.Equal(t, "kept", decode(t, buf)["msg"])
	})

	t.Run("static attributes", func(t *testing.T) {
		buf := &bytes.Buffer{}
		log := logger.New(logger.WithOutput(buf), logger.WithAttr(logger.Component("validator")))

		log.Info("hello")
		assert.Equal(t, "validator", decode(t, buf)["component"])
	})

	t.Run("context value", func(t *testing.T) {
		type requestKey struct{}
		buf := &bytes.Buffer{}
		log := logger.New(logger.WithOutput(buf), logger.WithContextValue("request_id", requestKey{}))

		ctx := context.WithValue(context.Background(), requestKey{}, "r-1")
		log.InfoContext(ctx, "hello")
		assert.Equal(t, "r-1", decode(t, buf)["request_id"])
	})

	t.Run("context extractor skipped when empty", func(t *testing.T) {
		buf := &bytes.Buffer{}
		log := logger.New(
			logger.WithOutput(buf),
			logger.WithContextExtractors(nil, func(context.Context) (slog.Attr, bool) {
				return slog.Attr{}, false
			}),
		)
		log.InfoContext(context.Background(), "hello")
		entry := decode(t, buf)
		assert.Len(t, entry, 3, "only time, level and msg expected")
	})

	t.Run("invalid format panics", func(t *testing.T) {
		assert.Panics(t, func() {
			logger.New(logger.WithFormat("xml"))
		})
	})
}

func TestWithEnvironment(t *testing.T) {
	t.Run("development", func(t *testing.T) {
		buf := &bytes.Buffer{}
		log := logger.New(logger.WithEnvironment("development", "validator"), logger.WithOutput(buf))

		log.Debug("visible")
		out := buf.String()
		assert.Contains(t, out, "msg=visible")
		assert.Contains(t, out, "component=validator")
		assert.Contains(t, out, "env=development")
	})

	t.Run("production", func(t *testing.T) {
		buf := &bytes.Buffer{}
		log := logger.New(logger.WithEnvironment("prod", ""), logger.WithOutput(buf))

		log.Debug("hidden")
		assert.Empty(t, buf.String())

		log.Info("shown")
		entry := decode(t, buf)
		assert.Equal(t, "prod", entry["env"])
		assert.NotContains(t, entry, "component")
	})
}

func TestParseFormat(t *testing.T) {
	f, err := logger.ParseFormat(" TEXT ")
	require.NoError(t, err)
	assert.Equal(t, logger.FormatText, f)

	_, err = logger.ParseFormat("yaml")
	assert.Error(t, err)
}

func TestParseLevel(t *testing.T) {
	l, err := logger.ParseLevel("debug")
	require.NoError(t, err)
	assert.Equal(t, slog.LevelDebug, l)

	l, err = logger.ParseLevel("WARN")
	require.NoError(t, err)
	assert.Equal(t, slog.LevelWarn, l)

	_, err = logger.ParseLevel("loud")
	assert.Error(t, err)
}

func TestDiscard(t *testing.T) {
	log := logger.Discard()
	require.NotNil(t, log)
	assert.False(t, log.Enabled(context.Background(), slog.LevelError))
}

func TestBind(t *testing.T) {
	type requestKey struct{}
	ctx := context.WithValue(context.Background(), requestKey{}, "r-7")

	t.Run("resolves context attributes once", func(t *testing.T) {
		buf := &bytes.Buffer{}
		log := logger.New(logger.WithOutput(buf), logger.WithContextValue("request_id", requestKey{}))

		bound := logger.Bind(ctx, log)
		bound.Info("without context")
		assert.Equal(t, "r-7", decode(t, buf)["request_id"])

		buf.Reset()
		bound.InfoContext(ctx, "with context")
		assert.Equal(t, 1, strings.Count(buf.String(), "request_id"))
	})

	t.Run("keeps extractors through With", func(t *testing.T) {
		buf := &bytes.Buffer{}
		log := logger.New(logger.WithOutput(buf), logger.WithContextValue("request_id", requestKey{}))

		log.With(logger.Component("validator")).InfoContext(ctx, "hello")
		entry := decode(t, buf)
		assert.Equal(t, "r-7", entry["request_id"])
		assert.Equal(t, "validator", entry["component"])
	})

	t.Run("unchanged without matches", func(t *testing.T) {
		log := logger.New(logger.WithOutput(&bytes.Buffer{}), logger.WithContextValue("request_id", requestKey{}))
		assert.Same(t, log, logger.Bind(context.Background(), log))

		plain := logger.New(logger.WithOutput(&bytes.Buffer{}))
		assert.Same(t, plain, logger.Bind(ctx, plain))
		assert.Nil(t, logger.Bind(ctx, nil))
	})
}
