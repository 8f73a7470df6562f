package i18n

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"maps"
	"os"
	"path"
	"path/filepath"
)

// TranslationAdapter loads translations keyed by language code.
type TranslationAdapter interface {
	Load(ctx context.Context) (map[string]map[string]any, error)
}

// MapAdapter serves translations from memory.
type MapAdapter struct {
	Data map[string]map[string]any
}

func (a *MapAdapter) Load(_ context.Context) (map[string]map[string]any, error) {
	if a.Data == nil {
		return make(map[string]map[string]any), nil
	}
	return a.Data, nil
}

// FileAdapter loads a single translation file.
type FileAdapter struct {
	parser Parser
	path   string
}

// NewFileAdapter returns an adapter for the file at path. A nil parser is
// chosen from the file extension.
func NewFileAdapter(parser Parser, path string) *FileAdapter {
	if parser == nil {
		parser = NewParserForFile(path)
	}
	return &FileAdapter{parser: parser, path: path}
}

func (a *FileAdapter) Load(ctx context.Context) (map[string]map[string]any, error) {
	if a.parser == nil {
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedFormat, a.path)
	}
	if err := ctx.Err(); err != nil {
		return nil, errors.Join(ErrLoadingCancelled, err)
	}

	content, err := os.ReadFile(a.path)
	if err != nil {
		return nil, errors.Join(ErrFailedToReadFile, err)
	}
	return parseFile(ctx, a.parser, a.path, content)
}

// FSAdapter loads every supported file of one directory of a file system.
// Files of the same language are merged in directory order; unreadable or
// malformed files are skipped and logged.
type FSAdapter struct {
	parser Parser
	fsys   fs.FS
	dir    string
	logger *slog.Logger
}

// NewFSAdapter returns an adapter reading dir in fsys. With a nil parser
// each file is parsed according to its extension.
func NewFSAdapter(parser Parser, fsys fs.FS, dir string) *FSAdapter {
	return &FSAdapter{
		parser: parser,
		fsys:   fsys,
		dir:    dir,
		logger: slog.New(slog.DiscardHandler),
	}
}

// NewDirectoryAdapter reads translation files from a directory on disk.
func NewDirectoryAdapter(parser Parser, dir string) *FSAdapter {
	return NewFSAdapter(parser, os.DirFS(filepath.Clean(dir)), ".")
}

// WithLogger sets the logger used to report skipped files.
func (a *FSAdapter) WithLogger(logger *slog.Logger) *FSAdapter {
	if logger != nil {
		a.logger = logger
	}
	return a
}

func (a *FSAdapter) Load(ctx context.Context) (map[string]map[string]any, error) {
	if err := ctx.Err(); err != nil {
		return nil, errors.Join(ErrLoadingCancelled, err)
	}
	if a.fsys == nil {
		return nil, errors.Join(ErrFailedToReadDir, errors.New("file system is nil"))
	}

	entries, err := fs.ReadDir(a.fsys, a.dir)
	if err != nil {
		return nil, errors.Join(ErrFailedToReadDir, err)
	}

	all := make(map[string]map[string]any)
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}

		parser := a.parser
		if parser == nil {
			parser = NewParserForFile(entry.Name())
		}
		if parser == nil || !parser.SupportsFileExtension(fileExtension(entry.Name())) {
			continue
		}

		if err := ctx.Err(); err != nil {
			return nil, errors.Join(ErrLoadingCancelled, err)
		}

		name := path.Join(a.dir, entry.Name())
		translations, err := a.loadFile(ctx, parser, name)
		if err != nil {
			a.logger.WarnContext(ctx, "Skipping translation file", "file", name, "error", err)
			continue
		}

		for lang, t := range translations {
			if all[lang] == nil {
				all[lang] = make(map[string]any)
			}
			maps.Copy(all[lang], t)
		}
	}

	if len(all) == 0 {
		return nil, fmt.Errorf("%w: no valid translation files in %q", ErrNoTranslationsLoaded, a.dir)
	}
	return all, nil
}

func (a *FSAdapter) loadFile(ctx context.Context, parser Parser, name string) (map[string]map[string]any, error) {
	content, err := fs.ReadFile(a.fsys, name)
	if err != nil {
		return nil, errors.Join(ErrFailedToReadFile, err)
	}
	return parseFile(ctx, parser, name, content)
}

func parseFile(ctx context.Context, parser Parser, name string, content []byte) (map[string]map[string]any, error) {
	if len(content) == 0 {
		return nil, errors.Join(ErrFailedToParseFile, fmt.Errorf("translation file %q is empty", name))
	}

	translations, err := parser.Parse(ctx, content)
	if err != nil {
		return nil, errors.Join(ErrFailedToParseFile, err)
	}
	return translations, nil
}
