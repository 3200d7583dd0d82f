package i18n

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path"
	"path/filepath"
	"sort"
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
		return map[string]map[string]any{}, nil
	}
	return a.Data, nil
}

// FileAdapter loads a single file.
type FileAdapter struct {
	parser Parser
	path   string
}

// NewFileAdapter creates an adapter for the file at path. A nil parser is chosen from the file
// extension.
func NewFileAdapter(parser Parser, path string) *FileAdapter {
	if parser == nil {
		parser = ParserFor(path)
	}
	return &FileAdapter{parser: parser, path: path}
}

func (a *FileAdapter) Load(ctx context.Context) (map[string]map[string]any, error) {
	if err := ctx.Err(); err != nil {
		return nil, errors.Join(ErrLoadingCancelled, err)
	}
	if a.parser == nil {
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedFile, a.path)
	}
	content, err := os.ReadFile(a.path)
	if err != nil {
		return nil, errors.Join(ErrFailedToReadFile, err)
	}
	return a.parser.Parse(ctx, content)
}

// FSAdapter loads every supported file in one directory of a file system, merging them in
// name order. It serves embedded catalogues as well as directories on disk.
type FSAdapter struct {
	parser Parser
	fsys   fs.FS
	dir    string
}

// NewFSAdapter creates an adapter over dir in fsys. With a nil parser each file is parsed
// according to its extension; otherwise only files the parser supports are read.
func NewFSAdapter(parser Parser, fsys fs.FS, dir string) *FSAdapter {
	if dir == "" {
		dir = "."
	}
	return &FSAdapter{parser: parser, fsys: fsys, dir: dir}
}

// NewDirectoryAdapter creates an adapter over the YAML and JSON files in dir.
func NewDirectoryAdapter(dir string) *FSAdapter {
	return NewFSAdapter(nil, os.DirFS(filepath.Clean(dir)), ".")
}

func (a *FSAdapter) Load(ctx context.Context) (map[string]map[string]any, error) {
	entries, err := fs.ReadDir(a.fsys, a.dir)
	if err != nil {
		return nil, errors.Join(ErrFailedToReadDirectory, err)
	}
	sort.Slice(entries, func(i, j int) bool { return entries[i].Name() < entries[j].Name() })

	result := map[string]map[string]any{}
	loaded := 0
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		if err := ctx.Err(); err != nil {
			return nil, errors.Join(ErrLoadingCancelled, err)
		}

		parser := a.parser
		if parser == nil {
			parser = ParserFor(entry.Name())
		}
		if parser == nil || !parser.SupportsFileExtension(filepath.Ext(entry.Name())) {
			continue
		}

		name := path.Join(a.dir, entry.Name())
		content, err := fs.ReadFile(a.fsys, name)
		if err != nil {
			return nil, errors.Join(ErrFailedToReadFile, err)
		}
		translations, err := parser.Parse(ctx, content)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", name, err)
		}
		for lang, keys := range translations {
			result[lang] = mergeKeys(result[lang], keys)
		}
		loaded++
	}

	if loaded == 0 {
		return nil, fmt.Errorf("%w in %s", ErrNoTranslations, a.dir)
	}
	return result, nil
}

type chainAdapter []TranslationAdapter

// ChainAdapter merges the translations of several adapters. Later adapters override keys of
// earlier ones; nested groups are merged key by key.
func ChainAdapter(adapters ...TranslationAdapter) TranslationAdapter {
	return chainAdapter(adapters)
}

func (c chainAdapter) Load(ctx context.Context) (map[string]map[string]any, error) {
	result := map[string]map[string]any{}
	for _, a := range c {
		if a == nil {
			continue
		}
		translations, err := a.Load(ctx)
		if err != nil {
			return nil, err
		}
		for lang, keys := range translations {
			result[lang] = mergeKeys(result[lang], keys)
		}
	}
	return result, nil
}

// mergeKeys returns a fresh map holding dst overlaid with src. Neither input is modified.
func mergeKeys(dst, src map[string]any) map[string]any {
	out := make(map[string]any, len(dst)+len(src))
	for k, v := range dst {
		out[k] = v
	}
	for k, v := range src {
		srcGroup, srcIsGroup := v.(map[string]any)
		dstGroup, dstIsGroup := out[k].(map[string]any)
		if srcIsGroup && dstIsGroup {
			out[k] = mergeKeys(dstGroup, srcGroup)
			continue
		}
		out[k] = v
	}
	return out
}
