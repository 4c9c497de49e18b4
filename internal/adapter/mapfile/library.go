// Package mapfile reads map encodings from a directory of .map files.
package mapfile

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"go.uber.org/zap"

	"gridcourier/internal/app/maps"
)

const Ext = ".map"

var ErrInvalidMapPath = errors.New("invalid map filepath")

type Library struct {
	Root string
}

// Names lists the map names under Root, without the extension, sorted.
func (l Library) Names(_ context.Context) ([]string, error) {
	entries, err := os.ReadDir(l.Root)
	if err != nil {
		return nil, fmt.Errorf("read map dir: %w", err)
	}
	out := make([]string, 0, len(entries))
	for _, e := range entries {
		if e.IsDir() || filepath.Ext(e.Name()) != Ext {
			continue
		}
		out = append(out, strings.TrimSuffix(e.Name(), Ext))
	}
	sort.Strings(out)
	return out, nil
}

// Read returns the raw encoding of name, which may omit the extension.
func (l Library) Read(_ context.Context, name string) (string, error) {
	if filepath.Ext(name) != Ext {
		name += Ext
	}
	safePath, err := secureJoin(l.Root, name)
	if err != nil {
		return "", err
	}
	b, err := os.ReadFile(safePath)
	if err != nil {
		return "", err
	}
	return string(b), nil
}

type MapSaver interface {
	Save(ctx context.Context, req maps.SaveRequest) (maps.SaveResponse, error)
}

// Import stores every map in the library. Maps that fail validation are
// logged and skipped; the names that were stored are returned.
func (l Library) Import(ctx context.Context, saver MapSaver, logger *zap.Logger) ([]string, error) {
	if logger == nil {
		logger = zap.NewNop()
	}
	names, err := l.Names(ctx)
	if err != nil {
		return nil, err
	}
	imported := make([]string, 0, len(names))
	for _, name := range names {
		encoding, err := l.Read(ctx, name)
		if err != nil {
			return imported, err
		}
		if _, err := saver.Save(ctx, maps.SaveRequest{Name: name, Encoding: encoding}); err != nil {
			if errors.Is(err, maps.ErrInvalidMap) || errors.Is(err, maps.ErrInvalidRequest) {
				logger.Warn("map skipped", zap.String("name", name), zap.Error(err))
				continue
			}
			return imported, err
		}
		imported = append(imported, name)
	}
	return imported, nil
}

func secureJoin(root, rel string) (string, error) {
	rel = strings.TrimSpace(rel)
	if rel == "" || rel == Ext {
		return "", ErrInvalidMapPath
	}
	if filepath.IsAbs(rel) {
		return "", ErrInvalidMapPath
	}
	rootAbs, err := filepath.Abs(root)
	if err != nil {
		return "", err
	}
	target := filepath.Clean(filepath.Join(rootAbs, rel))
	prefix := rootAbs + string(filepath.Separator)
	if !strings.HasPrefix(target, prefix) {
		return "", ErrInvalidMapPath
	}
	return target, nil
}
