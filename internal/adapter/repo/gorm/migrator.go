package gormrepo

import (
	"context"
	"embed"
	"fmt"
	"io/fs"
	"path"
	"sort"
	"strings"
	"time"

	"gorm.io/gorm"
)

//go:embed migrations/*.sql
var embeddedMigrations embed.FS

// Migrations is the SQL schema shipped with the binary.
func Migrations() fs.FS {
	sub, err := fs.Sub(embeddedMigrations, "migrations")
	if err != nil {
		panic(err)
	}
	return sub
}

type migration struct {
	version string
	file    string
}

func listMigrations(fsys fs.FS) ([]migration, error) {
	entries, err := fs.ReadDir(fsys, ".")
	if err != nil {
		return nil, fmt.Errorf("read migrations: %w", err)
	}
	out := make([]migration, 0, len(entries))
	for _, e := range entries {
		if e.IsDir() || path.Ext(e.Name()) != ".sql" {
			continue
		}
		out = append(out, migration{version: strings.TrimSuffix(e.Name(), ".sql"), file: e.Name()})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].version < out[j].version })
	return out, nil
}

// ApplyMigrations runs every pending SQL file in version order, each in its
// own transaction, and records it in schema_migrations.
func ApplyMigrations(ctx context.Context, db *gorm.DB, fsys fs.FS) ([]string, error) {
	createMetaTableSQL := `
CREATE TABLE IF NOT EXISTS schema_migrations (
  version VARCHAR(128) PRIMARY KEY,
  applied_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
);`
	if err := db.WithContext(ctx).Exec(createMetaTableSQL).Error; err != nil {
		return nil, fmt.Errorf("create schema_migrations: %w", err)
	}

	all, err := listMigrations(fsys)
	if err != nil {
		return nil, err
	}
	applied := make([]string, 0)
	for _, m := range all {
		var count int64
		if err := db.WithContext(ctx).Table("schema_migrations").Where("version = ?", m.version).Count(&count).Error; err != nil {
			return applied, fmt.Errorf("check migration %s: %w", m.version, err)
		}
		if count > 0 {
			continue
		}
		content, err := fs.ReadFile(fsys, m.file)
		if err != nil {
			return applied, fmt.Errorf("read migration %s: %w", m.file, err)
		}
		err = db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
			if err := tx.Exec(string(content)).Error; err != nil {
				return fmt.Errorf("apply migration %s: %w", m.file, err)
			}
			if err := tx.Exec(`INSERT INTO schema_migrations(version, applied_at) VALUES (?, ?)`, m.version, time.Now()).Error; err != nil {
				return fmt.Errorf("record migration %s: %w", m.version, err)
			}
			return nil
		})
		if err != nil {
			return applied, err
		}
		applied = append(applied, m.version)
	}
	return applied, nil
}
