package gormrepo

import (
	"context"
	"fmt"
	"os"

	"gorm.io/driver/mysql"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"gridcourier/internal/adapter/repo/gorm/model"
)

const (
	DriverPostgres = "postgres"
	DriverMySQL    = "mysql"
)

func OpenPostgres(dsn string) (*gorm.DB, error) {
	db, err := gorm.Open(postgres.Open(dsn), gormConfig())
	if err != nil {
		return nil, fmt.Errorf("open postgres: %w", err)
	}
	return db, nil
}

func OpenMySQL(dsn string) (*gorm.DB, error) {
	db, err := gorm.Open(mysql.Open(dsn), gormConfig())
	if err != nil {
		return nil, fmt.Errorf("open mysql: %w", err)
	}
	return db, nil
}

func Open(driver, dsn string) (*gorm.DB, error) {
	switch driver {
	case DriverPostgres:
		return OpenPostgres(dsn)
	case DriverMySQL:
		return OpenMySQL(dsn)
	default:
		return nil, fmt.Errorf("unsupported database driver %q", driver)
	}
}

// Migrate applies the SQL migrations on postgres and falls back to
// AutoMigrate for mysql, whose dialect the SQL files do not target. An empty
// dir selects the embedded migrations.
func Migrate(ctx context.Context, db *gorm.DB, driver, dir string) ([]string, error) {
	if driver == DriverMySQL {
		if err := db.WithContext(ctx).AutoMigrate(&model.GridMap{}, &model.Run{}, &model.RunEvent{}); err != nil {
			return nil, fmt.Errorf("auto migrate: %w", err)
		}
		return nil, nil
	}
	fsys := Migrations()
	if dir != "" {
		fsys = os.DirFS(dir)
	}
	return ApplyMigrations(ctx, db, fsys)
}

func gormConfig() *gorm.Config {
	return &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Warn),
		TranslateError: true,
	}
}
