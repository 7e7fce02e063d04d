package storage

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/rs/zerolog/log"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/MelEUsher/Recipe-Manager/internal/model"
)

// Local stores everything in a single SQLite file. Intended for development
// and single-process deployments; a lone connection serializes writers so no
// pool is needed.
type Local struct {
	path string
	db   *gorm.DB
}

// NewLocal opens (or creates) the SQLite file at path, creating parent
// directories as needed.
func NewLocal(path string) (*Local, error) {
	if path == "" {
		path = "./data/recipe_manager.db"
	}
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, fmt.Errorf("resolve sqlite path: %w", err)
	}
	if err := os.MkdirAll(filepath.Dir(abs), 0o755); err != nil {
		return nil, fmt.Errorf("create sqlite directory: %w", err)
	}

	// _foreign_keys=on so the schema's ON DELETE rules are enforced.
	dsn := fmt.Sprintf("%s?_foreign_keys=on", abs)
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Silent),
		TranslateError: true,
	})
	if err != nil {
		return nil, fmt.Errorf("open sqlite database: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, err
	}
	// One connection: SQLite allows a single writer, and this also makes the
	// handle safe for concurrent handlers without busy errors.
	sqlDB.SetMaxOpenConns(1)

	log.Info().Str("path", abs).Msg("local storage ready")
	return &Local{path: abs, db: db}, nil
}

func (l *Local) DB() *gorm.DB { return l.db }

func (l *Local) Initialize() error {
	return l.db.AutoMigrate(
		&model.Category{},
		&model.Recipe{},
		&model.Ingredient{},
	)
}

func (l *Local) HealthCheck(ctx context.Context) bool {
	sqlDB, err := l.db.DB()
	if err != nil {
		log.Error().Err(err).Msg("sqlite health check failed")
		return false
	}
	if err := sqlDB.PingContext(ctx); err != nil {
		log.Error().Err(err).Msg("sqlite health check failed")
		return false
	}
	return true
}

func (l *Local) Close() error {
	sqlDB, err := l.db.DB()
	if err != nil {
		return nil
	}
	return sqlDB.Close()
}
