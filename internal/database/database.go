package database

import (
	"fmt"
	"os"
	"path/filepath"

	"football-voting-backend/internal/database/models"

	sqlite "gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	_ "modernc.org/sqlite"
)

// Options tunes the database connection
type Options struct {
	LogLevel    logger.LogLevel
	AutoMigrate bool
}

// Initialize opens the sqlite database file and creates the schema from the
// GORM models. AutoMigrate only ever adds missing tables and columns (with
// their declared defaults), so re-running it against an older database file
// performs the additive schema evolution the store relies on. Any failure
// here is fatal to process start.
func Initialize(dbPath string, opts *Options) (*gorm.DB, error) {
	if opts == nil {
		opts = &Options{AutoMigrate: true}
	}
	if opts.LogLevel == 0 {
		opts.LogLevel = logger.Error
	}

	// The sqlite file lives inside a data directory that may not exist yet.
	if dir := filepath.Dir(dbPath); dir != "." && dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("create data directory: %w", err)
		}
	}

	// modernc.org/sqlite registers a pure-Go "sqlite" driver; the gorm
	// sqlite dialector is pointed at it via DriverName.
	db, err := gorm.Open(sqlite.New(sqlite.Config{
		DSN:        dbPath,
		DriverName: "sqlite",
	}), &gorm.Config{
		Logger: logger.Default.LogMode(opts.LogLevel),
	})
	if err != nil {
		return nil, fmt.Errorf("open sqlite: %w", err)
	}

	db.Exec("PRAGMA journal_mode=WAL;")
	db.Exec("PRAGMA synchronous=NORMAL;")

	if opts.AutoMigrate {
		all := []interface{}{
			&models.Team{},
			&models.Player{},
			&models.Match{},
			&models.Vote{},
			&models.MatchStats{},
		}
		if err := db.AutoMigrate(all...); err != nil {
			return nil, fmt.Errorf("auto-migrate: %w", err)
		}
	}

	return db, nil
}
