package db

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/gosimple/slug"
	"gorm.io/driver/mysql"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// Options selects the database backend.
type Options struct {
	Driver string
	DSN    string
	// Debug logs every statement; otherwise only slow queries and errors.
	Debug bool
}

// DefaultCategories are created when the category table is empty.
var DefaultCategories = []string{"Weddings", "Portraits", "Events", "Family", "Commercial"}

// Open connects to the configured database, migrates the schema and seeds the
// default portfolio categories.
func Open(opts Options) (*gorm.DB, error) {
	dialector, err := dialectorFor(opts)
	if err != nil {
		return nil, err
	}

	level := logger.Warn
	if opts.Debug {
		level = logger.Info
	}

	gdb, err := gorm.Open(dialector, &gorm.Config{
		Logger: logger.Default.LogMode(level),
		NowFunc: func() time.Time {
			return time.Now().UTC()
		},
	})
	if err != nil {
		return nil, fmt.Errorf("open %s database: %w", opts.Driver, err)
	}

	if err := Migrate(gdb); err != nil {
		return nil, err
	}
	if err := SeedCategories(gdb); err != nil {
		return nil, err
	}
	return gdb, nil
}

// Migrate creates or updates every content table.
func Migrate(gdb *gorm.DB) error {
	if err := gdb.AutoMigrate(Models()...); err != nil {
		return fmt.Errorf("migrate schema: %w", err)
	}
	return nil
}

// SeedCategories inserts DefaultCategories when no category exists yet.
func SeedCategories(gdb *gorm.DB) error {
	var count int64
	if err := gdb.Model(&PortfolioCategory{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	categories := make([]PortfolioCategory, 0, len(DefaultCategories))
	for _, name := range DefaultCategories {
		categories = append(categories, PortfolioCategory{Name: name, Slug: slug.Make(name)})
	}
	return gdb.Create(&categories).Error
}

func dialectorFor(opts Options) (gorm.Dialector, error) {
	dsn := strings.TrimSpace(opts.DSN)
	switch strings.ToLower(strings.TrimSpace(opts.Driver)) {
	case "", "sqlite":
		if dsn == "" {
			dsn = "studio.db"
		}
		if err := ensureParentDir(dsn); err != nil {
			return nil, err
		}
		return sqlite.Open(dsn), nil
	case "postgres":
		return postgres.Open(dsn), nil
	case "mysql":
		return mysql.Open(dsn), nil
	default:
		return nil, fmt.Errorf("unsupported database driver %q", opts.Driver)
	}
}

func ensureParentDir(path string) error {
	if strings.HasPrefix(path, "file:") || strings.Contains(path, ":memory:") {
		return nil
	}

	dir := filepath.Dir(path)
	if dir == "." || dir == "" {
		return nil
	}

	info, err := os.Stat(dir)
	if err == nil {
		if !info.IsDir() {
			return errors.New("database path parent is not a directory")
		}
		return nil
	}

	if os.IsNotExist(err) {
		return os.MkdirAll(dir, 0o755)
	}

	return err
}
