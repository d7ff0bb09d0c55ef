package storage

import (
	"fmt"
	"io"
	"log"
	"log/slog"
	"os"
	"strings"
	"time"

	"dronedelivery/internal/adapters/out/storage/missionrepo"
	"dronedelivery/internal/adapters/out/storage/orderrepo"
	"dronedelivery/internal/adapters/out/storage/productrepo"
	"dronedelivery/internal/adapters/out/storage/userrepo"

	"github.com/lib/pq"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

const (
	DriverPostgres = "postgres"
	DriverSQLite   = "sqlite"
)

// Options selects and configures the database. URL, when set, takes
// precedence over the discrete PostgreSQL fields and may be a
// postgres:// URL or a key=value DSN.
type Options struct {
	Driver   string
	URL      string
	Host     string
	Port     string
	User     string
	Password string
	Name     string
	SSLMode  string
	Path     string
	LogLevel slog.Level
}

// PostgresDSN renders the key=value connection string for Options.
func PostgresDSN(opts Options) (string, error) {
	if opts.URL != "" {
		if strings.HasPrefix(opts.URL, "postgres://") || strings.HasPrefix(opts.URL, "postgresql://") {
			dsn, err := pq.ParseURL(opts.URL)
			if err != nil {
				return "", fmt.Errorf("parse database url: %w", err)
			}
			return dsn, nil
		}
		return opts.URL, nil
	}

	sslMode := opts.SSLMode
	if sslMode == "" {
		sslMode = "disable"
	}
	return fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		opts.Host, opts.Port, opts.User, opts.Password, opts.Name, sslMode), nil
}

// SQLiteDSN renders a mattn/go-sqlite3 DSN with foreign keys enforced. An
// empty path opens a private in-memory database.
func SQLiteDSN(path string) string {
	if path == "" || path == ":memory:" {
		return "file::memory:?_foreign_keys=on"
	}
	sep := "?"
	if strings.Contains(path, "?") {
		sep = "&"
	}
	return path + sep + "_foreign_keys=on&_busy_timeout=5000"
}

// Open connects with TranslateError enabled, so unique and foreign key
// violations surface as gorm.ErrDuplicatedKey and gorm.ErrForeignKeyViolated.
func Open(opts Options) (*gorm.DB, error) {
	cfg := &gorm.Config{
		TranslateError: true,
		Logger:         NewGormLogger(os.Stdout, opts.LogLevel),
		NowFunc:        func() time.Time { return time.Now().UTC() },
	}

	switch opts.Driver {
	case DriverPostgres, "":
		dsn, err := PostgresDSN(opts)
		if err != nil {
			return nil, err
		}
		return gorm.Open(postgres.Open(dsn), cfg)
	case DriverSQLite:
		db, err := gorm.Open(sqlite.Open(SQLiteDSN(opts.Path)), cfg)
		if err != nil {
			return nil, err
		}
		// SQLite serializes writers; one connection also keeps an in-memory database alive.
		sqlDB, err := db.DB()
		if err != nil {
			return nil, err
		}
		sqlDB.SetMaxOpenConns(1)
		return db, nil
	default:
		return nil, fmt.Errorf("unsupported database driver %q", opts.Driver)
	}
}

// Migrate creates or updates the schema. Tables are listed parents first.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&userrepo.UserDTO{},
		&productrepo.ProductDTO{},
		&orderrepo.OrderDTO{},
		&orderrepo.ItemDTO{},
		&missionrepo.MissionDTO{},
	)
}

// NewGormLogger writes SQL diagnostics to w at the gorm level matching level.
// Lookups that find no row are not reported; the repositories map them to
// ObjectNotFoundError.
func NewGormLogger(w io.Writer, level slog.Level) logger.Interface {
	return logger.New(log.New(w, "\r\n", log.LstdFlags), logger.Config{
		SlowThreshold:             200 * time.Millisecond,
		LogLevel:                  gormLogLevel(level),
		IgnoreRecordNotFoundError: true,
		Colorful:                  false,
	})
}

func gormLogLevel(level slog.Level) logger.LogLevel {
	switch {
	case level <= slog.LevelDebug:
		return logger.Info
	case level <= slog.LevelWarn:
		return logger.Warn
	default:
		return logger.Error
	}
}
