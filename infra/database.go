package infra

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/amirasaad/finance/pkg/config"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	_ "modernc.org/sqlite" // registers the pure Go "sqlite" driver
)

// Supported database drivers.
const (
	DriverSQLite3  = "sqlite3"
	DriverSQLite   = "sqlite"
	DriverPostgres = "postgres"
)

var (
	// ErrMissingDatabaseURL is returned when no DSN is configured.
	ErrMissingDatabaseURL = errors.New("DATABASE_URL is not set")
	// ErrUnsupportedDriver is returned for drivers other than the supported ones.
	ErrUnsupportedDriver = errors.New("unsupported database driver")
)

// NewDBConnection opens the account store described by cnf.
func NewDBConnection(
	cnf *config.DB,
	appEnv string,
) (*gorm.DB, error) {
	if cnf == nil || cnf.Url == "" {
		return nil, ErrMissingDatabaseURL
	}
	dialector, err := Dialector(cnf)
	if err != nil {
		return nil, err
	}

	logMode := logger.Silent
	if appEnv == "development" {
		logMode = logger.Warn
	}

	connection, err := gorm.Open(dialector, &gorm.Config{
		Logger:                 logger.Default.LogMode(logMode),
		SkipDefaultTransaction: true,
		TranslateError:         true,
	})
	if err != nil {
		return nil, fmt.Errorf("open %s database: %w", cnf.Driver, err)
	}

	sqlDB, err := connection.DB()
	if err != nil {
		return nil, err
	}
	maxOpen := cnf.MaxOpenConns
	if maxOpen <= 0 {
		maxOpen = 1
	}
	sqlDB.SetMaxOpenConns(maxOpen)
	sqlDB.SetMaxIdleConns(maxOpen)
	sqlDB.SetConnMaxLifetime(1 * time.Hour)

	return connection, nil
}

// Dialector picks the gorm dialector for the configured driver. The sqlite
// driver runs the gorm sqlite dialector on top of modernc.org/sqlite so the
// binary can be built without cgo.
func Dialector(cnf *config.DB) (gorm.Dialector, error) {
	switch strings.ToLower(cnf.Driver) {
	case "", DriverSQLite3:
		return sqlite.Open(cnf.Url), nil
	case DriverSQLite:
		return &sqlite.Dialector{DriverName: DriverSQLite, DSN: cnf.Url}, nil
	case DriverPostgres:
		return postgres.Open(cnf.Url), nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedDriver, cnf.Driver)
	}
}
