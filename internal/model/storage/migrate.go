package storage

import (
	"database/sql"
	"embed"

	"github.com/golang-migrate/migrate/v4"
	"github.com/golang-migrate/migrate/v4/database"
	"github.com/golang-migrate/migrate/v4/database/postgres"
	"github.com/golang-migrate/migrate/v4/database/sqlite"
	"github.com/golang-migrate/migrate/v4/source/iofs"
	"github.com/pkg/errors"
	"go.uber.org/zap"

	"max.ks1230/finance-tracker/internal/logger"
)

//go:embed migrations/postgres/*.sql migrations/sqlite/*.sql
var migrationsFS embed.FS

// RunMigrations applies the embedded schema for driver ("postgres" or "sqlite").
// It opens its own connection so the caller's pool is left untouched.
func RunMigrations(driver, dsn string) error {
	migrateDB, err := sql.Open(driver, dsn)
	if err != nil {
		return errors.Wrap(err, "open migration database")
	}
	defer func() {
		if err := migrateDB.Close(); err != nil {
			logger.Error("error closing migration database", zap.Error(err))
		}
	}()

	var dbDriver database.Driver
	switch driver {
	case "postgres":
		dbDriver, err = postgres.WithInstance(migrateDB, &postgres.Config{})
	case "sqlite":
		dbDriver, err = sqlite.WithInstance(migrateDB, &sqlite.Config{})
	default:
		return errors.Errorf("migrations: unsupported driver %s", driver)
	}
	if err != nil {
		return errors.Wrapf(err, "create %s migration driver", driver)
	}

	src, err := iofs.New(migrationsFS, "migrations/"+driver)
	if err != nil {
		return errors.Wrap(err, "create iofs source")
	}

	m, err := migrate.NewWithInstance("iofs", src, driver, dbDriver)
	if err != nil {
		return errors.Wrap(err, "create migrate instance")
	}
	defer m.Close()

	if err = m.Up(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return errors.Wrap(err, "run migrations")
	}

	version, dirty, _ := m.Version()
	logger.Info("migrations applied",
		zap.String("driver", driver),
		zap.Uint("version", version),
		zap.Bool("dirty", dirty))
	return nil
}
