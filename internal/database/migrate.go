package database

import (
	"errors"

	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/source/file"

	"github.com/clienthub/customers-service/internal/utils"
)

// RunMigrations applies every pending migration from the file source.
// Already-current schemas are not an error.
func RunMigrations(databaseURL, migrationsPath string) error {
	m, err := migrate.New("file://"+migrationsPath, databaseURL)
	if err != nil {
		return err
	}
	defer func() {
		srcErr, dbErr := m.Close()
		if srcErr != nil {
			utils.Logger.WithError(srcErr).Warn("Failed to close migration source")
		}
		if dbErr != nil {
			utils.Logger.WithError(dbErr).Warn("Failed to close migration DB handle")
		}
	}()

	if err := m.Up(); err != nil {
		if errors.Is(err, migrate.ErrNoChange) {
			utils.Logger.Info("Database schema already up to date.")
			return nil
		}
		return err
	}

	version, dirty, err := m.Version()
	if err != nil {
		return err
	}
	utils.Logger.Infof("Database migrated to version %d (dirty=%t).", version, dirty)
	return nil
}
