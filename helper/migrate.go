package helper

import (
	"errors"
	"fmt"
	"net"
	"net/url"

	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/source/file"
	"github.com/rs/zerolog/log"

	"hotelier/config"
)

const migrationSourceURL = "file://migrations/postgres"

// Migrate applies every pending migration against the write database.
func Migrate(cfg *config.Config) error {
	m, err := newMigrate(cfg)
	if err != nil {
		return err
	}

	defer closeMigrate(m)

	if err := m.Up(); err != nil {
		if errors.Is(err, migrate.ErrNoChange) {
			log.Info().Msg("No pending migrations")

			return nil
		}

		return fmt.Errorf("applying migrations: %w", err)
	}

	log.Info().Msg("Migrations applied")

	return nil
}

// Rollback reverts the most recent migration.
func Rollback(cfg *config.Config) error {
	m, err := newMigrate(cfg)
	if err != nil {
		return err
	}

	defer closeMigrate(m)

	if err := m.Steps(-1); err != nil {
		return fmt.Errorf("rolling back migration: %w", err)
	}

	log.Info().Msg("Rolled back one migration")

	return nil
}

func newMigrate(cfg *config.Config) (*migrate.Migrate, error) {
	write := cfg.DB.Postgres.Write

	dbName := write.Name
	if cfg.DB.Postgres.Prefix != "" {
		dbName = cfg.DB.Postgres.Prefix + dbName
	}

	databaseURL := url.URL{
		Scheme: "postgres",
		User:   url.UserPassword(write.Username, write.Password),
		Host:   net.JoinHostPort(write.Host, write.Port),
		Path:   dbName,
	}

	query := databaseURL.Query()
	query.Set("sslmode", write.SSLMode)

	if cfg.DB.Postgres.MigrationTable != "" {
		query.Set("x-migrations-table", cfg.DB.Postgres.MigrationTable)
	}

	databaseURL.RawQuery = query.Encode()

	m, err := migrate.New(migrationSourceURL, databaseURL.String())
	if err != nil {
		return nil, fmt.Errorf("creating migrate instance: %w", err)
	}

	return m, nil
}

func closeMigrate(m *migrate.Migrate) {
	srcErr, dbErr := m.Close()
	if srcErr != nil {
		log.Error().Err(srcErr).Msg("Failed to close migration source")
	}

	if dbErr != nil {
		log.Error().Err(dbErr).Msg("Failed to close migration database connection")
	}
}
