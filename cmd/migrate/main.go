// Command migrate applies the SQL schema in migrations/ to the configured database.
//
//	go run ./cmd/migrate up
//	go run ./cmd/migrate down 1
//	go run ./cmd/migrate version
package main

import (
	"errors"
	"flag"
	"fmt"
	"os"
	"strconv"

	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/source/file"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"

	"lawfirm-backend/internal/config"
	"lawfirm-backend/pkg/logger"
)

func main() {
	_ = godotenv.Load()
	logger.Init(os.Getenv("APP_ENV"), os.Getenv("LOG_LEVEL"))

	dir := flag.String("path", "migrations", "directory holding the *.sql migrations")
	flag.Parse()

	if err := migrateDB(*dir, flag.Args()); err != nil {
		log.Fatal().Err(err).Msg("[MIGRATE] Failed")
	}
}

func migrateDB(dir string, args []string) error {
	dbConfig, err := config.LoadDatabaseConfig()
	if err != nil {
		return fmt.Errorf("invalid database config: %w", err)
	}

	version, dirty, err := migrateDSN(dir, dbConfig.DSN(), args)
	if err != nil {
		return err
	}
	log.Info().Uint("version", version).Bool("dirty", dirty).Msg("[MIGRATE] Done")
	return nil
}

// migrateDSN runs one command against dsn and reports the resulting version.
// The migrate instance is closed on every path.
func migrateDSN(dir, dsn string, args []string) (version uint, dirty bool, err error) {
	m, err := migrate.New("file://"+dir, dsn)
	if err != nil {
		return 0, false, fmt.Errorf("failed to open migrations: %w", err)
	}
	defer func() {
		srcErr, dbErr := m.Close()
		if err == nil {
			err = errors.Join(srcErr, dbErr)
		}
	}()

	if err := run(m, args); err != nil {
		return 0, false, err
	}

	version, dirty, err = m.Version()
	if errors.Is(err, migrate.ErrNilVersion) {
		return 0, false, nil
	}
	if err != nil {
		return 0, false, fmt.Errorf("failed to read version: %w", err)
	}
	return version, dirty, nil
}

func run(m *migrate.Migrate, args []string) error {
	cmd := "up"
	if len(args) > 0 {
		cmd = args[0]
	}

	var err error
	switch cmd {
	case "up":
		err = m.Up()
	case "down":
		steps := 1
		if len(args) > 1 {
			if steps, err = strconv.Atoi(args[1]); err != nil || steps < 1 {
				return fmt.Errorf("invalid step count %q", args[1])
			}
		}
		err = m.Steps(-steps)
	case "drop":
		err = m.Drop()
	case "version":
		return nil
	default:
		return fmt.Errorf("unknown command %q (want up, down [n], drop or version)", cmd)
	}

	if errors.Is(err, migrate.ErrNoChange) {
		log.Info().Msg("[MIGRATE] No change")
		return nil
	}
	return err
}
