package main

import (
	"database/sql"
	"errors"
	"flag"
	"fmt"
	"os"

	"trip-cms/migrations"
	"trip-cms/pkg/config"
	"trip-cms/pkg/logger"

	_ "github.com/lib/pq"
	"github.com/pressly/goose/v3"
)

func main() {
	var (
		dir     = flag.String("dir", "", "directory with migration files (embedded set when empty)")
		command = flag.String("command", "up", "migration command (up, down, status, create)")
		name    = flag.String("name", "", "name for new migration (used with create command)")
	)
	flag.Parse()

	log := logger.New().Named("migrate")

	if err := run(log, *dir, *command, *name); err != nil {
		log.Error("Migration failed: %v", err)
		_ = log.Sync()
		os.Exit(1)
	}
	_ = log.Sync()
}

func run(log *logger.Logger, dir, command, name string) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	if err := goose.SetDialect("postgres"); err != nil {
		return err
	}

	if command == "create" {
		if name == "" {
			return errors.New("name is required for create command")
		}
		if dir == "" {
			dir = "migrations"
		}
		return goose.Create(nil, dir, name, "sql")
	}

	if dir == "" {
		goose.SetBaseFS(migrations.FS)
		dir = "."
	}

	db, err := sql.Open("postgres", cfg.DSN())
	if err != nil {
		return err
	}
	defer db.Close()

	switch command {
	case "up":
		if err := goose.Up(db, dir); err != nil {
			return err
		}
		log.Info("Migrations applied successfully")
	case "down":
		if err := goose.Down(db, dir); err != nil {
			return err
		}
		log.Info("Migrations rolled back successfully")
	case "status":
		return goose.Status(db, dir)
	default:
		return fmt.Errorf("unknown command: %s", command)
	}
	return nil
}
