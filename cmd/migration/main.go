package main

import (
	"flag"
	"phonelink-service/internal/app/config"
	"phonelink-service/internal/app/drivers/database"
	"phonelink-service/internal/app/drivers/logger"
	"phonelink-service/internal/migration"
	"phonelink-service/internal/pkg/constvars"

	migrate "github.com/rubenv/sql-migrate"
	"github.com/sirupsen/logrus"
)

func main() {
	direction := flag.String("direction", "up", "migration direction: up, down or status")
	steps := flag.Int("steps", 0, "maximum number of migrations to apply, 0 applies all")
	flag.Parse()

	internalConfig := config.NewInternalConfig()
	driverConfig := config.NewDriverConfig()
	log := logger.NewLogrusLogger(internalConfig)

	db := database.NewPostgresDB(driverConfig)
	defer db.Close()

	switch *direction {
	case "status":
		pending, err := migration.Pending(db)
		if err != nil {
			log.Fatalf("Error planning migrations: %v", err)
		}
		log.WithField("pending", len(pending)).Info("Migration status")
		for _, id := range pending {
			log.Infof("pending: %s", id)
		}
		return
	case "up", "down":
	default:
		log.Fatalf("Unknown direction %q", *direction)
	}

	migrationDirection := migrate.Up
	if *direction == "down" {
		migrationDirection = migrate.Down
	}

	n, err := migration.Run(db, migrationDirection, *steps)
	if err != nil {
		log.Fatalf("Error executing migration: %v", err)
	}

	log.WithFields(logrus.Fields{
		"direction":                            *direction,
		constvars.LoggingMigrationsAppliedKey: n,
	}).Info("Migrations applied")
}
