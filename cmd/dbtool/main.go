package main

import (
	"database/sql"
	"os"

	"github.com/charmbracelet/log"
	"github.com/joho/godotenv"

	"bridge-torch-service/internal/adapters/repositories"
	"bridge-torch-service/internal/config"
	"bridge-torch-service/internal/platform/db"
	"bridge-torch-service/internal/platform/obs"
)

// dbtool prepares a Postgres database: schema plus preset catalogue.
func main() {
	envErr := godotenv.Load()
	obs.SetupDefault(os.Stderr, config.Get("LOG_LEVEL", "info"))
	if envErr != nil {
		log.Info("No .env file found (using environment variables)")
	}

	databaseURL := config.Get("DATABASE_URL", "")
	if databaseURL == "" {
		log.Fatal("DATABASE_URL is required")
	}

	conn, err := db.Open(databaseURL)
	if err != nil {
		log.Fatal("open database", "err", err)
	}
	defer conn.Close()

	seedPath := config.Get("SEED_PATH", "data/seeds/puzzles.json")
	if err := initAndSeed(conn, seedPath); err != nil {
		log.Error("dbtool failed", "err", err)
		conn.Close()
		os.Exit(1)
	}
}

func initAndSeed(conn *sql.DB, seedPath string) error {
	log.Info("Initializing database schema...")
	if err := repositories.InitSchema(conn); err != nil {
		return err
	}
	log.Info("Schema ready.")

	log.Info("Seeding presets...", "path", seedPath)
	if err := repositories.SeedFromJSON(conn, repositories.Postgres, seedPath); err != nil {
		return err
	}
	log.Info("Seeding complete.")

	return nil
}
