package main

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/charmbracelet/log"
	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"

	"bridge-torch-service/internal/adapters/cache"
	"bridge-torch-service/internal/adapters/repositories"
	"bridge-torch-service/internal/api"
	"bridge-torch-service/internal/config"
	"bridge-torch-service/internal/platform/db"
	"bridge-torch-service/internal/platform/obs"
	"bridge-torch-service/internal/ports"
)

// main is the application composition root.
// It wires concrete adapters (SQL, Redis) behind ports and starts the HTTP server.
func main() {
	envErr := godotenv.Load()

	cfg, err := config.Load(os.Getenv("CONFIG_PATH"))
	if err != nil {
		obs.SetupDefault(os.Stderr, "info")
		log.Fatal("load config", "err", err)
	}
	obs.SetupDefault(os.Stderr, cfg.LogLevel)
	if envErr != nil {
		log.Info("No .env file found (using environment variables)")
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, cfg); err != nil {
		log.Fatal("server stopped", "err", err)
	}
}

func run(ctx context.Context, cfg config.Config) error {
	conn, dialect, err := openStore(cfg)
	if err != nil {
		return err
	}

	var (
		repo        ports.PuzzleRepository
		solverCache ports.SolutionCache
		routerCfg   = api.RouterConfig{MaxPeople: cfg.MaxPeople, BatchWorkers: cfg.BatchWorkers}
	)

	if conn != nil {
		defer conn.Close()

		// Initialize schema and seed presets on startup for local runs.
		if err := initAndSeed(conn, dialect, cfg.SeedPath); err != nil {
			return err
		}
		repo = repositories.NewSQLPuzzleRepository(conn, dialect)
		solverCache = cache.NewSQLSolutionCache(conn, dialect)
		routerCfg.DB = conn
	} else {
		memRepo, err := repositories.NewMemoryPuzzleRepositoryFromJSON(cfg.SeedPath)
		if err != nil {
			return err
		}
		repo = memRepo
		solverCache = cache.NewMemorySolutionCache()
	}

	if cfg.RedisAddr != "" {
		ttl, err := cfg.CacheTTL()
		if err != nil {
			return err
		}
		client := redis.NewClient(&redis.Options{Addr: cfg.RedisAddr})
		defer client.Close()

		solverCache = cache.NewLayeredSolutionCache(cache.NewRedisSolutionCache(client, ttl), solverCache)
		log.Info("redis front cache enabled", "addr", cfg.RedisAddr, "ttl", ttl)
	}

	routerCfg.Repo = repo
	routerCfg.Cache = solverCache

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           api.NewRouter(routerCfg),
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       10 * time.Second,
		WriteTimeout:      60 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		log.Info("Server listening", "addr", srv.Addr, "db_driver", cfg.DBDriver, "max_people", cfg.MaxPeople)
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	log.Info("shutting down")
	return srv.Shutdown(shutdownCtx)
}

// openStore returns a nil connection for the memory driver.
func openStore(cfg config.Config) (*sql.DB, repositories.Dialect, error) {
	switch cfg.DBDriver {
	case "postgres":
		conn, err := db.Open(cfg.DatabaseURL)
		return conn, repositories.Postgres, err
	case "sqlite":
		conn, err := db.OpenSQLite(cfg.DBPath)
		return conn, repositories.SQLite, err
	default:
		return nil, repositories.SQLite, nil
	}
}

func initAndSeed(conn *sql.DB, d repositories.Dialect, seedPath string) error {
	if err := repositories.InitSchema(conn); err != nil {
		return fmt.Errorf("init and seed: %w", err)
	}

	if err := repositories.SeedFromJSON(conn, d, seedPath); err != nil {
		return fmt.Errorf("init and seed: %w", err)
	}

	return nil
}
