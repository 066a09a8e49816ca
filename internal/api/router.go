package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"bridge-torch-service/internal/api/handlers"
	"bridge-torch-service/internal/ports"
)

type RouterConfig struct {
	Repo         ports.PuzzleRepository
	Cache        ports.SolutionCache
	DB           handlers.Pinger
	MaxPeople    int
	BatchWorkers int
}

// NewRouter wires HTTP handlers with their dependencies and returns an http.Handler.
// This is the API composition root (handlers stay unaware of concrete adapters).
func NewRouter(cfg RouterConfig) http.Handler {
	healthHandler := &handlers.HealthHandler{DB: cfg.DB}
	solveHandler := &handlers.SolveHandler{
		Cache:        cfg.Cache,
		MaxPeople:    cfg.MaxPeople,
		BatchWorkers: cfg.BatchWorkers,
	}
	puzzleHandler := &handlers.PuzzleHandler{
		Repo:      cfg.Repo,
		Cache:     cfg.Cache,
		MaxPeople: cfg.MaxPeople,
	}

	r := chi.NewRouter()
	r.Use(requestIDMiddleware)
	r.Use(loggingMiddleware)
	r.Use(middleware.Recoverer)

	r.Get("/health", healthHandler.Health)
	r.Post("/solve", solveHandler.Solve)
	r.Post("/solve/batch", solveHandler.Batch)
	r.Get("/puzzles", puzzleHandler.List)
	r.Get("/puzzles/{name}/solution", puzzleHandler.Solution)

	return r
}
