package handlers

import (
	"bytes"
	"errors"
	"net/http"
	"strings"

	"github.com/charmbracelet/log"

	"bridge-torch-service/internal/api/dto"
	"bridge-torch-service/internal/domain"
	"bridge-torch-service/internal/platform/obs"
	"bridge-torch-service/internal/ports"
	"bridge-torch-service/internal/render"
	"bridge-torch-service/internal/services"
)

// Batches larger than this are rejected.
const maxBatchSize = 32

type SolveHandler struct {
	Cache        ports.SolutionCache
	MaxPeople    int
	BatchWorkers int
}

// Solve runs the crossing solver for one puzzle. The response is JSON
// unless the client asks for text via ?format=text or Accept: text/plain.
func (h *SolveHandler) Solve(w http.ResponseWriter, r *http.Request) {
	var req dto.SolveRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	res, err := services.SolvePuzzle(r.Context(), h.request(req), h.Cache)
	if err != nil {
		h.fail(w, r, err)
		return
	}

	writeResult(w, r, res)
}

// Batch solves several puzzles concurrently; results keep request order.
func (h *SolveHandler) Batch(w http.ResponseWriter, r *http.Request) {
	var req dto.BatchSolveRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	if len(req.Puzzles) == 0 {
		writeError(w, r, http.StatusBadRequest, "puzzles must not be empty")
		return
	}
	if len(req.Puzzles) > maxBatchSize {
		writeError(w, r, http.StatusBadRequest, "too many puzzles in one batch")
		return
	}

	reqs := make([]services.SolvePuzzleRequest, 0, len(req.Puzzles))
	for _, p := range req.Puzzles {
		reqs = append(reqs, h.request(p))
	}

	results, err := services.SolveBatch(r.Context(), reqs, h.Cache, h.BatchWorkers)
	if err != nil {
		h.fail(w, r, err)
		return
	}

	res := dto.BatchSolveResponse{Results: make([]dto.SolveResponse, 0, len(results))}
	for _, pr := range results {
		res.Results = append(res.Results, dto.FromResult(pr))
	}
	writeJSON(w, r, http.StatusOK, res)
}

func (h *SolveHandler) request(req dto.SolveRequest) services.SolvePuzzleRequest {
	return services.SolvePuzzleRequest{
		Puzzle:    domain.Puzzle{Times: req.Times, MaxGroup: req.MaxGroup},
		MaxPeople: h.MaxPeople,
	}
}

func (h *SolveHandler) fail(w http.ResponseWriter, r *http.Request, err error) {
	if isValidationError(err) {
		writeError(w, r, http.StatusBadRequest, err.Error())
		return
	}

	log.Error("solve failed", "req_id", obs.RequestID(r.Context()), "err", err)
	writeError(w, r, http.StatusInternalServerError, "internal server error")
}

func isValidationError(err error) bool {
	for _, target := range []error{
		domain.ErrNoPeople,
		domain.ErrNonPositiveTime,
		domain.ErrMaxGroupRange,
		domain.ErrTooManyPeople,
	} {
		if errors.Is(err, target) {
			return true
		}
	}
	return false
}

func wantsText(r *http.Request) bool {
	if strings.EqualFold(r.URL.Query().Get("format"), "text") {
		return true
	}
	return strings.HasPrefix(r.Header.Get("Accept"), "text/plain")
}

func writeResult(w http.ResponseWriter, r *http.Request, res *services.PuzzleResult) {
	if !wantsText(r) {
		writeJSON(w, r, http.StatusOK, dto.FromResult(res))
		return
	}

	var buf bytes.Buffer
	if err := render.WriteText(&buf, res.Puzzle.Times, res.Solution); err != nil {
		log.Error("render text failed", "req_id", obs.RequestID(r.Context()), "err", err)
		writeError(w, r, http.StatusInternalServerError, "internal server error")
		return
	}

	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(buf.Bytes())
}
