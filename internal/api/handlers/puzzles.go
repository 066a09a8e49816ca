package handlers

import (
	"errors"
	"net/http"

	"github.com/charmbracelet/log"
	"github.com/go-chi/chi/v5"

	"bridge-torch-service/internal/api/dto"
	"bridge-torch-service/internal/platform/obs"
	"bridge-torch-service/internal/ports"
	"bridge-torch-service/internal/services"
)

// PuzzleHandler exposes the preset catalogue and solves presets by name.
type PuzzleHandler struct {
	Repo      ports.PuzzleRepository
	Cache     ports.SolutionCache
	MaxPeople int
}

func (h *PuzzleHandler) List(w http.ResponseWriter, r *http.Request) {
	presets, err := h.Repo.ListPresets(r.Context())
	if err != nil {
		log.Error("list presets failed", "req_id", obs.RequestID(r.Context()), "err", err)
		writeError(w, r, http.StatusInternalServerError, "internal server error")
		return
	}

	res := dto.ListPresetsResponse{
		Presets: make([]dto.PresetResponse, 0, len(presets)),
	}
	for _, p := range presets {
		res.Presets = append(res.Presets, dto.PresetResponse{
			Name:        p.Name,
			Description: p.Description,
			Times:       p.Puzzle.Times,
			MaxGroup:    p.Puzzle.MaxGroup,
		})
	}

	writeJSON(w, r, http.StatusOK, res)
}

// Solution solves the preset named in the URL.
func (h *PuzzleHandler) Solution(w http.ResponseWriter, r *http.Request) {
	name := chi.URLParam(r, "name")

	preset, err := h.Repo.GetPreset(r.Context(), name)
	if errors.Is(err, ports.ErrPresetNotFound) {
		writeError(w, r, http.StatusNotFound, "preset not found")
		return
	}
	if err != nil {
		log.Error("get preset failed", "req_id", obs.RequestID(r.Context()), "name", name, "err", err)
		writeError(w, r, http.StatusInternalServerError, "internal server error")
		return
	}

	res, err := services.SolvePuzzle(r.Context(), services.SolvePuzzleRequest{
		Puzzle:    preset.Puzzle,
		MaxPeople: h.MaxPeople,
	}, h.Cache)
	if err != nil {
		if isValidationError(err) {
			writeError(w, r, http.StatusUnprocessableEntity, err.Error())
			return
		}
		log.Error("solve preset failed", "req_id", obs.RequestID(r.Context()), "name", name, "err", err)
		writeError(w, r, http.StatusInternalServerError, "internal server error")
		return
	}

	writeResult(w, r, res)
}
