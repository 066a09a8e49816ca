package ports

import (
	"context"
	"errors"

	"bridge-torch-service/internal/domain"
)

var ErrPresetNotFound = errors.New("preset not found")

// Port: a boundary for retrieving named puzzle presets from a data source.
type PuzzleRepository interface {
	// Retrieve all presets ordered by name.
	ListPresets(ctx context.Context) ([]*domain.Preset, error)
	// Retrieve a single preset, or ErrPresetNotFound.
	GetPreset(ctx context.Context, name string) (*domain.Preset, error)
}
