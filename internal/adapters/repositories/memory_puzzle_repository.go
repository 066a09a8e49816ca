package repositories

import (
	"context"
	"fmt"
	"slices"
	"strings"

	"bridge-torch-service/internal/domain"
	"bridge-torch-service/internal/ports"
)

// In-memory PuzzleRepository for running without a database.
type MemoryPuzzleRepository struct {
	presets map[string]*domain.Preset
}

func NewMemoryPuzzleRepository(seeds []PresetSeed) (*MemoryPuzzleRepository, error) {
	rows, err := normalizeSeeds(seeds)
	if err != nil {
		return nil, fmt.Errorf("memory puzzle repository: %w", err)
	}

	m := make(map[string]*domain.Preset, len(rows))
	for _, s := range rows {
		m[s.Name] = &domain.Preset{
			Name:        s.Name,
			Description: s.Description,
			Puzzle:      domain.Puzzle{Times: s.Times, MaxGroup: s.MaxGroup},
		}
	}
	return &MemoryPuzzleRepository{presets: m}, nil
}

// Load presets from a seed file into memory.
func NewMemoryPuzzleRepositoryFromJSON(jsonPath string) (*MemoryPuzzleRepository, error) {
	seeds, err := ReadPresetSeeds(jsonPath)
	if err != nil {
		return nil, fmt.Errorf("memory puzzle repository: %w", err)
	}
	return NewMemoryPuzzleRepository(seeds)
}

func (m *MemoryPuzzleRepository) ListPresets(ctx context.Context) ([]*domain.Preset, error) {
	out := make([]*domain.Preset, 0, len(m.presets))
	for _, p := range m.presets {
		out = append(out, p)
	}
	slices.SortFunc(out, func(a, b *domain.Preset) int { return strings.Compare(a.Name, b.Name) })
	return out, nil
}

func (m *MemoryPuzzleRepository) GetPreset(ctx context.Context, name string) (*domain.Preset, error) {
	p, ok := m.presets[strings.TrimSpace(name)]
	if !ok {
		return nil, fmt.Errorf("get preset %q: %w", name, ports.ErrPresetNotFound)
	}
	return p, nil
}
