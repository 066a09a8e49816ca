package repositories

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"bridge-torch-service/internal/domain"
	"bridge-torch-service/internal/platform/obs"
	"bridge-torch-service/internal/ports"
)

// SQL-backed implementation of the PuzzleRepository port.
// It serves both SQLite and Postgres; Dialect picks the parameter syntax.
type SQLPuzzleRepository struct {
	DB      *sql.DB
	Dialect Dialect
}

func NewSQLPuzzleRepository(db *sql.DB, d Dialect) *SQLPuzzleRepository {
	return &SQLPuzzleRepository{DB: db, Dialect: d}
}

// Return all presets stored in the database.
func (s *SQLPuzzleRepository) ListPresets(ctx context.Context) (_ []*domain.Preset, err error) {
	defer obs.Time(ctx, "presets.List")(&err)

	if s.DB == nil {
		return nil, errors.New("sql puzzle repository: DB is nil")
	}

	query := `
	SELECT
		name,
		description,
		times,
		max_group
	FROM puzzle_presets
	ORDER BY name;
	`
	rows, err := s.DB.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list presets: query puzzle_presets table: %w", err)
	}
	defer rows.Close()

	presets := make([]*domain.Preset, 0, 16)
	for rows.Next() {
		p, err := scanPreset(rows)
		if err != nil {
			return nil, fmt.Errorf("list presets: %w", err)
		}
		presets = append(presets, p)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list presets: row iteration: %w", err)
	}

	return presets, nil
}

// Return the preset called name.
func (s *SQLPuzzleRepository) GetPreset(ctx context.Context, name string) (_ *domain.Preset, err error) {
	defer obs.Time(ctx, "presets.Get")(&err)

	if s.DB == nil {
		return nil, errors.New("sql puzzle repository: DB is nil")
	}

	query := fmt.Sprintf(`
	SELECT
		name,
		description,
		times,
		max_group
	FROM puzzle_presets
	WHERE name = %s;
	`, s.Dialect.Placeholder(1))

	p, err := scanPreset(s.DB.QueryRowContext(ctx, query, strings.TrimSpace(name)))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("get preset %q: %w", name, ports.ErrPresetNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("get preset %q: %w", name, err)
	}

	return p, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanPreset(r rowScanner) (*domain.Preset, error) {
	var (
		name, desc, times string
		maxGroup          int
	)
	if err := r.Scan(&name, &desc, &times, &maxGroup); err != nil {
		return nil, fmt.Errorf("scan row: %w", err)
	}

	ts, err := splitTimes(times)
	if err != nil {
		return nil, fmt.Errorf("preset %q: %w", name, err)
	}

	return &domain.Preset{
		Name:        name,
		Description: desc,
		Puzzle:      domain.Puzzle{Times: ts, MaxGroup: maxGroup},
	}, nil
}

// splitTimes decodes the comma-joined column written by domain.FormatTimes.
func splitTimes(s string) ([]int, error) {
	if s == "" {
		return []int{}, nil
	}

	fields := strings.Split(s, ",")
	out := make([]int, 0, len(fields))
	for _, f := range fields {
		t, err := strconv.Atoi(strings.TrimSpace(f))
		if err != nil {
			return nil, fmt.Errorf("decode times %q: %w", s, err)
		}
		out = append(out, t)
	}
	return out, nil
}
