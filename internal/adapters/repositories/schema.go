package repositories

import (
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"strings"

	"bridge-torch-service/internal/domain"
)

// Initialize the database schema. The DDL is shared by SQLite and Postgres.
func InitSchema(db *sql.DB) error {
	if db == nil {
		return errors.New("init schema: DB is nil")
	}

	tx, err := db.Begin()
	if err != nil {
		return fmt.Errorf("init schema: begin tx: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	createPresetsQuery := `
	CREATE TABLE IF NOT EXISTS puzzle_presets (
		name TEXT PRIMARY KEY,
		description TEXT NOT NULL DEFAULT '',
		times TEXT NOT NULL,
		max_group INTEGER NOT NULL
	);
	`

	createSolutionCacheQuery := `
	CREATE TABLE IF NOT EXISTS solution_cache (
		puzzle_key TEXT PRIMARY KEY,
		found INTEGER NOT NULL,
		total_time INTEGER NOT NULL,
		steps TEXT NOT NULL
	);
	`

	statements := []string{
		createPresetsQuery,
		createSolutionCacheQuery,
	}

	for i, stmt := range statements {
		if _, err := tx.Exec(stmt); err != nil {
			return fmt.Errorf("init schema: exec statement #%d: %w", i+1, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("init schema: commit tx: %w", err)
	}

	return nil
}

type PresetSeed struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	Times       []int  `json:"times"`
	MaxGroup    int    `json:"max_group"`
}

// Populate the preset catalogue from a JSON file. Every preset must be a
// valid puzzle; existing presets with the same name are replaced.
func SeedFromJSON(db *sql.DB, d Dialect, jsonPath string) error {
	data, err := ReadPresetSeeds(jsonPath)
	if err != nil {
		return fmt.Errorf("seed presets: %w", err)
	}

	return SeedPresets(db, d, data)
}

// Read the preset seed file without touching a database.
func ReadPresetSeeds(jsonPath string) ([]PresetSeed, error) {
	bytes, err := os.ReadFile(jsonPath)
	if err != nil {
		return nil, fmt.Errorf("read %q: %w", jsonPath, err)
	}

	var data []PresetSeed
	if err := json.Unmarshal(bytes, &data); err != nil {
		return nil, fmt.Errorf("parse json %q: %w", jsonPath, err)
	}

	return data, nil
}

// Upsert presets in a single transaction.
func SeedPresets(db *sql.DB, d Dialect, data []PresetSeed) error {
	if db == nil {
		return errors.New("seed presets: DB is nil")
	}

	rows, err := normalizeSeeds(data)
	if err != nil {
		return fmt.Errorf("seed presets: %w", err)
	}

	tx, err := db.Begin()
	if err != nil {
		return fmt.Errorf("seed presets: begin tx: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	query := fmt.Sprintf(`
	INSERT INTO puzzle_presets (
		name,
		description,
		times,
		max_group
	)
	VALUES (%s)
	ON CONFLICT (name) DO UPDATE
	SET description = excluded.description,
		times = excluded.times,
		max_group = excluded.max_group;
	`, d.Placeholders(4))

	stmt, err := tx.Prepare(query)
	if err != nil {
		return fmt.Errorf("seed presets: prepare insert: %w", err)
	}
	defer stmt.Close()

	for _, p := range rows {
		if _, err := stmt.Exec(p.Name, p.Description, domain.FormatTimes(p.Times), p.MaxGroup); err != nil {
			return fmt.Errorf("seed presets: insert name=%q: %w", p.Name, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("seed presets: commit tx: %w", err)
	}

	return nil
}

// normalizeSeeds trims names and descriptions and rejects invalid puzzles.
func normalizeSeeds(data []PresetSeed) ([]PresetSeed, error) {
	rows := make([]PresetSeed, 0, len(data))
	for i, item := range data {
		name := strings.TrimSpace(item.Name)
		if name == "" {
			return nil, fmt.Errorf("item at index %d: name cannot be empty", i+1)
		}

		p := domain.Puzzle{Times: item.Times, MaxGroup: item.MaxGroup}
		if err := p.Validate(domain.MaxPeople); err != nil {
			return nil, fmt.Errorf("preset %q: %w", name, err)
		}
		rows = append(rows, PresetSeed{
			Name:        name,
			Description: strings.TrimSpace(item.Description),
			Times:       item.Times,
			MaxGroup:    item.MaxGroup,
		})
	}
	return rows, nil
}
