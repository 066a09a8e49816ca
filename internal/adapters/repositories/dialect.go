package repositories

import (
	"fmt"
	"strings"
)

// SQL flavour a statement is written for. The two differ only in how
// positional parameters are spelled.
type Dialect int

const (
	SQLite Dialect = iota
	Postgres
)

// DialectFor maps a database/sql driver name to its Dialect.
func DialectFor(driver string) (Dialect, error) {
	switch strings.ToLower(strings.TrimSpace(driver)) {
	case "sqlite", "sqlite3":
		return SQLite, nil
	case "pgx", "postgres", "postgresql":
		return Postgres, nil
	default:
		return 0, fmt.Errorf("dialect: unsupported driver %q", driver)
	}
}

// Placeholders returns n comma-separated positional parameters.
func (d Dialect) Placeholders(n int) string {
	ph := make([]string, n)
	for i := range ph {
		if d == Postgres {
			ph[i] = fmt.Sprintf("$%d", i+1)
		} else {
			ph[i] = "?"
		}
	}
	return strings.Join(ph, ", ")
}

// Placeholder returns the i-th (1-based) positional parameter.
func (d Dialect) Placeholder(i int) string {
	if d == Postgres {
		return fmt.Sprintf("$%d", i)
	}
	return "?"
}
