package migrations

import (
	"context"
	"database/sql"
	"embed"
	"errors"
	"fmt"

	"github.com/pressly/goose/v3"
)

//go:embed *.sql
var schema embed.FS

// ErrNilDB is returned when Migrate is handed no database.
var ErrNilDB = errors.New("apply schema: db is nil")

// Migrate brings the BookingIn schema up to the latest embedded version and
// returns the versions it applied, oldest first.
func Migrate(ctx context.Context, db *sql.DB) ([]int64, error) {
	if db == nil {
		return nil, ErrNilDB
	}

	provider, err := goose.NewProvider(goose.DialectPostgres, db, schema)
	if err != nil {
		return nil, fmt.Errorf("apply schema: load migrations: %w", err)
	}

	results, err := provider.Up(ctx)
	if err != nil {
		return nil, fmt.Errorf("apply schema: %w", err)
	}

	applied := make([]int64, 0, len(results))
	for _, r := range results {
		applied = append(applied, r.Source.Version)
	}
	return applied, nil
}
