package readingarchive

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/yanqian/cosmic-blueprint/internal/domain/reading"
)

const schema = `
	CREATE TABLE IF NOT EXISTS readings (
		id         UUID PRIMARY KEY,
		payload    JSONB NOT NULL,
		created_at TIMESTAMPTZ NOT NULL DEFAULT now()
	)
`

// querier is the slice of pgxpool.Pool the archive needs.
type querier interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

// PostgresArchive stores readings as JSONB rows keyed by id.
type PostgresArchive struct {
	db querier
}

// NewPostgresArchive constructs the archive. Pass a *pgxpool.Pool.
func NewPostgresArchive(db querier) *PostgresArchive {
	return &PostgresArchive{db: db}
}

// EnsureSchema creates the readings table when it does not exist.
func (a *PostgresArchive) EnsureSchema(ctx context.Context) error {
	if _, err := a.db.Exec(ctx, schema); err != nil {
		return fmt.Errorf("create readings table: %w", err)
	}
	return nil
}

// Save implements reading.Archive. Saving an existing id replaces its payload.
func (a *PostgresArchive) Save(ctx context.Context, resp reading.Response) error {
	if resp.ID == "" {
		return errMissingID
	}
	payload, err := json.Marshal(resp)
	if err != nil {
		return err
	}
	_, err = a.db.Exec(ctx, `
		INSERT INTO readings (id, payload, created_at)
		VALUES ($1, $2, $3)
		ON CONFLICT (id) DO UPDATE SET payload = EXCLUDED.payload
	`, resp.ID, payload, resp.CreatedAt)
	return err
}

// Get implements reading.Archive.
func (a *PostgresArchive) Get(ctx context.Context, id string) (reading.Response, bool, error) {
	var payload []byte
	err := a.db.QueryRow(ctx, `
		SELECT payload
		FROM readings
		WHERE id = $1
	`, id).Scan(&payload)
	if errors.Is(err, pgx.ErrNoRows) {
		return reading.Response{}, false, nil
	}
	if err != nil {
		return reading.Response{}, false, err
	}
	var resp reading.Response
	if err := json.Unmarshal(payload, &resp); err != nil {
		return reading.Response{}, false, fmt.Errorf("decode archived reading: %w", err)
	}
	return resp, true, nil
}

var _ reading.Archive = (*PostgresArchive)(nil)
