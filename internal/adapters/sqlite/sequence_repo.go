package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/example/catalog/internal/ports/secondary"
)

// SequenceRepository implements secondary.SequenceAllocator with SQLite.
// Each prefix owns one row; allocation is a single upsert statement, so it is
// atomic across processes sharing the database file.
type SequenceRepository struct {
	db  *sql.DB
	now func() time.Time
}

// NewSequenceRepository creates a new SQLite sequence repository.
func NewSequenceRepository(db *sql.DB) *SequenceRepository {
	return &SequenceRepository{db: db, now: time.Now}
}

// Allocate reserves the next sequence for prefix: max(last+1, floor).
func (r *SequenceRepository) Allocate(ctx context.Context, prefix string, floor int) (int, error) {
	if floor < 1 {
		floor = 1
	}

	var seq int
	err := r.db.QueryRowContext(ctx, `
		INSERT INTO code_sequences (prefix, last_seq, updated_at)
		VALUES (?, ?, ?)
		ON CONFLICT(prefix) DO UPDATE SET
			last_seq = MAX(code_sequences.last_seq + 1, excluded.last_seq),
			updated_at = excluded.updated_at
		RETURNING last_seq`,
		prefix, floor, r.now().Format(time.RFC3339),
	).Scan(&seq)
	if err != nil {
		return 0, fmt.Errorf("failed to allocate sequence for %s: %w", prefix, err)
	}

	return seq, nil
}

// Peek returns the last sequence allocated for prefix, or 0.
func (r *SequenceRepository) Peek(ctx context.Context, prefix string) (int, error) {
	var seq int
	err := r.db.QueryRowContext(ctx,
		"SELECT last_seq FROM code_sequences WHERE prefix = ?",
		prefix,
	).Scan(&seq)

	if errors.Is(err, sql.ErrNoRows) {
		return 0, nil
	}
	if err != nil {
		return 0, fmt.Errorf("failed to read sequence for %s: %w", prefix, err)
	}

	return seq, nil
}

// Ensure SequenceRepository implements the interface.
var _ secondary.SequenceAllocator = (*SequenceRepository)(nil)
