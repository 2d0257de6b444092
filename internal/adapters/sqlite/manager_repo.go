// Package sqlite contains SQLite implementations of repository interfaces.
package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/example/catalog/internal/ports/secondary"
)

// managerID is the fixed key of the singleton manager row.
const managerID = 1

// ManagerRepository implements secondary.ManagerRepository with SQLite.
type ManagerRepository struct {
	db  *sql.DB
	now func() time.Time
}

// NewManagerRepository creates a new SQLite manager repository.
func NewManagerRepository(db *sql.DB) *ManagerRepository {
	return &ManagerRepository{db: db, now: time.Now}
}

// Get retrieves the manager, or nil if none has been saved.
func (r *ManagerRepository) Get(ctx context.Context) (*secondary.ManagerRecord, error) {
	record := &secondary.ManagerRecord{}
	err := r.db.QueryRowContext(ctx,
		"SELECT department, division, person, updated_at FROM manager WHERE id = ?",
		managerID,
	).Scan(&record.Department, &record.Division, &record.Person, &record.UpdatedAt)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get manager: %w", err)
	}

	return record, nil
}

// Upsert creates or replaces the manager row and stamps UpdatedAt.
func (r *ManagerRepository) Upsert(ctx context.Context, manager *secondary.ManagerRecord) error {
	manager.UpdatedAt = r.now().Format(time.RFC3339)

	_, err := r.db.ExecContext(ctx, `
		INSERT INTO manager (id, department, division, person, updated_at)
		VALUES (?, ?, ?, ?, ?)
		ON CONFLICT(id) DO UPDATE SET
			department = excluded.department,
			division = excluded.division,
			person = excluded.person,
			updated_at = excluded.updated_at`,
		managerID, manager.Department, manager.Division, manager.Person, manager.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to save manager: %w", err)
	}

	return nil
}

// Ensure ManagerRepository implements the interface.
var _ secondary.ManagerRepository = (*ManagerRepository)(nil)
