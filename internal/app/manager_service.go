package app

import (
	"context"
	"fmt"
	"strings"

	"go.uber.org/zap"

	"github.com/example/catalog/internal/apperr"
	"github.com/example/catalog/internal/core/manager"
	"github.com/example/catalog/internal/ports/primary"
	"github.com/example/catalog/internal/ports/secondary"
)

// ManagerServiceImpl implements the ManagerService interface.
type ManagerServiceImpl struct {
	managerRepo secondary.ManagerRepository
	logger      *zap.SugaredLogger
}

// NewManagerService creates a new ManagerService with injected dependencies.
func NewManagerService(managerRepo secondary.ManagerRepository, logger *zap.SugaredLogger) *ManagerServiceImpl {
	return &ManagerServiceImpl{
		managerRepo: managerRepo,
		logger:      logger,
	}
}

// GetManager returns the saved manager, or nil if none is set.
func (s *ManagerServiceImpl) GetManager(ctx context.Context) (*primary.Manager, error) {
	record, err := s.managerRepo.Get(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load manager: %w", err)
	}
	if record == nil {
		return nil, nil
	}
	return recordToManager(record), nil
}

// SaveManager creates or replaces the manager.
func (s *ManagerServiceImpl) SaveManager(ctx context.Context, req primary.SaveManagerRequest) (*primary.Manager, error) {
	record := &secondary.ManagerRecord{
		Department: strings.TrimSpace(req.Department),
		Division:   strings.TrimSpace(req.Division),
		Person:     strings.TrimSpace(req.Person),
	}

	guard := manager.CanSaveManager(manager.SaveManagerContext{
		Department: record.Department,
		Division:   record.Division,
		Person:     record.Person,
	})
	if !guard.Allowed {
		return nil, apperr.Validation(guard.Reason, guard.Fields...)
	}

	if err := s.managerRepo.Upsert(ctx, record); err != nil {
		return nil, apperr.Persistence("could not save manager", err)
	}

	s.logger.Infow("manager saved", "department", record.Department, "division", record.Division, "person", record.Person)
	return recordToManager(record), nil
}

func recordToManager(r *secondary.ManagerRecord) *primary.Manager {
	return &primary.Manager{
		Department: r.Department,
		Division:   r.Division,
		Person:     r.Person,
		UpdatedAt:  r.UpdatedAt,
	}
}

// Ensure ManagerServiceImpl implements the interface.
var _ primary.ManagerService = (*ManagerServiceImpl)(nil)
