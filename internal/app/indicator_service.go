// Package app contains the application services that orchestrate business logic.
package app

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/example/catalog/internal/apperr"
	"github.com/example/catalog/internal/core/code"
	"github.com/example/catalog/internal/core/indicator"
	coremanager "github.com/example/catalog/internal/core/manager"
	"github.com/example/catalog/internal/ports/primary"
	"github.com/example/catalog/internal/ports/secondary"
)

// TimestampLayout is the second-precision local timestamp written to records.
const TimestampLayout = "2006-01-02T15:04:05"

// IndicatorServiceImpl implements the IndicatorService interface.
type IndicatorServiceImpl struct {
	managerRepo secondary.ManagerRepository
	records     secondary.RecordStore
	attachments secondary.AttachmentStore
	sequences   secondary.SequenceAllocator
	logger      *zap.SugaredLogger
	now         func() time.Time

	// mu serializes submissions: code allocation and the record append
	// happen as one step within the process.
	mu sync.Mutex
}

// NewIndicatorService creates a new IndicatorService with injected dependencies.
func NewIndicatorService(
	managerRepo secondary.ManagerRepository,
	records secondary.RecordStore,
	attachments secondary.AttachmentStore,
	sequences secondary.SequenceAllocator,
	logger *zap.SugaredLogger,
) *IndicatorServiceImpl {
	return &IndicatorServiceImpl{
		managerRepo: managerRepo,
		records:     records,
		attachments: attachments,
		sequences:   sequences,
		logger:      logger,
		now:         time.Now,
	}
}

// Submit validates, codes and records a new indicator.
func (s *IndicatorServiceImpl) Submit(ctx context.Context, req primary.SubmitIndicatorRequest) (*primary.SubmitIndicatorResponse, error) {
	log := s.logger.With("submission", uuid.NewString())

	manager, err := s.managerRepo.Get(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load manager: %w", err)
	}

	guard := indicator.CanSubmit(submitContext(req, manager))
	if !guard.Allowed {
		log.Infow("submission rejected", "reason", guard.Reason)
		return nil, apperr.Validation(guard.Reason, guard.Fields...)
	}

	for _, file := range []*primary.Attachment{req.MethodologyFile, req.RegulatoryFile} {
		if err := loadAttachment(file); err != nil {
			log.Infow("submission rejected", "reason", err)
			return nil, apperr.Validation(err.Error(), "attachments")
		}
	}

	typ, _ := indicator.CanonicalType(req.Type)
	periodicity, _ := indicator.CanonicalPeriodicity(req.Periodicity)
	disaggregation, _ := indicator.CanonicalOptions(indicator.DisaggregationLevels, req.Disaggregation)
	visualization, _ := indicator.CanonicalOptions(indicator.VisualizationChannels, req.Visualization)

	s.mu.Lock()
	defer s.mu.Unlock()

	newCode := s.allocateCode(ctx, log, typ, req.Category)
	log = log.With("code", newCode)

	var stored []string
	methodologyPath, err := s.storeAttachment(ctx, newCode, req.MethodologyFile, &stored)
	if err != nil {
		s.discard(ctx, log, newCode, stored)
		return nil, apperr.Persistence("could not store methodological reference", err)
	}
	regulatoryPath, err := s.storeAttachment(ctx, newCode, req.RegulatoryFile, &stored)
	if err != nil {
		s.discard(ctx, log, newCode, stored)
		return nil, apperr.Persistence("could not store regulatory reference", err)
	}

	stamp := s.now().Format(TimestampLayout)
	record := &secondary.IndicatorRecord{
		Code:              newCode,
		Type:              typ,
		Category:          strings.TrimSpace(req.Category),
		Name:              strings.TrimSpace(req.Name),
		Definition:        strings.TrimSpace(req.Definition),
		Periodicity:       periodicity,
		Unit:              strings.TrimSpace(req.Unit),
		Formula:           strings.TrimSpace(req.Formula),
		AvailabilityStart: strings.TrimSpace(req.AvailabilityStart),
		SourceCode:        strings.TrimSpace(req.SourceCode),
		SQLQuery:          strings.TrimSpace(req.SQLQuery),
		OracleSource:      strings.TrimSpace(req.OracleSource),
		Disaggregation:    disaggregation,
		Visualization:     visualization,
		MethodologyLink:   strings.TrimSpace(req.MethodologyLink),
		MethodologyFile:   methodologyPath,
		RegulatoryLink:    strings.TrimSpace(req.RegulatoryLink),
		RegulatoryFile:    regulatoryPath,
		Department:        manager.Department,
		Division:          manager.Division,
		Person:            manager.Person,
		CreatedAt:         stamp,
		UpdatedAt:         stamp,
	}

	if err := s.records.Append(ctx, record); err != nil {
		log.Errorw("record append failed", "error", err)
		s.discard(ctx, log, newCode, stored)
		return nil, apperr.Persistence(fmt.Sprintf("could not save record %s", newCode), err)
	}

	log.Infow("indicator recorded", "name", record.Name, "type", record.Type)

	return &primary.SubmitIndicatorResponse{
		Code:      newCode,
		Indicator: recordToIndicator(record),
	}, nil
}

// PreviewCode returns the code the next submission for type and category
// would receive if nothing else is submitted first.
func (s *IndicatorServiceImpl) PreviewCode(ctx context.Context, indicatorType, category string) (string, error) {
	prefix := code.Prefix(indicatorType, category)
	next := code.MaxSequence(prefix, s.scanCodes(ctx, s.logger)) + 1

	last, err := s.sequences.Peek(ctx, prefix)
	if err != nil {
		s.logger.Warnw("sequence counter unreadable, preview uses record scan only", "prefix", prefix, "error", err)
	} else if last+1 > next {
		next = last + 1
	}

	return code.FormatCode(prefix, next), nil
}

// ListIndicators returns recorded indicators, optionally limited to a code prefix.
// Records with a malformed code (e.g. typed into the workbook by hand) are
// listed anyway and logged.
func (s *IndicatorServiceImpl) ListIndicators(ctx context.Context, filters primary.IndicatorFilters) ([]*primary.Indicator, error) {
	records, err := s.records.ReadAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to read records: %w", err)
	}

	prefix := strings.ToUpper(strings.TrimSpace(filters.Prefix))
	indicators := make([]*primary.Indicator, 0, len(records))
	for _, r := range records {
		if prefix != "" && r.Code != prefix && !strings.HasPrefix(r.Code, prefix+".") {
			continue
		}
		if !code.IsValid(r.Code) {
			s.logger.Warnw("record has a malformed code", "code", r.Code, "name", r.Name)
		}
		indicators = append(indicators, recordToIndicator(r))
	}
	return indicators, nil
}

// allocateCode derives the next code for type and category.
//
// The record scan gives the floor (highest recorded sequence + 1); the
// sequence counter then hands out max(floor, last allocated + 1) atomically.
// Both reads fail open: an unreadable record store counts as empty and an
// unavailable counter falls back to the scan result.
func (s *IndicatorServiceImpl) allocateCode(ctx context.Context, log *zap.SugaredLogger, indicatorType, category string) string {
	prefix := code.Prefix(indicatorType, category)
	floor := code.MaxSequence(prefix, s.scanCodes(ctx, log)) + 1

	seq, err := s.sequences.Allocate(ctx, prefix, floor)
	if err != nil {
		log.Warnw("sequence counter unavailable, using record scan", "prefix", prefix, "error", err)
		seq = floor
	}

	return code.FormatCode(prefix, seq)
}

// scanCodes reads the codes already recorded, treating failures as "none".
func (s *IndicatorServiceImpl) scanCodes(ctx context.Context, log *zap.SugaredLogger) []string {
	codes, err := s.records.Codes(ctx)
	if err != nil {
		log.Warnw("record store unreadable, assuming no prior records", "error", err)
		return nil
	}
	return codes
}

// storeAttachment saves file under newCode and records the stored name in stored.
func (s *IndicatorServiceImpl) storeAttachment(ctx context.Context, newCode string, file *primary.Attachment, stored *[]string) (string, error) {
	if file == nil || file.Filename == "" {
		return "", nil
	}
	path, err := s.attachments.Store(ctx, newCode, file.Filename, file.Data)
	if err != nil {
		return "", err
	}
	if path != "" {
		*stored = append(*stored, filepath.Base(path))
	}
	return path, nil
}

// loadAttachment fills in Data through Load, if the content is not in memory yet.
func loadAttachment(file *primary.Attachment) error {
	if file == nil || file.Filename == "" || file.Data != nil || file.Load == nil {
		return nil
	}
	data, err := file.Load()
	if err != nil {
		return fmt.Errorf("could not read attachment %s: %w", file.Filename, err)
	}
	file.Data = data
	return nil
}

// discard removes the attachments this submission stored for a code whose
// record was not written. Files from other submissions are left alone.
func (s *IndicatorServiceImpl) discard(ctx context.Context, log *zap.SugaredLogger, newCode string, stored []string) {
	if len(stored) == 0 {
		return
	}
	if err := s.attachments.Discard(ctx, newCode, stored); err != nil {
		log.Warnw("could not remove orphaned attachments", "files", stored, "error", err)
	}
}

func submitContext(req primary.SubmitIndicatorRequest, manager *secondary.ManagerRecord) indicator.SubmitContext {
	ctx := indicator.SubmitContext{
		ManagerComplete:   manager != nil && coremanager.IsComplete(manager.Department, manager.Division, manager.Person),
		Type:              req.Type,
		Category:          req.Category,
		Name:              req.Name,
		Definition:        req.Definition,
		Periodicity:       req.Periodicity,
		Unit:              req.Unit,
		Formula:           req.Formula,
		AvailabilityStart: req.AvailabilityStart,
		SourceCode:        req.SourceCode,
		SQLQuery:          req.SQLQuery,
		OracleSource:      req.OracleSource,
		Disaggregation:    req.Disaggregation,
		Visualization:     req.Visualization,
	}
	for _, f := range []*primary.Attachment{req.MethodologyFile, req.RegulatoryFile} {
		if f != nil && f.Filename != "" {
			ctx.AttachmentNames = append(ctx.AttachmentNames, f.Filename)
		}
	}
	return ctx
}

func recordToIndicator(r *secondary.IndicatorRecord) *primary.Indicator {
	return &primary.Indicator{
		Code:              r.Code,
		Type:              r.Type,
		Category:          r.Category,
		Name:              r.Name,
		Definition:        r.Definition,
		Periodicity:       r.Periodicity,
		Unit:              r.Unit,
		Formula:           r.Formula,
		AvailabilityStart: r.AvailabilityStart,
		SourceCode:        r.SourceCode,
		SQLQuery:          r.SQLQuery,
		OracleSource:      r.OracleSource,
		Disaggregation:    r.Disaggregation,
		Visualization:     r.Visualization,
		MethodologyLink:   r.MethodologyLink,
		MethodologyFile:   r.MethodologyFile,
		RegulatoryLink:    r.RegulatoryLink,
		RegulatoryFile:    r.RegulatoryFile,
		Department:        r.Department,
		Division:          r.Division,
		Person:            r.Person,
		CreatedAt:         r.CreatedAt,
		UpdatedAt:         r.UpdatedAt,
	}
}

// Ensure IndicatorServiceImpl implements the interface.
var _ primary.IndicatorService = (*IndicatorServiceImpl)(nil)
