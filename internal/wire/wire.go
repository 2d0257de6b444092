// Package wire provides dependency injection for the catalog application.
// It creates singleton services with lazy initialization.
package wire

import (
	"context"
	"database/sql"
	"fmt"
	"io"
	"sync"

	"go.uber.org/zap"

	cliadapter "github.com/example/catalog/internal/adapters/cli"
	"github.com/example/catalog/internal/adapters/filesystem"
	"github.com/example/catalog/internal/adapters/sqlite"
	"github.com/example/catalog/internal/adapters/xlsx"
	"github.com/example/catalog/internal/app"
	"github.com/example/catalog/internal/config"
	"github.com/example/catalog/internal/db"
	"github.com/example/catalog/internal/logging"
	"github.com/example/catalog/internal/ports/primary"
)

var (
	logger            *zap.SugaredLogger
	database          *sql.DB
	managerService    primary.ManagerService
	indicatorService  primary.IndicatorService
	dictionaryService primary.DictionaryService
	initErr           error
	once              sync.Once
)

// ManagerService returns the singleton ManagerService instance.
func ManagerService() (primary.ManagerService, error) {
	once.Do(initServices)
	return managerService, initErr
}

// IndicatorService returns the singleton IndicatorService instance.
func IndicatorService() (primary.IndicatorService, error) {
	once.Do(initServices)
	return indicatorService, initErr
}

// DictionaryService returns the singleton DictionaryService instance.
func DictionaryService() (primary.DictionaryService, error) {
	once.Do(initServices)
	return dictionaryService, initErr
}

// initServices initializes all services and their dependencies.
// This is called once via sync.Once.
func initServices() {
	cfg, err := config.Load()
	if err != nil {
		initErr = err
		return
	}

	logger, err = logging.New(cfg.Debug, cfg.LogLevel)
	if err != nil {
		initErr = err
		return
	}

	database, err = db.Open(cfg.DBPath)
	if err != nil {
		initErr = fmt.Errorf("failed to initialize database: %w", err)
		return
	}

	// Secondary adapters
	managerRepo := sqlite.NewManagerRepository(database)
	sequenceRepo := sqlite.NewSequenceRepository(database)
	recordStore := xlsx.NewRecordStore(cfg.RecordsPath())
	attachmentStore := filesystem.NewAttachmentStore(cfg.UploadDir)
	dictionaryLoader := filesystem.NewDictionaryLoader(cfg.DictPath)

	// Services (primary ports implementation)
	managerService = app.NewManagerService(managerRepo, logger)
	indicatorService = app.NewIndicatorService(managerRepo, recordStore, attachmentStore, sequenceRepo, logger)
	dictionaryService = app.LoadDictionaryService(context.Background(), dictionaryLoader, logger)

	logger.Debugw("catalog initialized",
		"db", cfg.DBPath,
		"records", cfg.RecordsPath(),
		"uploads", cfg.UploadDir,
		"dictionary", cfg.DictPath,
	)
}

// Shutdown flushes the logger and closes the database, if they were opened.
func Shutdown() {
	if logger != nil {
		_ = logger.Sync()
	}
	if database != nil {
		_ = database.Close()
	}
}

// IndicatorAdapterWithOutput returns a new IndicatorAdapter writing to out.
// Each call creates a new adapter (adapters are stateless translators).
func IndicatorAdapterWithOutput(out io.Writer) (*cliadapter.IndicatorAdapter, error) {
	service, err := IndicatorService()
	if err != nil {
		return nil, err
	}
	return cliadapter.NewIndicatorAdapter(service, out), nil
}

// ManagerAdapterWithOutput returns a new ManagerAdapter writing to the given output.
func ManagerAdapterWithOutput(out io.Writer) (*cliadapter.ManagerAdapter, error) {
	service, err := ManagerService()
	if err != nil {
		return nil, err
	}
	return cliadapter.NewManagerAdapter(service, out), nil
}

// DictionaryAdapterWithOutput returns a new DictionaryAdapter writing to the given output.
func DictionaryAdapterWithOutput(out io.Writer) (*cliadapter.DictionaryAdapter, error) {
	service, err := DictionaryService()
	if err != nil {
		return nil, err
	}
	return cliadapter.NewDictionaryAdapter(service, out), nil
}
