// Package secondary defines the secondary ports (driven adapters) for the application.
// These are the interfaces through which the application drives external systems.
package secondary

import "context"

// ManagerRepository defines the secondary port for the singleton manager.
type ManagerRepository interface {
	// Get retrieves the manager. Returns nil, nil if none has been saved yet.
	Get(ctx context.Context) (*ManagerRecord, error)

	// Upsert creates or replaces the manager and stamps UpdatedAt.
	Upsert(ctx context.Context, manager *ManagerRecord) error
}

// ManagerRecord represents the manager as stored in persistence.
type ManagerRecord struct {
	Department string
	Division   string
	Person     string
	UpdatedAt  string // RFC3339; set by Upsert
}

// RecordStore defines the secondary port for the append-only indicator table.
type RecordStore interface {
	// ReadAll returns every stored indicator in insertion order.
	// A store that does not exist yet yields an empty slice.
	ReadAll(ctx context.Context) ([]*IndicatorRecord, error)

	// Codes returns the codes of every stored indicator.
	Codes(ctx context.Context) ([]string, error)

	// Append adds one indicator, creating the store if needed.
	Append(ctx context.Context, record *IndicatorRecord) error
}

// IndicatorRecord represents one catalogued indicator as stored in persistence.
type IndicatorRecord struct {
	Code              string
	Type              string
	Category          string
	Name              string
	Definition        string
	Periodicity       string
	Unit              string
	Formula           string
	AvailabilityStart string
	SourceCode        string
	SQLQuery          string
	OracleSource      string
	Disaggregation    []string
	Visualization     []string
	MethodologyLink   string
	MethodologyFile   string // stored path, empty if none
	RegulatoryLink    string
	RegulatoryFile    string // stored path, empty if none
	Department        string
	Division          string
	Person            string
	CreatedAt         string
	UpdatedAt         string
}

// AttachmentStore defines the secondary port for reference documents.
type AttachmentStore interface {
	// Store saves data under the code's folder and returns the stored path.
	// An empty filename stores nothing and returns "".
	Store(ctx context.Context, code, filename string, data []byte) (string, error)

	// Discard removes the named files stored for code, and the code's folder
	// once it is empty.
	Discard(ctx context.Context, code string, filenames []string) error
}

// SequenceAllocator defines the secondary port for per-prefix code counters.
type SequenceAllocator interface {
	// Allocate atomically reserves the next sequence for prefix. The result is
	// never below floor and always above any value previously allocated.
	Allocate(ctx context.Context, prefix string, floor int) (int, error)

	// Peek returns the last sequence allocated for prefix, or 0.
	Peek(ctx context.Context, prefix string) (int, error)
}

// DictionaryLoader defines the secondary port for the help dictionary.
type DictionaryLoader interface {
	// Load returns the dictionary entries (key -> help text).
	Load(ctx context.Context) (map[string]string, error)
}
