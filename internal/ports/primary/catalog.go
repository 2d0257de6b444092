// Package primary defines the primary ports (driving adapters) for the application.
package primary

import "context"

// ManagerService defines the primary port for manager operations.
type ManagerService interface {
	// GetManager returns the saved manager, or nil if none is set.
	GetManager(ctx context.Context) (*Manager, error)

	// SaveManager creates or replaces the manager.
	SaveManager(ctx context.Context, req SaveManagerRequest) (*Manager, error)
}

// SaveManagerRequest contains parameters for saving the manager.
type SaveManagerRequest struct {
	Department string
	Division   string
	Person     string
}

// Manager represents the catalog manager at the port boundary.
type Manager struct {
	Department string
	Division   string
	Person     string
	UpdatedAt  string
}

// IndicatorService defines the primary port for indicator operations.
type IndicatorService interface {
	// Submit validates, codes and records a new indicator.
	Submit(ctx context.Context, req SubmitIndicatorRequest) (*SubmitIndicatorResponse, error)

	// PreviewCode returns the code the next submission would likely receive.
	PreviewCode(ctx context.Context, indicatorType, category string) (string, error)

	// ListIndicators returns recorded indicators matching the filters.
	ListIndicators(ctx context.Context, filters IndicatorFilters) ([]*Indicator, error)
}

// Attachment is an uploaded reference document.
type Attachment struct {
	Filename string
	Data     []byte

	// Load reads the content when Data is nil. It is called only once the
	// submission has passed validation.
	Load func() ([]byte, error)
}

// SubmitIndicatorRequest contains the filled-in indicator form.
type SubmitIndicatorRequest struct {
	Type              string
	Category          string
	Name              string
	Definition        string
	Periodicity       string
	Unit              string
	Formula           string
	AvailabilityStart string

	SourceCode   string
	SQLQuery     string
	OracleSource string

	Disaggregation []string
	Visualization  []string

	MethodologyLink string
	MethodologyFile *Attachment // optional
	RegulatoryLink  string
	RegulatoryFile  *Attachment // optional
}

// SubmitIndicatorResponse contains the result of a submission.
type SubmitIndicatorResponse struct {
	Code      string
	Indicator *Indicator
}

// IndicatorFilters contains filter options for listing indicators.
type IndicatorFilters struct {
	Prefix string // code prefix, e.g. "SER" or "SER.CARTER"
}

// Indicator represents a recorded indicator at the port boundary.
type Indicator struct {
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
	MethodologyFile   string
	RegulatoryLink    string
	RegulatoryFile    string
	Department        string
	Division          string
	Person            string
	CreatedAt         string
	UpdatedAt         string
}

// DictionaryService defines the primary port for help dictionary lookups.
type DictionaryService interface {
	// Search returns entries whose key or text contains query, sorted by key.
	// An empty query returns every entry.
	Search(query string) []DictionaryEntry

	// Tip returns the help text for a key.
	Tip(key string) (string, bool)
}

// DictionaryEntry is one help dictionary item.
type DictionaryEntry struct {
	Key  string
	Text string
}
