package app

import (
	"context"
	"errors"
	"path"

	"github.com/example/catalog/internal/ports/secondary"
)

// ============================================================================
// Mock Implementations
// ============================================================================

// mockManagerRepository implements secondary.ManagerRepository for testing.
type mockManagerRepository struct {
	manager     *secondary.ManagerRecord
	getErr      error
	upsertErr   error
	upsertCalls int
}

func (m *mockManagerRepository) Get(ctx context.Context) (*secondary.ManagerRecord, error) {
	if m.getErr != nil {
		return nil, m.getErr
	}
	if m.manager == nil {
		return nil, nil
	}
	copied := *m.manager
	return &copied, nil
}

func (m *mockManagerRepository) Upsert(ctx context.Context, manager *secondary.ManagerRecord) error {
	m.upsertCalls++
	if m.upsertErr != nil {
		return m.upsertErr
	}
	manager.UpdatedAt = "2024-03-01T10:00:00Z"
	copied := *manager
	m.manager = &copied
	return nil
}

// mockRecordStore implements secondary.RecordStore for testing.
type mockRecordStore struct {
	records     []*secondary.IndicatorRecord
	readErr     error
	appendErr   error
	readCalls   int
	appendCalls int
}

func newMockRecordStore(codes ...string) *mockRecordStore {
	m := &mockRecordStore{}
	for _, c := range codes {
		m.records = append(m.records, &secondary.IndicatorRecord{Code: c})
	}
	return m
}

func (m *mockRecordStore) ReadAll(ctx context.Context) ([]*secondary.IndicatorRecord, error) {
	m.readCalls++
	if m.readErr != nil {
		return nil, m.readErr
	}
	return m.records, nil
}

func (m *mockRecordStore) Codes(ctx context.Context) ([]string, error) {
	records, err := m.ReadAll(ctx)
	if err != nil {
		return nil, err
	}
	codes := make([]string, 0, len(records))
	for _, r := range records {
		codes = append(codes, r.Code)
	}
	return codes, nil
}

func (m *mockRecordStore) Append(ctx context.Context, record *secondary.IndicatorRecord) error {
	m.appendCalls++
	if m.appendErr != nil {
		return m.appendErr
	}
	m.records = append(m.records, record)
	return nil
}

// mockAttachmentStore implements secondary.AttachmentStore for testing.
type mockAttachmentStore struct {
	stored    map[string][]byte // path -> data
	storeErr  error
	failOn    string // filename whose Store fails
	discarded []string
	calls     int
}

func newMockAttachmentStore() *mockAttachmentStore {
	return &mockAttachmentStore{stored: make(map[string][]byte)}
}

func (m *mockAttachmentStore) Store(ctx context.Context, code, filename string, data []byte) (string, error) {
	m.calls++
	if m.storeErr != nil {
		return "", m.storeErr
	}
	if m.failOn != "" && filename == m.failOn {
		return "", errors.New("write failed")
	}
	if filename == "" {
		return "", nil
	}
	p := path.Join("uploads", code, filename)
	m.stored[p] = data
	return p, nil
}

func (m *mockAttachmentStore) Discard(ctx context.Context, code string, filenames []string) error {
	m.calls++
	for _, name := range filenames {
		p := path.Join("uploads", code, name)
		delete(m.stored, p)
		m.discarded = append(m.discarded, p)
	}
	return nil
}

// mockSequenceAllocator implements secondary.SequenceAllocator for testing.
type mockSequenceAllocator struct {
	last     map[string]int
	allocErr error
	peekErr  error
	calls    int
}

func newMockSequenceAllocator() *mockSequenceAllocator {
	return &mockSequenceAllocator{last: make(map[string]int)}
}

func (m *mockSequenceAllocator) Allocate(ctx context.Context, prefix string, floor int) (int, error) {
	m.calls++
	if m.allocErr != nil {
		return 0, m.allocErr
	}
	next := m.last[prefix] + 1
	if floor > next {
		next = floor
	}
	m.last[prefix] = next
	return next, nil
}

func (m *mockSequenceAllocator) Peek(ctx context.Context, prefix string) (int, error) {
	if m.peekErr != nil {
		return 0, m.peekErr
	}
	return m.last[prefix], nil
}

// mockDictionaryLoader implements secondary.DictionaryLoader for testing.
type mockDictionaryLoader struct {
	entries map[string]string
}

func (m *mockDictionaryLoader) Load(ctx context.Context) (map[string]string, error) {
	if m.entries == nil {
		return nil, errors.New("open dictionary.json: no such file or directory")
	}
	return m.entries, nil
}
