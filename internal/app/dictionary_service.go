package app

import (
	"context"
	"sort"
	"strings"

	"go.uber.org/zap"

	"github.com/example/catalog/internal/ports/primary"
	"github.com/example/catalog/internal/ports/secondary"
)

// DictionaryServiceImpl implements the DictionaryService interface over a
// dictionary loaded once at startup.
type DictionaryServiceImpl struct {
	entries map[string]string
	keys    []string // sorted
}

// NewDictionaryService creates a DictionaryService over the given entries.
func NewDictionaryService(entries map[string]string) *DictionaryServiceImpl {
	keys := make([]string, 0, len(entries))
	for k := range entries {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	return &DictionaryServiceImpl{entries: entries, keys: keys}
}

// LoadDictionaryService loads the dictionary through loader. A missing or
// unreadable dictionary yields an empty one; help text is optional.
func LoadDictionaryService(ctx context.Context, loader secondary.DictionaryLoader, logger *zap.SugaredLogger) *DictionaryServiceImpl {
	entries, err := loader.Load(ctx)
	if err != nil {
		logger.Debugw("dictionary not loaded", "error", err)
		entries = map[string]string{}
	}
	return NewDictionaryService(entries)
}

// Search returns entries whose key or text contains query (case-insensitive).
func (s *DictionaryServiceImpl) Search(query string) []primary.DictionaryEntry {
	q := strings.ToLower(strings.TrimSpace(query))

	var result []primary.DictionaryEntry
	for _, k := range s.keys {
		text := s.entries[k]
		if q == "" || strings.Contains(strings.ToLower(k), q) || strings.Contains(strings.ToLower(text), q) {
			result = append(result, primary.DictionaryEntry{Key: k, Text: text})
		}
	}
	return result
}

// Tip returns the help text for key.
func (s *DictionaryServiceImpl) Tip(key string) (string, bool) {
	text, ok := s.entries[key]
	return text, ok
}

// Ensure DictionaryServiceImpl implements the interface.
var _ primary.DictionaryService = (*DictionaryServiceImpl)(nil)
