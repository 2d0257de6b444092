package filesystem

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/example/catalog/internal/ports/secondary"
)

// DictionaryLoader implements secondary.DictionaryLoader for a JSON object file.
type DictionaryLoader struct {
	path string
}

// NewDictionaryLoader creates a loader for the dictionary at path.
func NewDictionaryLoader(path string) *DictionaryLoader {
	return &DictionaryLoader{path: path}
}

// Load reads the dictionary. The file must hold a single JSON object whose
// values are strings.
func (l *DictionaryLoader) Load(ctx context.Context) (map[string]string, error) {
	data, err := os.ReadFile(l.path)
	if err != nil {
		return nil, fmt.Errorf("failed to read dictionary: %w", err)
	}

	entries := map[string]string{}
	if err := json.Unmarshal(data, &entries); err != nil {
		return nil, fmt.Errorf("failed to parse dictionary %s: %w", l.path, err)
	}

	return entries, nil
}

// Ensure DictionaryLoader implements the interface
var _ secondary.DictionaryLoader = (*DictionaryLoader)(nil)
