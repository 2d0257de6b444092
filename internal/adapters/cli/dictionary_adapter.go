package cli

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"

	"github.com/example/catalog/internal/ports/primary"
)

// DictionaryAdapter prints help dictionary entries.
type DictionaryAdapter struct {
	service primary.DictionaryService
	out     io.Writer
}

// NewDictionaryAdapter creates a new DictionaryAdapter with the given service.
func NewDictionaryAdapter(service primary.DictionaryService, out io.Writer) *DictionaryAdapter {
	return &DictionaryAdapter{
		service: service,
		out:     out,
	}
}

// Search prints the entries matching query.
func (a *DictionaryAdapter) Search(query string) {
	entries := a.service.Search(query)
	if len(entries) == 0 {
		fmt.Fprintln(a.out, "No dictionary entries found")
		return
	}

	for _, e := range entries {
		fmt.Fprintln(a.out, color.New(color.FgCyan).Sprint(DisplayKey(e.Key)))
		fmt.Fprintf(a.out, "    %s\n", e.Text)
	}
}

// Show prints the help text for key.
func (a *DictionaryAdapter) Show(key string) error {
	text, ok := a.service.Tip(key)
	if !ok {
		return fmt.Errorf("no dictionary entry for %q", key)
	}

	fmt.Fprintln(a.out, color.New(color.FgCyan).Sprint(DisplayKey(key)))
	fmt.Fprintf(a.out, "    %s\n", text)
	return nil
}

// DisplayKey renders a dotted dictionary key as a path ("a.b" -> "a → b").
func DisplayKey(key string) string {
	return strings.ReplaceAll(key, ".", " → ")
}
