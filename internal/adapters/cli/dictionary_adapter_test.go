package cli

import (
	"bytes"
	"strings"
	"testing"

	"github.com/example/catalog/internal/ports/primary"
)

func TestDisplayKey(t *testing.T) {
	tests := []struct {
		key  string
		want string
	}{
		{"tipo", "tipo"},
		{"fuente.query_sql", "fuente → query_sql"},
		{"a.b.c", "a → b → c"},
	}

	for _, tt := range tests {
		if got := DisplayKey(tt.key); got != tt.want {
			t.Errorf("DisplayKey(%q) = %q, want %q", tt.key, got, tt.want)
		}
	}
}

func TestDictionaryAdapter_Search(t *testing.T) {
	service := &mockDictionaryService{entries: []primary.DictionaryEntry{
		{Key: "fuente.query_sql", Text: "Consulta SQL de origen."},
	}}
	var out bytes.Buffer
	NewDictionaryAdapter(service, &out).Search("sql")

	if !strings.Contains(out.String(), "fuente → query_sql") || !strings.Contains(out.String(), "Consulta SQL de origen.") {
		t.Errorf("unexpected output: %s", out.String())
	}
}

func TestDictionaryAdapter_Search_Empty(t *testing.T) {
	var out bytes.Buffer
	NewDictionaryAdapter(&mockDictionaryService{}, &out).Search("x")

	if !strings.Contains(out.String(), "No dictionary entries found") {
		t.Errorf("unexpected output: %s", out.String())
	}
}

func TestDictionaryAdapter_Show(t *testing.T) {
	service := &mockDictionaryService{entries: []primary.DictionaryEntry{{Key: "tipo", Text: "Clase de indicador."}}}
	var out bytes.Buffer
	adapter := NewDictionaryAdapter(service, &out)

	if err := adapter.Show("tipo"); err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if !strings.Contains(out.String(), "Clase de indicador.") {
		t.Errorf("unexpected output: %s", out.String())
	}
	if err := adapter.Show("missing"); err == nil {
		t.Error("expected error for unknown key")
	}
}
