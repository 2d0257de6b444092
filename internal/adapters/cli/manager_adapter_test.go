package cli

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/example/catalog/internal/apperr"
	"github.com/example/catalog/internal/ports/primary"
)

func TestManagerAdapter_Set(t *testing.T) {
	service := &mockManagerService{}
	var out bytes.Buffer
	adapter := NewManagerAdapter(service, &out)

	if err := adapter.Set(context.Background(), "Estudios", "Riesgos", "Ana"); err != nil {
		t.Fatalf("expected no error, got %v", err)
	}

	if service.lastSaveReq != (primary.SaveManagerRequest{Department: "Estudios", Division: "Riesgos", Person: "Ana"}) {
		t.Errorf("unexpected request: %+v", service.lastSaveReq)
	}
	if !strings.Contains(out.String(), "✓ Manager saved: Ana (Estudios / Riesgos)") {
		t.Errorf("unexpected output: %s", out.String())
	}
}

func TestManagerAdapter_Set_Rejected(t *testing.T) {
	service := &mockManagerService{saveErr: apperr.Validation("all manager fields are required (missing: person)", "person")}
	var out bytes.Buffer
	adapter := NewManagerAdapter(service, &out)

	err := adapter.Set(context.Background(), "Estudios", "Riesgos", "")
	if !apperr.IsValidation(err) {
		t.Fatalf("expected validation error, got %v", err)
	}
	if out.Len() != 0 {
		t.Errorf("expected no output, got: %s", out.String())
	}
}

func TestManagerAdapter_Show(t *testing.T) {
	t.Run("not set", func(t *testing.T) {
		var out bytes.Buffer
		adapter := NewManagerAdapter(&mockManagerService{}, &out)

		got, err := adapter.Show(context.Background())
		if err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
		if got != nil {
			t.Errorf("expected nil manager, got %+v", got)
		}
		if !strings.Contains(out.String(), "No manager set") {
			t.Errorf("unexpected output: %s", out.String())
		}
	})

	t.Run("set", func(t *testing.T) {
		var out bytes.Buffer
		service := &mockManagerService{manager: &primary.Manager{Department: "Estudios", Division: "Riesgos", Person: "Ana", UpdatedAt: "2024-03-01T10:00:00Z"}}
		adapter := NewManagerAdapter(service, &out)

		if _, err := adapter.Show(context.Background()); err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
		for _, want := range []string{"Department: Estudios", "Division:   Riesgos", "Person:     Ana", "2024-03-01T10:00:00Z"} {
			if !strings.Contains(out.String(), want) {
				t.Errorf("expected output to contain %q, got: %s", want, out.String())
			}
		}
	})
}
