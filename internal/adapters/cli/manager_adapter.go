package cli

import (
	"context"
	"fmt"
	"io"

	"github.com/fatih/color"

	"github.com/example/catalog/internal/ports/primary"
)

// ManagerAdapter is a thin adapter that translates CLI operations to ManagerService calls.
type ManagerAdapter struct {
	service primary.ManagerService
	out     io.Writer
}

// NewManagerAdapter creates a new ManagerAdapter with the given service.
func NewManagerAdapter(service primary.ManagerService, out io.Writer) *ManagerAdapter {
	return &ManagerAdapter{
		service: service,
		out:     out,
	}
}

// Set saves the manager.
func (a *ManagerAdapter) Set(ctx context.Context, department, division, person string) error {
	manager, err := a.service.SaveManager(ctx, primary.SaveManagerRequest{
		Department: department,
		Division:   division,
		Person:     person,
	})
	if err != nil {
		return err
	}

	fmt.Fprintf(a.out, "✓ Manager saved: %s (%s / %s)\n", manager.Person, manager.Department, manager.Division)
	return nil
}

// Show displays the saved manager.
func (a *ManagerAdapter) Show(ctx context.Context) (*primary.Manager, error) {
	manager, err := a.service.GetManager(ctx)
	if err != nil {
		return nil, err
	}

	if manager == nil {
		fmt.Fprintln(a.out, "No manager set")
		fmt.Fprintln(a.out, color.New(color.FgYellow).Sprint("Hint: catalog manager set --department D --division V --person P"))
		return nil, nil
	}

	fmt.Fprintf(a.out, "Department: %s\n", manager.Department)
	fmt.Fprintf(a.out, "Division:   %s\n", manager.Division)
	fmt.Fprintf(a.out, "Person:     %s\n", manager.Person)
	if manager.UpdatedAt != "" {
		fmt.Fprintf(a.out, "Updated:    %s\n", manager.UpdatedAt)
	}
	return manager, nil
}
