// Package cli provides thin CLI adapters that translate between CLI concerns
// and application services. Adapters handle argument parsing, output formatting,
// but delegate business logic to services.
package cli

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/fatih/color"

	"github.com/example/catalog/internal/ports/primary"
)

// IndicatorAdapter is a thin adapter that translates CLI operations to IndicatorService calls.
type IndicatorAdapter struct {
	service  primary.IndicatorService
	out      io.Writer
	readFile func(string) ([]byte, error)
}

// NewIndicatorAdapter creates a new IndicatorAdapter with the given service.
func NewIndicatorAdapter(service primary.IndicatorService, out io.Writer) *IndicatorAdapter {
	return &IndicatorAdapter{
		service:  service,
		out:      out,
		readFile: os.ReadFile,
	}
}

// Add submits a filled-in form and reports the assigned code.
func (a *IndicatorAdapter) Add(ctx context.Context, form Form) (*primary.SubmitIndicatorResponse, error) {
	resp, err := a.service.Submit(ctx, primary.SubmitIndicatorRequest{
		Type:              form.Type,
		Category:          form.Category,
		Name:              form.Name,
		Definition:        form.Definition,
		Periodicity:       form.Periodicity,
		Unit:              form.Unit,
		Formula:           form.Formula,
		AvailabilityStart: form.AvailabilityStart,
		SourceCode:        form.SourceCode,
		SQLQuery:          form.SQLQuery,
		OracleSource:      form.OracleSource,
		Disaggregation:    form.Disaggregation,
		Visualization:     form.Visualization,
		MethodologyLink:   form.MethodologyLink,
		MethodologyFile:   a.attachment(form.MethodologyFile),
		RegulatoryLink:    form.RegulatoryLink,
		RegulatoryFile:    a.attachment(form.RegulatoryFile),
	})
	if err != nil {
		return nil, err
	}

	fmt.Fprintf(a.out, "✓ Recorded indicator %s: %s\n", color.New(color.FgGreen).Sprint(resp.Code), resp.Indicator.Name)
	if resp.Indicator.MethodologyFile != "" {
		fmt.Fprintf(a.out, "  Methodology: %s\n", resp.Indicator.MethodologyFile)
	}
	if resp.Indicator.RegulatoryFile != "" {
		fmt.Fprintf(a.out, "  Regulatory:  %s\n", resp.Indicator.RegulatoryFile)
	}
	return resp, nil
}

// NextCode prints the code the next submission for type and category would get.
func (a *IndicatorAdapter) NextCode(ctx context.Context, indicatorType, category string) error {
	next, err := a.service.PreviewCode(ctx, indicatorType, category)
	if err != nil {
		return fmt.Errorf("failed to preview code: %w", err)
	}

	fmt.Fprintf(a.out, "Next code: %s\n", color.New(color.FgGreen).Sprint(next))
	return nil
}

// List lists recorded indicators with an optional code prefix filter.
func (a *IndicatorAdapter) List(ctx context.Context, prefix string) error {
	indicators, err := a.service.ListIndicators(ctx, primary.IndicatorFilters{Prefix: prefix})
	if err != nil {
		return fmt.Errorf("failed to list indicators: %w", err)
	}

	if len(indicators) == 0 {
		fmt.Fprintln(a.out, "No indicators found")
		return nil
	}

	fmt.Fprintf(a.out, "\n%-20s %-20s %-12s %s\n", "CODE", "TYPE", "PERIODICITY", "NAME")
	fmt.Fprintln(a.out, "────────────────────────────────────────────────────────────────")
	for _, i := range indicators {
		fmt.Fprintf(a.out, "%-20s %-20s %-12s %s\n", i.Code, i.Type, i.Periodicity, i.Name)
	}
	fmt.Fprintln(a.out)

	return nil
}

// attachment refers to a local file; the service reads it after validation.
func (a *IndicatorAdapter) attachment(path string) *primary.Attachment {
	if path == "" {
		return nil
	}
	return &primary.Attachment{
		Filename: filepath.Base(path),
		Load:     func() ([]byte, error) { return a.readFile(path) },
	}
}
