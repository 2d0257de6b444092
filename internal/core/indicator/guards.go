package indicator

import (
	"fmt"
	"path/filepath"
	"strings"
)

// GuardResult represents the outcome of a guard evaluation.
type GuardResult struct {
	Allowed bool
	Reason  string
	Fields  []string // offending fields, in form order
}

// SubmitContext provides context for indicator submission guards.
type SubmitContext struct {
	ManagerComplete bool

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

	AttachmentNames []string // file names of supplied reference documents
}

// CanSubmit evaluates whether an indicator can be recorded.
// Rules:
// - Manager must be saved with all fields
// - Every descriptive field is required
// - At least one provenance field is required
// - Type, periodicity and multi-valued fields must come from the option lists
// - Attachments must be PDF or Word documents with distinct file names
func CanSubmit(ctx SubmitContext) GuardResult {
	// Rule 1: Manager first
	if !ctx.ManagerComplete {
		return GuardResult{
			Allowed: false,
			Reason:  "manager is not set: save department, division and person first (catalog manager set)",
		}
	}

	// Rule 2: Required descriptive fields
	required := []struct {
		field string
		value string
	}{
		{"name", ctx.Name},
		{"type", ctx.Type},
		{"category", ctx.Category},
		{"definition", ctx.Definition},
		{"periodicity", ctx.Periodicity},
		{"unit", ctx.Unit},
		{"formula", ctx.Formula},
		{"availability_start", ctx.AvailabilityStart},
	}
	var missing []string
	for _, r := range required {
		if strings.TrimSpace(r.value) == "" {
			missing = append(missing, r.field)
		}
	}
	if len(missing) > 0 {
		return GuardResult{
			Allowed: false,
			Reason:  fmt.Sprintf("missing required fields: %s", strings.Join(missing, ", ")),
			Fields:  missing,
		}
	}

	// Rule 3: Provenance
	if isBlank(ctx.SourceCode) && isBlank(ctx.SQLQuery) && isBlank(ctx.OracleSource) {
		return GuardResult{
			Allowed: false,
			Reason:  "at least one of source code, SQL query or Oracle source is required",
			Fields:  []string{"source_code", "sql_query", "oracle_source"},
		}
	}

	// Rule 4: Enumerations
	if _, ok := CanonicalType(ctx.Type); !ok {
		return GuardResult{
			Allowed: false,
			Reason:  fmt.Sprintf("unknown type %q (expected one of: %s)", ctx.Type, strings.Join(Types, ", ")),
			Fields:  []string{"type"},
		}
	}
	if _, ok := CanonicalPeriodicity(ctx.Periodicity); !ok {
		return GuardResult{
			Allowed: false,
			Reason:  fmt.Sprintf("unknown periodicity %q (expected one of: %s)", ctx.Periodicity, strings.Join(Periodicities, ", ")),
			Fields:  []string{"periodicity"},
		}
	}
	if _, unknown := CanonicalOptions(DisaggregationLevels, ctx.Disaggregation); len(unknown) > 0 {
		return GuardResult{
			Allowed: false,
			Reason:  fmt.Sprintf("unknown disaggregation levels: %s", strings.Join(unknown, ", ")),
			Fields:  []string{"disaggregation"},
		}
	}
	if _, unknown := CanonicalOptions(VisualizationChannels, ctx.Visualization); len(unknown) > 0 {
		return GuardResult{
			Allowed: false,
			Reason:  fmt.Sprintf("unknown visualization channels: %s", strings.Join(unknown, ", ")),
			Fields:  []string{"visualization"},
		}
	}

	// Rule 5: Attachments
	seen := make(map[string]bool)
	for _, name := range ctx.AttachmentNames {
		if !IsAllowedAttachment(name) {
			return GuardResult{
				Allowed: false,
				Reason:  fmt.Sprintf("attachment %s must be one of: %s", name, strings.Join(AttachmentExtensions, ", ")),
				Fields:  []string{"attachments"},
			}
		}
		// Attachments share the code's folder, so names must differ.
		base := strings.ToLower(filepath.Base(filepath.Clean(name)))
		if seen[base] {
			return GuardResult{
				Allowed: false,
				Reason:  fmt.Sprintf("attachments must have different file names (%s is used twice)", filepath.Base(name)),
				Fields:  []string{"attachments"},
			}
		}
		seen[base] = true
	}

	return GuardResult{Allowed: true}
}

func isBlank(s string) bool {
	return strings.TrimSpace(s) == ""
}
