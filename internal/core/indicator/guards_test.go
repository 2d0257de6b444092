package indicator

import (
	"reflect"
	"testing"
)

func validContext() SubmitContext {
	return SubmitContext{
		ManagerComplete:   true,
		Type:              "Serie",
		Category:          "Cartera",
		Name:              "Cartera vencida",
		Definition:        "Saldo de cartera con mora mayor a 90 días",
		Periodicity:       "Mensual",
		Unit:              "Millones",
		Formula:           "SUM(saldo)",
		AvailabilityStart: "2015-01",
		SQLQuery:          "queries/cartera.sql",
	}
}

func TestCanSubmit(t *testing.T) {
	tests := []struct {
		name        string
		mutate      func(*SubmitContext)
		wantAllowed bool
		wantReason  string
		wantFields  []string
	}{
		{
			name:        "complete submission",
			mutate:      func(*SubmitContext) {},
			wantAllowed: true,
		},
		{
			name:        "manager missing",
			mutate:      func(c *SubmitContext) { c.ManagerComplete = false },
			wantAllowed: false,
			wantReason:  "manager is not set: save department, division and person first (catalog manager set)",
		},
		{
			name: "manager checked before fields",
			mutate: func(c *SubmitContext) {
				c.ManagerComplete = false
				c.Name = ""
			},
			wantAllowed: false,
			wantReason:  "manager is not set: save department, division and person first (catalog manager set)",
		},
		{
			name: "missing descriptive fields listed in order",
			mutate: func(c *SubmitContext) {
				c.Name = ""
				c.Unit = "   "
				c.AvailabilityStart = ""
			},
			wantAllowed: false,
			wantReason:  "missing required fields: name, unit, availability_start",
			wantFields:  []string{"name", "unit", "availability_start"},
		},
		{
			name: "all provenance empty",
			mutate: func(c *SubmitContext) {
				c.SQLQuery = ""
			},
			wantAllowed: false,
			wantReason:  "at least one of source code, SQL query or Oracle source is required",
			wantFields:  []string{"source_code", "sql_query", "oracle_source"},
		},
		{
			name: "oracle source alone is enough",
			mutate: func(c *SubmitContext) {
				c.SQLQuery = ""
				c.OracleSource = "DWH.V_CARTERA"
			},
			wantAllowed: true,
		},
		{
			name:        "english type accepted",
			mutate:      func(c *SubmitContext) { c.Type = "composite indicator" },
			wantAllowed: true,
		},
		{
			name:        "unknown type",
			mutate:      func(c *SubmitContext) { c.Type = "Ratio" },
			wantAllowed: false,
			wantReason:  `unknown type "Ratio" (expected one of: Serie, Indicador simple, Indicador compuesto, Modelado, Otro)`,
			wantFields:  []string{"type"},
		},
		{
			name:        "unknown periodicity",
			mutate:      func(c *SubmitContext) { c.Periodicity = "Horaria" },
			wantAllowed: false,
			wantReason:  `unknown periodicity "Horaria" (expected one of: Mensual, Trimestral, Anual, Diaria, Semanal, Otro)`,
			wantFields:  []string{"periodicity"},
		},
		{
			name: "known multi-values",
			mutate: func(c *SubmitContext) {
				c.Disaggregation = []string{"moneda", "Región"}
				c.Visualization = []string{"Power BI"}
			},
			wantAllowed: true,
		},
		{
			name:        "unknown disaggregation",
			mutate:      func(c *SubmitContext) { c.Disaggregation = []string{"Moneda", "Planeta"} },
			wantAllowed: false,
			wantReason:  "unknown disaggregation levels: Planeta",
			wantFields:  []string{"disaggregation"},
		},
		{
			name:        "unknown visualization",
			mutate:      func(c *SubmitContext) { c.Visualization = []string{"Tableau"} },
			wantAllowed: false,
			wantReason:  "unknown visualization channels: Tableau",
			wantFields:  []string{"visualization"},
		},
		{
			name:        "accepted attachments",
			mutate:      func(c *SubmitContext) { c.AttachmentNames = []string{"metodologia.PDF", "norma.docx"} },
			wantAllowed: true,
		},
		{
			name:        "rejected attachment",
			mutate:      func(c *SubmitContext) { c.AttachmentNames = []string{"datos.xlsx"} },
			wantAllowed: false,
			wantReason:  "attachment datos.xlsx must be one of: .pdf, .doc, .docx",
			wantFields:  []string{"attachments"},
		},
		{
			name:        "same attachment name twice",
			mutate:      func(c *SubmitContext) { c.AttachmentNames = []string{"docs/x.pdf", "otros/X.PDF"} },
			wantAllowed: false,
			wantReason:  "attachments must have different file names (X.PDF is used twice)",
			wantFields:  []string{"attachments"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctx := validContext()
			tt.mutate(&ctx)

			result := CanSubmit(ctx)
			if result.Allowed != tt.wantAllowed {
				t.Errorf("Allowed = %v, want %v (reason: %s)", result.Allowed, tt.wantAllowed, result.Reason)
			}
			if !tt.wantAllowed && result.Reason != tt.wantReason {
				t.Errorf("Reason = %q, want %q", result.Reason, tt.wantReason)
			}
			if tt.wantFields != nil && !reflect.DeepEqual(result.Fields, tt.wantFields) {
				t.Errorf("Fields = %v, want %v", result.Fields, tt.wantFields)
			}
		})
	}
}

func TestCanonicalOptions(t *testing.T) {
	matched, unknown := CanonicalOptions(VisualizationChannels, []string{"power bi", "Dash", "", "Dash", "Excel"})

	if want := []string{"Power BI", "Dash"}; !reflect.DeepEqual(matched, want) {
		t.Errorf("matched = %v, want %v", matched, want)
	}
	if want := []string{"Excel"}; !reflect.DeepEqual(unknown, want) {
		t.Errorf("unknown = %v, want %v", unknown, want)
	}
}

func TestCanonicalType(t *testing.T) {
	tests := []struct {
		input  string
		want   string
		wantOK bool
	}{
		{"Serie", "Serie", true},
		{"series", "Serie", true},
		{"INDICADOR SIMPLE", "Indicador simple", true},
		{"Modeled", "Modelado", true},
		{"", "", false},
		{"Ratio", "", false},
	}

	for _, tt := range tests {
		got, ok := CanonicalType(tt.input)
		if got != tt.want || ok != tt.wantOK {
			t.Errorf("CanonicalType(%q) = (%q, %v), want (%q, %v)", tt.input, got, ok, tt.want, tt.wantOK)
		}
	}
}
