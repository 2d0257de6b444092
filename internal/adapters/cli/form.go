package cli

import (
	"errors"
	"fmt"
	"io"

	"gopkg.in/yaml.v3"
)

// Form is the indicator form as filled in on the command line or in a YAML
// file. Attachment fields hold local file paths.
type Form struct {
	Type              string `yaml:"type"`
	Category          string `yaml:"category"`
	Name              string `yaml:"name"`
	Definition        string `yaml:"definition"`
	Periodicity       string `yaml:"periodicity"`
	Unit              string `yaml:"unit"`
	Formula           string `yaml:"formula"`
	AvailabilityStart string `yaml:"availability_start"`

	SourceCode   string `yaml:"source_code"`
	SQLQuery     string `yaml:"sql_query"`
	OracleSource string `yaml:"oracle_source"`

	Disaggregation []string `yaml:"disaggregation"`
	Visualization  []string `yaml:"visualization"`

	MethodologyLink string `yaml:"methodology_link"`
	MethodologyFile string `yaml:"methodology_file"`
	RegulatoryLink  string `yaml:"regulatory_link"`
	RegulatoryFile  string `yaml:"regulatory_file"`
}

// ParseForm decodes a YAML form. Unknown keys are rejected so a misspelled
// field does not silently go missing. An empty document yields an empty form.
func ParseForm(r io.Reader) (*Form, error) {
	form := &Form{}
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(form); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("failed to parse form: %w", err)
	}
	return form, nil
}

// Merge overlays the non-empty fields of override onto f.
func (f *Form) Merge(override Form) {
	mergeString(&f.Type, override.Type)
	mergeString(&f.Category, override.Category)
	mergeString(&f.Name, override.Name)
	mergeString(&f.Definition, override.Definition)
	mergeString(&f.Periodicity, override.Periodicity)
	mergeString(&f.Unit, override.Unit)
	mergeString(&f.Formula, override.Formula)
	mergeString(&f.AvailabilityStart, override.AvailabilityStart)
	mergeString(&f.SourceCode, override.SourceCode)
	mergeString(&f.SQLQuery, override.SQLQuery)
	mergeString(&f.OracleSource, override.OracleSource)
	mergeString(&f.MethodologyLink, override.MethodologyLink)
	mergeString(&f.MethodologyFile, override.MethodologyFile)
	mergeString(&f.RegulatoryLink, override.RegulatoryLink)
	mergeString(&f.RegulatoryFile, override.RegulatoryFile)
	if len(override.Disaggregation) > 0 {
		f.Disaggregation = override.Disaggregation
	}
	if len(override.Visualization) > 0 {
		f.Visualization = override.Visualization
	}
}

func mergeString(dst *string, value string) {
	if value != "" {
		*dst = value
	}
}
