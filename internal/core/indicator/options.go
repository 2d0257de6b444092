// Package indicator contains the pure business logic for indicator submissions.
// Guards are pure functions that evaluate preconditions without side effects.
package indicator

import (
	"path/filepath"
	"strings"
)

// Types lists the indicator types offered by the form, in display order.
var Types = []string{"Serie", "Indicador simple", "Indicador compuesto", "Modelado", "Otro"}

// typeAliases accepts the English names alongside the form labels.
var typeAliases = map[string]string{
	"series":              "Serie",
	"simple indicator":    "Indicador simple",
	"composite indicator": "Indicador compuesto",
	"modeled":             "Modelado",
	"other":               "Otro",
}

// Periodicities lists the accepted publication frequencies.
var Periodicities = []string{"Mensual", "Trimestral", "Anual", "Diaria", "Semanal", "Otro"}

// DisaggregationLevels lists the accepted disaggregation options.
var DisaggregationLevels = []string{"Entidad financiera", "Tipo de cartera", "Sector económico", "Moneda", "Región", "Otro"}

// VisualizationChannels lists the accepted visualization options.
var VisualizationChannels = []string{"SIMBAD", "Dash", "Power BI", "Informe PDF", "Portal web", "Presentación ejecutiva", "Otro"}

// AttachmentExtensions lists the file extensions accepted for reference documents.
var AttachmentExtensions = []string{".pdf", ".doc", ".docx"}

// CanonicalType returns the form label for an indicator type, matching
// case-insensitively and accepting English names. ok is false if unknown.
func CanonicalType(s string) (string, bool) {
	return canonical(Types, s, typeAliases)
}

// CanonicalPeriodicity returns the option label for a periodicity.
func CanonicalPeriodicity(s string) (string, bool) {
	return canonical(Periodicities, s, nil)
}

// CanonicalOptions maps each value onto its option label, dropping blanks and
// duplicates. unknown holds the values that matched no option.
func CanonicalOptions(options, values []string) (matched, unknown []string) {
	seen := make(map[string]bool)
	for _, v := range values {
		if strings.TrimSpace(v) == "" {
			continue
		}
		c, ok := canonical(options, v, nil)
		if !ok {
			unknown = append(unknown, v)
			continue
		}
		if !seen[c] {
			seen[c] = true
			matched = append(matched, c)
		}
	}
	return matched, unknown
}

// IsAllowedAttachment reports whether a file name has an accepted extension.
func IsAllowedAttachment(filename string) bool {
	ext := strings.ToLower(filepath.Ext(filename))
	for _, allowed := range AttachmentExtensions {
		if ext == allowed {
			return true
		}
	}
	return false
}

func canonical(options []string, s string, aliases map[string]string) (string, bool) {
	s = strings.TrimSpace(s)
	for _, opt := range options {
		if strings.EqualFold(opt, s) {
			return opt, true
		}
	}
	if c, ok := aliases[strings.ToLower(s)]; ok {
		return c, true
	}
	return "", false
}
