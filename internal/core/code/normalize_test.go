package code

import (
	"regexp"
	"strings"
	"testing"
)

func TestNormalize(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{name: "empty", input: "", want: "NA"},
		{name: "only punctuation", input: "***", want: "NA"},
		{name: "only whitespace", input: "   \t\n", want: "NA"},
		{name: "non latin script", input: "日本語", want: "NA"},
		{name: "plain word", input: "cartera", want: "CARTERA"},
		{name: "accents stripped", input: "División", want: "DIVISION"},
		{name: "space becomes dot", input: "División Riesgo", want: "DIVISION.RIESGO"},
		{name: "runs collapse", input: "a -- b__c", want: "A.B.C"},
		{name: "leading and trailing separators", input: "  ¿Qué? ", want: "QUE"},
		{name: "digits kept", input: "Tasa 2024", want: "TASA.2024"},
		{name: "enye folds", input: "Año", want: "ANO"},
		{name: "mixed script drops non ascii", input: "ab日本cd", want: "ABCD"},
		{name: "compatibility ligature", input: "ﬁnanzas", want: "FINANZAS"},
		{name: "truncated to fifteen", input: "Crédito de consumo hipotecario", want: "CREDITO.DE.CONS"},
		{name: "truncation drops dangling dot", input: "ABCDEFGHIJKLMN OP", want: "ABCDEFGHIJKLMN"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Normalize(tt.input)
			if got != tt.want {
				t.Errorf("Normalize(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestNormalize_OutputShape(t *testing.T) {
	shape := regexp.MustCompile(`^[A-Z0-9.]*$`)
	inputs := []string{
		"", ".", "..a..", "Ünïcödé", "Ωmega 99", "tab\tsep", "emoji 🚀 rocket",
		"   leading", "trailing   ", "a.b.c.d.e.f.g.h.i.j.k.l.m", "ÀÁÂÃÄÅ ÈÉÊË",
		strings.Repeat("x ", 40), "Cartera de créditos comerciales",
	}

	for _, in := range inputs {
		got := Normalize(in)
		if !shape.MatchString(got) {
			t.Errorf("Normalize(%q) = %q, contains characters outside [A-Z0-9.]", in, got)
		}
		if strings.HasPrefix(got, ".") || strings.HasSuffix(got, ".") {
			t.Errorf("Normalize(%q) = %q, has leading or trailing dot", in, got)
		}
		if len(got) > MaxSlugLength {
			t.Errorf("Normalize(%q) = %q, longer than %d", in, got, MaxSlugLength)
		}
		if got == "" {
			t.Errorf("Normalize(%q) returned empty string", in)
		}
	}
}
