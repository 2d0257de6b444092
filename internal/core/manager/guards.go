// Package manager contains the pure business logic for the catalog manager.
package manager

import (
	"fmt"
	"strings"
)

// GuardResult represents the outcome of a guard evaluation.
type GuardResult struct {
	Allowed bool
	Reason  string
	Fields  []string
}

// SaveManagerContext provides context for manager save guards.
type SaveManagerContext struct {
	Department string
	Division   string
	Person     string
}

// IsComplete reports whether all manager fields are filled in.
func IsComplete(department, division, person string) bool {
	return CanSaveManager(SaveManagerContext{
		Department: department,
		Division:   division,
		Person:     person,
	}).Allowed
}

// CanSaveManager evaluates whether a manager can be saved.
// Rules:
// - Department, division and person are all required
func CanSaveManager(ctx SaveManagerContext) GuardResult {
	var missing []string
	if strings.TrimSpace(ctx.Department) == "" {
		missing = append(missing, "department")
	}
	if strings.TrimSpace(ctx.Division) == "" {
		missing = append(missing, "division")
	}
	if strings.TrimSpace(ctx.Person) == "" {
		missing = append(missing, "person")
	}

	if len(missing) > 0 {
		return GuardResult{
			Allowed: false,
			Reason:  fmt.Sprintf("all manager fields are required (missing: %s)", strings.Join(missing, ", ")),
			Fields:  missing,
		}
	}

	return GuardResult{Allowed: true}
}
