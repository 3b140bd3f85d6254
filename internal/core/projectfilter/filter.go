// Package projectfilter contains the generic attribute-filter evaluation
// shared by project listings and booking reports. Filtering is a pure,
// order-preserving predicate narrowing - never a sort.
package projectfilter

import (
	"fmt"
	"strings"

	"github.com/rebeccamsl/BTO-management-system-sub000/internal/core/domain"
)

// Recognized criteria keys. "location" is an accepted alias for
// "neighborhood".
const (
	KeyNeighborhood = "neighborhood"
	KeyLocation     = "location"
	KeyFlatType     = "flatType"
)

// View is the minimal projection of a project the filter engine needs.
type View struct {
	ID           string
	Neighborhood string
	OfferedTypes []domain.FlatType // flat types with total units > 0
}

// Predicate reports whether a project view matches one compiled criterion.
type Predicate func(View) bool

// compile turns raw criteria into individual predicates. Unknown keys are
// skipped and reported as warnings, not errors; blank values are ignored.
func compile(criteria map[string]string) ([]Predicate, []string) {
	var checks []Predicate
	var warnings []string

	for key, value := range criteria {
		value = strings.TrimSpace(value)
		if value == "" {
			continue
		}
		switch key {
		case KeyNeighborhood, KeyLocation:
			want := value
			checks = append(checks, func(v View) bool {
				return strings.EqualFold(v.Neighborhood, want)
			})
		case KeyFlatType:
			ft, err := domain.ParseFlatType(value)
			if err != nil {
				warnings = append(warnings, fmt.Sprintf("ignoring flatType criterion: %v", err))
				continue
			}
			checks = append(checks, func(v View) bool {
				for _, offered := range v.OfferedTypes {
					if offered == ft {
						return true
					}
				}
				return false
			})
		default:
			warnings = append(warnings, fmt.Sprintf("ignoring unknown filter key %q", key))
		}
	}

	return checks, warnings
}

// Filter narrows views to those matching the criteria, preserving input
// order. The input slice is returned unmodified when no effective criteria
// are supplied.
func Filter(views []View, criteria map[string]string) ([]View, []string) {
	checks, warnings := compile(criteria)
	if len(checks) == 0 {
		return views, warnings
	}

	var out []View
	for _, v := range views {
		matched := true
		for _, check := range checks {
			if !check(v) {
				matched = false
				break
			}
		}
		if matched {
			out = append(out, v)
		}
	}
	return out, warnings
}
