// Package app implements the primary ports. Services orchestrate the pure
// core rules against the repository ports: guards are evaluated before any
// write, so a failing operation leaves every entity unchanged.
package app

import (
	"time"

	"github.com/rebeccamsl/BTO-management-system-sub000/internal/core/domain"
	"github.com/rebeccamsl/BTO-management-system-sub000/internal/core/inventory"
	"github.com/rebeccamsl/BTO-management-system-sub000/internal/ports/secondary"
)

const dateLayout = "2006-01-02"

func parseDate(s string) (time.Time, error) {
	return time.Parse(dateLayout, s)
}

func nowTimestamp() string {
	return time.Now().Format(time.RFC3339)
}

// today truncates the clock to date precision so application windows compare
// inclusively on calendar days.
func today() time.Time {
	y, m, d := time.Now().Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// ledgerOf builds the core inventory ledger from a project record's unit
// counters.
func ledgerOf(p *secondary.ProjectRecord) inventory.Ledger {
	ledger := make(inventory.Ledger, len(p.Units))
	for _, u := range p.Units {
		ledger[domain.FlatType(u.FlatType)] = inventory.UnitCount{
			Total:     u.Total,
			Available: u.Available,
		}
	}
	return ledger
}

// offeredTypes returns the flat types a project offers (total units > 0),
// preserving the record's unit order.
func offeredTypes(p *secondary.ProjectRecord) []domain.FlatType {
	var types []domain.FlatType
	for _, u := range p.Units {
		if u.Total > 0 {
			types = append(types, domain.FlatType(u.FlatType))
		}
	}
	return types
}

func officerAssigned(p *secondary.ProjectRecord, nric string) bool {
	for _, officer := range p.Officers {
		if officer == nric {
			return true
		}
	}
	return false
}
