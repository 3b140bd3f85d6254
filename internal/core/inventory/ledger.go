// Package inventory contains the pure unit-inventory ledger logic.
// The ledger is the single admission-control point preventing overbooking:
// a booking may only proceed when Decrement succeeds.
package inventory

import (
	"github.com/rebeccamsl/BTO-management-system-sub000/internal/core/domain"
)

// UnitCount holds the total and available unit counters for one flat type
// within a project. Invariant: 0 <= Available <= Total.
type UnitCount struct {
	Total     int
	Available int
}

// Ledger is the per-project unit inventory, keyed by flat type.
type Ledger map[domain.FlatType]UnitCount

// Offers reports whether the project offers the flat type at all
// (total units > 0).
func (l Ledger) Offers(ft domain.FlatType) bool {
	return l[ft].Total > 0
}

// Available returns the available unit count for the flat type.
func (l Ledger) Available(ft domain.FlatType) int {
	return l[ft].Available
}

// Decrement consumes one available unit of the flat type. Returns true and
// mutates the ledger iff a unit is available; otherwise returns false with
// no mutation.
func (l Ledger) Decrement(ft domain.FlatType) bool {
	c := l[ft]
	if c.Available <= 0 {
		return false
	}
	c.Available--
	l[ft] = c
	return true
}

// Increment returns one unit of the flat type to the pool, clamped at the
// total. Returns false when the counter was already at the total - the
// invariant is enforced here rather than trusted to the caller, and the
// caller should log the anomaly.
func (l Ledger) Increment(ft domain.FlatType) bool {
	c := l[ft]
	if c.Available >= c.Total {
		return false
	}
	c.Available++
	l[ft] = c
	return true
}

// Clone returns an independent copy of the ledger. Services clone before
// mutating so a failed operation leaves the loaded record untouched.
func (l Ledger) Clone() Ledger {
	out := make(Ledger, len(l))
	for ft, c := range l {
		out[ft] = c
	}
	return out
}
