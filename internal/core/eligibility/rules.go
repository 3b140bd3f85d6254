// Package eligibility contains the pure applicant eligibility rules.
// This is part of the functional core - no I/O, only pure functions.
package eligibility

import (
	"github.com/rebeccamsl/BTO-management-system-sub000/internal/core/domain"
)

// Minimum ages per marital status.
const (
	MinAgeSingle  = 35
	MinAgeMarried = 21
)

// ApplicantEligible reports whether an applicant may apply for the given
// flat type. Singles must be 35 or older and may only take a two-room flat;
// married applicants must be 21 or older and may take two- or three-room.
// All other combinations are ineligible.
func ApplicantEligible(age int, status domain.MaritalStatus, flatType domain.FlatType) bool {
	switch status {
	case domain.Single:
		return age >= MinAgeSingle && flatType == domain.TwoRoom
	case domain.Married:
		return age >= MinAgeMarried && (flatType == domain.TwoRoom || flatType == domain.ThreeRoom)
	}
	return false
}

// EligibleFlatTypes returns the flat types the applicant may apply for,
// in a stable order. Empty when the applicant is not eligible for any.
func EligibleFlatTypes(age int, status domain.MaritalStatus) []domain.FlatType {
	var types []domain.FlatType
	for _, ft := range []domain.FlatType{domain.TwoRoom, domain.ThreeRoom} {
		if ApplicantEligible(age, status, ft) {
			types = append(types, ft)
		}
	}
	return types
}

// CheckApplicant evaluates applicant eligibility as a guard.
func CheckApplicant(age int, status domain.MaritalStatus, flatType domain.FlatType) domain.GuardResult {
	if !ApplicantEligible(age, status, flatType) {
		return domain.Deny(domain.KindValidationFailed,
			"applicant (age %d, %s) is not eligible for flat type %s", age, status, flatType)
	}
	return domain.Allow()
}
