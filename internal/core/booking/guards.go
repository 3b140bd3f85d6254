// Package booking contains the pure business rules of the flat booking
// workflow. Booking converts a SUCCESSFUL application into a BOOKED one;
// the inventory decrement itself is the only step allowed to fail after
// these guards pass.
package booking

import (
	"github.com/rebeccamsl/BTO-management-system-sub000/internal/core/domain"
)

// CreateContext provides the context for the booking creation guard.
type CreateContext struct {
	ApplicationID     string
	ApplicationStatus domain.ApplicationStatus
	OfficerNRIC       string
	OfficerAssigned   bool // officer is in the project's assigned list
	ChosenFlatType    domain.FlatType
	OffersChosenType  bool // project has total units > 0 for the chosen type
	ApplicantAge      int
	MaritalStatus     domain.MaritalStatus
	ApplicantEligible bool // applicant eligible for the chosen type
}

// CanCreate evaluates whether a booking may be created. Rules: the
// application must be SUCCESSFUL; the booking officer must be assigned to
// the project; the project must offer the chosen flat type; the applicant
// must be eligible for the chosen type (it may differ from the applied one).
func CanCreate(ctx CreateContext) domain.GuardResult {
	if ctx.ApplicationStatus != domain.AppSuccessful {
		return domain.Deny(domain.KindInvalidState,
			"application %s is %s, only SUCCESSFUL applications can be booked", ctx.ApplicationID, ctx.ApplicationStatus)
	}
	if !ctx.OfficerAssigned {
		return domain.Deny(domain.KindPermissionDenied,
			"officer %s is not assigned to application %s's project", ctx.OfficerNRIC, ctx.ApplicationID)
	}
	if !ctx.OffersChosenType {
		return domain.Deny(domain.KindValidationFailed,
			"project does not offer flat type %s", ctx.ChosenFlatType)
	}
	if !ctx.ApplicantEligible {
		return domain.Deny(domain.KindValidationFailed,
			"applicant (age %d, %s) is not eligible for flat type %s",
			ctx.ApplicantAge, ctx.MaritalStatus, ctx.ChosenFlatType)
	}
	return domain.Allow()
}
