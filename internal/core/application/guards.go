// Package application contains the pure business rules of the housing
// application state machine. This is part of the functional core - no I/O,
// only pure functions. Services evaluate these guards before mutating
// anything, so a disallowed operation never leaves partial writes.
package application

import (
	"time"

	"github.com/rebeccamsl/BTO-management-system-sub000/internal/core/domain"
	"github.com/rebeccamsl/BTO-management-system-sub000/internal/core/eligibility"
)

// SubmitContext provides the context for application submission guards.
// Populated by the caller with pre-fetched state.
type SubmitContext struct {
	ApplicantNRIC       string
	ProjectID           string
	FlatType            domain.FlatType
	ActiveApplicationID string // empty when the applicant has no active application
	Now                 time.Time
	OpenDate            time.Time
	CloseDate           time.Time
	OffersFlatType      bool // project has total units > 0 for FlatType
	ApplicantAge        int
	MaritalStatus       domain.MaritalStatus
}

// CanSubmit evaluates whether a new application may be created.
// Rules: at most one active application per applicant; the project must be
// inside its application window (inclusive); the applicant must be eligible
// for the flat type; the project must offer the flat type. Available units
// are NOT checked here - capacity surfaces at approval, not submission.
func CanSubmit(ctx SubmitContext) domain.GuardResult {
	if ctx.ActiveApplicationID != "" {
		return domain.Deny(domain.KindConflict,
			"applicant %s already has an active application %s", ctx.ApplicantNRIC, ctx.ActiveApplicationID)
	}
	if ctx.Now.Before(ctx.OpenDate) || ctx.Now.After(ctx.CloseDate) {
		return domain.Deny(domain.KindValidationFailed,
			"project %s is not open for applications (window %s to %s)",
			ctx.ProjectID, ctx.OpenDate.Format("2006-01-02"), ctx.CloseDate.Format("2006-01-02"))
	}
	if !eligibility.ApplicantEligible(ctx.ApplicantAge, ctx.MaritalStatus, ctx.FlatType) {
		return domain.Deny(domain.KindValidationFailed,
			"applicant (age %d, %s) is not eligible for flat type %s",
			ctx.ApplicantAge, ctx.MaritalStatus, ctx.FlatType)
	}
	if !ctx.OffersFlatType {
		return domain.Deny(domain.KindValidationFailed,
			"project %s does not offer flat type %s", ctx.ProjectID, ctx.FlatType)
	}
	return domain.Allow()
}

// DecisionContext provides the context for manager approve/reject guards.
type DecisionContext struct {
	ApplicationID string
	Status        domain.ApplicationStatus
	ManagerNRIC   string // caller
	AuthorityNRIC string // the project's managing authority
}

// CanDecide evaluates whether a manager may approve or reject an application.
// Rules: only the project's managing authority decides; only PENDING
// applications can be decided.
func CanDecide(ctx DecisionContext) domain.GuardResult {
	if ctx.ManagerNRIC != ctx.AuthorityNRIC {
		return domain.Deny(domain.KindPermissionDenied,
			"manager %s is not the managing authority of application %s's project", ctx.ManagerNRIC, ctx.ApplicationID)
	}
	if ctx.Status != domain.AppPending {
		return domain.Deny(domain.KindInvalidState,
			"application %s is %s, only PENDING applications can be decided", ctx.ApplicationID, ctx.Status)
	}
	return domain.Allow()
}

// WithdrawalRequestContext provides the context for an applicant's
// withdrawal-request guard.
type WithdrawalRequestContext struct {
	ApplicationID    string
	ApplicantNRIC    string // owner on record
	CallerNRIC       string
	Status           domain.ApplicationStatus
	AlreadyRequested bool
}

// CanRequestWithdrawal evaluates whether an applicant may flag an
// application for withdrawal.
func CanRequestWithdrawal(ctx WithdrawalRequestContext) domain.GuardResult {
	if ctx.CallerNRIC != ctx.ApplicantNRIC {
		return domain.Deny(domain.KindPermissionDenied,
			"application %s does not belong to %s", ctx.ApplicationID, ctx.CallerNRIC)
	}
	if ctx.Status == domain.AppWithdrawn {
		return domain.Deny(domain.KindInvalidState,
			"application %s is already withdrawn", ctx.ApplicationID)
	}
	if ctx.AlreadyRequested {
		return domain.Deny(domain.KindConflict,
			"withdrawal already requested for application %s", ctx.ApplicationID)
	}
	return domain.Allow()
}

// WithdrawalDecisionContext provides the context for manager
// approve/reject-withdrawal guards.
type WithdrawalDecisionContext struct {
	ApplicationID string
	ManagerNRIC   string
	AuthorityNRIC string
	FlagSet       bool
}

// CanDecideWithdrawal evaluates whether a manager may resolve a withdrawal
// request. Rules: ownership, and the request flag must be set.
func CanDecideWithdrawal(ctx WithdrawalDecisionContext) domain.GuardResult {
	if ctx.ManagerNRIC != ctx.AuthorityNRIC {
		return domain.Deny(domain.KindPermissionDenied,
			"manager %s is not the managing authority of application %s's project", ctx.ManagerNRIC, ctx.ApplicationID)
	}
	if !ctx.FlagSet {
		return domain.Deny(domain.KindInvalidState,
			"application %s has no pending withdrawal request", ctx.ApplicationID)
	}
	return domain.Allow()
}
