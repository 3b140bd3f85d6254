// Package registration contains the pure business rules for officer
// registrations - the rules that decide whether an officer may register to
// handle a project and whether a manager may approve the registration.
package registration

import (
	"time"

	"github.com/rebeccamsl/BTO-management-system-sub000/internal/core/domain"
)

// Window is a project's application window. Both bounds are inclusive.
type Window struct {
	Open  time.Time
	Close time.Time
}

// Overlaps reports whether two windows overlap, bounds inclusive.
func (w Window) Overlaps(other Window) bool {
	return !w.Open.After(other.Close) && !w.Close.Before(other.Open)
}

// HeldRegistration describes an officer's existing registration on another
// project, used for the overlap check.
type HeldRegistration struct {
	ProjectID string
	Status    domain.RegistrationStatus
	Window    Window
}

// EligibilityContext provides the context for the officer registration
// eligibility guard. Populated by the caller with pre-fetched state.
type EligibilityContext struct {
	OfficerNRIC          string
	ProjectID            string
	ProjectWindow        Window
	HasApplicationOnSame bool // officer has a housing application on the target project
	AlreadyRegistered    bool // officer already has a registration for the target project
	Held                 []HeldRegistration
}

// CanRegister evaluates whether the officer may register to handle the
// target project. Rules: no housing application on the same project; no
// duplicate registration; no APPROVED or PENDING registration for another
// project whose window overlaps the target window.
func CanRegister(ctx EligibilityContext) domain.GuardResult {
	if ctx.HasApplicationOnSame {
		return domain.Deny(domain.KindValidationFailed,
			"officer %s has a housing application for project %s and cannot handle it", ctx.OfficerNRIC, ctx.ProjectID)
	}
	if ctx.AlreadyRegistered {
		return domain.Deny(domain.KindConflict,
			"officer %s already has a registration for project %s", ctx.OfficerNRIC, ctx.ProjectID)
	}
	for _, held := range ctx.Held {
		if held.ProjectID == ctx.ProjectID {
			continue
		}
		if held.Status != domain.RegApproved && held.Status != domain.RegPending {
			continue
		}
		if ctx.ProjectWindow.Overlaps(held.Window) {
			return domain.Deny(domain.KindValidationFailed,
				"officer %s holds a %s registration for project %s whose application period overlaps",
				ctx.OfficerNRIC, held.Status, held.ProjectID)
		}
	}
	return domain.Allow()
}

// ApprovalContext provides the context for the manager's registration
// decision guard.
type ApprovalContext struct {
	RegistrationID string
	Status         domain.RegistrationStatus
	ManagerNRIC    string
	AuthorityNRIC  string
	OfficerCount   int // approved officers currently on the project
	OfficerSlots   int // project's slot capacity
	Approving      bool
}

// CanDecide evaluates whether a manager may approve or reject a
// registration. Approval additionally requires a free officer slot.
func CanDecide(ctx ApprovalContext) domain.GuardResult {
	if ctx.ManagerNRIC != ctx.AuthorityNRIC {
		return domain.Deny(domain.KindPermissionDenied,
			"manager %s is not the managing authority for registration %s's project", ctx.ManagerNRIC, ctx.RegistrationID)
	}
	if ctx.Status != domain.RegPending {
		return domain.Deny(domain.KindInvalidState,
			"registration %s is %s, only PENDING registrations can be decided", ctx.RegistrationID, ctx.Status)
	}
	if ctx.Approving && ctx.OfficerCount >= ctx.OfficerSlots {
		return domain.Deny(domain.KindCapacityExceeded,
			"project has no free officer slots (%d of %d used)", ctx.OfficerCount, ctx.OfficerSlots)
	}
	return domain.Allow()
}
