package application

import (
	"github.com/rebeccamsl/BTO-management-system-sub000/internal/core/domain"
)

// InitialStatus returns the status of a newly submitted application.
func InitialStatus() domain.ApplicationStatus {
	return domain.AppPending
}

// ApprovalResult captures the outcome of a manager approval attempt.
// Approval does not consume a unit - it only marks the application eligible
// to proceed to booking. When no units are available the application is
// auto-transitioned to UNSUCCESSFUL rather than left PENDING.
type ApprovalResult struct {
	NewStatus        domain.ApplicationStatus
	CapacityExceeded bool
}

// ApplyApproval decides the approval transition given the available unit
// count for the applied flat type.
func ApplyApproval(available int) ApprovalResult {
	if available <= 0 {
		return ApprovalResult{NewStatus: domain.AppUnsuccessful, CapacityExceeded: true}
	}
	return ApprovalResult{NewStatus: domain.AppSuccessful}
}

// BookingResult captures the fields set when an application becomes BOOKED.
type BookingResult struct {
	NewStatus      domain.ApplicationStatus
	BookedFlatType domain.FlatType
	BookingID      string
}

// ApplyBooking transitions a SUCCESSFUL application to BOOKED, recording the
// cross-references to the booking. BookedFlatType and BookingID are non-null
// iff the status is BOOKED.
func ApplyBooking(bookingID string, flatType domain.FlatType) BookingResult {
	return BookingResult{
		NewStatus:      domain.AppBooked,
		BookedFlatType: flatType,
		BookingID:      bookingID,
	}
}

// WithdrawalResult captures the compound effects of an approved withdrawal.
// For a BOOKED application the reserved unit is returned and the booking
// record removed; the whole set is one transition.
type WithdrawalResult struct {
	NewStatus     domain.ApplicationStatus
	ReturnUnit    bool
	RemoveBooking bool
}

// ApplyWithdrawal decides the withdrawal transition for the current status.
func ApplyWithdrawal(current domain.ApplicationStatus) WithdrawalResult {
	booked := current == domain.AppBooked
	return WithdrawalResult{
		NewStatus:     domain.AppWithdrawn,
		ReturnUnit:    booked,
		RemoveBooking: booked,
	}
}
