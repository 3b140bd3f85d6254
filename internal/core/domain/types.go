// Package domain holds the shared value types of the BTO domain.
// It sits at the bottom of the core - no I/O, no dependencies on other
// internal packages.
package domain

import (
	"fmt"
	"strings"
)

// FlatType represents a housing unit category with independent inventory.
type FlatType string

const (
	TwoRoom   FlatType = "TWO_ROOM"
	ThreeRoom FlatType = "THREE_ROOM"
)

// ParseFlatType parses a user-supplied flat type string.
// Accepts a few common spellings ("2-room", "2room", "two_room").
func ParseFlatType(s string) (FlatType, error) {
	switch strings.ToUpper(strings.NewReplacer("-", "_", " ", "_").Replace(strings.TrimSpace(s))) {
	case "TWO_ROOM", "2_ROOM", "2ROOM":
		return TwoRoom, nil
	case "THREE_ROOM", "3_ROOM", "3ROOM":
		return ThreeRoom, nil
	}
	return "", fmt.Errorf("unknown flat type %q", s)
}

// MaritalStatus is the applicant's marital status used by eligibility rules.
type MaritalStatus string

const (
	Single  MaritalStatus = "SINGLE"
	Married MaritalStatus = "MARRIED"
)

// ParseMaritalStatus parses a user-supplied marital status string.
func ParseMaritalStatus(s string) (MaritalStatus, error) {
	switch strings.ToUpper(strings.TrimSpace(s)) {
	case "SINGLE":
		return Single, nil
	case "MARRIED":
		return Married, nil
	}
	return "", fmt.Errorf("unknown marital status %q", s)
}

// Role tags a user record. A single User type carries the role rather than
// a subtype hierarchy; role-specific behavior lives in the services.
type Role string

const (
	RoleApplicant Role = "APPLICANT"
	RoleOfficer   Role = "OFFICER"
	RoleManager   Role = "MANAGER"
)

// ApplicationStatus represents the state of a housing application.
type ApplicationStatus string

const (
	AppPending      ApplicationStatus = "PENDING"
	AppSuccessful   ApplicationStatus = "SUCCESSFUL"
	AppUnsuccessful ApplicationStatus = "UNSUCCESSFUL"
	AppBooked       ApplicationStatus = "BOOKED"
	AppWithdrawn    ApplicationStatus = "WITHDRAWN"
)

// Active reports whether the status counts toward the one-active-application
// rule. UNSUCCESSFUL and WITHDRAWN are terminal.
func (s ApplicationStatus) Active() bool {
	return s == AppPending || s == AppSuccessful || s == AppBooked
}

// Terminal reports whether no further transitions are permitted.
func (s ApplicationStatus) Terminal() bool {
	return s == AppUnsuccessful || s == AppWithdrawn
}

// RegistrationStatus represents the state of an officer's registration to
// handle a project.
type RegistrationStatus string

const (
	RegPending  RegistrationStatus = "PENDING"
	RegApproved RegistrationStatus = "APPROVED"
	RegRejected RegistrationStatus = "REJECTED"
)
