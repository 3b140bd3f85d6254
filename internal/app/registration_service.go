package app

import (
	"context"
	"fmt"
	"log"

	"github.com/rebeccamsl/BTO-management-system-sub000/internal/core/domain"
	"github.com/rebeccamsl/BTO-management-system-sub000/internal/core/registration"
	"github.com/rebeccamsl/BTO-management-system-sub000/internal/ports/primary"
	"github.com/rebeccamsl/BTO-management-system-sub000/internal/ports/secondary"
)

// RegistrationServiceImpl implements the RegistrationService interface.
type RegistrationServiceImpl struct {
	regRepo     secondary.RegistrationRepository
	projectRepo secondary.ProjectRepository
	appRepo     secondary.ApplicationRepository
	userRepo    secondary.UserRepository
}

// NewRegistrationService creates a new RegistrationService with injected
// dependencies.
func NewRegistrationService(
	regRepo secondary.RegistrationRepository,
	projectRepo secondary.ProjectRepository,
	appRepo secondary.ApplicationRepository,
	userRepo secondary.UserRepository,
) *RegistrationServiceImpl {
	return &RegistrationServiceImpl{
		regRepo:     regRepo,
		projectRepo: projectRepo,
		appRepo:     appRepo,
		userRepo:    userRepo,
	}
}

// Register creates a PENDING registration for the officer to handle the
// project.
func (s *RegistrationServiceImpl) Register(ctx context.Context, req primary.RegisterRequest) (*primary.RegisterResponse, error) {
	officer, err := s.userRepo.GetByNRIC(ctx, req.OfficerNRIC)
	if err != nil {
		return nil, err
	}
	if officer.Role != string(domain.RoleOfficer) {
		return nil, domain.NewError(domain.KindPermissionDenied,
			"user %s is not an officer", req.OfficerNRIC)
	}

	project, err := s.projectRepo.GetByID(ctx, req.ProjectID)
	if err != nil {
		return nil, err
	}
	window, err := windowOf(project)
	if err != nil {
		return nil, err
	}

	applications, err := s.appRepo.ListByApplicant(ctx, req.OfficerNRIC)
	if err != nil {
		return nil, fmt.Errorf("failed to list applications: %w", err)
	}
	hasAppOnSame := false
	for _, a := range applications {
		if a.ProjectID == req.ProjectID {
			hasAppOnSame = true
			break
		}
	}

	exists, err := s.regRepo.ExistsForOfficerProject(ctx, req.OfficerNRIC, req.ProjectID)
	if err != nil {
		return nil, fmt.Errorf("failed to check existing registration: %w", err)
	}

	held, err := s.heldRegistrations(ctx, req.OfficerNRIC)
	if err != nil {
		return nil, err
	}

	guardCtx := registration.EligibilityContext{
		OfficerNRIC:          req.OfficerNRIC,
		ProjectID:            req.ProjectID,
		ProjectWindow:        window,
		HasApplicationOnSame: hasAppOnSame,
		AlreadyRegistered:    exists,
		Held:                 held,
	}
	if result := registration.CanRegister(guardCtx); !result.Allowed {
		return nil, result.Err()
	}

	nextID, err := s.regRepo.GetNextID(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to generate registration ID: %w", err)
	}

	record := &secondary.RegistrationRecord{
		ID:          nextID,
		OfficerNRIC: req.OfficerNRIC,
		ProjectID:   req.ProjectID,
		Status:      string(domain.RegPending),
	}
	if err := s.regRepo.Create(ctx, record); err != nil {
		return nil, fmt.Errorf("failed to create registration: %w", err)
	}

	return &primary.RegisterResponse{
		RegistrationID: record.ID,
		Registration:   recordToRegistration(record),
	}, nil
}

// Approve approves a PENDING registration and assigns the officer to the
// project, bounded by the project's officer slots.
func (s *RegistrationServiceImpl) Approve(ctx context.Context, req primary.DecideRegistrationRequest) error {
	record, project, err := s.loadWithProject(ctx, req.RegistrationID)
	if err != nil {
		return err
	}

	guardCtx := registration.ApprovalContext{
		RegistrationID: record.ID,
		Status:         domain.RegistrationStatus(record.Status),
		ManagerNRIC:    req.ManagerNRIC,
		AuthorityNRIC:  project.ManagerNRIC,
		OfficerCount:   len(project.Officers),
		OfficerSlots:   project.OfficerSlots,
		Approving:      true,
	}
	if result := registration.CanDecide(guardCtx); !result.Allowed {
		return result.Err()
	}

	if err := s.projectRepo.AddOfficer(ctx, project.ID, record.OfficerNRIC); err != nil {
		return fmt.Errorf("failed to assign officer: %w", err)
	}

	record.Status = string(domain.RegApproved)
	record.DecidedAt = nowTimestamp()
	if err := s.regRepo.Update(ctx, record); err != nil {
		return fmt.Errorf("failed to update registration: %w", err)
	}
	return nil
}

// Reject rejects a PENDING registration.
func (s *RegistrationServiceImpl) Reject(ctx context.Context, req primary.DecideRegistrationRequest) error {
	record, project, err := s.loadWithProject(ctx, req.RegistrationID)
	if err != nil {
		return err
	}

	guardCtx := registration.ApprovalContext{
		RegistrationID: record.ID,
		Status:         domain.RegistrationStatus(record.Status),
		ManagerNRIC:    req.ManagerNRIC,
		AuthorityNRIC:  project.ManagerNRIC,
		OfficerCount:   len(project.Officers),
		OfficerSlots:   project.OfficerSlots,
		Approving:      false,
	}
	if result := registration.CanDecide(guardCtx); !result.Allowed {
		return result.Err()
	}

	record.Status = string(domain.RegRejected)
	record.DecidedAt = nowTimestamp()
	if err := s.regRepo.Update(ctx, record); err != nil {
		return fmt.Errorf("failed to update registration: %w", err)
	}
	return nil
}

// ListByOfficer lists the officer's registrations.
func (s *RegistrationServiceImpl) ListByOfficer(ctx context.Context, nric string) ([]*primary.Registration, error) {
	records, err := s.regRepo.ListByOfficer(ctx, nric)
	if err != nil {
		return nil, fmt.Errorf("failed to list registrations: %w", err)
	}
	return recordsToRegistrations(records), nil
}

// ListByProject lists a project's registrations, optionally by status.
func (s *RegistrationServiceImpl) ListByProject(ctx context.Context, projectID, status string) ([]*primary.Registration, error) {
	records, err := s.regRepo.ListByProject(ctx, projectID, status)
	if err != nil {
		return nil, fmt.Errorf("failed to list registrations: %w", err)
	}
	return recordsToRegistrations(records), nil
}

// Helper methods

func (s *RegistrationServiceImpl) loadWithProject(ctx context.Context, registrationID string) (*secondary.RegistrationRecord, *secondary.ProjectRecord, error) {
	record, err := s.regRepo.GetByID(ctx, registrationID)
	if err != nil {
		return nil, nil, err
	}
	project, err := s.projectRepo.GetByID(ctx, record.ProjectID)
	if err != nil {
		return nil, nil, err
	}
	return record, project, nil
}

// heldRegistrations collects the officer's existing registrations with
// their projects' windows for the overlap check. A registration whose
// project has gone missing or has a malformed window is skipped with a log
// line rather than blocking the officer.
func (s *RegistrationServiceImpl) heldRegistrations(ctx context.Context, nric string) ([]registration.HeldRegistration, error) {
	records, err := s.regRepo.ListByOfficer(ctx, nric)
	if err != nil {
		return nil, fmt.Errorf("failed to list registrations: %w", err)
	}

	var held []registration.HeldRegistration
	for _, r := range records {
		project, err := s.projectRepo.GetByID(ctx, r.ProjectID)
		if err != nil {
			log.Printf("skipping registration %s: %v", r.ID, err)
			continue
		}
		window, err := windowOf(project)
		if err != nil {
			log.Printf("skipping registration %s: %v", r.ID, err)
			continue
		}
		held = append(held, registration.HeldRegistration{
			ProjectID: r.ProjectID,
			Status:    domain.RegistrationStatus(r.Status),
			Window:    window,
		})
	}
	return held, nil
}

func windowOf(p *secondary.ProjectRecord) (registration.Window, error) {
	open, err := parseDate(p.OpenDate)
	if err != nil {
		return registration.Window{}, fmt.Errorf("project %s has malformed open date: %w", p.ID, err)
	}
	close, err := parseDate(p.CloseDate)
	if err != nil {
		return registration.Window{}, fmt.Errorf("project %s has malformed close date: %w", p.ID, err)
	}
	return registration.Window{Open: open, Close: close}, nil
}

func recordToRegistration(r *secondary.RegistrationRecord) *primary.Registration {
	return &primary.Registration{
		ID:          r.ID,
		OfficerNRIC: r.OfficerNRIC,
		ProjectID:   r.ProjectID,
		Status:      r.Status,
		CreatedAt:   r.CreatedAt,
		DecidedAt:   r.DecidedAt,
	}
}

func recordsToRegistrations(records []*secondary.RegistrationRecord) []*primary.Registration {
	regs := make([]*primary.Registration, len(records))
	for i, r := range records {
		regs[i] = recordToRegistration(r)
	}
	return regs
}

// Ensure RegistrationServiceImpl implements the interface
var _ primary.RegistrationService = (*RegistrationServiceImpl)(nil)
