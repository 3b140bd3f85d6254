package app

import (
	"context"
	"fmt"

	"github.com/rebeccamsl/BTO-management-system-sub000/internal/core/domain"
	"github.com/rebeccamsl/BTO-management-system-sub000/internal/ports/primary"
	"github.com/rebeccamsl/BTO-management-system-sub000/internal/ports/secondary"
)

// EnquiryServiceImpl implements the EnquiryService interface.
type EnquiryServiceImpl struct {
	enquiryRepo secondary.EnquiryRepository
	projectRepo secondary.ProjectRepository
}

// NewEnquiryService creates a new EnquiryService with injected dependencies.
func NewEnquiryService(
	enquiryRepo secondary.EnquiryRepository,
	projectRepo secondary.ProjectRepository,
) *EnquiryServiceImpl {
	return &EnquiryServiceImpl{
		enquiryRepo: enquiryRepo,
		projectRepo: projectRepo,
	}
}

// Submit creates a new enquiry about a project.
func (s *EnquiryServiceImpl) Submit(ctx context.Context, req primary.SubmitEnquiryRequest) (*primary.SubmitEnquiryResponse, error) {
	if req.Content == "" {
		return nil, domain.NewError(domain.KindValidationFailed, "enquiry content is required")
	}
	if _, err := s.projectRepo.GetByID(ctx, req.ProjectID); err != nil {
		return nil, err
	}

	nextID, err := s.enquiryRepo.GetNextID(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to generate enquiry ID: %w", err)
	}

	record := &secondary.EnquiryRecord{
		ID:            nextID,
		ApplicantNRIC: req.ApplicantNRIC,
		ProjectID:     req.ProjectID,
		Content:       req.Content,
	}
	if err := s.enquiryRepo.Create(ctx, record); err != nil {
		return nil, fmt.Errorf("failed to create enquiry: %w", err)
	}

	return &primary.SubmitEnquiryResponse{
		EnquiryID: record.ID,
		Enquiry:   recordToEnquiry(record),
	}, nil
}

// Edit updates the content of the applicant's own unreplied enquiry.
func (s *EnquiryServiceImpl) Edit(ctx context.Context, req primary.EditEnquiryRequest) error {
	record, err := s.enquiryRepo.GetByID(ctx, req.EnquiryID)
	if err != nil {
		return err
	}
	if record.ApplicantNRIC != req.ApplicantNRIC {
		return domain.NewError(domain.KindPermissionDenied,
			"enquiry %s does not belong to %s", req.EnquiryID, req.ApplicantNRIC)
	}
	if record.Reply != "" {
		return domain.NewError(domain.KindInvalidState,
			"enquiry %s has been replied to and is frozen", req.EnquiryID)
	}
	if req.Content == "" {
		return domain.NewError(domain.KindValidationFailed, "enquiry content is required")
	}

	record.Content = req.Content
	if err := s.enquiryRepo.Update(ctx, record); err != nil {
		return fmt.Errorf("failed to update enquiry: %w", err)
	}
	return nil
}

// Delete removes the applicant's own unreplied enquiry.
func (s *EnquiryServiceImpl) Delete(ctx context.Context, req primary.DeleteEnquiryRequest) error {
	record, err := s.enquiryRepo.GetByID(ctx, req.EnquiryID)
	if err != nil {
		return err
	}
	if record.ApplicantNRIC != req.ApplicantNRIC {
		return domain.NewError(domain.KindPermissionDenied,
			"enquiry %s does not belong to %s", req.EnquiryID, req.ApplicantNRIC)
	}
	if record.Reply != "" {
		return domain.NewError(domain.KindInvalidState,
			"enquiry %s has been replied to and is frozen", req.EnquiryID)
	}

	if err := s.enquiryRepo.Delete(ctx, record.ID); err != nil {
		return fmt.Errorf("failed to delete enquiry: %w", err)
	}
	return nil
}

// Reply records a reply by a handling officer or the managing authority of
// the enquiry's project. Replies are append-once.
func (s *EnquiryServiceImpl) Reply(ctx context.Context, req primary.ReplyEnquiryRequest) error {
	record, err := s.enquiryRepo.GetByID(ctx, req.EnquiryID)
	if err != nil {
		return err
	}
	project, err := s.projectRepo.GetByID(ctx, record.ProjectID)
	if err != nil {
		return err
	}

	if project.ManagerNRIC != req.ResponderNRIC && !officerAssigned(project, req.ResponderNRIC) {
		return domain.NewError(domain.KindPermissionDenied,
			"user %s does not handle project %s", req.ResponderNRIC, project.ID)
	}
	if record.Reply != "" {
		return domain.NewError(domain.KindInvalidState,
			"enquiry %s already has a reply", req.EnquiryID)
	}
	if req.Reply == "" {
		return domain.NewError(domain.KindValidationFailed, "reply content is required")
	}

	record.Reply = req.Reply
	record.RepliedBy = req.ResponderNRIC
	if err := s.enquiryRepo.Update(ctx, record); err != nil {
		return fmt.Errorf("failed to update enquiry: %w", err)
	}
	return nil
}

// ListByApplicant lists an applicant's enquiries.
func (s *EnquiryServiceImpl) ListByApplicant(ctx context.Context, nric string) ([]*primary.Enquiry, error) {
	records, err := s.enquiryRepo.List(ctx, secondary.EnquiryFilters{ApplicantNRIC: nric})
	if err != nil {
		return nil, fmt.Errorf("failed to list enquiries: %w", err)
	}
	return recordsToEnquiries(records), nil
}

// ListByProject lists a project's enquiries.
func (s *EnquiryServiceImpl) ListByProject(ctx context.Context, projectID string) ([]*primary.Enquiry, error) {
	records, err := s.enquiryRepo.List(ctx, secondary.EnquiryFilters{ProjectID: projectID})
	if err != nil {
		return nil, fmt.Errorf("failed to list enquiries: %w", err)
	}
	return recordsToEnquiries(records), nil
}

func recordToEnquiry(r *secondary.EnquiryRecord) *primary.Enquiry {
	return &primary.Enquiry{
		ID:            r.ID,
		ApplicantNRIC: r.ApplicantNRIC,
		ProjectID:     r.ProjectID,
		Content:       r.Content,
		Reply:         r.Reply,
		RepliedBy:     r.RepliedBy,
		CreatedAt:     r.CreatedAt,
	}
}

func recordsToEnquiries(records []*secondary.EnquiryRecord) []*primary.Enquiry {
	enquiries := make([]*primary.Enquiry, len(records))
	for i, r := range records {
		enquiries[i] = recordToEnquiry(r)
	}
	return enquiries
}

// Ensure EnquiryServiceImpl implements the interface
var _ primary.EnquiryService = (*EnquiryServiceImpl)(nil)
