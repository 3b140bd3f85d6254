package app

import (
	"context"
	"fmt"
	"log"
	"strings"

	"github.com/rebeccamsl/BTO-management-system-sub000/internal/core/domain"
	"github.com/rebeccamsl/BTO-management-system-sub000/internal/ports/primary"
	"github.com/rebeccamsl/BTO-management-system-sub000/internal/ports/secondary"
)

// Criteria keys recognized by the booking report.
const (
	reportKeyProjectID     = "projectId"
	reportKeyFlatType      = "flatType"
	reportKeyMaritalStatus = "maritalStatus"
)

// ReportServiceImpl implements the ReportService interface.
type ReportServiceImpl struct {
	bookingRepo secondary.BookingRepository
	projectRepo secondary.ProjectRepository
	userRepo    secondary.UserRepository
}

// NewReportService creates a new ReportService with injected dependencies.
func NewReportService(
	bookingRepo secondary.BookingRepository,
	projectRepo secondary.ProjectRepository,
	userRepo secondary.UserRepository,
) *ReportServiceImpl {
	return &ReportServiceImpl{
		bookingRepo: bookingRepo,
		projectRepo: projectRepo,
		userRepo:    userRepo,
	}
}

// BookingReport builds the filtered booking report. Managers only. The
// report is a pure read - a filter-and-project listing over bookings joined
// with their applicants and projects. Unknown criteria keys produce
// warnings, not errors.
func (s *ReportServiceImpl) BookingReport(ctx context.Context, req primary.BookingReportRequest) (*primary.BookingReport, error) {
	manager, err := s.userRepo.GetByNRIC(ctx, req.ManagerNRIC)
	if err != nil {
		return nil, err
	}
	if manager.Role != string(domain.RoleManager) {
		return nil, domain.NewError(domain.KindPermissionDenied,
			"user %s is not a manager", req.ManagerNRIC)
	}

	filters := secondary.BookingFilters{}
	var warnings []string
	wantMarital := ""
	for key, value := range req.Criteria {
		value = strings.TrimSpace(value)
		if value == "" {
			continue
		}
		switch key {
		case reportKeyProjectID:
			filters.ProjectID = value
		case reportKeyFlatType:
			ft, err := domain.ParseFlatType(value)
			if err != nil {
				warnings = append(warnings, fmt.Sprintf("ignoring flatType criterion: %v", err))
				continue
			}
			filters.FlatType = string(ft)
		case reportKeyMaritalStatus:
			ms, err := domain.ParseMaritalStatus(value)
			if err != nil {
				warnings = append(warnings, fmt.Sprintf("ignoring maritalStatus criterion: %v", err))
				continue
			}
			wantMarital = string(ms)
		default:
			warnings = append(warnings, fmt.Sprintf("ignoring unknown filter key %q", key))
		}
	}

	bookings, err := s.bookingRepo.List(ctx, filters)
	if err != nil {
		return nil, fmt.Errorf("failed to list bookings: %w", err)
	}

	var rows []*primary.BookingReportRow
	for _, b := range bookings {
		applicant, err := s.userRepo.GetByNRIC(ctx, b.ApplicantNRIC)
		if err != nil {
			log.Printf("skipping booking %s: %v", b.ID, err)
			continue
		}
		if wantMarital != "" && applicant.MaritalStatus != wantMarital {
			continue
		}
		project, err := s.projectRepo.GetByID(ctx, b.ProjectID)
		if err != nil {
			log.Printf("skipping booking %s: %v", b.ID, err)
			continue
		}
		rows = append(rows, &primary.BookingReportRow{
			BookingID:     b.ID,
			ApplicantName: applicant.Name,
			ApplicantNRIC: applicant.NRIC,
			Age:           applicant.Age,
			MaritalStatus: applicant.MaritalStatus,
			ProjectName:   project.Name,
			Neighborhood:  project.Neighborhood,
			FlatType:      b.FlatType,
			BookedAt:      b.CreatedAt,
		})
	}

	return &primary.BookingReport{Rows: rows, Warnings: warnings}, nil
}

// Ensure ReportServiceImpl implements the interface
var _ primary.ReportService = (*ReportServiceImpl)(nil)
