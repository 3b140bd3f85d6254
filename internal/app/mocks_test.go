package app

import (
	"context"
	"fmt"
	"sort"

	"github.com/rebeccamsl/BTO-management-system-sub000/internal/core/domain"
	"github.com/rebeccamsl/BTO-management-system-sub000/internal/ports/secondary"
)

// Shared map-backed mock repositories for service tests. Error injection
// fields simulate repository failures; mocks return domain NotFound errors
// for missing rows so error kinds flow through the services the same way
// the sqlite adapters produce them.

// Ensure the mocks implement the interfaces
var (
	_ secondary.UserRepository         = (*mockUserRepository)(nil)
	_ secondary.ProjectRepository      = (*mockProjectRepository)(nil)
	_ secondary.ApplicationRepository  = (*mockApplicationRepository)(nil)
	_ secondary.BookingRepository      = (*mockBookingRepository)(nil)
	_ secondary.RegistrationRepository = (*mockRegistrationRepository)(nil)
	_ secondary.EnquiryRepository      = (*mockEnquiryRepository)(nil)
)

// mockUserRepository implements secondary.UserRepository for testing.
type mockUserRepository struct {
	users     map[string]*secondary.UserRecord
	updateErr error
}

func newMockUserRepository() *mockUserRepository {
	return &mockUserRepository{users: make(map[string]*secondary.UserRecord)}
}

func (m *mockUserRepository) Create(ctx context.Context, user *secondary.UserRecord) error {
	m.users[user.NRIC] = user
	return nil
}

func (m *mockUserRepository) GetByNRIC(ctx context.Context, nric string) (*secondary.UserRecord, error) {
	if user, ok := m.users[nric]; ok {
		return user, nil
	}
	return nil, domain.NotFound("user", nric)
}

func (m *mockUserRepository) Update(ctx context.Context, user *secondary.UserRecord) error {
	if m.updateErr != nil {
		return m.updateErr
	}
	m.users[user.NRIC] = user
	return nil
}

func (m *mockUserRepository) List(ctx context.Context, filters secondary.UserFilters) ([]*secondary.UserRecord, error) {
	var result []*secondary.UserRecord
	for _, u := range m.users {
		if filters.Role != "" && u.Role != filters.Role {
			continue
		}
		result = append(result, u)
	}
	return result, nil
}

// mockProjectRepository implements secondary.ProjectRepository for testing.
type mockProjectRepository struct {
	projects               map[string]*secondary.ProjectRecord
	hasApplicationsResult  bool
	bookedCount            int
	updateErr              error
	deleteErr              error
	addOfficerErr          error
	updateAvailabilityErr  error
	availabilityWriteCount int
}

func newMockProjectRepository() *mockProjectRepository {
	return &mockProjectRepository{projects: make(map[string]*secondary.ProjectRecord)}
}

func (m *mockProjectRepository) Create(ctx context.Context, project *secondary.ProjectRecord) error {
	m.projects[project.ID] = project
	return nil
}

func (m *mockProjectRepository) GetByID(ctx context.Context, id string) (*secondary.ProjectRecord, error) {
	if p, ok := m.projects[id]; ok {
		return p, nil
	}
	return nil, domain.NotFound("project", id)
}

func (m *mockProjectRepository) List(ctx context.Context, filters secondary.ProjectFilters) ([]*secondary.ProjectRecord, error) {
	var ids []string
	for id := range m.projects {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	var result []*secondary.ProjectRecord
	for _, id := range ids {
		p := m.projects[id]
		if filters.ManagerNRIC != "" && p.ManagerNRIC != filters.ManagerNRIC {
			continue
		}
		if filters.VisibleOnly && !p.Visible {
			continue
		}
		result = append(result, p)
	}
	return result, nil
}

func (m *mockProjectRepository) Update(ctx context.Context, project *secondary.ProjectRecord) error {
	if m.updateErr != nil {
		return m.updateErr
	}
	m.projects[project.ID] = project
	return nil
}

func (m *mockProjectRepository) Delete(ctx context.Context, id string) error {
	if m.deleteErr != nil {
		return m.deleteErr
	}
	delete(m.projects, id)
	return nil
}

func (m *mockProjectRepository) SetVisibility(ctx context.Context, id string, visible bool) error {
	if p, ok := m.projects[id]; ok {
		p.Visible = visible
	}
	return nil
}

func (m *mockProjectRepository) AddOfficer(ctx context.Context, projectID, officerNRIC string) error {
	if m.addOfficerErr != nil {
		return m.addOfficerErr
	}
	if p, ok := m.projects[projectID]; ok {
		p.Officers = append(p.Officers, officerNRIC)
	}
	return nil
}

func (m *mockProjectRepository) UpdateUnitAvailability(ctx context.Context, projectID, flatType string, available int) error {
	if m.updateAvailabilityErr != nil {
		return m.updateAvailabilityErr
	}
	m.availabilityWriteCount++
	if p, ok := m.projects[projectID]; ok {
		for i := range p.Units {
			if p.Units[i].FlatType == flatType {
				p.Units[i].Available = available
			}
		}
	}
	return nil
}

func (m *mockProjectRepository) HasApplications(ctx context.Context, projectID string) (bool, error) {
	return m.hasApplicationsResult, nil
}

func (m *mockProjectRepository) CountBookedApplications(ctx context.Context, projectID string) (int, error) {
	return m.bookedCount, nil
}

func (m *mockProjectRepository) GetNextID(ctx context.Context) (string, error) {
	return fmt.Sprintf("PROJ-%03d", len(m.projects)+1), nil
}

// availableOf reads the current available count for a flat type.
func (m *mockProjectRepository) availableOf(projectID, flatType string) int {
	p, ok := m.projects[projectID]
	if !ok {
		return -1
	}
	for _, u := range p.Units {
		if u.FlatType == flatType {
			return u.Available
		}
	}
	return -1
}

// mockApplicationRepository implements secondary.ApplicationRepository for
// testing.
type mockApplicationRepository struct {
	applications map[string]*secondary.ApplicationRecord
	createErr    error
	updateErr    error
	activeErr    error
}

func newMockApplicationRepository() *mockApplicationRepository {
	return &mockApplicationRepository{applications: make(map[string]*secondary.ApplicationRecord)}
}

func (m *mockApplicationRepository) Create(ctx context.Context, application *secondary.ApplicationRecord) error {
	if m.createErr != nil {
		return m.createErr
	}
	m.applications[application.ID] = application
	return nil
}

func (m *mockApplicationRepository) GetByID(ctx context.Context, id string) (*secondary.ApplicationRecord, error) {
	if a, ok := m.applications[id]; ok {
		return a, nil
	}
	return nil, domain.NotFound("application", id)
}

func (m *mockApplicationRepository) Update(ctx context.Context, application *secondary.ApplicationRecord) error {
	if m.updateErr != nil {
		return m.updateErr
	}
	m.applications[application.ID] = application
	return nil
}

func (m *mockApplicationRepository) ListByApplicant(ctx context.Context, nric string) ([]*secondary.ApplicationRecord, error) {
	var result []*secondary.ApplicationRecord
	for _, a := range m.applications {
		if a.ApplicantNRIC == nric {
			result = append(result, a)
		}
	}
	return result, nil
}

func (m *mockApplicationRepository) ListByProject(ctx context.Context, projectID, status string) ([]*secondary.ApplicationRecord, error) {
	var result []*secondary.ApplicationRecord
	for _, a := range m.applications {
		if a.ProjectID != projectID {
			continue
		}
		if status != "" && a.Status != status {
			continue
		}
		result = append(result, a)
	}
	return result, nil
}

func (m *mockApplicationRepository) GetActiveByApplicant(ctx context.Context, nric string) (*secondary.ApplicationRecord, error) {
	if m.activeErr != nil {
		return nil, m.activeErr
	}
	for _, a := range m.applications {
		if a.ApplicantNRIC == nric && domain.ApplicationStatus(a.Status).Active() {
			return a, nil
		}
	}
	return nil, nil
}

func (m *mockApplicationRepository) GetNextID(ctx context.Context) (string, error) {
	return fmt.Sprintf("APP-%03d", len(m.applications)+1), nil
}

// mockBookingRepository implements secondary.BookingRepository for testing.
type mockBookingRepository struct {
	bookings  map[string]*secondary.BookingRecord
	createErr error
	deleteErr error
}

func newMockBookingRepository() *mockBookingRepository {
	return &mockBookingRepository{bookings: make(map[string]*secondary.BookingRecord)}
}

func (m *mockBookingRepository) Create(ctx context.Context, booking *secondary.BookingRecord) error {
	if m.createErr != nil {
		return m.createErr
	}
	m.bookings[booking.ID] = booking
	return nil
}

func (m *mockBookingRepository) GetByID(ctx context.Context, id string) (*secondary.BookingRecord, error) {
	if b, ok := m.bookings[id]; ok {
		return b, nil
	}
	return nil, domain.NotFound("booking", id)
}

func (m *mockBookingRepository) GetByApplication(ctx context.Context, applicationID string) (*secondary.BookingRecord, error) {
	for _, b := range m.bookings {
		if b.ApplicationID == applicationID {
			return b, nil
		}
	}
	return nil, domain.NotFound("booking for application", applicationID)
}

func (m *mockBookingRepository) List(ctx context.Context, filters secondary.BookingFilters) ([]*secondary.BookingRecord, error) {
	var ids []string
	for id := range m.bookings {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	var result []*secondary.BookingRecord
	for _, id := range ids {
		b := m.bookings[id]
		if filters.ProjectID != "" && b.ProjectID != filters.ProjectID {
			continue
		}
		if filters.FlatType != "" && b.FlatType != filters.FlatType {
			continue
		}
		result = append(result, b)
	}
	return result, nil
}

func (m *mockBookingRepository) Delete(ctx context.Context, id string) error {
	if m.deleteErr != nil {
		return m.deleteErr
	}
	delete(m.bookings, id)
	return nil
}

func (m *mockBookingRepository) GetNextID(ctx context.Context) (string, error) {
	return fmt.Sprintf("BOOK-%03d", len(m.bookings)+1), nil
}

// mockRegistrationRepository implements secondary.RegistrationRepository
// for testing.
type mockRegistrationRepository struct {
	registrations map[string]*secondary.RegistrationRecord
	createErr     error
	updateErr     error
}

func newMockRegistrationRepository() *mockRegistrationRepository {
	return &mockRegistrationRepository{registrations: make(map[string]*secondary.RegistrationRecord)}
}

func (m *mockRegistrationRepository) Create(ctx context.Context, registration *secondary.RegistrationRecord) error {
	if m.createErr != nil {
		return m.createErr
	}
	m.registrations[registration.ID] = registration
	return nil
}

func (m *mockRegistrationRepository) GetByID(ctx context.Context, id string) (*secondary.RegistrationRecord, error) {
	if r, ok := m.registrations[id]; ok {
		return r, nil
	}
	return nil, domain.NotFound("registration", id)
}

func (m *mockRegistrationRepository) Update(ctx context.Context, registration *secondary.RegistrationRecord) error {
	if m.updateErr != nil {
		return m.updateErr
	}
	m.registrations[registration.ID] = registration
	return nil
}

func (m *mockRegistrationRepository) ListByOfficer(ctx context.Context, nric string) ([]*secondary.RegistrationRecord, error) {
	var result []*secondary.RegistrationRecord
	for _, r := range m.registrations {
		if r.OfficerNRIC == nric {
			result = append(result, r)
		}
	}
	return result, nil
}

func (m *mockRegistrationRepository) ListByProject(ctx context.Context, projectID, status string) ([]*secondary.RegistrationRecord, error) {
	var result []*secondary.RegistrationRecord
	for _, r := range m.registrations {
		if r.ProjectID != projectID {
			continue
		}
		if status != "" && r.Status != status {
			continue
		}
		result = append(result, r)
	}
	return result, nil
}

func (m *mockRegistrationRepository) ExistsForOfficerProject(ctx context.Context, nric, projectID string) (bool, error) {
	for _, r := range m.registrations {
		if r.OfficerNRIC == nric && r.ProjectID == projectID {
			return true, nil
		}
	}
	return false, nil
}

func (m *mockRegistrationRepository) GetNextID(ctx context.Context) (string, error) {
	return fmt.Sprintf("REG-%03d", len(m.registrations)+1), nil
}

// mockEnquiryRepository implements secondary.EnquiryRepository for testing.
type mockEnquiryRepository struct {
	enquiries map[string]*secondary.EnquiryRecord
	updateErr error
	deleteErr error
}

func newMockEnquiryRepository() *mockEnquiryRepository {
	return &mockEnquiryRepository{enquiries: make(map[string]*secondary.EnquiryRecord)}
}

func (m *mockEnquiryRepository) Create(ctx context.Context, enquiry *secondary.EnquiryRecord) error {
	m.enquiries[enquiry.ID] = enquiry
	return nil
}

func (m *mockEnquiryRepository) GetByID(ctx context.Context, id string) (*secondary.EnquiryRecord, error) {
	if e, ok := m.enquiries[id]; ok {
		return e, nil
	}
	return nil, domain.NotFound("enquiry", id)
}

func (m *mockEnquiryRepository) Update(ctx context.Context, enquiry *secondary.EnquiryRecord) error {
	if m.updateErr != nil {
		return m.updateErr
	}
	m.enquiries[enquiry.ID] = enquiry
	return nil
}

func (m *mockEnquiryRepository) Delete(ctx context.Context, id string) error {
	if m.deleteErr != nil {
		return m.deleteErr
	}
	delete(m.enquiries, id)
	return nil
}

func (m *mockEnquiryRepository) List(ctx context.Context, filters secondary.EnquiryFilters) ([]*secondary.EnquiryRecord, error) {
	var ids []string
	for id := range m.enquiries {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	var result []*secondary.EnquiryRecord
	for _, id := range ids {
		e := m.enquiries[id]
		if filters.ApplicantNRIC != "" && e.ApplicantNRIC != filters.ApplicantNRIC {
			continue
		}
		if filters.ProjectID != "" && e.ProjectID != filters.ProjectID {
			continue
		}
		result = append(result, e)
	}
	return result, nil
}

func (m *mockEnquiryRepository) GetNextID(ctx context.Context) (string, error) {
	return fmt.Sprintf("ENQ-%03d", len(m.enquiries)+1), nil
}
