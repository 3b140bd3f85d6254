// Package wire provides dependency injection for the BTO application.
// It creates singleton services with lazy initialization.
package wire

import (
	"io"
	"log"
	"os"
	"sync"

	cliadapter "github.com/rebeccamsl/BTO-management-system-sub000/internal/adapters/cli"
	"github.com/rebeccamsl/BTO-management-system-sub000/internal/adapters/sqlite"
	"github.com/rebeccamsl/BTO-management-system-sub000/internal/app"
	"github.com/rebeccamsl/BTO-management-system-sub000/internal/db"
	"github.com/rebeccamsl/BTO-management-system-sub000/internal/ports/primary"
)

var (
	authService         primary.AuthService
	applicationService  primary.ApplicationService
	projectService      primary.ProjectService
	registrationService primary.RegistrationService
	bookingService      primary.BookingService
	enquiryService      primary.EnquiryService
	reportService       primary.ReportService
	once                sync.Once
)

// AuthService returns the singleton AuthService instance.
func AuthService() primary.AuthService {
	once.Do(initServices)
	return authService
}

// ApplicationService returns the singleton ApplicationService instance.
func ApplicationService() primary.ApplicationService {
	once.Do(initServices)
	return applicationService
}

// ProjectService returns the singleton ProjectService instance.
func ProjectService() primary.ProjectService {
	once.Do(initServices)
	return projectService
}

// RegistrationService returns the singleton RegistrationService instance.
func RegistrationService() primary.RegistrationService {
	once.Do(initServices)
	return registrationService
}

// BookingService returns the singleton BookingService instance.
func BookingService() primary.BookingService {
	once.Do(initServices)
	return bookingService
}

// EnquiryService returns the singleton EnquiryService instance.
func EnquiryService() primary.EnquiryService {
	once.Do(initServices)
	return enquiryService
}

// ReportService returns the singleton ReportService instance.
func ReportService() primary.ReportService {
	once.Do(initServices)
	return reportService
}

// initServices initializes all services and their dependencies.
// This is called once via sync.Once.
func initServices() {
	database, err := db.GetDB()
	if err != nil {
		log.Fatalf("failed to initialize database: %v", err)
	}

	// Repository adapters (secondary ports) with injected DB
	userRepo := sqlite.NewUserRepository(database)
	projectRepo := sqlite.NewProjectRepository(database)
	applicationRepo := sqlite.NewApplicationRepository(database)
	bookingRepo := sqlite.NewBookingRepository(database)
	registrationRepo := sqlite.NewRegistrationRepository(database)
	enquiryRepo := sqlite.NewEnquiryRepository(database)

	// Services (primary ports implementation)
	authService = app.NewAuthService(userRepo)
	applicationService = app.NewApplicationService(applicationRepo, projectRepo, bookingRepo, userRepo)
	projectService = app.NewProjectService(projectRepo, applicationRepo, userRepo)
	registrationService = app.NewRegistrationService(registrationRepo, projectRepo, applicationRepo, userRepo)
	bookingService = app.NewBookingService(bookingRepo, applicationRepo, projectRepo, userRepo)
	enquiryService = app.NewEnquiryService(enquiryRepo, projectRepo)
	reportService = app.NewReportService(bookingRepo, projectRepo, userRepo)
}

// ApplicationAdapter returns a new ApplicationAdapter writing to stdout.
// Each call creates a new adapter (adapters are stateless translators).
func ApplicationAdapter() *cliadapter.ApplicationAdapter {
	return ApplicationAdapterWithOutput(os.Stdout)
}

// ApplicationAdapterWithOutput returns a new ApplicationAdapter writing to
// the given output. This variant allows testing or alternate destinations.
func ApplicationAdapterWithOutput(out io.Writer) *cliadapter.ApplicationAdapter {
	once.Do(initServices)
	return cliadapter.NewApplicationAdapter(applicationService, out)
}

// ProjectAdapter returns a new ProjectAdapter writing to stdout.
func ProjectAdapter() *cliadapter.ProjectAdapter {
	once.Do(initServices)
	return cliadapter.NewProjectAdapter(projectService, os.Stdout)
}

// RegistrationAdapter returns a new RegistrationAdapter writing to stdout.
func RegistrationAdapter() *cliadapter.RegistrationAdapter {
	once.Do(initServices)
	return cliadapter.NewRegistrationAdapter(registrationService, os.Stdout)
}

// BookingAdapter returns a new BookingAdapter writing to stdout.
func BookingAdapter() *cliadapter.BookingAdapter {
	once.Do(initServices)
	return cliadapter.NewBookingAdapter(bookingService, os.Stdout)
}

// EnquiryAdapter returns a new EnquiryAdapter writing to stdout.
func EnquiryAdapter() *cliadapter.EnquiryAdapter {
	once.Do(initServices)
	return cliadapter.NewEnquiryAdapter(enquiryService, os.Stdout)
}

// ReportAdapter returns a new ReportAdapter writing to stdout.
func ReportAdapter() *cliadapter.ReportAdapter {
	once.Do(initServices)
	return cliadapter.NewReportAdapter(reportService, os.Stdout)
}
