package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/rebeccamsl/BTO-management-system-sub000/internal/cli"
	"github.com/rebeccamsl/BTO-management-system-sub000/internal/version"
)

func main() {
	rootCmd := &cobra.Command{
		Use:     "bto",
		Short:   "BTO - Build-To-Order housing application workflow",
		Version: version.String(),
		Long: `BTO is a CLI tool for managing housing projects, applications, bookings,
and officer registrations. Applicants apply for flats, managers decide
applications, and officers book flats against unit inventory.`,
	}

	// Add subcommands
	rootCmd.AddCommand(cli.InitCmd())
	rootCmd.AddCommand(cli.LoginCmd())
	rootCmd.AddCommand(cli.LogoutCmd())
	rootCmd.AddCommand(cli.WhoamiCmd())
	rootCmd.AddCommand(cli.PasswdCmd())
	rootCmd.AddCommand(cli.ProjectCmd())
	rootCmd.AddCommand(cli.ApplicationCmd())
	rootCmd.AddCommand(cli.RegistrationCmd())
	rootCmd.AddCommand(cli.BookingCmd())
	rootCmd.AddCommand(cli.EnquiryCmd())
	rootCmd.AddCommand(cli.ReportCmd())

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
