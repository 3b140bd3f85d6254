package cli

import (
	"github.com/spf13/cobra"

	"github.com/rebeccamsl/BTO-management-system-sub000/internal/core/domain"
	"github.com/rebeccamsl/BTO-management-system-sub000/internal/wire"
)

// RegistrationCmd returns the registration command group
func RegistrationCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "registration",
		Aliases: []string{"reg"},
		Short:   "Manage officer registrations",
		Long:    "Register to handle projects as an officer, and decide registrations as a manager",
	}

	cmd.AddCommand(registrationRegisterCmd())
	cmd.AddCommand(registrationApproveCmd())
	cmd.AddCommand(registrationRejectCmd())
	cmd.AddCommand(registrationListCmd())
	return cmd
}

func registrationRegisterCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "register [project-id]",
		Short: "Register to handle a project",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			session, err := requireRole(string(domain.RoleOfficer))
			if err != nil {
				return err
			}

			return wire.RegistrationAdapter().Register(cmd.Context(), session.NRIC, args[0])
		},
	}
}

func registrationApproveCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "approve [registration-id]",
		Short: "Approve a pending registration",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			session, err := requireRole(string(domain.RoleManager))
			if err != nil {
				return err
			}

			return wire.RegistrationAdapter().Approve(cmd.Context(), args[0], session.NRIC)
		},
	}
}

func registrationRejectCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "reject [registration-id]",
		Short: "Reject a pending registration",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			session, err := requireRole(string(domain.RoleManager))
			if err != nil {
				return err
			}

			return wire.RegistrationAdapter().Reject(cmd.Context(), args[0], session.NRIC)
		},
	}
}

func registrationListCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List registrations",
		Long: `List registrations. Without flags, lists your own registrations.
With --project, lists a project's registrations (optionally by --status).`,
		RunE: func(cmd *cobra.Command, args []string) error {
			session, err := currentSession()
			if err != nil {
				return err
			}

			projectID, _ := cmd.Flags().GetString("project")
			status, _ := cmd.Flags().GetString("status")

			if projectID != "" {
				return wire.RegistrationAdapter().ListByProject(cmd.Context(), projectID, status)
			}
			return wire.RegistrationAdapter().ListByOfficer(cmd.Context(), session.NRIC)
		},
	}

	cmd.Flags().String("project", "", "list a project's registrations")
	cmd.Flags().String("status", "", "filter by status (PENDING, APPROVED, REJECTED)")
	return cmd
}
