package cli

import (
	"github.com/spf13/cobra"

	"github.com/rebeccamsl/BTO-management-system-sub000/internal/core/domain"
	"github.com/rebeccamsl/BTO-management-system-sub000/internal/wire"
)

// ApplicationCmd returns the application command group
func ApplicationCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "application",
		Aliases: []string{"app"},
		Short:   "Manage housing applications",
		Long:    "Submit, decide, and withdraw BTO housing applications",
	}

	cmd.AddCommand(applicationSubmitCmd())
	cmd.AddCommand(applicationApproveCmd())
	cmd.AddCommand(applicationRejectCmd())
	cmd.AddCommand(applicationWithdrawCmd())
	cmd.AddCommand(applicationShowCmd())
	cmd.AddCommand(applicationListCmd())
	return cmd
}

func applicationSubmitCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "submit [project-id] [flat-type]",
		Short: "Apply for a flat in a project",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			session, err := currentSession()
			if err != nil {
				return err
			}

			return wire.ApplicationAdapter().Submit(cmd.Context(), session.NRIC, args[0], args[1])
		},
	}
}

func applicationApproveCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "approve [application-id]",
		Short: "Approve a pending application",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			session, err := requireRole(string(domain.RoleManager))
			if err != nil {
				return err
			}

			return wire.ApplicationAdapter().Approve(cmd.Context(), args[0], session.NRIC)
		},
	}
}

func applicationRejectCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "reject [application-id]",
		Short: "Reject a pending application",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			session, err := requireRole(string(domain.RoleManager))
			if err != nil {
				return err
			}

			return wire.ApplicationAdapter().Reject(cmd.Context(), args[0], session.NRIC)
		},
	}
}

func applicationWithdrawCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "withdraw [application-id]",
		Short: "Request withdrawal of your application",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			session, err := currentSession()
			if err != nil {
				return err
			}

			return wire.ApplicationAdapter().RequestWithdrawal(cmd.Context(), args[0], session.NRIC)
		},
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "approve [application-id]",
		Short: "Approve a withdrawal request",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			session, err := requireRole(string(domain.RoleManager))
			if err != nil {
				return err
			}

			return wire.ApplicationAdapter().ApproveWithdrawal(cmd.Context(), args[0], session.NRIC)
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "reject [application-id]",
		Short: "Reject a withdrawal request",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			session, err := requireRole(string(domain.RoleManager))
			if err != nil {
				return err
			}

			return wire.ApplicationAdapter().RejectWithdrawal(cmd.Context(), args[0], session.NRIC)
		},
	})

	return cmd
}

func applicationShowCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "show [application-id]",
		Short: "Show application details",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if _, err := currentSession(); err != nil {
				return err
			}
			return wire.ApplicationAdapter().Show(cmd.Context(), args[0])
		},
	}
}

func applicationListCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List applications",
		Long: `List applications. Without flags, lists your own applications.
With --project, lists a project's applications (optionally by --status).`,
		RunE: func(cmd *cobra.Command, args []string) error {
			session, err := currentSession()
			if err != nil {
				return err
			}

			projectID, _ := cmd.Flags().GetString("project")
			status, _ := cmd.Flags().GetString("status")

			if projectID != "" {
				return wire.ApplicationAdapter().ListByProject(cmd.Context(), projectID, status)
			}
			return wire.ApplicationAdapter().ListByApplicant(cmd.Context(), session.NRIC)
		},
	}

	cmd.Flags().String("project", "", "list a project's applications")
	cmd.Flags().String("status", "", "filter by status (PENDING, SUCCESSFUL, ...)")
	return cmd
}
