package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/rebeccamsl/BTO-management-system-sub000/internal/core/domain"
	"github.com/rebeccamsl/BTO-management-system-sub000/internal/ports/primary"
	"github.com/rebeccamsl/BTO-management-system-sub000/internal/wire"
)

// ProjectCmd returns the project command group
func ProjectCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "project",
		Short: "Manage housing projects",
		Long:  "Create, edit, and list BTO housing projects",
	}

	cmd.AddCommand(projectCreateCmd())
	cmd.AddCommand(projectEditCmd())
	cmd.AddCommand(projectDeleteCmd())
	cmd.AddCommand(projectVisibilityCmd())
	cmd.AddCommand(projectShowCmd())
	cmd.AddCommand(projectListCmd())
	return cmd
}

func projectCreateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "create [name]",
		Short: "Create a new project",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			session, err := requireRole(string(domain.RoleManager))
			if err != nil {
				return err
			}

			neighborhood, _ := cmd.Flags().GetString("neighborhood")
			openDate, _ := cmd.Flags().GetString("open")
			closeDate, _ := cmd.Flags().GetString("close")
			slots, _ := cmd.Flags().GetInt("slots")
			unitSpec, _ := cmd.Flags().GetString("units")

			units, err := parseUnits(unitSpec)
			if err != nil {
				return err
			}

			return wire.ProjectAdapter().Create(cmd.Context(), primary.CreateProjectRequest{
				Name:         args[0],
				Neighborhood: neighborhood,
				OpenDate:     openDate,
				CloseDate:    closeDate,
				ManagerNRIC:  session.NRIC,
				OfficerSlots: slots,
				Units:        units,
			})
		},
	}

	cmd.Flags().String("neighborhood", "", "project neighborhood")
	cmd.Flags().String("open", "", "application window open date (2006-01-02)")
	cmd.Flags().String("close", "", "application window close date (2006-01-02)")
	cmd.Flags().Int("slots", 10, "officer slots")
	cmd.Flags().String("units", "", "unit counts, e.g. TWO_ROOM=2,THREE_ROOM=3")
	cmd.MarkFlagRequired("open")
	cmd.MarkFlagRequired("close")
	return cmd
}

func projectEditCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "edit [project-id]",
		Short: "Edit a project (unset flags are left unchanged)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			session, err := requireRole(string(domain.RoleManager))
			if err != nil {
				return err
			}

			name, _ := cmd.Flags().GetString("name")
			neighborhood, _ := cmd.Flags().GetString("neighborhood")
			openDate, _ := cmd.Flags().GetString("open")
			closeDate, _ := cmd.Flags().GetString("close")
			slots, _ := cmd.Flags().GetInt("slots")
			unitSpec, _ := cmd.Flags().GetString("units")

			units, err := parseUnits(unitSpec)
			if err != nil {
				return err
			}

			return wire.ProjectAdapter().Edit(cmd.Context(), primary.EditProjectRequest{
				ProjectID:    args[0],
				ManagerNRIC:  session.NRIC,
				Name:         name,
				Neighborhood: neighborhood,
				OpenDate:     openDate,
				CloseDate:    closeDate,
				OfficerSlots: slots,
				Units:        units,
			})
		},
	}

	cmd.Flags().String("name", "", "project name")
	cmd.Flags().String("neighborhood", "", "project neighborhood")
	cmd.Flags().String("open", "", "application window open date")
	cmd.Flags().String("close", "", "application window close date")
	cmd.Flags().Int("slots", 0, "officer slots")
	cmd.Flags().String("units", "", "unit counts, e.g. TWO_ROOM=2,THREE_ROOM=3")
	return cmd
}

func projectDeleteCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "delete [project-id]",
		Short: "Delete a project and its dependents",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			session, err := requireRole(string(domain.RoleManager))
			if err != nil {
				return err
			}

			return wire.ProjectAdapter().Delete(cmd.Context(), args[0], session.NRIC)
		},
	}
}

func projectVisibilityCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "visibility [project-id] [on|off]",
		Short: "Toggle a project's visibility to applicants",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			session, err := requireRole(string(domain.RoleManager))
			if err != nil {
				return err
			}

			var visible bool
			switch args[1] {
			case "on":
				visible = true
			case "off":
				visible = false
			default:
				return fmt.Errorf("visibility must be 'on' or 'off', got %q", args[1])
			}

			return wire.ProjectAdapter().SetVisibility(cmd.Context(), args[0], session.NRIC, visible)
		},
	}
}

func projectShowCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "show [project-id]",
		Short: "Show project details",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if _, err := currentSession(); err != nil {
				return err
			}
			return wire.ProjectAdapter().Show(cmd.Context(), args[0])
		},
	}
}

func projectListCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List projects",
		Long: `List projects. Managers see their own projects regardless of visibility;
applicants see visible, open projects matching their eligibility. Use --all
as a manager to list every project.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			session, err := currentSession()
			if err != nil {
				return err
			}

			if session.Role == string(domain.RoleManager) {
				all, _ := cmd.Flags().GetBool("all")
				managerNRIC := session.NRIC
				if all {
					managerNRIC = ""
				}
				return wire.ProjectAdapter().ListForManager(cmd.Context(), managerNRIC)
			}

			filters, _ := cmd.Flags().GetStringArray("filter")
			criteria, err := parseCriteria(filters)
			if err != nil {
				return err
			}
			return wire.ProjectAdapter().ListForApplicant(cmd.Context(), session.NRIC, criteria)
		},
	}

	cmd.Flags().Bool("all", false, "list all projects (managers only)")
	cmd.Flags().StringArray("filter", nil, "narrow the list, e.g. --filter neighborhood=Yishun")
	return cmd
}
