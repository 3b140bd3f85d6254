package cli

import (
	"github.com/spf13/cobra"

	"github.com/rebeccamsl/BTO-management-system-sub000/internal/core/domain"
	"github.com/rebeccamsl/BTO-management-system-sub000/internal/wire"
)

// ReportCmd returns the report command
func ReportCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "report",
		Short: "Generate the booking report",
		Long: `Generate a report of booked applications joined with applicant and
project details. Recognized filter keys: projectId, flatType, maritalStatus.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			session, err := requireRole(string(domain.RoleManager))
			if err != nil {
				return err
			}

			filters, _ := cmd.Flags().GetStringArray("filter")
			criteria, err := parseCriteria(filters)
			if err != nil {
				return err
			}

			return wire.ReportAdapter().BookingReport(cmd.Context(), session.NRIC, criteria)
		},
	}

	cmd.Flags().StringArray("filter", nil, "narrow the report, e.g. --filter maritalStatus=MARRIED")
	return cmd
}
