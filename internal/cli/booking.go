package cli

import (
	"github.com/spf13/cobra"

	"github.com/rebeccamsl/BTO-management-system-sub000/internal/core/domain"
	"github.com/rebeccamsl/BTO-management-system-sub000/internal/wire"
)

// BookingCmd returns the booking command group
func BookingCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "booking",
		Short: "Manage flat bookings",
		Long:  "Book flats for successful applications and generate receipts",
	}

	cmd.AddCommand(bookingCreateCmd())
	cmd.AddCommand(bookingReceiptCmd())
	cmd.AddCommand(bookingListCmd())
	return cmd
}

func bookingCreateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "create [application-id]",
		Short: "Book a flat for a successful application",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			session, err := requireRole(string(domain.RoleOfficer))
			if err != nil {
				return err
			}

			flatType, _ := cmd.Flags().GetString("flat-type")
			return wire.BookingAdapter().Create(cmd.Context(), args[0], flatType, session.NRIC)
		},
	}

	cmd.Flags().String("flat-type", "", "flat type to book (may differ from the applied type)")
	cmd.MarkFlagRequired("flat-type")
	return cmd
}

func bookingReceiptCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "receipt [booking-id]",
		Short: "Print a booking receipt",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if _, err := currentSession(); err != nil {
				return err
			}
			return wire.BookingAdapter().Receipt(cmd.Context(), args[0])
		},
	}
}

func bookingListCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List a project's bookings",
		RunE: func(cmd *cobra.Command, args []string) error {
			if _, err := currentSession(); err != nil {
				return err
			}

			projectID, _ := cmd.Flags().GetString("project")
			return wire.BookingAdapter().ListByProject(cmd.Context(), projectID)
		},
	}

	cmd.Flags().String("project", "", "project to list bookings for")
	cmd.MarkFlagRequired("project")
	return cmd
}
