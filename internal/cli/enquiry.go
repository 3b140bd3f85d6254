package cli

import (
	"github.com/spf13/cobra"

	"github.com/rebeccamsl/BTO-management-system-sub000/internal/wire"
)

// EnquiryCmd returns the enquiry command group
func EnquiryCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "enquiry",
		Short: "Manage project enquiries",
		Long:  "Submit, edit, and reply to enquiries about projects",
	}

	cmd.AddCommand(enquirySubmitCmd())
	cmd.AddCommand(enquiryEditCmd())
	cmd.AddCommand(enquiryDeleteCmd())
	cmd.AddCommand(enquiryReplyCmd())
	cmd.AddCommand(enquiryListCmd())
	return cmd
}

func enquirySubmitCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "submit [project-id] [content]",
		Short: "Submit an enquiry about a project",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			session, err := currentSession()
			if err != nil {
				return err
			}

			return wire.EnquiryAdapter().Submit(cmd.Context(), session.NRIC, args[0], args[1])
		},
	}
}

func enquiryEditCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "edit [enquiry-id] [content]",
		Short: "Edit your unreplied enquiry",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			session, err := currentSession()
			if err != nil {
				return err
			}

			return wire.EnquiryAdapter().Edit(cmd.Context(), args[0], session.NRIC, args[1])
		},
	}
}

func enquiryDeleteCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "delete [enquiry-id]",
		Short: "Delete your unreplied enquiry",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			session, err := currentSession()
			if err != nil {
				return err
			}

			return wire.EnquiryAdapter().Delete(cmd.Context(), args[0], session.NRIC)
		},
	}
}

func enquiryReplyCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "reply [enquiry-id] [reply]",
		Short: "Reply to an enquiry (handling officer or managing authority)",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			session, err := currentSession()
			if err != nil {
				return err
			}

			return wire.EnquiryAdapter().Reply(cmd.Context(), args[0], session.NRIC, args[1])
		},
	}
}

func enquiryListCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List enquiries",
		Long: `List enquiries. Without flags, lists your own enquiries.
With --project, lists a project's enquiries.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			session, err := currentSession()
			if err != nil {
				return err
			}

			projectID, _ := cmd.Flags().GetString("project")
			if projectID != "" {
				return wire.EnquiryAdapter().ListByProject(cmd.Context(), projectID)
			}
			return wire.EnquiryAdapter().ListByApplicant(cmd.Context(), session.NRIC)
		},
	}

	cmd.Flags().String("project", "", "list a project's enquiries")
	return cmd
}
