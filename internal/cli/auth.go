package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/rebeccamsl/BTO-management-system-sub000/internal/config"
	"github.com/rebeccamsl/BTO-management-system-sub000/internal/ports/primary"
	"github.com/rebeccamsl/BTO-management-system-sub000/internal/wire"
)

// LoginCmd returns the login command
func LoginCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "login [nric]",
		Short: "Log in and start a session",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			password, _ := cmd.Flags().GetString("password")

			user, err := wire.AuthService().Login(cmd.Context(), primary.LoginRequest{
				NRIC:     args[0],
				Password: password,
			})
			if err != nil {
				return err
			}

			dir, err := config.DefaultDir()
			if err != nil {
				return err
			}
			err = config.SaveSession(dir, &config.Session{
				Version: "1.0",
				NRIC:    user.NRIC,
				Name:    user.Name,
				Role:    user.Role,
			})
			if err != nil {
				return err
			}

			fmt.Printf("✓ Logged in as %s (%s, %s)\n", user.Name, user.NRIC, user.Role)
			return nil
		},
	}

	cmd.Flags().StringP("password", "p", "", "account password")
	cmd.MarkFlagRequired("password")
	return cmd
}

// LogoutCmd returns the logout command
func LogoutCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "logout",
		Short: "End the current session",
		RunE: func(cmd *cobra.Command, args []string) error {
			dir, err := config.DefaultDir()
			if err != nil {
				return err
			}
			if err := config.ClearSession(dir); err != nil {
				return err
			}

			fmt.Println("✓ Logged out")
			return nil
		},
	}
}

// WhoamiCmd returns the whoami command
func WhoamiCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "whoami",
		Short: "Show the current session",
		RunE: func(cmd *cobra.Command, args []string) error {
			session, err := currentSession()
			if err != nil {
				return err
			}

			fmt.Printf("%s (%s, %s)\n", session.Name, session.NRIC, session.Role)
			return nil
		},
	}
}

// PasswdCmd returns the passwd command
func PasswdCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "passwd",
		Short: "Change the current user's password",
		RunE: func(cmd *cobra.Command, args []string) error {
			session, err := currentSession()
			if err != nil {
				return err
			}

			oldPassword, _ := cmd.Flags().GetString("old")
			newPassword, _ := cmd.Flags().GetString("new")

			err = wire.AuthService().ChangePassword(cmd.Context(), primary.ChangePasswordRequest{
				NRIC:        session.NRIC,
				OldPassword: oldPassword,
				NewPassword: newPassword,
			})
			if err != nil {
				return err
			}

			fmt.Println("✓ Password changed")
			return nil
		},
	}

	cmd.Flags().String("old", "", "current password")
	cmd.Flags().String("new", "", "new password")
	cmd.MarkFlagRequired("old")
	cmd.MarkFlagRequired("new")
	return cmd
}
