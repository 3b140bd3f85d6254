package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/rebeccamsl/BTO-management-system-sub000/internal/db"
)

// InitCmd returns the init command
func InitCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "init",
		Short: "Initialize the BTO database",
		Long:  `Initialize the BTO database at ~/.bto/bto.db with the required schema.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			dbPath, err := db.GetDBPath()
			if err != nil {
				return fmt.Errorf("failed to get database path: %w", err)
			}

			fmt.Printf("Initializing BTO database at %s\n", dbPath)

			if err := db.InitSchema(); err != nil {
				return fmt.Errorf("failed to initialize schema: %w", err)
			}

			fmt.Println("✓ Database initialized successfully")

			seed, _ := cmd.Flags().GetBool("seed")
			if seed {
				database, err := db.GetDB()
				if err != nil {
					return err
				}
				if err := db.SeedFixtures(database); err != nil {
					return fmt.Errorf("failed to seed fixtures: %w", err)
				}
				fmt.Println("✓ Sample users and projects seeded")
			}

			fmt.Println()
			fmt.Println("Next steps:")
			fmt.Println("  bto login S1234567A -p password")
			fmt.Println("  bto project list")

			return nil
		},
	}

	cmd.Flags().Bool("seed", false, "seed sample users and projects")
	return cmd
}
