package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/prepwise/studyplan/internal/database"
	"github.com/prepwise/studyplan/schemas"
)

func newMigrateCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "migrate",
		Short: "Apply pending database migrations",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return fmt.Errorf("failed to load configuration: %w", err)
			}

			db, err := openDB(cfg)
			if err != nil {
				return err
			}
			defer func() {
				_ = db.Close()
			}()

			if err := database.Migrate(cmd.Context(), db, schemas.Migrations, "migrations"); err != nil {
				return fmt.Errorf("database.Migrate() > %w", err)
			}

			fmt.Println("Migrations applied")
			return nil
		},
	}
	return cmd
}
