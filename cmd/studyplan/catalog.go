package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/prepwise/studyplan/internal/catalog"
)

func newCatalogCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "catalog",
		Short: "Manage the unit time-profile catalog",
	}
	cmd.AddCommand(newCatalogImportCommand())
	return cmd
}

func newCatalogImportCommand() *cobra.Command {
	var dryRun bool

	cmd := &cobra.Command{
		Use:   "import [file]",
		Short: "Import unit time profiles from a YAML file",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return fmt.Errorf("failed to load configuration: %w", err)
			}

			path := cfg.Catalog.ProfilesFile
			if len(args) > 0 {
				path = args[0]
			}

			db, err := openDB(cfg)
			if err != nil {
				return err
			}
			defer func() {
				_ = db.Close()
			}()

			importer := catalog.NewImporter(catalog.NewDBProfileRepository(db), os.Stdout)
			result, err := importer.ImportFile(cmd.Context(), path, catalog.ImportOptions{DryRun: dryRun})
			if err != nil {
				return fmt.Errorf("importer.ImportFile(%s) > %w", path, err)
			}

			fmt.Printf("Imported %d new, updated %d, skipped %d profiles\n",
				result.ProfilesNew, result.ProfilesUpdated, result.ProfilesSkipped)
			return nil
		},
	}

	cmd.Flags().BoolVar(&dryRun, "dry-run", false, "Validate the file without writing to the database")

	return cmd
}
