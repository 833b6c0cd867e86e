package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/prepwise/studyplan/internal/planner"
	"github.com/prepwise/studyplan/internal/statistics"
)

func newStatsCommand() *cobra.Command {
	var year, month int

	cmd := &cobra.Command{
		Use:   "stats [plan-id]",
		Short: "Show monthly adherence statistics for a plan",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if month != 0 && year == 0 {
				return fmt.Errorf("--month requires --year to be specified")
			}
			if month < 0 || month > 12 {
				return fmt.Errorf("--month must be between 1 and 12")
			}

			planID, err := parsePlanID(args[0])
			if err != nil {
				return err
			}

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

			repo := planner.NewDBPlanRepository(db, cfg.Planner.RetryAttempts)
			logs, err := repo.FindDailyLogs(cmd.Context(), planID)
			if err != nil {
				return err
			}

			result := statistics.CalculateStatistics(logs, year, month)
			printStatistics(result)
			return nil
		},
	}

	cmd.Flags().IntVar(&year, "year", 0, "Filter by year (e.g., 2026)")
	cmd.Flags().IntVar(&month, "month", 0, "Filter by month (1-12), requires --year")

	return cmd
}

func printStatistics(result statistics.StatisticsResult) {
	if len(result.Periods) == 0 {
		fmt.Println("No study days found")
		return
	}

	fmt.Printf("%-8s %6s %8s %7s %8s %9s %8s\n",
		"Period", "Done", "Partial", "Missed", "Pending", "Planned", "Actual")
	for _, period := range result.Periods {
		fmt.Printf("%-8s %6d %8d %7d %8d %8dm %7dm\n",
			period.Period, period.DoneDays, period.PartialDays, period.MissedDays,
			period.PendingDays, period.PlannedMinutes, period.ActualMinutes)
	}

	aggregate := result.Aggregate
	fmt.Printf("\nTotal: %d done, %d partial, %d missed, %d pending (%dm planned, %dm actual)\n",
		aggregate.DoneDays, aggregate.PartialDays, aggregate.MissedDays, aggregate.PendingDays,
		aggregate.PlannedMinutes, aggregate.ActualMinutes)
	fmt.Printf("Adherence rate: %.0f%%\n", 100*aggregate.AdherenceRate())
}
