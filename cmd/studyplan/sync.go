package main

import (
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/robfig/cron/v3"
	"github.com/spf13/cobra"
)

func newSyncCommand() *cobra.Command {
	var date string

	cmd := &cobra.Command{
		Use:   "sync [plan-id]",
		Short: "Reconcile a plan's daily logs against tracked study time",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
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

			service := newService(cfg, db)
			if date == "" {
				if err := service.SyncAllDailyLogs(cmd.Context(), planID); err != nil {
					return fmt.Errorf("failed to sync daily logs: %w", err)
				}
				fmt.Printf("Synced all daily logs of plan %s\n", planID)
				return nil
			}

			day, err := parseDate(date)
			if err != nil {
				return err
			}
			if err := service.SyncDailyLog(cmd.Context(), planID, day); err != nil {
				return fmt.Errorf("failed to sync daily log: %w", err)
			}
			fmt.Printf("Synced %s of plan %s\n", day.Format(time.DateOnly), planID)
			return nil
		},
	}

	cmd.Flags().StringVar(&date, "date", "", "Sync a single day (YYYY-MM-DD) instead of all elapsed days")

	cmd.AddCommand(newSyncWatchCommand())

	return cmd
}

func newSyncWatchCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "watch [plan-id]",
		Short: "Keep reconciling a plan's daily logs on the configured schedule",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
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

			service := newService(cfg, db)
			scheduler := cron.New()
			_, err = scheduler.AddFunc(cfg.Planner.SyncSchedule, func() {
				if err := service.SyncAllDailyLogs(cmd.Context(), planID); err != nil {
					slog.Error("scheduled sync failed", "plan_id", planID, "error", err)
					return
				}
				slog.Info("scheduled sync finished", "plan_id", planID)
			})
			if err != nil {
				return fmt.Errorf("invalid sync schedule %q: %w", cfg.Planner.SyncSchedule, err)
			}

			scheduler.Start()
			defer scheduler.Stop()
			fmt.Printf("Watching plan %s on schedule %q, press Ctrl+C to stop\n", planID, cfg.Planner.SyncSchedule)

			sigCh := make(chan os.Signal, 1)
			signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)
			select {
			case <-sigCh:
			case <-cmd.Context().Done():
			}
			return nil
		},
	}
	return cmd
}
