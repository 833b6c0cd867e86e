package main

import (
	"fmt"
	"time"

	"github.com/fatih/color"
	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/prepwise/studyplan/internal/planner"
)

func newPlanCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "plan",
		Short: "Create and manage study plans",
	}
	cmd.AddCommand(newPlanCreateCommand())
	cmd.AddCommand(newPlanRecalculateCommand())
	cmd.AddCommand(newPlanStatusCommand())
	return cmd
}

func newPlanCreateCommand() *cobra.Command {
	var (
		studentID        string
		subjectID        string
		planName         string
		targetDate       string
		studyDaysPerWeek int
		maxDailyMinutes  int
		unitIDs          []string
	)

	cmd := &cobra.Command{
		Use:   "create",
		Short: "Create a study plan for selected units up to a target date",
		RunE: func(cmd *cobra.Command, args []string) error {
			target, err := parseDate(targetDate)
			if err != nil {
				return err
			}

			input := planner.CreateStudyPlanInput{
				StudentID:        studentID,
				SubjectID:        subjectID,
				PlanName:         planName,
				TargetDate:       target,
				StudyDaysPerWeek: studyDaysPerWeek,
				UnitIDs:          unitIDs,
			}
			if maxDailyMinutes > 0 {
				input.MaxDailyMinutes = &maxDailyMinutes
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

			summary, err := newService(cfg, db).CreateStudyPlan(cmd.Context(), input)
			if err != nil {
				return fmt.Errorf("failed to create study plan: %w", err)
			}

			printPlanSummary(summary)
			return nil
		},
	}

	cmd.Flags().StringVar(&studentID, "student", "", "Student ID")
	cmd.Flags().StringVar(&subjectID, "subject", "", "Subject ID")
	cmd.Flags().StringVar(&planName, "name", "", "Plan name")
	cmd.Flags().StringVar(&targetDate, "target-date", "", "Target exam date (YYYY-MM-DD)")
	cmd.Flags().IntVar(&studyDaysPerWeek, "days-per-week", 5, "Study days per week (3-7)")
	cmd.Flags().IntVar(&maxDailyMinutes, "max-daily-minutes", 0, "Optional cap on daily study minutes")
	cmd.Flags().StringSliceVar(&unitIDs, "units", nil, "Topic IDs to study (comma separated)")
	_ = cmd.MarkFlagRequired("student")
	_ = cmd.MarkFlagRequired("subject")
	_ = cmd.MarkFlagRequired("target-date")
	_ = cmd.MarkFlagRequired("units")

	return cmd
}

func newPlanRecalculateCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "recalculate [plan-id]",
		Short: "Re-run mastery estimation and allocation over the remaining days",
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

			summary, err := newService(cfg, db).RecalculatePlan(cmd.Context(), planID)
			if err != nil {
				return fmt.Errorf("failed to recalculate plan: %w", err)
			}

			if summary.Plan.Status == planner.PlanStatusExpired {
				color.Yellow("Plan %s has passed its target date and is now expired", summary.Plan.ID)
				return nil
			}

			printPlanSummary(summary)
			return nil
		},
	}
	return cmd
}

func newPlanStatusCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "status",
		Short: "Show the active plan for a student and subject",
		RunE: func(cmd *cobra.Command, args []string) error {
			studentID, _ := cmd.Flags().GetString("student")
			subjectID, _ := cmd.Flags().GetString("subject")

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

			plan, err := newService(cfg, db).ActivePlanForStudent(cmd.Context(), studentID, subjectID)
			if err != nil {
				return err
			}
			if plan == nil {
				fmt.Printf("No active plan for %s/%s\n", studentID, subjectID)
				return nil
			}

			printPlan(plan)

			repo := planner.NewDBPlanRepository(db, cfg.Planner.RetryAttempts)
			logs, err := repo.FindDailyLogs(cmd.Context(), plan.ID)
			if err != nil {
				return err
			}
			printDailyLogs(logs)
			return nil
		},
	}

	cmd.Flags().String("student", "", "Student ID")
	cmd.Flags().String("subject", "", "Subject ID")
	_ = cmd.MarkFlagRequired("student")
	_ = cmd.MarkFlagRequired("subject")

	return cmd
}

func printPlanSummary(summary *planner.PlanSummary) {
	printPlan(&summary.Plan)

	if len(summary.Units) > 0 {
		fmt.Println("Units:")
		for _, unit := range summary.Units {
			fmt.Printf("  %-30s %4d min\n", unit.TopicID, unit.RequiredMinutes)
		}
	}
	for _, warning := range summary.Warnings {
		color.Yellow("Warning: %s", warning)
	}
}

func printPlan(plan *planner.StudyPlan) {
	fmt.Printf("Plan %s (%s)\n", plan.ID, plan.Status)
	if plan.Name != "" {
		fmt.Printf("  Name:            %s\n", plan.Name)
	}
	fmt.Printf("  Student:         %s\n", plan.UserID)
	fmt.Printf("  Subject:         %s\n", plan.SubjectID)
	fmt.Printf("  Target date:     %s\n", plan.TargetDate.Format(time.DateOnly))
	fmt.Printf("  Study days/week: %d\n", plan.StudyDaysPerWeek)
	fmt.Printf("  Total required:  %d min over %d study days\n", plan.TotalRequiredMinutes, plan.TotalStudyDays)
	fmt.Printf("  Daily required:  %d min\n", plan.DailyMinutesRequired)
}

func printDailyLogs(logs []planner.DailyLog) {
	if len(logs) == 0 {
		return
	}

	fmt.Println("Daily logs:")
	for _, log := range logs {
		statusColor := logStatusColor(log.Status)
		fmt.Printf("  %s  planned %3d min, actual %3d min  %s\n",
			log.Date.Format(time.DateOnly), log.PlannedMinutes, log.ActualTotalMinutes,
			statusColor.Sprint(log.Status))
	}
}

func logStatusColor(status planner.LogStatus) *color.Color {
	switch status {
	case planner.LogStatusDone:
		return color.New(color.FgGreen)
	case planner.LogStatusPartial:
		return color.New(color.FgYellow)
	case planner.LogStatusMissed:
		return color.New(color.FgRed)
	default:
		return color.New(color.FgWhite)
	}
}

func parseDate(value string) (time.Time, error) {
	parsed, err := time.Parse(time.DateOnly, value)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date %q, expected YYYY-MM-DD", value)
	}
	return parsed, nil
}

func parsePlanID(value string) (uuid.UUID, error) {
	planID, err := uuid.Parse(value)
	if err != nil {
		return uuid.Nil, fmt.Errorf("invalid plan ID %q: %w", value, err)
	}
	return planID, nil
}
