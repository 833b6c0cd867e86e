package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/prepwise/studyplan/internal/planner"
)

func newLogCommand() *cobra.Command {
	var (
		studentID    string
		subjectID    string
		topicID      string
		activityType string
		minutes      int
		correct      int
		total        int
		occurredAt   string
	)

	cmd := &cobra.Command{
		Use:   "log",
		Short: "Record a study activity",
		RunE: func(cmd *cobra.Command, args []string) error {
			input := planner.ActivityInput{
				StudentID:       studentID,
				SubjectID:       subjectID,
				TopicID:         topicID,
				ActivityType:    activityType,
				DurationMinutes: minutes,
				CorrectCount:    correct,
				TotalCount:      total,
			}
			if occurredAt != "" {
				parsed, err := time.Parse(time.RFC3339, occurredAt)
				if err != nil {
					return fmt.Errorf("invalid timestamp %q, expected RFC 3339", occurredAt)
				}
				input.OccurredAt = parsed
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

			if err := newService(cfg, db).LogStudyActivity(cmd.Context(), input); err != nil {
				return fmt.Errorf("failed to log study activity: %w", err)
			}

			fmt.Printf("Logged %d min of %s for %s/%s\n", minutes, activityType, studentID, subjectID)
			return nil
		},
	}

	cmd.Flags().StringVar(&studentID, "student", "", "Student ID")
	cmd.Flags().StringVar(&subjectID, "subject", "", "Subject ID")
	cmd.Flags().StringVar(&topicID, "topic", "", "Topic ID")
	cmd.Flags().StringVar(&activityType, "type", "", "Activity type (questions, lessons, flashcards, ...)")
	cmd.Flags().IntVar(&minutes, "minutes", 0, "Duration in minutes")
	cmd.Flags().IntVar(&correct, "correct", 0, "Correctly answered questions")
	cmd.Flags().IntVar(&total, "total", 0, "Total graded questions")
	cmd.Flags().StringVar(&occurredAt, "at", "", "When the activity happened (RFC 3339, defaults to now)")
	_ = cmd.MarkFlagRequired("student")
	_ = cmd.MarkFlagRequired("subject")
	_ = cmd.MarkFlagRequired("type")

	return cmd
}
