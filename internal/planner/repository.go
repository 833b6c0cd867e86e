package planner

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/prepwise/studyplan/internal/database"
)

//go:generate mockgen -source=repository.go -destination=../mocks/planner/mock_repository.go -package=mock_planner

// PlanRepository defines persistence operations for study plans, their units,
// and their daily logs.
type PlanRepository interface {
	CreatePlan(ctx context.Context, plan *StudyPlan, units []StudyPlanUnit, logs []DailyLog) error
	FindPlan(ctx context.Context, planID uuid.UUID) (*StudyPlan, error)
	FindActivePlan(ctx context.Context, userID, subjectID string) (*StudyPlan, error)
	UpdatePlanTotals(ctx context.Context, plan *StudyPlan) error
	UpdatePlanStatus(ctx context.Context, planID uuid.UUID, status PlanStatus) error
	FindUnits(ctx context.Context, planID uuid.UUID) ([]StudyPlanUnit, error)
	UpdateUnitMinutes(ctx context.Context, planID uuid.UUID, perUnitMinutes map[string]int) error
	FindDailyLog(ctx context.Context, planID uuid.UUID, date time.Time) (*DailyLog, error)
	FindDailyLogs(ctx context.Context, planID uuid.UUID) ([]DailyLog, error)
	UpdatePendingPlannedMinutes(ctx context.Context, planID uuid.UUID, from time.Time, planned, questions, lessons, flashcards int) error
	UpsertDailyLog(ctx context.Context, log *DailyLog) error
}

// DBPlanRepository implements PlanRepository using Postgres. Every call is
// wrapped in a bounded-backoff retry so transient store failures do not
// surface to the scheduling logic.
type DBPlanRepository struct {
	db            *sqlx.DB
	retryAttempts uint
}

// NewDBPlanRepository creates a new DBPlanRepository.
func NewDBPlanRepository(db *sqlx.DB, retryAttempts uint) *DBPlanRepository {
	return &DBPlanRepository{db: db, retryAttempts: retryAttempts}
}

// CreatePlan inserts a plan with its units and pre-populated daily logs in one transaction.
func (r *DBPlanRepository) CreatePlan(ctx context.Context, plan *StudyPlan, units []StudyPlanUnit, logs []DailyLog) error {
	return database.WithRetry(ctx, r.retryAttempts, func() error {
		return database.RunInTx(ctx, r.db, func(ctx context.Context, tx *sqlx.Tx) error {
			if _, err := tx.ExecContext(ctx,
				`INSERT INTO study_plans
					(id, user_id, subject_id, name, target_date, study_days_per_week, max_daily_minutes,
					total_required_minutes, total_study_days, daily_minutes_required, status)
				VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)`,
				plan.ID, plan.UserID, plan.SubjectID, plan.Name, plan.TargetDate,
				plan.StudyDaysPerWeek, plan.MaxDailyMinutes, plan.TotalRequiredMinutes,
				plan.TotalStudyDays, plan.DailyMinutesRequired, plan.Status); err != nil {
				return fmt.Errorf("tx.ExecContext(insert study_plan) > %w", err)
			}

			if len(units) > 0 {
				columns := []string{"plan_id", "topic_id", "required_minutes"}
				query := database.BuildMultiRowInsert("study_plan_units", columns, len(units))
				var args []interface{}
				for _, unit := range units {
					args = append(args, unit.PlanID, unit.TopicID, unit.RequiredMinutes)
				}
				if _, err := tx.ExecContext(ctx, query, args...); err != nil {
					return fmt.Errorf("tx.ExecContext(insert study_plan_units) > %w", err)
				}
			}

			if len(logs) > 0 {
				columns := []string{
					"plan_id", "log_date", "planned_minutes", "planned_questions_minutes",
					"planned_lessons_minutes", "planned_flashcards_minutes", "status",
				}
				query := database.BuildMultiRowInsert("study_plan_daily_logs", columns, len(logs))
				var args []interface{}
				for _, log := range logs {
					args = append(args, log.PlanID, log.Date, log.PlannedMinutes,
						log.PlannedQuestionsMinutes, log.PlannedLessonsMinutes,
						log.PlannedFlashcardsMinutes, log.Status)
				}
				if _, err := tx.ExecContext(ctx, query, args...); err != nil {
					return fmt.Errorf("tx.ExecContext(insert study_plan_daily_logs) > %w", err)
				}
			}

			return nil
		})
	})
}

// FindPlan returns a plan by ID, or nil if not found.
func (r *DBPlanRepository) FindPlan(ctx context.Context, planID uuid.UUID) (*StudyPlan, error) {
	var plan StudyPlan
	err := database.WithRetry(ctx, r.retryAttempts, func() error {
		return r.db.GetContext(ctx, &plan, "SELECT * FROM study_plans WHERE id = $1", planID)
	})
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("db.GetContext(study_plan) > %w", err)
	}
	return &plan, nil
}

// FindActivePlan returns the student's active plan for a subject, or nil if none.
func (r *DBPlanRepository) FindActivePlan(ctx context.Context, userID, subjectID string) (*StudyPlan, error) {
	var plan StudyPlan
	err := database.WithRetry(ctx, r.retryAttempts, func() error {
		return r.db.GetContext(ctx, &plan,
			`SELECT * FROM study_plans
			WHERE user_id = $1 AND subject_id = $2 AND status = $3
			ORDER BY created_at DESC LIMIT 1`,
			userID, subjectID, PlanStatusActive)
	})
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("db.GetContext(active study_plan) > %w", err)
	}
	return &plan, nil
}

// UpdatePlanTotals updates the allocation totals of a plan.
func (r *DBPlanRepository) UpdatePlanTotals(ctx context.Context, plan *StudyPlan) error {
	err := database.WithRetry(ctx, r.retryAttempts, func() error {
		_, err := r.db.ExecContext(ctx,
			`UPDATE study_plans
			SET total_required_minutes = $1, total_study_days = $2, daily_minutes_required = $3, updated_at = now()
			WHERE id = $4`,
			plan.TotalRequiredMinutes, plan.TotalStudyDays, plan.DailyMinutesRequired, plan.ID)
		return err
	})
	if err != nil {
		return fmt.Errorf("db.ExecContext(update study_plan totals) > %w", err)
	}
	return nil
}

// UpdatePlanStatus transitions a plan to a new status.
func (r *DBPlanRepository) UpdatePlanStatus(ctx context.Context, planID uuid.UUID, status PlanStatus) error {
	err := database.WithRetry(ctx, r.retryAttempts, func() error {
		_, err := r.db.ExecContext(ctx,
			"UPDATE study_plans SET status = $1, updated_at = now() WHERE id = $2",
			status, planID)
		return err
	})
	if err != nil {
		return fmt.Errorf("db.ExecContext(update study_plan status) > %w", err)
	}
	return nil
}

// FindUnits returns a plan's units ordered by topic.
func (r *DBPlanRepository) FindUnits(ctx context.Context, planID uuid.UUID) ([]StudyPlanUnit, error) {
	var units []StudyPlanUnit
	err := database.WithRetry(ctx, r.retryAttempts, func() error {
		return r.db.SelectContext(ctx, &units,
			"SELECT * FROM study_plan_units WHERE plan_id = $1 ORDER BY topic_id", planID)
	})
	if err != nil {
		return nil, fmt.Errorf("db.SelectContext(study_plan_units) > %w", err)
	}
	return units, nil
}

// UpdateUnitMinutes rewrites the required minutes of a plan's units.
func (r *DBPlanRepository) UpdateUnitMinutes(ctx context.Context, planID uuid.UUID, perUnitMinutes map[string]int) error {
	return database.WithRetry(ctx, r.retryAttempts, func() error {
		return database.RunInTx(ctx, r.db, func(ctx context.Context, tx *sqlx.Tx) error {
			for topicID, minutes := range perUnitMinutes {
				if _, err := tx.ExecContext(ctx,
					"UPDATE study_plan_units SET required_minutes = $1 WHERE plan_id = $2 AND topic_id = $3",
					minutes, planID, topicID); err != nil {
					return fmt.Errorf("tx.ExecContext(update study_plan_unit %s) > %w", topicID, err)
				}
			}
			return nil
		})
	})
}

// FindDailyLog returns the log row for a study day, or nil if none exists.
func (r *DBPlanRepository) FindDailyLog(ctx context.Context, planID uuid.UUID, date time.Time) (*DailyLog, error) {
	var log DailyLog
	err := database.WithRetry(ctx, r.retryAttempts, func() error {
		return r.db.GetContext(ctx, &log,
			"SELECT * FROM study_plan_daily_logs WHERE plan_id = $1 AND log_date = $2",
			planID, date)
	})
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("db.GetContext(study_plan_daily_log) > %w", err)
	}
	return &log, nil
}

// FindDailyLogs returns all log rows of a plan ordered by date.
func (r *DBPlanRepository) FindDailyLogs(ctx context.Context, planID uuid.UUID) ([]DailyLog, error) {
	var logs []DailyLog
	err := database.WithRetry(ctx, r.retryAttempts, func() error {
		return r.db.SelectContext(ctx, &logs,
			"SELECT * FROM study_plan_daily_logs WHERE plan_id = $1 ORDER BY log_date", planID)
	})
	if err != nil {
		return nil, fmt.Errorf("db.SelectContext(study_plan_daily_logs) > %w", err)
	}
	return logs, nil
}

// UpdatePendingPlannedMinutes rewrites planned budgets on logs that are still
// pending and dated from or later. Completed history is never touched.
func (r *DBPlanRepository) UpdatePendingPlannedMinutes(ctx context.Context, planID uuid.UUID, from time.Time, planned, questions, lessons, flashcards int) error {
	err := database.WithRetry(ctx, r.retryAttempts, func() error {
		_, err := r.db.ExecContext(ctx,
			`UPDATE study_plan_daily_logs
			SET planned_minutes = $1, planned_questions_minutes = $2,
				planned_lessons_minutes = $3, planned_flashcards_minutes = $4, updated_at = now()
			WHERE plan_id = $5 AND log_date >= $6 AND status = $7`,
			planned, questions, lessons, flashcards, planID, from, LogStatusPending)
		return err
	})
	if err != nil {
		return fmt.Errorf("db.ExecContext(update pending planned minutes) > %w", err)
	}
	return nil
}

// UpsertDailyLog writes a fully computed log row keyed on (plan_id, log_date).
// Re-running with the same inputs produces the same row.
func (r *DBPlanRepository) UpsertDailyLog(ctx context.Context, log *DailyLog) error {
	err := database.WithRetry(ctx, r.retryAttempts, func() error {
		_, err := r.db.ExecContext(ctx,
			`INSERT INTO study_plan_daily_logs
				(plan_id, log_date, planned_minutes, planned_questions_minutes,
				planned_lessons_minutes, planned_flashcards_minutes,
				actual_total_minutes, actual_questions_minutes,
				actual_lessons_minutes, actual_flashcards_minutes, status)
			VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
			ON CONFLICT (plan_id, log_date) DO UPDATE SET
				planned_minutes = EXCLUDED.planned_minutes,
				planned_questions_minutes = EXCLUDED.planned_questions_minutes,
				planned_lessons_minutes = EXCLUDED.planned_lessons_minutes,
				planned_flashcards_minutes = EXCLUDED.planned_flashcards_minutes,
				actual_total_minutes = EXCLUDED.actual_total_minutes,
				actual_questions_minutes = EXCLUDED.actual_questions_minutes,
				actual_lessons_minutes = EXCLUDED.actual_lessons_minutes,
				actual_flashcards_minutes = EXCLUDED.actual_flashcards_minutes,
				status = EXCLUDED.status,
				updated_at = now()`,
			log.PlanID, log.Date, log.PlannedMinutes, log.PlannedQuestionsMinutes,
			log.PlannedLessonsMinutes, log.PlannedFlashcardsMinutes,
			log.ActualTotalMinutes, log.ActualQuestionsMinutes,
			log.ActualLessonsMinutes, log.ActualFlashcardsMinutes, log.Status)
		return err
	})
	if err != nil {
		return fmt.Errorf("db.ExecContext(upsert study_plan_daily_log) > %w", err)
	}
	return nil
}
