// Package planner implements study plan allocation, reconciliation, and lifecycle.
package planner

import (
	"time"

	"github.com/google/uuid"
)

// PlanStatus is the lifecycle state of a study plan.
type PlanStatus string

const (
	PlanStatusActive    PlanStatus = "active"
	PlanStatusCompleted PlanStatus = "completed"
	PlanStatusPaused    PlanStatus = "paused"
	PlanStatusArchived  PlanStatus = "archived"
	PlanStatusCancelled PlanStatus = "cancelled"
	PlanStatusExpired   PlanStatus = "expired"
)

// LogStatus is the completion state of a single study day.
type LogStatus string

const (
	LogStatusPending LogStatus = "pending"
	LogStatusPartial LogStatus = "partial"
	LogStatusDone    LogStatus = "done"
	LogStatusMissed  LogStatus = "missed"
)

// doneThreshold is the fraction of planned minutes that counts a day as done.
const doneThreshold = 0.9

// StudyPlan is a student's plan for one subject up to a target exam date.
type StudyPlan struct {
	ID                   uuid.UUID  `db:"id"`
	UserID               string     `db:"user_id"`
	SubjectID            string     `db:"subject_id"`
	Name                 string     `db:"name"`
	TargetDate           time.Time  `db:"target_date"`
	StudyDaysPerWeek     int        `db:"study_days_per_week"`
	MaxDailyMinutes      *int       `db:"max_daily_minutes"`
	TotalRequiredMinutes int        `db:"total_required_minutes"`
	TotalStudyDays       int        `db:"total_study_days"`
	DailyMinutesRequired int        `db:"daily_minutes_required"`
	Status               PlanStatus `db:"status"`
	CreatedAt            time.Time  `db:"created_at"`
	UpdatedAt            time.Time  `db:"updated_at"`
}

// StudyPlanUnit is the required study time for one selected topic.
type StudyPlanUnit struct {
	PlanID          uuid.UUID `db:"plan_id"`
	TopicID         string    `db:"topic_id"`
	RequiredMinutes int       `db:"required_minutes"`
}

// DailyLog is one study day's planned budget and observed study time.
type DailyLog struct {
	PlanID                   uuid.UUID `db:"plan_id"`
	Date                     time.Time `db:"log_date"`
	PlannedMinutes           int       `db:"planned_minutes"`
	PlannedQuestionsMinutes  int       `db:"planned_questions_minutes"`
	PlannedLessonsMinutes    int       `db:"planned_lessons_minutes"`
	PlannedFlashcardsMinutes int       `db:"planned_flashcards_minutes"`
	ActualTotalMinutes       int       `db:"actual_total_minutes"`
	ActualQuestionsMinutes   int       `db:"actual_questions_minutes"`
	ActualLessonsMinutes     int       `db:"actual_lessons_minutes"`
	ActualFlashcardsMinutes  int       `db:"actual_flashcards_minutes"`
	Status                   LogStatus `db:"status"`
	UpdatedAt                time.Time `db:"updated_at"`
}

// CreateStudyPlanInput is the caller-supplied request for a new plan.
type CreateStudyPlanInput struct {
	StudentID        string
	SubjectID        string
	PlanName         string
	TargetDate       time.Time
	StudyDaysPerWeek int
	MaxDailyMinutes  *int
	UnitIDs          []string
}

// ActivityInput is the caller-supplied request for recording a study activity.
type ActivityInput struct {
	StudentID       string
	SubjectID       string
	TopicID         string
	ActivityType    string
	DurationMinutes int
	CorrectCount    int
	TotalCount      int
	OccurredAt      time.Time
}

// PlanSummary is the result of creating or recalculating a plan.
type PlanSummary struct {
	Plan     StudyPlan
	Units    []StudyPlanUnit
	Warnings []string
}

// DateOnly truncates t to midnight UTC, the canonical form for study-day dates.
func DateOnly(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
