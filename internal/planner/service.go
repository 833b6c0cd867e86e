package planner

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/prepwise/studyplan/internal/analytics"
	"github.com/prepwise/studyplan/internal/catalog"
)

// Service orchestrates plan creation, recalculation, and daily log
// reconciliation. It holds no state beyond its injected dependencies.
type Service struct {
	profiles  catalog.ProfileRepository
	analytics analytics.Repository
	plans     PlanRepository
	estimator *MasteryEstimator
	now       func() time.Time
}

// ServiceOption configures a Service.
type ServiceOption func(*Service)

// WithClock overrides the service's time source.
func WithClock(now func() time.Time) ServiceOption {
	return func(s *Service) {
		s.now = now
	}
}

// NewService creates a new Service.
func NewService(
	profileRepo catalog.ProfileRepository,
	analyticsRepo analytics.Repository,
	planRepo PlanRepository,
	opts ...ServiceOption,
) *Service {
	service := &Service{
		profiles:  profileRepo,
		analytics: analyticsRepo,
		plans:     planRepo,
		estimator: NewMasteryEstimator(analyticsRepo),
		now:       time.Now,
	}
	for _, opt := range opts {
		opt(service)
	}
	return service
}

// CreateStudyPlan builds and persists a new active plan with one unit per
// selected topic and pre-populated daily logs for every study day up to the
// target date.
func (s *Service) CreateStudyPlan(ctx context.Context, input CreateStudyPlanInput) (*PlanSummary, error) {
	if err := validateCreateInput(input); err != nil {
		return nil, err
	}

	today := DateOnly(s.now())
	targetDate := DateOnly(input.TargetDate)

	profiles, err := s.profiles.FindBySubjectAndTopics(ctx, input.SubjectID, input.UnitIDs)
	if err != nil {
		return nil, fmt.Errorf("profiles.FindBySubjectAndTopics(%s) > %w", input.SubjectID, err)
	}
	if err := checkProfileCoverage(profiles, input.UnitIDs); err != nil {
		return nil, err
	}

	mastery := s.estimator.Estimate(ctx, input.StudentID, input.UnitIDs, s.now())

	allocation, err := Allocate(profiles, mastery, today, targetDate, input.StudyDaysPerWeek)
	if err != nil {
		return nil, err
	}

	var warnings []string
	if input.MaxDailyMinutes != nil && allocation.DailyMinutesRequired > *input.MaxDailyMinutes {
		warnings = append(warnings, fmt.Sprintf(
			"required daily study time (%d min) exceeds the configured maximum (%d min); consider moving the target date",
			allocation.DailyMinutesRequired, *input.MaxDailyMinutes))
	}

	plan := StudyPlan{
		ID:                   uuid.New(),
		UserID:               input.StudentID,
		SubjectID:            input.SubjectID,
		Name:                 input.PlanName,
		TargetDate:           targetDate,
		StudyDaysPerWeek:     input.StudyDaysPerWeek,
		MaxDailyMinutes:      input.MaxDailyMinutes,
		TotalRequiredMinutes: allocation.TotalRequiredMinutes,
		TotalStudyDays:       allocation.TotalStudyDays,
		DailyMinutesRequired: allocation.DailyMinutesRequired,
		Status:               PlanStatusActive,
	}

	units := make([]StudyPlanUnit, 0, len(input.UnitIDs))
	for _, topicID := range input.UnitIDs {
		units = append(units, StudyPlanUnit{
			PlanID:          plan.ID,
			TopicID:         topicID,
			RequiredMinutes: allocation.PerUnitMinutes[topicID],
		})
	}

	logs := buildDailyLogs(plan.ID, today, targetDate, input.StudyDaysPerWeek, allocation.DailyMinutesRequired)

	if err := s.plans.CreatePlan(ctx, &plan, units, logs); err != nil {
		return nil, fmt.Errorf("plans.CreatePlan() > %w", err)
	}

	return &PlanSummary{Plan: plan, Units: units, Warnings: warnings}, nil
}

// RecalculatePlan re-runs mastery and allocation for the plan's unit set over
// the remaining days. A plan whose target date has passed transitions to
// expired instead of being recalculated.
func (s *Service) RecalculatePlan(ctx context.Context, planID uuid.UUID) (*PlanSummary, error) {
	plan, err := s.plans.FindPlan(ctx, planID)
	if err != nil {
		return nil, fmt.Errorf("plans.FindPlan(%s) > %w", planID, err)
	}
	if plan == nil {
		return nil, fmt.Errorf("plan %s: %w", planID, ErrPlanNotFound)
	}
	if plan.Status != PlanStatusActive {
		return nil, fmt.Errorf("plan %s has status %s: %w", planID, plan.Status, ErrPlanNotActive)
	}

	today := DateOnly(s.now())
	if DateOnly(plan.TargetDate).Before(today) {
		if err := s.plans.UpdatePlanStatus(ctx, plan.ID, PlanStatusExpired); err != nil {
			return nil, fmt.Errorf("plans.UpdatePlanStatus(expired) > %w", err)
		}
		plan.Status = PlanStatusExpired
		return &PlanSummary{Plan: *plan}, nil
	}

	units, err := s.plans.FindUnits(ctx, plan.ID)
	if err != nil {
		return nil, fmt.Errorf("plans.FindUnits(%s) > %w", planID, err)
	}
	topicIDs := make([]string, 0, len(units))
	for _, unit := range units {
		topicIDs = append(topicIDs, unit.TopicID)
	}

	profiles, err := s.profiles.FindBySubjectAndTopics(ctx, plan.SubjectID, topicIDs)
	if err != nil {
		return nil, fmt.Errorf("profiles.FindBySubjectAndTopics(%s) > %w", plan.SubjectID, err)
	}
	if err := checkProfileCoverage(profiles, topicIDs); err != nil {
		return nil, err
	}

	mastery := s.estimator.Estimate(ctx, plan.UserID, topicIDs, s.now())

	allocation, err := Allocate(profiles, mastery, today, DateOnly(plan.TargetDate), plan.StudyDaysPerWeek)
	if err != nil {
		return nil, err
	}

	plan.TotalRequiredMinutes = allocation.TotalRequiredMinutes
	plan.TotalStudyDays = allocation.TotalStudyDays
	plan.DailyMinutesRequired = allocation.DailyMinutesRequired
	if err := s.plans.UpdatePlanTotals(ctx, plan); err != nil {
		return nil, fmt.Errorf("plans.UpdatePlanTotals(%s) > %w", planID, err)
	}
	if err := s.plans.UpdateUnitMinutes(ctx, plan.ID, allocation.PerUnitMinutes); err != nil {
		return nil, fmt.Errorf("plans.UpdateUnitMinutes(%s) > %w", planID, err)
	}

	questions, lessons, flashcards := SplitMinutes(allocation.DailyMinutesRequired)
	if err := s.plans.UpdatePendingPlannedMinutes(ctx, plan.ID, today,
		allocation.DailyMinutesRequired, questions, lessons, flashcards); err != nil {
		return nil, fmt.Errorf("plans.UpdatePendingPlannedMinutes(%s) > %w", planID, err)
	}

	for i := range units {
		units[i].RequiredMinutes = allocation.PerUnitMinutes[units[i].TopicID]
	}

	var warnings []string
	if plan.MaxDailyMinutes != nil && allocation.DailyMinutesRequired > *plan.MaxDailyMinutes {
		warnings = append(warnings, fmt.Sprintf(
			"required daily study time (%d min) exceeds the configured maximum (%d min)",
			allocation.DailyMinutesRequired, *plan.MaxDailyMinutes))
	}

	return &PlanSummary{Plan: *plan, Units: units, Warnings: warnings}, nil
}

// SyncDailyLog reconciles one study day's log row against observed study time.
// It is an idempotent full upsert keyed on (plan_id, date).
func (s *Service) SyncDailyLog(ctx context.Context, planID uuid.UUID, date time.Time) error {
	plan, err := s.plans.FindPlan(ctx, planID)
	if err != nil {
		return fmt.Errorf("plans.FindPlan(%s) > %w", planID, err)
	}
	if plan == nil {
		return fmt.Errorf("plan %s: %w", planID, ErrPlanNotFound)
	}

	return s.syncDailyLog(ctx, plan, DateOnly(date))
}

// SyncAllDailyLogs reconciles every study day of the plan up to today.
// Per-day failures are logged and skipped so one bad day never blocks the rest.
func (s *Service) SyncAllDailyLogs(ctx context.Context, planID uuid.UUID) error {
	plan, err := s.plans.FindPlan(ctx, planID)
	if err != nil {
		return fmt.Errorf("plans.FindPlan(%s) > %w", planID, err)
	}
	if plan == nil {
		return fmt.Errorf("plan %s: %w", planID, ErrPlanNotFound)
	}

	logs, err := s.plans.FindDailyLogs(ctx, plan.ID)
	if err != nil {
		return fmt.Errorf("plans.FindDailyLogs(%s) > %w", planID, err)
	}

	today := DateOnly(s.now())
	for _, log := range logs {
		date := DateOnly(log.Date)
		if date.After(today) {
			continue
		}
		if err := s.syncDailyLog(ctx, plan, date); err != nil {
			slog.Warn("failed to sync daily log",
				"plan_id", plan.ID, "date", date.Format(time.DateOnly), "error", err)
		}
	}
	return nil
}

func (s *Service) syncDailyLog(ctx context.Context, plan *StudyPlan, date time.Time) error {
	log, err := s.plans.FindDailyLog(ctx, plan.ID, date)
	if err != nil {
		return fmt.Errorf("plans.FindDailyLog(%s, %s) > %w", plan.ID, date.Format(time.DateOnly), err)
	}
	if log == nil {
		questions, lessons, flashcards := SplitMinutes(plan.DailyMinutesRequired)
		log = &DailyLog{
			PlanID:                   plan.ID,
			Date:                     date,
			PlannedMinutes:           plan.DailyMinutesRequired,
			PlannedQuestionsMinutes:  questions,
			PlannedLessonsMinutes:    lessons,
			PlannedFlashcardsMinutes: flashcards,
			Status:                   LogStatusPending,
		}
	}

	actual, err := s.observedMinutes(ctx, plan, date)
	if err != nil {
		return err
	}

	log.ActualTotalMinutes = actual.Total
	log.ActualQuestionsMinutes = actual.Questions
	log.ActualLessonsMinutes = actual.Lessons
	log.ActualFlashcardsMinutes = actual.Flashcards
	log.Status = DeriveLogStatus(actual.Total, log.PlannedMinutes, date, s.now())

	if err := s.plans.UpsertDailyLog(ctx, log); err != nil {
		return fmt.Errorf("plans.UpsertDailyLog(%s, %s) > %w", plan.ID, date.Format(time.DateOnly), err)
	}
	return nil
}

// observedMinutes sources a day's actual study time. Per-page-type tracking
// wins; a coarse daily total with an estimated split is second; the raw
// activity log is last.
func (s *Service) observedMinutes(ctx context.Context, plan *StudyPlan, date time.Time) (ActualMinutes, error) {
	pageDurations, err := s.analytics.PageDurations(ctx, plan.UserID, plan.SubjectID, date)
	if err != nil {
		return ActualMinutes{}, fmt.Errorf("analytics.PageDurations() > %w", err)
	}
	if actual := BucketPageDurations(pageDurations); actual.Total > 0 {
		return actual, nil
	}

	totalMinutes, err := s.analytics.DailyTotalMinutes(ctx, plan.UserID, date)
	if err != nil {
		return ActualMinutes{}, fmt.Errorf("analytics.DailyTotalMinutes() > %w", err)
	}
	if totalMinutes > 0 {
		return EstimateSplitFromTotal(totalMinutes), nil
	}

	activityDurations, err := s.analytics.ActivityDurations(ctx, plan.UserID, plan.SubjectID, date)
	if err != nil {
		return ActualMinutes{}, fmt.Errorf("analytics.ActivityDurations() > %w", err)
	}
	return BucketActivityDurations(activityDurations), nil
}

// LogStudyActivity records a study activity for later mastery estimation and
// reconciliation.
func (s *Service) LogStudyActivity(ctx context.Context, input ActivityInput) error {
	if input.StudentID == "" || input.SubjectID == "" {
		return fmt.Errorf("student and subject are required")
	}
	if input.ActivityType == "" {
		return fmt.Errorf("activity type is required")
	}
	if input.DurationMinutes < 0 {
		return fmt.Errorf("duration must not be negative")
	}
	if input.CorrectCount > input.TotalCount {
		return fmt.Errorf("correct count must not exceed total count")
	}

	occurredAt := input.OccurredAt
	if occurredAt.IsZero() {
		occurredAt = s.now()
	}

	log := analytics.ActivityLog{
		UserID:          input.StudentID,
		SubjectID:       input.SubjectID,
		TopicID:         input.TopicID,
		ActivityType:    input.ActivityType,
		DurationMinutes: input.DurationMinutes,
		CorrectCount:    input.CorrectCount,
		TotalCount:      input.TotalCount,
		OccurredAt:      occurredAt,
	}
	if err := s.analytics.CreateActivityLog(ctx, &log); err != nil {
		return fmt.Errorf("analytics.CreateActivityLog() > %w", err)
	}
	return nil
}

// ActivePlanForStudent returns the student's active plan for a subject, or nil if none.
func (s *Service) ActivePlanForStudent(ctx context.Context, studentID, subjectID string) (*StudyPlan, error) {
	plan, err := s.plans.FindActivePlan(ctx, studentID, subjectID)
	if err != nil {
		return nil, fmt.Errorf("plans.FindActivePlan(%s, %s) > %w", studentID, subjectID, err)
	}
	return plan, nil
}

func validateCreateInput(input CreateStudyPlanInput) error {
	if input.StudentID == "" || input.SubjectID == "" {
		return fmt.Errorf("student and subject are required")
	}
	if input.TargetDate.IsZero() {
		return fmt.Errorf("target date is required")
	}
	if input.StudyDaysPerWeek < 3 || input.StudyDaysPerWeek > 7 {
		return fmt.Errorf("study days per week must be between 3 and 7, got %d", input.StudyDaysPerWeek)
	}
	if len(input.UnitIDs) == 0 {
		return fmt.Errorf("at least one unit must be selected")
	}
	if input.MaxDailyMinutes != nil && *input.MaxDailyMinutes <= 0 {
		return fmt.Errorf("max daily minutes must be greater than zero")
	}
	return nil
}

// checkProfileCoverage verifies the catalog covers every requested topic.
func checkProfileCoverage(profiles []catalog.UnitTimeProfile, topicIDs []string) error {
	if len(profiles) == 0 {
		return fmt.Errorf("%w", ErrNoTimeProfiles)
	}

	covered := make(map[string]bool, len(profiles))
	for _, profile := range profiles {
		covered[profile.TopicID] = true
	}
	var missing []string
	for _, topicID := range topicIDs {
		if !covered[topicID] {
			missing = append(missing, topicID)
		}
	}
	if len(missing) > 0 {
		return fmt.Errorf("%w: missing topics %v", ErrNoTimeProfiles, missing)
	}
	return nil
}

// buildDailyLogs pre-populates pending log rows for every study day in
// [today, targetDate]. If no date in the window falls on a study weekday,
// today alone is used so every plan has at least one study day.
func buildDailyLogs(planID uuid.UUID, today, targetDate time.Time, studyDaysPerWeek, dailyMinutes int) []DailyLog {
	dates := StudyDates(today, targetDate, studyDaysPerWeek)
	if len(dates) == 0 {
		dates = []time.Time{today}
	}

	questions, lessons, flashcards := SplitMinutes(dailyMinutes)
	logs := make([]DailyLog, 0, len(dates))
	for _, date := range dates {
		logs = append(logs, DailyLog{
			PlanID:                   planID,
			Date:                     date,
			PlannedMinutes:           dailyMinutes,
			PlannedQuestionsMinutes:  questions,
			PlannedLessonsMinutes:    lessons,
			PlannedFlashcardsMinutes: flashcards,
			Status:                   LogStatusPending,
		})
	}
	return logs
}
