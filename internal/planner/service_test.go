package planner_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/prepwise/studyplan/internal/analytics"
	"github.com/prepwise/studyplan/internal/catalog"
	mock_analytics "github.com/prepwise/studyplan/internal/mocks/analytics"
	mock_catalog "github.com/prepwise/studyplan/internal/mocks/catalog"
	mock_planner "github.com/prepwise/studyplan/internal/mocks/planner"
	"github.com/prepwise/studyplan/internal/planner"
)

type serviceMocks struct {
	profiles  *mock_catalog.MockProfileRepository
	analytics *mock_analytics.MockRepository
	plans     *mock_planner.MockPlanRepository
}

// 2026-03-02 is a Monday.
var testNow = time.Date(2026, 3, 2, 9, 30, 0, 0, time.UTC)

func newTestService(t *testing.T) (*planner.Service, serviceMocks) {
	t.Helper()
	ctrl := gomock.NewController(t)
	mocks := serviceMocks{
		profiles:  mock_catalog.NewMockProfileRepository(ctrl),
		analytics: mock_analytics.NewMockRepository(ctrl),
		plans:     mock_planner.NewMockPlanRepository(ctrl),
	}
	service := planner.NewService(mocks.profiles, mocks.analytics, mocks.plans,
		planner.WithClock(func() time.Time { return testNow }))
	return service, mocks
}

func biologyProfiles() []catalog.UnitTimeProfile {
	return []catalog.UnitTimeProfile{
		{
			SubjectID:            "biology",
			TopicID:              "cell-structure",
			BaseMinutesFirstPass: 200,
			BaseMinutesRevision:  100,
			DifficultyMultiplier: 1.5,
		},
		{
			SubjectID:            "biology",
			TopicID:              "genetics",
			BaseMinutesFirstPass: 200,
			BaseMinutesRevision:  100,
			DifficultyMultiplier: 1.5,
		},
	}
}

func biologySamples() []analytics.AccuracySample {
	return []analytics.AccuracySample{
		{TopicID: "cell-structure", CorrectCount: 2, TotalCount: 10},
		{TopicID: "genetics", CorrectCount: 95, TotalCount: 100},
	}
}

func TestServiceCreateStudyPlan(t *testing.T) {
	input := planner.CreateStudyPlanInput{
		StudentID:        "user-1",
		SubjectID:        "biology",
		PlanName:         "Biology finals",
		TargetDate:       testNow.AddDate(0, 0, 10),
		StudyDaysPerWeek: 7,
		UnitIDs:          []string{"cell-structure", "genetics"},
	}

	t.Run("creates plan with units and daily logs", func(t *testing.T) {
		service, mocks := newTestService(t)
		mocks.profiles.EXPECT().
			FindBySubjectAndTopics(gomock.Any(), "biology", input.UnitIDs).
			Return(biologyProfiles(), nil)
		mocks.analytics.EXPECT().
			FindAccuracySamples(gomock.Any(), "user-1", input.UnitIDs).
			Return(biologySamples(), nil)

		var gotPlan planner.StudyPlan
		var gotUnits []planner.StudyPlanUnit
		var gotLogs []planner.DailyLog
		mocks.plans.EXPECT().
			CreatePlan(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, plan *planner.StudyPlan, units []planner.StudyPlanUnit, logs []planner.DailyLog) error {
				gotPlan = *plan
				gotUnits = units
				gotLogs = logs
				return nil
			})

		summary, err := service.CreateStudyPlan(context.Background(), input)
		require.NoError(t, err)
		require.NotNil(t, summary)

		assert.NotEqual(t, uuid.Nil, gotPlan.ID)
		assert.Equal(t, "user-1", gotPlan.UserID)
		assert.Equal(t, "biology", gotPlan.SubjectID)
		assert.Equal(t, planner.PlanStatusActive, gotPlan.Status)
		assert.Equal(t, 330, gotPlan.TotalRequiredMinutes)
		assert.Equal(t, 10, gotPlan.TotalStudyDays)
		assert.Equal(t, 33, gotPlan.DailyMinutesRequired)
		assert.Equal(t, time.Date(2026, 3, 12, 0, 0, 0, 0, time.UTC), gotPlan.TargetDate)

		require.Len(t, gotUnits, 2)
		assert.Equal(t, 300, gotUnits[0].RequiredMinutes)
		assert.Equal(t, "cell-structure", gotUnits[0].TopicID)
		assert.Equal(t, 30, gotUnits[1].RequiredMinutes)

		// Every date from today through the target date is a study day at 7 days/week.
		require.Len(t, gotLogs, 11)
		first := gotLogs[0]
		assert.Equal(t, time.Date(2026, 3, 2, 0, 0, 0, 0, time.UTC), first.Date)
		assert.Equal(t, 33, first.PlannedMinutes)
		assert.Equal(t, 17, first.PlannedQuestionsMinutes)
		assert.Equal(t, 10, first.PlannedLessonsMinutes)
		assert.Equal(t, 6, first.PlannedFlashcardsMinutes)
		assert.Equal(t, planner.LogStatusPending, first.Status)

		assert.Empty(t, summary.Warnings)
	})

	t.Run("warns when daily requirement exceeds the cap", func(t *testing.T) {
		service, mocks := newTestService(t)
		capped := input
		maxDaily := 20
		capped.MaxDailyMinutes = &maxDaily

		mocks.profiles.EXPECT().
			FindBySubjectAndTopics(gomock.Any(), "biology", input.UnitIDs).
			Return(biologyProfiles(), nil)
		mocks.analytics.EXPECT().
			FindAccuracySamples(gomock.Any(), "user-1", input.UnitIDs).
			Return(biologySamples(), nil)
		mocks.plans.EXPECT().
			CreatePlan(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
			Return(nil)

		summary, err := service.CreateStudyPlan(context.Background(), capped)
		require.NoError(t, err)
		require.Len(t, summary.Warnings, 1)
		assert.Contains(t, summary.Warnings[0], "33 min")
		assert.Contains(t, summary.Warnings[0], "20 min")
	})

	t.Run("fails when a selected topic has no time profile", func(t *testing.T) {
		service, mocks := newTestService(t)
		mocks.profiles.EXPECT().
			FindBySubjectAndTopics(gomock.Any(), "biology", input.UnitIDs).
			Return(biologyProfiles()[:1], nil)

		_, err := service.CreateStudyPlan(context.Background(), input)
		require.ErrorIs(t, err, planner.ErrNoTimeProfiles)
		assert.Contains(t, err.Error(), "genetics")
	})

	t.Run("rejects invalid input", func(t *testing.T) {
		service, _ := newTestService(t)

		tests := []struct {
			name   string
			mutate func(input *planner.CreateStudyPlanInput)
		}{
			{name: "missing student", mutate: func(i *planner.CreateStudyPlanInput) { i.StudentID = "" }},
			{name: "missing target date", mutate: func(i *planner.CreateStudyPlanInput) { i.TargetDate = time.Time{} }},
			{name: "too few study days", mutate: func(i *planner.CreateStudyPlanInput) { i.StudyDaysPerWeek = 2 }},
			{name: "too many study days", mutate: func(i *planner.CreateStudyPlanInput) { i.StudyDaysPerWeek = 8 }},
			{name: "no units", mutate: func(i *planner.CreateStudyPlanInput) { i.UnitIDs = nil }},
		}
		for _, tc := range tests {
			t.Run(tc.name, func(t *testing.T) {
				invalid := input
				tc.mutate(&invalid)
				_, err := service.CreateStudyPlan(context.Background(), invalid)
				assert.Error(t, err)
			})
		}
	})
}

func TestServiceRecalculatePlan(t *testing.T) {
	planID := uuid.New()
	activePlan := func() *planner.StudyPlan {
		return &planner.StudyPlan{
			ID:               planID,
			UserID:           "user-1",
			SubjectID:        "biology",
			TargetDate:       time.Date(2026, 3, 12, 0, 0, 0, 0, time.UTC),
			StudyDaysPerWeek: 7,
			Status:           planner.PlanStatusActive,
		}
	}

	t.Run("recomputes totals and pending daily budgets", func(t *testing.T) {
		service, mocks := newTestService(t)
		mocks.plans.EXPECT().FindPlan(gomock.Any(), planID).Return(activePlan(), nil)
		mocks.plans.EXPECT().FindUnits(gomock.Any(), planID).Return([]planner.StudyPlanUnit{
			{PlanID: planID, TopicID: "cell-structure"},
			{PlanID: planID, TopicID: "genetics"},
		}, nil)
		mocks.profiles.EXPECT().
			FindBySubjectAndTopics(gomock.Any(), "biology", []string{"cell-structure", "genetics"}).
			Return(biologyProfiles(), nil)
		mocks.analytics.EXPECT().
			FindAccuracySamples(gomock.Any(), "user-1", []string{"cell-structure", "genetics"}).
			Return(biologySamples(), nil)
		mocks.plans.EXPECT().
			UpdatePlanTotals(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, plan *planner.StudyPlan) error {
				assert.Equal(t, 330, plan.TotalRequiredMinutes)
				assert.Equal(t, 10, plan.TotalStudyDays)
				assert.Equal(t, 33, plan.DailyMinutesRequired)
				return nil
			})
		mocks.plans.EXPECT().
			UpdateUnitMinutes(gomock.Any(), planID, map[string]int{"cell-structure": 300, "genetics": 30}).
			Return(nil)
		mocks.plans.EXPECT().
			UpdatePendingPlannedMinutes(gomock.Any(), planID,
				time.Date(2026, 3, 2, 0, 0, 0, 0, time.UTC), 33, 17, 10, 6).
			Return(nil)

		summary, err := service.RecalculatePlan(context.Background(), planID)
		require.NoError(t, err)
		assert.Equal(t, 33, summary.Plan.DailyMinutesRequired)
		require.Len(t, summary.Units, 2)
		assert.Equal(t, 300, summary.Units[0].RequiredMinutes)
	})

	t.Run("expires a plan whose target date has passed", func(t *testing.T) {
		service, mocks := newTestService(t)
		stale := activePlan()
		stale.TargetDate = time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)
		mocks.plans.EXPECT().FindPlan(gomock.Any(), planID).Return(stale, nil)
		mocks.plans.EXPECT().UpdatePlanStatus(gomock.Any(), planID, planner.PlanStatusExpired).Return(nil)

		summary, err := service.RecalculatePlan(context.Background(), planID)
		require.NoError(t, err)
		assert.Equal(t, planner.PlanStatusExpired, summary.Plan.Status)
	})

	t.Run("unknown plan", func(t *testing.T) {
		service, mocks := newTestService(t)
		mocks.plans.EXPECT().FindPlan(gomock.Any(), planID).Return(nil, nil)

		_, err := service.RecalculatePlan(context.Background(), planID)
		assert.ErrorIs(t, err, planner.ErrPlanNotFound)
	})

	t.Run("non-active plan", func(t *testing.T) {
		service, mocks := newTestService(t)
		paused := activePlan()
		paused.Status = planner.PlanStatusPaused
		mocks.plans.EXPECT().FindPlan(gomock.Any(), planID).Return(paused, nil)

		_, err := service.RecalculatePlan(context.Background(), planID)
		assert.ErrorIs(t, err, planner.ErrPlanNotActive)
	})
}

func TestServiceSyncDailyLog(t *testing.T) {
	planID := uuid.New()
	date := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)
	plan := &planner.StudyPlan{
		ID:                   planID,
		UserID:               "user-1",
		SubjectID:            "biology",
		TargetDate:           time.Date(2026, 3, 12, 0, 0, 0, 0, time.UTC),
		StudyDaysPerWeek:     7,
		DailyMinutesRequired: 33,
		Status:               planner.PlanStatusActive,
	}
	existingLog := func() *planner.DailyLog {
		return &planner.DailyLog{
			PlanID:                   planID,
			Date:                     date,
			PlannedMinutes:           33,
			PlannedQuestionsMinutes:  17,
			PlannedLessonsMinutes:    10,
			PlannedFlashcardsMinutes: 6,
			Status:                   planner.LogStatusPending,
		}
	}

	t.Run("per page type tracking wins", func(t *testing.T) {
		service, mocks := newTestService(t)
		mocks.plans.EXPECT().FindPlan(gomock.Any(), planID).Return(plan, nil)
		mocks.plans.EXPECT().FindDailyLog(gomock.Any(), planID, date).Return(existingLog(), nil)
		mocks.analytics.EXPECT().
			PageDurations(gomock.Any(), "user-1", "biology", date).
			Return([]analytics.PageDuration{
				{PageType: "practice", Minutes: 20},
				{PageType: "lessons", Minutes: 10},
			}, nil)
		mocks.plans.EXPECT().
			UpsertDailyLog(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, log *planner.DailyLog) error {
				assert.Equal(t, 30, log.ActualTotalMinutes)
				assert.Equal(t, 20, log.ActualQuestionsMinutes)
				assert.Equal(t, 10, log.ActualLessonsMinutes)
				assert.Equal(t, planner.LogStatusDone, log.Status)
				return nil
			})

		require.NoError(t, service.SyncDailyLog(context.Background(), planID, date))
	})

	t.Run("coarse daily total gets an estimated split", func(t *testing.T) {
		service, mocks := newTestService(t)
		mocks.plans.EXPECT().FindPlan(gomock.Any(), planID).Return(plan, nil)
		mocks.plans.EXPECT().FindDailyLog(gomock.Any(), planID, date).Return(existingLog(), nil)
		mocks.analytics.EXPECT().
			PageDurations(gomock.Any(), "user-1", "biology", date).
			Return(nil, nil)
		mocks.analytics.EXPECT().
			DailyTotalMinutes(gomock.Any(), "user-1", date).
			Return(10, nil)
		mocks.plans.EXPECT().
			UpsertDailyLog(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, log *planner.DailyLog) error {
				assert.Equal(t, 10, log.ActualTotalMinutes)
				assert.Equal(t, 5, log.ActualQuestionsMinutes)
				assert.Equal(t, 3, log.ActualLessonsMinutes)
				assert.Equal(t, 2, log.ActualFlashcardsMinutes)
				assert.Equal(t, planner.LogStatusPartial, log.Status)
				return nil
			})

		require.NoError(t, service.SyncDailyLog(context.Background(), planID, date))
	})

	t.Run("raw activity log is the last resort", func(t *testing.T) {
		service, mocks := newTestService(t)
		mocks.plans.EXPECT().FindPlan(gomock.Any(), planID).Return(plan, nil)
		mocks.plans.EXPECT().FindDailyLog(gomock.Any(), planID, date).Return(existingLog(), nil)
		mocks.analytics.EXPECT().
			PageDurations(gomock.Any(), "user-1", "biology", date).
			Return(nil, nil)
		mocks.analytics.EXPECT().
			DailyTotalMinutes(gomock.Any(), "user-1", date).
			Return(0, nil)
		mocks.analytics.EXPECT().
			ActivityDurations(gomock.Any(), "user-1", "biology", date).
			Return([]analytics.ActivityDuration{{ActivityType: "flashcards", Minutes: 40}}, nil)
		mocks.plans.EXPECT().
			UpsertDailyLog(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, log *planner.DailyLog) error {
				assert.Equal(t, 40, log.ActualTotalMinutes)
				assert.Equal(t, 40, log.ActualFlashcardsMinutes)
				assert.Equal(t, planner.LogStatusDone, log.Status)
				return nil
			})

		require.NoError(t, service.SyncDailyLog(context.Background(), planID, date))
	})

	t.Run("missing log row is built from the plan's daily split", func(t *testing.T) {
		service, mocks := newTestService(t)
		mocks.plans.EXPECT().FindPlan(gomock.Any(), planID).Return(plan, nil)
		mocks.plans.EXPECT().FindDailyLog(gomock.Any(), planID, date).Return(nil, nil)
		mocks.analytics.EXPECT().
			PageDurations(gomock.Any(), "user-1", "biology", date).
			Return(nil, nil)
		mocks.analytics.EXPECT().
			DailyTotalMinutes(gomock.Any(), "user-1", date).
			Return(0, nil)
		mocks.analytics.EXPECT().
			ActivityDurations(gomock.Any(), "user-1", "biology", date).
			Return(nil, nil)
		mocks.plans.EXPECT().
			UpsertDailyLog(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, log *planner.DailyLog) error {
				assert.Equal(t, 33, log.PlannedMinutes)
				assert.Equal(t, 17, log.PlannedQuestionsMinutes)
				assert.Equal(t, planner.LogStatusMissed, log.Status)
				return nil
			})

		require.NoError(t, service.SyncDailyLog(context.Background(), planID, date))
	})

	t.Run("unknown plan", func(t *testing.T) {
		service, mocks := newTestService(t)
		mocks.plans.EXPECT().FindPlan(gomock.Any(), planID).Return(nil, nil)

		err := service.SyncDailyLog(context.Background(), planID, date)
		assert.ErrorIs(t, err, planner.ErrPlanNotFound)
	})
}

func TestServiceSyncAllDailyLogs(t *testing.T) {
	planID := uuid.New()
	plan := &planner.StudyPlan{
		ID:                   planID,
		UserID:               "user-1",
		SubjectID:            "biology",
		TargetDate:           time.Date(2026, 3, 12, 0, 0, 0, 0, time.UTC),
		DailyMinutesRequired: 33,
		Status:               planner.PlanStatusActive,
	}
	yesterday := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)
	today := time.Date(2026, 3, 2, 0, 0, 0, 0, time.UTC)
	tomorrow := time.Date(2026, 3, 3, 0, 0, 0, 0, time.UTC)

	service, mocks := newTestService(t)
	mocks.plans.EXPECT().FindPlan(gomock.Any(), planID).Return(plan, nil)
	mocks.plans.EXPECT().FindDailyLogs(gomock.Any(), planID).Return([]planner.DailyLog{
		{PlanID: planID, Date: yesterday, PlannedMinutes: 33},
		{PlanID: planID, Date: today, PlannedMinutes: 33},
		{PlanID: planID, Date: tomorrow, PlannedMinutes: 33},
	}, nil)

	// Yesterday's sync fails; today still gets reconciled. Tomorrow is skipped.
	mocks.plans.EXPECT().FindDailyLog(gomock.Any(), planID, yesterday).
		Return(nil, errors.New("connection reset"))
	mocks.plans.EXPECT().FindDailyLog(gomock.Any(), planID, today).
		Return(&planner.DailyLog{PlanID: planID, Date: today, PlannedMinutes: 33}, nil)
	mocks.analytics.EXPECT().
		PageDurations(gomock.Any(), "user-1", "biology", today).
		Return([]analytics.PageDuration{{PageType: "practice", Minutes: 35}}, nil)
	mocks.plans.EXPECT().
		UpsertDailyLog(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, log *planner.DailyLog) error {
			assert.Equal(t, today, log.Date)
			assert.Equal(t, planner.LogStatusDone, log.Status)
			return nil
		})

	require.NoError(t, service.SyncAllDailyLogs(context.Background(), planID))
}

func TestServiceLogStudyActivity(t *testing.T) {
	t.Run("records activity with a defaulted timestamp", func(t *testing.T) {
		service, mocks := newTestService(t)
		mocks.analytics.EXPECT().
			CreateActivityLog(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, log *analytics.ActivityLog) error {
				assert.Equal(t, "user-1", log.UserID)
				assert.Equal(t, "questions", log.ActivityType)
				assert.Equal(t, testNow, log.OccurredAt)
				return nil
			})

		err := service.LogStudyActivity(context.Background(), planner.ActivityInput{
			StudentID:       "user-1",
			SubjectID:       "biology",
			TopicID:         "genetics",
			ActivityType:    "questions",
			DurationMinutes: 25,
			CorrectCount:    8,
			TotalCount:      10,
		})
		require.NoError(t, err)
	})

	t.Run("rejects inconsistent counts", func(t *testing.T) {
		service, _ := newTestService(t)
		err := service.LogStudyActivity(context.Background(), planner.ActivityInput{
			StudentID:    "user-1",
			SubjectID:    "biology",
			ActivityType: "questions",
			CorrectCount: 11,
			TotalCount:   10,
		})
		assert.Error(t, err)
	})
}

func TestServiceActivePlanForStudent(t *testing.T) {
	service, mocks := newTestService(t)
	want := &planner.StudyPlan{ID: uuid.New(), UserID: "user-1", SubjectID: "biology"}
	mocks.plans.EXPECT().FindActivePlan(gomock.Any(), "user-1", "biology").Return(want, nil)

	got, err := service.ActivePlanForStudent(context.Background(), "user-1", "biology")
	require.NoError(t, err)
	assert.Equal(t, want, got)
}
