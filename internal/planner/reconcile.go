package planner

import (
	"time"

	"github.com/prepwise/studyplan/internal/analytics"
)

// ActualMinutes is the observed study time for a day, bucketed by activity category.
type ActualMinutes struct {
	Total      int
	Questions  int
	Lessons    int
	Flashcards int
}

// pageTypeCategories maps tracked page types to activity buckets.
// Unmapped page types count toward the total only.
var pageTypeCategories = map[string]string{
	"topical_exam":    "questions",
	"mock_exam":       "questions",
	"practice":        "questions",
	"lessons":         "lessons",
	"ai-tutor":        "lessons",
	"visual-learning": "lessons",
	"flashcards":      "flashcards",
}

// activityTypeCategories maps raw activity-log types to activity buckets.
var activityTypeCategories = map[string]string{
	"questions":  "questions",
	"practice":   "questions",
	"exam":       "questions",
	"lesson":     "lessons",
	"lessons":    "lessons",
	"ai_tutor":   "lessons",
	"flashcards": "flashcards",
}

// BucketPageDurations sums per-page-type tracked minutes into activity buckets.
func BucketPageDurations(durations []analytics.PageDuration) ActualMinutes {
	var actual ActualMinutes
	for _, d := range durations {
		actual.Total += d.Minutes
		addToBucket(&actual, pageTypeCategories[d.PageType], d.Minutes)
	}
	return actual
}

// BucketActivityDurations sums raw activity-log minutes into activity buckets.
func BucketActivityDurations(durations []analytics.ActivityDuration) ActualMinutes {
	var actual ActualMinutes
	for _, d := range durations {
		actual.Total += d.Minutes
		addToBucket(&actual, activityTypeCategories[d.ActivityType], d.Minutes)
	}
	return actual
}

// EstimateSplitFromTotal derives bucket minutes from a coarse daily total using
// the planning percentages. An approximation for days without bucket-level tracking.
func EstimateSplitFromTotal(total int) ActualMinutes {
	questions, lessons, flashcards := SplitMinutes(total)
	return ActualMinutes{
		Total:      total,
		Questions:  questions,
		Lessons:    lessons,
		Flashcards: flashcards,
	}
}

func addToBucket(actual *ActualMinutes, category string, minutes int) {
	switch category {
	case "questions":
		actual.Questions += minutes
	case "lessons":
		actual.Lessons += minutes
	case "flashcards":
		actual.Flashcards += minutes
	}
}

// DeriveLogStatus computes a study day's completion status. Any observed time
// is judged against the planned budget before the date is compared to today,
// so a day with partial progress never counts as missed.
func DeriveLogStatus(actualTotal, plannedMinutes int, date, today time.Time) LogStatus {
	if actualTotal > 0 {
		if float64(actualTotal) >= doneThreshold*float64(plannedMinutes) {
			return LogStatusDone
		}
		return LogStatusPartial
	}
	if DateOnly(date).Before(DateOnly(today)) {
		return LogStatusMissed
	}
	return LogStatusPending
}
