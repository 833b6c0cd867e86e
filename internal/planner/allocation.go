package planner

import (
	"fmt"
	"math"
	"time"

	"github.com/prepwise/studyplan/internal/catalog"
)

const (
	// firstPassThreshold separates "never learned" from "needs revision".
	firstPassThreshold = 30

	questionsShare = 0.5
	lessonsShare   = 0.3
)

// Allocation is the output of the allocation engine.
type Allocation struct {
	PerUnitMinutes       map[string]int
	TotalRequiredMinutes int
	TotalStudyDays       int
	DailyMinutesRequired int
}

// MasteryFactor maps a 0-100 mastery score to a time multiplier.
// Higher mastery means less required time. Bands are half-open.
func MasteryFactor(score int) float64 {
	switch {
	case score < 40:
		return 1.0
	case score < 70:
		return 0.7
	case score < 90:
		return 0.4
	default:
		return 0.2
	}
}

// IsFirstPass reports whether a topic still needs first-pass learning
// rather than revision.
func IsFirstPass(score int) bool {
	return score < firstPassThreshold
}

// RequiredMinutes computes the study minutes a unit needs at the given mastery score.
func RequiredMinutes(profile catalog.UnitTimeProfile, score int) int {
	baseMinutes := profile.BaseMinutesRevision
	if IsFirstPass(score) {
		baseMinutes = profile.BaseMinutesFirstPass
	}
	return int(math.Ceil(float64(baseMinutes) * profile.DifficultyMultiplier * MasteryFactor(score)))
}

// Allocate converts time profiles and mastery scores into per-unit and daily
// minute budgets for the period from today to targetDate.
func Allocate(
	profiles []catalog.UnitTimeProfile,
	mastery map[string]int,
	today time.Time,
	targetDate time.Time,
	studyDaysPerWeek int,
) (Allocation, error) {
	if len(profiles) == 0 {
		return Allocation{}, fmt.Errorf("%w", ErrNoTimeProfiles)
	}

	perUnit := make(map[string]int, len(profiles))
	total := 0
	for _, profile := range profiles {
		minutes := RequiredMinutes(profile, mastery[profile.TopicID])
		perUnit[profile.TopicID] = minutes
		total += minutes
	}

	studyDays := effectiveStudyDays(today, targetDate, studyDaysPerWeek)
	daily := int(math.Ceil(float64(total) / float64(studyDays)))

	return Allocation{
		PerUnitMinutes:       perUnit,
		TotalRequiredMinutes: total,
		TotalStudyDays:       studyDays,
		DailyMinutesRequired: daily,
	}, nil
}

// effectiveStudyDays approximates the number of study days between today and
// targetDate as a proportion of calendar days. A past or same-day target
// clamps to a single study day.
func effectiveStudyDays(today, targetDate time.Time, studyDaysPerWeek int) int {
	calendarDays := int(math.Ceil(DateOnly(targetDate).Sub(DateOnly(today)).Hours() / 24))
	if calendarDays <= 0 {
		calendarDays = 1
	}

	studyDays := int(math.Round(float64(calendarDays) * float64(studyDaysPerWeek) / 7))
	if studyDays < 1 {
		return 1
	}
	return studyDays
}

// SplitMinutes divides a daily budget into the questions/lessons/flashcards
// buckets by the 50/30/20 split. The flashcards bucket absorbs the rounding
// remainder so the three always sum to total.
func SplitMinutes(total int) (questions, lessons, flashcards int) {
	questions = int(math.Round(float64(total) * questionsShare))
	lessons = int(math.Round(float64(total) * lessonsShare))
	flashcards = total - questions - lessons
	return questions, lessons, flashcards
}

// studyWeekdayOrder is the priority in which weekdays become study days.
var studyWeekdayOrder = []time.Weekday{
	time.Monday, time.Tuesday, time.Wednesday, time.Thursday,
	time.Friday, time.Saturday, time.Sunday,
}

// StudyWeekdays returns the fixed set of weekdays that count as study days
// for a given days-per-week setting: the first N of Mon through Sun.
func StudyWeekdays(studyDaysPerWeek int) map[time.Weekday]bool {
	if studyDaysPerWeek > len(studyWeekdayOrder) {
		studyDaysPerWeek = len(studyWeekdayOrder)
	}
	weekdays := make(map[time.Weekday]bool, studyDaysPerWeek)
	for _, day := range studyWeekdayOrder[:studyDaysPerWeek] {
		weekdays[day] = true
	}
	return weekdays
}

// StudyDates lists the dates in [from, to] that fall on study weekdays.
func StudyDates(from, to time.Time, studyDaysPerWeek int) []time.Time {
	weekdays := StudyWeekdays(studyDaysPerWeek)
	var dates []time.Time
	for d := DateOnly(from); !d.After(DateOnly(to)); d = d.AddDate(0, 0, 1) {
		if weekdays[d.Weekday()] {
			dates = append(dates, d)
		}
	}
	return dates
}
