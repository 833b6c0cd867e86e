package planner

import (
	"context"
	"log/slog"
	"math"
	"time"

	"github.com/prepwise/studyplan/internal/analytics"
)

// overallAccuracyWindowDays is the lookback window for the fallback score.
const overallAccuracyWindowDays = 30

// MasteryEstimator derives per-topic mastery scores from activity history.
type MasteryEstimator struct {
	analytics analytics.Repository
}

// NewMasteryEstimator creates a new MasteryEstimator.
func NewMasteryEstimator(analyticsRepo analytics.Repository) *MasteryEstimator {
	return &MasteryEstimator{analytics: analyticsRepo}
}

// Estimate returns a 0-100 mastery score per topic. Topics without graded
// history fall back to the student's overall 30-day accuracy, then to 0.
// Data-fetch failures degrade to the fallback rather than returning an error.
func (e *MasteryEstimator) Estimate(ctx context.Context, userID string, topicIDs []string, now time.Time) map[string]int {
	samplesByTopic := map[string][]analytics.AccuracySample{}

	samples, err := e.analytics.FindAccuracySamples(ctx, userID, topicIDs)
	if err != nil {
		slog.Warn("failed to load topic accuracy samples, falling back to overall accuracy",
			"user_id", userID, "error", err)
	} else {
		for _, sample := range samples {
			samplesByTopic[sample.TopicID] = append(samplesByTopic[sample.TopicID], sample)
		}
	}

	fallback := -1
	scores := make(map[string]int, len(topicIDs))
	for _, topicID := range topicIDs {
		topicSamples := samplesByTopic[topicID]
		if len(topicSamples) == 0 {
			if fallback < 0 {
				fallback = e.overallScore(ctx, userID, now)
			}
			scores[topicID] = fallback
			continue
		}
		scores[topicID] = averageAccuracy(topicSamples)
	}

	return scores
}

// overallScore computes the fallback score from 30-day aggregate question counts.
func (e *MasteryEstimator) overallScore(ctx context.Context, userID string, now time.Time) int {
	since := DateOnly(now).AddDate(0, 0, -overallAccuracyWindowDays)
	overall, err := e.analytics.OverallAccuracySince(ctx, userID, since)
	if err != nil {
		slog.Warn("failed to load overall accuracy, treating mastery as zero",
			"user_id", userID, "error", err)
		return 0
	}
	if overall.Attempted == 0 {
		return 0
	}
	return clampScore(int(math.Round(100 * float64(overall.Correct) / float64(overall.Attempted))))
}

// averageAccuracy averages per-record accuracy percentages.
func averageAccuracy(samples []analytics.AccuracySample) int {
	sum := 0.0
	for _, sample := range samples {
		sum += 100 * float64(sample.CorrectCount) / float64(sample.TotalCount)
	}
	return clampScore(int(math.Round(sum / float64(len(samples)))))
}

func clampScore(score int) int {
	if score < 0 {
		return 0
	}
	if score > 100 {
		return 100
	}
	return score
}
