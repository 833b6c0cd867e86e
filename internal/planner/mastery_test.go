package planner

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"github.com/prepwise/studyplan/internal/analytics"
	mock_analytics "github.com/prepwise/studyplan/internal/mocks/analytics"
)

func TestMasteryEstimatorEstimate(t *testing.T) {
	now := time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)
	since := time.Date(2026, 2, 8, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name     string
		topicIDs []string
		setup    func(repo *mock_analytics.MockRepository)
		want     map[string]int
	}{
		{
			name:     "averages per record accuracy",
			topicIDs: []string{"cell-structure"},
			setup: func(repo *mock_analytics.MockRepository) {
				repo.EXPECT().
					FindAccuracySamples(gomock.Any(), "user-1", []string{"cell-structure"}).
					Return([]analytics.AccuracySample{
						{TopicID: "cell-structure", CorrectCount: 8, TotalCount: 10},
						{TopicID: "cell-structure", CorrectCount: 3, TotalCount: 6},
					}, nil)
			},
			// (80 + 50) / 2 = 65
			want: map[string]int{"cell-structure": 65},
		},
		{
			name:     "topic without history falls back to overall accuracy",
			topicIDs: []string{"cell-structure", "genetics"},
			setup: func(repo *mock_analytics.MockRepository) {
				repo.EXPECT().
					FindAccuracySamples(gomock.Any(), "user-1", []string{"cell-structure", "genetics"}).
					Return([]analytics.AccuracySample{
						{TopicID: "cell-structure", CorrectCount: 9, TotalCount: 10},
					}, nil)
				repo.EXPECT().
					OverallAccuracySince(gomock.Any(), "user-1", since).
					Return(analytics.OverallAccuracy{Attempted: 40, Correct: 22}, nil)
			},
			want: map[string]int{"cell-structure": 90, "genetics": 55},
		},
		{
			name:     "overall accuracy is fetched once for multiple topics",
			topicIDs: []string{"genetics", "evolution"},
			setup: func(repo *mock_analytics.MockRepository) {
				repo.EXPECT().
					FindAccuracySamples(gomock.Any(), "user-1", []string{"genetics", "evolution"}).
					Return(nil, nil)
				repo.EXPECT().
					OverallAccuracySince(gomock.Any(), "user-1", since).
					Return(analytics.OverallAccuracy{Attempted: 10, Correct: 4}, nil).
					Times(1)
			},
			want: map[string]int{"genetics": 40, "evolution": 40},
		},
		{
			name:     "no history anywhere means zero mastery",
			topicIDs: []string{"genetics"},
			setup: func(repo *mock_analytics.MockRepository) {
				repo.EXPECT().
					FindAccuracySamples(gomock.Any(), "user-1", []string{"genetics"}).
					Return(nil, nil)
				repo.EXPECT().
					OverallAccuracySince(gomock.Any(), "user-1", since).
					Return(analytics.OverallAccuracy{}, nil)
			},
			want: map[string]int{"genetics": 0},
		},
		{
			name:     "sample fetch failure degrades to fallback",
			topicIDs: []string{"genetics"},
			setup: func(repo *mock_analytics.MockRepository) {
				repo.EXPECT().
					FindAccuracySamples(gomock.Any(), "user-1", []string{"genetics"}).
					Return(nil, errors.New("connection reset"))
				repo.EXPECT().
					OverallAccuracySince(gomock.Any(), "user-1", since).
					Return(analytics.OverallAccuracy{Attempted: 20, Correct: 15}, nil)
			},
			want: map[string]int{"genetics": 75},
		},
		{
			name:     "fallback fetch failure degrades to zero",
			topicIDs: []string{"genetics"},
			setup: func(repo *mock_analytics.MockRepository) {
				repo.EXPECT().
					FindAccuracySamples(gomock.Any(), "user-1", []string{"genetics"}).
					Return(nil, nil)
				repo.EXPECT().
					OverallAccuracySince(gomock.Any(), "user-1", since).
					Return(analytics.OverallAccuracy{}, errors.New("connection reset"))
			},
			want: map[string]int{"genetics": 0},
		},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			repo := mock_analytics.NewMockRepository(ctrl)
			tc.setup(repo)

			estimator := NewMasteryEstimator(repo)
			got := estimator.Estimate(context.Background(), "user-1", tc.topicIDs, now)

			assert.Equal(t, tc.want, got)
		})
	}
}
