// Package analytics provides read access to a student's activity history and
// the study-activity write path.
package analytics

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"
)

//go:generate mockgen -source=repository.go -destination=../mocks/analytics/mock_repository.go -package=mock_analytics

// Repository defines read and write operations over activity history.
type Repository interface {
	// FindAccuracySamples returns graded activity records for the user
	// restricted to topicIDs. Records without graded questions are excluded.
	FindAccuracySamples(ctx context.Context, userID string, topicIDs []string) ([]AccuracySample, error)
	// OverallAccuracySince aggregates attempted/correct question counts from
	// daily stats on or after since.
	OverallAccuracySince(ctx context.Context, userID string, since time.Time) (OverallAccuracy, error)
	// PageDurations returns per-page-type tracked minutes for a date.
	PageDurations(ctx context.Context, userID, subjectID string, date time.Time) ([]PageDuration, error)
	// DailyTotalMinutes returns the coarse total tracked minutes for a date,
	// or 0 if no stats row exists.
	DailyTotalMinutes(ctx context.Context, userID string, date time.Time) (int, error)
	// ActivityDurations returns per-activity-type minutes from the raw
	// activity log for a date.
	ActivityDurations(ctx context.Context, userID, subjectID string, date time.Time) ([]ActivityDuration, error)
	// CreateActivityLog records a study activity.
	CreateActivityLog(ctx context.Context, log *ActivityLog) error
}

// DBRepository implements Repository using Postgres.
type DBRepository struct {
	db *sqlx.DB
}

// NewDBRepository creates a new DBRepository.
func NewDBRepository(db *sqlx.DB) *DBRepository {
	return &DBRepository{db: db}
}

// FindAccuracySamples returns graded activity records restricted to topicIDs.
func (r *DBRepository) FindAccuracySamples(ctx context.Context, userID string, topicIDs []string) ([]AccuracySample, error) {
	if len(topicIDs) == 0 {
		return nil, nil
	}

	query, args, err := sqlx.In(
		`SELECT topic_id, correct_count, total_count FROM activity_logs
		WHERE user_id = ? AND topic_id IN (?) AND total_count > 0
		ORDER BY occurred_at`,
		userID, topicIDs)
	if err != nil {
		return nil, fmt.Errorf("sqlx.In(activity_logs) > %w", err)
	}

	var samples []AccuracySample
	if err := r.db.SelectContext(ctx, &samples, r.db.Rebind(query), args...); err != nil {
		return nil, fmt.Errorf("db.SelectContext(accuracy samples) > %w", err)
	}
	return samples, nil
}

// OverallAccuracySince aggregates question counts from daily stats.
func (r *DBRepository) OverallAccuracySince(ctx context.Context, userID string, since time.Time) (OverallAccuracy, error) {
	var acc OverallAccuracy
	err := r.db.GetContext(ctx, &acc,
		`SELECT COALESCE(SUM(questions_attempted), 0) AS attempted,
			COALESCE(SUM(questions_correct), 0) AS correct
		FROM daily_stats WHERE user_id = $1 AND stat_date >= $2`,
		userID, since)
	if err != nil {
		return OverallAccuracy{}, fmt.Errorf("db.GetContext(overall accuracy) > %w", err)
	}
	return acc, nil
}

// PageDurations returns per-page-type tracked minutes for a date.
func (r *DBRepository) PageDurations(ctx context.Context, userID, subjectID string, date time.Time) ([]PageDuration, error) {
	var durations []PageDuration
	if err := r.db.SelectContext(ctx, &durations,
		`SELECT page_type, COALESCE(SUM(duration_minutes), 0) AS minutes
		FROM page_time_entries
		WHERE user_id = $1 AND subject_id = $2 AND entry_date = $3
		GROUP BY page_type ORDER BY page_type`,
		userID, subjectID, date); err != nil {
		return nil, fmt.Errorf("db.SelectContext(page durations) > %w", err)
	}
	return durations, nil
}

// DailyTotalMinutes returns the coarse tracked total for a date, or 0 without a row.
func (r *DBRepository) DailyTotalMinutes(ctx context.Context, userID string, date time.Time) (int, error) {
	var minutes int
	err := r.db.GetContext(ctx, &minutes,
		"SELECT total_minutes FROM daily_stats WHERE user_id = $1 AND stat_date = $2",
		userID, date)
	if errors.Is(err, sql.ErrNoRows) {
		return 0, nil
	}
	if err != nil {
		return 0, fmt.Errorf("db.GetContext(daily total minutes) > %w", err)
	}
	return minutes, nil
}

// ActivityDurations returns per-activity-type minutes from the raw activity log.
func (r *DBRepository) ActivityDurations(ctx context.Context, userID, subjectID string, date time.Time) ([]ActivityDuration, error) {
	var durations []ActivityDuration
	if err := r.db.SelectContext(ctx, &durations,
		`SELECT activity_type, COALESCE(SUM(duration_minutes), 0) AS minutes
		FROM activity_logs
		WHERE user_id = $1 AND subject_id = $2
			AND occurred_at >= $3 AND occurred_at < $3 + INTERVAL '1 day'
		GROUP BY activity_type ORDER BY activity_type`,
		userID, subjectID, date); err != nil {
		return nil, fmt.Errorf("db.SelectContext(activity durations) > %w", err)
	}
	return durations, nil
}

// CreateActivityLog records a study activity.
func (r *DBRepository) CreateActivityLog(ctx context.Context, log *ActivityLog) error {
	var id int64
	if err := r.db.GetContext(ctx, &id,
		`INSERT INTO activity_logs
			(user_id, subject_id, topic_id, activity_type, duration_minutes, correct_count, total_count, occurred_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING id`,
		log.UserID, log.SubjectID, log.TopicID, log.ActivityType,
		log.DurationMinutes, log.CorrectCount, log.TotalCount, log.OccurredAt); err != nil {
		return fmt.Errorf("db.GetContext(insert activity_log) > %w", err)
	}
	log.ID = id
	return nil
}
