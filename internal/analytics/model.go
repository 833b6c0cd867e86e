package analytics

import "time"

// ActivityLog is one recorded study activity for a student.
type ActivityLog struct {
	ID              int64     `db:"id"`
	UserID          string    `db:"user_id"`
	SubjectID       string    `db:"subject_id"`
	TopicID         string    `db:"topic_id"`
	ActivityType    string    `db:"activity_type"`
	DurationMinutes int       `db:"duration_minutes"`
	CorrectCount    int       `db:"correct_count"`
	TotalCount      int       `db:"total_count"`
	OccurredAt      time.Time `db:"occurred_at"`
}

// AccuracySample is one graded activity record for a topic.
type AccuracySample struct {
	TopicID      string `db:"topic_id"`
	CorrectCount int    `db:"correct_count"`
	TotalCount   int    `db:"total_count"`
}

// OverallAccuracy aggregates question counts over a window of daily stats.
type OverallAccuracy struct {
	Attempted int `db:"attempted"`
	Correct   int `db:"correct"`
}

// PageDuration is the tracked time on one page type for a day.
type PageDuration struct {
	PageType string `db:"page_type"`
	Minutes  int    `db:"minutes"`
}

// ActivityDuration is the summed activity-log time for one activity type on a day.
type ActivityDuration struct {
	ActivityType string `db:"activity_type"`
	Minutes      int    `db:"minutes"`
}
