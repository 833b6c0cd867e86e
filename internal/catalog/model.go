package catalog

import "time"

// UnitTimeProfile holds the per-topic base study minutes reference data.
// Rows are static configuration: the planner reads them, the importer writes them.
type UnitTimeProfile struct {
	SubjectID            string    `db:"subject_id" yaml:"subject_id"`
	TopicID              string    `db:"topic_id" yaml:"topic_id"`
	BaseMinutesFirstPass int       `db:"base_minutes_first_pass" yaml:"base_minutes_first_pass"`
	BaseMinutesRevision  int       `db:"base_minutes_revision" yaml:"base_minutes_revision"`
	DifficultyMultiplier float64   `db:"difficulty_multiplier" yaml:"difficulty_multiplier"`
	CreatedAt            time.Time `db:"created_at" yaml:"-"`
	UpdatedAt            time.Time `db:"updated_at" yaml:"-"`
}
