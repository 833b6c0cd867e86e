// Package catalog provides the unit time-profile reference data and its importer.
package catalog

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jmoiron/sqlx"
)

//go:generate mockgen -source=repository.go -destination=../mocks/catalog/mock_repository.go -package=mock_catalog

// ProfileRepository defines operations for managing unit time profiles.
type ProfileRepository interface {
	FindBySubjectAndTopics(ctx context.Context, subjectID string, topicIDs []string) ([]UnitTimeProfile, error)
	FindBySubject(ctx context.Context, subjectID string) ([]UnitTimeProfile, error)
	Upsert(ctx context.Context, profile *UnitTimeProfile) (created bool, err error)
}

// DBProfileRepository implements ProfileRepository using Postgres.
type DBProfileRepository struct {
	db *sqlx.DB
}

// NewDBProfileRepository creates a new DBProfileRepository.
func NewDBProfileRepository(db *sqlx.DB) *DBProfileRepository {
	return &DBProfileRepository{db: db}
}

// FindBySubjectAndTopics returns profiles for the given subject restricted to topicIDs.
func (r *DBProfileRepository) FindBySubjectAndTopics(ctx context.Context, subjectID string, topicIDs []string) ([]UnitTimeProfile, error) {
	if len(topicIDs) == 0 {
		return nil, nil
	}

	query, args, err := sqlx.In(
		"SELECT * FROM unit_time_profiles WHERE subject_id = ? AND topic_id IN (?) ORDER BY topic_id",
		subjectID, topicIDs)
	if err != nil {
		return nil, fmt.Errorf("sqlx.In(unit_time_profiles) > %w", err)
	}

	var profiles []UnitTimeProfile
	if err := r.db.SelectContext(ctx, &profiles, r.db.Rebind(query), args...); err != nil {
		return nil, fmt.Errorf("db.SelectContext(unit_time_profiles) > %w", err)
	}
	return profiles, nil
}

// FindBySubject returns all profiles for a subject.
func (r *DBProfileRepository) FindBySubject(ctx context.Context, subjectID string) ([]UnitTimeProfile, error) {
	var profiles []UnitTimeProfile
	if err := r.db.SelectContext(ctx, &profiles,
		"SELECT * FROM unit_time_profiles WHERE subject_id = $1 ORDER BY topic_id", subjectID); err != nil {
		return nil, fmt.Errorf("db.SelectContext(unit_time_profiles by subject) > %w", err)
	}
	return profiles, nil
}

// Upsert inserts a profile or updates the minutes and multiplier of an existing one.
// It reports whether a new row was created.
func (r *DBProfileRepository) Upsert(ctx context.Context, profile *UnitTimeProfile) (bool, error) {
	var existing UnitTimeProfile
	err := r.db.GetContext(ctx, &existing,
		"SELECT * FROM unit_time_profiles WHERE subject_id = $1 AND topic_id = $2",
		profile.SubjectID, profile.TopicID)
	if err != nil && !errors.Is(err, sql.ErrNoRows) {
		return false, fmt.Errorf("db.GetContext(unit_time_profile) > %w", err)
	}

	if errors.Is(err, sql.ErrNoRows) {
		if _, err := r.db.ExecContext(ctx,
			`INSERT INTO unit_time_profiles
				(subject_id, topic_id, base_minutes_first_pass, base_minutes_revision, difficulty_multiplier)
			VALUES ($1, $2, $3, $4, $5)`,
			profile.SubjectID, profile.TopicID, profile.BaseMinutesFirstPass,
			profile.BaseMinutesRevision, profile.DifficultyMultiplier); err != nil {
			return false, fmt.Errorf("db.ExecContext(insert unit_time_profile) > %w", err)
		}
		return true, nil
	}

	if _, err := r.db.ExecContext(ctx,
		`UPDATE unit_time_profiles
		SET base_minutes_first_pass = $1, base_minutes_revision = $2, difficulty_multiplier = $3, updated_at = now()
		WHERE subject_id = $4 AND topic_id = $5`,
		profile.BaseMinutesFirstPass, profile.BaseMinutesRevision, profile.DifficultyMultiplier,
		profile.SubjectID, profile.TopicID); err != nil {
		return false, fmt.Errorf("db.ExecContext(update unit_time_profile) > %w", err)
	}
	return false, nil
}
