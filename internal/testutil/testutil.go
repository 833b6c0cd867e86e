// Package testutil provides shared test helpers for creating config and catalog fixtures.
package testutil

import (
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

// SetupTestConfig creates a minimal config file for testing.
// Returns the path to the generated config file.
func SetupTestConfig(t *testing.T, tmpDir string) string {
	t.Helper()

	configContent := fmt.Sprintf(`database:
  host: localhost
  port: 5432
  database: studyplan_test
  username: studyplan
  ssl_mode: disable
planner:
  retry_attempts: 0
catalog:
  profiles_file: %s
`,
		filepath.Join(tmpDir, "profiles.yml"),
	)

	cfgPath := filepath.Join(tmpDir, "config.yml")
	require.NoError(t, os.WriteFile(cfgPath, []byte(configContent), 0644))
	return cfgPath
}

// ProfilesFileOption configures optional fields when creating a profiles fixture.
type ProfilesFileOption func(*profilesFileConfig)

type profilesFileConfig struct {
	difficultyMultiplier float64
}

// WithDifficultyMultiplier sets the multiplier used for every generated profile.
func WithDifficultyMultiplier(multiplier float64) ProfilesFileOption {
	return func(cfg *profilesFileConfig) {
		cfg.difficultyMultiplier = multiplier
	}
}

// CreateProfilesFile writes a catalog YAML file with one profile per topic ID.
// Profiles default to 200/100 base minutes and a 1.0 multiplier.
func CreateProfilesFile(t *testing.T, dir, subjectID string, topicIDs []string, opts ...ProfilesFileOption) string {
	t.Helper()

	cfg := profilesFileConfig{difficultyMultiplier: 1.0}
	for _, opt := range opts {
		opt(&cfg)
	}

	content := "profiles:\n"
	for _, topicID := range topicIDs {
		content += fmt.Sprintf(`  - subject_id: %s
    topic_id: %s
    base_minutes_first_pass: 200
    base_minutes_revision: 100
    difficulty_multiplier: %g
`, subjectID, topicID, cfg.difficultyMultiplier)
	}

	path := filepath.Join(dir, "profiles.yml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}
