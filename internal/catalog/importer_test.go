package catalog_test

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/prepwise/studyplan/internal/catalog"
	mock_catalog "github.com/prepwise/studyplan/internal/mocks/catalog"
)

func writeProfilesFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "profiles.yml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

const validProfilesYAML = `profiles:
  - subject_id: biology
    topic_id: cell-structure
    base_minutes_first_pass: 200
    base_minutes_revision: 100
    difficulty_multiplier: 1.5
  - subject_id: biology
    topic_id: genetics
    base_minutes_first_pass: 180
    base_minutes_revision: 90
    difficulty_multiplier: 1.2
`

func TestImporterImportFile(t *testing.T) {
	t.Run("imports profiles and counts new and updated", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		repo := mock_catalog.NewMockProfileRepository(ctrl)
		repo.EXPECT().
			Upsert(gomock.Any(), &catalog.UnitTimeProfile{
				SubjectID: "biology", TopicID: "cell-structure",
				BaseMinutesFirstPass: 200, BaseMinutesRevision: 100, DifficultyMultiplier: 1.5,
			}).
			Return(true, nil)
		repo.EXPECT().
			Upsert(gomock.Any(), &catalog.UnitTimeProfile{
				SubjectID: "biology", TopicID: "genetics",
				BaseMinutesFirstPass: 180, BaseMinutesRevision: 90, DifficultyMultiplier: 1.2,
			}).
			Return(false, nil)

		var out bytes.Buffer
		importer := catalog.NewImporter(repo, &out)
		path := writeProfilesFile(t, validProfilesYAML)

		result, err := importer.ImportFile(context.Background(), path, catalog.ImportOptions{})
		require.NoError(t, err)
		assert.Equal(t, &catalog.ImportResult{ProfilesNew: 1, ProfilesUpdated: 1}, result)
	})

	t.Run("dry run never writes", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		repo := mock_catalog.NewMockProfileRepository(ctrl)

		var out bytes.Buffer
		importer := catalog.NewImporter(repo, &out)
		path := writeProfilesFile(t, validProfilesYAML)

		result, err := importer.ImportFile(context.Background(), path, catalog.ImportOptions{DryRun: true})
		require.NoError(t, err)
		assert.Equal(t, &catalog.ImportResult{ProfilesSkipped: 2}, result)
		assert.Contains(t, out.String(), "would import biology/cell-structure")
	})

	t.Run("rejects an invalid profile", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		repo := mock_catalog.NewMockProfileRepository(ctrl)

		var out bytes.Buffer
		importer := catalog.NewImporter(repo, &out)
		path := writeProfilesFile(t, `profiles:
  - subject_id: biology
    topic_id: genetics
    base_minutes_first_pass: 180
    base_minutes_revision: 90
    difficulty_multiplier: 0
`)

		_, err := importer.ImportFile(context.Background(), path, catalog.ImportOptions{})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "difficulty_multiplier")
	})

	t.Run("missing file", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		repo := mock_catalog.NewMockProfileRepository(ctrl)

		importer := catalog.NewImporter(repo, &bytes.Buffer{})
		_, err := importer.ImportFile(context.Background(), "does-not-exist.yml", catalog.ImportOptions{})
		assert.Error(t, err)
	})
}
