package catalog

import (
	"context"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"
)

// ImportResult tracks counts for a catalog import.
type ImportResult struct {
	ProfilesNew     int
	ProfilesUpdated int
	ProfilesSkipped int
}

// ImportOptions controls import behavior.
type ImportOptions struct {
	DryRun bool
}

// profilesFile is the YAML layout of a catalog file.
type profilesFile struct {
	Profiles []UnitTimeProfile `yaml:"profiles"`
}

// Importer reads YAML time-profile data and writes it to the database.
type Importer struct {
	profileRepo ProfileRepository
	writer      io.Writer
}

// NewImporter creates a new Importer.
func NewImporter(profileRepo ProfileRepository, writer io.Writer) *Importer {
	return &Importer{
		profileRepo: profileRepo,
		writer:      writer,
	}
}

// ImportFile imports all profiles from a YAML file.
func (imp *Importer) ImportFile(ctx context.Context, path string, opts ImportOptions) (*ImportResult, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("os.ReadFile(%s) > %w", path, err)
	}

	var file profilesFile
	if err := yaml.Unmarshal(content, &file); err != nil {
		return nil, fmt.Errorf("yaml.Unmarshal(%s) > %w", path, err)
	}

	var result ImportResult
	for i := range file.Profiles {
		profile := &file.Profiles[i]
		if err := validateProfile(profile); err != nil {
			return nil, fmt.Errorf("profile %s/%s: %w", profile.SubjectID, profile.TopicID, err)
		}

		if opts.DryRun {
			result.ProfilesSkipped++
			fmt.Fprintf(imp.writer, "would import %s/%s\n", profile.SubjectID, profile.TopicID)
			continue
		}

		created, err := imp.profileRepo.Upsert(ctx, profile)
		if err != nil {
			return nil, fmt.Errorf("profileRepo.Upsert(%s/%s) > %w", profile.SubjectID, profile.TopicID, err)
		}
		if created {
			result.ProfilesNew++
		} else {
			result.ProfilesUpdated++
		}
	}

	return &result, nil
}

func validateProfile(profile *UnitTimeProfile) error {
	if profile.SubjectID == "" || profile.TopicID == "" {
		return fmt.Errorf("subject_id and topic_id are required")
	}
	if profile.BaseMinutesFirstPass < 0 || profile.BaseMinutesRevision < 0 {
		return fmt.Errorf("base minutes must not be negative")
	}
	if profile.DifficultyMultiplier <= 0 {
		return fmt.Errorf("difficulty_multiplier must be greater than zero")
	}
	return nil
}
