// Package catalog loads talent and job match profiles from YAML or JSON files.
package catalog

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/jonathan/o1-match/internal/types"
	"gopkg.in/yaml.v3"
)

// Catalog is a set of talents and jobs loaded from one file.
type Catalog struct {
	Talents []types.TalentMatchProfile `json:"talents" yaml:"talents"`
	Jobs    []types.JobMatchProfile    `json:"jobs" yaml:"jobs"`
}

// FindTalent returns the talent with the given id, or nil.
func (c *Catalog) FindTalent(id string) *types.TalentMatchProfile {
	for i := range c.Talents {
		if c.Talents[i].ID == id {
			return &c.Talents[i]
		}
	}
	return nil
}

// FindJob returns the job with the given id, or nil.
func (c *Catalog) FindJob(id string) *types.JobMatchProfile {
	for i := range c.Jobs {
		if c.Jobs[i].ID == id {
			return &c.Jobs[i]
		}
	}
	return nil
}

// LoadTalent loads a single talent profile.
func LoadTalent(path string) (*types.TalentMatchProfile, error) {
	var talent types.TalentMatchProfile
	if err := decodeFile(path, &talent); err != nil {
		return nil, err
	}
	if err := talent.Validate(); err != nil {
		return nil, &LoadError{Path: path, Message: "invalid talent profile", Cause: err}
	}

	normalized := talent.Normalized()
	return &normalized, nil
}

// LoadJob loads a single job profile.
func LoadJob(path string) (*types.JobMatchProfile, error) {
	var job types.JobMatchProfile
	if err := decodeFile(path, &job); err != nil {
		return nil, err
	}
	if err := job.Validate(); err != nil {
		return nil, &LoadError{Path: path, Message: "invalid job profile", Cause: err}
	}

	normalized := job.Normalized()
	return &normalized, nil
}

// LoadCatalog loads a file holding lists of talents and jobs. Ids must be unique per list.
func LoadCatalog(path string) (*Catalog, error) {
	var raw Catalog
	if err := decodeFile(path, &raw); err != nil {
		return nil, err
	}

	out := &Catalog{
		Talents: make([]types.TalentMatchProfile, 0, len(raw.Talents)),
		Jobs:    make([]types.JobMatchProfile, 0, len(raw.Jobs)),
	}

	seen := make(map[string]bool, len(raw.Talents))
	for i := range raw.Talents {
		talent := &raw.Talents[i]
		if err := talent.Validate(); err != nil {
			return nil, &LoadError{Path: path, Message: fmt.Sprintf("invalid talent at index %d", i), Cause: err}
		}
		if seen[talent.ID] {
			return nil, &LoadError{Path: path, Message: fmt.Sprintf("duplicate talent id %q", talent.ID)}
		}
		seen[talent.ID] = true
		out.Talents = append(out.Talents, talent.Normalized())
	}

	seen = make(map[string]bool, len(raw.Jobs))
	for i := range raw.Jobs {
		job := &raw.Jobs[i]
		if err := job.Validate(); err != nil {
			return nil, &LoadError{Path: path, Message: fmt.Sprintf("invalid job at index %d", i), Cause: err}
		}
		if seen[job.ID] {
			return nil, &LoadError{Path: path, Message: fmt.Sprintf("duplicate job id %q", job.ID)}
		}
		seen[job.ID] = true
		out.Jobs = append(out.Jobs, job.Normalized())
	}

	return out, nil
}

func decodeFile(path string, v any) error {
	content, err := os.ReadFile(path)
	if err != nil {
		return &LoadError{Path: path, Message: "failed to read file", Cause: err}
	}

	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(content, v); err != nil {
			return &LoadError{Path: path, Message: "failed to unmarshal YAML", Cause: err}
		}
	case ".json":
		if err := json.Unmarshal(content, v); err != nil {
			return &LoadError{Path: path, Message: "failed to unmarshal JSON", Cause: err}
		}
	default:
		return &LoadError{Path: path, Message: fmt.Sprintf("unsupported file extension %q", ext)}
	}
	return nil
}
