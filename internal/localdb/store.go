// Package localdb stores talent and job match profiles in an embedded SQLite catalog.
package localdb

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/jonathan/o1-match/internal/catalog"
	"github.com/jonathan/o1-match/internal/types"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
	"gorm.io/gorm/logger"
)

// Store wraps the SQLite catalog
type Store struct {
	db *gorm.DB
}

// UpsertResult counts how many rows a write created and how many it updated
type UpsertResult struct {
	Created int
	Updated int
}

// ImportResult reports the outcome of importing a catalog file
type ImportResult struct {
	Talents UpsertResult
	Jobs    UpsertResult
}

// Open creates the database file if needed and migrates the tables
func Open(dbPath string) (*Store, error) {
	if err := os.MkdirAll(filepath.Dir(dbPath), 0o755); err != nil {
		return nil, fmt.Errorf("create db dir: %w", err)
	}

	db, err := gorm.Open(sqlite.Open(dbPath), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		return nil, fmt.Errorf("open sqlite: %w", err)
	}

	if err := db.AutoMigrate(&TalentRecord{}, &JobRecord{}); err != nil {
		return nil, fmt.Errorf("auto migrate models: %w", err)
	}

	return &Store{db: db}, nil
}

// Close closes the underlying connection
func (s *Store) Close() error {
	sqlDB, err := s.db.DB()
	if err != nil {
		return fmt.Errorf("get sql DB: %w", err)
	}
	if err := sqlDB.Close(); err != nil {
		return fmt.Errorf("close db: %w", err)
	}
	return nil
}

// UpsertTalents writes talents, updating rows whose id already exists
func (s *Store) UpsertTalents(ctx context.Context, talents []TalentRecord) (UpsertResult, error) {
	return upsertTalents(s.db.WithContext(ctx), talents)
}

// UpsertJobs writes jobs, updating rows whose id already exists. Blank status becomes open.
func (s *Store) UpsertJobs(ctx context.Context, jobs []JobRecord) (UpsertResult, error) {
	return upsertJobs(s.db.WithContext(ctx), jobs)
}

// ImportCatalog writes every talent and job of the catalog in one transaction
func (s *Store) ImportCatalog(ctx context.Context, cat *catalog.Catalog) (ImportResult, error) {
	var res ImportResult
	if cat == nil {
		return res, nil
	}

	talents := make([]TalentRecord, 0, len(cat.Talents))
	for i := range cat.Talents {
		talents = append(talents, NewTalentRecord(&cat.Talents[i]))
	}
	jobs := make([]JobRecord, 0, len(cat.Jobs))
	for i := range cat.Jobs {
		jobs = append(jobs, NewJobRecord(&cat.Jobs[i]))
	}

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var err error
		if res.Talents, err = upsertTalents(tx, talents); err != nil {
			return err
		}
		if res.Jobs, err = upsertJobs(tx, jobs); err != nil {
			return err
		}
		return nil
	})
	if err != nil {
		return ImportResult{}, fmt.Errorf("import catalog: %w", err)
	}
	return res, nil
}

// GetTalent returns a talent's match profile, or nil when no such talent exists
func (s *Store) GetTalent(ctx context.Context, id string) (*types.TalentMatchProfile, error) {
	var rec TalentRecord
	if err := s.db.WithContext(ctx).First(&rec, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("get talent: %w", err)
	}
	profile := rec.ToMatchProfile()
	return &profile, nil
}

// GetJob returns a job's match profile, or nil when no such job exists
func (s *Store) GetJob(ctx context.Context, id string) (*types.JobMatchProfile, error) {
	var rec JobRecord
	if err := s.db.WithContext(ctx).First(&rec, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("get job: %w", err)
	}
	profile := rec.ToMatchProfile()
	return &profile, nil
}

// ListTalents returns talents ordered by O-1 score, highest first. limit <= 0 means all.
func (s *Store) ListTalents(ctx context.Context, limit int) ([]types.TalentMatchProfile, error) {
	var recs []TalentRecord
	query := s.db.WithContext(ctx).Order("o1_score DESC").Order("id ASC")
	if limit > 0 {
		query = query.Limit(limit)
	}
	if err := query.Find(&recs).Error; err != nil {
		return nil, fmt.Errorf("list talents: %w", err)
	}

	profiles := make([]types.TalentMatchProfile, 0, len(recs))
	for i := range recs {
		profiles = append(profiles, recs[i].ToMatchProfile())
	}
	return profiles, nil
}

// ListJobs returns open jobs, most recently updated first. limit <= 0 means all.
func (s *Store) ListJobs(ctx context.Context, limit int) ([]types.JobMatchProfile, error) {
	var recs []JobRecord
	query := s.db.WithContext(ctx).
		Where("status = ?", JobStatusOpen).
		Order("updated_at DESC").
		Order("id ASC")
	if limit > 0 {
		query = query.Limit(limit)
	}
	if err := query.Find(&recs).Error; err != nil {
		return nil, fmt.Errorf("list jobs: %w", err)
	}

	profiles := make([]types.JobMatchProfile, 0, len(recs))
	for i := range recs {
		profiles = append(profiles, recs[i].ToMatchProfile())
	}
	return profiles, nil
}

func upsertTalents(db *gorm.DB, talents []TalentRecord) (UpsertResult, error) {
	res := UpsertResult{}
	if len(talents) == 0 {
		return res, nil
	}

	ids := make([]string, 0, len(talents))
	for _, t := range talents {
		ids = append(ids, t.ID)
	}
	created, err := countNew(db, &TalentRecord{}, ids)
	if err != nil {
		return res, err
	}
	res.Created = created
	res.Updated = len(distinct(ids)) - created

	tx := db.Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "id"}},
		DoUpdates: clause.AssignmentColumns([]string{
			"o1_score",
			"criteria_met",
			"skills",
			"education_level",
			"years_experience",
			"updated_at",
		}),
	}).Create(&talents)
	if tx.Error != nil {
		return UpsertResult{}, fmt.Errorf("upsert talents: %w", tx.Error)
	}
	return res, nil
}

func upsertJobs(db *gorm.DB, jobs []JobRecord) (UpsertResult, error) {
	res := UpsertResult{}
	if len(jobs) == 0 {
		return res, nil
	}

	ids := make([]string, 0, len(jobs))
	for i := range jobs {
		if jobs[i].Status == "" {
			jobs[i].Status = JobStatusOpen
		}
		ids = append(ids, jobs[i].ID)
	}
	created, err := countNew(db, &JobRecord{}, ids)
	if err != nil {
		return res, err
	}
	res.Created = created
	res.Updated = len(distinct(ids)) - created

	tx := db.Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "id"}},
		DoUpdates: clause.AssignmentColumns([]string{
			"min_score",
			"preferred_criteria",
			"required_skills",
			"preferred_skills",
			"required_education",
			"min_experience",
			"status",
			"updated_at",
		}),
	}).Create(&jobs)
	if tx.Error != nil {
		return UpsertResult{}, fmt.Errorf("upsert jobs: %w", tx.Error)
	}
	return res, nil
}

// countNew returns how many distinct ids are not yet stored for the model
func countNew(db *gorm.DB, model any, ids []string) (int, error) {
	var existing []string
	if err := db.Model(model).Where("id IN ?", ids).Pluck("id", &existing).Error; err != nil {
		return 0, fmt.Errorf("query existing ids: %w", err)
	}
	return len(distinct(ids)) - len(existing), nil
}

func distinct(ids []string) []string {
	seen := make(map[string]struct{}, len(ids))
	out := make([]string, 0, len(ids))
	for _, id := range ids {
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		out = append(out, id)
	}
	return out
}
