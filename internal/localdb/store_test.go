package localdb

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/jonathan/o1-match/internal/catalog"
	"github.com/jonathan/o1-match/internal/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func strPtr(s string) *string     { return &s }
func floatPtr(f float64) *float64 { return &f }

func newTestStore(t *testing.T) *Store {
	t.Helper()

	store, err := Open(filepath.Join(t.TempDir(), "nested", "catalog.db"))
	require.NoError(t, err)
	t.Cleanup(func() {
		_ = store.Close()
	})
	return store
}

func testCatalog() *catalog.Catalog {
	return &catalog.Catalog{
		Talents: []types.TalentMatchProfile{
			{ID: "t-1", O1Score: 60, Skills: []string{"python"}},
			{
				ID:              "t-2",
				O1Score:         90,
				CriteriaMet:     []types.Criterion{types.CriterionAwards, types.CriterionJudging},
				Skills:          []string{"Go", "AWS"},
				EducationLevel:  strPtr("PhD"),
				YearsExperience: floatPtr(11),
			},
		},
		Jobs: []types.JobMatchProfile{
			{
				ID:                "j-1",
				MinScore:          70,
				PreferredCriteria: []types.Criterion{types.CriterionAwards},
				RequiredSkills:    []string{"golang"},
				PreferredSkills:   []string{"aws"},
				RequiredEducation: strPtr("master"),
				MinExperience:     floatPtr(5),
			},
			{ID: "j-2"},
		},
	}
}

func TestImportCatalog_RoundTrip(t *testing.T) {
	t.Parallel()
	store := newTestStore(t)
	ctx := context.Background()

	res, err := store.ImportCatalog(ctx, testCatalog())
	require.NoError(t, err)
	assert.Equal(t, UpsertResult{Created: 2}, res.Talents)
	assert.Equal(t, UpsertResult{Created: 2}, res.Jobs)

	talent, err := store.GetTalent(ctx, "t-2")
	require.NoError(t, err)
	require.NotNil(t, talent)
	assert.Equal(t, testCatalog().Talents[1], *talent)

	job, err := store.GetJob(ctx, "j-1")
	require.NoError(t, err)
	require.NotNil(t, job)
	assert.Equal(t, testCatalog().Jobs[0], *job)
}

func TestImportCatalog_UpdatesExisting(t *testing.T) {
	t.Parallel()
	store := newTestStore(t)
	ctx := context.Background()

	_, err := store.ImportCatalog(ctx, testCatalog())
	require.NoError(t, err)

	updated := testCatalog()
	updated.Talents[0].O1Score = 95
	updated.Talents = append(updated.Talents, types.TalentMatchProfile{ID: "t-3", O1Score: 10})

	res, err := store.ImportCatalog(ctx, updated)
	require.NoError(t, err)
	assert.Equal(t, UpsertResult{Created: 1, Updated: 2}, res.Talents)
	assert.Equal(t, UpsertResult{Updated: 2}, res.Jobs)

	talent, err := store.GetTalent(ctx, "t-1")
	require.NoError(t, err)
	require.NotNil(t, talent)
	assert.Equal(t, 95, talent.O1Score)
}

func TestImportCatalog_Nil(t *testing.T) {
	t.Parallel()
	store := newTestStore(t)

	res, err := store.ImportCatalog(context.Background(), nil)
	require.NoError(t, err)
	assert.Equal(t, ImportResult{}, res)
}

func TestGet_Missing(t *testing.T) {
	t.Parallel()
	store := newTestStore(t)
	ctx := context.Background()

	talent, err := store.GetTalent(ctx, "missing")
	assert.NoError(t, err)
	assert.Nil(t, talent)

	job, err := store.GetJob(ctx, "missing")
	assert.NoError(t, err)
	assert.Nil(t, job)
}

func TestListTalents_OrderAndLimit(t *testing.T) {
	t.Parallel()
	store := newTestStore(t)
	ctx := context.Background()

	_, err := store.ImportCatalog(ctx, testCatalog())
	require.NoError(t, err)

	talents, err := store.ListTalents(ctx, 0)
	require.NoError(t, err)
	require.Len(t, talents, 2)
	assert.Equal(t, "t-2", talents[0].ID)
	assert.Equal(t, "t-1", talents[1].ID)

	talents, err = store.ListTalents(ctx, 1)
	require.NoError(t, err)
	assert.Len(t, talents, 1)
}

func TestListJobs_OnlyOpen(t *testing.T) {
	t.Parallel()
	store := newTestStore(t)
	ctx := context.Background()

	_, err := store.ImportCatalog(ctx, testCatalog())
	require.NoError(t, err)

	closed := NewJobRecord(&types.JobMatchProfile{ID: "j-closed"})
	closed.Status = "closed"
	res, err := store.UpsertJobs(ctx, []JobRecord{closed})
	require.NoError(t, err)
	assert.Equal(t, 1, res.Created)

	jobs, err := store.ListJobs(ctx, 0)
	require.NoError(t, err)
	require.Len(t, jobs, 2)
	for _, job := range jobs {
		assert.NotEqual(t, "j-closed", job.ID)
	}

	// Closed jobs are still reachable by id.
	job, err := store.GetJob(ctx, "j-closed")
	require.NoError(t, err)
	assert.NotNil(t, job)
}

func TestUpsertJobs_DefaultsStatus(t *testing.T) {
	t.Parallel()
	store := newTestStore(t)
	ctx := context.Background()

	_, err := store.UpsertJobs(ctx, []JobRecord{{ID: "j-blank"}})
	require.NoError(t, err)

	jobs, err := store.ListJobs(ctx, 0)
	require.NoError(t, err)
	require.Len(t, jobs, 1)
	assert.Equal(t, "j-blank", jobs[0].ID)
}

func TestUpsert_Empty(t *testing.T) {
	t.Parallel()
	store := newTestStore(t)

	res, err := store.UpsertTalents(context.Background(), nil)
	require.NoError(t, err)
	assert.Equal(t, UpsertResult{}, res)
}

func TestRecordConversion(t *testing.T) {
	profile := testCatalog().Talents[1]
	rec := NewTalentRecord(&profile)

	assert.Equal(t, []string{"awards", "judging"}, []string(rec.CriteriaMet))
	assert.Equal(t, profile, rec.ToMatchProfile())

	job := testCatalog().Jobs[1]
	jobRec := NewJobRecord(&job)
	assert.Equal(t, JobStatusOpen, jobRec.Status)
	assert.Equal(t, job.Normalized(), jobRec.ToMatchProfile())
}
