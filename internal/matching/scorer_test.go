package matching

import (
	"testing"

	"github.com/jonathan/o1-match/internal/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestNewScorer_Defaults(t *testing.T) {
	s := NewScorer()
	assert.Equal(t, DefaultRankLimit, s.defaultLimit)
	assert.NotNil(t, s.logger)
}

func TestNewScorer_IgnoresInvalidOptions(t *testing.T) {
	s := NewScorer(WithLogger(nil), WithDefaultLimit(0))
	assert.NotNil(t, s.logger)
	assert.Equal(t, DefaultRankLimit, s.defaultLimit)
}

func TestScorer_ScoreMatchesPureFunction(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	s := NewScorer(WithLogger(zap.New(core)))

	result := s.Score(workedExampleTalent(), workedExampleJob())

	assert.Equal(t, CalculateMatchScore(workedExampleTalent(), workedExampleJob()), result)
	entries := logs.FilterMessage("scored match").All()
	require.Len(t, entries, 1)
	fields := entries[0].ContextMap()
	assert.Equal(t, "talent-1", fields["talent_id"])
	assert.Equal(t, "job-1", fields["job_id"])
	assert.Equal(t, int64(70), fields["overall_score"])
	assert.Equal(t, "good", fields["category"])
}

func TestScorer_SkipsDebugAboveLevel(t *testing.T) {
	core, logs := observer.New(zapcore.InfoLevel)
	s := NewScorer(WithLogger(zap.New(core)))

	s.Score(nil, nil)
	s.RankJobs(rankTalent(), rankJobs(), 0)

	assert.Zero(t, logs.Len())
}

func TestScorer_RankJobsUsesDefaultLimit(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	s := NewScorer(WithLogger(zap.New(core)), WithDefaultLimit(2))

	matches := s.RankJobs(rankTalent(), rankJobs(), 0)
	assert.Len(t, matches, 2)

	matches = s.RankJobs(rankTalent(), rankJobs(), 3)
	assert.Len(t, matches, 3)

	entries := logs.FilterMessage("ranked jobs for talent").All()
	require.Len(t, entries, 2)
	fields := entries[0].ContextMap()
	assert.Equal(t, "t-1", fields["talent_id"])
	assert.Equal(t, int64(4), fields["candidates"])
	assert.Equal(t, int64(2), fields["returned"])
	assert.Equal(t, int64(100), fields["top_score"])
}

func TestScorer_RankTalents(t *testing.T) {
	s := NewScorer(WithDefaultLimit(1))
	job := workedExampleJob()

	matches := s.RankTalents(job, []types.TalentMatchProfile{{ID: "a"}, *workedExampleTalent()}, 0)

	require.Len(t, matches, 1)
	assert.Equal(t, "talent-1", matches[0].Talent.ID)
}
