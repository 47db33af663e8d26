package matching

import (
	"go.uber.org/zap"

	"github.com/jonathan/o1-match/internal/types"
)

// Scorer wraps the scoring functions with optional debug logging and a default rank limit.
// It holds no mutable state and may be shared between goroutines.
type Scorer struct {
	logger       *zap.Logger
	defaultLimit int
}

// Option configures a Scorer.
type Option func(*Scorer)

// WithLogger sets the logger used for per-match debug lines.
func WithLogger(logger *zap.Logger) Option {
	return func(s *Scorer) {
		if logger != nil {
			s.logger = logger
		}
	}
}

// WithDefaultLimit sets the limit applied when a rank call passes limit <= 0.
func WithDefaultLimit(limit int) Option {
	return func(s *Scorer) {
		if limit > 0 {
			s.defaultLimit = limit
		}
	}
}

// NewScorer creates a Scorer. Without options it logs nothing and ranks DefaultRankLimit entries.
func NewScorer(opts ...Option) *Scorer {
	s := &Scorer{
		logger:       zap.NewNop(),
		defaultLimit: DefaultRankLimit,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Score compares one talent to one job.
func (s *Scorer) Score(talent *types.TalentMatchProfile, job *types.JobMatchProfile) types.MatchResult {
	result := CalculateMatchScore(talent, job)
	if ce := s.logger.Check(zap.DebugLevel, "scored match"); ce != nil {
		ce.Write(
			zap.String("talent_id", profileID(talent)),
			zap.String("job_id", jobID(job)),
			zap.Int("overall_score", result.OverallScore),
			zap.String("category", string(result.Category)),
		)
	}
	return result
}

// RankJobs returns the best job matches for a talent.
func (s *Scorer) RankJobs(talent *types.TalentMatchProfile, jobs []types.JobMatchProfile, limit int) []types.JobMatch {
	matches := GetBestJobMatches(talent, jobs, s.limit(limit))
	fields := []zap.Field{
		zap.String("talent_id", profileID(talent)),
		zap.Int("candidates", len(jobs)),
		zap.Int("returned", len(matches)),
	}
	if len(matches) > 0 {
		fields = append(fields, zap.Int("top_score", matches[0].Result.OverallScore))
	}
	s.logger.Debug("ranked jobs for talent", fields...)
	return matches
}

// RankTalents returns the best talent matches for a job.
func (s *Scorer) RankTalents(job *types.JobMatchProfile, talents []types.TalentMatchProfile, limit int) []types.TalentMatch {
	matches := GetBestTalentMatches(job, talents, s.limit(limit))
	fields := []zap.Field{
		zap.String("job_id", jobID(job)),
		zap.Int("candidates", len(talents)),
		zap.Int("returned", len(matches)),
	}
	if len(matches) > 0 {
		fields = append(fields, zap.Int("top_score", matches[0].Result.OverallScore))
	}
	s.logger.Debug("ranked talents for job", fields...)
	return matches
}

func (s *Scorer) limit(limit int) int {
	if limit <= 0 {
		return s.defaultLimit
	}
	return limit
}

func profileID(p *types.TalentMatchProfile) string {
	if p == nil {
		return ""
	}
	return p.ID
}

func jobID(j *types.JobMatchProfile) string {
	if j == nil {
		return ""
	}
	return j.ID
}
