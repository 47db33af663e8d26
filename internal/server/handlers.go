package server

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"

	"golang.org/x/sync/errgroup"

	"github.com/jonathan/o1-match/internal/config"
	"github.com/jonathan/o1-match/internal/types"
)

// maxBodyBytes bounds POST /match request bodies.
const maxBodyBytes = 1 << 20

// handleHealth returns server health status
func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	s.jsonResponse(w, http.StatusOK, map[string]string{"status": "ok"})
}

// handleMatch scores an ad-hoc talent/job pair from the request body.
func (s *Server) handleMatch(w http.ResponseWriter, r *http.Request) {
	var req types.MatchRequest
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	if err := dec.Decode(&req); err != nil {
		s.writeError(w, r, &ErrValidation{Field: "body", Message: "invalid JSON", Cause: err})
		return
	}
	if err := req.Validate(); err != nil {
		s.writeError(w, r, &ErrValidation{Field: "body", Message: err.Error(), Cause: err})
		return
	}

	talent := req.Talent.Normalized()
	job := req.Job.Normalized()
	s.jsonResponse(w, http.StatusOK, s.scorer.Score(&talent, &job))
}

// handleJobMatches ranks open jobs for a stored talent.
func (s *Server) handleJobMatches(w http.ResponseWriter, r *http.Request) {
	talentID := r.PathValue("id")
	limit, err := s.parseLimit(r)
	if err != nil {
		s.writeError(w, r, err)
		return
	}

	var (
		talent *types.TalentMatchProfile
		jobs   []types.JobMatchProfile
	)
	g, ctx := errgroup.WithContext(r.Context())
	g.Go(func() error {
		var err error
		talent, err = s.store.GetTalent(ctx, talentID)
		return err
	})
	g.Go(func() error {
		var err error
		jobs, err = s.store.ListJobs(ctx, 0)
		return err
	})
	if err := g.Wait(); err != nil {
		s.writeError(w, r, fmt.Errorf("failed to load talent %s and jobs: %w", talentID, err))
		return
	}
	if talent == nil {
		s.writeError(w, r, &ErrNotFound{Kind: "talent", ID: talentID})
		return
	}

	s.jsonResponse(w, http.StatusOK, types.JobMatches{
		TalentID: talent.ID,
		Matches:  s.scorer.RankJobs(talent, jobs, limit),
	})
}

// handleTalentMatches ranks stored talents for a job.
func (s *Server) handleTalentMatches(w http.ResponseWriter, r *http.Request) {
	jobID := r.PathValue("id")
	limit, err := s.parseLimit(r)
	if err != nil {
		s.writeError(w, r, err)
		return
	}

	var (
		job     *types.JobMatchProfile
		talents []types.TalentMatchProfile
	)
	g, ctx := errgroup.WithContext(r.Context())
	g.Go(func() error {
		var err error
		job, err = s.store.GetJob(ctx, jobID)
		return err
	})
	g.Go(func() error {
		var err error
		talents, err = s.store.ListTalents(ctx, 0)
		return err
	})
	if err := g.Wait(); err != nil {
		s.writeError(w, r, fmt.Errorf("failed to load job %s and talents: %w", jobID, err))
		return
	}
	if job == nil {
		s.writeError(w, r, &ErrNotFound{Kind: "job", ID: jobID})
		return
	}

	s.jsonResponse(w, http.StatusOK, types.TalentMatches{
		JobID:   job.ID,
		Matches: s.scorer.RankTalents(job, talents, limit),
	})
}

// parseLimit reads ?limit=N. Absent means the server's rank limit; values above
// config.MaxRankLimit are capped.
func (s *Server) parseLimit(r *http.Request) (int, error) {
	raw := r.URL.Query().Get("limit")
	if raw == "" {
		return s.rankLimit, nil
	}
	limit, err := strconv.Atoi(raw)
	if err != nil || limit < 1 {
		return 0, &ErrValidation{Field: "limit", Message: "must be a positive integer", Cause: err}
	}
	return min(limit, config.MaxRankLimit), nil
}
