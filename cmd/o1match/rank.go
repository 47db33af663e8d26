package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jonathan/o1-match/internal/catalog"
	"github.com/jonathan/o1-match/internal/schemas"
	"github.com/jonathan/o1-match/internal/store"
	"github.com/jonathan/o1-match/internal/types"
)

func newRankJobsCmd(c *cli) *cobra.Command {
	var talentFile, talentID, jobsFile, outFile string
	var limit int

	cmd := &cobra.Command{
		Use:   "rank-jobs",
		Short: "Rank jobs for a talent",
		Long: "Rank jobs for a talent, best match first. Jobs come from a catalog file (--jobs) or, " +
			"without one, from the open jobs in the configured store.",
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			n, err := c.rankLimit(limit)
			if err != nil {
				return err
			}

			talent, jobs, err := c.loadTalentAndJobs(cmd.Context(), talentFile, talentID, jobsFile)
			if err != nil {
				return err
			}

			matches := c.scorer().RankJobs(talent, jobs, n)
			if c.cfg.Verbose {
				c.printer().PrintJobMatches(talent.ID, matches)
			}
			return c.writeOutput(types.JobMatches{TalentID: talent.ID, Matches: matches}, outFile, schemas.JobMatchesSchema)
		},
	}

	cmd.Flags().StringVarP(&talentFile, "talent", "t", "", "Path to talent profile file")
	cmd.Flags().StringVar(&talentID, "talent-id", "", "Talent id in the jobs catalog or the configured store")
	cmd.Flags().StringVar(&jobsFile, "jobs", "", "Catalog file with jobs (default: configured store)")
	cmd.Flags().IntVarP(&limit, "limit", "n", 0, "Maximum matches to return (default: rank_limit)")
	cmd.Flags().StringVarP(&outFile, "out", "o", "", "Path to output JSON file (default stdout)")
	cmd.MarkFlagsOneRequired("talent", "talent-id")
	cmd.MarkFlagsMutuallyExclusive("talent", "talent-id")

	return cmd
}

func newRankTalentsCmd(c *cli) *cobra.Command {
	var jobFile, jobID, talentsFile, outFile string
	var limit int

	cmd := &cobra.Command{
		Use:   "rank-talents",
		Short: "Rank talents for a job",
		Long: "Rank talents for a job, best match first. Talents come from a catalog file (--talents) or, " +
			"without one, from the configured store.",
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			n, err := c.rankLimit(limit)
			if err != nil {
				return err
			}

			job, talents, err := c.loadJobAndTalents(cmd.Context(), jobFile, jobID, talentsFile)
			if err != nil {
				return err
			}

			matches := c.scorer().RankTalents(job, talents, n)
			if c.cfg.Verbose {
				c.printer().PrintTalentMatches(job.ID, matches)
			}
			return c.writeOutput(types.TalentMatches{JobID: job.ID, Matches: matches}, outFile, schemas.TalentMatchesSchema)
		},
	}

	cmd.Flags().StringVarP(&jobFile, "job", "J", "", "Path to job profile file")
	cmd.Flags().StringVar(&jobID, "job-id", "", "Job id in the talents catalog or the configured store")
	cmd.Flags().StringVar(&talentsFile, "talents", "", "Catalog file with talents (default: configured store)")
	cmd.Flags().IntVarP(&limit, "limit", "n", 0, "Maximum matches to return (default: rank_limit)")
	cmd.Flags().StringVarP(&outFile, "out", "o", "", "Path to output JSON file (default stdout)")
	cmd.MarkFlagsOneRequired("job", "job-id")
	cmd.MarkFlagsMutuallyExclusive("job", "job-id")

	return cmd
}

func (c *cli) loadTalentAndJobs(ctx context.Context, talentFile, talentID, jobsFile string) (*types.TalentMatchProfile, []types.JobMatchProfile, error) {
	var talent *types.TalentMatchProfile
	if talentFile != "" {
		var err error
		if talent, err = catalog.LoadTalent(talentFile); err != nil {
			return nil, nil, err
		}
	}

	if jobsFile != "" {
		cat, err := catalog.LoadCatalog(jobsFile)
		if err != nil {
			return nil, nil, err
		}
		if talent == nil {
			if talent = cat.FindTalent(talentID); talent == nil {
				return nil, nil, fmt.Errorf("talent %q not found in %s", talentID, jobsFile)
			}
		}
		return talent, cat.Jobs, nil
	}

	st, err := store.Open(ctx, c.cfg)
	if err != nil {
		return nil, nil, err
	}
	defer func() { _ = st.Close() }()

	if talent == nil {
		if talent, err = st.GetTalent(ctx, talentID); err != nil {
			return nil, nil, fmt.Errorf("failed to load talent %s: %w", talentID, err)
		}
		if talent == nil {
			return nil, nil, fmt.Errorf("talent %q not found", talentID)
		}
	}
	jobs, err := st.ListJobs(ctx, 0)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to list jobs: %w", err)
	}
	return talent, jobs, nil
}

func (c *cli) loadJobAndTalents(ctx context.Context, jobFile, jobID, talentsFile string) (*types.JobMatchProfile, []types.TalentMatchProfile, error) {
	var job *types.JobMatchProfile
	if jobFile != "" {
		var err error
		if job, err = catalog.LoadJob(jobFile); err != nil {
			return nil, nil, err
		}
	}

	if talentsFile != "" {
		cat, err := catalog.LoadCatalog(talentsFile)
		if err != nil {
			return nil, nil, err
		}
		if job == nil {
			if job = cat.FindJob(jobID); job == nil {
				return nil, nil, fmt.Errorf("job %q not found in %s", jobID, talentsFile)
			}
		}
		return job, cat.Talents, nil
	}

	st, err := store.Open(ctx, c.cfg)
	if err != nil {
		return nil, nil, err
	}
	defer func() { _ = st.Close() }()

	if job == nil {
		if job, err = st.GetJob(ctx, jobID); err != nil {
			return nil, nil, fmt.Errorf("failed to load job %s: %w", jobID, err)
		}
		if job == nil {
			return nil, nil, fmt.Errorf("job %q not found", jobID)
		}
	}
	talents, err := st.ListTalents(ctx, 0)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to list talents: %w", err)
	}
	return job, talents, nil
}
