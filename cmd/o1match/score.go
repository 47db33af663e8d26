package main

import (
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/jonathan/o1-match/internal/catalog"
	"github.com/jonathan/o1-match/internal/schemas"
)

func newScoreCmd(c *cli) *cobra.Command {
	var talentFile, jobFile, outFile string

	cmd := &cobra.Command{
		Use:   "score",
		Short: "Score one talent against one job",
		Long:  "Load a talent profile and a job profile (YAML or JSON) and print the explained match result as JSON.",
		Args:  cobra.NoArgs,
		RunE: func(_ *cobra.Command, _ []string) error {
			talent, err := catalog.LoadTalent(talentFile)
			if err != nil {
				return err
			}
			job, err := catalog.LoadJob(jobFile)
			if err != nil {
				return err
			}

			result := c.scorer().Score(talent, job)
			c.logger.Info("scored match",
				zap.String("talent_id", talent.ID),
				zap.String("job_id", job.ID),
				zap.Int("overall_score", result.OverallScore))

			if c.cfg.Verbose {
				p := c.printer()
				p.PrintTalentProfile(talent)
				p.PrintJobProfile(job)
				p.PrintMatchResult(&result)
			}

			return c.writeOutput(result, outFile, schemas.MatchResultSchema)
		},
	}

	cmd.Flags().StringVarP(&talentFile, "talent", "t", "", "Path to talent profile file")
	cmd.Flags().StringVarP(&jobFile, "job", "J", "", "Path to job profile file")
	cmd.Flags().StringVarP(&outFile, "out", "o", "", "Path to output JSON file (default stdout)")
	_ = cmd.MarkFlagRequired("talent")
	_ = cmd.MarkFlagRequired("job")

	return cmd
}
