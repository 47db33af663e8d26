package main

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"github.com/jonathan/o1-match/internal/config"
	"github.com/jonathan/o1-match/internal/matching"
	"github.com/jonathan/o1-match/internal/observability"
)

const app = "o1match"

// cli carries state shared by every command of one invocation.
type cli struct {
	v       *viper.Viper
	cfgFile string

	cfg    *config.Config
	logger *zap.Logger
	out    io.Writer
	errOut io.Writer
}

func newRootCmd() *cobra.Command {
	c := &cli{
		v:      viper.New(),
		logger: zap.NewNop(),
	}

	rootCmd := &cobra.Command{
		Use:   app,
		Short: "Score and rank O-1 talent/job matches",
		Long: "o1match compares talent O-1 profiles with job requirements, explains each score, " +
			"and ranks jobs for a talent or talents for a job from catalog files or a database.",
		SilenceUsage:      true,
		SilenceErrors:     true,
		PersistentPreRunE: c.setup,
		PersistentPostRun: func(_ *cobra.Command, _ []string) { _ = c.logger.Sync() },
	}

	flags := rootCmd.PersistentFlags()
	flags.StringVar(&c.cfgFile, "config", "", "a config file (default is o1match.yaml in current directory)")
	flags.BoolP("verbose", "v", false, "print boxed match breakdowns")
	flags.BoolP("debug", "d", false, "debug logging")
	flags.BoolP("json", "j", false, "json format for logging")

	_ = c.v.BindPFlag("verbose", flags.Lookup("verbose"))
	_ = c.v.BindPFlag("debug", flags.Lookup("debug"))
	_ = c.v.BindPFlag("json", flags.Lookup("json"))

	rootCmd.AddCommand(
		newScoreCmd(c),
		newRankJobsCmd(c),
		newRankTalentsCmd(c),
		newImportCmd(c),
		newServeCmd(c),
		newTokenCmd(c),
	)
	return rootCmd
}

// setup loads configuration and builds the logger before any subcommand runs.
func (c *cli) setup(cmd *cobra.Command, _ []string) error {
	c.out = cmd.OutOrStdout()
	c.errOut = cmd.ErrOrStderr()

	cfg, err := config.Load(c.v, c.cfgFile)
	if err != nil {
		return err
	}
	merged := cfg.MergeWithDefaults(config.Defaults())
	c.cfg = &merged

	logger, err := observability.NewLogger(c.v.GetBool("json"), c.v.GetBool("debug"))
	if err != nil {
		return fmt.Errorf("creating a logger: %w", err)
	}
	c.logger = logger
	return nil
}

func (c *cli) scorer() *matching.Scorer {
	return matching.NewScorer(matching.WithLogger(c.logger), matching.WithDefaultLimit(c.cfg.RankLimit))
}

func (c *cli) printer() *observability.Printer {
	return observability.NewPrinter(c.errOut)
}

// rankLimit resolves a --limit value: 0 means the configured rank limit and values above
// config.MaxRankLimit are capped.
func (c *cli) rankLimit(limit int) (int, error) {
	if limit < 0 {
		return 0, fmt.Errorf("--limit must be non-negative, got %d", limit)
	}
	if limit == 0 {
		return c.cfg.RankLimit, nil
	}
	return min(limit, config.MaxRankLimit), nil
}
