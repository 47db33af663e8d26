package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/jonathan/o1-match/internal/catalog"
	"github.com/jonathan/o1-match/internal/localdb"
)

func newImportCmd(c *cli) *cobra.Command {
	var catalogFile, sqlitePath string

	cmd := &cobra.Command{
		Use:   "import",
		Short: "Load a catalog file into the SQLite store",
		Long:  "Validate a talent/job catalog file and upsert its profiles into the embedded SQLite store, keyed by id.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			path := sqlitePath
			if path == "" {
				path = c.cfg.SQLitePath
			}
			if path == "" {
				return fmt.Errorf("--sqlite or sqlite_path is required")
			}

			cat, err := catalog.LoadCatalog(catalogFile)
			if err != nil {
				return err
			}

			st, err := localdb.Open(path)
			if err != nil {
				return err
			}
			defer func() { _ = st.Close() }()

			result, err := st.ImportCatalog(cmd.Context(), cat)
			if err != nil {
				return err
			}

			c.logger.Info("imported catalog",
				zap.String("file", catalogFile),
				zap.String("sqlite_path", path),
				zap.Int("talents_created", result.Talents.Created),
				zap.Int("talents_updated", result.Talents.Updated),
				zap.Int("jobs_created", result.Jobs.Created),
				zap.Int("jobs_updated", result.Jobs.Updated))

			_, _ = fmt.Fprintf(c.out, "Talents: %d created, %d updated\n", result.Talents.Created, result.Talents.Updated)
			_, _ = fmt.Fprintf(c.out, "Jobs: %d created, %d updated\n", result.Jobs.Created, result.Jobs.Updated)
			return nil
		},
	}

	cmd.Flags().StringVarP(&catalogFile, "file", "f", "", "Path to catalog file (YAML or JSON)")
	cmd.Flags().StringVar(&sqlitePath, "sqlite", "", "SQLite database path (overrides sqlite_path)")
	_ = cmd.MarkFlagRequired("file")

	return cmd
}
