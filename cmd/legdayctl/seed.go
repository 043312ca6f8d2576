package main

import (
	"fmt"
	"os"

	"github.com/2beens/legday/internal/catalog"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

func newSeedCmd(opts *rootOptions) *cobra.Command {
	var (
		file   string
		dryRun bool
	)

	cmd := &cobra.Command{
		Use:   "seed",
		Short: "Load the catalog (programs, splits, bodies, exercises, trains) from a YAML file",
		Long: `Seed upserts the catalog by id, so running it again with the same
file changes nothing. The whole file is validated before anything is written.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			f, err := os.Open(file)
			if err != nil {
				return fmt.Errorf("open seed file: %w", err)
			}
			defer func() {
				if err := f.Close(); err != nil {
					log.Warnf("close seed file: %s", err)
				}
			}()

			seed, err := catalog.LoadSeed(f)
			if err != nil {
				return err
			}

			summary := fmt.Sprintf(
				"%d programs, %d splits, %d bodies, %d exercises, %d trains",
				len(seed.Programs), len(seed.Splits), len(seed.Bodies), len(seed.Exercises), len(seed.Trains),
			)
			if dryRun {
				_, err = fmt.Fprintf(cmd.OutOrStdout(), "valid: %s\n", summary)
				return err
			}

			ctx := cmd.Context()
			pool, err := opts.pool(ctx)
			if err != nil {
				return err
			}
			defer pool.Close()

			if err := catalog.NewRepo(pool).ApplySeed(ctx, seed); err != nil {
				return err
			}
			_, err = fmt.Fprintf(cmd.OutOrStdout(), "seeded: %s\n", summary)
			return err
		},
	}

	cmd.Flags().StringVarP(&file, "file", "f", "catalog.yaml", "seed YAML file")
	cmd.Flags().BoolVar(&dryRun, "dry-run", false, "only validate the file")
	return cmd
}
