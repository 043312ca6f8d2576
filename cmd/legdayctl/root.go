package main

import (
	"context"
	"fmt"
	"os"

	"github.com/2beens/legday/internal/db"
	"github.com/2beens/legday/internal/logging"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/spf13/cobra"
)

const dsnEnvVar = "LEGDAY_DSN"

type rootOptions struct {
	dsn      string
	logLevel string
}

func newRootCmd() *cobra.Command {
	opts := &rootOptions{}

	cmd := &cobra.Command{
		Use:   "legdayctl",
		Short: "Admin tool for the legday backend",
		Long: `legdayctl manages the legday database and catalog.

  $ legdayctl migrate --dsn postgres://postgres@localhost:5432/legday
  $ legdayctl seed --file catalog.yaml
  $ legdayctl seed --file catalog.yaml --dry-run
  $ legdayctl convert 135 lb kg

The DSN falls back to the LEGDAY_DSN env var.`,
		SilenceUsage: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			logging.Setup(logging.LoggerSetupParams{LogLevel: opts.logLevel})
		},
	}

	cmd.PersistentFlags().StringVar(&opts.dsn, "dsn", os.Getenv(dsnEnvVar), "postgres connection string")
	cmd.PersistentFlags().StringVar(&opts.logLevel, "log-level", "info", "log level")

	cmd.AddCommand(
		newMigrateCmd(opts),
		newSeedCmd(opts),
		newConvertCmd(),
	)
	return cmd
}

func (o *rootOptions) pool(ctx context.Context) (*pgxpool.Pool, error) {
	if o.dsn == "" {
		return nil, fmt.Errorf("no dsn, use --dsn or %s", dsnEnvVar)
	}
	return db.NewDBPoolFromConnString(ctx, o.dsn, false)
}
