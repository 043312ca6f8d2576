package main

import (
	"fmt"

	"github.com/2beens/legday/internal/db"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

func newMigrateCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "Create the legday tables and indexes if missing",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			pool, err := opts.pool(ctx)
			if err != nil {
				return err
			}
			defer pool.Close()

			if err := db.Migrate(ctx, pool); err != nil {
				return err
			}
			log.Infoln("schema migrated")
			_, err = fmt.Fprintln(cmd.OutOrStdout(), "migrated")
			return err
		},
	}
}
