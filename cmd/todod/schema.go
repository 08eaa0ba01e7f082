package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	kpg "github.com/ragamarkely/todo-app/pkg/db/postgres"
)

func newSchemaCommand(flags *globalFlags) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "schema",
		Short: "Manage database schema",
	}

	cmd.AddCommand(
		&cobra.Command{
			Use:   "upgrade",
			Short: "Apply schema versions newer than the database has",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, args []string) error {
				conf, err := flags.load()
				if err != nil {
					return err
				}
				if conf.SchemaRepository == "" {
					return errors.New("schema repository is not given. use --schema-repo")
				}

				ctx := cmd.Context()
				db, err := connectDatabase(ctx, conf.DBURI, flags.DBWait, kpg.WithSchemaRepository(conf.SchemaRepository))
				if err != nil {
					return fmt.Errorf("can not connect to database: %w", err)
				}
				defer db.Close()

				if err := db.Schema().Upgrade(ctx); err != nil {
					return err
				}
				v, err := db.Schema().Version(ctx)
				if err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "schema version: %d\n", v)
				return nil
			},
		},
		&cobra.Command{
			Use:   "version",
			Short: "Show schema version of the database",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, args []string) error {
				conf, err := flags.load()
				if err != nil {
					return err
				}

				ctx := cmd.Context()
				db, err := connectDatabase(ctx, conf.DBURI, flags.DBWait)
				if err != nil {
					return fmt.Errorf("can not connect to database: %w", err)
				}
				defer db.Close()

				v, err := db.Schema().Version(ctx)
				if err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "schema version: %d\n", v)
				return nil
			},
		},
	)
	return cmd
}
