package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"time"

	"github.com/spf13/cobra"

	"github.com/ragamarkely/todo-app/pkg/buildtime"
	kcs "github.com/ragamarkely/todo-app/pkg/configs/server"
)

type globalFlags struct {
	ConfigPath string
	DBURI      string
	SchemaRepo string
	DBWait     time.Duration
}

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt)
	defer cancel()

	if err := newRootCommand().ExecuteContext(ctx); err != nil {
		os.Exit(1)
	}
}

func newRootCommand() *cobra.Command {
	flags := &globalFlags{}

	root := &cobra.Command{
		Use:   "todod",
		Short: "multi-list todo tracker",
		Long: `todod serves todo lists and their todos over HTTP,
storing them in PostgreSQL.`,
		Version:      buildtime.VersionString(),
		SilenceUsage: true,
	}

	pf := root.PersistentFlags()
	pf.StringVar(&flags.ConfigPath, "config", os.Getenv("TODO_CONFIG"), "path to config file")
	pf.StringVar(&flags.DBURI, "dburi", os.Getenv("TODO_DBURI"), "connection string for database. overrides config")
	pf.StringVar(&flags.SchemaRepo, "schema-repo", os.Getenv("TODO_SCHEMA"), "schema repository path. overrides config")
	pf.DurationVar(&flags.DBWait, "db-wait", 30*time.Second, "how long to wait for database to be ready. 0 means no retry")

	root.AddCommand(
		newServeCommand(flags),
		newSchemaCommand(flags),
		newVersionCommand(),
	)
	return root
}

// load reads config file, and overrides it with command line flags.
func (g *globalFlags) load() (*kcs.ServerConfig, error) {
	var conf *kcs.ServerConfig
	switch {
	case g.ConfigPath != "":
		c, err := kcs.LoadServerConfig(g.ConfigPath)
		if err != nil {
			return nil, fmt.Errorf("can not read configration: %w", err)
		}
		conf = c
	case g.DBURI != "":
		c, err := kcs.Unmarshal([]byte(fmt.Sprintf("dburi: %q", g.DBURI)))
		if err != nil {
			return nil, err
		}
		conf = c
	default:
		return nil, fmt.Errorf("either --config or --dburi is required")
	}

	if g.DBURI != "" {
		conf.DBURI = g.DBURI
	}
	if g.SchemaRepo != "" {
		conf.SchemaRepository = g.SchemaRepo
	}
	return conf, nil
}

func newVersionCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Show version information",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "todod %s\n", buildtime.VersionString())
		},
	}
}
