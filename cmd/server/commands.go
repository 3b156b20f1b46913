package main

import (
	"context"
	"fmt"

	"github.com/urfave/cli/v3"
)

// version is overridden at build time with -ldflags "-X main.version=...".
var version = "dev"

// newRootCommand returns the top-level CLI command. Running it without a
// subcommand starts the server.
func newRootCommand() *cli.Command {
	return &cli.Command{
		Name:    "tasks-api",
		Usage:   "In-memory task CRUD service",
		Version: version,
		Flags:   serverFlags(),
		Action:  runServe,
		Commands: []*cli.Command{
			{
				Name:   "serve",
				Usage:  "Start the HTTP server",
				Action: runServe,
			},
			{
				Name:  "version",
				Usage: "Print the version",
				Action: func(_ context.Context, cmd *cli.Command) error {
					_, err := fmt.Fprintf(cmd.Root().Writer, "tasks-api %s\n", version)
					return err
				},
			},
		},
	}
}

// serverFlags are the flags that override loaded configuration.
func serverFlags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:    "config",
			Aliases: []string{"c"},
			Usage:   "Path to config file",
		},
		&cli.IntFlag{
			Name:  "port",
			Usage: "Port to listen on",
		},
		&cli.StringFlag{
			Name:  "log-level",
			Usage: "Log level (debug, info, warn, error)",
		},
	}
}

func runServe(ctx context.Context, cmd *cli.Command) error {
	cfg, err := loadAppConfig(cmd)
	if err != nil {
		return err
	}

	log, err := setupAppLogger(cfg)
	if err != nil {
		return err
	}

	app, err := newApplication(ctx, cfg, log)
	if err != nil {
		return fmt.Errorf("failed to initialize application: %w", err)
	}

	return app.Run(ctx)
}
