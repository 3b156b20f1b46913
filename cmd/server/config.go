package main

import (
	"fmt"
	"log/slog"

	"github.com/phrazzld/tasks-api/internal/config"
	"github.com/urfave/cli/v3"
)

// loadAppConfig loads configuration from the optional config file and the
// environment, then applies command-line overrides.
func loadAppConfig(cmd *cli.Command) (*config.Config, error) {
	cfg, err := config.Load(cmd.String("config"))
	if err != nil {
		return nil, fmt.Errorf("failed to load configuration: %w", err)
	}

	// CLI flags override config
	if cmd.IsSet("port") {
		cfg.Server.Port = int(cmd.Int("port"))
	}
	if cmd.IsSet("log-level") {
		cfg.Server.LogLevel = cmd.String("log-level")
	}
	if err := config.Validate(cfg); err != nil {
		return nil, err
	}

	slog.Info("Server configuration loaded",
		"port", cfg.Server.Port,
		"log_level", cfg.Server.LogLevel,
		"base_path", cfg.Server.BasePath,
		"telemetry_enabled", cfg.Telemetry.Enabled)

	return cfg, nil
}
