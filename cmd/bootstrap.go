package cmd

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"restaurant-api/config"
	"restaurant-api/internal/logging"
)

// bootstrap loads configuration and installs the process logger.
func bootstrap() (*config.Config, io.Closer, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, nil, fmt.Errorf("failed to load configuration: %w", err)
	}

	logger, closer, err := logging.New(cfg.Log, os.Stderr)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to set up logging: %w", err)
	}
	slog.SetDefault(logger)
	return cfg, closer, nil
}
