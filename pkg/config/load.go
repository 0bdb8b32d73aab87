package config

import (
	"fmt"
	"log/slog"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

// Load reads the configuration from the environment. Each path is looked up
// from the working directory upwards; the first file found is loaded into
// the environment before it is read. Without paths the default .env is tried.
// Variables already set in the environment win over file values.
func Load(envFilePath ...string) (*App, error) {
	logger := slog.Default()

	// If no specific paths provided, try default .env
	if len(envFilePath) == 0 {
		logger.Debug("No environment file specified, trying default .env")
		if err := godotenv.Load(); err != nil {
			logger.Debug("No .env file found in current directory")
		}
		return loadFromEnv()
	}

	// Try each provided path until we find a valid one
	for _, path := range envFilePath {
		logger.Debug("Looking for environment file", "path", path)
		foundPath, err := FindEnvTest(path)
		if err != nil {
			logger.Debug("Environment file not found", "path", path, "error", err)
			continue
		}

		logger.Info("Loading environment from file", "path", foundPath)
		if err := godotenv.Load(foundPath); err != nil {
			logger.Error("Failed to load environment file", "path", foundPath, "error", err)
			continue
		}
		return loadFromEnv()
	}

	logger.Warn("No valid environment files found, using process environment")
	return loadFromEnv()
}

func loadFromEnv() (*App, error) {
	var cfg App
	if err := envconfig.Process(Prefix, &cfg); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}
	if err := validator.New().Struct(cfg); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}

	slog.Default().Debug("App config loaded",
		"env", cfg.Env,
		"pivot_currency", cfg.PivotCurrency,
		"cash_in_percent", cfg.CashIn.Percent,
		"legal_percent", cfg.Legal.Percent,
		"natural_percent", cfg.Natural.Percent,
		"natural_max_operations", cfg.Natural.MaxOperations,
		"week", cfg.Week.FirstDay+"-"+cfg.Week.LastDay,
		"rates_file", cfg.RatesFile,
	)
	return &cfg, nil
}
