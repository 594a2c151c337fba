package main

import (
	"flag"
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
)

// Config holds everything the command needs for one run.
type Config struct {
	Scenario      string        // YAML problem file; empty means the built-in scenario
	Method        string        `validate:"oneof=label-correcting bellman-ford potentials johnson"`
	MaxIterations int           `validate:"gte=0"`
	LogIterations int           `validate:"gte=-1"`
	LogLevel      string        `validate:"oneof=trace debug info warn error disabled"`
	Timeout       time.Duration `validate:"gte=0"`
}

// LoadConfig reads MCMF_* variables (optionally from a .env file in the
// working directory) as defaults and lets command-line flags override them.
func LoadConfig(fs *flag.FlagSet, args []string) (*Config, error) {
	// a missing .env is fine
	_ = godotenv.Load()

	cfg := &Config{}
	fs.StringVar(&cfg.Scenario, "scenario", getEnvWithDefault("MCMF_SCENARIO", ""),
		"YAML problem file (default: built-in railway scenario)")
	fs.StringVar(&cfg.Method, "method", getEnvWithDefault("MCMF_METHOD", "label-correcting"),
		"shortest-path method: label-correcting or potentials")
	fs.IntVar(&cfg.MaxIterations, "max-iterations", getEnvAsInt("MCMF_MAX_ITERATIONS", 0),
		"stop after this many augmenting paths (0 = unbounded)")
	fs.IntVar(&cfg.LogIterations, "log-iterations", getEnvAsInt("MCMF_LOG_ITERATIONS", 5),
		"augmenting paths written to the report (-1 = all)")
	fs.StringVar(&cfg.LogLevel, "log-level", getEnvWithDefault("MCMF_LOG_LEVEL", "warn"),
		"structured log level on stderr")
	fs.DurationVar(&cfg.Timeout, "timeout", getEnvAsDuration("MCMF_TIMEOUT", 0),
		"abort the solve after this long (0 = no timeout)")
	if err := fs.Parse(args); err != nil {
		return nil, err
	}

	if err := validator.New().Struct(cfg); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return cfg, nil
}

func getEnvWithDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}

	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}

	return defaultValue
}

func getEnvAsDuration(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if d, err := time.ParseDuration(value); err == nil {
			return d
		}
	}

	return defaultValue
}
