package config

import (
	"fmt"
	"os"
	"strconv"
)

type Config struct {
	LogLevel       string // MOTIF_LOG_LEVEL (default "info")
	Parallelism    int    // MOTIF_PARALLELISM (default 4)
	MaxTripleNodes int    // MOTIF_MAX_TRIPLE_NODES (default 0 = unlimited)
}

func Load() (*Config, error) {
	c := &Config{
		LogLevel: envOrDefault("MOTIF_LOG_LEVEL", "info"),
	}

	var err error
	if c.Parallelism, err = envInt("MOTIF_PARALLELISM", 4); err != nil {
		return nil, err
	}
	if c.Parallelism < 1 {
		return nil, fmt.Errorf("MOTIF_PARALLELISM must be at least 1, got %d", c.Parallelism)
	}

	if c.MaxTripleNodes, err = envInt("MOTIF_MAX_TRIPLE_NODES", 0); err != nil {
		return nil, err
	}
	if c.MaxTripleNodes < 0 {
		return nil, fmt.Errorf("MOTIF_MAX_TRIPLE_NODES must not be negative, got %d", c.MaxTripleNodes)
	}

	return c, nil
}

func envOrDefault(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func envInt(key string, fallback int) (int, error) {
	v := os.Getenv(key)
	if v == "" {
		return fallback, nil
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", key, err)
	}
	return n, nil
}
