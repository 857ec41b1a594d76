package app

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/joho/godotenv"
)

// Config holds runtime wiring options for building an app.
type Config struct {
	BaseURL      string        // backend base URL including /api, e.g. https://market.example.com/api
	Home         string        // config root, e.g. $HOME/.swiftdrop
	Namespace    string        // app namespace under Home: customer, courier, admin
	PollInterval time.Duration // tracking poll cadence
	Verbose      bool          // log request/response bodies to stderr
}

const (
	defaultBaseURL      = "http://127.0.0.1:8000/api"
	defaultPollInterval = 7 * time.Second
)

// Load builds a Config for namespace from the environment, seeded from a
// .env file when one is present in the working directory.
func Load(namespace string) (Config, error) {
	// Missing .env is the normal case; real env vars still apply.
	_ = godotenv.Load()

	cfg := Config{
		BaseURL:      getEnv("SWIFTDROP_BASE_URL", defaultBaseURL),
		Home:         os.Getenv("SWIFTDROP_HOME"),
		Namespace:    namespace,
		PollInterval: defaultPollInterval,
		Verbose:      os.Getenv("SWIFTDROP_VERBOSE") != "",
	}
	if cfg.Home == "" {
		dir, err := os.UserHomeDir()
		if err != nil {
			return Config{}, err
		}
		cfg.Home = filepath.Join(dir, ".swiftdrop")
	}
	if raw := os.Getenv("SWIFTDROP_POLL_INTERVAL"); raw != "" {
		d, err := time.ParseDuration(raw)
		if err != nil {
			return Config{}, fmt.Errorf("invalid SWIFTDROP_POLL_INTERVAL: %w", err)
		}
		cfg.PollInterval = d
	}
	return cfg, nil
}

// StoreDir is the namespace's directory under Home.
func (c Config) StoreDir() string {
	return filepath.Join(c.Home, c.Namespace)
}

// String masks nothing today but keeps secrets out of logs if any land in
// Config later.
func (c Config) String() string {
	return fmt.Sprintf("Config{Base: %s, Home: %s, Namespace: %s, Poll: %s}",
		c.BaseURL, c.Home, c.Namespace, c.PollInterval)
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
