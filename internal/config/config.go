package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// Environment keys shared with the frontend build tooling.
const (
	EndpointKey    = "VITE_APPWRITE_ENDPOINT"
	ProjectIDKey   = "VITE_APPWRITE_PROJECT_ID"
	ProjectNameKey = "VITE_APPWRITE_PROJECT_NAME"
)

// DotenvFiles are read, in order, before the environment is parsed.
// Variables already present in the process environment are never overridden.
var DotenvFiles = []string{".env.local", ".env"}

// Config holds the Appwrite connection settings for a process.
type Config struct {
	Endpoint    string `env:"VITE_APPWRITE_ENDPOINT"`
	ProjectID   string `env:"VITE_APPWRITE_PROJECT_ID"`
	ProjectName string `env:"VITE_APPWRITE_PROJECT_NAME"`

	APIKey  string `env:"APPWRITE_API_KEY"`
	Session string `env:"APPWRITE_SESSION"`
	JWT     string `env:"APPWRITE_JWT"`
	Locale  string `env:"APPWRITE_LOCALE"`

	Timeout    time.Duration `env:"APPWRITE_TIMEOUT" envDefault:"30s"`
	RetryMax   int           `env:"APPWRITE_RETRY_MAX" envDefault:"0"`
	SelfSigned bool          `env:"APPWRITE_SELF_SIGNED" envDefault:"false"`
}

// GetEndpoint returns the current value of VITE_APPWRITE_ENDPOINT.
func GetEndpoint() string {
	return os.Getenv(EndpointKey)
}

// GetProjectID returns the current value of VITE_APPWRITE_PROJECT_ID.
func GetProjectID() string {
	return os.Getenv(ProjectIDKey)
}

// GetProjectName returns the current value of VITE_APPWRITE_PROJECT_NAME.
func GetProjectName() string {
	return os.Getenv(ProjectNameKey)
}

// NewConfig parses the process environment without reading dotenv files and
// without validation. Values are passed through as found.
func NewConfig() (*Config, error) {
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("failed to parse environment: %w", err)
	}
	return cfg, nil
}

// FromMap parses a Config from an explicit key/value set instead of the
// process environment.
func FromMap(vars map[string]string) (*Config, error) {
	cfg := &Config{}
	if err := env.ParseWithOptions(cfg, env.Options{Environment: vars}); err != nil {
		return nil, fmt.Errorf("failed to parse environment: %w", err)
	}
	return cfg, nil
}

// Load reads the dotenv files, parses the environment and validates the
// result.
func Load() (*Config, error) {
	if err := LoadDotenv(DotenvFiles...); err != nil {
		return nil, err
	}

	cfg, err := NewConfig()
	if err != nil {
		return nil, err
	}

	if err := Validate(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

// LoadDotenv loads each file that exists. Missing files are skipped.
func LoadDotenv(files ...string) error {
	for _, f := range files {
		if err := godotenv.Load(f); err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				continue
			}
			return fmt.Errorf("failed to load %s: %w", f, err)
		}
	}
	return nil
}
