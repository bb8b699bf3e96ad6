package config

import (
	"errors"
	"fmt"
	"net/url"
	"strings"
)

var (
	// ErrMissingValue is matched by errors.Is for any *MissingKeysError.
	ErrMissingValue = errors.New("missing configuration value")
	// ErrInvalidEndpoint is returned when the endpoint is not an absolute http(s) URL.
	ErrInvalidEndpoint = errors.New("invalid endpoint")
)

// MissingKeysError lists every required key that was empty.
type MissingKeysError struct {
	Keys []string
}

func (e *MissingKeysError) Error() string {
	return fmt.Sprintf("%s is required", strings.Join(e.Keys, ", "))
}

func (e *MissingKeysError) Is(target error) bool {
	return target == ErrMissingValue
}

// Validate performs startup validations on the loaded configuration.
// The project name is informational and may be empty.
func Validate(cfg *Config) error {
	if cfg == nil {
		return fmt.Errorf("config is nil")
	}

	var missing []string
	if cfg.Endpoint == "" {
		missing = append(missing, EndpointKey)
	}
	if cfg.ProjectID == "" {
		missing = append(missing, ProjectIDKey)
	}
	if len(missing) > 0 {
		return &MissingKeysError{Keys: missing}
	}

	if err := ValidateEndpoint(cfg.Endpoint); err != nil {
		return err
	}
	if cfg.RetryMax < 0 {
		return fmt.Errorf("APPWRITE_RETRY_MAX must not be negative (got %d)", cfg.RetryMax)
	}
	if cfg.Timeout < 0 {
		return fmt.Errorf("APPWRITE_TIMEOUT must not be negative (got %s)", cfg.Timeout)
	}
	return nil
}

// ValidateEndpoint checks that endpoint is an absolute http or https URL.
func ValidateEndpoint(endpoint string) error {
	u, err := url.Parse(endpoint)
	if err != nil {
		return fmt.Errorf("%w %q: %v", ErrInvalidEndpoint, endpoint, err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return fmt.Errorf("%w %q: scheme must be http or https", ErrInvalidEndpoint, endpoint)
	}
	if u.Host == "" {
		return fmt.Errorf("%w %q: host is empty", ErrInvalidEndpoint, endpoint)
	}
	return nil
}
