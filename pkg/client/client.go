// Package client exposes the process-wide Appwrite handles: one shared
// client, the account and databases services built on it, and accessors for
// the three environment values they are configured from.
//
// Handles are created on first use from the environment (after reading .env
// files) and never recreated. Applications that prefer explicit wiring can
// call NewFromConfig or NewClient and pass the result around instead.
package client

import (
	"sync"

	"github.com/appwrite/starter-for-vue/internal/client"
	"github.com/appwrite/starter-for-vue/internal/config"
)

type (
	Client    = client.Client
	Account   = client.Account
	Databases = client.Databases
	Option    = client.Option
)

var (
	WithHTTPClient = client.WithHTTPClient
	WithLogger     = client.WithLogger
	WithMetrics    = client.WithMetrics
	WithRetryMax   = client.WithRetryMax
	WithRetryWait  = client.WithRetryWait
	WithTimeout    = client.WithTimeout
)

// Handles groups the shared client with the services that wrap it.
type Handles struct {
	Client    *Client
	Account   *Account
	Databases *Databases
}

// GetEndpoint returns VITE_APPWRITE_ENDPOINT as currently set.
func GetEndpoint() string {
	return config.GetEndpoint()
}

// GetProjectID returns VITE_APPWRITE_PROJECT_ID as currently set.
func GetProjectID() string {
	return config.GetProjectID()
}

// GetProjectName returns VITE_APPWRITE_PROJECT_NAME as currently set.
func GetProjectName() string {
	return config.GetProjectName()
}

// NewClient builds an unvalidated client for endpoint and projectID.
func NewClient(endpoint, projectID string, opts ...Option) *Client {
	return client.NewClient(endpoint, projectID, opts...)
}

// NewClientFromEnv loads and validates the environment and returns a new
// client. It does not touch the process-wide handles.
func NewClientFromEnv(opts ...Option) (*Client, error) {
	h, err := NewFromEnv(opts...)
	if err != nil {
		return nil, err
	}
	return h.Client, nil
}

// NewFromEnv loads and validates the environment and builds a new set of
// handles from it.
func NewFromEnv(opts ...Option) (*Handles, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}
	return NewFromConfig(cfg, opts...), nil
}

// NewFromConfig builds handles from cfg. cfg is not validated here; use
// config.Validate first when it did not come from config.Load.
func NewFromConfig(cfg *config.Config, opts ...Option) *Handles {
	base := []Option{client.WithTimeout(cfg.Timeout), client.WithRetryMax(cfg.RetryMax)}
	c := client.NewClient(cfg.Endpoint, cfg.ProjectID, append(base, opts...)...).
		SetKey(cfg.APIKey).
		SetSession(cfg.Session).
		SetJWT(cfg.JWT).
		SetLocale(cfg.Locale).
		SetSelfSigned(cfg.SelfSigned)

	return &Handles{
		Client:    c,
		Account:   client.NewAccount(c),
		Databases: client.NewDatabases(c),
	}
}

var defaultHandles = sync.OnceValues(func() (*Handles, error) {
	return NewFromEnv()
})

// Default returns the process-wide handles, building them on the first call.
// The outcome of that first call, including a configuration error, is
// returned to every later caller.
func Default() (*Handles, error) {
	return defaultHandles()
}

// MustDefault is Default for program startup: it panics on a configuration
// error.
func MustDefault() *Handles {
	h, err := Default()
	if err != nil {
		panic(err)
	}
	return h
}

// Shared returns the process-wide client.
func Shared() *Client {
	return MustDefault().Client
}

// SharedAccount returns the process-wide account service.
func SharedAccount() *Account {
	return MustDefault().Account
}

// SharedDatabases returns the process-wide databases service.
func SharedDatabases() *Databases {
	return MustDefault().Databases
}
