package client

import (
	"bytes"
	"context"
	"crypto/tls"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/cookiejar"
	"net/url"
	"strings"
	"time"

	"github.com/hashicorp/go-cleanhttp"
	"github.com/hashicorp/go-retryablehttp"
	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/zap"

	"github.com/appwrite/starter-for-vue/internal/logging"
	"github.com/appwrite/starter-for-vue/internal/version"
	"github.com/appwrite/starter-for-vue/pkg/models"
)

const (
	DefaultTimeout = 30 * time.Second

	sdkName     = "Go"
	sdkPlatform = "client"
	sdkLanguage = "go"
)

// Header names understood by the Appwrite API.
const (
	HeaderProject        = "X-Appwrite-Project"
	HeaderKey            = "X-Appwrite-Key"
	HeaderSession        = "X-Appwrite-Session"
	HeaderJWT            = "X-Appwrite-JWT"
	HeaderLocale         = "X-Appwrite-Locale"
	HeaderResponseFormat = "X-Appwrite-Response-Format"
)

// Client is the shared connection to one Appwrite project.
//
// The Set* methods configure the client and return it for chaining. They are
// not safe to call once the client is shared between goroutines; everything
// else is.
type Client struct {
	endpoint   string
	headers    map[string]string
	selfSigned bool

	http    *retryablehttp.Client
	logger  *zap.Logger
	metrics *clientMetrics
}

// Option customises a Client at construction time.
type Option func(*Client)

// WithHTTPClient replaces the underlying *http.Client. A cookie jar is added
// when the given client has none, and a zero Timeout inherits the one already
// configured.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		if hc.Jar == nil {
			hc.Jar = newJar()
		}
		if hc.Timeout == 0 && c.http.HTTPClient != nil {
			hc.Timeout = c.http.HTTPClient.Timeout
		}
		c.http.HTTPClient = hc
	}
}

// WithLogger sets the logger used for request events.
func WithLogger(logger *zap.Logger) Option {
	return func(c *Client) {
		c.logger = logger
		c.http.Logger = leveledLogger{logger.Sugar()}
	}
}

// WithMetrics registers request metrics on reg.
func WithMetrics(reg prometheus.Registerer) Option {
	return func(c *Client) {
		c.metrics = newClientMetrics(reg)
	}
}

// WithRetryMax sets how many times a failed request is retried by the
// transport. Zero disables retries.
func WithRetryMax(n int) Option {
	return func(c *Client) {
		c.http.RetryMax = n
	}
}

// WithRetryWait bounds the transport's backoff between retries.
func WithRetryWait(minWait, maxWait time.Duration) Option {
	return func(c *Client) {
		c.http.RetryWaitMin = minWait
		c.http.RetryWaitMax = maxWait
	}
}

// WithTimeout sets the per-request timeout.
func WithTimeout(d time.Duration) Option {
	return func(c *Client) {
		c.http.HTTPClient.Timeout = d
	}
}

// NewClient creates a client for endpoint and projectID. Neither value is
// validated and no network call is made; a bad endpoint surfaces as an error
// on the first request.
func NewClient(endpoint, projectID string, opts ...Option) *Client {
	rc := retryablehttp.NewClient()
	rc.RetryMax = 0
	rc.Logger = nil
	rc.ErrorHandler = retryablehttp.PassthroughErrorHandler
	rc.HTTPClient.Timeout = DefaultTimeout
	rc.HTTPClient.Jar = newJar()

	c := &Client{
		http:   rc,
		logger: zap.NewNop(),
		headers: map[string]string{
			"User-Agent":         fmt.Sprintf("AppwriteGoSDK/%s", version.Version),
			"X-Sdk-Name":         sdkName,
			"X-Sdk-Platform":     sdkPlatform,
			"X-Sdk-Language":     sdkLanguage,
			"X-Sdk-Version":      version.Version,
			HeaderResponseFormat: version.ResponseFormat,
		},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c.SetEndpoint(endpoint).SetProject(projectID)
}

func newJar() http.CookieJar {
	// cookiejar.New only fails on a broken PublicSuffixList.
	jar, _ := cookiejar.New(nil)
	return jar
}

// SetEndpoint sets the API endpoint, e.g. https://cloud.appwrite.io/v1.
func (c *Client) SetEndpoint(endpoint string) *Client {
	c.endpoint = endpoint
	return c
}

// SetProject sets the project id sent with every request.
func (c *Client) SetProject(projectID string) *Client {
	c.headers[HeaderProject] = projectID
	return c
}

// SetKey sets a server API key.
func (c *Client) SetKey(key string) *Client {
	return c.setOptionalHeader(HeaderKey, key)
}

// SetSession sets a session secret, for callers that cannot rely on cookies.
func (c *Client) SetSession(session string) *Client {
	return c.setOptionalHeader(HeaderSession, session)
}

// SetJWT authenticates requests with a JWT created by Account.CreateJWT.
func (c *Client) SetJWT(jwt string) *Client {
	return c.setOptionalHeader(HeaderJWT, jwt)
}

// SetLocale sets the locale used for translated server messages.
func (c *Client) SetLocale(locale string) *Client {
	return c.setOptionalHeader(HeaderLocale, locale)
}

// SetSelfSigned allows self-signed TLS certificates on the endpoint.
func (c *Client) SetSelfSigned(enabled bool) *Client {
	c.selfSigned = enabled
	if c.http.HTTPClient.Transport == nil && enabled {
		c.http.HTTPClient.Transport = cleanhttp.DefaultPooledTransport()
	}
	if t, ok := c.http.HTTPClient.Transport.(*http.Transport); ok {
		if t.TLSClientConfig == nil {
			t.TLSClientConfig = &tls.Config{}
		}
		t.TLSClientConfig.InsecureSkipVerify = enabled //nolint:gosec // opt-in for local development servers
	}
	return c
}

func (c *Client) setOptionalHeader(name, value string) *Client {
	if value == "" {
		delete(c.headers, name)
		return c
	}
	c.headers[name] = value
	return c
}

// Endpoint returns the endpoint exactly as configured.
func (c *Client) Endpoint() string {
	return c.endpoint
}

// Project returns the configured project id.
func (c *Client) Project() string {
	return c.headers[HeaderProject]
}

// SelfSigned reports whether self-signed certificates are accepted.
func (c *Client) SelfSigned() bool {
	return c.selfSigned
}

// Headers returns a copy of the headers sent with every request.
func (c *Client) Headers() map[string]string {
	out := make(map[string]string, len(c.headers))
	for k, v := range c.headers {
		out[k] = v
	}
	return out
}

// Ping checks that the endpoint is reachable and the project exists.
// It returns the server's response body.
func (c *Client) Ping(ctx context.Context) (string, error) {
	var out string
	if err := c.call(ctx, "ping", http.MethodGet, "/ping", nil, nil, &out); err != nil {
		return "", err
	}
	return out, nil
}

// HealthVersion returns the server version.
func (c *Client) HealthVersion(ctx context.Context) (*models.HealthVersion, error) {
	out := &models.HealthVersion{}
	if err := c.call(ctx, "health.version", http.MethodGet, "/health/version", nil, nil, out); err != nil {
		return nil, err
	}
	return out, nil
}

// call performs one API request. A nil out discards the response body and a
// *string out receives it verbatim; anything else is JSON-decoded.
func (c *Client) call(ctx context.Context, op, method, path string, params url.Values, body, out any) error {
	ctx = logging.EnsureRequestID(ctx)

	target := strings.TrimSuffix(c.endpoint, "/") + path
	if len(params) > 0 {
		target += "?" + params.Encode()
	}

	var payload any
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("failed to encode %s request: %w", op, err)
		}
		payload = bytes.NewReader(b)
	}

	req, err := retryablehttp.NewRequestWithContext(ctx, method, target, payload)
	if err != nil {
		return fmt.Errorf("failed to create %s request: %w", op, err)
	}
	for k, v := range c.headers {
		req.Header.Set(k, v)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	start := time.Now()
	resp, err := c.http.Do(req)
	elapsed := time.Since(start)

	status := 0
	if resp != nil {
		status = resp.StatusCode
	}
	c.metrics.observe(op, method, status, elapsed)
	logging.LogRequest(ctx, c.logger, path, logging.EventLevelFromStatusCode(status), "appwrite request",
		zap.String("operation", op),
		zap.String("method", method),
		zap.String("path", path),
		zap.Int("status", status),
		zap.Duration("duration", elapsed),
		zap.Error(err),
	)

	if err != nil {
		return fmt.Errorf("%s %s: %w", method, path, err)
	}
	defer func() { _ = resp.Body.Close() }()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("failed to read %s response: %w", op, err)
	}

	if resp.StatusCode >= http.StatusBadRequest {
		return parseError(resp, data)
	}

	if out == nil || len(data) == 0 {
		return nil
	}
	if s, ok := out.(*string); ok {
		*s = string(data)
		return nil
	}
	if err := json.Unmarshal(data, out); err != nil {
		return fmt.Errorf("failed to decode %s response: %w", op, err)
	}
	return nil
}
