package logging

import (
	"context"
	"fmt"
	"hash/fnv"
	"regexp"
	"strings"
	"sync/atomic"

	"github.com/caarlos0/env/v11"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// EventLoggingConfig holds sampling and filtering configuration.
type EventLoggingConfig struct {
	SuccessSampleRate float64 `env:"LOG_SUCCESS_SAMPLE_RATE" envDefault:"0.1"`
	ExcludePaths      string  `env:"LOG_EXCLUDE_PATHS" envDefault:"/ping,/health/version"`
	ErrorOnlyPaths    string  `env:"LOG_ERROR_ONLY_PATHS" envDefault:"/account"`
	RedactPatterns    string  `env:"LOG_REDACT_PATTERNS" envDefault:"password,token,secret,key,authorization,credential,bearer,session,jwt,cookie,private"`
}

// ParsedEventLoggingConfig is the parsed version of EventLoggingConfig for efficient use.
type ParsedEventLoggingConfig struct {
	SuccessSampleRate float64
	ExcludePaths      map[string]bool
	ErrorOnlyPaths    map[string]bool
	RedactRegex       *regexp.Regexp
}

// ParseEventLoggingConfig parses the config into an efficient structure.
func ParseEventLoggingConfig(cfg *EventLoggingConfig) *ParsedEventLoggingConfig {
	parsed := &ParsedEventLoggingConfig{
		SuccessSampleRate: cfg.SuccessSampleRate,
		ExcludePaths:      splitSet(cfg.ExcludePaths),
		ErrorOnlyPaths:    splitSet(cfg.ErrorOnlyPaths),
	}

	var regexParts []string
	for _, p := range strings.Split(cfg.RedactPatterns, ",") {
		if p = strings.TrimSpace(p); p != "" {
			regexParts = append(regexParts, regexp.QuoteMeta(p))
		}
	}
	if len(regexParts) > 0 {
		parsed.RedactRegex = regexp.MustCompile("(?i)(" + strings.Join(regexParts, "|") + ")")
	}

	return parsed
}

func splitSet(csv string) map[string]bool {
	set := make(map[string]bool)
	for _, p := range strings.Split(csv, ",") {
		if p = strings.TrimSpace(p); p != "" {
			set[p] = true
		}
	}
	return set
}

func DefaultEventLoggingConfig() *EventLoggingConfig {
	return &EventLoggingConfig{
		SuccessSampleRate: 0.1,
		ExcludePaths:      "/ping,/health/version",
		ErrorOnlyPaths:    "/account",
		RedactPatterns:    "password,token,secret,key,authorization,credential,bearer,session,jwt,cookie,private",
	}
}

// LoadEventLoggingConfig reads the LOG_* environment variables.
func LoadEventLoggingConfig() (*EventLoggingConfig, error) {
	cfg := &EventLoggingConfig{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("failed to parse event logging config: %w", err)
	}
	return cfg, nil
}

var active atomic.Pointer[ParsedEventLoggingConfig]

func init() {
	Configure(DefaultEventLoggingConfig())
}

// Configure replaces the process-wide sampling and redaction settings.
func Configure(cfg *EventLoggingConfig) {
	active.Store(ParseEventLoggingConfig(cfg))
}

func current() *ParsedEventLoggingConfig {
	return active.Load()
}

const redactedValue = "***"

// RedactFields redacts sensitive fields based on configured patterns.
func RedactFields(fields ...zap.Field) []zap.Field {
	re := current().RedactRegex
	if re == nil {
		return fields
	}
	redacted := make([]zap.Field, len(fields))
	for i, f := range fields {
		if re.MatchString(f.Key) {
			redacted[i] = zap.String(f.Key, redactedValue)
		} else {
			redacted[i] = f
		}
	}
	return redacted
}

// ShouldLog reports whether info/debug events for the request in ctx are
// sampled in. The decision is stable for a given request id.
func ShouldLog(ctx context.Context) bool {
	rate := current().SuccessSampleRate
	if rate >= 1 {
		return true
	}
	if rate <= 0 {
		return false
	}
	reqID := GetRequestID(ctx)
	if reqID == "" {
		return true
	}
	return HashRequestIDToFloat(reqID) < rate
}

// shouldLogForLevel determines if we should log based on sampling decision and log level.
// Errors and warnings are always logged regardless of sampling.
func shouldLogForLevel(ctx context.Context, level zapcore.Level) bool {
	if level >= zapcore.WarnLevel {
		return true
	}
	return ShouldLog(ctx)
}

// Log logs an event using the logger from context with tail-based sampling.
// Errors and warnings are always logged; Info/Debug are sampled based on request_id.
// Usage:
//
//	logging.Log(ctx, logger, zapcore.InfoLevel, "message", fields...)
//	logging.Log(ctx, logger, zapcore.ErrorLevel, "error", zap.Error(err))
func Log(ctx context.Context, base *zap.Logger, level zapcore.Level, message string, fields ...zap.Field) {
	if !shouldLogForLevel(ctx, level) {
		return
	}
	L(ctx, base).Log(level, message, RedactFields(fields...)...)
}

// LogRequest logs a completed API call. Excluded paths only log warnings and
// above; error-only paths only log errors.
func LogRequest(ctx context.Context, base *zap.Logger, path string, level zapcore.Level, message string, fields ...zap.Field) {
	cfg := current()
	if cfg.ExcludePaths[path] && level < zapcore.WarnLevel {
		return
	}
	if cfg.ErrorOnlyPaths[path] && level < zapcore.ErrorLevel {
		return
	}
	Log(ctx, base, level, message, fields...)
}

// HashRequestIDToFloat returns a deterministic float between 0 and 1 based on request ID.
func HashRequestIDToFloat(requestID string) float64 {
	h := fnv.New64a()
	h.Write([]byte(requestID))
	return float64(h.Sum64()) / float64(^uint64(0))
}

func EventLevelFromStatusCode(statusCode int) zapcore.Level {
	switch {
	case statusCode == 0, statusCode >= 500:
		return zapcore.ErrorLevel
	case statusCode >= 400:
		return zapcore.WarnLevel
	default:
		return zapcore.InfoLevel
	}
}
