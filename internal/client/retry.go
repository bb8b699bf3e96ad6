package client

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"
)

// WaitReady pings the server until it answers or attempts are exhausted.
func (c *Client) WaitReady(ctx context.Context, attempts int, interval time.Duration) error {
	return pingWithRetry(ctx, c, attempts, interval)
}

func pingWithRetry(ctx context.Context, c *Client, attempts int, interval time.Duration) error {
	if attempts < 1 {
		attempts = 1
	}

	var lastErr error
	for attempt := 1; attempt <= attempts; attempt++ {
		_, err := c.Ping(ctx)
		if err == nil {
			return nil
		}
		lastErr = err

		if attempt == attempts {
			break
		}
		c.logger.Debug("appwrite not ready, retrying",
			zap.Int("attempt", attempt),
			zap.Duration("backoff", interval),
			zap.Error(err))

		select {
		case <-time.After(interval):
		case <-ctx.Done():
			return fmt.Errorf("context cancelled while waiting for appwrite: %w", ctx.Err())
		}
	}
	return fmt.Errorf("appwrite not reachable after %d attempts: %w", attempts, lastErr)
}

// leveledLogger adapts zap to retryablehttp.LeveledLogger.
type leveledLogger struct {
	s *zap.SugaredLogger
}

func (l leveledLogger) Error(msg string, keysAndValues ...interface{}) {
	l.s.Errorw(msg, keysAndValues...)
}

func (l leveledLogger) Info(msg string, keysAndValues ...interface{}) {
	l.s.Infow(msg, keysAndValues...)
}

func (l leveledLogger) Debug(msg string, keysAndValues ...interface{}) {
	l.s.Debugw(msg, keysAndValues...)
}

func (l leveledLogger) Warn(msg string, keysAndValues ...interface{}) {
	l.s.Warnw(msg, keysAndValues...)
}
