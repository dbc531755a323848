package client

import (
	"context"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/sirupsen/logrus"
)

// Version is the SDK version reported in the User-Agent header.
const Version = "0.1.0"

const (
	defaultBaseURL       = "http://localhost:8080"
	defaultTimeout       = 30 * time.Second
	defaultMaxConns      = 100
	defaultMaxIdleConns  = 20
	defaultRetryAttempts = 3
	defaultRetryBackoff  = 1 * time.Second
	defaultPollInterval  = 2 * time.Second
	defaultWaitTimeout   = 300 * time.Second
)

// Config holds client construction options. The zero value of every field
// falls back to a documented default.
type Config struct {
	// BaseURL is the API endpoint (default: "http://localhost:8080").
	BaseURL string

	// Timeout applies per HTTP attempt (default: 30s).
	Timeout time.Duration

	// Headers are sent with every request in addition to the defaults.
	Headers map[string]string

	// MaxConnections bounds concurrent connections in the underlying
	// transport (default: 100).
	MaxConnections int

	// MaxIdleConnections bounds kept-alive connections (default: 20).
	MaxIdleConnections int

	// RetryAttempts is the total number of attempts per logical request,
	// including the first (default: 3).
	RetryAttempts int

	// RetryBackoff is the base delay between attempts; the actual delay is
	// RetryBackoff * 2^attempt (default: 1s).
	RetryBackoff time.Duration

	// Logger receives debug output for attempts and retries. Nil disables
	// logging.
	Logger *logrus.Logger
}

// Client is a stateless TaskQueue API client. Concurrent callers share the
// underlying connection pool but no mutable state, so a single Client is
// safe for concurrent use.
type Client struct {
	baseURL       string
	headers       map[string]string
	retryAttempts int
	retryBackoff  time.Duration
	pollInterval  time.Duration
	httpClient    *http.Client
	log           *logrus.Logger

	// sleep is overridable so retry and poll timing can be tested without
	// real waits.
	sleep func(ctx context.Context, d time.Duration) error
}

// New creates a client from cfg, applying defaults for unset fields.
func New(cfg Config) *Client {
	baseURL := cfg.BaseURL
	if baseURL == "" {
		baseURL = defaultBaseURL
	}
	baseURL = strings.TrimRight(baseURL, "/")

	// Non-positive values fall back to the defaults too: config files and
	// environment variables feed these fields directly, and the executor
	// needs at least one attempt.
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = defaultTimeout
	}
	maxConns := cfg.MaxConnections
	if maxConns <= 0 {
		maxConns = defaultMaxConns
	}
	maxIdle := cfg.MaxIdleConnections
	if maxIdle <= 0 {
		maxIdle = defaultMaxIdleConns
	}
	retryAttempts := cfg.RetryAttempts
	if retryAttempts <= 0 {
		retryAttempts = defaultRetryAttempts
	}
	retryBackoff := cfg.RetryBackoff
	if retryBackoff <= 0 {
		retryBackoff = defaultRetryBackoff
	}

	headers := map[string]string{
		"Content-Type": "application/json",
		"User-Agent":   "TaskQueue-Go-SDK/" + Version,
	}
	for k, v := range cfg.Headers {
		headers[k] = v
	}

	log := cfg.Logger
	if log == nil {
		log = logrus.New()
		log.SetOutput(io.Discard)
	}

	return &Client{
		baseURL:       baseURL,
		headers:       headers,
		retryAttempts: retryAttempts,
		retryBackoff:  retryBackoff,
		pollInterval:  defaultPollInterval,
		httpClient: &http.Client{
			Timeout: timeout,
			Transport: &http.Transport{
				MaxConnsPerHost:     maxConns,
				MaxIdleConnsPerHost: maxIdle,
			},
		},
		log:   log,
		sleep: ctxSleep,
	}
}

// BaseURL returns the configured endpoint.
func (c *Client) BaseURL() string {
	return c.baseURL
}

// ctxSleep suspends for d or until ctx is cancelled.
func ctxSleep(ctx context.Context, d time.Duration) error {
	timer := time.NewTimer(d)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}
