// Package telemetry provides opt-in anonymous usage analytics for the
// taskqueue CLI. Only command names and outcome flags are tracked; no task
// contents, URLs or other user data ever leave the machine. Consent state
// lives in ~/.taskqueue/telemetry.json and both DO_NOT_TRACK and
// TASKQUEUE_NO_TELEMETRY disable tracking regardless of stored consent.
package telemetry

import (
	"encoding/json"
	"io"
	"os"
	"path/filepath"
	"runtime"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/posthog/posthog-go"
)

const consentFileName = "telemetry.json"

// Client is the interface for telemetry clients, allowing a no-op swap when
// telemetry is disabled.
type Client interface {
	// Track sends an event asynchronously. No-op when telemetry is off.
	Track(event string, properties map[string]any)

	// Close flushes pending events.
	Close() error
}

// Config is the persisted consent state.
type Config struct {
	Enabled bool `json:"enabled"`

	// ConsentAsked records that the user made a choice; once true the CLI
	// never prompts again.
	ConsentAsked bool `json:"consent_asked"`

	// AnonymousID is a random UUID generated on first load. Not tied to any
	// personally identifiable information.
	AnonymousID string `json:"anonymous_id"`
}

// IsEnabled reports whether events may be sent, honoring the opt-out
// environment variables.
func (c *Config) IsEnabled() bool {
	if os.Getenv("DO_NOT_TRACK") != "" || os.Getenv("TASKQUEUE_NO_TELEMETRY") != "" {
		return false
	}
	return c != nil && c.Enabled
}

// configDirOverride allows tests to redirect the consent file.
var (
	configDirOverride   string
	configDirOverrideMu sync.RWMutex
)

// SetConfigDir sets a custom config directory path (for testing). Pass an
// empty string to reset.
func SetConfigDir(dir string) {
	configDirOverrideMu.Lock()
	defer configDirOverrideMu.Unlock()
	configDirOverride = dir
}

func getConfigDir() (string, error) {
	configDirOverrideMu.RLock()
	override := configDirOverride
	configDirOverrideMu.RUnlock()
	if override != "" {
		return override, nil
	}

	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".taskqueue"), nil
}

// LoadConfig reads the consent state, creating it with a fresh anonymous id
// on first use.
func LoadConfig() (*Config, error) {
	dir, err := getConfigDir()
	if err != nil {
		return nil, err
	}
	path := filepath.Join(dir, consentFileName)

	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		cfg := &Config{AnonymousID: uuid.New().String()}
		if err := SaveConfig(cfg); err != nil {
			return nil, err
		}
		return cfg, nil
	}
	if err != nil {
		return nil, err
	}

	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, err
	}
	if cfg.AnonymousID == "" {
		cfg.AnonymousID = uuid.New().String()
	}
	return &cfg, nil
}

// SaveConfig persists the consent state.
func SaveConfig(cfg *Config) error {
	dir, err := getConfigDir()
	if err != nil {
		return err
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return err
	}

	data, err := json.MarshalIndent(cfg, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(filepath.Join(dir, consentFileName), data, 0o644)
}

// enqueuer is the subset of the PostHog client used here, mockable in
// tests.
type enqueuer interface {
	io.Closer
	Enqueue(msg posthog.Message) error
}

// PostHogClient wraps the PostHog SDK for async event dispatch.
type PostHogClient struct {
	client      enqueuer
	config      *Config
	version     string
	mu          sync.RWMutex
	initialized bool
}

// NewClient creates a telemetry client. An empty API key or nil config
// yields an inert client.
func NewClient(apiKey, version string, cfg *Config) (*PostHogClient, error) {
	if apiKey == "" || cfg == nil {
		return &PostHogClient{config: cfg, version: version}, nil
	}

	ph, err := posthog.NewWithConfig(apiKey, posthog.Config{
		BatchSize: 10,
		Interval:  1 * time.Second,
		// Telemetry must never pollute normal CLI output.
		Logger: quietLogger{},
	})
	if err != nil {
		return nil, err
	}

	return &PostHogClient{
		client:      ph,
		config:      cfg,
		version:     version,
		initialized: true,
	}, nil
}

func newClientWithEnqueuer(enq enqueuer, cfg *Config, version string) *PostHogClient {
	return &PostHogClient{client: enq, config: cfg, version: version, initialized: true}
}

// Track enqueues an event with standard properties attached.
func (c *PostHogClient) Track(event string, properties map[string]any) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	if !c.initialized || !c.config.IsEnabled() {
		return
	}

	props := posthog.NewProperties()
	for k, v := range properties {
		props.Set(k, v)
	}
	props.Set("os", runtime.GOOS)
	props.Set("arch", runtime.GOARCH)
	props.Set("cli_version", c.version)
	// No person profiles: events stay truly anonymous.
	props.Set("$process_person_profile", false)

	_ = c.client.Enqueue(posthog.Capture{
		DistinctId: c.config.AnonymousID,
		Event:      event,
		Properties: props,
	})
}

// Close flushes pending events.
func (c *PostHogClient) Close() error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if !c.initialized || c.client == nil {
		return nil
	}
	return c.client.Close()
}

// NoopClient does nothing; used when telemetry is disabled.
type NoopClient struct{}

func (NoopClient) Track(string, map[string]any) {}
func (NoopClient) Close() error                 { return nil }

// quietLogger suppresses PostHog transport logs.
type quietLogger struct{}

func (quietLogger) Debugf(string, ...interface{}) {}
func (quietLogger) Logf(string, ...interface{})   {}
func (quietLogger) Warnf(string, ...interface{})  {}
func (quietLogger) Errorf(string, ...interface{}) {}
