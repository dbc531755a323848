package telemetry

import (
	"testing"

	"github.com/posthog/posthog-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type mockEnqueuer struct {
	events []posthog.Capture
	closed bool
}

func (m *mockEnqueuer) Enqueue(msg posthog.Message) error {
	if capture, ok := msg.(posthog.Capture); ok {
		m.events = append(m.events, capture)
	}
	return nil
}

func (m *mockEnqueuer) Close() error {
	m.closed = true
	return nil
}

func TestLoadConfig_CreatesOnFirstUse(t *testing.T) {
	SetConfigDir(t.TempDir())
	defer SetConfigDir("")

	cfg, err := LoadConfig()
	require.NoError(t, err)
	assert.False(t, cfg.Enabled, "telemetry is opt-in")
	assert.False(t, cfg.ConsentAsked)
	assert.NotEmpty(t, cfg.AnonymousID)

	// A second load returns the same stored identity.
	again, err := LoadConfig()
	require.NoError(t, err)
	assert.Equal(t, cfg.AnonymousID, again.AnonymousID)
}

func TestSaveConfig_RoundTrips(t *testing.T) {
	SetConfigDir(t.TempDir())
	defer SetConfigDir("")

	cfg, err := LoadConfig()
	require.NoError(t, err)

	cfg.Enabled = true
	cfg.ConsentAsked = true
	require.NoError(t, SaveConfig(cfg))

	loaded, err := LoadConfig()
	require.NoError(t, err)
	assert.True(t, loaded.Enabled)
	assert.True(t, loaded.ConsentAsked)
}

func TestConfig_IsEnabled(t *testing.T) {
	assert.False(t, (*Config)(nil).IsEnabled())
	assert.False(t, (&Config{}).IsEnabled())
	assert.True(t, (&Config{Enabled: true}).IsEnabled())

	t.Run("DO_NOT_TRACK wins over consent", func(t *testing.T) {
		t.Setenv("DO_NOT_TRACK", "1")
		assert.False(t, (&Config{Enabled: true}).IsEnabled())
	})

	t.Run("TASKQUEUE_NO_TELEMETRY wins over consent", func(t *testing.T) {
		t.Setenv("TASKQUEUE_NO_TELEMETRY", "1")
		assert.False(t, (&Config{Enabled: true}).IsEnabled())
	})
}

func TestPostHogClient_Track(t *testing.T) {
	enq := &mockEnqueuer{}
	cfg := &Config{Enabled: true, AnonymousID: "anon-1"}
	c := newClientWithEnqueuer(enq, cfg, "0.1.0")

	c.Track("command_run", map[string]any{"command": "tasks list", "success": true})

	require.Len(t, enq.events, 1)
	event := enq.events[0]
	assert.Equal(t, "anon-1", event.DistinctId)
	assert.Equal(t, "command_run", event.Event)
	assert.Equal(t, "tasks list", event.Properties["command"])
	assert.Equal(t, "0.1.0", event.Properties["cli_version"])
	assert.Equal(t, false, event.Properties["$process_person_profile"])
}

func TestPostHogClient_TrackDisabled(t *testing.T) {
	enq := &mockEnqueuer{}
	c := newClientWithEnqueuer(enq, &Config{Enabled: false, AnonymousID: "anon-1"}, "0.1.0")

	c.Track("command_run", nil)
	assert.Empty(t, enq.events)
}

func TestPostHogClient_Close(t *testing.T) {
	enq := &mockEnqueuer{}
	c := newClientWithEnqueuer(enq, &Config{Enabled: true, AnonymousID: "x"}, "0.1.0")
	require.NoError(t, c.Close())
	assert.True(t, enq.closed)
}

func TestNewClient_EmptyKeyIsInert(t *testing.T) {
	c, err := NewClient("", "0.1.0", &Config{Enabled: true, AnonymousID: "x"})
	require.NoError(t, err)
	c.Track("event", nil)
	require.NoError(t, c.Close())
}

func TestNoopClient(t *testing.T) {
	var c Client = NoopClient{}
	c.Track("anything", nil)
	assert.NoError(t, c.Close())
}
