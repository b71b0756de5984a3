package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := load([]string{"-n", "alice"})
	require.NoError(t, err)

	assert.Equal(t, "http://localhost:5000", cfg.ServerURL)
	assert.Equal(t, "alice", cfg.Nickname)
	assert.Equal(t, "general", cfg.Room)
	assert.Equal(t, 2500*time.Millisecond, cfg.PollInterval)
}

func TestLoadRequiresNickname(t *testing.T) {
	_, err := load(nil)
	assert.Error(t, err)
}

func TestEnvOverridesFlags(t *testing.T) {
	t.Setenv("CHAT_SERVER_URL", "http://example.org")
	t.Setenv("CHAT_NICKNAME", "bob")
	t.Setenv("POLL_INTERVAL", "5s")

	cfg, err := load([]string{"-n", "alice", "-s", "http://ignored"})
	require.NoError(t, err)

	assert.Equal(t, "http://example.org", cfg.ServerURL)
	assert.Equal(t, "bob", cfg.Nickname)
	assert.Equal(t, 5*time.Second, cfg.PollInterval)
}

func TestInvalidPollInterval(t *testing.T) {
	t.Setenv("POLL_INTERVAL", "soon")

	_, err := load([]string{"-n", "alice"})
	assert.Error(t, err)
}
