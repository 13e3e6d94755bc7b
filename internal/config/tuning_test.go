package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "hive.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))
	return path
}

func TestLoadTuning_MissingFileReturnsDefaults(t *testing.T) {
	cfg, err := LoadTuning(filepath.Join(t.TempDir(), "nope.yaml"))
	require.NoError(t, err)
	assert.Equal(t, DefaultTuning(), cfg)
}

func TestLoadTuning_EmptyPath(t *testing.T) {
	cfg, err := LoadTuning("")
	require.NoError(t, err)
	assert.Equal(t, 4000, cfg.WinScore)
	assert.Equal(t, 50*time.Millisecond, cfg.TickDelay)
}

func TestLoadTuning_OverridesDefaults(t *testing.T) {
	path := writeConfig(t, "seed: 42\ntick_delay: 20ms\nwin_score: 1500\n")

	cfg, err := LoadTuning(path)
	require.NoError(t, err)
	assert.Equal(t, uint64(42), cfg.Seed)
	assert.Equal(t, 20*time.Millisecond, cfg.TickDelay)
	assert.Equal(t, 1500, cfg.WinScore)
	assert.Equal(t, DefaultTuning().IdleTimeout, cfg.IdleTimeout)
}

func TestLoadTuning_Errors(t *testing.T) {
	tests := []struct {
		name    string
		body    string
		invalid bool
	}{
		{name: "malformed yaml", body: "seed: [1,\n"},
		{name: "zero tick delay", body: "tick_delay: 0s\n", invalid: true},
		{name: "negative win score", body: "win_score: -1\n", invalid: true},
		{name: "tiny terminal", body: "max_term_width: 5\n", invalid: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := LoadTuning(writeConfig(t, tt.body))
			require.Error(t, err)
			if tt.invalid {
				assert.ErrorIs(t, err, ErrInvalidTuning)
			}
		})
	}
}

func TestGetEnv(t *testing.T) {
	t.Setenv("HIVE_TEST_KEY", "set")
	assert.Equal(t, "set", GetEnv("HIVE_TEST_KEY", "fallback"))
	assert.Equal(t, "fallback", GetEnv("HIVE_TEST_KEY_MISSING", "fallback"))
}
