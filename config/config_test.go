package config_test

import (
	"testing"

	"github.com/plus3/blockfall/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := config.Load()
	require.NoError(t, err)

	assert.Equal(t, config.Config{CellSize: 24, TPS: 60}, cfg)
}

func TestLoadFromEnv(t *testing.T) {
	t.Setenv("BLOCKFALL_SEED", "1234")
	t.Setenv("BLOCKFALL_CELL_SIZE", "32")
	t.Setenv("BLOCKFALL_DEBUG_UI", "true")
	t.Setenv("BLOCKFALL_TPS", "120")

	cfg, err := config.Load()
	require.NoError(t, err)

	assert.Equal(t, config.Config{Seed: 1234, CellSize: 32, DebugUI: true, TPS: 120}, cfg)

	seed, err := cfg.ResolveSeed()
	require.NoError(t, err)
	assert.Equal(t, uint64(1234), seed)
}

func TestLoadRejectsBadValues(t *testing.T) {
	tests := []struct {
		name, key, value string
	}{
		{"not a number", "BLOCKFALL_TPS", "fast"},
		{"zero cell size", "BLOCKFALL_CELL_SIZE", "0"},
		{"negative tps", "BLOCKFALL_TPS", "-1"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv(tt.key, tt.value)
			_, err := config.Load()
			assert.Error(t, err)
		})
	}
}

func TestResolveSeedGeneratesWhenUnset(t *testing.T) {
	a, err := config.Config{}.ResolveSeed()
	require.NoError(t, err)
	b, err := config.Config{}.ResolveSeed()
	require.NoError(t, err)

	assert.NotEqual(t, a, b)
}
