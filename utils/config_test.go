package utils_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/sheikhrachel/go-life/utils"
)

func TestDefaultConfig(t *testing.T) {
	config := utils.DefaultConfig()

	require.Equal(t, 60, config.Width)
	require.Equal(t, 30, config.Height)
	require.Equal(t, 150*time.Millisecond, config.FrameRate)
	require.True(t, config.AutoRestart)
	require.Equal(t, 0.15, config.RandomDensity)
}

func TestLoadConfigMissingFileFallsBackToDefaults(t *testing.T) {
	config, err := utils.LoadConfig(filepath.Join(t.TempDir(), "nope.json"))

	require.Error(t, err)
	require.Equal(t, utils.DefaultConfig(), config)
}

func TestLoadConfigOverridesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"width": 12, "height": 8, "random_density": 0.5}`), 0o644))

	config, err := utils.LoadConfig(path)

	require.NoError(t, err)
	require.Equal(t, 12, config.Width)
	require.Equal(t, 8, config.Height)
	require.Equal(t, 0.5, config.RandomDensity)
	// Untouched fields keep their defaults
	require.Equal(t, utils.DefaultConfig().StagnationThreshold, config.StagnationThreshold)
}

func TestLoadConfigRejectsMalformedJSON(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"width": `), 0o644))

	_, err := utils.LoadConfig(path)
	require.Error(t, err)
	require.Contains(t, err.Error(), "[LoadConfig]")
}
