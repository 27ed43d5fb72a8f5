package configutil

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

type testConfig struct {
	Endpoint string `json:"endpoint"`
	Verbose  bool   `json:"verbose"`
}

func TestReadConfigMergesLocalOverrides(t *testing.T) {
	dir := t.TempDir()
	name := filepath.Join(dir, "telemetry.json5")

	err := os.WriteFile(name, []byte(`{endpoint: "collector:4317", verbose: false}`), 0644)
	require.NoError(t, err)
	err = os.WriteFile(filepath.Join(dir, "telemetry.local.json5"), []byte(`{verbose: true}`), 0644)
	require.NoError(t, err)

	config, err := ReadConfig[testConfig](name)
	require.NoError(t, err)
	require.Equal(t, "collector:4317", config.Endpoint)
	require.True(t, config.Verbose)
}

func TestReadConfigMissingIsNotExist(t *testing.T) {
	// callers treat an absent config as optional, so the error must
	// stay recognizable to os.IsNotExist
	_, err := ReadConfig[testConfig](filepath.Join(t.TempDir(), "telemetry.json5"))
	require.True(t, os.IsNotExist(err))
}

func TestReadConfigMalformedIsNotMaskedAsMissing(t *testing.T) {
	dir := t.TempDir()
	name := filepath.Join(dir, "telemetry.json5")
	err := os.WriteFile(name, []byte(`{endpoint: `), 0644)
	require.NoError(t, err)

	_, err = ReadConfig[testConfig](name)
	require.Error(t, err)
	require.False(t, os.IsNotExist(err))
}
