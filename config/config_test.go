package config

import (
	"testing"

	log "github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	c, err := LoadFrom(map[string]string{})
	require.NoError(t, err)
	assert.Equal(t, 20, c.Retries)
	assert.Equal(t, "info", c.LogLevel)
	assert.Equal(t, "data", c.OutDir)
	assert.Len(t, c.RDSEEDOptions(), 1)
}

func TestLoadOverrides(t *testing.T) {
	c, err := LoadFrom(map[string]string{
		"RDSEED_LIBRARY_PATH": "/opt/lib/librdseed.so",
		"RDSEED_RETRIES":      "64",
		"RDSEED_LOG_LEVEL":    "debug",
	})
	require.NoError(t, err)
	assert.Equal(t, "/opt/lib/librdseed.so", c.LibraryPath)
	assert.Equal(t, 64, c.Retries)
	assert.Len(t, c.RDSEEDOptions(), 2)

	require.NoError(t, c.SetupLogging())
	assert.Equal(t, log.DebugLevel, log.GetLevel())
	log.SetLevel(log.InfoLevel)
}

func TestLoadInvalid(t *testing.T) {
	_, err := LoadFrom(map[string]string{"RDSEED_RETRIES": "lots"})
	assert.Error(t, err)

	assert.Error(t, Config{LogLevel: "loud"}.SetupLogging())
}

func TestLoadProcessEnvironment(t *testing.T) {
	t.Setenv("RDSEED_OUTDIR", "samples")
	c, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "samples", c.OutDir)
}
