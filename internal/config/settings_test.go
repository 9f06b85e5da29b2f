package config

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadSettings_Defaults(t *testing.T) {
	s, err := LoadSettings("")
	require.NoError(t, err)

	assert.Equal(t, DefaultLogLevel, s.Log.Level)
	assert.Equal(t, DefaultLogEncoding, s.Log.Encoding)
	assert.Equal(t, DefaultOutputFormat, s.Output.Format)
	assert.False(t, s.Engine.Parallel)
	assert.Equal(t, DefaultServerAddr, s.Server.Addr)
	assert.Equal(t, DefaultReadTimeout, s.Server.ReadTimeout)
	assert.Equal(t, DefaultMaxBodyBytes, s.Server.MaxBodyBytes)
}

func TestLoadSettings_File(t *testing.T) {
	s, err := LoadSettings(filepath.Join("testdata", "settings.yaml"))
	require.NoError(t, err)

	assert.Equal(t, "debug", s.Log.Level)
	assert.Equal(t, "json", s.Log.Encoding)
	assert.True(t, s.Engine.Parallel)
	assert.Equal(t, ":9090", s.Server.Addr)
	assert.Equal(t, 30*time.Second, s.Server.ReadTimeout)
	assert.Equal(t, DefaultOutputFormat, s.Output.Format)
}

func TestLoadSettings_EnvOverride(t *testing.T) {
	t.Setenv("PAYOUTOPT_SERVER_ADDR", ":7070")
	t.Setenv("PAYOUTOPT_LOG_LEVEL", "warn")

	s, err := LoadSettings(filepath.Join("testdata", "settings.yaml"))
	require.NoError(t, err)
	assert.Equal(t, ":7070", s.Server.Addr)
	assert.Equal(t, "warn", s.Log.Level)
}

func TestLoadSettings_Errors(t *testing.T) {
	_, err := LoadSettings(filepath.Join("testdata", "missing.yaml"))
	assert.Error(t, err)

	t.Setenv("PAYOUTOPT_LOG_LEVEL", "verbose")
	_, err = LoadSettings("")
	assert.ErrorContains(t, err, "log.level")
}

func TestApplyDefaults_KeepsExplicitValues(t *testing.T) {
	s := &Settings{Server: ServerSettings{Addr: ":1"}}
	ApplyDefaults(s)
	assert.Equal(t, ":1", s.Server.Addr)
	assert.Equal(t, DefaultLogLevel, s.Log.Level)

	ApplyDefaults(nil)
}
