package logging

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	log, err := New(Default())
	require.NoError(t, err)
	require.NotNil(t, log)
	log.Info("hello")
}

func TestNew_BadLevel(t *testing.T) {
	_, err := New(Config{Level: "loud", Format: "console"})
	require.Error(t, err)
}

func TestFromEnv(t *testing.T) {
	t.Setenv("LOG_LEVEL", "debug")
	t.Setenv("LOG_FORMAT", "json")

	cfg := FromEnv(Default())
	assert.Equal(t, "debug", cfg.Level)
	assert.Equal(t, "json", cfg.Format)
}

func TestFromEnv_NoOverride(t *testing.T) {
	t.Setenv("LOG_LEVEL", "")
	t.Setenv("LOG_FORMAT", "")

	cfg := FromEnv(Default())
	assert.Equal(t, Default(), cfg)
}
